// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/zhysh966/piezo-fem/mdl"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Model string     `json:"model"` // name of model; e.g. "shell-elast"
	Prms  dbf.Params `json:"prms"`  // model parameters

	// derived
	Mdl mdl.Model // pointer to allocated model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	mat2mdl map[string]*Material // material name => material
}

// ReadMat reads and initialises all materials from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, err
	}

	// allocate and initialise models
	mdb.mat2mdl = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if _, found := mdb.mat2mdl[m.Name]; found {
			return nil, chk.Err("duplicate material %q in %q", m.Name, fn)
		}
		m.Mdl, err = mdl.New(m.Model)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
		err = m.Mdl.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("material %q: %v", m.Name, err)
		}
		mdb.mat2mdl[m.Name] = m
	}
	return
}

// Get returns a material by name. Returns nil if not found.
func (o *MatDb) Get(name string) *Material {
	return o.mat2mdl[name]
}

// String returns a JSON representation of the database
func (o MatDb) String() string {
	l := "{ \"materials\" : [\n"
	for i, m := range o.Materials {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("  { \"name\":%q, \"model\":%q, \"prms\":[\n", m.Name, m.Model)
		for j, p := range m.Prms {
			if j > 0 {
				l += ",\n"
			}
			l += io.Sf("    { \"n\":%q, \"v\":%g }", p.N, p.V)
		}
		l += " ] }"
	}
	l += "\n] }"
	return l
}
