// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from JSON files: shell meshes
// with nodal directors and material databases.
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/zhysh966/piezo-fem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Vert holds vertex data. For shell meshes, N is the nodal director with
// magnitude equal to half the shell thickness at the vertex.
type Vert struct {
	Id  int       `json:"id"`  // id
	Tag int       `json:"tag"` // tag
	C   []float64 `json:"c"`   // coordinates (size==3)
	N   []float64 `json:"n"`   // director (size==3)
}

// Cell holds cell data
type Cell struct {

	// input data
	Id    int    `json:"id"`    // id
	Tag   int    `json:"tag"`   // tag
	Type  string `json:"type"`  // geometry type; e.g. "q4", "q8", "q9"
	Verts []int  `json:"verts"` // vertices

	// derived
	Shp *shp.Shape // shape structure
}

// Mesh holds a shell mesh for FE analyses
type Mesh struct {

	// from JSON
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived
	FnamePath  string  // complete filename path
	Xmin, Xmax float64 // min and max x-coordinate
	Ymin, Ymax float64 // min and max y-coordinate
	Zmin, Zmax float64 // min and max z-coordinate

	// derived: maps
	VertTag2verts map[int][]*Vert    // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell    // cell tag => set of cells
	Ctype2cells   map[string][]*Cell // cell type => set of cells
}

// ReadMsh reads a shell mesh from a JSON file
func ReadMsh(dir, fn string) (o *Mesh, err error) {

	// new mesh
	o = new(Mesh)

	// read file
	o.FnamePath = filepath.Join(dir, fn)
	b, err := io.ReadFile(o.FnamePath)
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, err
	}

	// derive
	err = o.CalcDerived()
	if err != nil {
		return nil, err
	}
	return
}

// CalcDerived computes limits, tag maps and cell shape structures. It checks
// ids, coordinates, directors and cell connectivities.
func (o *Mesh) CalcDerived() (err error) {

	// check
	if len(o.Verts) < 4 {
		return chk.Err("mesh %q has too few vertices (%d)", o.FnamePath, len(o.Verts))
	}
	if len(o.Cells) < 1 {
		return chk.Err("mesh %q has no cells", o.FnamePath)
	}

	// vertex related derived data
	o.Xmin, o.Ymin, o.Zmin = o.Verts[0].C[0], o.Verts[0].C[1], o.Verts[0].C[2]
	o.Xmax, o.Ymax, o.Zmax = o.Xmin, o.Ymin, o.Zmin
	o.VertTag2verts = make(map[int][]*Vert)
	for i, v := range o.Verts {

		// check vertex
		if v.Id != i {
			return chk.Err("vertex ids must be sequential. %d != %d", v.Id, i)
		}
		if len(v.C) != 3 {
			return chk.Err("vertex %d must have 3 coordinates. %d is invalid", v.Id, len(v.C))
		}
		if len(v.N) != 3 {
			return chk.Err("vertex %d must have a 3-component director. %d is invalid", v.Id, len(v.N))
		}
		if la.VecNorm(v.N) < 1e-14 {
			return chk.Err("vertex %d has a zero director", v.Id)
		}

		// tags
		if v.Tag < 0 {
			verts := o.VertTag2verts[v.Tag]
			o.VertTag2verts[v.Tag] = append(verts, v)
		}

		// limits
		o.Xmin = utl.Min(o.Xmin, v.C[0])
		o.Xmax = utl.Max(o.Xmax, v.C[0])
		o.Ymin = utl.Min(o.Ymin, v.C[1])
		o.Ymax = utl.Max(o.Ymax, v.C[1])
		o.Zmin = utl.Min(o.Zmin, v.C[2])
		o.Zmax = utl.Max(o.Zmax, v.C[2])
	}

	// cell related derived data
	o.CellTag2cells = make(map[int][]*Cell)
	o.Ctype2cells = make(map[string][]*Cell)
	for i, c := range o.Cells {

		// check id and tag
		if c.Id != i {
			return chk.Err("cell ids must be sequential. %d != %d", c.Id, i)
		}
		if c.Tag >= 0 {
			return chk.Err("cell tags must be negative. %d is incorrect", c.Tag)
		}

		// shape structure
		c.Shp, err = shp.Get(c.Type)
		if err != nil {
			return chk.Err("cell %d: %v", c.Id, err)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return chk.Err("cell %d (%q) must have %d vertices. %d is incorrect", c.Id, c.Type, c.Shp.Nverts, len(c.Verts))
		}
		for _, vid := range c.Verts {
			if vid < 0 || vid >= len(o.Verts) {
				return chk.Err("cell %d references inexistent vertex %d", c.Id, vid)
			}
		}

		// tag maps
		cells := o.CellTag2cells[c.Tag]
		o.CellTag2cells[c.Tag] = append(cells, c)
		cells = o.Ctype2cells[c.Type]
		o.Ctype2cells[c.Type] = append(cells, c)
	}
	return
}

// CellCoords returns the coordinates matrix (nverts x 3) of a cell
func (o *Mesh) CellCoords(cellId int) (xyz [][]float64) {
	c := o.Cells[cellId]
	xyz = la.MatAlloc(len(c.Verts), 3)
	for m, vid := range c.Verts {
		copy(xyz[m], o.Verts[vid].C)
	}
	return
}

// CellDirs returns the directors matrix (nverts x 3) of a cell
func (o *Mesh) CellDirs(cellId int) (dirs [][]float64) {
	c := o.Cells[cellId]
	dirs = la.MatAlloc(len(c.Verts), 3)
	for m, vid := range c.Verts {
		copy(dirs[m], o.Verts[vid].N)
	}
	return
}

// String returns a JSON representation of the mesh
func (o *Mesh) String() string {
	l := "{\n  \"verts\" : [\n"
	for i, v := range o.Verts {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    { \"id\":%4d, \"tag\":%3d, \"c\":[%g,%g,%g], \"n\":[%g,%g,%g] }",
			v.Id, v.Tag, v.C[0], v.C[1], v.C[2], v.N[0], v.N[1], v.N[2])
	}
	l += "\n  ],\n  \"cells\" : [\n"
	for i, c := range o.Cells {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    { \"id\":%4d, \"tag\":%3d, \"type\":%q, \"verts\":[", c.Id, c.Tag, c.Type)
		for j, vid := range c.Verts {
			if j > 0 {
				l += ","
			}
			l += io.Sf("%d", vid)
		}
		l += "] }"
	}
	l += "\n  ]\n}"
	return l
}
