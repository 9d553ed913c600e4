// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements material models for shell analyses
package mdl

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
)

// Model defines the interface of shell material models: they produce the
// local 5×5 constitutive matrix relating the material-aligned strains
// (ε1, ε2, γ12, γ23, γ31) to the corresponding stresses
type Model interface {
	Init(prms dbf.Params) error
	CalcD(D [][]float64) error
	GetRho() float64
}

// allocators holds the available model allocators
var allocators = make(map[string]func() Model)

// New returns a new model. Unknown names are a configuration error
func New(name string) (Model, error) {
	if alloc, ok := allocators[name]; ok {
		return alloc(), nil
	}
	return nil, chk.Err("mdl.New: model %q is not available", name)
}

// ShellElast implements a linear-elastic shell material. The
// through-thickness normal stress is condensed out (plane-stress
// in-plane block) and the transverse shear terms carry a shear
// correction factor
type ShellElast struct {

	// parameters
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Rho float64 // density
	Kap float64 // shear correction factor; default 5/6
}

// add model to factory
func init() {
	allocators["shell-elast"] = func() Model { return new(ShellElast) }
}

// Init initialises model from parameters
func (o *ShellElast) Init(prms dbf.Params) (err error) {
	o.Kap = 5.0 / 6.0
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		case "kap":
			o.Kap = p.V
		}
	}
	if o.E <= 0 {
		return chk.Err("ShellElast: Young's modulus must be positive; got E=%v", o.E)
	}
	if o.Nu < 0 || o.Nu >= 0.5 {
		return chk.Err("ShellElast: Poisson's coefficient must be within [0, 0.5); got nu=%v", o.Nu)
	}
	if o.Kap <= 0 {
		return chk.Err("ShellElast: shear correction factor must be positive; got kap=%v", o.Kap)
	}
	return
}

// GetRho returns the density
func (o *ShellElast) GetRho() float64 {
	return o.Rho
}

// CalcD computes the local constitutive matrix
//  D -- [5][5] pre-allocated output
func (o *ShellElast) CalcD(D [][]float64) (err error) {
	if len(D) != 5 || len(D[0]) != 5 {
		return chk.Err("ShellElast: D must be 5×5; got %d×%d", len(D), len(D[0]))
	}
	la.MatFill(D, 0)
	q := o.E / (1.0 - o.Nu*o.Nu)
	g := o.E / (2.0 * (1.0 + o.Nu))
	D[0][0] = q
	D[1][1] = q
	D[0][1] = q * o.Nu
	D[1][0] = q * o.Nu
	D[2][2] = g
	D[3][3] = o.Kap * g
	D[4][4] = o.Kap * g
	return
}
