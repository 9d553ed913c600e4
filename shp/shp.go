// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape functions and integration rules for the
// quadrilateral elements used by the degenerated-shell kernel
package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants
const (
	RNGTOL = 1.0e-12 // tolerance when checking natural coordinates against [-1,1]
)

// ShpFunc is the shape/derivatives callback function
//  S    -- [nverts] shape function values @ r
//  dSdR -- [nverts][2] derivatives of S w.r.t natural coordinates (may be nil if !derivs)
//  r    -- [2 or more] natural coordinates
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds the shape-function data of one element kind
type Shape struct {
	Type      string      // name; e.g. "q8"
	Func      ShpFunc     // shape/derivs callback function
	BasicType string      // geometry of basic element; e.g. "q8" => "q4"
	Nverts    int         // number of vertices; e.g. "q8" => 8
	NatCoords [][]float64 // natural coordinates of vertices [2][nverts]

	// scratchpad
	S    []float64   // [nverts] shape functions
	DSdR [][]float64 // [nverts][2] derivatives of S w.r.t natural coordinates
}

// GetCopy returns a new copy of this shape structure with its own scratchpad.
// Concurrent evaluations must work on copies
func (o Shape) GetCopy() *Shape {
	p := o
	p.S = make([]float64, o.Nverts)
	p.DSdR = la.MatAlloc(o.Nverts, 2)
	return &p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// register adds a shape to the factory and allocates its scratchpad
func register(s *Shape) {
	s.S = make([]float64, s.Nverts)
	s.DSdR = la.MatAlloc(s.Nverts, 2)
	factory[s.Type] = s
}

// Get returns an existent Shape structure
//  Note: unknown kinds are a configuration error; there is no fallback
func Get(geoType string) (s *Shape, err error) {
	s, ok := factory[geoType]
	if !ok {
		err = chk.Err("shp.Get: shape functions for %q are not available", geoType)
	}
	return
}

// GetNverts returns the number of vertices. It returns -1 for unknown kinds
func GetNverts(geoType string) int {
	if s, ok := factory[geoType]; ok {
		return s.Nverts
	}
	return -1
}

// CheckRange returns an error unless all natural coordinates are within [-1,1]
func CheckRange(r []float64) (err error) {
	for i := 0; i < len(r); i++ {
		if math.IsNaN(r[i]) || math.Abs(r[i]) > 1.0+RNGTOL {
			return chk.Err("natural coordinate r[%d]=%v is outside [-1,1]", i, r[i])
		}
	}
	return
}

// CalcAtR calculates S (and DSdR if derivs) at natural coordinates r,
// storing results in the scratchpad
func (o *Shape) CalcAtR(r []float64, derivs bool) (err error) {
	err = CheckRange(r)
	if err != nil {
		return
	}
	o.Func(o.S, o.DSdR, r, derivs)
	return
}

// ShapeMatAtIps returns a matrix formed by computing the shape functions
// at all given points [npts][nverts]
func (o *Shape) ShapeMatAtIps(pts []Ipoint) (N [][]float64, err error) {
	N = la.MatAlloc(len(pts), o.Nverts)
	for i, ip := range pts {
		err = o.CalcAtR([]float64{ip.R, ip.S}, false)
		if err != nil {
			return
		}
		copy(N[i], o.S)
	}
	return
}

// DerivsMatAtIps returns the derivatives of the shape functions at all
// given points [npts][nverts][2]
func (o *Shape) DerivsMatAtIps(pts []Ipoint) (dN [][][]float64, err error) {
	dN = make([][][]float64, len(pts))
	for i, ip := range pts {
		err = o.CalcAtR([]float64{ip.R, ip.S}, true)
		if err != nil {
			return
		}
		dN[i] = la.MatAlloc(o.Nverts, 2)
		la.MatCopy(dN[i], 1, o.DSdR)
	}
	return
}

// Nmatrix fills the vector-interpolation operator formed by expanding each
// scalar shape function into a 3×3 identity block (the AHMAD expansion)
//  Nmat -- [3][3*nverts] must be pre-allocated
//  S    -- [nverts] shape function values
func Nmatrix(Nmat [][]float64, S []float64) {
	la.MatFill(Nmat, 0)
	for m := 0; m < len(S); m++ {
		for i := 0; i < 3; i++ {
			Nmat[i][3*m+i] = S[m]
		}
	}
}
