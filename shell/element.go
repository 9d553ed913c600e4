// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shell implements the kinematic kernel of degenerated (Ahmad)
// shell elements: element geometry, Jacobians, strain-displacement (B)
// operators and the strain rotation (T) matrix
package shell

import (
	"github.com/zhysh966/piezo-fem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Element holds the 4-node degenerate-shell representation of one mesh
// quadrilateral: mid-surface coordinates and nodal directors. Instances
// are immutable after construction
type Element struct {
	C [][]float64 // [4][3] mid-surface nodal coordinates
	V [][]float64 // [4][3] director vectors; magnitude == half thickness
}

// NewElement returns a new Element
//  coords  -- [4][3] mid-surface nodal coordinates, node order (-1,-1),(1,-1),(1,1),(-1,1)
//  normals -- [4][3] director vectors, one per node, scaled to half the nodal thickness
func NewElement(coords, normals [][]float64) (o *Element, err error) {
	if len(coords) != 4 {
		return nil, chk.Err("shell.NewElement: coords must have 4 rows; got %d", len(coords))
	}
	if len(normals) != len(coords) {
		return nil, chk.Err("shell.NewElement: normals must have the same shape as coords; got %d rows instead of %d", len(normals), len(coords))
	}
	for i := 0; i < 4; i++ {
		if len(coords[i]) != 3 {
			return nil, chk.Err("shell.NewElement: coords must have 3 columns; row %d has %d", i, len(coords[i]))
		}
		if len(normals[i]) != 3 {
			return nil, chk.Err("shell.NewElement: normals must have 3 columns; row %d has %d", i, len(normals[i]))
		}
	}
	o = &Element{C: la.MatClone(coords), V: la.MatClone(normals)}
	return
}

// Nnodes returns the number of nodes
func (o *Element) Nnodes() int {
	return len(o.C)
}

// ThicknessAtNodes returns the physical shell thickness at each node,
// measured from the director field (twice the director magnitude)
func (o *Element) ThicknessAtNodes() (t []float64) {
	t = make([]float64, len(o.V))
	for i, v := range o.V {
		t[i] = 2.0 * la.VecNorm(v)
	}
	return
}

// Dirs returns the unit directors (local e3 axes) at each node [4][3]
func (o *Element) Dirs() (v3 [][]float64) {
	v3 = la.MatAlloc(len(o.V), 3)
	for i, v := range o.V {
		nrm := la.VecNorm(v)
		for j := 0; j < 3; j++ {
			v3[i][j] = v[j] / nrm
		}
	}
	return
}

// Triads computes the per-node local orthonormal triads [4][3][3]:
// column 0 holds e1, column 1 holds e2 and column 2 holds the unit
// director e3. The first two columns form the 3×2 in-plane basis used
// by the B operator. The recipe is:
//  1. V1 = η-derivative-weighted combination of coords @ each corner
//  2. e2 = V1 normalized
//  3. e3 = unit director
//  4. e1 = -normalize(e3 × e2)
//  5. e2 = e3 × e1 (orthonormal completion)
// Degenerate geometry (V1 collinear with the director) is not checked
func (o *Element) Triads() (mu [][][]float64, err error) {
	return NodalTriads("q4", o.C, o.V)
}

// NodalTriads computes the per-node triads of an arbitrary registered shell
// geometry. xyz holds the mid-surface coordinates and dirs the directors,
// both with one row per node
func NodalTriads(geoType string, xyz, dirs [][]float64) (mu [][][]float64, err error) {

	s, err := shp.Get(geoType)
	if err != nil {
		return
	}
	nverts := s.Nverts
	if len(xyz) != nverts || len(dirs) != nverts {
		return nil, chk.Err("shell.NodalTriads: %q needs %d coordinate and director rows; got %d and %d", geoType, nverts, len(xyz), len(dirs))
	}

	mu = make([][][]float64, nverts)
	S := make([]float64, nverts)
	dSdR := la.MatAlloc(nverts, 2)
	v1 := make([]float64, 3)
	e1 := make([]float64, 3)
	e2 := make([]float64, 3)
	e3 := make([]float64, 3)
	for i := 0; i < nverts; i++ {

		// first tangent from geometry @ nodal natural coordinates
		r := []float64{s.NatCoords[0][i], s.NatCoords[1][i]}
		s.Func(S, dSdR, r, true)
		for j := 0; j < 3; j++ {
			v1[j] = 0
			for m := 0; m < nverts; m++ {
				v1[j] += dSdR[m][1] * xyz[m][j]
			}
		}

		// e2: normalized tangent
		nrm := la.VecNorm(v1)
		for j := 0; j < 3; j++ {
			e2[j] = v1[j] / nrm
		}

		// e3: unit director
		nrm = la.VecNorm(dirs[i])
		for j := 0; j < 3; j++ {
			e3[j] = dirs[i][j] / nrm
		}

		// e1 = -normalize(e3 × e2)
		cross(e1, e3, e2)
		nrm = la.VecNorm(e1)
		for j := 0; j < 3; j++ {
			e1[j] = -e1[j] / nrm
		}

		// e2 = e3 × e1 so the triad stays orthonormal when the director
		// is not perpendicular to the tangent
		cross(e2, e3, e1)

		mu[i] = la.MatAlloc(3, 3)
		for j := 0; j < 3; j++ {
			mu[i][j][0] = e1[j]
			mu[i][j][1] = e2[j]
			mu[i][j][2] = e3[j]
		}
	}
	return
}

// MuMatrix returns the per-node 3×2 in-plane bases {e1,e2} orthogonal to
// the unit director, i.e. the first two columns of Triads
func (o *Element) MuMatrix() (mu [][][]float64, err error) {
	tri, err := o.Triads()
	if err != nil {
		return
	}
	mu = make([][][]float64, 4)
	for i := 0; i < 4; i++ {
		mu[i] = la.MatAlloc(3, 2)
		for j := 0; j < 3; j++ {
			mu[i][j][0] = tri[i][j][0]
			mu[i][j][1] = tri[i][j][1]
		}
	}
	return
}

// cross computes w = u × v (3 components)
func cross(w, u, v []float64) {
	w[0] = u[1]*v[2] - u[2]*v[1]
	w[1] = u[2]*v[0] - u[0]*v[2]
	w[2] = u[0]*v[1] - u[1]*v[0]
}
