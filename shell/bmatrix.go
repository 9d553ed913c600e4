// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"github.com/zhysh966/piezo-fem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Bmatrix fills the 6×(nverts·ndofn) strain-displacement operator of a
// degenerated shell element at natural coordinates (ξ,η,ζ). Strain
// components are ordered (εxx, εyy, εzz, γxy, γyz, γzx).
//
//  B       -- [6][nverts*ndofn] pre-allocated output
//  geoType -- element kind: "q4", "q8" or "q9"
//  ndofn   -- dofs per node (≥ 5); columns beyond the 5th are left zero
//  xyz     -- [nverts][3] mid-surface nodal coordinates
//  t       -- [nverts] physical shell thickness at each node
//  v       -- [nverts] per-node triads: v[m] is 3×2 (or wider) with
//             columns e1, e2 of the local in-plane basis
//
// Each nodal column block is [translations | rotations]: the 3
// translational columns carry the classical isoparametric solid B-block
// built from the inverse-Jacobian-mapped gradients of N; the 2
// rotational columns carry the gradient of N·ζ combined with the local
// tangent axes and scaled by half the nodal thickness
func Bmatrix(B [][]float64, geoType string, ndofn int, xyz [][]float64, t []float64, v [][][]float64, ξ, η, ζ float64) (err error) {

	// shape functions and derivatives
	s, err := shp.Get(geoType)
	if err != nil {
		return
	}
	if ndofn < 5 {
		return chk.Err("shell.Bmatrix: ndofn must be at least 5 (3 translations + 2 rotations); got %d", ndofn)
	}
	if len(B) != 6 || len(B[0]) != s.Nverts*ndofn {
		return chk.Err("shell.Bmatrix: B must be 6×%d; got %d×%d", s.Nverts*ndofn, len(B), len(B[0]))
	}
	if len(v) != s.Nverts {
		return chk.Err("shell.Bmatrix: v must hold %d triads; got %d", s.Nverts, len(v))
	}
	err = shp.CheckRange([]float64{ξ, η, ζ})
	if err != nil {
		return
	}
	S := make([]float64, s.Nverts)
	dSdR := la.MatAlloc(s.Nverts, 2)
	s.Func(S, dSdR, []float64{ξ, η}, true)

	// Jacobian and its inverse
	jac, err := ShellJac(geoType, xyz, t, dirsFromTriads(v), ξ, η, ζ)
	if err != nil {
		return
	}
	ijac, _, err := InvJacobian(jac)
	if err != nil {
		return
	}

	la.MatFill(B, 0)
	g := make([]float64, 3)  // dN/dx
	gz := make([]float64, 3) // d(N·ζ)/dx
	d := make([]float64, 3)  // displacement direction of one dof
	for m := 0; m < s.Nverts; m++ {

		// gradients mapped to physical space
		for j := 0; j < 3; j++ {
			g[j] = ijac[j][0]*dSdR[m][0] + ijac[j][1]*dSdR[m][1]
			gz[j] = ζ*g[j] + S[m]*ijac[j][2]
		}

		// translational block: unit directions along x,y,z
		c := m * ndofn
		for k := 0; k < 3; k++ {
			d[0], d[1], d[2] = 0, 0, 0
			d[k] = 1
			setBcolumn(B, c+k, g, d)
		}

		// rotational block: rotation about e1 moves through -e2, rotation
		// about e2 moves through +e1; both scaled by half thickness
		half := t[m] / 2.0
		for j := 0; j < 3; j++ {
			d[j] = -half * v[m][j][1]
		}
		setBcolumn(B, c+3, gz, d)
		for j := 0; j < 3; j++ {
			d[j] = half * v[m][j][0]
		}
		setBcolumn(B, c+4, gz, d)
	}
	return
}

// setBcolumn fills one column of B given the gradient g of the scalar
// interpolation field and the displacement direction d of the dof
func setBcolumn(B [][]float64, col int, g, d []float64) {
	B[0][col] = g[0] * d[0]
	B[1][col] = g[1] * d[1]
	B[2][col] = g[2] * d[2]
	B[3][col] = g[0]*d[1] + g[1]*d[0]
	B[4][col] = g[1]*d[2] + g[2]*d[1]
	B[5][col] = g[2]*d[0] + g[0]*d[2]
}

// dirsFromTriads extracts the unit directors (third triad column) or
// rebuilds them from e1 × e2 when the triads are stored 3×2
func dirsFromTriads(v [][][]float64) (v3 [][]float64) {
	v3 = la.MatAlloc(len(v), 3)
	e1 := make([]float64, 3)
	e2 := make([]float64, 3)
	for m := 0; m < len(v); m++ {
		if len(v[m][0]) > 2 {
			for j := 0; j < 3; j++ {
				v3[m][j] = v[m][j][2]
			}
			continue
		}
		for j := 0; j < 3; j++ {
			e1[j] = v[m][j][0]
			e2[j] = v[m][j][1]
		}
		cross(v3[m], e1, e2)
	}
	return
}
