// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"github.com/zhysh966/piezo-fem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for the shell Jacobian

// Jacobian computes the 3×3 isoparametric Jacobian of this (flat q4)
// element at natural coordinates (ξ,η,ζ). The position field is
//  x(ξ,η,ζ) = Σ_m N_m(ξ,η) · (C_m + ζ·V_m)
// so rows 0,1 are the in-plane parametric derivatives of x and row 2 is
// the through-thickness rate Σ N_m·V_m
func (o *Element) Jacobian(ξ, η, ζ float64) (jac [][]float64, err error) {

	q4, err := shp.Get("q4")
	if err != nil {
		return
	}
	err = shp.CheckRange([]float64{ξ, η, ζ})
	if err != nil {
		return
	}

	// evaluate on local buffers; Element methods are pure and share no state
	S := make([]float64, 4)
	dSdR := la.MatAlloc(4, 2)
	q4.Func(S, dSdR, []float64{ξ, η}, true)

	jac = la.MatAlloc(3, 3)
	for j := 0; j < 3; j++ {
		for m := 0; m < 4; m++ {
			x := o.C[m][j] + ζ*o.V[m][j]
			jac[0][j] += dSdR[m][0] * x
			jac[1][j] += dSdR[m][1] * x
			jac[2][j] += S[m] * o.V[m][j]
		}
	}
	return
}

// ShellJac computes the 3×3 Jacobian of a degenerated shell element of
// any supported kind at natural coordinates (ξ,η,ζ)
//  geoType -- element kind: "q4", "q8" or "q9"
//  xyz     -- [nverts][3] mid-surface nodal coordinates
//  t       -- [nverts] physical shell thickness at each node
//  v3      -- [nverts][3] unit directors at each node
// It must agree with Element.Jacobian for q4 input with t = 2‖V‖ and
// v3 = V/‖V‖ (verified by tests)
func ShellJac(geoType string, xyz [][]float64, t []float64, v3 [][]float64, ξ, η, ζ float64) (jac [][]float64, err error) {

	s, err := shp.Get(geoType)
	if err != nil {
		return
	}
	if len(xyz) != s.Nverts || len(t) != s.Nverts || len(v3) != s.Nverts {
		return nil, chk.Err("shell.ShellJac: %q needs %d nodes; got len(xyz)=%d len(t)=%d len(v3)=%d",
			geoType, s.Nverts, len(xyz), len(t), len(v3))
	}
	err = shp.CheckRange([]float64{ξ, η, ζ})
	if err != nil {
		return
	}

	S := make([]float64, s.Nverts)
	dSdR := la.MatAlloc(s.Nverts, 2)
	s.Func(S, dSdR, []float64{ξ, η}, true)

	jac = la.MatAlloc(3, 3)
	for j := 0; j < 3; j++ {
		for m := 0; m < s.Nverts; m++ {
			h := t[m] * v3[m][j] / 2.0 // half-thickness director component
			x := xyz[m][j] + ζ*h
			jac[0][j] += dSdR[m][0] * x
			jac[1][j] += dSdR[m][1] * x
			jac[2][j] += S[m] * h
		}
	}
	return
}

// InvJacobian inverts a 3×3 shell Jacobian. A determinant smaller than
// MINDET signals degenerate or inverted element geometry and yields an
// error; no attempt is made to recover
func InvJacobian(jac [][]float64) (inv [][]float64, det float64, err error) {
	inv = la.MatAlloc(3, 3)
	det, err = la.MatInv(inv, jac, MINDET)
	return
}
