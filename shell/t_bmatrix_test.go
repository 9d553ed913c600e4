// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// flatGrid returns nodal data of a flat square element of the given kind
// lying in the xy-plane, side 2, with unit z directors
func flatGrid(geoType string, thick float64) (xyz [][]float64, t []float64, v [][][]float64) {
	nat := map[string][][]float64{
		"q4": {
			{-1, 1, 1, -1},
			{-1, -1, 1, 1},
		},
		"q8": {
			{-1, 1, 1, -1, 0, 1, 0, -1},
			{-1, -1, 1, 1, -1, 0, 1, 0},
		},
		"q9": {
			{-1, 1, 1, -1, 0, 1, 0, -1, 0},
			{-1, -1, 1, 1, -1, 0, 1, 0, 0},
		},
	}[geoType]
	n := len(nat[0])
	xyz = la.MatAlloc(n, 3)
	t = make([]float64, n)
	v = make([][][]float64, n)
	for i := 0; i < n; i++ {
		xyz[i][0] = nat[0][i]
		xyz[i][1] = nat[1][i]
		t[i] = thick
		v[i] = [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	}
	return
}

func Test_bmat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bmat01. shape of B for all kinds")

	for _, geo := range []string{"q4", "q8", "q9"} {
		for _, ndofn := range []int{5, 6} {
			xyz, t, v := flatGrid(geo, 0.1)
			n := len(xyz)
			B := la.MatAlloc(6, n*ndofn)
			err := Bmatrix(B, geo, ndofn, xyz, t, v, 0.25, -0.4, 0.5)
			if err != nil {
				tst.Errorf("Bmatrix failed: %v\n", err)
				return
			}
			chk.IntAssert(len(B), 6)
			chk.IntAssert(len(B[0]), n*ndofn)

			// the 6th dof (drilling) is never populated by this kernel
			if ndofn == 6 {
				for m := 0; m < n; m++ {
					for i := 0; i < 6; i++ {
						chk.Scalar(tst, io.Sf("%s B[%d][drill@%d]", geo, i, m), 1e-17, B[i][m*ndofn+5], 0)
					}
				}
			}
		}
	}

	// bad inputs
	xyz, t, v := flatGrid("q4", 0.1)
	B := la.MatAlloc(6, 20)
	if err := Bmatrix(B, "tri6", 5, xyz, t, v, 0, 0, 0); err == nil {
		tst.Errorf("Bmatrix should have failed for unknown kind\n")
		return
	}
	if err := Bmatrix(B, "q4", 4, xyz, t, v, 0, 0, 0); err == nil {
		tst.Errorf("Bmatrix should have failed for ndofn < 5\n")
		return
	}
	if err := Bmatrix(la.MatAlloc(6, 7), "q4", 5, xyz, t, v, 0, 0, 0); err == nil {
		tst.Errorf("Bmatrix should have failed for wrongly sized B\n")
		return
	}
}

func Test_bmat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bmat02. rigid translation produces no strain")

	// warped geometry; translation along (1,1,1), zero rotations
	e := warpedQuad()
	t := e.ThicknessAtNodes()
	tri, err := e.Triads()
	if err != nil {
		tst.Errorf("Triads failed: %v\n", err)
		return
	}

	ndofn := 5
	B := la.MatAlloc(6, 4*ndofn)
	ue := make([]float64, 4*ndofn)
	for m := 0; m < 4; m++ {
		ue[m*ndofn+0] = 1
		ue[m*ndofn+1] = 1
		ue[m*ndofn+2] = 1
	}

	eps := make([]float64, 6)
	for _, r := range [][]float64{{0, 0, 0}, {0.5, -0.5, 0.7}, {-0.9, 0.2, -1}} {
		err = Bmatrix(B, "q4", ndofn, e.C, t, tri, r[0], r[1], r[2])
		if err != nil {
			tst.Errorf("Bmatrix failed: %v\n", err)
			return
		}
		la.MatVecMul(eps, 1, B, ue)
		chk.Vector(tst, io.Sf("ε @ %v", r), 1e-13, eps, []float64{0, 0, 0, 0, 0, 0})
	}
}

func Test_bmat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bmat03. constant-strain field is reproduced")

	// flat element, constant directors: nodal translations from a linear
	// displacement field u = A·x̄ (third column of A zero) must give the
	// symmetrized gradient of A at every evaluation point
	A := [][]float64{
		{0.002, 0.001, 0},
		{-0.003, 0.004, 0},
		{0.005, -0.002, 0},
	}
	want := []float64{
		A[0][0], A[1][1], 0,
		A[0][1] + A[1][0],
		A[1][2] + A[2][1],
		A[2][0] + A[0][2],
	}

	for _, geo := range []string{"q4", "q8", "q9"} {
		xyz, t, v := flatGrid(geo, 0.1)
		n := len(xyz)
		ndofn := 5
		ue := make([]float64, n*ndofn)
		for m := 0; m < n; m++ {
			for k := 0; k < 3; k++ {
				ue[m*ndofn+k] = A[k][0]*xyz[m][0] + A[k][1]*xyz[m][1] + A[k][2]*xyz[m][2]
			}
		}

		B := la.MatAlloc(6, n*ndofn)
		eps := make([]float64, 6)
		for _, r := range [][]float64{{0, 0, 0}, {0.3, 0.8, 0.5}, {-0.7, 0.1, -0.9}} {
			err := Bmatrix(B, geo, ndofn, xyz, t, v, r[0], r[1], r[2])
			if err != nil {
				tst.Errorf("Bmatrix failed: %v\n", err)
				return
			}
			la.MatVecMul(eps, 1, B, ue)
			chk.Vector(tst, io.Sf("%s ε @ %v", geo, r), 1e-13, eps, want)
		}
	}
}
