// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func Test_tmat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tmat01. identity jacobian")

	T := la.MatAlloc(5, 6)
	jac := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	err := Tmatrix(T, jac)
	if err != nil {
		tst.Errorf("Tmatrix failed: %v\n", err)
		return
	}
	chk.IntAssert(len(T), 5)
	chk.IntAssert(len(T[0]), 6)

	// aligned local basis: strains pass through, εzz row is gone
	chk.Matrix(tst, "T", 1e-15, T, [][]float64{
		{1, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 1},
	})

	// scaling the rows must not change T (directions are normalized)
	jac = [][]float64{{7, 0, 0}, {0, 0.2, 0}, {0, 0, 13}}
	err = Tmatrix(T, jac)
	if err != nil {
		tst.Errorf("Tmatrix failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "T00", 1e-15, T[0][0], 1.0)
	chk.Scalar(tst, "T11", 1e-15, T[1][1], 1.0)
}

func Test_tmat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tmat02. rotation consistency with tensor transformation")

	// local basis = rotation about z by θ
	θ := 0.3
	c, s := math.Cos(θ), math.Sin(θ)
	jac := [][]float64{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
	T := la.MatAlloc(5, 6)
	err := Tmatrix(T, jac)
	if err != nil {
		tst.Errorf("Tmatrix failed: %v\n", err)
		return
	}

	// a[i][j] = direction cosines of local axes
	a := [][]float64{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}

	// arbitrary strain tensor (engineering shear = 2·tensor shear)
	ε := [][]float64{
		{0.001, 0.0005, -0.0002},
		{0.0005, -0.003, 0.0008},
		{-0.0002, 0.0008, 0.002},
	}
	εv := []float64{ε[0][0], ε[1][1], ε[2][2], 2 * ε[0][1], 2 * ε[1][2], 2 * ε[2][0]}

	// ε' = a·ε·aᵀ = trans(aᵀ)·ε·aᵀ
	at := la.MatAlloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			at[i][j] = a[j][i]
		}
	}
	εl := la.MatAlloc(3, 3)
	la.MatTrMul3(εl, 1, at, ε, at)

	// rows of T·εv are (ε'11, ε'22, γ'12, γ'23, γ'31)
	got := make([]float64, 5)
	la.MatVecMul(got, 1, T, εv)
	want := []float64{εl[0][0], εl[1][1], 2 * εl[0][1], 2 * εl[1][2], 2 * εl[2][0]}
	io.Pforan("T·ε = %v\n", got)
	chk.Vector(tst, "T·ε", 1e-15, got, want)
}

func Test_tmat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tmat03. checks")

	// wrong shapes
	err := Tmatrix(la.MatAlloc(6, 6), la.MatAlloc(3, 3))
	if err == nil {
		tst.Errorf("Tmatrix should have failed for 6×6 output\n")
		return
	}
	err = Tmatrix(la.MatAlloc(5, 6), la.MatAlloc(2, 2))
	if err == nil {
		tst.Errorf("Tmatrix should have failed for 2×2 jacobian\n")
		return
	}

	// collinear jacobian rows
	err = Tmatrix(la.MatAlloc(5, 6), [][]float64{{1, 0, 0}, {2, 0, 0}, {0, 0, 1}})
	if err == nil {
		tst.Errorf("Tmatrix should have failed for collinear rows\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
