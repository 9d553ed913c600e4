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

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// unitSquare returns a flat unit-square element with directors = ±z
// scaled to half the given thickness
func unitSquare(thickness float64) *Element {
	h := thickness / 2.0
	coords := [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
	normals := [][]float64{
		{0, 0, h},
		{0, 0, h},
		{0, 0, h},
		{0, 0, h},
	}
	e, err := NewElement(coords, normals)
	if err != nil {
		chk.Panic("cannot allocate test element: %v", err)
	}
	return e
}

// warpedQuad returns a non-flat quadrilateral with tilted directors
func warpedQuad() *Element {
	coords := [][]float64{
		{0, 0, 0},
		{1.2, 0.1, 0.05},
		{1.1, 1.0, -0.1},
		{-0.1, 0.9, 0.08},
	}
	normals := la.MatAlloc(4, 3)
	dirs := [][]float64{
		{0.05, 0.02, 1.0},
		{-0.03, 0.01, 0.99},
		{0.02, -0.04, 1.01},
		{0.0, 0.05, 0.98},
	}
	for i := 0; i < 4; i++ {
		nrm := la.VecNorm(dirs[i])
		for j := 0; j < 3; j++ {
			normals[i][j] = 0.05 * dirs[i][j] / nrm
		}
	}
	e, err := NewElement(coords, normals)
	if err != nil {
		chk.Panic("cannot allocate test element: %v", err)
	}
	return e
}

func Test_elem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elem01. construction checks")

	// wrong node count
	_, err := NewElement([][]float64{{0, 0, 0}}, [][]float64{{0, 0, 1}})
	if err == nil {
		tst.Errorf("NewElement should have failed with 1 node\n")
		return
	}
	io.Pforan("err = %v\n", err)

	// shape mismatch
	coords := [][]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	_, err = NewElement(coords, coords[:3])
	if err == nil {
		tst.Errorf("NewElement should have failed with mismatched shapes\n")
		return
	}

	// wrong column count
	_, err = NewElement([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][]float64{{0, 0}, {0, 0}, {0, 0}, {0, 0}})
	if err == nil {
		tst.Errorf("NewElement should have failed with 2 columns\n")
		return
	}

	// ok
	e := unitSquare(0.1)
	chk.IntAssert(e.Nnodes(), 4)

	// immutability: constructor must copy its input
	coords[0][0] = 123
	chk.Scalar(tst, "C[0][0]", 1e-17, e.C[0][0], 0)
}

func Test_elem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elem02. thickness from director field")

	e := unitSquare(0.1)
	t := e.ThicknessAtNodes()
	chk.Vector(tst, "t", 1e-15, t, []float64{0.1, 0.1, 0.1, 0.1})

	e = warpedQuad()
	t = e.ThicknessAtNodes()
	chk.Vector(tst, "t", 1e-15, t, []float64{0.1, 0.1, 0.1, 0.1})

	v3 := e.Dirs()
	for i := 0; i < 4; i++ {
		chk.Scalar(tst, io.Sf("‖v3[%d]‖", i), 1e-14, la.VecNorm(v3[i]), 1.0)
	}
}

func Test_elem03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elem03. triad orthonormality")

	for name, e := range map[string]*Element{"flat": unitSquare(0.1), "warped": warpedQuad()} {
		tri, err := e.Triads()
		if err != nil {
			tst.Errorf("Triads failed: %v\n", err)
			return
		}
		for i := 0; i < 4; i++ {
			for a := 0; a < 3; a++ {
				for b := a; b < 3; b++ {
					dot := 0.0
					for j := 0; j < 3; j++ {
						dot += tri[i][j][a] * tri[i][j][b]
					}
					want := 0.0
					if a == b {
						want = 1.0
					}
					if math.Abs(dot-want) > 1e-10 {
						tst.Errorf("%s: triad %d: e%d·e%d = %v\n", name, i, a+1, b+1, dot)
						return
					}
				}
			}
		}
	}

	// flat element with z-directors: e3 = z, e2 = y, e1 = x
	e := unitSquare(0.1)
	tri, _ := e.Triads()
	for i := 0; i < 4; i++ {
		chk.Vector(tst, io.Sf("e1[%d]", i), 1e-14, []float64{tri[i][0][0], tri[i][1][0], tri[i][2][0]}, []float64{1, 0, 0})
		chk.Vector(tst, io.Sf("e2[%d]", i), 1e-14, []float64{tri[i][0][1], tri[i][1][1], tri[i][2][1]}, []float64{0, 1, 0})
		chk.Vector(tst, io.Sf("e3[%d]", i), 1e-14, []float64{tri[i][0][2], tri[i][1][2], tri[i][2][2]}, []float64{0, 0, 1})
	}

	// 3×2 in-plane basis
	mu, err := e.MuMatrix()
	if err != nil {
		tst.Errorf("MuMatrix failed: %v\n", err)
		return
	}
	for i := 0; i < 4; i++ {
		chk.Matrix(tst, io.Sf("mu[%d]", i), 1e-14, mu[i], [][]float64{{1, 0}, {0, 1}, {0, 0}})
	}
}
