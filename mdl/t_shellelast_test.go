// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
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

func Test_shellelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shellelast01. constitutive matrix")

	m, err := New("shell-elast")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	prms := dbf.Params{
		&dbf.P{N: "E", V: 210e9},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "rho", V: 7850},
	}
	err = m.Init(prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "rho", 1e-15, m.GetRho(), 7850)

	D := la.MatAlloc(5, 5)
	err = m.CalcD(D)
	if err != nil {
		tst.Errorf("CalcD failed: %v\n", err)
		return
	}

	q := 210e9 / (1.0 - 0.09)
	g := 210e9 / 2.6
	chk.Matrix(tst, "D", 1e-6, D, [][]float64{
		{q, 0.3 * q, 0, 0, 0},
		{0.3 * q, q, 0, 0, 0},
		{0, 0, g, 0, 0},
		{0, 0, 0, 5.0 / 6.0 * g, 0},
		{0, 0, 0, 0, 5.0 / 6.0 * g},
	})
}

func Test_shellelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shellelast02. parameter validation")

	// unknown model
	_, err := New("mooney-rivlin")
	if err == nil {
		tst.Errorf("New should have failed for unknown model\n")
		return
	}

	// bad parameters
	for _, prms := range []dbf.Params{
		{&dbf.P{N: "E", V: -1}, &dbf.P{N: "nu", V: 0.3}},
		{&dbf.P{N: "E", V: 1e6}, &dbf.P{N: "nu", V: 0.5}},
		{&dbf.P{N: "E", V: 1e6}, &dbf.P{N: "nu", V: 0.3}, &dbf.P{N: "kap", V: 0}},
	} {
		var m ShellElast
		err = m.Init(prms)
		if err == nil {
			tst.Errorf("Init should have failed for prms = %v\n", prms)
			return
		}
		io.Pforan("err = %v\n", err)
	}
}
