// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/zhysh966/piezo-fem/fem"
	"github.com/zhysh966/piezo-fem/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func solvedCase(tst *testing.T) (*fem.FemCase, []float64) {
	io.WriteStringToFileD("/tmp/piezofem/out", "steel.mat", `{ "materials" : [
	  { "name":"steel", "model":"shell-elast", "prms":[
	    { "n":"E", "v":210e9 }, { "n":"nu", "v":0.3 }, { "n":"rho", "v":7850 } ] } ] }`)
	mdb, err := inp.ReadMat("/tmp/piezofem/out", "steel.mat")
	require.NoError(tst, err)
	msh, err := inp.RectShellMesh(1, 1, 2, 2, 0.1)
	require.NoError(tst, err)
	fc, err := fem.NewFemCase(msh, mdb, "steel", 0)
	require.NoError(tst, err)
	require.NoError(tst, fc.SetSupport(-1, 0, 1, 2, 3, 4))
	require.NoError(tst, fc.SetPointLoad(8, 2, -100))
	u, err := fc.SolveStatic()
	require.NoError(tst, err)
	return fc, u
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. xlsx nodal table")

	fc, u := solvedCase(tst)
	fn := "/tmp/piezofem/out/results01.xlsx"
	err := WriteXlsxResults(fn, fc, u)
	require.NoError(tst, err)

	// reopen and check table
	f, err := excelize.OpenFile(fn)
	require.NoError(tst, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(tst, err)
	chk.IntAssert(len(rows), 1+len(fc.Msh.Verts))
	assert.Equal(tst, []string{"vert", "x", "y", "z", "ux", "uy", "uz", "ra", "rb"}, rows[0])
	assert.Equal(tst, "0", rows[1][0])
}

func Test_report02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report02. pdf summary")

	fc, u := solvedCase(tst)
	fn := "/tmp/piezofem/out/summary01.pdf"
	err := WritePdfSummary(fn, fc, u)
	require.NoError(tst, err)

	b, err := io.ReadFile(fn)
	require.NoError(tst, err)
	assert.Greater(tst, len(b), 100)
	assert.Equal(tst, "%PDF", string(b[:4]))
}

func Test_report03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report03. invalid arguments trigger errors")

	fc, u := solvedCase(tst)
	assert.Error(tst, WriteXlsxResults("/tmp/piezofem/out/x.xlsx", nil, u))
	assert.Error(tst, WriteXlsxResults("/tmp/piezofem/out/x.xlsx", fc, u[:3]))
	assert.Error(tst, WritePdfSummary("/tmp/piezofem/out/x.pdf", nil, u))
	assert.Error(tst, WritePdfSummary("/tmp/piezofem/out/x.pdf", fc, u[:3]))
}
