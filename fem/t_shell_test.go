// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"testing"

	"github.com/zhysh966/piezo-fem/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

const mat_steel = `{ "materials" : [
  { "name":"steel", "model":"shell-elast", "prms":[
    { "n":"E",   "v":210e9 },
    { "n":"nu",  "v":0.3   },
    { "n":"rho", "v":7850  }
  ] }
] }`

func steelDb(tst *testing.T) *inp.MatDb {
	io.WriteStringToFileD("/tmp/piezofem/fem", "steel.mat", mat_steel)
	mdb, err := inp.ReadMat("/tmp/piezofem/fem", "steel.mat")
	require.NoError(tst, err)
	return mdb
}

func Test_shell01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell01. element stiffness: shape and symmetry")

	msh, err := inp.RectShellMesh(1, 1, 1, 1, 0.1)
	require.NoError(tst, err)
	mdb := steelDb(tst)

	e, err := NewShellElem(msh, 0, mdb.Get("steel").Mdl, 0)
	require.NoError(tst, err)
	chk.IntAssert(e.Nu, 20)
	chk.IntAssert(len(e.IpsElem), 4)
	chk.IntAssert(len(e.IpsThick), 2)

	err = e.Stiffness()
	require.NoError(tst, err)

	// symmetry
	maxK := 0.0
	for i := 0; i < e.Nu; i++ {
		for j := 0; j < e.Nu; j++ {
			maxK = math.Max(maxK, math.Abs(e.K[i][j]))
		}
	}
	assert.Greater(tst, maxK, 0.0)
	for i := 0; i < e.Nu; i++ {
		for j := i + 1; j < e.Nu; j++ {
			assert.InDelta(tst, e.K[i][j], e.K[j][i], 1e-9*maxK)
		}
	}
}

func Test_shell02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell02. rigid translation in the stiffness nullspace")

	msh, err := inp.RectShellMesh(1, 1, 1, 1, 0.1)
	require.NoError(tst, err)
	mdb := steelDb(tst)
	e, err := NewShellElem(msh, 0, mdb.Get("steel").Mdl, 0)
	require.NoError(tst, err)
	err = e.Stiffness()
	require.NoError(tst, err)

	maxK := 0.0
	for i := 0; i < e.Nu; i++ {
		for j := 0; j < e.Nu; j++ {
			maxK = math.Max(maxK, math.Abs(e.K[i][j]))
		}
	}

	// rigid translation: unit displacement on all translational dofs
	u := make([]float64, e.Nu)
	for m := 0; m < 4; m++ {
		u[m*Ndofn+0] = 1
		u[m*Ndofn+1] = 1
		u[m*Ndofn+2] = 1
	}
	res := make([]float64, e.Nu)
	la.MatVecMul(res, 1, e.K, u)
	for i := 0; i < e.Nu; i++ {
		assert.InDelta(tst, 0.0, res[i], 1e-9*maxK)
	}
}

func Test_shell03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell03. consistent mass: total mass recovery")

	msh, err := inp.RectShellMesh(1, 1, 1, 1, 0.1)
	require.NoError(tst, err)
	mdb := steelDb(tst)
	e, err := NewShellElem(msh, 0, mdb.Get("steel").Mdl, 0)
	require.NoError(tst, err)
	err = e.Mass()
	require.NoError(tst, err)

	// sum of all x-translation entries equals rho * volume
	totmass := 7850.0 * 1.0 * 1.0 * 0.1
	for d := 0; d < 3; d++ {
		sum := 0.0
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				sum += e.M[i*Ndofn+d][j*Ndofn+d]
			}
		}
		chk.Scalar(tst, io.Sf("mass sum, dof %d", d), 1e-9, sum, totmass)
	}

	// rotational dofs are massless
	for i := 0; i < e.Nu; i++ {
		for m := 0; m < 4; m++ {
			chk.Scalar(tst, "rot row", 1e-17, e.M[m*Ndofn+3][i], 0)
			chk.Scalar(tst, "rot row", 1e-17, e.M[m*Ndofn+4][i], 0)
		}
	}
}

func Test_shell04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell04. cantilever plate: static solution")

	// 2.0 x 1.0 plate clamped at x=0, transverse load at right mid-edge
	msh, err := inp.RectShellMesh(2, 1, 4, 2, 0.1)
	require.NoError(tst, err)
	mdb := steelDb(tst)
	fc, err := NewFemCase(msh, mdb, "steel", 0)
	require.NoError(tst, err)
	chk.IntAssert(fc.Neq, 75)
	chk.IntAssert(len(fc.Elems), 8)

	err = fc.SetSupport(-1, 0, 1, 2, 3, 4)
	require.NoError(tst, err)
	err = fc.SetPointLoad(9, 2, -1000)
	require.NoError(tst, err)

	u, err := fc.SolveStatic()
	require.NoError(tst, err)
	chk.IntAssert(len(u), 75)

	// clamped edge stays put
	for _, v := range msh.VertTag2verts[-1] {
		for d := 0; d < Ndofn; d++ {
			chk.Scalar(tst, "clamped dof", 1e-17, u[v.Id*Ndofn+d], 0)
		}
	}

	// loaded vertex moves with the load
	uz := u[9*Ndofn+2]
	assert.Less(tst, uz, 0.0)
	assert.False(tst, math.IsNaN(uz) || math.IsInf(uz, 0))

	// geometric symmetry about y=0.5: corner tips deflect equally
	uzA := u[4*Ndofn+2]
	uzB := u[14*Ndofn+2]
	assert.InDelta(tst, uzA, uzB, 1e-9*math.Abs(uz))

	// tip deflects no less than the corners
	assert.LessOrEqual(tst, uz, uzA)
}

func Test_shell05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell05. clamped plate: modal frequencies")

	msh, err := inp.RectShellMesh(1, 1, 2, 2, 0.1)
	require.NoError(tst, err)
	mdb := steelDb(tst)
	fc, err := NewFemCase(msh, mdb, "steel", 0)
	require.NoError(tst, err)
	err = fc.SetSupport(-1, 0, 1, 2, 3, 4)
	require.NoError(tst, err)

	ws, err := fc.Modal(4)
	require.NoError(tst, err)
	assert.LessOrEqual(tst, len(ws), 4)
	assert.Greater(tst, len(ws), 0)
	for i, w := range ws {
		assert.Greater(tst, w, 0.0)
		if i > 0 {
			assert.GreaterOrEqual(tst, w, ws[i-1])
		}
	}

	// 6 free vertices carry mass on translations only: at most 18 modes
	// survive the massless-mode cut, no matter how many are requested
	ws, err = fc.Modal(1000)
	require.NoError(tst, err)
	assert.LessOrEqual(tst, len(ws), 18)
}

func Test_shell06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell06. load multipliers scale the solution linearly")

	msh, err := inp.RectShellMesh(1, 1, 2, 1, 0.1)
	require.NoError(tst, err)
	mdb := steelDb(tst)

	fcA, err := NewFemCase(msh, mdb, "steel", 0)
	require.NoError(tst, err)
	require.NoError(tst, fcA.SetSupport(-1, 0, 1, 2, 3, 4))
	require.NoError(tst, fcA.SetPointLoad(5, 2, -500))
	uA, err := fcA.SolveStatic()
	require.NoError(tst, err)

	fcB, err := NewFemCase(msh, mdb, "steel", 0)
	require.NoError(tst, err)
	require.NoError(tst, fcB.SetSupport(-1, 0, 1, 2, 3, 4))
	require.NoError(tst, fcB.SetPointLoadMult(5, 2, -500, &dbf.Cte{C: 2}))
	uB, err := fcB.SolveStaticAt(0.7)
	require.NoError(tst, err)

	// constant multiplier 2 doubles every component at any pseudo-time
	umax := 0.0
	for _, val := range uA {
		umax = math.Max(umax, math.Abs(val))
	}
	for i := range uA {
		assert.InDelta(tst, 2*uA[i], uB[i], 1e-9*umax)
	}
}

func Test_shell07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shell07. invalid cases trigger errors")

	msh, err := inp.RectShellMesh(1, 1, 1, 1, 0.1)
	require.NoError(tst, err)
	mdb := steelDb(tst)

	// unknown material
	_, err = NewFemCase(msh, mdb, "__unobtainium__", 0)
	assert.Error(tst, err)

	// bad cell id and nil model
	_, err = NewShellElem(msh, 10, mdb.Get("steel").Mdl, 0)
	assert.Error(tst, err)
	_, err = NewShellElem(msh, 0, nil, 0)
	assert.Error(tst, err)

	// bad supports and loads
	fc, err := NewFemCase(msh, mdb, "steel", 0)
	require.NoError(tst, err)
	assert.Error(tst, fc.SetSupport(-77, 2))
	assert.Error(tst, fc.SetSupport(-1, 9))
	assert.Error(tst, fc.SetPointLoad(100, 2, 1))
	assert.Error(tst, fc.SetPointLoad(0, -1, 1))

	// no supports
	err = fc.SetPointLoad(2, 2, -1)
	require.NoError(tst, err)
	_, err = fc.SolveStatic()
	assert.Error(tst, err)
	_, err = fc.Modal(2)
	assert.Error(tst, err)
}
