// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Tmatrix fills the 5×6 strain transformation operator rotating global
// engineering strains (εxx, εyy, εzz, γxy, γyz, γzx) into the local
// material-aligned basis derived from the Jacobian rows:
//  dir1 = jac row 0, dir3 = dir1 × (jac row 1), dir2 = dir3 × dir1
// all normalized. The through-thickness normal-strain row of the full
// 6×6 transform is dropped: shells carry no normal stress across the
// thickness
//  T   -- [5][6] pre-allocated output
//  jac -- [3][3] shell Jacobian at the evaluation point
func Tmatrix(T [][]float64, jac [][]float64) (err error) {

	if len(T) != 5 || len(T[0]) != 6 {
		return chk.Err("shell.Tmatrix: T must be 5×6; got %d×%d", len(T), len(T[0]))
	}
	if len(jac) != 3 || len(jac[0]) != 3 {
		return chk.Err("shell.Tmatrix: jac must be 3×3; got %d×%d", len(jac), len(jac[0]))
	}

	// local orthonormal basis a[i] from the Jacobian rows
	a := la.MatAlloc(3, 3)
	copy(a[0], jac[0])
	cross(a[2], jac[0], jac[1])
	cross(a[1], a[2], a[0])
	for i := 0; i < 3; i++ {
		nrm := la.VecNorm(a[i])
		if nrm < MINDET {
			return chk.Err("shell.Tmatrix: Jacobian rows are collinear; cannot build local basis")
		}
		for j := 0; j < 3; j++ {
			a[i][j] /= nrm
		}
	}

	// quadratic strain-rotation blocks (Cook's construction); the row of
	// the (2,2) normal component is skipped
	for row, i := range []int{0, 1} {
		T[row][0] = a[i][0] * a[i][0]
		T[row][1] = a[i][1] * a[i][1]
		T[row][2] = a[i][2] * a[i][2]
		T[row][3] = a[i][0] * a[i][1]
		T[row][4] = a[i][1] * a[i][2]
		T[row][5] = a[i][2] * a[i][0]
	}
	for k, pair := range [][]int{{0, 1}, {1, 2}, {2, 0}} {
		i, j := pair[0], pair[1]
		row := 2 + k
		T[row][0] = 2.0 * a[i][0] * a[j][0]
		T[row][1] = 2.0 * a[i][1] * a[j][1]
		T[row][2] = 2.0 * a[i][2] * a[j][2]
		T[row][3] = a[i][0]*a[j][1] + a[i][1]*a[j][0]
		T[row][4] = a[i][1]*a[j][2] + a[i][2]*a[j][1]
		T[row][5] = a[i][2]*a[j][0] + a[i][0]*a[j][2]
	}
	return
}
