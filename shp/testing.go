// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// CheckShape checks that shape functions evaluate to 1.0 @ their own node
// and to 0.0 @ all other nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < 2; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckPartitionOfUnity checks that the shape functions sum to 1.0 over a
// grid of interior points
func CheckPartitionOfUnity(tst *testing.T, shape *Shape, tol float64, verbose bool) {
	for _, u := range []float64{-1, -0.75, -0.2, 0, 0.3, 0.8, 1} {
		for _, s := range []float64{-1, -0.6, 0, 0.1, 0.55, 1} {
			shape.Func(shape.S, shape.DSdR, []float64{u, s}, false)
			sum := 0.0
			for m := 0; m < shape.Nverts; m++ {
				sum += shape.S[m]
			}
			if verbose {
				io.Pf("%s: sum(S) @ (%g,%g) = %v\n", shape.Type, u, s, sum)
			}
			if math.Abs(sum-1.0) > tol {
				tst.Errorf("%s failed with sum(S) = %v @ (%g,%g)\n", shape.Type, sum, u, s)
				return
			}
		}
	}
}

// CheckDSdR checks dSdR derivatives of shape structures against central
// finite differences
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// auxiliary
	r_tmp := make([]float64, len(r))
	S_tmp := make([]float64, shape.Nverts)

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true)

	// numerical
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < 2; i++ {
			dSndRi, _ := num.DerivCen5(r[i], 1e-1, func(t float64) (float64, error) {
				copy(r_tmp, r)
				r_tmp[i] = t
				shape.Func(S_tmp, nil, r_tmp, false)
				return S_tmp[n], nil
			})
			if verbose {
				io.Pfgrey2("  dS%ddR%d @ %5.2f = %v (num: %v)\n", n, i, r, shape.DSdR[n][i], dSndRi)
			}
			if math.Abs(shape.DSdR[n][i]-dSndRi) > tol {
				tst.Errorf("%s dS%ddR%d failed with err = %g\n", shape.Type, n, i, math.Abs(shape.DSdR[n][i]-dSndRi))
				return
			}
		}
	}
}
