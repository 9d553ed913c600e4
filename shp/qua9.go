// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shape
func init() {
	register(&Shape{
		Type:      "q9",
		Func:      Qua9,
		BasicType: "q4",
		Nverts:    9,
		NatCoords: [][]float64{
			{-1, 1, 1, -1, 0, 1, 0, -1, 0},
			{-1, -1, 1, 1, -1, 0, 1, 0, 0},
		},
	})
}

// Qua9 calculates the shape functions (S) and derivatives of shape functions (dSdR) of q9
// (bi-quadratic Lagrange) elements at r=[r,s] natural coordinates. The derivatives are
// calculated only if derivs==true.
//
//        3 --- 6 --- 2
//        |     s     |
//        |     |     |
//        7     8--r  5
//        |           |
//        |           |
//        0 --- 4 --- 1
func Qua9(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	s := r[1]
	u := r[0]

	S[0] = u * s * (u - 1.0) * (s - 1.0) / 4.0
	S[1] = u * s * (u + 1.0) * (s - 1.0) / 4.0
	S[2] = u * s * (u + 1.0) * (s + 1.0) / 4.0
	S[3] = u * s * (u - 1.0) * (s + 1.0) / 4.0
	S[4] = -(u*u - 1.0) * s * (s - 1.0) / 2.0
	S[5] = -u * (u + 1.0) * (s*s - 1.0) / 2.0
	S[6] = -(u*u - 1.0) * s * (s + 1.0) / 2.0
	S[7] = -u * (u - 1.0) * (s*s - 1.0) / 2.0
	S[8] = (u*u - 1.0) * (s*s - 1.0)

	if !derivs {
		return
	}

	dSdR[0][0] = (2.0*u - 1.0) * s * (s - 1.0) / 4.0
	dSdR[1][0] = (2.0*u + 1.0) * s * (s - 1.0) / 4.0
	dSdR[2][0] = (2.0*u + 1.0) * s * (s + 1.0) / 4.0
	dSdR[3][0] = (2.0*u - 1.0) * s * (s + 1.0) / 4.0
	dSdR[4][0] = -u * s * (s - 1.0)
	dSdR[5][0] = -(2.0*u + 1.0) * (s*s - 1.0) / 2.0
	dSdR[6][0] = -u * s * (s + 1.0)
	dSdR[7][0] = -(2.0*u - 1.0) * (s*s - 1.0) / 2.0
	dSdR[8][0] = 2.0 * u * (s*s - 1.0)

	dSdR[0][1] = u * (u - 1.0) * (2.0*s - 1.0) / 4.0
	dSdR[1][1] = u * (u + 1.0) * (2.0*s - 1.0) / 4.0
	dSdR[2][1] = u * (u + 1.0) * (2.0*s + 1.0) / 4.0
	dSdR[3][1] = u * (u - 1.0) * (2.0*s + 1.0) / 4.0
	dSdR[4][1] = -(u*u - 1.0) * (2.0*s - 1.0) / 2.0
	dSdR[5][1] = -u * (u + 1.0) * s
	dSdR[6][1] = -(u*u - 1.0) * (2.0*s + 1.0) / 2.0
	dSdR[7][1] = -u * (u - 1.0) * s
	dSdR[8][1] = 2.0 * s * (u*u - 1.0)
}
