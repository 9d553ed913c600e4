// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shape
func init() {
	register(&Shape{
		Type:      "q8",
		Func:      Qua8,
		BasicType: "q4",
		Nverts:    8,
		NatCoords: [][]float64{
			{-1, 1, 1, -1, 0, 1, 0, -1},
			{-1, -1, 1, 1, -1, 0, 1, 0},
		},
	})
}

// Qua8 calculates the shape functions (S) and derivatives of shape functions (dSdR) of q8
// (serendipity) elements at r=[r,s] natural coordinates. The derivatives are calculated
// only if derivs==true.
//
//        3 --- 6 --- 2
//        |     s     |
//        |     |     |
//        7     +--r  5
//        |           |
//        |           |
//        0 --- 4 --- 1
func Qua8(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	s := r[1]
	u := r[0]

	S[0] = (1.0 - u) * (1.0 - s) * (-u - s - 1.0) / 4.0
	S[1] = (1.0 + u) * (1.0 - s) * (u - s - 1.0) / 4.0
	S[2] = (1.0 + u) * (1.0 + s) * (u + s - 1.0) / 4.0
	S[3] = (1.0 - u) * (1.0 + s) * (-u + s - 1.0) / 4.0
	S[4] = (1.0 - u*u) * (1.0 - s) / 2.0
	S[5] = (1.0 + u) * (1.0 - s*s) / 2.0
	S[6] = (1.0 - u*u) * (1.0 + s) / 2.0
	S[7] = (1.0 - u) * (1.0 - s*s) / 2.0

	if !derivs {
		return
	}

	dSdR[0][0] = (1.0 - s) * (2.0*u + s) / 4.0
	dSdR[1][0] = (1.0 - s) * (2.0*u - s) / 4.0
	dSdR[2][0] = (1.0 + s) * (2.0*u + s) / 4.0
	dSdR[3][0] = (1.0 + s) * (2.0*u - s) / 4.0
	dSdR[4][0] = -u * (1.0 - s)
	dSdR[5][0] = (1.0 - s*s) / 2.0
	dSdR[6][0] = -u * (1.0 + s)
	dSdR[7][0] = -(1.0 - s*s) / 2.0

	dSdR[0][1] = (1.0 - u) * (2.0*s + u) / 4.0
	dSdR[1][1] = (1.0 + u) * (2.0*s - u) / 4.0
	dSdR[2][1] = (1.0 + u) * (2.0*s + u) / 4.0
	dSdR[3][1] = (1.0 - u) * (2.0*s - u) / 4.0
	dSdR[4][1] = -(1.0 - u*u) / 2.0
	dSdR[5][1] = -s * (1.0 + u)
	dSdR[6][1] = (1.0 - u*u) / 2.0
	dSdR[7][1] = -s * (1.0 - u)
}
