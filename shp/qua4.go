// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register shape
func init() {
	register(&Shape{
		Type:      "q4",
		Func:      Qua4,
		BasicType: "q4",
		Nverts:    4,
		NatCoords: [][]float64{
			{-1, 1, 1, -1},
			{-1, -1, 1, 1},
		},
	})
}

// Qua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of q4
// elements at r=[r,s] natural coordinates. The derivatives are calculated only if derivs==true.
//
//        3 ------- 2
//        |    s    |
//        |    |    |
//        |    +--r |
//        |         |
//        0 ------- 1
func Qua4(S []float64, dSdR [][]float64, r []float64, derivs bool) {
	s := r[1]
	u := r[0]

	S[0] = (1.0 - u) * (1.0 - s) / 4.0
	S[1] = (1.0 + u) * (1.0 - s) / 4.0
	S[2] = (1.0 + u) * (1.0 + s) / 4.0
	S[3] = (1.0 - u) * (1.0 + s) / 4.0

	if !derivs {
		return
	}

	dSdR[0][0] = -(1.0 - s) / 4.0
	dSdR[1][0] = (1.0 - s) / 4.0
	dSdR[2][0] = (1.0 + s) / 4.0
	dSdR[3][0] = -(1.0 + s) / 4.0

	dSdR[0][1] = -(1.0 - u) / 4.0
	dSdR[1][1] = -(1.0 + u) / 4.0
	dSdR[2][1] = (1.0 + u) / 4.0
	dSdR[3][1] = (1.0 - u) / 4.0
}
