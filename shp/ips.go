// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Ipoint holds integration point data: natural coordinates and weight
type Ipoint struct {
	R, S, T float64 // natural coordinates
	W       float64 // weight
}

// quadrature abscissae
var (
	gp2 = math.Sqrt(1.0 / 3.0) // 2-point Gauss-Legendre
	gp3 = math.Sqrt(3.0 / 5.0) // 3-point Gauss-Legendre
)

// ips_qua_4 is the 2x2 in-plane rule for quadrilaterals
var ips_qua_4 = []Ipoint{
	{-gp2, -gp2, 0, 1},
	{gp2, -gp2, 0, 1},
	{-gp2, gp2, 0, 1},
	{gp2, gp2, 0, 1},
}

// ips_qua_9 is the 3x3 in-plane rule for quadrilaterals
var ips_qua_9 = func() (pts []Ipoint) {
	x := []float64{-gp3, 0, gp3}
	w := []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			pts = append(pts, Ipoint{x[i], x[j], 0, w[i] * w[j]})
		}
	}
	return
}()

// GetIps returns the in-plane integration points of quadrilateral elements
//  nip -- number of integration points: 0 => default rule for geoType
func GetIps(geoType string, nip int) (pts []Ipoint, err error) {
	if _, ok := factory[geoType]; !ok {
		return nil, chk.Err("shp.GetIps: unknown element kind %q", geoType)
	}
	if nip == 0 {
		if geoType == "q4" {
			nip = 4
		} else {
			nip = 9
		}
	}
	switch nip {
	case 4:
		pts = ips_qua_4
	case 9:
		pts = ips_qua_9
	default:
		err = chk.Err("shp.GetIps: cannot get %d integration points for %q", nip, geoType)
	}
	return
}

// ThickIps returns the 2-point through-thickness rule used by the shell
// integrators. Points carry ζ in T and the corresponding weight
func ThickIps() []Ipoint {
	return []Ipoint{
		{0, 0, -gp2, 1},
		{0, 0, gp2, 1},
	}
}
