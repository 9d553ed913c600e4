// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// RectShellMesh generates a flat rectangular shell mesh on the xy-plane with
// lx x ly dimensions divided into nx x ny "q4" cells. All directors point
// along +z with magnitude thick/2. Vertices on the x=0 edge receive tag -1
// so supports can be attached there; all cells receive tag -1.
func RectShellMesh(lx, ly float64, nx, ny int, thick float64) (o *Mesh, err error) {

	// check
	if lx <= 0 || ly <= 0 || thick <= 0 {
		return nil, chk.Err("dimensions must be positive. lx=%g, ly=%g, thick=%g are invalid", lx, ly, thick)
	}
	if nx < 1 || ny < 1 {
		return nil, chk.Err("number of divisions must be at least 1. nx=%d, ny=%d are invalid", nx, ny)
	}

	// vertices
	o = new(Mesh)
	o.FnamePath = "rectshellmesh"
	dx, dy := lx/float64(nx), ly/float64(ny)
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			tag := 0
			if i == 0 {
				tag = -1
			}
			o.Verts = append(o.Verts, &Vert{
				Id:  j*(nx+1) + i,
				Tag: tag,
				C:   []float64{float64(i) * dx, float64(j) * dy, 0},
				N:   []float64{0, 0, thick / 2.0},
			})
		}
	}

	// cells
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			a := j*(nx+1) + i
			o.Cells = append(o.Cells, &Cell{
				Id:    j*nx + i,
				Tag:   -1,
				Type:  "q4",
				Verts: []int{a, a + 1, a + nx + 2, a + nx + 1},
			})
		}
	}

	// derive
	err = o.CalcDerived()
	if err != nil {
		return nil, err
	}
	return
}
