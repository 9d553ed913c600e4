// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_race01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("race01. concurrent evaluation on copies")

	nchan := 4
	done := make(chan int, nchan)

	base, err := Get("q8")
	if err != nil {
		tst.Errorf("Get failed: %v\n", err)
		return
	}

	for i := 0; i < nchan; i++ {
		go func(shape *Shape) {
			shape.CalcAtR([]float64{0.5, -0.5}, true)
			done <- 1
		}(base.GetCopy())
	}

	for i := 0; i < nchan; i++ {
		<-done
	}
}
