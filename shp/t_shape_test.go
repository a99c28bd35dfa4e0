// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_shape01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape01. nodes, partition of unity and derivatives")

	rs := [][]float64{{0.3, -0.6, 0}, {-0.9, 0.1, 0}, {0.75, 0.75, 0}}
	for name, shape := range factory {
		io.Pfyel("%s\n", name)
		CheckNodes(tst, shape, rs, 1e-15, chk.Verbose)
		for _, r := range rs {
			CheckDSdR(tst, shape, r, 1e-9, chk.Verbose)
		}
	}
}

func Test_shape02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shape02. Jacobians and integration points")

	// plane rectangle
	xmat := [][]float64{
		{10, 13, 13, 10},
		{8, 8, 9, 9},
	}
	dx, dy := 3.0, 1.0
	dr, ds := 2.0, 2.0
	shape := Get("qua4", 0)
	err := shape.CalcAtIp(xmat, Ipoint{0, 0, 0, 1}, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	chk.Float64(tst, "J", 1e-15, shape.J, (dx/dr)*(dy/ds))

	// same rectangle in 3D: normal along z
	xmat = append(xmat, []float64{2, 2, 2, 2})
	err = shape.CalcAtIp(xmat, Ipoint{0.2, -0.1, 0, 1}, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	chk.Array(tst, "Fnvec", 1e-15, shape.Fnvec, []float64{0, 0, 0.75})
	y := shape.IpRealCoords(xmat, Ipoint{0, 0, 0, 1})
	chk.Array(tst, "centre", 1e-15, y, []float64{11.5, 8.5, 2})

	// area of the rectangle with qua9 and 3×3 points
	x9 := [][]float64{
		{10, 13, 13, 10, 11.5, 13, 11.5, 10, 11.5},
		{8, 8, 9, 9, 8, 8.5, 9, 8.5, 8.5},
		{2, 2, 2, 2, 2, 2, 2, 2, 2},
	}
	q9 := Get("qua9", 1)
	area, sumw := 0.0, 0.0
	for _, ip := range QuaIps(3) {
		if err = q9.CalcAtIp(x9, ip, true); err != nil {
			tst.Errorf("CalcAtIp failed:\n%v", err)
			return
		}
		area += ip[3] * q9.J
		sumw += ip[3]
	}
	chk.Float64(tst, "Σw", 1e-14, sumw, 4)
	chk.Float64(tst, "area", 1e-14, area, dx*dy)

	// invalid space
	err = q9.CalcAtIp(x9[:1], Ipoint{0, 0, 0, 1}, true)
	if err == nil {
		tst.Errorf("1D space must fail")
	}
	if Get("tri3", 0) != nil {
		tst.Errorf("tri3 is not available")
	}
}
