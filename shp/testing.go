// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/UCBoulder/tardigrade-asp-sub000/drv"
	"github.com/cpmech/gosl/io"
)

// CheckNodes checks the Kronecker property S_m(r_n) = δ_mn and the partition of unity at rs
func CheckNodes(tst *testing.T, shape *Shape, rs [][]float64, tol float64, verbose bool) {
	S := make([]float64, shape.Nverts)
	r := make([]float64, 3)
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}
		shape.Func(S, nil, r, false)
		for m, s := range S {
			δ := 0.0
			if m == n {
				δ = 1
			}
			if math.Abs(s-δ) > tol {
				tst.Errorf("%s: S%d(node %d) = %g != %g\n", shape.Type, m, n, s, δ)
				return
			}
		}
	}
	for _, r := range rs {
		shape.Func(S, nil, r, false)
		sum := 0.0
		for _, s := range S {
			sum += s
		}
		if verbose {
			io.Pf("%s: ΣS(%v) = %v\n", shape.Type, r, sum)
		}
		if math.Abs(sum-1) > tol {
			tst.Errorf("%s: ΣS(%v) = %g != 1\n", shape.Type, r, sum)
		}
	}
}

// CheckDSdR compares dSdR at r with central differences
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {
	dSdR := make([][]float64, shape.Nverts)
	for n := range dSdR {
		dSdR[n] = make([]float64, shape.Gndim)
	}
	S := make([]float64, shape.Nverts)
	shape.Func(S, dSdR, r, true)
	ana := make([]float64, 0, shape.Nverts*shape.Gndim)
	for _, row := range dSdR {
		ana = append(ana, row...)
	}
	for _, h := range drv.Steps {
		num, _ := drv.CentralDiff(r[:shape.Gndim], h, func(x []float64) ([]float64, error) {
			y := make([]float64, shape.Nverts)
			shape.Func(y, nil, []float64{x[0], x[1], 0}, false)
			return y, nil
		})
		drv.CheckArrays(tst, io.Sf("%s dSdR (h=%g)", shape.Type, h), tol, ana, num, verbose)
	}
}
