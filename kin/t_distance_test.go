// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import (
	"testing"

	"github.com/UCBoulder/tardigrade-asp-sub000/drv"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// data for tests
var (
	tΞ1 = []float64{0.3, -0.2, 0.4}
	tΞ2 = []float64{-0.5, 0.1, 0.2}
	tD  = []float64{1.2, 0.3, -0.1}
	tF  = []float64{1.05, 0.02, -0.01, 0.01, 0.97, 0.03, 0.0, -0.02, 1.02}
	tχ  = []float64{0.98, 0.03, 0.01, -0.02, 1.04, 0.0, 0.02, 0.01, 0.99}
	tχn = []float64{1.02, -0.01, 0.0, 0.01, 0.99, 0.02, -0.03, 0.0, 1.01}
	tG  = []float64{
		0.01, -0.02, 0.03, 0.02, 0.01, 0.0, -0.01, 0.02, 0.01,
		0.0, 0.01, -0.01, 0.03, -0.02, 0.01, 0.02, 0.0, -0.01,
		-0.02, 0.01, 0.0, 0.01, 0.02, -0.01, 0.0, 0.03, 0.02,
	}
	eye = []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
)

func Test_dist01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dist01. identity maps and sizes")

	d, err := CurrentDistance(tΞ1, tΞ2, tD, eye, eye, eye, 0)
	if err != nil {
		tst.Errorf("CurrentDistance failed:\n%v", err)
		return
	}
	chk.Array(tst, "d = D", 1e-15, d.V, tD)

	d, _, err = CurrentDistanceGrad(tΞ1, tΞ2, tD, eye, eye, make([]float64, 27), 0)
	if err != nil {
		tst.Errorf("CurrentDistanceGrad failed:\n%v", err)
		return
	}
	chk.Array(tst, "d = D (grad)", 1e-15, d.V, tD)

	_, err = CurrentDistance(tΞ1, tΞ2, tD, eye[:4], eye, eye, 0)
	if errs.KindOf(err) != errs.Precondition {
		tst.Errorf("size error expected. got %v", err)
	}
	io.Pforan("%v\n", err)
}

func Test_dist02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dist02. derivatives of the general form")

	d, err := CurrentDistance(tΞ1, tΞ2, tD, tF, tχ, tχn, 2)
	if err != nil {
		tst.Errorf("CurrentDistance failed:\n%v", err)
		return
	}
	x := drv.Pack(tΞ1, tΞ2, tD, tF, tχ, tχn)
	drv.CheckSet(tst, "CurrentDistance", 1e-6, d, x, chk.Verbose, func(y []float64) (*drv.Set, error) {
		v := drv.Unpack(y, distSizes...)
		return CurrentDistance(v[0], v[1], v[2], v[3], v[4], v[5], 1)
	})

	// d²d/dF dΞ1 = ∂²(F_iI Ξ1_I)/∂F_jJ ∂Ξ1_K = δij δJK
	H := d.H("F", "Xi1")
	chk.Float64(tst, "d²d0/dF01 dΞ1_1", 1e-17, H[(0*9+1)*3+1], 1)
	chk.Float64(tst, "d²d0/dF01 dΞ1_0", 1e-17, H[(0*9+1)*3+0], 0)
}

func Test_dist03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dist03. derivatives of the gradient form")

	d, χnl, err := CurrentDistanceGrad(tΞ1, tΞ2, tD, tF, tχ, tG, 3)
	if err != nil {
		tst.Errorf("CurrentDistanceGrad failed:\n%v", err)
		return
	}
	x := drv.Pack(tΞ1, tΞ2, tD, tF, tχ, tG)
	drv.CheckSet(tst, "CurrentDistanceGrad", 1e-6, d, x, chk.Verbose, func(y []float64) (*drv.Set, error) {
		v := drv.Unpack(y, distGradSizes...)
		r, _, e := CurrentDistanceGrad(v[0], v[1], v[2], v[3], v[4], v[5], 2)
		return r, e
	})
	drv.CheckSet(tst, "NonLocalChi", 1e-6, χnl, x, chk.Verbose, func(y []float64) (*drv.Set, error) {
		v := drv.Unpack(y, distGradSizes...)
		return NonLocalChi(v[0], v[1], v[2], v[4], v[5], 2), nil
	})
}
