// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ovl

import (
	"testing"

	"github.com/UCBoulder/tardigrade-asp-sub000/drv"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// particle data for tests
var (
	tΞ1 = []float64{0.3, -0.2, 0.4}
	tdX = []float64{0.2, 0.1, -0.1}
	tR  = 1.0
	tF  = []float64{1.05, 0.02, -0.01, 0.01, 0.97, 0.03, 0.0, -0.02, 1.02}
	tχ  = []float64{0.98, 0.03, 0.01, -0.02, 1.04, 0.0, 0.02, 0.01, 0.99}
	tχb = []float64{1.02, -0.01, 0.0, 0.01, 0.99, 0.02, -0.03, 0.0, 1.01}
	tG  = []float64{
		0.01, -0.02, 0.03, 0.02, 0.01, 0.0, -0.01, 0.02, 0.01,
		0.0, 0.01, -0.01, 0.03, -0.02, 0.01, 0.02, 0.0, -0.01,
		-0.02, 0.01, 0.0, 0.01, 0.02, -0.01, 0.0, 0.03, 0.02,
	}
)

func Test_particle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("particle01. values of the three forms")

	// χnl = χ + ∇χ·dX
	χnl := make([]float64, 9)
	for iI := 0; iI < 9; iI++ {
		χnl[iI] = tχ[iI]
		for J := 0; J < 3; J++ {
			χnl[iI] += tG[iI*3+J] * tdX[J]
		}
	}
	ξt := make([]float64, 3)
	for i := 0; i < 3; i++ {
		for I := 0; I < 3; I++ {
			ξt[i] += tχ[i*3+I]*tΞ1[I] - tF[i*3+I]*tdX[I]
		}
	}
	res, err := Solve(χnl, ξt, tR, 0, nil)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	d1, err := Overlap(tΞ1, tdX, tR, tF, tχ, tG, 0, nil)
	if err != nil {
		tst.Errorf("Overlap failed:\n%v", err)
		return
	}
	d2, err := OverlapBase(tΞ1, tdX, tR, tF, tχ, tχ, tG, 0, nil)
	if err != nil {
		tst.Errorf("OverlapBase failed:\n%v", err)
		return
	}
	d3, err := OverlapChiNl(tΞ1, tdX, tR, tF, tχ, χnl, 0, nil)
	if err != nil {
		tst.Errorf("OverlapChiNl failed:\n%v", err)
		return
	}
	io.Pforan("d = %v\n", d1.V)
	chk.Array(tst, "grad form", 1e-15, d1.V, res.D.V)
	chk.Array(tst, "base form", 1e-15, d2.V, res.D.V)
	chk.Array(tst, "chinl form", 1e-15, d3.V, res.D.V)

	// far away
	d1, err = Overlap(tΞ1, []float64{3, 0, 0}, tR, tF, tχ, tG, 2, nil)
	if err != nil {
		tst.Errorf("Overlap failed:\n%v", err)
		return
	}
	chk.Array(tst, "outside", 1e-17, d1.V, make([]float64, len(d1.V)))
	chk.Array(tst, "outside: D2", 1e-17, d1.D2, make([]float64, len(d1.D2)))

	// wrong size
	_, err = Overlap(tΞ1[:2], tdX, tR, tF, tχ, tG, 0, nil)
	if err == nil {
		tst.Errorf("size error expected")
	}
}

func Test_particle02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("particle02. derivatives of the gradient form")

	d, err := Overlap(tΞ1, tdX, tR, tF, tχ, tG, 3, tight())
	if err != nil {
		tst.Errorf("Overlap failed:\n%v", err)
		return
	}
	x := drv.Pack(tΞ1, tdX, []float64{tR}, tF, tχ, tG)
	drv.CheckSet(tst, "Overlap", 1e-5, d, x, chk.Verbose, func(y []float64) (*drv.Set, error) {
		v := drv.Unpack(y, gradSizes...)
		return Overlap(v[0], v[1], v[2][0], v[3], v[4], v[5], 2, tight())
	})

	// cross partials
	dFΞ := d.H("F", "Xi1")
	dFFΞ := d.T("F", "F", "Xi1")
	chk.Int(tst, "len(d²d/dFdΞ1)", len(dFΞ), 3*9*3)
	chk.Int(tst, "len(d³d/dFdFdΞ1)", len(dFFΞ), 3*9*9*3)
}

func Test_particle03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("particle03. derivatives of the base and chinl forms")

	d, err := OverlapBase(tΞ1, tdX, tR, tF, tχ, tχb, tG, 2, tight())
	if err != nil {
		tst.Errorf("OverlapBase failed:\n%v", err)
		return
	}
	x := drv.Pack(tΞ1, tdX, []float64{tR}, tF, tχ, tχb, tG)
	drv.CheckSet(tst, "OverlapBase", 1e-5, d, x, chk.Verbose, func(y []float64) (*drv.Set, error) {
		v := drv.Unpack(y, baseSizes...)
		return OverlapBase(v[0], v[1], v[2][0], v[3], v[4], v[5], v[6], 1, tight())
	})

	d, err = OverlapChiNl(tΞ1, tdX, tR, tF, tχ, tχb, 3, tight())
	if err != nil {
		tst.Errorf("OverlapChiNl failed:\n%v", err)
		return
	}
	x = drv.Pack(tΞ1, tdX, []float64{tR}, tF, tχ, tχb)
	drv.CheckSet(tst, "OverlapChiNl", 1e-5, d, x, chk.Verbose, func(y []float64) (*drv.Set, error) {
		v := drv.Unpack(y, chiNlSizes...)
		return OverlapChiNl(v[0], v[1], v[2][0], v[3], v[4], v[5], 2, tight())
	})
}
