// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import (
	"testing"

	"github.com/UCBoulder/tardigrade-asp-sub000/drv"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/ten"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_decomp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("decomp01. values")

	dn, dt, err := DecomposeVector([]float64{3, 4, 0}, []float64{1, 0, 0}, 0)
	if err != nil {
		tst.Errorf("DecomposeVector failed:\n%v", err)
		return
	}
	chk.Array(tst, "dn", 1e-17, dn.V, []float64{3, 0, 0})
	chk.Array(tst, "dt", 1e-17, dt.V, []float64{0, 4, 0})

	// d = α n
	n := []float64{1.0 / 3.0, 2.0 / 3.0, 2.0 / 3.0}
	for _, α := range []float64{-2, 0, 0.5, 7} {
		dn, dt, err = DecomposeVector(ten.Scale(α, n), n, 0)
		if err != nil {
			tst.Errorf("DecomposeVector failed:\n%v", err)
			return
		}
		chk.Array(tst, io.Sf("dn(α=%g)", α), 1e-14, dn.V, ten.Scale(α, n))
		chk.Array(tst, io.Sf("dt(α=%g)", α), 1e-14, dt.V, []float64{0, 0, 0})
	}

	// d = dn + dt and dt·n = 0
	d := []float64{0.3, -1.2, 2.5}
	dn, dt, _ = DecomposeVector(d, n, 0)
	chk.Array(tst, "dn+dt", 1e-15, ten.Axpy(dn.V, 1, dt.V), d)
	chk.Float64(tst, "dt·n", 1e-12, ten.Dot(dt.V, n), 0)

	_, _, err = DecomposeVector(d, []float64{1, 1, 0}, 0)
	if errs.KindOf(err) != errs.Precondition {
		tst.Errorf("unit vector error expected. got %v", err)
	}
	io.Pforan("%v\n", err)
}

func Test_decomp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("decomp02. derivatives")

	// finite differences move n off the unit sphere
	tol := UnitTol
	UnitTol = 1e-3
	defer func() { UnitTol = tol }()

	d := []float64{0.3, -1.2, 2.5}
	n := []float64{1.0 / 3.0, 2.0 / 3.0, 2.0 / 3.0}
	dn, dt, err := DecomposeVector(d, n, 2)
	if err != nil {
		tst.Errorf("DecomposeVector failed:\n%v", err)
		return
	}
	x := drv.Pack(d, n)
	for k, s := range []*drv.Set{dn, dt} {
		drv.CheckSet(tst, io.Sf("part %d", k), 1e-6, s, x, chk.Verbose, func(y []float64) (*drv.Set, error) {
			a, b, e := DecomposeVector(y[:3], y[3:], 1)
			if k == 0 {
				return a, e
			}
			return b, e
		})
	}
}

func Test_nanson01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nanson01")

	dan, err := Nanson([]float64{2, 0, 0, 0, 2, 0, 0, 0, 2}, []float64{0, 0, 1}, 0)
	if err != nil {
		tst.Errorf("Nanson failed:\n%v", err)
		return
	}
	chk.Array(tst, "da n", 1e-15, dan.V, []float64{0, 0, 4})

	dAN := []float64{0.2, -0.4, 0.1}
	dan, _ = Nanson(eye, dAN, 0)
	chk.Array(tst, "identity", 1e-15, dan.V, dAN)

	// the push is parallel to F⁻ᵀN with positive orientation
	N := []float64{0, 0.6, 0.8}
	dan, _ = Nanson(tF, N, 0)
	Fi := make([]float64, 9)
	ten.Inv3(Fi, tF)
	m := make([]float64, 3)
	ten.MatTVec(m, Fi, N)
	cos := ten.Dot(dan.V, m) / (ten.L2norm(dan.V) * ten.L2norm(m))
	chk.Float64(tst, "cos(da n, F⁻ᵀN)", 1e-14, cos, 1)

	n, err := CurrentNormal(tF, N)
	if err != nil {
		tst.Errorf("CurrentNormal failed:\n%v", err)
		return
	}
	chk.Float64(tst, "‖n‖", 1e-15, ten.L2norm(n), 1)

	dan, err = Nanson(tF, dAN, 2)
	if err != nil {
		tst.Errorf("Nanson failed:\n%v", err)
		return
	}
	drv.CheckSet(tst, "Nanson", 1e-6, dan, drv.Pack(tF, dAN), chk.Verbose, func(y []float64) (*drv.Set, error) {
		return Nanson(y[:9], y[9:], 1)
	})

	_, err = Nanson(tF[:8], dAN, 0)
	if err == nil {
		tst.Errorf("size error expected")
	}
}
