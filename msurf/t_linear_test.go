// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msurf

import (
	"testing"

	"github.com/UCBoulder/tardigrade-asp-sub000/drv"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_linear01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linear01. values and parameters")

	mdl, err := New("lin")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = mdl.Init(dbf.Params{&dbf.P{N: "En", V: 10}, &dbf.P{N: "Et", V: 4}})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	io.Pforan("mdl = %+v\n", mdl)

	dn := []float64{0.1, 0, 0}
	dt := []float64{0, 0.2, -0.1}
	t, err := mdl.Traction(dn, dt, 0)
	if err != nil {
		tst.Errorf("Traction failed:\n%v", err)
		return
	}
	chk.Array(tst, "t", 1e-15, t.V, []float64{1, 0.8, -0.4})
	e, err := mdl.Energy(dn, dt, 0)
	if err != nil {
		tst.Errorf("Energy failed:\n%v", err)
		return
	}
	chk.Float64(tst, "e", 1e-15, e.V[0], 0.5*(10*0.01+4*0.05))

	// errors
	_, err = LinearTraction(dn, dt, []float64{1}, 0)
	if errs.KindOf(err) != errs.Precondition {
		tst.Errorf("parameter count error expected. got %v", err)
	}
	_, err = LinearEnergy(dn, dt, []float64{1, 2, 3}, 0)
	if errs.KindOf(err) != errs.Precondition {
		tst.Errorf("parameter count error expected. got %v", err)
	}
	err = mdl.Init(dbf.Params{&dbf.P{N: "En", V: 10}})
	if err == nil {
		tst.Errorf("missing parameter must fail")
	}
	err = mdl.Init(dbf.Params{&dbf.P{N: "En", V: 10}, &dbf.P{N: "kn", V: 4}})
	if err == nil {
		tst.Errorf("invalid parameter must fail")
	}
	_, err = New("nonexistent")
	if err == nil {
		tst.Errorf("unknown model must fail")
	}
}

func Test_linear02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linear02. derivatives")

	dn := []float64{0.1, -0.05, 0.2}
	dt := []float64{0.3, 0.2, -0.1}
	prms := []float64{10, 4}
	x := drv.Pack(dn, dt, prms)

	t, err := LinearTraction(dn, dt, prms, 2)
	if err != nil {
		tst.Errorf("LinearTraction failed:\n%v", err)
		return
	}
	drv.CheckSet(tst, "traction", 1e-6, t, x, chk.Verbose, func(y []float64) (*drv.Set, error) {
		return LinearTraction(y[:3], y[3:6], y[6:], 1)
	})

	e, err := LinearEnergy(dn, dt, prms, 2)
	if err != nil {
		tst.Errorf("LinearEnergy failed:\n%v", err)
		return
	}
	drv.CheckSet(tst, "energy", 1e-6, e, x, chk.Verbose, func(y []float64) (*drv.Set, error) {
		return LinearEnergy(y[:3], y[3:6], y[6:], 1)
	})
}
