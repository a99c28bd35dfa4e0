// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msurf

import (
	"github.com/UCBoulder/tardigrade-asp-sub000/drv"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/ten"
	"github.com/cpmech/gosl/fun/dbf"
)

// names of input groups
var (
	LinNames = []string{"dn", "dt", "prms"}
	linSizes = []int{3, 3, 2}
)

// Linear implements the linear traction-separation law
//
//	t = En dn + Et dt
//	e = ½ (En ‖dn‖² + Et ‖dt‖²)
type Linear struct {
	En float64 // normal stiffness
	Et float64 // tangential stiffness
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Linear) }
}

// Init initialises model
func (o *Linear) Init(prms dbf.Params) (err error) {
	found := 0
	for _, p := range prms {
		switch p.N {
		case "En":
			o.En = p.V
			found++
		case "Et":
			o.Et = p.V
			found++
		default:
			return errs.Prec("Linear.Init", "parameter named %q is invalid", p.N)
		}
	}
	if found != 2 {
		return errs.Prec("Linear.Init", "two parameters (En, Et) are required; %d were given", found)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Linear) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "En", V: 1.0},
		&dbf.P{N: "Et", V: 0.5},
	}
}

// Values returns (En, Et)
func (o Linear) Values() []float64 { return []float64{o.En, o.Et} }

// Traction computes the traction
func (o Linear) Traction(dn, dt []float64, order int) (*drv.Set, error) {
	return LinearTraction(dn, dt, o.Values(), order)
}

// Energy computes the energy density
func (o Linear) Energy(dn, dt []float64, order int) (*drv.Set, error) {
	return LinearEnergy(dn, dt, o.Values(), order)
}

// checkLinear checks the inputs of the linear law
func checkLinear(fn string, dn, dt, prms []float64) (err error) {
	if len(prms) != 2 {
		return errs.Prec(fn, "two parameters are required; %d were given", len(prms))
	}
	if err = errs.CheckSize(fn, "dn", dn, 3); err != nil {
		return
	}
	return errs.CheckSize(fn, "dt", dt, 3)
}

// LinearTraction computes t = En dn + Et dt with prms = (En, Et)
//
//	order -- 0, 1 or 2. Derivatives w.r.t. the groups in LinNames
func LinearTraction(dn, dt, prms []float64, order int) (t *drv.Set, err error) {
	if err = checkLinear("LinearTraction", dn, dt, prms); err != nil {
		return
	}
	if order > 2 {
		order = 2
	}
	En, Et := prms[0], prms[1]
	t = drv.NewSet(3, order, LinNames, linSizes)
	for i := 0; i < 3; i++ {
		t.V[i] = En*dn[i] + Et*dt[i]
	}
	if order < 1 {
		return
	}
	odn, odt, oEn, oEt := 0, 3, 6, 7
	for i := 0; i < 3; i++ {
		t.D1[t.I1(i, odn+i)] = En
		t.D1[t.I1(i, odt+i)] = Et
		t.D1[t.I1(i, oEn)] = dn[i]
		t.D1[t.I1(i, oEt)] = dt[i]
	}
	if order < 2 {
		return
	}
	for i := 0; i < 3; i++ {
		t.Put2(i, odn+i, oEn, 1)
		t.Put2(i, odt+i, oEt, 1)
	}
	return
}

// LinearEnergy computes e = ½ (En ‖dn‖² + Et ‖dt‖²) with prms = (En, Et)
//
//	order -- 0, 1 or 2. Derivatives w.r.t. the groups in LinNames
func LinearEnergy(dn, dt, prms []float64, order int) (e *drv.Set, err error) {
	if err = checkLinear("LinearEnergy", dn, dt, prms); err != nil {
		return
	}
	if order > 2 {
		order = 2
	}
	En, Et := prms[0], prms[1]
	e = drv.NewSet(1, order, LinNames, linSizes)
	dn2, dt2 := ten.Dot(dn, dn), ten.Dot(dt, dt)
	e.V[0] = 0.5 * (En*dn2 + Et*dt2)
	if order < 1 {
		return
	}
	odn, odt, oEn, oEt := 0, 3, 6, 7
	for i := 0; i < 3; i++ {
		e.D1[e.I1(0, odn+i)] = En * dn[i]
		e.D1[e.I1(0, odt+i)] = Et * dt[i]
	}
	e.D1[e.I1(0, oEn)] = 0.5 * dn2
	e.D1[e.I1(0, oEt)] = 0.5 * dt2
	if order < 2 {
		return
	}
	for i := 0; i < 3; i++ {
		e.Put2(0, odn+i, odn+i, En)
		e.Put2(0, odt+i, odt+i, Et)
		e.Put2(0, odn+i, oEn, dn[i])
		e.Put2(0, odt+i, oEt, dt[i])
	}
	return
}
