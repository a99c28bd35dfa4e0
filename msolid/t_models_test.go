// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/UCBoulder/tardigrade-asp-sub000/drv"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_models01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models01. energy and micro-stress")

	prms := dbf.Params{&dbf.P{N: "lam", V: 2.0}, &dbf.P{N: "mu", V: 1.5}}
	χ := []float64{1.05, 0.02, -0.01, 0.01, 0.97, 0.03, 0.0, -0.02, 1.02}
	for _, name := range []string{"svk", "neo"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed:\n%v", err)
			return
		}
		if err = mdl.Init(prms); err != nil {
			tst.Errorf("Init failed:\n%v", err)
			return
		}

		// undeformed
		ψ, P, err := mdl.Energy([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
		if err != nil {
			tst.Errorf("Energy failed:\n%v", err)
			return
		}
		chk.Float64(tst, name+": ψ(I)", 1e-15, ψ, 0)
		chk.Array(tst, name+": P(I)", 1e-15, P, make([]float64, 9))

		// P = ∂ψ/∂χ
		ψ, P, err = mdl.Energy(χ)
		if err != nil {
			tst.Errorf("Energy failed:\n%v", err)
			return
		}
		io.Pforan("%s: ψ = %v\n", name, ψ)
		for _, h := range drv.Steps {
			num, err := drv.CentralDiff(χ, h, func(x []float64) ([]float64, error) {
				e, _, err := mdl.Energy(x)
				return []float64{e}, err
			})
			if err != nil {
				tst.Errorf("CentralDiff failed:\n%v", err)
				return
			}
			drv.CheckArrays(tst, io.Sf("%s: P (h=%g)", name, h), 1e-8, P, num, chk.Verbose)
		}
	}
}

func Test_models02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("models02. stretch and failures")

	// ψ = ½ λ (tr E)² + μ E:E with diagonal E
	mdl, _ := New("svk")
	mdl.Init(dbf.Params{&dbf.P{N: "lam", V: 2.0}, &dbf.P{N: "mu", V: 1.5}})
	a, b, c := 1.1, 0.95, 1.0
	ψ, _, err := mdl.Energy([]float64{a, 0, 0, 0, b, 0, 0, 0, c})
	if err != nil {
		tst.Errorf("Energy failed:\n%v", err)
		return
	}
	E := []float64{(a*a - 1) / 2, (b*b - 1) / 2, (c*c - 1) / 2}
	trE := E[0] + E[1] + E[2]
	chk.Float64(tst, "ψ", 1e-15, ψ, 0.5*2.0*trE*trE+1.5*(E[0]*E[0]+E[1]*E[1]+E[2]*E[2]))

	// neo-Hookean fails with negative J
	neo, _ := New("neo")
	neo.Init(neo.GetPrms())
	_, _, err = neo.Energy([]float64{-1, 0, 0, 0, 1, 0, 0, 0, 1})
	if err == nil {
		tst.Errorf("negative J must fail")
	}
	λ, μ := neo.Lame()
	chk.Float64(tst, "λ", 1e-17, λ, 1)
	chk.Float64(tst, "μ", 1e-17, μ, 1)

	// parameters
	if err = mdl.Init(dbf.Params{&dbf.P{N: "lam", V: 2.0}}); err == nil {
		tst.Errorf("missing parameter must fail")
	}
	if err = mdl.Init(dbf.Params{&dbf.P{N: "lam", V: 2.0}, &dbf.P{N: "G", V: 1}}); err == nil {
		tst.Errorf("invalid parameter must fail")
	}
	if _, err = New("ccm"); err == nil {
		tst.Errorf("unknown model must fail")
	}

	// tangent and Voigt
	D := [][]float64{make([]float64, 6), make([]float64, 6), make([]float64, 6), make([]float64, 6), make([]float64, 6), make([]float64, 6)}
	ElasticTangent(D, 2, 1.5)
	chk.Array(tst, "D[0]", 1e-17, D[0], []float64{5, 2, 2, 0, 0, 0})
	chk.Array(tst, "D[4]", 1e-17, D[4], []float64{0, 0, 0, 0, 1.5, 0})
	chk.Array(tst, "voigt", 1e-17, ToVoigt([]float64{1, 2, 3, 2, 5, 6, 3, 6, 9}), []float64{1, 5, 9, 2, 3, 6})
}
