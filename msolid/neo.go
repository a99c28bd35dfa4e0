// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/ten"
	"github.com/cpmech/gosl/fun/dbf"
)

// NeoHookean implements a compressible neo-Hookean model in terms of the micro-deformation
//
//	ψ = ½ μ (I₁ - 3) - μ ln J + ½ λ (ln J)²    with   I₁ = χ:χ  and  J = det(χ)
//	P = μ (χ - χ⁻ᵀ) + λ ln J χ⁻ᵀ
type NeoHookean struct {
	λ float64 // Lamé's first parameter
	μ float64 // shear modulus
}

// add model to factory
func init() {
	allocators["neo"] = func() Model { return new(NeoHookean) }
}

// Init initialises model
func (o *NeoHookean) Init(prms dbf.Params) (err error) {
	o.λ, o.μ, err = lameInit("NeoHookean.Init", prms)
	return
}

// GetPrms gets (an example) of parameters
func (o NeoHookean) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "lam", V: 1.0},
		&dbf.P{N: "mu", V: 1.0},
	}
}

// Lame returns the Lamé coefficients
func (o NeoHookean) Lame() (λ, μ float64) { return o.λ, o.μ }

// Energy computes the energy density and micro-stress
func (o NeoHookean) Energy(χ []float64) (ψ float64, P []float64, err error) {
	fn := "NeoHookean.Energy"
	if err = errs.CheckSize(fn, "chi", χ, 9); err != nil {
		return
	}
	χi := make([]float64, 9)
	J, err := ten.Inv3(χi, χ)
	if err != nil || J <= 0 {
		return 0, nil, errs.Prec(fn, "determinant of chi must be positive. J = %g", ten.Det3(χ))
	}
	lnJ := math.Log(J)
	I1 := ten.Dot(χ, χ)
	ψ = 0.5*o.μ*(I1-3.0) - o.μ*lnJ + 0.5*o.λ*lnJ*lnJ
	P = make([]float64, 9)
	for i := 0; i < 3; i++ {
		for I := 0; I < 3; I++ {
			χiT := χi[I*3+i] // (χ⁻ᵀ)_iI
			P[i*3+I] = o.μ*(χ[i*3+I]-χiT) + o.λ*lnJ*χiT
		}
	}
	return
}
