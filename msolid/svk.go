// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/cpmech/gosl/fun/dbf"
)

// StVenant implements the Saint Venant-Kirchhoff model in terms of the micro-deformation
//
//	E = ½ (χᵀχ - I)
//	ψ = ½ λ (tr E)² + μ E:E
//	P = χ (λ tr E I + 2 μ E)
type StVenant struct {
	λ float64 // Lamé's first parameter
	μ float64 // shear modulus
}

// add model to factory
func init() {
	allocators["svk"] = func() Model { return new(StVenant) }
}

// Init initialises model
func (o *StVenant) Init(prms dbf.Params) (err error) {
	o.λ, o.μ, err = lameInit("StVenant.Init", prms)
	return
}

// GetPrms gets (an example) of parameters
func (o StVenant) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "lam", V: 1.0},
		&dbf.P{N: "mu", V: 1.0},
	}
}

// Lame returns the Lamé coefficients
func (o StVenant) Lame() (λ, μ float64) { return o.λ, o.μ }

// Energy computes the energy density and micro-stress
func (o StVenant) Energy(χ []float64) (ψ float64, P []float64, err error) {
	if err = errs.CheckSize("StVenant.Energy", "chi", χ, 9); err != nil {
		return
	}
	E := GreenLagrange(χ)
	trE := E[0] + E[4] + E[8]
	EE := 0.0
	for _, v := range E {
		EE += v * v
	}
	ψ = 0.5*o.λ*trE*trE + o.μ*EE

	// S = λ tr E I + 2 μ E ; P = χ S
	S := make([]float64, 9)
	for I := 0; I < 3; I++ {
		for J := 0; J < 3; J++ {
			S[I*3+J] = 2.0 * o.μ * E[I*3+J]
		}
		S[I*3+I] += o.λ * trE
	}
	P = make([]float64, 9)
	for i := 0; i < 3; i++ {
		for J := 0; J < 3; J++ {
			for K := 0; K < 3; K++ {
				P[i*3+J] += χ[i*3+K] * S[K*3+J]
			}
		}
	}
	return
}
