// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements bulk models for the micro-deformation of particles
package msolid

import (
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines bulk strain-energy models written in terms of the micro-deformation χ
type Model interface {
	Init(prms dbf.Params) error                             // initialises model
	GetPrms() dbf.Params                                    // gets (an example) of parameters
	Lame() (λ, μ float64)                                   // returns the (small-strain) Lamé coefficients
	Energy(χ []float64) (ψ float64, P []float64, err error) // energy density ψ and micro-stress P = ∂ψ/∂χ
}

// New returns a new bulk model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, errs.Prec("msolid.New", "model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}

// lameInit reads the Lamé parameters "lam" and "mu"
func lameInit(fn string, prms dbf.Params) (λ, μ float64, err error) {
	found := 0
	for _, p := range prms {
		switch p.N {
		case "lam":
			λ = p.V
			found++
		case "mu":
			μ = p.V
			found++
		default:
			return 0, 0, errs.Prec(fn, "parameter named %q is invalid", p.N)
		}
	}
	if found != 2 {
		return 0, 0, errs.Prec(fn, "two parameters (lam, mu) are required; %d were given", found)
	}
	if μ <= 0 {
		return 0, 0, errs.Prec(fn, "shear modulus must be positive. mu = %g", μ)
	}
	return
}
