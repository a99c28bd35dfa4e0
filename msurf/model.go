// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msurf implements traction-separation models for surfaces of particles in contact
package msurf

import (
	"github.com/UCBoulder/tardigrade-asp-sub000/drv"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines traction-separation models
type Model interface {
	Init(prms dbf.Params) error                             // initialises model
	GetPrms() dbf.Params                                    // gets (an example) of parameters
	Values() []float64                                      // returns the parameters as an array
	Traction(dn, dt []float64, order int) (*drv.Set, error) // traction for given normal and tangential separations
	Energy(dn, dt []float64, order int) (*drv.Set, error)   // energy density for given normal and tangential separations
}

// New returns a new surface model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, errs.Prec("msurf.New", "model %q is not available in 'surf' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}
