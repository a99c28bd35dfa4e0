// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package agg implements the aggregate of deformable particles: state, kinematic graph and assembly
package agg

import (
	"math"

	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/msolid"
	"github.com/UCBoulder/tardigrade-asp-sub000/msurf"
	"github.com/UCBoulder/tardigrade-asp-sub000/ovl"
	"github.com/UCBoulder/tardigrade-asp-sub000/quad"
	"github.com/cpmech/gosl/fun/dbf"
)

// State holds the aggregate state set by the host. It is read-only during assembly
type State struct {

	// quadrature
	Dim   int // space dimension; must be 3
	Level int // refinement level of the surface quadrature

	// time and temperature
	Time     float64 // current time
	TimePrev float64 // previous time
	Dt       float64 // time increment
	Temp     float64 // current temperature
	TempPrev float64 // previous temperature

	// deformation
	F         []float64 // deformation gradient [9]
	Fprev     []float64 // previous deformation gradient [9]
	Chi       []float64 // micro-deformation χ [9]
	ChiPrev   []float64 // previous micro-deformation [9]
	GradChi   []float64 // ∇χ [27]; ∇χ_iIJ = ∂χ_iI/∂X_J
	StatePrev []float64 // previous state variables [msolid.NstateVars]

	// material
	Prms []float64 // material parameters: (λ, μ) for the bulk; (En, Et) for surfaces
	Bulk string    // name of bulk model; e.g. "svk"
	Surf string    // name of surface model; e.g. "lin"

	// particles
	N         int         // number of particles
	Radii     []float64   // reference radius of each particle [N]
	Centroids [][]float64 // reference centroids [N][3]; nil means all at the origin

	// solver
	Opts *ovl.Options // options of the overlap solver; nil for defaults
}

// SetDefault sets default values
func (o *State) SetDefault() {
	o.Dim = 3
	o.Bulk = "svk"
	o.Surf = "lin"
	eye := []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
	o.F = append([]float64{}, eye...)
	o.Fprev = append([]float64{}, eye...)
	o.Chi = append([]float64{}, eye...)
	o.ChiPrev = append([]float64{}, eye...)
	o.GradChi = make([]float64, 27)
	o.StatePrev = make([]float64, msolid.NstateVars)
	o.Prms = []float64{1, 1}
}

// PostProcess fills derived data and missing optional values
func (o *State) PostProcess() {
	o.Dt = o.Time - o.TimePrev
	if o.N == 0 {
		o.N = len(o.Radii)
	}
	if o.Fprev == nil {
		o.Fprev = append([]float64{}, o.F...)
	}
	if o.ChiPrev == nil {
		o.ChiPrev = append([]float64{}, o.Chi...)
	}
	if o.GradChi == nil {
		o.GradChi = make([]float64, 27)
	}
	if o.StatePrev == nil {
		o.StatePrev = make([]float64, msolid.NstateVars)
	}
}

// Check checks sizes and values
func (o *State) Check() (err error) {
	fn := "State.Check"
	if o.Dim != 3 {
		return errs.Prec(fn, "space dimension must be 3. Dim = %d", o.Dim)
	}
	for _, a := range []struct {
		name string
		v    []float64
		n    int
	}{
		{"F", o.F, 9}, {"Fprev", o.Fprev, 9}, {"chi", o.Chi, 9}, {"chiprev", o.ChiPrev, 9},
		{"gradchi", o.GradChi, 27}, {"statev", o.StatePrev, msolid.NstateVars}, {"props", o.Prms, 2},
		{"radii", o.Radii, o.N},
	} {
		if err = errs.CheckSize(fn, a.name, a.v, a.n); err != nil {
			return
		}
	}
	if o.N < 1 {
		return errs.Prec(fn, "at least one particle is required. N = %d", o.N)
	}
	for i, r := range o.Radii {
		if r <= 0 || math.IsNaN(r) {
			return errs.Prec(fn, "radius of particle %d must be positive. r = %g", i, r)
		}
	}
	if o.Centroids != nil {
		if len(o.Centroids) != o.N {
			return errs.Size(fn, "centroids", len(o.Centroids), o.N)
		}
		for i, x := range o.Centroids {
			if err = errs.CheckSize(fn, "centroid", x, 3); err != nil {
				return errs.Wrapf(fn, err, "particle %d", i)
			}
		}
	}
	return
}

// Centroid returns the reference centroid of particle i
func (o *State) Centroid(i int) []float64 {
	if o.Centroids == nil {
		return []float64{0, 0, 0}
	}
	return o.Centroids[i]
}

// Quadrature returns the (cached) quadrature on the unit sphere
func (o *State) Quadrature() (*quad.Sphere, error) {
	return quad.Get(o.Level)
}

// Models allocates and initialises the bulk and surface models with the material parameters
func (o *State) Models() (bulk msolid.Model, surf msurf.Model, err error) {
	fn := "State.Models"
	if err = errs.CheckSize(fn, "props", o.Prms, 2); err != nil {
		return
	}
	if bulk, err = msolid.New(o.Bulk); err != nil {
		return nil, nil, errs.Wrap(fn, err)
	}
	err = bulk.Init(dbf.Params{&dbf.P{N: "lam", V: o.Prms[0]}, &dbf.P{N: "mu", V: o.Prms[1]}})
	if err != nil {
		return nil, nil, errs.Wrap(fn, err)
	}
	if surf, err = msurf.New(o.Surf); err != nil {
		return nil, nil, errs.Wrap(fn, err)
	}
	err = surf.Init(dbf.Params{&dbf.P{N: "En", V: o.Prms[0]}, &dbf.P{N: "Et", V: o.Prms[1]}})
	if err != nil {
		return nil, nil, errs.Wrap(fn, err)
	}
	return
}
