// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ovl

import (
	"github.com/UCBoulder/tardigrade-asp-sub000/drv"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
)

// names of input groups of the particle overlap functions
var (
	GradNames  = []string{"Xi1", "dX", "Rnl", "F", "chi", "gradchi"}
	BaseNames  = []string{"Xi1", "dX", "Rnl", "F", "chi", "chinlb", "gradchi"}
	ChiNlNames = []string{"Xi1", "dX", "Rnl", "F", "chi", "chinl"}
	gradSizes  = []int{3, 3, 1, 9, 9, 27}
	baseSizes  = []int{3, 3, 1, 9, 9, 9, 27}
	chiNlSizes = []int{3, 3, 1, 9, 9, 9}
)

// Overlap computes the overlap of a point of the local particle with the non-local particle whose
// micro-deformation is reconstructed from the local one; i.e. χnl = χ + ∇χ·dX
//
//	Ξ1    -- local micro-position (reference) [3]
//	dX    -- reference spacing between centroids [3]
//	Rnl   -- non-local radius
//	F     -- deformation gradient [9]
//	χ     -- local micro-deformation [9]
//	gradχ -- ∇χ [27] with ∇χ_iIJ = ∂χ_iI/∂X_J
//	order -- 0, 1, 2 or 3. Derivatives w.r.t. the groups in GradNames
//	opts  -- solver options; nil for defaults
func Overlap(Ξ1, dX []float64, Rnl float64, F, χ, gradχ []float64, order int, opts *Options) (d *drv.Set, err error) {
	fn := "Overlap"
	if err = check(fn, GradNames, gradSizes, Ξ1, dX, []float64{Rnl}, F, χ, gradχ); err != nil {
		return
	}
	g := newInputMap(GradNames, gradSizes, order)
	g.χnl(χ, 4, gradχ, dX)
	g.ξt(Ξ1, F, χ, dX)
	return g.solve(fn, Rnl, order, opts)
}

// OverlapBase computes the overlap with the non-local micro-deformation reconstructed from an
// arbitrary base; i.e. χnl = χb + ∇χ·dX
//
//	order -- 0, 1, 2 or 3. Derivatives w.r.t. the groups in BaseNames
func OverlapBase(Ξ1, dX []float64, Rnl float64, F, χ, χb, gradχ []float64, order int, opts *Options) (d *drv.Set, err error) {
	fn := "OverlapBase"
	if err = check(fn, BaseNames, baseSizes, Ξ1, dX, []float64{Rnl}, F, χ, χb, gradχ); err != nil {
		return
	}
	g := newInputMap(BaseNames, baseSizes, order)
	g.χnl(χb, 5, gradχ, dX)
	g.ξt(Ξ1, F, χ, dX)
	return g.solve(fn, Rnl, order, opts)
}

// OverlapChiNl computes the overlap with a given non-local micro-deformation
//
//	order -- 0, 1, 2 or 3. Derivatives w.r.t. the groups in ChiNlNames
func OverlapChiNl(Ξ1, dX []float64, Rnl float64, F, χ, χnl []float64, order int, opts *Options) (d *drv.Set, err error) {
	fn := "OverlapChiNl"
	if err = check(fn, ChiNlNames, chiNlSizes, Ξ1, dX, []float64{Rnl}, F, χ, χnl); err != nil {
		return
	}
	g := newInputMap(ChiNlNames, chiNlSizes, order)
	g.χnl(χnl, 5, nil, dX)
	g.ξt(Ξ1, F, χ, dX)
	return g.solve(fn, Rnl, order, opts)
}

// check checks sizes of inputs
func check(fn string, names []string, sizes []int, inputs ...[]float64) (err error) {
	for i, v := range inputs {
		if err = errs.CheckSize(fn, names[i], v, sizes[i]); err != nil {
			return
		}
	}
	return
}

// inputMap holds p(q) = (χnl, ξt, Rnl) as a function of the caller's inputs q
type inputMap struct {
	p   *drv.Set
	off []int // offsets of input groups
}

// newInputMap allocates the map. Groups 0..4 are always (Ξ1, dX, Rnl, F, χ)
func newInputMap(names []string, sizes []int, order int) (o *inputMap) {
	if order > 2 {
		order = 2 // p(q) is bilinear: third derivatives vanish
	}
	o = &inputMap{p: drv.NewSet(npr, order, names, sizes)}
	for _, g := range o.p.Groups {
		o.off = append(o.off, g.Off)
	}
	return
}

// χnl sets χnl = base + ∇χ·dX where base is the input group at index ibase
func (o *inputMap) χnl(base []float64, ibase int, gradχ, dX []float64) {
	p := o.p
	oB := o.off[ibase]
	odX := o.off[1]
	oG := -1
	if gradχ != nil {
		oG = o.off[len(o.off)-1]
	}
	for iI := 0; iI < 9; iI++ {
		p.V[iI] = base[iI]
		if oG >= 0 {
			for J := 0; J < 3; J++ {
				p.V[iI] += gradχ[iI*3+J] * dX[J]
			}
		}
		if p.Order < 1 {
			continue
		}
		p.D1[p.I1(iI, oB+iI)] = 1
		if oG < 0 {
			continue
		}
		for J := 0; J < 3; J++ {
			p.D1[p.I1(iI, oG+iI*3+J)] = dX[J]
			p.D1[p.I1(iI, odX+J)] = gradχ[iI*3+J]
			if p.Order > 1 {
				p.Put2(iI, oG+iI*3+J, odX+J, 1)
			}
		}
	}
}

// ξt sets the target point ξt = χ·Ξ1 - F·dX and Rnl
func (o *inputMap) ξt(Ξ1, F, χ, dX []float64) {
	p := o.p
	oΞ1, odX, oR, oF, oχ := o.off[0], o.off[1], o.off[2], o.off[3], o.off[4]
	for i := 0; i < 3; i++ {
		r := 9 + i
		for I := 0; I < 3; I++ {
			p.V[r] += χ[i*3+I]*Ξ1[I] - F[i*3+I]*dX[I]
			if p.Order < 1 {
				continue
			}
			p.D1[p.I1(r, oχ+i*3+I)] = Ξ1[I]
			p.D1[p.I1(r, oΞ1+I)] = χ[i*3+I]
			p.D1[p.I1(r, oF+i*3+I)] = -dX[I]
			p.D1[p.I1(r, odX+I)] = -F[i*3+I]
			if p.Order > 1 {
				p.Put2(r, oχ+i*3+I, oΞ1+I, 1)
				p.Put2(r, oF+i*3+I, odX+I, -1)
			}
		}
	}
	if p.Order > 0 {
		p.D1[p.I1(12, oR)] = 1
	}
}

// solve calls the solver and lifts derivatives to the caller's inputs
func (o *inputMap) solve(fn string, Rnl float64, order int, opts *Options) (d *drv.Set, err error) {
	o.p.V[12] = Rnl
	res, err := Solve(o.p.V[:9], o.p.V[9:12], Rnl, order, opts)
	if err != nil {
		return nil, errs.Wrap(fn, err)
	}
	if order < 1 {
		d = drv.NewSet(3, 0, o.p.Names(), o.p.Sizes())
		copy(d.V, res.D.V)
		return
	}
	d = drv.Chain(res.D, o.p, order)
	return
}
