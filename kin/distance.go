// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kin implements kinematic quantities for pairs of deformable particles
package kin

import (
	"github.com/UCBoulder/tardigrade-asp-sub000/drv"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
)

// names of input groups
var (
	DistNames     = []string{"Xi1", "Xi2", "D", "F", "chi", "chinl"}
	DistGradNames = []string{"Xi1", "Xi2", "D", "F", "chi", "gradchi"}
	distSizes     = []int{3, 3, 3, 9, 9, 9}
	distGradSizes = []int{3, 3, 3, 9, 9, 27}
)

// CurrentDistance computes the current distance between a point on the local particle and a point
// on the non-local particle
//
//	d_i = F_iI dX_I - χ_iI Ξ1_I + χnl_iI Ξ2_I   with   dX = Ξ1 + D - Ξ2
//
//	Ξ1    -- local micro-position (reference)
//	Ξ2    -- non-local micro-position (reference)
//	D     -- reference distance vector
//	F     -- deformation gradient
//	χ     -- local micro-deformation
//	χnl   -- non-local micro-deformation
//	order -- 0, 1 or 2. Derivatives w.r.t. the groups in DistNames
func CurrentDistance(Ξ1, Ξ2, D, F, χ, χnl []float64, order int) (d *drv.Set, err error) {

	// check
	fn := "CurrentDistance"
	for i, v := range [][]float64{Ξ1, Ξ2, D, F, χ, χnl} {
		if err = errs.CheckSize(fn, DistNames[i], v, distSizes[i]); err != nil {
			return
		}
	}
	if order > 2 {
		order = 2
	}

	// value
	d = drv.NewSet(3, order, DistNames, distSizes)
	dX := make([]float64, 3)
	for I := 0; I < 3; I++ {
		dX[I] = Ξ1[I] + D[I] - Ξ2[I]
	}
	for i := 0; i < 3; i++ {
		for I := 0; I < 3; I++ {
			d.V[i] += F[i*3+I]*dX[I] - χ[i*3+I]*Ξ1[I] + χnl[i*3+I]*Ξ2[I]
		}
	}
	if order < 1 {
		return
	}

	// first derivatives
	oΞ1, oΞ2, oD, oF, oχ, oχnl := 0, 3, 6, 9, 18, 27
	for i := 0; i < 3; i++ {
		for J := 0; J < 3; J++ {
			d.D1[d.I1(i, oΞ1+J)] = F[i*3+J] - χ[i*3+J]
			d.D1[d.I1(i, oΞ2+J)] = -F[i*3+J] + χnl[i*3+J]
			d.D1[d.I1(i, oD+J)] = F[i*3+J]
			d.D1[d.I1(i, oF+i*3+J)] = dX[J]
			d.D1[d.I1(i, oχ+i*3+J)] = -Ξ1[J]
			d.D1[d.I1(i, oχnl+i*3+J)] = Ξ2[J]
		}
	}
	if order < 2 {
		return
	}

	// second derivatives (constant)
	for i := 0; i < 3; i++ {
		for J := 0; J < 3; J++ {
			d.Put2(i, oF+i*3+J, oΞ1+J, 1)
			d.Put2(i, oF+i*3+J, oΞ2+J, -1)
			d.Put2(i, oF+i*3+J, oD+J, 1)
			d.Put2(i, oχ+i*3+J, oΞ1+J, -1)
			d.Put2(i, oχnl+i*3+J, oΞ2+J, 1)
		}
	}
	return
}

// NonLocalChi computes χnl = χb + ∇χ·dX together with derivatives w.r.t. the inputs of the
// distance function written with the spatial gradient of χ (groups in DistGradNames); i.e. dX = Ξ1 + D - Ξ2
//
//	order -- 0, 1 or 2 (higher derivatives vanish)
func NonLocalChi(Ξ1, Ξ2, D, χb, gradχ []float64, order int) (χnl *drv.Set) {
	χnl = drv.NewSet(9, order, DistGradNames, distGradSizes)
	dX := make([]float64, 3)
	for I := 0; I < 3; I++ {
		dX[I] = Ξ1[I] + D[I] - Ξ2[I]
	}
	for iI := 0; iI < 9; iI++ {
		χnl.V[iI] = χb[iI]
		for J := 0; J < 3; J++ {
			χnl.V[iI] += gradχ[iI*3+J] * dX[J]
		}
	}
	if order < 1 {
		return
	}
	oΞ1, oΞ2, oD, oχ, oG := 0, 3, 6, 18, 27
	for iI := 0; iI < 9; iI++ {
		χnl.D1[χnl.I1(iI, oχ+iI)] = 1
		for J := 0; J < 3; J++ {
			g := gradχ[iI*3+J]
			χnl.D1[χnl.I1(iI, oΞ1+J)] = g
			χnl.D1[χnl.I1(iI, oD+J)] = g
			χnl.D1[χnl.I1(iI, oΞ2+J)] = -g
			χnl.D1[χnl.I1(iI, oG+iI*3+J)] = dX[J]
		}
	}
	if order < 2 {
		return
	}
	for iI := 0; iI < 9; iI++ {
		for J := 0; J < 3; J++ {
			χnl.Put2(iI, oG+iI*3+J, oΞ1+J, 1)
			χnl.Put2(iI, oG+iI*3+J, oD+J, 1)
			χnl.Put2(iI, oG+iI*3+J, oΞ2+J, -1)
		}
	}
	return
}

// CurrentDistanceGrad computes the current distance with the non-local micro-deformation
// reconstructed from the spatial gradient of χ; i.e. χnl = χ + ∇χ·dX
//
//	order -- 0, 1, 2 or 3. Derivatives w.r.t. the groups in DistGradNames
//	d     -- distance and derivatives
//	χnl   -- reconstructed non-local micro-deformation and its derivatives
func CurrentDistanceGrad(Ξ1, Ξ2, D, F, χ, gradχ []float64, order int) (d, χnl *drv.Set, err error) {

	// check
	fn := "CurrentDistanceGrad"
	for i, v := range [][]float64{Ξ1, Ξ2, D, F, χ, gradχ} {
		if err = errs.CheckSize(fn, DistGradNames[i], v, distGradSizes[i]); err != nil {
			return
		}
	}

	// map (Ξ1, Ξ2, D, F, χ, ∇χ) ↦ (Ξ1, Ξ2, D, F, χ, χnl)
	χnl = NonLocalChi(Ξ1, Ξ2, D, χ, gradχ, order)
	fo := order
	if fo > 2 {
		fo = 2
	}
	f, err := CurrentDistance(Ξ1, Ξ2, D, F, χ, χnl.V, fo)
	if err != nil {
		return nil, nil, errs.Wrap(fn, err)
	}
	if order > 2 {
		f = withZeroD3(f)
	}
	d = drv.Chain(f, inputMap(Ξ1, Ξ2, D, F, χ, χnl, order), order)
	return
}

// inputMap assembles the inner map (Ξ1, Ξ2, D, F, χ, ∇χ) ↦ (Ξ1, Ξ2, D, F, χ, χnl)
func inputMap(Ξ1, Ξ2, D, F, χ []float64, χnl *drv.Set, order int) (g *drv.Set) {
	g = drv.NewSet(36, order, DistGradNames, distGradSizes)
	copy(g.V, drv.Pack(Ξ1, Ξ2, D, F, χ, χnl.V))
	if order < 1 {
		return
	}
	for a := 0; a < 27; a++ {
		g.D1[g.I1(a, a)] = 1
	}
	n := g.Nin
	copy(g.D1[27*n:], χnl.D1)
	if order > 1 {
		copy(g.D2[27*n*n:], χnl.D2)
	}
	return
}

// withZeroD3 returns a copy of s with order raised to 3 and zero third derivatives
func withZeroD3(s *drv.Set) (r *drv.Set) {
	r = drv.NewSet(s.Nout, 3, s.Names(), s.Sizes())
	copy(r.V, s.V)
	copy(r.D1, s.D1)
	copy(r.D2, s.D2)
	return
}
