// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

import (
	"math"

	"github.com/UCBoulder/tardigrade-asp-sub000/drv"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/ten"
)

// UnitTol is the tolerance to accept ‖n‖ = 1
var UnitTol = 1e-6

// DecomposeVector splits d into normal and tangential parts w.r.t. the unit vector n
//
//	dn = (d·n) n    and    dt = d - dn
//
//	Output: dn and dt, each with derivatives w.r.t. the groups "d" and "n"
//	order -- 0, 1 or 2
func DecomposeVector(d, n []float64, order int) (dn, dt *drv.Set, err error) {

	// check
	fn := "DecomposeVector"
	if err = errs.CheckSize(fn, "d", d, 3); err != nil {
		return
	}
	if err = errs.CheckSize(fn, "n", n, 3); err != nil {
		return
	}
	if nrm := ten.L2norm(n); math.Abs(nrm-1) > UnitTol {
		return nil, nil, errs.Prec(fn, "n is not a unit vector. ‖n‖ = %g", nrm)
	}
	if order > 2 {
		order = 2
	}

	// values
	names, sizes := []string{"d", "n"}, []int{3, 3}
	dn = drv.NewSet(3, order, names, sizes)
	dt = drv.NewSet(3, order, names, sizes)
	dot := ten.Dot(d, n)
	for i := 0; i < 3; i++ {
		dn.V[i] = dot * n[i]
		dt.V[i] = d[i] - dn.V[i]
	}
	if order < 1 {
		return
	}

	// first derivatives
	od, on := 0, 3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			δ := 0.0
			if i == j {
				δ = 1
			}
			dn.D1[dn.I1(i, od+j)] = n[i] * n[j]
			dn.D1[dn.I1(i, on+j)] = d[j]*n[i] + dot*δ
			dt.D1[dt.I1(i, od+j)] = δ - n[i]*n[j]
			dt.D1[dt.I1(i, on+j)] = -dn.D1[dn.I1(i, on+j)]
		}
	}
	if order < 2 {
		return
	}

	// second derivatives
	//  ∂²dn_i/∂d_j∂n_k = δ_jk n_i + n_j δ_ik
	//  ∂²dn_i/∂n_j∂n_k = d_j δ_ik + d_k δ_ij
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				v := 0.0
				if j == k {
					v += n[i]
				}
				if i == k {
					v += n[j]
				}
				dn.D2[dn.I2(i, od+j, on+k)] = v
				dn.D2[dn.I2(i, on+k, od+j)] = v
				dt.D2[dt.I2(i, od+j, on+k)] = -v
				dt.D2[dt.I2(i, on+k, od+j)] = -v
				w := 0.0
				if i == k {
					w += d[j]
				}
				if i == j {
					w += d[k]
				}
				dn.D2[dn.I2(i, on+j, on+k)] = w
				dt.D2[dt.I2(i, on+j, on+k)] = -w
			}
		}
	}
	return
}

// Nanson computes the push-forward of an oriented area element
//
//	da n_i = J dA N_I F⁻¹_Ii
//
//	F     -- deformation gradient [9]
//	dAN   -- dA·N [3]
//	order -- 0, 1 or 2. Derivatives w.r.t. the groups "F" and "dAN"
func Nanson(F, dAN []float64, order int) (dan *drv.Set, err error) {

	// check
	fn := "Nanson"
	if err = errs.CheckSize(fn, "F", F, 9); err != nil {
		return
	}
	if err = errs.CheckSize(fn, "dAN", dAN, 3); err != nil {
		return
	}
	Fi := make([]float64, 9)
	J, err := ten.Inv3(Fi, F)
	if err != nil {
		return nil, errs.Wrap(fn, err)
	}
	if order > 2 {
		order = 2
	}

	// value: a_i = N_I F⁻¹_Ii  and  n_i = J a_i
	dan = drv.NewSet(3, order, []string{"F", "dAN"}, []int{9, 3})
	a := make([]float64, 3)
	ten.MatTVec(a, Fi, dAN)
	for i := 0; i < 3; i++ {
		dan.V[i] = J * a[i]
	}
	if order < 1 {
		return
	}

	// first derivatives
	//  ∂n_i/∂N_J   = J F⁻¹_Ji
	//  ∂n_i/∂F_kK  = J (F⁻¹_Kk a_i - a_k F⁻¹_Ki)
	oF, oN := 0, 9
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dan.D1[dan.I1(i, oN+j)] = J * Fi[j*3+i]
		}
		for k := 0; k < 3; k++ {
			for K := 0; K < 3; K++ {
				dan.D1[dan.I1(i, oF+k*3+K)] = J * (Fi[K*3+k]*a[i] - a[k]*Fi[K*3+i])
			}
		}
	}
	if order < 2 {
		return
	}

	// second derivatives
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			for K := 0; K < 3; K++ {
				kK := oF + k*3 + K

				// ∂²n_i/∂F_kK∂N_L = J (F⁻¹_Kk F⁻¹_Li - F⁻¹_Lk F⁻¹_Ki)
				for L := 0; L < 3; L++ {
					v := J * (Fi[K*3+k]*Fi[L*3+i] - Fi[L*3+k]*Fi[K*3+i])
					dan.Put2(i, kK, oN+L, v)
				}

				// ∂²n_i/∂F_kK∂F_lL
				for l := 0; l < 3; l++ {
					for L := 0; L < 3; L++ {
						v := Fi[L*3+l]*(Fi[K*3+k]*a[i]-a[k]*Fi[K*3+i]) -
							Fi[K*3+l]*Fi[L*3+k]*a[i] -
							Fi[K*3+k]*a[l]*Fi[L*3+i] +
							a[l]*Fi[L*3+k]*Fi[K*3+i] +
							a[k]*Fi[K*3+l]*Fi[L*3+i]
						dan.D2[dan.I2(i, kK, oF+l*3+L)] = J * v
					}
				}
			}
		}
	}
	return
}

// CurrentNormal returns the unit current normal from the Nanson push of N by χ
func CurrentNormal(χ, N []float64) (n []float64, err error) {
	dan, err := Nanson(χ, N, 0)
	if err != nil {
		return nil, errs.Wrap("CurrentNormal", err)
	}
	nrm := ten.L2norm(dan.V)
	if nrm == 0 {
		return nil, errs.Num("CurrentNormal", "pushed normal has zero length")
	}
	return ten.Scale(1.0/nrm, dan.V), nil
}
