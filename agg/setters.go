// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agg

import (
	"math"

	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/kin"
	"github.com/UCBoulder/tardigrade-asp-sub000/ovl"
	"github.com/UCBoulder/tardigrade-asp-sub000/ten"
)

// initSetters fills the table of setters
func (o *Graph) initSetters() {
	o.setters = [nkeys]func() (Value, error){

		// local particle
		KeyF:             func() (Value, error) { return Value{Vec: ten.Copy(o.St.F)}, nil },
		KeyChi:           func() (Value, error) { return Value{Vec: ten.Copy(o.St.Chi)}, nil },
		KeyGradChi:       func() (Value, error) { return Value{Vec: ten.Copy(o.St.GradChi)}, nil },
		KeyRadius:        func() (Value, error) { return Value{Sca: o.St.Radii[o.I]}, nil },
		KeyRefPoints:     o.setRefPoints,
		KeyCurPoints:     o.setCurPoints,
		KeyBox:           o.setBox,
		KeyRefVolume:     o.setRefVolume,
		KeyCurVolume:     o.setCurVolume,
		KeyEnergyDensity: o.setEnergyDensity,
		KeyEnergy:        o.setEnergy,
		KeyMicroStress:   o.setMicroStress,
		KeyLogProbRatio:  o.setLogProbRatio,
		KeyStateVars:     o.setStateVars,

		// surface point
		KeyRefNormal: func() (Value, error) { return Value{Vec: ten.Copy(o.Sphere.P[o.J])}, nil },
		KeyCurNormal: o.setCurNormal,
		KeyLocalPos:  o.setLocalPos,

		// interaction pair
		KeyNlRadius:          func() (Value, error) { return Value{Sca: o.St.Radii[o.K]}, nil },
		KeyNlBox:             o.setNlBox,
		KeyNlPos:             o.setNlPos,
		KeyRefDistance:       o.setRefDistance,
		KeyChiNl:             o.setChiNl,
		KeySpacing:           o.setSpacing,
		KeyCurDistance:       o.setCurDistance,
		KeyOverlap:           o.setOverlap,
		KeyAdhesionEnergy:    o.setAdhesionEnergy,
		KeyAdhesionTraction:  o.setAdhesionTraction,
		KeyAdhesionThickness: o.setAdhesionThickness,
		KeyOverlapEnergy:     o.setOverlapEnergy,
		KeyOverlapTraction:   o.setOverlapTraction,
		KeyOverlapThickness:  o.setOverlapThickness,
	}
}

// vectors gets many vector quantities at once
func (o *Graph) vectors(keys ...Key) (res [][]float64, err error) {
	res = make([][]float64, len(keys))
	for i, k := range keys {
		if res[i], err = o.Vector(k); err != nil {
			return
		}
	}
	return
}

// local particle //////////////////////////////////////////////////////////////////////////////////

func (o *Graph) setRefPoints() (v Value, err error) {
	r, err := o.Scalar(KeyRadius)
	if err != nil {
		return
	}
	v.Vec = make([]float64, 0, 3*len(o.Sphere.P))
	for _, p := range o.Sphere.P {
		v.Vec = append(v.Vec, r*p[0], r*p[1], r*p[2])
	}
	return
}

func (o *Graph) setCurPoints() (v Value, err error) {
	a, err := o.vectors(KeyChi, KeyRefPoints)
	if err != nil {
		return
	}
	χ, X := a[0], a[1]
	v.Vec = make([]float64, len(X))
	for m := 0; m < len(X)/3; m++ {
		ten.MatVec(v.Vec[3*m:3*m+3], χ, X[3*m:3*m+3])
	}
	return
}

func (o *Graph) setBox() (v Value, err error) {
	a, err := o.vectors(KeyF, KeyCurPoints)
	if err != nil {
		return
	}
	v.Vec = box(a[1], centre(a[0], o.St.Centroid(o.I)))
	return
}

func (o *Graph) setRefVolume() (v Value, err error) {
	r, err := o.Scalar(KeyRadius)
	v.Sca = 4.0 * math.Pi * r * r * r / 3.0
	return
}

func (o *Graph) setCurVolume() (v Value, err error) {
	χ, err := o.Vector(KeyChi)
	if err != nil {
		return
	}
	V0, err := o.Scalar(KeyRefVolume)
	if err != nil {
		return
	}
	J := ten.Det3(χ)
	if J <= 0 {
		return v, errs.Prec("setCurVolume", "determinant of chi must be positive. J = %g", J)
	}
	v.Sca = J * V0
	return
}

func (o *Graph) setEnergyDensity() (v Value, err error) {
	χ, err := o.Vector(KeyChi)
	if err != nil {
		return
	}
	v.Sca, _, err = o.Bulk.Energy(χ)
	return
}

func (o *Graph) setEnergy() (v Value, err error) {
	ψ, err := o.Scalar(KeyEnergyDensity)
	if err != nil {
		return
	}
	V0, err := o.Scalar(KeyRefVolume)
	v.Sca = ψ * V0
	return
}

func (o *Graph) setMicroStress() (v Value, err error) {
	χ, err := o.Vector(KeyChi)
	if err != nil {
		return
	}
	_, v.Vec, err = o.Bulk.Energy(χ)
	return
}

func (o *Graph) setLogProbRatio() (v Value, err error) {
	if o.St.Temp <= 0 {
		return
	}
	E, err := o.Scalar(KeyEnergy)
	if err != nil {
		return
	}
	V0, err := o.Scalar(KeyRefVolume)
	if err != nil {
		return
	}
	ψprev, _, err := o.Bulk.Energy(o.St.ChiPrev)
	if err != nil {
		return
	}
	v.Sca = -(E - ψprev*V0) / o.St.Temp
	return
}

func (o *Graph) setStateVars() (v Value, err error) {
	E, err := o.Scalar(KeyEnergy)
	if err != nil {
		return
	}
	V, err := o.Scalar(KeyCurVolume)
	v.Vec = []float64{E, V}
	return
}

// surface point ///////////////////////////////////////////////////////////////////////////////////

func (o *Graph) setCurNormal() (v Value, err error) {
	a, err := o.vectors(KeyChi, KeyRefNormal)
	if err != nil {
		return
	}
	v.Vec, err = kin.CurrentNormal(a[0], a[1])
	return
}

func (o *Graph) setLocalPos() (v Value, err error) {
	N, err := o.Vector(KeyRefNormal)
	if err != nil {
		return
	}
	r, err := o.Scalar(KeyRadius)
	v.Vec = ten.Scale(r, N)
	return
}

// interaction pair ////////////////////////////////////////////////////////////////////////////////

func (o *Graph) setNlPos() (v Value, err error) {
	N, err := o.Vector(KeyRefNormal)
	if err != nil {
		return
	}
	r, err := o.Scalar(KeyNlRadius)
	v.Vec = ten.Scale(-r, N)
	return
}

// setRefDistance computes D = (X_k - X_i) - Ξ1 + Ξ2 such that dX is the centroid spacing
func (o *Graph) setRefDistance() (v Value, err error) {
	a, err := o.vectors(KeyLocalPos, KeyNlPos)
	if err != nil {
		return
	}
	Xi, Xk := o.St.Centroid(o.I), o.St.Centroid(o.K)
	v.Vec = make([]float64, 3)
	for I := 0; I < 3; I++ {
		v.Vec[I] = Xk[I] - Xi[I] - a[0][I] + a[1][I]
	}
	return
}

func (o *Graph) setSpacing() (v Value, err error) {
	a, err := o.vectors(KeyLocalPos, KeyRefDistance, KeyNlPos)
	if err != nil {
		return
	}
	v.Vec = make([]float64, 3)
	for I := 0; I < 3; I++ {
		v.Vec[I] = a[0][I] + a[1][I] - a[2][I]
	}
	return
}

func (o *Graph) setChiNl() (v Value, err error) {
	a, err := o.vectors(KeyChi, KeyGradChi, KeySpacing)
	if err != nil {
		return
	}
	χ, G, dX := a[0], a[1], a[2]
	v.Vec = make([]float64, 9)
	for iI := 0; iI < 9; iI++ {
		v.Vec[iI] = χ[iI] + G[iI*3]*dX[0] + G[iI*3+1]*dX[1] + G[iI*3+2]*dX[2]
	}
	return
}

func (o *Graph) setNlBox() (v Value, err error) {
	a, err := o.vectors(KeyF, KeyChiNl)
	if err != nil {
		return
	}
	r, err := o.Scalar(KeyNlRadius)
	if err != nil {
		return
	}
	x := make([]float64, 3*len(o.Sphere.P))
	for m, p := range o.Sphere.P {
		ten.MatVec(x[3*m:3*m+3], a[1], ten.Scale(r, p))
	}
	v.Vec = box(x, centre(a[0], o.St.Centroid(o.K)))
	return
}

func (o *Graph) setCurDistance() (v Value, err error) {
	a, err := o.vectors(KeyLocalPos, KeyNlPos, KeyRefDistance, KeyF, KeyChi, KeyGradChi)
	if err != nil {
		return
	}
	d, _, err := kin.CurrentDistanceGrad(a[0], a[1], a[2], a[3], a[4], a[5], 0)
	if err != nil {
		return
	}
	v.Vec = d.V
	return
}

// decompose splits d on the current normal
func (o *Graph) decompose(d []float64) (dn, dt []float64, err error) {
	n, err := o.Vector(KeyCurNormal)
	if err != nil {
		return
	}
	sn, st, err := kin.DecomposeVector(d, n, 0)
	if err != nil {
		return
	}
	return sn.V, st.V, nil
}

func (o *Graph) setAdhesionEnergy() (v Value, err error) {
	d, err := o.Vector(KeyCurDistance)
	if err != nil {
		return
	}
	dn, dt, err := o.decompose(d)
	if err != nil {
		return
	}
	e, err := o.Surf.Energy(dn, dt, 0)
	if err != nil {
		return
	}
	v.Sca = e.V[0]
	return
}

func (o *Graph) setAdhesionTraction() (v Value, err error) {
	d, err := o.Vector(KeyCurDistance)
	if err != nil {
		return
	}
	dn, dt, err := o.decompose(d)
	if err != nil {
		return
	}
	t, err := o.Surf.Traction(dn, dt, 0)
	if err != nil {
		return
	}
	v.Vec = t.V
	return
}

func (o *Graph) setAdhesionThickness() (v Value, err error) {
	a, err := o.vectors(KeyCurDistance, KeyCurNormal)
	if err != nil {
		return
	}
	v.Sca = ten.Dot(a[0], a[1])
	return
}

// setOverlap computes the overlap of the current surface point with the non-local particle if the
// point lies within the bounding box of the non-local particle
func (o *Graph) setOverlap() (v Value, err error) {
	a, err := o.vectors(KeyLocalPos, KeySpacing, KeyF, KeyChi, KeyGradChi, KeyNlBox)
	if err != nil {
		return
	}
	Ξ1, dX, F, χ, G, nlbox := a[0], a[1], a[2], a[3], a[4], a[5]
	v.Map = make(map[int][]float64)
	x := centre(F, o.St.Centroid(o.I))
	y := make([]float64, 3)
	ten.MatVec(y, χ, Ξ1)
	for i := 0; i < 3; i++ {
		x[i] += y[i]
	}
	if !inBox(x, nlbox) {
		return
	}
	r, err := o.Scalar(KeyNlRadius)
	if err != nil {
		return
	}
	d, err := ovl.Overlap(Ξ1, dX, r, F, χ, G, 0, o.St.Opts)
	if err != nil {
		return
	}
	if ten.L2norm(d.V) > 0 {
		v.Map[o.K] = d.V
	}
	return
}

// overlapMap applies a function to each overlap vector
func (o *Graph) overlapMap(f func(d []float64) ([]float64, error)) (v Value, err error) {
	ovlp, err := o.Mapping(KeyOverlap)
	if err != nil {
		return
	}
	v.Map = make(map[int][]float64)
	for k, d := range ovlp {
		if v.Map[k], err = f(d); err != nil {
			return
		}
	}
	return
}

func (o *Graph) setOverlapEnergy() (Value, error) {
	return o.overlapMap(func(d []float64) ([]float64, error) {
		dn, dt, err := o.decompose(d)
		if err != nil {
			return nil, err
		}
		e, err := o.Surf.Energy(dn, dt, 0)
		if err != nil {
			return nil, err
		}
		return e.V, nil
	})
}

func (o *Graph) setOverlapTraction() (Value, error) {
	return o.overlapMap(func(d []float64) ([]float64, error) {
		dn, dt, err := o.decompose(d)
		if err != nil {
			return nil, err
		}
		t, err := o.Surf.Traction(dn, dt, 0)
		if err != nil {
			return nil, err
		}
		return t.V, nil
	})
}

func (o *Graph) setOverlapThickness() (Value, error) {
	return o.overlapMap(func(d []float64) ([]float64, error) {
		return []float64{ten.L2norm(d)}, nil
	})
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// centre returns the current centroid F·X
func centre(F, X []float64) (x []float64) {
	x = make([]float64, 3)
	ten.MatVec(x, F, X)
	return
}

// box returns the bounding box (xmin, ymin, zmin, xmax, ymax, zmax) of points [M×3] shifted by c
func box(points, c []float64) (b []float64) {
	b = []float64{math.Inf(1), math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for m := 0; m < len(points)/3; m++ {
		for i := 0; i < 3; i++ {
			x := c[i] + points[3*m+i]
			b[i] = math.Min(b[i], x)
			b[3+i] = math.Max(b[3+i], x)
		}
	}
	return
}

// inBox tells whether x lies within the bounding box b
func inBox(x, b []float64) bool {
	for i := 0; i < 3; i++ {
		if x[i] < b[i] || x[i] > b[3+i] {
			return false
		}
	}
	return true
}
