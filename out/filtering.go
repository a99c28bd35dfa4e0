// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/UCBoulder/tardigrade-asp-sub000/quad"
)

// Locator defines interfaces for selecting surface points of the unit-sphere quadrature
type Locator interface {
	Locate(sph *quad.Sphere) []int
}

// All selects all surface points
type All struct{}

// Near selects the surface points within a distance Tol of X
type Near struct {
	X   []float64
	Tol float64
}

// Hemisphere selects the surface points p with p·N > 0
type Hemisphere struct {
	N []float64
}

// Cap selects the surface points within an angle Theta (radians) of the direction N
type Cap struct {
	N     []float64
	Theta float64
}

// Locate finds points
func (o All) Locate(sph *quad.Sphere) (res []int) {
	res = make([]int, len(sph.P))
	for j := range res {
		res[j] = j
	}
	return
}

// Locate finds points
func (o Near) Locate(sph *quad.Sphere) (res []int) {
	for j, p := range sph.P {
		dx, dy, dz := p[0]-o.X[0], p[1]-o.X[1], p[2]-o.X[2]
		if math.Sqrt(dx*dx+dy*dy+dz*dz) <= o.Tol {
			res = append(res, j)
		}
	}
	return
}

// Locate finds points
func (o Hemisphere) Locate(sph *quad.Sphere) (res []int) {
	for j, p := range sph.P {
		if p[0]*o.N[0]+p[1]*o.N[1]+p[2]*o.N[2] > 0 {
			res = append(res, j)
		}
	}
	return
}

// Locate finds points
func (o Cap) Locate(sph *quad.Sphere) (res []int) {
	n := math.Sqrt(o.N[0]*o.N[0] + o.N[1]*o.N[1] + o.N[2]*o.N[2])
	c := math.Cos(o.Theta)
	for j, p := range sph.P {
		if (p[0]*o.N[0]+p[1]*o.N[1]+p[2]*o.N[2])/n >= c-1e-14 {
			res = append(res, j)
		}
	}
	return
}
