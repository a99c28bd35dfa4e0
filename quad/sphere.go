// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package quad implements the quadrature on the unit sphere obtained by projecting a subdivided
// cube covered by quadratic (qua9) surface elements
package quad

import (
	"math"
	"sync"

	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/shp"
	"github.com/cpmech/gosl/utl"
)

// constants
const (
	MaxLevel = 6  // max refinement level
	NipsEdge = 10 // number of Gauss points along each edge of an element
)

// Sphere holds the quadrature points and weights on the unit sphere
type Sphere struct {
	Level int         // refinement level
	Nel   int         // number of elements along each edge of the cube: 2^Level
	P     [][]float64 // [M][3] points on the unit sphere
	W     []float64   // [M] weights; Σ W = 4π
	Conn  [][]int     // [6 Nel²][9] connectivity of qua9 elements
	Omega []float64   // [6 Nel²] solid angle of each element
}

// cache of spheres; level => sphere
var (
	cache   = make(map[int]*Sphere)
	cacheMu sync.Mutex
)

// Get returns the (cached) quadrature with given refinement level. Safe for concurrent use
func Get(level int) (o *Sphere, err error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if o, ok := cache[level]; ok {
		return o, nil
	}
	o, err = New(level)
	if err != nil {
		return
	}
	cache[level] = o
	return
}

// New builds a quadrature on the unit sphere
//
//	level -- refinement level: each face of the cube is divided into 2^level × 2^level qua9 elements
//	         level 0 gives 26 points
func New(level int) (o *Sphere, err error) {

	// check
	if level < 0 || level > MaxLevel {
		return nil, errs.Prec("quad.New", "refinement level must be in [0, %d]. level = %d", MaxLevel, level)
	}

	// lattice: integer coordinates c in [-Nel, Nel]; cube coordinates are c/Nel
	o = &Sphere{Level: level, Nel: 1 << uint(level)}
	n := o.Nel
	ids := make(map[[3]int]int)
	node := func(c [3]int) int {
		if id, ok := ids[c]; ok {
			return id
		}
		id := len(o.P)
		ids[c] = id
		x := []float64{float64(c[0]), float64(c[1]), float64(c[2])}
		l := math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
		o.P = append(o.P, []float64{x[0] / l, x[1] / l, x[2] / l})
		return id
	}

	// shape and integration points
	shape := shp.Get("qua9", 1)
	ips := shp.QuaIps(NipsEdge)
	xe := utl.Alloc(3, 9)
	we := make([]float64, 9)

	// faces: outward normal along ±axis k; (u, v) axes give counter-clockwise elements seen from outside
	for k := 0; k < 3; k++ {
		for _, sgn := range []int{1, -1} {
			a, b := (k+1)%3, (k+2)%3
			if sgn < 0 {
				a, b = b, a
			}
			for ei := 0; ei < n; ei++ {
				for ej := 0; ej < n; ej++ {

					// element nodes on the lattice; centre at (2ei+1-n, 2ej+1-n)
					conn := make([]int, 9)
					for m := 0; m < 9; m++ {
						var c [3]int
						c[k] = sgn * n
						c[a] = 2*ei + 1 - n + int(shape.NatCoords[0][m])
						c[b] = 2*ej + 1 - n + int(shape.NatCoords[1][m])
						conn[m] = node(c)
						for i := 0; i < 3; i++ {
							xe[i][m] = float64(c[i]) / float64(n)
						}
					}
					o.Conn = append(o.Conn, conn)

					// nodal weights: ∫ S_m dΩ with dΩ = x·(x_r × x_s) / ‖x‖³ dr ds
					for m := 0; m < 9; m++ {
						we[m] = 0
					}
					sum := 0.0
					for _, ip := range ips {
						if err = shape.CalcAtIp(xe, ip, true); err != nil {
							return nil, errs.Wrap("quad.New", err)
						}
						x := make([]float64, 3)
						for i := 0; i < 3; i++ {
							for m := 0; m < 9; m++ {
								x[i] += shape.S[m] * xe[i][m]
							}
						}
						l := math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
						dΩ := ip[3] * (x[0]*shape.Fnvec[0] + x[1]*shape.Fnvec[1] + x[2]*shape.Fnvec[2]) / (l * l * l)
						for m := 0; m < 9; m++ {
							we[m] += shape.S[m] * dΩ
						}
						sum += dΩ
					}

					// scale to the exact solid angle of the element
					u0 := float64(2*ei-n) / float64(n)
					v0 := float64(2*ej-n) / float64(n)
					h := 2.0 / float64(n)
					Ω := SolidAngle(u0, u0+h, v0, v0+h)
					o.Omega = append(o.Omega, Ω)
					for m := 0; m < 9; m++ {
						for len(o.W) <= conn[m] {
							o.W = append(o.W, 0)
						}
						o.W[conn[m]] += we[m] * Ω / sum
					}
				}
			}
		}
	}
	return
}

// SolidAngle returns the solid angle subtended at the origin by the rectangle [u0,u1]×[v0,v1]
// lying on a plane at unit distance
func SolidAngle(u0, u1, v0, v1 float64) float64 {
	G := func(u, v float64) float64 {
		return math.Atan(u * v / math.Sqrt(1.0+u*u+v*v))
	}
	return G(u1, v1) - G(u0, v1) - G(u1, v0) + G(u0, v0)
}

// Npoints returns the number of points
func (o *Sphere) Npoints() int { return len(o.P) }

// Integrate computes ∫ f dΩ over the unit sphere
func (o *Sphere) Integrate(f func(p []float64) float64) (res float64) {
	for m, p := range o.P {
		res += o.W[m] * f(p)
	}
	return
}

// Points returns the points scaled by radius r; i.e. reference surface points r·p
func (o *Sphere) Points(r float64) (x [][]float64) {
	x = utl.Alloc(len(o.P), 3)
	for m, p := range o.P {
		for i := 0; i < 3; i++ {
			x[m][i] = r * p[i]
		}
	}
	return
}
