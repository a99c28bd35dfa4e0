// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"gonum.org/v1/gonum/integrate/quad"
)

// Ipoint holds the natural coordinates and weight of an integration point: {r, s, t, w}
type Ipoint []float64

// QuaIps returns n×n Gauss-Legendre integration points for quadrilaterals
func QuaIps(n int) (ips []Ipoint) {
	x := make([]float64, n)
	w := make([]float64, n)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)
	ips = make([]Ipoint, 0, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			ips = append(ips, Ipoint{x[i], x[j], 0, w[i] * w[j]})
		}
	}
	return
}
