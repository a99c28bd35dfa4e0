// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// register quadrilaterals
func init() {

	// qua4
	factory["qua4"] = &Shape{
		Type:   "qua4",
		Func:   Qua4,
		Gndim:  2,
		Nverts: 4,
		NatCoords: [][]float64{
			{-1, 1, 1, -1},
			{-1, -1, 1, 1},
		},
	}
	factory["qua4"].init_scratchpad()

	// qua9
	factory["qua9"] = &Shape{
		Type:   "qua9",
		Func:   Qua9,
		Gndim:  2,
		Nverts: 9,
		NatCoords: [][]float64{
			{-1, 1, 1, -1, 0, 1, 0, -1, 0},
			{-1, -1, 1, 1, -1, 0, 1, 0, 0},
		},
	}
	factory["qua9"].init_scratchpad()
}

// Qua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements at {r,s} natural coordinates. The derivatives are calculated only if derivs==true.
//
//	3-----------2
//	|     s     |
//	|     |     |
//	|     +--r  |
//	|           |
//	|           |
//	0-----------1
func Qua4(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]
	S[0] = (1.0 - r - s + r*s) / 4.0
	S[1] = (1.0 + r - s - r*s) / 4.0
	S[2] = (1.0 + r + s + r*s) / 4.0
	S[3] = (1.0 - r + s - r*s) / 4.0
	if !derivs {
		return
	}
	dSdR[0][0] = (-1.0 + s) / 4.0
	dSdR[0][1] = (-1.0 + r) / 4.0
	dSdR[1][0] = (+1.0 - s) / 4.0
	dSdR[1][1] = (-1.0 - r) / 4.0
	dSdR[2][0] = (+1.0 + s) / 4.0
	dSdR[2][1] = (+1.0 + r) / 4.0
	dSdR[3][0] = (-1.0 - s) / 4.0
	dSdR[3][1] = (+1.0 - r) / 4.0
}

// Qua9 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua9
// elements at {r,s} natural coordinates. The derivatives are calculated only if derivs==true.
//
//	3-----6-----2
//	|     s     |
//	|     |     |
//	7     8--r  5
//	|           |
//	|           |
//	0-----4-----1
func Qua9(S []float64, dSdR [][]float64, R []float64, derivs bool) {
	r, s := R[0], R[1]

	// one-dimensional quadratic functions at (-1, 1, 0)
	lr := []float64{r * (r - 1.0) / 2.0, r * (r + 1.0) / 2.0, 1.0 - r*r}
	ls := []float64{s * (s - 1.0) / 2.0, s * (s + 1.0) / 2.0, 1.0 - s*s}
	a := []int{0, 1, 1, 0, 2, 1, 2, 0, 2} // r index of node
	b := []int{0, 0, 1, 1, 0, 2, 1, 2, 2} // s index of node
	for n := 0; n < 9; n++ {
		S[n] = lr[a[n]] * ls[b[n]]
	}
	if !derivs {
		return
	}
	dr := []float64{r - 0.5, r + 0.5, -2.0 * r}
	ds := []float64{s - 0.5, s + 0.5, -2.0 * s}
	for n := 0; n < 9; n++ {
		dSdR[n][0] = dr[a[n]] * ls[b[n]]
		dSdR[n][1] = lr[a[n]] * ds[b[n]]
	}
}
