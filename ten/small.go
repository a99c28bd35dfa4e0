// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ten

import "github.com/UCBoulder/tardigrade-asp-sub000/errs"

// Det3 returns the determinant of a flat 3×3 matrix
func Det3(a []float64) float64 {
	return a[0]*(a[4]*a[8]-a[5]*a[7]) -
		a[1]*(a[3]*a[8]-a[5]*a[6]) +
		a[2]*(a[3]*a[7]-a[4]*a[6])
}

// Inv3 computes ai = a⁻¹ for a flat 3×3 matrix and returns det(a)
func Inv3(ai, a []float64) (det float64, err error) {
	det = Det3(a)
	if det == 0 {
		return 0, errs.Num("Inv3", "matrix is singular")
	}
	ai[0] = (a[4]*a[8] - a[5]*a[7]) / det
	ai[1] = (a[2]*a[7] - a[1]*a[8]) / det
	ai[2] = (a[1]*a[5] - a[2]*a[4]) / det
	ai[3] = (a[5]*a[6] - a[3]*a[8]) / det
	ai[4] = (a[0]*a[8] - a[2]*a[6]) / det
	ai[5] = (a[2]*a[3] - a[0]*a[5]) / det
	ai[6] = (a[3]*a[7] - a[4]*a[6]) / det
	ai[7] = (a[1]*a[6] - a[0]*a[7]) / det
	ai[8] = (a[0]*a[4] - a[1]*a[3]) / det
	return
}

// MatVec computes y = A·x with A flat len(y)×len(x)
func MatVec(y, A, x []float64) {
	n := len(x)
	for i := range y {
		y[i] = 0
		for j := 0; j < n; j++ {
			y[i] += A[i*n+j] * x[j]
		}
	}
}

// MatTVec computes y = Aᵀ·x with A flat len(x)×len(y)
func MatTVec(y, A, x []float64) {
	n := len(y)
	for j := range y {
		y[j] = 0
	}
	for i, xi := range x {
		for j := 0; j < n; j++ {
			y[j] += A[i*n+j] * xi
		}
	}
}

// Axpy returns a + α·b
func Axpy(a []float64, α float64, b []float64) (c []float64) {
	c = make([]float64, len(a))
	for i := range a {
		c[i] = a[i] + α*b[i]
	}
	return
}

// Scale returns α·a
func Scale(α float64, a []float64) (c []float64) {
	c = make([]float64, len(a))
	for i := range a {
		c[i] = α * a[i]
	}
	return
}

// Transpose returns the transpose of a flat rows×cols matrix
func Transpose(A []float64, rows, cols int) (At []float64) {
	At = make([]float64, len(A))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			At[j*rows+i] = A[i*cols+j]
		}
	}
	return
}
