// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// GreenLagrange computes E = ½ (χᵀχ - I)
func GreenLagrange(χ []float64) (E []float64) {
	E = make([]float64, 9)
	for I := 0; I < 3; I++ {
		for J := 0; J < 3; J++ {
			for k := 0; k < 3; k++ {
				E[I*3+J] += 0.5 * χ[k*3+I] * χ[k*3+J]
			}
		}
		E[I*3+I] -= 0.5
	}
	return
}

// VoigtIdx holds the (i,j) indices of the components in Voigt order (11, 22, 33, 12, 13, 23)
var VoigtIdx = [][]int{{0, 0}, {1, 1}, {2, 2}, {0, 1}, {0, 2}, {1, 2}}

// ToVoigt converts a flat 3×3 symmetric tensor to Voigt order (11, 22, 33, 12, 13, 23)
func ToVoigt(σ []float64) (v []float64) {
	v = make([]float64, 6)
	for m, ij := range VoigtIdx {
		v[m] = 0.5 * (σ[ij[0]*3+ij[1]] + σ[ij[1]*3+ij[0]])
	}
	return
}

// ElasticTangent computes the small-strain isotropic tangent in Voigt order with engineering shear
// strains
//
//	D -- [6][6] pre-allocated
func ElasticTangent(D [][]float64, λ, μ float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			D[i][j] = 0
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D[i][j] = λ
		}
		D[i][i] = λ + 2.0*μ
		D[3+i][3+i] = μ
	}
}
