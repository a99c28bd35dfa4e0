// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import "math"

// IsoOverlap computes the overlap of the target point ξt with a particle of radius R subjected to
// the isotropic micro-deformation χnl = α I. The current particle is a sphere of radius α R and
// the overlap is the vector from ξt to the closest point of its surface
//
//	       , - ~ - ,
//	   , '    ↑d    ' ,
//	 ,        •ξt       ,
//	,         |          ,
//	,         o ──────── , αR
//	,                    ,
//	 ,                  ,
//	   ,             , '
//	     ' - , ,  '
func IsoOverlap(α, R float64, ξt []float64) (d []float64) {
	d = make([]float64, 3)
	r := math.Sqrt(ξt[0]*ξt[0] + ξt[1]*ξt[1] + ξt[2]*ξt[2])
	if r > α*R || r == 0 {
		return
	}
	c := α*R/r - 1.0
	for i := 0; i < 3; i++ {
		d[i] = c * ξt[i]
	}
	return
}

// SvkStretch computes the energy density and micro-stress of the Saint Venant-Kirchhoff model
// subjected to the stretch χ = diag(s)
//
//	E_i = ½ (s_i² - 1)
//	ψ   = ½ λ (Σ E_i)² + μ Σ E_i²
//	P_i = s_i (λ Σ E_i + 2 μ E_i)
func SvkStretch(λ, μ float64, s []float64) (ψ float64, P []float64) {
	E := make([]float64, 3)
	var trE, EE float64
	for i := 0; i < 3; i++ {
		E[i] = 0.5 * (s[i]*s[i] - 1.0)
		trE += E[i]
		EE += E[i] * E[i]
	}
	ψ = 0.5*λ*trE*trE + μ*EE
	P = make([]float64, 9)
	for i := 0; i < 3; i++ {
		P[i*3+i] = s[i] * (λ*trE + 2.0*μ*E[i])
	}
	return
}

// SphereVolume returns the volume of the sphere of radius r deformed by a stretch with
// determinant J
func SphereVolume(r, J float64) float64 {
	return J * 4.0 * math.Pi * r * r * r / 3.0
}

// ContactGap returns the normal gap between the surface points of two spheres facing each other
// along the line of centres; negative values mean interpenetration
func ContactGap(dist, r1, r2 float64) float64 {
	return dist - r1 - r2
}
