// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of assembled results
package out

import (
	"bytes"

	"github.com/UCBoulder/tardigrade-asp-sub000/agg"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/quad"
	"github.com/cpmech/gosl/io"
)

// keys of interaction quantities
var Keys = []string{"adh_energy", "adh_thick", "ovl_energy", "ovl_thick"}

// GetRes returns the values of the interaction quantity 'key' of the pair (i, k) at all surface
// points of particle i
func GetRes(res *agg.Results, key string, i, k int) (vals []float64, err error) {
	var a [][][]float64
	switch key {
	case "adh_energy":
		a = res.AdhesionEnergy
	case "adh_thick":
		a = res.AdhesionThickness
	case "ovl_energy":
		a = res.OverlapEnergy
	case "ovl_thick":
		a = res.OverlapThickness
	default:
		return nil, errs.Prec("GetRes", "key %q is not available. Keys = %v", key, Keys)
	}
	if i < 0 || i >= res.N || k < 0 || k >= res.N {
		return nil, errs.Prec("GetRes", "pair (%d, %d) is out of range. N = %d", i, k, res.N)
	}
	vals = make([]float64, res.M)
	for j := 0; j < res.M; j++ {
		vals[j] = a[i][j][k]
	}
	return
}

// Integrate integrates the interaction quantity 'key' of the pair (i, k) over the reference
// surface of particle i with radius r, using the surface points selected by loc
func Integrate(res *agg.Results, sph *quad.Sphere, key string, i, k int, r float64, loc Locator) (sum float64, err error) {
	vals, err := GetRes(res, key, i, k)
	if err != nil {
		return
	}
	if len(sph.P) != res.M {
		return 0, errs.Size("Integrate", "quadrature points", len(sph.P), res.M)
	}
	for _, j := range loc.Locate(sph) {
		sum += sph.W[j] * vals[j]
	}
	return sum * r * r, nil
}

// Particles writes the table of local quantities
func Particles(res *agg.Results) (b *bytes.Buffer) {
	b = new(bytes.Buffer)
	io.Ff(b, "%6s%23s%23s%23s%23s%23s\n", "i", "V0", "V", "psi", "E", "logr")
	for i := 0; i < res.N; i++ {
		io.Ff(b, "%6d%23.15e%23.15e%23.15e%23.15e%23.15e\n", i, res.RefVolume[i], res.CurVolume[i], res.EnergyDensity[i], res.Energy[i], res.LogProbRatio[i])
	}
	return
}

// Interactions writes the table of interaction quantities
func Interactions(res *agg.Results) (b *bytes.Buffer) {
	b = new(bytes.Buffer)
	io.Ff(b, "%6s%6s%6s", "i", "j", "k")
	for _, key := range Keys {
		io.Ff(b, "%23s", key)
	}
	io.Ff(b, "\n")
	for i := 0; i < res.N; i++ {
		for j := 0; j < res.M; j++ {
			for k := 0; k < res.N; k++ {
				io.Ff(b, "%6d%6d%6d%23.15e%23.15e%23.15e%23.15e\n", i, j, k,
					res.AdhesionEnergy[i][j][k], res.AdhesionThickness[i][j][k],
					res.OverlapEnergy[i][j][k], res.OverlapThickness[i][j][k])
			}
		}
	}
	return
}

// Save writes <key>-particles.res and <key>-interactions.res to dirout
func Save(dirout, key string, res *agg.Results) {
	io.WriteFileVD(dirout, key+"-particles.res", Particles(res))
	io.WriteFileVD(dirout, key+"-interactions.res", Interactions(res))
}
