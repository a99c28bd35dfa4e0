// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_spheres01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spheres01. isotropic overlap")

	chk.Array(tst, "inside", 1e-15, IsoOverlap(1, 1, []float64{0.1, 0, 0}), []float64{0.9, 0, 0})
	chk.Array(tst, "outside", 1e-15, IsoOverlap(1, 1, []float64{1.1, 0, 0}), []float64{0, 0, 0})
	chk.Array(tst, "stretched", 1e-15, IsoOverlap(2, 1, []float64{0, -1.5, 0}), []float64{0, -0.5, 0})
	chk.Array(tst, "centre", 1e-15, IsoOverlap(1, 1, []float64{0, 0, 0}), []float64{0, 0, 0})
	d := IsoOverlap(1.2, 0.5, []float64{0.1, 0.2, -0.3})
	r := math.Sqrt(0.14)
	chk.Float64(tst, "|ξt+d|", 1e-15, math.Sqrt((0.1+d[0])*(0.1+d[0])+(0.2+d[1])*(0.2+d[1])+(-0.3+d[2])*(-0.3+d[2])), 0.6)
	chk.Float64(tst, "|d|", 1e-15, math.Sqrt(d[0]*d[0]+d[1]*d[1]+d[2]*d[2]), 0.6-r)
}

func Test_spheres02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spheres02. stretched sphere")

	ψ, P := SvkStretch(1, 1, []float64{1.1, 1, 1})
	chk.Float64(tst, "ψ", 1e-15, ψ, 1.5*0.105*0.105)
	chk.Array(tst, "P", 1e-15, P, []float64{0.3465, 0, 0, 0, 0.105, 0, 0, 0, 0.105})
	ψ, P = SvkStretch(2, 3, []float64{1, 1, 1})
	chk.Float64(tst, "ψ(I)", 1e-17, ψ, 0)
	chk.Array(tst, "P(I)", 1e-17, P, make([]float64, 9))
	chk.Float64(tst, "V", 1e-15, SphereVolume(1, 1.045), 1.045*4.0*math.Pi/3.0)
	chk.Float64(tst, "gap", 1e-15, ContactGap(2.5, 1, 1), 0.5)
}
