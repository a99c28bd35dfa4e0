// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sphere01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sphere01. points and weights")

	for level, npts := range []int{26, 98, 386} {
		o, err := New(level)
		if err != nil {
			tst.Errorf("New failed:\n%v", err)
			return
		}
		io.Pforan("level %d: M = %d, nelems = %d\n", level, o.Npoints(), len(o.Conn))
		chk.Int(tst, "M", o.Npoints(), npts)
		chk.Int(tst, "nelems", len(o.Conn), 6*o.Nel*o.Nel)

		// unit points
		for m, p := range o.P {
			l := math.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])
			if math.Abs(l-1) > 1e-15 {
				tst.Errorf("point %d is not on the unit sphere: ‖p‖ = %v", m, l)
				return
			}
		}

		// ∫ dΩ = 4π
		sumΩ := 0.0
		for _, Ω := range o.Omega {
			sumΩ += Ω
		}
		chk.Float64(tst, "ΣΩ", 1e-13, sumΩ, 4*math.Pi)
		chk.Float64(tst, "ΣW", 1e-13, o.Integrate(func(p []float64) float64 { return 1 }), 4*math.Pi)

		// odd functions vanish by symmetry
		chk.Float64(tst, "∫x", 1e-13, o.Integrate(func(p []float64) float64 { return p[0] }), 0)
		chk.Float64(tst, "∫xyz", 1e-13, o.Integrate(func(p []float64) float64 { return p[0] * p[1] * p[2] }), 0)
	}
}

func Test_sphere02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sphere02. convergence and cache")

	// ∫ x⁴ dΩ = 4π/5
	var errs []float64
	for level := 0; level < 4; level++ {
		o, err := Get(level)
		if err != nil {
			tst.Errorf("Get failed:\n%v", err)
			return
		}
		e := math.Abs(o.Integrate(func(p []float64) float64 { return math.Pow(p[0], 4) }) - 4*math.Pi/5)
		io.Pforan("level %d: error = %g\n", level, e)
		errs = append(errs, e)
	}
	for i := 1; i < len(errs); i++ {
		if errs[i] > errs[i-1] {
			tst.Errorf("error must decrease with refinement: %v", errs)
			return
		}
	}
	if errs[3] > 2e-4 {
		tst.Errorf("error at level 3 is too large: %g", errs[3])
	}

	a, _ := Get(1)
	b, _ := Get(1)
	if a != b {
		tst.Errorf("Get must return the cached quadrature")
	}
	x := a.Points(2.5)
	chk.Float64(tst, "‖r p‖", 1e-14, math.Sqrt(x[7][0]*x[7][0]+x[7][1]*x[7][1]+x[7][2]*x[7][2]), 2.5)

	_, err := New(-1)
	if err == nil {
		tst.Errorf("negative level must fail")
	}
}
