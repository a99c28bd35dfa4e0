// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"
	"strings"
	"testing"

	"github.com/UCBoulder/tardigrade-asp-sub000/agg"
	"github.com/UCBoulder/tardigrade-asp-sub000/quad"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_filter01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("filter01. selecting surface points")

	sph, err := quad.Get(1)
	if err != nil {
		tst.Errorf("quad.Get failed:\n%v", err)
		return
	}
	chk.Int(tst, "all", len(All{}.Locate(sph)), 98)
	near := Near{[]float64{0, 0, -1}, 1e-12}.Locate(sph)
	chk.Int(tst, "near", len(near), 1)
	chk.Array(tst, "p", 1e-15, sph.P[near[0]], []float64{0, 0, -1})

	// the equator is excluded
	hemi := Hemisphere{[]float64{1, 0, 0}}.Locate(sph)
	var w float64
	for _, j := range hemi {
		w += sph.W[j]
	}
	io.Pforan("hemisphere: %d points, Σw = %v\n", len(hemi), w)
	if w >= 2*math.Pi || w <= 0 {
		tst.Errorf("weights of the open hemisphere must be in (0, 2π): %v\n", w)
	}
	chk.Int(tst, "cap(π)", len(Cap{[]float64{0, 2, 0}, math.Pi}.Locate(sph)), 98)
	chk.Int(tst, "cap(0)", len(Cap{[]float64{0, 2, 0}, 0}.Locate(sph)), 1)
}

func Test_results01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("results01. integration and tables")

	st := new(agg.State)
	st.SetDefault()
	st.Radii = []float64{1, 1}
	st.Centroids = [][]float64{{0, 0, 0}, {3, 0, 0}}
	st.PostProcess()
	res, err := agg.Assemble(st, false)
	if err != nil {
		tst.Errorf("Assemble failed:\n%v", err)
		return
	}
	sph, _ := st.Quadrature()

	// F = χ = I gives d = (3,0,0) - 2 N; thus ‖d‖² = 13 - 12 N_x and ∫ ½‖d‖² dΩ = ½ 13 4π
	E, err := Integrate(res, sph, "adh_energy", 0, 1, 1, All{})
	if err != nil {
		tst.Errorf("Integrate failed:\n%v", err)
		return
	}
	chk.Float64(tst, "∫ψ", 1e-10, E, 0.5*13*4*math.Pi)

	// no overlap
	h, _ := Integrate(res, sph, "ovl_thick", 0, 1, 1, All{})
	chk.Float64(tst, "∫h", 1e-17, h, 0)

	// failures
	if _, err = GetRes(res, "unknown", 0, 1); err == nil {
		tst.Errorf("GetRes should have failed\n")
	}
	if _, err = GetRes(res, "adh_thick", 0, 2); err == nil {
		tst.Errorf("GetRes should have failed\n")
	}

	// tables
	p := Particles(res).String()
	io.Pf("%s", p)
	chk.Int(tst, "particle lines", strings.Count(p, "\n"), 3)
	chk.Int(tst, "interaction lines", strings.Count(Interactions(res).String(), "\n"), 1+2*26*2)
}
