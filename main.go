// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/UCBoulder/tardigrade-asp-sub000/agg"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/inp"
	"github.com/UCBoulder/tardigrade-asp-sub000/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	nworkers := io.ArgToInt(2, 1)
	erasePrev := io.ArgToBool(3, true)
	alias := io.ArgToString(4, "")

	// message
	if verbose {
		io.PfYel("\nAggregate of deformable particles\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("%-24s = %v\n", "filename path", fnamepath)
		io.Pf("%-24s = %v\n", "show messages", verbose)
		io.Pf("%-24s = %v\n", "number of workers", nworkers)
		io.Pf("%-24s = %v\n", "erase previous results", erasePrev)
		io.Pf("%-24s = %q\n\n", "word to add to results", alias)
	}

	// input data
	sim, err := inp.ReadInput(fnamepath, alias, erasePrev)
	if err != nil {
		chk.Panic("cannot read input:\n%v", errs.Trace(err))
	}
	st, err := sim.State()
	if err != nil {
		chk.Panic("invalid input:\n%v", errs.Trace(err))
	}

	// assemble
	var res *agg.Results
	if nworkers > 1 {
		res, err = agg.AssembleParallel(st, nworkers)
	} else {
		res, err = agg.Assemble(st, verbose)
	}
	if err != nil {
		chk.Panic("assembly failed:\n%v", errs.Trace(err))
	}
	sph, err := st.Quadrature()
	if err != nil {
		chk.Panic("%v", err)
	}

	// summary
	if verbose {
		io.Pf("\n%s\n", sim.Data.Desc)
		io.Pf("number of particles      = %d\n", res.N)
		io.Pf("number of surface points = %d\n", res.M)
		io.Pf("aggregate energy density = %g\n", res.AggregateEnergyDensity())
		io.Pf("aggregate stress         = %v\n\n", res.Stress())
	}

	// results
	if verbose {
		io.Pf("%s", out.Particles(res).String())
		for i := 0; i < res.N; i++ {
			for k := 0; k < res.N; k++ {
				if k == i {
					continue
				}
				E, err := out.Integrate(res, sph, "adh_energy", i, k, st.Radii[i], out.All{})
				if err != nil {
					chk.Panic("%v", err)
				}
				io.Pf("adhesion energy (%d, %d) = %g\n", i, k, E)
			}
		}
	}
	out.Save(sim.DirOut, sim.Key, res)
}
