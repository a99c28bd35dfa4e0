// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/cpmech/gosl/io"
	"gopkg.in/gcfg.v1"
)

// IniConfig holds the sections of an .ini file. Tensors are given as whitespace separated lists
// in row-major order. Particles are given by repeated "Particle = x y z r" lines
//
//	[Data]
//	Desc      = two particles
//	Particles = particles.txt
//
//	[Aggregate]
//	Level    = 1
//	F        = 1.1 0 0  0 1 0  0 0 1
//	Particle = 0 0 0 1
//	Particle = 2.5 0 0 1
//
//	[Solver]
//	Tola = 1e-10
type IniConfig struct {
	Data struct {
		Desc      string
		DirOut    string
		Particles string
		AbsPath   bool
	}
	Aggregate struct {
		Level                  int
		Time, TimePrev         float64
		Temp, TempPrev         float64
		F, Fprev, Chi, ChiPrev string
		GradChi, Statev        string
		Props                  string
		Bulk, Surf             string
		Particle               []string
	}
	Solver struct {
		Tola, Tolr, AlphaLs float64
		MaxIt, MaxLs        int
	}
}

// ReadIni reads all simulation data from an .ini file
func ReadIni(fnpath, alias string, erasefiles bool) (o *Simulation, err error) {
	fn := "ReadIni"
	o = new(Simulation)
	o.SetDefault()

	// defaults are kept for missing variables
	var c IniConfig
	c.Solver.Tola, c.Solver.Tolr, c.Solver.AlphaLs = o.Solver.Tola, o.Solver.Tolr, o.Solver.AlphaLs
	c.Solver.MaxIt, c.Solver.MaxLs = o.Solver.MaxIt, o.Solver.MaxLs
	c.Aggregate.Bulk, c.Aggregate.Surf = o.Aggregate.Bulk, o.Aggregate.Surf
	if err = gcfg.ReadFileInto(&c, fnpath); err != nil {
		return nil, errs.Prec(fn, "cannot read configuration file %q: %v", fnpath, err)
	}
	if err = o.fromIni(&c); err != nil {
		return nil, errs.Wrapf(fn, err, "file %q", fnpath)
	}
	if err = o.PostProcess(fnpath, alias, erasefiles); err != nil {
		return nil, errs.Wrap(fn, err)
	}
	return
}

// fromIni copies the configuration into the simulation data
func (o *Simulation) fromIni(c *IniConfig) (err error) {
	o.Data.Desc = c.Data.Desc
	o.Data.DirOut = c.Data.DirOut
	o.Data.Particles = c.Data.Particles
	o.Data.AbsPath = c.Data.AbsPath
	a, ca := &o.Aggregate, &c.Aggregate
	a.Level = ca.Level
	a.Time, a.TimePrev = ca.Time, ca.TimePrev
	a.Temp, a.TempPrev = ca.Temp, ca.TempPrev
	a.Bulk, a.Surf = ca.Bulk, ca.Surf
	for _, f := range []struct {
		name string
		str  string
		dest *[]float64
	}{
		{"F", ca.F, &a.F}, {"Fprev", ca.Fprev, &a.Fprev}, {"Chi", ca.Chi, &a.Chi},
		{"ChiPrev", ca.ChiPrev, &a.ChiPrev}, {"GradChi", ca.GradChi, &a.GradChi},
		{"Statev", ca.Statev, &a.Statev}, {"Props", ca.Props, &a.Props},
	} {
		if f.str == "" {
			continue
		}
		if *f.dest, err = parseFloats(f.name, f.str); err != nil {
			return
		}
	}
	for i, line := range ca.Particle {
		v, err := parseFloats("Particle", line)
		if err != nil {
			return err
		}
		if len(v) != 4 {
			return errs.Size("IniConfig", io.Sf("Particle #%d", i), len(v), 4)
		}
		a.Centroids = append(a.Centroids, v[:3])
		a.Radii = append(a.Radii, v[3])
	}
	o.Solver.Tola, o.Solver.Tolr, o.Solver.AlphaLs = c.Solver.Tola, c.Solver.Tolr, c.Solver.AlphaLs
	o.Solver.MaxIt, o.Solver.MaxLs = c.Solver.MaxIt, c.Solver.MaxLs
	return
}

// parseFloats parses a whitespace separated list of numbers
func parseFloats(name, str string) (v []float64, err error) {
	for _, s := range strings.Fields(str) {
		x, e := strconv.ParseFloat(s, 64)
		if e != nil {
			return nil, errs.Prec("parseFloats", "cannot parse %q in variable %s", s, name)
		}
		v = append(v, x)
	}
	return
}
