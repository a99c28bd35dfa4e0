// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) JSON files, (.ini) configuration files
// and particle tables
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/UCBoulder/tardigrade-asp-sub000/agg"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/ovl"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc      string `json:"desc"`      // description of simulation
	DirOut    string `json:"dirout"`    // directory for output; e.g. /tmp/pagg
	Particles string `json:"particles"` // table with particles: x y z r; relative to the input file
	AbsPath   bool   `json:"abspath"`   // particles filename is given in absolute path
}

// AggData holds the state of the aggregate
type AggData struct {

	// quadrature
	Level int `json:"level"` // refinement level of surface quadrature

	// time and temperature
	Time     float64 `json:"time"`     // current time
	TimePrev float64 `json:"timeprev"` // previous time
	Temp     float64 `json:"temp"`     // current temperature
	TempPrev float64 `json:"tempprev"` // previous temperature

	// deformation
	F       []float64 `json:"F"`       // deformation gradient [9]; row-major
	Fprev   []float64 `json:"Fprev"`   // previous deformation gradient [9]
	Chi     []float64 `json:"chi"`     // micro-deformation [9]
	ChiPrev []float64 `json:"chiprev"` // previous micro-deformation [9]
	GradChi []float64 `json:"gradchi"` // gradient of micro-deformation [27]
	Statev  []float64 `json:"statev"`  // previous state variables [2]

	// material
	Props []float64 `json:"props"` // material parameters [2]
	Bulk  string    `json:"bulk"`  // bulk model; e.g. "svk" or "neo"
	Surf  string    `json:"surf"`  // surface model; e.g. "lin"

	// particles
	Radii     []float64   `json:"radii"`     // radius of each particle
	Centroids [][]float64 `json:"centroids"` // reference centroid of each particle
}

// SolverData holds data for the overlap solver
type SolverData struct {
	Tola    float64 `json:"tola"`    // absolute tolerance
	Tolr    float64 `json:"tolr"`    // relative tolerance
	MaxIt   int     `json:"maxit"`   // max number of iterations
	MaxLs   int     `json:"maxls"`   // max number of line search halvings
	AlphaLs float64 `json:"alphals"` // line search slack
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data       `json:"data"`      // global simulation data
	Aggregate AggData    `json:"aggregate"` // aggregate data
	Solver    SolverData `json:"solver"`    // overlap solver data

	// derived
	DirOut string // directory to save results
	Key    string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasefiles bool) (o *Simulation, err error) {
	fn := "ReadSim"
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, errs.Prec(fn, "cannot read simulation file %q", simfilepath)
	}
	o = new(Simulation)
	o.SetDefault()
	if err = json.Unmarshal(b, o); err != nil {
		return nil, errs.Prec(fn, "cannot unmarshal simulation file %q: %v", simfilepath, err)
	}
	if err = o.PostProcess(simfilepath, alias, erasefiles); err != nil {
		return nil, errs.Wrap(fn, err)
	}
	return
}

// ReadInput reads a .sim or .ini file according to its extension
func ReadInput(fnpath, alias string, erasefiles bool) (*Simulation, error) {
	if io.FnExt(fnpath) == ".ini" {
		return ReadIni(fnpath, alias, erasefiles)
	}
	return ReadSim(fnpath, alias, erasefiles)
}

// SetDefault sets default values
func (o *Simulation) SetDefault() {
	var st agg.State
	st.SetDefault()
	o.Aggregate.F = st.F
	o.Aggregate.Chi = st.Chi
	o.Aggregate.Props = st.Prms
	o.Aggregate.Bulk = st.Bulk
	o.Aggregate.Surf = st.Surf
	o.Solver.SetDefault()
}

// PostProcess sets derived data, reads the particles table and creates the output directory
func (o *Simulation) PostProcess(fnpath, alias string, erasefiles bool) (err error) {

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(fnpath))
	fnkey := io.FnKey(filepath.Base(fnpath))
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/pagg/" + fnkey
	}

	// particles table
	if o.Data.Particles != "" {
		fn := o.Data.Particles
		if !o.Data.AbsPath {
			fn = filepath.Join(dir, fn)
		}
		o.Aggregate.Radii, o.Aggregate.Centroids, err = ReadParticles(fn)
		if err != nil {
			return
		}
	}

	// create directory and erase previous results
	if erasefiles {
		if err = os.MkdirAll(o.DirOut, 0777); err != nil {
			return errs.Prec("Simulation.PostProcess", "cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}
	return
}

// State returns a new aggregate state with the input data
func (o *Simulation) State() (st *agg.State, err error) {
	a := &o.Aggregate
	st = new(agg.State)
	st.SetDefault()
	st.Level = a.Level
	st.Time, st.TimePrev = a.Time, a.TimePrev
	st.Temp, st.TempPrev = a.Temp, a.TempPrev
	st.F, st.Fprev = a.F, a.Fprev
	st.Chi, st.ChiPrev = a.Chi, a.ChiPrev
	if a.GradChi != nil {
		st.GradChi = a.GradChi
	}
	if a.Statev != nil {
		st.StatePrev = a.Statev
	}
	st.Prms = a.Props
	st.Bulk, st.Surf = a.Bulk, a.Surf
	st.Radii = a.Radii
	st.Centroids = a.Centroids
	st.Opts = o.Solver.Options()
	st.PostProcess()
	if err = st.Check(); err != nil {
		return nil, errs.Wrap("Simulation.State", err)
	}
	return
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	d := ovl.DefaultOptions()
	o.Tola, o.Tolr = d.Tola, d.Tolr
	o.MaxIt, o.MaxLs = d.MaxIt, d.MaxLs
	o.AlphaLs = d.AlphaLs
}

// Options returns the options of the overlap solver
func (o *SolverData) Options() *ovl.Options {
	return &ovl.Options{Tola: o.Tola, Tolr: o.Tolr, MaxIt: o.MaxIt, MaxLs: o.MaxLs, AlphaLs: o.AlphaLs}
}
