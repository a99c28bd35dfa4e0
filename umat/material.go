// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package umat implements the material-model entry point called by Abaqus-style hosts
package umat

import (
	"sync"

	"github.com/UCBoulder/tardigrade-asp-sub000/agg"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/msolid"
	"github.com/UCBoulder/tardigrade-asp-sub000/ovl"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// required sizes
const (
	Nstatv = msolid.NstateVars // number of state variables
	Nprops = 2                 // number of material parameters: (λ, μ) or (En, Et)
	Cut    = 0.5               // pnewdt requested on numerical failures
)

// Args holds the arguments of the material model. Matrices are row-major
type Args struct {

	// in/out
	Stress []float64   // [ntens] Cauchy stress in Voigt order (11, 22, 33, 12, 13, 23)
	Statev []float64   // [nstatv] state variables
	Ddsdde [][]float64 // [ntens][ntens] tangent stiffness
	Sse    float64     // specific elastic strain energy
	Spd    float64     // plastic dissipation
	Scd    float64     // creep dissipation

	// coupled temperature-displacement
	Rpl    float64   // volumetric heat generation
	Ddsddt []float64 // [ntens]
	Drplde []float64 // [ntens]
	Drpldt float64

	// strains and time
	Stran  []float64  // [ntens] total strain
	Dstran []float64  // [ntens] strain increment
	Time   [2]float64 // step time and total time at the beginning of the increment
	Dtime  float64    // time increment
	Temp   float64    // temperature at the beginning of the increment
	Dtemp  float64    // temperature increment
	Predef []float64  // predefined field variables
	Dpred  []float64  // increments of predefined field variables

	// material
	Cmname string    // material name
	Ndi    int       // number of direct stress components
	Nshr   int       // number of shear stress components
	Ntens  int       // size of stress array: ndi + nshr
	Nstatv int       // number of state variables
	Nprops int       // number of material parameters
	Props  []float64 // [nprops] material parameters

	// geometry
	Coords []float64   // [3] coordinates of the point
	Drot   [][]float64 // [3][3] rotation increment
	Pnewdt float64     // ratio of suggested new time increment; in/out
	Celent float64     // characteristic element length
	Dfgrd0 [][]float64 // [3][3] deformation gradient at the beginning of the increment
	Dfgrd1 [][]float64 // [3][3] deformation gradient at the end of the increment

	// location
	Noel  int // element number
	Npt   int // integration point number
	Layer int // layer number
	Kspt  int // section point number
	Kstep int // step number
	Kinc  int // increment number
}

// Geometry holds the particles of the aggregate represented by each material point
type Geometry struct {
	Level     int          // refinement level of the surface quadrature
	Radii     []float64    // reference radii
	Centroids [][]float64  // reference centroids; nil means all at the origin
	Nworkers  int          // number of goroutines for the assembly; ≤ 1 means serial
	Verbose   bool         // show messages
	Opts      *ovl.Options // options of the overlap solver; nil for defaults
}

// geometry shared by all material points
var (
	geo   = Geometry{Radii: []float64{1}}
	geoMu sync.RWMutex
)

// SetGeometry sets the geometry used by all material points
func SetGeometry(g Geometry) {
	geoMu.Lock()
	defer geoMu.Unlock()
	geo = g
}

// GetGeometry returns the geometry used by all material points
func GetGeometry() Geometry {
	geoMu.RLock()
	defer geoMu.RUnlock()
	return geo
}

// Material evaluates the aggregate at one material point. On numerical failures, a cut of the time
// increment is requested by setting Pnewdt < 1
func Material(a *Args) (err error) {

	// check
	fn := io.Sf("Material(%s)", a.Cmname)
	if a.Nstatv != Nstatv {
		return errs.Prec(fn, "number of state variables must be %d. nstatv = %d", Nstatv, a.Nstatv)
	}
	if a.Nprops != Nprops {
		return errs.Prec(fn, "number of material parameters must be %d. nprops = %d", Nprops, a.Nprops)
	}
	if a.Ntens != a.Ndi+a.Nshr || a.Ntens > 6 || a.Ndi > 3 {
		return errs.Prec(fn, "invalid stress sizes. ndi = %d, nshr = %d, ntens = %d", a.Ndi, a.Nshr, a.Ntens)
	}
	for _, c := range []struct {
		name string
		v    []float64
		n    int
	}{
		{"stress", a.Stress, a.Ntens}, {"statev", a.Statev, a.Nstatv}, {"props", a.Props, a.Nprops},
	} {
		if err = errs.CheckSize(fn, c.name, c.v, c.n); err != nil {
			return
		}
	}
	if len(a.Ddsdde) < a.Ntens {
		return errs.Size(fn, "ddsdde", len(a.Ddsdde), a.Ntens)
	}
	for _, row := range a.Ddsdde {
		if err = errs.CheckSize(fn, "ddsdde row", row, a.Ntens); err != nil {
			return
		}
	}
	prev, err := msolid.NewState(a.Statev)
	if err != nil {
		return errs.Wrap(fn, err)
	}

	// state
	g := GetGeometry()
	st := new(agg.State)
	st.SetDefault()
	st.Level = g.Level
	st.TimePrev = a.Time[1]
	st.Time = a.Time[1] + a.Dtime
	st.TempPrev = a.Temp
	st.Temp = a.Temp + a.Dtemp
	st.F = flatten(a.Dfgrd1)
	st.Fprev = flatten(a.Dfgrd0)
	st.Chi = flatten(a.Dfgrd1)
	st.ChiPrev = flatten(a.Dfgrd0)
	st.StatePrev = prev.Array()
	st.Prms = a.Props
	st.Radii = g.Radii
	st.Centroids = g.Centroids
	st.Opts = g.Opts
	st.PostProcess()

	// assemble
	var res *agg.Results
	if g.Nworkers > 1 {
		res, err = agg.AssembleParallel(st, g.Nworkers)
	} else {
		res, err = agg.Assemble(st, g.Verbose)
	}
	if err != nil {
		if errs.KindOf(err) == errs.Numerical {
			a.Pnewdt = Cut
		}
		return errs.Wrapf(fn, err, "element %d, point %d, increment %d", a.Noel, a.Npt, a.Kinc)
	}

	// stress
	σ := msolid.ToVoigt(res.Stress())
	for m := 0; m < a.Ntens; m++ {
		a.Stress[m] = σ[voigtIndex(a, m)]
	}

	// tangent
	bulk, _, err := st.Models()
	if err != nil {
		return errs.Wrap(fn, err)
	}
	λ, μ := bulk.Lame()
	D := utl.Alloc(6, 6)
	msolid.ElasticTangent(D, λ, μ)
	for m := 0; m < a.Ntens; m++ {
		for n := 0; n < a.Ntens; n++ {
			a.Ddsdde[m][n] = D[voigtIndex(a, m)][voigtIndex(a, n)]
		}
	}

	// energy and state
	cur := msolid.State{}
	sv := res.AggregateStateVars()
	cur.Energy, cur.Volume = sv[0], sv[1]
	copy(a.Statev, cur.Array())
	a.Sse = res.AggregateEnergyDensity()
	if g.Verbose {
		io.Pforan("%s: element %d, point %d: sse = %g, statev = %v\n", a.Cmname, a.Noel, a.Npt, a.Sse, a.Statev)
	}
	return
}

// voigtIndex maps component m of the host's stress array to the Voigt index. Direct components
// come first followed by shear ones
func voigtIndex(a *Args, m int) int {
	if m < a.Ndi {
		return m
	}
	return 3 + m - a.Ndi
}

// flatten returns a flat row-major copy of a 3×3 matrix
func flatten(A [][]float64) (a []float64) {
	a = make([]float64, 9)
	for i := 0; i < 3 && i < len(A); i++ {
		copy(a[i*3:i*3+3], A[i])
	}
	return
}
