// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agg

import (
	"sync"

	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/msolid"
	"github.com/UCBoulder/tardigrade-asp-sub000/ten"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Results holds the assembled quantities. Local quantities are indexed by [i] and interaction
// quantities by [i][j][k] with i the local particle, j the surface point and k the non-local
// particle. Overlap vectors are nil and overlap scalars are zero where there is no overlap
type Results struct {

	// sizes
	N int // number of particles
	M int // number of surface points

	// local particle
	RefVolume     []float64   // [N]
	CurVolume     []float64   // [N]
	EnergyDensity []float64   // [N]
	Energy        []float64   // [N]
	LogProbRatio  []float64   // [N]
	MicroStress   [][]float64 // [N][9]
	StateVars     [][]float64 // [N][msolid.NstateVars]

	// interaction pair
	AdhesionEnergy    [][][]float64   // [N][M][N]
	AdhesionTraction  [][][][]float64 // [N][M][N][3]
	AdhesionThickness [][][]float64   // [N][M][N]
	Overlap           [][][][]float64 // [N][M][N][3] or nil
	OverlapEnergy     [][][]float64   // [N][M][N]
	OverlapTraction   [][][][]float64 // [N][M][N][3] or nil
	OverlapThickness  [][][]float64   // [N][M][N]

	// auxiliary
	chi []float64 // micro-deformation used in the assembly
}

// newResults allocates results
func newResults(n, m int, χ []float64) (o *Results) {
	o = &Results{N: n, M: m, chi: ten.Copy(χ)}
	o.RefVolume = make([]float64, n)
	o.CurVolume = make([]float64, n)
	o.EnergyDensity = make([]float64, n)
	o.Energy = make([]float64, n)
	o.LogProbRatio = make([]float64, n)
	o.MicroStress = utl.Alloc(n, 9)
	o.StateVars = utl.Alloc(n, msolid.NstateVars)
	alloc3 := func() (a [][][]float64) {
		a = make([][][]float64, n)
		for i := 0; i < n; i++ {
			a[i] = utl.Alloc(m, n)
		}
		return
	}
	alloc4 := func() (a [][][][]float64) {
		a = make([][][][]float64, n)
		for i := 0; i < n; i++ {
			a[i] = make([][][]float64, m)
			for j := 0; j < m; j++ {
				a[i][j] = make([][]float64, n)
			}
		}
		return
	}
	o.AdhesionEnergy = alloc3()
	o.AdhesionTraction = alloc4()
	o.AdhesionThickness = alloc3()
	o.Overlap = alloc4()
	o.OverlapEnergy = alloc3()
	o.OverlapTraction = alloc4()
	o.OverlapThickness = alloc3()
	return
}

// Assemble runs the assembly loop over local particles, surface points and non-local particles
func Assemble(st *State, verbose bool) (res *Results, err error) {
	g, err := NewGraph(st)
	if err != nil {
		return nil, errs.Wrap("Assemble", err)
	}
	res = newResults(st.N, len(g.Sphere.P), st.Chi)
	for i := 0; i < st.N; i++ {
		if err = res.local(g, i); err != nil {
			return nil, errs.Wrapf("Assemble", err, "local particle %d", i)
		}
		if verbose {
			io.Pf("particle %4d : V0 = %12.6e  V = %12.6e  E = %12.6e\n", i, res.RefVolume[i], res.CurVolume[i], res.Energy[i])
		}
	}
	return
}

// AssembleParallel runs the assembly loop distributing local particles among nworkers goroutines.
// Each worker owns a replica of the graph
func AssembleParallel(st *State, nworkers int) (res *Results, err error) {
	fn := "AssembleParallel"
	if nworkers < 1 {
		nworkers = 1
	}
	if nworkers > st.N {
		nworkers = st.N
	}
	graphs := make([]*Graph, nworkers)
	for w := 0; w < nworkers; w++ {
		if graphs[w], err = NewGraph(st); err != nil {
			return nil, errs.Wrap(fn, err)
		}
	}
	res = newResults(st.N, len(graphs[0].Sphere.P), st.Chi)
	errors := make([]error, nworkers)
	var wg sync.WaitGroup
	for w := 0; w < nworkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < st.N; i += nworkers {
				if e := res.local(graphs[w], i); e != nil {
					errors[w] = errs.Wrapf(fn, e, "local particle %d (worker %d)", i, w)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	for _, e := range errors {
		if e != nil {
			return nil, e
		}
	}
	return
}

// local computes all quantities of local particle i. The graph is left reset
func (o *Results) local(g *Graph, i int) (err error) {
	defer g.ResetLocalParticle()
	g.SetLocal(i)
	if o.RefVolume[i], err = g.Scalar(KeyRefVolume); err != nil {
		return
	}
	if o.CurVolume[i], err = g.Scalar(KeyCurVolume); err != nil {
		return
	}
	if o.EnergyDensity[i], err = g.Scalar(KeyEnergyDensity); err != nil {
		return
	}
	if o.Energy[i], err = g.Scalar(KeyEnergy); err != nil {
		return
	}
	if o.LogProbRatio[i], err = g.Scalar(KeyLogProbRatio); err != nil {
		return
	}
	P, err := g.Vector(KeyMicroStress)
	if err != nil {
		return
	}
	copy(o.MicroStress[i], P)
	sv, err := g.Vector(KeyStateVars)
	if err != nil {
		return
	}
	copy(o.StateVars[i], sv)
	for j := 0; j < o.M; j++ {
		g.SetSurface(j)
		for k := 0; k < o.N; k++ {
			g.SetNonLocal(k)
			if err = o.pair(g, i, j, k); err != nil {
				return errs.Wrapf("Results.local", err, "surface point %d, non-local particle %d", j, k)
			}
			g.ResetInteractionPair()
		}
		g.ResetSurfacePoint()
	}
	return
}

// pair computes the quantities of the interaction pair (i, j, k)
func (o *Results) pair(g *Graph, i, j, k int) (err error) {
	if o.AdhesionEnergy[i][j][k], err = g.Scalar(KeyAdhesionEnergy); err != nil {
		return
	}
	if o.AdhesionTraction[i][j][k], err = g.Vector(KeyAdhesionTraction); err != nil {
		return
	}
	if o.AdhesionThickness[i][j][k], err = g.Scalar(KeyAdhesionThickness); err != nil {
		return
	}
	d, err := g.Mapping(KeyOverlap)
	if err != nil {
		return
	}
	e, err := g.Mapping(KeyOverlapEnergy)
	if err != nil {
		return
	}
	t, err := g.Mapping(KeyOverlapTraction)
	if err != nil {
		return
	}
	h, err := g.Mapping(KeyOverlapThickness)
	if err != nil {
		return
	}
	if v, ok := d[k]; ok {
		o.Overlap[i][j][k] = v
		o.OverlapEnergy[i][j][k] = e[k][0]
		o.OverlapTraction[i][j][k] = t[k]
		o.OverlapThickness[i][j][k] = h[k][0]
	}
	return
}

// Stress returns the volume-averaged Cauchy stress σ = Σ V0_i P_i χᵀ / Σ V_i [9]
func (o *Results) Stress() (σ []float64) {
	σ = make([]float64, 9)
	var vol float64
	for i := 0; i < o.N; i++ {
		vol += o.CurVolume[i]
		P := o.MicroStress[i]
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				for c := 0; c < 3; c++ {
					σ[a*3+b] += o.RefVolume[i] * P[a*3+c] * o.chi[b*3+c]
				}
			}
		}
	}
	if vol > 0 {
		for ab := 0; ab < 9; ab++ {
			σ[ab] /= vol
		}
	}
	return
}

// AggregateEnergyDensity returns Σ E_i / Σ V0_i
func (o *Results) AggregateEnergyDensity() float64 {
	var E, V0 float64
	for i := 0; i < o.N; i++ {
		E += o.Energy[i]
		V0 += o.RefVolume[i]
	}
	if V0 == 0 {
		return 0
	}
	return E / V0
}

// AggregateStateVars returns the sum of the state variables of all particles
func (o *Results) AggregateStateVars() (sv []float64) {
	sv = make([]float64, msolid.NstateVars)
	for i := 0; i < o.N; i++ {
		for a := range sv {
			sv[a] += o.StateVars[i][a]
		}
	}
	return
}
