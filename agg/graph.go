// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agg

import (
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/msolid"
	"github.com/UCBoulder/tardigrade-asp-sub000/msurf"
	"github.com/UCBoulder/tardigrade-asp-sub000/quad"
)

// Scope defines the iteration context of a cached quantity
type Scope int

// scopes, from the broadest to the narrowest
const (
	LocalScope       Scope = iota // local particle i
	SurfaceScope                  // surface point j of the local particle
	InteractionScope              // non-local particle k
	nscopes
)

// String returns the name of the scope
func (o Scope) String() string {
	switch o {
	case LocalScope:
		return "local-particle"
	case SurfaceScope:
		return "surface-point"
	case InteractionScope:
		return "interaction-pair"
	}
	return "unknown"
}

// Value holds a cached value: a scalar, a vector (flat tensor) or a map from the index of a
// non-local particle to a vector
type Value struct {
	Sca float64
	Vec []float64
	Map map[int][]float64
}

// Cell holds a cached quantity
type Cell struct {
	Populated bool
	Value     Value
}

// Graph is a lazily evaluated store of kinematic and energetic quantities of the aggregate.
// Each quantity is computed at most once per scope instance. The graph is not safe for concurrent use
type Graph struct {

	// input
	St     *State       // aggregate state
	Sphere *quad.Sphere // quadrature on the unit sphere
	Bulk   msolid.Model // bulk model
	Surf   msurf.Model  // surface model

	// current indices
	I int // local particle
	J int // surface point
	K int // non-local particle

	// cache
	cells   [nkeys]Cell                  // all cells
	lists   [nscopes][]Key               // cells registered with each scope
	setters [nkeys]func() (Value, error) // computes each quantity
}

// NewGraph allocates a new graph
func NewGraph(st *State) (o *Graph, err error) {
	fn := "NewGraph"
	if err = st.Check(); err != nil {
		return nil, errs.Wrap(fn, err)
	}
	o = &Graph{St: st}
	if o.Sphere, err = st.Quadrature(); err != nil {
		return nil, errs.Wrap(fn, err)
	}
	if o.Bulk, o.Surf, err = st.Models(); err != nil {
		return nil, errs.Wrap(fn, err)
	}
	o.initSetters()
	return
}

// SetLocal sets the index of the local particle. The caller resets the local scope
func (o *Graph) SetLocal(i int) { o.I = i }

// SetSurface sets the index of the surface point. The caller resets the surface scope
func (o *Graph) SetSurface(j int) { o.J = j }

// SetNonLocal sets the index of the non-local particle. The caller resets the interaction scope
func (o *Graph) SetNonLocal(k int) { o.K = k }

// Get returns the value of a quantity, computing it (and its dependencies) if not populated
func (o *Graph) Get(k Key) (v Value, err error) {
	c := &o.cells[k]
	if c.Populated {
		return c.Value, nil
	}
	v, err = o.setters[k]()
	if err != nil {
		return v, errs.Wrapf("Graph.Get", err, "cannot compute %v", k)
	}
	o.Put(k, v)
	return
}

// Put stores a value and registers the cell with its scope. It overrides computed values; e.g.
// the reference distance vector of a pair
func (o *Graph) Put(k Key, v Value) {
	c := &o.cells[k]
	c.Value = v
	if !c.Populated {
		c.Populated = true
		s := keyInfo[k].scope
		o.lists[s] = append(o.lists[s], k)
	}
}

// Scalar returns a scalar quantity
func (o *Graph) Scalar(k Key) (float64, error) {
	v, err := o.Get(k)
	return v.Sca, err
}

// Vector returns a vector quantity
func (o *Graph) Vector(k Key) ([]float64, error) {
	v, err := o.Get(k)
	return v.Vec, err
}

// Mapping returns a map quantity
func (o *Graph) Mapping(k Key) (map[int][]float64, error) {
	v, err := o.Get(k)
	return v.Map, err
}

// Populated tells whether a quantity is populated
func (o *Graph) Populated(k Key) bool { return o.cells[k].Populated }

// Registered returns the quantities registered with a scope
func (o *Graph) Registered(s Scope) []Key { return o.lists[s] }

// ResetInteractionPair clears all quantities of the interaction-pair scope
func (o *Graph) ResetInteractionPair() {
	o.reset(InteractionScope)
}

// ResetSurfacePoint clears all quantities of the surface-point and narrower scopes
func (o *Graph) ResetSurfacePoint() {
	o.ResetInteractionPair()
	o.reset(SurfaceScope)
}

// ResetLocalParticle clears all quantities of the local-particle and narrower scopes
func (o *Graph) ResetLocalParticle() {
	o.ResetSurfacePoint()
	o.reset(LocalScope)
}

// reset clears the cells registered with a scope and empties its list
func (o *Graph) reset(s Scope) {
	for _, k := range o.lists[s] {
		o.cells[k] = Cell{}
	}
	o.lists[s] = o.lists[s][:0]
}
