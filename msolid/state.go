// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/UCBoulder/tardigrade-asp-sub000/errs"

// NstateVars is the number of state variables of each particle
const NstateVars = 2

// State holds the state variables of a particle
type State struct {
	Energy float64 // energy stored in the particle (bulk)
	Volume float64 // current volume
}

// NewState allocates a state from an array of state variables; nil gives zero values
func NewState(v []float64) (o *State, err error) {
	o = new(State)
	if v == nil {
		return
	}
	if err = errs.CheckSize("NewState", "statev", v, NstateVars); err != nil {
		return nil, err
	}
	o.Energy, o.Volume = v[0], v[1]
	return
}

// Set copies states
func (o *State) Set(other *State) {
	*o = *other
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := new(State)
	other.Set(o)
	return other
}

// Array returns the state variables as an array
func (o *State) Array() []float64 {
	return []float64{o.Energy, o.Volume}
}
