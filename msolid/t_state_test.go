// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01")

	state0, err := NewState(nil)
	if err != nil {
		tst.Errorf("NewState failed:\n%v", err)
		return
	}
	io.Pforan("state0 = %+v\n", state0)
	chk.Array(tst, "statev", 1.0e-17, state0.Array(), []float64{0, 0})

	state0.Energy = 10.0
	state0.Volume = 11.0

	state1, _ := NewState(nil)
	state1.Set(state0)
	io.Pforan("state1 = %+v\n", state1)
	chk.Array(tst, "statev", 1.0e-17, state1.Array(), []float64{10, 11})

	state2 := state1.GetCopy()
	state1.Energy = 0
	io.Pforan("state2 = %+v\n", state2)
	chk.Array(tst, "statev", 1.0e-17, state2.Array(), []float64{10, 11})

	state3, err := NewState([]float64{3, 4})
	if err != nil {
		tst.Errorf("NewState failed:\n%v", err)
		return
	}
	chk.Array(tst, "statev", 1.0e-17, state3.Array(), []float64{3, 4})

	_, err = NewState([]float64{1, 2, 3})
	if err == nil {
		tst.Errorf("wrong number of state variables must fail")
	}
}
