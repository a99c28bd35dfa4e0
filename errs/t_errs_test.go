// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errs

import (
	"errors"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_errs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("errs01")

	e0 := Size("computeCurrentDistance", "F", 4, 9)
	e1 := Wrap("computeAdhesion", e0)
	e2 := Wrapf("Assemble", e1, "local particle %d", 3)
	io.Pforan("%v\n", Trace(e2))

	if KindOf(e2) != Precondition {
		tst.Errorf("kind should be precondition. got %v\n", KindOf(e2))
	}
	r := Root(e2)
	if r == nil || r.Func != "computeCurrentDistance" {
		tst.Errorf("root of chain is wrong: %v\n", r)
		return
	}
	if !strings.Contains(r.Msg, "4 entries but 9") {
		tst.Errorf("message must name observed and expected sizes: %q\n", r.Msg)
	}
	if !errors.Is(e2, e0) {
		tst.Errorf("chain must unwrap to the original error\n")
	}
	lines := strings.Split(strings.TrimSpace(Trace(e2)), "\n")
	chk.Int(tst, "number of links", len(lines), 3)
	if Wrap("x", nil) != nil {
		tst.Errorf("wrapping nil must give nil\n")
	}
}

func Test_errs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("errs02")

	e := Wrap("caller", errors.New("plain"))
	if KindOf(e) != Propagated {
		tst.Errorf("kind should be propagated\n")
	}
	if !strings.Contains(Trace(e), "plain") {
		tst.Errorf("trace must include foreign errors\n")
	}
	if KindOf(Num("solve", "line search failure")) != Numerical {
		tst.Errorf("kind should be numerical\n")
	}
}
