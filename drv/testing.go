// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drv

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
)

// Steps holds the default steps for central differences
var Steps = []float64{1e-5, 1e-6}

// Fcn computes a set at x (all inputs packed)
type Fcn func(x []float64) (*Set, error)

// CentralDiff computes the [len(f(x))][len(x)] matrix of derivatives of f at x using central differences
func CentralDiff(x []float64, h float64, f func(x []float64) ([]float64, error)) (dfdx []float64, err error) {
	xx := make([]float64, len(x))
	copy(xx, x)
	n := len(x)
	for j := 0; j < n; j++ {
		xx[j] = x[j] + h
		fp, e := f(xx)
		if e != nil {
			return nil, e
		}
		xx[j] = x[j] - h
		fm, e := f(xx)
		if e != nil {
			return nil, e
		}
		xx[j] = x[j]
		if dfdx == nil {
			dfdx = make([]float64, len(fp)*n)
		}
		for i := range fp {
			dfdx[i*n+j] = (fp[i] - fm[i]) / (2.0 * h)
		}
	}
	return
}

// CheckArrays compares analytical and numerical results with relative tolerance
//
//	|ana - num| ≤ tol * max(1, |num|)
func CheckArrays(tst *testing.T, msg string, tol float64, ana, num []float64, verbose bool) {
	if len(ana) != len(num) {
		tst.Errorf("%s: sizes differ: ana=%d num=%d\n", msg, len(ana), len(num))
		return
	}
	maxerr, imax := 0.0, -1
	for i := range ana {
		e := math.Abs(ana[i]-num[i]) / math.Max(1, math.Abs(num[i]))
		if e > maxerr {
			maxerr, imax = e, i
		}
	}
	if verbose {
		if imax < 0 {
			io.Pforan("%s: exact\n", msg)
		} else {
			io.Pforan("%s: max err = %g @ %d (ana=%v num=%v)\n", msg, maxerr, imax, ana[imax], num[imax])
		}
	}
	if maxerr > tol {
		tst.Errorf("%s failed: max err = %g @ %d (ana=%v num=%v)\n", msg, maxerr, imax, ana[imax], num[imax])
	}
}

// CheckSet checks all derivatives of s (computed at x) against central differences of the
// lower-order derivatives returned by fcn, for every step in Steps
func CheckSet(tst *testing.T, msg string, tol float64, s *Set, x []float64, verbose bool, fcn Fcn) {
	for _, h := range Steps {
		for order := 1; order <= s.Order; order++ {
			k := order
			num, err := CentralDiff(x, h, func(xx []float64) ([]float64, error) {
				r, e := fcn(xx)
				if e != nil {
					return nil, e
				}
				switch k {
				case 1:
					return r.V, nil
				case 2:
					return r.D1, nil
				}
				return r.D2, nil
			})
			if err != nil {
				tst.Errorf("%s: function failed during finite differences:\n%v", msg, err)
				return
			}
			var ana []float64
			switch order {
			case 1:
				ana = s.D1
			case 2:
				ana = s.D2
			default:
				ana = s.D3
			}
			CheckArrays(tst, io.Sf("%s: D%d (h=%g)", msg, order, h), tol, ana, num, verbose)
		}
	}
}
