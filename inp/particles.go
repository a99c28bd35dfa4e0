// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/phil-mansfield/table"
)

// ReadParticles reads a whitespace separated table with columns: x y z r. Lines starting with #
// are ignored
func ReadParticles(fn string) (radii []float64, centroids [][]float64, err error) {
	cols, err := table.ReadTable(fn, []int{0, 1, 2, 3}, nil)
	if err != nil {
		return nil, nil, errs.Prec("ReadParticles", "cannot read particles table %q: %v", fn, err)
	}
	xs, ys, zs, rs := cols[0], cols[1], cols[2], cols[3]
	if len(rs) == 0 {
		return nil, nil, errs.Prec("ReadParticles", "table %q has no particles", fn)
	}
	centroids = make([][]float64, len(rs))
	for i := range rs {
		centroids[i] = []float64{xs[i], ys[i], zs[i]}
	}
	return rs, centroids, nil
}
