// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package umat

import (
	"strings"

	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Host holds the arguments as given by Fortran hosts. Matrices are flat column-major arrays and
// the material name is a blank-padded fixed-width field. Umat writes the outputs back in place
type Host struct {
	Stress []float64 // [ntens]
	Statev []float64 // [nstatv]
	Ddsdde []float64 // [ntens*ntens] column-major
	Sse    float64
	Spd    float64
	Scd    float64
	Rpl    float64
	Ddsddt []float64 // [ntens]
	Drplde []float64 // [ntens]
	Drpldt float64
	Stran  []float64 // [ntens]
	Dstran []float64 // [ntens]
	Time   [2]float64
	Dtime  float64
	Temp   float64
	Dtemp  float64
	Predef []float64
	Dpred  []float64
	Cmname []byte // fixed width; e.g. 80 characters
	Ndi    int
	Nshr   int
	Ntens  int
	Nstatv int
	Props  []float64 // [nprops]
	Nprops int
	Coords []float64 // [3]
	Drot   []float64 // [9] column-major
	Pnewdt float64
	Celent float64
	Dfgrd0 []float64 // [9] column-major
	Dfgrd1 []float64 // [9] column-major
	Noel   int
	Npt    int
	Layer  int
	Kspt   int
	Kstep  int
	Kinc   int
}

// Umat calls the material model with row-major containers and copies the results back. Failures
// are fatal (panic) unless a cut of the time increment was requested with pnewdt < 1
func Umat(h *Host) {
	a := h.args()
	err := Material(a)
	h.update(a)
	if err == nil {
		return
	}
	trace := errs.Trace(err)
	if h.Pnewdt >= 1 {
		chk.Panic("%s", trace)
	}
	io.Pfred("%s", trace)
}

// args converts the host arguments into the material model ones
func (o *Host) args() (a *Args) {
	a = &Args{
		Stress: o.Stress, Statev: o.Statev, Sse: o.Sse, Spd: o.Spd, Scd: o.Scd,
		Rpl: o.Rpl, Ddsddt: o.Ddsddt, Drplde: o.Drplde, Drpldt: o.Drpldt,
		Stran: o.Stran, Dstran: o.Dstran, Time: o.Time, Dtime: o.Dtime, Temp: o.Temp, Dtemp: o.Dtemp,
		Predef: o.Predef, Dpred: o.Dpred, Cmname: TrimName(o.Cmname),
		Ndi: o.Ndi, Nshr: o.Nshr, Ntens: o.Ntens, Nstatv: o.Nstatv, Nprops: o.Nprops, Props: o.Props,
		Coords: o.Coords, Pnewdt: o.Pnewdt, Celent: o.Celent,
		Noel: o.Noel, Npt: o.Npt, Layer: o.Layer, Kspt: o.Kspt, Kstep: o.Kstep, Kinc: o.Kinc,
	}
	a.Ddsdde = ColToRow(o.Ddsdde, o.Ntens, o.Ntens)
	a.Drot = ColToRow(o.Drot, 3, 3)
	a.Dfgrd0 = ColToRow(o.Dfgrd0, 3, 3)
	a.Dfgrd1 = ColToRow(o.Dfgrd1, 3, 3)
	return
}

// update echoes the outputs into the host storage
func (o *Host) update(a *Args) {
	o.Sse, o.Spd, o.Scd = a.Sse, a.Spd, a.Scd
	o.Rpl, o.Drpldt = a.Rpl, a.Drpldt
	o.Pnewdt = a.Pnewdt
	RowToCol(o.Ddsdde, a.Ddsdde)
	RowToCol(o.Drot, a.Drot)
}

// TrimName converts a blank-padded fixed-width name into a string
func TrimName(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return strings.TrimRight(string(b), " ")
}

// ColToRow converts a flat column-major m×n matrix into a row-major one. Missing entries are zero
func ColToRow(a []float64, m, n int) (A [][]float64) {
	if m < 1 || n < 1 {
		return
	}
	A = utl.Alloc(m, n)
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			if k := i + j*m; k < len(a) {
				A[i][j] = a[k]
			}
		}
	}
	return
}

// RowToCol copies a row-major matrix into a flat column-major array
func RowToCol(a []float64, A [][]float64) {
	m := len(A)
	for i, row := range A {
		for j, v := range row {
			if k := i + j*m; k < len(a) {
				a[k] = v
			}
		}
	}
}
