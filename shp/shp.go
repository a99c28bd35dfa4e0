// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines for surface elements
package shp

import (
	"math"

	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/cpmech/gosl/utl"
)

// constants
const MINDET = 1.0e-14 // minimum Jacobian allowed

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type      string      // name; e.g. "qua9"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // geometry of shape; e.g. "qua9" => gnd == 2 (even in 3D space)
	Nverts    int         // number of vertices in cell; e.g. "qua9" => 9
	NatCoords [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad
	S     []float64   // [nverts] shape functions
	DSdR  [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR  [][]float64 // [ndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	Fnvec []float64   // [3] normal vector dxdr × dxds (surfaces in 3D only)
	J     float64     // Jacobian: det(dxdR) or ‖Fnvec‖ for surfaces in 3D
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	p := &Shape{Type: o.Type, Func: o.Func, Gndim: o.Gndim, Nverts: o.Nverts}
	p.NatCoords = utl.Alloc(o.Gndim, o.Nverts)
	for i := range o.NatCoords {
		copy(p.NatCoords[i], o.NatCoords[i])
	}
	p.init_scratchpad()
	return p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//
//	Note: 1) returns nil on errors
//	      2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// IpRealCoords returns the real coordinates (y) of an integration point
//
//	x[ndim][nverts] -- coordinates matrix of element
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates S, DSdR, DxdR and J at integration point
//
//	Input:
//	 x[ndim][nverts] -- coordinates matrix of element; ndim == Gndim or (Gndim == 2 and ndim == 3)
//	 ip              -- integration point
//	Output:
//	 S, DSdR, DxdR, J and Fnvec (for surfaces in 3D)
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	// dxdR := sum_n x * dSdR  =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	ndim := len(x)
	if len(o.DxdR) != ndim {
		o.DxdR = utl.Alloc(ndim, o.Gndim)
	}
	for i := 0; i < ndim; i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// Jacobian
	switch {
	case ndim == 3 && o.Gndim == 2:
		d := o.DxdR
		o.Fnvec[0] = d[1][0]*d[2][1] - d[2][0]*d[1][1]
		o.Fnvec[1] = d[2][0]*d[0][1] - d[0][0]*d[2][1]
		o.Fnvec[2] = d[0][0]*d[1][1] - d[1][0]*d[0][1]
		o.J = math.Sqrt(o.Fnvec[0]*o.Fnvec[0] + o.Fnvec[1]*o.Fnvec[1] + o.Fnvec[2]*o.Fnvec[2])
	case ndim == 2 && o.Gndim == 2:
		o.J = o.DxdR[0][0]*o.DxdR[1][1] - o.DxdR[0][1]*o.DxdR[1][0]
	default:
		return errs.Prec("CalcAtIp", "cannot compute Jacobian of %s in %dD space", o.Type, ndim)
	}
	if o.J < MINDET {
		return errs.Num("CalcAtIp", "Jacobian of %s is too small or negative. J = %g", o.Type, o.J)
	}
	return
}

// init_scratchpad allocates scratchpad data
func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = utl.Alloc(o.Gndim, o.Gndim)
	o.Fnvec = make([]float64, 3)
}
