// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package drv implements containers for values and derivatives of vector functions of grouped
// inputs, up to third order, stored as flat row-major arrays
//
//	V  [nout]                    f_i
//	D1 [nout][nin]               ∂f_i/∂x_a
//	D2 [nout][nin][nin]          ∂²f_i/∂x_a∂x_b
//	D3 [nout][nin][nin][nin]     ∂³f_i/∂x_a∂x_b∂x_c
//
// Inputs are grouped (e.g. "F", "chi", "Xi1") and blocks of derivatives can be extracted by name
package drv

import (
	"github.com/cpmech/gosl/chk"
)

// Group defines a block of inputs
type Group struct {
	Name string // name of input; e.g. "F"
	Size int    // number of scalar components
	Off  int    // offset within the full input vector
}

// Set holds values and derivatives up to Order
type Set struct {
	Order  int       // maximum order computed
	Nout   int       // number of outputs
	Nin    int       // total number of inputs
	Groups []Group   // input groups
	V      []float64 // values
	D1     []float64 // first derivatives (if Order ≥ 1)
	D2     []float64 // second derivatives (if Order ≥ 2)
	D3     []float64 // third derivatives (if Order ≥ 3)
}

// NewSet allocates a new set
//
//	names -- names of input groups
//	sizes -- sizes of input groups
func NewSet(nout, order int, names []string, sizes []int) (o *Set) {
	if len(names) != len(sizes) {
		chk.Panic("number of names (%d) must equal number of sizes (%d)", len(names), len(sizes))
	}
	o = new(Set)
	o.Order, o.Nout = order, nout
	for i, name := range names {
		o.Groups = append(o.Groups, Group{name, sizes[i], o.Nin})
		o.Nin += sizes[i]
	}
	o.V = make([]float64, nout)
	n := o.Nin
	if order > 0 {
		o.D1 = make([]float64, nout*n)
	}
	if order > 1 {
		o.D2 = make([]float64, nout*n*n)
	}
	if order > 2 {
		o.D3 = make([]float64, nout*n*n*n)
	}
	return
}

// Names returns the names of input groups
func (o *Set) Names() (names []string) {
	for _, g := range o.Groups {
		names = append(names, g.Name)
	}
	return
}

// Sizes returns the sizes of input groups
func (o *Set) Sizes() (sizes []int) {
	for _, g := range o.Groups {
		sizes = append(sizes, g.Size)
	}
	return
}

// Group returns the input group with given name
func (o *Set) Group(name string) Group {
	for _, g := range o.Groups {
		if g.Name == name {
			return g
		}
	}
	chk.Panic("cannot find input group named %q", name)
	return Group{}
}

// Zero clears values and derivatives
func (o *Set) Zero() {
	for _, a := range [][]float64{o.V, o.D1, o.D2, o.D3} {
		for i := range a {
			a[i] = 0
		}
	}
}

// I1 returns the index of ∂f_i/∂x_a in D1
func (o *Set) I1(i, a int) int { return i*o.Nin + a }

// I2 returns the index of ∂²f_i/∂x_a∂x_b in D2
func (o *Set) I2(i, a, b int) int { return (i*o.Nin+a)*o.Nin + b }

// I3 returns the index of ∂³f_i/∂x_a∂x_b∂x_c in D3
func (o *Set) I3(i, a, b, c int) int { return ((i*o.Nin+a)*o.Nin+b)*o.Nin + c }

// Put2 sets ∂²f_i/∂x_a∂x_b and its symmetric entry
func (o *Set) Put2(i, a, b int, v float64) {
	o.D2[o.I2(i, a, b)] = v
	o.D2[o.I2(i, b, a)] = v
}

// Add2 adds v to ∂²f_i/∂x_a∂x_b and, if a ≠ b, to its symmetric entry
func (o *Set) Add2(i, a, b int, v float64) {
	o.D2[o.I2(i, a, b)] += v
	if a != b {
		o.D2[o.I2(i, b, a)] += v
	}
}

// Put3 sets ∂³f_i/∂x_a∂x_b∂x_c and all its permutations
func (o *Set) Put3(i, a, b, c int, v float64) {
	o.D3[o.I3(i, a, b, c)] = v
	o.D3[o.I3(i, a, c, b)] = v
	o.D3[o.I3(i, b, a, c)] = v
	o.D3[o.I3(i, b, c, a)] = v
	o.D3[o.I3(i, c, a, b)] = v
	o.D3[o.I3(i, c, b, a)] = v
}

// J returns the block ∂f/∂a as a flat [nout][size(a)] array
func (o *Set) J(a string) (res []float64) {
	ga := o.Group(a)
	res = make([]float64, o.Nout*ga.Size)
	for i := 0; i < o.Nout; i++ {
		for α := 0; α < ga.Size; α++ {
			res[i*ga.Size+α] = o.D1[o.I1(i, ga.Off+α)]
		}
	}
	return
}

// H returns the block ∂²f/∂a∂b as a flat [nout][size(a)][size(b)] array
func (o *Set) H(a, b string) (res []float64) {
	ga, gb := o.Group(a), o.Group(b)
	res = make([]float64, o.Nout*ga.Size*gb.Size)
	p := 0
	for i := 0; i < o.Nout; i++ {
		for α := 0; α < ga.Size; α++ {
			for β := 0; β < gb.Size; β++ {
				res[p] = o.D2[o.I2(i, ga.Off+α, gb.Off+β)]
				p++
			}
		}
	}
	return
}

// T returns the block ∂³f/∂a∂b∂c as a flat [nout][size(a)][size(b)][size(c)] array
func (o *Set) T(a, b, c string) (res []float64) {
	ga, gb, gc := o.Group(a), o.Group(b), o.Group(c)
	res = make([]float64, o.Nout*ga.Size*gb.Size*gc.Size)
	p := 0
	for i := 0; i < o.Nout; i++ {
		for α := 0; α < ga.Size; α++ {
			for β := 0; β < gb.Size; β++ {
				for γ := 0; γ < gc.Size; γ++ {
					res[p] = o.D3[o.I3(i, ga.Off+α, gb.Off+β, gc.Off+γ)]
					p++
				}
			}
		}
	}
	return
}

// Sub returns a new set holding only outputs [start, start+n)
func (o *Set) Sub(start, n int) (s *Set) {
	s = NewSet(n, o.Order, o.Names(), o.Sizes())
	N := o.Nin
	copy(s.V, o.V[start:start+n])
	if o.Order > 0 {
		copy(s.D1, o.D1[start*N:(start+n)*N])
	}
	if o.Order > 1 {
		copy(s.D2, o.D2[start*N*N:(start+n)*N*N])
	}
	if o.Order > 2 {
		copy(s.D3, o.D3[start*N*N*N:(start+n)*N*N*N])
	}
	return
}

// Pack joins inputs into a single vector
func Pack(inputs ...[]float64) (x []float64) {
	for _, v := range inputs {
		x = append(x, v...)
	}
	return
}

// Unpack splits x into groups with given sizes
func Unpack(x []float64, sizes ...int) (res [][]float64) {
	p := 0
	for _, n := range sizes {
		res = append(res, x[p:p+n])
		p += n
	}
	return
}
