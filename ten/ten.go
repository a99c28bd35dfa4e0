// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ten implements dense tensor algebra on flat row-major arrays
package ten

import (
	"math"

	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dim is the spatial dimension
const Dim = 3

// Dot returns a·b
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// L2norm returns ‖a‖
func L2norm(a []float64) float64 {
	return floats.Norm(a, 2)
}

// Eye returns the n×n identity
func Eye(n int) (I []float64) {
	I = make([]float64, n*n)
	for i := 0; i < n; i++ {
		I[i*n+i] = 1
	}
	return
}

// Zeros returns a new array filled with zeros
func Zeros(n int) []float64 {
	return make([]float64, n)
}

// Copy returns a copy of a
func Copy(a []float64) []float64 {
	b := make([]float64, len(a))
	copy(b, a)
	return b
}

// Determinant returns det(A) for a flat rows×cols matrix
func Determinant(A []float64, rows, cols int) (det float64, err error) {
	if rows != cols {
		return 0, errs.Prec("Determinant", "matrix must be square. rows=%d, cols=%d", rows, cols)
	}
	if err = errs.CheckSize("Determinant", "A", A, rows*cols); err != nil {
		return
	}
	if rows == 3 {
		return Det3(A), nil
	}
	var lu mat.LU
	lu.Factorize(mat.NewDense(rows, cols, Copy(A)))
	return lu.Det(), nil
}

// Inverse returns A⁻¹ for a flat rows×cols matrix
func Inverse(A []float64, rows, cols int) (Ai []float64, err error) {
	if rows != cols {
		return nil, errs.Prec("Inverse", "matrix must be square. rows=%d, cols=%d", rows, cols)
	}
	if err = errs.CheckSize("Inverse", "A", A, rows*cols); err != nil {
		return
	}
	if rows == 3 {
		Ai = make([]float64, 9)
		_, err = Inv3(Ai, A)
		return
	}
	var ai mat.Dense
	if e := ai.Inverse(mat.NewDense(rows, cols, Copy(A))); e != nil {
		return nil, errs.Num("Inverse", "cannot invert %d×%d matrix: %v", rows, cols, e)
	}
	return ai.RawMatrix().Data, nil
}

// MatrixMultiply returns op(A)·op(B) where op transposes if requested. Sizes refer to the stored
// (non-transposed) matrices
func MatrixMultiply(A, B []float64, rowsA, colsA, rowsB, colsB int, transA, transB bool) (C []float64, err error) {
	if err = errs.CheckSize("MatrixMultiply", "A", A, rowsA*colsA); err != nil {
		return
	}
	if err = errs.CheckSize("MatrixMultiply", "B", B, rowsB*colsB); err != nil {
		return
	}
	m, k := rowsA, colsA
	if transA {
		m, k = colsA, rowsA
	}
	kb, n := rowsB, colsB
	if transB {
		kb, n = colsB, rowsB
	}
	if k != kb {
		return nil, errs.Prec("MatrixMultiply", "inner dimensions differ: %d != %d", k, kb)
	}
	a := func(i, l int) float64 {
		if transA {
			return A[l*colsA+i]
		}
		return A[i*colsA+l]
	}
	b := func(l, j int) float64 {
		if transB {
			return B[j*colsB+l]
		}
		return B[l*colsB+j]
	}
	C = make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			for l := 0; l < k; l++ {
				C[i*n+j] += a(i, l) * b(l, j)
			}
		}
	}
	return
}

// SolveLinearSystem solves A·x = b with n = len(b)
func SolveLinearSystem(A, b []float64) (x []float64, err error) {
	sol, err := NewSolver(A, len(b))
	if err != nil {
		return nil, errs.Wrap("SolveLinearSystem", err)
	}
	x = make([]float64, len(b))
	err = errs.Wrap("SolveLinearSystem", sol.SolveTo(x, b))
	return
}

// Solver holds a factorisation to be reused for many right-hand sides
type Solver struct {
	N  int    // size
	lu mat.LU // factorisation
	xv *mat.VecDense
}

// NewSolver factorises the flat n×n matrix A
func NewSolver(A []float64, n int) (o *Solver, err error) {
	if err = errs.CheckSize("NewSolver", "A", A, n*n); err != nil {
		return
	}
	o = &Solver{N: n, xv: mat.NewVecDense(n, nil)}
	o.lu.Factorize(mat.NewDense(n, n, Copy(A)))
	if o.lu.Det() == 0 || math.IsInf(o.lu.Cond(), 1) {
		return nil, errs.Num("NewSolver", "cannot factorise %d×%d matrix: it is singular", n, n)
	}
	return
}

// SolveTo solves A·x = b using the factorisation
func (o *Solver) SolveTo(x, b []float64) (err error) {
	if err = errs.CheckSize("Solver.SolveTo", "b", b, o.N); err != nil {
		return
	}
	if err = errs.CheckSize("Solver.SolveTo", "x", x, o.N); err != nil {
		return
	}
	if e := o.lu.SolveVecTo(o.xv, false, mat.NewVecDense(o.N, Copy(b))); e != nil {
		return errs.Num("Solver.SolveTo", "linear solve failed: %v", e)
	}
	copy(x, o.xv.RawVector().Data)
	return
}

// Solve returns x such that A·x = b
func (o *Solver) Solve(b []float64) (x []float64, err error) {
	x = make([]float64, o.N)
	err = o.SolveTo(x, b)
	return
}
