// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ovl implements the computation of the overlap between a point and a deformed particle
//
//	The surface point Ξ* is the stationary point of
//
//	 ℒ(Ξ, λ; χnl, ξt, Rnl) = ½ (χnl_iI Ξ_I - ξt_i)² - λ (Ξ·Ξ - Rnl²)
//
//	and the overlap vector is d_i = χnl_iI Ξ*_I - ξt_i
package ovl

import (
	"math"

	"github.com/UCBoulder/tardigrade-asp-sub000/drv"
	"github.com/UCBoulder/tardigrade-asp-sub000/errs"
	"github.com/UCBoulder/tardigrade-asp-sub000/ten"
)

// names of input groups of the solver
var (
	SolverNames = []string{"chinl", "xit", "Rnl"}
	solverSizes = []int{9, 3, 1}
)

// Options holds data for the Newton-Raphson solver
type Options struct {
	Tola    float64 // absolute tolerance
	Tolr    float64 // relative tolerance
	MaxIt   int     // max number of iterations
	MaxLs   int     // max number of line search halvings
	AlphaLs float64 // line search slack: accept if ‖g‖ < (1 - αls) ‖g_prev‖
}

// SetDefault sets default values
func (o *Options) SetDefault() {
	o.Tola = 1e-9
	o.Tolr = 1e-9
	o.MaxIt = 20
	o.MaxLs = 5
	o.AlphaLs = 1e-4
}

// DefaultOptions returns a new Options with default values
func DefaultOptions() (o *Options) {
	o = new(Options)
	o.SetDefault()
	return
}

// Result holds the results of the overlap solver
type Result struct {
	Inside bool      // target point is inside the non-local particle
	Its    int       // number of iterations
	Xi     []float64 // Ξ*: surface point in the non-local reference configuration
	Lambda float64   // λ*: Lagrange multiplier
	D      *drv.Set  // d = χnl Ξ* - ξt and derivatives w.r.t. (χnl, ξt, Rnl)
	X      *drv.Set  // X* = (Ξ*, λ*) and derivatives w.r.t. (χnl, ξt, Rnl)
}

// indices in z = (Ξ, λ, χnl, ξt, Rnl)
const (
	zΞ  = 0
	zλ  = 3
	zχ  = 4
	zξ  = 13
	zR  = 16
	nz  = 17
	nX  = 4
	npr = 13
)

// lagrangian holds the state at which the optimality system and its derivatives are evaluated
type lagrangian struct {
	χ []float64 // χnl
	ξ []float64 // ξt
	R float64   // Rnl
	Ξ []float64 // current Ξ
	λ float64   // current λ
	r []float64 // χ Ξ - ξ
}

// set updates Ξ, λ and the residual vector r
func (o *lagrangian) set(X []float64) {
	copy(o.Ξ, X[:3])
	o.λ = X[3]
	ten.MatVec(o.r, o.χ, o.Ξ)
	for i := 0; i < 3; i++ {
		o.r[i] -= o.ξ[i]
	}
}

// grad computes g = ∂ℒ/∂(Ξ, λ)
func (o *lagrangian) grad(g []float64) {
	ten.MatTVec(g[:3], o.χ, o.r)
	for I := 0; I < 3; I++ {
		g[I] -= 2.0 * o.λ * o.Ξ[I]
	}
	g[3] = -(ten.Dot(o.Ξ, o.Ξ) - o.R*o.R)
}

// hess computes H = ∂²ℒ/∂(Ξ, λ)∂(Ξ, λ) [4×4]
func (o *lagrangian) hess(H []float64) {
	for I := 0; I < 3; I++ {
		for J := 0; J < 3; J++ {
			H[I*nX+J] = 0
			for i := 0; i < 3; i++ {
				H[I*nX+J] += o.χ[i*3+I] * o.χ[i*3+J]
			}
		}
		H[I*nX+I] -= 2.0 * o.λ
		H[I*nX+3] = -2.0 * o.Ξ[I]
		H[3*nX+I] = -2.0 * o.Ξ[I]
	}
	H[3*nX+3] = 0
}

// dr computes Dr[u] = uχ Ξ + χ uΞ - uξ
func (o *lagrangian) dr(u []float64) (res []float64) {
	res = make([]float64, 3)
	for i := 0; i < 3; i++ {
		for I := 0; I < 3; I++ {
			res[i] += u[zχ+i*3+I]*o.Ξ[I] + o.χ[i*3+I]*u[zΞ+I]
		}
		res[i] -= u[zξ+i]
	}
	return
}

// cross computes uχ vΞ + vχ uΞ
func cross(u, v []float64) (res []float64) {
	res = make([]float64, 3)
	for i := 0; i < 3; i++ {
		for I := 0; I < 3; I++ {
			res[i] += u[zχ+i*3+I]*v[zΞ+I] + v[zχ+i*3+I]*u[zΞ+I]
		}
	}
	return
}

// mtv computes Aᵀ y where A is the χ-part of the direction u
func mtv(u, y []float64) (res []float64) {
	res = make([]float64, 3)
	for i := 0; i < 3; i++ {
		for I := 0; I < 3; I++ {
			res[I] += u[zχ+i*3+I] * y[i]
		}
	}
	return
}

// dg1 computes the directional derivative Dg[u]
func (o *lagrangian) dg1(u []float64) (res []float64) {
	res = make([]float64, nX)
	a := mtv(u, o.r)
	b := make([]float64, 3)
	ten.MatTVec(b, o.χ, o.dr(u))
	for I := 0; I < 3; I++ {
		res[I] = a[I] + b[I] - 2.0*u[zλ]*o.Ξ[I] - 2.0*o.λ*u[zΞ+I]
	}
	res[3] = -2.0*(o.Ξ[0]*u[zΞ]+o.Ξ[1]*u[zΞ+1]+o.Ξ[2]*u[zΞ+2]) + 2.0*o.R*u[zR]
	return
}

// dg2 computes the second directional derivative D²g[u, v]
func (o *lagrangian) dg2(u, v []float64) (res []float64) {
	res = make([]float64, nX)
	a := mtv(u, o.dr(v))
	b := mtv(v, o.dr(u))
	c := make([]float64, 3)
	ten.MatTVec(c, o.χ, cross(u, v))
	for I := 0; I < 3; I++ {
		res[I] = a[I] + b[I] + c[I] - 2.0*u[zλ]*v[zΞ+I] - 2.0*v[zλ]*u[zΞ+I]
	}
	res[3] = -2.0*(u[zΞ]*v[zΞ]+u[zΞ+1]*v[zΞ+1]+u[zΞ+2]*v[zΞ+2]) + 2.0*u[zR]*v[zR]
	return
}

// dg3 computes the third directional derivative D³g[u, v, w]
func dg3(u, v, w []float64) (res []float64) {
	res = make([]float64, nX)
	a := mtv(u, cross(v, w))
	b := mtv(v, cross(u, w))
	c := mtv(w, cross(u, v))
	for I := 0; I < 3; I++ {
		res[I] = a[I] + b[I] + c[I]
	}
	return
}

// Solve computes the overlap vector from the target point ξt to the surface of the deformed
// non-local particle
//
//	χnl   -- non-local micro-deformation [9]; det(χnl) > 0
//	ξt    -- target point (current configuration, relative to non-local centroid) [3]
//	Rnl   -- non-local radius
//	order -- 0, 1, 2 or 3. Derivatives w.r.t. the groups in SolverNames
//	opts  -- options; may be nil for defaults
func Solve(χnl, ξt []float64, Rnl float64, order int, opts *Options) (res *Result, err error) {

	// check
	fn := "ovl.Solve"
	if err = errs.CheckSize(fn, "chinl", χnl, 9); err != nil {
		return
	}
	if err = errs.CheckSize(fn, "xit", ξt, 3); err != nil {
		return
	}
	if Rnl <= 0 {
		return nil, errs.Prec(fn, "non-local radius must be positive. Rnl = %g", Rnl)
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	// reference target point
	χi := make([]float64, 9)
	det, err := ten.Inv3(χi, χnl)
	if err != nil || det <= 0 {
		return nil, errs.Prec(fn, "determinant of chinl must be positive. det = %g", ten.Det3(χnl))
	}
	Ξt := make([]float64, 3)
	ten.MatVec(Ξt, χi, ξt)

	// results
	res = new(Result)
	res.D = drv.NewSet(3, order, SolverNames, solverSizes)
	res.X = drv.NewSet(nX, order, SolverNames, solverSizes)
	res.Xi = make([]float64, 3)

	// outside
	if ten.Dot(Ξt, Ξt) > Rnl*Rnl {
		return
	}
	res.Inside = true

	// solve optimality system
	L := &lagrangian{χ: χnl, ξ: ξt, R: Rnl, Ξ: make([]float64, 3), r: make([]float64, 3)}
	X := []float64{Ξt[0], Ξt[1], Ξt[2], 1}
	res.Its, err = newton(L, X, opts)
	if err != nil {
		return nil, errs.Wrap(fn, err)
	}
	L.set(X)
	copy(res.Xi, X[:3])
	res.Lambda = X[3]
	copy(res.X.V, X)
	for i := 0; i < 3; i++ {
		res.D.V[i] = L.r[i]
	}
	if order < 1 {
		return
	}

	// sensitivities
	err = sensitivities(L, res, order)
	if err != nil {
		return nil, errs.Wrap(fn, err)
	}
	return
}

// newton solves g(X) = 0 with backtracking
func newton(L *lagrangian, X []float64, opts *Options) (it int, err error) {
	g := make([]float64, nX)
	H := make([]float64, nX*nX)
	mg := make([]float64, nX)
	Xt := make([]float64, nX)
	L.set(X)
	L.grad(g)
	R0 := ten.L2norm(g)
	R := R0
	tol := opts.Tola + opts.Tolr*R0
	for it = 0; it < opts.MaxIt; it++ {
		if R <= tol {
			return
		}

		// Newton direction
		L.hess(H)
		for i := 0; i < nX; i++ {
			mg[i] = -g[i]
		}
		ΔX, e := ten.SolveLinearSystem(H, mg)
		if e != nil {
			return it, errs.Wrapf("newton", e, "cannot compute Newton step at iteration %d", it)
		}

		// backtracking
		α := 1.0
		for ls := 0; ; ls++ {
			for i := 0; i < nX; i++ {
				Xt[i] = X[i] + α*ΔX[i]
			}
			L.set(Xt)
			L.grad(g)
			Rt := ten.L2norm(g)
			if Rt < (1.0-opts.AlphaLs)*R {
				R = Rt
				break
			}
			if ls == opts.MaxLs {
				return it, errs.Num("newton", "line search failure at iteration %d: ‖g‖ = %g > ‖g_prev‖ = %g", it, Rt, R)
			}
			α *= 0.5
		}
		copy(X, Xt)
	}
	if R <= tol {
		return
	}
	return it, errs.Num("newton", "Newton-Raphson did not converge after %d iterations. ‖g‖ = %g", it, R)
}

// sensitivities computes derivatives of X* and d by implicit differentiation of g(X*; p) = 0
//
//	With z = (X, p), z_a = (X_a, e_a), z_ab = (X_ab, 0), z_abc = (X_abc, 0):
//
//	 H X_a   = -Dg[e_a]
//	 H X_ab  = -D²g[z_a, z_b]
//	 H X_abc = -(D³g[z_a, z_b, z_c] + D²g[z_ab, z_c] + D²g[z_ac, z_b] + D²g[z_bc, z_a])
//
//	The factorisation of H is reused for all right-hand sides
func sensitivities(L *lagrangian, res *Result, order int) (err error) {

	// factorisation
	H := make([]float64, nX*nX)
	L.hess(H)
	sol, err := ten.NewSolver(H, nX)
	if err != nil {
		return errs.Wrapf("sensitivities", err, "Hessian at the solution is singular")
	}
	solve := func(rhs []float64) ([]float64, error) {
		for i := range rhs {
			rhs[i] = -rhs[i]
		}
		return sol.Solve(rhs)
	}

	// d derivatives along directions
	dd1 := func(u []float64) []float64 { return L.dr(u) }
	dd2 := cross

	// first order
	za := make([][]float64, npr)
	for a := 0; a < npr; a++ {
		za[a] = make([]float64, nz)
		za[a][zχ+a] = 1
		Xa, e := solve(L.dg1(za[a]))
		if e != nil {
			return errs.Wrap("sensitivities", e)
		}
		copy(za[a][:nX], Xa)
		da := dd1(za[a])
		for i := 0; i < nX; i++ {
			res.X.D1[res.X.I1(i, a)] = Xa[i]
		}
		for i := 0; i < 3; i++ {
			res.D.D1[res.D.I1(i, a)] = da[i]
		}
	}
	if order < 2 {
		return
	}

	// second order
	zab := make([][][]float64, npr)
	for a := 0; a < npr; a++ {
		zab[a] = make([][]float64, npr)
	}
	for a := 0; a < npr; a++ {
		for b := a; b < npr; b++ {
			Xab, e := solve(L.dg2(za[a], za[b]))
			if e != nil {
				return errs.Wrap("sensitivities", e)
			}
			z := make([]float64, nz)
			copy(z[:nX], Xab)
			zab[a][b], zab[b][a] = z, z
			dab := dd2(za[a], za[b])
			dXab := dd1(z)
			for i := 0; i < nX; i++ {
				res.X.Put2(i, a, b, Xab[i])
			}
			for i := 0; i < 3; i++ {
				res.D.Put2(i, a, b, dab[i]+dXab[i])
			}
		}
	}
	if order < 3 {
		return
	}

	// third order
	for a := 0; a < npr; a++ {
		for b := a; b < npr; b++ {
			for c := b; c < npr; c++ {
				rhs := dg3(za[a], za[b], za[c])
				t1 := L.dg2(zab[a][b], za[c])
				t2 := L.dg2(zab[a][c], za[b])
				t3 := L.dg2(zab[b][c], za[a])
				for i := 0; i < nX; i++ {
					rhs[i] += t1[i] + t2[i] + t3[i]
				}
				Xabc, e := solve(rhs)
				if e != nil {
					return errs.Wrap("sensitivities", e)
				}
				z := make([]float64, nz)
				copy(z[:nX], Xabc)
				s1 := dd2(zab[a][b], za[c])
				s2 := dd2(zab[a][c], za[b])
				s3 := dd2(zab[b][c], za[a])
				s4 := dd1(z)
				for i := 0; i < nX; i++ {
					res.X.Put3(i, a, b, c, Xabc[i])
				}
				for i := 0; i < 3; i++ {
					res.D.Put3(i, a, b, c, s1[i]+s2[i]+s3[i]+s4[i])
				}
			}
		}
	}
	return
}

// InSphere returns whether the target point ξt lies inside the non-local particle, i.e.
// ‖χnl⁻¹ ξt‖ ≤ Rnl
func InSphere(χnl, ξt []float64, Rnl float64) (inside bool, err error) {
	χi := make([]float64, 9)
	if _, err = ten.Inv3(χi, χnl); err != nil {
		return false, errs.Wrap("InSphere", err)
	}
	Ξt := make([]float64, 3)
	ten.MatVec(Ξt, χi, ξt)
	return math.Sqrt(ten.Dot(Ξt, Ξt)) <= Rnl, nil
}
