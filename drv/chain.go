// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drv

import "github.com/cpmech/gosl/chk"

// Chain computes h = f∘g up to given order
//
//	f -- outer function; derivatives w.r.t. y = g(x). Must have f.Order ≥ order
//	g -- inner function y(x); missing higher derivatives (nil) are taken as zero
//
//	h_α   = f_a g_aα
//	h_αβ  = f_ab g_aα g_bβ + f_a g_aαβ
//	h_αβγ = f_abc g_aα g_bβ g_cγ + f_ab (g_aαβ g_bγ + g_aαγ g_bβ + g_aβγ g_bα) + f_a g_aαβγ
func Chain(f, g *Set, order int) (h *Set) {
	if f.Nin != g.Nout {
		chk.Panic("outer function has %d inputs but inner function has %d outputs", f.Nin, g.Nout)
	}
	if f.Order < order {
		chk.Panic("outer function has order %d < %d", f.Order, order)
	}
	if order > 0 && g.D1 == nil {
		chk.Panic("inner function must have first derivatives")
	}
	h = NewSet(f.Nout, order, g.Names(), g.Sizes())
	copy(h.V, f.V)
	if order < 1 {
		return
	}
	no, na, nq := f.Nout, f.Nin, g.Nin

	// first order
	for i := 0; i < no; i++ {
		for a := 0; a < na; a++ {
			fa := f.D1[f.I1(i, a)]
			if fa == 0 {
				continue
			}
			for α := 0; α < nq; α++ {
				h.D1[h.I1(i, α)] += fa * g.D1[g.I1(a, α)]
			}
		}
	}
	if order < 2 {
		return
	}

	// C1[i][a][γ] = f_ab g_bγ
	C1 := make([]float64, no*na*nq)
	for i := 0; i < no; i++ {
		for a := 0; a < na; a++ {
			for b := 0; b < na; b++ {
				fab := f.D2[f.I2(i, a, b)]
				if fab == 0 {
					continue
				}
				for γ := 0; γ < nq; γ++ {
					C1[(i*na+a)*nq+γ] += fab * g.D1[g.I1(b, γ)]
				}
			}
		}
	}

	// second order
	for i := 0; i < no; i++ {
		for a := 0; a < na; a++ {
			for α := 0; α < nq; α++ {
				gaα := g.D1[g.I1(a, α)]
				if gaα == 0 {
					continue
				}
				for β := 0; β < nq; β++ {
					h.D2[h.I2(i, α, β)] += gaα * C1[(i*na+a)*nq+β]
				}
			}
		}
	}
	if g.D2 != nil {
		for i := 0; i < no; i++ {
			for a := 0; a < na; a++ {
				fa := f.D1[f.I1(i, a)]
				if fa == 0 {
					continue
				}
				for αβ := 0; αβ < nq*nq; αβ++ {
					h.D2[i*nq*nq+αβ] += fa * g.D2[a*nq*nq+αβ]
				}
			}
		}
	}
	if order < 3 {
		return
	}

	// third order: f_abc g_aα g_bβ g_cγ by successive contractions
	A1 := make([]float64, no*na*na*nq) // [i][a][b][γ]
	for i := 0; i < no; i++ {
		for a := 0; a < na; a++ {
			for b := 0; b < na; b++ {
				for c := 0; c < na; c++ {
					fabc := f.D3[f.I3(i, a, b, c)]
					if fabc == 0 {
						continue
					}
					for γ := 0; γ < nq; γ++ {
						A1[((i*na+a)*na+b)*nq+γ] += fabc * g.D1[g.I1(c, γ)]
					}
				}
			}
		}
	}
	A2 := make([]float64, no*na*nq*nq) // [i][a][β][γ]
	for i := 0; i < no; i++ {
		for a := 0; a < na; a++ {
			for b := 0; b < na; b++ {
				for β := 0; β < nq; β++ {
					gbβ := g.D1[g.I1(b, β)]
					if gbβ == 0 {
						continue
					}
					for γ := 0; γ < nq; γ++ {
						A2[((i*na+a)*nq+β)*nq+γ] += gbβ * A1[((i*na+a)*na+b)*nq+γ]
					}
				}
			}
		}
	}
	for i := 0; i < no; i++ {
		for a := 0; a < na; a++ {
			for α := 0; α < nq; α++ {
				gaα := g.D1[g.I1(a, α)]
				if gaα == 0 {
					continue
				}
				for βγ := 0; βγ < nq*nq; βγ++ {
					h.D3[(i*nq+α)*nq*nq+βγ] += gaα * A2[(i*na+a)*nq*nq+βγ]
				}
			}
		}
	}

	// third order: f_ab g_aαβ g_bγ (three permutations)
	if g.D2 != nil {
		S := make([]float64, no*nq*nq*nq) // S[i][α][β][γ] = g_aαβ C1[i][a][γ]
		for i := 0; i < no; i++ {
			for a := 0; a < na; a++ {
				for α := 0; α < nq; α++ {
					for β := 0; β < nq; β++ {
						gaαβ := g.D2[g.I2(a, α, β)]
						if gaαβ == 0 {
							continue
						}
						for γ := 0; γ < nq; γ++ {
							S[((i*nq+α)*nq+β)*nq+γ] += gaαβ * C1[(i*na+a)*nq+γ]
						}
					}
				}
			}
		}
		for i := 0; i < no; i++ {
			for α := 0; α < nq; α++ {
				for β := 0; β < nq; β++ {
					for γ := 0; γ < nq; γ++ {
						h.D3[h.I3(i, α, β, γ)] += S[((i*nq+α)*nq+β)*nq+γ] +
							S[((i*nq+α)*nq+γ)*nq+β] +
							S[((i*nq+β)*nq+γ)*nq+α]
					}
				}
			}
		}
	}

	// third order: f_a g_aαβγ
	if g.D3 != nil {
		n3 := nq * nq * nq
		for i := 0; i < no; i++ {
			for a := 0; a < na; a++ {
				fa := f.D1[f.I1(i, a)]
				if fa == 0 {
					continue
				}
				for αβγ := 0; αβγ < n3; αβγ++ {
					h.D3[i*n3+αβγ] += fa * g.D3[a*n3+αβγ]
				}
			}
		}
	}
	return
}
