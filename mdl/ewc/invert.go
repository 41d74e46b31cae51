// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ewc

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// invert2 solves the 2×2 system f(T,p) = 0 with a damped Newton method and a
// forward-difference Jacobian. The residual callback reports ok=false on
// non-finite intermediates, which causes the step to be damped rather than
// accepted. Returns StatusNoConverg after nmaxI iterations.
func invert2(f func(T, p float64) (f0, f1 float64, ok bool), T0, p0, tol float64, nmaxI int) (T, p float64, status int) {

	T, p = T0, p0
	f0, f1, ok := f(T, p)
	if !ok {
		return T, p, StatusNaN
	}
	J := la.MatAlloc(2, 2)
	δ := make([]float64, 2)

	for it := 0; it < nmaxI; it++ {

		// converged?
		rnorm := math.Max(math.Abs(f0), math.Abs(f1))
		if rnorm < tol {
			return T, p, StatusOk
		}

		// forward-difference Jacobian
		hT := 1e-7 * (1.0 + math.Abs(T))
		hp := 1e-7 * (1.0 + math.Abs(p))
		g0, g1, okT := f(T+hT, p)
		h0, h1, okp := f(T, p+hp)
		if !okT || !okp {
			return T, p, StatusNaN
		}
		J[0][0], J[0][1] = (g0-f0)/hT, (h0-f0)/hp
		J[1][0], J[1][1] = (g1-f1)/hT, (h1-f1)/hp

		// solve J δ = -f
		det := J[0][0]*J[1][1] - J[0][1]*J[1][0]
		if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
			return T, p, StatusNoConverg
		}
		δ[0] = -(J[1][1]*f0 - J[0][1]*f1) / det
		δ[1] = -(-J[1][0]*f0 + J[0][0]*f1) / det

		// damped update: halve the step until the residual decreases
		λ := 1.0
		accepted := false
		for k := 0; k < 16; k++ {
			e0, e1, okk := f(T+λ*δ[0], p+λ*δ[1])
			if okk && math.Max(math.Abs(e0), math.Abs(e1)) < rnorm {
				T += λ * δ[0]
				p += λ * δ[1]
				f0, f1 = e0, e1
				accepted = true
				break
			}
			λ /= 2.0
		}
		if !accepted {
			// full and damped steps all fail to reduce the residual
			return T, p, StatusNoConverg
		}
	}
	return T, p, StatusNoConverg
}

// invert1 solves f(T) = 0 for T within [ta, tb] using Newton iterations with
// a bisection fallback whenever the Newton step leaves the bracket. Assumes f
// changes sign over [ta, tb]; StatusNoConverg otherwise.
func invert1(f func(T float64) (float64, bool), ta, tb, tol float64, nmaxI int) (T float64, status int) {

	fa, oka := f(ta)
	fb, okb := f(tb)
	if !oka || !okb {
		return ta, StatusNaN
	}
	if fa*fb > 0 {
		return ta, StatusNoConverg
	}
	T = (ta + tb) / 2.0

	for it := 0; it < nmaxI; it++ {
		fT, ok := f(T)
		if !ok {
			return T, StatusNaN
		}
		if math.Abs(fT) < tol {
			return T, StatusOk
		}

		// maintain bracket
		if fa*fT <= 0 {
			tb, fb = T, fT
		} else {
			ta, fa = T, fT
		}

		// Newton step from a difference quotient over the bracket
		h := 1e-7 * (1.0 + math.Abs(T))
		fh, okh := f(T + h)
		Tnew := T
		if okh && fh != fT {
			Tnew = T - fT*h/(fh-fT)
		}
		if Tnew <= ta || Tnew >= tb {
			Tnew = (ta + tb) / 2.0 // bisection fallback
		}
		T = Tnew
	}
	return T, StatusNoConverg
}
