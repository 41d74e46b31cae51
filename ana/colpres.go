// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana provides closed-form solutions used to verify the discrete
// operator and the time integration.
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"
)

// ColumnPressure computes the equilibrium pressure and density of a fluid
// along a column under gravity:
//
//	R    = R0 + C・(p - p0)   thus   dR/dp = C
//	dp   = R(p)・g・(H - z)・dT   over the pseudo time 0 ≤ T ≤ 1
//
// For C → 0 the profile reduces to the incompressible hydrostatic line
// p = p0 + R0 g (H - z).
type ColumnPressure struct {
	R0   float64 // density corresponding to p0
	P0   float64 // pressure at the top of the column
	C    float64 // compressibility coefficient
	Grav float64 // gravity acceleration (positive constant)
	H    float64 // elevation of the top of the column
}

// Init initialises this structure
func (o *ColumnPressure) Init(R0, p0, C, g, H float64) {
	o.R0 = R0
	o.P0 = p0
	o.C = C
	o.Grav = g
	o.H = H
}

// Calc computes pressure and density at elevation z
func (o ColumnPressure) Calc(z float64) (p, R float64) {
	if o.C == 0 {
		p = o.P0 + o.R0*o.Grav*(o.H-z)
		R = o.R0
		return
	}
	p = o.P0 + (o.R0/o.C)*(math.Exp(o.C*o.Grav*(o.H-z))-1.0)
	R = o.R0 + o.C*(p-o.P0)
	return
}

// CalcNum computes pressure and density by integrating the equilibrium ODE
// with ξ := {p, R}
func (o ColumnPressure) CalcNum(z float64) (p, R float64) {
	Δz := o.H - z
	fcn := func(f []float64, dT, T float64, ξ []float64) (e error) {
		f[0] = ξ[1] * o.Grav * Δz // dp/dT
		f[1] = o.C * f[0]         // dR/dT
		return
	}
	var odesol ode.Solver
	odesol.Init("Radau5", 2, fcn, nil, nil, nil)
	odesol.SetTol(1e-10, 1e-7)
	odesol.Distr = false // avoid sub-communicators in MPI runs
	ξ := []float64{o.P0, o.R0}
	err := odesol.Solve(ξ, 0, 1, 1, false)
	if err != nil {
		chk.Panic("ColumnPressure failed when calculating pressure using ODE solver: %v", err)
	}
	return ξ[0], ξ[1]
}
