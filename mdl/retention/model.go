// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package retention implements liquid retention models relating capillary
// pressure [Pa] to liquid saturation
package retention

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
)

// Model implements a liquid retention model (LRM)
//
//	Cc = ∂sl/∂pc
//	L  = ∂Cc/∂pc
//	J  = ∂Cc/∂sl
type Model interface {
	Init(prms dbf.Params) error                   // initialises retention model
	GetPrms(example bool) dbf.Params              // gets (an example of) parameters
	SlMin() float64                               // residual (minimum) saturation
	SlMax() float64                               // maximum saturation
	Cc(pc, sl float64, wet bool) (float64, error) // Cc = ∂sl/∂pc
	L(pc, sl float64, wet bool) (float64, error)  // L = ∂Cc/∂pc
	J(pc, sl float64, wet bool) (float64, error)  // J = ∂Cc/∂sl
}

// Nonrate is a subset of LRM that directly computes saturation from
// capillary pressure
type Nonrate interface {
	Sl(pc float64) float64 // compute sl directly from pc
}

// Update updates sl for a given step Δpc. Nonrate models are evaluated
// directly; rate-type models are integrated with an implicit ODE solver.
func Update(mdl Model, pc0, sl0, Δpc float64) (slNew float64, err error) {

	// nonrate models need no integration
	if m, ok := mdl.(Nonrate); ok {
		pc := pc0 + Δpc
		if pc <= 0 {
			return mdl.SlMax(), nil
		}
		return m.Sl(pc), nil
	}

	// wetting flag
	wet := Δpc < 0

	// callback functions
	//   x      = [0.0, 1.0]
	//   pc     = pc0 + x * Δpc
	//   y[0]   = sl
	//   f(x,y) = dy/dx = dsl/dpc * dpc/dx = Cc * Δpc
	//   J(x,y) = df/dy = ∂Cc/∂sl * Δpc
	fcn := func(f []float64, dx, x float64, y []float64) (e error) {
		f[0], e = mdl.Cc(pc0+x*Δpc, y[0], wet)
		f[0] *= Δpc
		return
	}
	jac := func(dfdy *la.Triplet, dx, x float64, y []float64) (e error) {
		if dfdy.Max() == 0 {
			dfdy.Init(1, 1, 1)
		}
		J, e := mdl.J(pc0+x*Δpc, y[0], wet)
		dfdy.Start()
		dfdy.Put(0, 0, J*Δpc)
		return
	}

	// ode solver
	var odesol ode.Solver
	odesol.Init("Radau5", 1, fcn, jac, nil, nil)
	odesol.SetTol(1e-10, 1e-7)
	odesol.Distr = false // avoid sub-communicators in MPI runs

	// solve
	y := []float64{sl0}
	err = odesol.Solve(y, 0, 1, 1, false)
	slNew = y[0]
	return
}

// New returns a new liquid retention model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'retention' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
