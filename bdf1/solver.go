// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bdf1 implements the adaptive backward-Euler integrator driving a
// process kernel. Each step runs modified-Newton iterations through the
// kernel's four-operation contract; a step whose scaled norm fails to fall
// below one is rejected and retried with half the step size.
package bdf1

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/neelarunmukherjee/ats/state"
)

// Kernel is the contract between the integrator and a process kernel. All
// workers must drive their kernels through the same call sequence; the
// kernel's norm reduction is the only cross-worker synchronization point.
type Kernel interface {

	// Fun evaluates the residual g at the trial solution uNew
	Fun(tOld, tNew float64, uOld, uNew, g *state.TreeVector)

	// UpdatePrecon refreshes the Newton matrix; the expensive assemble and
	// factorize path runs only when assemble is true
	UpdatePrecon(t float64, u *state.TreeVector, h float64, assemble bool) error

	// Precon applies the factorized inverse to r
	Precon(r, pr *state.TreeVector) error

	// Enorm returns the scaled convergence norm; values ≤ 1 mean converged
	Enorm(u, du *state.TreeVector) float64

	// AdvanceStep stamps the next snapshot with the target time
	AdvanceStep(tNew float64)

	// CommitStep accepts u as the solution at time t
	CommitStep(t float64, u *state.TreeVector)
}

// Config holds the solver data
type Config struct {
	NmaxIt  int     // maximum number of iterations per step
	DtIni   float64 // initial time increment
	DtMin   float64 // smallest allowed time increment
	DtMax   float64 // largest allowed time increment
	Mfac    float64 // step growth factor after an accepted step
	NdvgMax int     // max number of consecutive rejected steps
	DvgCtrl bool    // stop iterating as soon as the norm grows
	CteTg   bool    // constant tangent: assemble and factorize on it == 0 only
	ShowR   bool    // show convergence of the norm
}

// SetDefaults sets default values
func (o *Config) SetDefaults() {
	o.NmaxIt = 10
	o.DtIni = 1.0
	o.DtMin = 1e-8
	o.DtMax = 1e30
	o.Mfac = 2.0
	o.NdvgMax = 20
	o.DvgCtrl = true
}

// Driver advances a kernel from t0 to tf
type Driver struct {

	// input
	Conf *Config
	krn  Kernel

	// solution and work vectors
	u  *state.TreeVector // accepted solution
	v  *state.TreeVector // trial solution
	g  *state.TreeVector // residual
	du *state.TreeVector // Newton correction

	// statistics
	NSteps    int // accepted steps
	NRejected int // rejected steps
	NitTotal  int // total number of iterations over accepted steps
}

// NewDriver allocates the driver; u0 is the initial solution (copied)
func NewDriver(conf *Config, krn Kernel, u0 *state.TreeVector) *Driver {
	o := &Driver{Conf: conf, krn: krn, u: u0.GetCopy()}
	o.v = u0.GetCopy()
	o.g = u0.GetCopy()
	o.du = u0.GetCopy()
	o.g.PutScalar(0)
	o.du.PutScalar(0)
	return o
}

// U returns the current accepted solution
func (o *Driver) U() *state.TreeVector { return o.u }

// Run advances the solution from t0 to tf with adaptive step control
func (o *Driver) Run(t0, tf float64) (err error) {

	t := t0
	o.krn.CommitStep(t, o.u)
	Δt := math.Min(o.Conf.DtIni, tf-t0)
	ndiverg := 0

	for t < tf {

		// time increment
		if Δt < o.Conf.DtMin {
			return chk.Err("Δt increment is too small: %g < %g", Δt, o.Conf.DtMin)
		}
		if t+Δt > tf {
			Δt = tf - t
		}

		// run iterations
		o.krn.AdvanceStep(t + Δt)
		o.v.Set(o.u)
		nit, converged, err := o.iterate(t, Δt)
		if err != nil {
			return chk.Err("iterations failed:\n%v", err)
		}

		// reduce time step on non-convergence
		if !converged {
			ndiverg++
			if ndiverg > o.Conf.NdvgMax {
				return chk.Err("too many consecutive rejected steps (%d) at t=%g", ndiverg, t)
			}
			o.NRejected++
			Δt *= 0.5
			continue
		}

		// accept step
		t += Δt
		o.krn.CommitStep(t, o.v)
		o.u.Set(o.v)
		o.NSteps++
		o.NitTotal += nit
		ndiverg = 0
		Δt = math.Min(Δt*o.Conf.Mfac, o.Conf.DtMax)
	}
	return
}

// iterate runs the Newton iterations of one step attempt
func (o *Driver) iterate(t, Δt float64) (it int, converged bool, err error) {

	var enorm, prevEnorm float64

	// message
	if o.Conf.ShowR {
		io.Pf("\n%13s%4s%23s\n", "t", "it", "enorm")
		defer func() {
			io.Pf("%13.6e%4d%23.15e\n", t+Δt, it, enorm)
		}()
	}

	for it = 0; it < o.Conf.NmaxIt; it++ {

		// residual
		o.krn.Fun(t, t+Δt, o.u, o.v, o.g)

		// Newton matrix; possibly keeping the old factorization
		doAsmFact := it == 0 || !o.Conf.CteTg
		err = o.krn.UpdatePrecon(t+Δt, o.v, Δt, doAsmFact)
		if err != nil {
			return it, false, chk.Err("cannot update preconditioner:\n%v", err)
		}

		// correction
		err = o.krn.Precon(o.g, o.du)
		if err != nil {
			return it, false, chk.Err("cannot apply preconditioner:\n%v", err)
		}
		o.v.Axpy(-1, o.du)

		// convergence
		enorm = o.krn.Enorm(o.v, o.du)
		if o.Conf.ShowR {
			io.Pf("%13.6e%4d%23.15e\n", t+Δt, it, enorm)
		}
		if math.IsNaN(enorm) || math.IsInf(enorm, 0) {
			return it + 1, false, nil
		}
		if enorm <= 1.0 {
			return it + 1, true, nil
		}

		// check divergence
		if it > 1 && o.Conf.DvgCtrl {
			if enorm > prevEnorm {
				return it + 1, false, nil
			}
		}
		prevEnorm = enorm
	}
	return it, false, nil
}
