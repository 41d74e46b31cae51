// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ewc implements energy-water-content models: closures that map the
// primary unknowns (temperature, pressure) to the conserved quantities
// (energy, water content) and back. They compose an equation-of-state model
// with a liquid retention model and are consumed by a multi-physics coupling
// delegate, never by the flow kernel itself.
package ewc

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/neelarunmukherjee/ats/mdl/eos"
	"github.com/neelarunmukherjee/ats/mdl/retention"
	"github.com/neelarunmukherjee/ats/state"
)

// Status codes returned by the evaluation operations. The coupling delegate
// inspects these instead of catching panics, because one worker unwinding
// while the others proceed would deadlock the collective step.
const (
	StatusOk        = 0 // success
	StatusNoConverg = 1 // internal inversion did not converge
	StatusNaN       = 2 // non-finite intermediate value
)

// Model defines the energy-water-content closure
type Model interface {

	// Init initialises this model with parameters and sub-models. eosIce may
	// be nil for models without an ice phase.
	Init(prms dbf.Params, eosLiq, eosIce eos.Model, ret retention.Model) error

	// GetPrms gets (an example of) parameters
	GetPrms(example bool) dbf.Params

	// InitializeModel pulls run-constant data from the state; called once
	InitializeModel(s *state.State) error

	// UpdateModel refreshes state-dependent cached coefficients; called once
	// per nonlinear iteration, before any Evaluate/Invert call
	UpdateModel(s *state.State) error

	// Evaluate computes energy [J/m³] and water content [mol/m³] at (T, p)
	Evaluate(T, p, poro float64) (energy, wc float64, status int)

	// InverseEvaluate solves Evaluate(T,p) = (energy, wc) for (T, p)
	InverseEvaluate(energy, wc, poro float64) (T, p float64, status int)

	// InverseEvaluateEnergy solves the reduced 1-D problem for T at fixed p
	InverseEvaluateEnergy(energy, p, poro float64) (T float64, status int)

	// EvaluateSaturations decomposes pore space into gas/liquid/ice fractions
	EvaluateSaturations(T, p, poro float64) (sg, sl, si float64, status int)
}

// New returns a new EWC model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot find ewc model named %q", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
