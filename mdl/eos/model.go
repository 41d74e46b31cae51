// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements equations of state for fluid density and viscosity
package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines an equation of state relating density and viscosity to
// temperature and pressure. Implementations are pure: given the parameters
// fixed at Init time, evaluation depends on (T, p) only.
//
// Density and its derivatives must be mutually consistent: DDensityDT and
// DDensityDp must be the analytic derivatives of Density for the same
// model instance.
type Model interface {
	Init(prms dbf.Params) error      // initialises model with parameters
	GetPrms(example bool) dbf.Params // gets (an example of) parameters
	Density(T, p float64) float64    // density
	DDensityDT(T, p float64) float64 // ∂ρ/∂T
	DDensityDp(T, p float64) float64 // ∂ρ/∂p
	Viscosity(T, p float64) float64  // dynamic viscosity
	IsMolarBasis() bool              // density is in [mol/m³] instead of [kg/m³]
	MolarMass() float64              // molar mass [kg/mol]
}

// New returns a new equation-of-state model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'eos' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
