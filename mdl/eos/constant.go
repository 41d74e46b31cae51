// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Constant implements an equation of state with fixed density and viscosity,
// defaulting to reasonable values for water. Density is reported on a molar
// basis and both derivatives are exactly zero.
type Constant struct {

	// parameters
	m   float64 // molar mass [kg/mol]
	rho float64 // mass density [kg/m³]
	mu  float64 // dynamic viscosity [Pa·s]
}

// add model to factory
func init() {
	allocators["constant"] = func() Model { return new(Constant) }
}

// Init initialises model. Molar-mass-in-grams and density-in-mass-units are
// the fallbacks when their mol-based counterparts are absent.
func (o *Constant) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "Molar mass [kg/mol]", "Molar mass [g/mol]",
			"Density [mol/m^3]", "Density [kg/m^3]", "Viscosity [Pa s]":
		default:
			return chk.Err("constant: parameter named %q is incorrect\n", p.N)
		}
	}
	if p := prms.Find("Molar mass [kg/mol]"); p != nil {
		o.m = p.V
	} else if p := prms.Find("Molar mass [g/mol]"); p != nil {
		o.m = p.V * 1e-3
	} else {
		o.m = 18.0153e-3
	}
	if p := prms.Find("Density [mol/m^3]"); p != nil {
		o.rho = p.V * o.m
	} else if p := prms.Find("Density [kg/m^3]"); p != nil {
		o.rho = p.V
	} else {
		o.rho = 1000.0
	}
	o.mu = 8.9e-4
	if p := prms.Find("Viscosity [Pa s]"); p != nil {
		o.mu = p.V
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Constant) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Molar mass [g/mol]", V: 18.0153},
			&dbf.P{N: "Density [kg/m^3]", V: 1000.0},
			&dbf.P{N: "Viscosity [Pa s]", V: 8.9e-4},
		}
	}
	return dbf.Params{
		&dbf.P{N: "Molar mass [kg/mol]", V: o.m},
		&dbf.P{N: "Density [kg/m^3]", V: o.rho},
		&dbf.P{N: "Viscosity [Pa s]", V: o.mu},
	}
}

// Density returns the molar density [mol/m³]
func (o Constant) Density(T, p float64) float64 { return o.rho / o.m }

// DDensityDT returns ∂ρ/∂T
func (o Constant) DDensityDT(T, p float64) float64 { return 0.0 }

// DDensityDp returns ∂ρ/∂p
func (o Constant) DDensityDp(T, p float64) float64 { return 0.0 }

// Viscosity returns the dynamic viscosity [Pa·s]
func (o Constant) Viscosity(T, p float64) float64 { return o.mu }

// IsMolarBasis returns true: density is per mole
func (o Constant) IsMolarBasis() bool { return true }

// MolarMass returns the molar mass [kg/mol]
func (o Constant) MolarMass() float64 { return o.m }
