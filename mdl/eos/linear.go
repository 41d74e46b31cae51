// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Linear implements a linearised equation of state:
//
//	ρ(T, p) = ρ0 + C・(p - p0) - E・(T - T0)
//
// with ρ in mass units internally and reported on a molar basis. C is the
// compressibility coefficient, e.g. ρ0/Kbulk, and E the thermal expansion
// coefficient.
type Linear struct {

	// parameters
	m    float64 // molar mass [kg/mol]
	rho0 float64 // mass density at (T0, p0) [kg/m³]
	p0   float64 // reference pressure [Pa]
	t0   float64 // reference temperature [K]
	c    float64 // compressibility [kg/(m³·Pa)]
	e    float64 // thermal expansion [kg/(m³·K)]
	mu   float64 // dynamic viscosity [Pa·s]
}

// add model to factory
func init() {
	allocators["linear"] = func() Model { return new(Linear) }
}

// Init initialises model
func (o *Linear) Init(prms dbf.Params) (err error) {
	o.m = 18.0153e-3
	o.rho0 = 1000.0
	o.t0 = 273.15
	o.mu = 8.9e-4
	for _, p := range prms {
		switch p.N {
		case "Molar mass [kg/mol]":
			o.m = p.V
		case "Molar mass [g/mol]":
			o.m = p.V * 1e-3
		case "Density [kg/m^3]":
			o.rho0 = p.V
		case "Reference pressure [Pa]":
			o.p0 = p.V
		case "Reference temperature [K]":
			o.t0 = p.V
		case "Compressibility [kg/m^3 Pa]":
			o.c = p.V
		case "Thermal expansion [kg/m^3 K]":
			o.e = p.V
		case "Viscosity [Pa s]":
			o.mu = p.V
		default:
			return chk.Err("linear: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Linear) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "Molar mass [g/mol]", V: 18.0153},
			&dbf.P{N: "Density [kg/m^3]", V: 1000.0},
			&dbf.P{N: "Reference pressure [Pa]", V: 101325.0},
			&dbf.P{N: "Reference temperature [K]", V: 293.15},
			&dbf.P{N: "Compressibility [kg/m^3 Pa]", V: 4.53e-7},
			&dbf.P{N: "Thermal expansion [kg/m^3 K]", V: 0.207},
		}
	}
	return dbf.Params{
		&dbf.P{N: "Molar mass [kg/mol]", V: o.m},
		&dbf.P{N: "Density [kg/m^3]", V: o.rho0},
		&dbf.P{N: "Reference pressure [Pa]", V: o.p0},
		&dbf.P{N: "Reference temperature [K]", V: o.t0},
		&dbf.P{N: "Compressibility [kg/m^3 Pa]", V: o.c},
		&dbf.P{N: "Thermal expansion [kg/m^3 K]", V: o.e},
	}
}

// Density returns the molar density [mol/m³]
func (o Linear) Density(T, p float64) float64 {
	return (o.rho0 + o.c*(p-o.p0) - o.e*(T-o.t0)) / o.m
}

// DDensityDT returns ∂ρ/∂T
func (o Linear) DDensityDT(T, p float64) float64 { return -o.e / o.m }

// DDensityDp returns ∂ρ/∂p
func (o Linear) DDensityDp(T, p float64) float64 { return o.c / o.m }

// Viscosity returns the dynamic viscosity [Pa·s]
func (o Linear) Viscosity(T, p float64) float64 { return o.mu }

// IsMolarBasis returns true: density is per mole
func (o Linear) IsMolarBasis() bool { return true }

// MolarMass returns the molar mass [kg/mol]
func (o Linear) MolarMass() float64 { return o.m }
