// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ewc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/neelarunmukherjee/ats/mdl/eos"
	"github.com/neelarunmukherjee/ats/mdl/retention"
	"github.com/neelarunmukherjee/ats/state"
)

// Liquid implements the unfrozen two-phase (gas/liquid) closure:
//
//	wc = φ sl(pc) nl(T,p)                      [mol/m³]
//	e  = φ sl nl cvl (T-Tref) + (1-φ) ρr cr (T-Tref)   [J/m³]
//
// with pc = pa - p and nl the liquid molar density. All saturations of ice
// are identically zero, which makes the inverse map well-posed whenever the
// retention curve is strictly monotone.
type Liquid struct {

	// parameters
	pa    float64 // atmospheric pressure
	cvl   float64 // liquid molar heat capacity [J/mol·K]
	rcr   float64 // rock volumetric heat capacity (1-φ basis) [J/m³·K]
	tref  float64 // reference temperature for internal energy
	itol  float64 // inversion tolerance
	nmaxI int     // max number of inversion iterations

	// sub-models
	liq eos.Model
	slf retention.Nonrate
	ret retention.Model
}

// add model to factory
func init() {
	allocators["liquid"] = func() Model { return new(Liquid) }
}

// Init initialises model
func (o *Liquid) Init(prms dbf.Params, eosLiq, eosIce eos.Model, ret retention.Model) (err error) {

	// default values
	o.pa = 101325.0
	o.cvl = 75.3
	o.rcr = 2.0e6
	o.tref = 273.15
	o.itol = 1e-11
	o.nmaxI = 100

	// read parameters
	for _, p := range prms {
		switch p.N {
		case "pa":
			o.pa = p.V
		case "cvl":
			o.cvl = p.V
		case "rcr":
			o.rcr = p.V
		case "tref":
			o.tref = p.V
		case "itol":
			o.itol = p.V
		case "nmaxI":
			o.nmaxI = int(p.V)
		default:
			return chk.Err("liquid ewc model: parameter named %q is invalid", p.N)
		}
	}

	// sub-models
	if eosLiq == nil {
		return chk.Err("liquid ewc model requires a liquid eos model")
	}
	if ret == nil {
		return chk.Err("liquid ewc model requires a liquid retention model")
	}
	slf, ok := ret.(retention.Nonrate)
	if !ok {
		return chk.Err("liquid ewc model requires a nonrate retention model")
	}
	o.liq = eosLiq
	o.ret = ret
	o.slf = slf
	return
}

// GetPrms gets (an example of) parameters
func (o Liquid) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "pa", V: 101325.0},
			&dbf.P{N: "cvl", V: 75.3},
			&dbf.P{N: "rcr", V: 2.0e6},
		}
	}
	return dbf.Params{
		&dbf.P{N: "pa", V: o.pa},
		&dbf.P{N: "cvl", V: o.cvl},
		&dbf.P{N: "rcr", V: o.rcr},
		&dbf.P{N: "tref", V: o.tref},
	}
}

// InitializeModel pulls run-constant data from the state
func (o *Liquid) InitializeModel(s *state.State) error {
	if s.HasConstant("atmospheric_pressure") {
		o.pa = s.GetConstantVector("atmospheric_pressure")[0]
	}
	return nil
}

// UpdateModel refreshes state-dependent cached coefficients
func (o *Liquid) UpdateModel(s *state.State) error {
	// no cached coefficients in the unfrozen closure
	return nil
}

// sl returns the liquid saturation at pressure p
func (o Liquid) sl(p float64) float64 {
	pc := o.pa - p
	if pc <= 0 {
		return o.ret.SlMax()
	}
	return o.slf.Sl(pc)
}

// Evaluate computes energy and water content at (T, p)
func (o Liquid) Evaluate(T, p, poro float64) (energy, wc float64, status int) {
	sl := o.sl(p)
	nl := o.liq.Density(T, p)
	wc = poro * sl * nl
	energy = wc*o.cvl*(T-o.tref) + (1.0-poro)*o.rcr*(T-o.tref)
	if math.IsNaN(energy) || math.IsInf(energy, 0) || math.IsNaN(wc) || math.IsInf(wc, 0) {
		status = StatusNaN
	}
	return
}

// InverseEvaluate solves Evaluate(T,p) = (energy, wc) for (T, p)
func (o Liquid) InverseEvaluate(energy, wc, poro float64) (T, p float64, status int) {
	// start below atmospheric pressure: on the saturated plateau the water
	// content has no pressure sensitivity and the Jacobian is singular
	T, p = o.tref+1.0, o.pa-1.0e3
	scl := []float64{1.0 + math.Abs(energy), 1.0 + math.Abs(wc)}
	res := func(T, p float64) (f0, f1 float64, ok bool) {
		e, w, st := o.Evaluate(T, p, poro)
		return (e - energy) / scl[0], (w - wc) / scl[1], st == StatusOk
	}
	return invert2(res, T, p, o.itol, o.nmaxI)
}

// InverseEvaluateEnergy solves the reduced 1-D problem for T at fixed p
func (o Liquid) InverseEvaluateEnergy(energy, p, poro float64) (T float64, status int) {
	f := func(T float64) (float64, bool) {
		e, _, st := o.Evaluate(T, p, poro)
		return e - energy, st == StatusOk
	}
	return invert1(f, o.tref-140.0, o.tref+130.0, o.itol*(1.0+math.Abs(energy)), o.nmaxI)
}

// EvaluateSaturations decomposes pore space into gas/liquid/ice fractions
func (o Liquid) EvaluateSaturations(T, p, poro float64) (sg, sl, si float64, status int) {
	sl = o.sl(p)
	sg = 1.0 - sl
	si = 0.0
	if math.IsNaN(sl) {
		status = StatusNaN
	}
	return
}
