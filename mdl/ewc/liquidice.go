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

// LiquidIce implements the three-phase (gas/liquid/ice) closure with an
// exponential freezing-point-depression partition of the wetted pore space:
//
//	stot = sl + si = retention(pc)
//	fl   = exp((T-Tf)/w)  for T < Tf, 1 otherwise
//	sl   = fl stot,  si = (1-fl) stot
//	wc   = φ (sl nl + si ni)
//	e    = φ sl nl cvl (T-Tf) + φ si ni (cvi (T-Tf) - L0) + (1-φ) ρr cr (T-Tf)
//
// The latent heat term makes energy strictly increasing in T through the
// phase transition, so the 1-D inversion stays bracketable.
type LiquidIce struct {

	// parameters
	pa    float64 // atmospheric pressure
	cvl   float64 // liquid molar heat capacity [J/mol·K]
	cvi   float64 // ice molar heat capacity [J/mol·K]
	l0    float64 // molar latent heat of fusion [J/mol]
	rcr   float64 // rock volumetric heat capacity (1-φ basis) [J/m³·K]
	tf    float64 // freezing temperature
	w     float64 // freezing width [K]
	itol  float64 // inversion tolerance
	nmaxI int     // max number of inversion iterations

	// sub-models
	liq eos.Model
	ice eos.Model
	slf retention.Nonrate
	ret retention.Model
}

// add model to factory
func init() {
	allocators["liquid+ice"] = func() Model { return new(LiquidIce) }
}

// Init initialises model
func (o *LiquidIce) Init(prms dbf.Params, eosLiq, eosIce eos.Model, ret retention.Model) (err error) {

	// default values
	o.pa = 101325.0
	o.cvl = 75.3
	o.cvi = 37.7
	o.l0 = 6010.0
	o.rcr = 2.0e6
	o.tf = 273.15
	o.w = 1.0
	o.itol = 1e-11
	o.nmaxI = 100

	// read parameters
	for _, p := range prms {
		switch p.N {
		case "pa":
			o.pa = p.V
		case "cvl":
			o.cvl = p.V
		case "cvi":
			o.cvi = p.V
		case "L0":
			o.l0 = p.V
		case "rcr":
			o.rcr = p.V
		case "tf":
			o.tf = p.V
		case "w":
			o.w = p.V
		case "itol":
			o.itol = p.V
		case "nmaxI":
			o.nmaxI = int(p.V)
		default:
			return chk.Err("liquid+ice ewc model: parameter named %q is invalid", p.N)
		}
	}
	if o.w <= 0 {
		return chk.Err("liquid+ice ewc model: freezing width w must be positive")
	}

	// sub-models
	if eosLiq == nil || eosIce == nil {
		return chk.Err("liquid+ice ewc model requires liquid and ice eos models")
	}
	if ret == nil {
		return chk.Err("liquid+ice ewc model requires a liquid retention model")
	}
	slf, ok := ret.(retention.Nonrate)
	if !ok {
		return chk.Err("liquid+ice ewc model requires a nonrate retention model")
	}
	o.liq = eosLiq
	o.ice = eosIce
	o.ret = ret
	o.slf = slf
	return
}

// GetPrms gets (an example of) parameters
func (o LiquidIce) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "pa", V: 101325.0},
			&dbf.P{N: "L0", V: 6010.0},
			&dbf.P{N: "w", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "pa", V: o.pa},
		&dbf.P{N: "cvl", V: o.cvl},
		&dbf.P{N: "cvi", V: o.cvi},
		&dbf.P{N: "L0", V: o.l0},
		&dbf.P{N: "rcr", V: o.rcr},
		&dbf.P{N: "tf", V: o.tf},
		&dbf.P{N: "w", V: o.w},
	}
}

// InitializeModel pulls run-constant data from the state
func (o *LiquidIce) InitializeModel(s *state.State) error {
	if s.HasConstant("atmospheric_pressure") {
		o.pa = s.GetConstantVector("atmospheric_pressure")[0]
	}
	return nil
}

// UpdateModel refreshes state-dependent cached coefficients
func (o *LiquidIce) UpdateModel(s *state.State) error {
	return nil
}

// stot returns the total wetted saturation (liquid plus ice) at pressure p
func (o LiquidIce) stot(p float64) float64 {
	pc := o.pa - p
	if pc <= 0 {
		return o.ret.SlMax()
	}
	return o.slf.Sl(pc)
}

// fliq returns the unfrozen fraction of the wetted pore space
func (o LiquidIce) fliq(T float64) float64 {
	if T >= o.tf {
		return 1.0
	}
	return math.Exp((T - o.tf) / o.w)
}

// Evaluate computes energy and water content at (T, p)
func (o LiquidIce) Evaluate(T, p, poro float64) (energy, wc float64, status int) {
	st := o.stot(p)
	fl := o.fliq(T)
	sl := fl * st
	si := (1.0 - fl) * st
	nl := o.liq.Density(T, p)
	ni := o.ice.Density(T, p)
	wc = poro * (sl*nl + si*ni)
	energy = poro*sl*nl*o.cvl*(T-o.tf) +
		poro*si*ni*(o.cvi*(T-o.tf)-o.l0) +
		(1.0-poro)*o.rcr*(T-o.tf)
	if math.IsNaN(energy) || math.IsInf(energy, 0) || math.IsNaN(wc) || math.IsInf(wc, 0) {
		status = StatusNaN
	}
	return
}

// InverseEvaluate solves Evaluate(T,p) = (energy, wc) for (T, p)
func (o LiquidIce) InverseEvaluate(energy, wc, poro float64) (T, p float64, status int) {
	// start below atmospheric pressure to stay off the saturated plateau
	T0, p0 := o.tf+1.0, o.pa-1.0e3
	if energy < 0 {
		T0 = o.tf - 1.0 // start on the frozen branch
	}
	scl := []float64{1.0 + math.Abs(energy), 1.0 + math.Abs(wc)}
	res := func(T, p float64) (f0, f1 float64, ok bool) {
		e, w, st := o.Evaluate(T, p, poro)
		return (e - energy) / scl[0], (w - wc) / scl[1], st == StatusOk
	}
	return invert2(res, T0, p0, o.itol, o.nmaxI)
}

// InverseEvaluateEnergy solves the reduced 1-D problem for T at fixed p
func (o LiquidIce) InverseEvaluateEnergy(energy, p, poro float64) (T float64, status int) {
	f := func(T float64) (float64, bool) {
		e, _, st := o.Evaluate(T, p, poro)
		return e - energy, st == StatusOk
	}
	return invert1(f, o.tf-140.0, o.tf+130.0, o.itol*(1.0+math.Abs(energy)), o.nmaxI)
}

// EvaluateSaturations decomposes pore space into gas/liquid/ice fractions
func (o LiquidIce) EvaluateSaturations(T, p, poro float64) (sg, sl, si float64, status int) {
	st := o.stot(p)
	fl := o.fliq(T)
	sl = fl * st
	si = (1.0 - fl) * st
	sg = 1.0 - st
	if math.IsNaN(st) || math.IsNaN(fl) {
		status = StatusNaN
	}
	return
}
