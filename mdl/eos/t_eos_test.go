// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_constant01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constant01. defaults")

	mdl, err := New("constant")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(nil)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// defaults to water
	chk.Float64(tst, "M", 1e-17, mdl.MolarMass(), 18.0153e-3)
	chk.Float64(tst, "rho", 1e-17, mdl.Density(293.15, 101325.0), 1000.0/18.0153e-3)
	if !mdl.IsMolarBasis() {
		tst.Errorf("constant model must report molar basis\n")
	}

	// density ignores (T, p) and derivatives are exactly zero
	for _, T := range []float64{253.15, 273.15, 293.15, 353.15} {
		for _, p := range []float64{-1e5, 0, 101325.0, 1e7} {
			chk.Float64(tst, "rho   ", 1e-17, mdl.Density(T, p), 1000.0/18.0153e-3)
			chk.Float64(tst, "dρ/dT ", 1e-17, mdl.DDensityDT(T, p), 0)
			chk.Float64(tst, "dρ/dp ", 1e-17, mdl.DDensityDp(T, p), 0)
		}
	}
}

func Test_constant02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("constant02. explicit parameters")

	mdl := new(Constant)
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "Molar mass [kg/mol]", V: 0.032},
		&dbf.P{N: "Density [mol/m^3]", V: 55000.0},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "M  ", 1e-17, mdl.MolarMass(), 0.032)
	chk.Float64(tst, "rho", 1e-10, mdl.Density(300, 1e5), 55000.0)

	// gram-based molar mass fallback
	mdl2 := new(Constant)
	err = mdl2.Init(dbf.Params{
		&dbf.P{N: "Molar mass [g/mol]", V: 28.97},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "M", 1e-17, mdl2.MolarMass(), 28.97e-3)
}

func Test_linear01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linear01. derivative consistency")

	mdl, err := New("linear")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// derivatives must equal the analytic derivative of the value function
	for _, T := range []float64{283.15, 293.15, 313.15} {
		for _, p := range []float64{5e4, 101325.0, 5e5} {
			chk.DerivScaSca(tst, "dρ/dp", 1e-6, mdl.DDensityDp(T, p), p, 1e-1, chk.Verbose, func(x float64) float64 {
				return mdl.Density(T, x)
			})
			chk.DerivScaSca(tst, "dρ/dT", 1e-6, mdl.DDensityDT(T, p), T, 1e-3, chk.Verbose, func(x float64) float64 {
				return mdl.Density(x, p)
			})
		}
	}
}

func Test_registry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry01. lookup by name")

	if _, err := New("constant"); err != nil {
		tst.Errorf("lookup of 'constant' failed: %v\n", err)
	}
	if _, err := New("linear"); err != nil {
		tst.Errorf("lookup of 'linear' failed: %v\n", err)
	}
	if _, err := New("butter"); err == nil {
		tst.Errorf("lookup of unknown model must fail\n")
	}

	// misspelled parameter names must be rejected at Init time
	bad := dbf.Params{&dbf.P{N: "Densty [kg/m^3]", V: 1000.0}}
	if err := new(Constant).Init(bad); err == nil {
		tst.Errorf("constant Init with unknown parameter must fail\n")
	}
	if err := new(Linear).Init(bad); err == nil {
		tst.Errorf("linear Init with unknown parameter must fail\n")
	}
}
