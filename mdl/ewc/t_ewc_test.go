// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ewc

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/neelarunmukherjee/ats/mdl/eos"
	"github.com/neelarunmukherjee/ats/mdl/retention"
)

// buildLiquid allocates a liquid ewc model over a constant eos and a
// van Genuchten retention curve
func buildLiquid(tst *testing.T) Model {
	eosLiq, err := eos.New("constant")
	if err != nil {
		tst.Errorf("eos.New failed: %v\n", err)
		return nil
	}
	err = eosLiq.Init(dbf.Params{})
	if err != nil {
		tst.Errorf("eos init failed: %v\n", err)
		return nil
	}
	ret, err := retention.New("vg")
	if err != nil {
		tst.Errorf("retention.New failed: %v\n", err)
		return nil
	}
	err = ret.Init(ret.GetPrms(true))
	if err != nil {
		tst.Errorf("retention init failed: %v\n", err)
		return nil
	}
	mdl, err := New("liquid")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	err = mdl.Init(dbf.Params{}, eosLiq, nil, ret)
	if err != nil {
		tst.Errorf("init failed: %v\n", err)
		return nil
	}
	return mdl
}

// buildLiquidIce allocates a liquid+ice ewc model; the ice eos uses the
// density of ice at 0 °C
func buildLiquidIce(tst *testing.T) Model {
	eosLiq, err := eos.New("constant")
	if err != nil {
		tst.Errorf("eos.New failed: %v\n", err)
		return nil
	}
	err = eosLiq.Init(dbf.Params{})
	if err != nil {
		tst.Errorf("eos init failed: %v\n", err)
		return nil
	}
	eosIce, err := eos.New("constant")
	if err != nil {
		tst.Errorf("eos.New failed: %v\n", err)
		return nil
	}
	err = eosIce.Init(dbf.Params{&dbf.P{N: "Density [kg/m^3]", V: 916.8}})
	if err != nil {
		tst.Errorf("eos init failed: %v\n", err)
		return nil
	}
	ret, err := retention.New("vg")
	if err != nil {
		tst.Errorf("retention.New failed: %v\n", err)
		return nil
	}
	err = ret.Init(ret.GetPrms(true))
	if err != nil {
		tst.Errorf("retention init failed: %v\n", err)
		return nil
	}
	mdl, err := New("liquid+ice")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	err = mdl.Init(dbf.Params{}, eosLiq, eosIce, ret)
	if err != nil {
		tst.Errorf("init failed: %v\n", err)
		return nil
	}
	return mdl
}

func Test_ewc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ewc01. liquid model round-trip inversion")

	mdl := buildLiquid(tst)
	if mdl == nil {
		return
	}

	poro := 0.4
	for _, T := range []float64{275.0, 285.0, 300.0} {
		for _, p := range []float64{91325.0, 96325.0, 100325.0} {
			e, wc, status := mdl.Evaluate(T, p, poro)
			if status != StatusOk {
				tst.Errorf("Evaluate failed with status %d\n", status)
				return
			}
			Tb, pb, status := mdl.InverseEvaluate(e, wc, poro)
			if status != StatusOk {
				tst.Errorf("InverseEvaluate failed with status %d\n", status)
				return
			}
			io.Pforan("T=%g p=%g  =>  e=%g wc=%g  =>  T=%g p=%g\n", T, p, e, wc, Tb, pb)
			chk.Float64(tst, "T round-trip", 1e-6, Tb, T)
			chk.Float64(tst, "p round-trip", 1e-4, pb, p)
		}
	}
}

func Test_ewc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ewc02. saturations sum to one")

	for _, mdl := range []Model{buildLiquid(tst), buildLiquidIce(tst)} {
		if mdl == nil {
			return
		}
		for _, T := range []float64{263.15, 272.0, 273.15, 280.0, 300.0} {
			for _, p := range []float64{81325.0, 96325.0, 101325.0, 111325.0} {
				for _, poro := range []float64{0.2, 0.4} {
					sg, sl, si, status := mdl.EvaluateSaturations(T, p, poro)
					if status != StatusOk {
						tst.Errorf("EvaluateSaturations failed with status %d\n", status)
						return
					}
					if sl < 0 || si < 0 || sg < -1e-15 {
						tst.Errorf("negative saturation: sg=%g sl=%g si=%g\n", sg, sl, si)
						return
					}
					chk.Float64(tst, "sg+sl+si", 1e-10, sg+sl+si, 1.0)
				}
			}
		}
	}
}

func Test_ewc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ewc03. liquid+ice partition and 1-D inversion")

	mdl := buildLiquidIce(tst)
	if mdl == nil {
		return
	}

	// below freezing most of the wetted space is ice
	poro := 0.4
	sgc, slc, sic, status := mdl.EvaluateSaturations(268.15, 96325.0, poro)
	if status != StatusOk {
		tst.Errorf("EvaluateSaturations failed with status %d\n", status)
		return
	}
	io.Pforan("T=268.15: sg=%g sl=%g si=%g\n", sgc, slc, sic)
	if sic <= slc {
		tst.Errorf("expected ice to dominate at -5 °C: sl=%g si=%g\n", slc, sic)
		return
	}

	// energy is monotone in T, so the reduced inversion recovers T
	for _, T := range []float64{265.0, 271.0, 275.0, 295.0} {
		p := 96325.0
		e, _, status := mdl.Evaluate(T, p, poro)
		if status != StatusOk {
			tst.Errorf("Evaluate failed with status %d\n", status)
			return
		}
		Tb, status := mdl.InverseEvaluateEnergy(e, p, poro)
		if status != StatusOk {
			tst.Errorf("InverseEvaluateEnergy failed with status %d\n", status)
			return
		}
		io.Pforan("T=%g  =>  e=%g  =>  T=%g\n", T, e, Tb)
		if math.Abs(Tb-T) > 1e-6 {
			tst.Errorf("1-D inversion missed: T=%g Tb=%g\n", T, Tb)
			return
		}
	}
}

func Test_ewc04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ewc04. registry and failure codes")

	if _, err := New("unknown-model"); err == nil {
		tst.Errorf("New should have failed for unknown model\n")
		return
	}

	mdl := buildLiquid(tst)
	if mdl == nil {
		return
	}

	// no physical (T, p) produces a negative water content
	_, _, status := mdl.InverseEvaluate(1e6, -1.0, 0.4)
	if status == StatusOk {
		tst.Errorf("InverseEvaluate should have reported failure\n")
		return
	}
}
