// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// checkDerivs verifies Cc and L against numerical differentiation of the
// value functions over a grid of capillary pressures
func checkDerivs(tst *testing.T, mdl Model, pc0, pcf float64, npts int, tolCc, tolL float64) {
	nr, ok := mdl.(Nonrate)
	if !ok {
		tst.Errorf("model must be of nonrate kind for this check\n")
		return
	}
	Pc := utl.LinSpace(pc0, pcf, npts)
	for _, pc := range Pc {
		sl := nr.Sl(pc)

		// check Cc = ∂sl/∂pc
		CcAna, err := mdl.Cc(pc, sl, false)
		if err != nil {
			tst.Errorf("Cc failed: %v\n", err)
			return
		}
		chk.DerivScaSca(tst, "Cc = ∂sl/∂pc", tolCc, CcAna, pc, 1e-1, chk.Verbose, func(x float64) (float64, error) {
			return nr.Sl(x), nil
		})

		// check L = ∂Cc/∂pc
		LAna, err := mdl.L(pc, sl, false)
		if err != nil {
			tst.Errorf("L failed: %v\n", err)
			return
		}
		chk.DerivScaSca(tst, "L  = ∂Cc/∂pc", tolL, LAna, pc, 1e-1, chk.Verbose, func(x float64) (float64, error) {
			Cctmp, _ := mdl.Cc(x, nr.Sl(x), false)
			return Cctmp, nil
		})
	}
}

func Test_vg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg01. van Genuchten derivatives")

	mdl, err := New("vg")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// saturated limit
	nr := mdl.(Nonrate)
	chk.Float64(tst, "sl(pc≤0)", 1e-17, nr.Sl(-1e4), mdl.SlMax())

	// derivative grid away from the pcmin kink
	checkDerivs(tst, mdl, 100.0, 2e4, 11, 1e-6, 1e-8)
}

func Test_lin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lin01. linear model")

	mdl, err := New("lin")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// exact values on the ramp: sl = slmax - lam*(pc - pcae)
	nr := mdl.(Nonrate)
	chk.Float64(tst, "sl(pcae)   ", 1e-15, nr.Sl(1e3), 1.0)
	chk.Float64(tst, "sl(ramp)   ", 1e-15, nr.Sl(2e3), 1.0-1e-5*1e3)
	Cc, _ := mdl.Cc(2e3, 0, false)
	chk.Float64(tst, "Cc(ramp)   ", 1e-17, Cc, -1e-5)
	Cc, _ = mdl.Cc(500.0, 0, false)
	chk.Float64(tst, "Cc(pc<pcae)", 1e-17, Cc, 0)
}

func Test_update01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("update01. saturation update along pc path")

	mdl, err := New("vg")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// drying path: saturation must be monotonically decreasing
	nr := mdl.(Nonrate)
	pc := 0.0
	sl := mdl.SlMax()
	for _, pcNew := range []float64{1e3, 5e3, 1e4, 5e4} {
		slNew, err := Update(mdl, pc, sl, pcNew-pc)
		if err != nil {
			tst.Errorf("Update failed: %v\n", err)
			return
		}
		if slNew > sl {
			tst.Errorf("drying path must not increase saturation: %g > %g\n", slNew, sl)
			return
		}
		chk.Float64(tst, "sl == Sl(pc)", 1e-14, slNew, nr.Sl(pcNew))
		pc, sl = pcNew, slNew
	}

	// full rewetting recovers slmax
	slNew, err := Update(mdl, pc, sl, -pc)
	if err != nil {
		tst.Errorf("Update failed: %v\n", err)
		return
	}
	chk.Float64(tst, "sl(rewet)", 1e-14, slNew, mdl.SlMax())
}
