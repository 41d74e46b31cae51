// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements a piecewise-linear retention model: saturation ramps from
// slmax at the air-entry pressure down to slmin with constant slope λ.
// Mostly useful in tests where exact arithmetic matters.
type Lin struct {

	// parameters
	λ     float64 // slope [1/Pa]
	pcae  float64 // air-entry capillary pressure [Pa]
	slmin float64 // minimum sl
	slmax float64 // maximum sl

	// derived
	pcres float64 // pc corresponding to slmin
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms dbf.Params) (err error) {
	o.slmax = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "pcae":
			o.pcae = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ > 0 {
		o.pcres = o.pcae + (o.slmax-o.slmin)/o.λ
	} else {
		o.pcres = 1e+30
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "lam", V: 1e-5}, // [1/Pa]
			&dbf.P{N: "pcae", V: 1e3}, // [Pa]
			&dbf.P{N: "slmin", V: 0.1},
			&dbf.P{N: "slmax", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "lam", V: o.λ},
		&dbf.P{N: "pcae", V: o.pcae},
		&dbf.P{N: "slmin", V: o.slmin},
		&dbf.P{N: "slmax", V: o.slmax},
	}
}

// SlMin returns sl_min
func (o Lin) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o Lin) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o Lin) Sl(pc float64) float64 {
	if pc <= o.pcae {
		return o.slmax
	}
	if pc >= o.pcres {
		return o.slmin
	}
	return o.slmax - o.λ*(pc-o.pcae)
}

// Cc computes Cc(pc) := ∂sl/∂pc
func (o Lin) Cc(pc, sl float64, wet bool) (float64, error) {
	if pc <= o.pcae || pc >= o.pcres {
		return 0, nil
	}
	return -o.λ, nil
}

// L computes L := ∂Cc/∂pc
func (o Lin) L(pc, sl float64, wet bool) (float64, error) {
	return 0, nil
}

// J computes J := ∂Cc/∂sl
func (o Lin) J(pc, sl float64, wet bool) (float64, error) {
	return 0, nil
}
