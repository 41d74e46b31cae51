// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// M1 implements a power-law relative conductivity model
//
//	klr(sl) = se^β      se = (sl - slr) / (slmax - slr)
//
// clamped to [0, 1] outside the mobile saturation range
type M1 struct {

	// parameters
	β     float64 // exponent
	slr   float64 // residual saturation below which klr = 0
	slmax float64 // saturation at which klr = 1
}

// add model to factory
func init() {
	allocators["m1"] = func() Model { return new(M1) }
}

// Init initialises model
func (o *M1) Init(prms dbf.Params) (err error) {
	o.β, o.slmax = 3.0, 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "bet":
			o.β = p.V
		case "slr":
			o.slr = p.V
		case "slmax":
			o.slmax = p.V
		default:
			return chk.Err("m1: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.slmax <= o.slr {
		return chk.Err("m1: slmax=%g must be greater than slr=%g", o.slmax, o.slr)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o M1) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "bet", V: 3.0},
			&dbf.P{N: "slr", V: 0.1},
			&dbf.P{N: "slmax", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "bet", V: o.β},
		&dbf.P{N: "slr", V: o.slr},
		&dbf.P{N: "slmax", V: o.slmax},
	}
}

// Klr returns klr
func (o M1) Klr(sl float64) float64 {
	if sl <= o.slr {
		return 0
	}
	if sl >= o.slmax {
		return 1
	}
	se := (sl - o.slr) / (o.slmax - o.slr)
	return math.Pow(se, o.β)
}

// DklrDsl returns ∂klr/∂sl
func (o M1) DklrDsl(sl float64) float64 {
	if sl <= o.slr || sl >= o.slmax {
		return 0
	}
	se := (sl - o.slr) / (o.slmax - o.slr)
	return o.β * math.Pow(se, o.β-1.0) / (o.slmax - o.slr)
}
