// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// VanGen implements van Genuchten's retention model
//
//	sl(pc) = slmin + (slmax - slmin)・[1 + (α・pc)ⁿ]⁻ᵐ
//
// with pc in [Pa] and α in [1/Pa]
type VanGen struct {

	// parameters
	α, m, n float64 // shape parameters
	slmin   float64 // minimum sl
	slmax   float64 // maximum sl
	pcmin   float64 // pc limit to consider zero slope
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms dbf.Params) (err error) {
	o.pcmin, o.slmax = 1e-3, 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		case "slmin":
			o.slmin = p.V
		case "slmax":
			o.slmax = p.V
		case "pcmin":
			o.pcmin = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.α <= 0 || o.m <= 0 || o.n <= 0 {
		return chk.Err("vg: parameters alp=%g, m=%g and n=%g must all be positive", o.α, o.m, o.n)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "alp", V: 5e-4}, // [1/Pa]
			&dbf.P{N: "m", V: 0.5},
			&dbf.P{N: "n", V: 2.0},
			&dbf.P{N: "slmin", V: 0.1},
			&dbf.P{N: "slmax", V: 1.0},
			&dbf.P{N: "pcmin", V: 1e-3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "alp", V: o.α},
		&dbf.P{N: "m", V: o.m},
		&dbf.P{N: "n", V: o.n},
		&dbf.P{N: "slmin", V: o.slmin},
		&dbf.P{N: "slmax", V: o.slmax},
		&dbf.P{N: "pcmin", V: o.pcmin},
	}
}

// SlMin returns sl_min
func (o VanGen) SlMin() float64 {
	return o.slmin
}

// SlMax returns sl_max
func (o VanGen) SlMax() float64 {
	return o.slmax
}

// Sl computes sl directly from pc
func (o VanGen) Sl(pc float64) float64 {
	if pc <= o.pcmin {
		return o.slmax
	}
	c := math.Pow(o.α*pc, o.n)
	return o.slmin + (o.slmax-o.slmin)*math.Pow(1.0+c, -o.m)
}

// Cc computes Cc(pc) := ∂sl/∂pc
func (o VanGen) Cc(pc, sl float64, wet bool) (float64, error) {
	if pc <= o.pcmin {
		return 0, nil
	}
	c := math.Pow(o.α*pc, o.n)
	fac := o.slmax - o.slmin
	return -fac * c * math.Pow(c+1.0, -o.m-1.0) * o.m * o.n / pc, nil
}

// L computes L := ∂Cc/∂pc
func (o VanGen) L(pc, sl float64, wet bool) (float64, error) {
	if pc <= o.pcmin {
		return 0, nil
	}
	c := math.Pow(o.α*pc, o.n)
	mn := o.m * o.n
	fac := o.slmax - o.slmin
	return fac * c * math.Pow(c+1.0, -o.m-2.0) * mn * (c*mn - o.n + c + 1.0) / (pc * pc), nil
}

// J computes J := ∂Cc/∂sl
func (o VanGen) J(pc, sl float64, wet bool) (float64, error) {
	return 0, nil
}
