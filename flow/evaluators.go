// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/gosl/chk"

	"github.com/neelarunmukherjee/ats/mdl/eos"
	"github.com/neelarunmukherjee/ats/mdl/retention"
	"github.com/neelarunmukherjee/ats/msh"
	"github.com/neelarunmukherjee/ats/state"
)

// WaterContent evaluates the extensive water content per cell,
//
//	wc_c = φ_c sl(pa - p_c) n(T, p_c) V_c   [mol]
//
// and its derivative with respect to the cell pressure. Re-evaluation is
// keyed on the pressure change tag, so repeated requests between pressure
// updates are free.
type WaterContent struct {

	// sub-models and parameters
	Eos  eos.Model
	Ret  retention.Model
	Poro []float64 // porosity per cell
	Pa   float64   // atmospheric pressure
	Temp float64   // uniform temperature of the isothermal run

	// derived
	mesh *msh.Mesh
	slf  retention.Nonrate

	// change tracking
	tagWC int // pressure tag at the last water-content evaluation
	tagD  int // pressure tag at the last derivative evaluation
}

// NewWaterContent builds the evaluator; the retention model must be nonrate
func NewWaterContent(mesh *msh.Mesh, eosm eos.Model, ret retention.Model, poro []float64, pa, temp float64) (*WaterContent, error) {
	slf, ok := ret.(retention.Nonrate)
	if !ok {
		return nil, chk.Err("water content evaluator requires a nonrate retention model")
	}
	chk.IntAssert(len(poro), len(mesh.Cells))
	return &WaterContent{
		Eos: eosm, Ret: ret, Poro: poro, Pa: pa, Temp: temp,
		mesh: mesh, slf: slf, tagWC: -1, tagD: -1,
	}, nil
}

// Sl returns the liquid saturation at pressure p
func (o *WaterContent) Sl(p float64) float64 {
	pc := o.Pa - p
	if pc <= 0 {
		return o.Ret.SlMax()
	}
	return o.slf.Sl(pc)
}

// HasFieldChanged recomputes "water_content" if the pressure changed since
// the last evaluation and reports whether it did
func (o *WaterContent) HasFieldChanged(s *state.State, requestor string) bool {
	tag := s.Tag("pressure")
	if tag == o.tagWC {
		return false
	}
	p := s.GetFieldData("pressure").Values("cell")
	wc := s.GetFieldData("water_content").Values("cell")
	for c, cell := range o.mesh.Cells {
		n := o.Eos.Density(o.Temp, p[c])
		wc[c] = o.Poro[c] * o.Sl(p[c]) * n * cell.Vol
	}
	o.tagWC = tag
	s.MarkChanged("water_content")
	return true
}

// HasFieldDerivativeChanged recomputes "dwater_content_dpressure" if the
// pressure changed since the last derivative evaluation
func (o *WaterContent) HasFieldDerivativeChanged(s *state.State, requestor, wrt string) bool {
	if wrt != "pressure" {
		chk.Panic("water content has no derivative with respect to %q", wrt)
	}
	tag := s.Tag("pressure")
	if tag == o.tagD {
		return false
	}
	p := s.GetFieldData("pressure").Values("cell")
	dwc := s.GetFieldData("dwater_content_dpressure").Values("cell")
	for c, cell := range o.mesh.Cells {
		pc := o.Pa - p[c]
		sl := o.Sl(p[c])
		dsldp := 0.0
		if pc > 0 {
			cc, err := o.Ret.Cc(pc, sl, false)
			if err != nil {
				chk.Panic("retention model failed at pc=%g: %v", pc, err)
			}
			dsldp = -cc // pc = pa - p
		}
		n := o.Eos.Density(o.Temp, p[c])
		dndp := o.Eos.DDensityDp(o.Temp, p[c])
		dwc[c] = o.Poro[c] * cell.Vol * (dsldp*n + sl*dndp)
	}
	o.tagD = tag
	s.MarkChanged("dwater_content_dpressure")
	return true
}
