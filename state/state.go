// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"github.com/cpmech/gosl/chk"
)

// Evaluator computes a derived field (and optionally its derivatives) from
// other fields in a state. Implementations track the tags of their
// dependencies so that re-evaluation happens only when an input changed.
type Evaluator interface {

	// HasFieldChanged brings the evaluated field up to date and reports
	// whether its values changed; requestor identifies the caller for
	// dependency bookkeeping
	HasFieldChanged(s *State, requestor string) bool

	// HasFieldDerivativeChanged does the same for the derivative of the
	// evaluated field with respect to the primary unknown wrt
	HasFieldDerivativeChanged(s *State, requestor, wrt string) bool
}

// State owns the fields of one logical time instant. Process kernels borrow
// field views by name; they never own the storage. The scalar time stamp
// tags all data in the snapshot: a kernel asked to evaluate at time t must
// find state.Time() == t or abort (integrator/kernel desynchronization).
type State struct {
	time   float64
	cycle  int
	fields map[string]*CompositeVector
	consts map[string][]float64
	tags   map[string]int
	evals  map[string]Evaluator
}

// NewState creates an empty state snapshot
func NewState() *State {
	return &State{
		fields: make(map[string]*CompositeVector),
		consts: make(map[string][]float64),
		tags:   make(map[string]int),
		evals:  make(map[string]Evaluator),
	}
}

// Time returns the time stamp of this snapshot
func (o *State) Time() float64 { return o.time }

// SetTime sets the time stamp of this snapshot
func (o *State) SetTime(t float64) { o.time = t }

// Cycle returns the integration cycle counter
func (o *State) Cycle() int { return o.cycle }

// AdvanceCycle increments the integration cycle counter
func (o *State) AdvanceCycle() { o.cycle++ }

// RequireField registers field storage under name, allocating it with the
// given component sizes if not present yet
func (o *State) RequireField(name string, pairs ...interface{}) *CompositeVector {
	if f, ok := o.fields[name]; ok {
		return f
	}
	f := NewCompositeVector(pairs...)
	o.fields[name] = f
	return f
}

// GetFieldData returns a borrowed view of a named field. The caller must
// treat the data as read-only unless it is the field's owner.
func (o *State) GetFieldData(name string) *CompositeVector {
	f, ok := o.fields[name]
	if !ok {
		chk.Panic("field %q is not registered in state", name)
	}
	return f
}

// HasField tells whether a field is registered
func (o *State) HasField(name string) bool {
	_, ok := o.fields[name]
	return ok
}

// SetConstantVector registers a constant vector (e.g. gravity)
func (o *State) SetConstantVector(name string, v []float64) {
	o.consts[name] = v
}

// HasConstant tells whether a constant vector is registered
func (o *State) HasConstant(name string) bool {
	_, ok := o.consts[name]
	return ok
}

// GetConstantVector returns a registered constant vector
func (o *State) GetConstantVector(name string) []float64 {
	v, ok := o.consts[name]
	if !ok {
		chk.Panic("constant vector %q is not registered in state", name)
	}
	return v
}

// MarkChanged bumps the change tag of a field; evaluators depending on it
// will recompute on their next HasFieldChanged call
func (o *State) MarkChanged(name string) {
	o.tags[name]++
}

// Tag returns the current change tag of a field
func (o *State) Tag(name string) int {
	return o.tags[name]
}

// SetFieldEvaluator registers the evaluator responsible for a derived field
func (o *State) SetFieldEvaluator(name string, ev Evaluator) {
	o.evals[name] = ev
}

// GetFieldEvaluator returns the evaluator of a derived field
func (o *State) GetFieldEvaluator(name string) Evaluator {
	ev, ok := o.evals[name]
	if !ok {
		chk.Panic("field %q has no evaluator registered in state", name)
	}
	return ev
}

// CopyFieldsTo copies all field values (not evaluators) into another
// snapshot with identically shaped fields
func (o *State) CopyFieldsTo(dest *State) {
	for name, f := range o.fields {
		dest.GetFieldData(name).Set(f)
		dest.MarkChanged(name)
	}
}
