// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package state implements the field container shared by process kernels:
// composite vectors grouped by mesh location, hierarchical solution vectors
// and time-tagged state snapshots
package state

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// CompositeVector bundles the per-location sub-arrays of one logical unknown
// or derived quantity; e.g. a "pressure" vector with cell-centred and
// face-centred components. All sub-arrays are consistently sized with the
// mesh for the life of the simulation.
type CompositeVector struct {
	comps map[string][]float64 // location kind => flat array
}

// NewCompositeVector creates a composite vector with the given component
// sizes; e.g. NewCompositeVector("cell", ncells, "face", nfaces)
func NewCompositeVector(pairs ...interface{}) *CompositeVector {
	if len(pairs)%2 != 0 {
		chk.Panic("NewCompositeVector requires (name, size) pairs")
	}
	o := &CompositeVector{comps: make(map[string][]float64)}
	for i := 0; i < len(pairs); i += 2 {
		name := pairs[i].(string)
		size := pairs[i+1].(int)
		o.comps[name] = make([]float64, size)
	}
	return o
}

// HasComp tells whether a location kind is present
func (o *CompositeVector) HasComp(loc string) bool {
	_, ok := o.comps[loc]
	return ok
}

// Values returns the flat array of one location kind
func (o *CompositeVector) Values(loc string) []float64 {
	v, ok := o.comps[loc]
	if !ok {
		chk.Panic("composite vector does not have %q component", loc)
	}
	return v
}

// Size returns the length of one location kind's array (0 if absent)
func (o *CompositeVector) Size(loc string) int {
	return len(o.comps[loc])
}

// PutScalar sets all entries of all components to value
func (o *CompositeVector) PutScalar(value float64) {
	for _, v := range o.comps {
		la.VecFill(v, value)
	}
}

// Set copies the values of another composite vector into this one.
// Shapes must match.
func (o *CompositeVector) Set(other *CompositeVector) {
	for loc, v := range o.comps {
		w := other.Values(loc)
		chk.IntAssert(len(v), len(w))
		copy(v, w)
	}
}

// GetCopy returns a deep copy
func (o *CompositeVector) GetCopy() *CompositeVector {
	c := &CompositeVector{comps: make(map[string][]float64)}
	for loc, v := range o.comps {
		c.comps[loc] = make([]float64, len(v))
		copy(c.comps[loc], v)
	}
	return c
}

// Axpy adds α·x into this vector. Shapes must match.
func (o *CompositeVector) Axpy(α float64, x *CompositeVector) {
	for loc, v := range o.comps {
		w := x.Values(loc)
		chk.IntAssert(len(v), len(w))
		for i := range v {
			v[i] += α * w[i]
		}
	}
}

// NormInf returns the largest absolute entry over all components
func (o *CompositeVector) NormInf() (norm float64) {
	for _, v := range o.comps {
		for _, x := range v {
			norm = math.Max(norm, math.Abs(x))
		}
	}
	return
}
