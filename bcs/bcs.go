// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bcs implements boundary-condition providers: per-face marker and
// value arrays refreshed from time functions before each residual or matrix
// evaluation
package bcs

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/neelarunmukherjee/ats/msh"
)

// Kind labels the boundary-condition type of a face
type Kind int

const (
	None      Kind = iota // interior or unset face
	Dirichlet             // prescribed pressure
	Neumann               // prescribed outward flux
)

// spec binds one boundary tag to a condition kind and its time function
type spec struct {
	tag  int
	kind Kind
	fcn  dbf.T
}

// Provider evaluates boundary conditions into per-face marker/value arrays.
// Compute(t) must be called before the arrays are consumed; values are only
// meaningful at faces whose marker is not None.
type Provider struct {
	mesh    *msh.Mesh
	specs   []*spec
	markers []Kind
	values  []float64
}

// NewProvider creates a provider for the given mesh
func NewProvider(m *msh.Mesh) *Provider {
	return &Provider{
		mesh:    m,
		markers: make([]Kind, m.NumFaces()),
		values:  make([]float64, m.NumFaces()),
	}
}

// Set registers a condition for all boundary faces with the given tag
func (o *Provider) Set(tag int, kind Kind, fcn dbf.T) (err error) {
	if kind == None {
		return chk.Err("cannot set boundary condition of kind None for tag %d", tag)
	}
	found := false
	for _, f := range o.mesh.Faces {
		if f.Tag == tag {
			found = true
			break
		}
	}
	if !found {
		return chk.Err("mesh has no boundary faces with tag %d", tag)
	}
	o.specs = append(o.specs, &spec{tag, kind, fcn})
	return
}

// Compute refreshes the marker and value arrays at time t
func (o *Provider) Compute(t float64) {
	for i := range o.markers {
		o.markers[i] = None
		o.values[i] = 0
	}
	for _, s := range o.specs {
		v := s.fcn.F(t, nil)
		for _, f := range o.mesh.Faces {
			if f.Tag == s.tag {
				o.markers[f.Id] = s.kind
				o.values[f.Id] = v
			}
		}
	}
}

// Markers returns the per-face condition kinds
func (o *Provider) Markers() []Kind { return o.markers }

// Values returns the per-face condition values
func (o *Provider) Values() []float64 { return o.values }
