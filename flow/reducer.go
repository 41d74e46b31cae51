// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"github.com/cpmech/gosl/mpi"
)

// Reducer reduces a worker-local scalar across all workers. The kernel's
// convergence norm calls MaxAll exactly once per Enorm evaluation, which is
// the only cross-worker synchronization point of the whole contract; every
// worker must therefore reach Enorm in the same global order.
type Reducer interface {
	MaxAll(local float64) float64
}

// SerialReducer is the single-process reduction: the local value is global
type SerialReducer struct{}

// MaxAll returns local unchanged
func (o SerialReducer) MaxAll(local float64) float64 { return local }

// MpiReducer reduces across all MPI processes
type MpiReducer struct {
	x []float64 // send/receive buffer
	w []float64 // workspace
}

// NewMpiReducer allocates the reduction buffers
func NewMpiReducer() *MpiReducer {
	return &MpiReducer{x: make([]float64, 1), w: make([]float64, 1)}
}

// MaxAll returns the maximum of local over all processes. Blocks until every
// process has contributed
func (o *MpiReducer) MaxAll(local float64) float64 {
	o.x[0] = local
	mpi.AllReduceMax(o.x, o.w)
	return o.x[0]
}
