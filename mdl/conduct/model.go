// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package conduct implements models for relative liquid conductivity
// (relative permeability) in porous media
package conduct

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines relative conductivity models
type Model interface {
	Init(prms dbf.Params) error      // initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example of) parameters
	Klr(sl float64) float64          // relative liquid conductivity
	DklrDsl(sl float64) float64      // ∂klr/∂sl
}

// New returns a new conductivity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'conduct' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
