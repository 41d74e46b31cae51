// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conduct

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_m101(tst *testing.T) {

	//verbose()
	chk.PrintTitle("m101. power-law model")

	mdl, err := New("m1")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// limits
	chk.Float64(tst, "klr(slr)  ", 1e-17, mdl.Klr(0.1), 0)
	chk.Float64(tst, "klr(slmax)", 1e-17, mdl.Klr(1.0), 1)

	// derivative check over the mobile range
	for _, sl := range utl.LinSpace(0.15, 0.95, 9) {
		chk.DerivScaSca(tst, "∂klr/∂sl", 1e-7, mdl.DklrDsl(sl), sl, 1e-4, chk.Verbose, func(x float64) float64 {
			return mdl.Klr(x)
		})
	}
}
