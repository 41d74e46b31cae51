// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_column01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("column01. 1-D column generator")

	m := Column1D(4, 0.5, 2.0)
	chk.IntAssert(m.NumCells(), 4)
	chk.IntAssert(m.NumFaces(), 5)

	// volumes and elevations
	chk.Float64(tst, "vol     ", 1e-15, m.Cells[0].Vol, 1.0)
	chk.Float64(tst, "z cell 0", 1e-15, m.Cells[0].Z, 1.75)
	chk.Float64(tst, "z cell 3", 1e-15, m.Cells[3].Z, 0.25)

	// connectivity
	top := m.Faces[0]
	if top.Tag != TagTop || top.C2 != -1 {
		tst.Errorf("face 0 must be the top boundary\n")
		return
	}
	bot := m.Faces[4]
	if bot.Tag != TagBottom || bot.C1 != 3 {
		tst.Errorf("last face must be the bottom boundary\n")
		return
	}
	mid := m.Faces[2]
	chk.IntAssert(mid.C1, 1)
	chk.IntAssert(mid.C2, 2)
	chk.IntAssert(m.OtherCell(mid, 1), 2)
	chk.IntAssert(m.OtherCell(mid, 2), 1)

	// elevation drops: cell 1 sits above cell 2
	chk.Float64(tst, "Δz interior", 1e-15, m.DeltaZ(mid, 1), 0.5)
	chk.Float64(tst, "Δz boundary", 1e-15, m.DeltaZ(top, 0), -0.25)
}
