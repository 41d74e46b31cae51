// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_colpres01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("colpres01. pressure along column of compressible fluid")

	R0 := 1.0
	p0 := 0.0
	C := 1e-2
	H := 10.0
	g := 10.0

	var col ColumnPressure
	col.Init(R0, p0, C, g, H)

	tol := 1e-8
	np := 11
	dz := H / float64(np-1)
	io.PfWhite("%8s%14s%14s%14s%14s%23s\n", "z", "pAna", "Rana", "pNum", "Rnum", "errp")
	for i := 0; i < np; i++ {
		z := H - float64(i)*dz
		pAna, Rana := col.Calc(z)
		pNum, Rnum := col.CalcNum(z)
		errp := math.Abs(pAna - pNum)
		io.Pf("%8.4f%14.8f%14.8f%14.8f%14.8f%23.15e\n", z, pAna, Rana, pNum, Rnum, errp)
		chk.AnaNum(tst, "p", tol, pAna, pNum, false)
		chk.AnaNum(tst, "R", tol, Rana, Rnum, false)
	}
}

func Test_colpres02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("colpres02. incompressible limit is the hydrostatic line")

	var col ColumnPressure
	col.Init(1000.0, 101325.0, 0, 10.0, 2.0)
	for _, z := range []float64{0, 0.5, 1.0, 1.5, 2.0} {
		p, R := col.Calc(z)
		chk.Float64(tst, "p", 1e-12, p, 101325.0+1000.0*10.0*(2.0-z))
		chk.Float64(tst, "R", 1e-15, R, 1000.0)
	}
}
