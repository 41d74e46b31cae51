// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"

	"github.com/neelarunmukherjee/ats/bcs"
	"github.com/neelarunmukherjee/ats/bdf1"
	"github.com/neelarunmukherjee/ats/flow"
	"github.com/neelarunmukherjee/ats/mdl/conduct"
	"github.com/neelarunmukherjee/ats/mdl/eos"
	"github.com/neelarunmukherjee/ats/mdl/retention"
	"github.com/neelarunmukherjee/ats/msh"
	"github.com/neelarunmukherjee/ats/state"
)

// infiltration into an initially drained soil column
func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("\nERROR: %v", err)
				io.Pf("See location of error below:\n")
				chk.Verbose = true
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// read input parameters
	ncells := io.ArgToInt(0, 20)
	height := io.ArgToFloat(1, 2.0)
	tf := io.ArgToFloat(2, 1e5)
	verbose := io.ArgToBool(3, true)

	// message
	if mpi.Rank() == 0 && verbose {
		io.PfWhite("\nAts -- variably saturated flow in a soil column\n")
		io.Pf("Copyright 2016 The Ats Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"number of cells", "ncells", ncells,
			"column height", "height", height,
			"final time", "tf", tf,
			"show messages", "verbose", verbose,
		))
	}

	// mesh and boundary conditions: ponded infiltration at the top
	mesh := msh.Column1D(ncells, height/float64(ncells), 1.0)
	bcp := bcs.NewProvider(mesh)
	err := bcp.Set(msh.TagTop, bcs.Dirichlet, &dbf.Cte{C: 101325.0})
	if err != nil {
		chk.Panic("cannot set boundary condition:\n%v", err)
	}

	// models
	eosm, err := eos.New("constant")
	if err != nil {
		chk.Panic("cannot allocate eos model:\n%v", err)
	}
	if err = eosm.Init(dbf.Params{}); err != nil {
		chk.Panic("cannot initialise eos model:\n%v", err)
	}
	ret, err := retention.New("vg")
	if err != nil {
		chk.Panic("cannot allocate retention model:\n%v", err)
	}
	if err = ret.Init(ret.GetPrms(true)); err != nil {
		chk.Panic("cannot initialise retention model:\n%v", err)
	}
	cnd, err := conduct.New("m1")
	if err != nil {
		chk.Panic("cannot allocate conductivity model:\n%v", err)
	}
	if err = cnd.Init(cnd.GetPrms(true)); err != nil {
		chk.Panic("cannot initialise conductivity model:\n%v", err)
	}

	// kernel
	var red flow.Reducer = flow.SerialReducer{}
	if mpi.IsOn() {
		red = flow.NewMpiReducer()
	}
	kprms := dbf.Params{
		&dbf.P{N: "k", V: 1e-12},
		&dbf.P{N: "grav", V: 10.0},
		&dbf.P{N: "atol", V: 1e-5},
		&dbf.P{N: "rtol", V: 1e-5},
		&dbf.P{N: "relax", V: 1},
	}
	krn, err := flow.NewRichards(mesh, kprms, eosm, ret, cnd, bcp, red, "umfpack")
	if err != nil {
		chk.Panic("cannot allocate kernel:\n%v", err)
	}
	defer krn.Free()

	sOld, sNext := state.NewState(), state.NewState()
	poro := make([]float64, ncells)
	la.VecFill(poro, 0.4)
	if err = krn.Setup(sOld, sNext, poro); err != nil {
		chk.Panic("cannot set up kernel:\n%v", err)
	}

	// drained initial condition
	u0 := state.NewTreeVector(state.NewCompositeVector("cell", ncells, "face", len(mesh.Faces)))
	u0.PutScalar(101325.0 - 5.0e3)

	// integrate
	conf := new(bdf1.Config)
	conf.SetDefaults()
	conf.DtIni = 10.0
	conf.DtMax = tf / 10.0
	conf.ShowR = verbose && mpi.Rank() == 0
	drv := bdf1.NewDriver(conf, krn, u0)
	if err = drv.Run(0, tf); err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// report the final pressure profile
	if mpi.Rank() == 0 && verbose {
		io.Pf("\naccepted steps = %d   rejected steps = %d   iterations = %d\n", drv.NSteps, drv.NRejected, drv.NitTotal)
		io.Pf("\n%8s%16s\n", "z", "p")
		uc := drv.U().Data().Values("cell")
		for c, cell := range mesh.Cells {
			io.Pf("%8.4f%16.6f\n", cell.Z, uc[c])
		}
	}
}
