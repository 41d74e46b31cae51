// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flow implements the Richards-equation process kernel: the
// four-operation contract (Fun, Precon, UpdatePrecon, Enorm) an implicit
// adaptive integrator drives to advance variably saturated flow one time
// step. The kernel borrows field views from a pair of state snapshots ("old"
// and "next"), never owning the storage itself.
package flow

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/neelarunmukherjee/ats/bcs"
	"github.com/neelarunmukherjee/ats/mdl/conduct"
	"github.com/neelarunmukherjee/ats/mdl/eos"
	"github.com/neelarunmukherjee/ats/mdl/retention"
	"github.com/neelarunmukherjee/ats/mfd"
	"github.com/neelarunmukherjee/ats/msh"
	"github.com/neelarunmukherjee/ats/state"
)

// Richards is the process kernel of the mixed-form Richards equation
//
//	∂(φ sl n)/∂t = ∇·(n k kr/μ (∇p + ρ g ẑ))
//
// discretized over cell and face pressures. The kernel is a state machine
// over one time step: the integrator calls Fun (residual), UpdatePrecon
// (Newton-matrix refresh, possibly lagged), Precon (apply inverse) and Enorm
// (scaled convergence norm) in a fixed cycle on every worker.
type Richards struct {

	// configuration
	Atol  float64 // absolute tolerance of the convergence norm
	Rtol  float64 // relative tolerance of the convergence norm
	Relax bool    // relax tolerances early in a continuation-to-steady-state run
	FcErr bool    // include face entries in the convergence norm

	// parameters
	perm float64 // intrinsic permeability [m²]
	grav float64 // gravity magnitude
	pa   float64 // atmospheric pressure
	temp float64 // uniform temperature of the isothermal run

	// collaborators
	mesh *msh.Mesh
	op   *mfd.Matrix
	bcp  *bcs.Provider
	red  Reducer

	// models
	eosm eos.Model
	ret  retention.Model
	cnd  conduct.Model
	wcev *WaterContent

	// state snapshots
	sOld  *state.State
	sNext *state.State

	// work variables
	h    float64   // step size of the current Fun/UpdatePrecon cycle
	mob  []float64 // upwinded molar mobility per face
	rhoF []float64 // upwinded mass density per face
	kl   []float64 // relative permeability per cell
}

// NewRichards allocates the kernel. Parameters:
//
//	"k"     -- intrinsic permeability [m²]
//	"grav"  -- gravity magnitude (default 10.0)
//	"pa"    -- atmospheric pressure (default 101325.0)
//	"T"     -- temperature (default 293.15)
//	"atol"  -- absolute tolerance (default 1e-5)
//	"rtol"  -- relative tolerance (default 1e-5)
//	"relax" -- nonzero enables tolerance relaxation (default 0)
func NewRichards(mesh *msh.Mesh, prms dbf.Params, eosm eos.Model, ret retention.Model, cnd conduct.Model, bcp *bcs.Provider, red Reducer, lsname string) (o *Richards, err error) {

	o = &Richards{
		Atol: 1e-5, Rtol: 1e-5,
		perm: 1e-12, grav: 10.0, pa: 101325.0, temp: 293.15,
		mesh: mesh, bcp: bcp, red: red,
		eosm: eosm, ret: ret, cnd: cnd,
	}
	for _, p := range prms {
		switch p.N {
		case "k":
			o.perm = p.V
		case "grav":
			o.grav = p.V
		case "pa":
			o.pa = p.V
		case "T":
			o.temp = p.V
		case "atol":
			o.Atol = p.V
		case "rtol":
			o.Rtol = p.V
		case "relax":
			o.Relax = p.V != 0
		default:
			return nil, chk.Err("richards kernel: parameter named %q is invalid", p.N)
		}
	}
	if eosm == nil || ret == nil || cnd == nil {
		return nil, chk.Err("richards kernel requires eos, retention and conductivity models")
	}
	o.op = mfd.NewMatrix(mesh, lsname)
	o.mob = make([]float64, len(mesh.Faces))
	o.rhoF = make([]float64, len(mesh.Faces))
	o.kl = make([]float64, len(mesh.Cells))
	return
}

// Free releases the discrete operator
func (o *Richards) Free() {
	o.op.Free()
}

// Setup registers the kernel's fields and evaluators in the two snapshots
// and wires the water-content evaluator over the given per-cell porosity
func (o *Richards) Setup(sOld, sNext *state.State, poro []float64) (err error) {
	nc, nf := len(o.mesh.Cells), len(o.mesh.Faces)
	for _, s := range []*state.State{sOld, sNext} {
		s.RequireField("pressure", "cell", nc, "face", nf)
		s.RequireField("water_content", "cell", nc)
		s.RequireField("dwater_content_dpressure", "cell", nc)
		s.RequireField("numerical_rel_perm", "face", nf)
		ev, err := NewWaterContent(o.mesh, o.eosm, o.ret, poro, o.pa, o.temp)
		if err != nil {
			return err
		}
		s.SetFieldEvaluator("water_content", ev)
		s.SetFieldEvaluator("dwater_content_dpressure", ev)
	}
	o.sOld = sOld
	o.sNext = sNext
	o.wcev = sNext.GetFieldEvaluator("water_content").(*WaterContent)
	return
}

// Operator returns the discrete operator (preconditioner)
func (o *Richards) Operator() *mfd.Matrix { return o.op }

// AdvanceStep stamps the next snapshot with the target time of the step
// about to be attempted
func (o *Richards) AdvanceStep(tNew float64) {
	o.sNext.SetTime(tNew)
}

// CommitStep accepts the step: the solution u becomes the old snapshot at
// time t and the cycle counter advances
func (o *Richards) CommitStep(t float64, u *state.TreeVector) {
	o.sOld.SetTime(t)
	o.sOld.GetFieldData("pressure").Set(u.Data())
	o.sOld.MarkChanged("pressure")
	o.sOld.AdvanceCycle()
}

// updateMobility upwinds the relative permeability by the larger hydraulic
// head and rebuilds the per-face molar mobility and mass density from the
// pressure in s. The upwinded kr is published as "numerical_rel_perm"
func (o *Richards) updateMobility(s *state.State) {
	p := s.GetFieldData("pressure").Values("cell")
	krF := s.GetFieldData("numerical_rel_perm").Values("face")

	// per-cell relative permeability
	for c := range o.mesh.Cells {
		o.kl[c] = o.cnd.Klr(o.wcev.Sl(p[c]))
	}

	// basis conversion for the buoyancy term
	mm := 1.0
	if o.eosm.IsMolarBasis() {
		mm = o.eosm.MolarMass()
	}

	for i, f := range o.mesh.Faces {
		kr := o.kl[f.C1]
		n := o.eosm.Density(o.temp, p[f.C1])
		mu := o.eosm.Viscosity(o.temp, p[f.C1])
		if f.C2 >= 0 {
			c1, c2 := o.mesh.Cells[f.C1], o.mesh.Cells[f.C2]
			h1 := p[f.C1] + mm*n*o.grav*c1.Z
			n2 := o.eosm.Density(o.temp, p[f.C2])
			h2 := p[f.C2] + mm*n2*o.grav*c2.Z
			if h2 > h1 {
				kr = o.kl[f.C2]
			}
			n = (n + n2) / 2.0
			mu = (mu + o.eosm.Viscosity(o.temp, p[f.C2])) / 2.0
		}
		krF[i] = kr
		o.mob[i] = n * o.perm * kr / mu
		o.rhoF[i] = mm * n
	}
	s.MarkChanged("numerical_rel_perm")
}

// rebuildOperator refreshes boundary conditions at time t and rebuilds the
// stiffness and right-hand sides of the discrete operator from the pressure
// in s
func (o *Richards) rebuildOperator(t float64, s *state.State) {
	o.bcp.Compute(t)
	o.updateMobility(s)
	o.op.CreateStiffnessMatrices(o.mob)
	o.op.CreateRhsVectors()
	o.op.AddGravityFluxes(o.grav, o.rhoF)
}

// Fun evaluates the residual of the discretized equation at the trial
// solution uNew. The snapshots must carry exactly tOld and tNew: a mismatch
// means the integrator and the kernel disagree about the step and is fatal
func (o *Richards) Fun(tOld, tNew float64, uOld, uNew, g *state.TreeVector) {

	// contract check
	if o.sOld.Time() != tOld {
		chk.Panic("kernel/integrator desynchronized: old state at t=%v, requested t=%v", o.sOld.Time(), tOld)
	}
	if o.sNext.Time() != tNew {
		chk.Panic("kernel/integrator desynchronized: next state at t=%v, requested t=%v", o.sNext.Time(), tNew)
	}
	o.h = tNew - tOld

	// move the trial solution into the next snapshot
	o.sNext.GetFieldData("pressure").Set(uNew.Data())
	o.sNext.MarkChanged("pressure")

	// diffusion part
	o.rebuildOperator(tNew, o.sNext)
	o.op.ApplyBoundaryConditions(o.bcp.Markers(), o.bcp.Values())
	g.PutScalar(0)
	o.op.ComputeNegativeResidual(uNew.Data(), g.Data())

	// accumulation part
	o.sOld.GetFieldEvaluator("water_content").HasFieldChanged(o.sOld, "richards")
	o.sNext.GetFieldEvaluator("water_content").HasFieldChanged(o.sNext, "richards")
	wc0 := o.sOld.GetFieldData("water_content").Values("cell")
	wc1 := o.sNext.GetFieldData("water_content").Values("cell")
	gc := g.Data().Values("cell")
	for c := range gc {
		gc[c] += (wc1[c] - wc0[c]) / o.h
	}
}

// UpdatePrecon refreshes the Newton matrix at the trial solution u and step
// size h. The expensive assemble + Schur + factorize path runs only when
// assemble is true; with a lagged-Newton policy the integrator keeps the old
// factorization on later iterations
func (o *Richards) UpdatePrecon(t float64, u *state.TreeVector, h float64, assemble bool) (err error) {

	// contract check
	if o.sNext.Time() != t {
		chk.Panic("kernel/integrator desynchronized: next state at t=%v, requested t=%v", o.sNext.Time(), t)
	}
	o.h = h

	o.sNext.GetFieldData("pressure").Set(u.Data())
	o.sNext.MarkChanged("pressure")
	o.rebuildOperator(t, o.sNext)

	// accumulation derivative folded into the diagonal and its rhs
	o.sNext.GetFieldEvaluator("dwater_content_dpressure").HasFieldDerivativeChanged(o.sNext, "richards", "pressure")
	dwc := o.sNext.GetFieldData("dwater_content_dpressure").Values("cell")
	p := o.sNext.GetFieldData("pressure").Values("cell")
	for c := range o.mesh.Cells {
		o.op.AccumulateDiagonal(c, dwc[c]/h)
		o.op.AccumulateRhs(c, p[c]*dwc[c]/h)
	}

	o.op.ApplyBoundaryConditions(o.bcp.Markers(), o.bcp.Values())
	if assemble {
		o.op.AssembleGlobalMatrices()
		o.op.ComputeSchurComplement()
		err = o.op.UpdatePreconditioner()
	}
	return
}

// Precon applies the (possibly stale) factorized inverse to u
func (o *Richards) Precon(u, pu *state.TreeVector) (err error) {
	return o.op.ApplyInverse(u.Data(), pu.Data())
}

// Enorm computes the scaled convergence norm
//
//	max over cells of |h du| / (atol' + rtol |wc|)
//
// reduced by maximum over all workers. With Relax on, both tolerances grow
// by 1e5 tol/(1+t) so that early steps of a continuation-to-steady-state run
// tolerate the initial transient, tightening back to nominal as t grows
func (o *Richards) Enorm(u, du *state.TreeVector) float64 {

	atol, rtol := o.Atol, o.Rtol
	if o.Relax {
		atol += 1e5 * o.Atol / (1.0 + o.sNext.Time())
		rtol += 1e5 * o.Rtol / (1.0 + o.sNext.Time())
	}

	o.sNext.GetFieldEvaluator("water_content").HasFieldChanged(o.sNext, "richards")
	wc := o.sNext.GetFieldData("water_content").Values("cell")
	duc := du.Data().Values("cell")

	enorm := 0.0
	for c := range duc {
		v := math.Abs(o.h*duc[c]) / (atol + rtol*math.Abs(wc[c]))
		if v > enorm {
			enorm = v
		}
	}

	// face entries are dominated by the cell balance; off unless requested.
	// faces are scaled against a constant atmospheric pressure instead of
	// the water content
	if o.FcErr {
		duf := du.Data().Values("face")
		for i := range duf {
			v := math.Abs(duf[i]) / (atol + rtol*101325.0)
			if v > enorm {
				enorm = v
			}
		}
	}

	return o.red.MaxAll(enorm)
}
