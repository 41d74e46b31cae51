// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mfd implements the discrete diffusion operator of the flow kernel
// over cell and face unknowns, and the preconditioner obtained from it by
// algebraic elimination of the face block. The face block of the two-point
// scheme is diagonal, hence the cell-only Schur complement is exact and the
// elimination introduces no approximation beyond the linearization itself.
package mfd

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/neelarunmukherjee/ats/bcs"
	"github.com/neelarunmukherjee/ats/msh"
	"github.com/neelarunmukherjee/ats/state"
)

// Matrix holds the local blocks of the linearized flow operator
//
//	| Acc+D  Acf | | pc |   | fc + rhsC |
//	|            | |    | = |           |
//	| Afc    Aff | | pf |   | rhsF      |
//
// with D the per-cell accumulation diagonal. The blocks are stored by face:
// wc are the cell-row couplings to the face unknown and wf the face-row
// couplings back to the cells; aff is the (diagonal) face-row coefficient.
type Matrix struct {

	// mesh and linear solver
	mesh *msh.Mesh
	lis  la.LinSol
	name string // linear solver kind

	// local blocks
	acc []float64    // per-cell accumulation diagonal
	fc  []float64    // per-cell accumulation rhs
	wc  [][2]float64 // cell-row couplings, by face and side
	wf  [][2]float64 // face-row couplings, by face and side
	aff []float64    // face-row diagonal
	dir []bool       // face row replaced by a Dirichlet constraint

	// right-hand sides (gravity, prescribed fluxes, Dirichlet values)
	rhsC []float64
	rhsF []float64

	// assembled data
	kb    *la.Triplet  // full cell+face system
	am    *la.CCMatrix // compressed form of kb
	sb    *la.Triplet  // cell-only Schur complement
	rv    []float64   // reduced right-hand side workspace
	xc    []float64   // cell solution workspace
	lisOK bool        // linear solver initialised
}

// NewMatrix allocates an operator over the given mesh. lsname selects the
// sparse solver kind ("umfpack" or "mumps")
func NewMatrix(mesh *msh.Mesh, lsname string) *Matrix {
	nc, nf := len(mesh.Cells), len(mesh.Faces)
	o := &Matrix{
		mesh: mesh,
		lis:  la.GetSolver(lsname),
		name: lsname,
		acc:  make([]float64, nc),
		fc:   make([]float64, nc),
		wc:   make([][2]float64, nf),
		wf:   make([][2]float64, nf),
		aff:  make([]float64, nf),
		dir:  make([]bool, nf),
		rhsC: make([]float64, nc),
		rhsF: make([]float64, nf),
		kb:   new(la.Triplet),
		sb:   new(la.Triplet),
		rv:   make([]float64, nc),
		xc:   make([]float64, nc),
	}
	o.kb.Init(nc+nf, nc+nf, nc+8*nf)
	o.sb.Init(nc, nc, nc+4*nf)
	return o
}

// Free releases the linear solver
func (o *Matrix) Free() {
	o.lis.Free()
}

// CreateStiffnessMatrices rebuilds the diffusion couplings from the upwinded
// mobility field (one value per face) and zeroes the accumulation diagonal
func (o *Matrix) CreateStiffnessMatrices(mob []float64) {
	chk.IntAssert(len(mob), len(o.mesh.Faces))
	for i := range o.acc {
		o.acc[i] = 0
	}
	for i, f := range o.mesh.Faces {
		w1 := mob[i] * f.Area / f.D1
		w2 := 0.0
		if f.C2 >= 0 {
			w2 = mob[i] * f.Area / f.D2
		}
		o.wc[i][0], o.wc[i][1] = w1, w2
		o.wf[i][0], o.wf[i][1] = w1, w2
		o.aff[i] = w1 + w2
		if o.aff[i] == 0 { // completely dry face: decouple its unknown
			o.aff[i] = 1.0
		}
		o.dir[i] = false
	}
}

// CreateRhsVectors zeroes the right-hand-side contributions; gravity and
// boundary fluxes are added afterwards by the caller
func (o *Matrix) CreateRhsVectors() {
	la.VecFill(o.rhsC, 0)
	la.VecFill(o.rhsF, 0)
	la.VecFill(o.fc, 0)
}

// AddGravityFluxes adds the buoyancy-driven flux contributions to the
// right-hand sides. g is the gravity magnitude (positive, acting along -z)
// and rho holds one upwinded mass density per face
func (o *Matrix) AddGravityFluxes(g float64, rho []float64) {
	chk.IntAssert(len(rho), len(o.mesh.Faces))
	for i, f := range o.mesh.Faces {
		c1 := o.mesh.Cells[f.C1]
		wg := o.wc[i][0] * rho[i] * g * (c1.Z - f.Z)
		o.rhsC[f.C1] -= wg
		o.rhsF[i] += wg
		if f.C2 >= 0 {
			c2 := o.mesh.Cells[f.C2]
			wg = o.wc[i][1] * rho[i] * g * (c2.Z - f.Z)
			o.rhsC[f.C2] -= wg
			o.rhsF[i] += wg
		}
	}
}

// AccumulateDiagonal adds v to the accumulation diagonal of a cell
func (o *Matrix) AccumulateDiagonal(cell int, v float64) {
	o.acc[cell] += v
}

// AccumulateRhs adds v to the accumulation right-hand side of a cell
func (o *Matrix) AccumulateRhs(cell int, v float64) {
	o.fc[cell] += v
}

// AccCells returns the accumulation diagonal (one value per cell)
func (o *Matrix) AccCells() []float64 { return o.acc }

// FcCells returns the accumulation right-hand side (one value per cell)
func (o *Matrix) FcCells() []float64 { return o.fc }

// ApplyBoundaryConditions modifies the face rows per the given markers and
// values. Dirichlet faces become the constraint pf = value. Neumann and
// untagged boundary faces keep their flux-balance row, with the prescribed
// (or zero) outward flux folded into the face right-hand side; the face
// unknown then settles where the face flux equals the prescribed one, so the
// adjacent cell sees exactly that flux
func (o *Matrix) ApplyBoundaryConditions(markers []bcs.Kind, values []float64) {
	chk.IntAssert(len(markers), len(o.mesh.Faces))
	chk.IntAssert(len(values), len(o.mesh.Faces))
	for i, f := range o.mesh.Faces {
		if f.C2 >= 0 {
			continue
		}
		switch markers[i] {
		case bcs.Dirichlet:
			o.aff[i] = 1.0
			o.wf[i][0], o.wf[i][1] = 0, 0
			o.rhsF[i] = values[i]
			o.dir[i] = true
		default:
			o.rhsF[i] -= values[i] * f.Area
		}
	}
}

// ComputeNegativeResidual adds the diffusion part of the residual, A·u minus
// the assembled right-hand sides, into g. The accumulation block is excluded:
// the kernel adds the true conserved-quantity difference instead of its
// linearization
func (o *Matrix) ComputeNegativeResidual(u, g *state.CompositeVector) {
	uc, uf := u.Values("cell"), u.Values("face")
	gc, gf := g.Values("cell"), g.Values("face")
	chk.IntAssert(len(uc), len(o.mesh.Cells))
	chk.IntAssert(len(uf), len(o.mesh.Faces))
	for c := range gc {
		gc[c] -= o.rhsC[c]
	}
	for i, f := range o.mesh.Faces {
		if o.dir[i] {
			gc[f.C1] += o.wc[i][0] * (uc[f.C1] - uf[i])
			gf[i] += uf[i] - o.rhsF[i]
			continue
		}
		gc[f.C1] += o.wc[i][0] * (uc[f.C1] - uf[i])
		gf[i] += o.aff[i]*uf[i] - o.wf[i][0]*uc[f.C1] - o.rhsF[i]
		if f.C2 >= 0 {
			gc[f.C2] += o.wc[i][1] * (uc[f.C2] - uf[i])
			gf[i] -= o.wf[i][1] * uc[f.C2]
		}
	}
}

// AssembleGlobalMatrices finalizes the full cell+face sparse matrix from the
// local blocks, including the accumulation diagonal
func (o *Matrix) AssembleGlobalMatrices() {
	nc := len(o.mesh.Cells)
	o.kb.Start()
	for c := range o.acc {
		o.kb.Put(c, c, o.acc[c])
	}
	for i, f := range o.mesh.Faces {
		I := nc + i
		o.kb.Put(I, I, o.aff[i])
		o.kb.Put(f.C1, f.C1, o.wc[i][0])
		o.kb.Put(f.C1, I, -o.wc[i][0])
		if o.wf[i][0] != 0 {
			o.kb.Put(I, f.C1, -o.wf[i][0])
		}
		if f.C2 >= 0 {
			o.kb.Put(f.C2, f.C2, o.wc[i][1])
			o.kb.Put(f.C2, I, -o.wc[i][1])
			if o.wf[i][1] != 0 {
				o.kb.Put(I, f.C2, -o.wf[i][1])
			}
		}
	}
	o.am = o.kb.ToMatrix(nil)
}

// ComputeSchurComplement eliminates the face unknowns to produce the
// cell-only system S = Acc + D - Acf inv(Aff) Afc
func (o *Matrix) ComputeSchurComplement() {
	o.sb.Start()
	for c := range o.acc {
		o.sb.Put(c, c, o.acc[c])
	}
	for i, f := range o.mesh.Faces {
		a := o.aff[i]
		o.sb.Put(f.C1, f.C1, o.wc[i][0]-o.wc[i][0]*o.wf[i][0]/a)
		if f.C2 >= 0 {
			o.sb.Put(f.C2, f.C2, o.wc[i][1]-o.wc[i][1]*o.wf[i][1]/a)
			o.sb.Put(f.C1, f.C2, -o.wc[i][0]*o.wf[i][1]/a)
			o.sb.Put(f.C2, f.C1, -o.wc[i][1]*o.wf[i][0]/a)
		}
	}
}

// UpdatePreconditioner refreshes the factorization of the Schur complement
func (o *Matrix) UpdatePreconditioner() (err error) {
	if !o.lisOK {
		err = o.lis.InitR(o.sb, false, false, false)
		if err != nil {
			return chk.Err("linear solver initialisation failed:\n%v", err)
		}
		o.lisOK = true
	}
	err = o.lis.Fact()
	if err != nil {
		return chk.Err("factorization of Schur complement failed:\n%v", err)
	}
	return
}

// ApplyInverse applies the factorized inverse to v: forward-eliminate the
// face entries, solve the cell system, then back-substitute the faces
func (o *Matrix) ApplyInverse(v, pv *state.CompositeVector) (err error) {
	vc, vf := v.Values("cell"), v.Values("face")
	xc, xf := pv.Values("cell"), pv.Values("face")
	chk.IntAssert(len(vc), len(o.mesh.Cells))
	chk.IntAssert(len(vf), len(o.mesh.Faces))

	// reduced right-hand side
	copy(o.rv, vc)
	for i, f := range o.mesh.Faces {
		o.rv[f.C1] += o.wc[i][0] * vf[i] / o.aff[i]
		if f.C2 >= 0 {
			o.rv[f.C2] += o.wc[i][1] * vf[i] / o.aff[i]
		}
	}

	// cell solve
	err = o.lis.SolveR(o.xc, o.rv, false)
	if err != nil {
		return chk.Err("cell system solve failed:\n%v", err)
	}
	copy(xc, o.xc)

	// face back-substitution
	for i, f := range o.mesh.Faces {
		s := vf[i] + o.wf[i][0]*xc[f.C1]
		if f.C2 >= 0 {
			s += o.wf[i][1] * xc[f.C2]
		}
		xf[i] = s / o.aff[i]
	}
	return
}

// Apply computes the action of the assembled full matrix: au = A·u.
// AssembleGlobalMatrices must have been called
func (o *Matrix) Apply(u, au *state.CompositeVector) {
	if o.am == nil {
		chk.Panic("matrix must be assembled before Apply is called")
	}
	nc := len(o.mesh.Cells)
	nf := len(o.mesh.Faces)
	x := make([]float64, nc+nf)
	y := make([]float64, nc+nf)
	copy(x[:nc], u.Values("cell"))
	copy(x[nc:], u.Values("face"))
	la.SpMatVecMul(y, 1, o.am, x)
	copy(au.Values("cell"), y[:nc])
	copy(au.Values("face"), y[nc:])
}

// IsFinite reports whether all local block entries are finite
func (o *Matrix) IsFinite() bool {
	for _, v := range o.acc {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	for i := range o.aff {
		if math.IsNaN(o.aff[i]) || math.IsInf(o.aff[i], 0) {
			return false
		}
	}
	return true
}
