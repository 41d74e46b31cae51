// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh holds the minimal cell/face mesh view consumed by the flow
// kernel and the discrete operator. Partitioning is decided elsewhere; each
// worker receives its local cells and faces already carved out.
package msh

import (
	"github.com/cpmech/gosl/chk"
)

// Cell holds one control volume
type Cell struct {
	Id    int     // cell id
	Vol   float64 // volume
	Z     float64 // centroid elevation
	Faces []int   // ids of bounding faces
}

// Face holds one cell interface. Boundary faces have C2 < 0 and a nonzero
// tag for boundary-condition lookup.
type Face struct {
	Id   int     // face id
	Area float64 // area
	D1   float64 // distance from the centroid of C1 to the face
	D2   float64 // distance from the centroid of C2 to the face; 0 at the boundary
	C1   int     // first adjacent cell
	C2   int     // second adjacent cell; -1 at the boundary
	Z    float64 // face centroid elevation
	Tag  int     // boundary tag; 0 for interior faces
}

// Mesh is the local (per-worker) mesh partition
type Mesh struct {
	Cells []*Cell
	Faces []*Face
}

// NumCells returns the number of local cells
func (o *Mesh) NumCells() int { return len(o.Cells) }

// NumFaces returns the number of local faces
func (o *Mesh) NumFaces() int { return len(o.Faces) }

// Boundary tags assigned by the column generator
const (
	TagTop    = -10
	TagBottom = -11
)

// Column1D builds a vertical column of nc cells with spacing dz and
// cross-sectional area; cell 0 sits at the top. Elevation decreases
// downwards so that gravity drives flow towards increasing cell ids.
func Column1D(nc int, dz, area float64) *Mesh {
	if nc < 1 {
		chk.Panic("Column1D needs at least one cell; nc=%d is invalid", nc)
	}
	o := new(Mesh)
	o.Cells = make([]*Cell, nc)
	o.Faces = make([]*Face, nc+1)
	ztop := float64(nc) * dz
	for i := 0; i < nc; i++ {
		zc := ztop - (float64(i)+0.5)*dz
		o.Cells[i] = &Cell{
			Id:    i,
			Vol:   area * dz,
			Z:     zc,
			Faces: []int{i, i + 1},
		}
	}
	for f := 0; f <= nc; f++ {
		zf := ztop - float64(f)*dz
		face := &Face{Id: f, Area: area, Z: zf}
		switch f {
		case 0:
			face.C1, face.C2 = 0, -1
			face.D1 = dz / 2.0
			face.Tag = TagTop
		case nc:
			face.C1, face.C2 = nc-1, -1
			face.D1 = dz / 2.0
			face.Tag = TagBottom
		default:
			face.C1, face.C2 = f-1, f
			face.D1 = dz / 2.0
			face.D2 = dz / 2.0
		}
		o.Faces[f] = face
	}
	return o
}

// OtherCell returns the cell adjacent to f across from cell c (-1 at the
// boundary)
func (o *Mesh) OtherCell(f *Face, c int) int {
	if f.C1 == c {
		return f.C2
	}
	return f.C1
}

// DeltaZ returns the elevation drop seen from cell c across face f:
// z(c) - z(other side)
func (o *Mesh) DeltaZ(f *Face, c int) float64 {
	other := o.OtherCell(f, c)
	if other < 0 {
		return o.Cells[c].Z - f.Z
	}
	return o.Cells[c].Z - o.Cells[other].Z
}
