// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

// TreeVector is the hierarchical solution vector of a coupled system: a tree
// whose leaves are composite vectors, one sub-tree per equation. The tree
// shape is fixed once built and mirrors the equation set being solved.
type TreeVector struct {
	data *CompositeVector
	subs []*TreeVector
}

// NewTreeVector creates a leaf tree vector wrapping data (may be nil for a
// pure branch node)
func NewTreeVector(data *CompositeVector) *TreeVector {
	return &TreeVector{data: data}
}

// Data returns this node's composite vector
func (o *TreeVector) Data() *CompositeVector {
	return o.data
}

// PushBack appends a sub-vector
func (o *TreeVector) PushBack(sub *TreeVector) {
	o.subs = append(o.subs, sub)
}

// SubVector returns the i-th sub-vector
func (o *TreeVector) SubVector(i int) *TreeVector {
	return o.subs[i]
}

// NumSubVectors returns the number of sub-vectors
func (o *TreeVector) NumSubVectors() int {
	return len(o.subs)
}

// PutScalar sets all entries of the whole tree to value
func (o *TreeVector) PutScalar(value float64) {
	if o.data != nil {
		o.data.PutScalar(value)
	}
	for _, s := range o.subs {
		s.PutScalar(value)
	}
}

// Set copies values from another tree with identical shape
func (o *TreeVector) Set(other *TreeVector) {
	if o.data != nil {
		o.data.Set(other.data)
	}
	for i, s := range o.subs {
		s.Set(other.subs[i])
	}
}

// Axpy adds α·x into the whole tree (identical shapes)
func (o *TreeVector) Axpy(α float64, x *TreeVector) {
	if o.data != nil {
		o.data.Axpy(α, x.data)
	}
	for i, s := range o.subs {
		s.Axpy(α, x.subs[i])
	}
}

// GetCopy returns a deep copy preserving the tree shape
func (o *TreeVector) GetCopy() *TreeVector {
	c := new(TreeVector)
	if o.data != nil {
		c.data = o.data.GetCopy()
	}
	for _, s := range o.subs {
		c.subs = append(c.subs, s.GetCopy())
	}
	return c
}
