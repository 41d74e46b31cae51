// Copyright 2016 The Ats Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_composite01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("composite01. composite vector basics")

	u := NewCompositeVector("cell", 4, "face", 5)
	chk.IntAssert(u.Size("cell"), 4)
	chk.IntAssert(u.Size("face"), 5)

	u.PutScalar(2.5)
	chk.Float64(tst, "cell[3]", 1e-17, u.Values("cell")[3], 2.5)
	chk.Float64(tst, "face[0]", 1e-17, u.Values("face")[0], 2.5)

	v := u.GetCopy()
	v.Values("cell")[0] = -7.0
	chk.Float64(tst, "deep copy", 1e-17, u.Values("cell")[0], 2.5)
	chk.Float64(tst, "norminf  ", 1e-17, v.NormInf(), 7.0)

	u.Set(v)
	chk.Float64(tst, "set      ", 1e-17, u.Values("cell")[0], -7.0)
}

func Test_tree01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tree01. hierarchical solution vector")

	p := NewTreeVector(NewCompositeVector("cell", 3, "face", 4))
	T := NewTreeVector(NewCompositeVector("cell", 3))
	u := NewTreeVector(nil)
	u.PushBack(p)
	u.PushBack(T)
	chk.IntAssert(u.NumSubVectors(), 2)

	u.PutScalar(1.0)
	chk.Float64(tst, "p cell", 1e-17, p.Data().Values("cell")[2], 1.0)
	chk.Float64(tst, "T cell", 1e-17, T.Data().Values("cell")[0], 1.0)

	w := u.GetCopy()
	w.SubVector(0).Data().Values("cell")[0] = 9.0
	chk.Float64(tst, "copy independent", 1e-17, p.Data().Values("cell")[0], 1.0)

	u.Set(w)
	chk.Float64(tst, "set", 1e-17, p.Data().Values("cell")[0], 9.0)
}

// tagEval records evaluation calls and the dependency tag it saw last
type tagEval struct {
	dep     string
	lastTag int
	ncalls  int
}

func (o *tagEval) HasFieldChanged(s *State, requestor string) bool {
	if s.Tag(o.dep) == o.lastTag {
		return false
	}
	o.lastTag = s.Tag(o.dep)
	o.ncalls++
	return true
}

func (o *tagEval) HasFieldDerivativeChanged(s *State, requestor, wrt string) bool {
	return o.HasFieldChanged(s, requestor)
}

func Test_state01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("state01. snapshot, tags and lazy evaluators")

	s := NewState()
	s.SetTime(1.5)
	chk.Float64(tst, "time", 1e-17, s.Time(), 1.5)

	s.RequireField("pressure", "cell", 3, "face", 4)
	s.RequireField("water_content", "cell", 3)

	ev := &tagEval{dep: "pressure", lastTag: -1}
	s.SetFieldEvaluator("water_content", ev)

	// first access evaluates
	if !s.GetFieldEvaluator("water_content").HasFieldChanged(s, "test") {
		tst.Errorf("first access must evaluate\n")
		return
	}

	// repeat without change is lazy
	if s.GetFieldEvaluator("water_content").HasFieldChanged(s, "test") {
		tst.Errorf("unchanged dependency must not re-evaluate\n")
		return
	}

	// marking the dependency dirty triggers re-evaluation
	s.MarkChanged("pressure")
	if !s.GetFieldEvaluator("water_content").HasFieldChanged(s, "test") {
		tst.Errorf("changed dependency must re-evaluate\n")
		return
	}
	chk.IntAssert(ev.ncalls, 2)
}
