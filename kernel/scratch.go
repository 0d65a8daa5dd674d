// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/dcmania/Nalu/master"
	"github.com/dcmania/Nalu/msh"
)

// GatheredField declares one per-element gathered nodal field
type GatheredField struct {
	FState *msh.FieldState
	Ncomp  int
}

// ElemDataRequests is the declarative list of data the kernels of one
// topology need per element: the master element, the gathered nodal fields
// and the master-element computed quantities. Kernel constructors append
// to it; the driver consumes it to size scratch buffers before any kernel
// executes.
type ElemDataRequests struct {
	Me         master.MasterElement
	Fields     []GatheredField
	ScvVolumes bool
}

// AddMasterElement declares the master element
func (o *ElemDataRequests) AddMasterElement(me master.MasterElement) {
	if o.Me != nil && o.Me != me {
		chk.Panic("cannot mix master elements %q and %q in one set of requirements", o.Me.Name(), me.Name())
	}
	o.Me = me
}

// AddGatheredField declares a nodal field state to be gathered per
// element. Duplicates are ignored, so aliased two-state fields end up
// gathered once.
func (o *ElemDataRequests) AddGatheredField(fs *msh.FieldState, ncomp int) {
	if fs.Fld.Ncomp != ncomp {
		chk.Panic("field %q has %d components but %d were requested", fs.Fld.Name, fs.Fld.Ncomp, ncomp)
	}
	for _, g := range o.Fields {
		if g.FState == fs {
			return
		}
	}
	o.Fields = append(o.Fields, GatheredField{fs, ncomp})
}

// AddScvVolumes declares the per-point sub-control-volume measures
func (o *ElemDataRequests) AddScvVolumes() { o.ScvVolumes = true }

// ScratchViews holds the gathered per-element data of one worker. Each
// concurrent worker owns its views; kernels only read from them.
type ScratchViews struct {
	reqs   *ElemDataRequests
	views  map[*msh.FieldState][][]float64 // [nverts][ncomp] per declared field
	ScvVol []float64                       // [nip] sub-control-volume measures
}

// NewScratchViews allocates scratch buffers per the declared requirements
func NewScratchViews(reqs *ElemDataRequests) *ScratchViews {
	if reqs.Me == nil {
		chk.Panic("cannot allocate scratch views without a master element requirement")
	}
	nverts := reqs.Me.Nverts()
	o := &ScratchViews{
		reqs:  reqs,
		views: make(map[*msh.FieldState][][]float64),
	}
	for _, g := range reqs.Fields {
		o.views[g.FState] = utl.Alloc(nverts, g.Ncomp)
	}
	if reqs.ScvVolumes {
		o.ScvVol = make([]float64, reqs.Me.NumIp())
	}
	return o
}

// View returns the gathered nodal values [nverts][ncomp] of a field state
func (o *ScratchViews) View(fs *msh.FieldState) [][]float64 {
	v, ok := o.views[fs]
	if !ok {
		chk.Panic("field %q (state %d) was not declared in the element data requirements", fs.Fld.Name, fs.State)
	}
	return v
}

// Gather copies the nodal values of all declared fields for one cell
func (o *ScratchViews) Gather(cell *msh.Cell) {
	nverts := o.reqs.Me.Nverts()
	if len(cell.Verts) != nverts {
		chk.Panic("cell %d has %d vertices but master element %q needs %d", cell.Id, len(cell.Verts), o.reqs.Me.Name(), nverts)
	}
	for _, g := range o.Fields() {
		dst := o.views[g.FState]
		for m, v := range cell.Verts {
			for j := 0; j < g.Ncomp; j++ {
				dst[m][j] = g.FState.Data[v][j]
			}
		}
	}
}

// Fields returns the declared gathered fields
func (o *ScratchViews) Fields() []GatheredField { return o.reqs.Fields }

// ComputeMeVolumes computes the sub-control-volume measures from the
// gathered coordinates
func (o *ScratchViews) ComputeMeVolumes(coords *msh.FieldState) {
	if o.ScvVol == nil {
		chk.Panic("scv volumes were not declared in the element data requirements")
	}
	o.reqs.Me.ScvVolumes(o.View(coords), o.ScvVol)
}
