// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements nodal field storage and mesh metadata
package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// StateIndex identifies one stored time level of a nodal field
type StateIndex int

// time levels. StateNp1 is the level being solved for
const (
	StateNp1 StateIndex = iota // current
	StateN                     // previous
	StateNm1                   // second-previous
)

// Field is a named nodal quantity with up to three stored time states
type Field struct {
	Name    string // e.g. "velocity"
	Ncomp   int    // number of components per node; 1 for scalars
	Nstates int    // number of stored time states; 1, 2 or 3
	states  []*FieldState
}

// FieldState is the handle to one time level of a field. Kernels resolve
// handles once at construction and only read Data afterwards.
type FieldState struct {
	Fld   *Field
	State StateIndex
	Data  [][]float64 // [nverts][ncomp] nodal values
}

// MetaData holds the registry of nodal fields of a mesh
type MetaData struct {
	Nverts int
	Ndim   int
	fields map[string]*Field
}

// NewMetaData returns new metadata for a mesh with nverts vertices
func NewMetaData(nverts, ndim int) *MetaData {
	return &MetaData{Nverts: nverts, Ndim: ndim, fields: make(map[string]*Field)}
}

// RegisterField registers a nodal field with ncomp components per node and
// nstates stored time states
func (o *MetaData) RegisterField(name string, ncomp, nstates int) *Field {
	if _, ok := o.fields[name]; ok {
		chk.Panic("field %q is registered already", name)
	}
	if nstates < 1 || nstates > 3 {
		chk.Panic("field %q must have 1, 2 or 3 stored states. nstates=%d is invalid", name, nstates)
	}
	fld := &Field{Name: name, Ncomp: ncomp, Nstates: nstates}
	fld.states = make([]*FieldState, nstates)
	for i := 0; i < nstates; i++ {
		fld.states[i] = &FieldState{Fld: fld, State: StateIndex(i), Data: utl.Alloc(o.Nverts, ncomp)}
	}
	o.fields[name] = fld
	return fld
}

// GetField returns a registered field or nil if the name is unknown
func (o *MetaData) GetField(name string) *Field {
	return o.fields[name]
}

// FieldOfState returns the handle to one stored time level. Asking for a
// level that is not stored is a bug in the caller: fields with two states
// must be aliased by the caller (StateNm1 => StateN).
func (o *Field) FieldOfState(s StateIndex) *FieldState {
	if int(s) >= o.Nstates {
		chk.Panic("field %q has only %d stored states. cannot get state %d", o.Name, o.Nstates, s)
	}
	return o.states[s]
}
