// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kernel implements element-local terms of the transport
// equations. Each kernel accumulates one physical term into the element
// residual vector and Jacobian block; the outer assembly driver runs all
// kernels of a topology over each element and scatters the results.
package kernel

import (
	"github.com/cpmech/gosl/chk"

	"github.com/dcmania/Nalu/master"
	"github.com/dcmania/Nalu/msh"
	"github.com/dcmania/Nalu/tint"
)

// Kernel defines what all element-local terms must implement. The driver
// calls Setup once per time step, then Execute once per element with
// caller-owned buffers. Execute must only accumulate: buffers are zeroed
// once per element across all kernels of a pass.
type Kernel interface {
	Setup(ti *tint.TimeIntegrator)
	Execute(rhs []float64, lhs [][]float64, elem int, sv *ScratchViews)
}

// SolutionOptions holds global discretization choices shared by kernels
type SolutionOptions struct {
	CoordinatesName string // name of the coordinates field; e.g. "current_coordinates" for moving meshes
	LumpedMass      bool   // use the shifted shape functions for mass terms
}

// NewSolutionOptions returns options with defaults
func NewSolutionOptions() *SolutionOptions {
	return &SolutionOptions{CoordinatesName: "coordinates"}
}

// AllocatorType defines a function that allocates a kernel
type AllocatorType func(meta *msh.MetaData, opts *SolutionOptions, reqs *ElemDataRequests, me master.MasterElement) (Kernel, error)

// SetAllocator sets a new callback function to allocate a kernel
func SetAllocator(name string, fcn AllocatorType) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot set allocator for kernel %q because it exists already", name)
	}
	allocators[name] = fcn
}

// New returns a new kernel from the factory
func New(name string, meta *msh.MetaData, opts *SolutionOptions, reqs *ElemDataRequests, me master.MasterElement) (Kernel, error) {
	fcn, ok := allocators[name]
	if !ok {
		return nil, chk.Err("cannot get allocator for kernel %q", name)
	}
	return fcn(meta, opts, reqs, me)
}

// allocators holds all kernel allocators
var allocators = make(map[string]AllocatorType)
