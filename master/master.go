// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package master implements CVFEM master elements: sub-control-volume
// integration point data and shape function tables per element topology
package master

import (
	"github.com/cpmech/gosl/chk"
)

// MasterElement provides the per-topology data needed by CVFEM volume
// kernels: integration points, their owning nodes, interpolation weight
// tables and sub-control-volume measures
type MasterElement interface {
	Name() string                            // topology name; e.g. "quad4"
	Ndim() int                               // space dimension
	Nverts() int                             // nodes per element
	NumIp() int                              // number of scv integration points
	IpNodeMap() []int                        // [nip] owning node of each integration point
	ShapeFcn(shpfc [][]float64)              // fills [nip][nverts] standard interpolation weights
	ShiftedShapeFcn(shpfc [][]float64)       // fills [nip][nverts] lumped weights
	ScvVolumes(x [][]float64, vol []float64) // fills [nip] scv measures given nodal coordinates x=[nverts][ndim]
}

// factory holds all MasterElements available
var factory = make(map[string]MasterElement)

// Register registers a new master element
func Register(me MasterElement) {
	if _, ok := factory[me.Name()]; ok {
		chk.Panic("cannot register master element %q because it exists already", me.Name())
	}
	factory[me.Name()] = me
}

// Get returns an existent master element
//  Note: returns nil if the topology is not available
func Get(name string) MasterElement {
	return factory[name]
}
