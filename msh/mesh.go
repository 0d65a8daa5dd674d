// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

// Cell is one element of the mesh
type Cell struct {
	Id    int    // cell id
	Topo  string // master element name; e.g. "quad4"
	Verts []int  // connectivity: mesh-local vertex ids
}

// Mesh is an unstructured mesh: vertex coordinates plus cells
type Mesh struct {
	Ndim  int
	Verts [][]float64 // [nverts][ndim]
	Cells []*Cell
}

// NewMesh returns a mesh given vertex coordinates
func NewMesh(ndim int, verts [][]float64) *Mesh {
	return &Mesh{Ndim: ndim, Verts: verts}
}

// AddCell appends a cell with the given topology and connectivity
func (o *Mesh) AddCell(topo string, verts []int) *Cell {
	c := &Cell{Id: len(o.Cells), Topo: topo, Verts: verts}
	o.Cells = append(o.Cells, c)
	return c
}
