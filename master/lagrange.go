// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package master

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// lagrange implements a Lagrangian master element defined by the nodal
// natural coordinates, the scv integration point locations with their
// reference measures and owning nodes, and shape function callbacks
type lagrange struct {
	name     string
	ndim     int
	natVerts [][]float64 // [nverts][ndim] nodal natural coordinates
	ipNat    [][]float64 // [nip][ndim] scv centroid natural coordinates
	ipRef    []float64   // [nip] reference scv measures
	ipMap    []int       // [nip] owning node of each integration point
	sfcn     func(S []float64, r []float64)      // shape functions @ natural coords
	dfcn     func(dSdR [][]float64, r []float64) // derivatives w.r.t natural coords
}

// Name returns the topology name
func (o *lagrange) Name() string { return o.name }

// Ndim returns the space dimension
func (o *lagrange) Ndim() int { return o.ndim }

// Nverts returns the number of nodes per element
func (o *lagrange) Nverts() int { return len(o.natVerts) }

// NumIp returns the number of scv integration points
func (o *lagrange) NumIp() int { return len(o.ipNat) }

// IpNodeMap returns the owning node of each integration point
func (o *lagrange) IpNodeMap() []int { return o.ipMap }

// ShapeFcn fills the standard interpolation weight table: shape functions
// evaluated at the scv centroids
func (o *lagrange) ShapeFcn(shpfc [][]float64) {
	for p, r := range o.ipNat {
		o.sfcn(shpfc[p], r)
	}
}

// ShiftedShapeFcn fills the lumped weight table: shape functions evaluated
// at the owning node itself, concentrating the interpolation weight while
// keeping each row summing to one
func (o *lagrange) ShiftedShapeFcn(shpfc [][]float64) {
	for p := range o.ipNat {
		o.sfcn(shpfc[p], o.natVerts[o.ipMap[p]])
	}
}

// ScvVolumes computes the measure of each sub-control volume with a
// one-point quadrature of the isoparametric Jacobian at the scv centroid.
// Safe for concurrent use; all scratch is local.
func (o *lagrange) ScvVolumes(x [][]float64, vol []float64) {
	nverts := len(o.natVerts)
	dSdR := utl.Alloc(nverts, o.ndim)
	dxdR := utl.Alloc(o.ndim, o.ndim)
	for p, r := range o.ipNat {
		o.dfcn(dSdR, r)
		for i := 0; i < o.ndim; i++ {
			for j := 0; j < o.ndim; j++ {
				dxdR[i][j] = 0
				for m := 0; m < nverts; m++ {
					dxdR[i][j] += x[m][i] * dSdR[m][j]
				}
			}
		}
		det := detSmall(dxdR, o.ndim)
		if det < MINDET {
			chk.Panic("%s: cannot compute scv measures: det(dxdR)=%g is too small or negative", o.name, det)
		}
		vol[p] = det * o.ipRef[p]
	}
}

// detSmall computes the determinant of the (ndim x ndim) matrix a, ndim ≤ 3
func detSmall(a [][]float64, ndim int) float64 {
	switch ndim {
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}
