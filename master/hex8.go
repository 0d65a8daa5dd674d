// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package master

// hex8: 8-node hexahedron with one sub-control volume per node (the octant
// of the reference cube next to it); integration points at the octant
// centroids
func init() {
	natVerts := [][]float64{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	ipNat := make([][]float64, 8)
	ipMap := make([]int, 8)
	ipRef := make([]float64, 8)
	for m, v := range natVerts {
		ipNat[m] = []float64{0.5 * v[0], 0.5 * v[1], 0.5 * v[2]}
		ipMap[m] = m
		ipRef[m] = 1
	}
	Register(&lagrange{
		name:     "hex8",
		ndim:     3,
		natVerts: natVerts,
		ipNat:    ipNat,
		ipRef:    ipRef,
		ipMap:    ipMap,
		sfcn: func(S, r []float64) {
			for m, v := range natVerts {
				S[m] = 0.125 * (1.0 + v[0]*r[0]) * (1.0 + v[1]*r[1]) * (1.0 + v[2]*r[2])
			}
		},
		dfcn: func(dSdR [][]float64, r []float64) {
			for m, v := range natVerts {
				dSdR[m][0] = 0.125 * v[0] * (1.0 + v[1]*r[1]) * (1.0 + v[2]*r[2])
				dSdR[m][1] = 0.125 * v[1] * (1.0 + v[0]*r[0]) * (1.0 + v[2]*r[2])
				dSdR[m][2] = 0.125 * v[2] * (1.0 + v[0]*r[0]) * (1.0 + v[1]*r[1])
			}
		},
	})
}
