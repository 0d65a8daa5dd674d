// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package master

// quad4: 4-node quadrilateral with one sub-control volume per node (the
// quadrant of the reference square next to it); integration points at the
// quadrant centroids
//
//   3-----------2
//   |  .  |  .  |
//   |-----+-----|    s
//   |  .  |  .  |    |
//   0-----------1    +--r
//
func init() {
	Register(&lagrange{
		name:     "quad4",
		ndim:     2,
		natVerts: [][]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}},
		ipNat:    [][]float64{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}},
		ipRef:    []float64{1, 1, 1, 1},
		ipMap:    []int{0, 1, 2, 3},
		sfcn: func(S, r []float64) {
			S[0] = 0.25 * (1.0 - r[0]) * (1.0 - r[1])
			S[1] = 0.25 * (1.0 + r[0]) * (1.0 - r[1])
			S[2] = 0.25 * (1.0 + r[0]) * (1.0 + r[1])
			S[3] = 0.25 * (1.0 - r[0]) * (1.0 + r[1])
		},
		dfcn: func(dSdR [][]float64, r []float64) {
			dSdR[0][0], dSdR[0][1] = -0.25*(1.0-r[1]), -0.25*(1.0-r[0])
			dSdR[1][0], dSdR[1][1] = 0.25*(1.0-r[1]), -0.25*(1.0+r[0])
			dSdR[2][0], dSdR[2][1] = 0.25*(1.0+r[1]), 0.25*(1.0+r[0])
			dSdR[3][0], dSdR[3][1] = -0.25*(1.0+r[1]), 0.25*(1.0-r[0])
		},
	})
}
