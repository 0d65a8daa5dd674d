// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package master

// tri3: 3-node triangle with one sub-control volume per node. Each scv is
// the quadrilateral bounded by the node, the two adjacent edge midpoints
// and the centroid; the integration point sits at the scv centroid, whose
// barycentric coordinates are (11/18, 7/36, 7/36) relative to the owner.
//
//    s
//    |
//    2
//    | \
//    |   \
//    0----1 --> r
//
func init() {
	const (
		a = 11.0 / 18.0
		b = 7.0 / 36.0
	)
	Register(&lagrange{
		name:     "tri3",
		ndim:     2,
		natVerts: [][]float64{{0, 0}, {1, 0}, {0, 1}},
		ipNat:    [][]float64{{b, b}, {a, b}, {b, a}},
		ipRef:    []float64{1.0 / 6.0, 1.0 / 6.0, 1.0 / 6.0},
		ipMap:    []int{0, 1, 2},
		sfcn: func(S, r []float64) {
			S[0] = 1.0 - r[0] - r[1]
			S[1] = r[0]
			S[2] = r[1]
		},
		dfcn: func(dSdR [][]float64, r []float64) {
			dSdR[0][0], dSdR[0][1] = -1, -1
			dSdR[1][0], dSdR[1][1] = 1, 0
			dSdR[2][0], dSdR[2][1] = 0, 1
		},
	})
}
