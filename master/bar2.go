// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package master

// bar2: 2-node line element with one sub-control volume per node
//
//   0------+------1   --> r
//     scv0 | scv1
//
func init() {
	Register(&lagrange{
		name:     "bar2",
		ndim:     1,
		natVerts: [][]float64{{-1}, {1}},
		ipNat:    [][]float64{{-0.5}, {0.5}},
		ipRef:    []float64{1, 1},
		ipMap:    []int{0, 1},
		sfcn: func(S, r []float64) {
			S[0] = 0.5 * (1.0 - r[0])
			S[1] = 0.5 * (1.0 + r[0])
		},
		dfcn: func(dSdR [][]float64, r []float64) {
			dSdR[0][0] = -0.5
			dSdR[1][0] = 0.5
		},
	})
}
