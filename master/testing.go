// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package master

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// CheckPartitionOfUnity checks that each row of the standard and shifted
// shape function tables sums to one
func CheckPartitionOfUnity(tst *testing.T, me MasterElement, tol float64, verb bool) {
	shpfc := utl.Alloc(me.NumIp(), me.Nverts())
	for _, shifted := range []bool{false, true} {
		if shifted {
			me.ShiftedShapeFcn(shpfc)
		} else {
			me.ShapeFcn(shpfc)
		}
		for p := 0; p < me.NumIp(); p++ {
			sum := 0.0
			for m := 0; m < me.Nverts(); m++ {
				sum += shpfc[p][m]
			}
			if verb {
				io.Pf("%s: shifted=%v ip=%d sum(S)=%v\n", me.Name(), shifted, p, sum)
			}
			chk.Float64(tst, io.Sf("%s shifted=%v sum(S) @ ip %d", me.Name(), shifted, p), tol, sum, 1.0)
		}
	}
}

// CheckIpNodeMap checks basic consistency of the nearest-node map
func CheckIpNodeMap(tst *testing.T, me MasterElement) {
	nmap := me.IpNodeMap()
	chk.IntAssert(len(nmap), me.NumIp())
	for p, n := range nmap {
		if n < 0 || n >= me.Nverts() {
			tst.Errorf("%s: ipNodeMap[%d]=%d is out of range\n", me.Name(), p, n)
		}
	}
}
