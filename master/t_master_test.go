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

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_master01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("master01. partition of unity and ip-node maps")

	for name, me := range factory {
		io.Pfyel("--------------------------------- %-6s---------------------------------\n", name)
		CheckPartitionOfUnity(tst, me, 1e-15, chk.Verbose)
		CheckIpNodeMap(tst, me)
	}
}

func Test_master02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("master02. quad4 weight tables")

	me := Get("quad4")
	chk.IntAssert(me.NumIp(), 4)
	chk.IntAssert(me.Nverts(), 4)
	chk.Ints(tst, "ipNodeMap", me.IpNodeMap(), []int{0, 1, 2, 3})

	// standard: bilinear functions at the quadrant centroids
	shpfc := utl.Alloc(4, 4)
	me.ShapeFcn(shpfc)
	chk.Array(tst, "S @ ip0", 1e-15, shpfc[0], []float64{0.5625, 0.1875, 0.0625, 0.1875})
	chk.Array(tst, "S @ ip2", 1e-15, shpfc[2], []float64{0.0625, 0.1875, 0.5625, 0.1875})

	// shifted: all weight at the owning node
	me.ShiftedShapeFcn(shpfc)
	chk.Deep2(tst, "shifted S", 1e-17, shpfc, [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

func Test_master03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("master03. scv measures")

	// bar2: each half of the segment
	bar2 := Get("bar2")
	vol := make([]float64, 2)
	bar2.ScvVolumes([][]float64{{1}, {4}}, vol)
	chk.Array(tst, "bar2 scv", 1e-15, vol, []float64{1.5, 1.5})

	// tri3: one third of the area each
	tri3 := Get("tri3")
	vol = make([]float64, 3)
	tri3.ScvVolumes([][]float64{{0, 0}, {2, 0}, {0, 2}}, vol)
	chk.Array(tst, "tri3 scv", 1e-15, vol, []float64{2.0 / 3.0, 2.0 / 3.0, 2.0 / 3.0})

	// quad4: quarters of the unit square
	quad4 := Get("quad4")
	vol = make([]float64, 4)
	quad4.ScvVolumes([][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, vol)
	chk.Array(tst, "quad4 scv", 1e-15, vol, []float64{0.25, 0.25, 0.25, 0.25})

	// distorted quad4: the measures must still sum to the total area,
	// since det(dxdR) is linear within each quadrant
	quad4.ScvVolumes([][]float64{{0, 0}, {2, 0}, {2, 2}, {0, 1}}, vol)
	sum := vol[0] + vol[1] + vol[2] + vol[3]
	io.Pforan("distorted quad4 scv = %v\n", vol)
	chk.Float64(tst, "sum(scv) == area", 1e-14, sum, 3.0)

	// hex8: eighths of the unit cube
	hex8 := Get("hex8")
	vol = make([]float64, 8)
	hex8.ScvVolumes([][]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}, vol)
	for p := 0; p < 8; p++ {
		chk.Float64(tst, io.Sf("hex8 scv[%d]", p), 1e-15, vol[p], 0.125)
	}
}

func Test_master04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("master04. registry")

	if Get("tet99") != nil {
		tst.Errorf("Get must return nil for unknown topologies\n")
	}
	for _, name := range []string{"bar2", "tri3", "quad4", "hex8"} {
		if Get(name) == nil {
			tst.Errorf("cannot get master element %q\n", name)
		}
	}
}
