// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/dcmania/Nalu/kernel"
	"github.com/dcmania/Nalu/msh"
	"github.com/dcmania/Nalu/tint"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// twoQuadDomain builds a 2x1 quad4 mesh of unit squares:
//
//   3-----4-----5
//   | (0) | (1) |
//   0-----1-----2
//
func twoQuadDomain(tst *testing.T) *Domain {
	m := msh.NewMesh(2, [][]float64{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}})
	m.AddCell("quad4", []int{0, 1, 4, 3})
	m.AddCell("quad4", []int{1, 2, 5, 4})

	meta := msh.NewMetaData(6, 2)
	meta.RegisterField("velocity", 2, 2)
	meta.RegisterField("density", 1, 2)
	meta.RegisterField("dpdx", 2, 1)
	meta.RegisterField("coordinates", 2, 1)

	d := NewDomain(m, meta, kernel.NewSolutionOptions())
	if _, err := d.AddKernel("quad4", "momentum-mass"); err != nil {
		tst.Errorf("cannot add kernel: %v\n", err)
		return nil
	}
	if err := d.SetCoordinates(); err != nil {
		tst.Errorf("cannot set coordinates: %v\n", err)
		return nil
	}
	return d
}

// setUniform fills one state of a field with the same values at all nodes
func setUniform(meta *msh.MetaData, name string, s msh.StateIndex, vals []float64) {
	d := meta.GetField(name).FieldOfState(s).Data
	for v := range d {
		copy(d[v], vals)
	}
}

func Test_fem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem01. accumulation at shared nodes")

	d := twoQuadDomain(tst)
	if d == nil {
		return
	}
	setUniform(d.Meta, "density", msh.StateNp1, []float64{2.0})
	setUniform(d.Meta, "velocity", msh.StateNp1, []float64{3.0, -1.0})

	ti, _ := tint.NewCustom(1.0, 1, 0, 0)
	d.Setup(ti)
	if err := d.Assemble(1); err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}

	// each element contributes -(rho*u_j)*0.25 per node; the interior
	// nodes 1 and 4 receive two contributions
	scv := map[int]float64{0: 0.25, 1: 0.5, 2: 0.25, 3: 0.25, 4: 0.5, 5: 0.25}
	for n := 0; n < 6; n++ {
		chk.Float64(tst, io.Sf("Fb[%d,x]", n), 1e-14, d.Fb[n*2], -2.0*3.0*scv[n])
		chk.Float64(tst, io.Sf("Fb[%d,y]", n), 1e-14, d.Fb[n*2+1], 2.0*1.0*scv[n])
	}

	// Jacobian rows sum to gamma1*rho*scv/dt; off-dimension entries vanish
	K := d.Kb.ToDense()
	for i := 0; i < d.Neq; i++ {
		sum := 0.0
		for j := 0; j < d.Neq; j++ {
			if i%2 != j%2 && K.Get(i, j) != 0 {
				tst.Errorf("K[%d][%d]=%v must be exactly zero\n", i, j, K.Get(i, j))
			}
			sum += K.Get(i, j)
		}
		chk.Float64(tst, io.Sf("sum(K[%d])", i), 1e-14, sum, 2.0*scv[i/2])
	}
}

func Test_fem02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem02. parallel assembly matches serial assembly")

	d := twoQuadDomain(tst)
	if d == nil {
		return
	}
	setUniform(d.Meta, "density", msh.StateNp1, []float64{1.1})
	setUniform(d.Meta, "density", msh.StateN, []float64{1.2})
	setUniform(d.Meta, "velocity", msh.StateNp1, []float64{3.0, -1.0})
	setUniform(d.Meta, "velocity", msh.StateN, []float64{2.0, -0.5})
	setUniform(d.Meta, "dpdx", msh.StateNp1, []float64{0.1, -0.2})

	ti, _ := tint.New(0.5, false)
	d.Setup(ti)

	if err := d.Assemble(1); err != nil {
		tst.Errorf("serial assembly failed: %v\n", err)
		return
	}
	fbSerial := make([]float64, d.Neq)
	copy(fbSerial, d.Fb)
	kSerial := d.Kb.ToDense()

	if err := d.Assemble(3); err != nil {
		tst.Errorf("parallel assembly failed: %v\n", err)
		return
	}
	chk.Array(tst, "Fb", 1e-15, d.Fb, fbSerial)
	K := d.Kb.ToDense()
	for i := 0; i < d.Neq; i++ {
		for j := 0; j < d.Neq; j++ {
			chk.Float64(tst, io.Sf("K[%d][%d]", i, j), 1e-15, K.Get(i, j), kSerial.Get(i, j))
		}
	}
}

func Test_fem03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem03. backward-Euler recovers a uniform velocity")

	d := twoQuadDomain(tst)
	if d == nil {
		return
	}
	u0 := []float64{2.5, -1.5}
	setUniform(d.Meta, "density", msh.StateNp1, []float64{1.0})
	setUniform(d.Meta, "density", msh.StateN, []float64{1.0})
	setUniform(d.Meta, "velocity", msh.StateN, []float64{u0[0], u0[1]})
	// velocity guess at n+1 is zero; dpdx is zero

	ti, err := tint.New(0.5, false)
	if err != nil {
		tst.Errorf("cannot create time integrator: %v\n", err)
		return
	}
	d.Setup(ti)
	if err := d.Assemble(2); err != nil {
		tst.Errorf("assembly failed: %v\n", err)
		return
	}

	// with only the mass term, the Newton update restores u = u0 exactly
	x, err := d.SolveDense()
	if err != nil {
		tst.Errorf("solve failed: %v\n", err)
		return
	}
	for n := 0; n < 6; n++ {
		chk.Float64(tst, io.Sf("x[%d,x]", n), 1e-13, x[n*2], u0[0])
		chk.Float64(tst, io.Sf("x[%d,y]", n), 1e-13, x[n*2+1], u0[1])
	}
}
