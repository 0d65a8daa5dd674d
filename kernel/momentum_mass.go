// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/dcmania/Nalu/master"
	"github.com/dcmania/Nalu/msh"
	"github.com/dcmania/Nalu/tint"
)

// MomentumMass implements the unsteady inertial term of the momentum
// equations under the CVFEM discretization. For each sub-control-volume
// integration point p owned by node n, the residual rows (n,j) receive
//
//   -(γ1 ρⁿ⁺¹ uⁿ⁺¹ⱼ + γ2 ρⁿ uⁿⱼ + γ3 ρⁿ⁻¹ uⁿ⁻¹ⱼ) scV/Δt - Gⱼp scV
//
// and the Jacobian rows (n,j) receive the derivative with respect to the
// current velocity at each node c: N(p,c) γ1 ρⁿ⁺¹ scV/Δt. Density is
// interpolated but not linearized (semi-implicit treatment). The Jacobian
// block is therefore diagonal in the dimension index.
type MomentumMass struct {

	// topology data (immutable after construction)
	ndim      int
	nverts    int
	nip       int
	ipNodeMap []int
	shapeFcn  [][]float64 // [nip][nverts] interpolation weights
	lumped    bool

	// field handles; Nm1 handles may alias the N ones
	velNp1, velN, velNm1 *msh.FieldState
	rhoNp1, rhoN, rhoNm1 *msh.FieldState
	gjp                  *msh.FieldState
	coords               *msh.FieldState

	// time integration coefficients (set per time step)
	dt                     float64
	gamma1, gamma2, gamma3 float64
}

// register kernel
func init() {
	SetAllocator("momentum-mass", func(meta *msh.MetaData, opts *SolutionOptions, reqs *ElemDataRequests, me master.MasterElement) (Kernel, error) {
		return NewMomentumMass(meta, opts, reqs, me, opts.LumpedMass)
	})
}

// NewMomentumMass resolves the field handles, precomputes the shape
// function table in the selected mode and declares the element data
// requirements. Called once per topology, not per element.
func NewMomentumMass(meta *msh.MetaData, opts *SolutionOptions, reqs *ElemDataRequests, me master.MasterElement, lumped bool) (o *MomentumMass, err error) {

	// resolve fields
	velocity := meta.GetField("velocity")
	if velocity == nil {
		return nil, chk.Err("cannot find %q field in mesh metadata", "velocity")
	}
	density := meta.GetField("density")
	if density == nil {
		return nil, chk.Err("cannot find %q field in mesh metadata", "density")
	}
	gjp := meta.GetField("dpdx")
	if gjp == nil {
		return nil, chk.Err("cannot find %q field in mesh metadata", "dpdx")
	}
	coords := meta.GetField(opts.CoordinatesName)
	if coords == nil {
		return nil, chk.Err("cannot find coordinates field %q in mesh metadata", opts.CoordinatesName)
	}

	o = &MomentumMass{
		ndim:      me.Ndim(),
		nverts:    me.Nverts(),
		nip:       me.NumIp(),
		ipNodeMap: me.IpNodeMap(),
		lumped:    lumped,
		gjp:       gjp.FieldOfState(msh.StateNp1),
		coords:    coords.FieldOfState(msh.StateNp1),
	}

	// fields with two stored states alias the second-previous level to
	// the previous one; this changes the effective order of the scheme
	// and must hold in every computation below
	o.velNp1 = velocity.FieldOfState(msh.StateNp1)
	o.velN = velocity.FieldOfState(msh.StateN)
	if velocity.Nstates == 2 {
		o.velNm1 = o.velN
	} else {
		o.velNm1 = velocity.FieldOfState(msh.StateNm1)
	}
	o.rhoNp1 = density.FieldOfState(msh.StateNp1)
	o.rhoN = density.FieldOfState(msh.StateN)
	if density.Nstates == 2 {
		o.rhoNm1 = o.rhoN
	} else {
		o.rhoNm1 = density.FieldOfState(msh.StateNm1)
	}

	// compute shape function table
	o.shapeFcn = utl.Alloc(o.nip, o.nverts)
	if lumped {
		me.ShiftedShapeFcn(o.shapeFcn)
	} else {
		me.ShapeFcn(o.shapeFcn)
	}

	// declare element data requirements
	reqs.AddMasterElement(me)
	reqs.AddGatheredField(o.coords, o.ndim)
	reqs.AddGatheredField(o.rhoNm1, 1)
	reqs.AddGatheredField(o.rhoN, 1)
	reqs.AddGatheredField(o.rhoNp1, 1)
	reqs.AddGatheredField(o.velNm1, o.ndim)
	reqs.AddGatheredField(o.velN, o.ndim)
	reqs.AddGatheredField(o.velNp1, o.ndim)
	reqs.AddGatheredField(o.gjp, o.ndim)
	reqs.AddScvVolumes()
	return
}

// Setup copies the step size and blending coefficients; must be called
// once per time step, before any Execute call
func (o *MomentumMass) Setup(ti *tint.TimeIntegrator) {
	o.dt = ti.TimeStep()
	o.gamma1 = ti.Gamma1()
	o.gamma2 = ti.Gamma2()
	o.gamma3 = ti.Gamma3() // gamma3 may be zero
}

// Execute accumulates this element's contribution into rhs and lhs. The
// interpolation scratch is stack-local, so concurrent calls on the same
// instance are safe.
func (o *MomentumMass) Execute(rhs []float64, lhs [][]float64, elem int, sv *ScratchViews) {

	vRhoNm1 := sv.View(o.rhoNm1)
	vRhoN := sv.View(o.rhoN)
	vRhoNp1 := sv.View(o.rhoNp1)
	vUNm1 := sv.View(o.velNm1)
	vUN := sv.View(o.velN)
	vUNp1 := sv.View(o.velNp1)
	vGjp := sv.View(o.gjp)

	var uNm1, uN, uNp1, gjp [3]float64
	for p := 0; p < o.nip; p++ {
		nn := o.ipNodeMap[p]

		// interpolate nodal values to the integration point
		rhoNm1, rhoN, rhoNp1 := 0.0, 0.0, 0.0
		for j := 0; j < o.ndim; j++ {
			uNm1[j], uN[j], uNp1[j], gjp[j] = 0, 0, 0, 0
		}
		for m := 0; m < o.nverts; m++ {
			r := o.shapeFcn[p][m]
			rhoNm1 += r * vRhoNm1[m][0]
			rhoN += r * vRhoN[m][0]
			rhoNp1 += r * vRhoNp1[m][0]
			for j := 0; j < o.ndim; j++ {
				uNm1[j] += r * vUNm1[m][j]
				uN[j] += r * vUN[m][j]
				uNp1[j] += r * vUNp1[m][j]
				gjp[j] += r * vGjp[m][j]
			}
		}

		scv := sv.ScvVol[p]
		nnDim := nn * o.ndim

		// residual
		for j := 0; j < o.ndim; j++ {
			rhs[nnDim+j] -= (o.gamma1*rhoNp1*uNp1[j]+o.gamma2*rhoN*uN[j]+o.gamma3*rhoNm1*uNm1[j])*scv/o.dt + gjp[j]*scv
		}

		// Jacobian: one column block per node, diagonal in the dimension index
		for m := 0; m < o.nverts; m++ {
			mDim := m * o.ndim
			lhsfac := o.shapeFcn[p][m] * o.gamma1 * rhoNp1 * scv / o.dt
			for j := 0; j < o.ndim; j++ {
				lhs[nnDim+j][mDim+j] += lhsfac
			}
		}
	}
}
