// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tint implements the time integrator supplying the step size and
// blending coefficients consumed by transient kernels
package tint

import (
	"github.com/cpmech/gosl/chk"
)

// TimeIntegrator holds the time step data of a transient run. The gamma
// coefficients blend the three stored time levels of the solution:
//
//   d(ρu)/dt ≈ (γ1 ρⁿ⁺¹ uⁿ⁺¹ + γ2 ρⁿ uⁿ + γ3 ρⁿ⁻¹ uⁿ⁻¹) / Δt
//
// The first step of a run and first order runs use backward-Euler
// (1, -1, 0); otherwise the variable-step BDF2 coefficients are
//
//   τ = Δtⁿ/Δtⁿ⁻¹   γ1 = (1+2τ)/(1+τ)   γ2 = -(1+τ)   γ3 = τ²/(1+τ)
//
// which always sum to zero.
type TimeIntegrator struct {
	SecondOrder bool // use BDF2 after the first step

	dtN    float64 // current step size
	dtNm1  float64 // previous step size
	nsteps int     // number of steps taken
	gamma1 float64
	gamma2 float64
	gamma3 float64
}

// New returns a time integrator with the first step size set
func New(dt float64, secondOrder bool) (o *TimeIntegrator, err error) {
	o = &TimeIntegrator{SecondOrder: secondOrder}
	err = o.SetTimeStep(dt)
	if err != nil {
		return nil, err
	}
	return
}

// NewCustom returns a time integrator with explicitly given coefficients;
// used by verification drivers that override the blend
func NewCustom(dt, gamma1, gamma2, gamma3 float64) (o *TimeIntegrator, err error) {
	if dt <= 0 {
		return nil, chk.Err("time step must be positive. dt=%v is invalid", dt)
	}
	return &TimeIntegrator{dtN: dt, dtNm1: dt, nsteps: 1, gamma1: gamma1, gamma2: gamma2, gamma3: gamma3}, nil
}

// SetTimeStep starts a new time step and recomputes the blending
// coefficients. The previous step size is kept for the variable-step
// second order formula. Step sizes must be strictly positive: a division
// by dt happens inside the transient kernels, which never re-validate it.
func (o *TimeIntegrator) SetTimeStep(dt float64) (err error) {
	if dt <= 0 {
		return chk.Err("time step must be positive. dt=%v is invalid", dt)
	}
	if o.nsteps > 0 {
		o.dtNm1 = o.dtN
	} else {
		o.dtNm1 = dt
	}
	o.dtN = dt
	o.nsteps++
	o.computeGamma()
	return
}

// computeGamma computes the blending coefficients
func (o *TimeIntegrator) computeGamma() {
	if o.SecondOrder && o.nsteps > 1 {
		tau := o.dtN / o.dtNm1
		o.gamma1 = (1.0 + 2.0*tau) / (1.0 + tau)
		o.gamma2 = -(1.0 + tau)
		o.gamma3 = tau * tau / (1.0 + tau)
		return
	}
	o.gamma1 = 1.0
	o.gamma2 = -1.0
	o.gamma3 = 0.0
}

// TimeStep returns the current step size
func (o *TimeIntegrator) TimeStep() float64 { return o.dtN }

// Gamma1 returns the coefficient of the current time level
func (o *TimeIntegrator) Gamma1() float64 { return o.gamma1 }

// Gamma2 returns the coefficient of the previous time level
func (o *TimeIntegrator) Gamma2() float64 { return o.gamma2 }

// Gamma3 returns the coefficient of the second-previous time level; zero
// for first order schemes
func (o *TimeIntegrator) Gamma3() float64 { return o.gamma3 }
