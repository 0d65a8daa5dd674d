// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
)

// SolveDense solves Kb x = Fb with a dense LU decomposition. Meant for
// verification-scale problems; production runs plug a sparse solver in.
func (o *Domain) SolveDense() (x []float64, err error) {
	if o.Kb == nil {
		return nil, chk.Err("cannot solve before assembling the system")
	}
	K := o.Kb.ToDense()
	A := mat.NewDense(o.Neq, o.Neq, nil)
	for i := 0; i < o.Neq; i++ {
		for j := 0; j < o.Neq; j++ {
			A.Set(i, j, K.Get(i, j))
		}
	}
	b := mat.NewVecDense(o.Neq, o.Fb)
	var sol mat.VecDense
	if e := sol.SolveVec(A, b); e != nil {
		return nil, chk.Err("dense solve failed: %v", e)
	}
	x = make([]float64, o.Neq)
	for i := 0; i < o.Neq; i++ {
		x[i] = sol.AtVec(i)
	}
	return
}
