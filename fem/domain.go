// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the outer assembly driver: it gathers element
// state per the kernels' declared requirements, runs the kernels over all
// cells and scatters the element-local contributions into the global
// residual vector and Jacobian matrix
package fem

import (
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/dcmania/Nalu/kernel"
	"github.com/dcmania/Nalu/master"
	"github.com/dcmania/Nalu/msh"
	"github.com/dcmania/Nalu/tint"
)

// Domain holds the mesh, the nodal fields, the kernels of each topology
// and the global system arrays. Equation numbering is vert*ndim + j.
type Domain struct {

	// mesh and metadata
	Msh  *msh.Mesh
	Meta *msh.MetaData
	Opts *kernel.SolutionOptions

	// kernels and requirements per topology
	kernels map[string][]kernel.Kernel
	reqs    map[string]*kernel.ElemDataRequests

	// global system
	Ndim int
	Neq  int         // number of equations == nverts * ndim
	Fb   []float64   // global right-hand side: negative of the residual, accumulated
	Kb   *la.Triplet // global Jacobian matrix
}

// NewDomain returns a new domain for the momentum equations of one mesh
func NewDomain(m *msh.Mesh, meta *msh.MetaData, opts *kernel.SolutionOptions) *Domain {
	return &Domain{
		Msh:     m,
		Meta:    meta,
		Opts:    opts,
		kernels: make(map[string][]kernel.Kernel),
		reqs:    make(map[string]*kernel.ElemDataRequests),
		Ndim:    m.Ndim,
		Neq:     len(m.Verts) * m.Ndim,
		Fb:      make([]float64, len(m.Verts)*m.Ndim),
	}
}

// AddKernel allocates the named kernel for one element topology. All
// kernels of a topology share one set of element data requirements.
func (o *Domain) AddKernel(topo, name string) (kernel.Kernel, error) {
	me := master.Get(topo)
	if me == nil {
		return nil, chk.Err("cannot find master element for topology %q", topo)
	}
	reqs, ok := o.reqs[topo]
	if !ok {
		reqs = new(kernel.ElemDataRequests)
		o.reqs[topo] = reqs
	}
	k, err := kernel.New(name, o.Meta, o.Opts, reqs, me)
	if err != nil {
		return nil, err
	}
	o.kernels[topo] = append(o.kernels[topo], k)
	return k, nil
}

// SetCoordinates copies the mesh vertex coordinates into the coordinates
// field read by the kernels
func (o *Domain) SetCoordinates() error {
	fld := o.Meta.GetField(o.Opts.CoordinatesName)
	if fld == nil {
		return chk.Err("cannot find coordinates field %q in mesh metadata", o.Opts.CoordinatesName)
	}
	data := fld.FieldOfState(msh.StateNp1).Data
	for v, x := range o.Msh.Verts {
		for j := 0; j < o.Ndim; j++ {
			data[v][j] = x[j]
		}
	}
	return nil
}

// Setup passes the fresh time integration coefficients to all kernels;
// must be called once per time step, before Assemble
func (o *Domain) Setup(ti *tint.TimeIntegrator) {
	for _, ks := range o.kernels {
		for _, k := range ks {
			k.Setup(ti)
		}
	}
}

// Assemble runs all kernels over all cells with nworkers concurrent
// workers and accumulates into Fb and Kb. Fb and Kb are zeroed here once;
// kernels only add to the element-local buffers. Each worker owns its
// scratch; the scatter into the global arrays is serialized by a lock.
func (o *Domain) Assemble(nworkers int) (err error) {

	// zero global system
	for i := range o.Fb {
		o.Fb[i] = 0
	}
	if o.Kb == nil {
		nnz := 0
		for _, c := range o.Msh.Cells {
			n := len(c.Verts) * o.Ndim
			nnz += n * n
		}
		o.Kb = new(la.Triplet)
		o.Kb.Init(o.Neq, o.Neq, nnz)
	} else {
		o.Kb.Start()
	}

	// coordinates handle for the master element volume computation
	coordsFld := o.Meta.GetField(o.Opts.CoordinatesName)
	if coordsFld == nil {
		return chk.Err("cannot find coordinates field %q in mesh metadata", o.Opts.CoordinatesName)
	}
	coords := coordsFld.FieldOfState(msh.StateNp1)

	if nworkers < 1 {
		nworkers = 1
	}
	var mu sync.Mutex
	var wg sync.WaitGroup
	errs := make(chan error, nworkers)
	ncells := len(o.Msh.Cells)
	for w := 0; w < nworkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			// per-worker scratch, one set per topology
			views := make(map[string]*kernel.ScratchViews)
			rhs := make(map[string][]float64)
			lhs := make(map[string][][]float64)
			for topo, reqs := range o.reqs {
				n := reqs.Me.Nverts() * o.Ndim
				views[topo] = kernel.NewScratchViews(reqs)
				rhs[topo] = make([]float64, n)
				lhs[topo] = utl.Alloc(n, n)
			}

			for ic := w; ic < ncells; ic += nworkers {
				c := o.Msh.Cells[ic]
				ks, ok := o.kernels[c.Topo]
				if !ok {
					errs <- chk.Err("no kernels registered for topology %q of cell %d", c.Topo, c.Id)
					return
				}

				// zero element-local buffers
				sv := views[c.Topo]
				r := rhs[c.Topo]
				K := lhs[c.Topo]
				n := len(r)
				for i := 0; i < n; i++ {
					r[i] = 0
					for j := 0; j < n; j++ {
						K[i][j] = 0
					}
				}

				// gather and execute
				sv.Gather(c)
				if o.reqs[c.Topo].ScvVolumes {
					sv.ComputeMeVolumes(coords)
				}
				for _, k := range ks {
					k.Execute(r, K, c.Id, sv)
				}

				// scatter
				mu.Lock()
				for m, v := range c.Verts {
					for j := 0; j < o.Ndim; j++ {
						I := v*o.Ndim + j
						o.Fb[I] += r[m*o.Ndim+j]
						for mm, vv := range c.Verts {
							for jj := 0; jj < o.Ndim; jj++ {
								o.Kb.Put(I, vv*o.Ndim+jj, K[m*o.Ndim+j][mm*o.Ndim+jj])
							}
						}
					}
				}
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		return e
	}
	return
}
