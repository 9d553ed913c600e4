// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/zhysh966/piezo-fem/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/mat"
)

// PointLoad holds a nodal load: vertex id, dof index, value and an
// optional multiplier function of pseudo-time
type PointLoad struct {
	Vert  int
	Dof   int
	Value float64
	Mult  dbf.T // nil means constant
}

// FemCase holds a complete linear shell analysis: mesh, material,
// elements, supports and loads
type FemCase struct {

	// input
	Msh *inp.Mesh
	Mat *inp.Material

	// derived
	Elems []*ShellElem
	Neq   int // total number of equations

	// conditions
	fixed map[int]bool // fixed equations
	loads []PointLoad
}

// NewFemCase allocates a case over all cells of msh using material matname
// from mdb. nip selects the in-plane integration rule (0 => default)
func NewFemCase(msh *inp.Mesh, mdb *inp.MatDb, matname string, nip int) (o *FemCase, err error) {

	// check
	if msh == nil || mdb == nil {
		return nil, chk.Err("fem.NewFemCase: mesh and material database must be non-nil")
	}
	m := mdb.Get(matname)
	if m == nil {
		return nil, chk.Err("fem.NewFemCase: cannot find material %q", matname)
	}

	// case data
	o = new(FemCase)
	o.Msh = msh
	o.Mat = m
	o.Neq = len(msh.Verts) * Ndofn
	o.fixed = make(map[int]bool)

	// elements
	o.Elems = make([]*ShellElem, len(msh.Cells))
	for i := range msh.Cells {
		o.Elems[i], err = NewShellElem(msh, i, m.Mdl, nip)
		if err != nil {
			return nil, err
		}
	}
	return
}

// SetSupport fixes the given dof indices of all vertices with tag vtag
func (o *FemCase) SetSupport(vtag int, dofs ...int) (err error) {
	verts := o.Msh.VertTag2verts[vtag]
	if len(verts) == 0 {
		return chk.Err("fem.SetSupport: no vertices have tag %d", vtag)
	}
	for _, dof := range dofs {
		if dof < 0 || dof >= Ndofn {
			return chk.Err("fem.SetSupport: dof index %d is out of range", dof)
		}
		for _, v := range verts {
			o.fixed[v.Id*Ndofn+dof] = true
		}
	}
	return
}

// SetPointLoad adds a nodal load at vertex vid, dof index dof
func (o *FemCase) SetPointLoad(vid, dof int, value float64) (err error) {
	if vid < 0 || vid >= len(o.Msh.Verts) {
		return chk.Err("fem.SetPointLoad: vertex %d is not in mesh", vid)
	}
	if dof < 0 || dof >= Ndofn {
		return chk.Err("fem.SetPointLoad: dof index %d is out of range", dof)
	}
	o.loads = append(o.loads, PointLoad{vid, dof, value, nil})
	return
}

// SetPointLoadMult adds a nodal load scaled by multiplier mult, evaluated
// at the pseudo-time given to SolveStaticAt
func (o *FemCase) SetPointLoadMult(vid, dof int, value float64, mult dbf.T) (err error) {
	err = o.SetPointLoad(vid, dof, value)
	if err != nil {
		return
	}
	o.loads[len(o.loads)-1].Mult = mult
	return
}

// AssembleK computes all element stiffnesses and scatters them into the
// global stiffness matrix
func (o *FemCase) AssembleK() (K *mat.Dense, err error) {
	K = mat.NewDense(o.Neq, o.Neq, nil)
	for _, e := range o.Elems {
		err = e.Stiffness()
		if err != nil {
			return nil, err
		}
		o.scatter(K, e, e.K)
	}
	return
}

// AssembleM computes all element mass matrices and scatters them into the
// global mass matrix
func (o *FemCase) AssembleM() (M *mat.Dense, err error) {
	M = mat.NewDense(o.Neq, o.Neq, nil)
	for _, e := range o.Elems {
		err = e.Mass()
		if err != nil {
			return nil, err
		}
		o.scatter(M, e, e.M)
	}
	return
}

// scatter adds the local matrix a of element e into the global matrix G
func (o *FemCase) scatter(G *mat.Dense, e *ShellElem, a [][]float64) {
	nverts := e.Cell.Shp.Nverts
	for i := 0; i < nverts; i++ {
		for di := 0; di < Ndofn; di++ {
			I := e.Cell.Verts[i]*Ndofn + di
			for j := 0; j < nverts; j++ {
				for dj := 0; dj < Ndofn; dj++ {
					J := e.Cell.Verts[j]*Ndofn + dj
					G.Set(I, J, G.At(I, J)+a[i*Ndofn+di][j*Ndofn+dj])
				}
			}
		}
	}
}

// freeEqs returns the sorted list of non-fixed equations
func (o *FemCase) freeEqs() (eqs []int) {
	for eq := 0; eq < o.Neq; eq++ {
		if !o.fixed[eq] {
			eqs = append(eqs, eq)
		}
	}
	return
}

// reduce extracts the submatrix of G corresponding to the free equations
func reduce(G *mat.Dense, eqs []int) (R *mat.Dense) {
	n := len(eqs)
	R = mat.NewDense(n, n, nil)
	for i, I := range eqs {
		for j, J := range eqs {
			R.Set(i, j, G.At(I, J))
		}
	}
	return
}

// SolveStatic solves K*u = f with the current supports and point loads,
// with load multipliers evaluated at pseudo-time 1
func (o *FemCase) SolveStatic() (u []float64, err error) {
	return o.SolveStaticAt(1)
}

// SolveStaticAt solves K*u = f(t) at pseudo-time t. The result has Neq
// components with zeros at the fixed equations
func (o *FemCase) SolveStaticAt(t float64) (u []float64, err error) {

	// check
	eqs := o.freeEqs()
	if len(eqs) == o.Neq {
		return nil, chk.Err("fem.SolveStatic: case has no supports")
	}
	if len(o.loads) == 0 {
		return nil, chk.Err("fem.SolveStatic: case has no loads")
	}

	// global and reduced systems
	K, err := o.AssembleK()
	if err != nil {
		return nil, err
	}
	Kr := reduce(K, eqs)
	f := make([]float64, o.Neq)
	for _, pl := range o.loads {
		val := pl.Value
		if pl.Mult != nil {
			val *= pl.Mult.F(t, nil)
		}
		f[pl.Vert*Ndofn+pl.Dof] += val
	}
	fr := mat.NewVecDense(len(eqs), nil)
	for i, I := range eqs {
		fr.SetVec(i, f[I])
	}

	// solve
	var ur mat.VecDense
	err = ur.SolveVec(Kr, fr)
	if err != nil {
		return nil, chk.Err("fem.SolveStatic: cannot solve system: %v", err)
	}

	// expand
	u = make([]float64, o.Neq)
	for i, I := range eqs {
		u[I] = ur.AtVec(i)
	}
	return
}

// Modal computes the lowest nmodes natural circular frequencies [rad/s]
// of the supported structure. Massless (rotational) modes are discarded
func (o *FemCase) Modal(nmodes int) (ws []float64, err error) {

	// check
	eqs := o.freeEqs()
	if len(eqs) == o.Neq {
		return nil, chk.Err("fem.Modal: case has no supports")
	}
	if nmodes < 1 {
		return nil, chk.Err("fem.Modal: nmodes must be at least 1")
	}

	// reduced stiffness and mass
	K, err := o.AssembleK()
	if err != nil {
		return nil, err
	}
	M, err := o.AssembleM()
	if err != nil {
		return nil, err
	}
	Kr := reduce(K, eqs)
	Mr := reduce(M, eqs)

	// eigenvalues of inv(K)*M are 1/w² with zeros for massless dofs
	var X mat.Dense
	err = X.Solve(Kr, Mr)
	if err != nil {
		return nil, chk.Err("fem.Modal: cannot solve system: %v", err)
	}
	var eig mat.Eigen
	if !eig.Factorize(&X, mat.EigenNone) {
		return nil, chk.Err("fem.Modal: eigen decomposition failed")
	}

	// collect frequencies. K and M are symmetric so the eigenvalues must
	// come out real; a complex pair means the reduced system is ill-posed
	for _, lam := range eig.Values(nil) {
		if math.Abs(imag(lam)) > 1e-9*(1.0+math.Abs(real(lam))) {
			return nil, chk.Err("fem.Modal: complex eigenvalue %v indicates ill-posed reduced system", lam)
		}
		mu := real(lam)
		if mu > 1e-14 {
			ws = append(ws, 1.0/math.Sqrt(mu))
		}
	}
	sort.Float64s(ws)
	if nmodes < len(ws) {
		ws = ws[:nmodes]
	}
	return
}
