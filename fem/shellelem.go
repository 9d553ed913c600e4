// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem assembles and solves small shell finite element cases:
// element stiffness and mass integration, global assembly, essential
// boundary conditions, static solution and modal frequencies.
package fem

import (
	"github.com/zhysh966/piezo-fem/inp"
	"github.com/zhysh966/piezo-fem/mdl"
	"github.com/zhysh966/piezo-fem/shell"
	"github.com/zhysh966/piezo-fem/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Ndofn is the number of degrees of freedom per shell node:
// 3 translations and 2 director rotations
const Ndofn = 5

// ShellElem implements a degenerate-shell element: it holds the cell
// geometry, the per-node triads and the integration rules, and computes
// the stiffness and (translational) consistent mass matrices
type ShellElem struct {

	// input
	Cell *inp.Cell // underlying mesh cell
	X    [][]float64
	Dirs [][]float64 // directors (half-thickness magnitude)
	Mdl  mdl.Model

	// derived
	Thick    []float64     // physical nodal thickness (twice director norm)
	V3       [][]float64   // unit directors
	Tri      [][][]float64 // nodal triads
	IpsElem  []shp.Ipoint  // in-plane rule
	IpsThick []shp.Ipoint  // through-thickness rule
	Nu       int           // total number of dofs

	// scratchpad
	K, M [][]float64 // stiffness and mass
	B    [][]float64 // global strain-displacement operator (6 x nu)
	Bl   [][]float64 // local operator T*B (5 x nu)
	T    [][]float64 // strain rotation (5 x 6)
	D    [][]float64 // constitutive matrix (5 x 5)
}

// NewShellElem allocates a shell element attached to cell cellId of msh
//  nip -- number of in-plane integration points: 0 => default for the cell kind
func NewShellElem(msh *inp.Mesh, cellId int, model mdl.Model, nip int) (o *ShellElem, err error) {

	// check
	if cellId < 0 || cellId >= len(msh.Cells) {
		return nil, chk.Err("fem.NewShellElem: cell %d is not in mesh %q", cellId, msh.FnamePath)
	}
	if model == nil {
		return nil, chk.Err("fem.NewShellElem: model must be non-nil")
	}

	// element data
	o = new(ShellElem)
	o.Cell = msh.Cells[cellId]
	o.X = msh.CellCoords(cellId)
	o.Dirs = msh.CellDirs(cellId)
	o.Mdl = model

	// derived geometry
	nverts := o.Cell.Shp.Nverts
	o.Thick = make([]float64, nverts)
	o.V3 = la.MatAlloc(nverts, 3)
	for m := 0; m < nverts; m++ {
		nrm := la.VecNorm(o.Dirs[m])
		o.Thick[m] = 2.0 * nrm
		for j := 0; j < 3; j++ {
			o.V3[m][j] = o.Dirs[m][j] / nrm
		}
	}
	o.Tri, err = shell.NodalTriads(o.Cell.Type, o.X, o.Dirs)
	if err != nil {
		return nil, err
	}

	// integration rules
	o.IpsElem, err = shp.GetIps(o.Cell.Type, nip)
	if err != nil {
		return nil, err
	}
	o.IpsThick = shp.ThickIps()

	// scratchpad
	o.Nu = nverts * Ndofn
	o.K = la.MatAlloc(o.Nu, o.Nu)
	o.M = la.MatAlloc(o.Nu, o.Nu)
	o.B = la.MatAlloc(6, o.Nu)
	o.Bl = la.MatAlloc(5, o.Nu)
	o.T = la.MatAlloc(5, 6)
	o.D = la.MatAlloc(5, 5)
	return
}

// Stiffness computes the element stiffness matrix into o.K by Gauss
// integration of tr(T*B)*D*(T*B) over the element volume
func (o *ShellElem) Stiffness() (err error) {

	// constitutive matrix
	err = o.Mdl.CalcD(o.D)
	if err != nil {
		return
	}

	// for each integration point
	la.MatFill(o.K, 0)
	for _, ip := range o.IpsElem {
		for _, tp := range o.IpsThick {

			// Jacobian @ ip
			jac, err := shell.ShellJac(o.Cell.Type, o.X, o.Thick, o.V3, ip.R, ip.S, tp.T)
			if err != nil {
				return err
			}
			_, det, err := shell.InvJacobian(jac)
			if err != nil {
				return chk.Err("fem.Stiffness: cell %d: %v", o.Cell.Id, err)
			}

			// strain operators
			err = shell.Bmatrix(o.B, o.Cell.Type, Ndofn, o.X, o.Thick, o.Tri, ip.R, ip.S, tp.T)
			if err != nil {
				return err
			}
			err = shell.Tmatrix(o.T, jac)
			if err != nil {
				return err
			}
			la.MatMul(o.Bl, 1, o.T, o.B)

			// K += coef * tr(Bl) * D * Bl
			coef := det * ip.W * tp.W
			la.MatTrMulAdd3(o.K, coef, o.Bl, o.D, o.Bl)
		}
	}
	return
}

// Mass computes the translational consistent mass matrix into o.M.
// Rotational inertia is neglected
func (o *ShellElem) Mass() (err error) {

	rho := o.Mdl.GetRho()
	nverts := o.Cell.Shp.Nverts
	S := make([]float64, nverts)
	dSdR := la.MatAlloc(nverts, 2)

	// for each integration point
	la.MatFill(o.M, 0)
	for _, ip := range o.IpsElem {
		for _, tp := range o.IpsThick {

			// Jacobian and interpolation functions @ ip
			jac, err := shell.ShellJac(o.Cell.Type, o.X, o.Thick, o.V3, ip.R, ip.S, tp.T)
			if err != nil {
				return err
			}
			_, det, err := shell.InvJacobian(jac)
			if err != nil {
				return chk.Err("fem.Mass: cell %d: %v", o.Cell.Id, err)
			}
			o.Cell.Shp.Func(S, dSdR, []float64{ip.R, ip.S}, false)

			// M += coef * rho * tr(N) * N (translational blocks only)
			coef := det * ip.W * tp.W * rho
			for i := 0; i < nverts; i++ {
				for j := 0; j < nverts; j++ {
					for d := 0; d < 3; d++ {
						o.M[i*Ndofn+d][j*Ndofn+d] += coef * S[i] * S[j]
					}
				}
			}
		}
	}
	return
}
