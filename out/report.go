// Copyright 2025 The PiezoFEM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out exports analysis results: nodal tables to xlsx workbooks
// and short pdf summaries
package out

import (
	"math"
	"time"

	"github.com/zhysh966/piezo-fem/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"
)

// dof column labels
var dofLabels = []string{"ux", "uy", "uz", "ra", "rb"}

// WriteXlsxResults writes one row per mesh vertex with its coordinates
// and solution components to an xlsx workbook at path
func WriteXlsxResults(path string, fc *fem.FemCase, u []float64) (err error) {

	// check
	if fc == nil {
		return chk.Err("out.WriteXlsxResults: case must be non-nil")
	}
	if len(u) != fc.Neq {
		return chk.Err("out.WriteXlsxResults: solution must have %d components; got %d", fc.Neq, len(u))
	}

	// header
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	header := []string{"vert", "x", "y", "z"}
	header = append(header, dofLabels...)
	for j, label := range header {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
	}

	// one row per vertex
	for _, v := range fc.Msh.Verts {
		row := []float64{v.C[0], v.C[1], v.C[2]}
		for d := 0; d < fem.Ndofn; d++ {
			row = append(row, u[v.Id*fem.Ndofn+d])
		}
		cell, err := excelize.CoordinatesToCellName(1, v.Id+2)
		if err != nil {
			return err
		}
		if err = f.SetCellValue(sheet, cell, v.Id); err != nil {
			return err
		}
		for j, val := range row {
			cell, err = excelize.CoordinatesToCellName(j+2, v.Id+2)
			if err != nil {
				return err
			}
			if err = f.SetCellValue(sheet, cell, val); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

// WritePdfSummary writes a one-page analysis summary to a pdf file at path:
// mesh and material metadata plus the extreme solution values
func WritePdfSummary(path string, fc *fem.FemCase, u []float64) (err error) {

	// check
	if fc == nil {
		return chk.Err("out.WritePdfSummary: case must be non-nil")
	}
	if len(u) != fc.Neq {
		return chk.Err("out.WritePdfSummary: solution must have %d components; got %d", fc.Neq, len(u))
	}

	// extreme values per dof
	min := make([]float64, fem.Ndofn)
	max := make([]float64, fem.Ndofn)
	for d := 0; d < fem.Ndofn; d++ {
		min[d], max[d] = math.Inf(1), math.Inf(-1)
		for _, v := range fc.Msh.Verts {
			val := u[v.Id*fem.Ndofn+d]
			min[d] = math.Min(min[d], val)
			max[d] = math.Max(max[d], val)
		}
	}

	// page
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Shell Analysis Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, io.Sf("Mesh: %s", fc.Msh.FnamePath))
	pdf.Ln(6)
	pdf.Cell(0, 6, io.Sf("Vertices: %d   Cells: %d   Equations: %d", len(fc.Msh.Verts), len(fc.Msh.Cells), fc.Neq))
	pdf.Ln(6)
	pdf.Cell(0, 6, io.Sf("Material: %s (%s)", fc.Mat.Name, fc.Mat.Model))
	pdf.Ln(6)
	pdf.Cell(0, 6, io.Sf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Extreme values")
	pdf.Ln(8)
	pdf.SetFont("Courier", "", 10)
	for d := 0; d < fem.Ndofn; d++ {
		pdf.Cell(0, 5, io.Sf("%-3s min = %13.6e   max = %13.6e", dofLabels[d], min[d], max[d]))
		pdf.Ln(5)
	}
	return pdf.OutputFileAndClose(path)
}
