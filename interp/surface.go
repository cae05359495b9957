// Copyright 2018 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Surface is a bivariate tensor-product interpolating B-spline over a
// rectangular grid: it reproduces table[i][j] exactly at every grid node
// (axisX[i], axisY[j]). Surface is immutable after construction and safe for
// concurrent evaluation; it keeps no reference to the inputs of NewSurface
type Surface struct {

	// derived fit
	px, py int         // degrees along x and y
	nx, ny int         // number of coefficients along x and y
	tx, ty []float64   // clamped knot vectors
	c      [][]float64 // coefficients (nx by ny)

	// tabulated rectangle
	Xmin, Xmax float64 // x-axis ends
	Ymin, Ymax float64 // y-axis ends
}

// NewSurface fits an interpolating spline of degree degreeX along axisX and
// degreeY along axisY to the rectangular table. Both axes must be strictly
// increasing with enough points for their degree; the table must have
// len(axisX) rows of len(axisY) columns each
func NewSurface(axisX, axisY []float64, table [][]float64, degreeX, degreeY int) (o *Surface, err error) {
	err = checkAxis("Surface: x-axis", axisX, degreeX)
	if err != nil {
		return
	}
	err = checkAxis("Surface: y-axis", axisY, degreeY)
	if err != nil {
		return
	}
	nx, ny := len(axisX), len(axisY)
	if len(table) != nx {
		return nil, chk.Err("Surface: dimension mismatch: %d rows for %d x-axis points", len(table), nx)
	}
	for i, row := range table {
		if len(row) != ny {
			return nil, chk.Err("Surface: dimension mismatch: row %d has %d columns for %d y-axis points", i, len(row), ny)
		}
	}

	// knots and collocation decompositions, one per axis
	o = new(Surface)
	o.px, o.py = degreeX, degreeY
	o.nx, o.ny = nx, ny
	o.tx = knots(axisX, degreeX)
	o.ty = knots(axisY, degreeY)
	o.Xmin, o.Xmax = axisX[0], axisX[nx-1]
	o.Ymin, o.Ymax = axisY[0], axisY[ny-1]
	decx, err := colloc("Surface: x-axis", axisX, o.tx, degreeX)
	if err != nil {
		return nil, err
	}
	decy, err := colloc("Surface: y-axis", axisY, o.ty, degreeY)
	if err != nil {
		return nil, err
	}

	// tensor-product fit: along y for every grid row, then along x for every
	// coefficient column
	D := utl.Alloc(nx, ny)
	for i := 0; i < nx; i++ {
		decy.solve(D[i], table[i])
	}
	o.c = utl.Alloc(nx, ny)
	colD := make([]float64, nx)
	colC := make([]float64, nx)
	for q := 0; q < ny; q++ {
		for i := 0; i < nx; i++ {
			colD[i] = D[i][q]
		}
		decx.solve(colC, colD)
		for i := 0; i < nx; i++ {
			o.c[i][q] = colC[i]
		}
	}
	return
}

// F evaluates the surface at (x, y). Outside the tabulated rectangle the end
// polynomials are extended; see Curve.F
func (o *Surface) F(x, y float64) (res float64) {
	mx := findspan(o.tx, o.nx, o.px, x)
	Nx := basis(o.tx, o.px, mx, x)
	my := findspan(o.ty, o.ny, o.py, y)
	Ny := basis(o.ty, o.py, my, y)
	for i := 0; i <= o.px; i++ {
		row := 0.0
		for j := 0; j <= o.py; j++ {
			row += Ny[j] * o.c[mx-o.px+i][my-o.py+j]
		}
		res += Nx[i] * row
	}
	return
}

// InRange tells whether (x, y) lies within the tabulated rectangle
func (o *Surface) InRange(x, y float64) bool {
	return x >= o.Xmin && x <= o.Xmax && y >= o.Ymin && y <= o.Ymax
}
