// Copyright 2018 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/gosl/utl"
)

func Test_curve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("curve01. quadratic reproduction and node exactness")

	// non-uniform nodes sampled from a quadratic; a degree-2 spline space
	// contains the quadratic, so the fit must reproduce it everywhere
	f := func(x float64) float64 { return 0.5 - 1.25*x + 0.75*x*x }
	axis := []float64{0, 0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	values := make([]float64, len(axis))
	for i, x := range axis {
		values[i] = f(x)
	}

	cv, err := NewCurve(axis, values, 2)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// nodes
	for i, x := range axis {
		chk.Float64(tst, io.Sf("node %2d", i), 1e-14, cv.F(x), values[i])
	}

	// everywhere
	X := utl.LinSpace(0, 1, 101)
	for _, x := range X {
		chk.Float64(tst, io.Sf("f(%5.3f)", x), 1e-13, cv.F(x), f(x))
	}

	// endpoints return the end table values
	chk.Float64(tst, "F(Xmin)", 1e-17, cv.F(cv.Xmin), values[0])
	chk.Float64(tst, "F(Xmax)", 1e-17, cv.F(cv.Xmax), values[len(values)-1])

	if chk.Verbose {
		Y := make([]float64, len(X))
		for i, x := range X {
			Y[i] = cv.F(x)
		}
		plt.Reset(false, nil)
		plt.Plot(X, Y, &plt.A{C: "b", L: "fit"})
		plt.Plot(axis, values, &plt.A{C: "k", M: "o", Ls: "none", L: "nodes"})
		plt.Gll("$x$", "$f$", nil)
		plt.Save("/tmp/perfplate", "interp_curve01")
	}
}

func Test_curve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("curve02. construction preconditions")

	// non-strictly-increasing axis
	_, err := NewCurve([]float64{0, 0.1, 0.1, 0.3}, []float64{1, 2, 3, 4}, 2)
	if err == nil {
		tst.Errorf("repeated axis value must fail construction\n")
		return
	}
	io.Pforan("repeated value  : %v\n", err)

	// decreasing axis
	_, err = NewCurve([]float64{0, 0.2, 0.1, 0.3}, []float64{1, 2, 3, 4}, 2)
	if err == nil {
		tst.Errorf("decreasing axis must fail construction\n")
		return
	}
	io.Pforan("decreasing axis : %v\n", err)

	// length mismatch
	_, err = NewCurve([]float64{0, 0.1, 0.2, 0.3}, []float64{1, 2, 3}, 2)
	if err == nil {
		tst.Errorf("values/axis length mismatch must fail construction\n")
		return
	}
	io.Pforan("length mismatch : %v\n", err)

	// quartic fit against 4 points only
	_, err = NewCurve([]float64{0, 0.1, 0.2, 0.3}, []float64{1, 2, 3, 4}, 4)
	if err == nil {
		tst.Errorf("degree too high must fail construction\n")
		return
	}
	io.Pforan("degree too high : %v\n", err)

	// invalid degree
	_, err = NewCurve([]float64{0, 0.1, 0.2, 0.3}, []float64{1, 2, 3, 4}, 0)
	if err == nil {
		tst.Errorf("zero degree must fail construction\n")
		return
	}
	io.Pforan("zero degree     : %v\n", err)
}

func Test_curve03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("curve03. determinism and extrapolation")

	axis := []float64{0, 0.1, 0.3, 0.5, 0.9, 1.0}
	values := []float64{1.0, 0.7, 0.5, 0.4, 0.2, 0.1}
	cv, err := NewCurve(axis, values, 2)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// repeated evaluation is bit-identical
	rnd.Init(1234)
	for i := 0; i < 100; i++ {
		x := rnd.Float64(-0.5, 1.5)
		a, b := cv.F(x), cv.F(x)
		if a != b {
			tst.Errorf("evaluation at x=%g is not deterministic: %v != %v\n", x, a, b)
			return
		}
	}

	// outside the interval: finite values, no panic
	for _, x := range []float64{-0.2, 1.3} {
		v := cv.F(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Errorf("extrapolated value at x=%g is not finite: %v\n", x, v)
			return
		}
		if cv.InRange(x) {
			tst.Errorf("x=%g must be flagged as out of range\n", x)
			return
		}
		io.Pforan("F(%g) = %v (extrapolated)\n", x, v)
	}

	// extension is continuous at the ends
	chk.Float64(tst, "left continuity ", 1e-10, cv.F(cv.Xmin-1e-12), cv.F(cv.Xmin))
	chk.Float64(tst, "right continuity", 1e-10, cv.F(cv.Xmax+1e-12), cv.F(cv.Xmax))
}

func Test_surface01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surface01. biquartic reproduction and node exactness")

	// a full biquartic polynomial lies inside the degree-4 tensor space
	g := func(x, y float64) float64 {
		return 1.0 + x - 2.0*y + 0.5*x*x*y*y - x*y*y*y + 0.25*math.Pow(x, 4)*math.Pow(y, 4)
	}
	axisX := []float64{0, 0.1, 0.2, 0.25, 0.3, 0.4, 0.5}
	axisY := []float64{0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.4, 0.5, 0.7}
	table := utl.Alloc(len(axisX), len(axisY))
	for i, x := range axisX {
		for j, y := range axisY {
			table[i][j] = g(x, y)
		}
	}

	sf, err := NewSurface(axisX, axisY, table, 4, 4)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// grid nodes
	for i, x := range axisX {
		for j, y := range axisY {
			chk.Float64(tst, io.Sf("node %d,%d", i, j), 1e-13, sf.F(x, y), table[i][j])
		}
	}

	// everywhere inside the rectangle
	rnd.Init(4321)
	for k := 0; k < 200; k++ {
		x := rnd.Float64(0, 0.5)
		y := rnd.Float64(0.05, 0.7)
		chk.Float64(tst, io.Sf("g(%.3f,%.3f)", x, y), 1e-12, sf.F(x, y), g(x, y))
	}

	// corners
	chk.Float64(tst, "corner min", 1e-17, sf.F(0, 0.05), table[0][0])
	chk.Float64(tst, "corner max", 1e-17, sf.F(0.5, 0.7), table[6][8])
}

func Test_surface02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("surface02. construction preconditions")

	axisX := []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	axisY := []float64{0, 0.2, 0.4, 0.6, 0.8}
	ok := utl.Alloc(7, 5)

	// wrong number of rows
	_, err := NewSurface(axisX, axisY, ok[:6], 4, 4)
	if err == nil {
		tst.Errorf("wrong row count must fail construction\n")
		return
	}
	io.Pforan("wrong rows    : %v\n", err)

	// one ragged row
	bad := utl.Alloc(7, 5)
	bad[3] = bad[3][:4]
	_, err = NewSurface(axisX, axisY, bad, 4, 4)
	if err == nil {
		tst.Errorf("ragged table must fail construction\n")
		return
	}
	io.Pforan("ragged row    : %v\n", err)

	// y-axis too short for quartic
	_, err = NewSurface(axisX, axisY[:4], nil, 4, 4)
	if err == nil {
		tst.Errorf("degree too high along y must fail construction\n")
		return
	}
	io.Pforan("y degree high : %v\n", err)

	// non-monotonic x-axis
	axisX[2] = 0.05
	_, err = NewSurface(axisX, axisY, ok, 4, 4)
	if err == nil {
		tst.Errorf("non-monotonic x-axis must fail construction\n")
		return
	}
	io.Pforan("x not incr.   : %v\n", err)
}
