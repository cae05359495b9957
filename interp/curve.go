// Copyright 2018 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import "github.com/cpmech/gosl/chk"

// Curve is a univariate interpolating B-spline: a piecewise polynomial of the
// requested degree passing exactly through every (axis[i], values[i]) pair.
// Curve is immutable after construction and safe for concurrent evaluation;
// it keeps no reference to the slices given to NewCurve
type Curve struct {

	// derived fit
	p int       // degree
	n int       // number of coefficients == number of nodes
	t []float64 // clamped knot vector
	c []float64 // spline coefficients

	// tabulated interval
	Xmin float64 // smallest axis value
	Xmax float64 // largest axis value
}

// NewCurve fits an interpolating spline of the given degree to values over axis.
// axis must be strictly increasing with len(axis) ≥ degree+1 and
// len(values) == len(axis)
func NewCurve(axis, values []float64, degree int) (o *Curve, err error) {
	err = checkAxis("Curve", axis, degree)
	if err != nil {
		return
	}
	if len(values) != len(axis) {
		return nil, chk.Err("Curve: dimension mismatch: %d values for %d axis points", len(values), len(axis))
	}
	o = new(Curve)
	o.p = degree
	o.n = len(axis)
	o.t = knots(axis, degree)
	o.Xmin, o.Xmax = axis[0], axis[o.n-1]
	dec, err := colloc("Curve", axis, o.t, degree)
	if err != nil {
		return nil, err
	}
	o.c = make([]float64, o.n)
	dec.solve(o.c, values)
	return
}

// F evaluates the spline at x. For x outside [Xmin, Xmax] the polynomial of
// the corresponding end segment is extended; such results carry no backing
// from the tabulated data and callers should check the range beforehand
func (o *Curve) F(x float64) (res float64) {
	m := findspan(o.t, o.n, o.p, x)
	N := basis(o.t, o.p, m, x)
	for j := 0; j <= o.p; j++ {
		res += N[j] * o.c[m-o.p+j]
	}
	return
}

// InRange tells whether x lies within the tabulated interval
func (o *Curve) InRange(x float64) bool {
	return x >= o.Xmin && x <= o.Xmax
}
