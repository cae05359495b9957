// Copyright 2018 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ludec holds the LU decomposition, with partial pivoting, of a small dense
// collocation matrix. The matrices here have at most as many rows as the
// longest reference axis, hence no banded storage
type ludec struct {
	n   int
	a   [][]float64
	piv []int
}

// factorise computes the decomposition. A is overwritten
func (o *ludec) factorise(A [][]float64) error {
	o.n = len(A)
	o.a = A
	o.piv = make([]int, o.n)
	for i := 0; i < o.n; i++ {
		o.piv[i] = i
	}
	for col := 0; col < o.n; col++ {
		p, big := col, math.Abs(o.a[col][col])
		for r := col + 1; r < o.n; r++ {
			if v := math.Abs(o.a[r][col]); v > big {
				p, big = r, v
			}
		}
		if big == 0 {
			return chk.Err("matrix is singular at column %d", col)
		}
		if p != col {
			o.a[col], o.a[p] = o.a[p], o.a[col]
			o.piv[col], o.piv[p] = o.piv[p], o.piv[col]
		}
		for r := col + 1; r < o.n; r++ {
			o.a[r][col] /= o.a[col][col]
			f := o.a[r][col]
			for c := col + 1; c < o.n; c++ {
				o.a[r][c] -= f * o.a[col][c]
			}
		}
	}
	return nil
}

// solve computes x := A⁻¹b. x and b must not overlap; b is not modified
func (o *ludec) solve(x, b []float64) {
	for i := 0; i < o.n; i++ {
		x[i] = b[o.piv[i]]
	}
	for i := 1; i < o.n; i++ {
		s := x[i]
		for j := 0; j < i; j++ {
			s -= o.a[i][j] * x[j]
		}
		x[i] = s
	}
	for i := o.n - 1; i >= 0; i-- {
		s := x[i]
		for j := i + 1; j < o.n; j++ {
			s -= o.a[i][j] * x[j]
		}
		x[i] = s / o.a[i][i]
	}
}
