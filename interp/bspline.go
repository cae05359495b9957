// Copyright 2018 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package interp implements interpolating B-splines in one and two dimensions.
// The splines pass exactly through every tabulated point; evaluations outside
// the tabulated interval proceed by polynomial extension of the end segments.
package interp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// knots builds a clamped knot vector of degree p over the strictly increasing
// nodes x, with interior knots at averages of p consecutive nodes:
//
//   t[p+1+i] = (x[i+1] + ... + x[i+p]) / p
//
// This placement satisfies the Schoenberg-Whitney conditions; the resulting
// collocation matrix is nonsingular for any strictly increasing x
func knots(x []float64, p int) (t []float64) {
	n := len(x)
	t = make([]float64, 0, n+p+1)
	for i := 0; i <= p; i++ {
		t = append(t, x[0])
	}
	for i := 0; i < n-p-1; i++ {
		sum := 0.0
		for j := i + 1; j <= i+p; j++ {
			sum += x[j]
		}
		t = append(t, sum/float64(p))
	}
	for i := 0; i <= p; i++ {
		t = append(t, x[n-1])
	}
	return
}

// findspan returns the index m such that t[m] ≤ u < t[m+1], clamped to the
// nonempty spans [p, n-1]. u beyond either end of the knot range selects the
// corresponding end span
func findspan(t []float64, n, p int, u float64) int {
	if u >= t[n] {
		return n - 1
	}
	if u <= t[p] {
		return p
	}
	lo, hi := p, n-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t[mid] <= u {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// basis computes the p+1 possibly nonzero basis functions at u on span m using
// the triangular (Cox-de Boor) scheme; N[j] corresponds to basis index m-p+j
func basis(t []float64, p, m int, u float64) (N []float64) {
	N = make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	N[0] = 1.0
	for j := 1; j <= p; j++ {
		left[j] = u - t[m+1-j]
		right[j] = t[m+j] - u
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := N[r] / (right[r+1] + left[j-r])
			N[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		N[j] = saved
	}
	return
}

// checkAxis verifies that axis x is strictly increasing and has enough points
// to support a degree p fit
func checkAxis(name string, x []float64, p int) error {
	if p < 1 {
		return chk.Err("%s: invalid degree: p=%d", name, p)
	}
	if len(x) < p+1 {
		return chk.Err("%s: degree too high: %d points cannot support degree %d (need at least %d)", name, len(x), p, p+1)
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return chk.Err("%s: axis must be strictly increasing: x[%d]=%g followed by x[%d]=%g", name, i-1, x[i-1], i, x[i])
		}
	}
	return nil
}

// colloc assembles the collocation matrix A[i][j] = N_j(x[i]) for the given
// knot vector and returns its LU decomposition
func colloc(name string, x, t []float64, p int) (*ludec, error) {
	n := len(x)
	A := utl.Alloc(n, n)
	for i, u := range x {
		m := findspan(t, n, p, u)
		N := basis(t, p, m, u)
		for j := 0; j <= p; j++ {
			A[i][m-p+j] = N[j]
		}
	}
	var dec ludec
	if err := dec.factorise(A); err != nil {
		return nil, chk.Err("%s: %v", name, err)
	}
	return &dec, nil
}
