// Copyright 2018 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the presentation layer: formatted reports and
// literature comparison figures. It only reads results and reference tables
package out

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/perfplate/slot"
)

// Report prints the five stiffness ratios for one query. Multiply each ratio
// by the corresponding solid-material constant to obtain the equivalent
// orthotropic property
func Report(res *slot.Props) {
	io.Pf("\nequivalent stiffness ratios, square penetration pattern (Slot 1972)\n")
	io.Pf("query: ν = %g, η = %g, ηz = %g\n\n", res.Nu, res.Eta, res.EtaZ)
	io.Pf("  Ep*/E = %8.5f\n", res.EpE)
	io.Pf("  νp*   = %8.5f\n", res.Nup)
	io.Pf("  Gp*/G = %8.5f\n", res.GpG)
	io.Pf("  Ez*/E = %8.5f\n", res.EzE)
	io.Pf("  Gz*/G = %8.5f\n", res.GzG)
}
