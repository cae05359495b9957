// Copyright 2018 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/perfplate/slot"
)

// PlotInPlane draws the Ep*/E literature comparison figure: one curve per
// tabulated ν, markers at the table entries and the fitted spline in between.
// The figure is saved as dirout/fnkey.png
func PlotInPlane(plate *slot.Plate, dirout, fnkey string) {
	nη := len(slot.EtaAxis)
	H := utl.LinSpace(slot.EtaAxis[0], slot.EtaAxis[nη-1], 101)
	Y := make([]float64, len(H))
	plt.Reset(false, nil)
	for i, ν := range slot.NuAxis {
		for j, η := range H {
			Y[j], _, _ = plate.InPlane(ν, η)
		}
		clr := io.Sf("C%d", i)
		plt.Plot(H, Y, &plt.A{C: clr, L: io.Sf("ν = %g", ν)})
		plt.Plot(slot.EtaAxis, slot.EpE[i], &plt.A{C: clr, M: ".", Ls: "none"})
	}
	plt.Gll("ligament efficiency, $\\eta$", "$E_p^*/E$", &plt.A{LegLoc: "lower right"})
	plt.Save(dirout, fnkey)
}

// PlotTransverse draws the transverse ratio curves Ez*/E and Gz*/G over ηz,
// markers at the table entries and the fitted splines in between. The figure
// is saved as dirout/fnkey.png
func PlotTransverse(plate *slot.Plate, dirout, fnkey string) {
	nz := len(slot.EtaZAxis)
	H := utl.LinSpace(slot.EtaZAxis[0], slot.EtaZAxis[nz-1], 101)
	E := make([]float64, len(H))
	G := make([]float64, len(H))
	for j, ηz := range H {
		E[j], G[j] = plate.Transverse(ηz)
	}
	plt.Reset(false, nil)
	plt.Plot(H, E, &plt.A{C: "C0", L: "$E_z^*/E$"})
	plt.Plot(slot.EtaZAxis, slot.EzE, &plt.A{C: "C0", M: ".", Ls: "none"})
	plt.Plot(H, G, &plt.A{C: "C1", L: "$G_z^*/G$"})
	plt.Plot(slot.EtaZAxis, slot.GzG, &plt.A{C: "C1", M: ".", Ls: "none"})
	plt.Gll("transverse ligament efficiency, $\\eta_z$", "stiffness ratio", &plt.A{LegLoc: "lower right"})
	plt.Save(dirout, fnkey)
}
