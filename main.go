// Copyright 2018 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/perfplate/inp"
	"github.com/cpmech/perfplate/out"
	"github.com/cpmech/perfplate/slot"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "inp/data/plate", ".json", true)
	verbose := io.ArgToBool(1, true)
	if verbose {
		io.PfWhite("\nperfplate -- equivalent stiffness of thick perforated plates\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// input data
	dat := inp.Read(fnamepath)
	if verbose && dat.Desc != "" {
		io.Pf("%s\n", dat.Desc)
	}

	// fit reference tables
	var plate slot.Plate
	err := plate.Init()
	if err != nil {
		chk.Panic("cannot fit reference tables:\n%v", err)
	}

	// compute ratios
	res, warn := plate.Calc(dat.Prms())
	if warn != nil {
		io.Pfred("warning: %v\n", warn)
	}
	out.Report(res)

	// comparison figures
	if dat.PlotFig {
		out.PlotInPlane(&plate, dat.DirOut, fnkey+"_inplane")
		out.PlotTransverse(&plate, dat.DirOut, fnkey+"_transverse")
		if verbose {
			io.Pf("figures saved to %s\n", dat.DirOut)
		}
	}
}
