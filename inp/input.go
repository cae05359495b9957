// Copyright 2018 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a JSON file
package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/perfplate/slot"
)

// Data holds the query parameters for one perforated-plate computation
type Data struct {

	// global information
	Desc   string `json:"desc"`   // description of the analysis
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/perfplate

	// query point
	Nu   float64 `json:"nu"`   // Poisson's ratio of the solid material
	Eta  float64 `json:"eta"`  // ligament efficiency
	EtaZ float64 `json:"etaz"` // transverse ligament efficiency; defaults to eta

	// options
	PlotFig bool `json:"plotfig"` // save comparison figures to DirOut
}

// SetDefault sets default values; absent fields in the input file keep these
func (o *Data) SetDefault() {
	o.DirOut = "/tmp/perfplate"
	o.Nu = slot.NuDefault
	o.Eta = slot.EtaDefault
	o.EtaZ = math.NaN() // meaning: follow Eta
}

// Read reads the input data from a JSON file. It panics on unreadable or
// ill-formed files since there is nothing to compute without input
func Read(fn string) *Data {
	b := io.ReadFile(fn) // panics if the file cannot be read
	var o Data
	o.SetDefault()
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("Read: cannot unmarshal input file %q", fn)
	}
	return &o
}

// Prms returns the query as a parameter set for slot.Plate.Calc
func (o *Data) Prms() dbf.Params {
	prms := dbf.Params{
		&dbf.P{N: "nu", V: o.Nu},
		&dbf.P{N: "eta", V: o.Eta},
	}
	if !math.IsNaN(o.EtaZ) {
		prms = append(prms, &dbf.P{N: "etaz", V: o.EtaZ})
	}
	return prms
}
