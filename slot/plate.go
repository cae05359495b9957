// Copyright 2018 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slot

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/perfplate/interp"
)

// Spline degrees. Degree 4 along both grid axes and degree 2 along ηz were
// found to reproduce the reference tables with no residual; both values are
// part of the tables' provenance and must match them
const (
	GridDegree  = 4 // degree along ν and η for the in-plane tables
	CurveDegree = 2 // degree along ηz for the transverse tables
)

// Default query parameters (reference perforated geometry)
const (
	NuDefault  = 0.31   // Poisson's ratio of the solid material
	EtaDefault = 0.1114 // ligament efficiency
)

// Props holds the five stiffness ratios for one query. Each value is the
// ratio of the equivalent orthotropic constant to the corresponding isotropic
// solid constant
type Props struct {
	Nu, Eta float64 // in-plane query point
	EtaZ    float64 // transverse query point
	EpE     float64 // in-plane modulus ratio Ep*/E
	Nup     float64 // in-plane Poisson's ratio νp*
	GpG     float64 // in-plane shear ratio Gp*/G
	EzE     float64 // transverse modulus ratio Ez*/E
	GzG     float64 // transverse shear ratio Gz*/G
}

// Plate computes equivalent orthotropic stiffness ratios of a thick plate
// perforated with a square penetration pattern, by smooth interpolation of
// the Slot (1972) tables. A Plate is fitted once by Init and may then be
// queried any number of times, concurrently if needed; queries never mutate
// the fitted state
type Plate struct {
	epe *interp.Surface // Ep*/E over (ν, η)
	nup *interp.Surface // νp* over (ν, η)
	gpg *interp.Surface // Gp*/G over (ν, η)
	eze *interp.Curve   // Ez*/E over ηz
	gzg *interp.Curve   // Gz*/G over ηz
}

// Init fits the interpolating splines to the five reference tables
func (o *Plate) Init() (err error) {
	o.epe, err = interp.NewSurface(NuAxis, EtaAxis, EpE, GridDegree, GridDegree)
	if err != nil {
		return chk.Err("cannot fit Ep*/E table: %v", err)
	}
	o.nup, err = interp.NewSurface(NuAxis, EtaAxis, Nup, GridDegree, GridDegree)
	if err != nil {
		return chk.Err("cannot fit νp* table: %v", err)
	}
	o.gpg, err = interp.NewSurface(NuAxis, EtaAxis, GpG, GridDegree, GridDegree)
	if err != nil {
		return chk.Err("cannot fit Gp*/G table: %v", err)
	}
	o.eze, err = interp.NewCurve(EtaZAxis, EzE, CurveDegree)
	if err != nil {
		return chk.Err("cannot fit Ez*/E table: %v", err)
	}
	o.gzg, err = interp.NewCurve(EtaZAxis, GzG, CurveDegree)
	if err != nil {
		return chk.Err("cannot fit Gz*/G table: %v", err)
	}
	return
}

// InPlane evaluates the three in-plane ratios at Poisson's ratio ν and
// ligament efficiency η
func (o *Plate) InPlane(ν, η float64) (epe, νp, gpg float64) {
	epe = o.epe.F(ν, η)
	νp = o.nup.F(ν, η)
	gpg = o.gpg.F(ν, η)
	return
}

// Transverse evaluates the two transverse ratios at transverse ligament
// efficiency ηz
func (o *Plate) Transverse(ηz float64) (eze, gzg float64) {
	eze = o.eze.F(ηz)
	gzg = o.gzg.F(ηz)
	return
}

// CheckRange returns a warning when the in-plane query leaves the rectangle
// covered by the tables. Evaluation outside proceeds by extrapolation of the
// boundary polynomials, but carries no backing from the literature
func (o *Plate) CheckRange(ν, η float64) error {
	if !o.epe.InRange(ν, η) {
		return chk.Err("query (ν=%g, η=%g) is outside the tabulated rectangle [%g,%g]×[%g,%g]; result is extrapolated",
			ν, η, o.epe.Xmin, o.epe.Xmax, o.epe.Ymin, o.epe.Ymax)
	}
	return nil
}

// CheckRangeZ returns a warning when ηz leaves the tabulated interval
func (o *Plate) CheckRangeZ(ηz float64) error {
	if !o.eze.InRange(ηz) {
		return chk.Err("query ηz=%g is outside the tabulated interval [%g,%g]; result is extrapolated",
			ηz, o.eze.Xmin, o.eze.Xmax)
	}
	return nil
}

// Calc computes all five ratios from a parameter set with keys "nu", "eta"
// and, optionally, "etaz" (defaulting to eta). Unknown keys are an error.
// warn reports out-of-range queries; when warn is not nil the results are
// extrapolated best-effort values
func (o *Plate) Calc(prms dbf.Params) (res *Props, warn error) {

	// default values
	ν := NuDefault
	η := EtaDefault
	ηz := math.NaN()

	// parameters
	for _, p := range prms {
		switch p.N {
		case "nu":
			ν = p.V
		case "eta":
			η = p.V
		case "etaz":
			ηz = p.V
		default:
			chk.Panic("parameter named %q is incorrect", p.N)
		}
	}
	if math.IsNaN(ηz) {
		ηz = η
	}

	// evaluate
	res = &Props{Nu: ν, Eta: η, EtaZ: ηz}
	res.EpE, res.Nup, res.GpG = o.InPlane(ν, η)
	res.EzE, res.GzG = o.Transverse(ηz)

	// range warnings
	warn = o.CheckRange(ν, η)
	if warn == nil {
		warn = o.CheckRangeZ(ηz)
	}
	return
}
