// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fluid holds the description of a black-oil fluid (sweep-wide constants) and the
// state record produced for each pressure of a PVT sweep
//  Field units are used throughout:
//   pressure [psia], temperature [°F] or [°R], density [lb/ft³], viscosity [cP]
//   Rs [scf/STB], Bo [bbl/STB], Bg [ft³/scf], compressibility [1/psia], Mg [lb/lbmol]
package fluid

import (
	"fmt"
	"math"
	"strings"

	"github.com/cpmech/gopvt/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/unit"
)

// constants
const (
	Psc   = 14.696  // standard pressure [psia]
	Tsc   = 519.67  // standard temperature [°R] (60 °F)
	Mair  = 28.96   // molecular weight of air [lb/lbmol]
	Rgas  = 10.7316 // universal gas constant [psia·ft³/(lbmol·°R)]
	RhoW  = 62.4    // density of water at standard conditions [lb/ft³]
	BblFt = 5.615   // ft³ per bbl
)

// Fluid holds the constants of a black-oil fluid that remain fixed during a sweep
type Fluid struct {

	// oil and gas
	API float64 // oil API gravity [°API]
	Do  float64 // oil relative density (water = 1) [-]
	Dg  float64 // gas relative density (air = 1) [-]

	// reservoir
	T   unit.Temperature // reservoir temperature
	Pb  unit.Pressure    // bubble-point pressure; zero if computed from Rsb
	Rsb float64          // solution gas-oil ratio at Pb [scf/STB]; used only when Pb is not given

	// separator (Vasquez-Beggs)
	Tsep unit.Temperature // separator temperature
	Psep unit.Pressure    // separator pressure

	// non-hydrocarbon mole fractions (Dempsey)
	Yn2, Yco2, Yh2s float64
}

// APIFromDo computes the API gravity from the oil relative density
func APIFromDo(do float64) (float64, error) {
	if do <= 0 {
		return 0, fmt.Errorf("%w: oil relative density must be positive. do = %g", ErrInvalidPrecondition, do)
	}
	return 141.5/do - 131.5, nil
}

// DoFromAPI computes the oil relative density from the API gravity
func DoFromAPI(api float64) (float64, error) {
	if api <= -131.5 {
		return 0, fmt.Errorf("%w: API gravity must be greater than -131.5. API = %g", ErrInvalidPrecondition, api)
	}
	return 141.5 / (api + 131.5), nil
}

// Init initialises this structure
//  Parameters (case-insensitive):
//   api or do, dg, T [°F], pb [psia], rsb [scf/STB], tsep [°F], psep [psia], yn2, yco2, yh2s
//  Note: when 'do' is given, API is computed from it; otherwise do is computed from API
func (o *Fluid) Init(prms dbf.Params) (err error) {
	var hasAPI, hasDo bool
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "api":
			o.API, hasAPI = p.V, true
		case "do":
			o.Do, hasDo = p.V, true
		case "dg":
			o.Dg = p.V
		case "t":
			o.T = units.FromFahrenheit(p.V)
		case "pb":
			o.Pb = units.FromPsia(p.V)
		case "rsb":
			o.Rsb = p.V
		case "tsep":
			o.Tsep = units.FromFahrenheit(p.V)
		case "psep":
			o.Psep = units.FromPsia(p.V)
		case "yn2":
			o.Yn2 = p.V
		case "yco2":
			o.Yco2 = p.V
		case "yh2s":
			o.Yh2s = p.V
		default:
			return chk.Err("fluid: parameter named %q is incorrect\n", p.N)
		}
	}
	switch {
	case hasDo:
		if o.API, err = APIFromDo(o.Do); err != nil {
			return
		}
	case hasAPI:
		if o.Do, err = DoFromAPI(o.API); err != nil {
			return
		}
	default:
		return fmt.Errorf("%w: either 'api' or 'do' must be given", ErrInvalidPrecondition)
	}
	return o.Validate()
}

// GetPrms gets (an example) of parameters
//  Input:
//   example -- returns example of parameters; othewise returs current parameters
func (o Fluid) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "do", V: 0.86},  // [-]
			&dbf.P{N: "dg", V: 0.84},  // [-]
			&dbf.P{N: "T", V: 122},    // [°F]
			&dbf.P{N: "pb", V: 5000},  // [psia]
			&dbf.P{N: "tsep", V: 80},  // [°F]
			&dbf.P{N: "psep", V: 100}, // [psia]
			&dbf.P{N: "yn2", V: 0},    // [-]
			&dbf.P{N: "yco2", V: 0},   // [-]
			&dbf.P{N: "yh2s", V: 0},   // [-]
		}
	}
	prms := []*dbf.P{
		&dbf.P{N: "do", V: o.Do},
		&dbf.P{N: "dg", V: o.Dg},
		&dbf.P{N: "T", V: o.TF()},
		&dbf.P{N: "tsep", V: units.Fahrenheit(o.Tsep)},
		&dbf.P{N: "psep", V: units.Psia(o.Psep)},
		&dbf.P{N: "yn2", V: o.Yn2},
		&dbf.P{N: "yco2", V: o.Yco2},
		&dbf.P{N: "yh2s", V: o.Yh2s},
	}
	if o.Pb > 0 {
		prms = append(prms, &dbf.P{N: "pb", V: o.PbPsia()})
	} else {
		prms = append(prms, &dbf.P{N: "rsb", V: o.Rsb})
	}
	return prms
}

// Validate checks the constants
func (o Fluid) Validate() error {
	if o.API <= 0 || o.Do <= 0 {
		return fmt.Errorf("%w: API and do must be positive. API = %g, do = %g", ErrInvalidPrecondition, o.API, o.Do)
	}
	if o.Dg <= 0 {
		return fmt.Errorf("%w: gas relative density must be positive. dg = %g", ErrInvalidPrecondition, o.Dg)
	}
	if o.T <= 0 {
		return fmt.Errorf("%w: absolute temperature must be positive. T = %g K", ErrInvalidPrecondition, float64(o.T))
	}
	if o.Pb < 0 || (o.Pb == 0 && o.Rsb <= 0) {
		return fmt.Errorf("%w: bubble-point pressure must be positive (or Rsb given). Pb = %g psia", ErrInvalidRegime, o.PbPsia())
	}
	for _, y := range []float64{o.Yn2, o.Yco2, o.Yh2s} {
		if y < 0 || y >= 1 {
			return fmt.Errorf("%w: mole fractions must be in [0,1). y = %g", ErrInvalidPrecondition, y)
		}
	}
	if o.Yn2+o.Yco2+o.Yh2s >= 1 {
		return fmt.Errorf("%w: sum of non-hydrocarbon mole fractions must be smaller than 1", ErrInvalidPrecondition)
	}
	return nil
}

// TF returns the reservoir temperature [°F]
func (o Fluid) TF() float64 { return units.Fahrenheit(o.T) }

// TR returns the reservoir temperature [°R]
func (o Fluid) TR() float64 { return units.Rankine(o.T) }

// PbPsia returns the bubble-point pressure [psia]
func (o Fluid) PbPsia() float64 { return units.Psia(o.Pb) }

// Mg returns the gas molecular weight [lb/lbmol]
func (o Fluid) Mg() float64 { return Mair * o.Dg }

// Dgn returns the gas relative density normalised to a separator pressure of 100 psig
// (Vasquez and Beggs). Without separator data, Dg is returned.
func (o Fluid) Dgn() float64 {
	psep := units.Psia(o.Psep)
	if psep <= 0 {
		return o.Dg
	}
	tsep := units.Fahrenheit(o.Tsep)
	return o.Dg * (1.0 + 5.912e-5*o.API*tsep*math.Log10(psep/114.7))
}

// Regime returns the regime at pressure p [psia]; p == Pb is saturated
//  Note: Pb is compared with a relative tolerance of 1e-12 to absorb the psia→Pa→psia round trip
func (o Fluid) Regime(p float64) Regime {
	if p <= o.PbPsia()*(1.0+1e-12) {
		return Saturated
	}
	return Undersaturated
}
