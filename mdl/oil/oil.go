// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package oil implements the oil-phase correlations of a black-oil fluid and the regime logic
// that freezes the bubble-point values used above Pb
//  References:
//   [1] Standing MB (1947) A pressure-volume-temperature correlation for mixtures of California
//       oils and gases. Drilling and Production Practice, API, 275-287
//   [2] Vasquez M and Beggs HD (1980) Correlations for fluid physical property prediction.
//       JPT, 32(6), 968-970
//   [3] Glaso O (1980) Generalized pressure-volume-temperature correlations. JPT, 32(5), 785-795
//   [4] Petrosky GE and Farshad FF (1993) Pressure-volume-temperature correlations for Gulf of
//       Mexico crude oils. SPE 26644
//   [5] Beggs HD and Robinson JR (1975) Estimating the viscosity of crude oil systems.
//       JPT, 27(9), 1140-1141
//   [6] Bergman DF and Sutton RP (2007) A consistent and accurate dead-oil-viscosity method.
//       SPE 110194
package oil

import (
	"fmt"
	"math"
	"sort"

	"github.com/cpmech/gopvt/mdl/fluid"
	"github.com/cpmech/gopvt/units"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/diff/fd"
)

// Data holds the sweep-wide constants used by the correlations
type Data struct {
	API float64 // API gravity
	Do  float64 // oil relative density
	Dg  float64 // gas relative density
	Dgn float64 // gas relative density normalised to 100 psig separator (Vasquez-Beggs)
	TF  float64 // temperature [°F]
	TR  float64 // temperature [°R]
}

// NewData collects the constants of a fluid
func NewData(fld *fluid.Fluid) Data {
	return Data{API: fld.API, Do: fld.Do, Dg: fld.Dg, Dgn: fld.Dgn(), TF: fld.TF(), TR: fld.TR()}
}

// Chain selects one correlation per oil property
type Chain struct {
	Rs  string // solution gas-oil ratio (P <= Pb)
	Pb  string // bubble-point pressure from Rsb (used only if Pb is not given)
	Bo  string // saturated formation volume factor
	Co  string // undersaturated compressibility
	Uod string // dead-oil viscosity
	Uob string // live-oil viscosity
	Uo  string // undersaturated viscosity
}

// DefaultChain returns the default correlations
func DefaultChain() Chain {
	return Chain{
		Rs:  "standing",
		Pb:  "standing",
		Bo:  "standing",
		Co:  "petrosky-farshad",
		Uod: "beggs-robinson",
		Uob: "beggs-robinson",
		Uo:  "beal-standing",
	}
}

// Names returns the available correlations for an oil property: rs, pb, bo, co, uod, uob or uo
func Names(property string) []string {
	switch property {
	case "rs":
		return sortedKeys(rsDb)
	case "pb":
		return sortedKeys(pbDb)
	case "bo":
		return sortedKeys(boDb)
	case "co":
		return sortedKeys(coDb)
	case "uod":
		return sortedKeys(uodDb)
	case "uob":
		return sortedKeys(uobDb)
	case "uo":
		return sortedKeys(uoDb)
	}
	return nil
}

// sortedKeys returns the names in a correlation database
func sortedKeys[T any](db map[string]T) (names []string) {
	for name := range db {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// lookup finds a correlation in a database
func lookup[T any](db map[string]T, property, name string) (fcn T, err error) {
	fcn, ok := db[name]
	if !ok {
		err = chk.Err("correlation %q is not available in 'oil %s' database", name, property)
	}
	return
}

// Props holds the oil properties at one pressure
type Props struct {
	Regime fluid.Regime // regime
	Rs     float64      // solution gas-oil ratio [scf/STB]
	Bo     float64      // formation volume factor [bbl/STB]
	Co     float64      // compressibility [1/psia]; zero if saturated (see SaturatedCo)
	RhoO   float64      // density [lb/ft³]
	Uo     float64      // viscosity [cP]
}

// Model computes oil properties with a chain of correlations. The bubble-point values are
// computed once by New and reused for every pressure
type Model struct {

	// input
	Fld   fluid.Fluid // fluid; Pb is set if computed from Rsb
	Chain Chain       // correlations
	Data  Data        // constants

	// values at the bubble point
	Pb    float64 // bubble-point pressure [psia]
	Rsb   float64 // Rs at Pb [scf/STB]
	Bob   float64 // Bo at Pb [bbl/STB]
	RhoOb float64 // density at Pb [lb/ft³]
	Uod   float64 // dead-oil viscosity [cP]
	Uob   float64 // live-oil viscosity at Pb [cP]

	// correlations
	rs  RsFunc
	bo  BoFunc
	co  CoFunc
	uob UobFunc
	uo  UoFunc
}

// New allocates a new oil model. Empty names in chain are replaced by the defaults
func New(fld *fluid.Fluid, chain Chain) (o *Model, err error) {

	// fluid
	if err = fld.Validate(); err != nil {
		return
	}
	def := DefaultChain()
	fill := func(s *string, d string) {
		if *s == "" {
			*s = d
		}
	}
	fill(&chain.Rs, def.Rs)
	fill(&chain.Pb, def.Pb)
	fill(&chain.Bo, def.Bo)
	fill(&chain.Co, def.Co)
	fill(&chain.Uod, def.Uod)
	fill(&chain.Uob, def.Uob)
	fill(&chain.Uo, def.Uo)
	o = &Model{Fld: *fld, Chain: chain, Data: NewData(fld)}

	// correlations
	if o.rs, err = lookup(rsDb, "rs", chain.Rs); err != nil {
		return nil, err
	}
	if o.bo, err = lookup(boDb, "bo", chain.Bo); err != nil {
		return nil, err
	}
	if o.co, err = lookup(coDb, "co", chain.Co); err != nil {
		return nil, err
	}
	if o.uob, err = lookup(uobDb, "uob", chain.Uob); err != nil {
		return nil, err
	}
	if o.uo, err = lookup(uoDb, "uo", chain.Uo); err != nil {
		return nil, err
	}
	uod, err := lookup(uodDb, "uod", chain.Uod)
	if err != nil {
		return nil, err
	}
	pbf, err := lookup(pbDb, "pb", chain.Pb)
	if err != nil {
		return nil, err
	}

	// bubble-point pressure
	o.Pb = fld.PbPsia()
	if fld.Pb == 0 {
		if o.Pb, err = pbf(&o.Data, fld.Rsb); err != nil {
			return nil, err
		}
		o.Fld.Pb = units.FromPsia(o.Pb)
	}
	if o.Pb <= 0 {
		return nil, fmt.Errorf("%w: Pb = %g", fluid.ErrInvalidRegime, o.Pb)
	}

	// values at the bubble point
	if o.Rsb, err = o.rs(&o.Data, o.Pb); err != nil {
		return nil, fmt.Errorf("Rsb: %w", err)
	}
	if o.Bob, err = o.bo(&o.Data, o.Rsb); err != nil {
		return nil, fmt.Errorf("Bob: %w", err)
	}
	if o.RhoOb, err = Density(&o.Data, o.Rsb, o.Bob); err != nil {
		return nil, fmt.Errorf("ρob: %w", err)
	}
	if o.Uod, err = uod(&o.Data); err != nil {
		return nil, fmt.Errorf("μod: %w", err)
	}
	if o.Uod <= 0 {
		return nil, invalid("dead-oil viscosity must be positive. μod = %g", o.Uod)
	}
	if o.Uob, err = o.uob(&o.Data, o.Rsb, o.Uod); err != nil {
		return nil, fmt.Errorf("μob: %w", err)
	}
	return
}

// Calc computes the oil properties at pressure p [psia]
func (o *Model) Calc(p float64) (res Props, err error) {
	if err = positive("oil", "p", p); err != nil {
		return
	}
	res.Regime = o.Fld.Regime(p)

	// saturated
	if res.Regime == fluid.Saturated {
		if res.Rs, err = o.rs(&o.Data, p); err != nil {
			return
		}
		if res.Bo, err = o.bo(&o.Data, res.Rs); err != nil {
			return
		}
		if res.RhoO, err = Density(&o.Data, res.Rs, res.Bo); err != nil {
			return
		}
		res.Uo, err = o.uob(&o.Data, res.Rs, o.Uod)
		return
	}

	// undersaturated
	res.Rs = o.Rsb
	if res.Co, err = o.co(&o.Data, &CoInput{P: p, Pb: o.Pb, Rsb: o.Rsb, RhoOb: o.RhoOb}); err != nil {
		return
	}
	res.Bo = BoUndersaturated(o.Bob, res.Co, p, o.Pb)
	res.RhoO = DensityUndersaturated(o.RhoOb, res.Co, p, o.Pb)
	res.Uo, err = o.uo(p, o.Pb, o.Uob)
	return
}

// SaturatedCo computes the isothermal compressibility of saturated oil [1/psia]
//   Co = -(1/Bo)・dBo/dP + (Bg/Bo)・dRs/dP
//  Input:
//   p  -- pressure [psia] <= Pb
//   bo -- oil FVF at p [bbl/STB]
//   bg -- gas FVF at p [bbl/scf]
//  Note: the derivatives of the selected Rs and Bo correlations are computed by central differences
func (o *Model) SaturatedCo(p, bo, bg float64) (co float64, err error) {
	if err = positive("saturated co", "p", p, "Bo", bo, "Bg", bg); err != nil {
		return
	}
	var ferr error
	rs := func(x float64) float64 {
		v, e := o.rs(&o.Data, x)
		if e != nil && ferr == nil {
			ferr = e
		}
		return v
	}
	bof := func(x float64) float64 {
		v, e := o.bo(&o.Data, rs(x))
		if e != nil && ferr == nil {
			ferr = e
		}
		return v
	}
	s := &fd.Settings{Formula: fd.Central, Step: 1e-4 * p}
	dRs := fd.Derivative(rs, p, s)
	dBo := fd.Derivative(bof, p, s)
	if ferr != nil {
		return 0, ferr
	}
	co = -dBo/bo + bg*dRs/bo
	if math.IsNaN(co) || math.IsInf(co, 0) {
		return 0, divzero("saturated co is not finite @ p = %g", p)
	}
	return
}

// positive checks that all (name, value) pairs have positive values
func positive(model string, pairs ...interface{}) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		v := pairs[i+1].(float64)
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s: %v must be positive. %v = %g", fluid.ErrInvalidPrecondition, model, pairs[i], pairs[i], v)
		}
	}
	return nil
}

// nonNegative checks that a value is not negative
func nonNegative(model, name string, v float64) error {
	if !(v >= 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s: %s must not be negative. %s = %g", fluid.ErrInvalidPrecondition, model, name, name, v)
	}
	return nil
}

// invalid returns an ErrInvalidPrecondition error
func invalid(msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", fluid.ErrInvalidPrecondition, fmt.Sprintf(msg, prm...))
}

// regime returns an ErrInvalidRegime error
func regime(msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", fluid.ErrInvalidRegime, fmt.Sprintf(msg, prm...))
}

// divzero returns an ErrDivisionByZero error
func divzero(msg string, prm ...interface{}) error {
	return fmt.Errorf("%w: %s", fluid.ErrDivisionByZero, fmt.Sprintf(msg, prm...))
}
