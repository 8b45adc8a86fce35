// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"github.com/cpmech/gopvt/units"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/unit"
)

// Regime indicates whether free gas exists (saturated) or all gas is dissolved (undersaturated)
type Regime int

// regimes
const (
	Saturated      Regime = iota // P <= Pb
	Undersaturated               // P > Pb
)

// String returns the name of the regime
func (o Regime) String() string {
	switch o {
	case Saturated:
		return "saturated"
	case Undersaturated:
		return "undersaturated"
	}
	return io.Sf("Regime(%d)", int(o))
}

// State holds all properties computed at one pressure. It is built once and not modified afterwards
type State struct {

	// conditions
	P      unit.Pressure    // pressure
	T      unit.Temperature // temperature
	Pb     unit.Pressure    // bubble-point pressure
	Regime Regime           // regime

	// oil
	Rs    float64 // solution gas-oil ratio [scf/STB]
	Rsb   float64 // solution gas-oil ratio at Pb [scf/STB]
	Bo    float64 // oil formation volume factor [bbl/STB]
	Bob   float64 // Bo at Pb [bbl/STB]
	Co    float64 // oil isothermal compressibility [1/psia]
	Uo    float64 // oil viscosity [cP]
	Uod   float64 // dead-oil viscosity [cP]
	Uob   float64 // live-oil viscosity at Pb [cP]
	RhoO  float64 // oil density [lb/ft³]
	RhoOb float64 // oil density at Pb [lb/ft³]

	// gas
	Z    float64 // compressibility factor [-]
	Ppr  float64 // pseudo-reduced pressure [-]
	Tpr  float64 // pseudo-reduced temperature [-]
	Ppc  float64 // pseudo-critical pressure [psia]
	Tpc  float64 // pseudo-critical temperature [°R]
	RhoG float64 // gas density [lb/ft³]
	Bg   float64 // gas formation volume factor [ft³/scf]
	Cg   float64 // gas isothermal compressibility [1/psia]
	Ug   float64 // gas viscosity [cP]
	Mg   float64 // gas molecular weight [lb/lbmol]
}

// Psia returns the pressure [psia]
func (o *State) Psia() float64 { return units.Psia(o.P) }

// PbPsia returns the bubble-point pressure [psia]
func (o *State) PbPsia() float64 { return units.Psia(o.Pb) }

// TF returns the temperature [°F]
func (o *State) TF() float64 { return units.Fahrenheit(o.T) }

// String returns a one-line summary of this state
func (o *State) String() string {
	return io.Sf("P=%g psia (%v): Rs=%g Bo=%g Co=%g Uo=%g RhoO=%g | Z=%g Bg=%g Cg=%g Ug=%g RhoG=%g",
		o.Psia(), o.Regime, o.Rs, o.Bo, o.Co, o.Uo, o.RhoO, o.Z, o.Bg, o.Cg, o.Ug, o.RhoG)
}
