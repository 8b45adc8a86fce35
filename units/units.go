// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package units converts temperatures and pressures between the unit tokens found in PVT input
// files and provides tagged SI quantities (gonum/unit) used at package boundaries.
//  Temperature tokens: C, F, K, R
//  Pressure tokens:    BAR, PA, KPA, MPA, ATM, TORR, MMHG, KGF/CM2, KGF/IN2, PSI, PSIA
//  Tokens are case-insensitive and surrounding spaces are ignored.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUnit is returned when a unit token is not recognised
var ErrInvalidUnit = errors.New("units: invalid unit")

// exact conversion factors
const (
	PaPerPsi     = 6894.757293168361 // 1 lbf/in² in Pa
	PaPerBar     = 1e5               // 1 bar in Pa
	PaPerAtm     = 101325.0          // 1 atm in Pa
	PaPerTorr    = PaPerAtm / 760.0  // 1 torr in Pa
	PaPerMmHg    = 133.322387415     // 1 mmHg (conventional) in Pa
	PaPerKgfCm2  = 98066.5           // 1 kgf/cm² in Pa
	PaPerKgfIn2  = 9.80665 / 0.00064516
	KelvinOffset = 273.15 // K = °C + 273.15
	RankineRatio = 1.8    // °R = 1.8 K
	RankineF     = 459.67 // °R = °F + 459.67
)

// token normalises a unit token
func token(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// pascalsPer returns the number of pascals in one unit of the given pressure token
func pascalsPer(from string) (float64, error) {
	switch token(from) {
	case "PA":
		return 1, nil
	case "KPA":
		return 1e3, nil
	case "MPA":
		return 1e6, nil
	case "BAR":
		return PaPerBar, nil
	case "ATM":
		return PaPerAtm, nil
	case "TORR":
		return PaPerTorr, nil
	case "MMHG":
		return PaPerMmHg, nil
	case "KGF/CM2":
		return PaPerKgfCm2, nil
	case "KGF/IN2":
		return PaPerKgfIn2, nil
	case "PSI", "PSIA":
		return PaPerPsi, nil
	}
	return 0, fmt.Errorf("%w: pressure unit %q", ErrInvalidUnit, from)
}

// ToKelvin converts a temperature given in 'from' units to kelvin
func ToKelvin(v float64, from string) (float64, error) {
	switch token(from) {
	case "K":
		return v, nil
	case "C":
		return v + KelvinOffset, nil
	case "F":
		return (v + RankineF) / RankineRatio, nil
	case "R":
		return v / RankineRatio, nil
	}
	return 0, fmt.Errorf("%w: temperature unit %q", ErrInvalidUnit, from)
}

// ToRankine converts a temperature given in 'from' units to degrees Rankine
func ToRankine(v float64, from string) (float64, error) {
	k, err := ToKelvin(v, from)
	if err != nil {
		return 0, err
	}
	return k * RankineRatio, nil
}

// ToFahrenheit converts a temperature given in 'from' units to degrees Fahrenheit
func ToFahrenheit(v float64, from string) (float64, error) {
	r, err := ToRankine(v, from)
	if err != nil {
		return 0, err
	}
	return r - RankineF, nil
}

// ToCelsius converts a temperature given in 'from' units to degrees Celsius
func ToCelsius(v float64, from string) (float64, error) {
	k, err := ToKelvin(v, from)
	if err != nil {
		return 0, err
	}
	return k - KelvinOffset, nil
}

// ToPascal converts a pressure given in 'from' units to pascal
func ToPascal(v float64, from string) (float64, error) {
	f, err := pascalsPer(from)
	if err != nil {
		return 0, err
	}
	return v * f, nil
}

// ToPsi converts a pressure given in 'from' units to psi
func ToPsi(v float64, from string) (float64, error) {
	pa, err := ToPascal(v, from)
	if err != nil {
		return 0, err
	}
	return pa / PaPerPsi, nil
}

// ToBar converts a pressure given in 'from' units to bar
func ToBar(v float64, from string) (float64, error) {
	pa, err := ToPascal(v, from)
	if err != nil {
		return 0, err
	}
	return pa / PaPerBar, nil
}

// Convert converts a pressure from one token to another
func Convert(v float64, from, to string) (float64, error) {
	pa, err := ToPascal(v, from)
	if err != nil {
		return 0, err
	}
	f, err := pascalsPer(to)
	if err != nil {
		return 0, err
	}
	return pa / f, nil
}
