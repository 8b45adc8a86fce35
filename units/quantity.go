// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "gonum.org/v1/gonum/unit"

// Temperature returns the tagged temperature corresponding to v in 'from' units
func Temperature(v float64, from string) (unit.Temperature, error) {
	k, err := ToKelvin(v, from)
	if err != nil {
		return 0, err
	}
	return unit.Temperature(k) * unit.Kelvin, nil
}

// Pressure returns the tagged pressure corresponding to v in 'from' units
func Pressure(v float64, from string) (unit.Pressure, error) {
	pa, err := ToPascal(v, from)
	if err != nil {
		return 0, err
	}
	return unit.Pressure(pa) * unit.Pascal, nil
}

// FromFahrenheit returns the tagged temperature of v [°F]
func FromFahrenheit(v float64) unit.Temperature {
	return unit.Temperature((v + RankineF) / RankineRatio)
}

// FromRankine returns the tagged temperature of v [°R]
func FromRankine(v float64) unit.Temperature {
	return unit.Temperature(v / RankineRatio)
}

// FromPsia returns the tagged pressure of v [psia]
func FromPsia(v float64) unit.Pressure {
	return unit.Pressure(v * PaPerPsi)
}

// Fahrenheit returns t in °F
func Fahrenheit(t unit.Temperature) float64 {
	return float64(t)*RankineRatio - RankineF
}

// Rankine returns t in °R
func Rankine(t unit.Temperature) float64 {
	return float64(t) * RankineRatio
}

// Psia returns p in psia
func Psia(p unit.Pressure) float64 {
	return float64(p) / PaPerPsi
}
