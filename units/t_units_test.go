// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_temp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("temp01")

	r, err := ToRankine(122, "F")
	if err != nil {
		tst.Errorf("ToRankine failed: %v\n", err)
		return
	}
	chk.Float64(tst, "122°F → °R", 1e-12, r, 581.67)

	k, _ := ToKelvin(0, "c")
	chk.Float64(tst, "0°C → K", 1e-12, k, 273.15)

	f, _ := ToFahrenheit(100, " C ")
	chk.Float64(tst, "100°C → °F", 1e-12, f, 212)

	c, _ := ToCelsius(491.67, "R")
	chk.Float64(tst, "491.67°R → °C", 1e-12, c, 0)

	// round trips through every token
	for _, tok := range []string{"C", "F", "K", "R"} {
		for _, v := range []float64{-40, 0, 60, 122, 300} {
			kk, err := ToKelvin(v, tok)
			if err != nil {
				tst.Errorf("ToKelvin failed: %v\n", err)
				return
			}
			var back float64
			switch tok {
			case "C":
				back, _ = ToCelsius(kk, "K")
			case "F":
				back, _ = ToFahrenheit(kk, "K")
			case "K":
				back = kk
			case "R":
				back, _ = ToRankine(kk, "K")
			}
			chk.Float64(tst, io.Sf("%s round trip @ %g", tok, v), 1e-9, back, v)
		}
	}
}

func Test_pres01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pres01")

	p, err := ToPsi(1, "atm")
	if err != nil {
		tst.Errorf("ToPsi failed: %v\n", err)
		return
	}
	chk.Float64(tst, "1 atm → psi", 1e-6, p, 14.6959488)

	p, _ = ToPsi(1, "bar")
	chk.Float64(tst, "1 bar → psi", 1e-6, p, 14.5037738)

	pa, _ := ToPascal(1, "kgf/cm2")
	chk.Float64(tst, "1 kgf/cm² → Pa", 1e-9, pa, 98066.5)

	b, _ := ToBar(760, "mmHg")
	chk.Float64(tst, "760 mmHg → bar", 1e-6, b, 1.01325)

	tokens := []string{"BAR", "PA", "KPA", "MPA", "ATM", "TORR", "MMHG", "KGF/CM2", "KGF/IN2", "PSI", "PSIA"}
	for _, tok := range tokens {
		for _, v := range []float64{1e-3, 1, 14.7, 5000} {
			psi, err := ToPsi(v, tok)
			if err != nil {
				tst.Errorf("ToPsi failed: %v\n", err)
				return
			}
			back, err := Convert(psi, "psi", tok)
			if err != nil {
				tst.Errorf("Convert failed: %v\n", err)
				return
			}
			chk.Float64(tst, io.Sf("%s round trip @ %g", tok, v), 1e-9*v, back, v)
		}
	}
}

func Test_invalid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invalid01")

	if _, err := ToRankine(1, "X"); !errors.Is(err, ErrInvalidUnit) {
		tst.Errorf("temperature token X should be invalid. err = %v\n", err)
	}
	if _, err := ToPsi(1, "inHg"); !errors.Is(err, ErrInvalidUnit) {
		tst.Errorf("pressure token inHg should be invalid. err = %v\n", err)
	}
	if _, err := Convert(1, "psi", ""); !errors.Is(err, ErrInvalidUnit) {
		tst.Errorf("empty token should be invalid. err = %v\n", err)
	}
	if _, err := Pressure(1, "F"); !errors.Is(err, ErrInvalidUnit) {
		tst.Errorf("F is not a pressure token. err = %v\n", err)
	}
}

func Test_tagged01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tagged01")

	t, err := Temperature(122, "F")
	if err != nil {
		tst.Errorf("Temperature failed: %v\n", err)
		return
	}
	chk.Float64(tst, "T [K]", 1e-9, float64(t), 323.15)
	chk.Float64(tst, "T [°F]", 1e-9, Fahrenheit(t), 122)
	chk.Float64(tst, "T [°R]", 1e-9, Rankine(t), 581.67)
	chk.Float64(tst, "FromFahrenheit", 1e-9, float64(FromFahrenheit(122)), float64(t))
	chk.Float64(tst, "FromRankine", 1e-9, float64(FromRankine(581.67)), float64(t))

	p, err := Pressure(5000, "psia")
	if err != nil {
		tst.Errorf("Pressure failed: %v\n", err)
		return
	}
	chk.Float64(tst, "p [psia]", 1e-9, Psia(p), 5000)
	chk.Float64(tst, "FromPsia", 1e-6, float64(FromPsia(5000)), float64(p))
}
