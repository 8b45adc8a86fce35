// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_fld01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld01")

	var fld Fluid
	err := fld.Init(fld.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	io.Pforan("API = %v\n", fld.API)
	chk.Float64(tst, "API", 1e-12, fld.API, 141.5/0.86-131.5)
	chk.Float64(tst, "T [°F]", 1e-9, fld.TF(), 122)
	chk.Float64(tst, "T [°R]", 1e-9, fld.TR(), 581.67)
	chk.Float64(tst, "Pb", 1e-9, fld.PbPsia(), 5000)
	chk.Float64(tst, "Mg", 1e-12, fld.Mg(), 28.96*0.84)

	// normalised gas gravity: Psep < 114.7 reduces dg
	if fld.Dgn() >= fld.Dg {
		tst.Errorf("dgn should be smaller than dg for Psep = 100 psia. %g >= %g\n", fld.Dgn(), fld.Dg)
	}

	// current parameters reproduce the fluid
	var cpy Fluid
	err = cpy.Init(fld.GetPrms(false))
	if err != nil {
		tst.Errorf("Init with current parameters failed: %v\n", err)
		return
	}
	chk.Float64(tst, "copy: API", 1e-12, cpy.API, fld.API)
	chk.Float64(tst, "copy: T", 1e-9, cpy.TF(), fld.TF())
	chk.Float64(tst, "copy: Pb", 1e-9, cpy.PbPsia(), fld.PbPsia())
}

func Test_fld02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld02. API ↔ do")

	for _, do := range []float64{0.6, 0.75, 0.86, 0.92, 1.0, 1.05} {
		api, err := APIFromDo(do)
		if err != nil {
			tst.Errorf("APIFromDo failed: %v\n", err)
			return
		}
		back, err := DoFromAPI(api)
		if err != nil {
			tst.Errorf("DoFromAPI failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("do=%g", do), 1e-9, back, do)
	}
	api, _ := APIFromDo(1.0)
	chk.Float64(tst, "water", 1e-12, api, 10)

	if _, err := APIFromDo(0); !errors.Is(err, ErrInvalidPrecondition) {
		tst.Errorf("do = 0 should fail with ErrInvalidPrecondition. err = %v\n", err)
	}
	if _, err := DoFromAPI(-200); !errors.Is(err, ErrInvalidPrecondition) {
		tst.Errorf("API = -200 should fail with ErrInvalidPrecondition. err = %v\n", err)
	}
}

func Test_fld03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld03. regime")

	var fld Fluid
	err := fld.Init(fld.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	pb := fld.PbPsia()
	if fld.Regime(pb) != Saturated {
		tst.Errorf("P = Pb must be saturated\n")
	}
	if fld.Regime(pb-1e-6) != Saturated {
		tst.Errorf("P < Pb must be saturated\n")
	}
	if fld.Regime(pb+1e-3) != Undersaturated {
		tst.Errorf("P > Pb must be undersaturated\n")
	}
	chk.String(tst, Saturated.String(), "saturated")
	chk.String(tst, Undersaturated.String(), "undersaturated")
}

func Test_fld04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fld04. invalid data")

	var fld Fluid
	err := fld.Init([]*dbf.P{&dbf.P{N: "dg", V: 0.84}, &dbf.P{N: "T", V: 122}, &dbf.P{N: "pb", V: 5000}})
	if !errors.Is(err, ErrInvalidPrecondition) {
		tst.Errorf("missing API/do should fail. err = %v\n", err)
	}

	err = fld.Init([]*dbf.P{&dbf.P{N: "do", V: 0.86}, &dbf.P{N: "dg", V: 0.84}, &dbf.P{N: "T", V: 122}, &dbf.P{N: "pb", V: 0}})
	if !errors.Is(err, ErrInvalidRegime) {
		tst.Errorf("Pb = 0 without Rsb should fail with ErrInvalidRegime. err = %v\n", err)
	}

	err = fld.Init([]*dbf.P{&dbf.P{N: "do", V: 0.86}, &dbf.P{N: "dg", V: -1}, &dbf.P{N: "T", V: 122}, &dbf.P{N: "pb", V: 5000}})
	if !errors.Is(err, ErrInvalidPrecondition) {
		tst.Errorf("dg < 0 should fail. err = %v\n", err)
	}

	err = fld.Init([]*dbf.P{&dbf.P{N: "visc", V: 1}})
	if err == nil {
		tst.Errorf("unknown parameter should fail\n")
	}

	fld = Fluid{}
	err = fld.Init([]*dbf.P{&dbf.P{N: "api", V: 32}, &dbf.P{N: "dg", V: 0.7}, &dbf.P{N: "T", V: 180}, &dbf.P{N: "rsb", V: 600}})
	if err != nil {
		tst.Errorf("Rsb instead of Pb should be accepted: %v\n", err)
	}
}
