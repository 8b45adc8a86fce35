// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gopvt/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_gas01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas01. ideal gas limits")

	// air at standard conditions
	rho, err := Density(fluid.Psc, fluid.Mair, 1.0, fluid.Tsc)
	if err != nil {
		tst.Errorf("Density failed: %v\n", err)
		return
	}
	io.Pforan("ρ(air) = %v lb/ft³\n", rho)
	chk.Float64(tst, "ρ(air)", 1e-4, rho, 0.0763)

	bg, err := FVF(fluid.Psc, 1.0, fluid.Tsc)
	if err != nil {
		tst.Errorf("FVF failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Bg @ sc", 1e-15, bg, 1.0)
	chk.Float64(tst, "Bg [bbl/scf]", 1e-15, FVFbbl(5.615), 1.0)

	// Cg = 1/p for an ideal gas
	cg, err := Compressibility(2.0, 650.0, 1.0, 0.0)
	if err != nil {
		tst.Errorf("Compressibility failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Cg(ideal)", 1e-15, cg, 1.0/1300.0)

	chk.Float64(tst, "Mg", 1e-12, MolecularWeight(0.84), 24.3264)
	dg, err := RelativeDensity(1.029, 0)
	if err != nil {
		tst.Errorf("RelativeDensity failed: %v\n", err)
		return
	}
	chk.Float64(tst, "dg", 1e-12, dg, 0.84)

	// preconditions
	if _, err = Density(0, 24, 0.9, 580); !errors.Is(err, fluid.ErrInvalidPrecondition) {
		tst.Errorf("p = 0 should fail. err = %v\n", err)
	}
	if _, err = FVF(1000, -1, 580); !errors.Is(err, fluid.ErrInvalidPrecondition) {
		tst.Errorf("Z < 0 should fail. err = %v\n", err)
	}
	if _, err = Compressibility(0, 650, 1, 0); !errors.Is(err, fluid.ErrInvalidPrecondition) {
		tst.Errorf("Ppr = 0 should fail. err = %v\n", err)
	}
}

func Test_gas02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gas02. viscosity")

	// dg = 0.84 @ 122 °F and 2000 psia (Papay Z)
	in := &ViscosityInput{
		TR:  581.67,
		Mg:  MolecularWeight(0.84),
		Dg:  0.84,
		Ppc: 654.7436,
		Tpc: 413.7496,
	}
	in.Ppr = 2000.0 / in.Ppc
	in.Tpr = in.TR / in.Tpc
	z := 0.7324
	var err error
	in.Rho, err = Density(2000, in.Mg, z, in.TR)
	if err != nil {
		tst.Errorf("Density failed: %v\n", err)
		return
	}

	res := make(map[string]float64)
	for _, name := range ViscosityNames() {
		mdl, err := NewViscosity(name)
		if err != nil {
			tst.Errorf("NewViscosity failed: %v\n", err)
			return
		}
		if err = mdl.Init(mdl.GetPrms(true)); err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}
		res[name], err = mdl.Ug(in)
		if err != nil {
			tst.Errorf("Ug failed: %v\n", err)
			return
		}
		io.Pforan("μg(%s) = %v cP\n", name, res[name])
	}
	chk.Float64(tst, "μg(lee)", 2e-4, res["lee"], 0.01829)
	if math.Abs(res["dempsey"]-res["lee"])/res["lee"] > 0.1 {
		tst.Errorf("Dempsey and Lee should agree within 10%%\n")
	}
	if math.Abs(res["sutton"]-res["lee"])/res["lee"] > 0.15 {
		tst.Errorf("Sutton and Lee should agree within 15%%\n")
	}

	// atmospheric viscosity
	u1, err := DempseyAtm(122, 0.84, 0, 0, 0)
	if err != nil {
		tst.Errorf("DempseyAtm failed: %v\n", err)
		return
	}
	chk.Float64(tst, "μ1", 1e-5, u1, 0.010528)
	u1co2, _ := DempseyAtm(122, 0.84, 0, 0.1, 0)
	if u1co2 <= u1 {
		tst.Errorf("CO2 should increase the atmospheric viscosity\n")
	}
	atm := new(Dempsey)
	if err = atm.Init([]*dbf.P{&dbf.P{N: "atm", V: 1}}); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	ua, _ := atm.Ug(in)
	chk.Float64(tst, "μ1 (atm flag)", 1e-15, ua, u1)

	if _, err = NewViscosity("carr"); err == nil {
		tst.Errorf("unknown model should fail\n")
	}
	if _, err = (Lee{}).Ug(&ViscosityInput{}); !errors.Is(err, fluid.ErrInvalidPrecondition) {
		tst.Errorf("empty input should fail. err = %v\n", err)
	}
}
