// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements the gas-phase properties of a black-oil fluid: density, formation
// volume factor, isothermal compressibility and viscosity. Field units are used throughout
//  References:
//   [1] Lee AL, Gonzalez MH and Eakin BE (1966) The viscosity of natural gases. JPT, 18(8), 997-1000
//   [2] Dempsey JR (1965) Computer routine treats gas viscosity as a variable. Oil and Gas
//       Journal, 63(32), 141-143
//   [3] Sutton RP (2007) Fundamental PVT calculations for associated and gas/condensate
//       natural-gas systems. SPE Reservoir Evaluation & Engineering, 10(3), 270-284
//   [4] Mattar L, Brar GS and Aziz K (1975) Compressibility of natural gases. JCPT, 14(4)
package gas

import (
	"fmt"
	"math"

	"github.com/cpmech/gopvt/mdl/fluid"
)

// RhoAir is the density of air at standard conditions [kg/m³]
const RhoAir = 1.225

// MolecularWeight computes the apparent molecular weight of a gas [lb/lbmol]
func MolecularWeight(dg float64) float64 {
	return fluid.Mair * dg
}

// RelativeDensity computes the gas relative density from gas and air densities given in the
// same units. If rhoAir <= 0, RhoAir [kg/m³] is used
func RelativeDensity(rhoGas, rhoAir float64) (float64, error) {
	if rhoAir <= 0 {
		rhoAir = RhoAir
	}
	if rhoGas <= 0 {
		return 0, fmt.Errorf("%w: gas density must be positive. rho = %g", fluid.ErrInvalidPrecondition, rhoGas)
	}
	return rhoGas / rhoAir, nil
}

// Density computes the gas density from the real-gas law
//   ρg = P・Mg / (Z・R・T)
//  Input:
//   p  -- pressure [psia]
//   mg -- molecular weight [lb/lbmol]
//   z  -- compressibility factor
//   tR -- temperature [°R]
//  Output:
//   ρg -- density [lb/ft³]
func Density(p, mg, z, tR float64) (float64, error) {
	if p <= 0 || mg <= 0 || z <= 0 || tR <= 0 {
		return 0, fmt.Errorf("%w: gas density: p, Mg, Z and T must be positive. p=%g Mg=%g Z=%g T=%g",
			fluid.ErrInvalidPrecondition, p, mg, z, tR)
	}
	return p * mg / (z * fluid.Rgas * tR), nil
}

// FVF computes the gas formation volume factor [ft³/scf]
//   Bg = (Psc/Tsc)・Z・T / P
func FVF(p, z, tR float64) (float64, error) {
	if p <= 0 || z <= 0 || tR <= 0 {
		return 0, fmt.Errorf("%w: gas FVF: p, Z and T must be positive. p=%g Z=%g T=%g",
			fluid.ErrInvalidPrecondition, p, z, tR)
	}
	return (fluid.Psc / fluid.Tsc) * z * tR / p, nil
}

// FVFbbl converts Bg from [ft³/scf] to [bbl/scf]
func FVFbbl(bg float64) float64 {
	return bg / fluid.BblFt
}

// Compressibility computes the gas isothermal compressibility [1/psia] [4]
//   Cpr = 1/Ppr - (1/Z)・∂Z/∂Ppr
//   Cg  = Cpr / Ppc
func Compressibility(ppr, ppc, z, dzdppr float64) (float64, error) {
	if ppr <= 0 || ppc <= 0 || z <= 0 {
		return 0, fmt.Errorf("%w: gas compressibility: Ppr, Ppc and Z must be positive. Ppr=%g Ppc=%g Z=%g",
			fluid.ErrInvalidPrecondition, ppr, ppc, z)
	}
	cg := (1.0/ppr - dzdppr/z) / ppc
	if math.IsNaN(cg) || math.IsInf(cg, 0) {
		return 0, fmt.Errorf("%w: gas compressibility is not finite", fluid.ErrDivisionByZero)
	}
	return cg, nil
}
