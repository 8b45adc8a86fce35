// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zfactor

import (
	"fmt"
	"math"

	"github.com/cpmech/gopvt/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// BrillBeggs implements the explicit correlation of Brill and Beggs [2]
//   A = 1.39・(Tpr - 0.92)^0.5 - 0.36・Tpr - 0.101
//   B = (0.62 - 0.23・Tpr)・Ppr + (0.066/(Tpr - 0.86) - 0.037)・Ppr² + 0.32・Ppr⁶ / 10^(9・(Tpr - 1))
//   C = 0.132 - 0.32・log10(Tpr)
//   D = 10^(0.3106 - 0.49・Tpr + 0.1824・Tpr²)
//   Z = A + (1 - A)・exp(-B) + C・Ppr^D
//  Note: Tpr must be greater than or equal to 0.92
type BrillBeggs struct{}

// add model to factory
func init() {
	allocators["brill-beggs"] = func() Model { return new(BrillBeggs) }
}

// Init initialises model
func (o *BrillBeggs) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("brill-beggs: parameter named %q is incorrect\n", prms[0].N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrillBeggs) GetPrms(example bool) dbf.Params {
	return nil
}

// Z computes the compressibility factor
func (o BrillBeggs) Z(ppr, tpr float64) (float64, error) {
	return brillBeggsZ(ppr, tpr)
}

// DzDppr computes ∂Z/∂Ppr
//   ∂Z/∂Ppr = -(1 - A)・exp(-B)・∂B/∂Ppr + C・D・Ppr^(D-1)
func (o BrillBeggs) DzDppr(ppr, tpr, z float64) (float64, error) {
	A, B, C, D, err := brillBeggsCoef(ppr, tpr)
	if err != nil {
		return 0, err
	}
	dBdp := (0.62 - 0.23*tpr) + 2.0*(0.066/(tpr-0.86)-0.037)*ppr + 6.0*0.32*math.Pow(ppr, 5)/math.Pow(10, 9.0*(tpr-1.0))
	return -(1.0-A)*math.Exp(-B)*dBdp + C*D*math.Pow(ppr, D-1.0), nil
}

// brillBeggsCoef computes the coefficients A, B, C and D
func brillBeggsCoef(ppr, tpr float64) (A, B, C, D float64, err error) {
	if err = checkReduced("brill-beggs", ppr, tpr); err != nil {
		return
	}
	if tpr == 0.86 {
		err = fmt.Errorf("%w: brill-beggs: Tpr = 0.86", fluid.ErrDivisionByZero)
		return
	}
	if tpr < 0.92 {
		err = fmt.Errorf("%w: brill-beggs: Tpr must be >= 0.92. Tpr = %g", fluid.ErrInvalidPrecondition, tpr)
		return
	}
	A = 1.39*math.Sqrt(tpr-0.92) - 0.36*tpr - 0.101
	B = (0.62-0.23*tpr)*ppr + (0.066/(tpr-0.86)-0.037)*ppr*ppr + 0.32*math.Pow(ppr, 6)/math.Pow(10, 9.0*(tpr-1.0))
	C = 0.132 - 0.32*math.Log10(tpr)
	D = math.Pow(10, 0.3106-0.49*tpr+0.1824*tpr*tpr)
	return
}

// brillBeggsZ evaluates Brill and Beggs' formula
func brillBeggsZ(ppr, tpr float64) (float64, error) {
	A, B, C, D, err := brillBeggsCoef(ppr, tpr)
	if err != nil {
		return 0, err
	}
	return A + (1.0-A)*math.Exp(-B) + C*math.Pow(ppr, D), nil
}
