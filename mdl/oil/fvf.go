// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import "math"

// BoFunc computes the saturated oil formation volume factor [bbl/STB] from Rs [scf/STB]
type BoFunc func(d *Data, rs float64) (float64, error)

// saturated FVF correlations
var boDb = map[string]BoFunc{
	"standing":         BoStanding,
	"vasquez-beggs":    BoVasquezBeggs,
	"glaso":            BoGlaso,
	"petrosky-farshad": BoPetrosky,
}

// BoStanding implements Standing's correlation (T in °F)
//   Bo = 0.9759 + 1.2e-4・(Rs・(dg/do)^0.5 + 1.25・T)^1.2
func BoStanding(d *Data, rs float64) (float64, error) {
	if err := nonNegative("bo: standing", "Rs", rs); err != nil {
		return 0, err
	}
	return 0.9759 + 1.2e-4*math.Pow(rs*math.Sqrt(d.Dg/d.Do)+1.25*d.TF, 1.2), nil
}

// BoVasquezBeggs implements the correlation of Vasquez and Beggs (T in °F)
//   Bo = 1 + C1・Rs + (T - 60)・(API/dgn)・(C2 + C3・Rs)
func BoVasquezBeggs(d *Data, rs float64) (float64, error) {
	if err := nonNegative("bo: vasquez-beggs", "Rs", rs); err != nil {
		return 0, err
	}
	c1, c2, c3 := 4.670e-4, 1.100e-5, 1.337e-9
	if d.API <= 30 {
		c1, c2, c3 = 4.677e-4, 1.751e-5, -1.811e-8
	}
	return 1.0 + c1*rs + (d.TF-60.0)*(d.API/d.Dgn)*(c2+c3*rs), nil
}

// BoGlaso implements Glaso's correlation (T in °F)
//   Bob* = Rs・(dg/do)^0.526 + 0.968・T
//   A    = -6.58511 + 2.91329・log10(Bob*) - 0.27683・log10(Bob*)²
//   Bo   = 1 + 10^A
func BoGlaso(d *Data, rs float64) (float64, error) {
	if err := nonNegative("bo: glaso", "Rs", rs); err != nil {
		return 0, err
	}
	b := rs*math.Pow(d.Dg/d.Do, 0.526) + 0.968*d.TF
	if b <= 0 {
		return 0, invalid("bo: glaso: Bob* must be positive. Bob* = %g", b)
	}
	lb := math.Log10(b)
	return 1.0 + math.Pow(10, -6.58511+2.91329*lb-0.27683*lb*lb), nil
}

// BoPetrosky implements the correlation of Petrosky and Farshad (T in °F)
//   Bo = 1.0113 + 7.2046e-5・(Rs^0.3738・dg^0.2914/do^0.6265 + 0.24626・T^0.5371)^3.0936
func BoPetrosky(d *Data, rs float64) (float64, error) {
	if err := nonNegative("bo: petrosky-farshad", "Rs", rs); err != nil {
		return 0, err
	}
	x := math.Pow(rs, 0.3738)*math.Pow(d.Dg, 0.2914)/math.Pow(d.Do, 0.6265) + 0.24626*math.Pow(d.TF, 0.5371)
	return 1.0113 + 7.2046e-5*math.Pow(x, 3.0936), nil
}

// BoUndersaturated computes the oil FVF above the bubble point
//   Bo = Bob・exp(-Co・(P - Pb))
func BoUndersaturated(bob, co, p, pb float64) float64 {
	return bob * math.Exp(-co*(p-pb))
}

// Density computes the density of saturated oil [lb/ft³]
//   ρo = (62.4・do + 0.0136・Rs・dg)/Bo
func Density(d *Data, rs, bo float64) (float64, error) {
	if err := positive("oil density", "Bo", bo); err != nil {
		return 0, err
	}
	return (62.4*d.Do + 0.0136*rs*d.Dg) / bo, nil
}

// DensityUndersaturated computes the oil density above the bubble point
//   ρo = ρob・exp(Co・(P - Pb))
func DensityUndersaturated(rhoOb, co, p, pb float64) float64 {
	return rhoOb * math.Exp(co*(p-pb))
}
