// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import "math"

// CoInput holds the data required by the undersaturated compressibility correlations
type CoInput struct {
	P     float64 // pressure [psia]
	Pb    float64 // bubble-point pressure [psia]
	Rsb   float64 // solution gas-oil ratio at Pb [scf/STB]
	RhoOb float64 // oil density at Pb [lb/ft³]
}

// CoFunc computes the isothermal compressibility of undersaturated oil [1/psia]
type CoFunc func(d *Data, in *CoInput) (float64, error)

// undersaturated compressibility correlations
var coDb = map[string]CoFunc{
	"petrosky-farshad": CoPetrosky,
	"vasquez-beggs":    CoVasquezBeggs,
	"standing":         CoStanding,
}

// CoPetrosky implements the correlation of Petrosky and Farshad (T in °F; evaluated at the actual P)
//   Co = 1.705e-7・Rsb^0.69357・dg^0.1885・API^0.3272・T^0.6729・P^-0.5906
func CoPetrosky(d *Data, in *CoInput) (float64, error) {
	if err := positive("co: petrosky-farshad", "p", in.P); err != nil {
		return 0, err
	}
	if err := nonNegative("co: petrosky-farshad", "Rsb", in.Rsb); err != nil {
		return 0, err
	}
	return 1.705e-7 * math.Pow(in.Rsb, 0.69357) * math.Pow(d.Dg, 0.1885) * math.Pow(d.API, 0.3272) *
		math.Pow(d.TF, 0.6729) * math.Pow(in.P, -0.5906), nil
}

// CoVasquezBeggs implements the correlation of Vasquez and Beggs (T in °F)
//   Co = (-1433 + 5・Rsb + 17.2・T - 1180・dgn + 12.61・API)/(1e5・P)
func CoVasquezBeggs(d *Data, in *CoInput) (float64, error) {
	if err := positive("co: vasquez-beggs", "p", in.P); err != nil {
		return 0, err
	}
	return (-1433.0 + 5.0*in.Rsb + 17.2*d.TF - 1180.0*d.Dgn + 12.61*d.API) / (1e5 * in.P), nil
}

// CoStanding implements Standing's correlation
//   Co = 1e-6・exp((ρob + 0.004347・(P - Pb) - 79.1)/(7.141e-4・(P - Pb) - 12.938))
func CoStanding(d *Data, in *CoInput) (float64, error) {
	if err := positive("co: standing", "ρob", in.RhoOb); err != nil {
		return 0, err
	}
	dp := in.P - in.Pb
	den := 7.141e-4*dp - 12.938
	if den == 0 {
		return 0, divzero("co: standing: P - Pb = %g", dp)
	}
	return 1e-6 * math.Exp((in.RhoOb+0.004347*dp-79.1)/den), nil
}
