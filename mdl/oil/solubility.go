// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import (
	"math"
)

// RsFunc computes the solution gas-oil ratio Rs [scf/STB] at pressure p [psia] <= Pb
type RsFunc func(d *Data, p float64) (float64, error)

// PbFunc computes the bubble-point pressure [psia] from the solution gas-oil ratio at Pb [scf/STB]
type PbFunc func(d *Data, rsb float64) (float64, error)

// solubility correlations
var rsDb = map[string]RsFunc{
	"standing":         RsStanding,
	"vasquez-beggs":    RsVasquezBeggs,
	"glaso":            RsGlaso,
	"petrosky-farshad": RsPetrosky,
}

// bubble-point correlations
var pbDb = map[string]PbFunc{
	"standing":         PbStanding,
	"vasquez-beggs":    PbVasquezBeggs,
	"glaso":            PbGlaso,
	"petrosky-farshad": PbPetrosky,
}

// RsStanding implements Standing's correlation (T in °F)
//   Rs = dg・((P/18.2 + 1.4)・10^(0.0125・API - 0.00091・T))^(1/0.83)
func RsStanding(d *Data, p float64) (float64, error) {
	if err := positive("rs: standing", "p", p); err != nil {
		return 0, err
	}
	return d.Dg * math.Pow((p/18.2+1.4)*math.Pow(10, 0.0125*d.API-0.00091*d.TF), 1.0/0.83), nil
}

// PbStanding inverts RsStanding
//   Pb = 18.2・((Rsb/dg)^0.83・10^(0.00091・T - 0.0125・API) - 1.4)
func PbStanding(d *Data, rsb float64) (float64, error) {
	if err := positive("pb: standing", "Rsb", rsb); err != nil {
		return 0, err
	}
	return checkPb("standing", 18.2*(math.Pow(rsb/d.Dg, 0.83)*math.Pow(10, 0.00091*d.TF-0.0125*d.API)-1.4))
}

// vasquezBeggsRs returns the coefficients of the Vasquez-Beggs solubility correlation
func vasquezBeggsRs(api float64) (c1, c2, c3 float64) {
	if api <= 30 {
		return 0.0362, 1.0937, 25.7240
	}
	return 0.0178, 1.1870, 23.9310
}

// RsVasquezBeggs implements the correlation of Vasquez and Beggs (T in °R)
//   Rs = C1・dgn・P^C2・exp(C3・API/T)
func RsVasquezBeggs(d *Data, p float64) (float64, error) {
	if err := positive("rs: vasquez-beggs", "p", p); err != nil {
		return 0, err
	}
	c1, c2, c3 := vasquezBeggsRs(d.API)
	return c1 * d.Dgn * math.Pow(p, c2) * math.Exp(c3*d.API/d.TR), nil
}

// PbVasquezBeggs implements the bubble-point form of Vasquez and Beggs (T in °R)
//   Pb = ((C1・Rsb/dgn)・10^(-C3・API/T))^C2
func PbVasquezBeggs(d *Data, rsb float64) (float64, error) {
	if err := positive("pb: vasquez-beggs", "Rsb", rsb); err != nil {
		return 0, err
	}
	c1, c2, c3 := 56.18, 0.84246, 10.393
	if d.API <= 30 {
		c1, c2, c3 = 27.624, 0.914328, 11.172
	}
	return checkPb("vasquez-beggs", math.Pow(c1*rsb/d.Dgn*math.Pow(10, -c3*d.API/d.TR), c2))
}

// RsGlaso implements Glaso's correlation (T in °F)
//   a  = 2.8869 - (14.1811 - 3.3093・log10(P))^0.5
//   Rs = dg・(API^0.989/T^0.172・10^a)^1.2255
func RsGlaso(d *Data, p float64) (float64, error) {
	if err := positive("rs: glaso", "p", p); err != nil {
		return 0, err
	}
	disc := 14.1811 - 3.3093*math.Log10(p)
	if disc < 0 {
		return 0, invalid("rs: glaso: pressure too high. p = %g", p)
	}
	a := 2.8869 - math.Sqrt(disc)
	return d.Dg * math.Pow(math.Pow(d.API, 0.989)/math.Pow(d.TF, 0.172)*math.Pow(10, a), 1.2255), nil
}

// PbGlaso implements Glaso's bubble-point correlation (T in °F)
//   A = (Rsb/dg)^0.816・T^0.172/API^0.989
//   log10(Pb) = 1.7669 + 1.7447・log10(A) - 0.30208・log10(A)²
func PbGlaso(d *Data, rsb float64) (float64, error) {
	if err := positive("pb: glaso", "Rsb", rsb); err != nil {
		return 0, err
	}
	la := math.Log10(math.Pow(rsb/d.Dg, 0.816) * math.Pow(d.TF, 0.172) / math.Pow(d.API, 0.989))
	return checkPb("glaso", math.Pow(10, 1.7669+1.7447*la-0.30208*la*la))
}

// petroskyA computes the exponent of the Petrosky-Farshad correlations (T in °F)
func petroskyA(d *Data) float64 {
	return 7.916e-4*math.Pow(d.API, 1.541) - 4.561e-5*math.Pow(d.TF, 1.3911)
}

// RsPetrosky implements the correlation of Petrosky and Farshad (T in °F)
//   Rs = ((P/112.727 + 12.34)・dg^0.8439・10^a)^1.73184
func RsPetrosky(d *Data, p float64) (float64, error) {
	if err := positive("rs: petrosky-farshad", "p", p); err != nil {
		return 0, err
	}
	return math.Pow((p/112.727+12.34)*math.Pow(d.Dg, 0.8439)*math.Pow(10, petroskyA(d)), 1.73184), nil
}

// PbPetrosky inverts RsPetrosky
//   Pb = 112.727・Rsb^0.577421/(dg^0.8439・10^a) - 1391.051
func PbPetrosky(d *Data, rsb float64) (float64, error) {
	if err := positive("pb: petrosky-farshad", "Rsb", rsb); err != nil {
		return 0, err
	}
	return checkPb("petrosky-farshad", 112.727*math.Pow(rsb, 0.577421)/(math.Pow(d.Dg, 0.8439)*math.Pow(10, petroskyA(d)))-1391.051)
}

// checkPb checks the computed bubble-point pressure
func checkPb(name string, pb float64) (float64, error) {
	if pb <= 0 || math.IsNaN(pb) || math.IsInf(pb, 0) {
		return 0, regime("pb: %s: computed bubble-point pressure is not positive. Pb = %g", name, pb)
	}
	return pb, nil
}
