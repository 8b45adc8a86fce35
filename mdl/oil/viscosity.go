// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oil

import "math"

// UodFunc computes the dead-oil viscosity [cP]
type UodFunc func(d *Data) (float64, error)

// UobFunc computes the live-oil (saturated) viscosity [cP] from Rs and the dead-oil viscosity
type UobFunc func(d *Data, rs, uod float64) (float64, error)

// UoFunc computes the undersaturated oil viscosity [cP] from the viscosity at Pb
type UoFunc func(p, pb, uob float64) (float64, error)

// dead-oil viscosity correlations
var uodDb = map[string]UodFunc{
	"beggs-robinson": UodBeggsRobinson,
	"beal-standing":  UodBealStanding,
	"bergman":        UodBergman,
}

// live-oil viscosity correlations
var uobDb = map[string]UobFunc{
	"beggs-robinson": UobBeggsRobinson,
	"standing":       UobStanding,
	"bergman":        UobBergman,
}

// undersaturated oil viscosity correlations
var uoDb = map[string]UoFunc{
	"beal-standing": UoBealStanding,
	"vasquez-beggs": UoVasquezBeggs,
	"bergman":       UoBergman,
}

// UodBeggsRobinson implements the dead-oil correlation of Beggs and Robinson (T in °F)
//   A = 10^(3.0324 - 0.02023・API)
//   μod = 10^(A・T^-1.163) - 1
func UodBeggsRobinson(d *Data) (float64, error) {
	if err := positive("uod: beggs-robinson", "T", d.TF); err != nil {
		return 0, err
	}
	A := math.Pow(10, 3.0324-0.02023*d.API)
	return math.Pow(10, A*math.Pow(d.TF, -1.163)) - 1.0, nil
}

// UodBealStanding implements Standing's fit of Beal's chart (T in °F)
//   μod = (0.32 + 1.8e7/API^4.53)・(360/(T + 200))^(10^(0.43 + 8.33/API))
func UodBealStanding(d *Data) (float64, error) {
	if err := positive("uod: beal-standing", "API", d.API); err != nil {
		return 0, err
	}
	A := math.Pow(10, 0.43+8.33/d.API)
	return (0.32 + 1.8e7/math.Pow(d.API, 4.53)) * math.Pow(360.0/(d.TF+200.0), A), nil
}

// UodBergman implements Bergman's dead-oil correlation (T in °F)
//   X = exp(22.33 - 0.194・API + 0.00033・API² - (3.2 - 0.0185・API)・ln(T + 310))
//   μod = exp(X) - 1
func UodBergman(d *Data) (float64, error) {
	if err := positive("uod: bergman", "T+310", d.TF+310.0); err != nil {
		return 0, err
	}
	api := d.API
	X := math.Exp(22.33 - 0.194*api + 0.00033*api*api - (3.2-0.0185*api)*math.Log(d.TF+310.0))
	return math.Exp(X) - 1.0, nil
}

// UobBeggsRobinson implements the live-oil correlation of Beggs and Robinson
//   a = 10.715・(Rs + 100)^-0.515
//   b = 5.44・(Rs + 150)^-0.338
//   μob = a・μod^b
func UobBeggsRobinson(d *Data, rs, uod float64) (float64, error) {
	if err := nonNegative("uob: beggs-robinson", "Rs", rs); err != nil {
		return 0, err
	}
	a := 10.715 * math.Pow(rs+100.0, -0.515)
	b := 5.44 * math.Pow(rs+150.0, -0.338)
	return a * math.Pow(uod, b), nil
}

// UobStanding implements the Chew-Connally correlation as fitted by Standing
//   a = 10^(Rs・(2.2e-7・Rs - 7.4e-4))
//   b = 0.68/10^(8.62e-5・Rs) + 0.25/10^(1.1e-3・Rs) + 0.062/10^(3.74e-3・Rs)
//   μob = a・μod^b
func UobStanding(d *Data, rs, uod float64) (float64, error) {
	if err := nonNegative("uob: standing", "Rs", rs); err != nil {
		return 0, err
	}
	a := math.Pow(10, rs*(2.2e-7*rs-7.4e-4))
	b := 0.68/math.Pow(10, 8.62e-5*rs) + 0.25/math.Pow(10, 1.1e-3*rs) + 0.062/math.Pow(10, 3.74e-3*rs)
	return a * math.Pow(uod, b), nil
}

// UobBergman implements Bergman's live-oil correlation
//   a = exp(4.768 - 0.8359・ln(Rs + 300))
//   b = 0.555 + 133.5/(Rs + 300)
//   μob = a・μod^b
func UobBergman(d *Data, rs, uod float64) (float64, error) {
	if err := nonNegative("uob: bergman", "Rs", rs); err != nil {
		return 0, err
	}
	a := math.Exp(4.768 - 0.8359*math.Log(rs+300.0))
	b := 0.555 + 133.5/(rs+300.0)
	return a * math.Pow(uod, b), nil
}

// UoBealStanding implements the undersaturated correlation of Beal as fitted by Standing
//   μo = μob + 0.001・(P - Pb)・(0.024・μob^1.6 + 0.038・μob^0.56)
func UoBealStanding(p, pb, uob float64) (float64, error) {
	if err := positive("uo: beal-standing", "μob", uob); err != nil {
		return 0, err
	}
	return uob + 0.001*(p-pb)*(0.024*math.Pow(uob, 1.6)+0.038*math.Pow(uob, 0.56)), nil
}

// UoVasquezBeggs implements the undersaturated correlation of Vasquez and Beggs
//   m  = 2.6・P^1.187・exp(-11.513 - 8.98e-5・P)
//   μo = μob・(P/Pb)^m
func UoVasquezBeggs(p, pb, uob float64) (float64, error) {
	if err := positive("uo: vasquez-beggs", "p", p, "Pb", pb); err != nil {
		return 0, err
	}
	m := 2.6 * math.Pow(p, 1.187) * math.Exp(-11.513-8.98e-5*p)
	return uob * math.Pow(p/pb, m), nil
}

// UoBergman implements Bergman's undersaturated correlation
//   α  = 6.5698e-7・ln(μob)² - 1.48211e-5・ln(μob) + 2.27877e-4
//   β  = 2.24623e-2・ln(μob) + 0.873204
//   μo = μob・exp(α・(P - Pb)^β)
func UoBergman(p, pb, uob float64) (float64, error) {
	if err := positive("uo: bergman", "μob", uob); err != nil {
		return 0, err
	}
	if p < pb {
		return 0, invalid("uo: bergman: P must be >= Pb. P = %g, Pb = %g", p, pb)
	}
	l := math.Log(uob)
	α := 6.5698e-7*l*l - 1.48211e-5*l + 2.27877e-4
	β := 2.24623e-2*l + 0.873204
	return uob * math.Exp(α*math.Pow(p-pb, β)), nil
}
