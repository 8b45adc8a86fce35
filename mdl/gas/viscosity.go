// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gopvt/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ViscosityInput holds the data required by the gas viscosity models
type ViscosityInput struct {
	Rho float64 // gas density [lb/ft³]
	TR  float64 // temperature [°R]
	Mg  float64 // molecular weight [lb/lbmol]
	Dg  float64 // relative density [-]
	Ppr float64 // pseudo-reduced pressure [-]
	Tpr float64 // pseudo-reduced temperature [-]
	Ppc float64 // pseudo-critical pressure [psia]
	Tpc float64 // pseudo-critical temperature [°R]

	// non-hydrocarbon mole fractions
	Yn2, Yco2, Yh2s float64
}

// Viscosity defines gas viscosity models
type Viscosity interface {
	Init(prms dbf.Params) error             // initialises model
	GetPrms(example bool) dbf.Params        // gets (an example) of parameters
	Ug(in *ViscosityInput) (float64, error) // computes the viscosity [cP]
}

// NewViscosity returns a new gas viscosity model
func NewViscosity(name string) (model Viscosity, err error) {
	allocator, ok := viscAllocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'gas viscosity' database", name)
	}
	return allocator(), nil
}

// ViscosityNames returns the names of all viscosity models
func ViscosityNames() (names []string) {
	for name := range viscAllocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// viscAllocators holds all available viscosity models
var viscAllocators = map[string]func() Viscosity{
	"lee":     func() Viscosity { return new(Lee) },
	"dempsey": func() Viscosity { return new(Dempsey) },
	"sutton":  func() Viscosity { return new(Sutton) },
}

// noPrms fails if any parameter is given
func noPrms(name string, prms dbf.Params) error {
	if len(prms) > 0 {
		return chk.Err("%s: parameter named %q is incorrect\n", name, prms[0].N)
	}
	return nil
}

// Lee implements the correlation of Lee, Gonzalez and Eakin [1]
//   X = 3.448 + 986.4/T + 0.01009・Mg
//   Y = 2.4 - 0.2・X
//   K = (9.379 + 0.016・Mg)・T^1.5 / (209.2 + 19.26・Mg + T)
//   μg = 1e-4・K・exp(X・(ρg/62.4)^Y)
type Lee struct{}

// Init initialises model
func (o *Lee) Init(prms dbf.Params) error { return noPrms("lee", prms) }

// GetPrms gets (an example) of parameters
func (o Lee) GetPrms(example bool) dbf.Params { return nil }

// Ug computes the viscosity
func (o Lee) Ug(in *ViscosityInput) (float64, error) {
	if in.TR <= 0 || in.Mg <= 0 || in.Rho <= 0 {
		return 0, fmt.Errorf("%w: lee: T, Mg and ρg must be positive. T=%g Mg=%g ρg=%g",
			fluid.ErrInvalidPrecondition, in.TR, in.Mg, in.Rho)
	}
	X := 3.448 + 986.4/in.TR + 0.01009*in.Mg
	Y := 2.4 - 0.2*X
	K := (9.379 + 0.0160*in.Mg) * math.Pow(in.TR, 1.5) / (209.2 + 19.26*in.Mg + in.TR)
	return 1e-4 * K * math.Exp(X*math.Pow(in.Rho/fluid.RhoW, Y)), nil
}

// coefficients of Dempsey's fit of the Carr-Kobayashi-Burrows chart
var dempseyA = [...]float64{
	-2.46211820, 2.97054714, -0.286264054, 0.00805420522,
	2.80860949, -3.49803305, 0.360373020, -0.0104432413,
	-0.793385684, 1.39643306, -0.149144925, 0.00441015512,
	0.0839387178, -0.186408848, 0.0203367881, -0.000609579263,
}

// Dempsey implements Dempsey's method [2]: the viscosity at atmospheric pressure (corrected for
// N2, CO2 and H2S) is multiplied by the ratio μg/μ1 obtained from
//   ln(Tpr・μg/μ1) = Σ_{i=0..3} Tpr^i・(a_{4i} + a_{4i+1}・Ppr + a_{4i+2}・Ppr² + a_{4i+3}・Ppr³)
type Dempsey struct {
	Atm bool // return only the viscosity at atmospheric pressure
}

// Init initialises model
func (o *Dempsey) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "atm":
			o.Atm = p.V > 0
		default:
			return chk.Err("dempsey: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Dempsey) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{&dbf.P{N: "atm", V: 0}}
	}
	var atm float64
	if o.Atm {
		atm = 1
	}
	return []*dbf.P{&dbf.P{N: "atm", V: atm}}
}

// Ug computes the viscosity
func (o Dempsey) Ug(in *ViscosityInput) (float64, error) {
	if in.TR <= 0 || in.Dg <= 0 {
		return 0, fmt.Errorf("%w: dempsey: T and dg must be positive. T=%g dg=%g", fluid.ErrInvalidPrecondition, in.TR, in.Dg)
	}
	u1, err := DempseyAtm(in.TR-459.67, in.Dg, in.Yn2, in.Yco2, in.Yh2s)
	if err != nil || o.Atm {
		return u1, err
	}
	if in.Ppr <= 0 || in.Tpr <= 0 {
		return 0, fmt.Errorf("%w: dempsey: Ppr and Tpr must be positive. Ppr=%g Tpr=%g", fluid.ErrInvalidPrecondition, in.Ppr, in.Tpr)
	}
	a := dempseyA
	p, t := in.Ppr, in.Tpr
	var sum, ti float64 = 0, 1
	for i := 0; i < 4; i++ {
		sum += ti * (a[4*i] + a[4*i+1]*p + a[4*i+2]*p*p + a[4*i+3]*p*p*p)
		ti *= t
	}
	return u1 * math.Exp(sum) / t, nil
}

// DempseyAtm computes the gas viscosity at atmospheric pressure [cP]
//  Input:
//   tF -- temperature [°F]
//   dg -- relative density
//   yn2, yco2, yh2s -- mole fractions of non-hydrocarbon components
func DempseyAtm(tF, dg, yn2, yco2, yh2s float64) (float64, error) {
	if dg <= 0 {
		return 0, fmt.Errorf("%w: dempsey: dg must be positive. dg = %g", fluid.ErrInvalidPrecondition, dg)
	}
	ld := math.Log10(dg)
	u := (1.709e-5-2.062e-6*dg)*tF + 8.188e-3 - 6.15e-3*ld
	u += yn2 * (8.43e-3*ld + 9.59e-3)
	u += yco2 * (9.08e-3*ld + 6.24e-3)
	u += yh2s * (8.49e-3*ld + 3.73e-3)
	return u, nil
}

// Sutton implements Sutton's correlation [3] (ρg in g/cm³)
//   X = 3.47 + 1588/T + 0.0009・Mg
//   Y = 1.66378 - 0.04679・X
//   ξ = 0.949・(Tpc/(Mg³・Ppc⁴))^(1/6)
//   μg = 1e-4・[0.807・Tpr^0.618 - 0.357・exp(-0.449・Tpr) + 0.34・exp(-4.058・Tpr) + 0.018]/ξ・exp(X・ρg^Y)
type Sutton struct{}

// lb/ft³ to g/cm³
const lbft3ToGcm3 = 0.01601846337

// Init initialises model
func (o *Sutton) Init(prms dbf.Params) error { return noPrms("sutton", prms) }

// GetPrms gets (an example) of parameters
func (o Sutton) GetPrms(example bool) dbf.Params { return nil }

// Ug computes the viscosity
func (o Sutton) Ug(in *ViscosityInput) (float64, error) {
	if in.TR <= 0 || in.Mg <= 0 || in.Rho <= 0 || in.Tpr <= 0 || in.Tpc <= 0 || in.Ppc <= 0 {
		return 0, fmt.Errorf("%w: sutton: T, Mg, ρg, Tpr, Tpc and Ppc must be positive", fluid.ErrInvalidPrecondition)
	}
	X := 3.47 + 1588.0/in.TR + 0.0009*in.Mg
	Y := 1.66378 - 0.04679*X
	ξ := 0.949 * math.Pow(in.Tpc/(math.Pow(in.Mg, 3)*math.Pow(in.Ppc, 4)), 1.0/6.0)
	t := in.Tpr
	u1 := 1e-4 * (0.807*math.Pow(t, 0.618) - 0.357*math.Exp(-0.449*t) + 0.340*math.Exp(-4.058*t) + 0.018) / ξ
	return u1 * math.Exp(X*math.Pow(in.Rho*lbft3ToGcm3, Y)), nil
}
