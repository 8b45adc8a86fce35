// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zfactor

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// coefficients of Dranchuk and Abou-Kassem
var dakA = [...]float64{0.3265, -1.0700, -0.5339, 0.01569, -0.05165, 0.5475, -0.7361, 0.1844, 0.1056, 0.6134, 0.7210}

// DAK implements the 11-coefficient equation of state of Dranchuk and Abou-Kassem [4] solved
// for Z with the secant method
//   ρr = zc・Ppr / (Z・Tpr)
//   F(Z) = 1 + (A1 + A2/Tpr + A3/Tpr³ + A4/Tpr⁴ + A5/Tpr⁵)・ρr + (A6 + A7/Tpr + A8/Tpr²)・ρr²
//        - A9・(A7/Tpr + A8/Tpr²)・ρr⁵ + A10・(1 + A11・ρr²)・(ρr²/Tpr³)・exp(-A11・ρr²) - Z = 0
type DAK struct {
	Sol       Secant  // solver
	Zc        float64 // critical compressibility factor
	PapaySeed bool    // seed with Papay instead of Brill-Beggs
}

// add model to factory
func init() {
	allocators["dak"] = func() Model { return new(DAK) }
}

// Init initialises model
func (o *DAK) Init(prms dbf.Params) (err error) {
	o.Sol.SetDefault("dak", 50000)
	o.Sol.InDomain = func(z float64) bool { return z > 0 }
	o.Zc = 0.27
	for _, p := range prms {
		if o.Sol.setPrm(p) {
			continue
		}
		switch strings.ToLower(p.N) {
		case "zc":
			o.Zc = p.V
		case "papayseed":
			o.PapaySeed = p.V > 0
		default:
			return chk.Err("dak: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Zc <= 0 {
		return chk.Err("dak: zc must be positive. zc = %g\n", o.Zc)
	}
	return o.Sol.check()
}

// GetPrms gets (an example) of parameters
func (o DAK) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "pert", V: 1e-6},
			&dbf.P{N: "tol", V: 1e-11},
			&dbf.P{N: "maxit", V: 50000},
			&dbf.P{N: "zc", V: 0.27},
			&dbf.P{N: "papayseed", V: 0},
		}
	}
	return append(o.Sol.prms(), &dbf.P{N: "zc", V: o.Zc}, &dbf.P{N: "papayseed", V: b2f(o.PapaySeed)})
}

// Z computes the compressibility factor
func (o *DAK) Z(ppr, tpr float64) (float64, error) {
	if err := checkReduced("dak", ppr, tpr); err != nil {
		return 0, err
	}
	if o.Sol.MaxIt == 0 {
		if err := o.Init(nil); err != nil {
			return 0, err
		}
	}
	A := dakA
	t1, t2, t3 := 1.0/tpr, 1.0/(tpr*tpr), 1.0/(tpr*tpr*tpr)
	c1 := A[0] + A[1]*t1 + A[2]*t3 + A[3]*t3*t1 + A[4]*t3*t2
	c2 := A[5] + A[6]*t1 + A[7]*t2
	c3 := A[8] * (A[6]*t1 + A[7]*t2)
	F := func(z float64) float64 {
		r := o.Zc * ppr / (z * tpr)
		r2 := r * r
		return 1.0 + c1*r + c2*r2 - c3*r2*r2*r + A[9]*(1.0+A[10]*r2)*r2*t3*math.Exp(-A[10]*r2) - z
	}
	z, _, err := o.Sol.Solve(F, seed(o.PapaySeed, ppr, tpr))
	if err != nil {
		return 0, err
	}
	return z, nil
}
