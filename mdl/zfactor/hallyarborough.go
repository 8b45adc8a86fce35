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

// HallYarborough implements the Hall-Yarborough equation of state [3] solved for the reduced
// density Y with the secant method
//   t  = 1/Tpr
//   X1 = 0.06125・t・exp(-1.2・(1-t)²)
//   X2 = 14.76・t - 9.76・t² + 4.58・t³
//   X3 = 90.7・t - 242.2・t² + 42.4・t³
//   X4 = 2.18 + 2.82・t
//   F(Y) = -X1・Ppr + (Y + Y² + Y³ - Y⁴)/(1 - Y)³ - X2・Y² + X3・Y^X4 = 0
//   Z = X1・Ppr / Y
type HallYarborough struct {
	Sol       Secant // solver
	PapaySeed bool   // seed with Papay instead of Brill-Beggs
}

// add model to factory
func init() {
	allocators["hall-yarborough"] = func() Model { return new(HallYarborough) }
}

// Init initialises model
func (o *HallYarborough) Init(prms dbf.Params) (err error) {
	o.Sol.SetDefault("hall-yarborough", 5000)
	o.Sol.InDomain = func(y float64) bool { return y > 0 && y < 1 }
	for _, p := range prms {
		if o.Sol.setPrm(p) {
			continue
		}
		switch strings.ToLower(p.N) {
		case "papayseed":
			o.PapaySeed = p.V > 0
		default:
			return chk.Err("hall-yarborough: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.Sol.check()
}

// GetPrms gets (an example) of parameters
func (o HallYarborough) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "pert", V: 1e-6},
			&dbf.P{N: "tol", V: 1e-11},
			&dbf.P{N: "maxit", V: 5000},
			&dbf.P{N: "papayseed", V: 0},
		}
	}
	return append(o.Sol.prms(), &dbf.P{N: "papayseed", V: b2f(o.PapaySeed)})
}

// Z computes the compressibility factor
func (o *HallYarborough) Z(ppr, tpr float64) (float64, error) {
	if err := checkReduced("hall-yarborough", ppr, tpr); err != nil {
		return 0, err
	}
	if o.Sol.MaxIt == 0 {
		if err := o.Init(nil); err != nil {
			return 0, err
		}
	}
	t := 1.0 / tpr
	x1 := 0.06125 * t * math.Exp(-1.2*(1.0-t)*(1.0-t))
	x2 := 14.76*t - 9.76*t*t + 4.58*t*t*t
	x3 := 90.7*t - 242.2*t*t + 42.4*t*t*t
	x4 := 2.18 + 2.82*t
	F := func(y float64) float64 {
		a := 1.0 - y
		return -x1*ppr + (y+y*y+y*y*y-y*y*y*y)/(a*a*a) - x2*y*y + x3*math.Pow(y, x4)
	}
	y0 := x1 * ppr / seed(o.PapaySeed, ppr, tpr)
	y0 = math.Min(math.Max(y0, 1e-8), 0.95)
	y, _, err := o.Sol.Solve(F, y0)
	if err != nil {
		return 0, err
	}
	return x1 * ppr / y, nil
}

// seed returns the initial guess of Z for the iterative models
func seed(papay bool, ppr, tpr float64) float64 {
	if !papay {
		if z, err := brillBeggsZ(ppr, tpr); err == nil && z > 0 {
			return z
		}
	}
	if z := papayZ(ppr, tpr); z > 0 {
		return z
	}
	return 1.0
}

// b2f converts bool to float64
func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
