// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zfactor

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Papay implements Papay's explicit correlation [1]
//   Z = 1 - 3.53・Ppr / 10^(0.9813・Tpr) + 0.274・Ppr² / 10^(0.8157・Tpr)
type Papay struct{}

// add model to factory
func init() {
	allocators["papay"] = func() Model { return new(Papay) }
}

// Init initialises model
func (o *Papay) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("papay: parameter named %q is incorrect\n", prms[0].N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Papay) GetPrms(example bool) dbf.Params {
	return nil
}

// Z computes the compressibility factor
func (o Papay) Z(ppr, tpr float64) (float64, error) {
	if err := checkReduced("papay", ppr, tpr); err != nil {
		return 0, err
	}
	return papayZ(ppr, tpr), nil
}

// DzDppr computes ∂Z/∂Ppr
func (o Papay) DzDppr(ppr, tpr, z float64) (float64, error) {
	if err := checkReduced("papay", ppr, tpr); err != nil {
		return 0, err
	}
	return -3.53/math.Pow(10, 0.9813*tpr) + 2.0*0.274*ppr/math.Pow(10, 0.8157*tpr), nil
}

// papayZ evaluates Papay's formula
func papayZ(ppr, tpr float64) float64 {
	return 1.0 - 3.53*ppr/math.Pow(10, 0.9813*tpr) + 0.274*ppr*ppr/math.Pow(10, 0.8157*tpr)
}
