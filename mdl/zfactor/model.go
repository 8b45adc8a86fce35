// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package zfactor implements models for the gas compressibility factor Z(Ppr, Tpr)
//  References:
//   [1] Papay J (1968) A termelestechnologiai parameterek valtozasa a gazlelepk muvelese soran.
//       OGIL Musz. Tud. Kozl., Budapest, 267-273
//   [2] Brill JP and Beggs HD (1974) Two-phase flow in pipes. University of Tulsa
//   [3] Hall KR and Yarborough L (1973) A new equation of state for Z-factor calculations.
//       Oil and Gas Journal, 71(25), 82-92
//   [4] Dranchuk PM and Abou-Kassem JH (1975) Calculation of Z factors for natural gases using
//       equations of state. Journal of Canadian Petroleum Technology, 14(3), 34-36
//   [5] Standing MB (1977) Volumetric and phase behavior of oil field hydrocarbon systems. SPE
package zfactor

import (
	"fmt"
	"math"
	"sort"

	"github.com/cpmech/gopvt/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/diff/fd"
)

// Model defines a Z-factor correlation
type Model interface {
	Init(prms dbf.Params) error          // initialises model
	GetPrms(example bool) dbf.Params     // gets (an example) of parameters
	Z(ppr, tpr float64) (float64, error) // computes Z from pseudo-reduced pressure and temperature
}

// Deriv is implemented by models with an analytical derivative ∂Z/∂Ppr
type Deriv interface {
	DzDppr(ppr, tpr, z float64) (float64, error) // computes ∂Z/∂Ppr at constant Tpr
}

// New returns a new Z-factor model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'zfactor' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all models in the database
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// DzDppr computes ∂Z/∂Ppr at constant Tpr. The analytical derivative is used if the model
// implements Deriv; otherwise a central difference is used
func DzDppr(mdl Model, ppr, tpr, z float64) (dzdppr float64, err error) {
	if m, ok := mdl.(Deriv); ok {
		return m.DzDppr(ppr, tpr, z)
	}
	h := 1e-4 * ppr
	var ferr error
	dzdppr = fd.Derivative(func(x float64) float64 {
		zz, e := mdl.Z(x, tpr)
		if e != nil && ferr == nil {
			ferr = e
		}
		return zz
	}, ppr, &fd.Settings{Formula: fd.Central, Step: h})
	if ferr != nil {
		return 0, ferr
	}
	return
}

// PseudoCritical computes the pseudo-critical pressure [psia] and temperature [°R] of a natural
// gas from its relative density (Standing [5]). Dry-gas fit for dg < 0.75; wet-gas fit otherwise
func PseudoCritical(dg float64) (ppc, tpc float64, err error) {
	if dg <= 0 {
		return 0, 0, fmt.Errorf("%w: gas relative density must be positive. dg = %g", fluid.ErrInvalidPrecondition, dg)
	}
	if dg < 0.75 {
		ppc = 677.0 + 15.0*dg - 37.5*dg*dg
		tpc = 168.0 + 325.0*dg - 12.5*dg*dg
		return
	}
	ppc = 706.0 - 51.7*dg - 11.1*dg*dg
	tpc = 187.0 + 330.0*dg - 71.5*dg*dg
	return
}

// PseudoReduced computes the pseudo-reduced pressure and temperature
//  Input:
//   p   -- pressure [psia]
//   t   -- temperature [°R]
//   ppc -- pseudo-critical pressure [psia]
//   tpc -- pseudo-critical temperature [°R]
func PseudoReduced(p, t, ppc, tpc float64) (ppr, tpr float64, err error) {
	if p <= 0 || t <= 0 || ppc <= 0 || tpc <= 0 {
		return 0, 0, fmt.Errorf("%w: p, T, Ppc and Tpc must be positive. p=%g T=%g Ppc=%g Tpc=%g",
			fluid.ErrInvalidPrecondition, p, t, ppc, tpc)
	}
	return p / ppc, t / tpc, nil
}

// checkReduced checks pseudo-reduced values
func checkReduced(name string, ppr, tpr float64) error {
	if ppr <= 0 || tpr <= 0 || math.IsNaN(ppr) || math.IsNaN(tpr) {
		return fmt.Errorf("%w: %s: Ppr and Tpr must be positive. Ppr=%g Tpr=%g", fluid.ErrInvalidPrecondition, name, ppr, tpr)
	}
	return nil
}
