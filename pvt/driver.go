// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pvt runs the chain of oil and gas correlations over a pressure sweep and produces one
// fluid state per pressure
package pvt

import (
	"fmt"
	"runtime"
	"time"

	"github.com/cpmech/gopvt/mdl/fluid"
	"github.com/cpmech/gopvt/mdl/gas"
	"github.com/cpmech/gopvt/mdl/oil"
	"github.com/cpmech/gopvt/mdl/zfactor"
	"github.com/cpmech/gopvt/units"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Selection holds the names of the correlations used by a Driver
type Selection struct {
	Oil    oil.Chain  // oil correlations
	Z      string     // Z-factor model
	Zprms  dbf.Params // parameters of the Z-factor model
	Ug     string     // gas viscosity model
	Ugprms dbf.Params // parameters of the gas viscosity model
}

// DefaultSelection returns Standing/Petrosky/Beggs-Robinson/Beal-Standing for oil, Papay for Z
// and Lee for the gas viscosity
func DefaultSelection() Selection {
	return Selection{Oil: oil.DefaultChain(), Z: "papay", Ug: "lee"}
}

// Point holds the result at one pressure
type Point struct {
	P     float64      // pressure [psia]
	State *fluid.State // state; nil if Err != nil
	Err   error        // error at this point
}

// Driver computes fluid states over a sequence of pressures
type Driver struct {

	// input
	Fld fluid.Fluid // fluid; Pb is set if computed from Rsb
	Sel Selection   // correlations

	// settings
	Parallel   bool               // evaluate points concurrently
	NumWorkers int                // maximum number of goroutines; <= 0 means runtime.NumCPU()
	Verbose    bool               // show progress with io.Pf
	Log        logrus.FieldLogger // logger; standard logger if nil

	// models
	Oil *oil.Model    // oil model with values at the bubble point
	Zm  zfactor.Model // Z-factor model
	Ugm gas.Viscosity // gas viscosity model

	// constants
	Ppc float64 // pseudo-critical pressure [psia]
	Tpc float64 // pseudo-critical temperature [°R]
	TR  float64 // temperature [°R]
	Mg  float64 // gas molecular weight [lb/lbmol]

	// results
	RunID string   // identifier of the last run
	Res   []*Point // results of the last run
}

// Init initialises driver. All sweep-wide values are computed here; an error is returned if
// any of them cannot be computed
func (o *Driver) Init(fld *fluid.Fluid, sel Selection) (err error) {

	// logger
	if o.Log == nil {
		o.Log = logrus.StandardLogger()
	}

	// oil
	o.Oil, err = oil.New(fld, sel.Oil)
	if err != nil {
		return
	}
	o.Fld = o.Oil.Fld
	o.Sel = sel
	o.Sel.Oil = o.Oil.Chain

	// Z-factor
	if o.Sel.Z == "" {
		o.Sel.Z = "papay"
	}
	o.Zm, err = zfactor.New(o.Sel.Z)
	if err != nil {
		return
	}
	if err = o.Zm.Init(o.Sel.Zprms); err != nil {
		return
	}

	// gas viscosity
	if o.Sel.Ug == "" {
		o.Sel.Ug = "lee"
	}
	o.Ugm, err = gas.NewViscosity(o.Sel.Ug)
	if err != nil {
		return
	}
	if err = o.Ugm.Init(o.Sel.Ugprms); err != nil {
		return
	}

	// constants
	o.Ppc, o.Tpc, err = zfactor.PseudoCritical(o.Fld.Dg)
	if err != nil {
		return
	}
	o.TR = o.Fld.TR()
	o.Mg = gas.MolecularWeight(o.Fld.Dg)
	o.Log.WithFields(logrus.Fields{
		"pb":  o.Oil.Pb,
		"rsb": o.Oil.Rsb,
		"bob": o.Oil.Bob,
		"ppc": o.Ppc,
		"tpc": o.Tpc,
		"z":   o.Sel.Z,
		"ug":  o.Sel.Ug,
	}).Debug("pvt driver initialised")
	return
}

// Calc computes the state at pressure p [psia]
func (o *Driver) Calc(p float64) (s *fluid.State, err error) {
	if o.Oil == nil {
		return nil, chk.Err("pvt driver must be initialised before calling Calc")
	}

	// oil
	op, err := o.Oil.Calc(p)
	if err != nil {
		return nil, fmt.Errorf("oil: %w", err)
	}

	// Z-factor
	ppr, tpr, err := zfactor.PseudoReduced(p, o.TR, o.Ppc, o.Tpc)
	if err != nil {
		return nil, fmt.Errorf("pseudo-reduced: %w", err)
	}
	z, err := o.Zm.Z(ppr, tpr)
	if err != nil {
		return nil, fmt.Errorf("z-factor: %w", err)
	}
	dzdppr, err := zfactor.DzDppr(o.Zm, ppr, tpr, z)
	if err != nil {
		return nil, fmt.Errorf("z-factor derivative: %w", err)
	}

	// gas
	rhoG, err := gas.Density(p, o.Mg, z, o.TR)
	if err != nil {
		return nil, err
	}
	bg, err := gas.FVF(p, z, o.TR)
	if err != nil {
		return nil, err
	}
	cg, err := gas.Compressibility(ppr, o.Ppc, z, dzdppr)
	if err != nil {
		return nil, err
	}
	ug, err := o.Ugm.Ug(&gas.ViscosityInput{
		Rho:  rhoG,
		TR:   o.TR,
		Mg:   o.Mg,
		Dg:   o.Fld.Dg,
		Ppr:  ppr,
		Tpr:  tpr,
		Ppc:  o.Ppc,
		Tpc:  o.Tpc,
		Yn2:  o.Fld.Yn2,
		Yco2: o.Fld.Yco2,
		Yh2s: o.Fld.Yh2s,
	})
	if err != nil {
		return nil, fmt.Errorf("gas viscosity: %w", err)
	}

	// saturated oil compressibility needs Bg
	co := op.Co
	if op.Regime == fluid.Saturated {
		co, err = o.Oil.SaturatedCo(p, op.Bo, gas.FVFbbl(bg))
		if err != nil {
			return nil, fmt.Errorf("oil: %w", err)
		}
	}

	// state
	s = &fluid.State{
		P:      units.FromPsia(p),
		T:      o.Fld.T,
		Pb:     o.Fld.Pb,
		Regime: op.Regime,
		Rs:     op.Rs,
		Rsb:    o.Oil.Rsb,
		Bo:     op.Bo,
		Bob:    o.Oil.Bob,
		Co:     co,
		Uo:     op.Uo,
		Uod:    o.Oil.Uod,
		Uob:    o.Oil.Uob,
		RhoO:   op.RhoO,
		RhoOb:  o.Oil.RhoOb,
		Z:      z,
		Ppr:    ppr,
		Tpr:    tpr,
		Ppc:    o.Ppc,
		Tpc:    o.Tpc,
		RhoG:   rhoG,
		Bg:     bg,
		Cg:     cg,
		Ug:     ug,
		Mg:     o.Mg,
	}
	return
}

// Run computes the states at all pressures. Failures at single points are recorded in Res and
// do not stop the sweep
func (o *Driver) Run(pressures []float64) (err error) {
	if o.Oil == nil {
		return chk.Err("pvt driver must be initialised before calling Run")
	}
	if len(pressures) == 0 {
		return fmt.Errorf("%w: there are no pressures to compute", fluid.ErrInvalidPrecondition)
	}

	// allocate results
	o.RunID = uuid.NewString()
	o.Res = make([]*Point, len(pressures))
	log := o.Log.WithField("run", o.RunID)
	start := time.Now()
	log.WithFields(logrus.Fields{"points": len(pressures), "parallel": o.Parallel}).Info("sweep started")

	// compute
	point := func(i int) {
		p := pressures[i]
		s, e := o.Calc(p)
		if e != nil {
			e = fmt.Errorf("P = %g psia: %w", p, e)
		}
		o.Res[i] = &Point{P: p, State: s, Err: e}
	}
	if o.Parallel {
		nw := o.NumWorkers
		if nw <= 0 {
			nw = runtime.NumCPU()
		}
		var g errgroup.Group
		g.SetLimit(nw)
		for i := range pressures {
			i := i
			g.Go(func() error {
				point(i)
				return nil
			})
		}
		g.Wait()
	} else {
		for i := range pressures {
			point(i)
		}
	}

	// report
	nfail := 0
	for _, r := range o.Res {
		if r.Err != nil {
			nfail++
			log.WithField("p", r.P).Warn(r.Err.Error())
			if o.Verbose {
				io.PfRed("%v\n", r.Err)
			}
			continue
		}
		if o.Verbose {
			io.Pf("%v\n", r.State)
		}
	}
	log.WithFields(logrus.Fields{
		"failed":  nfail,
		"elapsed": time.Since(start).String(),
	}).Info("sweep finished")
	if o.Verbose {
		io.Pforan("%d points computed; %d failed\n", len(o.Res)-nfail, nfail)
	}
	return
}

// States returns the successful states in pressure order
func (o *Driver) States() (states []*fluid.State) {
	for _, r := range o.Res {
		if r.Err == nil {
			states = append(states, r.State)
		}
	}
	return
}

// Failed returns the points that failed
func (o *Driver) Failed() (points []*Point) {
	for _, r := range o.Res {
		if r.Err != nil {
			points = append(points, r)
		}
	}
	return
}
