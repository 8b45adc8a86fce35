// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zfactor

import (
	"fmt"
	"math"
	"strings"

	"github.com/cpmech/gopvt/mdl/fluid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// NonConvergenceError is returned when the secant solver reaches its iteration cap
type NonConvergenceError struct {
	Method string  // model name
	Last   float64 // last iterate
	Iter   int     // number of iterations performed
}

// Error returns the error message
func (o *NonConvergenceError) Error() string {
	return fmt.Sprintf("%v: %s: last iterate = %g after %d iterations", fluid.ErrNonConvergence, o.Method, o.Last, o.Iter)
}

// Unwrap returns ErrNonConvergence
func (o *NonConvergenceError) Unwrap() error { return fluid.ErrNonConvergence }

// Secant implements the secant iteration with a relative perturbation
//   x_{n+1} = x_n - ε・x_n・F(x_n) / (F(x_n + ε・x_n) - F(x_n))
//  convergence: |x_{n+1} - x_n| / |x_n| <= Tol
type Secant struct {
	Method   string             // name used in error messages
	Pert     float64            // relative perturbation ε
	Tol      float64            // relative tolerance
	MaxIt    int                // maximum number of iterations
	InDomain func(float64) bool // optional domain of x; steps leaving it are halved
}

// SetDefault sets default values
func (o *Secant) SetDefault(method string, maxit int) {
	o.Method = method
	o.Pert = 1e-6
	o.Tol = 1e-11
	o.MaxIt = maxit
}

// setPrm sets solver parameters. Returns false if name is not a solver parameter
func (o *Secant) setPrm(p *dbf.P) bool {
	switch strings.ToLower(p.N) {
	case "pert":
		o.Pert = p.V
	case "tol":
		o.Tol = p.V
	case "maxit":
		o.MaxIt = int(p.V)
	default:
		return false
	}
	return true
}

// check checks solver parameters
func (o *Secant) check() error {
	if o.Pert <= 0 || o.Tol <= 0 || o.MaxIt < 1 {
		return chk.Err("%s: pert, tol and maxit must be positive. pert=%g tol=%g maxit=%d", o.Method, o.Pert, o.Tol, o.MaxIt)
	}
	return nil
}

// prms returns the current solver parameters
func (o *Secant) prms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "pert", V: o.Pert},
		&dbf.P{N: "tol", V: o.Tol},
		&dbf.P{N: "maxit", V: float64(o.MaxIt)},
	}
}

// Solve finds x such that F(x) = 0 starting from x0
func (o *Secant) Solve(F func(x float64) float64, x0 float64) (x float64, it int, err error) {
	x = x0
	if o.InDomain != nil && !o.InDomain(x) {
		return x, 0, fmt.Errorf("%w: %s: initial guess %g is outside the domain", fluid.ErrInvalidPrecondition, o.Method, x)
	}
	var fx, h, den, xnew float64
	for it = 1; it <= o.MaxIt; it++ {
		if x == 0 {
			return x, it, fmt.Errorf("%w: %s: zero iterate", fluid.ErrDivisionByZero, o.Method)
		}
		fx = F(x)
		if fx == 0 {
			return x, it, nil
		}
		h = o.Pert * x
		den = F(x+h) - fx
		if den == 0 {
			return x, it, fmt.Errorf("%w: %s: zero secant slope at x = %g", fluid.ErrDivisionByZero, o.Method, x)
		}
		xnew = x - h*fx/den
		if math.IsNaN(xnew) || math.IsInf(xnew, 0) {
			return x, it, fmt.Errorf("%w: %s: non-finite iterate after x = %g", fluid.ErrDivisionByZero, o.Method, x)
		}
		if o.InDomain != nil {
			for k := 0; !o.InDomain(xnew) && k < 64; k++ {
				xnew = x + (xnew-x)/2.0
			}
		}
		if math.Abs(xnew-x) <= o.Tol*math.Abs(x) {
			return xnew, it, nil
		}
		x = xnew
	}
	return x, o.MaxIt, &NonConvergenceError{Method: o.Method, Last: x, Iter: o.MaxIt}
}
