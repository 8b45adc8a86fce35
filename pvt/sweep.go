// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pvt

import (
	"fmt"
	"math"

	"github.com/cpmech/gopvt/mdl/fluid"
)

// MaxPoints is the largest number of pressures in a sweep
const MaxPoints = 10000000

// Sweep defines an ascending pressure range [psia]
type Sweep struct {
	Start float64 // first pressure
	Stop  float64 // last pressure (included if on the grid)
	Step  float64 // increment
}

// Validate checks the sweep
func (o Sweep) Validate() error {
	if !(o.Start > 0) || !(o.Stop > 0) || !(o.Step > 0) {
		return fmt.Errorf("%w: sweep: start, stop and step must be positive. start=%g stop=%g step=%g",
			fluid.ErrInvalidPrecondition, o.Start, o.Stop, o.Step)
	}
	if o.Start >= o.Stop {
		return fmt.Errorf("%w: sweep: start must be smaller than stop. start=%g stop=%g",
			fluid.ErrInvalidPrecondition, o.Start, o.Stop)
	}
	if math.IsInf(o.Stop, 0) {
		return fmt.Errorf("%w: sweep: stop must be finite", fluid.ErrInvalidPrecondition)
	}
	if n := (o.Stop - o.Start) / o.Step; !(n < MaxPoints) {
		return fmt.Errorf("%w: sweep: too many points. (stop-start)/step = %g > %d",
			fluid.ErrInvalidPrecondition, n, MaxPoints)
	}
	return nil
}

// Pressures returns Start, Start+Step, ... <= Stop
//  Note: Stop is included when (Stop-Start)/Step is an integer within 1e-9
func (o Sweep) Pressures() (P []float64, err error) {
	if err = o.Validate(); err != nil {
		return
	}
	n := int(math.Floor((o.Stop-o.Start)/o.Step + 1e-9))
	P = make([]float64, n+1)
	for i := 0; i <= n; i++ {
		P[i] = o.Start + float64(i)*o.Step
	}
	if P[n] > o.Stop {
		P[n] = o.Stop
	}
	return
}
