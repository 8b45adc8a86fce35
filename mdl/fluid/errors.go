// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fluid

import "errors"

// error taxonomy shared by the correlation packages
var (
	// ErrInvalidPrecondition is returned when an input is outside the domain of a correlation
	ErrInvalidPrecondition = errors.New("fluid: invalid precondition")

	// ErrInvalidRegime is returned when the regime cannot be resolved (e.g. Pb <= 0)
	ErrInvalidRegime = errors.New("fluid: invalid regime")

	// ErrNonConvergence is returned when an iterative solver hits its iteration cap
	ErrNonConvergence = errors.New("fluid: iterative solver did not converge")

	// ErrDivisionByZero is returned when a formula or solver step divides by zero
	ErrDivisionByZero = errors.New("fluid: division by zero")
)
