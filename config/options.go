// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config holds the small set of tunables the tessellation
// core needs (chord tolerance, Newton trial budget), in the shape of
// the teacher's plain parameter structs (e.g. inp.Simulation) but
// without any file parsing — spec.md explicitly places file I/O
// outside the core (§1 Non-goals).
package config

import "github.com/cpmech/gosl/fun"

// Options collects the tunables threaded through the tessellation
// pipeline.
type Options struct {
	// Tol is the chord tolerance used for polyline approximation,
	// CDT interior sampling density and the on-edge ambiguity window
	// of the domain inclusion test.
	Tol float64
	// Trials bounds the Newton iterations allowed per
	// search_parameter / search_nearest_parameter call.
	Trials int
}

// DefaultOptions returns the tolerances this package was validated
// against in spec.md §8's testable properties.
func DefaultOptions() Options {
	return Options{Tol: 1e-3, Trials: 100}
}

// Describe returns Options as a fun.Prms bank, the same
// introspection shape the teacher uses for its material model
// parameters (mdl/gen, msolid), useful for logging/debugging a run's
// configuration without reaching for a bespoke struct-dumper.
func (o Options) Describe() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "tol", V: o.Tol},
		&fun.Prm{N: "trials", V: float64(o.Trials)},
	}
}
