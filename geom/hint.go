// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// PresearchDivision is the fixed sampling density used to seed Newton
// iteration when a range hint, not a point hint, is supplied to a
// search_parameter / search_nearest_parameter call (spec.md
// GLOSSARY, PRESEARCH_DIVISION).
const PresearchDivision = 50

// HintKind discriminates the three forms a search hint can take.
type HintKind int

const (
	// HintNone requests a presearch over the curve's full parameter
	// range; for a surface, the generic inverter in package invert
	// presearches the unit square [0,1]x[0,1].
	HintNone HintKind = iota
	// HintAtParameter starts Newton iteration directly at a given
	// parameter.
	HintAtParameter
	// HintInRange requests a presearch restricted to a sub-range,
	// by uniform sampling over PresearchDivision subdivisions.
	HintInRange
)

// Hint1D is a search hint for 1D (curve) parameter inversion.
type Hint1D struct {
	Kind HintKind
	P    float64
	A, B float64
}

// NoHint1D requests a full-range presearch.
func NoHint1D() Hint1D { return Hint1D{Kind: HintNone} }

// AtParameter1D starts Newton iteration at p.
func AtParameter1D(p float64) Hint1D { return Hint1D{Kind: HintAtParameter, P: p} }

// InRange1D requests a presearch restricted to [a,b].
func InRange1D(a, b float64) Hint1D { return Hint1D{Kind: HintInRange, A: a, B: b} }

// Hint2D is a search hint for 2D (surface) parameter inversion.
type Hint2D struct {
	Kind       HintKind
	U, V       float64
	U0, V0     float64
	U1, V1     float64
}

// NoHint2D requests a full-range presearch.
func NoHint2D() Hint2D { return Hint2D{Kind: HintNone} }

// AtParameter2D starts Newton iteration at (u,v).
func AtParameter2D(u, v float64) Hint2D { return Hint2D{Kind: HintAtParameter, U: u, V: v} }

// InRange2D requests a presearch restricted to the axis-aligned box
// [u0,u1]x[v0,v1].
func InRange2D(u0, v0, u1, v1 float64) Hint2D {
	return Hint2D{Kind: HintInRange, U0: u0, V0: v0, U1: u1, V1: v1}
}
