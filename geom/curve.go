// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Curve is a parametric curve in 3D space: t -> point, together with
// its first and second derivatives and its parameter range [t0,t1].
// This is the "ParametricCurve" / "BoundedCurve" contract of spec.md
// §4.1 — the two are merged here since every curve this package
// consumes carries its own range.
type Curve interface {
	Subs(t float64) Point3
	Der(t float64) Vector3
	Der2(t float64) Vector3
	ParameterRange() (t0, t1 float64)
}

// Invertible is implemented by curves that can reverse their own
// parameterization: after Invert(), Subs'(t) = Subs(t0+t1-t).
type Invertible interface {
	Invert() Curve
}

// Curve2D is the 2D analogue of Curve, used for curves living in a
// surface's parameter domain (the "C" of PCurve(C,S)).
type Curve2D interface {
	Subs(t float64) Point2
	Der(t float64) Vector2
	Der2(t float64) Vector2
	ParameterRange() (t0, t1 float64)
}

// Invertible2D is the 2D analogue of Invertible.
type Invertible2D interface {
	Invert() Curve2D
}

// SearchParameterCurve is an optional capability: a curve that knows
// how to invert itself exactly (point lies on the curve).
type SearchParameterCurve interface {
	SearchParameter(point Point3, hint Hint1D, trials int) (t float64, ok bool)
}

// SearchNearestParameterCurve is an optional capability: a curve that
// knows how to find its own nearest parameter to an arbitrary point.
type SearchNearestParameterCurve interface {
	SearchNearestParameter(point Point3, hint Hint1D, trials int) (t float64, ok bool)
}

// ParameterDivision1D is an optional capability: a curve that can
// propose a parameter subdivision achieving a given chord tolerance.
type ParameterDivision1D interface {
	ParameterDivision(tol float64) []float64
}
