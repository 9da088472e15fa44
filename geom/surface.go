// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Surface is a parametric surface in 3D space: (u,v) -> point,
// together with its partial derivatives and its normal field. Periods,
// exact/nearest parameter inversion and parameter-division are all
// optional capabilities (checked by type assertion at the call site,
// the same "optional interface" idiom the teacher uses for
// ele.CanExtrapolate / ele.CanOutputIps) because not every plugged-in
// surface needs to or can supply them.
type Surface interface {
	Subs(u, v float64) Point3
	UDer(u, v float64) Vector3
	VDer(u, v float64) Vector3
	UUDer(u, v float64) Vector3
	UVDer(u, v float64) Vector3
	VVDer(u, v float64) Vector3
	Normal(u, v float64) Vector3
}

// PeriodicU is implemented by surfaces periodic in u: S(u+Pu,v) = S(u,v).
type PeriodicU interface {
	UPeriod() (period float64, ok bool)
}

// PeriodicV is implemented by surfaces periodic in v: S(u,v+Pv) = S(u,v).
type PeriodicV interface {
	VPeriod() (period float64, ok bool)
}

// SearchParameterSurface is an optional capability: a surface that
// knows how to invert itself exactly.
type SearchParameterSurface interface {
	SearchParameter(point Point3, hint Hint2D, trials int) (u, v float64, ok bool)
}

// SearchNearestParameterSurface is an optional capability: a surface
// that knows how to find its own nearest (u,v) to an arbitrary point.
type SearchNearestParameterSurface interface {
	SearchNearestParameter(point Point3, hint Hint2D, trials int) (u, v float64, ok bool)
}

// ParameterDivision2D is an optional capability: a surface that can
// propose a (u,v) subdivision grid over a bounding box at a given
// chord tolerance — used to seed interior sampling points for the CDT
// (spec.md §4.6 step 3).
type ParameterDivision2D interface {
	ParameterDivision(urange, vrange [2]float64, tol float64) (udiv, vdiv []float64)
}
