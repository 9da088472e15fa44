// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package invert implements the generic Newton-based parameter
// inversion that backs search_parameter / search_nearest_parameter
// (spec.md §4.1) for curves and surfaces that do not supply their own
// optimized inverter. The Newton step itself is delegated to
// github.com/cpmech/gosl/num.NlSolver, the same nonlinear-system
// solver the teacher uses to invert its own stress-strain relations
// (msolid/hyperelast1.go CalcEps0, msolid/driver.go).
package invert

import (
	"github.com/cpmech/gosl/num"

	"github.com/cpmech/brep/geom"
)

// Curve1D searches t minimizing ||curve.Subs(t)-point||^2, starting
// from hint and iterating at most trials times. ok reports whether
// the solver converged; exact is the extra test that distinguishes
// search_parameter (residual must vanish within tol) from
// search_nearest_parameter (any stationary point qualifies, see the
// orthogonality condition of spec.md §4.1).
func Curve1D(curve geom.Curve, point geom.Point3, hint geom.Hint1D, trials int, tol float64, exact bool) (t float64, ok bool) {
	t0, t1 := curve.ParameterRange()
	start := presearchCurve(curve, point, hint, t0, t1)

	var nls num.NlSolver
	nls.Init(1, func(fx, x []float64) error {
		r := curve.Subs(x[0]).Sub(point)
		d := curve.Der(x[0])
		fx[0] = d.Dot(r)
		return nil
	}, nil, func(J [][]float64, x []float64) error {
		r := curve.Subs(x[0]).Sub(point)
		d := curve.Der(x[0])
		d2 := curve.Der2(x[0])
		J[0][0] = d.Dot(d) + d2.Dot(r)
		return nil
	}, true, false, map[string]float64{"maxIt": float64(trials)})
	nls.SetTols(tol, tol, 1e-14, num.EPS)

	x := []float64{start}
	if err := nls.Solve(x, true); err != nil {
		return 0, false
	}
	t = clamp(x[0], t0, t1)

	if exact {
		res := curve.Subs(t).Sub(point).Norm()
		if res > tol {
			return 0, false
		}
	}
	return t, true
}

// Surface2D searches (u,v) minimizing ||surface.Subs(u,v)-point||^2.
func Surface2D(surface geom.Surface, point geom.Point3, hint geom.Hint2D, trials int, tol float64, exact bool) (u, v float64, ok bool) {
	u0, v0, u1, v1 := presearchRange(hint)
	su, sv := presearchSurface(surface, point, hint, u0, v0, u1, v1)

	var nls num.NlSolver
	nls.Init(2, func(fx, x []float64) error {
		r := surface.Subs(x[0], x[1]).Sub(point)
		su := surface.UDer(x[0], x[1])
		sv := surface.VDer(x[0], x[1])
		fx[0] = su.Dot(r)
		fx[1] = sv.Dot(r)
		return nil
	}, nil, func(J [][]float64, x []float64) error {
		r := surface.Subs(x[0], x[1]).Sub(point)
		su := surface.UDer(x[0], x[1])
		sv := surface.VDer(x[0], x[1])
		suu := surface.UUDer(x[0], x[1])
		suv := surface.UVDer(x[0], x[1])
		svv := surface.VVDer(x[0], x[1])
		J[0][0] = su.Dot(su) + suu.Dot(r)
		J[0][1] = su.Dot(sv) + suv.Dot(r)
		J[1][0] = J[0][1]
		J[1][1] = sv.Dot(sv) + svv.Dot(r)
		return nil
	}, true, false, map[string]float64{"maxIt": float64(trials)})
	nls.SetTols(tol, tol, 1e-14, num.EPS)

	x := []float64{su, sv}
	if err := nls.Solve(x, true); err != nil {
		return 0, 0, false
	}
	u, v = x[0], x[1]

	if exact {
		res := surface.Subs(u, v).Sub(point).Norm()
		if res > tol {
			return 0, 0, false
		}
	}
	return u, v, true
}

func clamp(x, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// presearchCurve samples the curve and keeps the parameter minimizing
// distance to point, per the hint's requested sub-range (or the full
// range when the hint is HintNone).
func presearchCurve(curve geom.Curve, point geom.Point3, hint geom.Hint1D, t0, t1 float64) float64 {
	if hint.Kind == geom.HintAtParameter {
		return hint.P
	}
	a, b := t0, t1
	if hint.Kind == geom.HintInRange {
		a, b = hint.A, hint.B
	}
	best := a
	bestDist := -1.0
	n := geom.PresearchDivision
	for i := 0; i <= n; i++ {
		t := a + (b-a)*float64(i)/float64(n)
		d := curve.Subs(t).Sub(point).Norm()
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = t
		}
	}
	return best
}

func presearchRange(hint geom.Hint2D) (u0, v0, u1, v1 float64) {
	if hint.Kind == geom.HintInRange {
		return hint.U0, hint.V0, hint.U1, hint.V1
	}
	return 0, 0, 1, 1
}

// presearchSurface samples the surface over [u0,u1]x[v0,v1] (the unit
// square [0,1]x[0,1], when the hint carries no range of its own; a
// surface's own parameter domain is not consulted) and keeps the
// (u,v) minimizing distance to point.
func presearchSurface(surface geom.Surface, point geom.Point3, hint geom.Hint2D, u0, v0, u1, v1 float64) (u, v float64) {
	if hint.Kind == geom.HintAtParameter {
		return hint.U, hint.V
	}
	best := -1.0
	bu, bv := u0, v0
	n := geom.PresearchDivision
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			uu := u0 + (u1-u0)*float64(i)/float64(n)
			vv := v0 + (v1-v0)*float64(j)/float64(n)
			d := surface.Subs(uu, vv).Sub(point).Norm()
			if best < 0 || d < best {
				best = d
				bu, bv = uu, vv
			}
		}
	}
	return bu, bv
}
