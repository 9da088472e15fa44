// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcurve

import "github.com/cpmech/brep/geom"

// quadraticBezierUV is the 2D curve of spec.md §8 Scenario A: a
// quadratic Bezier through (1,1) -> (1,0) -> (0,0) with knot vector
// [0,0,0,1,1,1], i.e. the standard Bernstein form
// B(t) = (1-t)^2 P0 + 2t(1-t) P1 + t^2 P2. Its closed form simplifies
// to C(t) = (1-t^2, (1-t)^2).
type quadraticBezierUV struct{}

func (quadraticBezierUV) Subs(t float64) geom.Point2 {
	return geom.Point2{X: 1 - t*t, Y: (1 - t) * (1 - t)}
}
func (quadraticBezierUV) Der(t float64) geom.Vector2 {
	return geom.Vector2{X: -2 * t, Y: -2 * (1 - t)}
}
func (quadraticBezierUV) Der2(t float64) geom.Vector2 {
	return geom.Vector2{X: -2, Y: 2}
}
func (quadraticBezierUV) ParameterRange() (float64, float64) { return 0, 1 }

// bilinearQuadraticSurface is the surface of spec.md §8 Scenario A: a
// B-spline with control net
//
//	[[(0,0,0),(0,1,0)],[(0,0,1),(0,1,1)],[(1,0,1),(1,1,1)]]
//
// quadratic (knot [0,0,0,1,1,1]) in u, linear in v. Its closed form is
// S(u,v) = (u^2, v, 2u-u^2), from Bernstein blending of the control net
// in u: x = u^2*1, z = 2u(1-u)*1 + u^2*1 — NURBS evaluation itself is a
// non-goal (spec.md §1), this is a hand-derived closed form used only
// as a test double exercising the PCurve contract.
type bilinearQuadraticSurface struct{}

func (bilinearQuadraticSurface) Subs(u, v float64) geom.Point3 {
	return geom.Point3{X: u * u, Y: v, Z: 2*u - u*u}
}
func (bilinearQuadraticSurface) UDer(u, v float64) geom.Vector3 {
	return geom.Vector3{X: 2 * u, Y: 0, Z: 2 - 2*u}
}
func (bilinearQuadraticSurface) VDer(u, v float64) geom.Vector3 {
	return geom.Vector3{X: 0, Y: 1, Z: 0}
}
func (bilinearQuadraticSurface) UUDer(u, v float64) geom.Vector3 {
	return geom.Vector3{X: 2, Y: 0, Z: -2}
}
func (bilinearQuadraticSurface) UVDer(u, v float64) geom.Vector3 { return geom.Vector3{} }
func (bilinearQuadraticSurface) VVDer(u, v float64) geom.Vector3 { return geom.Vector3{} }
func (s bilinearQuadraticSurface) Normal(u, v float64) geom.Vector3 {
	return s.UDer(u, v).Cross(s.VDer(u, v)).Normalize()
}
