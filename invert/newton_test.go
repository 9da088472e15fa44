// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invert

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/brep/geom"
)

// helixCurve is a simple analytic 3D curve used to exercise Curve1D
// without depending on any other package: C(t) = (cos t, sin t, t),
// t in [0, 2].
type helixCurve struct{}

func (helixCurve) Subs(t float64) geom.Point3 {
	return geom.Point3{X: math.Cos(t), Y: math.Sin(t), Z: t}
}
func (helixCurve) Der(t float64) geom.Vector3 {
	return geom.Vector3{X: -math.Sin(t), Y: math.Cos(t), Z: 1}
}
func (helixCurve) Der2(t float64) geom.Vector3 {
	return geom.Vector3{X: -math.Cos(t), Y: -math.Sin(t), Z: 0}
}
func (helixCurve) ParameterRange() (float64, float64) { return 0, 2 }

func TestCurve1DExactRoundTrip(tst *testing.T) {
	chk.PrintTitle("Curve1D: exact round trip on a point lying on the curve")
	c := helixCurve{}
	const tExact = 1.2
	p := c.Subs(tExact)
	t, ok := Curve1D(c, p, geom.NoHint1D(), 100, 1e-10, true)
	if !ok {
		tst.Fatal("Curve1D failed to converge")
	}
	chk.Scalar(tst, "t", 1e-8, t, tExact)
}

func TestCurve1DExactFailsOffCurve(tst *testing.T) {
	chk.PrintTitle("Curve1D: exact search rejects an off-curve point")
	c := helixCurve{}
	p := c.Subs(1.2)
	p.X += 0.2
	if _, ok := Curve1D(c, p, geom.NoHint1D(), 100, 1e-10, true); ok {
		tst.Fatal("Curve1D(exact=true) unexpectedly accepted an off-curve point")
	}
}

func TestCurve1DNearestIsOrthogonal(tst *testing.T) {
	chk.PrintTitle("Curve1D: nearest-parameter satisfies the orthogonality condition")
	c := helixCurve{}
	p := c.Subs(1.2)
	p.X += 0.2
	t, ok := Curve1D(c, p, geom.NoHint1D(), 100, 1e-10, false)
	if !ok {
		tst.Fatal("Curve1D(exact=false) failed to converge")
	}
	d := c.Subs(t).Sub(p)
	der := c.Der(t)
	chk.Scalar(tst, "(C(t)-p).der", 1e-6, d.Dot(der), 0)
}

// bumpSurface is a simple analytic surface used to exercise Surface2D:
// S(u,v) = (u, v, u^2 - v^2), u,v in [-1,1].
type bumpSurface struct{}

func (bumpSurface) Subs(u, v float64) geom.Point3 { return geom.Point3{X: u, Y: v, Z: u*u - v*v} }
func (bumpSurface) UDer(u, v float64) geom.Vector3 { return geom.Vector3{X: 1, Y: 0, Z: 2 * u} }
func (bumpSurface) VDer(u, v float64) geom.Vector3 { return geom.Vector3{X: 0, Y: 1, Z: -2 * v} }
func (bumpSurface) UUDer(u, v float64) geom.Vector3 { return geom.Vector3{X: 0, Y: 0, Z: 2} }
func (bumpSurface) UVDer(u, v float64) geom.Vector3 { return geom.Vector3{} }
func (bumpSurface) VVDer(u, v float64) geom.Vector3 { return geom.Vector3{X: 0, Y: 0, Z: -2} }
func (s bumpSurface) Normal(u, v float64) geom.Vector3 {
	return s.UDer(u, v).Cross(s.VDer(u, v)).Normalize()
}

func TestSurface2DExactRoundTrip(tst *testing.T) {
	chk.PrintTitle("Surface2D: exact round trip on a point lying on the surface")
	s := bumpSurface{}
	const uExact, vExact = 0.3, -0.4
	p := s.Subs(uExact, vExact)
	u, v, ok := Surface2D(s, p, geom.InRange2D(-1, -1, 1, 1), 100, 1e-10, true)
	if !ok {
		tst.Fatal("Surface2D failed to converge")
	}
	chk.Scalar(tst, "u", 1e-7, u, uExact)
	chk.Scalar(tst, "v", 1e-7, v, vExact)
}

func TestSurface2DNearestIsOrthogonal(tst *testing.T) {
	chk.PrintTitle("Surface2D: nearest-parameter is orthogonal to both tangents")
	s := bumpSurface{}
	p := s.Subs(0.3, -0.4)
	p.Z += 0.25
	u, v, ok := Surface2D(s, p, geom.InRange2D(-1, -1, 1, 1), 100, 1e-9, false)
	if !ok {
		tst.Fatal("Surface2D(exact=false) failed to converge")
	}
	r := s.Subs(u, v).Sub(p)
	su := s.UDer(u, v)
	sv := s.VDer(u, v)
	chk.Scalar(tst, "r.su", 1e-6, r.Dot(su), 0)
	chk.Scalar(tst, "r.sv", 1e-6, r.Dot(sv), 0)
}
