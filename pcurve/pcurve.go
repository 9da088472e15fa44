// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pcurve implements PCurve, the curve-on-surface composite of
// spec.md §4.2: a 3D curve obtained by composing a 2D parameter-domain
// curve with a surface map, grounded on
// original_source/truck-geometry/src/decorators/curve_on_surface.rs.
package pcurve

import (
	"github.com/cpmech/brep/geom"
	"github.com/cpmech/brep/invert"
)

// PCurve composes a 2D curve C (living in a surface's parameter
// domain) with a surface S into a 3D curve. It borrows both: it
// stores them by value (or by interface, for reference types) exactly
// as wide as the caller's C and S, mirroring the borrowed composition
// of the Rust original.
type PCurve struct {
	Curve   geom.Curve2D
	Surface geom.Surface
}

// New builds a PCurve(curve, surface).
func New(curve geom.Curve2D, surface geom.Surface) *PCurve {
	return &PCurve{Curve: curve, Surface: surface}
}

// ParameterRange returns the composed curve's parameter range, which
// is exactly C's range; S is untouched.
func (p *PCurve) ParameterRange() (t0, t1 float64) { return p.Curve.ParameterRange() }

// Subs evaluates S(C(t)).
func (p *PCurve) Subs(t float64) geom.Point3 {
	uv := p.Curve.Subs(t)
	return p.Surface.Subs(uv.X, uv.Y)
}

// Der evaluates the chain rule: Su*Cx'(t) + Sv*Cy'(t).
func (p *PCurve) Der(t float64) geom.Vector3 {
	uv := p.Curve.Subs(t)
	d := p.Curve.Der(t)
	su := p.Surface.UDer(uv.X, uv.Y)
	sv := p.Surface.VDer(uv.X, uv.Y)
	return su.Scale(d.X).Add(sv.Scale(d.Y))
}

// Der2 evaluates the second-derivative chain rule:
// Suu*Cx'^2 + 2*Suv*Cx'Cy' + Svv*Cy'^2 + Su*Cx'' + Sv*Cy''.
func (p *PCurve) Der2(t float64) geom.Vector3 {
	uv := p.Curve.Subs(t)
	d := p.Curve.Der(t)
	d2 := p.Curve.Der2(t)
	suu := p.Surface.UUDer(uv.X, uv.Y)
	suv := p.Surface.UVDer(uv.X, uv.Y)
	svv := p.Surface.VVDer(uv.X, uv.Y)
	su := p.Surface.UDer(uv.X, uv.Y)
	sv := p.Surface.VDer(uv.X, uv.Y)

	term := suu.Scale(d.X * d.X)
	term = term.Add(suv.Scale(2 * d.X * d.Y))
	term = term.Add(svv.Scale(d.Y * d.Y))
	term = term.Add(su.Scale(d2.X))
	term = term.Add(sv.Scale(d2.Y))
	return term
}

// Invert inverts C only; S is untouched. It returns a plain
// geom.Curve wrapping the inverted composite so that PCurve itself
// need not implement geom.Invertible2D on its inner curve.
func (p *PCurve) Invert() geom.Curve {
	inv, ok := p.Curve.(geom.Invertible2D)
	if !ok {
		panic("pcurve: inner curve does not implement geom.Invertible2D")
	}
	return New(inv.Invert(), p.Surface)
}

// SearchParameter inverts the composed map exactly: first invert on
// the surface to obtain a candidate (u,v), then invert the 2D curve C
// at that (u,v). Both stages share the trials budget (spec.md §4.2).
func (p *PCurve) SearchParameter(point geom.Point3, hint geom.Hint1D, trials int, tol float64) (t float64, ok bool) {
	uvHint := p.uvHintFromCurveHint(hint)
	u, v, ok := invert.BySearchParameterSurface(p.Surface, point, uvHint, trials, tol)
	if !ok {
		return 0, false
	}
	return invert.BySearchParameterCurve(curve2DAsCurve{p.Curve}, geom.Point3{X: u, Y: v}, hint, trials, tol)
}

// SearchNearestParameter pre-searches on the composed map directly,
// using C's own parameter range as the search domain (spec.md §4.2).
func (p *PCurve) SearchNearestParameter(point geom.Point3, hint geom.Hint1D, trials int, tol float64) (t float64, ok bool) {
	return invert.Curve1D(p, point, hint, trials, tol, false)
}

// uvHintFromCurveHint converts a hint expressed in the composed
// curve's parameter t into an axis-aligned (u,v) box hint on the
// surface, by sampling C at PresearchDivision+1 points and taking
// component-wise min/max (spec.md §4.2).
func (p *PCurve) uvHintFromCurveHint(hint geom.Hint1D) geom.Hint2D {
	switch hint.Kind {
	case geom.HintAtParameter:
		uv := p.Curve.Subs(hint.P)
		return geom.AtParameter2D(uv.X, uv.Y)
	case geom.HintInRange:
		return p.boundingBox(hint.A, hint.B)
	default:
		t0, t1 := p.Curve.ParameterRange()
		return p.boundingBox(t0, t1)
	}
}

func (p *PCurve) boundingBox(a, b float64) geom.Hint2D {
	n := geom.PresearchDivision
	first := p.Curve.Subs(a)
	u0, v0, u1, v1 := first.X, first.Y, first.X, first.Y
	for i := 1; i <= n; i++ {
		t := a + (b-a)*float64(i)/float64(n)
		uv := p.Curve.Subs(t)
		if uv.X < u0 {
			u0 = uv.X
		}
		if uv.X > u1 {
			u1 = uv.X
		}
		if uv.Y < v0 {
			v0 = uv.Y
		}
		if uv.Y > v1 {
			v1 = uv.Y
		}
	}
	return geom.InRange2D(u0, v0, u1, v1)
}

// curve2DAsCurve adapts a geom.Curve2D (mapping t -> (u,v)) to a
// geom.Curve (mapping t -> Point3 with z=0), so the shared
// invert.Curve1D/BySearchParameterCurve machinery can invert it
// without a second code path for planar curves.
type curve2DAsCurve struct{ c geom.Curve2D }

func (a curve2DAsCurve) Subs(t float64) geom.Point3 {
	p := a.c.Subs(t)
	return geom.Point3{X: p.X, Y: p.Y}
}
func (a curve2DAsCurve) Der(t float64) geom.Vector3 {
	d := a.c.Der(t)
	return geom.Vector3{X: d.X, Y: d.Y}
}
func (a curve2DAsCurve) Der2(t float64) geom.Vector3 {
	d := a.c.Der2(t)
	return geom.Vector3{X: d.X, Y: d.Y}
}
func (a curve2DAsCurve) ParameterRange() (float64, float64) { return a.c.ParameterRange() }
