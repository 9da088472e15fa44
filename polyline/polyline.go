// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package polyline implements chord-tolerance polyline approximation
// of a parametric curve (spec.md §4.3) and the per-face UV polyline
// assembly that projects wire polylines into a surface's parameter
// domain (spec.md §4.4).
package polyline

import "github.com/cpmech/brep/geom"

// PolylineCurve is a sequence of points approximating a parametric
// curve to within a chord tolerance.
type PolylineCurve struct {
	Points []geom.Point3
}

// FromCurve samples curve over [t0,t1] so that the piecewise-linear
// chord error stays within tol, using recursive bisection on the
// midpoint chord deviation. End points are always included.
func FromCurve(curve geom.Curve, t0, t1, tol float64) *PolylineCurve {
	pl := &PolylineCurve{Points: []geom.Point3{curve.Subs(t0)}}
	subdivide(curve, t0, t1, curve.Subs(t0), curve.Subs(t1), tol, 0, pl)
	pl.Points = append(pl.Points, curve.Subs(t1))
	return pl
}

const maxSubdivisionDepth = 32

// subdivide recursively inserts the midpoint of (ta,tb) whenever the
// true curve deviates from the chord a-b by more than tol, appending
// points (other than the final b, which the caller appends once) in
// increasing-parameter order.
func subdivide(curve geom.Curve, ta, tb float64, a, b geom.Point3, tol float64, depth int, pl *PolylineCurve) {
	tm := 0.5 * (ta + tb)
	m := curve.Subs(tm)
	if depth >= maxSubdivisionDepth || chordDeviation(a, b, m) <= tol {
		return
	}
	subdivide(curve, ta, tm, a, m, tol, depth+1, pl)
	pl.Points = append(pl.Points, m)
	subdivide(curve, tm, tb, m, b, tol, depth+1, pl)
}

// chordDeviation returns the distance from m to the segment a-b.
func chordDeviation(a, b, m geom.Point3) float64 {
	ab := b.Sub(a)
	length := ab.Norm()
	if length == 0 {
		return m.Sub(a).Norm()
	}
	am := m.Sub(a)
	proj := am.Dot(ab) / (length * length)
	if proj < 0 {
		proj = 0
	}
	if proj > 1 {
		proj = 1
	}
	closest := a.Add(ab.Scale(proj))
	return m.Sub(closest).Norm()
}

// Pop drops the last point, preparing the polyline for concatenation
// with the next edge's polyline in a wire (spec.md §4.4 rule 3).
func (pl *PolylineCurve) Pop() {
	if len(pl.Points) > 0 {
		pl.Points = pl.Points[:len(pl.Points)-1]
	}
}

// Inverse reverses the point order in place.
func (pl *PolylineCurve) Inverse() {
	for i, j := 0, len(pl.Points)-1; i < j; i, j = i+1, j-1 {
		pl.Points[i], pl.Points[j] = pl.Points[j], pl.Points[i]
	}
}

// Clone returns an independent copy of pl.
func (pl *PolylineCurve) Clone() *PolylineCurve {
	out := make([]geom.Point3, len(pl.Points))
	copy(out, pl.Points)
	return &PolylineCurve{Points: out}
}
