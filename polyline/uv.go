// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polyline

import (
	"math"

	"github.com/cpmech/brep/geom"
)

// UVPolyline is the transient assembled boundary of a face in its
// surface's (u,v) parameter domain: a set of positions plus the
// segment index pairs connecting them, possibly several closed loops
// concatenated one after another (spec.md §4.4, Data Model "Polyline
// (UV)").
type UVPolyline struct {
	Positions []geom.Point2
	Indices   [][2]int
}

// New returns an empty UV polyline.
func New() *UVPolyline { return &UVPolyline{} }

// AddWire projects one wire's edge polylines (each already oriented in
// wire-traversal order, as 3D points) into the surface's parameter
// domain and appends the resulting closed loop to up. It returns
// false, leaving up unchanged in spirit but possibly partially
// appended, if inversion fails for any point — the caller (spec.md
// §4.4) must then treat the whole face as having no polygon.
//
// Three policies are applied, per spec.md §4.4:
//  1. Hint chaining within an edge; the hint resets to none at each
//     edge boundary, then re-establishes from that edge's own first
//     point.
//  2. Periodic seam unwrapping against the last-placed (u,v), when the
//     surface declares a period.
//  3. Each edge contributes its polyline minus its last point, and the
//     final index loop wraps modulo the wire's accumulated point
//     count.
func (up *UVPolyline) AddWire(edgePolylines [][]geom.Point3, surface geom.Surface, invertParam geom.ParamInverter) bool {
	start := len(up.Positions)
	var prevU, prevV *float64

	for _, pts := range edgePolylines {
		if len(pts) == 0 {
			continue
		}
		usable := pts[:len(pts)-1]
		hint := geom.NoHint2D()
		for _, p := range usable {
			u, v, ok := invertParam(surface, p, hint)
			if !ok {
				return false
			}
			u, v = unwrapPeriodic(surface, u, v, prevU, prevV)
			up.Positions = append(up.Positions, geom.Point2{X: u, Y: v})
			hint = geom.AtParameter2D(u, v)
			uu, vv := u, v
			prevU, prevV = &uu, &vv
		}
	}

	n := len(up.Positions) - start
	for i := 0; i < n; i++ {
		a := start + i
		b := start + (i+1)%n
		up.Indices = append(up.Indices, [2]int{a, b})
	}
	return true
}

// unwrapPeriodic resolves seam ambiguity: among {u, u-Pu, u+Pu} (when
// the surface declares a u-period), it keeps the candidate nearest the
// previously placed u; independently for v.
func unwrapPeriodic(surface geom.Surface, u, v float64, prevU, prevV *float64) (float64, float64) {
	if pu, ok := periodU(surface); ok && prevU != nil {
		u = nearestCandidate(u, *prevU, pu)
	}
	if pv, ok := periodV(surface); ok && prevV != nil {
		v = nearestCandidate(v, *prevV, pv)
	}
	return u, v
}

func periodU(surface geom.Surface) (float64, bool) {
	if p, ok := surface.(geom.PeriodicU); ok {
		return p.UPeriod()
	}
	return 0, false
}

func periodV(surface geom.Surface) (float64, bool) {
	if p, ok := surface.(geom.PeriodicV); ok {
		return p.VPeriod()
	}
	return 0, false
}

func nearestCandidate(x, prev, period float64) float64 {
	best := x
	bestDist := math.Abs(x - prev)
	for _, c := range [2]float64{x - period, x + period} {
		if d := math.Abs(c - prev); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
