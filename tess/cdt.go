// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tess implements the constrained Delaunay tessellator
// (spec.md §4.6), the per-face driver (§4.4-§4.6) and the
// shell/compressed-shell orchestration (§4.7-§4.8). The CDT primitive
// itself is github.com/ByteArena/poly2tri-go, a sweep-line
// constrained-Delaunay triangulator of a simple polygon with holes —
// the Go-ecosystem analogue of the `spade` crate the original Rust
// source wraps. Unlike spade, poly2tri-go builds its boundary as an
// up-front simple-polygon contour rather than exposing a per-edge
// "try to insert this constraint, tell me if it was rejected" call;
// loopFilter below reproduces the reject-and-skip-one-vertex boundary
// policy of spec.md §4.6 step 2 at the contour-assembly stage, before
// poly2tri ever sees the loop, so the externally observable behavior
// (a rejected constraint causes one intermediate boundary vertex to be
// skipped, not a crash or a corrupted triangulation) is preserved.
package tess

import (
	p2t "github.com/ByteArena/poly2tri-go"

	"github.com/cpmech/brep/geom"
	"github.com/cpmech/brep/inclusion"
	"github.com/cpmech/brep/mesh"
	"github.com/cpmech/brep/polyline"
)

// triangulateFace runs the constrained Delaunay triangulation over one
// face's assembled UV boundary, filters interior faces by the domain
// inclusion test, and lifts accepted triangles to 3D via surface.
func triangulateFace(boundary *polyline.UVPolyline, surface geom.Surface, tol float64) (*mesh.PolygonMesh, bool) {
	loops := splitLoops(boundary)
	if len(loops) == 0 {
		return nil, false
	}

	filtered := make([][]geom.Point2, len(loops))
	for i, loop := range loops {
		filtered[i] = loopFilter(loop, tol)
		if len(filtered[i]) < 3 {
			return nil, false
		}
	}

	contour := toP2TPoints(filtered[0])
	sw := p2t.NewSweepContext(contour, p2t.SweepContextOptions{})
	for _, hole := range filtered[1:] {
		sw.AddHole(toP2TPoints(hole))
	}

	seen := newPointSet(tol)
	for _, loop := range filtered {
		for _, p := range loop {
			seen.add(p)
		}
	}

	u0, v0, u1, v1 := boundsOf(filtered)
	for _, p := range interiorSamples(surface, u0, v0, u1, v1, tol) {
		if !inclusion.Contains(boundary, p, tol) {
			continue
		}
		if seen.has(p) {
			continue // rejected: duplicate within the CDT's own tolerance
		}
		seen.add(p)
		sw.AddPoint(p2t.NewPoint(p.X, p.Y))
	}

	(&p2t.Sweep{}).Triangulate(sw)

	m := mesh.New()
	vertexIndex := newP2TIndexMap()
	for _, tri := range sw.GetTriangles() {
		a, b, c := tri.Point(0), tri.Point(1), tri.Point(2)
		centroid := geom.Point2{
			X: (a.X + b.X + c.X) / 3,
			Y: (a.Y + b.Y + c.Y) / 3,
		}
		if !inclusion.Contains(boundary, centroid, tol) {
			continue
		}
		ia := vertexIndex.index(m, surface, a)
		ib := vertexIndex.index(m, surface, b)
		ic := vertexIndex.index(m, surface, c)
		m.AddTriangle(ia, ib, ic)
	}

	if m.Empty() {
		return nil, false
	}
	mesh.HarmonizeNormals(m)
	return m, true
}

// splitLoops breaks boundary's flat index list back into its
// constituent closed loops (one per wire originally added via
// UVPolyline.AddWire), in traversal order.
func splitLoops(boundary *polyline.UVPolyline) [][]geom.Point2 {
	var loops [][]geom.Point2
	n := len(boundary.Positions)
	used := make([]bool, n)
	for _, idx := range boundary.Indices {
		if used[idx[0]] {
			continue
		}
		// walk the loop starting at idx[0] following Indices order
		var loop []geom.Point2
		start := idx[0]
		cur := start
		for {
			if used[cur] {
				break
			}
			used[cur] = true
			loop = append(loop, boundary.Positions[cur])
			next, ok := successorOf(boundary, cur)
			if !ok || next == start {
				break
			}
			cur = next
		}
		if len(loop) > 0 {
			loops = append(loops, loop)
		}
	}
	return loops
}

func successorOf(boundary *polyline.UVPolyline, from int) (int, bool) {
	for _, idx := range boundary.Indices {
		if idx[0] == from {
			return idx[1], true
		}
	}
	return 0, false
}

func toP2TPoints(pts []geom.Point2) []*p2t.Point {
	out := make([]*p2t.Point, len(pts))
	for i, p := range pts {
		out[i] = p2t.NewPoint(p.X, p.Y)
	}
	return out
}

func boundsOf(loops [][]geom.Point2) (u0, v0, u1, v1 float64) {
	first := loops[0][0]
	u0, v0, u1, v1 = first.X, first.Y, first.X, first.Y
	for _, loop := range loops {
		for _, p := range loop {
			if p.X < u0 {
				u0 = p.X
			}
			if p.X > u1 {
				u1 = p.X
			}
			if p.Y < v0 {
				v0 = p.Y
			}
			if p.Y > v1 {
				v1 = p.Y
			}
		}
	}
	return
}

// interiorSamples asks the surface for a parameter subdivision over
// the boundary's bounding box (spec.md §4.6 step 3), falling back to
// a tolerance-derived uniform grid when the surface does not
// implement geom.ParameterDivision2D.
func interiorSamples(surface geom.Surface, u0, v0, u1, v1, tol float64) []geom.Point2 {
	var udiv, vdiv []float64
	if pd, ok := surface.(geom.ParameterDivision2D); ok {
		udiv, vdiv = pd.ParameterDivision([2]float64{u0, u1}, [2]float64{v0, v1}, tol)
	} else {
		udiv = uniformDivision(u0, u1, tol)
		vdiv = uniformDivision(v0, v1, tol)
	}
	pts := make([]geom.Point2, 0, len(udiv)*len(vdiv))
	for _, u := range udiv {
		for _, v := range vdiv {
			pts = append(pts, geom.Point2{X: u, Y: v})
		}
	}
	return pts
}

func uniformDivision(a, b, tol float64) []float64 {
	if tol <= 0 {
		tol = 1e-6
	}
	n := int((b - a) / tol)
	if n < 2 {
		n = 2
	}
	if n > 256 {
		n = 256
	}
	out := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		out[i] = a + (b-a)*float64(i)/float64(n)
	}
	return out
}
