// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"github.com/cpmech/brep/geom"
	"github.com/cpmech/brep/polyline"
	"github.com/cpmech/brep/topo"
)

// workEdge is the driver's per-run clone of a topological edge: its
// curve payload has already been approximated to a 3D polyline, once
// per edge identity, so that edges shared between two faces are
// tessellated exactly once (spec.md §4.7 step 2).
type workEdge struct {
	front, back *topo.Vertex
	poly        *polyline.PolylineCurve
}

// workOrientedEdge is a wire's reference to a workEdge plus the
// orientation it is traversed with.
type workOrientedEdge struct {
	edge        *workEdge
	orientation bool
}

// points returns this oriented edge's polyline points in traversal
// order, applying the reversal lazily on read rather than duplicating
// the edge's point slice per orientation (spec.md §9).
func (oe workOrientedEdge) points() []geom.Point3 {
	src := oe.edge.poly.Points
	out := make([]geom.Point3, len(src))
	if oe.orientation {
		copy(out, src)
		return out
	}
	for i, p := range src {
		out[len(src)-1-i] = p
	}
	return out
}

type workWire []workOrientedEdge

// workFace is the driver's per-run clone of a topological face: new
// wires built from workEdges, carrying the original surface and
// orientation flag straight through (spec.md §4.7 step 3).
type workFace struct {
	outer       workWire
	holes       []workWire
	surface     geom.Surface
	orientation bool
}

func (wf *workFace) boundaries() []workWire {
	out := make([]workWire, 0, 1+len(wf.holes))
	out = append(out, wf.outer)
	out = append(out, wf.holes...)
	return out
}

// vertexMap clones each distinct topological vertex identity exactly
// once (spec.md §4.7 step 1).
type vertexMap = topo.EntryMap[uint64, *topo.Vertex]

func newVertexMap() *vertexMap { return topo.NewEntryMap[uint64, *topo.Vertex]() }

func cloneVertex(vmap *vertexMap, v *topo.Vertex) *topo.Vertex {
	return vmap.GetOrInsert(v.ID(), func() *topo.Vertex { return topo.NewVertex(v.Point) })
}

// edgeMap clones each distinct topological edge identity exactly once,
// attaching its polyline approximation (spec.md §4.7 step 2).
type edgeMap = topo.EntryMap[uint64, *workEdge]

func newEdgeMap() *edgeMap { return topo.NewEntryMap[uint64, *workEdge]() }

func cloneEdge(vmap *vertexMap, emap *edgeMap, e *topo.Edge, tol float64) *workEdge {
	return emap.GetOrInsert(e.ID(), func() *workEdge {
		front := cloneVertex(vmap, e.AbsoluteFront())
		back := cloneVertex(vmap, e.AbsoluteBack())
		t0, t1 := e.Curve.ParameterRange()
		poly := polyline.FromCurve(e.Curve, t0, t1, tol)
		return &workEdge{front: front, back: back, poly: poly}
	})
}

// buildWorkWire reconstructs a new wire of new (cloned) edges from an
// original topological wire, orienting each per the original oriented
// edge's flag (spec.md §4.7 step 3).
func buildWorkWire(vmap *vertexMap, emap *edgeMap, wire topo.Wire, tol float64) workWire {
	out := make(workWire, len(wire))
	for i, oe := range wire {
		we := cloneEdge(vmap, emap, oe.Edge, tol)
		out[i] = workOrientedEdge{edge: we, orientation: oe.Orientation}
	}
	return out
}

// buildWorkFace reconstructs a face's working copy, carrying the
// original face orientation flag through unchanged; when it is false,
// tessellateWorkFace inverts the resulting mesh (spec.md §4.7 step 3,
// last sentence). The boundaries themselves are not reversed.
func buildWorkFace(vmap *vertexMap, emap *edgeMap, face *topo.Face, tol float64) *workFace {
	wf := &workFace{
		outer:       buildWorkWire(vmap, emap, face.Outer, tol),
		surface:     face.Surface,
		orientation: face.Orientation,
	}
	for _, h := range face.Holes {
		wf.holes = append(wf.holes, buildWorkWire(vmap, emap, h, tol))
	}
	return wf
}
