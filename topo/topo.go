// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package topo provides the minimal topology contracts spec.md §1
// requires as external collaborators (stable identity, orientation
// flags, cloning payloads) plus one concrete implementation so the
// tessellation core is exercisable end to end. The full topology data
// structure (wires/faces/shells/solids as a modeling kernel) is an
// explicit non-goal; this package only goes as far as the identity
// and orientation contracts that §4.7's face/shell driver consumes.
package topo

import (
	"sync/atomic"

	"github.com/cpmech/brep/geom"
)

var nextID uint64

func allocID() uint64 { return atomic.AddUint64(&nextID, 1) }

// Vertex is a topological vertex: a stable identity carrying a 3D
// point payload. Identity is independent of payload — two *Vertex
// values are the same topological vertex iff they are the same
// pointer, regardless of what Point holds at any instant.
type Vertex struct {
	id    uint64
	Point geom.Point3
}

// NewVertex creates a new topological vertex with its own identity.
func NewVertex(p geom.Point3) *Vertex { return &Vertex{id: allocID(), Point: p} }

// ID returns v's stable identity.
func (v *Vertex) ID() uint64 { return v.id }

// Edge is a topological edge: a stable identity, its front/back
// vertices (in an absolute, orientation-independent sense) and a
// curve payload.
type Edge struct {
	id          uint64
	front, back *Vertex
	Curve       geom.Curve
}

// NewEdge creates a new topological edge with its own identity.
func NewEdge(front, back *Vertex, curve geom.Curve) *Edge {
	return &Edge{id: allocID(), front: front, back: back, Curve: curve}
}

// ID returns e's stable identity.
func (e *Edge) ID() uint64 { return e.id }

// AbsoluteFront returns e's front vertex regardless of any reference's
// orientation flag.
func (e *Edge) AbsoluteFront() *Vertex { return e.front }

// AbsoluteBack returns e's back vertex regardless of any reference's
// orientation flag.
func (e *Edge) AbsoluteBack() *Vertex { return e.back }

// OrientedEdge is one wire's reference to an edge: the shared edge
// identity plus a per-reference orientation flag. Front()/Back() are
// "as traversed" — Invert() is applied lazily on read rather than by
// duplicating the edge payload per orientation (spec.md §9).
type OrientedEdge struct {
	Edge        *Edge
	Orientation bool
}

// Front returns the vertex this oriented edge starts from.
func (oe OrientedEdge) Front() *Vertex {
	if oe.Orientation {
		return oe.Edge.front
	}
	return oe.Edge.back
}

// Back returns the vertex this oriented edge ends at.
func (oe OrientedEdge) Back() *Vertex {
	if oe.Orientation {
		return oe.Edge.back
	}
	return oe.Edge.front
}

// OrientedCurve returns oe's curve as traversed: oe.Edge.Curve as-is
// when Orientation is true, or its Invert() when false.
func (oe OrientedEdge) OrientedCurve() geom.Curve {
	if oe.Orientation {
		return oe.Edge.Curve
	}
	inv, ok := oe.Edge.Curve.(geom.Invertible)
	if !ok {
		panic("topo: edge curve does not implement geom.Invertible but is referenced with orientation=false")
	}
	return inv.Invert()
}

// Wire is an ordered, closed sequence of oriented edges: the head of
// each edge equals the tail of the previous one, in oriented sense.
type Wire []OrientedEdge

// Face is a topological face: an outer wire plus hole wires, a
// surface payload and an orientation flag.
type Face struct {
	id          uint64
	Outer       Wire
	Holes       []Wire
	Surface     geom.Surface
	Orientation bool
}

// NewFace creates a new topological face with its own identity.
func NewFace(outer Wire, holes []Wire, surface geom.Surface, orientation bool) *Face {
	return &Face{id: allocID(), Outer: outer, Holes: holes, Surface: surface, Orientation: orientation}
}

// ID returns f's stable identity.
func (f *Face) ID() uint64 { return f.id }

// Boundaries returns the outer wire followed by the hole wires, the
// order spec.md §4.4 assembles a UV polyline in.
func (f *Face) Boundaries() []Wire {
	out := make([]Wire, 0, 1+len(f.Holes))
	out = append(out, f.Outer)
	out = append(out, f.Holes...)
	return out
}

// Shell is an ordered collection of faces.
type Shell []*Face
