// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import "github.com/cpmech/brep/geom"

// CompressedEdge is an index-addressed edge: the indices of its two
// endpoint vertices in the owning CompressedShell.Vertices array, plus
// its curve payload (spec.md §4.8).
type CompressedEdge struct {
	VertexIndices [2]int
	Curve         geom.Curve
}

// EdgeRef is a face boundary's reference to a compressed edge: its
// index in CompressedShell.Edges plus an orientation flag.
type EdgeRef struct {
	Index       int
	Orientation bool
}

// CompressedFace is an index-addressed face: boundaries (outer first,
// then holes) as lists of edge references, an orientation flag and a
// surface payload.
type CompressedFace struct {
	Boundaries  [][]EdgeRef
	Orientation bool
	Surface     geom.Surface
}

// CompressedShell stores vertices as a flat array, edges as
// vertex-index-pair records and faces as edge-reference records
// (spec.md §4.8).
type CompressedShell struct {
	Vertices []geom.Point3
	Edges    []CompressedEdge
	Faces    []CompressedFace
}
