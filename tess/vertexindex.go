// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	p2t "github.com/ByteArena/poly2tri-go"

	"github.com/cpmech/brep/geom"
	"github.com/cpmech/brep/mesh"
)

// p2tIndexMap maps a CDT vertex handle (poly2tri-go reuses one *Point
// per distinct input coordinate across the triangles it returns) to
// the output mesh's vertex index, evaluating the surface exactly once
// per distinct parameter pair (spec.md §4.6 step 4).
type p2tIndexMap struct {
	indices map[*p2t.Point]int
}

func newP2TIndexMap() *p2tIndexMap {
	return &p2tIndexMap{indices: make(map[*p2t.Point]int)}
}

func (m *p2tIndexMap) index(out *mesh.PolygonMesh, surface geom.Surface, p *p2t.Point) int {
	if idx, ok := m.indices[p]; ok {
		return idx
	}
	u, v := p.X, p.Y
	pos := surface.Subs(u, v)
	normal := surface.Normal(u, v)
	idx := out.AddVertex(pos, geom.Point2{X: u, Y: v}, normal)
	m.indices[p] = idx
	return idx
}
