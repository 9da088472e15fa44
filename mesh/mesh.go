// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mesh defines the tessellation output type, PolygonMesh, and
// the normal-consistency pass that flips triangles whose geometric
// winding disagrees with their averaged vertex normal (spec.md §4.6
// step 5, grounded on the NormalFilters pass of
// original_source/truck-meshalgo).
package mesh

import "github.com/cpmech/brep/geom"

// PolygonMesh holds one vertex-attribute triple (position, uv,
// normal) per vertex index and a list of faces, each a list of vertex
// indices (triangles, for the output of this package's tessellator,
// but the type accommodates quads/other per spec.md's data model).
type PolygonMesh struct {
	Positions []geom.Point3
	UVs       []geom.Point2
	Normals   []geom.Vector3
	Faces     [][]int
}

// New returns an empty mesh.
func New() *PolygonMesh { return &PolygonMesh{} }

// AddVertex appends one attribute triple and returns its shared index.
func (m *PolygonMesh) AddVertex(pos geom.Point3, uv geom.Point2, normal geom.Vector3) int {
	idx := len(m.Positions)
	m.Positions = append(m.Positions, pos)
	m.UVs = append(m.UVs, uv)
	m.Normals = append(m.Normals, normal)
	return idx
}

// AddTriangle appends a triangular face referencing three existing
// vertex indices.
func (m *PolygonMesh) AddTriangle(i, j, k int) {
	m.Faces = append(m.Faces, []int{i, j, k})
}

// Empty reports whether the mesh carries no geometry — the "no
// polygon" marker of spec.md §7.
func (m *PolygonMesh) Empty() bool { return len(m.Faces) == 0 }

// Inverse reverses every face's winding and negates every vertex
// normal, used when a face's topological orientation flag is false
// (spec.md §4.7).
func (m *PolygonMesh) Inverse() *PolygonMesh {
	out := &PolygonMesh{
		Positions: m.Positions,
		UVs:       m.UVs,
		Normals:   make([]geom.Vector3, len(m.Normals)),
		Faces:     make([][]int, len(m.Faces)),
	}
	for i, n := range m.Normals {
		out.Normals[i] = n.Scale(-1)
	}
	for i, f := range m.Faces {
		rev := make([]int, len(f))
		for j, idx := range f {
			rev[len(f)-1-j] = idx
		}
		out.Faces[i] = rev
	}
	return out
}

// HarmonizeNormals flips any triangle whose geometric normal opposes
// the averaged normal of its three vertices.
func HarmonizeNormals(m *PolygonMesh) {
	for fi, f := range m.Faces {
		if len(f) < 3 {
			continue
		}
		p0, p1, p2 := m.Positions[f[0]], m.Positions[f[1]], m.Positions[f[2]]
		geo := p1.Sub(p0).Cross(p2.Sub(p0))

		var avg geom.Vector3
		for _, idx := range f {
			avg = avg.Add(m.Normals[idx])
		}
		if geo.Dot(avg) < 0 {
			m.Faces[fi] = reversed(f)
		}
	}
}

func reversed(f []int) []int {
	out := make([]int, len(f))
	for i, v := range f {
		out[len(f)-1-i] = v
	}
	return out
}
