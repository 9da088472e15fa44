// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"

	"github.com/cpmech/brep/geom"
)

func triangle() *PolygonMesh {
	m := New()
	n := geom.Vector3{Z: 1}
	a := m.AddVertex(geom.Point3{X: 0, Y: 0}, geom.Point2{X: 0, Y: 0}, n)
	b := m.AddVertex(geom.Point3{X: 1, Y: 0}, geom.Point2{X: 1, Y: 0}, n)
	c := m.AddVertex(geom.Point3{X: 0, Y: 1}, geom.Point2{X: 0, Y: 1}, n)
	m.AddTriangle(a, b, c)
	return m
}

func TestPolygonMeshEmpty(tst *testing.T) {
	chk.PrintTitle("PolygonMesh.Empty: a freshly built mesh is empty, a triangulated one is not")
	assert.True(tst, New().Empty())
	assert.False(tst, triangle().Empty())
}

func TestPolygonMeshInverse(tst *testing.T) {
	chk.PrintTitle("PolygonMesh.Inverse: reverses winding and negates normals")
	m := triangle()
	inv := m.Inverse()
	assert.Equal(tst, []int{2, 1, 0}, inv.Faces[0])
	chk.Scalar(tst, "normal.Z", 1e-15, inv.Normals[0].Z, -1)
	// Inverse must not mutate the source mesh.
	assert.Equal(tst, []int{0, 1, 2}, m.Faces[0])
	chk.Scalar(tst, "original normal.Z", 1e-15, m.Normals[0].Z, 1)
}

func TestHarmonizeNormalsFlipsDisagreeingWinding(tst *testing.T) {
	chk.PrintTitle("HarmonizeNormals: flips a triangle whose winding opposes its vertex normals")
	m := New()
	up := geom.Vector3{Z: 1}
	a := m.AddVertex(geom.Point3{X: 0, Y: 0}, geom.Point2{}, up)
	b := m.AddVertex(geom.Point3{X: 1, Y: 0}, geom.Point2{}, up)
	c := m.AddVertex(geom.Point3{X: 0, Y: 1}, geom.Point2{}, up)
	// a,c,b winds clockwise as seen from +z: geometric normal is -z,
	// which disagrees with the +z vertex normals and must be flipped.
	m.AddTriangle(a, c, b)
	HarmonizeNormals(m)
	assert.Equal(tst, []int{b, c, a}, m.Faces[0])
}

func TestHarmonizeNormalsLeavesAgreeingWindingAlone(tst *testing.T) {
	chk.PrintTitle("HarmonizeNormals: a triangle already agreeing with its normals is untouched")
	m := triangle()
	before := append([]int(nil), m.Faces[0]...)
	HarmonizeNormals(m)
	assert.Equal(tst, before, m.Faces[0])
}
