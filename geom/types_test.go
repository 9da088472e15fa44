// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestVector3CrossAndDot(tst *testing.T) {
	chk.PrintTitle("Vector3: Cross is orthogonal to both operands, Dot recovers the squared norm")
	u := Vector3{X: 1, Y: 0, Z: 0}
	v := Vector3{X: 0, Y: 1, Z: 0}
	c := u.Cross(v)
	chk.Vector(tst, "u x v", 1e-15, []float64{c.X, c.Y, c.Z}, []float64{0, 0, 1})
	chk.Scalar(tst, "c.Dot(u)", 1e-15, c.Dot(u), 0)
	chk.Scalar(tst, "c.Dot(v)", 1e-15, c.Dot(v), 0)

	w := Vector3{X: 3, Y: 4, Z: 0}
	chk.Scalar(tst, "w.Dot(w)", 1e-15, w.Dot(w), 25)
	chk.Scalar(tst, "w.Norm()", 1e-15, w.Norm(), 5)
}

func TestVector3Normalize(tst *testing.T) {
	chk.PrintTitle("Vector3.Normalize: unit length, zero vector untouched")
	v := Vector3{X: 3, Y: 4, Z: 0}
	n := v.Normalize()
	chk.Scalar(tst, "n.Norm()", 1e-14, n.Norm(), 1)

	zero := Vector3{}
	chk.Scalar(tst, "zero.Normalize().Norm()", 1e-15, zero.Normalize().Norm(), 0)
}

func TestPoint3SubAndDistance(tst *testing.T) {
	chk.PrintTitle("Point3.Sub/Distance: consistent with each other")
	a := Point3{X: 1, Y: 2, Z: 3}
	b := Point3{X: 4, Y: 6, Z: 3}
	d := a.Sub(b)
	chk.Scalar(tst, "|a-b|", 1e-15, d.Norm(), a.Distance(b))
	chk.Scalar(tst, "a.Distance(b)", 1e-15, a.Distance(b), 5)
}

func TestVector2CrossAndDot(tst *testing.T) {
	chk.PrintTitle("Vector2: Cross is the signed area, Dot is the inner product")
	u := Vector2{X: 1, Y: 0}
	v := Vector2{X: 0, Y: 1}
	chk.Scalar(tst, "u x v", 1e-15, u.Cross(v), 1)
	chk.Scalar(tst, "v x u", 1e-15, v.Cross(u), -1)
	chk.Scalar(tst, "u . v", 1e-15, u.Dot(v), 0)
}

func TestPoint2AddSubRoundTrip(tst *testing.T) {
	chk.PrintTitle("Point2.Add/Sub: Add(p.Sub(q)) recovers p from q")
	p := Point2{X: 5, Y: -2}
	q := Point2{X: 1, Y: 1}
	got := q.Add(p.Sub(q))
	chk.Scalar(tst, "got.X", 1e-15, got.X, p.X)
	chk.Scalar(tst, "got.Y", 1e-15, got.Y, p.Y)
}
