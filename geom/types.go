// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom defines the value types and capability traits that the
// tessellation core consumes. Curve and surface definitions themselves
// (B-spline/NURBS evaluation) are not part of this package; it only
// describes the shape that a plugged-in curve or surface must have.
package geom

import "math"

// Point2 is a point in the 2D parameter plane.
type Point2 struct{ X, Y float64 }

// Vector2 is a free vector in the 2D parameter plane.
type Vector2 struct{ X, Y float64 }

// Point3 is a point in 3D space.
type Point3 struct{ X, Y, Z float64 }

// Vector3 is a free vector in 3D space.
type Vector3 struct{ X, Y, Z float64 }

// Add returns p+v.
func (p Point2) Add(v Vector2) Point2 { return Point2{p.X + v.X, p.Y + v.Y} }

// Sub returns the vector from q to p (p-q).
func (p Point2) Sub(q Point2) Vector2 { return Vector2{p.X - q.X, p.Y - q.Y} }

// Scale returns s*v.
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Add returns v+w.
func (v Vector2) Add(w Vector2) Vector2 { return Vector2{v.X + w.X, v.Y + w.Y} }

// Dot returns the Euclidean inner product of v and w.
func (v Vector2) Dot(w Vector2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the scalar 2D cross product v.X*w.Y - v.Y*w.X.
func (v Vector2) Cross(w Vector2) float64 { return v.X*w.Y - v.Y*w.X }

// Norm returns the Euclidean length of v.
func (v Vector2) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Add returns p+v.
func (p Point3) Add(v Vector3) Point3 { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// Sub returns the vector from q to p (p-q).
func (p Point3) Sub(q Point3) Vector3 { return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Distance returns the Euclidean distance between p and q.
func (p Point3) Distance(q Point3) float64 { return p.Sub(q).Norm() }

// Scale returns s*v.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Add returns v+w.
func (v Vector3) Add(w Vector3) Vector3 { return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v-w.
func (v Vector3) Sub(w Vector3) Vector3 { return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Dot returns the Euclidean inner product of v and w.
func (v Vector3) Dot(w Vector3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the 3D cross product v x w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length; the zero vector is
// returned unchanged.
func (v Vector3) Normalize() Vector3 {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}
