// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inclusion implements the domain inclusion test of spec.md
// §4.5: a signed crossing count against an unconnected polyline
// boundary (a point is inside when the count is positive), using a ray in a pseudo-random but deterministic
// direction so that axis-aligned degeneracies (a very common failure
// mode of "cast the ray along +x") are avoided without sacrificing
// reproducibility.
package inclusion

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/cpmech/brep/geom"
	"github.com/cpmech/brep/polyline"
)

// Contains reports whether c lies inside the region bounded by poly
// (possibly several closed loops concatenated together), per spec.md
// §4.5. tol is the on-edge ambiguity tolerance on the ray
// intersection parameter.
func Contains(poly *polyline.UVPolyline, c geom.Point2, tol float64) bool {
	theta := 2 * math.Pi * hashUnit(c)
	r := geom.Vector2{X: math.Cos(theta), Y: math.Sin(theta)}

	counter := 0
	for _, idx := range poly.Indices {
		a := poly.Positions[idx[0]].Sub(c)
		b := poly.Positions[idx[1]].Sub(c)
		s0 := r.Cross(a)
		s1 := r.Cross(b)
		s2 := a.Cross(b)

		denom := s1 - s0
		if denom == 0 {
			continue
		}
		x := s2 / denom

		if math.Abs(x) <= tol && s0*s1 < 0 {
			return false
		}
		if x > 0 {
			switch {
			case s0 <= 0 && s1 > 0:
				counter++
			case s0 >= 0 && s1 < 0:
				counter--
			}
		}
	}
	return counter > 0
}

// hashUnit returns a deterministic value in [0,1) that is a pure
// function of c, used to pick the inclusion-test ray angle. A pure
// hash, not a seeded PRNG, is required here: the same query point must
// always yield the same ray so that repeated inclusion queries for the
// same (u,v) during CDT filtering are consistent within a run and
// across runs (spec.md §5, "Hashing for the inclusion ray must be a
// pure function of the query point").
func hashUnit(c geom.Point2) float64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(c.X))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(c.Y))
	h := xxhash.Sum64(buf[:])
	return float64(h>>11) / float64(uint64(1)<<53)
}
