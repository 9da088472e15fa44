// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import "github.com/cpmech/brep/geom"

// loopFilter walks loop's boundary segments in order and decides,
// vertex by vertex, which ones become constraint-ready contour
// vertices fed to poly2tri-go (spec.md §4.6 step 2):
//
//   - if the segment from the last accepted vertex to the next one is
//     legal (non-degenerate, does not cross an already-accepted
//     segment), accept it;
//   - otherwise the last accepted vertex becomes pending and the next
//     segment attempted is pending -> the vertex AFTER the rejected
//     one, skipping the intermediate vertex rather than feeding
//     poly2tri a contour that would corrupt the triangulation;
//   - pending clears as soon as a constraint succeeds.
func loopFilter(loop []geom.Point2, tol float64) []geom.Point2 {
	if len(loop) == 0 {
		return nil
	}
	accepted := []geom.Point2{loop[0]}
	i := 1
	for i < len(loop) {
		b := loop[i]
		a := accepted[len(accepted)-1]
		if legalConstraint(a, b, accepted, tol) {
			accepted = append(accepted, b)
			i++
			continue
		}
		if i+1 < len(loop) {
			succ := loop[i+1]
			if legalConstraint(a, succ, accepted, tol) {
				accepted = append(accepted, succ)
				i += 2
				continue
			}
		}
		// neither b nor its successor recovers a legal constraint
		// from the pending vertex: drop b and try the next one.
		i++
	}
	return accepted
}

// legalConstraint reports whether the segment a->b may be added as a
// boundary constraint: it must have non-zero length at the tessellator
// tolerance and must not cross any already-accepted segment of the
// contour built so far.
func legalConstraint(a, b geom.Point2, existing []geom.Point2, tol float64) bool {
	if a.Sub(b).Norm() <= tol {
		return false
	}
	for i := 0; i+1 < len(existing); i++ {
		c, d := existing[i], existing[i+1]
		if (c == a && d == b) || (c == b && d == a) {
			continue
		}
		if segmentsCross(a, b, c, d) {
			return false
		}
	}
	return true
}

// segmentsCross reports whether open segments a-b and c-d properly
// cross (shared endpoints do not count as crossing).
func segmentsCross(a, b, c, d geom.Point2) bool {
	d1 := orientation(c, d, a)
	d2 := orientation(c, d, b)
	d3 := orientation(a, b, c)
	d4 := orientation(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func orientation(a, b, c geom.Point2) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// pointSet is a tolerance-bucketed membership set used to reject
// near-duplicate points the way a CDT primitive silently rejects
// points too close to an existing vertex (spec.md §4.6 steps 1 and 3).
type pointSet struct {
	tol    float64
	points []geom.Point2
}

func newPointSet(tol float64) *pointSet { return &pointSet{tol: tol} }

func (s *pointSet) has(p geom.Point2) bool {
	for _, q := range s.points {
		if p.Sub(q).Norm() <= s.tol {
			return true
		}
	}
	return false
}

func (s *pointSet) add(p geom.Point2) { s.points = append(s.points, p) }
