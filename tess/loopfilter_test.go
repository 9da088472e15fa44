// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"

	"github.com/cpmech/brep/geom"
)

func TestLoopFilterAcceptsSimplePolygon(tst *testing.T) {
	chk.PrintTitle("loopFilter: a simple convex polygon passes through untouched")
	square := []geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	out := loopFilter(square, 1e-9)
	assert.Equal(tst, square, out)
}

func TestLoopFilterDropsDegenerateVertex(tst *testing.T) {
	chk.PrintTitle("loopFilter: a vertex coincident with the last accepted one is dropped")
	loop := []geom.Point2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	out := loopFilter(loop, 1e-6)
	assert.Equal(tst, []geom.Point2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, out)
}

func TestLoopFilterSkipsVertexCausingCrossing(tst *testing.T) {
	chk.PrintTitle("loopFilter: a vertex whose constraint would cross an accepted edge is skipped, its successor recovers")
	// A(0,0)->B(1,1)->C(0,1) accept cleanly; C->D(1,0) would cross the
	// already-accepted A-B diagonal, so D is skipped and C->E(-1,1),
	// which crosses nothing, is accepted in its place.
	a := geom.Point2{X: 0, Y: 0}
	b := geom.Point2{X: 1, Y: 1}
	c := geom.Point2{X: 0, Y: 1}
	d := geom.Point2{X: 1, Y: 0}
	e := geom.Point2{X: -1, Y: 1}
	loop := []geom.Point2{a, b, c, d, e}
	out := loopFilter(loop, 1e-9)
	assert.Equal(tst, []geom.Point2{a, b, c, e}, out)
}

func TestSegmentsCrossDetectsProperCrossing(tst *testing.T) {
	chk.PrintTitle("segmentsCross: detects a proper crossing, ignores shared endpoints")
	assert.True(tst, segmentsCross(
		geom.Point2{X: 0, Y: 0}, geom.Point2{X: 1, Y: 1},
		geom.Point2{X: 0, Y: 1}, geom.Point2{X: 1, Y: 0}))
	assert.False(tst, segmentsCross(
		geom.Point2{X: 0, Y: 0}, geom.Point2{X: 1, Y: 0},
		geom.Point2{X: 1, Y: 0}, geom.Point2{X: 1, Y: 1}))
}

func TestPointSetToleranceBucketing(tst *testing.T) {
	chk.PrintTitle("pointSet: membership respects the configured tolerance")
	s := newPointSet(1e-3)
	s.add(geom.Point2{X: 0.5, Y: 0.5})
	assert.True(tst, s.has(geom.Point2{X: 0.5 + 5e-4, Y: 0.5}))
	assert.False(tst, s.has(geom.Point2{X: 0.6, Y: 0.5}))
}
