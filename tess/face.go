// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"github.com/cpmech/brep/config"
	"github.com/cpmech/brep/geom"
	"github.com/cpmech/brep/mesh"
	"github.com/cpmech/brep/polyline"
)

// tessellateWorkFace runs spec.md §4.4-§4.6 over one face's working
// copy: project its boundaries to a UV polyline, triangulate, lift to
// 3D, and invert the result if the face's own orientation is false.
// A nil mesh (with ok=false) means "no polygon": boundary inversion
// failed somewhere, or the triangulation produced no triangle, and the
// caller records an empty mesh payload for the face (spec.md §7).
func tessellateWorkFace(wf *workFace, opts config.Options, invertParam geom.ParamInverter) (*mesh.PolygonMesh, bool) {
	boundary := polyline.New()
	for _, wire := range wf.boundaries() {
		edgePolylines := make([][]geom.Point3, len(wire))
		for i, oe := range wire {
			edgePolylines[i] = oe.points()
		}
		if !boundary.AddWire(edgePolylines, wf.surface, invertParam) {
			return nil, false
		}
	}

	m, ok := triangulateFace(boundary, wf.surface, opts.Tol)
	if !ok {
		return nil, false
	}
	if !wf.orientation {
		m = m.Inverse()
	}
	return m, true
}
