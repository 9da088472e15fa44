// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"golang.org/x/sync/errgroup"

	"github.com/cpmech/brep/config"
	"github.com/cpmech/brep/geom"
	"github.com/cpmech/brep/polyline"
	"github.com/cpmech/brep/topo"
)

// CShellTessellation implements spec.md §4.8: the same pipeline as
// ShellTessellation, but over an index-addressed CompressedShell.
// Edges are tessellated to polylines exactly once, in parallel, before
// any face is tessellated; each face then looks up its boundary edges
// by index, reversing the shared polyline on read when its EdgeRef
// orientation is false — it never mutates the shared polyline, so the
// per-edge pass and the per-face pass can both run concurrently
// without synchronization beyond the two errgroup.Wait barriers.
func CShellTessellation(cs *topo.CompressedShell, opts config.Options, invertParam geom.ParamInverter) (MeshedShell, error) {
	edgePolys := make([]*polyline.PolylineCurve, len(cs.Edges))
	var edgeGroup errgroup.Group
	for i, e := range cs.Edges {
		i, e := i, e
		edgeGroup.Go(func() error {
			t0, t1 := e.Curve.ParameterRange()
			edgePolys[i] = polyline.FromCurve(e.Curve, t0, t1, opts.Tol)
			return nil
		})
	}
	if err := edgeGroup.Wait(); err != nil {
		return nil, err
	}

	result := make(MeshedShell, len(cs.Faces))
	var faceGroup errgroup.Group
	for i, face := range cs.Faces {
		i, face := i, face
		faceGroup.Go(func() error {
			wf := buildCompressedWorkFace(cs, face, edgePolys)
			m, _ := tessellateWorkFace(wf, opts, invertParam)
			result[i] = MeshedFace{ID: uint64(i), Mesh: m}
			return nil
		})
	}
	if err := faceGroup.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func buildCompressedWorkFace(cs *topo.CompressedShell, face topo.CompressedFace, edgePolys []*polyline.PolylineCurve) *workFace {
	wf := &workFace{surface: face.Surface, orientation: face.Orientation}
	for bi, boundary := range face.Boundaries {
		wire := make(workWire, len(boundary))
		for i, ref := range boundary {
			ce := cs.Edges[ref.Index]
			front := topo.NewVertex(cs.Vertices[ce.VertexIndices[0]])
			back := topo.NewVertex(cs.Vertices[ce.VertexIndices[1]])
			we := &workEdge{front: front, back: back, poly: edgePolys[ref.Index]}
			wire[i] = workOrientedEdge{edge: we, orientation: ref.Orientation}
		}
		if bi == 0 {
			wf.outer = wire
		} else {
			wf.holes = append(wf.holes, wire)
		}
	}
	return wf
}
