// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tess

import (
	"golang.org/x/sync/errgroup"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/brep/config"
	"github.com/cpmech/brep/geom"
	"github.com/cpmech/brep/mesh"
	"github.com/cpmech/brep/topo"
)

// MeshedFace pairs a face's identity with its mesh payload. A nil Mesh
// means "no polygon" (spec.md §7). ID tells which original face a
// MeshedFace corresponds to; the face's boundaries, surface and
// orientation are not carried in a MeshedFace.
type MeshedFace struct {
	ID   uint64
	Mesh *mesh.PolygonMesh
}

// MeshedShell is the output of shell_tessellation: one MeshedFace per
// input face, in input order (spec.md §5, "Across faces, output order
// matches input face order").
type MeshedShell []MeshedFace

// ShellTessellation tessellates every face of shell in parallel,
// using golang.org/x/sync/errgroup to fan out and join — the
// structured-concurrency idiom generalized from the ad hoc
// `go func(...)` fan-out the teacher uses in fem/t_bh_test.go and
// tests/solid/bhatti_test.go. Per spec.md §4.7/§9 the parallel path
// eagerly materializes both the vertex and edge maps first, so that
// every face's own tessellation work is then purely read-only.
func ShellTessellation(shell topo.Shell, opts config.Options, invertParam geom.ParamInverter) (MeshedShell, error) {
	vmap := newVertexMap()
	emap := newEdgeMap()
	workFaces := make([]*workFace, len(shell))
	for i, face := range shell {
		workFaces[i] = buildWorkFace(vmap, emap, face, opts.Tol)
	}

	result := make(MeshedShell, len(shell))
	var g errgroup.Group
	for i, face := range shell {
		i, face, wf := i, face, workFaces[i]
		g.Go(func() error {
			m, _ := tessellateWorkFace(wf, opts, invertParam)
			result[i] = MeshedFace{ID: face.ID(), Mesh: m}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if chk.Verbose {
		empty := 0
		for _, mf := range result {
			if mf.Mesh == nil {
				empty++
			}
		}
		io.Pf(">> tessellated %d faces (%d vertices, %d edges, %d empty)\n", len(shell), vmap.Len(), emap.Len(), empty)
	}
	return result, nil
}

// ShellTessellationSingleThread is the deterministic, cooperative
// counterpart of ShellTessellation: it populates the vertex and edge
// maps lazily, on first lookup, in face-iteration order (spec.md
// §4.7). The two paths must produce meshes equal up to triangle
// reordering and numerically equal vertex attributes (spec.md §8
// property 8).
func ShellTessellationSingleThread(shell topo.Shell, opts config.Options, invertParam geom.ParamInverter) MeshedShell {
	vmap := newVertexMap()
	emap := newEdgeMap()
	result := make(MeshedShell, len(shell))
	for i, face := range shell {
		wf := buildWorkFace(vmap, emap, face, opts.Tol)
		m, _ := tessellateWorkFace(wf, opts, invertParam)
		result[i] = MeshedFace{ID: face.ID(), Mesh: m}
	}
	return result
}
