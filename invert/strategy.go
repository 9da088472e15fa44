// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invert

import "github.com/cpmech/brep/geom"

// ExactStrategy returns a geom.ParamInverter implementing
// search_parameter with the by_search_parameter retry-with-no-hint
// fallback (spec.md §4.1, §4.4; SPEC_FULL.md Supplemented Features).
func ExactStrategy(trials int, tol float64) geom.ParamInverter {
	return func(surface geom.Surface, point geom.Point3, hint geom.Hint2D) (float64, float64, bool) {
		return BySearchParameterSurface(surface, point, hint, trials, tol)
	}
}

// NearestStrategy returns a geom.ParamInverter implementing
// search_nearest_parameter with the same retry-with-no-hint fallback.
func NearestStrategy(trials int, tol float64) geom.ParamInverter {
	return func(surface geom.Surface, point geom.Point3, hint geom.Hint2D) (float64, float64, bool) {
		return BySearchNearestParameterSurface(surface, point, hint, trials, tol)
	}
}
