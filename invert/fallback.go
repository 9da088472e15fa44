// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invert

import "github.com/cpmech/brep/geom"

// BySearchParameterSurface tries surface's own SearchParameter (if it
// implements geom.SearchParameterSurface) or the generic Newton
// fallback with the caller's hint; if that fails, it retries once
// with HintNone (for the generic fallback, a presearch over the unit
// square [0,1]x[0,1]) before giving up. This
// retry-once behavior is carried over from
// truck-meshalgo/src/tessellation/triangulation.rs's
// by_search_parameter, which spec.md's distillation compresses into
// plain "search_parameter" but which measurably reduces "no polygon"
// faces near periodic seams (see SPEC_FULL.md, Supplemented Features).
func BySearchParameterSurface(surface geom.Surface, point geom.Point3, hint geom.Hint2D, trials int, tol float64) (u, v float64, ok bool) {
	u, v, ok = searchParameterSurface(surface, point, hint, trials, tol)
	if ok {
		return u, v, true
	}
	return searchParameterSurface(surface, point, geom.NoHint2D(), trials, tol)
}

// BySearchNearestParameterSurface is the nearest-parameter analogue of
// BySearchParameterSurface.
func BySearchNearestParameterSurface(surface geom.Surface, point geom.Point3, hint geom.Hint2D, trials int, tol float64) (u, v float64, ok bool) {
	u, v, ok = searchNearestParameterSurface(surface, point, hint, trials, tol)
	if ok {
		return u, v, true
	}
	return searchNearestParameterSurface(surface, point, geom.NoHint2D(), trials, tol)
}

// BySearchParameterCurve is the curve analogue of
// BySearchParameterSurface.
func BySearchParameterCurve(curve geom.Curve, point geom.Point3, hint geom.Hint1D, trials int, tol float64) (t float64, ok bool) {
	t, ok = searchParameterCurve(curve, point, hint, trials, tol)
	if ok {
		return t, true
	}
	return searchParameterCurve(curve, point, geom.NoHint1D(), trials, tol)
}

// BySearchNearestParameterCurve is the nearest-parameter analogue of
// BySearchParameterCurve.
func BySearchNearestParameterCurve(curve geom.Curve, point geom.Point3, hint geom.Hint1D, trials int, tol float64) (t float64, ok bool) {
	t, ok = searchNearestParameterCurve(curve, point, hint, trials, tol)
	if ok {
		return t, true
	}
	return searchNearestParameterCurve(curve, point, geom.NoHint1D(), trials, tol)
}

func searchParameterSurface(surface geom.Surface, point geom.Point3, hint geom.Hint2D, trials int, tol float64) (float64, float64, bool) {
	if sp, ok := surface.(geom.SearchParameterSurface); ok {
		return sp.SearchParameter(point, hint, trials)
	}
	return Surface2D(surface, point, hint, trials, tol, true)
}

func searchNearestParameterSurface(surface geom.Surface, point geom.Point3, hint geom.Hint2D, trials int, tol float64) (float64, float64, bool) {
	if sp, ok := surface.(geom.SearchNearestParameterSurface); ok {
		return sp.SearchNearestParameter(point, hint, trials)
	}
	return Surface2D(surface, point, hint, trials, tol, false)
}

func searchParameterCurve(curve geom.Curve, point geom.Point3, hint geom.Hint1D, trials int, tol float64) (float64, bool) {
	if sp, ok := curve.(geom.SearchParameterCurve); ok {
		return sp.SearchParameter(point, hint, trials)
	}
	return Curve1D(curve, point, hint, trials, tol, true)
}

func searchNearestParameterCurve(curve geom.Curve, point geom.Point3, hint geom.Hint1D, trials int, tol float64) (float64, bool) {
	if sp, ok := curve.(geom.SearchNearestParameterCurve); ok {
		return sp.SearchNearestParameter(point, hint, trials)
	}
	return Curve1D(curve, point, hint, trials, tol, false)
}
