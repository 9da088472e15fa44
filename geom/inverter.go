// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// ParamInverter is the pluggable parameter-inversion strategy spec.md
// §6 calls "param_inverter": given a surface and a 3D point, recover
// its (u,v) parameters using hint as a starting point/search range.
// The two ready-made strategies (package invert) are "exact" (residual
// must vanish, i.e. search_parameter) and "nearest" (orthogonality
// condition only, i.e. search_nearest_parameter); callers may also
// supply a surface-specific strategy.
type ParamInverter func(surface Surface, point Point3, hint Hint2D) (u, v float64, ok bool)
