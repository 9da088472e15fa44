// Copyright 2024 The Brep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(tst *testing.T) {
	chk.PrintTitle("DefaultOptions: the tolerances spec.md's testable properties were checked against")
	o := DefaultOptions()
	chk.Scalar(tst, "Tol", 1e-15, o.Tol, 1e-3)
	assert.Equal(tst, 100, o.Trials)
}

func TestOptionsDescribe(tst *testing.T) {
	chk.PrintTitle("Options.Describe: exposes tol/trials as a fun.Prms bank")
	o := Options{Tol: 5e-4, Trials: 40}
	prms := o.Describe()
	assert.Equal(tst, 2, len(prms))
	byName := map[string]float64{}
	for _, p := range prms {
		byName[p.N] = p.V
	}
	chk.Scalar(tst, "tol", 1e-15, byName["tol"], 5e-4)
	chk.Scalar(tst, "trials", 1e-15, byName["trials"], 40)
}
