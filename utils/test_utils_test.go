// Copyright 2026 Sonic Labs
// This file is part of Rebalance, a resampling library for imbalanced data sets.
//
// Rebalance is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rebalance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Rebalance. If not, see <http://www.gnu.org/licenses/>.

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgsBuilder_BuildsFlagList(t *testing.T) {
	args := NewArgs("app").
		Arg("demo").
		Flag("samples", 500).
		Flag("seed", int64(42)).
		Flag("minority-share", 0.25).
		Flag("strategy", "auto").
		Flag("replacement", true).
		Flag("sparse", false).
		Build()

	assert.Equal(t, []string{
		"app", "demo",
		"--samples", "500",
		"--seed", "42",
		"--minority-share", "0.25",
		"--strategy", "auto",
		"--replacement",
	}, args)
}

func TestArgsBuilder_PanicsOnUnsupportedType(t *testing.T) {
	assert.Panics(t, func() {
		NewArgs("app").Flag("bad", struct{}{})
	})
}
