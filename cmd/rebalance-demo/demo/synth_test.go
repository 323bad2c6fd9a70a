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

package demo

import (
	"testing"

	"github.com/0xsoniclabs/rebalance/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynth_ShapeAndShares(t *testing.T) {
	x, y, err := Synthesize(1000, 4, 3, 0.1, 42)
	require.NoError(t, err)

	rows, cols := x.Dims()
	assert.Equal(t, 1000, rows)
	assert.Equal(t, 4, cols)
	assert.Len(t, y, 1000)

	counts := dataset.CountByClass(y)
	assert.Equal(t, 100, counts[0])
	assert.Equal(t, 450, counts[1])
	assert.Equal(t, 450, counts[2])
}

func TestSynth_Determinism(t *testing.T) {
	xFirst, yFirst, err := Synthesize(200, 3, 2, 0.2, 7)
	require.NoError(t, err)
	xSecond, ySecond, err := Synthesize(200, 3, 2, 0.2, 7)
	require.NoError(t, err)

	assert.Equal(t, yFirst, ySecond)
	rows, cols := xFirst.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.Equal(t, xFirst.At(i, j), xSecond.At(i, j), "element (%d,%d)", i, j)
		}
	}
}

func TestSynth_Validation(t *testing.T) {
	tests := []struct {
		name                      string
		samples, features, number int
		share                     float64
	}{
		{"too few samples", 1, 2, 2, 0.1},
		{"single class", 100, 2, 1, 0.1},
		{"no features", 100, 0, 2, 0.1},
		{"zero share", 100, 2, 2, 0},
		{"share beyond even split", 100, 2, 2, 0.6},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := Synthesize(test.samples, test.features, test.number, test.share, 1)
			assert.Error(t, err)
		})
	}
}
