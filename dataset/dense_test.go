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

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense_NewDense(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d, err := NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
		require.NoError(t, err)
		rows, cols := d.Dims()
		assert.Equal(t, 2, rows)
		assert.Equal(t, 3, cols)
		assert.Equal(t, 6.0, d.At(1, 2))
	})

	t.Run("data length mismatch", func(t *testing.T) {
		_, err := NewDense(2, 3, []float64{1, 2, 3})
		assert.Error(t, err)
	})

	t.Run("negative dimension", func(t *testing.T) {
		_, err := NewDense(-1, 3, nil)
		assert.Error(t, err)
	})

	t.Run("zero dimension", func(t *testing.T) {
		_, err := NewDense(0, 3, nil)
		assert.Error(t, err)
		_, err = NewDense(3, 0, nil)
		assert.Error(t, err)
	})
}

func TestDense_NewDenseFromRows(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d, err := NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
		require.NoError(t, err)
		rows, cols := d.Dims()
		assert.Equal(t, 3, rows)
		assert.Equal(t, 2, cols)
		assert.Equal(t, []float64{5, 6}, d.RawRow(2))
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := NewDenseFromRows([][]float64{{1, 2}, {3}})
		assert.Error(t, err)
	})

	t.Run("no rows", func(t *testing.T) {
		_, err := NewDenseFromRows(nil)
		assert.Error(t, err)
	})
}

func TestDense_Take(t *testing.T) {
	d, err := NewDenseFromRows([][]float64{{0, 0}, {1, 10}, {2, 20}, {3, 30}})
	require.NoError(t, err)

	t.Run("order and duplicates are preserved", func(t *testing.T) {
		out, err := d.Take([]int{3, 1, 1})
		require.NoError(t, err)
		rows, cols := out.Dims()
		assert.Equal(t, 3, rows)
		assert.Equal(t, 2, cols)
		assert.Equal(t, 3.0, out.At(0, 0))
		assert.Equal(t, 10.0, out.At(1, 1))
		assert.Equal(t, 10.0, out.At(2, 1))
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := d.Take([]int{0, 4})
		assert.Error(t, err)
		_, err = d.Take([]int{-1})
		assert.Error(t, err)
	})

	t.Run("empty selection", func(t *testing.T) {
		_, err := d.Take(nil)
		assert.Error(t, err)
	})

	t.Run("source is untouched", func(t *testing.T) {
		out, err := d.Take([]int{0})
		require.NoError(t, err)
		taken := out.(*Dense)
		taken.m.Set(0, 0, 99)
		assert.Equal(t, 0.0, d.At(0, 0))
	})
}
