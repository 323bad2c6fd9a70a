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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense is a dense feature matrix backed by a gonum matrix.
type Dense struct {
	m *mat.Dense
}

// NewDense creates a dense matrix from a flat row-major data slice.
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewDense: non-positive dimension (%vx%v)", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDense: data length (%v) mismatches dimensions (%vx%v)", len(data), rows, cols)
	}
	return &Dense{m: mat.NewDense(rows, cols, data)}, nil
}

// NewDenseFromRows creates a dense matrix from a slice of equally long rows.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: no rows given")
	}
	d := len(rows[0])
	if d == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: rows have no columns")
	}
	// flatten rows for the gonum matrix
	flat := make([]float64, 0, n*d)
	for i := 0; i < n; i++ {
		if len(rows[i]) != d {
			return nil, fmt.Errorf("NewDenseFromRows: row %v has length %v; want %v", i, len(rows[i]), d)
		}
		flat = append(flat, rows[i]...)
	}
	return &Dense{m: mat.NewDense(n, d, flat)}, nil
}

// Dims returns the number of rows and columns.
func (d *Dense) Dims() (int, int) {
	return d.m.Dims()
}

// At returns the element in row i and column j.
func (d *Dense) At(i, j int) float64 {
	return d.m.At(i, j)
}

// RawRow returns a copy of row i.
func (d *Dense) RawRow(i int) []float64 {
	_, c := d.m.Dims()
	row := make([]float64, c)
	mat.Row(row, i, d.m)
	return row
}

// Take returns a new dense matrix holding the given rows in the given order.
func (d *Dense) Take(rows []int) (Matrix, error) {
	n, c := d.m.Dims()
	if len(rows) == 0 {
		return nil, fmt.Errorf("Take: empty row selection")
	}
	out := mat.NewDense(len(rows), c, nil)
	for i, r := range rows {
		if r < 0 || r >= n {
			return nil, fmt.Errorf("Take: row index (%v) out of range [0,%v)", r, n)
		}
		out.SetRow(i, d.m.RawRowView(r))
	}
	return &Dense{m: out}, nil
}
