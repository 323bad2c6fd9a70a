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
)

// CSR is a compressed sparse row matrix. Row i owns the non-zero entries
// in colIdx[indPtr[i]:indPtr[i+1]] and values[indPtr[i]:indPtr[i+1]].
type CSR struct {
	rows, cols int
	indPtr     []int
	colIdx     []int
	values     []float64
}

// NewCSR creates a compressed sparse row matrix and validates its structure:
// indPtr must have rows+1 non-decreasing entries starting at zero and ending
// at the number of stored values, and every column index must be in range.
func NewCSR(rows, cols int, indPtr, colIdx []int, values []float64) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewCSR: negative dimension (%vx%v)", rows, cols)
	}
	if len(indPtr) != rows+1 {
		return nil, fmt.Errorf("NewCSR: index pointer length (%v) mismatches row count (%v)", len(indPtr), rows)
	}
	if indPtr[0] != 0 {
		return nil, fmt.Errorf("NewCSR: index pointer must start at zero, got %v", indPtr[0])
	}
	for i := 0; i < rows; i++ {
		if indPtr[i+1] < indPtr[i] {
			return nil, fmt.Errorf("NewCSR: index pointer decreases at row %v (%v -> %v)", i, indPtr[i], indPtr[i+1])
		}
	}
	nnz := indPtr[rows]
	if len(colIdx) != nnz || len(values) != nnz {
		return nil, fmt.Errorf("NewCSR: stored entries (%v columns, %v values) mismatch index pointer end (%v)", len(colIdx), len(values), nnz)
	}
	for k, j := range colIdx {
		if j < 0 || j >= cols {
			return nil, fmt.Errorf("NewCSR: column index (%v) at entry %v out of range [0,%v)", j, k, cols)
		}
	}
	return &CSR{
		rows:   rows,
		cols:   cols,
		indPtr: indPtr,
		colIdx: colIdx,
		values: values,
	}, nil
}

// CSRFromDense converts a dense matrix into its sparse row representation.
// Exact zeros are not stored.
func CSRFromDense(d *Dense) *CSR {
	rows, cols := d.Dims()
	indPtr := make([]int, rows+1)
	colIdx := []int{}
	values := []float64{}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := d.At(i, j); v != 0 {
				colIdx = append(colIdx, j)
				values = append(values, v)
			}
		}
		indPtr[i+1] = len(values)
	}
	return &CSR{
		rows:   rows,
		cols:   cols,
		indPtr: indPtr,
		colIdx: colIdx,
		values: values,
	}
}

// Dims returns the number of rows and columns.
func (c *CSR) Dims() (int, int) {
	return c.rows, c.cols
}

// NNZ returns the number of stored entries.
func (c *CSR) NNZ() int {
	return c.indPtr[c.rows]
}

// At returns the element in row i and column j.
func (c *CSR) At(i, j int) float64 {
	if i < 0 || i >= c.rows || j < 0 || j >= c.cols {
		panic(fmt.Sprintf("CSR.At: index (%v,%v) out of range (%vx%v)", i, j, c.rows, c.cols))
	}
	for k := c.indPtr[i]; k < c.indPtr[i+1]; k++ {
		if c.colIdx[k] == j {
			return c.values[k]
		}
	}
	return 0
}

// Take returns a new sparse matrix holding the given rows in the given order.
func (c *CSR) Take(rows []int) (Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("Take: empty row selection")
	}
	indPtr := make([]int, 0, len(rows)+1)
	indPtr = append(indPtr, 0)
	colIdx := []int{}
	values := []float64{}
	for _, r := range rows {
		if r < 0 || r >= c.rows {
			return nil, fmt.Errorf("Take: row index (%v) out of range [0,%v)", r, c.rows)
		}
		colIdx = append(colIdx, c.colIdx[c.indPtr[r]:c.indPtr[r+1]]...)
		values = append(values, c.values[c.indPtr[r]:c.indPtr[r+1]]...)
		indPtr = append(indPtr, len(values))
	}
	return &CSR{
		rows:   len(rows),
		cols:   c.cols,
		indPtr: indPtr,
		colIdx: colIdx,
		values: values,
	}, nil
}

// ToDense converts the sparse matrix into a dense one.
func (c *CSR) ToDense() (*Dense, error) {
	flat := make([]float64, c.rows*c.cols)
	for i := 0; i < c.rows; i++ {
		for k := c.indPtr[i]; k < c.indPtr[i+1]; k++ {
			flat[i*c.cols+c.colIdx[k]] = c.values[k]
		}
	}
	return NewDense(c.rows, c.cols, flat)
}
