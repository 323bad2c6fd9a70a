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

// Package dataset provides the feature-matrix and label plumbing shared by
// the resampling packages. A data set is a feature matrix with one row per
// sample and a parallel label vector of the same length; labels are small
// integers and classes are derived by a distinct-value scan over the labels.
package dataset

// Matrix is a read-only numeric feature matrix with a fixed number of
// columns. Both the dense and the compressed sparse row representation
// implement it; resampling code never needs to know which one it holds.
type Matrix interface {
	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)

	// At returns the element in row i and column j.
	// It panics if the indices are out of range.
	At(i, j int) float64

	// Take returns a new matrix holding the given rows in the given order,
	// preserving the representation of the receiver. A row index may occur
	// more than once; each occurrence produces its own output row. An index
	// outside [0, rows) is an error.
	Take(rows []int) (Matrix, error)
}
