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

// Package undersampling rebalances a labeled data set by randomly discarding
// samples of over-represented classes. Classes are processed in ascending
// label order; a class with a resolved target count is cut down to that many
// randomly chosen rows, every other class passes through unchanged.
package undersampling

import (
	"math/rand"

	"github.com/0xsoniclabs/rebalance/dataset"
	"github.com/0xsoniclabs/rebalance/target"
	"github.com/cockroachdb/errors"
)

// ErrSampling marks a per-class draw that cannot be satisfied because the
// requested count exceeds the class population without replacement.
var ErrSampling = errors.New("unsatisfiable random draw")

// Sample reduces the data set (x, y) to the given per-class target counts.
// For every class present in y, in ascending label order, it either draws
// targets[class] row positions uniformly at random (with or without
// replacement) or, if the class has no target, keeps all of its rows in
// original order. The concatenated row selection is applied once to x and y
// and returned alongside the sliced outputs. All draws of one call consume
// the same random generator.
func Sample(x dataset.Matrix, y []int, targets map[int]int, replacement bool, rg *rand.Rand) (dataset.Matrix, []int, []int, error) {
	rows, _ := x.Dims()
	if rows != len(y) {
		return nil, nil, nil, errors.Wrapf(target.ErrValidation, "feature rows (%v) mismatch label count (%v)", rows, len(y))
	}
	if len(y) == 0 {
		return nil, nil, nil, errors.Wrap(target.ErrValidation, "empty data set")
	}

	counts := dataset.CountByClass(y)
	for class, n := range targets {
		if n < 1 {
			return nil, nil, nil, errors.Wrapf(target.ErrValidation, "class %v: target count (%v) must be positive", class, n)
		}
		if counts[class] == 0 {
			return nil, nil, nil, errors.Wrapf(target.ErrConfiguration, "class %v has no samples to draw from", class)
		}
	}

	selected := []int{}
	for _, class := range dataset.Classes(y) {
		available := dataset.Positions(y, class)
		n, targeted := targets[class]
		if !targeted {
			selected = append(selected, available...)
			continue
		}
		var drawn []int
		if replacement {
			drawn = drawWith(rg, len(available), n)
		} else {
			if n > len(available) {
				return nil, nil, nil, errors.Wrapf(ErrSampling, "class %v: requested %v of %v samples without replacement", class, n, len(available))
			}
			drawn = drawWithout(rg, len(available), n)
		}
		for _, p := range drawn {
			selected = append(selected, available[p])
		}
	}

	xOut, err := x.Take(selected)
	if err != nil {
		return nil, nil, nil, err
	}
	return xOut, dataset.TakeLabels(y, selected), selected, nil
}
