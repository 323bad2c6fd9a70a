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
	"sort"

	"golang.org/x/exp/maps"
)

// Classes returns the distinct class labels of y in ascending order.
func Classes(y []int) []int {
	seen := map[int]struct{}{}
	for _, c := range y {
		seen[c] = struct{}{}
	}
	classes := maps.Keys(seen)
	sort.Ints(classes)
	return classes
}

// CountByClass counts the samples of each class label in y.
func CountByClass(y []int) map[int]int {
	counts := map[int]int{}
	for _, c := range y {
		counts[c]++
	}
	return counts
}

// Positions returns the positions in y holding the given class label,
// in ascending order.
func Positions(y []int, class int) []int {
	positions := []int{}
	for i, c := range y {
		if c == class {
			positions = append(positions, i)
		}
	}
	return positions
}

// TakeLabels returns the labels of y at the given positions in the given
// order. Positions may repeat. The caller must ensure they are in range.
func TakeLabels(y []int, rows []int) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = y[r]
	}
	return out
}
