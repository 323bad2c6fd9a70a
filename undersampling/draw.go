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

package undersampling

import "math/rand"

// drawWith returns k positions drawn uniformly with replacement from [0,n).
// Positions may repeat; they are returned in draw order.
func drawWith(rg *rand.Rand, n, k int) []int {
	drawn := make([]int, k)
	for i := 0; i < k; i++ {
		drawn[i] = rg.Intn(n)
	}
	return drawn
}

// drawWithout returns k distinct positions drawn uniformly from [0,n) by a
// partial Fisher-Yates shuffle. The caller must ensure k <= n. Positions are
// returned in draw order, not sorted.
func drawWithout(rg *rand.Rand, n, k int) []int {
	positions := make([]int, n)
	for i := 0; i < n; i++ {
		positions[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rg.Intn(n-i)
		positions[i], positions[j] = positions[j], positions[i]
	}
	return positions[:k]
}
