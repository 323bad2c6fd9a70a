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
	"fmt"

	"github.com/0xsoniclabs/rebalance/dataset"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Synthesize produces an imbalanced Gaussian data set in memory. Class 0 is
// the minority class holding round(minorityShare*samples) rows (at least
// one); the remaining rows are spread evenly over the other classes. Each
// feature of class c is drawn from a normal distribution centered at c, so
// the classes are separable but overlapping.
func Synthesize(samples, features, classes int, minorityShare float64, seed int64) (*dataset.Dense, []int, error) {
	if samples < classes || classes < 2 {
		return nil, nil, fmt.Errorf("Synthesize: need at least %v samples for %v classes", classes, classes)
	}
	if features < 1 {
		return nil, nil, fmt.Errorf("Synthesize: need at least one feature, got %v", features)
	}
	if minorityShare <= 0 || minorityShare >= 1.0/float64(classes) {
		return nil, nil, fmt.Errorf("Synthesize: minority share (%v) must be in (0, 1/%v)", minorityShare, classes)
	}

	minority := int(minorityShare * float64(samples))
	if minority < 1 {
		minority = 1
	}
	perClass := make([]int, classes)
	perClass[0] = minority
	rest := samples - minority
	for c := 1; c < classes; c++ {
		perClass[c] = rest / (classes - 1)
	}
	// remainder rows go to the last class
	perClass[classes-1] += rest % (classes - 1)

	src := rand.NewSource(uint64(seed))
	y := make([]int, 0, samples)
	flat := make([]float64, 0, samples*features)
	for c := 0; c < classes; c++ {
		gauss := distuv.Normal{Mu: float64(c), Sigma: 1, Src: src}
		for r := 0; r < perClass[c]; r++ {
			y = append(y, c)
			for f := 0; f < features; f++ {
				flat = append(flat, gauss.Rand())
			}
		}
	}
	x, err := dataset.NewDense(samples, features, flat)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
