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

import (
	"math/rand"

	"github.com/0xsoniclabs/rebalance/dataset"
	"github.com/0xsoniclabs/rebalance/target"
)

// sharedRand is used by samplers without a configured random source. Results
// drawn from it are not reproducible across calls; callers that need
// reproducibility configure WithSeed or WithRand.
var sharedRand = rand.New(rand.NewSource(rand.Int63()))

// RandomUnderSampler rebalances data sets according to a sampling-target
// policy. One FitSample call is one atomic unit of work: it resolves the
// targets for the observed labels, draws all per-class selections from a
// single random stream and produces a complete result or an error.
type RandomUnderSampler struct {
	resolver    target.Resolver
	replacement bool
	rg          *rand.Rand
}

// Option configures a RandomUnderSampler.
type Option func(*RandomUnderSampler)

// WithReplacement makes per-class draws sample with replacement, which
// permits duplicate rows in the output and targets beyond the class size.
func WithReplacement() Option {
	return func(s *RandomUnderSampler) {
		s.replacement = true
	}
}

// WithSeed derives the sampler's random source from a fixed seed. Fixed
// seed, data and configuration give bit-for-bit identical results.
func WithSeed(seed int64) Option {
	return func(s *RandomUnderSampler) {
		s.rg = rand.New(rand.NewSource(seed))
	}
}

// WithRand makes the sampler consume the given generator. Sharing one
// generator across samplers makes each result depend on how many draws the
// other samplers consumed, so reproducible setups pass a private one.
func WithRand(rg *rand.Rand) Option {
	return func(s *RandomUnderSampler) {
		s.rg = rg
	}
}

// WithResolver replaces the sampling-target resolver.
func WithResolver(r target.Resolver) Option {
	return func(s *RandomUnderSampler) {
		s.resolver = r
	}
}

// New creates a sampler for the given sampling-target specification. Without
// further options it draws without replacement from a shared, unseeded
// random source.
func New(spec target.Spec, opts ...Option) *RandomUnderSampler {
	s := &RandomUnderSampler{
		resolver: target.NewSpecResolver(spec),
		rg:       sharedRand,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FitSample resolves the sampling targets for y and returns the resampled
// features and labels.
func (s *RandomUnderSampler) FitSample(x dataset.Matrix, y []int) (dataset.Matrix, []int, error) {
	xOut, yOut, _, err := s.FitSampleIndices(x, y)
	return xOut, yOut, err
}

// FitSampleIndices is FitSample plus the original row indices of the
// surviving samples, parallel to the output rows.
func (s *RandomUnderSampler) FitSampleIndices(x dataset.Matrix, y []int) (dataset.Matrix, []int, []int, error) {
	targets, err := s.resolver.Resolve(y, s.replacement)
	if err != nil {
		return nil, nil, nil, err
	}
	return Sample(x, y, targets, s.replacement, s.rg)
}
