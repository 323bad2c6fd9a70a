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

// Package utils holds the CLI flags shared by the rebalance commands and
// small helpers for command tests.
package utils

import "github.com/urfave/cli/v2"

var (
	// SamplesFlag sets the number of synthesized samples.
	SamplesFlag = cli.IntFlag{
		Name:  "samples",
		Usage: "number of samples to synthesize",
		Value: 1000,
	}

	// FeaturesFlag sets the feature dimensionality of synthesized samples.
	FeaturesFlag = cli.IntFlag{
		Name:  "features",
		Usage: "number of features per sample",
		Value: 4,
	}

	// ClassesFlag sets the number of classes of the synthesized data set.
	ClassesFlag = cli.IntFlag{
		Name:  "classes",
		Usage: "number of classes",
		Value: 2,
	}

	// MinorityShareFlag sets the fraction of samples in the rarest class.
	MinorityShareFlag = cli.Float64Flag{
		Name:  "minority-share",
		Usage: "fraction of samples belonging to the minority class",
		Value: 0.1,
	}

	// SeedFlag seeds data synthesis and resampling.
	SeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed for synthesis and resampling",
		Value: 42,
	}

	// StrategyFlag selects the resampling strategy.
	StrategyFlag = cli.StringFlag{
		Name:  "strategy",
		Usage: "sampling strategy (majority, not minority, not majority, all, auto)",
		Value: "auto",
	}

	// ReplacementFlag enables drawing with replacement.
	ReplacementFlag = cli.BoolFlag{
		Name:  "replacement",
		Usage: "draw samples with replacement",
	}

	// SparseFlag runs the resampling on the sparse row representation.
	SparseFlag = cli.BoolFlag{
		Name:  "sparse",
		Usage: "use the compressed sparse row representation",
	}

	// AddrFlag sets the listen address of the distribution chart server.
	AddrFlag = cli.StringFlag{
		Name:  "addr",
		Usage: "listen address for the distribution charts",
		Value: "localhost:8080",
	}
)
