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

// Package demo exercises the resampling library end to end on synthetic
// data: it synthesizes an imbalanced Gaussian data set, under-samples it and
// reports the class distribution before and after.
package demo

import (
	"time"

	"github.com/0xsoniclabs/rebalance/dataset"
	"github.com/0xsoniclabs/rebalance/logger"
	"github.com/0xsoniclabs/rebalance/undersampling"
	"github.com/0xsoniclabs/rebalance/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

// DemoCommand data structure for the demo app.
var DemoCommand = cli.Command{
	Action: demoAction,
	Name:   "demo",
	Usage:  "under-sample a synthetic imbalanced data set and print the class distribution",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
		&utils.SamplesFlag,
		&utils.FeaturesFlag,
		&utils.ClassesFlag,
		&utils.MinorityShareFlag,
		&utils.SeedFlag,
		&utils.StrategyFlag,
		&utils.ReplacementFlag,
		&utils.SparseFlag,
	},
	Description: "The demo synthesizes an imbalanced data set in memory, resamples it and prints a before/after table.",
}

// demoAction synthesizes, resamples and reports.
func demoAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Demo")
	start := time.Now()

	before, after, _, err := resample(ctx)
	if err != nil {
		return err
	}
	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Infof("Resampled %v samples with strategy %q; total elapsed time: %vh %vm %vs", ctx.Int(utils.SamplesFlag.Name), ctx.String(utils.StrategyFlag.Name), hours, minutes, seconds)

	tw := table.NewWriter()
	tw.SetOutputMirror(ctx.App.Writer)
	tw.AppendHeader(table.Row{"Class", "Before", "After"})
	for _, class := range classesAscending(before) {
		tw.AppendRow(table.Row{class, before[class], after[class]})
	}
	tw.Render()
	return nil
}

// resample synthesizes the data set described by the CLI flags and
// under-samples it, returning the class counts before and after along with
// the kept row indices.
func resample(ctx *cli.Context) (before, after map[int]int, kept []int, err error) {
	x, y, err := Synthesize(
		ctx.Int(utils.SamplesFlag.Name),
		ctx.Int(utils.FeaturesFlag.Name),
		ctx.Int(utils.ClassesFlag.Name),
		ctx.Float64(utils.MinorityShareFlag.Name),
		ctx.Int64(utils.SeedFlag.Name),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []undersampling.Option{undersampling.WithSeed(ctx.Int64(utils.SeedFlag.Name))}
	if ctx.Bool(utils.ReplacementFlag.Name) {
		opts = append(opts, undersampling.WithReplacement())
	}
	sampler := undersampling.New(strategyOf(ctx), opts...)

	var features dataset.Matrix = x
	if ctx.Bool(utils.SparseFlag.Name) {
		features = dataset.CSRFromDense(x)
	}
	_, yOut, kept, err := sampler.FitSampleIndices(features, y)
	if err != nil {
		return nil, nil, nil, err
	}
	return dataset.CountByClass(y), dataset.CountByClass(yOut), kept, nil
}
