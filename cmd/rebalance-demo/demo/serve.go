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
	"sort"

	"github.com/0xsoniclabs/rebalance/logger"
	"github.com/0xsoniclabs/rebalance/target"
	"github.com/0xsoniclabs/rebalance/utils"
	"github.com/0xsoniclabs/rebalance/visualizer"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"
)

// ServeCommand data structure for the chart server app.
var ServeCommand = cli.Command{
	Action: serveAction,
	Name:   "serve",
	Usage:  "serve before/after class-distribution charts over HTTP",
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
		&utils.AddrFlag,
	},
	Description: "The server resamples a synthetic data set and renders its class distribution with go-echarts.",
}

// serveAction resamples and serves the distribution charts.
func serveAction(ctx *cli.Context) error {
	log := logger.NewLogger(ctx.String(logger.LogLevelFlag.Name), "Serve")

	before, after, _, err := resample(ctx)
	if err != nil {
		return err
	}
	addr := ctx.String(utils.AddrFlag.Name)
	log.Noticef("Serving class-distribution charts on http://%v", addr)
	title := fmt.Sprintf("Under-sampling with strategy %q", ctx.String(utils.StrategyFlag.Name))
	return visualizer.Serve(addr, title, before, after)
}

// strategyOf reads the sampling strategy flag.
func strategyOf(ctx *cli.Context) target.Strategy {
	return target.Strategy(ctx.String(utils.StrategyFlag.Name))
}

// classesAscending returns the keys of a per-class count map in ascending
// order.
func classesAscending(counts map[int]int) []int {
	classes := maps.Keys(counts)
	sort.Ints(classes)
	return classes
}
