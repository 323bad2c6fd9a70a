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

package main

import (
	"fmt"
	"os"

	"github.com/0xsoniclabs/rebalance/cmd/rebalance-demo/demo"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:      "rebalance-demo",
		HelpName:  "rebalance-demo",
		Usage:     "under-sample a synthetic imbalanced data set",
		Copyright: "(c) 2026 Sonic Labs",
		Commands: []*cli.Command{
			&demo.DemoCommand,
			&demo.ServeCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
