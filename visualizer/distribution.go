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

// Package visualizer renders class distributions before and after resampling
// as bar charts. Charts render to a writer or are served over HTTP; nothing
// is written to disk.
package visualizer

import (
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"golang.org/x/exp/maps"
)

// HTML reference for the rendered page.
const distributionRef = "class-distribution"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Rebalance: Class Distribution</title>
  </head>
  <body>
    <h1>Rebalance: Class Distribution</h1>
    <ul>
    <li> <h3> <a href="/` + distributionRef + `"> Class Distribution </a> </h3> </li>
    </ul>
</body>
</html>
`

// convertCounts converts per-class counts to chart points following the
// given class order; a class missing from the counts yields a zero bar.
func convertCounts(classes []int, counts map[int]int) []opts.BarData {
	items := []opts.BarData{}
	for _, c := range classes {
		items = append(items, opts.BarData{Value: counts[c]})
	}
	return items
}

// newDistributionChart creates a bar chart comparing the class counts
// before and after resampling.
func newDistributionChart(title string, before, after map[int]int) *charts.Bar {
	classes := maps.Keys(before)
	sort.Ints(classes)
	labels := []string{}
	for _, c := range classes {
		labels = append(labels, fmt.Sprintf("class %d", c))
	}

	chart := charts.NewBar()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))
	chart.SetXAxis(labels).
		AddSeries("Before", convertCounts(classes, before)).
		AddSeries("After", convertCounts(classes, after))
	return chart
}

// Render writes the distribution chart for the given per-class counts to w.
func Render(w io.Writer, title string, before, after map[int]int) error {
	return newDistributionChart(title, before, after).Render(w)
}

// NewServeMux builds the HTTP surface serving the index page and the
// distribution chart.
func NewServeMux(title string, before, after map[int]int) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, MainHtml)
	})
	mux.HandleFunc("/"+distributionRef, func(w http.ResponseWriter, r *http.Request) {
		if err := Render(w, title, before, after); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	return mux
}

// Serve renders the charts on the given listen address until the process
// terminates.
func Serve(addr, title string, before, after map[int]int) error {
	return http.ListenAndServe(addr, NewServeMux(title, before, after))
}
