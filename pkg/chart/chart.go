package chart

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/gonum/cmplxs"

	"qucskit/pkg/dataset"
)

// Render writes an HTML page with one line chart per swept dataset: each
// dependent vector's magnitude plotted over the first independent vector.
// Datasets without vectors are an error; an error-status dataset with partial
// vectors still renders.
func Render(w io.Writer, ds *dataset.Dataset, title string) error {
	sweepName, sweep := sweepOf(ds)
	if len(ds.Dependent) == 0 {
		return fmt.Errorf("dataset has no dependent vectors to plot, status %s", ds.Status)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("magnitude over %s", sweepName),
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)

	xs := make([]string, len(sweep))
	for i, v := range sweep {
		xs[i] = fmt.Sprintf("%g", real(v))
	}
	line.SetXAxis(xs)

	var names []string
	for name := range ds.Dependent {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		values := ds.Dependent[name].Values
		mags := make([]float64, len(values))
		cmplxs.Abs(mags, values)

		items := make([]opts.LineData, len(mags))
		for i, m := range mags {
			items[i] = opts.LineData{Value: m}
		}
		line.AddSeries(name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}

// sweepOf picks the chart's x axis: the first independent vector by name, or
// sample indices when the dataset has none.
func sweepOf(ds *dataset.Dataset) (string, []complex128) {
	var names []string
	for n := range ds.Independent {
		names = append(names, n)
	}
	if len(names) == 0 {
		var n int
		for _, v := range ds.Dependent {
			if len(v.Values) > n {
				n = len(v.Values)
			}
		}
		idx := make([]complex128, n)
		for i := range idx {
			idx[i] = complex(float64(i), 0)
		}
		return "sample", idx
	}
	sort.Strings(names)
	return names[0], ds.Independent[names[0]].Values
}
