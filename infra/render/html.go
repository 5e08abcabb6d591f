package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"

	"github.com/AleOnori98/minigrid-dispatch/core/dispatch"
)

// RenderHTML writes an interactive echarts version of the dispatch chart to
// w. Supply bands share one stack, the charging band sits alone in a second
// stack below the axis; echarts accumulates stacked series itself, so each
// band contributes only its own hourly values.
func RenderHTML(p dispatch.Plan, w io.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Dispatch Plot - Day %d", p.Day+1)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Hour"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Energy (kWh)"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	xAxis := make([]string, len(p.Hours))
	for i := range xAxis {
		xAxis[i] = strconv.Itoa(i)
	}
	line.SetXAxis(xAxis)

	for _, b := range p.Bands {
		delta := make([]float64, len(b.Upper))
		floats.SubTo(delta, b.Upper, b.Lower)
		stack := "outflow"
		if b.Name == dispatch.BandBatteryCharging {
			stack = "inflow"
		}
		line.AddSeries(b.Name, lineData(delta),
			charts.WithLineChartOpts(opts.LineChart{Stack: stack}),
			charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.5}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#" + ColorMap[b.Name]}),
		)
	}
	line.AddSeries(dispatch.CurveLoad, lineData(p.Load),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#" + ColorMap[dispatch.CurveLoad]}),
	)
	line.AddSeries(dispatch.CurveMaxSolar, lineData(p.MaxSolar),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#" + ColorMap[dispatch.CurveMaxSolar]}),
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}),
	)

	return line.Render(w)
}

func lineData(vals []float64) []opts.LineData {
	data := make([]opts.LineData, len(vals))
	for i, v := range vals {
		data[i] = opts.LineData{Value: v}
	}
	return data
}
