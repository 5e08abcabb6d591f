package render

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/AleOnori98/minigrid-dispatch/core/dispatch"
)

// Default canvas size, matching the original 12x8in figure at 100dpi.
const (
	DefaultWidth  = 1200
	DefaultHeight = 800
)

// PNGRenderer draws a dispatch plan as a raster stacked-area chart.
type PNGRenderer struct {
	Width  int
	Height int
}

// Render writes the chart for plan to w as PNG.
//
// go-chart fills a series between its curve and the zero line, so the supply
// bands are painted largest running total first: each subsequent (smaller)
// cumulative curve occludes the previous fill down to their shared boundary,
// leaving exactly the band between the two totals visible. The charging
// band's curve is negative, so its fill-to-zero is the below-axis band
// itself and it needs no ordering relative to the supply bands.
func (r PNGRenderer) Render(p dispatch.Plan, w io.Writer) error {
	width, height := r.Width, r.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	var series []chart.Series
	for i := len(p.Bands) - 1; i >= 0; i-- {
		b := p.Bands[i]
		if b.Name == dispatch.BandBatteryCharging {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    b.Name,
			XValues: p.Hours,
			YValues: b.Upper,
			Style:   bandStyle(categoryColor(b.Name)),
		})
	}
	for _, b := range p.Bands {
		if b.Name != dispatch.BandBatteryCharging {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    b.Name,
			XValues: p.Hours,
			YValues: b.Upper,
			Style:   bandStyle(categoryColor(b.Name)),
		})
	}
	series = append(series,
		chart.ContinuousSeries{
			Name:    dispatch.CurveLoad,
			XValues: p.Hours,
			YValues: p.Load,
			Style: chart.Style{
				StrokeColor: categoryColor(dispatch.CurveLoad),
				StrokeWidth: 2,
			},
		},
		chart.ContinuousSeries{
			Name:    dispatch.CurveMaxSolar,
			XValues: p.Hours,
			YValues: p.MaxSolar,
			Style: chart.Style{
				StrokeColor:     categoryColor(dispatch.CurveMaxSolar),
				StrokeWidth:     2,
				StrokeDashArray: []float64{5, 5},
			},
		},
	)

	grid := chart.Style{
		StrokeColor: drawing.Color{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
		StrokeWidth: 1,
	}
	ch := chart.Chart{
		Title:  fmt.Sprintf("Dispatch Plot - Day %d", p.Day+1),
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Hour",
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           "Energy (kWh)",
			GridMajorStyle: grid,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

func bandStyle(c drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: c,
		StrokeWidth: 1,
		FillColor:   c,
	}
}
