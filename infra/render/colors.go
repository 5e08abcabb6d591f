package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/AleOnori98/minigrid-dispatch/core/dispatch"
)

// ColorMap fixes the display color of each chart category as RGB hex.
// Process-wide constant, never mutated.
var ColorMap = map[string]string{
	dispatch.BandSolar:            "FFD700",
	dispatch.BandBatteryCharging:  "ADD8E6",
	dispatch.BandBatteryDischarge: "ADD8E6",
	dispatch.BandGenerator:        "FF4500",
	dispatch.BandLostLoad:         "FF0000",
	dispatch.CurveLoad:            "000000",
	dispatch.CurveMaxSolar:        "FFA500",
}

func categoryColor(name string) drawing.Color {
	if hex, ok := ColorMap[name]; ok {
		return drawing.ColorFromHex(hex)
	}
	return chart.ColorAlternateGray
}
