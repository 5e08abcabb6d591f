package dispatch

import (
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/AleOnori98/minigrid-dispatch/core/series"
)

// Band names double as legend labels and color-map keys.
const (
	BandSolar            = "Solar Production"
	BandBatteryCharging  = "Battery Charging"
	BandBatteryDischarge = "Battery Discharging"
	BandGenerator        = "Generator"
	BandLostLoad         = "Lost Load"
	CurveLoad            = "Load"
	CurveMaxSolar        = "Max Solar Production"
)

// Band is one stacked layer, bounded per hour by Lower and Upper.
type Band struct {
	Name  string
	Lower []float64
	Upper []float64
}

// Plan holds everything the chart renderers need for one day.
type Plan struct {
	Day   int
	Hours []float64
	Bands []Band

	// Load is the demand curve, MaxSolar the theoretical solar output
	// (production plus curtailment). Both are overlaid unstacked.
	Load     []float64
	MaxSolar []float64

	// Outflow is the final running total of the supply-side bands,
	// Inflow the running total absorbed by battery charging.
	Outflow []float64
	Inflow  []float64
}

// Build stacks one day of records. Supply-side bands accumulate upward in
// fixed order (solar, battery discharge, optional generator, lost load);
// battery charging accumulates as a band below the axis.
func Build(day []series.Record, dayIndex int, includeGenerator bool) Plan {
	n := len(day)
	hours := make([]float64, n)
	for i := range hours {
		hours[i] = float64(i)
	}

	p := Plan{
		Day:      dayIndex,
		Hours:    hours,
		Load:     column(day, func(r series.Record) float64 { return r.Load }),
		MaxSolar: column(day, func(r series.Record) float64 { return r.Solar }),
		Outflow:  make([]float64, n),
		Inflow:   make([]float64, n),
	}
	floats.Add(p.MaxSolar, column(day, func(r series.Record) float64 { return r.Curtailment }))

	stack := func(name string, vals []float64) {
		lower := slices.Clone(p.Outflow)
		floats.Add(p.Outflow, vals)
		p.Bands = append(p.Bands, Band{Name: name, Lower: lower, Upper: slices.Clone(p.Outflow)})
	}

	stack(BandSolar, column(day, func(r series.Record) float64 { return r.Solar }))

	charge := column(day, func(r series.Record) float64 { return r.BatteryCharge })
	lower := negated(p.Inflow)
	floats.Add(p.Inflow, charge)
	p.Bands = append(p.Bands, Band{Name: BandBatteryCharging, Lower: lower, Upper: negated(p.Inflow)})

	stack(BandBatteryDischarge, column(day, func(r series.Record) float64 { return r.BatteryDischarge }))
	if includeGenerator {
		stack(BandGenerator, column(day, func(r series.Record) float64 { return r.Generator }))
	}
	stack(BandLostLoad, column(day, func(r series.Record) float64 { return r.LostLoad }))

	return p
}

func column(day []series.Record, field func(series.Record) float64) []float64 {
	vals := make([]float64, len(day))
	for i, r := range day {
		vals[i] = field(r)
	}
	return vals
}

func negated(vals []float64) []float64 {
	out := slices.Clone(vals)
	floats.Scale(-1, out)
	return out
}
