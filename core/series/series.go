package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// HoursPerDay is the number of records forming one simulated day.
const HoursPerDay = 24

// CSV column headers as written by the optimization model.
const (
	ColSolar            = "Solar Production (kWh)"
	ColBatteryCharge    = "Battery Charge (kWh)"
	ColBatteryDischarge = "Battery Discharge (kWh)"
	ColGenerator        = "Generator Production (kWh)"
	ColCurtailment      = "Curtailment (kWh)"
	ColLostLoad         = "Lost Load (kWh)"
	ColLoad             = "Load (kWh)"
)

var ErrEmptySeries = errors.New("energy series has no rows")
var ErrMissingColumn = errors.New("missing column")
var ErrDayOutOfRange = errors.New("day index out of range")

// Record holds one hour of the energy balance, all values in kWh.
type Record struct {
	Solar            float64
	BatteryCharge    float64
	BatteryDischarge float64
	Generator        float64
	Curtailment      float64
	LostLoad         float64
	Load             float64
}

// EnergyTimeSeries is an immutable, chronologically ordered sequence of
// hourly energy-balance records.
type EnergyTimeSeries struct {
	records []Record
}

// Load reads a CSV energy balance from r. Columns are located by header
// name, so their order in the file does not matter.
func Load(r io.Reader) (*EnergyTimeSeries, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptySeries
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	cols := []string{ColSolar, ColBatteryCharge, ColBatteryDischarge, ColGenerator, ColCurtailment, ColLostLoad, ColLoad}
	pos := make([]int, len(cols))
	for i, name := range cols {
		p, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		pos[i] = p
	}

	var records []Record
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}
		vals := make([]float64, len(cols))
		for i, p := range pos {
			v, err := strconv.ParseFloat(strings.TrimSpace(rec[p]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", row, cols[i], err)
			}
			vals[i] = v
		}
		records = append(records, Record{
			Solar:            vals[0],
			BatteryCharge:    vals[1],
			BatteryDischarge: vals[2],
			Generator:        vals[3],
			Curtailment:      vals[4],
			LostLoad:         vals[5],
			Load:             vals[6],
		})
	}
	if len(records) == 0 {
		return nil, ErrEmptySeries
	}
	return &EnergyTimeSeries{records: records}, nil
}

// LoadFile reads a CSV energy balance from the given path.
func LoadFile(path string) (*EnergyTimeSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Len returns the number of hourly records.
func (s *EnergyTimeSeries) Len() int { return len(s.records) }

// Days returns the number of complete days covered by the series.
func (s *EnergyTimeSeries) Days() int { return len(s.records) / HoursPerDay }

// Day returns the 24 records of day d, counted from zero.
func (s *EnergyTimeSeries) Day(d int) ([]Record, error) {
	if d < 0 || (d+1)*HoursPerDay > len(s.records) {
		return nil, fmt.Errorf("%w: day %d needs rows [%d,%d) but series has %d", ErrDayOutOfRange, d, d*HoursPerDay, (d+1)*HoursPerDay, len(s.records))
	}
	return s.records[d*HoursPerDay : (d+1)*HoursPerDay], nil
}
