package series

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Solar Production (kWh),Battery Charge (kWh),Battery Discharge (kWh),Generator Production (kWh),Curtailment (kWh),Lost Load (kWh),Load (kWh)"

func dayCSV(days int) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	for i := 0; i < days*HoursPerDay; i++ {
		fmt.Fprintf(&b, "%d,1,2,3,4,5,6\n", i)
	}
	return b.String()
}

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(dayCSV(2)))
	require.NoError(t, err)
	assert.Equal(t, 48, s.Len())
	assert.Equal(t, 2, s.Days())

	day, err := s.Day(1)
	require.NoError(t, err)
	require.Len(t, day, HoursPerDay)
	assert.Equal(t, 24.0, day[0].Solar)
	assert.Equal(t, 6.0, day[23].Load)
}

func TestLoad_ColumnOrderIrrelevant(t *testing.T) {
	csv := "Load (kWh),Solar Production (kWh),Battery Charge (kWh),Battery Discharge (kWh),Generator Production (kWh),Curtailment (kWh),Lost Load (kWh)\n" +
		"10,1,2,3,4,5,6\n"
	s, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	rec := s.records[0]
	assert.Equal(t, 10.0, rec.Load)
	assert.Equal(t, 1.0, rec.Solar)
	assert.Equal(t, 6.0, rec.LostLoad)
}

func TestLoad_MissingColumn(t *testing.T) {
	csv := "Solar Production (kWh),Load (kWh)\n1,2\n"
	_, err := Load(strings.NewReader(csv))
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Battery Charge (kWh)")
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptySeries)

	_, err = Load(strings.NewReader(header + "\n"))
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestLoad_BadNumber(t *testing.T) {
	csv := header + "\n1,2,3,4,5,6,abc\n"
	_, err := Load(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Load (kWh)")
}

func TestDay_OutOfRange(t *testing.T) {
	s, err := Load(strings.NewReader(dayCSV(1)))
	require.NoError(t, err)

	if _, err := s.Day(0); err != nil {
		t.Fatalf("day 0: %v", err)
	}
	_, err = s.Day(1)
	assert.ErrorIs(t, err, ErrDayOutOfRange)
	_, err = s.Day(-1)
	assert.ErrorIs(t, err, ErrDayOutOfRange)
}
