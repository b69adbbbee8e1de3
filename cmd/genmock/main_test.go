package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	idx := map[string]int{
		"station_id": 0, "station_name": 1, "observed_at": 2,
		"temperature_c": 3, "humidity_pct": 4, "wind_speed_ms": 5, "wind_gust_ms": 6,
	}

	t.Run("blank cells stay unset", func(t *testing.T) {
		rec, err := parseRow([]string{"101339", "Jyväskylä Airport", "2024-01-15T06:00:00Z", "-21.0", "", "3.5", ""}, idx)
		require.NoError(t, err)

		assert.Equal(t, "101339", rec.StationID)
		require.NotNil(t, rec.TemperatureC)
		assert.InDelta(t, -21.0, *rec.TemperatureC, 0)
		assert.Nil(t, rec.HumidityPct)
		require.NotNil(t, rec.WindSpeedMS)
		assert.InDelta(t, 3.5, *rec.WindSpeedMS, 0)
		assert.Nil(t, rec.WindGustMS)
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := parseRow([]string{"101339", "", "", "cold", "", "", ""}, idx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "temperature_c")
	})
}

func TestProcessCSV_MockFixture(t *testing.T) {
	recs, reports, err := processCSV("../../data/mock/observations.csv")
	require.NoError(t, err)

	require.Len(t, recs, 12)
	require.Len(t, reports, 12)
	for i := range recs {
		assert.Equal(t, recs[i].StationID, reports[i].StationID)
	}
}
