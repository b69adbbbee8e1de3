package domain

import (
	"context"
	"time"

	"github.com/couchcryptid/meteocalc/pkg/meteo"
)

// RawObservation is the flat JSON structure published by station collectors.
type RawObservation struct {
	StationID    string   `json:"station_id" validate:"required"`
	StationName  string   `json:"station_name,omitempty"`
	ObservedAt   string   `json:"observed_at,omitempty"` // RFC3339
	TemperatureC *float64 `json:"temperature_c" validate:"required"`
	HumidityPct  *float64 `json:"humidity_pct,omitempty"`
	WindSpeedMS  *float64 `json:"wind_speed_ms,omitempty"`
	WindGustMS   *float64 `json:"wind_gust_ms,omitempty"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// Observation is a parsed station reading. Nil pointers mean the collector
// did not report the quantity.
type Observation struct {
	ID          string
	StationID   string
	StationName string
	ObservedAt  time.Time
	Temperature meteo.Temperature
	Humidity    *float64
	Wind        *meteo.Wind
	Gust        *meteo.Wind

	RawPayload []byte
}

// TemperatureReading is a temperature expressed in every supported scale.
type TemperatureReading struct {
	Celsius    float64 `json:"c"`
	Fahrenheit float64 `json:"f"`
	Kelvin     float64 `json:"k"`
}

// WindReading is a wind speed expressed in every supported unit.
type WindReading struct {
	MPH   float64 `json:"mph"`
	Knots float64 `json:"kt"`
	MPS   float64 `json:"ms"`
	FPS   float64 `json:"fts"`
	KMH   float64 `json:"kmh"`
}

// ComfortReport is the enriched observation destined for the sink topic.
type ComfortReport struct {
	ID          string    `json:"id"`
	StationID   string    `json:"station_id,omitempty"`
	StationName string    `json:"station_name,omitempty"`
	ObservedAt  time.Time `json:"observed_at"`
	TimeBucket  time.Time `json:"time_bucket"`

	Temperature TemperatureReading `json:"temperature"`
	HumidityPct *float64           `json:"humidity_pct,omitempty"`
	Wind        *WindReading       `json:"wind,omitempty"`
	Gust        *WindReading       `json:"gust,omitempty"`

	DewPointC  *float64     `json:"dew_point_c,omitempty"`
	HeatIndexF *float64     `json:"heat_index_f,omitempty"`
	WindChillF *float64     `json:"wind_chill_f,omitempty"`
	FeelsLikeF float64      `json:"feels_like_f"`
	Regime     meteo.Regime `json:"regime"`

	ProcessedAt time.Time `json:"processed_at"`
}
