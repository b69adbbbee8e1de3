package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/couchcryptid/meteocalc/pkg/meteo"
)

var (
	// ErrMissingStation is returned for observations without a station_id.
	ErrMissingStation = errors.New("missing station_id")

	// ErrMissingTemperature is returned for observations without temperature_c.
	ErrMissingTemperature = errors.New("missing temperature_c")
)

var validate = validator.New()

// noWind stands in for an unreported wind speed; negative speeds are the
// calculator's "no reading" sentinel.
var noWind = meteo.NewWind(-1, meteo.MetersPerSecond)

// ParseRawEvent deserializes and validates a RawEvent's value into an
// Observation. observed_at falls back to the message timestamp.
func ParseRawEvent(raw RawEvent) (Observation, error) {
	var rec RawObservation
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return Observation{}, fmt.Errorf("parse raw event: %w", err)
	}

	obs, err := NewObservation(rec, raw.Timestamp)
	if err != nil {
		return Observation{}, err
	}
	obs.RawPayload = raw.Value
	return obs, nil
}

// NewObservation validates a RawObservation and converts it to an Observation.
// fallback is used when the record carries no observed_at.
func NewObservation(rec RawObservation, fallback time.Time) (Observation, error) {
	rec.StationID = strings.TrimSpace(rec.StationID)
	if err := validateObservation(rec); err != nil {
		return Observation{}, err
	}

	observedAt, err := parseObservedAt(rec.ObservedAt, fallback)
	if err != nil {
		return Observation{}, err
	}

	obs := Observation{
		StationID:   rec.StationID,
		StationName: strings.TrimSpace(rec.StationName),
		ObservedAt:  observedAt,
		Temperature: meteo.NewTemperature(*rec.TemperatureC, meteo.Celsius),
		Humidity:    rec.HumidityPct,
		Wind:        windFromMPS(rec.WindSpeedMS),
		Gust:        windFromMPS(rec.WindGustMS),
	}
	obs.ID = generateID(obs.StationID, obs.ObservedAt, *rec.TemperatureC)
	return obs, nil
}

// NewReading builds an anonymous Observation from ad-hoc values, as submitted
// to the calculator API. ObservedAt is the current clock time.
func NewReading(temperatureC float64, humidityPct, windSpeedMS *float64) Observation {
	observedAt := clock.Now().UTC()
	return Observation{
		ID:          generateID("", observedAt, temperatureC),
		ObservedAt:  observedAt,
		Temperature: meteo.NewTemperature(temperatureC, meteo.Celsius),
		Humidity:    humidityPct,
		Wind:        windFromMPS(windSpeedMS),
	}
}

// validateObservation maps validator failures onto the package's sentinel errors.
func validateObservation(rec RawObservation) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "StationID":
			return ErrMissingStation
		case "TemperatureC":
			return ErrMissingTemperature
		}
	}
	return fmt.Errorf("validate observation: %w", err)
}

func parseObservedAt(value string, fallback time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse observed_at: %w", err)
	}
	return t.UTC(), nil
}

func windFromMPS(v *float64) *meteo.Wind {
	if v == nil {
		return nil
	}
	w := meteo.NewWind(*v, meteo.MetersPerSecond)
	return &w
}

// generateID produces a deterministic ID from the observation's key fields so
// that replaying a message yields the same report ID.
func generateID(stationID string, observedAt time.Time, temperatureC float64) string {
	input := fmt.Sprintf("%s|%s|%g", stationID, observedAt.UTC().Format(time.RFC3339), temperatureC)
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	if stationID == "" {
		return short
	}
	return stationID + "-" + short
}

// EnrichObservation converts every reading to all supported units and
// derives dew point, heat index, wind chill and feels-like temperature.
func EnrichObservation(obs Observation) ComfortReport {
	temp := obs.Temperature

	report := ComfortReport{
		ID:          obs.ID,
		StationID:   obs.StationID,
		StationName: obs.StationName,
		ObservedAt:  obs.ObservedAt,
		TimeBucket:  deriveTimeBucket(obs.ObservedAt),
		Temperature: temperatureReading(temp),
		HumidityPct: obs.Humidity,
		Wind:        windReading(obs.Wind),
		Gust:        windReading(obs.Gust),
	}

	humidity := 0.0
	if obs.Humidity != nil {
		humidity = *obs.Humidity
		report.DewPointC = ptr(temp.DewPoint(humidity).Celsius())
		report.HeatIndexF = ptr(temp.HeatIndex(humidity).Fahrenheit())
	}

	wind := noWind
	if obs.Wind != nil {
		wind = *obs.Wind
		report.WindChillF = ptr(temp.WindChill(wind).Fahrenheit())
	}

	report.FeelsLikeF = temp.FeelsLike(humidity, wind).Fahrenheit()
	report.Regime = meteo.ClassifyFeelsLike(temp, wind)
	report.ProcessedAt = clock.Now()
	return report
}

func temperatureReading(t meteo.Temperature) TemperatureReading {
	return TemperatureReading{
		Celsius:    t.Celsius(),
		Fahrenheit: t.Fahrenheit(),
		Kelvin:     t.Kelvin(),
	}
}

func windReading(w *meteo.Wind) *WindReading {
	if w == nil {
		return nil
	}
	return &WindReading{
		MPH:   w.MPH(),
		Knots: w.Knots(),
		MPS:   w.MPS(),
		FPS:   w.FPS(),
		KMH:   w.KMH(),
	}
}

// deriveTimeBucket truncates the observation time to the hour in UTC.
// Returns zero time if the input is zero.
func deriveTimeBucket(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}

	return t.UTC().Truncate(time.Hour)
}

func ptr(v float64) *float64 { return &v }
