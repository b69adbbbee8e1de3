package meteo

import "fmt"

// WindUnit is a wind speed unit.
type WindUnit int

const (
	MilesPerHour WindUnit = iota
	Knots
	MetersPerSecond
	FeetPerSecond
	KilometersPerHour
)

// Factors into knots.
const (
	mphToKnots = 0.8689762
	mpsToKnots = 1.9438445
	fpsToKnots = 0.5924838
	kmhToKnots = 0.539593
)

// Factors out of knots.
const (
	knotsToMph = 1.1507794
	knotsToMps = 0.5144444
	knotsToFps = 1.6878099
	knotsToKmh = 1.85325
)

func (u WindUnit) String() string {
	switch u {
	case MilesPerHour:
		return "mph"
	case Knots:
		return "kt"
	case MetersPerSecond:
		return "m/s"
	case FeetPerSecond:
		return "ft/s"
	case KilometersPerHour:
		return "km/h"
	default:
		return fmt.Sprintf("WindUnit(%d)", int(u))
	}
}

// Wind is a wind speed reading. A negative magnitude means "no reading".
type Wind struct {
	magnitude float64
	unit      WindUnit
}

// NewWind returns a wind reading of magnitude in unit.
func NewWind(magnitude float64, unit WindUnit) Wind {
	return Wind{magnitude: magnitude, unit: unit}
}

// Value returns the magnitude as constructed.
func (w Wind) Value() float64 { return w.magnitude }

// Unit returns the unit the reading was constructed in.
func (w Wind) Unit() WindUnit { return w.unit }

func (w Wind) MPH() float64   { return w.in(MilesPerHour) }
func (w Wind) Knots() float64 { return w.in(Knots) }
func (w Wind) MPS() float64   { return w.in(MetersPerSecond) }
func (w Wind) FPS() float64   { return w.in(FeetPerSecond) }
func (w Wind) KMH() float64   { return w.in(KilometersPerHour) }

func (w Wind) String() string {
	return fmt.Sprintf("%g %s", w.magnitude, w.unit)
}

func (w Wind) in(unit WindUnit) float64 {
	return ConvertWind(w.magnitude, w.unit, unit)
}

// ConvertWind converts a wind speed between units via knots. Identical units
// and negative speeds are returned unchanged.
func ConvertWind(value float64, from, to WindUnit) float64 {
	if from == to || value < 0 {
		return value
	}

	switch {
	case from == Knots:
		return fromKnots(value, to)
	case to == Knots:
		return toKnots(value, from)
	default:
		return fromKnots(toKnots(value, from), to)
	}
}

// toKnots treats an unrecognised unit as knots.
func toKnots(value float64, unit WindUnit) float64 {
	if value < 0 {
		return value
	}

	switch unit {
	case MilesPerHour:
		return value * mphToKnots
	case MetersPerSecond:
		return value * mpsToKnots
	case FeetPerSecond:
		return value * fpsToKnots
	case KilometersPerHour:
		return value * kmhToKnots
	default:
		return value
	}
}

// fromKnots treats an unrecognised unit as knots.
func fromKnots(knots float64, unit WindUnit) float64 {
	if knots < 0 {
		return knots
	}

	switch unit {
	case MilesPerHour:
		return knots * knotsToMph
	case MetersPerSecond:
		return knots * knotsToMps
	case FeetPerSecond:
		return knots * knotsToFps
	case KilometersPerHour:
		return knots * knotsToKmh
	default:
		return knots
	}
}
