package meteo

import "fmt"

// TemperatureUnit is a temperature scale.
type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
	Kelvin
)

const kelvinOffset = 273.15

func (u TemperatureUnit) String() string {
	switch u {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return fmt.Sprintf("TemperatureUnit(%d)", int(u))
	}
}

// Temperature is a temperature reading.
type Temperature struct {
	magnitude float64
	unit      TemperatureUnit
}

// NewTemperature returns a temperature reading of magnitude in unit.
func NewTemperature(magnitude float64, unit TemperatureUnit) Temperature {
	return Temperature{magnitude: magnitude, unit: unit}
}

// Value returns the magnitude as constructed.
func (t Temperature) Value() float64 { return t.magnitude }

// Unit returns the scale the reading was constructed in.
func (t Temperature) Unit() TemperatureUnit { return t.unit }

func (t Temperature) Celsius() float64    { return t.in(Celsius) }
func (t Temperature) Fahrenheit() float64 { return t.in(Fahrenheit) }
func (t Temperature) Kelvin() float64     { return t.in(Kelvin) }

func (t Temperature) String() string {
	return fmt.Sprintf("%g %s", t.magnitude, t.unit)
}

func (t Temperature) in(unit TemperatureUnit) float64 {
	return ConvertTemperature(t.magnitude, t.unit, unit)
}

// ConvertTemperature converts a temperature between scales via Celsius.
// Identical scales return value unchanged.
func ConvertTemperature(value float64, from, to TemperatureUnit) float64 {
	if from == to {
		return value
	}

	result := value
	if from != Celsius {
		switch from {
		case Kelvin:
			result = value - kelvinOffset
		case Fahrenheit:
			result = (value - 32) * 5 / 9.0
		}
		if to == Celsius {
			return result
		}
	}

	switch to {
	case Kelvin:
		return result + kelvinOffset
	case Fahrenheit:
		return result*9/5.0 + 32
	default:
		return result
	}
}
