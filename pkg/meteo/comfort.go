package meteo

import "math"

// Thresholds separating the feels-like regimes.
const (
	windChillMaxF   = 50.0
	windChillMinMph = 3.0
	heatIndexMinF   = 80.0
)

// Regime names the formula FeelsLike selects for a reading.
type Regime string

const (
	RegimeWindChill Regime = "wind_chill"
	RegimeHeatIndex Regime = "heat_index"
	RegimeNominal   Regime = "nominal"
)

// DewPoint returns the dew point in Celsius at the given relative humidity
// (percent). Humidity outside [1, 100] returns the receiver.
func (t Temperature) DewPoint(humidityPct float64) Temperature {
	if humidityPct < 1.0 || humidityPct > 100 {
		return t
	}

	temp := t.Celsius()
	b, c := 17.368, 238.88
	if temp > 0 {
		b, c = 17.966, 247.15
	}

	pa := humidityPct / 100 * math.Exp(b*temp/(c+temp))
	dp := c * math.Log(pa) / (b - math.Log(pa))

	return NewTemperature(dp, Celsius)
}

// HeatIndex returns the apparent temperature in Fahrenheit for the given
// relative humidity (percent). Humidity is used as given.
func (t Temperature) HeatIndex(humidityPct float64) Temperature {
	temp := t.Fahrenheit()
	h := humidityPct

	hi := 0.5 * (temp + 61.0 + ((temp - 68.0) * 1.2) + (h * 0.094))

	if hi >= heatIndexMinF {
		hi = -42.379 +
			2.04901523*temp +
			10.14333127*h -
			0.22475541*temp*h -
			6.83783e-3*temp*temp -
			5.481717e-2*h*h +
			1.22874e-3*temp*temp*h +
			8.5282e-4*temp*h*h -
			1.99e-6*temp*temp*h*h
	}

	return NewTemperature(hi, Fahrenheit)
}

// WindChill returns the wind chill in Fahrenheit. Above 50 °F or at winds of
// 3 mph or less it returns the receiver.
func (t Temperature) WindChill(w Wind) Temperature {
	temp := t.Fahrenheit()
	speed := w.MPH()

	if temp > windChillMaxF || speed <= windChillMinMph {
		return t
	}

	v := math.Pow(speed, 0.16)
	wc := 35.74 + (0.6215 * temp) - 35.75*v + (0.4275*temp)*v

	return NewTemperature(wc, Fahrenheit)
}

// FeelsLike returns the wind chill, the heat index or the receiver itself,
// whichever ClassifyFeelsLike selects.
func (t Temperature) FeelsLike(humidityPct float64, w Wind) Temperature {
	switch ClassifyFeelsLike(t, w) {
	case RegimeWindChill:
		return t.WindChill(w)
	case RegimeHeatIndex:
		return t.HeatIndex(humidityPct)
	default:
		return t
	}
}

// ClassifyFeelsLike reports which regime applies: wind chill at or below
// 50 °F with wind above 3 mph, otherwise heat index at or above 80 °F,
// otherwise nominal.
func ClassifyFeelsLike(t Temperature, w Wind) Regime {
	temp := t.Fahrenheit()

	switch {
	case temp <= windChillMaxF && w.MPH() > windChillMinMph:
		return RegimeWindChill
	case temp >= heatIndexMinF:
		return RegimeHeatIndex
	default:
		return RegimeNominal
	}
}
