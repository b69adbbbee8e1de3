package meteo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDewPoint(t *testing.T) {
	t.Run("humidity below range returns receiver", func(t *testing.T) {
		temp := NewTemperature(20, Celsius)
		assert.Equal(t, temp, temp.DewPoint(0.5))
	})

	t.Run("humidity above range returns receiver", func(t *testing.T) {
		temp := NewTemperature(68, Fahrenheit)
		assert.Equal(t, temp, temp.DewPoint(100.5))
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		temp := NewTemperature(25, Celsius)
		assert.Equal(t, Celsius, temp.DewPoint(1).Unit())
		assert.InDelta(t, 25.0, temp.DewPoint(100).Value(), 1e-9)
	})

	t.Run("warm air", func(t *testing.T) {
		dp := NewTemperature(20, Celsius).DewPoint(50)
		assert.Equal(t, Celsius, dp.Unit())
		assert.Less(t, dp.Value(), 20.0)
		assert.InDelta(t, 9.30502337396641, dp.Value(), 1e-9)
	})

	t.Run("below freezing uses ice coefficients", func(t *testing.T) {
		dp := NewTemperature(-5, Celsius).DewPoint(80)
		assert.InDelta(t, -7.905440410140546, dp.Value(), 1e-9)
	})

	t.Run("zero uses ice coefficients", func(t *testing.T) {
		dp := NewTemperature(0, Celsius).DewPoint(50)
		assert.InDelta(t, -9.167690005338098, dp.Value(), 1e-9)
	})

	t.Run("reads receiver in Celsius", func(t *testing.T) {
		dp := NewTemperature(293.15, Kelvin).DewPoint(50)
		assert.Equal(t, Celsius, dp.Unit())
		assert.InDelta(t, 9.30502337396641, dp.Value(), 1e-6)
	})
}

func TestHeatIndex(t *testing.T) {
	tests := []struct {
		name     string
		temp     Temperature
		humidity float64
		expected float64
	}{
		{"mild stays linear", NewTemperature(70, Fahrenheit), 50, 69.05},
		{"linear just under threshold", NewTemperature(82, Fahrenheit), 0, 79.9},
		{"regression once linear reaches 80", NewTemperature(83, Fahrenheit), 0, 80.58345322},
		{"hot and humid", NewTemperature(85, Fahrenheit), 60, 89.251256},
		{"very hot", NewTemperature(90, Fahrenheit), 50, 94.5969412},
		{"Celsius receiver", NewTemperature(30, Celsius), 70, 95.0684316},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hi := tt.temp.HeatIndex(tt.humidity)
			assert.Equal(t, Fahrenheit, hi.Unit())
			assert.InDelta(t, tt.expected, hi.Value(), 1e-6)
		})
	}
}

func TestHeatIndex_RegressionReplacesLinear(t *testing.T) {
	// At 83 °F and 0% the linear estimate is 81.0; the regression must win.
	hi := NewTemperature(83, Fahrenheit).HeatIndex(0)
	assert.NotEqual(t, 81.0, hi.Value())
	assert.InDelta(t, 80.58345322, hi.Value(), 1e-6)
}

func TestHeatIndex_HumidityNotValidated(t *testing.T) {
	temp := NewTemperature(95, Fahrenheit)

	assert.Equal(t, Fahrenheit, temp.HeatIndex(150).Unit())
	assert.NotEqual(t, temp, temp.HeatIndex(-10))
}

func TestWindChill(t *testing.T) {
	t.Run("too warm returns receiver", func(t *testing.T) {
		temp := NewTemperature(60, Fahrenheit)
		assert.Equal(t, temp, temp.WindChill(NewWind(10, MilesPerHour)))
	})

	t.Run("too calm returns receiver", func(t *testing.T) {
		temp := NewTemperature(30, Fahrenheit)
		assert.Equal(t, temp, temp.WindChill(NewWind(2, MilesPerHour)))
	})

	t.Run("exactly 3 mph returns receiver", func(t *testing.T) {
		temp := NewTemperature(30, Fahrenheit)
		assert.Equal(t, temp, temp.WindChill(NewWind(3, MilesPerHour)))
	})

	t.Run("no wind reading returns receiver", func(t *testing.T) {
		temp := NewTemperature(-5, Celsius)
		assert.Equal(t, temp, temp.WindChill(NewWind(-1, MetersPerSecond)))
	})

	t.Run("cold and windy", func(t *testing.T) {
		wc := NewTemperature(30, Fahrenheit).WindChill(NewWind(20, MilesPerHour))
		assert.Equal(t, Fahrenheit, wc.Unit())
		assert.Less(t, wc.Value(), 30.0)
		assert.InDelta(t, 17.361783756466327, wc.Value(), 1e-9)
	})

	t.Run("exactly 50 F applies", func(t *testing.T) {
		wc := NewTemperature(50, Fahrenheit).WindChill(NewWind(10, MilesPerHour))
		assert.Equal(t, Fahrenheit, wc.Unit())
		assert.Less(t, wc.Value(), 50.0)
	})

	t.Run("metric inputs", func(t *testing.T) {
		wc := NewTemperature(5, Celsius).WindChill(NewWind(10, MetersPerSecond))
		assert.Equal(t, Fahrenheit, wc.Unit())
		assert.InDelta(t, 31.26076007127057, wc.Value(), 1e-6)
	})
}

func TestFeelsLike(t *testing.T) {
	t.Run("cold and windy is wind chill", func(t *testing.T) {
		temp := NewTemperature(40, Fahrenheit)
		wind := NewWind(10, MilesPerHour)

		got := temp.FeelsLike(80, wind)
		assert.Equal(t, temp.WindChill(wind), got)
		assert.InDelta(t, 33.64254827558847, got.Value(), 1e-9)
	})

	t.Run("hot is heat index", func(t *testing.T) {
		temp := NewTemperature(85, Fahrenheit)
		wind := NewWind(10, MilesPerHour)

		assert.Equal(t, temp.HeatIndex(60), temp.FeelsLike(60, wind))
	})

	t.Run("hot and windy is still heat index", func(t *testing.T) {
		temp := NewTemperature(80, Fahrenheit)
		wind := NewWind(40, MilesPerHour)

		assert.Equal(t, temp.HeatIndex(30), temp.FeelsLike(30, wind))
	})

	t.Run("comfortable returns receiver", func(t *testing.T) {
		temp := NewTemperature(65, Fahrenheit)
		for _, h := range []float64{0, 50, 100} {
			for _, w := range []Wind{NewWind(0, MilesPerHour), NewWind(30, Knots)} {
				assert.Equal(t, temp, temp.FeelsLike(h, w))
			}
		}
	})

	t.Run("cold but calm returns receiver", func(t *testing.T) {
		temp := NewTemperature(30, Fahrenheit)
		assert.Equal(t, temp, temp.FeelsLike(50, NewWind(2, MilesPerHour)))
	})

	t.Run("boundary 50 F and 3 mph returns receiver", func(t *testing.T) {
		temp := NewTemperature(50, Fahrenheit)
		wind := NewWind(3, MilesPerHour)
		assert.Equal(t, temp, temp.FeelsLike(50, wind))
		assert.Equal(t, temp.WindChill(wind), temp.FeelsLike(50, wind))
	})

	t.Run("10 C is exactly 50 F", func(t *testing.T) {
		temp := NewTemperature(10, Celsius)
		wind := NewWind(20, MilesPerHour)
		assert.Equal(t, temp.WindChill(wind), temp.FeelsLike(50, wind))
	})
}

func TestClassifyFeelsLike(t *testing.T) {
	tests := []struct {
		name     string
		temp     Temperature
		wind     Wind
		expected Regime
	}{
		{"cold windy", NewTemperature(40, Fahrenheit), NewWind(10, MilesPerHour), RegimeWindChill},
		{"cold calm", NewTemperature(40, Fahrenheit), NewWind(3, MilesPerHour), RegimeNominal},
		{"cold no reading", NewTemperature(40, Fahrenheit), NewWind(-1, MilesPerHour), RegimeNominal},
		{"mild", NewTemperature(65, Fahrenheit), NewWind(10, MilesPerHour), RegimeNominal},
		{"just below heat", NewTemperature(79.9, Fahrenheit), NewWind(0, MilesPerHour), RegimeNominal},
		{"heat threshold", NewTemperature(80, Fahrenheit), NewWind(0, MilesPerHour), RegimeHeatIndex},
		{"hot windy", NewTemperature(35, Celsius), NewWind(15, MetersPerSecond), RegimeHeatIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyFeelsLike(tt.temp, tt.wind))
		})
	}
}
