// Package domain models weather station observations and the comfort
// reports derived from them.
//
// # Data Source
//
// Station collectors publish one flat JSON object per observation to the
// Kafka source topic:
//
//	{"station_id":"101004","station_name":"Helsinki Kumpula",
//	 "observed_at":"2024-01-15T06:00:00Z","temperature_c":-8.4,
//	 "humidity_pct":91,"wind_speed_ms":6.2,"wind_gust_ms":9.8}
//
// Every numeric field carries a fixed unit in its name; no unit strings are
// parsed. station_id and temperature_c are required. observed_at falls back
// to the Kafka message timestamp when absent.
//
// # Enrichment
//
// Each observation becomes a [ComfortReport] holding:
//
//	Temperature: °C, °F and K.
//	Wind / gust: mph, knots, m/s, ft/s and km/h (omitted when not reported).
//	Dew point:   °C, present when humidity is reported.
//	Heat index:  °F, present when humidity is reported.
//	Wind chill:  °F, present when wind is reported.
//	Feels like:  °F, always present, with the regime that produced it
//	             (wind_chill, heat_index or nominal).
//
// Derived values come straight from [meteo]. Where a formula does not apply
// (dew point outside 1–100 %, wind chill above 50 °F or at calm wind) the
// calculator hands back the air temperature and the report carries that.
// Feels-like treats a missing humidity as 0 % and a missing wind as no
// reading.
//
// # ID Generation
//
// Report IDs are deterministic SHA-256 hashes of station|observed_at|
// temperature so replays of the same observation upsert rather than
// duplicate downstream. See [generateID].
package domain
