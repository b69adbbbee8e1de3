// Package meteo converts wind speed and temperature readings between units
// and derives apparent-temperature metrics from them.
//
// # Conversion
//
// Every conversion is routed through a single pivot unit:
//
//	Wind:        mph | m/s | ft/s | km/h  →  knots  →  mph | m/s | ft/s | km/h
//	Temperature: °F | K                   →  °C     →  °F | K
//
// Wind factors are fixed empirical constants (e.g. 1 kt = 1.1507794 mph,
// 1 mph = 0.8689762 kt). They are not exact inverses of each other, so a
// round trip through knots drifts by up to ~1e-6 relative. Negative wind
// speeds are a "no reading" sentinel and pass through every conversion
// untouched. Temperatures have no such guard.
//
// # Derived metrics
//
// Each formula runs in the unit it was fit in and tags its result with that
// unit:
//
//	Dew point:  Magnus form, °C in, °C out.
//	            (B, C) = (17.966, 247.15) above 0 °C, (17.368, 238.88) otherwise.
//	            Humidity outside [1, 100] returns the receiver.
//	Heat index: °F in, °F out. Linear estimate first; at HI ≥ 80 the
//	            Rothfusz regression replaces it. Humidity is not checked.
//	Wind chill: °F and mph in, °F out. Applies only at T ≤ 50 °F and
//	            V > 3 mph; otherwise returns the receiver.
//	Feels like: wind chill when T ≤ 50 °F and V > 3 mph, else heat index
//	            when T ≥ 80 °F, else the receiver.
//
// Out-of-domain inputs never produce errors. The receiver comes back as-is,
// which callers can detect by comparing units or values.
//
// All types are immutable values and safe for concurrent use.
package meteo
