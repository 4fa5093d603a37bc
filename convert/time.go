package convert

import "github.com/arloliu/unitcode/unit"

// secondsPer is indexed by the calendar selector (bits 16-19 of a code).
// Microsecond and millisecond are handled by inSeconds/fromSeconds.
//
// Month is the mean Gregorian month and year the tropical year. Decade and
// century are exact multiples of that year.
var secondsPer = [16]float64{
	unit.Second >> 16:  1.0,
	unit.Minute >> 16:  60.0,
	unit.Hour >> 16:    60.0 * 60.0,
	unit.Day >> 16:     24.0 * 60.0 * 60.0,
	unit.Week >> 16:    604800.0,
	unit.Month >> 16:   2629743.83,
	unit.Year >> 16:    31556926.0,
	unit.Decade >> 16:  315569260.0,
	unit.Century >> 16: 3155692600.0,
}

// SecondsPer returns the length of calendar unit u in seconds, or 0 for
// selectors without a fixed length. Sub-second units report the factors the
// stored format has always applied: 1e-3 for Microsecond and 1e-6 for
// Millisecond.
func SecondsPer(u unit.Code) float64 {
	switch u.TimeUnit() {
	case unit.Microsecond:
		return 1.0 / 1000.0
	case unit.Millisecond:
		return 1.0 / 1000000.0
	}

	return secondsPer[u.TimeUnit()>>16]
}

// inSeconds rescales a quantity counted in calendar unit u into seconds.
func inSeconds(value float64, u unit.Code) float64 {
	switch u {
	case unit.Microsecond:
		return value / 1000.0
	case unit.Millisecond:
		return value / 1000000.0
	}

	if s := secondsPer[u>>16]; s != 0 {
		return value * s
	}

	return value
}

// fromSeconds is the inverse of inSeconds.
func fromSeconds(value float64, u unit.Code) float64 {
	switch u {
	case unit.Microsecond:
		return value * 1000.0
	case unit.Millisecond:
		return value * 1000000.0
	}

	if s := secondsPer[u>>16]; s != 0 {
		return value / s
	}

	return value
}

// convertRate moves value from the time sub-code of from to that of to. A
// TimeMult ("in") side scales like a duration, a TimeDiv ("per") side like a
// frequency.
func convertRate(value float64, from, to unit.Code) float64 {
	if from.IsTimeMult() {
		value = inSeconds(value, from.TimeUnit())
	} else {
		value = fromSeconds(value, from.TimeUnit())
	}

	if to.IsTimeMult() {
		value = fromSeconds(value, to.TimeUnit())
	} else {
		value = inSeconds(value, to.TimeUnit())
	}

	return value
}
