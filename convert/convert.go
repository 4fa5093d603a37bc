package convert

import "github.com/arloliu/unitcode/unit"

// Convert converts value expressed in unit from into unit to.
//
// Codes that do not resolve into the same dimension leave value unchanged;
// there is no error result. A non-zero secondary half on either code makes the
// call a ratio conversion: the denominators are converted first with the
// direction inverted, then the numerators as an ordinary call.
func Convert(value float64, from, to unit.Code) float64 {
	if from == to {
		return value
	}

	if from.IsComposite() || to.IsComposite() {
		// scaling a ratio's denominator scales the ratio inversely
		v := Convert(value, to.Secondary(), from.Secondary())
		return Convert(v, from.Primary(), to.Primary())
	}

	// Two pure time codes mask down to zero here, so Hour to Minute is an
	// identity. Time only converts as the rate or "in" part of a quantity.
	if from != 0 && to != 0 {
		if hasRate(from) || hasRate(to) {
			if from&unit.TimeMask != to&unit.TimeMask {
				value = convertRate(value, from, to)
			}
		}

		from, to = from.WithoutTime(), to.WithoutTime()
	}

	dim := from.Dimension()
	if dim != to.Dimension() {
		return value
	}

	switch dim {
	case unit.DimTemperature:
		return convertTemperature(value, from, to)
	case unit.DimPercent:
		return convertPercent(value, from, to)
	case unit.DimAngle:
		return convertAngle(value, from, to)
	case unit.DimUnknown, unit.DimCoordinate, unit.DimTime:
		return value
	default:
		return convertRatio(value, ratioTables[dim], from, to)
	}
}

// Slice converts every value of src and stores the results in dst, growing it
// when needed. dst and src may be the same slice.
func Slice(dst, src []float64, from, to unit.Code) []float64 {
	if cap(dst) < len(src) {
		dst = make([]float64, len(src))
	} else {
		dst = dst[:len(src)]
	}

	for i, v := range src {
		dst[i] = Convert(v, from, to)
	}

	return dst
}

// hasRate reports whether c combines a time sub-code with another dimension.
func hasRate(c unit.Code) bool {
	return c.HasTime() && c.WithoutTime() != 0
}

func convertRatio(value float64, table []float64, from, to unit.Code) float64 {
	fromScale, ok := lookup(table, from)
	if !ok {
		return value
	}
	toScale, ok := lookup(table, to)
	if !ok {
		return value
	}

	return value * fromScale / toScale
}

func convertTemperature(value float64, from, to unit.Code) float64 {
	fi, ok := from.Ordinal()
	if !ok || fi >= len(temperatureScale) {
		return value
	}
	ti, ok := to.Ordinal()
	if !ok || ti >= len(temperatureScale) {
		return value
	}

	kelvin := (value + temperatureOffset[fi]) / temperatureScale[fi]

	return kelvin*temperatureScale[ti] - temperatureOffset[ti]
}

// convertPercent normalises to a plain decimal and denormalises into the
// target member. The per-member rules are not symmetric and must stay literal.
func convertPercent(value float64, from, to unit.Code) float64 {
	switch from {
	case unit.Percent:
		value *= 0.01
	case unit.PercentInvert:
		value = (100.0 - value) * 0.01
	case unit.DecimalInvert:
		value = 1.0 - value
	}

	switch to {
	case unit.Percent:
		value *= 100.0
	case unit.PercentInvert:
		value = 100.0 - value*100.0
	case unit.DecimalInvert:
		value = 1.0 - value
	}

	return value
}
