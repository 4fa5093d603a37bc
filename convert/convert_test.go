package convert

import (
	"math"
	"testing"

	"github.com/arloliu/unitcode/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dimensionCodes lists every code with a conversion rule, grouped by dimension.
func dimensionCodes() map[string][]unit.Code {
	rangeCodes := func(start, end unit.Code) []unit.Code {
		codes := make([]unit.Code, 0, end-start+1)
		for c := start; c <= end; c++ {
			codes = append(codes, c)
		}

		return codes
	}

	return map[string][]unit.Code{
		"distance":    rangeCodes(unit.MM, unit.NauticalMileUK),
		"area":        rangeCodes(unit.MM2, unit.Mile2),
		"volume":      rangeCodes(unit.MM3, unit.USDryBarrel),
		"temperature": rangeCodes(unit.Kelvin, unit.Rankine),
		"pressure":    rangeCodes(unit.KPa, unit.Torr),
		"mass":        rangeCodes(unit.Milligram, unit.Ton),
		"energy":      rangeCodes(unit.Joule, unit.Kilojoule),
		"percent":     rangeCodes(unit.Decimal, unit.PercentInvert),
		"consumption": {unit.TonsPerAcre, unit.KgPerM2},
		"intensity":   {unit.BtuFtS, unit.KilowattPerM},
		"speed": {
			unit.M | unit.Second, unit.M | unit.Minute, unit.M | unit.Hour,
			unit.KM | unit.Hour, unit.Mile | unit.Hour, unit.Chain | unit.Hour,
			unit.Foot | unit.Day, unit.Inch | unit.Week,
		},
		"power-time": {
			unit.Joule, unit.WattSecond, unit.WattHour, unit.KilowattSecond, unit.KilowattHour,
		},
		"time": {
			unit.Second, unit.Minute, unit.Hour, unit.Day, unit.Week, unit.Month,
			unit.Year, unit.Decade, unit.Century,
		},
	}
}

func requireClose(t *testing.T, want, got float64, msgAndArgs ...any) {
	t.Helper()
	tolerance := 1e-9 * math.Max(1.0, math.Abs(want))
	require.InDelta(t, want, got, tolerance, msgAndArgs...)
}

func TestConvert_Identity(t *testing.T) {
	values := []float64{0, 1, -1, 1e6, 0.1, math.Pi}

	for name, codes := range dimensionCodes() {
		t.Run(name, func(t *testing.T) {
			for _, c := range codes {
				for _, x := range values {
					require.Equal(t, x, Convert(x, c, c), "code %s", c)
				}
			}
		})
	}

	angles := []unit.Code{
		unit.Angle, unit.Angle | unit.Degree, unit.Angle | unit.Arcsecond,
		unit.Angle | unit.Compass, unit.Angle | unit.Compass | unit.Degree,
	}
	for _, c := range angles {
		require.Equal(t, -720.5, Convert(-720.5, c, c))
	}

	composite := unit.Kilojoule.Per(unit.KG)
	require.Equal(t, 12.5, Convert(12.5, composite, composite))
}

func TestConvert_RoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 1e6}

	for name, codes := range dimensionCodes() {
		t.Run(name, func(t *testing.T) {
			for _, a := range codes {
				for _, b := range codes {
					for _, x := range values {
						back := Convert(Convert(x, a, b), b, a)
						requireClose(t, x, back, "%v: %s -> %s -> %s", x, a, b, a)
					}
				}
			}
		})
	}
}

func TestConvert_KnownConstants(t *testing.T) {
	require.Equal(t, 1.609344, Convert(1.0, unit.Mile, unit.KM))
	require.Equal(t, 373.15, Convert(100.0, unit.Celsius, unit.Kelvin))
	// the affine path lands a few ulps below 32
	require.InDelta(t, 32.0, Convert(0.0, unit.Celsius, unit.Fahrenheit), 1e-12)

	tests := []struct {
		name  string
		value float64
		from  unit.Code
		to    unit.Code
		want  float64
	}{
		{"km to m", 1.5, unit.KM, unit.M, 1500},
		{"foot to inch", 1, unit.Foot, unit.Inch, 12},
		{"nautical mile to m", 1, unit.NauticalMile, unit.M, 1852},
		{"hectare to m2", 1, unit.Hectare, unit.M2, 1e4},
		{"acre to m2", 1, unit.Acre, unit.M2, 4046.8564224},
		{"litre to cm3", 1, unit.Litre, unit.CM3, 1000},
		{"us gallon to litre", 1, unit.USGallon, unit.Litre, 3.785411784},
		{"lb to kg", 1, unit.LB, unit.KG, 0.45359237},
		{"tonne to kg", 2, unit.Tonne, unit.KG, 2000},
		{"atm to kpa", 1, unit.Atm, unit.KPa, 101.325},
		{"bar to kpa", 1, unit.Bar, unit.KPa, 100},
		{"kilojoule to joule", 1, unit.Kilojoule, unit.Joule, 1000},
		{"calorie to joule", 1, unit.Calorie, unit.Joule, 4.1868},
		{"tons per acre to kg per m2", 1, unit.TonsPerAcre, unit.KgPerM2, 0.2242},
		{"btu ft s to kw m", 1, unit.BtuFtS, unit.KilowattPerM, 3.461},
		{"kelvin to celsius", 0, unit.Kelvin, unit.Celsius, -273.15},
		{"fahrenheit to celsius", 212, unit.Fahrenheit, unit.Celsius, 100},
		{"rankine to kelvin", 9, unit.Rankine, unit.Kelvin, 5},
		{"celsius to rankine", 0, unit.Celsius, unit.Rankine, 491.67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireClose(t, tt.want, Convert(tt.value, tt.from, tt.to))
		})
	}
}

func TestConvert_Percent(t *testing.T) {
	require.Equal(t, 0.25, Convert(25.0, unit.Percent, unit.Decimal))
	require.Equal(t, 75.0, Convert(25.0, unit.Percent, unit.PercentInvert))
	require.Equal(t, 0.75, Convert(0.25, unit.Decimal, unit.DecimalInvert))

	tests := []struct {
		name  string
		value float64
		from  unit.Code
		to    unit.Code
		want  float64
	}{
		{"decimal to percent", 0.5, unit.Decimal, unit.Percent, 50},
		{"percent invert to decimal", 15, unit.PercentInvert, unit.Decimal, 0.85},
		{"decimal invert to percent", 0.15, unit.DecimalInvert, unit.Percent, 85},
		{"percent invert to decimal invert", 15, unit.PercentInvert, unit.DecimalInvert, 0.15},
		{"decimal to percent invert", 0.85, unit.Decimal, unit.PercentInvert, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireClose(t, tt.want, Convert(tt.value, tt.from, tt.to))
		})
	}
}

func TestConvert_TimeRate(t *testing.T) {
	require.Equal(t, 3600.0, Convert(60.0, unit.M|unit.Minute, unit.M|unit.Hour))

	tests := []struct {
		name  string
		value float64
		from  unit.Code
		to    unit.Code
		want  float64
	}{
		{"kph to m per s", 36, unit.KM | unit.Hour, unit.M | unit.Second, 10},
		{"mph to kph", 1, unit.Mile | unit.Hour, unit.KM | unit.Hour, 1.609344},
		{"m per min to chain per hour", 20.1168, unit.M | unit.Minute, unit.Chain | unit.Hour, 60},
		{"per day to per week", 1, unit.Foot | unit.Day, unit.Foot | unit.Week, 7},
		{"watt hour to joule", 1, unit.WattHour, unit.Joule, 3600},
		{"kilowatt hour to kilojoule", 1, unit.KilowattHour, unit.Kilojoule, 3600},
		{"kilowatt hour to watt hour", 1, unit.KilowattHour, unit.WattHour, 1000},
		{"kilowatt second to joule", 1, unit.KilowattSecond, unit.Joule, 1000},
		{"per year", 31556926, unit.M | unit.Second, unit.M | unit.Year, 31556926.0 * 31556926.0},
		{"per month to per year", 1, unit.M | unit.Month, unit.M | unit.Year, 31556926.0 / 2629743.83},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireClose(t, tt.want, Convert(tt.value, tt.from, tt.to))
		})
	}
}

func TestConvert_PureTime(t *testing.T) {
	// bare time codes carry no quantity, so the value passes through
	require.Equal(t, 1.0, Convert(1, unit.Hour, unit.Minute))
	require.Equal(t, 2.0, Convert(2, unit.Hour|unit.TimeMult, unit.Minute|unit.TimeMult))
	require.Equal(t, 1.0, Convert(1, unit.Year|unit.TimeMult, unit.Second|unit.TimeMult))
	require.Equal(t, 5.0, Convert(5, unit.Decade, unit.Year|unit.TimeMult))
	require.Equal(t, -3.5, Convert(-3.5, unit.Millisecond, unit.Century))

	// the same selectors still scale the time part of a quantity
	requireClose(t, 120.0, Convert(2, unit.WattHour, unit.Watt|unit.Minute|unit.TimeMult))
	requireClose(t, 10.0, Convert(1, unit.M|unit.Decade|unit.TimeMult, unit.M|unit.Year|unit.TimeMult))
	requireClose(t, 10.0, Convert(1, unit.M|unit.Year, unit.M|unit.Decade))
	requireClose(t, 315569260.0, Convert(1, unit.Joule|unit.Decade|unit.TimeMult, unit.Joule|unit.Second|unit.TimeMult))
}

func TestConvert_SubSecondFactors(t *testing.T) {
	require.Equal(t, 1.0/1000.0, SecondsPer(unit.Microsecond))
	require.Equal(t, 1.0/1000000.0, SecondsPer(unit.Millisecond))
	require.Equal(t, 3600.0, SecondsPer(unit.Hour))
	require.Equal(t, 3600.0, SecondsPer(unit.KM|unit.Hour))
	require.Equal(t, 0.0, SecondsPer(unit.KM))

	requireClose(t, 1000.0, Convert(1, unit.M|unit.Second, unit.M|unit.Microsecond)*1e6)
	requireClose(t, 2.0, Convert(2000, unit.Watt|unit.Microsecond|unit.TimeMult, unit.Watt|unit.Second|unit.TimeMult))
}

func TestConvert_Composite(t *testing.T) {
	t.Run("btu per lb to kj per kg", func(t *testing.T) {
		got := Convert(1, unit.BTU.Per(unit.LB), unit.Kilojoule.Per(unit.KG))
		// 1055.06 J / 0.45359237 kg
		require.InEpsilon(t, 1055.06/1000.0/0.45359237, got, 1e-12)
	})

	t.Run("denominator converts inversely", func(t *testing.T) {
		direct := Convert(1, unit.KG, unit.Gram)
		require.Equal(t, 1000.0, direct)

		got := Convert(1, unit.Joule.Per(unit.KG), unit.Joule.Per(unit.Gram))
		require.Equal(t, 0.001, got)
	})

	t.Run("kj per kg to j per g", func(t *testing.T) {
		requireClose(t, 5.0, Convert(5, unit.Kilojoule.Per(unit.KG), unit.Joule.Per(unit.Gram)))
	})

	t.Run("one side plain", func(t *testing.T) {
		// missing denominator on the target leaves the denominator step as identity
		got := Convert(2, unit.Kilojoule.Per(unit.KG), unit.Joule)
		require.Equal(t, 2000.0, got)
	})

	t.Run("round trip", func(t *testing.T) {
		from := unit.Kilojoule.Per(unit.KG)
		to := unit.BTU.Per(unit.LB)
		for _, x := range []float64{0, 1, -1, 1e6} {
			requireClose(t, x, Convert(Convert(x, from, to), to, from))
		}
	})
}

func TestConvert_PassThrough(t *testing.T) {
	tests := []struct {
		name string
		from unit.Code
		to   unit.Code
	}{
		{"both outside ranges", 0x0000fff0, 0x0000fff1},
		{"zero codes", 0, unit.Mile},
		{"cross dimension", unit.Mile, unit.Kelvin},
		{"distance to area", unit.M, unit.M2},
		{"coordinates", unit.CoordinateDegree, unit.CoordinateUTM},
		{"temperature slot without table entry", unit.TemperatureEnd, unit.Kelvin},
		{"consumption slot without table entry", 0x00000905, unit.KgPerM2},
		{"intensity slot without table entry", unit.BtuFtS, 0x00000919},
		{"angle to percent", unit.Angle | unit.Degree, unit.Percent},
		{"pure time to rate", unit.Hour, unit.M | unit.Hour},
		{"high bits unknown", 0x0000fff0 << 32, 0x0000fff1 << 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range []float64{0, 1.25, -3, 1e6} {
				assert.Equal(t, x, Convert(x, tt.from, tt.to))
			}
		})
	}
}

func TestSlice(t *testing.T) {
	src := []float64{1, 2, 3}

	dst := Slice(nil, src, unit.KM, unit.M)
	require.Equal(t, []float64{1000, 2000, 3000}, dst)
	require.Equal(t, []float64{1, 2, 3}, src)

	buf := make([]float64, 0, 8)
	dst = Slice(buf, src, unit.M, unit.CM)
	require.Len(t, dst, 3)
	require.Equal(t, []float64{100, 200, 300}, dst)

	inPlace := []float64{0, 100}
	out := Slice(inPlace, inPlace, unit.Celsius, unit.Kelvin)
	require.Equal(t, []float64{273.15, 373.15}, out)
	require.Equal(t, []float64{273.15, 373.15}, inPlace)
}

func TestScale(t *testing.T) {
	s, ok := Scale(unit.Mile)
	require.True(t, ok)
	require.Equal(t, 1.609344e3, s)

	s, ok = Scale(unit.KM | unit.Hour)
	require.True(t, ok)
	require.Equal(t, 1e3, s)

	_, ok = Scale(unit.Celsius)
	require.False(t, ok)
	_, ok = Scale(0x00000905)
	require.False(t, ok)
	_, ok = Scale(unit.Angle)
	require.False(t, ok)
}

func TestTables_NoZeroScale(t *testing.T) {
	for dim, table := range ratioTables {
		for i, s := range table {
			require.NotZero(t, s, "%s[%d]", dim, i)
		}
	}
	for i, s := range temperatureScale {
		require.NotZero(t, s, "temperature[%d]", i)
	}
}

func TestTables_CoverRanges(t *testing.T) {
	require.Len(t, distanceScale, unit.DistanceEnd-unit.DistanceStart+1)
	require.Len(t, areaScale, unit.AreaEnd-unit.AreaStart+1)
	require.Len(t, volumeScale, unit.VolumeEnd-unit.VolumeStart+1)
	require.Len(t, massScale, unit.MassEnd-unit.MassStart+1)
	require.Len(t, energyScale, unit.EnergyEnd-unit.EnergyStart+1)
	require.Len(t, pressureScale, unit.PressureEnd-unit.PressureStart+1)
}
