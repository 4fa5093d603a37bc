package unit

import (
	"fmt"
	"strings"
)

var codeNames = map[Code]string{
	MM:             "MM",
	CM:             "CM",
	M:              "M",
	KM:             "KM",
	Inch:           "Inch",
	Foot:           "Foot",
	Yard:           "Yard",
	Chain:          "Chain",
	Mile:           "Mile",
	NauticalMile:   "NauticalMile",
	NauticalMileUK: "NauticalMileUK",

	MM2:     "MM2",
	CM2:     "CM2",
	M2:      "M2",
	Hectare: "Hectare",
	KM2:     "KM2",
	In2:     "In2",
	Ft2:     "Ft2",
	Yd2:     "Yd2",
	Acre:    "Acre",
	Mile2:   "Mile2",

	MM3:         "MM3",
	CM3:         "CM3",
	Litre:       "Litre",
	M3:          "M3",
	KM3:         "KM3",
	In3:         "In3",
	Ft3:         "Ft3",
	Yd3:         "Yd3",
	Mile3:       "Mile3",
	UKFlOz:      "UKFlOz",
	UKPint:      "UKPint",
	UKQuart:     "UKQuart",
	UKGallon:    "UKGallon",
	Bushel:      "Bushel",
	USDram:      "USDram",
	USFlOz:      "USFlOz",
	USFlPint:    "USFlPint",
	USFlQuart:   "USFlQuart",
	USGallon:    "USGallon",
	USFlBarrel:  "USFlBarrel",
	USDryPint:   "USDryPint",
	USDryQuart:  "USDryQuart",
	USDryBarrel: "USDryBarrel",

	Kelvin:     "Kelvin",
	Celsius:    "Celsius",
	Fahrenheit: "Fahrenheit",
	Rankine:    "Rankine",

	KPa:  "KPa",
	PSI:  "PSI",
	Bar:  "Bar",
	Atm:  "Atm",
	Torr: "Torr",

	Milligram: "Milligram",
	Gram:      "Gram",
	KG:        "KG",
	Tonne:     "Tonne",
	Ounce:     "Ounce",
	LB:        "LB",
	ShortTon:  "ShortTon",
	Ton:       "Ton",

	Joule:        "Joule",
	Electronvolt: "Electronvolt",
	Erg:          "Erg",
	FtLb:         "FtLb",
	Calorie:      "Calorie",
	KgMetre:      "KgMetre",
	BTU:          "BTU",
	Watt:         "Watt",
	Kilowatt:     "Kilowatt",
	Therm:        "Therm",
	Kilojoule:    "Kilojoule",

	Decimal:       "Decimal",
	Percent:       "Percent",
	DecimalInvert: "DecimalInvert",
	PercentInvert: "PercentInvert",

	CoordinateDegree:             "CoordinateDegree",
	CoordinateDegreeMinute:       "CoordinateDegreeMinute",
	CoordinateDegreeMinuteSecond: "CoordinateDegreeMinuteSecond",
	CoordinateUTM:                "CoordinateUTM",
	CoordinateRelativeDistance:   "CoordinateRelativeDistance",

	TonsPerAcre:  "TonsPerAcre",
	KgPerM2:      "KgPerM2",
	BtuFtS:       "BtuFtS",
	KilowattPerM: "KilowattPerM",
}

var timeNames = map[Code]string{
	Second:      "Second",
	Minute:      "Minute",
	Hour:        "Hour",
	Day:         "Day",
	Week:        "Week",
	Month:       "Month",
	Year:        "Year",
	Microsecond: "Microsecond",
	Millisecond: "Millisecond",
	Decade:      "Decade",
	Century:     "Century",
}

// String renders c the way it would be spelled with this package's constants:
// KM|Hour for a rate, Watt|Hour|TimeMult for an "in" quantity, Kilojoule/KG
// for a ratio, Angle|Compass|Degree for a bearing. Codes that are not built
// from known parts render as hex.
func (c Code) String() string {
	if c.IsComposite() {
		return c.Primary().String() + "/" + c.Secondary().String()
	}
	if s, ok := c.primaryName(); ok {
		return s
	}

	return fmt.Sprintf("0x%x", uint64(c))
}

func (c Code) primaryName() (string, bool) {
	if c.IsAngle() {
		parts := []string{"Angle"}
		if c.IsCompass() {
			parts = append(parts, "Compass")
		}
		switch c.AngleUnit() {
		case Radian:
		case Degree:
			parts = append(parts, "Degree")
		case Arcsecond:
			parts = append(parts, "Arcsecond")
		default:
			return "", false
		}

		return strings.Join(parts, "|"), true
	}

	var parts []string
	if base := c.WithoutTime(); base != 0 {
		name, ok := codeNames[base]
		if !ok {
			return "", false
		}
		parts = append(parts, name)
	}
	if c.HasTime() {
		name, ok := timeNames[c.TimeUnit()]
		if !ok {
			return "", false
		}
		parts = append(parts, name)
		if c.IsTimeMult() {
			parts = append(parts, "TimeMult")
		}
	}
	if len(parts) == 0 {
		return "", false
	}

	return strings.Join(parts, "|"), true
}
