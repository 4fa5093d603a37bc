package unitsystem

import (
	"fmt"
	"strings"

	"github.com/arloliu/unitcode/errs"
	"github.com/arloliu/unitcode/unit"
)

// Quantity names a kind of measurement that has a preferred unit in each
// system.
type Quantity uint8

const (
	Temperature Quantity = iota + 1
	Speed
	FuelConsumption
	Intensity
	SpreadRate
	Area
	DistanceSmall
	DistanceSmall2
	DistanceMedium
	DistanceMedium2
	DistanceLarge
)

type preference struct {
	name     string
	metric   unit.Code
	imperial unit.Code
}

var preferences = [...]preference{
	Temperature:     {"Temperature", unit.Celsius, unit.Fahrenheit},
	Speed:           {"Speed", unit.KM | unit.Hour, unit.Mile | unit.Hour},
	FuelConsumption: {"FuelConsumption", unit.KgPerM2, unit.TonsPerAcre},
	Intensity:       {"Intensity", unit.KilowattPerM, unit.BtuFtS},
	SpreadRate:      {"SpreadRate", unit.M | unit.Minute, unit.Chain | unit.Hour},
	Area:            {"Area", unit.Hectare, unit.Acre},
	DistanceSmall:   {"DistanceSmall", unit.MM, unit.Inch},
	DistanceSmall2:  {"DistanceSmall2", unit.CM, unit.Inch},
	DistanceMedium:  {"DistanceMedium", unit.M, unit.Foot},
	DistanceMedium2: {"DistanceMedium2", unit.M, unit.Chain},
	DistanceLarge:   {"DistanceLarge", unit.KM, unit.Mile},
}

// Quantities returns every defined quantity in declaration order.
func Quantities() []Quantity {
	qs := make([]Quantity, 0, len(preferences)-1)
	for q := Temperature; q <= DistanceLarge; q++ {
		qs = append(qs, q)
	}

	return qs
}

func (q Quantity) valid() bool {
	return q >= Temperature && q <= DistanceLarge
}

func (q Quantity) String() string {
	if !q.valid() {
		return "Unknown"
	}

	return preferences[q].name
}

// ParseQuantity parses a quantity name, ignoring case. Dashes and
// underscores are ignored, so "spread-rate" and "SpreadRate" are equal.
func ParseQuantity(name string) (Quantity, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	for q := Temperature; q <= DistanceLarge; q++ {
		if strings.ToLower(preferences[q].name) == key {
			return q, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownQuantity, name)
}

// Preferred returns the unit code s prefers for q. Any system other than
// Imperial selects the metric unit. Unknown quantities return 0.
func Preferred(q Quantity, s System) unit.Code {
	if !q.valid() {
		return 0
	}
	if s == Imperial {
		return preferences[q].imperial
	}

	return preferences[q].metric
}

// TemperatureUnit returns Celsius or Fahrenheit.
func TemperatureUnit(s System) unit.Code { return Preferred(Temperature, s) }

// SpeedUnit returns KM per hour or Mile per hour.
func SpeedUnit(s System) unit.Code { return Preferred(Speed, s) }

// FuelConsumptionUnit returns KgPerM2 or TonsPerAcre.
func FuelConsumptionUnit(s System) unit.Code { return Preferred(FuelConsumption, s) }

// IntensityUnit returns KilowattPerM or BtuFtS.
func IntensityUnit(s System) unit.Code { return Preferred(Intensity, s) }

// SpreadRateUnit returns M per minute or Chain per hour.
func SpreadRateUnit(s System) unit.Code { return Preferred(SpreadRate, s) }

// AreaUnit returns Hectare or Acre.
func AreaUnit(s System) unit.Code { return Preferred(Area, s) }

// DistanceSmallUnit returns MM or Inch.
func DistanceSmallUnit(s System) unit.Code { return Preferred(DistanceSmall, s) }

// DistanceSmall2Unit returns CM or Inch.
func DistanceSmall2Unit(s System) unit.Code { return Preferred(DistanceSmall2, s) }

// DistanceMediumUnit returns M or Foot.
func DistanceMediumUnit(s System) unit.Code { return Preferred(DistanceMedium, s) }

// DistanceMedium2Unit returns M or Chain.
func DistanceMedium2Unit(s System) unit.Code { return Preferred(DistanceMedium2, s) }

// DistanceLargeUnit returns KM or Mile.
func DistanceLargeUnit(s System) unit.Code { return Preferred(DistanceLarge, s) }
