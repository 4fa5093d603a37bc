// Package unitsystem picks the unit code a measurement system prefers for a
// given kind of quantity.
//
// It only selects codes; converting into the selected code is done with
// package convert:
//
//	to := unitsystem.Preferred(unitsystem.Speed, unitsystem.Imperial)
//	mph := convert.Convert(v, unit.KM|unit.Hour, to)
package unitsystem

import (
	"fmt"
	"strings"

	"github.com/arloliu/unitcode/errs"
)

// System identifies a measurement system.
type System uint8

const (
	Metric   System = 0x1 // Metric represents SI-based units.
	Imperial System = 0x2 // Imperial represents imperial and US customary units.
)

func (s System) String() string {
	switch s {
	case Metric:
		return "Metric"
	case Imperial:
		return "Imperial"
	default:
		return "Unknown"
	}
}

// ParseSystem parses a system name, ignoring case.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "metric", "si":
		return Metric, nil
	case "imperial", "us":
		return Imperial, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownSystem, name)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so a System can be read
// straight from configuration.
func (s *System) UnmarshalText(text []byte) error {
	v, err := ParseSystem(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}
