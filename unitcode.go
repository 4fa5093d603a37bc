// Package unitcode converts measurements between physical units identified by
// packed 64-bit unit codes, and stores batches of measurements together with
// their unit code in a compact binary record.
//
// A unit code is a plain uint64 (see package unit). Its low half names a
// dimension and a unit inside it, optionally combined with a time sub-code
// ("per hour", "in hours") or angle bits (degree, arcsecond, compass bearing).
// Its high half, when set, names the denominator of a ratio quantity such as
// kilojoule per kilogram. Because codes are numbers they can be persisted,
// compared and combined with bit operations, without any string parsing.
//
// # Core Features
//
//   - Ratio conversion for distance, area, volume, mass, pressure, energy,
//     fuel consumption and fire intensity
//   - Affine temperature conversion through Kelvin
//   - Percent, decimal and their inverted forms
//   - Cartesian and compass angles in radians, degrees or arcseconds
//   - Time rates ("per minute") and time multiples ("watt hours")
//   - Composite ratio codes, converted numerator and denominator separately
//   - Preferred units per quantity for metric and imperial systems
//   - Binary records with Raw or Gorilla value encoding and optional
//     Zstd, S2 or LZ4 compression
//
// # Basic Usage
//
// Converting a single value:
//
//	km := unitcode.Convert(26.2, unit.Mile, unit.KM)
//
//	// speed: metres per minute into kilometres per hour
//	kmh := unitcode.Convert(500, unit.M|unit.Minute, unit.KM|unit.Hour)
//
// Storing a batch of readings:
//
//	data, err := unitcode.Encode(unit.Celsius, readings,
//	    record.WithQuantity("engine.coolant"),
//	)
//
//	decoder, err := unitcode.NewDecoder(data)
//	fahrenheit := decoder.ValuesIn(unit.Fahrenheit)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the convert,
// unitsystem and record packages. For fine-grained control use those
// packages directly.
package unitcode

import (
	"github.com/arloliu/unitcode/convert"
	"github.com/arloliu/unitcode/format"
	"github.com/arloliu/unitcode/internal/hash"
	"github.com/arloliu/unitcode/record"
	"github.com/arloliu/unitcode/unit"
	"github.com/arloliu/unitcode/unitsystem"
)

var defaultRecordOptions = []record.EncoderOption{
	record.WithLittleEndian(),
	record.WithEncoding(format.TypeGorilla),
	record.WithCompression(format.CompressionZstd),
}

// Convert converts value from unit code from into unit code to.
//
// Codes that do not belong to a known dimension, or pairs that cannot be
// converted into each other, return value unchanged.
func Convert(value float64, from, to unit.Code) float64 {
	return convert.Convert(value, from, to)
}

// ConvertSlice converts every value of src into dst, growing dst when needed,
// and returns it. dst and src may be the same slice.
func ConvertSlice(dst, src []float64, from, to unit.Code) []float64 {
	return convert.Slice(dst, src, from, to)
}

// Preferred returns the unit code a quantity is usually displayed in for
// system. Any system other than unitsystem.Imperial selects metric units.
func Preferred(q unitsystem.Quantity, system unitsystem.System) unit.Code {
	return unitsystem.Preferred(q, system)
}

// QuantityID returns the identifier stored in a record header for a quantity
// name, as set by record.WithQuantity.
func QuantityID(name string) uint64 {
	return hash.ID(name)
}

// NewEncoder creates a record encoder for values in unit u with custom options.
//
// Available options:
//   - record.WithLittleEndian() / record.WithBigEndian()
//   - record.WithEncoding(format.TypeRaw|TypeGorilla)
//   - record.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - record.WithQuantity(name)
//   - record.WithSourceUnit(code)
func NewEncoder(u unit.Code, opts ...record.EncoderOption) (*record.Encoder, error) {
	return record.NewEncoder(u, opts...)
}

// NewDefaultEncoder creates a record encoder with recommended settings:
// little-endian, Gorilla value encoding and Zstd compression.
//
// Options given here are applied after the defaults and override them.
func NewDefaultEncoder(u unit.Code, opts ...record.EncoderOption) (*record.Encoder, error) {
	allOpts := append(append([]record.EncoderOption{}, defaultRecordOptions...), opts...)
	return record.NewEncoder(u, allOpts...)
}

// Encode writes values in unit u into a record using the default settings
// overridden by opts.
//
// Returns:
//   - []byte: The encoded record
//   - error: ErrInvalidUnit, ErrNoValuesAdded or an option error
func Encode(u unit.Code, values []float64, opts ...record.EncoderOption) ([]byte, error) {
	encoder, err := NewDefaultEncoder(u, opts...)
	if err != nil {
		return nil, err
	}

	if err := encoder.AddSlice(values); err != nil {
		return nil, err
	}

	return encoder.Finish()
}

// NewDecoder verifies and decodes a record produced by an Encoder.
func NewDecoder(data []byte, opts ...record.DecoderOption) (*record.Decoder, error) {
	return record.NewDecoder(data, opts...)
}
