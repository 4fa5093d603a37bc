// Package unit defines the 64-bit unit code format used throughout unitcode.
//
// A unit is not an enumerated type but a packed integer, so codes can be stored,
// compared and combined structurally without any string handling. The layout is
// a historical wire format: persisted values depend on the literal integers, so
// every range and mask constant in this package is fixed.
//
// # Code Layout
//
// A Code is split into two 32-bit halves:
//
//	 63                            32 31                             0
//	┌────────────────────────────────┬────────────────────────────────┐
//	│ Secondary (denominator code)   │ Primary                        │
//	└────────────────────────────────┴────────────────────────────────┘
//
// The primary half carries the dimension ordinal in its low bits. Each dimension
// owns a disjoint, contiguous sub-range, and a unit's ordinal within its
// dimension is code − rangeStart:
//
//	Dimension        | Range
//	-----------------|-----------------------
//	Distance         | 0x00000001 - 0x0000000b
//	Area             | 0x00000100 - 0x00000109
//	Volume           | 0x00000200 - 0x00000216
//	Temperature      | 0x00000400 - 0x00000404
//	Angle            | 0x000004b0 (+ angle bits)
//	Percent          | 0x000004c0 - 0x000004c3
//	Pressure         | 0x00000500 - 0x00000504
//	Mass             | 0x00000600 - 0x00000607
//	Energy           | 0x00000700 - 0x0000070a
//	Coordinate       | 0x00000800 - 0x00000804
//	FuelConsumption  | 0x00000900 - 0x00000909
//	Intensity        | 0x00000910 - 0x00000919
//	Time             | 0x00010000 - 0x001f0000
//
// Bits 16-20 of the primary half hold an optional time-rate sub-code:
//
//	Bits 16-19: calendar unit (Second=0x1 ... Century=0xb)
//	Bit  20:    0 = "per" the calendar unit (TimeDiv), 1 = "in" it (TimeMult)
//
// so KM|Hour is kilometres per hour and Watt|Hour|TimeMult is a watt-hour.
//
// Angles use bits 24-27 on top of the Angle base code:
//
//	Bit  24:    rotation (0 = cartesian, 1 = compass)
//	Bits 25-27: unit (0 = radian, Degree, Arcsecond)
//
// The secondary half, when nonzero, is itself a full primary code and names the
// denominator of a ratio quantity. Use Code.Per to build one:
//
//	energyPerMass := unit.Kilojoule.Per(unit.KG) // kJ/kg
//
// Composite codes are never nested.
//
// # Thread Safety
//
// Codes are plain integers; every function in this package is pure.
package unit
