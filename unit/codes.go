package unit

// Code is a packed 64-bit unit identifier. See the package documentation for
// the bit layout.
type Code uint64

// Calendar units. OR one of these with a dimension code to express a rate.
const (
	Second      Code = 0x00010000
	Minute      Code = 0x00020000
	Hour        Code = 0x00030000
	Day         Code = 0x00040000
	Week        Code = 0x00050000
	Month       Code = 0x00060000
	Year        Code = 0x00070000
	Microsecond Code = 0x00080000
	Millisecond Code = 0x00090000
	Decade      Code = 0x000a0000
	Century     Code = 0x000b0000

	// TimeDiv marks a "per" rate, as in km per hour. It is the default.
	TimeDiv Code = 0x00000000

	// TimeMult marks an "in" quantity, as in a watt-hour.
	TimeMult Code = TimeMultBit
)

// Distance, relative to the metre.
const (
	MM             Code = 0x00000001
	CM             Code = 0x00000002
	M              Code = 0x00000003
	KM             Code = 0x00000004
	Inch           Code = 0x00000005
	Foot           Code = 0x00000006
	Yard           Code = 0x00000007
	Chain          Code = 0x00000008
	Mile           Code = 0x00000009
	NauticalMile   Code = 0x0000000a
	NauticalMileUK Code = 0x0000000b
)

// Area, relative to the square metre.
const (
	MM2     Code = 0x00000100
	CM2     Code = 0x00000101
	M2      Code = 0x00000102
	Hectare Code = 0x00000103
	KM2     Code = 0x00000104
	In2     Code = 0x00000105
	Ft2     Code = 0x00000106
	Yd2     Code = 0x00000107
	Acre    Code = 0x00000108
	Mile2   Code = 0x00000109
)

// Volume, relative to the cubic metre.
const (
	MM3         Code = 0x00000200
	CM3         Code = 0x00000201
	Litre       Code = 0x00000202
	M3          Code = 0x00000203
	KM3         Code = 0x00000204
	In3         Code = 0x00000205
	Ft3         Code = 0x00000206
	Yd3         Code = 0x00000207
	Mile3       Code = 0x00000208
	UKFlOz      Code = 0x00000209
	UKPint      Code = 0x0000020a
	UKQuart     Code = 0x0000020b
	UKGallon    Code = 0x0000020c
	Bushel      Code = 0x0000020d
	USDram      Code = 0x0000020e
	USFlOz      Code = 0x0000020f
	USFlPint    Code = 0x00000210
	USFlQuart   Code = 0x00000211
	USGallon    Code = 0x00000212
	USFlBarrel  Code = 0x00000213
	USDryPint   Code = 0x00000214
	USDryQuart  Code = 0x00000215
	USDryBarrel Code = 0x00000216
)

// Temperature. Converted through an affine map into Kelvin.
const (
	Kelvin     Code = 0x00000400
	Celsius    Code = 0x00000401
	Fahrenheit Code = 0x00000402
	Rankine    Code = 0x00000403
)

// Pressure, relative to the kilopascal.
const (
	KPa  Code = 0x00000500
	PSI  Code = 0x00000501
	Bar  Code = 0x00000502
	Atm  Code = 0x00000503
	Torr Code = 0x00000504
)

// Mass, relative to the kilogram.
const (
	Milligram Code = 0x00000600
	Gram      Code = 0x00000601
	KG        Code = 0x00000602
	Tonne     Code = 0x00000603
	Ounce     Code = 0x00000604
	LB        Code = 0x00000605
	ShortTon  Code = 0x00000606
	Ton       Code = 0x00000607
)

// Energy, relative to the joule. Power units share the range; combine them
// with a TimeMult calendar unit to get energy (WattHour and friends).
const (
	Joule        Code = 0x00000700
	Electronvolt Code = 0x00000701
	Erg          Code = 0x00000702
	FtLb         Code = 0x00000703
	Calorie      Code = 0x00000704
	KgMetre      Code = 0x00000705
	BTU          Code = 0x00000706
	Watt         Code = 0x00000707
	Kilowatt     Code = 0x00000708
	Therm        Code = 0x00000709
	Kilojoule    Code = 0x0000070a

	WattSecond     = Watt | Second | TimeMult
	WattHour       = Watt | Hour | TimeMult
	KilowattSecond = Kilowatt | Second | TimeMult
	KilowattHour   = Kilowatt | Hour | TimeMult
)

// Percent family. Conversion between members is rule based.
const (
	Decimal Code = 0x000004c0
	Percent Code = 0x000004c1

	// DecimalInvert is used when a value is stored as 0.15 but shown as 85%.
	DecimalInvert Code = 0x000004c2
	PercentInvert Code = 0x000004c3
)

// Angles. Angle is the only base code; OR it with a rotation and a unit.
const (
	Angle     Code = 0x000004b0
	Radian    Code = 0x00000000
	Cartesian Code = 0x00000000
	Compass   Code = 0x01000000
	Degree    Code = 0x02000000
	Arcsecond Code = 0x04000000
)

// Coordinates are recognised but have no conversion rule.
const (
	CoordinateDegree             Code = 0x00000800
	CoordinateDegreeMinute       Code = 0x00000801
	CoordinateDegreeMinuteSecond Code = 0x00000802
	CoordinateUTM                Code = 0x00000803
	CoordinateRelativeDistance   Code = 0x00000804
)

// Fuel consumption, relative to kg/m².
const (
	TonsPerAcre Code = 0x00000900
	KgPerM2     Code = 0x00000901
)

// Fire intensity, relative to kW/m.
const (
	BtuFtS       Code = 0x00000910
	KilowattPerM Code = 0x00000911
)
