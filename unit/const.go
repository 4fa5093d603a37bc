package unit

// Half-word masks.
const (
	PrimaryMask    = 0x00000000ffffffff // Mask for the primary 32-bit half
	SecondaryMask  = 0xffffffff00000000 // Mask for the secondary (denominator) half
	SecondaryShift = 32                 // Bit offset of the secondary half
)

// Time-rate sub-field (bits 16-20 of the primary half).
const (
	TimeUnitMask = 0x000f0000 // Mask for the calendar unit selector (bits 16-19)
	TimeMask     = 0x001f0000 // Mask for the whole time sub-field (bits 16-20)
	TimeMultBit  = 0x00100000 // Set when the quantity is "in" the calendar unit
)

// Angle sub-field (bits 24-27 of the primary half).
const (
	AngleRotationMask = 0x01000000 // Mask for the rotation system bit
	AngleUnitMask     = 0x0e000000 // Mask for the angle unit field
	AngleMask         = 0x0f000000 // Mask for all angle bits
)

// Dimension ranges, inclusive on both ends.
const (
	TimeStart            = 0x00010000
	TimeEnd              = 0x001f0000
	DistanceStart        = 0x00000001
	DistanceEnd          = 0x0000000b
	AreaStart            = 0x00000100
	AreaEnd              = 0x00000109
	VolumeStart          = 0x00000200
	VolumeEnd            = 0x00000216
	TemperatureStart     = 0x00000400
	TemperatureEnd       = 0x00000404
	PressureStart        = 0x00000500
	PressureEnd          = 0x00000504
	MassStart            = 0x00000600
	MassEnd              = 0x00000607
	EnergyStart          = 0x00000700
	EnergyEnd            = 0x0000070a
	PercentStart         = 0x000004c0
	PercentEnd           = 0x000004c3
	CoordinateStart      = 0x00000800
	CoordinateEnd        = 0x00000804
	FuelConsumptionStart = 0x00000900
	FuelConsumptionEnd   = 0x00000909
	IntensityStart       = 0x00000910
	IntensityEnd         = 0x00000919
)
