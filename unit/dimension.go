package unit

// Dimension is a mutually exclusive category of units.
type Dimension uint8

const (
	DimUnknown Dimension = iota
	DimDistance
	DimArea
	DimVolume
	DimTemperature
	DimPercent
	DimAngle
	DimPressure
	DimMass
	DimEnergy
	DimCoordinate
	DimFuelConsumption
	DimIntensity
	DimTime
)

func (d Dimension) String() string {
	switch d {
	case DimDistance:
		return "Distance"
	case DimArea:
		return "Area"
	case DimVolume:
		return "Volume"
	case DimTemperature:
		return "Temperature"
	case DimPercent:
		return "Percent"
	case DimAngle:
		return "Angle"
	case DimPressure:
		return "Pressure"
	case DimMass:
		return "Mass"
	case DimEnergy:
		return "Energy"
	case DimCoordinate:
		return "Coordinate"
	case DimFuelConsumption:
		return "FuelConsumption"
	case DimIntensity:
		return "Intensity"
	case DimTime:
		return "Time"
	default:
		return "Unknown"
	}
}

type codeRange struct {
	start Code
	end   Code
	dim   Dimension
}

var ranges = [...]codeRange{
	{DistanceStart, DistanceEnd, DimDistance},
	{AreaStart, AreaEnd, DimArea},
	{VolumeStart, VolumeEnd, DimVolume},
	{TemperatureStart, TemperatureEnd, DimTemperature},
	{PercentStart, PercentEnd, DimPercent},
	{PressureStart, PressureEnd, DimPressure},
	{MassStart, MassEnd, DimMass},
	{EnergyStart, EnergyEnd, DimEnergy},
	{CoordinateStart, CoordinateEnd, DimCoordinate},
	{FuelConsumptionStart, FuelConsumptionEnd, DimFuelConsumption},
	{IntensityStart, IntensityEnd, DimIntensity},
}

// rangeOf finds the range containing c. Ranges never overlap.
func rangeOf(c Code) (codeRange, bool) {
	for _, r := range ranges {
		if c >= r.start && c <= r.end {
			return r, true
		}
	}

	return codeRange{}, false
}

// DimensionOf resolves the dimension of the primary half of c.
func DimensionOf(c Code) Dimension {
	if c.IsPureTime() {
		return DimTime
	}
	if c.IsAngle() {
		return DimAngle
	}
	if r, ok := rangeOf(c.WithoutTime()); ok {
		return r.dim
	}

	return DimUnknown
}

// Range returns the inclusive code range owned by d. DimAngle and DimUnknown
// have no range.
func (d Dimension) Range() (start, end Code, ok bool) {
	if d == DimTime {
		return TimeStart, TimeEnd, true
	}
	for _, r := range ranges {
		if r.dim == d {
			return r.start, r.end, true
		}
	}

	return 0, 0, false
}
