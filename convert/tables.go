package convert

import "github.com/arloliu/unitcode/unit"

// Scale tables hold "canonical base units per 1 of this unit", indexed by the
// unit's ordinal within its dimension. The literals are part of the persisted
// format and must not be re-derived.
var (
	// metre
	distanceScale = [...]float64{1e-3, 1e-2, 1.0, 1e3, 2.54e-2, 3.048e-1, 0.9144, 2.01168e1, 1.609344e3, 1.852e3, 1.853184e3}
	// square metre
	areaScale = [...]float64{1e-6, 1e-4, 1.0, 1e4, 1e6, 6.4516e-4, 9.290304e-2, 8.3612736e-1, 4.0468564224e3, 2.58998811e6}
	// cubic metre
	volumeScale = [...]float64{
		0.000000001, 0.000001, 0.001, 1.0, 1000000000.0, 1.6387064e-5, 2.8316846e-2, 7.64554858e-1,
		4.168181825e9, 2.84131e-5, 5.68261e-4, 1.13652e-3, 4.54609e-3, 3.63687e-2, 3.69669e-6,
		2.95735e-5, 4.73176e-4, 9.46353e-4, 3.785411784e-3, 1.58987e-1, 5.50610e-4, 1.10122e-3, 1.10122e-3,
	}
	// kilogram
	massScale = [...]float64{1e-6, 1e-3, 1.0, 1e3, 2.83495e-2, 0.45359237, 9.07185e2, 1.016047e3}
	// joule; watt and kilowatt are per-second rates of the same table
	energyScale = [...]float64{1.0, 1.6021892e-19, 1e-7, 1.35582, 4.1868, 9.80665, 1.05506e3, 3.6e3 / 3600.0, 3.6e6 / 3600.0, 1.05506e8, 1000.0}
	// kilopascal
	pressureScale = [...]float64{1.0, 6.895, 100, 101.325, 0.133322}
	// kW/m
	intensityScale = [...]float64{3.461, 1.0}
	// kg/m²
	consumptionScale = [...]float64{0.2242, 1.0}
)

// Temperature tables, indexed by ordinal: Kelvin, Celsius, Fahrenheit, Rankine.
// offset is added before dividing by scale to land in Kelvin.
var (
	temperatureOffset = [...]float64{0.0, 273.15, 459.67, 0.0}
	temperatureScale  = [...]float64{1.0, 1.0, 9.0 / 5.0, 9.0 / 5.0}
)

// ratioTables maps each ratio dimension to its scale table.
var ratioTables = map[unit.Dimension][]float64{
	unit.DimDistance:        distanceScale[:],
	unit.DimArea:            areaScale[:],
	unit.DimVolume:          volumeScale[:],
	unit.DimMass:            massScale[:],
	unit.DimEnergy:          energyScale[:],
	unit.DimPressure:        pressureScale[:],
	unit.DimIntensity:       intensityScale[:],
	unit.DimFuelConsumption: consumptionScale[:],
}

// Scale returns the base-unit scale factor of a ratio-dimension code. The
// second result is false for codes outside every ratio table, including range
// slots that have no table entry.
func Scale(c unit.Code) (float64, bool) {
	table, ok := ratioTables[c.Dimension()]
	if !ok {
		return 0, false
	}

	return lookup(table, c)
}

func lookup(table []float64, c unit.Code) (float64, bool) {
	i, ok := c.Ordinal()
	if !ok || i >= len(table) {
		return 0, false
	}

	return table[i], true
}
