// Package codes maps the instrument's numeric parameter and unit codes
// to their display labels. Both lookups are pure and total: unknown codes
// report ok = false.
package codes

// parameterNames covers every parameter code the instrument firmware
// emits in structured reports.
var parameterNames = map[uint8]string{
	1:  "Temperature",
	2:  "Pressure",
	3:  "Depth",
	4:  "Depth to Water",
	5:  "Surface Elevation",
	9:  "Actual Conductivity",
	10: "Specific Conductivity",
	11: "Resistivity",
	12: "Salinity",
	13: "TDS",
	14: "Density of Water",
	16: "Barometric Pressure",
	17: "pH",
	18: "pH(mV)",
	19: "ORP",
	20: "DO",
	21: "DO % Saturation",
	24: "Cl⁻",
	25: "Turbidity",
	30: "pO₂",
	31: "TSS",
	32: "External Voltage",
	33: "Battery Capacity",
	34: "Rhodamine WT",
	35: "Rhodamine WT Fluorescence Intensity",
	36: "Cl⁻ mV",
	37: "NO₃⁻-N",
	38: "NO₃⁻ mV",
	39: "NH₄⁺-N",
	40: "NH₄ mV",
	41: "NH₃-N",
	42: "Total NH₃-N",
	48: "Eh",
	49: "Velocity",
	50: "Chlorophyll-a",
	51: "Chlorophyll-a Fluorescence Intensity",
	54: "PC",
	55: "PC Fluorescence Intensity",
	58: "PE",
	59: "PE Fluorescence Intensity",
	67: "Fluorescein WT",
	68: "Fluorescein WT Fluorescence Intensity",
	69: "FDOM",
	70: "FDOM Fluorescence Intensity",
	80: "Crude Oil",
	81: "Crude Oil Fluorescence Intensity",
	87: "CDOM",
}

// ParameterName returns the display name for a parameter code.
func ParameterName(code uint8) (string, bool) {
	name, ok := parameterNames[code]
	return name, ok
}
