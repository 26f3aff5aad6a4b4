package codes

// unitSymbols covers every measurement-unit code the instrument firmware
// emits. Codes are grouped in blocks of sixteen per physical quantity
// (temperature, pressure, length, conductivity, ...).
var unitSymbols = map[uint16]string{
	// Temperature
	1: "°C",
	2: "°F",
	3: "°K",
	// Pressure
	17: "psi",
	18: "Pa",
	19: "kPa",
	20: "Bar",
	21: "mBar",
	22: "mmHg",
	23: "inHg",
	24: "cmH₂O",
	25: "inH₂O",
	26: "Torr",
	27: "atm",
	// Distance/length
	33: "mm",
	34: "cm",
	35: "m",
	36: "km",
	37: "in",
	38: "ft",
	// Coordinates
	49: "deg",
	50: "min",
	51: "sec",
	// Conductivity
	65: "µS/cm",
	66: "mS/cm",
	// Resistivity
	81: "Ω-cm",
	// Salinity
	97: "PSU",
	98: "ppt sal",
	// Concentration
	113: "ppm",
	114: "ppt",
	117: "mg/L",
	118: "µg/L",
	120: "g/L",
	121: "ppb",
	// Density
	129: "g/cm³",
	// pH
	145: "pH",
	// Voltage
	161: "µV",
	162: "mV",
	163: "V",
	// Dissolved oxygen saturation
	177: "DO % sat",
	// Turbidity
	193: "FNU",
	194: "NTU",
	195: "FTU",
	// Flow
	209: "ft³/s",
	212: "ft³/day",
	213: "gal/s",
	214: "gal/min",
	215: "gal/hr",
	216: "MGD",
	217: "m³/s",
	219: "m³/hr",
	221: "L/s",
	222: "ML/day",
	223: "mL/min",
	224: "kL/day",
	// Volume
	225: "ft³",
	226: "gal",
	227: "Mgal",
	228: "m³",
	229: "L",
	230: "acre-ft",
	231: "mL",
	232: "ML",
	233: "kL",
	234: "Acre-in",
	// Percentage
	241: "%",
	// Fluorescence
	257: "RFU",
	// Low flow
	273: "mL/sec",
	274: "mL/hr",
	275: "L/min",
	276: "L/hr",
	// Current
	289: "µA",
	290: "mA",
	291: "A",
	// Velocity
	305: "ft/s",
	306: "m/s",
}

// UnitSymbol returns the display symbol for a unit code.
func UnitSymbol(code uint16) (string, bool) {
	symbol, ok := unitSymbols[code]
	return symbol, ok
}
