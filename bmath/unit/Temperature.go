package unit

const (
	TemperatureFahrenheit byte = 50
	TemperatureCelsius    byte = 51
	TemperatureKelvin     byte = 52
	TemperatureRankin     byte = 53
)

//temperatures are kept in Fahrenheit, the scale of the atmospheric correction formulas
var temperatureKind = kind{name: "Temperature", conversions: map[byte]conversion{
	TemperatureFahrenheit: scaled("°F", 1, 1),
	TemperatureCelsius: {name: "°C", accuracy: 1,
		toDefault:   func(v float64) float64 { return v*9/5 + 32 },
		fromDefault: func(v float64) float64 { return (v - 32) * 5 / 9 }},
	TemperatureKelvin: {name: "°K", accuracy: 1,
		toDefault:   func(v float64) float64 { return (v-273.15)*9/5 + 32 },
		fromDefault: func(v float64) float64 { return (v-32)*5/9 + 273.15 }},
	TemperatureRankin: {name: "°R", accuracy: 1,
		toDefault:   func(v float64) float64 { return v - 459.67 },
		fromDefault: func(v float64) float64 { return v + 459.67 }},
}}

//Temperature keeps the air temperature
type Temperature struct {
	measure
}

//CreateTemperature creates a temperature value, units is one of the Temperature* constants.
func CreateTemperature(value float64, units byte) (Temperature, error) {
	m, err := temperatureKind.create(value, units)
	return Temperature{m}, err
}

func MustCreateTemperature(value float64, units byte) Temperature {
	t, err := CreateTemperature(value, units)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Temperature) Value(units byte) (float64, error) {
	return temperatureKind.value(t.measure, units)
}

func (t Temperature) In(units byte) float64 {
	return temperatureKind.in(t.measure, units)
}

func (t Temperature) Convert(units byte) Temperature {
	return Temperature{t.as(units)}
}

func (t Temperature) String() string {
	return temperatureKind.format(t.measure)
}
