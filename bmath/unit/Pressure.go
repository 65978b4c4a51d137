package unit

const (
	PressureMmHg byte = 40
	PressureInHg byte = 41
	PressureBar  byte = 42
	PressureHP   byte = 43 //hectopascals
	PressurePSI  byte = 44
)

//kept in mmHg
var pressureKind = kind{name: "Pressure", conversions: map[byte]conversion{
	PressureMmHg: scaled("mmHg", 0, 1),
	PressureInHg: scaled("inHg", 2, 25.4),
	PressureBar:  scaled("bar", 2, 750.061683),
	PressureHP:   scaled("hPa", 4, 750.061683/1000),
	PressurePSI:  scaled("psi", 4, 51.714924102396),
}}

//Pressure keeps the barometric pressure
type Pressure struct {
	measure
}

func CreatePressure(value float64, units byte) (Pressure, error) {
	m, err := pressureKind.create(value, units)
	return Pressure{m}, err
}

func MustCreatePressure(value float64, units byte) Pressure {
	p, err := CreatePressure(value, units)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pressure) Value(units byte) (float64, error) {
	return pressureKind.value(p.measure, units)
}

func (p Pressure) In(units byte) float64 {
	return pressureKind.in(p.measure, units)
}

func (p Pressure) Convert(units byte) Pressure {
	return Pressure{p.as(units)}
}

func (p Pressure) String() string {
	return pressureKind.format(p.measure)
}
