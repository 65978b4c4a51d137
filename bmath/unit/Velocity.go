package unit

//Velocity units
const (
	VelocityMPS byte = 60
	VelocityKMH byte = 61
	VelocityFPS byte = 62
	VelocityMPH byte = 63
	VelocityKT  byte = 64
)

//kept in meters per second, the factors are exact by definition of the units
var velocityKind = kind{name: "Velocity", conversions: map[byte]conversion{
	VelocityMPS: scaled("m/s", 0, 1),
	VelocityKMH: scaled("km/h", 1, 1000.0/3600),
	VelocityFPS: scaled("ft/s", 1, 0.3048),
	VelocityMPH: scaled("mph", 1, 0.44704),
	VelocityKT:  scaled("kt", 1, 1852.0/3600),
}}

//Velocity keeps a bullet velocity, a wind speed or a target speed
type Velocity struct {
	measure
}

//CreateVelocity creates a velocity value, units is one of the Velocity* constants.
func CreateVelocity(value float64, units byte) (Velocity, error) {
	m, err := velocityKind.create(value, units)
	return Velocity{m}, err
}

//MustCreateVelocity panics on unknown units
func MustCreateVelocity(value float64, units byte) Velocity {
	v, err := CreateVelocity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the velocity in the units requested or an error if the units are unknown
func (v Velocity) Value(units byte) (float64, error) {
	return velocityKind.value(v.measure, units)
}

//In returns the velocity in the units requested, 0 if the units are unknown
func (v Velocity) In(units byte) float64 {
	return velocityKind.in(v.measure, units)
}

func (v Velocity) Convert(units byte) Velocity {
	return Velocity{v.as(units)}
}

func (v Velocity) String() string {
	return velocityKind.format(v.measure)
}
