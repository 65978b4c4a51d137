package unit

import (
	"math"

	angle "github.com/soniakeys/unit"
)

//Angular units
const (
	AngularRadian         byte = 0
	AngularDegree         byte = 1
	AngularMOA            byte = 2
	AngularMil            byte = 3 //1/6400 of circle
	AngularMRad           byte = 4
	AngularThousand       byte = 5 //1/6000 of circle
	AngularInchesPer100Yd byte = 6
	AngularCmPer100M      byte = 7
)

var angularConversions = map[byte]struct {
	name     string
	accuracy int
	to       func(float64) angle.Angle
	from     func(angle.Angle) float64
}{
	AngularRadian: {"rad", 6,
		func(v float64) angle.Angle { return angle.Angle(v) },
		func(a angle.Angle) float64 { return a.Rad() }},
	AngularDegree: {"°", 4, angle.AngleFromDeg,
		func(a angle.Angle) float64 { return a.Deg() }},
	AngularMOA: {"moa", 2, angle.AngleFromMin,
		func(a angle.Angle) float64 { return a.Min() }},
	AngularMil: {"mil", 2,
		func(v float64) angle.Angle { return angle.Angle(v / 3200 * math.Pi) },
		func(a angle.Angle) float64 { return a.Rad() * 3200 / math.Pi }},
	AngularMRad: {"mrad", 2,
		func(v float64) angle.Angle { return angle.Angle(v / 1000) },
		func(a angle.Angle) float64 { return a.Rad() * 1000 }},
	AngularThousand: {"ths", 2,
		func(v float64) angle.Angle { return angle.Angle(v / 3000 * math.Pi) },
		func(a angle.Angle) float64 { return a.Rad() * 3000 / math.Pi }},
	AngularInchesPer100Yd: {"in/100yd", 2,
		func(v float64) angle.Angle { return angle.Angle(math.Atan(v / 3600)) },
		func(a angle.Angle) float64 { return a.Tan() * 3600 }},
	AngularCmPer100M: {"cm/100m", 2,
		func(v float64) angle.Angle { return angle.Angle(math.Atan(v / 10000)) },
		func(a angle.Angle) float64 { return a.Tan() * 10000 }},
}

//Angular keeps an angle
type Angular struct {
	value        angle.Angle
	defaultUnits byte
}

//CreateAngular creates an angular value.
//
//units may be any value from unit.Angular* constants.
func CreateAngular(value float64, units byte) (Angular, error) {
	c, ok := angularConversions[units]
	if !ok {
		return Angular{}, lookupError("Angular", units)
	}
	return Angular{value: c.to(value), defaultUnits: units}, nil
}

//MustCreateAngular creates the angular value but panics instead of returning an error
func MustCreateAngular(value float64, units byte) Angular {
	v, err := CreateAngular(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Angular) Value(units byte) (float64, error) {
	c, ok := angularConversions[units]
	if !ok {
		return 0, lookupError("Angular", units)
	}
	return c.from(v.value), nil
}

//In returns the angle in the units requested, 0 if the units are unknown
func (v Angular) In(units byte) float64 {
	x, err := v.Value(units)
	if err != nil {
		return 0
	}
	return x
}

//Convert returns the same angle expressed in other units by default
func (v Angular) Convert(units byte) Angular {
	return Angular{value: v.value, defaultUnits: units}
}

//Units return the units in which the value is measured
func (v Angular) Units() byte {
	return v.defaultUnits
}

//Angle returns the angle as radians
func (v Angular) Angle() angle.Angle {
	return v.value
}

//Tan returns the tangent of the angle
func (v Angular) Tan() float64 {
	return v.value.Tan()
}

//Sin returns the sine of the angle
func (v Angular) Sin() float64 {
	return v.value.Sin()
}

//Cos returns the cosine of the angle
func (v Angular) Cos() float64 {
	return v.value.Cos()
}

func (v Angular) String() string {
	c, ok := angularConversions[v.defaultUnits]
	if !ok {
		return "!error: default units aren't correct"
	}
	return formatValue(c.from(v.value), c.accuracy, c.name)
}
