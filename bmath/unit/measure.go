//Package unit keeps measured values together with the units they were entered in.
//
//Every measurement is stored in one internal unit and converted on demand,
//so the value can be read in any unit of the same kind.
package unit

import "fmt"

type conversion struct {
	name        string
	accuracy    int
	toDefault   func(float64) float64
	fromDefault func(float64) float64
}

//scaled is a conversion where default = value * factor
func scaled(name string, accuracy int, factor float64) conversion {
	return conversion{
		name:        name,
		accuracy:    accuracy,
		toDefault:   func(v float64) float64 { return v * factor },
		fromDefault: func(v float64) float64 { return v / factor },
	}
}

//kind is a family of units convertible into each other
type kind struct {
	name        string
	conversions map[byte]conversion
}

//measure is the value in the internal unit of its kind and the units it is shown in
type measure struct {
	value        float64
	defaultUnits byte
}

func lookupError(kind string, units byte) error {
	return fmt.Errorf("%s: unit %d is not supported", kind, units)
}

func (k kind) conversion(units byte) (conversion, error) {
	c, ok := k.conversions[units]
	if !ok {
		return conversion{}, lookupError(k.name, units)
	}
	return c, nil
}

func (k kind) create(value float64, units byte) (measure, error) {
	c, err := k.conversion(units)
	if err != nil {
		return measure{}, err
	}
	return measure{value: c.toDefault(value), defaultUnits: units}, nil
}

func (k kind) value(m measure, units byte) (float64, error) {
	c, err := k.conversion(units)
	if err != nil {
		return 0, err
	}
	return c.fromDefault(m.value), nil
}

//in is value with an unsupported unit read as 0
func (k kind) in(m measure, units byte) float64 {
	x, err := k.value(m, units)
	if err != nil {
		return 0
	}
	return x
}

func (k kind) format(m measure) string {
	c, err := k.conversion(m.defaultUnits)
	if err != nil {
		return "!error: default units aren't correct"
	}
	return formatValue(c.fromDefault(m.value), c.accuracy, c.name)
}

func formatValue(value float64, accuracy int, name string) string {
	return fmt.Sprintf("%.*f%s", accuracy, value, name)
}

//Units return the units in which the value is measured
func (m measure) Units() byte {
	return m.defaultUnits
}

func (m measure) as(units byte) measure {
	return measure{value: m.value, defaultUnits: units}
}
