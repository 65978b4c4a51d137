package unit

//Distance units
const (
	DistanceInch         byte = 10
	DistanceFoot         byte = 11
	DistanceYard         byte = 12
	DistanceMile         byte = 13
	DistanceNauticalMile byte = 14
	DistanceMillimeter   byte = 15
	DistanceCentimeter   byte = 16
	DistanceMeter        byte = 17
	DistanceKilometer    byte = 18
	DistanceLine         byte = 19 //1/10 of inch
)

//kept in inches
var distanceKind = kind{name: "Distance", conversions: map[byte]conversion{
	DistanceInch:         scaled("in", 1, 1),
	DistanceFoot:         scaled("ft", 2, 12),
	DistanceYard:         scaled("yd", 1, 36),
	DistanceMile:         scaled("mi", 3, 63360),
	DistanceNauticalMile: scaled("nm", 3, 72913.3858),
	DistanceMillimeter:   scaled("mm", 0, 1/25.4),
	DistanceCentimeter:   scaled("cm", 1, 1/2.54),
	DistanceMeter:        scaled("m", 2, 1000/25.4),
	DistanceKilometer:    scaled("km", 3, 1000000/25.4),
	DistanceLine:         scaled("ln", 1, 0.1),
}}

//Distance keeps a length: a range, a drop, a sight height
type Distance struct {
	measure
}

//CreateDistance creates a distance value, units is one of the Distance* constants.
func CreateDistance(value float64, units byte) (Distance, error) {
	m, err := distanceKind.create(value, units)
	return Distance{m}, err
}

func MustCreateDistance(value float64, units byte) Distance {
	d, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return d
}

//Value returns the distance in the units requested or an error if the units are unknown
func (d Distance) Value(units byte) (float64, error) {
	return distanceKind.value(d.measure, units)
}

//In returns the distance in the units requested, 0 if the units are unknown
func (d Distance) In(units byte) float64 {
	return distanceKind.in(d.measure, units)
}

//Convert returns the same distance shown in other units
func (d Distance) Convert(units byte) Distance {
	return Distance{d.as(units)}
}

func (d Distance) String() string {
	return distanceKind.format(d.measure)
}
