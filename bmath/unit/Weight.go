package unit

//Weight units
const (
	WeightGrain    byte = 70
	WeightOunce    byte = 71
	WeightGram     byte = 72
	WeightPound    byte = 73
	WeightKilogram byte = 74
	WeightNewton   byte = 75
)

//kept in grains
var weightKind = kind{name: "Weight", conversions: map[byte]conversion{
	WeightGrain:    scaled("gr", 0, 1),
	WeightOunce:    scaled("oz", 1, 437.5),
	WeightGram:     scaled("g", 1, 15.4323584),
	WeightPound:    scaled("lb", 3, 7000),
	WeightKilogram: scaled("kg", 3, 15432.3584),
	WeightNewton:   scaled("N", 3, 151339.73750336),
}}

//Weight keeps the weight of a projectile, a powder charge or a rifle
type Weight struct {
	measure
}

//CreateWeight creates a weight value, units is one of the Weight* constants.
func CreateWeight(value float64, units byte) (Weight, error) {
	m, err := weightKind.create(value, units)
	return Weight{m}, err
}

//MustCreateWeight panics on unknown units
func MustCreateWeight(value float64, units byte) Weight {
	w, err := CreateWeight(value, units)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Weight) Value(units byte) (float64, error) {
	return weightKind.value(w.measure, units)
}

//In returns the weight in the units requested, 0 if the units are unknown
func (w Weight) In(units byte) float64 {
	return weightKind.in(w.measure, units)
}

func (w Weight) Convert(units byte) Weight {
	return Weight{w.as(units)}
}

func (w Weight) String() string {
	return weightKind.format(w.measure)
}
