package unit

const (
	EnergyFootPound byte = 30
	EnergyJoule     byte = 31
)

var energyKind = kind{name: "Energy", conversions: map[byte]conversion{
	EnergyFootPound: scaled("ft·lb", 0, 1),
	EnergyJoule:     scaled("J", 0, 0.737562149277),
}}

//Energy keeps the kinetic energy of a projectile or a recoiling rifle
type Energy struct {
	measure
}

func CreateEnergy(value float64, units byte) (Energy, error) {
	m, err := energyKind.create(value, units)
	return Energy{m}, err
}

func MustCreateEnergy(value float64, units byte) Energy {
	e, err := CreateEnergy(value, units)
	if err != nil {
		panic(err)
	}
	return e
}

func (e Energy) Value(units byte) (float64, error) {
	return energyKind.value(e.measure, units)
}

func (e Energy) In(units byte) float64 {
	return energyKind.in(e.measure, units)
}

func (e Energy) Convert(units byte) Energy {
	return Energy{e.as(units)}
}

func (e Energy) String() string {
	return energyKind.format(e.measure)
}
