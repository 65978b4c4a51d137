package go_ingalls

import "github.com/gehtsoft-usa/go_ingalls/bmath/unit"

//Weapon keeps the rifle and its scope
type Weapon struct {
	sightHeight  unit.Distance
	zeroDistance unit.Distance
	clicksPerMOA float64
	weight       unit.Weight
	hasWeight    bool
}

//CreateWeapon creates a weapon zeroed at the distance specified.
//
//The scope has 4 clicks per minute of angle by default.
func CreateWeapon(sightHeight unit.Distance, zeroDistance unit.Distance) Weapon {
	return Weapon{sightHeight: sightHeight, zeroDistance: zeroDistance, clicksPerMOA: 4}
}

//CreateWeaponWithWeight creates a weapon with the rifle weight known, the weight
//is required to calculate the recoil
func CreateWeaponWithWeight(sightHeight unit.Distance, zeroDistance unit.Distance, weight unit.Weight) Weapon {
	return Weapon{sightHeight: sightHeight, zeroDistance: zeroDistance, clicksPerMOA: 4, weight: weight, hasWeight: true}
}

//SightHeight returns the height of the scope centerline over the bore centerline
func (v Weapon) SightHeight() unit.Distance {
	return v.sightHeight
}

//ZeroDistance returns the distance at which the weapon was zeroed
func (v Weapon) ZeroDistance() unit.Distance {
	return v.zeroDistance
}

func (v Weapon) ClicksPerMOA() float64 {
	return v.clicksPerMOA
}

//SetClicksPerMOA sets the number of the scope elevation clicks per one minute of angle
func (v *Weapon) SetClicksPerMOA(clicks float64) {
	v.clicksPerMOA = clicks
}

func (v Weapon) HasWeight() bool {
	return v.hasWeight
}

func (v Weapon) Weight() unit.Weight {
	return v.weight
}
