package go_ingalls

import "github.com/gehtsoft-usa/go_ingalls/bmath/unit"

//ShotParameters struct keeps parameters of the shot to be calculated
type ShotParameters struct {
	muzzleAngle     unit.Angular
	hasMuzzleAngle  bool
	maximumDistance unit.Distance
	step            unit.Distance
	targetSpeed     unit.Velocity
}

//CreateShotParameters creates parameters of the shot.
//
//The muzzle angle is calculated from the zero distance of the weapon.
func CreateShotParameters(maxDistance unit.Distance, step unit.Distance) ShotParameters {
	return ShotParameters{
		maximumDistance: maxDistance,
		step:            step,
		targetSpeed:     unit.MustCreateVelocity(0, unit.VelocityMPH),
	}
}

//CreateShotParametersWithAngle creates parameters of the shot fired with the angle
//between the bore and the line of sight set explicitly
func CreateShotParametersWithAngle(muzzleAngle unit.Angular, maxDistance unit.Distance, step unit.Distance) ShotParameters {
	return ShotParameters{
		muzzleAngle:     muzzleAngle,
		hasMuzzleAngle:  true,
		maximumDistance: maxDistance,
		step:            step,
		targetSpeed:     unit.MustCreateVelocity(0, unit.VelocityMPH),
	}
}

//MuzzleAngle returns the angle between the bore and the line of sight
func (v ShotParameters) MuzzleAngle() unit.Angular {
	return v.muzzleAngle
}

//HasMuzzleAngle returns the flag indicating whether the muzzle angle is set
func (v ShotParameters) HasMuzzleAngle() bool {
	return v.hasMuzzleAngle
}

//MaximumDistance returns the maximum distance to be calculated
func (v ShotParameters) MaximumDistance() unit.Distance {
	return v.maximumDistance
}

//Step returns the step between calculation results
func (v ShotParameters) Step() unit.Distance {
	return v.step
}

//TargetSpeed returns the speed of the target moving across the line of fire
func (v ShotParameters) TargetSpeed() unit.Velocity {
	return v.targetSpeed
}

//SetTargetSpeed sets the speed of the target, the lead is calculated for this speed
func (v *ShotParameters) SetTargetSpeed(speed unit.Velocity) {
	v.targetSpeed = speed
}
