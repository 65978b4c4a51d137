package go_ingalls

import "github.com/gehtsoft-usa/go_ingalls/bmath/unit"

//WindInfo keeps the wind velocity and direction.
//
//The direction is the angle between the line of fire and the wind:
//0 is a head wind, 90 (or -90) is a full value cross wind.
type WindInfo struct {
	velocity  unit.Velocity
	direction unit.Angular
}

func (v WindInfo) Velocity() unit.Velocity {
	return v.velocity
}

func (v WindInfo) Direction() unit.Angular {
	return v.direction
}

//CrossComponent returns the part of the wind velocity blowing across the line of fire
func (v WindInfo) CrossComponent() unit.Velocity {
	return unit.MustCreateVelocity(v.velocity.In(unit.VelocityMPH)*v.direction.Sin(), unit.VelocityMPH)
}

func CreateNoWind() WindInfo {
	return CreateWindInfo(unit.MustCreateVelocity(0, unit.VelocityMPH), unit.MustCreateAngular(0, unit.AngularDegree))
}

func CreateWindInfo(windVelocity unit.Velocity, direction unit.Angular) WindInfo {
	return WindInfo{
		velocity:  windVelocity,
		direction: direction,
	}
}
