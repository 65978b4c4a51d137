package go_ingalls

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_ingalls/bmath/unit"
)

//Timespan keeps the amount of time spent
type Timespan struct {
	seconds float64
}

//TotalSeconds returns the total number of seconds
func (t Timespan) TotalSeconds() float64 {
	return t.seconds
}

//Seconds return the whole number of the seconds
func (t Timespan) Seconds() float64 {
	return math.Mod(math.Floor(t.seconds), 60)
}

//Minutes return the whole number of minutes
func (t Timespan) Minutes() float64 {
	return math.Mod(math.Floor(t.seconds/60), 60)
}

//TrajectoryData structure keeps information about one range of the trajectory.
type TrajectoryData struct {
	time              Timespan
	travelDistance    unit.Distance
	velocity          unit.Velocity
	drop              unit.Distance
	path              unit.Distance
	pathAdjustment    unit.Angular
	windage           unit.Distance
	windageAdjustment unit.Angular
	lead              unit.Distance
	energy            unit.Energy
	optimalGameWeight unit.Weight
}

//Time return the amount of time spent since the shot moment
func (d TrajectoryData) Time() Timespan {
	return d.time
}

//TravelledDistance returns the range
func (d TrajectoryData) TravelledDistance() unit.Distance {
	return d.travelDistance
}

//Velocity returns the current projectile velocity
func (d TrajectoryData) Velocity() unit.Velocity {
	return d.velocity
}

//Drop returns how far the projectile fell below the bore line
func (d TrajectoryData) Drop() unit.Distance {
	return d.drop
}

//Path returns the position of the projectile relative to the line of sight.
//
//The positive value means the the projectile is above this line and the negative value means that the projectile
//is below this line
func (d TrajectoryData) Path() unit.Distance {
	return d.path
}

//PathAdjustment returns the scope elevation correction to hit at this range.
//It is the negated angle at which the path is seen from the scope.
func (d TrajectoryData) PathAdjustment() unit.Angular {
	return d.pathAdjustment
}

//Windage returns the distance to which the projectile is displaced by wind
func (d TrajectoryData) Windage() unit.Distance {
	return d.windage
}

//WindageAdjustment returns the angle at which the windage is seen from the scope
func (d TrajectoryData) WindageAdjustment() unit.Angular {
	return d.windageAdjustment
}

//Lead returns how far ahead of the moving target to aim
func (d TrajectoryData) Lead() unit.Distance {
	return d.lead
}

//Energy returns the kinetic energy of the projectile
func (d TrajectoryData) Energy() unit.Energy {
	return d.energy
}

//OptimalGameWeight returns the weight of game to which a kill shot is
//probable with the kinetic energy that the projectile currently have
func (d TrajectoryData) OptimalGameWeight() unit.Weight {
	return d.optimalGameWeight
}

func (d TrajectoryData) String() string {
	return fmt.Sprintf("Range:%s,Velocity:%s,Time:%.3fs,Path:%s,Windage:%s,Energy:%s",
		d.travelDistance, d.velocity, d.time.TotalSeconds(), d.path, d.windage, d.energy)
}

//Summary keeps the quantities of a load which do not depend on the range
type Summary struct {
	BallisticCoefficient        float64 //corrected for the atmosphere
	SectionalDensity            float64 //zero if the bullet dimensions are unknown
	OptimalRiflingTwist         unit.Distance
	MuzzleEnergy                unit.Energy
	RecoilVelocity              unit.Velocity //zero if the rifle weight is unknown
	RecoilEnergy                unit.Energy
	MuzzleAngle                 unit.Angular //for the zero distance of the weapon
	MaximumPointBlankRangeZero  unit.Distance
	MaximumPointBlankRange      unit.Distance
	ClicksToPointBlankRangeZero float64
}

func calculateOgv(bulletWeight, velocity float64) float64 {
	return math.Pow(bulletWeight, 2) * math.Pow(velocity, 3) * 1.5e-12
}
