package go_ingalls

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_ingalls/bmath/unit"
)

//feet per second per second
const cGravity float64 = 32.176

//IngallsCalculator converts between range, time and velocity of a projectile
//by scaling the retardation table lookups with the ballistic coefficient.
//
//All methods are pure. The calculator keeps references to the tables only and
//may be used from several goroutines at once.
type IngallsCalculator struct {
	table *RetardationTable
	drops *DropTable
}

//CreateIngallsCalculator creates a calculator over the tables specified.
//Both tables must not be nil.
func CreateIngallsCalculator(table *RetardationTable, drops *DropTable) IngallsCalculator {
	return IngallsCalculator{table: table, drops: drops}
}

//CreateStandardIngallsCalculator creates a calculator over the packaged Ingalls table
//and the standard drop coefficients
func CreateStandardIngallsCalculator() (IngallsCalculator, error) {
	table, err := LoadIngallsTable()
	if err != nil {
		return IngallsCalculator{}, err
	}
	return CreateIngallsCalculator(table, StandardDropTable()), nil
}

//Table returns the retardation table used by the calculator
func (c IngallsCalculator) Table() *RetardationTable {
	return c.table
}

func checkBallisticCoefficient(bc float64) error {
	if !(bc > 0) || math.IsInf(bc, 0) {
		return fmt.Errorf("ballistic coefficient %g must be positive: %w", bc, ErrDegenerateInput)
	}
	return nil
}

//Range returns the range (yards) at which the projectile slows down from muzzleVelocity
//to velocity (feet per second)
func (c IngallsCalculator) Range(bc, muzzleVelocity, velocity float64) (float64, error) {
	if err := checkBallisticCoefficient(bc); err != nil {
		return 0, err
	}
	space, err := c.table.SpaceFromVelocity(velocity)
	if err != nil {
		return 0, err
	}
	muzzleSpace, err := c.table.SpaceFromVelocity(muzzleVelocity)
	if err != nil {
		return 0, err
	}
	return bc * (space - muzzleSpace) / 3, nil
}

//Time returns the time of flight (seconds) the projectile needs to slow down
//from muzzleVelocity to velocity
func (c IngallsCalculator) Time(bc, muzzleVelocity, velocity float64) (float64, error) {
	if err := checkBallisticCoefficient(bc); err != nil {
		return 0, err
	}
	time, err := c.table.TimeFromVelocity(velocity)
	if err != nil {
		return 0, err
	}
	muzzleTime, err := c.table.TimeFromVelocity(muzzleVelocity)
	if err != nil {
		return 0, err
	}
	return bc * (time - muzzleTime), nil
}

//VelocityFromRange returns the velocity remaining at the range (yards) specified
func (c IngallsCalculator) VelocityFromRange(bc, muzzleVelocity, rangeYards float64) (float64, error) {
	if err := checkBallisticCoefficient(bc); err != nil {
		return 0, err
	}
	muzzleSpace, err := c.table.SpaceFromVelocity(muzzleVelocity)
	if err != nil {
		return 0, err
	}
	return c.table.VelocityFromSpace(muzzleSpace + rangeYards*3/bc)
}

//VelocityFromTime returns the velocity remaining after the time of flight (seconds) specified
func (c IngallsCalculator) VelocityFromTime(bc, muzzleVelocity, timeSeconds float64) (float64, error) {
	if err := checkBallisticCoefficient(bc); err != nil {
		return 0, err
	}
	muzzleTime, err := c.table.TimeFromVelocity(muzzleVelocity)
	if err != nil {
		return 0, err
	}
	return c.table.VelocityFromTime(timeSeconds/bc + muzzleTime)
}

//Drop returns how far (inches, negative) the projectile falls due to gravity
//if the bore were level.
//
//velocity must not exceed muzzleVelocity.
func (c IngallsCalculator) Drop(muzzleVelocity, velocity, timeSeconds float64) (float64, error) {
	falls, err := c.drops.Coefficient(muzzleVelocity, velocity)
	if err != nil {
		return 0, err
	}
	return -(falls * timeSeconds * timeSeconds), nil
}

//VerticalPosition returns the position (inches) of the projectile relative to the line of sight
//taking into account the angle of the muzzle
func (c IngallsCalculator) VerticalPosition(scopeHeightInches, muzzleAngleDegrees, rangeYards, dropInches float64) float64 {
	return dropInches + rangeYards*36*unit.MustCreateAngular(muzzleAngleDegrees, unit.AngularDegree).Tan() - scopeHeightInches
}

//Energy returns the kinetic energy (foot-pounds) retained in the projectile
func (c IngallsCalculator) Energy(bulletWeightGrains, velocity float64) float64 {
	return bulletWeightGrains * velocity * velocity / (cGravity * 7000 * 2)
}

//SectionalDensity returns the mass per squared diameter of the bullet
func (c IngallsCalculator) SectionalDensity(bulletWeightGrains, bulletDiameterInches float64) float64 {
	return bulletWeightGrains / (7000 * bulletDiameterInches * bulletDiameterInches)
}

//OptimalRiflingTwist returns the rifling twist (inches per turn) that stabilizes a bullet
//of the length specified (Greenhill formula)
func (c IngallsCalculator) OptimalRiflingTwist(bulletDiameterInches, bulletLengthInches float64) float64 {
	return bulletDiameterInches * 150 / (bulletLengthInches / bulletDiameterInches)
}

//CrossWindDrift returns how far (inches) the wind moves the projectile.
//
//The drift is the cross component of the wind multiplied by the lag time: the difference
//between the time of flight and the time the projectile would need in vacuum.
func (c IngallsCalculator) CrossWindDrift(rangeYards, timeSeconds, windAngleDegrees, windVelocityMPH, muzzleAngleDegrees, muzzleVelocity float64) float64 {
	windAngle := unit.MustCreateAngular(windAngleDegrees, unit.AngularDegree)
	muzzleAngle := unit.MustCreateAngular(muzzleAngleDegrees, unit.AngularDegree)
	vacuumTime := rangeYards * 3 / (muzzleVelocity * muzzleAngle.Cos())
	return windAngle.Sin() * unit.MilesPerHourToInchesPerSecond(windVelocityMPH) * (timeSeconds - vacuumTime)
}

//Lead returns how far (inches) to lead a target moving across the line of fire
func (c IngallsCalculator) Lead(targetSpeedMPH, timeSeconds float64) float64 {
	return unit.MilesPerHourToInchesPerSecond(targetSpeedMPH) * timeSeconds
}

//RifleRecoilVelocity returns the rearward velocity (feet per second) of the rifle.
//Powder gases are assumed to leave the muzzle at 4000 ft/s.
func (c IngallsCalculator) RifleRecoilVelocity(bulletWeightGrains, muzzleVelocity, powderWeightGrains, rifleWeightPounds float64) float64 {
	return (bulletWeightGrains*muzzleVelocity + powderWeightGrains*4000) / (rifleWeightPounds * 7000)
}

//RifleRecoilEnergy returns the recoil energy (foot-pounds) of the rifle
func (c IngallsCalculator) RifleRecoilEnergy(bulletWeightGrains, muzzleVelocity, powderWeightGrains, rifleWeightPounds float64) float64 {
	v := c.RifleRecoilVelocity(bulletWeightGrains, muzzleVelocity, powderWeightGrains, rifleWeightPounds)
	return rifleWeightPounds * v * v / (cGravity * 2)
}
