package go_ingalls

import (
	"errors"
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_ingalls/bmath/unit"
)

const cDefaultVelocityStep float64 = 0.1
const cDefaultAngleStep float64 = 0.00001
const cDefaultMaximumIterations int = 1000000

//the zero angle search gives up above this angle (degrees)
const cMaximumMuzzleAngle float64 = 45

//rows of one trajectory table
const cMaximumTrajectoryRows int = 100000

//SearchSettings bound the linear searches of the solver
type SearchSettings struct {
	VelocityStep      float64 //feet per second, maximum point blank range search
	AngleStep         float64 //degrees, zero angle search
	MaximumIterations int
}

//DefaultSearchSettings returns 0.1 ft/s and 0.00001° steps and one million iterations
func DefaultSearchSettings() SearchSettings {
	return SearchSettings{
		VelocityStep:      cDefaultVelocityStep,
		AngleStep:         cDefaultAngleStep,
		MaximumIterations: cDefaultMaximumIterations,
	}
}

//TrajectorySolver calculates the quantities which need a search over the
//Ingalls formulas: the maximum point blank range and the zero angle
type TrajectorySolver struct {
	calculator IngallsCalculator
	settings   SearchSettings
}

//CreateTrajectorySolver creates a solver with the default search settings
func CreateTrajectorySolver(calculator IngallsCalculator) TrajectorySolver {
	return TrajectorySolver{calculator: calculator, settings: DefaultSearchSettings()}
}

//Calculator returns the formulas the solver is built on
func (s TrajectorySolver) Calculator() IngallsCalculator {
	return s.calculator
}

//SearchSettings returns the settings of the searches
func (s TrajectorySolver) SearchSettings() SearchSettings {
	return s.settings
}

//SetSearchSettings sets the settings of the searches.
//
//The smaller the steps are, the more precise the results are, but the more
//iterations the searches need.
func (s *TrajectorySolver) SetSearchSettings(settings SearchSettings) {
	s.settings = settings
}

func timeToMaximumOrdinate(maximumOrdinate float64) (float64, error) {
	if !(maximumOrdinate > 0) || math.IsInf(maximumOrdinate, 0) {
		return 0, fmt.Errorf("maximum ordinate %g must be positive: %w", maximumOrdinate, ErrDegenerateInput)
	}
	return 0.25 * math.Sqrt(maximumOrdinate/3), nil
}

//MaximumPointBlankRangeZero returns the range (yards) to zero the rifle at to get the maximum
//point blank range for the maximum ordinate (inches, the target radius) specified
func (s TrajectorySolver) MaximumPointBlankRangeZero(bc, muzzleVelocity, maximumOrdinate float64) (float64, error) {
	t, err := timeToMaximumOrdinate(maximumOrdinate)
	if err != nil {
		return 0, err
	}
	velocity, err := s.calculator.VelocityFromTime(bc, muzzleVelocity, t)
	if err != nil {
		return 0, err
	}
	return s.calculator.Range(bc, muzzleVelocity, velocity)
}

//MaximumPointBlankRange returns the maximum range (yards) at which the projectile stays within
//the maximum ordinate (inches) of the line of sight without holdover or scope adjustment.
//
//The velocity is decreased by the velocity step from the velocity at the point blank range zero
//until the drop exceeds the drop at the zero by the maximum ordinate.
func (s TrajectorySolver) MaximumPointBlankRange(bc, muzzleVelocity, maximumOrdinate float64) (float64, error) {
	if !(s.settings.VelocityStep > 0) {
		return 0, fmt.Errorf("TrajectorySolver: velocity step %g: %w", s.settings.VelocityStep, ErrDegenerateInput)
	}
	t, err := timeToMaximumOrdinate(maximumOrdinate)
	if err != nil {
		return 0, err
	}
	zeroVelocity, err := s.calculator.VelocityFromTime(bc, muzzleVelocity, t)
	if err != nil {
		return 0, err
	}
	zeroDrop, err := s.calculator.Drop(muzzleVelocity, zeroVelocity, t)
	if err != nil {
		return 0, err
	}
	targetDrop := zeroDrop - maximumOrdinate

	for n := 0; n <= s.settings.MaximumIterations; n++ {
		velocity := zeroVelocity - float64(n)*s.settings.VelocityStep
		time, err := s.calculator.Time(bc, muzzleVelocity, velocity)
		if err != nil {
			return 0, err
		}
		drop, err := s.calculator.Drop(muzzleVelocity, velocity, time)
		if err != nil {
			return 0, err
		}
		if drop <= targetDrop {
			return s.calculator.Range(bc, muzzleVelocity, velocity)
		}
	}
	return 0, fmt.Errorf("TrajectorySolver: drop %g is not reached in %d iterations: %w",
		targetDrop, s.settings.MaximumIterations, ErrConvergence)
}

//MuzzleAngleDegreesForZeroRange returns the angle (degrees) between the bore and the line of sight
//at which the projectile crosses the line of sight at the zero range (yards).
//
//The angle is increased by the angle step from 0 until the vertical position at the zero
//range is not below the line of sight.
func (s TrajectorySolver) MuzzleAngleDegreesForZeroRange(muzzleVelocity, zeroRangeYards, scopeHeightInches, bc float64) (float64, error) {
	if !(s.settings.AngleStep > 0) {
		return 0, fmt.Errorf("TrajectorySolver: angle step %g: %w", s.settings.AngleStep, ErrDegenerateInput)
	}
	if !(zeroRangeYards > 0) {
		return 0, fmt.Errorf("TrajectorySolver: zero range %g must be positive: %w", zeroRangeYards, ErrDegenerateInput)
	}
	velocity, err := s.calculator.VelocityFromRange(bc, muzzleVelocity, zeroRangeYards)
	if err != nil {
		return 0, err
	}
	time, err := s.calculator.Time(bc, muzzleVelocity, velocity)
	if err != nil {
		return 0, err
	}
	drop, err := s.calculator.Drop(muzzleVelocity, velocity, time)
	if err != nil {
		return 0, err
	}

	for n := 0; n <= s.settings.MaximumIterations; n++ {
		angle := float64(n) * s.settings.AngleStep
		if angle > cMaximumMuzzleAngle {
			break
		}
		if s.calculator.VerticalPosition(scopeHeightInches, angle, zeroRangeYards, drop) >= 0 {
			return angle, nil
		}
	}
	return 0, fmt.Errorf("TrajectorySolver: no muzzle angle for zero range %g yd: %w", zeroRangeYards, ErrConvergence)
}

//ClicksToReachMaximumPointBlankRangeZero returns the number of scope clicks needed to move
//the zero of the rifle, fired at the muzzle angle (degrees) specified, to the maximum point blank range zero.
//
//The positive value means clicks up.
func (s TrajectorySolver) ClicksToReachMaximumPointBlankRangeZero(bc, scopeHeightInches, scopeElevationClicksPerMOA, maximumOrdinate, muzzleVelocity, muzzleAngleDegrees float64) (float64, error) {
	zero, err := s.MaximumPointBlankRangeZero(bc, muzzleVelocity, maximumOrdinate)
	if err != nil {
		return 0, err
	}
	if !(zero > 0) {
		return 0, fmt.Errorf("TrajectorySolver: point blank range zero %g yd: %w", zero, ErrDegenerateInput)
	}
	velocity, err := s.calculator.VelocityFromRange(bc, muzzleVelocity, zero)
	if err != nil {
		return 0, err
	}
	time, err := s.calculator.Time(bc, muzzleVelocity, velocity)
	if err != nil {
		return 0, err
	}
	drop, err := s.calculator.Drop(muzzleVelocity, velocity, time)
	if err != nil {
		return 0, err
	}
	position := s.calculator.VerticalPosition(scopeHeightInches, muzzleAngleDegrees, zero, drop)
	return -(unit.InchesToMinutesOfAngle(position, zero) * scopeElevationClicksPerMOA), nil
}

//ModifiedBallisticCoefficient converts the ballistic coefficient published for the standard conditions
//into the coefficient at the altitude (feet), temperature (°F), pressure (inHg) and
//relative humidity (percents) specified
func (s TrajectorySolver) ModifiedBallisticCoefficient(bc, altitudeFeet, temperatureFahrenheit, pressureInHg, humidityPercent float64) (float64, error) {
	if err := checkBallisticCoefficient(bc); err != nil {
		return 0, err
	}
	if humidityPercent < 0 || humidityPercent > 100 {
		return 0, fmt.Errorf("TrajectorySolver: humidity %g%% out of 0..100: %w", humidityPercent, ErrDegenerateInput)
	}
	atmosphere, err := CreateAtmosphere(unit.MustCreateDistance(altitudeFeet, unit.DistanceFoot),
		unit.MustCreatePressure(pressureInHg, unit.PressureInHg),
		unit.MustCreateTemperature(temperatureFahrenheit, unit.TemperatureFahrenheit),
		humidityPercent/100)
	if err != nil {
		return 0, err
	}
	return atmosphere.ModifyBallisticCoefficient(bc), nil
}

func (s TrajectorySolver) muzzleAngle(bc, muzzleVelocity float64, weapon Weapon, shot ShotParameters) (float64, error) {
	if shot.HasMuzzleAngle() {
		return shot.MuzzleAngle().In(unit.AngularDegree), nil
	}
	return s.MuzzleAngleDegreesForZeroRange(muzzleVelocity, weapon.ZeroDistance().In(unit.DistanceYard),
		weapon.SightHeight().In(unit.DistanceInch), bc)
}

//Trajectory calculates the trajectory table with the parameters specified.
//
//The ballistic coefficient of the bullet is corrected for the atmosphere first. The table
//ends at the maximum distance of the shot or when the remaining velocity leaves the
//retardation table, whichever comes first.
func (s TrajectorySolver) Trajectory(ammunition Ammunition, weapon Weapon, atmosphere Atmosphere, shotInfo ShotParameters, windInfo WindInfo) ([]TrajectoryData, error) {
	c := s.calculator
	bc := atmosphere.ModifyBallisticCoefficient(ammunition.Bullet().BallisticCoefficient().Value())
	muzzleVelocity := ammunition.MuzzleVelocity().In(unit.VelocityFPS)
	bulletWeight := ammunition.Bullet().BulletWeight().In(unit.WeightGrain)
	sightHeight := weapon.SightHeight().In(unit.DistanceInch)
	windVelocity := windInfo.Velocity().In(unit.VelocityMPH)
	windAngle := windInfo.Direction().In(unit.AngularDegree)
	targetSpeed := shotInfo.TargetSpeed().In(unit.VelocityMPH)

	step := shotInfo.Step().In(unit.DistanceYard)
	rangeTo := shotInfo.MaximumDistance().In(unit.DistanceYard)
	if !(step > 0) || math.IsInf(step, 0) || !(rangeTo >= 0) || math.IsInf(rangeTo, 0) {
		return nil, fmt.Errorf("TrajectorySolver: %g yd table with %g yd step: %w", rangeTo, step, ErrDegenerateInput)
	}

	muzzleAngle, err := s.muzzleAngle(bc, muzzleVelocity, weapon, shotInfo)
	if err != nil {
		return nil, err
	}

	//the table ends where the velocity leaves the retardation table
	reach, err := c.Range(bc, muzzleVelocity, c.Table().MinimumVelocity())
	if err != nil {
		return nil, err
	}
	rows := math.Floor(math.Min(rangeTo, reach)/step) + 1
	if rows > float64(cMaximumTrajectoryRows) {
		return nil, fmt.Errorf("TrajectorySolver: %g yd step gives more than %d rows: %w", step, cMaximumTrajectoryRows, ErrDegenerateInput)
	}

	rangesLength := int(rows)
	ranges := make([]TrajectoryData, 0, rangesLength)
	for i := 0; i < rangesLength; i++ {
		distance := float64(i) * step

		velocity, err := c.VelocityFromRange(bc, muzzleVelocity, distance)
		if errors.Is(err, ErrOutOfRange) && i > 0 {
			break
		} else if err != nil {
			return nil, err
		}
		velocity = math.Min(velocity, muzzleVelocity)
		time, err := c.Time(bc, muzzleVelocity, velocity)
		if err != nil {
			return nil, err
		}
		drop, err := c.Drop(muzzleVelocity, velocity, time)
		if err != nil {
			return nil, err
		}

		path := c.VerticalPosition(sightHeight, muzzleAngle, distance, drop)
		windage := c.CrossWindDrift(distance, time, windAngle, windVelocity, muzzleAngle, muzzleVelocity)

		var pathAdjustment, windageAdjustment float64
		if distance > 0 {
			pathAdjustment = -unit.InchesToMinutesOfAngle(path, distance)
			windageAdjustment = unit.InchesToMinutesOfAngle(windage, distance)
		}

		ranges = append(ranges, TrajectoryData{
			time:              Timespan{seconds: time},
			travelDistance:    unit.MustCreateDistance(distance, unit.DistanceYard),
			velocity:          unit.MustCreateVelocity(velocity, unit.VelocityFPS),
			drop:              unit.MustCreateDistance(drop, unit.DistanceInch),
			path:              unit.MustCreateDistance(path, unit.DistanceInch),
			pathAdjustment:    unit.MustCreateAngular(pathAdjustment, unit.AngularMOA),
			windage:           unit.MustCreateDistance(windage, unit.DistanceInch),
			windageAdjustment: unit.MustCreateAngular(windageAdjustment, unit.AngularMOA),
			lead:              unit.MustCreateDistance(c.Lead(targetSpeed, time), unit.DistanceInch),
			energy:            unit.MustCreateEnergy(c.Energy(bulletWeight, velocity), unit.EnergyFootPound),
			optimalGameWeight: unit.MustCreateWeight(calculateOgv(bulletWeight, velocity), unit.WeightPound),
		})
	}
	return ranges, nil
}

//Summarize calculates the quantities of the load which do not depend on the range:
//recoil, sectional density, zero angle and the maximum point blank range for the
//maximum ordinate specified
func (s TrajectorySolver) Summarize(ammunition Ammunition, weapon Weapon, atmosphere Atmosphere, maximumOrdinate unit.Distance) (Summary, error) {
	c := s.calculator
	bullet := ammunition.Bullet()
	bc := atmosphere.ModifyBallisticCoefficient(bullet.BallisticCoefficient().Value())
	muzzleVelocity := ammunition.MuzzleVelocity().In(unit.VelocityFPS)
	bulletWeight := bullet.BulletWeight().In(unit.WeightGrain)
	sightHeight := weapon.SightHeight().In(unit.DistanceInch)
	ordinate := maximumOrdinate.In(unit.DistanceInch)

	summary := Summary{
		BallisticCoefficient: bc,
		OptimalRiflingTwist:  unit.MustCreateDistance(0, unit.DistanceInch),
		MuzzleEnergy:         unit.MustCreateEnergy(c.Energy(bulletWeight, muzzleVelocity), unit.EnergyFootPound),
		RecoilVelocity:       unit.MustCreateVelocity(0, unit.VelocityFPS),
		RecoilEnergy:         unit.MustCreateEnergy(0, unit.EnergyFootPound),
	}

	if bullet.HasDimensions() {
		diameter := bullet.BulletDiameter().In(unit.DistanceInch)
		length := bullet.BulletLength().In(unit.DistanceInch)
		summary.SectionalDensity = c.SectionalDensity(bulletWeight, diameter)
		summary.OptimalRiflingTwist = unit.MustCreateDistance(c.OptimalRiflingTwist(diameter, length), unit.DistanceInch)
	}
	if weapon.HasWeight() {
		powder := ammunition.PowderCharge().In(unit.WeightGrain)
		rifle := weapon.Weight().In(unit.WeightPound)
		summary.RecoilVelocity = unit.MustCreateVelocity(c.RifleRecoilVelocity(bulletWeight, muzzleVelocity, powder, rifle), unit.VelocityFPS)
		summary.RecoilEnergy = unit.MustCreateEnergy(c.RifleRecoilEnergy(bulletWeight, muzzleVelocity, powder, rifle), unit.EnergyFootPound)
	}

	angle, err := s.MuzzleAngleDegreesForZeroRange(muzzleVelocity, weapon.ZeroDistance().In(unit.DistanceYard), sightHeight, bc)
	if err != nil {
		return summary, err
	}
	summary.MuzzleAngle = unit.MustCreateAngular(angle, unit.AngularDegree)

	zero, err := s.MaximumPointBlankRangeZero(bc, muzzleVelocity, ordinate)
	if err != nil {
		return summary, err
	}
	summary.MaximumPointBlankRangeZero = unit.MustCreateDistance(zero, unit.DistanceYard)

	pointBlank, err := s.MaximumPointBlankRange(bc, muzzleVelocity, ordinate)
	if err != nil {
		return summary, err
	}
	summary.MaximumPointBlankRange = unit.MustCreateDistance(pointBlank, unit.DistanceYard)

	summary.ClicksToPointBlankRangeZero, err = s.ClicksToReachMaximumPointBlankRangeZero(bc, sightHeight,
		weapon.ClicksPerMOA(), ordinate, muzzleVelocity, angle)
	return summary, err
}
