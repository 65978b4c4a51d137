package go_ingalls_test

import (
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_ingalls"
	"github.com/gehtsoft-usa/go_ingalls/bmath/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardSolver(t *testing.T) go_ingalls.TrajectorySolver {
	return go_ingalls.CreateTrajectorySolver(standardCalculator(t))
}

func TestMaximumPointBlankRange(t *testing.T) {
	s := standardSolver(t)

	zero, err := s.MaximumPointBlankRangeZero(0.5, 2700, 3)
	require.NoError(t, err)
	assert.InDelta(t, 208.9926, zero, 1e-2)

	pointBlank, err := s.MaximumPointBlankRange(0.5, 2700, 3)
	require.NoError(t, err)
	assert.InDelta(t, 233.0944, pointBlank, 5e-2)
	assert.Greater(t, pointBlank, zero)

	// a bigger target gives a longer point blank range
	wider, err := s.MaximumPointBlankRange(0.5, 2700, 6)
	require.NoError(t, err)
	assert.Greater(t, wider, pointBlank)

	_, err = s.MaximumPointBlankRangeZero(0.5, 2700, 0)
	assert.ErrorIs(t, err, go_ingalls.ErrDegenerateInput)
	_, err = s.MaximumPointBlankRange(0.5, 2700, -1)
	assert.ErrorIs(t, err, go_ingalls.ErrDegenerateInput)
	_, err = s.MaximumPointBlankRange(0.5, 5000, 3)
	assert.ErrorIs(t, err, go_ingalls.ErrOutOfRange)
}

func TestMuzzleAngleForZeroRange(t *testing.T) {
	s := standardSolver(t)

	angle, err := s.MuzzleAngleDegreesForZeroRange(2700, 100, 1.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.06356, angle, 1e-12)

	// the angle found is the first one at which the bullet is not below the line of sight
	c := s.Calculator()
	velocity, err := c.VelocityFromRange(0.5, 2700, 100)
	require.NoError(t, err)
	time, err := c.Time(0.5, 2700, velocity)
	require.NoError(t, err)
	drop, err := c.Drop(2700, velocity, time)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.VerticalPosition(1.5, angle, 100, drop), 0.0)
	assert.Less(t, c.VerticalPosition(1.5, angle-s.SearchSettings().AngleStep, 100, drop), 0.0)

	_, err = s.MuzzleAngleDegreesForZeroRange(2700, 0, 1.5, 0.5)
	assert.ErrorIs(t, err, go_ingalls.ErrDegenerateInput)
	_, err = s.MuzzleAngleDegreesForZeroRange(2700, 100, 1.5, 0)
	assert.ErrorIs(t, err, go_ingalls.ErrDegenerateInput)
}

func TestClicksToReachMaximumPointBlankRangeZero(t *testing.T) {
	s := standardSolver(t)

	clicks, err := s.ClicksToReachMaximumPointBlankRangeZero(0.5, 1.5, 4, 3, 2700, 0.06356)
	require.NoError(t, err)
	assert.InDelta(t, 8.4678, clicks, 1e-3)

	// twice as fine a scope needs twice as many clicks
	fine, err := s.ClicksToReachMaximumPointBlankRangeZero(0.5, 1.5, 8, 3, 2700, 0.06356)
	require.NoError(t, err)
	assert.InDelta(t, 2*clicks, fine, 1e-9)

	_, err = s.ClicksToReachMaximumPointBlankRangeZero(0.5, 1.5, 4, 0, 2700, 0.06356)
	assert.ErrorIs(t, err, go_ingalls.ErrDegenerateInput)
}

func TestSearchSettings(t *testing.T) {
	s := standardSolver(t)
	assert.Equal(t, go_ingalls.DefaultSearchSettings(), s.SearchSettings())
	assert.Equal(t, 0.1, s.SearchSettings().VelocityStep)
	assert.Equal(t, 0.00001, s.SearchSettings().AngleStep)
	assert.Equal(t, 1000000, s.SearchSettings().MaximumIterations)

	t.Run("iterations exhausted", func(t *testing.T) {
		s := standardSolver(t)
		settings := go_ingalls.DefaultSearchSettings()
		settings.MaximumIterations = 10
		s.SetSearchSettings(settings)

		_, err := s.MaximumPointBlankRange(0.5, 2700, 3)
		assert.ErrorIs(t, err, go_ingalls.ErrConvergence)
		_, err = s.MuzzleAngleDegreesForZeroRange(2700, 100, 1.5, 0.5)
		assert.ErrorIs(t, err, go_ingalls.ErrConvergence)
	})

	t.Run("angle above 45 degrees", func(t *testing.T) {
		s := standardSolver(t)
		settings := go_ingalls.DefaultSearchSettings()
		settings.AngleStep = 1
		s.SetSearchSettings(settings)

		_, err := s.MuzzleAngleDegreesForZeroRange(2700, 100, 1e6, 0.5)
		assert.ErrorIs(t, err, go_ingalls.ErrConvergence)
	})

	t.Run("non-positive steps", func(t *testing.T) {
		s := standardSolver(t)
		s.SetSearchSettings(go_ingalls.SearchSettings{MaximumIterations: 100})

		_, err := s.MaximumPointBlankRange(0.5, 2700, 3)
		assert.ErrorIs(t, err, go_ingalls.ErrDegenerateInput)
		_, err = s.MuzzleAngleDegreesForZeroRange(2700, 100, 1.5, 0.5)
		assert.ErrorIs(t, err, go_ingalls.ErrDegenerateInput)
	})

	t.Run("coarse velocity step", func(t *testing.T) {
		s := standardSolver(t)
		settings := go_ingalls.DefaultSearchSettings()
		settings.VelocityStep = 10
		s.SetSearchSettings(settings)

		coarse, err := s.MaximumPointBlankRange(0.5, 2700, 3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, coarse, 233.0)
		assert.InDelta(t, 233.0944, coarse, 10)
	})
}

func TestModifiedBallisticCoefficient(t *testing.T) {
	s := standardSolver(t)

	bc, err := s.ModifiedBallisticCoefficient(0.5, 0, 59, 29.53, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.4975, bc, 1e-9)

	bc, err = s.ModifiedBallisticCoefficient(0.5, 0, 59, 29.53, 78)
	require.NoError(t, err)
	assert.InDelta(t, 0.50029, bc, 1e-5)

	bc, err = s.ModifiedBallisticCoefficient(0.5, 5000, 41, 29.53, 50)
	require.NoError(t, err)
	assert.InDelta(t, 0.57998, bc, 1e-5)

	_, err = s.ModifiedBallisticCoefficient(0.5, 0, 59, 29.53, 120)
	assert.ErrorIs(t, err, go_ingalls.ErrDegenerateInput)
	_, err = s.ModifiedBallisticCoefficient(0, 0, 59, 29.53, 50)
	assert.ErrorIs(t, err, go_ingalls.ErrDegenerateInput)
}

func createLoad(t *testing.T) (go_ingalls.Ammunition, go_ingalls.Weapon) {
	bc, err := go_ingalls.CreateBallisticCoefficient(0.5, go_ingalls.DragTableG1)
	require.NoError(t, err)
	projectile := go_ingalls.CreateProjectileWithDimensions(bc,
		unit.MustCreateDistance(0.308, unit.DistanceInch),
		unit.MustCreateDistance(1.245, unit.DistanceInch),
		unit.MustCreateWeight(168, unit.WeightGrain))
	ammo := go_ingalls.CreateAmmunitionWithCharge(projectile,
		unit.MustCreateVelocity(2700, unit.VelocityFPS),
		unit.MustCreateWeight(45, unit.WeightGrain))
	weapon := go_ingalls.CreateWeaponWithWeight(
		unit.MustCreateDistance(1.5, unit.DistanceInch),
		unit.MustCreateDistance(100, unit.DistanceYard),
		unit.MustCreateWeight(8, unit.WeightPound))
	return ammo, weapon
}

func TestTrajectory(t *testing.T) {
	s := standardSolver(t)
	ammo, weapon := createLoad(t)
	atmosphere := go_ingalls.CreateDefaultAtmosphere()
	shot := go_ingalls.CreateShotParameters(unit.MustCreateDistance(1000, unit.DistanceYard),
		unit.MustCreateDistance(100, unit.DistanceYard))
	shot.SetTargetSpeed(unit.MustCreateVelocity(10, unit.VelocityMPH))
	wind := go_ingalls.CreateWindInfo(unit.MustCreateVelocity(10, unit.VelocityMPH),
		unit.MustCreateAngular(90, unit.AngularDegree))

	data, err := s.Trajectory(ammo, weapon, atmosphere, shot, wind)
	require.NoError(t, err)
	require.Len(t, data, 11)

	first := data[0]
	assert.Equal(t, 0.0, first.TravelledDistance().In(unit.DistanceYard))
	assert.InDelta(t, 2700, first.Velocity().In(unit.VelocityFPS), 1e-6)
	assert.InDelta(t, 0, first.Time().TotalSeconds(), 1e-12)
	assert.InDelta(t, -1.5, first.Path().In(unit.DistanceInch), 1e-9)
	assert.InDelta(t, 0, first.Windage().In(unit.DistanceInch), 1e-9)
	assert.InDelta(t, 2718.8, first.Energy().In(unit.EnergyFootPound), 1)

	// the muzzle angle is found for the zero distance of the weapon
	zero := data[1]
	assert.InDelta(t, 100, zero.TravelledDistance().In(unit.DistanceYard), 1e-9)
	assert.GreaterOrEqual(t, zero.Path().In(unit.DistanceInch), 0.0)
	assert.Less(t, zero.Path().In(unit.DistanceInch), 1e-3)
	assert.InDelta(t, 0, zero.PathAdjustment().In(unit.AngularMOA), 1e-3)

	for i := 1; i < len(data); i++ {
		prev, row := data[i-1], data[i]
		assert.Less(t, row.Velocity().In(unit.VelocityFPS), prev.Velocity().In(unit.VelocityFPS))
		assert.Greater(t, row.Time().TotalSeconds(), prev.Time().TotalSeconds())
		assert.Less(t, row.Drop().In(unit.DistanceInch), prev.Drop().In(unit.DistanceInch))
		assert.Greater(t, row.Windage().In(unit.DistanceInch), prev.Windage().In(unit.DistanceInch))
		assert.Greater(t, row.Lead().In(unit.DistanceInch), prev.Lead().In(unit.DistanceInch))
		assert.Less(t, row.Energy().In(unit.EnergyFootPound), prev.Energy().In(unit.EnergyFootPound))
	}

	// below the line of sight the scope must be moved up
	far := data[5]
	assert.Less(t, far.Path().In(unit.DistanceInch), 0.0)
	assert.Greater(t, far.PathAdjustment().In(unit.AngularMOA), 0.0)
	assert.Greater(t, far.WindageAdjustment().In(unit.AngularMOA), 0.0)
	assert.InDelta(t, 176*far.Time().TotalSeconds(), far.Lead().In(unit.DistanceInch), 1e-6)
}

func TestTrajectoryWithMuzzleAngle(t *testing.T) {
	s := standardSolver(t)
	ammo, weapon := createLoad(t)
	shot := go_ingalls.CreateShotParametersWithAngle(unit.MustCreateAngular(0, unit.AngularDegree),
		unit.MustCreateDistance(300, unit.DistanceYard), unit.MustCreateDistance(100, unit.DistanceYard))

	data, err := s.Trajectory(ammo, weapon, go_ingalls.CreateDefaultAtmosphere(), shot, go_ingalls.CreateNoWind())
	require.NoError(t, err)
	require.Len(t, data, 4)
	for _, row := range data {
		// a level bore never rises to the line of sight
		assert.InDelta(t, row.Drop().In(unit.DistanceInch)-1.5, row.Path().In(unit.DistanceInch), 1e-9)
		assert.Equal(t, 0.0, row.Windage().In(unit.DistanceInch))
	}
}

func TestTrajectoryEndsAtTableEnd(t *testing.T) {
	s := standardSolver(t)
	ammo, weapon := createLoad(t)
	shot := go_ingalls.CreateShotParameters(unit.MustCreateDistance(20000, unit.DistanceYard),
		unit.MustCreateDistance(1000, unit.DistanceYard))

	data, err := s.Trajectory(ammo, weapon, go_ingalls.CreateDefaultAtmosphere(), shot, go_ingalls.CreateNoWind())
	require.NoError(t, err)
	assert.Greater(t, len(data), 1)
	assert.Less(t, len(data), 21)
	assert.GreaterOrEqual(t, data[len(data)-1].Velocity().In(unit.VelocityFPS), 100.0)

	shot = go_ingalls.CreateShotParameters(unit.MustCreateDistance(1000, unit.DistanceYard),
		unit.MustCreateDistance(0, unit.DistanceYard))
	_, err = s.Trajectory(ammo, weapon, go_ingalls.CreateDefaultAtmosphere(), shot, go_ingalls.CreateNoWind())
	assert.ErrorIs(t, err, go_ingalls.ErrDegenerateInput)
}

func TestTrajectoryHugeRange(t *testing.T) {
	s := standardSolver(t)
	ammo, weapon := createLoad(t)
	atmosphere := go_ingalls.CreateDefaultAtmosphere()

	shot := go_ingalls.CreateShotParameters(unit.MustCreateDistance(1e15, unit.DistanceYard),
		unit.MustCreateDistance(1, unit.DistanceYard))
	data, err := s.Trajectory(ammo, weapon, atmosphere, shot, go_ingalls.CreateNoWind())
	require.NoError(t, err)
	last := data[len(data)-1]
	assert.Less(t, last.TravelledDistance().In(unit.DistanceYard), 20000.0)
	assert.GreaterOrEqual(t, last.Velocity().In(unit.VelocityFPS), 100.0)

	for _, c := range []struct {
		name          string
		maximum, step float64
	}{
		{"infinite range", math.Inf(1), 100},
		{"NaN range", math.NaN(), 100},
		{"infinite step", 1000, math.Inf(1)},
		{"too many rows", 1e15, 1e-9},
	} {
		t.Run(c.name, func(t *testing.T) {
			shot := go_ingalls.CreateShotParameters(unit.MustCreateDistance(c.maximum, unit.DistanceYard),
				unit.MustCreateDistance(c.step, unit.DistanceYard))
			_, err := s.Trajectory(ammo, weapon, atmosphere, shot, go_ingalls.CreateNoWind())
			assert.ErrorIs(t, err, go_ingalls.ErrDegenerateInput)
		})
	}
}

func TestSummarize(t *testing.T) {
	s := standardSolver(t)
	ammo, weapon := createLoad(t)
	atmosphere := go_ingalls.CreateDefaultAtmosphere()
	ordinate := unit.MustCreateDistance(3, unit.DistanceInch)

	summary, err := s.Summarize(ammo, weapon, atmosphere, ordinate)
	require.NoError(t, err)

	bc := atmosphere.ModifyBallisticCoefficient(0.5)
	mv := ammo.MuzzleVelocity().In(unit.VelocityFPS)
	assert.InDelta(t, bc, summary.BallisticCoefficient, 1e-12)
	assert.InDelta(t, 0.253, summary.SectionalDensity, 1e-3)
	assert.InDelta(t, 11.43, summary.OptimalRiflingTwist.In(unit.DistanceInch), 1e-2)
	assert.Greater(t, summary.RecoilVelocity.In(unit.VelocityFPS), 0.0)
	assert.Greater(t, summary.RecoilEnergy.In(unit.EnergyFootPound), 0.0)

	angle, err := s.MuzzleAngleDegreesForZeroRange(mv, 100, 1.5, bc)
	require.NoError(t, err)
	assert.InDelta(t, angle, summary.MuzzleAngle.In(unit.AngularDegree), 1e-9)

	zero, err := s.MaximumPointBlankRangeZero(bc, mv, 3)
	require.NoError(t, err)
	assert.InDelta(t, zero, summary.MaximumPointBlankRangeZero.In(unit.DistanceYard), 1e-6)

	pointBlank, err := s.MaximumPointBlankRange(bc, mv, 3)
	require.NoError(t, err)
	assert.InDelta(t, pointBlank, summary.MaximumPointBlankRange.In(unit.DistanceYard), 1e-6)

	clicks, err := s.ClicksToReachMaximumPointBlankRangeZero(bc, 1.5, 4, 3, mv, angle)
	require.NoError(t, err)
	assert.InDelta(t, clicks, summary.ClicksToPointBlankRangeZero, 1e-9)

	t.Run("without dimensions and weight", func(t *testing.T) {
		bc, err := go_ingalls.CreateBallisticCoefficient(0.5, go_ingalls.DragTableG1)
		require.NoError(t, err)
		ammo := go_ingalls.CreateAmmunition(go_ingalls.CreateProjectile(bc, unit.MustCreateWeight(168, unit.WeightGrain)),
			unit.MustCreateVelocity(2700, unit.VelocityFPS))
		weapon := go_ingalls.CreateWeapon(unit.MustCreateDistance(1.5, unit.DistanceInch),
			unit.MustCreateDistance(100, unit.DistanceYard))

		summary, err := s.Summarize(ammo, weapon, atmosphere, ordinate)
		require.NoError(t, err)
		assert.Equal(t, 0.0, summary.SectionalDensity)
		assert.Equal(t, 0.0, summary.RecoilVelocity.In(unit.VelocityFPS))
		assert.Greater(t, summary.MaximumPointBlankRange.In(unit.DistanceYard), 0.0)
	})
}
