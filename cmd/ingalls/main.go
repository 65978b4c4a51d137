// Ingalls prints the firing solution of a load: the summary of the load and
// the trajectory table.
//
// Usage:
//
//	ingalls [flags]
//	ingalls -table-out g7.json -drag 5
//
// With -table-out the program writes the retardation table integrated for the
// drag function specified instead, in the format the library loads.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/soniakeys/exit"

	"github.com/gehtsoft-usa/go_ingalls"
	"github.com/gehtsoft-usa/go_ingalls/bmath/unit"
)

func main() {
	defer exit.Handler()

	bc := flag.Float64("bc", 0.5, "G1 ballistic coefficient")
	muzzleVelocity := flag.Float64("v0", 2700, "muzzle velocity, ft/s")
	bulletWeight := flag.Float64("weight", 168, "bullet weight, grains")
	diameter := flag.Float64("diameter", 0, "bullet diameter, inches (optional)")
	length := flag.Float64("length", 0, "bullet length, inches (optional)")
	powder := flag.Float64("powder", 0, "powder charge, grains (optional)")
	rifle := flag.Float64("rifle", 0, "rifle weight, pounds (optional)")
	sightHeight := flag.Float64("sight", 1.5, "sight height, inches")
	zeroRange := flag.Float64("zero", 100, "zero range, yards")
	clicks := flag.Float64("clicks", 4, "scope clicks per MOA")
	maxRange := flag.Float64("max", 1000, "maximum range, yards")
	step := flag.Float64("step", 100, "range step, yards")
	windSpeed := flag.Float64("wind", 0, "wind speed, mph")
	windAngle := flag.Float64("wind-angle", 90, "wind direction, degrees (0 is a head wind)")
	targetSpeed := flag.Float64("target", 0, "target speed across the line of fire, mph")
	altitude := flag.Float64("altitude", 0, "altitude, feet")
	temperature := flag.Float64("temperature", 59, "temperature, °F")
	pressure := flag.Float64("pressure", 29.53, "barometric pressure, inHg")
	humidity := flag.Float64("humidity", 78, "relative humidity, percents")
	ordinate := flag.Float64("ordinate", 3, "maximum ordinate (target radius) for the point blank range, inches")
	tableOut := flag.String("table-out", "", "write the retardation table for -drag into the file and exit")
	drag := flag.Int("drag", int(go_ingalls.DragTableG1), "drag function for -table-out (1=G1 ... 8=GI)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if !(*humidity >= 0 && *humidity <= 100) {
		exit.Log(fmt.Errorf("humidity %g%% is not in 0..100: %w", *humidity, go_ingalls.ErrDegenerateInput))
	}

	if *tableOut != "" {
		if err := writeTable(logger, *tableOut, byte(*drag)); err != nil {
			exit.Log(err)
		}
		return
	}

	calculator, err := go_ingalls.CreateStandardIngallsCalculator()
	if err != nil {
		exit.Log(err)
	}
	solver := go_ingalls.CreateTrajectorySolver(calculator)

	atmosphere, err := go_ingalls.CreateAtmosphere(unit.MustCreateDistance(*altitude, unit.DistanceFoot),
		unit.MustCreatePressure(*pressure, unit.PressureInHg),
		unit.MustCreateTemperature(*temperature, unit.TemperatureFahrenheit),
		*humidity/100)
	if err != nil {
		exit.Log(err)
	}
	logger.Debug("atmosphere", "conditions", atmosphere.String(), "bc_factor", atmosphere.BallisticCoefficientFactor())

	coefficient, err := go_ingalls.CreateBallisticCoefficient(*bc, go_ingalls.DragTableG1)
	if err != nil {
		exit.Log(err)
	}
	weight := unit.MustCreateWeight(*bulletWeight, unit.WeightGrain)
	projectile := go_ingalls.CreateProjectile(coefficient, weight)
	if *diameter > 0 && *length > 0 {
		projectile = go_ingalls.CreateProjectileWithDimensions(coefficient,
			unit.MustCreateDistance(*diameter, unit.DistanceInch),
			unit.MustCreateDistance(*length, unit.DistanceInch), weight)
	}
	ammunition := go_ingalls.CreateAmmunitionWithCharge(projectile,
		unit.MustCreateVelocity(*muzzleVelocity, unit.VelocityFPS),
		unit.MustCreateWeight(*powder, unit.WeightGrain))

	weapon := go_ingalls.CreateWeapon(unit.MustCreateDistance(*sightHeight, unit.DistanceInch),
		unit.MustCreateDistance(*zeroRange, unit.DistanceYard))
	if *rifle > 0 {
		weapon = go_ingalls.CreateWeaponWithWeight(unit.MustCreateDistance(*sightHeight, unit.DistanceInch),
			unit.MustCreateDistance(*zeroRange, unit.DistanceYard),
			unit.MustCreateWeight(*rifle, unit.WeightPound))
	}
	weapon.SetClicksPerMOA(*clicks)

	summary, err := solver.Summarize(ammunition, weapon, atmosphere, unit.MustCreateDistance(*ordinate, unit.DistanceInch))
	if err != nil {
		exit.Log(err)
	}
	printSummary(summary, *rifle > 0)

	shot := go_ingalls.CreateShotParametersWithAngle(summary.MuzzleAngle,
		unit.MustCreateDistance(*maxRange, unit.DistanceYard),
		unit.MustCreateDistance(*step, unit.DistanceYard))
	shot.SetTargetSpeed(unit.MustCreateVelocity(*targetSpeed, unit.VelocityMPH))
	wind := go_ingalls.CreateWindInfo(unit.MustCreateVelocity(*windSpeed, unit.VelocityMPH),
		unit.MustCreateAngular(*windAngle, unit.AngularDegree))

	data, err := solver.Trajectory(ammunition, weapon, atmosphere, shot, wind)
	if err != nil {
		exit.Log(err)
	}
	if last := data[len(data)-1].TravelledDistance().In(unit.DistanceYard); last < *maxRange {
		logger.Warn("trajectory ends where the velocity leaves the table", "range_yd", last)
	}
	printTrajectory(data, *targetSpeed != 0)
}

func printSummary(s go_ingalls.Summary, recoil bool) {
	fmt.Printf("Ballistic coefficient:    %.3f\n", s.BallisticCoefficient)
	if s.SectionalDensity > 0 {
		fmt.Printf("Sectional density:        %.3f\n", s.SectionalDensity)
		fmt.Printf("Optimal rifling twist:    1:%s\n", s.OptimalRiflingTwist)
	}
	fmt.Printf("Muzzle energy:            %s\n", s.MuzzleEnergy)
	if recoil {
		fmt.Printf("Recoil:                   %s, %s\n", s.RecoilVelocity, s.RecoilEnergy)
	}
	fmt.Printf("Muzzle angle:             %s\n", s.MuzzleAngle)
	fmt.Printf("Point blank range zero:   %s\n", s.MaximumPointBlankRangeZero.Convert(unit.DistanceYard))
	fmt.Printf("Point blank range:        %s\n", s.MaximumPointBlankRange.Convert(unit.DistanceYard))
	fmt.Printf("Clicks to the zero:       %.1f\n\n", s.ClicksToPointBlankRangeZero)
}

func printTrajectory(data []go_ingalls.TrajectoryData, lead bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := "Range, yd\tVelocity, ft/s\tTime, s\tPath, in\tAdj, MOA\tWindage, in\tAdj, MOA\tEnergy, ft-lb\t"
	if lead {
		header += "Lead, in\t"
	}
	fmt.Fprintln(w, header)
	for _, d := range data {
		fmt.Fprintf(w, "%.0f\t%.0f\t%.3f\t%.2f\t%.2f\t%.2f\t%.2f\t%.0f\t",
			d.TravelledDistance().In(unit.DistanceYard),
			d.Velocity().In(unit.VelocityFPS),
			d.Time().TotalSeconds(),
			d.Path().In(unit.DistanceInch),
			d.PathAdjustment().In(unit.AngularMOA),
			d.Windage().In(unit.DistanceInch),
			d.WindageAdjustment().In(unit.AngularMOA),
			d.Energy().In(unit.EnergyFootPound))
		if lead {
			fmt.Fprintf(w, "%.1f\t", d.Lead().In(unit.DistanceInch))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func writeTable(logger *slog.Logger, path string, dragTable byte) error {
	atmosphere := go_ingalls.CreateICAOAtmosphere(unit.MustCreateDistance(0, unit.DistanceFoot))
	table, err := go_ingalls.CreateRetardationTableFromDrag(dragTable, atmosphere, 4000, 100, 10)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	n, err := table.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	logger.Info("table written", "path", path, "rows", table.Len(), "bytes", n)
	return err
}
