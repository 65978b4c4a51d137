package go_ingalls

import (
	"fmt"
	"math"

	"github.com/gehtsoft-usa/go_ingalls/bmath/unit"
)

//ICAO standard atmosphere
const (
	cIcaoSeaLevelRankine float64 = 518.67
	cRankineOffset       float64 = 459.67
	cLapseRate           float64 = -3.56616e-03 //°F per foot
	cPressureExponent    float64 = -5.255876
	cSeaLevelPressure    float64 = 29.92
	cSeaLevelDensity     float64 = 0.076474 //lb/ft³
	cSpeedOfSoundFactor  float64 = 49.0223
)

//the ballistic coefficient correction factors are referenced to 59°F and 29.53 inHg
const (
	cStandardTemperature        float64 = 59.0
	cCorrectionStandardPressure float64 = 29.53
	cStandardHumidity           float64 = 0.78
)

//saturated vapor pressure polynomial (Fahrenheit)
var cVaporPressure = [...]float64{1.24871, 0.0988438, 0.00152907, -3.07031e-06, 4.21329e-07}

const cVaporPressureScale float64 = 3.342e-04

//Atmosphere keeps the conditions of the shot and what is derived from them:
//the air density and the speed of sound
type Atmosphere struct {
	altitude    unit.Distance
	pressure    unit.Pressure
	temperature unit.Temperature
	humidity    float64
	density     float64
	machFPS     float64
}

func newAtmosphere(altitude unit.Distance, pressure unit.Pressure, temperature unit.Temperature, humidity float64) Atmosphere {
	a := Atmosphere{altitude: altitude, pressure: pressure, temperature: temperature, humidity: humidity}
	t := temperature.In(unit.TemperatureFahrenheit)
	a.density = airDensity(t, pressure.In(unit.PressureInHg), humidity)
	a.machFPS = math.Sqrt(t+cRankineOffset) * cSpeedOfSoundFactor
	return a
}

//CreateDefaultAtmosphere creates the atmosphere the Ingalls table and the published
//ballistic coefficients are referenced to
func CreateDefaultAtmosphere() Atmosphere {
	return newAtmosphere(unit.MustCreateDistance(0, unit.DistanceFoot),
		unit.MustCreatePressure(cCorrectionStandardPressure, unit.PressureInHg),
		unit.MustCreateTemperature(cStandardTemperature, unit.TemperatureFahrenheit),
		cStandardHumidity)
}

//CreateAtmosphere creates the atmosphere with the specified parameter
//
//humidity may be set either as 0..1 coefficient or in percents (0..100)
func CreateAtmosphere(altitude unit.Distance, pressure unit.Pressure, temperature unit.Temperature, humidity float64) (Atmosphere, error) {
	switch {
	case !(humidity >= 0 && humidity <= 100):
		return CreateDefaultAtmosphere(), fmt.Errorf("Atmosphere: humidity must be in 0..1 or 0..100 range: %w", ErrDegenerateInput)
	case !(pressure.In(unit.PressureInHg) > 0):
		return CreateDefaultAtmosphere(), fmt.Errorf("Atmosphere: pressure must be positive: %w", ErrDegenerateInput)
	case humidity > 1:
		humidity /= 100
	}
	return newAtmosphere(altitude, pressure, temperature, humidity), nil
}

//CreateICAOAtmosphere creates the dry ICAO standard atmosphere at the altitude
func CreateICAOAtmosphere(altitude unit.Distance) Atmosphere {
	rankine := cIcaoSeaLevelRankine + altitude.In(unit.DistanceFoot)*cLapseRate
	inHg := cSeaLevelPressure * math.Pow(cIcaoSeaLevelRankine/rankine, cPressureExponent)
	return newAtmosphere(altitude,
		unit.MustCreatePressure(inHg, unit.PressureInHg),
		unit.MustCreateTemperature(rankine-cRankineOffset, unit.TemperatureFahrenheit),
		0)
}

//airDensity is in lb/ft³, dry air below freezing
func airDensity(fahrenheit, inHg, humidity float64) float64 {
	ratio := 1.0
	if fahrenheit > 0 {
		saturated := 0.0
		for i := len(cVaporPressure) - 1; i >= 0; i-- {
			saturated = saturated*fahrenheit + cVaporPressure[i]
		}
		vapor := cVaporPressureScale * humidity * saturated
		ratio = (inHg - 0.3783*vapor) / cSeaLevelPressure
	}
	return cSeaLevelDensity * cIcaoSeaLevelRankine / (fahrenheit + cRankineOffset) * ratio
}

func (a Atmosphere) Altitude() unit.Distance {
	return a.altitude
}

func (a Atmosphere) Temperature() unit.Temperature {
	return a.temperature
}

//Pressure is the station pressure corrected to the sea level
func (a Atmosphere) Pressure() unit.Pressure {
	return a.pressure
}

//Humidity returns the relative humidity as 0..1 coefficient
func (a Atmosphere) Humidity() float64 {
	return a.humidity
}

func (a Atmosphere) HumidityInPercents() float64 {
	return a.humidity * 100
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("Altitude:%s,Pressure:%s,Temperature:%s,Humidity:%.2f%%",
		a.altitude, a.pressure, a.temperature, a.HumidityInPercents())
}

//Mach returns the speed of sound under these conditions
func (a Atmosphere) Mach() unit.Velocity {
	return unit.MustCreateVelocity(a.machFPS, unit.VelocityFPS)
}

//densityFactor is the air density relative to the ICAO sea level
func (a Atmosphere) densityFactor() float64 {
	return a.density / cSeaLevelDensity
}

//BallisticCoefficientFactor returns the multiplier converting a ballistic coefficient
//published for standard conditions into the coefficient under these conditions
func (a Atmosphere) BallisticCoefficientFactor() float64 {
	altitude := a.altitude.In(unit.DistanceFoot)
	temperature := a.temperature.In(unit.TemperatureFahrenheit)
	pressure := a.pressure.In(unit.PressureInHg)

	fa := AltitudeAdjustmentFactor(altitude)
	ft := TemperatureAdjustmentFactor(altitude, temperature)
	fp := BarometricPressureAdjustmentFactor(altitude, pressure)
	fr := RelativeHumidityAdjustmentFactor(temperature, pressure, a.humidity)
	return fa * (1 + ft - fp) * fr
}

//ModifyBallisticCoefficient returns the ballistic coefficient under these conditions
func (a Atmosphere) ModifyBallisticCoefficient(bc float64) float64 {
	return bc * a.BallisticCoefficientFactor()
}

//AltitudeAdjustmentFactor corrects the ballistic coefficient for the altitude (feet)
func AltitudeAdjustmentFactor(altitudeFeet float64) float64 {
	fa := -4e-15*math.Pow(altitudeFeet, 3) + 4e-10*math.Pow(altitudeFeet, 2) - 3e-5*altitudeFeet + 1
	return 1 / fa
}

//TemperatureAdjustmentFactor corrects for the difference between the temperature (°F)
//and the standard temperature at the altitude (feet)
func TemperatureAdjustmentFactor(altitudeFeet, temperatureFahrenheit float64) float64 {
	standard := -0.0036*altitudeFeet + cStandardTemperature
	return (temperatureFahrenheit - standard) / (459.6 + standard)
}

//BarometricPressureAdjustmentFactor corrects for the difference from the standard pressure.
//
//The pressure (inHg) is the station pressure corrected to the sea level, so the altitude
//does not take part in the correction.
func BarometricPressureAdjustmentFactor(altitudeFeet, pressureInHg float64) float64 {
	return (pressureInHg - cCorrectionStandardPressure) / cCorrectionStandardPressure
}

//RelativeHumidityAdjustmentFactor corrects for the water vapor pressure,
//humidity is set as 0..1 coefficient
func RelativeHumidityAdjustmentFactor(temperatureFahrenheit, pressureInHg, humidity float64) float64 {
	vpw := 4e-6*math.Pow(temperatureFahrenheit, 3) - 0.0004*math.Pow(temperatureFahrenheit, 2) +
		0.0234*temperatureFahrenheit - 0.2517
	return 0.995 * (pressureInHg / (pressureInHg - 0.3783*humidity*vpw))
}
