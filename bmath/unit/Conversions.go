package unit

//DegreesToRadians converts an angle in degrees into radians
func DegreesToRadians(degrees float64) float64 {
	return MustCreateAngular(degrees, AngularDegree).In(AngularRadian)
}

//MilesPerHourToInchesPerSecond converts a wind or a target speed into inches per second
func MilesPerHourToInchesPerSecond(mph float64) float64 {
	return MustCreateVelocity(mph, VelocityMPH).In(VelocityFPS) * 12
}

//InchesToMinutesOfAngle returns the angle at which an offset of the given
//number of inches is seen from the given range in yards.
//
//The angle is exact (arctangent), not the 1.047 inch per 100 yards approximation.
func InchesToMinutesOfAngle(inches, rangeYards float64) float64 {
	return MustCreateAngular(inches/rangeYards*100, AngularInchesPer100Yd).In(AngularMOA)
}
