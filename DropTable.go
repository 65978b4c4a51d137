package go_ingalls

import (
	"fmt"
	"math"
)

//inches per second squared, indexed by the percentage of the muzzle velocity left
var standardDropCoefficients = [cDropTableSize]float64{
	105.02, 105.02, 105.02, 105.02, 108.45, 111.66, 114.66, 117.43, 119.99, 122.36, //0
	124.53, 126.52, 128.34, 129.99, 131.48, 132.82, 134.01, 135.06, 135.96, 136.73, //10
	137.37, 137.88, 138.27, 138.55, 138.73, 138.82, 138.84, 138.81, 138.77, 138.73, //20
	138.75, 138.84, 139.06, 139.41, 139.93, 140.59, 141.4, 142.31, 143.3, 144.33, //30
	145.37, 146.41, 147.45, 148.47, 149.48, 150.47, 151.45, 152.42, 153.37, 154.31, //40
	155.24, 156.16, 157.07, 157.97, 158.86, 159.75, 160.62, 161.48, 162.34, 163.18, //50
	164.02, 164.85, 165.68, 166.49, 167.3, 168.11, 168.9, 169.69, 170.48, 171.26, //60
	172.03, 172.79, 173.55, 174.31, 175.06, 175.8, 176.54, 177.28, 178.0, 178.73, //70
	179.45, 180.16, 180.87, 181.58, 182.28, 182.98, 183.67, 184.36, 185.04, 185.72, //80
	186.4, 187.07, 187.73, 188.39, 189.04, 189.68, 190.31, 190.91, 191.46, 191.81, //90
	193.06, //100
}

const cDropTableSize = 101

//DropTable keeps the drop coefficients: the drop in inches of a projectile after
//one second of flight, indexed by the remaining velocity in percents of the muzzle velocity.
//
//At the muzzle the coefficient equals g/2 and decreases as the projectile slows down
//because the drag also retards the vertical motion.
type DropTable struct {
	coefficients [cDropTableSize]float64
}

//StandardDropTable returns the drop coefficients computed for the G1 projectile
func StandardDropTable() *DropTable {
	return &DropTable{coefficients: standardDropCoefficients}
}

//CreateDropTable creates a drop table from 101 positive coefficients
func CreateDropTable(coefficients []float64) (*DropTable, error) {
	if len(coefficients) != cDropTableSize {
		return nil, fmt.Errorf("DropTable: %d coefficients instead of %d: %w", len(coefficients), cDropTableSize, ErrInvalidTable)
	}
	t := &DropTable{}
	for i, c := range coefficients {
		if !(c > 0) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("DropTable: coefficient %d is %g: %w", i, c, ErrInvalidTable)
		}
		t.coefficients[i] = c
	}
	return t, nil
}

//Coefficient returns the drop coefficient for the projectile slowed down from
//muzzleVelocity to velocity (feet per second)
func (t *DropTable) Coefficient(muzzleVelocity, velocity float64) (float64, error) {
	if !(muzzleVelocity > 0) {
		return 0, fmt.Errorf("DropTable: muzzle velocity %g: %w", muzzleVelocity, ErrDegenerateInput)
	}
	ratio := math.Floor(velocity/muzzleVelocity*100 + 0.5)
	if math.IsNaN(ratio) || velocity < 0 || velocity > muzzleVelocity {
		return 0, fmt.Errorf("DropTable: velocity %g is %g%% of muzzle velocity %g: %w",
			velocity, ratio, muzzleVelocity, ErrOutOfRange)
	}
	return t.coefficients[int(ratio)], nil
}
