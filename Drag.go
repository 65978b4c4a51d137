package go_ingalls

import (
	"fmt"
	"math"
)

//Standard drag functions. G1 is the Ingalls projectile.
const (
	DragTableG1 byte = 1
	DragTableG2 byte = 2
	DragTableG5 byte = 3
	DragTableG6 byte = 4
	DragTableG7 byte = 5
	DragTableG8 byte = 6
	DragTableGL byte = 7
	DragTableGI byte = 8
)

//converts the drag coefficient into the retardation factor of a projectile with BC=1
const cDragScale float64 = 2.08551e-04

//panels integrated by Simpson's rule between two table rows
const cSimpsonIntervals int = 40

type dragFunction func(float64) float64

//BallisticCoefficient is a measure of the projectile ability
//to overcome air resistance in flight.
//
//In small arms ballistics BC is expressed vs a standard projectile.
//Different drag tables use different standard projectiles, for example G1 uses
//flat based 2 caliber length with a 2 caliber ogive. The Ingalls retardation
//table is built on G1.
type BallisticCoefficient struct {
	value float64
	table byte
	drag  dragFunction
}

func dragFunctionFactory(dragTable byte) dragFunction {
	switch dragTable {
	case DragTableG1:
		return g1.dragCoefficient
	case DragTableG2:
		return func(mach float64) float64 {
			switch {
			case mach > 2.5:
				return 0.4465610 + mach*(-0.0958548+mach*0.00799645)
			case mach > 1.2:
				return 0.7016110 + mach*(-0.3075100+mach*0.05192560)
			case mach > 1.0:
				return -1.105010 + mach*(2.77195000-mach*1.26667000)
			case mach > 0.9:
				return -2.240370 + mach*2.63867000
			case mach >= 0.7:
				return 0.9099690 + mach*(-1.9017100+mach*1.21524000)
			default:
				return 0.2302760 + mach*(0.000210564-mach*0.1275050)

			}
		}
	case DragTableG5:
		return func(mach float64) float64 {
			switch {
			case mach > 2.0:
				return 0.671388 + mach*(-0.185208+mach*0.0204508)
			case mach > 1.1:
				return 0.134374 + mach*(0.4378330-mach*0.1570190)
			case mach > 0.9:
				return -0.924258 + mach*1.24904
			case mach >= 0.6:
				return 0.654405 + mach*(-1.4275000+mach*0.998463)
			default:
				return 0.186386 + mach*(-0.0342136-mach*0.035691)
			}
		}
	case DragTableG6:
		return func(mach float64) float64 {
			switch {
			case mach > 2.0:
				return 0.746228 + mach*(-0.255926+mach*0.0291726)
			case mach > 1.1:
				return 0.513638 + mach*(-0.015269-mach*0.0331221)
			case mach > 0.9:
				return -0.908802 + mach*1.25814
			case mach >= 0.6:
				return 0.366723 + mach*(-0.458435+mach*0.337906)
			default:
				return 0.264481 + mach*(-0.157237+mach*0.117441)
			}
		}
	case DragTableG7:
		return g7.dragCoefficient
	case DragTableG8:
		return func(mach float64) float64 {
			switch {
			case mach > 1.1:
				return 0.639096 + mach*(-0.197471+mach*0.0216221)
			case mach >= 0.925:
				return -12.9053 + mach*(24.9181-mach*11.6191)
			default:
				return 0.210589 + mach*(-0.00184895+mach*0.00211107)
			}
		}
	case DragTableGI:
		return func(mach float64) float64 {
			switch {
			case mach > 1.65:
				return 0.845362 + mach*(-0.143989+mach*0.0113272)
			case mach > 1.2:
				return 0.630556 + mach*0.00701308
			case mach >= 0.7:
				return 0.531976 + mach*(-1.28079+mach*1.17628)
			default:
				return 0.2282
			}
		}
	case DragTableGL:
		return func(mach float64) float64 {
			switch {
			case mach > 1.0:
				return 0.286629 + mach*(0.3588930-mach*0.0610598)
			case mach >= 0.8:
				return 1.59969 + mach*(-3.9465500+mach*2.831370)
			default:
				return 0.333118 + mach*(-0.498448+mach*0.474774)
			}
		}
	default:
		return nil
	}
}

//CreateBallisticCoefficient creates a ballistic coefficient for one of DragTable* drag functions
func CreateBallisticCoefficient(value float64, dragTable byte) (BallisticCoefficient, error) {
	if dragTable < DragTableG1 || dragTable > DragTableGI {
		return BallisticCoefficient{}, fmt.Errorf("BallisticCoefficient: unknown drag table %d: %w", dragTable, ErrDegenerateInput)
	}
	if value <= 0 {
		return BallisticCoefficient{}, fmt.Errorf("BallisticCoefficient: coefficient %g must be greater than zero: %w", value, ErrDegenerateInput)
	}
	return BallisticCoefficient{
		value: value,
		table: dragTable,
		drag:  dragFunctionFactory(dragTable),
	}, nil
}

func (v BallisticCoefficient) Value() float64 {
	return v.value
}

func (v BallisticCoefficient) Table() byte {
	return v.table
}

//DragCoefficient returns the drag coefficient of the standard projectile at the Mach number specified
func (v BallisticCoefficient) DragCoefficient(mach float64) float64 {
	return v.drag(mach)
}

//Retardation returns the deceleration (feet per second squared) of the projectile
//flying at the velocity specified (feet per second) in the atmosphere specified
func (v BallisticCoefficient) Retardation(velocity float64, atmosphere Atmosphere) float64 {
	return atmosphere.densityFactor() * velocity * velocity * v.drag(velocity/atmosphere.machFPS) * cDragScale / v.value
}

//CreateRetardationTableFromDrag builds a retardation table for the standard projectile
//of the drag function specified by integrating its deceleration from maxVelocity
//down to minVelocity in steps of step feet per second:
//
//	space = ∫ v/r(v) dv, time = ∫ 1/r(v) dv
//
//The packaged Ingalls table is the G1 table for the ICAO atmosphere at sea level.
func CreateRetardationTableFromDrag(dragTable byte, atmosphere Atmosphere, maxVelocity, minVelocity, step float64) (*RetardationTable, error) {
	bc, err := CreateBallisticCoefficient(1, dragTable)
	if err != nil {
		return nil, err
	}
	if !(step > 0) || !(minVelocity > 0) || !(maxVelocity > minVelocity) {
		return nil, fmt.Errorf("RetardationTable: cannot build table from %g to %g ft/s with step %g: %w",
			maxVelocity, minVelocity, step, ErrDegenerateInput)
	}

	var nonPositive bool
	retardation := func(u float64) float64 {
		r := bc.Retardation(u, atmosphere)
		if !(r > 0) {
			nonPositive = true
			return 1
		}
		return r
	}

	count := int(math.Round((maxVelocity-minVelocity)/step)) + 1
	velocity := make([]float64, count)
	space := make([]float64, count)
	time := make([]float64, count)
	velocity[0] = maxVelocity
	for i := 1; i < count; i++ {
		velocity[i] = maxVelocity - float64(i)*step
		space[i] = space[i-1] + simpson(velocity[i], velocity[i-1], func(u float64) float64 { return u / retardation(u) })
		time[i] = time[i-1] + simpson(velocity[i], velocity[i-1], func(u float64) float64 { return 1 / retardation(u) })
	}
	if nonPositive {
		return nil, fmt.Errorf("RetardationTable: drag table %d has no retardation between %g and %g ft/s: %w",
			dragTable, minVelocity, maxVelocity, ErrDegenerateInput)
	}
	return CreateRetardationTable(velocity, space, time)
}

func simpson(a, b float64, f func(float64) float64) float64 {
	h := (b - a) / float64(cSimpsonIntervals)
	sum := f(a) + f(b)
	for k := 1; k < cSimpsonIntervals; k++ {
		if k%2 == 1 {
			sum += 4 * f(a+float64(k)*h)
		} else {
			sum += 2 * f(a+float64(k)*h)
		}
	}
	return sum * h / 3
}

type dragPoint struct {
	mach, cd float64
}

type curvePoint struct {
	a, b, c float64
}

//dragCurve is a tabulated drag function smoothed by 2nd degree
//polynomials on each three adjacent points
type dragCurve struct {
	points []dragPoint
	curve  []curvePoint
}

var g1 = newDragCurve([]dragPoint{
	{0.00, 0.2629}, {0.05, 0.2558}, {0.10, 0.2487}, {0.15, 0.2413},
	{0.20, 0.2344}, {0.25, 0.2278}, {0.30, 0.2214}, {0.35, 0.2155},
	{0.40, 0.2104}, {0.45, 0.2061}, {0.50, 0.2032}, {0.55, 0.2020},
	{0.60, 0.2034}, {0.70, 0.2165}, {0.725, 0.2230}, {0.75, 0.2313},
	{0.775, 0.2417}, {0.80, 0.2546}, {0.825, 0.2706}, {0.85, 0.2901},
	{0.875, 0.3136}, {0.90, 0.3415}, {0.925, 0.3734}, {0.95, 0.4084},
	{0.975, 0.4448}, {1.0, 0.4805}, {1.025, 0.5136}, {1.05, 0.5427},
	{1.075, 0.5677}, {1.10, 0.5883}, {1.125, 0.6053}, {1.15, 0.6191},
	{1.20, 0.6393}, {1.25, 0.6518}, {1.30, 0.6589}, {1.35, 0.6621},
	{1.40, 0.6625}, {1.45, 0.6607}, {1.50, 0.6573}, {1.55, 0.6528},
	{1.60, 0.6474}, {1.65, 0.6413}, {1.70, 0.6347}, {1.75, 0.6280},
	{1.80, 0.6210}, {1.85, 0.6141}, {1.90, 0.6072}, {1.95, 0.6003},
	{2.00, 0.5934}, {2.05, 0.5867}, {2.10, 0.5804}, {2.15, 0.5743},
	{2.20, 0.5685}, {2.25, 0.5630}, {2.30, 0.5577}, {2.35, 0.5527},
	{2.40, 0.5481}, {2.45, 0.5438}, {2.50, 0.5397}, {2.60, 0.5325},
	{2.70, 0.5264}, {2.80, 0.5211}, {2.90, 0.5168}, {3.00, 0.5133},
	{3.10, 0.5105}, {3.20, 0.5084}, {3.30, 0.5067}, {3.40, 0.5054},
	{3.50, 0.5040}, {3.60, 0.5030}, {3.70, 0.5022}, {3.80, 0.5016},
	{3.90, 0.5010}, {4.00, 0.5006}, {4.20, 0.4998}, {4.40, 0.4995},
	{4.60, 0.4992}, {4.80, 0.4990}, {5.00, 0.4988},
})

var g7 = newDragCurve([]dragPoint{
	{0.00, 0.1198}, {0.05, 0.1197}, {0.10, 0.1196}, {0.15, 0.1194},
	{0.20, 0.1193}, {0.25, 0.1194}, {0.30, 0.1194}, {0.35, 0.1194},
	{0.40, 0.1193}, {0.45, 0.1193}, {0.50, 0.1194}, {0.55, 0.1193},
	{0.60, 0.1194}, {0.65, 0.1197}, {0.70, 0.1202}, {0.725, 0.1207},
	{0.75, 0.1215}, {0.775, 0.1226}, {0.80, 0.1242}, {0.825, 0.1266},
	{0.85, 0.1306}, {0.875, 0.1368}, {0.90, 0.1464}, {0.925, 0.1660},
	{0.95, 0.2054}, {0.975, 0.2993}, {1.0, 0.3803}, {1.025, 0.4015},
	{1.05, 0.4043}, {1.075, 0.4034}, {1.10, 0.4014}, {1.125, 0.3987},
	{1.15, 0.3955}, {1.20, 0.3884}, {1.25, 0.3810}, {1.30, 0.3732},
	{1.35, 0.3657}, {1.40, 0.3580}, {1.50, 0.3440}, {1.55, 0.3376},
	{1.60, 0.3315}, {1.65, 0.3260}, {1.70, 0.3209}, {1.75, 0.3160},
	{1.80, 0.3117}, {1.85, 0.3078}, {1.90, 0.3042}, {1.95, 0.3010},
	{2.00, 0.2980}, {2.05, 0.2951}, {2.10, 0.2922}, {2.15, 0.2892},
	{2.20, 0.2864}, {2.25, 0.2835}, {2.30, 0.2807}, {2.35, 0.2779},
	{2.40, 0.2752}, {2.45, 0.2725}, {2.50, 0.2697}, {2.55, 0.2670},
	{2.60, 0.2643}, {2.65, 0.2615}, {2.70, 0.2588}, {2.75, 0.2561},
	{2.80, 0.2533}, {2.85, 0.2506}, {2.90, 0.2479}, {2.95, 0.2451},
	{3.00, 0.2424}, {3.10, 0.2368}, {3.20, 0.2313}, {3.30, 0.2258},
	{3.40, 0.2205}, {3.50, 0.2154}, {3.60, 0.2106}, {3.70, 0.2060},
	{3.80, 0.2017}, {3.90, 0.1975}, {4.00, 0.1935}, {4.20, 0.1861},
	{4.40, 0.1793}, {4.60, 0.1730}, {4.80, 0.1672}, {5.00, 0.1618},
})

func newDragCurve(points []dragPoint) dragCurve {
	numPoints := len(points)
	curve := make([]curvePoint, numPoints)

	rate := (points[1].cd - points[0].cd) / (points[1].mach - points[0].mach)
	curve[0] = curvePoint{a: 0, b: rate, c: points[0].cd - points[0].mach*rate}

	for i := 1; i < numPoints-1; i++ {
		x1, x2, x3 := points[i-1].mach, points[i].mach, points[i+1].mach
		y1, y2, y3 := points[i-1].cd, points[i].cd, points[i+1].cd
		a := ((y3-y1)*(x2-x1) - (y2-y1)*(x3-x1)) / ((x3*x3-x1*x1)*(x2-x1) - (x2*x2-x1*x1)*(x3-x1))
		b := (y2 - y1 - a*(x2*x2-x1*x1)) / (x2 - x1)
		curve[i] = curvePoint{a: a, b: b, c: y1 - (a*x1*x1 + b*x1)}
	}

	rate = (points[numPoints-1].cd - points[numPoints-2].cd) / (points[numPoints-1].mach - points[numPoints-2].mach)
	curve[numPoints-1] = curvePoint{a: 0, b: rate, c: points[numPoints-1].cd - points[numPoints-2].mach*rate}
	return dragCurve{points: points, curve: curve}
}

func (d dragCurve) dragCoefficient(mach float64) float64 {
	mlo, mhi := 0, len(d.curve)-2

	for mhi-mlo > 1 {
		mid := (mhi + mlo) / 2
		if d.points[mid].mach < mach {
			mlo = mid
		} else {
			mhi = mid
		}
	}

	m := mhi
	if d.points[mhi].mach-mach > mach-d.points[mlo].mach {
		m = mlo
	}
	return d.curve[m].c + mach*(d.curve[m].b+d.curve[m].a*mach)
}
