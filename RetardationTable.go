package go_ingalls

import (
	"fmt"
	"math"
	"sort"
)

//RetardationRow is one entry of a retardation table
type RetardationRow struct {
	Velocity float64 //feet per second
	Space    float64 //feet travelled by the standard projectile since the first row
	Time     float64 //seconds elapsed since the first row
}

//RetardationTable is the standard projectile table (e.g. Ingalls) used to derive
//range, time and remaining velocity of a real projectile by scaling with its
//ballistic coefficient.
//
//Rows are ordered from the fastest to the slowest velocity. Space and time grow
//along the same order. The table is immutable once created and may be shared
//between goroutines.
type RetardationTable struct {
	rows []RetardationRow
}

//CreateRetardationTable creates a table from three parallel columns.
//
//The columns are copied. Velocity must strictly decrease and be positive, space and time
//must strictly increase, and at least two rows are required.
func CreateRetardationTable(velocity, space, time []float64) (*RetardationTable, error) {
	if len(velocity) != len(space) || len(velocity) != len(time) {
		return nil, fmt.Errorf("RetardationTable: columns have different lengths (%d, %d, %d): %w",
			len(velocity), len(space), len(time), ErrInvalidTable)
	}
	if len(velocity) < 2 {
		return nil, fmt.Errorf("RetardationTable: at least two rows are required: %w", ErrInvalidTable)
	}

	rows := make([]RetardationRow, len(velocity))
	for i := range velocity {
		row := RetardationRow{Velocity: velocity[i], Space: space[i], Time: time[i]}
		if !isFinite(row.Velocity) || !isFinite(row.Space) || !isFinite(row.Time) {
			return nil, fmt.Errorf("RetardationTable: row %d is not finite: %w", i, ErrInvalidTable)
		}
		if i > 0 {
			prev := rows[i-1]
			if row.Velocity >= prev.Velocity || row.Space <= prev.Space || row.Time <= prev.Time {
				return nil, fmt.Errorf("RetardationTable: row %d breaks the table order: %w", i, ErrInvalidTable)
			}
		}
		rows[i] = row
	}
	if rows[len(rows)-1].Velocity <= 0 {
		return nil, fmt.Errorf("RetardationTable: velocities must be positive: %w", ErrInvalidTable)
	}
	return &RetardationTable{rows: rows}, nil
}

//Len returns the number of rows
func (t *RetardationTable) Len() int {
	return len(t.rows)
}

//Row returns the i-th row, the fastest row is 0
func (t *RetardationTable) Row(i int) RetardationRow {
	return t.rows[i]
}

//MaximumVelocity returns the velocity of the first row
func (t *RetardationTable) MaximumVelocity() float64 {
	return t.rows[0].Velocity
}

//MinimumVelocity returns the velocity of the last row
func (t *RetardationTable) MinimumVelocity() float64 {
	return t.rows[len(t.rows)-1].Velocity
}

func rowSpace(r RetardationRow) float64 { return r.Space }
func rowTime(r RetardationRow) float64  { return r.Time }

//SpaceFromVelocity returns the space of the standard projectile at the velocity specified
func (t *RetardationTable) SpaceFromVelocity(velocity float64) (float64, error) {
	return t.fromVelocity(velocity, "space", rowSpace)
}

//TimeFromVelocity returns the time of the standard projectile at the velocity specified
func (t *RetardationTable) TimeFromVelocity(velocity float64) (float64, error) {
	return t.fromVelocity(velocity, "time", rowTime)
}

//VelocityFromSpace returns the velocity of the standard projectile at the space specified
func (t *RetardationTable) VelocityFromSpace(space float64) (float64, error) {
	return t.velocityFrom(space, "space", rowSpace)
}

//VelocityFromTime returns the velocity of the standard projectile at the time specified
func (t *RetardationTable) VelocityFromTime(time float64) (float64, error) {
	return t.velocityFrom(time, "time", rowTime)
}

//fromVelocity interpolates column between the first row not faster than velocity
//and the row before it
func (t *RetardationTable) fromVelocity(velocity float64, name string, column func(RetardationRow) float64) (float64, error) {
	if math.IsNaN(velocity) || velocity > t.MaximumVelocity() || velocity < t.MinimumVelocity() {
		return 0, fmt.Errorf("RetardationTable: %s for velocity %g outside [%g, %g]: %w",
			name, velocity, t.MinimumVelocity(), t.MaximumVelocity(), ErrOutOfRange)
	}

	i := sort.Search(len(t.rows), func(i int) bool { return t.rows[i].Velocity <= velocity })
	row := t.rows[i]
	if row.Velocity == velocity {
		return column(row), nil
	}

	prev := t.rows[i-1]
	span := prev.Velocity - row.Velocity
	if span == 0 {
		return 0, fmt.Errorf("RetardationTable: rows %d and %d have the same velocity: %w", i-1, i, ErrDegenerateInput)
	}
	percentage := (velocity - row.Velocity) / span
	return column(row) - percentage*(column(row)-column(prev)), nil
}

//velocityFrom is the inverse of fromVelocity: it finds the first row whose column
//value is not less than value and interpolates the velocity
func (t *RetardationTable) velocityFrom(value float64, name string, column func(RetardationRow) float64) (float64, error) {
	first, last := column(t.rows[0]), column(t.rows[len(t.rows)-1])
	if math.IsNaN(value) || value < first || value > last {
		return 0, fmt.Errorf("RetardationTable: velocity for %s %g outside [%g, %g]: %w",
			name, value, first, last, ErrOutOfRange)
	}

	i := sort.Search(len(t.rows), func(i int) bool { return column(t.rows[i]) >= value })
	row := t.rows[i]
	if column(row) == value {
		return row.Velocity, nil
	}

	prev := t.rows[i-1]
	span := column(row) - column(prev)
	if span == 0 {
		return 0, fmt.Errorf("RetardationTable: rows %d and %d have the same %s: %w", i-1, i, name, ErrDegenerateInput)
	}
	percentage := (column(row) - value) / span
	return row.Velocity + (prev.Velocity-row.Velocity)*percentage, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
