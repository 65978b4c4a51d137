package go_ingalls

import "errors"

//ErrOutOfRange is returned when a velocity, space, time or velocity ratio
//falls outside the domain of the table it is looked up in
var ErrOutOfRange = errors.New("argument is out of the table range")

//ErrDegenerateInput is returned when an argument makes a formula divide by zero
//or is physically meaningless (e.g. a non-positive ballistic coefficient)
var ErrDegenerateInput = errors.New("degenerate input")

//ErrConvergence is returned when a bounded search runs out of iterations
//before its termination condition is met
var ErrConvergence = errors.New("search did not converge")

//ErrInvalidTable is returned when table data does not satisfy the ordering
//and size requirements
var ErrInvalidTable = errors.New("invalid table")
