package bignum

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned when a divisor, or the squared magnitude of a complex divisor, is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrZeroRealPart is returned by [ComplexEvaluator.ToPolar] when the angle
// would be derived from a ratio with a zero real part.
var ErrZeroRealPart = fmt.Errorf("%w: zero real part", ErrDivisionByZero)
