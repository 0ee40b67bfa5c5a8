// Package bignum implements arbitrary precision decimal arithmetic for real and complex numbers,
// with series evaluation of the trigonometric functions.
package bignum

// Evaluator performs arithmetic, rounding and series evaluation on [Scalar]
// values under a fixed precision policy. It holds no mutable state and is safe
// for concurrent use.
type Evaluator struct {
	params Parameters
}

// NewEvaluator creates a new Evaluator from the given parameters.
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{params: params}
}

// Parameters returns the precision policy of the evaluator.
func (eval *Evaluator) Parameters() Parameters {
	return eval.params
}

func (eval *Evaluator) calculator() *calculator {
	return eval.params.calculator()
}

// Add returns a + b.
func (eval *Evaluator) Add(a, b Scalar) (Scalar, error) {
	c := eval.calculator()
	r := c.add(a, b)
	return r, c.Err()
}

// Sub returns a - b.
func (eval *Evaluator) Sub(a, b Scalar) (Scalar, error) {
	c := eval.calculator()
	r := c.sub(a, b)
	return r, c.Err()
}

// Mul returns a * b.
func (eval *Evaluator) Mul(a, b Scalar) (Scalar, error) {
	c := eval.calculator()
	r := c.mul(a, b)
	return r, c.Err()
}

// Quo returns a / b, or [ErrDivisionByZero] if b = 0.
func (eval *Evaluator) Quo(a, b Scalar) (Scalar, error) {
	c := eval.calculator()
	r := c.quo(a, b)
	return r, c.Err()
}

// Sqrt returns the square root of a. Negative inputs return an error.
func (eval *Evaluator) Sqrt(a Scalar) (Scalar, error) {
	c := eval.calculator()
	r := c.sqrt(a)
	return r, c.Err()
}

// Exp returns e^a.
func (eval *Evaluator) Exp(a Scalar) (Scalar, error) {
	c := eval.calculator()
	r := c.exp(a)
	return r, c.Err()
}

// Round returns a rounded to [Parameters.RoundingDigits] fractional digits.
func (eval *Evaluator) Round(a Scalar) (Scalar, error) {
	return eval.RoundTo(a, eval.params.roundingDigits)
}

// RoundTo returns a rounded to the given number of fractional digits,
// using the rounding mode of the parameters.
func (eval *Evaluator) RoundTo(a Scalar, digits uint32) (Scalar, error) {
	c := eval.calculator()
	r := c.roundTo(a, digits)
	return r, c.Err()
}
