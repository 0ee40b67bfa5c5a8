package bignum

import (
	"fmt"

	"github.com/tuneinsight/polyroots/utils"
)

// NormalizeAngle returns angle - k*2*Pi, where k is the quotient angle/(2*Pi) truncated toward zero.
// The result lies in (-2*Pi, 2*Pi) and has the sign of angle.
func (eval *Evaluator) NormalizeAngle(angle Scalar) (Scalar, error) {
	c := eval.calculator()
	r := c.normalizeAngle(eval.params, angle)
	return r, c.Err()
}

// Cos returns cos(angle) evaluated with [Parameters.SeriesTerms] terms of its Taylor series.
func (eval *Evaluator) Cos(angle Scalar) (Scalar, error) {
	return eval.CosSeries(angle, eval.params.seriesTerms)
}

// Sin returns sin(angle) evaluated with [Parameters.SeriesTerms] terms of its Taylor series.
func (eval *Evaluator) Sin(angle Scalar) (Scalar, error) {
	return eval.SinSeries(angle, eval.params.seriesTerms)
}

// CosSeries returns sum_{k=0}^{terms-1} (-1)^k x^(2k)/(2k)! where x is the normalized angle.
// Once |x| < 1, the summation stops at the first term that cannot change the sum at the working precision.
func (eval *Evaluator) CosSeries(angle Scalar, terms int) (Scalar, error) {
	c := eval.calculator()
	r := c.cos(eval.params, angle, terms)
	return r, c.Err()
}

// SinSeries returns sum_{k=0}^{terms-1} (-1)^k x^(2k+1)/(2k+1)! where x is the normalized angle.
// Once |x| < 1, the summation stops at the first term that cannot change the sum at the working precision.
func (eval *Evaluator) SinSeries(angle Scalar, terms int) (Scalar, error) {
	c := eval.calculator()
	r := c.sin(eval.params, angle, terms)
	return r, c.Err()
}

// Atan returns arctan(x). The Taylor series, truncated to [Parameters.ArctanTerms] terms,
// is only evaluated for |x| < 1, other inputs are reduced as follows:
//
//	x =  1: Pi/4
//	x = -1: -Pi/4
//	x < -1: -Pi/2 - arctan(1/x)
//	x >  1:  Pi/2 - arctan(1/x)
//
// The series converges slowly when |x| approaches 1 and stops early once its terms fall below
// the working precision.
func (eval *Evaluator) Atan(x Scalar) (Scalar, error) {
	c := eval.calculator()
	r := c.atan(eval.params, x)
	return r, c.Err()
}

func (c *calculator) normalizeAngle(params Parameters, angle Scalar) Scalar {

	if c.err != nil || angle.Abs().Cmp(params.twoPi) < 0 {
		return angle
	}

	// The quotient has up to adjusted(angle)+1 digits, which may exceed the working precision.
	prec := utils.Max(int64(c.ctx.Precision), adjusted(angle)+1) + int64(c.ctx.Precision)
	wide := &calculator{ctx: c.ctx.WithPrecision(uint32(prec))}

	k := wide.quoInteger(angle, params.twoPi)
	r := wide.sub(angle, wide.mul(k, params.twoPi))

	if err := wide.Err(); err != nil {
		return c.fail(err)
	}

	return c.round(r)
}

// adjusted returns the exponent of the most significant digit of x.
func adjusted(x Scalar) int64 {
	d := x.dec()
	return d.NumDigits() + int64(d.Exponent) - 1
}

// negligible reports whether |x|^n / m, for any m >= 1, is too small to change sum at the working precision.
// It only holds for |x| < 1, so later terms of a series in x are negligible as well.
func (c *calculator) negligible(x Scalar, n uint64, sum Scalar) bool {
	if sum.IsZero() || x.IsZero() {
		return false
	}
	// |x|^n < 10^(n*(adjusted(x)+1))
	return int64(n)*(adjusted(x)+1) < adjusted(sum)-int64(c.ctx.Precision)-1
}

func (c *calculator) cos(params Parameters, angle Scalar, terms int) (sum Scalar) {

	if terms < 1 {
		return c.fail(fmt.Errorf("invalid number of series terms: %d", terms))
	}

	x := c.normalizeAngle(params, angle)
	factorial := NewScalar(1)

	for k := 0; k < terms; k++ {

		n := uint64(2 * k)

		if c.negligible(x, n, sum) {
			break
		}

		// n! = n * (n-1) * (n-2)!
		if k != 0 {
			factorial = c.mul(factorial, NewScalar(n*(n-1)))
		}

		term := c.quo(c.pow(x, n), factorial)

		if k&1 == 1 {
			sum = c.sub(sum, term)
		} else {
			sum = c.add(sum, term)
		}
	}

	return
}

func (c *calculator) sin(params Parameters, angle Scalar, terms int) (sum Scalar) {

	if terms < 1 {
		return c.fail(fmt.Errorf("invalid number of series terms: %d", terms))
	}

	x := c.normalizeAngle(params, angle)
	factorial := NewScalar(1)

	for k := 0; k < terms; k++ {

		n := uint64(2*k + 1)

		if c.negligible(x, n, sum) {
			break
		}

		// n! = n * (n-1) * (n-2)!
		if k != 0 {
			factorial = c.mul(factorial, NewScalar(n*(n-1)))
		}

		term := c.quo(c.pow(x, n), factorial)

		if k&1 == 1 {
			sum = c.sub(sum, term)
		} else {
			sum = c.add(sum, term)
		}
	}

	return
}

func (c *calculator) atan(params Parameters, x Scalar) (sum Scalar) {

	one := NewScalar(1)

	switch cmp := x.Abs().Cmp(one); {
	case cmp < 0:

		for k := 1; k <= params.arctanTerms; k++ {

			n := uint64(2*k - 1)

			if c.negligible(x, n, sum) {
				break
			}

			term := c.quo(c.pow(x, n), NewScalar(n))

			if k&1 == 0 {
				sum = c.sub(sum, term)
			} else {
				sum = c.add(sum, term)
			}
		}

		return

	case cmp == 0 && x.Sign() > 0:
		return params.quarterPi

	case cmp == 0:
		return params.quarterPi.Neg()
	}

	// |1/x| <= 1 so the recursion depth is at most one.
	inv := c.quo(one, x)

	if c.Err() != nil {
		return Scalar{}
	}

	if x.Sign() < 0 {
		return c.sub(params.halfPi.Neg(), c.atan(params, inv))
	}

	return c.sub(params.halfPi, c.atan(params, inv))
}
