package bignum

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/tuneinsight/polyroots/utils"
)

// calculator chains decimal operations on a context and records the first error.
// Once an error is recorded, every subsequent operation is skipped and returns 0.
type calculator struct {
	ctx *apd.Context
	err error
}

// Err returns the first error encountered, if any.
func (c *calculator) Err() error {
	return c.err
}

func (c *calculator) fail(err error) Scalar {
	if c.err == nil {
		c.err = err
	}
	return Scalar{}
}

func (c *calculator) do(op func(d *apd.Decimal) (apd.Condition, error)) Scalar {
	if c.err != nil {
		return Scalar{}
	}
	d := new(apd.Decimal)
	if _, err := op(d); err != nil {
		return c.fail(err)
	}
	return Scalar{d}
}

func (c *calculator) add(x, y Scalar) Scalar {
	return c.do(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.Add(d, x.dec(), y.dec()) })
}

func (c *calculator) sub(x, y Scalar) Scalar {
	return c.do(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.Sub(d, x.dec(), y.dec()) })
}

func (c *calculator) mul(x, y Scalar) Scalar {
	return c.do(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.Mul(d, x.dec(), y.dec()) })
}

func (c *calculator) quo(x, y Scalar) Scalar {
	if y.IsZero() {
		return c.fail(ErrDivisionByZero)
	}
	return c.do(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.Quo(d, x.dec(), y.dec()) })
}

// quoInteger returns the integer part of x/y, truncated toward zero.
func (c *calculator) quoInteger(x, y Scalar) Scalar {
	if y.IsZero() {
		return c.fail(ErrDivisionByZero)
	}
	return c.do(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.QuoInteger(d, x.dec(), y.dec()) })
}

func (c *calculator) sqrt(x Scalar) Scalar {
	if x.Sign() < 0 {
		return c.fail(fmt.Errorf("square root of negative number %s", x))
	}
	return c.do(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.Sqrt(d, x.dec()) })
}

func (c *calculator) exp(x Scalar) Scalar {
	return c.do(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.Exp(d, x.dec()) })
}

// round rounds x to the working precision.
func (c *calculator) round(x Scalar) Scalar {
	return c.do(func(d *apd.Decimal) (apd.Condition, error) { return c.ctx.Round(d, x.dec()) })
}

// roundTo rounds x to the given number of fractional digits.
func (c *calculator) roundTo(x Scalar, digits uint32) Scalar {
	// Quantize fails if the rounded coefficient does not fit in the context precision.
	xd := x.dec()
	intDigits := xd.NumDigits() + int64(xd.Exponent)
	prec := utils.Max(int64(c.ctx.Precision), intDigits+int64(digits)+1)
	ctx := c.ctx.WithPrecision(uint32(prec))
	return c.do(func(d *apd.Decimal) (apd.Condition, error) { return ctx.Quantize(d, xd, -int32(digits)) })
}
