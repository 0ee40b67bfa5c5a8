package bignum

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Scalar is an immutable arbitrary precision decimal.
// The zero value is 0. Operations never modify their operands,
// every result is a new Scalar.
type Scalar struct {
	d *apd.Decimal
}

var decimalZero = apd.New(0, 0)

// NewScalar creates a new Scalar from x.
// Valid types for x are: int, int64, uint, uint64, float64, string, *apd.Decimal, *big.Int or *big.Float.
// float64 values are converted through their shortest decimal representation. NewScalar panics if x is an invalid
// decimal literal or is of an unsupported type; use [ParseScalar] for untrusted input.
func NewScalar(x interface{}) (s Scalar) {

	d := new(apd.Decimal)

	switch x := x.(type) {
	case nil:
	case int:
		d.SetInt64(int64(x))
	case int64:
		d.SetInt64(x)
	case uint:
		d.Coeff.SetUint64(uint64(x))
	case uint64:
		d.Coeff.SetUint64(x)
	case float64:
		if _, err := d.SetFloat64(x); err != nil {
			panic(fmt.Errorf("cannot NewScalar: %w", err))
		}
	case string:
		var err error
		if s, err = ParseScalar(x); err != nil {
			panic(err)
		}
		return
	case *apd.Decimal:
		d.Set(x)
	case *big.Int:
		d.Coeff.SetMathBigInt(x)
		d.Negative = x.Sign() < 0
		d.Coeff.Abs(&d.Coeff)
	case *big.Float:
		return NewScalar(x.Text('e', -1))
	case Scalar:
		return x
	default:
		panic(fmt.Errorf("cannot NewScalar: invalid x.(type): valid types are int, int64, uint, uint64, float64, string, *apd.Decimal, *big.Int, *big.Float or Scalar but is %T", x))
	}

	if d.Form != apd.Finite {
		panic(fmt.Errorf("cannot NewScalar: %s is not finite", d.String()))
	}

	return Scalar{d}
}

// ParseScalar parses a decimal literal such as "-12.5", "1e-3" or "0.333".
func ParseScalar(str string) (Scalar, error) {
	d, _, err := apd.NewFromString(str)
	if err != nil {
		return Scalar{}, fmt.Errorf("cannot ParseScalar: %w", err)
	}
	if d.Form != apd.Finite {
		return Scalar{}, fmt.Errorf("cannot ParseScalar: %q is not finite", str)
	}
	return Scalar{d}, nil
}

func (s Scalar) dec() *apd.Decimal {
	if s.d == nil {
		return decimalZero
	}
	return s.d
}

// Decimal returns a copy of the underlying decimal.
func (s Scalar) Decimal() *apd.Decimal {
	return new(apd.Decimal).Set(s.dec())
}

// Sign returns -1 if s < 0, 0 if s == 0 and +1 if s > 0.
func (s Scalar) Sign() int {
	return s.dec().Sign()
}

// IsZero returns true if s == 0.
func (s Scalar) IsZero() bool {
	return s.dec().IsZero()
}

// Cmp compares s and x and returns -1 if s < x, 0 if s == x and +1 if s > x.
func (s Scalar) Cmp(x Scalar) int {
	return s.dec().Cmp(x.dec())
}

// Equal returns true if s and x represent the same number, regardless of their exponents.
func (s Scalar) Equal(x Scalar) bool {
	return s.Cmp(x) == 0
}

// Neg returns -s. The operation is exact.
func (s Scalar) Neg() Scalar {
	return Scalar{new(apd.Decimal).Neg(s.dec())}
}

// Abs returns |s|. The operation is exact.
func (s Scalar) Abs() Scalar {
	return Scalar{new(apd.Decimal).Abs(s.dec())}
}

// Float64 returns the closest float64 to s, ±Inf if |s| overflows a float64.
func (s Scalar) Float64() float64 {
	f, _ := s.dec().Float64()
	return f
}

// BigFloat returns s as a *big.Float with prec bits of precision.
func (s Scalar) BigFloat(prec uint) *big.Float {
	f, _, err := new(big.Float).SetPrec(prec).Parse(s.String(), 10)
	// sanity check, apd always outputs a valid literal
	if err != nil {
		panic(fmt.Errorf("cannot BigFloat: %w", err))
	}
	return f
}

// String returns the decimal representation of s, using scientific notation
// only when the exponent is large.
func (s Scalar) String() string {
	return s.dec().String()
}

// Text formats s according to format (see [apd.Decimal.Text]).
func (s Scalar) Text(format byte) string {
	return s.dec().Text(format)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Scalar) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Scalar) UnmarshalText(b []byte) (err error) {
	*s, err = ParseScalar(string(b))
	return
}
