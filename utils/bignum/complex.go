package bignum

import (
	"fmt"
	"strings"
)

// Complex is a type for arbitrary precision complex number.
// Index 0 is the real part and index 1 the imaginary part.
// The zero value is 0 and operations never modify their operands.
type Complex [2]Scalar

// NewComplex creates a new arbitrary precision complex number re + i*im.
// Valid types for re and im are those accepted by [NewScalar].
func NewComplex(re, im interface{}) Complex {
	return Complex{NewScalar(re), NewScalar(im)}
}

// NewComplexFromScalars creates a new arbitrary precision complex number re + i*im.
func NewComplexFromScalars(re, im Scalar) Complex {
	return Complex{re, im}
}

// ToComplex takes a complex128, float64, int, int64, uint64, string, Scalar or Complex and returns a Complex.
// Strings are parsed with [ParseComplex] and ToComplex panics on invalid literals.
func ToComplex(value interface{}) Complex {
	switch value := value.(type) {
	case complex128:
		return NewComplex(real(value), imag(value))
	case float64, int, int64, uint64, Scalar:
		return Complex{NewScalar(value), Scalar{}}
	case string:
		c, err := ParseComplex(value)
		if err != nil {
			panic(err)
		}
		return c
	case Complex:
		return value
	default:
		panic(fmt.Errorf("invalid value.(type): must be int, int64, uint64, float64, complex128, string, Scalar or Complex but is %T", value))
	}
}

// ParseComplex parses a complex literal. Accepted forms are
// "a+bi", "a-bi", "bi", "i", "-i", "a", "(a b)" and "(a, b)",
// where a and b are decimal literals. The empty string parses as 0.
func ParseComplex(str string) (c Complex, err error) {

	re, im, ok := splitComplex(str)
	if !ok {
		return Complex{}, fmt.Errorf("cannot ParseComplex: invalid literal %q", str)
	}

	if c[0], err = ParseScalar(re); err != nil {
		return Complex{}, fmt.Errorf("cannot ParseComplex: invalid real part %q: %w", re, err)
	}

	if c[1], err = ParseScalar(im); err != nil {
		return Complex{}, fmt.Errorf("cannot ParseComplex: invalid imaginary part %q: %w", im, err)
	}

	return
}

// splitComplex splits a complex literal into its real and imaginary literals.
func splitComplex(in string) (re, im string, ok bool) {

	s := strings.TrimSpace(in)

	if s == "" {
		return "0", "0", true
	}

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		f := strings.Fields(strings.ReplaceAll(s[1:len(s)-1], ",", " "))
		switch len(f) {
		case 1:
			return f[0], "0", true
		case 2:
			return f[0], f[1], true
		default:
			return "", "", false
		}
	}

	s = strings.ReplaceAll(s, "I", "i")

	if !strings.HasSuffix(s, "i") {
		return s, "0", true
	}

	core := strings.TrimSpace(s[:len(s)-1])

	re = "0"
	if idx := lastSignNotInExponent(core); idx > 0 {
		re, core = strings.TrimSpace(core[:idx]), strings.Join(strings.Fields(core[idx:]), "")
	}

	switch core {
	case "", "+":
		im = "1"
	case "-":
		im = "-1"
	default:
		im = core
	}

	return re, im, true
}

// lastSignNotInExponent returns the index of the last '+' or '-' of s that
// is neither its first byte nor the sign of an exponent, or -1.
func lastSignNotInExponent(s string) int {
	for i := len(s) - 1; i > 0; i-- {
		if (s[i] == '+' || s[i] == '-') && s[i-1] != 'e' && s[i-1] != 'E' {
			return i
		}
	}
	return -1
}

// Real returns the real part.
func (c Complex) Real() Scalar {
	return c[0]
}

// Imag returns the imaginary part.
func (c Complex) Imag() Scalar {
	return c[1]
}

// IsReal returns true if the imaginary part is zero.
func (c Complex) IsReal() bool {
	return c[1].IsZero()
}

// IsZero returns true if both parts are zero.
func (c Complex) IsZero() bool {
	return c[0].IsZero() && c[1].IsZero()
}

// Complex128 returns the arbitrary precision complex number as a complex128
func (c Complex) Complex128() complex128 {
	return complex(c[0].Float64(), c[1].Float64())
}

// String returns c formatted as "a+bi" or "a-bi".
// The sign of a negative zero imaginary part is kept, so that [ParseComplex] restores c exactly.
func (c Complex) String() string {
	if c[1].dec().Negative {
		return c[0].String() + "-" + c[1].Abs().String() + "i"
	}
	return c[0].String() + "+" + c[1].String() + "i"
}

// MarshalText implements [encoding.TextMarshaler].
func (c Complex) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Complex) UnmarshalText(b []byte) (err error) {
	*c, err = ParseComplex(string(b))
	return
}

// ComplexEvaluator is a struct for the arithmetic of arbitrary precision complex numbers
// under the precision policy of its [Evaluator]. It is safe for concurrent use.
type ComplexEvaluator struct {
	*Evaluator
}

// NewComplexEvaluator creates a new ComplexEvaluator.
func NewComplexEvaluator(params Parameters) *ComplexEvaluator {
	return &ComplexEvaluator{Evaluator: NewEvaluator(params)}
}

// Add evaluates a + b.
func (eval *ComplexEvaluator) Add(a, b Complex) (Complex, error) {
	c := eval.calculator()
	r := c.cadd(a, b)
	return r, c.Err()
}

// Sub evaluates a - b.
func (eval *ComplexEvaluator) Sub(a, b Complex) (Complex, error) {
	c := eval.calculator()
	r := c.csub(a, b)
	return r, c.Err()
}

// Mul evaluates a * b.
func (eval *ComplexEvaluator) Mul(a, b Complex) (Complex, error) {
	c := eval.calculator()
	r := c.cmul(a, b)
	return r, c.Err()
}

// Quo evaluates a / b = a * conj(b) / (re(b)^2 + im(b)^2).
// It returns [ErrDivisionByZero] if b = 0.
func (eval *ComplexEvaluator) Quo(a, b Complex) (Complex, error) {
	c := eval.calculator()
	r := c.cquo(a, b)
	return r, c.Err()
}

// Neg returns -a. The operation is exact.
func (eval *ComplexEvaluator) Neg(a Complex) Complex {
	return Complex{a[0].Neg(), a[1].Neg()}
}

// Conj returns the conjugate of a. The operation is exact.
func (eval *ComplexEvaluator) Conj(a Complex) Complex {
	return Complex{a[0], a[1].Neg()}
}

// Abs returns the magnitude sqrt(re(a)^2 + im(a)^2).
func (eval *ComplexEvaluator) Abs(a Complex) (Scalar, error) {
	c := eval.calculator()
	r := c.cabs(a)
	return r, c.Err()
}

// PowInt returns a^n by repeated multiplication. a^0 = 1 for any a and
// negative exponents are evaluated as 1/a^|n|.
func (eval *ComplexEvaluator) PowInt(a Complex, n int) (Complex, error) {

	c := eval.calculator()

	r := Complex{NewScalar(1), Scalar{}}

	for i := 0; i < n || i < -n; i++ {
		r = c.cmul(r, a)
	}

	if n < 0 {
		r = c.cquo(Complex{NewScalar(1), Scalar{}}, r)
	}

	return r, c.Err()
}

// Round returns a with both components rounded to [Parameters.RoundingDigits] fractional digits.
func (eval *ComplexEvaluator) Round(a Complex) (Complex, error) {
	c := eval.calculator()
	r := c.cround(a, eval.params.roundingDigits)
	return r, c.Err()
}

// Equal returns true if a and b are equal once both components are rounded
// to [Parameters.RoundingDigits] fractional digits.
func (eval *ComplexEvaluator) Equal(a, b Complex) bool {
	c := eval.calculator()
	ar := c.cround(a, eval.params.roundingDigits)
	br := c.cround(b, eval.params.roundingDigits)
	return c.Err() == nil && ar[0].Equal(br[0]) && ar[1].Equal(br[1])
}

func (c *calculator) cadd(a, b Complex) Complex {
	return Complex{c.add(a[0], b[0]), c.add(a[1], b[1])}
}

func (c *calculator) csub(a, b Complex) Complex {
	return Complex{c.sub(a[0], b[0]), c.sub(a[1], b[1])}
}

func (c *calculator) cmul(a, b Complex) Complex {

	if a.IsReal() {
		if b.IsReal() {
			return Complex{c.mul(a[0], b[0]), Scalar{}}
		}
		return Complex{c.mul(a[0], b[0]), c.mul(a[0], b[1])}
	}

	if b.IsReal() {
		return Complex{c.mul(a[0], b[0]), c.mul(a[1], b[0])}
	}

	return Complex{
		c.sub(c.mul(a[0], b[0]), c.mul(a[1], b[1])),
		c.add(c.mul(a[0], b[1]), c.mul(a[1], b[0])),
	}
}

func (c *calculator) cquo(a, b Complex) Complex {

	if b.IsZero() {
		c.fail(ErrDivisionByZero)
		return Complex{}
	}

	if b.IsReal() {
		return Complex{c.quo(a[0], b[0]), c.quo(a[1], b[0])}
	}

	// re = (a[0] * b[0]) + (a[1] * b[1])
	// im = (a[1] * b[0]) - (a[0] * b[1])
	// den = (b[0] * b[0]) + (b[1] * b[1])
	re := c.add(c.mul(a[0], b[0]), c.mul(a[1], b[1]))
	im := c.sub(c.mul(a[1], b[0]), c.mul(a[0], b[1]))
	den := c.add(c.mul(b[0], b[0]), c.mul(b[1], b[1]))

	return Complex{c.quo(re, den), c.quo(im, den)}
}

func (c *calculator) cabs(a Complex) Scalar {
	if a.IsReal() {
		return a[0].Abs()
	}
	return c.sqrt(c.add(c.mul(a[0], a[0]), c.mul(a[1], a[1])))
}

func (c *calculator) cround(a Complex, digits uint32) Complex {
	return Complex{c.roundTo(a[0], digits), c.roundTo(a[1], digits)}
}
