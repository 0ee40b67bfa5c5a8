package bignum

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/zeebo/blake3"
)

// Polynomial is a polynomial in the monomial basis with arbitrary precision complex coefficients.
// Coeffs[i] is the coefficient of x^i.
type Polynomial struct {
	Coeffs []Complex
}

// NewPolynomial creates a new polynomial from the given coefficients, constant term first.
// Allowed types are []Complex, []Scalar, []complex128, []float64, []int and []string (see [ParseComplex]).
// NewPolynomial panics on an unsupported type or an invalid literal.
func NewPolynomial(coeffs interface{}) Polynomial {

	var coefficients []Complex

	switch coeffs := coeffs.(type) {
	case []Complex:
		coefficients = make([]Complex, len(coeffs))
		copy(coefficients, coeffs)
	case []Scalar:
		coefficients = make([]Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = Complex{c, Scalar{}}
		}
	case []complex128:
		coefficients = make([]Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = NewComplex(real(c), imag(c))
		}
	case []float64:
		coefficients = make([]Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = NewComplex(c, nil)
		}
	case []int:
		coefficients = make([]Complex, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = NewComplex(c, nil)
		}
	case []string:
		coefficients = make([]Complex, len(coeffs))
		for i, c := range coeffs {
			var err error
			if coefficients[i], err = ParseComplex(c); err != nil {
				panic(fmt.Errorf("cannot NewPolynomial: coefficient %d: %w", i, err))
			}
		}
	default:
		panic(fmt.Sprintf("invalid coefficient type, allowed types are []{Complex, Scalar, complex128, float64, int, string} but is %T", coeffs))
	}

	return Polynomial{Coeffs: coefficients}
}

// Clone returns a deep copy of the polynomial.
func (p Polynomial) Clone() Polynomial {
	return NewPolynomial(p.Coeffs)
}

// Degree returns the degree of the polynomial, that is len(Coeffs) - 1.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Leading returns the coefficient of the highest power, or 0 if the polynomial has no coefficients.
func (p Polynomial) Leading() Complex {
	if len(p.Coeffs) == 0 {
		return Complex{}
	}
	return p.Coeffs[len(p.Coeffs)-1]
}

// Evaluate returns y = P(x) using Horner's rule.
func (p Polynomial) Evaluate(eval *ComplexEvaluator, x Complex) (y Complex, err error) {

	if len(p.Coeffs) == 0 {
		return
	}

	c := eval.calculator()

	n := len(p.Coeffs)

	y = p.Coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		y = c.cadd(c.cmul(y, x), p.Coeffs[i])
	}

	if err = c.Err(); err != nil {
		return Complex{}, fmt.Errorf("cannot Evaluate: %w", err)
	}

	return
}

// Monic returns the polynomial divided by its leading coefficient.
// The leading coefficient of the result is exactly 1.
// It returns an error if the polynomial has no coefficients and [ErrDivisionByZero]
// if the leading coefficient is zero.
func (p Polynomial) Monic(eval *ComplexEvaluator) (Polynomial, error) {

	if len(p.Coeffs) == 0 {
		return Polynomial{}, fmt.Errorf("cannot Monic: polynomial has no coefficients")
	}

	lead := p.Leading()

	if lead.IsZero() {
		return Polynomial{}, fmt.Errorf("cannot Monic: leading coefficient: %w", ErrDivisionByZero)
	}

	c := eval.calculator()

	coeffs := make([]Complex, len(p.Coeffs))
	for i := range coeffs[:len(coeffs)-1] {
		coeffs[i] = c.cquo(p.Coeffs[i], lead)
	}
	coeffs[len(coeffs)-1] = Complex{NewScalar(1), Scalar{}}

	if err := c.Err(); err != nil {
		return Polynomial{}, fmt.Errorf("cannot Monic: %w", err)
	}

	return Polynomial{Coeffs: coeffs}, nil
}

// Digest returns a 32-byte fingerprint of the coefficients.
// Polynomials with numerically equal coefficients have the same digest,
// regardless of the exponents of their decimal representation.
func (p Polynomial) Digest() []byte {

	hasher := blake3.New()
	buf := new(bytes.Buffer)

	binary.Write(buf, binary.BigEndian, int64(len(p.Coeffs)))

	for _, c := range p.Coeffs {
		for _, s := range c {
			d, _ := new(apd.Decimal).Reduce(s.dec())
			if d.IsZero() {
				d.Negative = false
			}
			buf.WriteString(d.Text('E'))
			buf.WriteByte(0)
		}
	}

	hasher.Write(buf.Bytes())
	return hasher.Sum(nil)
}
