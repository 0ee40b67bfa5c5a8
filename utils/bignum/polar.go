package bignum

// PolarForm is the representation of a complex number as a magnitude and an angle in radians.
type PolarForm struct {
	Magnitude Scalar
	Angle     Scalar
}

// ToPolar returns the polar form of a. The angle is evaluated as Atan(im/re),
// shifted by +Pi (im >= 0) or -Pi (im < 0) when re < 0, and lies in (-Pi, Pi].
// It returns [ErrZeroRealPart] if re(a) = 0.
func (eval *ComplexEvaluator) ToPolar(a Complex) (PolarForm, error) {
	c := eval.calculator()
	r := c.toPolar(eval.params, a)
	return r, c.Err()
}

// FromPolar returns Magnitude * (cos(Angle) + i*sin(Angle)).
func (eval *ComplexEvaluator) FromPolar(p PolarForm) (Complex, error) {
	c := eval.calculator()
	r := c.fromPolar(eval.params, p)
	return r, c.Err()
}

// Pow returns a^n through the polar form of a: the magnitude is raised with
// binary exponentiation and the angle is multiplied by n.
// The result carries the truncation error of the sine, cosine and arctangent
// series, compounded by n. a^0 = 1 for any a.
func (eval *ComplexEvaluator) Pow(a Complex, n uint64) (Complex, error) {

	if n == 0 {
		return Complex{NewScalar(1), Scalar{}}, nil
	}

	c := eval.calculator()

	p := c.toPolar(eval.params, a)
	p.Magnitude = c.pow(p.Magnitude, n)
	p.Angle = c.mul(p.Angle, NewScalar(n))

	r := c.fromPolar(eval.params, p)

	return r, c.Err()
}

// Exp returns e^a = e^re(a) * (cos(im(a)) + i*sin(im(a))).
func (eval *ComplexEvaluator) Exp(a Complex) (Complex, error) {
	c := eval.calculator()
	r := c.fromPolar(eval.params, PolarForm{Magnitude: c.exp(a[0]), Angle: a[1]})
	return r, c.Err()
}

func (c *calculator) toPolar(params Parameters, a Complex) (p PolarForm) {

	if a[0].IsZero() {
		c.fail(ErrZeroRealPart)
		return
	}

	p.Magnitude = c.cabs(a)
	p.Angle = c.atan(params, c.quo(a[1], a[0]))

	if a[0].Sign() < 0 {
		if a[1].Sign() < 0 {
			p.Angle = c.sub(p.Angle, params.pi)
		} else {
			p.Angle = c.add(p.Angle, params.pi)
		}
	}

	return
}

func (c *calculator) fromPolar(params Parameters, p PolarForm) Complex {
	return Complex{
		c.mul(p.Magnitude, c.cos(params, p.Angle, params.seriesTerms)),
		c.mul(p.Magnitude, c.sin(params, p.Angle, params.seriesTerms)),
	}
}
