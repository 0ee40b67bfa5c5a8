package bignum

// Pow returns base^exponent computed by binary exponentiation (repeated squaring),
// with O(log exponent) multiplications. Pow(x, 0) = 1 for any x, including 0.
func (eval *Evaluator) Pow(base Scalar, exponent uint64) (Scalar, error) {
	c := eval.calculator()
	r := c.pow(base, exponent)
	return r, c.Err()
}

// pow returns base^exponent by binary exponentiation.
func (c *calculator) pow(base Scalar, exponent uint64) (result Scalar) {
	result = NewScalar(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result = c.mul(result, base)
		}
		if exponent >>= 1; exponent > 0 {
			base = c.mul(base, base)
		}
	}
	return
}
