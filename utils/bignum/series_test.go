package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeries(t *testing.T) {

	eval := NewEvaluator(DefaultParameters())

	angles := []float64{0, 0.5, -1, 1.4142135623730951, 3, -5.5, 7, 100}

	t.Run("NormalizeAngle", func(t *testing.T) {
		for _, x := range angles {
			r, err := eval.NormalizeAngle(NewScalar(x))
			require.NoError(t, err)
			require.InDelta(t, math.Mod(x, 2*math.Pi), r.Float64(), 1e-12, x)
			require.Less(t, math.Abs(r.Float64()), 2*math.Pi)
		}

		r, err := eval.NormalizeAngle(NewScalar("1"))
		require.NoError(t, err)
		require.Equal(t, "1", r.String())

		twoPi, err := eval.Mul(eval.Parameters().Pi(), NewScalar(2))
		require.NoError(t, err)

		// The quotient has more digits than the working precision.
		for _, x := range []string{"1e33", "1e35", "-1e35", "123456789012345678901234567890123456789.5", "1e100"} {
			r, err := eval.NormalizeAngle(NewScalar(x))
			require.NoError(t, err, x)
			require.Less(t, r.Abs().Cmp(twoPi), 0, x)
			require.Equal(t, NewScalar(x).Sign(), r.Sign(), x)
		}
	})

	t.Run("Tiny", func(t *testing.T) {
		for _, x := range []string{"1e-40", "1e-51", "1e-60", "-1e-60", "1e-1500", "1e-60000"} {

			s := NewScalar(x)

			// atan(x) = x - x^3/3 + ... = x at the working precision
			r, err := eval.Atan(s)
			require.NoError(t, err, x)
			require.True(t, s.Equal(r), "%s: %s", x, r)

			r, err = eval.Sin(s)
			require.NoError(t, err, x)
			require.True(t, s.Equal(r), "%s: %s", x, r)

			r, err = eval.Cos(s)
			require.NoError(t, err, x)
			require.True(t, NewScalar(1).Equal(r), "%s: %s", x, r)
		}

		r, err := eval.Atan(NewScalar("1e60"))
		require.NoError(t, err)
		require.True(t, eval.Parameters().halfPi.Equal(r))
	})

	t.Run("Cos", func(t *testing.T) {
		for _, x := range angles {
			r, err := eval.Cos(NewScalar(x))
			require.NoError(t, err)
			require.InDelta(t, math.Cos(x), r.Float64(), 1e-14, x)
		}
	})

	t.Run("Sin", func(t *testing.T) {
		for _, x := range angles {
			r, err := eval.Sin(NewScalar(x))
			require.NoError(t, err)
			require.InDelta(t, math.Sin(x), r.Float64(), 1e-14, x)
		}
	})

	t.Run("Pythagorean", func(t *testing.T) {
		x := NewScalar("0.7853981633974483096156608458198757")
		c, err := eval.Cos(x)
		require.NoError(t, err)
		s, err := eval.Sin(x)
		require.NoError(t, err)

		c2, _ := eval.Mul(c, c)
		s2, _ := eval.Mul(s, s)
		one, _ := eval.Add(c2, s2)
		diff, _ := eval.Sub(one, NewScalar(1))
		require.Less(t, math.Abs(diff.Float64()), 1e-30)
	})

	t.Run("Truncation", func(t *testing.T) {
		// A single term of the cosine series is 1, two terms are 1 - x^2/2.
		r, err := eval.CosSeries(NewScalar(1), 1)
		require.NoError(t, err)
		require.True(t, r.Equal(NewScalar(1)))

		r, err = eval.CosSeries(NewScalar(1), 2)
		require.NoError(t, err)
		require.True(t, r.Equal(NewScalar("0.5")))

		r, err = eval.SinSeries(NewScalar(2), 2)
		require.NoError(t, err)
		require.InDelta(t, 2.0/3, r.Float64(), 1e-15)

		_, err = eval.CosSeries(NewScalar(1), 0)
		require.Error(t, err)

		_, err = eval.SinSeries(NewScalar(1), -1)
		require.Error(t, err)
	})

	t.Run("Atan", func(t *testing.T) {
		for _, x := range []float64{0, 0.25, -0.5, 0.8, 1.5, -2, 10, -1000} {
			r, err := eval.Atan(NewScalar(x))
			require.NoError(t, err)
			require.InDelta(t, math.Atan(x), r.Float64(), 1e-14, x)
		}

		pi := eval.Parameters().Pi()

		r, err := eval.Atan(NewScalar(1))
		require.NoError(t, err)
		want, _ := eval.Quo(pi, NewScalar(4))
		require.True(t, want.Equal(r))

		r, err = eval.Atan(NewScalar(-1))
		require.NoError(t, err)
		require.True(t, want.Neg().Equal(r))
	})

	t.Run("ArctanTerms", func(t *testing.T) {
		params, err := NewParametersFromLiteral(ParametersLiteral{ArctanTerms: 2})
		require.NoError(t, err)

		// x - x^3/3
		r, err := NewEvaluator(params).Atan(NewScalar("0.5"))
		require.NoError(t, err)
		require.InDelta(t, 0.5-0.125/3, r.Float64(), 1e-15)
	})
}

func TestPow(t *testing.T) {

	eval := NewEvaluator(DefaultParameters())

	for _, base := range []string{"1.5", "3", "-0.5", "0", "1"} {
		for _, n := range []uint64{0, 1, 2, 7, 16} {

			b := NewScalar(base)

			want := NewScalar(1)
			for i := uint64(0); i < n; i++ {
				var err error
				want, err = eval.Mul(want, b)
				require.NoError(t, err)
			}

			have, err := eval.Pow(b, n)
			require.NoError(t, err)
			require.True(t, want.Equal(have), "%s^%d: want %s have %s", base, n, want, have)
		}
	}

	t.Run("ZeroToZero", func(t *testing.T) {
		r, err := eval.Pow(NewScalar(0), 0)
		require.NoError(t, err)
		require.Equal(t, "1", r.String())
	})

	t.Run("Rounded", func(t *testing.T) {
		r, err := eval.Pow(NewScalar("1.1"), 100)
		require.NoError(t, err)
		require.InDelta(t, 13780.612339822270, r.Float64(), 1e-9)

		prec := uint(256)
		want := Pow(NewFloat(NewScalar("1.1"), prec), NewFloat(100, prec))
		diff := new(big.Float).Sub(r.BigFloat(prec), want)
		diff.Quo(diff, want)
		d, _ := diff.Abs(diff).Float64()
		require.Less(t, d, 1e-30)
	})
}
