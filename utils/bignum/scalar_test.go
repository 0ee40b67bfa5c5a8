package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"
)

func TestScalar(t *testing.T) {

	t.Run("NewScalar", func(t *testing.T) {
		require.Equal(t, "0", NewScalar(nil).String())
		require.Equal(t, "-7", NewScalar(-7).String())
		require.Equal(t, "18446744073709551615", NewScalar(uint64(1<<64-1)).String())
		require.Equal(t, "0.125", NewScalar(0.125).String())
		require.Equal(t, "-12.5", NewScalar("-12.5").String())
		require.Equal(t, "-123456789012345678901234567890", NewScalar(bigInt("-123456789012345678901234567890")).String())
		require.True(t, NewScalar(big.NewFloat(2.5)).Equal(NewScalar("2.5")))
		require.True(t, NewScalar(apd.New(25, -1)).Equal(NewScalar(2.5)))
		require.True(t, Scalar{}.IsZero())

		require.Panics(t, func() { NewScalar(float32(1)) })
		require.Panics(t, func() { NewScalar("abc") })
		require.Panics(t, func() { NewScalar("NaN") })
	})

	t.Run("ParseScalar", func(t *testing.T) {
		s, err := ParseScalar("1e-3")
		require.NoError(t, err)
		require.Equal(t, 0.001, s.Float64())

		_, err = ParseScalar("1.2.3")
		require.Error(t, err)

		_, err = ParseScalar("Infinity")
		require.Error(t, err)
	})

	t.Run("Compare", func(t *testing.T) {
		a, b := NewScalar("1.50"), NewScalar(1.5)
		require.True(t, a.Equal(b))
		require.Equal(t, -1, a.Neg().Cmp(b))
		require.Equal(t, 1, a.Neg().Abs().Sign())
		require.Equal(t, -1, a.Neg().Sign())
	})

	t.Run("MarshalText", func(t *testing.T) {
		s := NewScalar("-0.000123456789")
		data, err := s.MarshalText()
		require.NoError(t, err)

		var sNew Scalar
		require.NoError(t, sNew.UnmarshalText(data))
		require.True(t, s.Equal(sNew))
		require.Error(t, sNew.UnmarshalText([]byte("x")))
	})

	t.Run("BigFloat", func(t *testing.T) {
		f, _ := NewScalar("0.1").BigFloat(53).Float64()
		require.Equal(t, 0.1, f)
	})
}

func TestEvaluator(t *testing.T) {

	eval := NewEvaluator(DefaultParameters())

	t.Run("Arithmetic", func(t *testing.T) {
		a, b := NewScalar("1.5"), NewScalar("-0.25")

		r, err := eval.Add(a, b)
		require.NoError(t, err)
		require.Equal(t, "1.25", r.String())

		r, err = eval.Sub(a, b)
		require.NoError(t, err)
		require.Equal(t, "1.75", r.String())

		r, err = eval.Mul(a, b)
		require.NoError(t, err)
		require.Equal(t, "-0.375", r.String())

		r, err = eval.Quo(a, b)
		require.NoError(t, err)
		require.True(t, r.Equal(NewScalar(-6)))

		r, err = eval.Quo(NewScalar(1), NewScalar(3))
		require.NoError(t, err)
		require.Equal(t, "0.3333333333333333333333333333333333", r.String())

		r, err = eval.Sqrt(NewScalar(2))
		require.NoError(t, err)
		require.Equal(t, math.Sqrt2, r.Float64())
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := eval.Quo(NewScalar(1), NewScalar(0))
		require.ErrorIs(t, err, ErrDivisionByZero)

		_, err = eval.Sqrt(NewScalar(-1))
		require.Error(t, err)
	})

	t.Run("Round", func(t *testing.T) {
		r, err := eval.Round(NewScalar("1.234567890123456789012345"))
		require.NoError(t, err)
		require.Equal(t, "1.23456789012345678901", r.String())

		r, err = eval.RoundTo(NewScalar("-2.5"), 0)
		require.NoError(t, err)
		require.Equal(t, "-2", r.String())

		r, err = eval.RoundTo(NewScalar("123456789012345678901234567890.5"), 2)
		require.NoError(t, err)
		require.Equal(t, "123456789012345678901234567890.50", r.String())
	})

	t.Run("Exp", func(t *testing.T) {
		for _, x := range []float64{-3, -0.5, 0, 1, 2.75, 10} {
			r, err := eval.Exp(NewScalar(x))
			require.NoError(t, err)

			prec := uint(256)
			want := Exp(NewFloat(x, prec))
			diff := new(big.Float).Sub(r.BigFloat(prec), want)
			diff.Quo(diff, want)
			d, _ := diff.Abs(diff).Float64()
			require.Less(t, d, 1e-30, x)
		}
	})
}

func bigInt(s string) *big.Int {
	b, _ := new(big.Int).SetString(s, 10)
	return b
}
