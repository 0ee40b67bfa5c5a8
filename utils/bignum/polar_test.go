package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolar(t *testing.T) {

	eval := NewComplexEvaluator(DefaultParameters())

	pi := eval.Parameters().Pi()

	t.Run("ToPolar", func(t *testing.T) {
		for _, tc := range []struct {
			z     complex128
			angle float64
		}{
			{complex(1, 1), math.Pi / 4},
			{complex(-1, 1), 3 * math.Pi / 4},
			{complex(-1, -1), -3 * math.Pi / 4},
			{complex(2, -1), math.Atan2(-1, 2)},
			{complex(-3, 0), math.Pi},
			{complex(4, 0), 0},
		} {
			p, err := eval.ToPolar(ToComplex(tc.z))
			require.NoError(t, err, tc.z)
			require.InDelta(t, math.Hypot(real(tc.z), imag(tc.z)), p.Magnitude.Float64(), 1e-15, tc.z)
			require.InDelta(t, tc.angle, p.Angle.Float64(), 1e-15, tc.z)
		}

		p, err := eval.ToPolar(NewComplex(-3, 0))
		require.NoError(t, err)
		require.True(t, pi.Equal(p.Angle))
	})

	t.Run("TinyImaginaryPart", func(t *testing.T) {
		tiny := NewScalar("1e-60")

		p, err := eval.ToPolar(NewComplex(1, "1e-60"))
		require.NoError(t, err)
		require.True(t, NewScalar(1).Equal(p.Magnitude), p.Magnitude)
		require.True(t, tiny.Equal(p.Angle), p.Angle)

		z, err := eval.FromPolar(p)
		require.NoError(t, err)
		requireEqual(t, NewComplex(1, "1e-60"), z)

		z, err = eval.Pow(NewComplex(1, "1e-60"), 3)
		require.NoError(t, err)
		requireEqual(t, NewComplex(1, "3e-60"), z)

		z, err = eval.Exp(NewComplex(0, "1e-1500"))
		require.NoError(t, err)
		requireEqual(t, NewComplex(1, "1e-1500"), z)
	})

	t.Run("ZeroRealPart", func(t *testing.T) {
		for _, z := range []Complex{{}, NewComplex(0, 1), NewComplex(0, -2)} {
			_, err := eval.ToPolar(z)
			require.ErrorIs(t, err, ErrZeroRealPart)
			require.ErrorIs(t, err, ErrDivisionByZero)
		}

		_, err := eval.Pow(NewComplex(0, 1), 3)
		require.ErrorIs(t, err, ErrZeroRealPart)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for _, z := range []Complex{
			NewComplex(3, 1),
			NewComplex(-2, 0.5),
			NewComplex(-1, -3),
			NewComplex(4, -1),
			NewComplex(1, 2),
			NewComplex(1, 1),
			NewComplex(-1, 1),
			NewComplex(2, 0),
			NewComplex(-2, 0),
			NewComplex("0.001", "-0.0003"),
		} {
			p, err := eval.ToPolar(z)
			require.NoError(t, err)
			have, err := eval.FromPolar(p)
			require.NoError(t, err)
			requireClose(t, eval, z, have, 1e-25, z)
		}
	})

	t.Run("FromPolar", func(t *testing.T) {
		z, err := eval.FromPolar(PolarForm{Magnitude: NewScalar(2), Angle: NewScalar("0.5")})
		require.NoError(t, err)
		require.InDelta(t, 2*math.Cos(0.5), z[0].Float64(), 1e-15)
		require.InDelta(t, 2*math.Sin(0.5), z[1].Float64(), 1e-15)
	})

	t.Run("Pow", func(t *testing.T) {
		for _, z := range []Complex{NewComplex(1, 2), NewComplex(-1.5, 0.5), NewComplex("0.9", "-0.2")} {
			for n := 1; n <= 8; n++ {
				direct, err := eval.PowInt(z, n)
				require.NoError(t, err)
				polar, err := eval.Pow(z, uint64(n))
				require.NoError(t, err)
				// The series truncation error of the polar path is compounded by n.
				requireClose(t, eval, direct, polar, 1e-26*math.Pow(10, float64(n)), z, n)
			}
		}

		r, err := eval.Pow(Complex{}, 0)
		require.NoError(t, err)
		requireEqual(t, NewComplex(1, 0), r)
	})

	t.Run("Exp", func(t *testing.T) {
		r, err := eval.Exp(Complex{})
		require.NoError(t, err)
		requireEqual(t, NewComplex(1, 0), r)

		// e^(i*Pi) = -1
		r, err = eval.Exp(Complex{Scalar{}, pi})
		require.NoError(t, err)
		requireClose(t, eval, NewComplex(-1, 0), r, 1e-30)

		for _, z := range []complex128{complex(1.5, 0.5), complex(-2, 3), complex(0.25, -7)} {

			r, err = eval.Exp(ToComplex(z))
			require.NoError(t, err)

			scale := math.Exp(real(z))
			require.InDelta(t, scale*math.Cos(imag(z)), r[0].Float64(), 1e-14*scale, z)
			require.InDelta(t, scale*math.Sin(imag(z)), r[1].Float64(), 1e-14*scale, z)

			// |e^z| = e^re(z)
			abs, err := eval.Abs(r)
			require.NoError(t, err)

			prec := uint(256)
			want := Exp(NewFloat(real(z), prec))
			diff := new(big.Float).Sub(abs.BigFloat(prec), want)
			diff.Quo(diff, want)
			d, _ := diff.Abs(diff).Float64()
			require.Less(t, d, 1e-28, z)
		}
	})
}
