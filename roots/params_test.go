package roots

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polyroots/utils/bignum"
)

func TestParameters(t *testing.T) {

	t.Run("Default", func(t *testing.T) {
		params, err := NewParametersFromLiteral(ParametersLiteral{})
		require.NoError(t, err)
		require.True(t, params.Threshold().Equal(bignum.NewScalar("0.001")))
		require.Equal(t, DefaultMaxIterations, params.MaxIterations())
		require.Equal(t, DefaultWorkers, params.Workers())
		require.True(t, params.SeedPhase().IsZero())
		require.True(t, params.SeedRadius().Equal(bignum.NewScalar(1)))
		require.Equal(t, uint32(bignum.DefaultPrecision), params.Precision())
		require.True(t, bignum.DefaultParameters().Equal(params.GetBigNumParameters()))
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, lit := range []ParametersLiteral{
			{Precision: 4},
			{Threshold: "-1"},
			{Threshold: "abc"},
			{MaxIterations: -1},
			{Workers: -2},
			{SeedPhase: "x"},
			{SeedRadius: "0"},
			{SeedRadius: "-1"},
		} {
			_, err := NewParametersFromLiteral(lit)
			require.Error(t, err, lit)
		}
	})

	t.Run("MarshalJSON", func(t *testing.T) {
		params, err := NewParametersFromLiteral(ParametersLiteral{
			Precision:     40,
			Threshold:     "1e-20",
			MaxIterations: 100,
			Workers:       4,
			SeedPhase:     "0.5",
			SeedRadius:    "2",
		})
		require.NoError(t, err)

		data, err := json.Marshal(params)
		require.NoError(t, err)

		var paramsNew Parameters
		require.NoError(t, json.Unmarshal(data, &paramsNew))
		require.True(t, params.Equal(&paramsNew), cmp.Diff(params.ParametersLiteral(), paramsNew.ParametersLiteral()))

		other, err := NewParametersFromLiteral(ParametersLiteral{Precision: 40})
		require.NoError(t, err)
		require.False(t, params.Equal(&other))

		require.Error(t, json.Unmarshal([]byte(`{"SeedRadius":"-3"}`), &paramsNew))
	})
}
