package bignum

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"
)

const (
	// DefaultPrecision is the default number of significant decimal digits of the working context.
	DefaultPrecision = 34
	// DefaultRoundingDigits is the default number of fractional digits kept by [Evaluator.Round].
	DefaultRoundingDigits = 20
	// DefaultSeriesTerms is the default truncation order of the sine and cosine series.
	DefaultSeriesTerms = 40
	// DefaultArctanTerms is the default truncation order of the arctangent series.
	DefaultArctanTerms = 1000
	// DefaultRounding is the default rounding mode of the working context.
	DefaultRounding = apd.RoundHalfEven

	// MinPrecision is the smallest accepted working precision.
	MinPrecision = 8
)

// ParametersLiteral is a literal representation of the precision policy. It has public fields and
// is used to express unchecked user-defined parameters literally into Go programs.
// The [NewParametersFromLiteral] function is used to generate the actual checked parameters
// from the literal representation.
//
// Every field is optional, zero values are substituted with the package defaults:
//   - Precision: number of significant decimal digits of every arithmetic operation.
//   - RoundingDigits: number of fractional digits kept by explicit rounding and used to compare values.
//   - SeriesTerms: number of terms of the sine and cosine Taylor series.
//   - ArctanTerms: number of terms of the arctangent Taylor series.
//   - Pi: decimal literal of Pi, it must carry at least Precision significant digits.
//   - Rounding: the rounding mode applied by the working context.
type ParametersLiteral struct {
	Precision      uint32      `json:",omitempty"`
	RoundingDigits uint32      `json:",omitempty"`
	SeriesTerms    int         `json:",omitempty"`
	ArctanTerms    int         `json:",omitempty"`
	Pi             string      `json:",omitempty"`
	Rounding       apd.Rounder `json:",omitempty"`
}

// Parameters is the checked, immutable precision policy threaded through
// every [Evaluator] and [ComplexEvaluator] operation.
// See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	ctx            *apd.Context
	roundingDigits uint32
	seriesTerms    int
	arctanTerms    int
	piLiteral      string
	pi             Scalar
	twoPi          Scalar
	halfPi         Scalar
	quarterPi      Scalar
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a [ParametersLiteral] specification.
// It returns the empty parameters [Parameters]{} and a non-nil error if the specified parameters are invalid.
func NewParametersFromLiteral(paramsLit ParametersLiteral) (params Parameters, err error) {

	if paramsLit.Precision == 0 {
		paramsLit.Precision = DefaultPrecision
	}

	if paramsLit.RoundingDigits == 0 {
		paramsLit.RoundingDigits = DefaultRoundingDigits
	}

	if paramsLit.SeriesTerms == 0 {
		paramsLit.SeriesTerms = DefaultSeriesTerms
	}

	if paramsLit.ArctanTerms == 0 {
		paramsLit.ArctanTerms = DefaultArctanTerms
	}

	if paramsLit.Pi == "" {
		paramsLit.Pi = pi
	}

	if paramsLit.Rounding == "" {
		paramsLit.Rounding = DefaultRounding
	}

	if paramsLit.Precision < MinPrecision {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Precision=%d is smaller than %d", paramsLit.Precision, MinPrecision)
	}

	if paramsLit.RoundingDigits >= paramsLit.Precision {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: RoundingDigits=%d must be smaller than Precision=%d", paramsLit.RoundingDigits, paramsLit.Precision)
	}

	if paramsLit.SeriesTerms < 1 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: SeriesTerms=%d must be positive", paramsLit.SeriesTerms)
	}

	if paramsLit.ArctanTerms < 1 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: ArctanTerms=%d must be positive", paramsLit.ArctanTerms)
	}

	switch paramsLit.Rounding {
	case apd.RoundDown, apd.RoundHalfUp, apd.RoundHalfEven, apd.RoundCeiling,
		apd.RoundFloor, apd.RoundHalfDown, apd.RoundUp, apd.Round05Up:
	default:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: invalid Rounding %q", paramsLit.Rounding)
	}

	ctx := apd.BaseContext.WithPrecision(paramsLit.Precision)
	ctx.Rounding = paramsLit.Rounding
	// Results below the smallest normal exponent are rounded toward zero instead of failing.
	ctx.Traps &^= apd.Underflow | apd.Subnormal

	piDec, _, err := apd.NewFromString(paramsLit.Pi)
	if err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: invalid Pi: %w", err)
	}

	if piDec.Form != apd.Finite || piDec.Sign() <= 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Pi must be a positive finite number but is %s", paramsLit.Pi)
	}

	if piDec.NumDigits() < int64(paramsLit.Precision) {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Pi has %d significant digits but Precision=%d requires at least as many", piDec.NumDigits(), paramsLit.Precision)
	}

	params = Parameters{
		ctx:            ctx,
		roundingDigits: paramsLit.RoundingDigits,
		seriesTerms:    paramsLit.SeriesTerms,
		arctanTerms:    paramsLit.ArctanTerms,
		piLiteral:      paramsLit.Pi,
	}

	calc := params.calculator()
	params.pi = calc.round(Scalar{piDec})
	params.twoPi = calc.mul(params.pi, NewScalar(2))
	params.halfPi = calc.quo(params.pi, NewScalar(2))
	params.quarterPi = calc.quo(params.pi, NewScalar(4))

	if err = calc.Err(); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	return
}

// DefaultParameters returns the [Parameters] instantiated from an empty [ParametersLiteral].
func DefaultParameters() Parameters {
	params, err := NewParametersFromLiteral(ParametersLiteral{})
	// sanity check, the defaults are always valid
	if err != nil {
		panic(err)
	}
	return params
}

// Precision returns the number of significant decimal digits of the working context.
func (p Parameters) Precision() uint32 {
	return p.ctx.Precision
}

// RoundingDigits returns the number of fractional digits kept by explicit rounding.
func (p Parameters) RoundingDigits() uint32 {
	return p.roundingDigits
}

// SeriesTerms returns the truncation order of the sine and cosine series.
func (p Parameters) SeriesTerms() int {
	return p.seriesTerms
}

// ArctanTerms returns the truncation order of the arctangent series.
func (p Parameters) ArctanTerms() int {
	return p.arctanTerms
}

// Rounding returns the rounding mode of the working context.
func (p Parameters) Rounding() apd.Rounder {
	return p.ctx.Rounding
}

// Pi returns Pi rounded to the working precision.
func (p Parameters) Pi() Scalar {
	return p.pi
}

// Context returns a copy of the working decimal context.
func (p Parameters) Context() *apd.Context {
	return p.ctx.WithPrecision(p.ctx.Precision)
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Precision:      p.ctx.Precision,
		RoundingDigits: p.roundingDigits,
		SeriesTerms:    p.seriesTerms,
		ArctanTerms:    p.arctanTerms,
		Pi:             p.piLiteral,
		Rounding:       p.ctx.Rounding,
	}
}

// Equal returns true if the receiver and other define the same precision policy.
func (p Parameters) Equal(other *Parameters) bool {
	if p.ctx == nil || other.ctx == nil {
		return p.ctx == other.ctx
	}
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}

func (p Parameters) calculator() *calculator {
	return &calculator{ctx: p.ctx}
}
