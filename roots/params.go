package roots

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/tuneinsight/polyroots/utils/bignum"
)

const (
	// DefaultThreshold is the default bound on the residuals |p(r)| below which a root set has converged.
	DefaultThreshold = "1e-3"
	// DefaultMaxIterations is the default iteration cap of [Solver.Solve].
	DefaultMaxIterations = 10000
	// DefaultWorkers is the default number of goroutines evaluating the root updates of an iteration.
	DefaultWorkers = 1
	// DefaultSeedPhase is the default angular offset of the seeds.
	DefaultSeedPhase = "0"
	// DefaultSeedRadius is the default radius of the seed circle.
	DefaultSeedRadius = "1"
)

// ParametersLiteral is a literal representation of the solver parameters. It has public
// fields and is used to express unchecked user-defined parameters literally into
// Go programs. The [NewParametersFromLiteral] function is used to generate the actual
// checked parameters from the literal representation.
//
// The first fields define the precision policy of the underlying arithmetic (see [bignum.ParametersLiteral]).
// The remaining fields define the iteration:
//   - Threshold: decimal literal, the iteration stops once every residual |p(r_i)| is at most Threshold.
//   - MaxIterations: the iteration cap.
//   - Workers: the number of goroutines evaluating the d root updates of an iteration.
//   - SeedPhase: decimal literal, an angle in radians added to every seed angle.
//   - SeedRadius: decimal literal, the radius of the circle the seeds are placed on.
//
// If left unset, the default values are substituted at parameter creation.
type ParametersLiteral struct {
	Precision      uint32      `json:",omitempty"`
	RoundingDigits uint32      `json:",omitempty"`
	SeriesTerms    int         `json:",omitempty"`
	ArctanTerms    int         `json:",omitempty"`
	Pi             string      `json:",omitempty"`
	Rounding       apd.Rounder `json:",omitempty"`
	Threshold      string      `json:",omitempty"`
	MaxIterations  int         `json:",omitempty"`
	Workers        int         `json:",omitempty"`
	SeedPhase      string      `json:",omitempty"`
	SeedRadius     string      `json:",omitempty"`
}

// GetBigNumParametersLiteral returns the [bignum.ParametersLiteral] from the target [ParametersLiteral].
func (p ParametersLiteral) GetBigNumParametersLiteral() bignum.ParametersLiteral {
	return bignum.ParametersLiteral{
		Precision:      p.Precision,
		RoundingDigits: p.RoundingDigits,
		SeriesTerms:    p.SeriesTerms,
		ArctanTerms:    p.ArctanTerms,
		Pi:             p.Pi,
		Rounding:       p.Rounding,
	}
}

// Parameters represents a parameter set for the Durand-Kerner solver. Its fields are private and
// immutable. See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	bignum.Parameters
	threshold     bignum.Scalar
	maxIterations int
	workers       int
	seedPhase     bignum.Scalar
	seedRadius    bignum.Scalar
}

// NewParametersFromLiteral instantiate a set of solver parameters from a [ParametersLiteral] specification.
// It returns the empty parameters [Parameters]{} and a non-nil error if the specified parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	if params.Parameters, err = bignum.NewParametersFromLiteral(pl.GetBigNumParametersLiteral()); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	if pl.Threshold == "" {
		pl.Threshold = DefaultThreshold
	}

	if pl.MaxIterations == 0 {
		pl.MaxIterations = DefaultMaxIterations
	}

	if pl.Workers == 0 {
		pl.Workers = DefaultWorkers
	}

	if pl.SeedPhase == "" {
		pl.SeedPhase = DefaultSeedPhase
	}

	if pl.SeedRadius == "" {
		pl.SeedRadius = DefaultSeedRadius
	}

	if params.threshold, err = bignum.ParseScalar(pl.Threshold); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: invalid Threshold: %w", err)
	}

	if params.threshold.Sign() < 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Threshold=%s cannot be negative", pl.Threshold)
	}

	if pl.MaxIterations < 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: MaxIterations=%d cannot be negative", pl.MaxIterations)
	}

	if pl.Workers < 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Workers=%d cannot be negative", pl.Workers)
	}

	if params.seedPhase, err = bignum.ParseScalar(pl.SeedPhase); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: invalid SeedPhase: %w", err)
	}

	if params.seedRadius, err = bignum.ParseScalar(pl.SeedRadius); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: invalid SeedRadius: %w", err)
	}

	if params.seedRadius.Sign() <= 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: SeedRadius=%s must be positive", pl.SeedRadius)
	}

	params.maxIterations = pl.MaxIterations
	params.workers = pl.Workers

	return
}

// Threshold returns the residual bound of the convergence test.
func (p Parameters) Threshold() bignum.Scalar {
	return p.threshold
}

// MaxIterations returns the iteration cap.
func (p Parameters) MaxIterations() int {
	return p.maxIterations
}

// Workers returns the number of goroutines evaluating the root updates of an iteration.
func (p Parameters) Workers() int {
	return p.workers
}

// SeedPhase returns the angular offset of the seeds.
func (p Parameters) SeedPhase() bignum.Scalar {
	return p.seedPhase
}

// SeedRadius returns the radius of the seed circle.
func (p Parameters) SeedRadius() bignum.Scalar {
	return p.seedRadius
}

// GetBigNumParameters returns a pointer to the underlying precision policy.
func (p Parameters) GetBigNumParameters() *bignum.Parameters {
	return &p.Parameters
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	bl := p.Parameters.ParametersLiteral()
	return ParametersLiteral{
		Precision:      bl.Precision,
		RoundingDigits: bl.RoundingDigits,
		SeriesTerms:    bl.SeriesTerms,
		ArctanTerms:    bl.ArctanTerms,
		Pi:             bl.Pi,
		Rounding:       bl.Rounding,
		Threshold:      p.threshold.String(),
		MaxIterations:  p.maxIterations,
		Workers:        p.workers,
		SeedPhase:      p.seedPhase.String(),
		SeedRadius:     p.seedRadius.String(),
	}
}

// Equal compares two sets of parameters for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return p.Parameters.Equal(&other.Parameters) && cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
