package roots

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/polyroots/utils/bignum"
)

// RootSet is an ordered set of root approximations, one per seed.
// The index of a root is preserved across iterations.
type RootSet []bignum.Complex

// Clone returns a copy of the root set.
func (rs RootSet) Clone() RootSet {
	return append(RootSet(nil), rs...)
}

// Complex128 returns the roots as complex128 values.
func (rs RootSet) Complex128() []complex128 {
	v := make([]complex128, len(rs))
	for i := range rs {
		v[i] = rs[i].Complex128()
	}
	return v
}

// ConvergenceState holds the residuals |p(r_i)| of a root set.
type ConvergenceState struct {
	Residuals []bignum.Scalar
	Converged bool
}

// MaxResidual returns the largest residual, and false if there are none.
func (s ConvergenceState) MaxResidual() (res bignum.Scalar, ok bool) {
	for i, r := range s.Residuals {
		if i == 0 || r.Cmp(res) > 0 {
			res = r
		}
	}
	return res, len(s.Residuals) != 0
}

// Summary is a float64 overview of the residuals of a [ConvergenceState].
type Summary struct {
	Max    float64
	Mean   float64
	Median float64
}

// Summary returns the maximum, mean and median of the residuals as float64.
func (s ConvergenceState) Summary() (sum Summary, err error) {

	data := make([]float64, len(s.Residuals))
	for i := range s.Residuals {
		data[i] = s.Residuals[i].Float64()
	}

	if sum.Max, err = stats.Max(data); err != nil {
		return Summary{}, fmt.Errorf("cannot Summary: %w", err)
	}

	if sum.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("cannot Summary: %w", err)
	}

	if sum.Median, err = stats.Median(data); err != nil {
		return Summary{}, fmt.Errorf("cannot Summary: %w", err)
	}

	return
}

// Snapshot is the resumable state of the iteration. Digest binds the snapshot
// to the polynomial it was taken on (see [bignum.Polynomial.Digest]).
type Snapshot struct {
	Iteration int
	Digest    []byte
	Roots     RootSet
}

// Solution is the outcome of [Solver.Solve] and [Solver.Resume].
type Solution struct {
	Roots      RootSet
	State      ConvergenceState
	Iterations int
}
