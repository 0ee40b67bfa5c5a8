package roots

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tuneinsight/polyroots/utils"
	"github.com/tuneinsight/polyroots/utils/bignum"
	"github.com/tuneinsight/polyroots/utils/sampling"
	"golang.org/x/sync/errgroup"
)

// Solver finds all the complex roots of a polynomial with the Durand-Kerner
// (Weierstrass) simultaneous iteration. A Solver holds no mutable state and
// can be shared between goroutines.
type Solver struct {
	params Parameters
	eval   *bignum.ComplexEvaluator
	logger *slog.Logger
}

// NewSolver instantiates a new [Solver]. The solver logs nothing until a logger is set with [Solver.WithLogger].
func NewSolver(params Parameters) *Solver {
	return &Solver{
		params: params,
		eval:   bignum.NewComplexEvaluator(params.Parameters),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger returns a shallow copy of the receiver logging on logger.
func (s *Solver) WithLogger(logger *slog.Logger) *Solver {
	sNew := *s
	sNew.logger = logger
	return &sNew
}

// Parameters returns the parameters of the solver.
func (s *Solver) Parameters() Parameters {
	return s.params
}

// Evaluator returns the complex arithmetic evaluator of the solver.
func (s *Solver) Evaluator() *bignum.ComplexEvaluator {
	return s.eval
}

// Seed returns the initial approximations of the roots of a polynomial of the given degree:
// root_i = SeedRadius * (cos(a_i) + i*sin(a_i)) with a_i = 2*Pi*i/degree + SeedPhase for i = 1, ..., degree.
func (s *Solver) Seed(degree int) (RootSet, error) {
	return s.seed(degree, nil)
}

// SeedFromPRNG returns the same seeds as [Solver.Seed] with every angle perturbed by an offset
// uniformly distributed in [-Pi/degree, Pi/degree) and read on prng.
// The seeds are deterministic if prng is a [sampling.KeyedPRNG]. It is meant to re-seed
// a resolution that failed with [ErrDuplicateRoots].
func (s *Solver) SeedFromPRNG(degree int, prng sampling.PRNG) (RootSet, error) {
	return s.seed(degree, prng)
}

func (s *Solver) seed(degree int, prng sampling.PRNG) (roots RootSet, err error) {

	if degree < 1 {
		return nil, fmt.Errorf("cannot Seed: degree=%d: %w", degree, ErrDegenerateInput)
	}

	eval := s.eval.Evaluator

	d := bignum.NewScalar(degree)

	var twoPi, halfWidth bignum.Scalar

	if twoPi, err = eval.Mul(s.params.Pi(), bignum.NewScalar(2)); err != nil {
		return nil, fmt.Errorf("cannot Seed: %w", err)
	}

	if halfWidth, err = eval.Quo(s.params.Pi(), d); err != nil {
		return nil, fmt.Errorf("cannot Seed: %w", err)
	}

	roots = make(RootSet, degree)

	for i := 1; i <= degree; i++ {

		var angle bignum.Scalar

		// 2*Pi*i/d + phase
		if angle, err = eval.Mul(twoPi, bignum.NewScalar(i)); err != nil {
			return nil, fmt.Errorf("cannot Seed: %w", err)
		}

		if angle, err = eval.Quo(angle, d); err != nil {
			return nil, fmt.Errorf("cannot Seed: %w", err)
		}

		if angle, err = eval.Add(angle, s.params.SeedPhase()); err != nil {
			return nil, fmt.Errorf("cannot Seed: %w", err)
		}

		if prng != nil {

			var u float64
			if u, err = sampling.RandFloat64(prng, -1, 1); err != nil {
				return nil, fmt.Errorf("cannot Seed: %w", err)
			}

			var jitter bignum.Scalar
			if jitter, err = eval.Mul(bignum.NewScalar(u), halfWidth); err != nil {
				return nil, fmt.Errorf("cannot Seed: %w", err)
			}

			if angle, err = eval.Add(angle, jitter); err != nil {
				return nil, fmt.Errorf("cannot Seed: %w", err)
			}
		}

		if roots[i-1], err = s.eval.FromPolar(bignum.PolarForm{Magnitude: s.params.SeedRadius(), Angle: angle}); err != nil {
			return nil, fmt.Errorf("cannot Seed: %w", err)
		}
	}

	return
}

// Step evaluates one Durand-Kerner iteration on roots and returns the new root set with its residuals
// |p(r_i')| evaluated on p. The update is r_i' = r_i - q(r_i) / prod_{j != i} (r_i - r_j), with q
// the monic polynomial p/lead(p). The receiver roots are not modified.
// Step returns a [*DuplicateRootsError] if two roots are equal after rounding to RoundingDigits.
func (s *Solver) Step(p bignum.Polynomial, roots RootSet) (RootSet, ConvergenceState, error) {

	if err := validate(p); err != nil {
		return nil, ConvergenceState{}, fmt.Errorf("cannot Step: %w", err)
	}

	if len(roots) != p.Degree() {
		return nil, ConvergenceState{}, fmt.Errorf("cannot Step: %d roots for a polynomial of degree %d", len(roots), p.Degree())
	}

	monic, err := p.Monic(s.eval)
	if err != nil {
		return nil, ConvergenceState{}, fmt.Errorf("cannot Step: %w", err)
	}

	next, state, err := s.step(context.Background(), p, monic, roots)
	if err != nil {
		return nil, ConvergenceState{}, fmt.Errorf("cannot Step: %w", err)
	}

	return next, state, nil
}

// Residuals returns |p(r_i)| for every root of roots and whether they are all below the threshold.
func (s *Solver) Residuals(p bignum.Polynomial, roots RootSet) (state ConvergenceState, err error) {

	residuals := make([]bignum.Scalar, len(roots))

	for i := range roots {
		if residuals[i], err = s.residual(p, roots[i]); err != nil {
			return ConvergenceState{}, fmt.Errorf("cannot Residuals: %w", err)
		}
	}

	return s.convergence(residuals), nil
}

// Solve seeds the roots of p with [Solver.Seed] and iterates until every residual is below
// the threshold, the iteration cap is reached or ctx is done.
// In the last two cases, the returned error is a [*NotConvergedError] and the returned
// [Solution] holds the last root set.
func (s *Solver) Solve(ctx context.Context, p bignum.Polynomial) (Solution, error) {

	if err := validate(p); err != nil {
		return Solution{}, fmt.Errorf("cannot Solve: %w", err)
	}

	roots, err := s.Seed(p.Degree())
	if err != nil {
		return Solution{}, fmt.Errorf("cannot Solve: %w", err)
	}

	return s.run(ctx, p, roots, 0)
}

// Resume continues the iteration of p from snapshot, as [Solver.Solve] would have.
// The iteration cap applies to the total number of iterations, snapshot's included.
// It returns [ErrSnapshotMismatch] if the snapshot was not taken on p.
func (s *Solver) Resume(ctx context.Context, p bignum.Polynomial, snapshot Snapshot) (Solution, error) {

	if err := validate(p); err != nil {
		return Solution{}, fmt.Errorf("cannot Resume: %w", err)
	}

	if !bytes.Equal(snapshot.Digest, p.Digest()) {
		return Solution{}, fmt.Errorf("cannot Resume: digest: %w", ErrSnapshotMismatch)
	}

	if len(snapshot.Roots) != p.Degree() {
		return Solution{}, fmt.Errorf("cannot Resume: %d roots for a polynomial of degree %d: %w", len(snapshot.Roots), p.Degree(), ErrSnapshotMismatch)
	}

	return s.run(ctx, p, snapshot.Roots.Clone(), snapshot.Iteration)
}

func (s *Solver) run(ctx context.Context, p bignum.Polynomial, roots RootSet, iteration int) (Solution, error) {

	monic, err := p.Monic(s.eval)
	if err != nil {
		return Solution{}, fmt.Errorf("cannot Solve: %w", err)
	}

	logger := s.logger.With("degree", p.Degree())

	var state ConvergenceState

	for iteration < s.params.MaxIterations() && ctx.Err() == nil {

		next, nextState, err := s.step(ctx, p, monic, roots)

		if err != nil {

			if ctx.Err() != nil {
				break
			}

			var dup *DuplicateRootsError
			if errors.As(err, &dup) {
				dup.Iteration = iteration
				logger.Warn("duplicate roots", "iteration", iteration, "i", dup.I, "j", dup.J, "root", dup.Root.String())
			}

			return Solution{Roots: roots, State: state, Iterations: iteration}, err
		}

		iteration++
		roots, state = next, nextState

		if sum, err := state.Summary(); err == nil {
			logger.Debug("iteration", "iteration", iteration, "max_residual", sum.Max, "mean_residual", sum.Mean, "median_residual", sum.Median)
		}

		if state.Converged {
			logger.Info("converged", "iterations", iteration)
			return Solution{Roots: roots, State: state, Iterations: iteration}, nil
		}
	}

	// No iteration was evaluated, the residuals are those of the input roots.
	if state.Residuals == nil {
		if state, err = s.Residuals(p, roots); err != nil {
			return Solution{}, err
		}
	}

	errNC := &NotConvergedError{
		Snapshot: Snapshot{
			Iteration: iteration,
			Digest:    p.Digest(),
			Roots:     roots,
		},
		State: state,
		Cause: ctx.Err(),
	}

	logger.Warn("not converged", "iterations", iteration, "cause", errNC.Cause)

	return Solution{Roots: roots, State: state, Iterations: iteration}, errNC
}

func (s *Solver) step(ctx context.Context, p, monic bignum.Polynomial, roots RootSet) (RootSet, ConvergenceState, error) {

	if err := s.checkDuplicates(roots); err != nil {
		return nil, ConvergenceState{}, err
	}

	next := make(RootSet, len(roots))
	residuals := make([]bignum.Scalar, len(roots))

	// Every update only reads roots and writes its own index.
	update := func(i int) (err error) {

		if next[i], err = s.update(monic, roots, i); err != nil {
			return
		}

		residuals[i], err = s.residual(p, next[i])
		return
	}

	if workers := s.params.Workers(); workers > 1 {

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(utils.Min(workers, len(roots)))

		for i := range roots {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return update(i)
			})
		}

		if err := g.Wait(); err != nil {
			return nil, ConvergenceState{}, err
		}

	} else {
		for i := range roots {
			if err := update(i); err != nil {
				return nil, ConvergenceState{}, err
			}
		}
	}

	return next, s.convergence(residuals), nil
}

// checkDuplicates returns a [*DuplicateRootsError] for the first pair of roots
// that are equal once rounded to RoundingDigits.
func (s *Solver) checkDuplicates(roots RootSet) (err error) {

	rounded := make(RootSet, len(roots))
	for i := range roots {
		if rounded[i], err = s.eval.Round(roots[i]); err != nil {
			return
		}
	}

	for i := range rounded {
		for j := i + 1; j < len(rounded); j++ {
			if rounded[i][0].Equal(rounded[j][0]) && rounded[i][1].Equal(rounded[j][1]) {
				return &DuplicateRootsError{I: i, J: j, Root: rounded[i]}
			}
		}
	}

	return
}

// update returns r_i - q(r_i) / prod_{j != i} (r_i - r_j).
func (s *Solver) update(monic bignum.Polynomial, roots RootSet, i int) (r bignum.Complex, err error) {

	eval := s.eval

	var num, diff bignum.Complex

	if num, err = monic.Evaluate(eval, roots[i]); err != nil {
		return
	}

	den := bignum.NewComplex(1, 0)

	for j := range roots {

		if j == i {
			continue
		}

		if diff, err = eval.Sub(roots[i], roots[j]); err != nil {
			return
		}

		if den, err = eval.Mul(den, diff); err != nil {
			return
		}
	}

	if num, err = eval.Quo(num, den); err != nil {
		return r, fmt.Errorf("root %d: %w", i, err)
	}

	return eval.Sub(roots[i], num)
}

func (s *Solver) residual(p bignum.Polynomial, r bignum.Complex) (bignum.Scalar, error) {
	y, err := p.Evaluate(s.eval, r)
	if err != nil {
		return bignum.Scalar{}, err
	}
	return s.eval.Abs(y)
}

func (s *Solver) convergence(residuals []bignum.Scalar) ConvergenceState {
	threshold := s.params.Threshold()
	for _, r := range residuals {
		if r.Cmp(threshold) > 0 {
			return ConvergenceState{Residuals: residuals}
		}
	}
	return ConvergenceState{Residuals: residuals, Converged: true}
}

func validate(p bignum.Polynomial) error {

	if len(p.Coeffs) < 2 {
		return fmt.Errorf("%d coefficients: %w", len(p.Coeffs), ErrDegenerateInput)
	}

	if p.Leading().IsZero() {
		return fmt.Errorf("zero leading coefficient: %w", ErrDegenerateInput)
	}

	return nil
}
