package hexbond

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// Config controls how a [Generator] perturbs a puzzle graph. Distribution
// is indexed by [AtomKind] and weights how often each element is chosen
// when resampling a vertex; a zero weight at index [AtomUnspecified]
// (the default) means the generator never deliberately leaves a vertex
// unspecified once it has picked it for resampling.
type Config struct {
	Distribution [int(atomKindCount)]int
	NumChoices   int
	// MaxIterations caps how many perturbation attempts Run makes before
	// giving up with an error. Zero means unlimited, matching the original
	// generator's unconditional loop.
	MaxIterations int
}

// DefaultConfig returns the weighting used by the reference generator: never
// leave a vertex unspecified, and otherwise favor oxygen and nitrogen over
// hydrogen and carbon.
func DefaultConfig() Config {
	return Config{
		Distribution: [5]int{0, 1, 5, 8, 3},
		NumChoices:   2,
	}
}

// Generator repeatedly perturbs a small number of vertices in a puzzle
// graph, accepting a perturbation only if it keeps the puzzle solvable, and
// stops as soon as it finds a perturbation that leaves exactly one solution.
type Generator struct {
	g      *Graph
	cuts   *CutSet
	solver *LazySolver
	cfg    Config
	rng    *rand.Rand
	log    *slog.Logger
}

// NewGenerator returns a generator that perturbs g in place. rng supplies
// all randomness (both vertex selection and element resampling), so callers
// control reproducibility; log receives per-iteration progress, or may be
// slog.Default() if the caller has no particular handler in mind.
func NewGenerator(g *Graph, cfg Config, rng *rand.Rand, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	cuts := &CutSet{}
	return &Generator{
		g:      g,
		cuts:   cuts,
		solver: NewLazySolver(g, cuts),
		cfg:    cfg,
		rng:    rng,
		log:    log,
	}
}

// Run perturbs the graph until exactly one solution remains, ctx is
// canceled, or cfg.MaxIterations attempts have been made. After Run returns
// successfully, the graph passed to [NewGenerator] holds both the final atom
// kinds and the solved bond orders of the puzzle's unique solution.
func (gen *Generator) Run(ctx context.Context) error {
	iterations := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if gen.cfg.MaxIterations > 0 && iterations >= gen.cfg.MaxIterations {
			return fmt.Errorf("hexbond: generator gave up after %d iterations without a unique solution", iterations)
		}

		indices, oldKinds := gen.pickAndPerturb()
		found, decisions, err := gen.solver.CountSolutions(2)
		if err != nil {
			return err
		}

		switch {
		case found == 1:
			gen.solver.ApplyFirstModel()
			gen.log.Info("puzzle generation converged",
				slog.Int("iterations", iterations), slog.Int("decisions", decisions))
			return nil
		case found >= 1:
			gen.log.Debug("accepted perturbation",
				slog.Int("iteration", iterations), slog.Int("solutions", found), slog.Int("cut_clauses", gen.cuts.Len()))
		default:
			gen.revert(indices, oldKinds)
			gen.log.Debug("rejected perturbation",
				slog.Int("iteration", iterations), slog.Int("cut_clauses", gen.cuts.Len()))
		}
		iterations++
	}
}

// pickAndPerturb chooses NumChoices vertices (preferring the unspecified
// stack before falling back to uniform-random atoms) and resamples each to
// a different kind, returning the chosen ids and their prior kinds so the
// caller can revert on rejection.
func (gen *Generator) pickAndPerturb() (indices []int, oldKinds []AtomKind) {
	indices = make([]int, gen.cfg.NumChoices)
	oldKinds = make([]AtomKind, gen.cfg.NumChoices)
	for i := range indices {
		if id, ok := gen.g.PopUnspecified(); ok {
			indices[i] = id
		} else {
			indices[i] = gen.rng.IntN(gen.g.NumAtoms())
		}
		oldKinds[i] = gen.g.Atom(indices[i]).Kind
	}
	for i, id := range indices {
		var next AtomKind
		for {
			next = gen.sampleKind()
			if next != oldKinds[i] {
				break
			}
		}
		gen.g.SetAtomKind(id, next)
	}
	return indices, oldKinds
}

func (gen *Generator) revert(indices []int, oldKinds []AtomKind) {
	for i, id := range indices {
		gen.g.SetAtomKind(id, oldKinds[i])
	}
}

// sampleKind draws an [AtomKind] from cfg.Distribution, weighted by index.
func (gen *Generator) sampleKind() AtomKind {
	total := 0
	for _, w := range gen.cfg.Distribution {
		total += w
	}
	r := gen.rng.IntN(total)
	for k, w := range gen.cfg.Distribution {
		if r < w {
			return AtomKind(k)
		}
		r -= w
	}
	panic("hexbond: distribution weights did not sum as expected")
}
