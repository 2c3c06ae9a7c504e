package hexbond

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/hexbond/hexbond/internal/syncmap"
)

// BatchGenerator runs several independent [Generator] attempts concurrently
// over clones of the same starting graph, each with its own random source,
// and keeps the first one that converges. Every individual attempt is still
// single-threaded internally; only the outer retry strategy is concurrent,
// since a stalled random walk on one worker should not block the others
// from succeeding.
type BatchGenerator struct {
	template *Graph
	cfg      Config
	workers  int
	log      *slog.Logger
}

// NewBatchGenerator returns a batch of workers independent attempts to
// generate a puzzle from template, each perturbed according to cfg.
func NewBatchGenerator(template *Graph, cfg Config, workers int, log *slog.Logger) *BatchGenerator {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &BatchGenerator{template: template, cfg: cfg, workers: workers, log: log}
}

// Run launches every worker and returns the graph of whichever one
// converges first. The remaining workers are canceled once a winner is
// found. If every worker fails (for instance because ctx is canceled first),
// Run returns the first error observed.
func (b *BatchGenerator) Run(parent context.Context) (*Graph, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var results syncmap.Map[int, *Graph]
	gr, ctx := errgroup.WithContext(ctx)
	for i := 0; i < b.workers; i++ {
		workerID := i
		gr.Go(func() error {
			g := b.template.Clone()
			rng := rand.New(rand.NewPCG(uint64(workerID)+1, uint64(workerID)*2+1))
			gen := NewGenerator(g, b.cfg, rng, b.log.With(slog.Int("worker", workerID)))
			if err := gen.Run(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					// Another worker already won and canceled the shared context.
					return nil
				}
				return err
			}
			results.Swap(workerID, g)
			cancel()
			return nil
		})
	}
	err := gr.Wait()

	var winner *Graph
	results.Range(func(_ int, g *Graph) bool {
		winner = g
		return false
	})
	if winner != nil {
		return winner, nil
	}
	if err == nil {
		// Every worker stopped on cancellation without converging, which
		// only happens when the caller's context was canceled.
		err = parent.Err()
	}
	return nil, err
}
