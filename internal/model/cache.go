package model

import (
	"context"
	"log/slog"

	"github.com/maypok86/otter/v2"
)

// CachedPredictor memoizes successful predictions. The wrapped model must be
// pure for this to be correct.
type CachedPredictor struct {
	next   Predictor
	cache  *otter.Cache[Input, float64]
	logger *slog.Logger
}

// NewCachedPredictor wraps next with a bounded cache. A size of zero or less
// returns next unchanged.
func NewCachedPredictor(next Predictor, size int, logger *slog.Logger) Predictor {
	if size <= 0 {
		return next
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedPredictor{
		next: next,
		cache: otter.Must(&otter.Options[Input, float64]{
			MaximumSize: size,
		}),
		logger: logger,
	}
}

func (c *CachedPredictor) Predict(ctx context.Context, in Input) (float64, error) {
	if hours, ok := c.cache.GetIfPresent(in); ok {
		c.logger.Debug("prediction cache hit", "input", in.Vector())
		return hours, nil
	}

	hours, err := c.next.Predict(ctx, in)
	if err != nil {
		return 0, err
	}
	c.cache.Set(in, hours)
	return hours, nil
}

// Len returns the approximate number of cached predictions.
func (c *CachedPredictor) Len() int {
	return c.cache.EstimatedSize()
}
