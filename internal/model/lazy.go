package model

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/blaisecz/better-rest/internal/domain"
)

// LoadFunc builds the underlying predictor.
type LoadFunc func() (Predictor, error)

// LazyModel builds its predictor on first use. A successful load is kept;
// a failed one is retried on the next call.
type LazyModel struct {
	load   LoadFunc
	logger *slog.Logger

	mu        sync.Mutex
	predictor Predictor
}

func NewLazyModel(load LoadFunc, logger *slog.Logger) *LazyModel {
	if logger == nil {
		logger = slog.Default()
	}
	return &LazyModel{load: load, logger: logger}
}

// NewLazyLinearModel lazily loads a LinearModel from path (built-in weights
// when empty).
func NewLazyLinearModel(path string, logger *slog.Logger) *LazyModel {
	return NewLazyModel(func() (Predictor, error) {
		return LoadLinearModel(path)
	}, logger)
}

func (m *LazyModel) Predict(ctx context.Context, in Input) (float64, error) {
	p, err := m.get()
	if err != nil {
		return 0, err
	}
	return p.Predict(ctx, in)
}

// Loaded reports whether the predictor has been built.
func (m *LazyModel) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.predictor != nil
}

func (m *LazyModel) get() (Predictor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.predictor != nil {
		return m.predictor, nil
	}

	p, err := m.load()
	if err != nil {
		m.logger.Warn("sleep model load failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}
	m.logger.Info("sleep model loaded")
	m.predictor = p
	return p, nil
}
