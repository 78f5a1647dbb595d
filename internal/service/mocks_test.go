package service

import (
	"context"

	"github.com/blaisecz/better-rest/internal/model"
)

// MockPredictor is a mock implementation of model.Predictor
type MockPredictor struct {
	predictFunc func(ctx context.Context, in model.Input) (float64, error)
	calls       []model.Input
}

func (m *MockPredictor) Predict(ctx context.Context, in model.Input) (float64, error) {
	m.calls = append(m.calls, in)
	if m.predictFunc != nil {
		return m.predictFunc(ctx, in)
	}
	return in.EstimatedSleep, nil
}

// constantPredictor always predicts the same number of hours.
func constantPredictor(hours float64) *MockPredictor {
	return &MockPredictor{
		predictFunc: func(ctx context.Context, in model.Input) (float64, error) {
			return hours, nil
		},
	}
}
