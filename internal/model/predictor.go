// Package model wraps the trained sleep regression behind a small interface
// so the bedtime calculator never depends on a concrete model.
package model

import "context"

// Input is the feature vector the sleep model was trained on. Field order
// matches the training columns: wake, estimatedSleep, coffee.
type Input struct {
	// Wake is the wake-up time in seconds since midnight.
	Wake float64 `json:"wake" yaml:"wake"`
	// EstimatedSleep is the desired amount of sleep in hours.
	EstimatedSleep float64 `json:"estimated_sleep" yaml:"estimated_sleep"`
	// Coffee is the daily coffee intake in cups.
	Coffee float64 `json:"coffee" yaml:"coffee"`
}

// Vector returns the inputs in training column order.
func (in Input) Vector() [3]float64 {
	return [3]float64{in.Wake, in.EstimatedSleep, in.Coffee}
}

// Predictor returns the actual sleep, in hours, needed for the given inputs.
type Predictor interface {
	Predict(ctx context.Context, in Input) (float64, error)
}

// PredictFunc adapts a plain function to Predictor.
type PredictFunc func(ctx context.Context, in Input) (float64, error)

func (f PredictFunc) Predict(ctx context.Context, in Input) (float64, error) {
	return f(ctx, in)
}
