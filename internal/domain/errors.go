package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidWakeTime    = errors.New("invalid wake time")
	ErrPredictionFailed   = errors.New("prediction failed")
	ErrModelUnavailable   = errors.New("sleep model unavailable")
	ErrInvalidCoefficient = errors.New("invalid model coefficient")
)
