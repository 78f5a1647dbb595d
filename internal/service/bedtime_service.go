package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/internal/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// BedtimeService computes bedtimes from form state.
type BedtimeService interface {
	// Calculate returns the announcement for req, or an error wrapping
	// domain.ErrPredictionFailed when the model cannot produce a result.
	Calculate(ctx context.Context, req domain.BedtimeRequest) (*domain.Announcement, error)
	// FormDefaults returns the initial form state.
	FormDefaults() domain.FormDefaults
	// ErrorMode tells callers whether failures should be shown to the user.
	ErrorMode() domain.ErrorMode
}

// BedtimeOptions configures presentation of results.
type BedtimeOptions struct {
	Clock     domain.ClockFormat
	ErrorMode domain.ErrorMode
}

type bedtimeService struct {
	predictor model.Predictor
	opts      BedtimeOptions
	logger    *slog.Logger
}

// NewBedtimeService creates a BedtimeService backed by predictor.
func NewBedtimeService(predictor model.Predictor, opts BedtimeOptions, logger *slog.Logger) BedtimeService {
	if opts.Clock == "" {
		opts.Clock = domain.Clock24h
	}
	if opts.ErrorMode == "" {
		opts.ErrorMode = domain.ErrorModeSurface
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &bedtimeService{
		predictor: predictor,
		opts:      opts,
		logger:    logger,
	}
}

func (s *bedtimeService) Calculate(ctx context.Context, req domain.BedtimeRequest) (*domain.Announcement, error) {
	announcement, err := ComputeBedtime(ctx, req, s.predictor, s.opts.Clock)
	if err != nil {
		s.logger.ErrorContext(ctx, "bedtime calculation failed",
			"wake_time", req.WakeTime.String(),
			"sleep_amount", req.SleepAmount,
			"coffee_amount", req.CoffeeAmount,
			"error", err,
		)
		return nil, err
	}

	s.logger.DebugContext(ctx, "bedtime calculated",
		"wake_time", req.WakeTime.String(),
		"bedtime", announcement.Message,
	)
	return announcement, nil
}

func (s *bedtimeService) FormDefaults() domain.FormDefaults {
	return domain.NewFormDefaults()
}

func (s *bedtimeService) ErrorMode() domain.ErrorMode {
	return s.opts.ErrorMode
}

// ComputeBedtime asks predictor how much sleep req needs and counts back from
// the wake time. It has no side effects besides a trace span.
func ComputeBedtime(ctx context.Context, req domain.BedtimeRequest, predictor model.Predictor, clock domain.ClockFormat) (*domain.Announcement, error) {
	in := model.Input{
		Wake:           float64(req.WakeTime.SecondsOfDay()),
		EstimatedSleep: req.SleepAmount,
		Coffee:         float64(req.CoffeeAmount),
	}

	ctx, span := otel.Tracer("better-rest/service").Start(ctx, "bedtime.predict",
		trace.WithAttributes(
			attribute.Float64("model.input.wake", in.Wake),
			attribute.Float64("model.input.estimated_sleep", in.EstimatedSleep),
			attribute.Float64("model.input.coffee", in.Coffee),
		),
	)
	defer span.End()

	predicted, err := predictor.Predict(ctx, in)
	if err == nil && !isUsablePrediction(predicted) {
		err = fmt.Errorf("model returned %v hours", predicted)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "prediction failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrPredictionFailed, err)
	}
	span.SetAttributes(attribute.Float64("model.output.actual_sleep", predicted))

	bedtime := domain.BedtimeBefore(req.WakeTime, predicted)
	return &domain.Announcement{
		Title:               domain.AnnouncementTitle,
		Message:             bedtime.Format(clock),
		Bedtime:             &bedtime,
		PredictedSleepHours: &predicted,
	}, nil
}

func isUsablePrediction(hours float64) bool {
	return !math.IsNaN(hours) && !math.IsInf(hours, 0) && math.Abs(hours) <= domain.MaxPredictionHours
}
