package handler

import (
	"context"

	"github.com/blaisecz/better-rest/internal/domain"
)

// MockBedtimeService is a mock implementation of BedtimeService
type MockBedtimeService struct {
	calculateFunc func(ctx context.Context, req domain.BedtimeRequest) (*domain.Announcement, error)
	errorMode     domain.ErrorMode
	requests      []domain.BedtimeRequest
}

func (m *MockBedtimeService) Calculate(ctx context.Context, req domain.BedtimeRequest) (*domain.Announcement, error) {
	m.requests = append(m.requests, req)
	if m.calculateFunc != nil {
		return m.calculateFunc(ctx, req)
	}
	bedtime := domain.Bedtime{Hour: 23, Minute: 45, DayOffset: -1}
	predicted := 7.25
	return &domain.Announcement{
		Title:               domain.AnnouncementTitle,
		Message:             "23:45",
		Bedtime:             &bedtime,
		PredictedSleepHours: &predicted,
	}, nil
}

func (m *MockBedtimeService) FormDefaults() domain.FormDefaults {
	return domain.NewFormDefaults()
}

func (m *MockBedtimeService) ErrorMode() domain.ErrorMode {
	if m.errorMode == "" {
		return domain.ErrorModeSurface
	}
	return m.errorMode
}
