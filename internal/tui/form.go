package tui

import (
	"context"
	"fmt"

	"github.com/blaisecz/better-rest/internal/domain"
)

// RunForm asks for wake time, sleep amount and coffee intake, starting from
// defaults, and returns the completed form state.
func RunForm(ctx context.Context, p Prompter, defaults domain.FormDefaults) (domain.BedtimeRequest, error) {
	wakeStr, err := p.Input(ctx, InputConfig{
		Message: "When do you want to wake up?",
		Default: defaults.WakeTime.String(),
		Help:    "24-hour time, HH:MM",
		Validator: func(s string) error {
			_, err := domain.ParseWakeTime(s)
			return err
		},
	})
	if err != nil {
		return domain.BedtimeRequest{}, err
	}
	wake, err := domain.ParseWakeTime(wakeStr)
	if err != nil {
		return domain.BedtimeRequest{}, err
	}

	sleepOptions := sleepAmountOptions(defaults.SleepAmountRange)
	sleepIdx, err := p.Select(ctx, SelectConfig{
		Message:      "Desired amount of sleep",
		Options:      labels(sleepOptions, domain.SleepAmountLabel),
		DefaultIndex: indexOf(sleepOptions, defaults.SleepAmount),
		PageSize:     9,
	})
	if err != nil {
		return domain.BedtimeRequest{}, err
	}

	coffeeOptions := coffeeAmountOptions(defaults.CoffeeAmountRange)
	coffeeIdx, err := p.Select(ctx, SelectConfig{
		Message:      "Daily coffee intake",
		Options:      labels(coffeeOptions, domain.CoffeeAmountLabel),
		DefaultIndex: indexOf(coffeeOptions, defaults.CoffeeAmount),
		PageSize:     10,
	})
	if err != nil {
		return domain.BedtimeRequest{}, err
	}

	if sleepIdx < 0 || sleepIdx >= len(sleepOptions) || coffeeIdx < 0 || coffeeIdx >= len(coffeeOptions) {
		return domain.BedtimeRequest{}, fmt.Errorf("%w: selection out of range", domain.ErrInvalidInput)
	}

	return domain.BedtimeRequest{
		WakeTime:     wake,
		SleepAmount:  sleepOptions[sleepIdx],
		CoffeeAmount: coffeeOptions[coffeeIdx],
	}, nil
}

func sleepAmountOptions(r domain.FormRange) []float64 {
	var out []float64
	steps := int((r.Max - r.Min) / r.Step)
	for i := 0; i <= steps; i++ {
		out = append(out, r.Min+float64(i)*r.Step)
	}
	return out
}

func coffeeAmountOptions(r domain.FormRange) []int {
	var out []int
	for cups := int(r.Min); cups <= int(r.Max); cups++ {
		out = append(out, cups)
	}
	return out
}

func labels[T any](values []T, label func(T) string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = label(v)
	}
	return out
}

func indexOf[T comparable](values []T, want T) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return 0
}
