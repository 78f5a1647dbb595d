package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
	SecondsPerDay    = 24 * SecondsPerHour
)

// WakeTime is the time of day the user wants to wake up, minute precision.
// @Description Wake-up time of day in HH:MM (24h) format.
type WakeTime struct {
	Hour   int
	Minute int
}

// DefaultWakeTime is the form's initial wake time, 07:00.
var DefaultWakeTime = WakeTime{Hour: 7, Minute: 0}

// NewWakeTime returns a WakeTime or ErrInvalidWakeTime when hour or minute
// are out of range.
func NewWakeTime(hour, minute int) (WakeTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return WakeTime{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidWakeTime, hour, minute)
	}
	return WakeTime{Hour: hour, Minute: minute}, nil
}

// ParseWakeTime parses "HH:MM" or "H:MM".
func ParseWakeTime(s string) (WakeTime, error) {
	hourStr, minuteStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(minuteStr) != 2 || hourStr == "" || len(hourStr) > 2 {
		return WakeTime{}, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidWakeTime, s)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return WakeTime{}, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidWakeTime, s)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return WakeTime{}, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidWakeTime, s)
	}
	return NewWakeTime(hour, minute)
}

// SecondsOfDay encodes the wake time as seconds since midnight, the scale
// the sleep model was trained on.
func (w WakeTime) SecondsOfDay() int {
	return w.Hour*SecondsPerHour + w.Minute*SecondsPerMinute
}

func (w WakeTime) String() string {
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}

func (w WakeTime) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

func (w *WakeTime) UnmarshalText(text []byte) error {
	parsed, err := ParseWakeTime(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
