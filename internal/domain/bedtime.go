package domain

import (
	"fmt"
	"math"
	"time"
)

// AnnouncementTitle is shown above the computed bedtime.
const AnnouncementTitle = "Your ideal bedtime is..."

// MaxPredictionHours bounds the predictions the calculator accepts.
const MaxPredictionHours = 1_000_000

// BedtimeRequest is the form state read once at calculation time.
type BedtimeRequest struct {
	WakeTime     WakeTime
	SleepAmount  float64
	CoffeeAmount int
}

// DefaultBedtimeRequest mirrors the initial form state.
func DefaultBedtimeRequest() BedtimeRequest {
	return BedtimeRequest{
		WakeTime:     DefaultWakeTime,
		SleepAmount:  DefaultSleepAmount,
		CoffeeAmount: DefaultCoffeeAmount,
	}
}

// CalculateBedtimeRequest is the request body for the bedtime endpoint.
// @Description Form inputs for a bedtime calculation.
type CalculateBedtimeRequest struct {
	// Wake-up time of day (HH:MM, 24h)
	WakeTime *WakeTime `json:"wake_time" validate:"required" swaggertype:"string" example:"07:00"`
	// Desired amount of sleep in hours, quarter-hour steps
	SleepAmount *float64 `json:"sleep_amount" validate:"required,min=4,max=12,quarterhour" example:"8" minimum:"4" maximum:"12"`
	// Daily coffee intake in cups
	CoffeeAmount *int `json:"coffee_amount" validate:"required,min=1,max=20" example:"2" minimum:"1" maximum:"20"`
}

// ToBedtimeRequest converts a validated request body into form state.
func (r *CalculateBedtimeRequest) ToBedtimeRequest() BedtimeRequest {
	return BedtimeRequest{
		WakeTime:     *r.WakeTime,
		SleepAmount:  *r.SleepAmount,
		CoffeeAmount: *r.CoffeeAmount,
	}
}

// Bedtime is a clock time relative to the wake-up day.
// @Description Recommended bedtime; day_offset -1 means the day before waking.
type Bedtime struct {
	Hour      int `json:"hour" example:"23"`
	Minute    int `json:"minute" example:"45"`
	DayOffset int `json:"day_offset" example:"-1"`
}

// BedtimeBefore subtracts hours of sleep from the wake time, wrapping across
// midnight. Seconds are dropped, not rounded.
func BedtimeBefore(wake WakeTime, hours float64) Bedtime {
	seconds := float64(wake.SecondsOfDay()) - hours*SecondsPerHour
	// strip float noise such as 26279.999999996 before flooring
	seconds = math.Round(seconds*1e6) / 1e6

	days := math.Floor(seconds / SecondsPerDay)
	ofDay := int(seconds - days*SecondsPerDay)

	return Bedtime{
		Hour:      ofDay / SecondsPerHour,
		Minute:    (ofDay % SecondsPerHour) / SecondsPerMinute,
		DayOffset: int(days),
	}
}

// Format renders the bedtime as a short time of day.
func (b Bedtime) Format(clock ClockFormat) string {
	t := time.Date(2000, time.January, 1, b.Hour, b.Minute, 0, 0, time.UTC)
	return t.Format(clock.Layout())
}

func (b Bedtime) String() string {
	return fmt.Sprintf("%02d:%02d", b.Hour, b.Minute)
}

// Announcement is the outcome shown to the user after a calculation.
// @Description Bedtime announcement with title and formatted message.
type Announcement struct {
	// Alert title
	Title string `json:"title" example:"Your ideal bedtime is..."`
	// Alert message, the bedtime as a short time of day
	Message string `json:"message" example:"23:45"`
	// Structured bedtime
	Bedtime *Bedtime `json:"bedtime,omitempty"`
	// Sleep the model predicts is needed, in hours
	PredictedSleepHours *float64 `json:"predicted_sleep_hours,omitempty" example:"7.25"`
}

// ClockFormat selects 24-hour or 12-hour time rendering.
type ClockFormat string

const (
	Clock24h ClockFormat = "24h"
	Clock12h ClockFormat = "12h"
)

// ParseClockFormat falls back to Clock24h for unknown values.
func ParseClockFormat(s string) ClockFormat {
	if ClockFormat(s) == Clock12h {
		return Clock12h
	}
	return Clock24h
}

func (c ClockFormat) Layout() string {
	if c == Clock12h {
		return "3:04 PM"
	}
	return "15:04"
}
