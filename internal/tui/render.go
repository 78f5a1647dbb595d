package tui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/fatih/color"
)

// OutputFormat selects how announcements are printed.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	messageColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	hintColor    = color.New(color.FgHiBlack)
)

// RenderAnnouncement prints a successful calculation.
func RenderAnnouncement(w io.Writer, a *domain.Announcement, format OutputFormat) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(a)
	}

	titleColor.Fprintln(w, a.Title)
	messageColor.Fprintln(w, a.Message)
	if a.Bedtime != nil && a.Bedtime.DayOffset < 0 {
		hintColor.Fprintln(w, "(the night before)")
	}
	if a.PredictedSleepHours != nil {
		hintColor.Fprintf(w, "Predicted sleep need: %.2f hours\n", *a.PredictedSleepHours)
	}
	return nil
}

// RenderFailure prints a failed calculation according to mode. Silent mode
// prints nothing.
func RenderFailure(w io.Writer, err error, mode domain.ErrorMode, format OutputFormat) error {
	a := mode.ErrorAnnouncement()
	if a == nil {
		return nil
	}

	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*domain.Announcement
			Error string `json:"error"`
		}{Announcement: a, Error: err.Error()})
	}

	errorColor.Fprintln(w, a.Title)
	fmt.Fprintln(w, a.Message)
	hintColor.Fprintln(w, err.Error())
	return nil
}

// RenderFormDefaults prints the initial form state and control ranges.
func RenderFormDefaults(w io.Writer, d domain.FormDefaults, format OutputFormat) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	titleColor.Fprintln(w, "When do you want to wake up?")
	fmt.Fprintf(w, "  %s\n", d.WakeTime)
	titleColor.Fprintln(w, "Desired amount of sleep")
	fmt.Fprintf(w, "  %s (%s to %s, step %s)\n",
		d.SleepAmountLabel,
		domain.SleepAmountLabel(d.SleepAmountRange.Min),
		domain.SleepAmountLabel(d.SleepAmountRange.Max),
		domain.SleepAmountLabel(d.SleepAmountRange.Step),
	)
	titleColor.Fprintln(w, "Daily coffee intake")
	fmt.Fprintf(w, "  %s (%d to %d)\n", d.CoffeeAmountLabel, int(d.CoffeeAmountRange.Min), int(d.CoffeeAmountRange.Max))
	return nil
}
