package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func init() {
	color.NoColor = true
}

// fakePrompter answers prompts from canned values and records what was asked.
type fakePrompter struct {
	inputs  []string
	selects []int
	err     error

	asked []string
	seen  []SelectConfig
}

func (f *fakePrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	f.asked = append(f.asked, cfg.Message)
	if f.err != nil {
		return "", f.err
	}
	answer := cfg.Default
	if len(f.inputs) > 0 {
		answer, f.inputs = f.inputs[0], f.inputs[1:]
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (f *fakePrompter) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	f.asked = append(f.asked, cfg.Message)
	f.seen = append(f.seen, cfg)
	if f.err != nil {
		return 0, f.err
	}
	if len(f.selects) == 0 {
		return cfg.DefaultIndex, nil
	}
	idx := f.selects[0]
	f.selects = f.selects[1:]
	return idx, nil
}

func TestRunForm_Defaults(t *testing.T) {
	p := &fakePrompter{}

	got, err := RunForm(context.Background(), p, domain.NewFormDefaults())
	if err != nil {
		t.Fatalf("RunForm() error = %v", err)
	}
	if diff := cmp.Diff(domain.DefaultBedtimeRequest(), got); diff != "" {
		t.Errorf("RunForm() mismatch (-want +got):\n%s", diff)
	}

	wantAsked := []string{"When do you want to wake up?", "Desired amount of sleep", "Daily coffee intake"}
	if diff := cmp.Diff(wantAsked, p.asked); diff != "" {
		t.Errorf("prompts mismatch (-want +got):\n%s", diff)
	}

	sleep := p.seen[0]
	if len(sleep.Options) != 33 || sleep.Options[0] != "4 hours" || sleep.Options[32] != "12 hours" {
		t.Errorf("unexpected sleep options: %v", sleep.Options)
	}
	if sleep.Options[sleep.DefaultIndex] != "8 hours" {
		t.Errorf("sleep default = %q, want 8 hours", sleep.Options[sleep.DefaultIndex])
	}

	coffee := p.seen[1]
	if len(coffee.Options) != 20 || coffee.Options[0] != "1 cup" || coffee.Options[19] != "20 cups" {
		t.Errorf("unexpected coffee options: %v", coffee.Options)
	}
}

func TestRunForm_Answers(t *testing.T) {
	p := &fakePrompter{
		inputs:  []string{"06:30"},
		selects: []int{17, 2}, // 8.25 hours, 3 cups
	}

	got, err := RunForm(context.Background(), p, domain.NewFormDefaults())
	if err != nil {
		t.Fatalf("RunForm() error = %v", err)
	}
	want := domain.BedtimeRequest{WakeTime: domain.WakeTime{Hour: 6, Minute: 30}, SleepAmount: 8.25, CoffeeAmount: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RunForm() mismatch (-want +got):\n%s", diff)
	}
}

func TestRunForm_Errors(t *testing.T) {
	if _, err := RunForm(context.Background(), &fakePrompter{err: ErrAborted}, domain.NewFormDefaults()); !errors.Is(err, ErrAborted) {
		t.Errorf("error = %v, want ErrAborted", err)
	}

	p := &fakePrompter{inputs: []string{"25:00"}}
	if _, err := RunForm(context.Background(), p, domain.NewFormDefaults()); !errors.Is(err, domain.ErrInvalidWakeTime) {
		t.Errorf("error = %v, want ErrInvalidWakeTime", err)
	}

	p = &fakePrompter{selects: []int{99, 0}}
	if _, err := RunForm(context.Background(), p, domain.NewFormDefaults()); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestRenderAnnouncement(t *testing.T) {
	bedtime := domain.Bedtime{Hour: 23, Minute: 45, DayOffset: -1}
	predicted := 7.25
	a := &domain.Announcement{
		Title:               domain.AnnouncementTitle,
		Message:             "23:45",
		Bedtime:             &bedtime,
		PredictedSleepHours: &predicted,
	}

	var text bytes.Buffer
	if err := RenderAnnouncement(&text, a, FormatText); err != nil {
		t.Fatal(err)
	}
	want := "Your ideal bedtime is...\n23:45\n(the night before)\nPredicted sleep need: 7.25 hours\n"
	if text.String() != want {
		t.Errorf("text output = %q, want %q", text.String(), want)
	}

	var out bytes.Buffer
	if err := RenderAnnouncement(&out, a, FormatJSON); err != nil {
		t.Fatal(err)
	}
	var decoded domain.Announcement
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(*a, decoded); diff != "" {
		t.Errorf("json round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderFailure(t *testing.T) {
	cause := errors.New("prediction failed: sleep model unavailable")

	var silent bytes.Buffer
	if err := RenderFailure(&silent, cause, domain.ErrorModeSilent, FormatText); err != nil {
		t.Fatal(err)
	}
	if silent.Len() != 0 {
		t.Errorf("silent mode printed %q", silent.String())
	}

	var surfaced bytes.Buffer
	if err := RenderFailure(&surfaced, cause, domain.ErrorModeSurface, FormatText); err != nil {
		t.Fatal(err)
	}
	out := surfaced.String()
	if !strings.Contains(out, domain.ErrorAnnouncementMessage) || !strings.Contains(out, "sleep model unavailable") {
		t.Errorf("surfaced output = %q", out)
	}

	var js bytes.Buffer
	if err := RenderFailure(&js, cause, domain.ErrorModeSurface, FormatJSON); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["title"] != domain.ErrorAnnouncementTitle || decoded["error"] != cause.Error() {
		t.Errorf("unexpected json failure: %v", decoded)
	}
}

func TestRenderFormDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderFormDefaults(&buf, domain.NewFormDefaults(), FormatText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"07:00", "8 hours (4 hours to 12 hours, step 0.25 hours)", "1 cup (1 to 20)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
