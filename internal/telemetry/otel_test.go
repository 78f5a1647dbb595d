package telemetry

import (
	"context"
	"testing"

	"github.com/blaisecz/better-rest/internal/config"
	"github.com/google/go-cmp/cmp"
)

func TestParseHeaders(t *testing.T) {
	got := ParseHeaders("Authorization=Basic abc==, x-tenant = sleep ,broken,=empty")
	want := map[string]string{
		"Authorization": "Basic abc==",
		"x-tenant":      "sleep",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseHeaders() mismatch (-want +got):\n%s", diff)
	}

	if got := ParseHeaders(""); len(got) != 0 {
		t.Errorf("ParseHeaders(\"\") = %v, want empty", got)
	}
}

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), &config.Config{}, "better-rest-test")
	if err != nil {
		t.Fatalf("InitTracer() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}
