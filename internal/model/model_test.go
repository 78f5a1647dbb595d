package model

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/google/go-cmp/cmp"
)

func TestInput_Vector(t *testing.T) {
	in := Input{Wake: 25200, EstimatedSleep: 8, Coffee: 2}
	want := [3]float64{25200, 8, 2}
	if got := in.Vector(); got != want {
		t.Errorf("Vector() = %v, want %v", got, want)
	}
}

func TestLinearModel_Predict(t *testing.T) {
	m, err := NewLinearModel(Coefficients{Intercept: 1, Wake: 0.0001, EstimatedSleep: 0.5, Coffee: 0.25})
	if err != nil {
		t.Fatalf("NewLinearModel: %v", err)
	}

	got, err := m.Predict(context.Background(), Input{Wake: 10000, EstimatedSleep: 8, Coffee: 4})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	// 1 + 1 + 4 + 1
	if math.Abs(got-7) > 1e-9 {
		t.Errorf("Predict() = %v, want 7", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Predict(ctx, Input{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Predict() with cancelled context error = %v", err)
	}
}

func TestNewLinearModel_RejectsNonFinite(t *testing.T) {
	_, err := NewLinearModel(Coefficients{Coffee: math.Inf(1)})
	if !errors.Is(err, domain.ErrInvalidCoefficient) {
		t.Errorf("error = %v, want ErrInvalidCoefficient", err)
	}
}

func TestParseCoefficients(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    Coefficients
		wantErr bool
	}{
		{
			name: "yaml",
			doc:  "name: test\nversion: \"2\"\nintercept: 0.5\nwake: -0.00001\nestimated_sleep: 0.9\ncoffee: 0.1\n",
			want: Coefficients{Name: "test", Version: "2", Intercept: 0.5, Wake: -0.00001, EstimatedSleep: 0.9, Coffee: 0.1},
		},
		{
			name: "json is valid yaml",
			doc:  `{"intercept": 1, "wake": 0, "estimated_sleep": 1, "coffee": 0}`,
			want: Coefficients{Intercept: 1, EstimatedSleep: 1},
		},
		{
			name:    "nan weight",
			doc:     "intercept: .nan\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			doc:     "intercept: [1, 2",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoefficients([]byte(tt.doc))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCoefficients() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseCoefficients() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadCoefficients(t *testing.T) {
	builtin, err := LoadCoefficients("")
	if err != nil {
		t.Fatalf("built-in coefficients: %v", err)
	}
	if builtin.Name != "sleep-calculator" {
		t.Errorf("built-in name = %q", builtin.Name)
	}

	path := filepath.Join(t.TempDir(), "model.yaml")
	if err := os.WriteFile(path, []byte("intercept: 2\nestimated_sleep: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	m, err := LoadLinearModel(path)
	if err != nil {
		t.Fatalf("LoadLinearModel: %v", err)
	}
	got, _ := m.Predict(context.Background(), Input{EstimatedSleep: 8})
	if got != 10 {
		t.Errorf("Predict() = %v, want 10", got)
	}

	if _, err := LoadCoefficients(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLazyModel(t *testing.T) {
	calls := 0
	fail := true
	lazy := NewLazyModel(func() (Predictor, error) {
		calls++
		if fail {
			return nil, errors.New("weights missing")
		}
		return PredictFunc(func(ctx context.Context, in Input) (float64, error) {
			return in.EstimatedSleep, nil
		}), nil
	}, nil)

	if lazy.Loaded() {
		t.Fatal("model loaded before first use")
	}

	_, err := lazy.Predict(context.Background(), Input{EstimatedSleep: 8})
	if !errors.Is(err, domain.ErrModelUnavailable) {
		t.Fatalf("error = %v, want ErrModelUnavailable", err)
	}

	fail = false
	for i := 0; i < 3; i++ {
		got, err := lazy.Predict(context.Background(), Input{EstimatedSleep: 8})
		if err != nil || got != 8 {
			t.Fatalf("Predict() = %v, %v", got, err)
		}
	}
	if calls != 2 {
		t.Errorf("load called %d times, want 2", calls)
	}
	if !lazy.Loaded() {
		t.Error("model should be loaded")
	}
}

func TestCachedPredictor(t *testing.T) {
	calls := 0
	inner := PredictFunc(func(ctx context.Context, in Input) (float64, error) {
		calls++
		if in.Coffee > 10 {
			return 0, errors.New("boom")
		}
		return in.EstimatedSleep - 0.5, nil
	})

	p := NewCachedPredictor(inner, 16, nil)
	in := Input{Wake: 25200, EstimatedSleep: 8, Coffee: 2}

	for i := 0; i < 3; i++ {
		got, err := p.Predict(context.Background(), in)
		if err != nil || got != 7.5 {
			t.Fatalf("Predict() = %v, %v", got, err)
		}
	}
	if calls != 1 {
		t.Errorf("inner called %d times, want 1", calls)
	}

	bad := Input{Coffee: 12}
	p.Predict(context.Background(), bad)
	p.Predict(context.Background(), bad)
	if calls != 3 {
		t.Errorf("failures should not be cached, inner called %d times", calls)
	}
}

func TestNewCachedPredictor_Disabled(t *testing.T) {
	inner := PredictFunc(func(ctx context.Context, in Input) (float64, error) { return 1, nil })
	if _, ok := NewCachedPredictor(inner, 0, nil).(PredictFunc); !ok {
		t.Error("size 0 should return the inner predictor")
	}
}
