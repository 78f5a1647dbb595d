package model

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"os"

	"github.com/blaisecz/better-rest/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed sleep_calculator.yaml
var defaultCoefficients []byte

// Coefficients are the fixed weights of the linear sleep model.
type Coefficients struct {
	Name           string  `json:"name" yaml:"name"`
	Version        string  `json:"version" yaml:"version"`
	Intercept      float64 `json:"intercept" yaml:"intercept"`
	Wake           float64 `json:"wake" yaml:"wake"`
	EstimatedSleep float64 `json:"estimated_sleep" yaml:"estimated_sleep"`
	Coffee         float64 `json:"coffee" yaml:"coffee"`
}

// Validate rejects NaN and infinite weights.
func (c Coefficients) Validate() error {
	weights := map[string]float64{
		"intercept":       c.Intercept,
		"wake":            c.Wake,
		"estimated_sleep": c.EstimatedSleep,
		"coffee":          c.Coffee,
	}
	for name, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: %s is %v", domain.ErrInvalidCoefficient, name, w)
		}
	}
	return nil
}

// LinearModel is a fixed-weights linear regression over Input.
type LinearModel struct {
	coef Coefficients
}

// NewLinearModel validates the coefficients and returns a model.
func NewLinearModel(coef Coefficients) (*LinearModel, error) {
	if err := coef.Validate(); err != nil {
		return nil, err
	}
	return &LinearModel{coef: coef}, nil
}

func (m *LinearModel) Coefficients() Coefficients {
	return m.coef
}

func (m *LinearModel) Predict(ctx context.Context, in Input) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return m.coef.Intercept +
		m.coef.Wake*in.Wake +
		m.coef.EstimatedSleep*in.EstimatedSleep +
		m.coef.Coffee*in.Coffee, nil
}

// ParseCoefficients decodes a YAML (or JSON) coefficient document.
func ParseCoefficients(data []byte) (Coefficients, error) {
	var coef Coefficients
	if err := yaml.Unmarshal(data, &coef); err != nil {
		return Coefficients{}, fmt.Errorf("parse coefficients: %w", err)
	}
	if err := coef.Validate(); err != nil {
		return Coefficients{}, err
	}
	return coef, nil
}

// LoadCoefficients reads coefficients from path, or the built-in set when
// path is empty.
func LoadCoefficients(path string) (Coefficients, error) {
	if path == "" {
		return ParseCoefficients(defaultCoefficients)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Coefficients{}, fmt.Errorf("read coefficients: %w", err)
	}
	return ParseCoefficients(data)
}

// LoadLinearModel is LoadCoefficients followed by NewLinearModel.
func LoadLinearModel(path string) (*LinearModel, error) {
	coef, err := LoadCoefficients(path)
	if err != nil {
		return nil, err
	}
	return NewLinearModel(coef)
}
