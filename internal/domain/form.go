package domain

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Form control ranges. The controls enforce them; the calculator trusts them.
const (
	MinSleepAmount     = 4.0
	MaxSleepAmount     = 12.0
	SleepAmountStep    = 0.25
	DefaultSleepAmount = 8.0

	MinCoffeeAmount     = 1
	MaxCoffeeAmount     = 20
	DefaultCoffeeAmount = 1
)

// FormRange describes a stepper control.
// @Description Stepper bounds and increment.
type FormRange struct {
	Min  float64 `json:"min" example:"4"`
	Max  float64 `json:"max" example:"12"`
	Step float64 `json:"step" example:"0.25"`
}

// FormDefaults is the initial form state and the bounds of each control.
// @Description Initial form values and control ranges.
type FormDefaults struct {
	WakeTime          WakeTime  `json:"wake_time" swaggertype:"string" example:"07:00"`
	SleepAmount       float64   `json:"sleep_amount" example:"8"`
	SleepAmountLabel  string    `json:"sleep_amount_label" example:"8 hours"`
	SleepAmountRange  FormRange `json:"sleep_amount_range"`
	CoffeeAmount      int       `json:"coffee_amount" example:"1"`
	CoffeeAmountLabel string    `json:"coffee_amount_label" example:"1 cup"`
	CoffeeAmountRange FormRange `json:"coffee_amount_range"`
}

func NewFormDefaults() FormDefaults {
	return FormDefaults{
		WakeTime:          DefaultWakeTime,
		SleepAmount:       DefaultSleepAmount,
		SleepAmountLabel:  SleepAmountLabel(DefaultSleepAmount),
		SleepAmountRange:  FormRange{Min: MinSleepAmount, Max: MaxSleepAmount, Step: SleepAmountStep},
		CoffeeAmount:      DefaultCoffeeAmount,
		CoffeeAmountLabel: CoffeeAmountLabel(DefaultCoffeeAmount),
		CoffeeAmountRange: FormRange{Min: MinCoffeeAmount, Max: MaxCoffeeAmount, Step: 1},
	}
}

// IsQuarterStep reports whether hours is a whole multiple of SleepAmountStep.
func IsQuarterStep(hours float64) bool {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return false
	}
	return decimal.NewFromFloat(hours).Mod(decimal.NewFromFloat(SleepAmountStep)).IsZero()
}

// SleepAmountLabel renders "8 hours", "8.25 hours".
func SleepAmountLabel(hours float64) string {
	return decimal.NewFromFloat(hours).String() + " hours"
}

// CoffeeAmountLabel renders "1 cup", "3 cups".
func CoffeeAmountLabel(cups int) string {
	if cups == 1 {
		return "1 cup"
	}
	return strconv.Itoa(cups) + " cups"
}
