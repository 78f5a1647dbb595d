// BetterRest CLI
//
// Usage:
//
//	betterrest calculate --wake 07:00 --sleep 8 --coffee 2
//	betterrest form
//	betterrest defaults
//	betterrest model
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/blaisecz/better-rest/internal/config"
	"github.com/blaisecz/better-rest/internal/tui"
)

func main() {
	cfg := config.Load()

	app := newApp(cfg, os.Stdout, os.Stderr, tui.NewSurveyPrompter())
	if err := app.Run(os.Args); err != nil {
		if !errors.Is(err, errCalculationFailed) && !errors.Is(err, tui.ErrAborted) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
