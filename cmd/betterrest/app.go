package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/blaisecz/better-rest/internal/config"
	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/internal/logging"
	"github.com/blaisecz/better-rest/internal/model"
	"github.com/blaisecz/better-rest/internal/service"
	"github.com/blaisecz/better-rest/internal/tui"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"
)

// errCalculationFailed is returned after the failure has been rendered, so
// main only needs to set the exit code.
var errCalculationFailed = errors.New("bedtime calculation failed")

type app struct {
	cfg      *config.Config
	stdout   io.Writer
	stderr   io.Writer
	prompter tui.Prompter
}

func newApp(cfg *config.Config, stdout, stderr io.Writer, prompter tui.Prompter) *cli.App {
	a := &app{cfg: cfg, stdout: stdout, stderr: stderr, prompter: prompter}

	return &cli.App{
		Name:      "betterrest",
		Usage:     "Find out when to go to bed",
		Version:   fmt.Sprintf("%s (commit: %s)", version, commit),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: cfg.LogLevel,
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "model",
				Value: cfg.ModelPath,
				Usage: "Path to a YAML coefficient file (built-in weights when empty)",
			},
			&cli.StringFlag{
				Name:  "clock",
				Value: string(cfg.ClockFormat),
				Usage: "Clock format for the bedtime (24h, 12h)",
			},
			&cli.StringFlag{
				Name:  "error-mode",
				Value: string(cfg.ErrorMode),
				Usage: "How failed predictions are shown (surface, silent)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(tui.FormatText),
				Usage:   "Output format (text, json)",
			},
		},
		Commands: []*cli.Command{
			a.calculateCommand(),
			a.formCommand(),
			a.defaultsCommand(),
			a.modelCommand(),
		},
	}
}

func (a *app) calculateCommand() *cli.Command {
	return &cli.Command{
		Name:  "calculate",
		Usage: "Calculate a bedtime from flags",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "wake",
				Aliases: []string{"w"},
				Value:   domain.DefaultWakeTime.String(),
				Usage:   "Wake-up time (HH:MM)",
			},
			&cli.Float64Flag{
				Name:    "sleep",
				Aliases: []string{"s"},
				Value:   domain.DefaultSleepAmount,
				Usage:   "Desired amount of sleep in hours (4-12, step 0.25)",
			},
			&cli.IntFlag{
				Name:    "coffee",
				Aliases: []string{"c"},
				Value:   domain.DefaultCoffeeAmount,
				Usage:   "Daily coffee intake in cups (1-20)",
			},
		},
		Action: func(c *cli.Context) error {
			wake, err := domain.ParseWakeTime(c.String("wake"))
			if err != nil {
				return err
			}
			req := domain.BedtimeRequest{
				WakeTime:     wake,
				SleepAmount:  c.Float64("sleep"),
				CoffeeAmount: c.Int("coffee"),
			}
			if err := validateRequest(req); err != nil {
				return err
			}
			return a.calculate(c, req)
		},
	}
}

func (a *app) formCommand() *cli.Command {
	return &cli.Command{
		Name:  "form",
		Usage: "Fill in the bedtime form interactively",
		Action: func(c *cli.Context) error {
			req, err := tui.RunForm(c.Context, a.prompter, domain.NewFormDefaults())
			if err != nil {
				return err
			}
			return a.calculate(c, req)
		},
	}
}

func (a *app) defaultsCommand() *cli.Command {
	return &cli.Command{
		Name:  "defaults",
		Usage: "Show the initial form values and ranges",
		Action: func(c *cli.Context) error {
			return tui.RenderFormDefaults(a.stdout, domain.NewFormDefaults(), tui.OutputFormat(c.String("format")))
		},
	}
}

func (a *app) modelCommand() *cli.Command {
	return &cli.Command{
		Name:  "model",
		Usage: "Show the active model coefficients",
		Action: func(c *cli.Context) error {
			coef, err := model.LoadCoefficients(c.String("model"))
			if err != nil {
				return err
			}
			if tui.OutputFormat(c.String("format")) == tui.FormatJSON {
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(coef)
			}
			fmt.Fprintf(a.stdout, "%s %s\n", coef.Name, coef.Version)
			fmt.Fprintf(a.stdout, "  intercept:       %g\n", coef.Intercept)
			fmt.Fprintf(a.stdout, "  wake:            %g\n", coef.Wake)
			fmt.Fprintf(a.stdout, "  estimated_sleep: %g\n", coef.EstimatedSleep)
			fmt.Fprintf(a.stdout, "  coffee:          %g\n", coef.Coffee)
			return nil
		},
	}
}

func (a *app) calculate(c *cli.Context, req domain.BedtimeRequest) error {
	logger := a.logger(c)
	mode := domain.ParseErrorMode(c.String("error-mode"))
	format := tui.OutputFormat(c.String("format"))

	svc := service.NewBedtimeService(
		model.NewLazyLinearModel(c.String("model"), logger),
		service.BedtimeOptions{
			Clock:     domain.ParseClockFormat(c.String("clock")),
			ErrorMode: mode,
		},
		logger,
	)

	announcement, err := svc.Calculate(c.Context, req)
	if err != nil {
		if renderErr := tui.RenderFailure(a.stdout, err, svc.ErrorMode(), format); renderErr != nil {
			return renderErr
		}
		return errCalculationFailed
	}
	return tui.RenderAnnouncement(a.stdout, announcement, format)
}

func (a *app) logger(c *cli.Context) *slog.Logger {
	return logging.New(a.stderr, c.String("log-level"))
}

// validateRequest applies the form control ranges to flag input.
func validateRequest(req domain.BedtimeRequest) error {
	if req.SleepAmount < domain.MinSleepAmount || req.SleepAmount > domain.MaxSleepAmount || !domain.IsQuarterStep(req.SleepAmount) {
		return fmt.Errorf("%w: sleep must be between %s and %s in quarter hours",
			domain.ErrInvalidInput,
			domain.SleepAmountLabel(domain.MinSleepAmount),
			domain.SleepAmountLabel(domain.MaxSleepAmount),
		)
	}
	if req.CoffeeAmount < domain.MinCoffeeAmount || req.CoffeeAmount > domain.MaxCoffeeAmount {
		return fmt.Errorf("%w: coffee must be between %d and %d cups",
			domain.ErrInvalidInput, domain.MinCoffeeAmount, domain.MaxCoffeeAmount)
	}
	return nil
}
