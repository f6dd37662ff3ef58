package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/uncrr/locus/internal/address"
	"github.com/uncrr/locus/internal/filesystem"
	"github.com/uncrr/locus/internal/history"
	"github.com/uncrr/locus/internal/tasks"
	"github.com/uncrr/locus/internal/ui"
)

// App is the principal structure wiring all handlers of the application.
type App struct {
	fsHandler   *filesystem.Handler
	store       *history.Store
	taskManager *tasks.Manager
	uiHandler   *ui.Handler

	settings  *Settings
	addresses []string
	jsonOut   bool
	checkOnly bool

	out io.Writer
}

// NewApp returns a pointer to a new [App].
func NewApp(fsHandler *filesystem.Handler,
	store *history.Store,
	taskManager *tasks.Manager,
	uiHandler *ui.Handler,
	settings *Settings,
	addresses []string,
	jsonOut bool,
	checkOnly bool,
) *App {
	return &App{
		fsHandler:   fsHandler,
		store:       store,
		taskManager: taskManager,
		uiHandler:   uiHandler,
		settings:    settings,
		addresses:   addresses,
		jsonOut:     jsonOut,
		checkOnly:   checkOnly,
		out:         os.Stdout,
	}
}

// Launch runs the selected batch mode over the given addresses.
func (app *App) Launch(ctx context.Context) error {
	if app.checkOnly {
		if err := app.Check(ctx); err != nil {
			return fmt.Errorf("(app) %w", err)
		}

		return nil
	}

	if err := app.Inspect(ctx); err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	return nil
}

// LaunchUI starts the interactive inspector.
func (app *App) LaunchUI() error {
	if err := app.uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}

// Inspect resolves each given address into a structured report, recording
// successful resolutions in the visit history. Reports are written as aligned
// text or JSON; with the UI owning the terminal, they are logged instead.
func (app *App) Inspect(ctx context.Context) error {
	if len(app.addresses) == 0 {
		if app.uiHandler == nil {
			slog.Info("Nothing to inspect.",
				"hint", "pass one or more addresses or launch with -ui",
				"version", Version,
			)
		}

		return nil
	}

	encoder := json.NewEncoder(app.out)

	failures := 0

	for _, raw := range app.addresses {
		select {
		case <-ctx.Done():
			return fmt.Errorf("(app-inspect) %w", ctx.Err())
		default:
		}

		report, err := app.buildReport(raw)
		if err != nil {
			slog.Error("Not a usable address.",
				"address", raw,
				"err", err,
			)
			failures++

			continue
		}

		app.store.Record(report.addr)

		switch {
		case app.uiHandler != nil:
			slog.Info("Inspected address.",
				"display", report.Display,
				"scheme", report.Scheme,
				"hash", report.Hash,
			)
		case app.jsonOut:
			if err := encoder.Encode(report); err != nil {
				return fmt.Errorf("(app-inspect) %w", err)
			}
		default:
			fmt.Fprintln(app.out, report.Text())
		}
	}

	if failures > 0 {
		return fmt.Errorf("(app-inspect) %w", ErrInspectFailed)
	}

	return nil
}

// checkResult holds the outcome of one existence probe.
type checkResult struct {
	raw       string
	display   string
	exists    bool
	maybe     bool
	checkable bool
	parseErr  error
}

// Check probes each given address for existence on the local filesystem, with
// the probes running concurrently up to the configured worker bound.
func (app *App) Check(ctx context.Context) error {
	results := make([]checkResult, len(app.addresses))

	for i, raw := range app.addresses {
		app.taskManager.Add(func() {
			results[i] = app.probeAddress(raw)
		})
	}

	if err := app.taskManager.RunConcWait(ctx, app.settings.MaxWorkers); err != nil {
		return fmt.Errorf("(app-check) %w", err)
	}

	failures := 0

	for _, res := range results {
		switch {
		case res.parseErr != nil:
			slog.Error("Not a usable address.",
				"address", res.raw,
				"err", res.parseErr,
			)
			failures++
		case !res.checkable:
			slog.Warn("Address is not locally checkable.", "address", res.display)
		case res.exists:
			slog.Info("Address exists.", "address", res.display)
		case res.maybe:
			slog.Warn("Address could not be verified.", "address", res.display)
		default:
			slog.Warn("Address does not exist.", "address", res.display)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("(app-check) %w", ErrCheckFailed)
	}

	return nil
}

// probeAddress resolves one raw address and probes its location, when that
// location is addressable on the local filesystem.
func (app *App) probeAddress(raw string) checkResult {
	res := checkResult{raw: raw}

	u, err := address.Parse(raw)
	if err != nil {
		res.parseErr = err

		return res
	}

	res.display = u.String()

	path, ok := u.AsPath()
	if !ok {
		return res
	}

	res.checkable = true
	res.exists = app.fsHandler.MustExist(path)
	res.maybe = app.fsHandler.MaybeExist(path)

	return res
}

// RestoreHistory loads the visit history from the given file. A missing file
// is not an error, as is the case on a first run.
func (app *App) RestoreHistory(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("(app-history) %w", err)
	}
	defer f.Close()

	if err := app.store.Load(f); err != nil {
		return fmt.Errorf("(app-history) %w", err)
	}

	slog.Info("Restored the visit history.",
		"path", path,
		"entries", app.store.Len(),
	)

	return nil
}

// PersistHistory saves the visit history to the given file.
func (app *App) PersistHistory(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("(app-history) %w", err)
	}
	defer f.Close()

	if err := app.store.Save(f); err != nil {
		return fmt.Errorf("(app-history) %w", err)
	}

	return nil
}
