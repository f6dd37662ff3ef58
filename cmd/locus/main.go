package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/uncrr/locus/internal/configuration"
	"github.com/uncrr/locus/internal/filesystem"
	"github.com/uncrr/locus/internal/history"
	"github.com/uncrr/locus/internal/schema"
	"github.com/uncrr/locus/internal/tasks"
	"github.com/uncrr/locus/internal/ui"
)

const (
	stackTraceBufMax = 1 << 24
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	uiEnabled   = flag.Bool("ui", false, "launch the interactive inspector")
	jsonOutput  = flag.Bool("json", false, "emit inspection reports as JSON")
	checkOnly   = flag.Bool("check", false, "probe the addresses for existence only")
	workerCount = flag.Int("workers", 0, "concurrent existence probes (0 uses the configured value)")
	envFile     = flag.String("env", "", "path to an environment configuration file")
	historyFile = flag.String("history", "", "path to the visit history file (overrides configuration)")
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile  = flag.String("memprofile", "", "write memory profile to this file")
)

func setupLogging() *SlogManager {
	logManager := NewSlogManager()
	logManager.AddHandler("terminal", tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))

	slog.SetDefault(slog.New(logManager))

	return logManager
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()
}

func startApp(ctx context.Context, wg *sync.WaitGroup, app *App) {
	defer wg.Done()

	if app.uiHandler != nil {
		slog.Info("Waiting for UI...")
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if app.uiHandler.Ready.Load() || app.uiHandler.Failed.Load() {
				break
			}
		}
	}

	if err := app.Launch(ctx); err != nil {
		ExitCode = 1
	}
}

func startUI(wg *sync.WaitGroup, app *App, logManager *SlogManager) {
	defer wg.Done()

	if app.uiHandler == nil {
		return
	}

	terminalHandler, hasTerminal := logManager.GetHandler("terminal")

	logManager.AddHandler("ui", tint.NewHandler(app.uiHandler.LogWriter, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	}))
	logManager.RemoveHandler("terminal")

	defer func() {
		if hasTerminal {
			logManager.AddHandler("terminal", terminalHandler)
		}
		logManager.RemoveHandler("ui")
	}()

	if err := app.LaunchUI(); err != nil {
		slog.Error("UI failure: falling back to terminal.", "err", err)
	}
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()
	logManager := setupLogging()
	setupSignalHandlers(cancel)

	heapWatcher := newHeapWatcher(ctx)
	defer heapWatcher.Stop()

	cpuProfiler := newCPUProfiler(ctx, cpuprofile)
	defer cpuProfiler.Stop()

	allocProfiler := newAllocProfiler(ctx, memprofile)
	defer allocProfiler.Stop()

	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}
	configProvider := &configuration.GodotenvProvider{}

	fsHandler := filesystem.NewHandler(osProvider, unixProvider)
	configHandler := configuration.NewHandler(configProvider)

	settings := resolveSettings(configHandler, *envFile)
	if *historyFile != "" {
		settings.HistoryFile = *historyFile
	}
	if *workerCount > 0 {
		settings.MaxWorkers = *workerCount
	}

	store := history.NewStore(settings.HistoryLimit)
	taskManager := tasks.NewManager()

	var uiHandler *ui.Handler
	if uiEnabled != nil && *uiEnabled {
		uiHandler = ui.NewHandler(ctx, cancel, fsHandler, store)
	}

	app := NewApp(fsHandler, store, taskManager, uiHandler, settings, flag.Args(), *jsonOutput, *checkOnly)

	if settings.HistoryFile != "" {
		if err := app.RestoreHistory(settings.HistoryFile); err != nil {
			slog.Warn("Failed to restore the visit history.", "err", err)
		}

		defer func() {
			if err := app.PersistHistory(settings.HistoryFile); err != nil {
				slog.Warn("Failed to persist the visit history.", "err", err)
			}
		}()
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go startUI(&wg, app, logManager)

	wg.Add(1)
	go startApp(ctx, &wg, app)

	wg.Wait()
}
