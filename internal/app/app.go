// Package app implements the application layer for tana.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"go.trai.ch/tana/internal/adapters/detector"
	"go.trai.ch/tana/internal/adapters/httpapi"
	"go.trai.ch/tana/internal/adapters/linear"
	"go.trai.ch/tana/internal/adapters/metrics"
	"go.trai.ch/tana/internal/adapters/notify"
	"go.trai.ch/tana/internal/adapters/store"
	"go.trai.ch/tana/internal/adapters/telemetry"
	"go.trai.ch/tana/internal/adapters/tui"
	"go.trai.ch/tana/internal/adapters/watcher"
	"go.trai.ch/tana/internal/core/domain"
	"go.trai.ch/tana/internal/core/ports"
	"go.trai.ch/tana/internal/engine/indexer"
	"go.trai.ch/zerr"
)

// App wires the adapters into the watch, scan, and clean operations.
type App struct {
	logger ports.Logger
	loader ports.ConfigLoader
	hub    *notify.Hub
}

// New creates a new App instance.
func New(logger ports.Logger, loader ports.ConfigLoader, hub *notify.Hub) *App {
	return &App{
		logger: logger,
		loader: loader,
		hub:    hub,
	}
}

// WatchOptions carries per-invocation flag overrides for Watch.
type WatchOptions struct {
	// Root overrides library.root from the config file.
	Root string
	// Addr overrides serve.addr.
	Addr string
	// Output selects the render mode: auto, dashboard, plain, ci.
	Output string
	// NoServe disables the HTTP API.
	NoServe bool
}

// fileLogger is satisfied by loggers that can mirror output to a file.
type fileLogger interface {
	SetFile(path string)
}

// Watch runs the full pipeline: initial scan, recursive watching, throttled
// persistence, reconcile broadcasts, live rendering, and the HTTP API. It
// returns when ctx is cancelled or the dashboard is quit.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	settings, err := a.settings(opts.Root)
	if err != nil {
		return err
	}
	if opts.Addr != "" {
		settings.ServeAddr = opts.Addr
	}
	a.configureLogging(settings)

	mode := detector.Resolve(detector.Detect(), opts.Output)

	var renderer ports.Renderer
	if mode == detector.ModeDashboard {
		renderer = tui.NewRenderer(tui.NewModel())
	} else {
		renderer = linear.NewRenderer(nil, nil)
	}

	provider := telemetry.NewProvider(renderer)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	st, recorder, registry := a.openStore(settings)
	defer func() {
		if err := st.Close(); err != nil {
			a.logger.Error(err)
		}
	}()

	w := watcher.New(settings.RenameWindow, a.logger)

	ix := indexer.New(indexer.Config{
		Root:         settings.Root,
		Store:        st,
		Watcher:      w,
		Notifier:     a.hub,
		Renderer:     renderer,
		Logger:       a.logger,
		Metrics:      recorder,
		Tracer:       provider.Tracer(),
		NotifyWindow: settings.FlushWindow,
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := renderer.Start(runCtx); err != nil {
		return err
	}
	rendererDone := make(chan struct{})
	if mode == detector.ModeDashboard {
		// Quitting the dashboard ends the watch.
		go func() {
			_ = renderer.Wait()
			cancel()
			close(rendererDone)
		}()
	} else {
		close(rendererDone)
	}

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		return ix.Run(gctx)
	})

	if !opts.NoServe {
		srv := httpapi.NewServer(settings.ServeAddr, st, a.hub, a.logger, registry)
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		// Ends the event sequence, letting the indexer drain and return.
		return w.Stop()
	})

	err = g.Wait()

	_ = renderer.Stop()
	<-rendererDone

	return err
}

// ScanOptions carries flag overrides for Scan.
type ScanOptions struct {
	Root string
}

// Scan performs a one-shot full derivation of the library, persists it, and
// prints a summary.
func (a *App) Scan(ctx context.Context, opts ScanOptions) error {
	settings, err := a.settings(opts.Root)
	if err != nil {
		return err
	}
	a.configureLogging(settings)

	renderer := linear.NewRenderer(nil, nil)
	provider := telemetry.NewProvider(renderer)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	st, recorder, _ := a.openStore(settings)

	ix := indexer.New(indexer.Config{
		Root:         settings.Root,
		Store:        st,
		Watcher:      watcher.New(settings.RenameWindow, a.logger),
		Notifier:     a.hub,
		Renderer:     renderer,
		Logger:       a.logger,
		Metrics:      recorder,
		Tracer:       provider.Tracer(),
		NotifyWindow: settings.FlushWindow,
	})

	if err := ix.Scan(ctx); err != nil {
		_ = st.Close()
		return err
	}

	if err := st.Close(); err != nil {
		return err
	}

	snap := st.Snapshot()
	a.logger.Info(fmt.Sprintf("indexed %d collections, %d chapters → %s",
		len(snap), snap.TotalChapters(), settings.IndexPath))
	return nil
}

// Clean removes the persisted index file and any leftover temp file.
func (a *App) Clean(_ context.Context, root string) error {
	settings, err := a.settings(root)
	if err != nil {
		return err
	}

	_ = os.Remove(settings.IndexPath + ".tmp")

	if err := os.Remove(settings.IndexPath); err != nil {
		if os.IsNotExist(err) {
			a.logger.Info("no index to clean")
			return nil
		}
		return zerr.Wrap(err, "failed to remove index")
	}

	a.logger.Info("removed " + settings.IndexPath)
	return nil
}

// settings loads configuration and applies the root override.
func (a *App) settings(rootOverride string) (domain.Settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to get working directory")
	}

	settings, err := a.loader.Load(cwd)
	if err != nil {
		return domain.Settings{}, err
	}

	if rootOverride != "" {
		abs, err := filepath.Abs(rootOverride)
		if err != nil {
			return domain.Settings{}, zerr.Wrap(err, domain.ErrInvalidRoot.Error())
		}
		settings.Root = abs
		settings.IndexPath = ""
	}

	if settings.Root == "" {
		return domain.Settings{}, domain.ErrRootNotConfigured
	}
	if settings.IndexPath == "" {
		settings.IndexPath = domain.DefaultIndexPath(settings.Root)
	}

	return settings, nil
}

func (a *App) configureLogging(settings domain.Settings) {
	if settings.LogJSON {
		a.logger.SetJSON(true)
	}
	if settings.LogFile != "" {
		if fl, ok := a.logger.(fileLogger); ok {
			fl.SetFile(settings.LogFile)
		}
	}
}

// openStore opens the persisted index and registers the metrics for it.
// A corrupt index is logged and replaced by an empty one.
func (a *App) openStore(settings domain.Settings) (*store.Store, *metrics.Recorder, *prometheus.Registry) {
	recorder := metrics.NewRecorder()

	st, err := store.Open(settings.IndexPath, settings.FlushWindow, func(err error) {
		recorder.FlushFailed()
		a.logger.Error(err)
	})
	if err != nil {
		// Unreadable index: start over from empty rather than refusing to run.
		a.logger.Error(err)
	}

	registry := prometheus.NewRegistry()
	recorder.Register(registry)
	registry.MustRegister(metrics.NewLibraryCollector(st.Snapshot))

	return st, recorder, registry
}
