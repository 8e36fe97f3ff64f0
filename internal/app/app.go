// Package app implements the application layer for cull.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cull/internal/adapters/stubforge"
	"go.trai.ch/cull/internal/adapters/telemetry"
	"go.trai.ch/cull/internal/core/domain"
	"go.trai.ch/cull/internal/core/ports"
	"go.trai.ch/cull/internal/engine/intercept"
	"go.trai.ch/zerr"
)

// App represents the main application logic. Each operation loads the
// project configuration, assembles a run-scoped interceptor, and returns
// the run's report alongside any error.
type App struct {
	configLoader ports.ConfigLoader
	repo         ports.LockRepository
	store        ports.StubStore
	tree         ports.VendorTree
	logger       ports.Logger
	tracer       ports.Tracer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	repo ports.LockRepository,
	store ports.StubStore,
	tree ports.VendorTree,
	logger ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		repo:         repo,
		store:        store,
		tree:         tree,
		logger:       logger,
		tracer:       tracer,
	}
}

// FilterLock rewrites the lock document in place, dropping every entry the
// exclusion rules match. The document is only written back when the filter
// actually removed something.
func (a *App) FilterLock(ctx context.Context) (domain.Report, error) {
	rn, err := a.newRun(domain.StrategyLockFilter)
	if err != nil {
		return domain.Report{}, err
	}

	doc, err := a.repo.Load(rn.cfg.LockPath)
	if err != nil {
		return rn.interceptor.Report(), err
	}

	pruned := rn.interceptor.FilterDocument(ctx, doc)

	report := rn.interceptor.Report()
	if len(report.Excluded) == 0 && report.DroppedRefs == 0 {
		a.logger.Info(fmt.Sprintf("nothing to remove from %s", rn.cfg.LockPath))
		return report, nil
	}

	if err := a.repo.Save(rn.cfg.LockPath, pruned); err != nil {
		return report, err
	}

	a.logger.Info(fmt.Sprintf("removed %d of %d packages from %s",
		len(report.Excluded), doc.Len(), rn.cfg.LockPath))
	return report, nil
}

// SynthesizeStubs materializes a stub for every excluded entry of the lock
// document. Per-package failures are collected in the report; the returned
// error summarizes them without hiding the packages that succeeded.
func (a *App) SynthesizeStubs(ctx context.Context) (domain.Report, error) {
	rn, err := a.newRun(domain.StrategyFetchStub)
	if err != nil {
		return domain.Report{}, err
	}

	doc, err := a.repo.Load(rn.cfg.LockPath)
	if err != nil {
		return rn.interceptor.Report(), err
	}

	if err := rn.interceptor.SynthesizeAll(ctx, doc); err != nil {
		return rn.interceptor.Report(), err
	}

	report := rn.interceptor.Report()
	a.logger.Info(fmt.Sprintf("materialized %d stubs under %s",
		len(report.Stubbed), rn.cfg.StorePath))
	if report.Failed() {
		return report, zerr.With(domain.ErrStubFailed, "failed", len(report.Failures))
	}
	return report, nil
}

// PruneVendor deletes excluded package directories from the vendor tree.
// When the lock document can be read it is cross-checked against the
// deletions to surface drift; a missing or unreadable lock only degrades
// the warnings, never the prune itself.
func (a *App) PruneVendor(ctx context.Context) (domain.Report, error) {
	rn, err := a.newRun(domain.StrategyVendorPrune)
	if err != nil {
		return domain.Report{}, err
	}

	var doc *domain.LockDocument
	if d, err := a.repo.Load(rn.cfg.LockPath); err == nil {
		doc = d
	} else if !errors.Is(err, domain.ErrLockNotFound) {
		a.logger.Warn(fmt.Sprintf("cannot cross-check the lock document: %v", err))
	}

	if err := rn.interceptor.PruneTree(ctx, rn.cfg.VendorDir, doc); err != nil {
		return rn.interceptor.Report(), err
	}

	report := rn.interceptor.Report()
	a.logger.Info(fmt.Sprintf("pruned %d vendor directories from %s",
		len(report.PrunedDirs), rn.cfg.VendorDir))
	return report, nil
}

// Toolchain wraps base in the interception decorator for the configured
// strategy. The returned interceptor accumulates the run's report while the
// caller's pipeline drives the hooks.
func (a *App) Toolchain(base ports.Toolchain) (ports.Toolchain, *intercept.Interceptor, error) {
	rn, err := a.newRun("")
	if err != nil {
		return nil, nil, err
	}
	return rn.interceptor.Toolchain(base), rn.interceptor, nil
}

// Clean removes the stub store.
func (a *App) Clean(_ context.Context) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := os.RemoveAll(cfg.StorePath); err != nil {
		return zerr.Wrap(err, "failed to remove stub store")
	}

	a.logger.Info(fmt.Sprintf("removed %s", cfg.StorePath))
	return nil
}

// run holds the pieces assembled for a single operation.
type run struct {
	cfg         *domain.Config
	interceptor *intercept.Interceptor
}

// newRun loads the configuration and assembles the run-scoped pieces: the
// forge for the configured stub mode and the interceptor around it. A
// non-empty strategy overrides the configured one, which is how the direct
// CLI operations label their runs.
func (a *App) newRun(strategy domain.Strategy) (*run, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if strategy != "" {
		cfg.Strategy = strategy
	}

	setupOTel(a.logger)

	forge := stubforge.NewForge(cfg.StubMode)
	return &run{
		cfg:         cfg,
		interceptor: intercept.NewInterceptor(cfg, forge, a.store, a.tree, a.logger, a.tracer),
	}, nil
}

// setupOTel points the global OpenTelemetry provider at a span processor
// that forwards finished spans to the logger.
func setupOTel(logger ports.Logger) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(telemetry.NewLogBridge(logger)),
	)
	otel.SetTracerProvider(tp)
}
