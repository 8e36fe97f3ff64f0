package intercept

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"go.trai.ch/cull/internal/core/domain"
	"go.trai.ch/cull/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Interceptor orchestrates one strategy-driven run against a lock document
// or vendor tree. It owns the run's audit report: every operation records
// what it removed, stubbed, or found suspicious, and Report returns the
// accumulated result once the run is over.
type Interceptor struct {
	cfg    *domain.Config
	forge  ports.Synthesizer
	store  ports.StubStore
	tree   ports.VendorTree
	logger ports.Logger
	tracer ports.Tracer

	mu     sync.Mutex
	report domain.Report
}

// NewInterceptor creates an Interceptor for one run of the given
// configuration.
func NewInterceptor(
	cfg *domain.Config,
	forge ports.Synthesizer,
	store ports.StubStore,
	tree ports.VendorTree,
	logger ports.Logger,
	tracer ports.Tracer,
) *Interceptor {
	return &Interceptor{
		cfg:    cfg,
		forge:  forge,
		store:  store,
		tree:   tree,
		logger: logger,
		tracer: tracer,
		report: domain.Report{Strategy: cfg.Strategy},
	}
}

// Report returns a snapshot of everything recorded so far. The snapshot
// shares no state with the interceptor, so callers may keep it while hooks
// are still running.
func (i *Interceptor) Report() domain.Report {
	i.mu.Lock()
	defer i.mu.Unlock()

	r := i.report
	r.Excluded = slices.Clone(i.report.Excluded)
	r.Stubbed = slices.Clone(i.report.Stubbed)
	r.PrunedDirs = slices.Clone(i.report.PrunedDirs)
	r.Warnings = slices.Clone(i.report.Warnings)
	r.Failures = slices.Clone(i.report.Failures)
	return r
}

// FilterDocument prunes doc against the configured rules and records the
// removals in the run report. The input document is never mutated.
func (i *Interceptor) FilterDocument(ctx context.Context, doc *domain.LockDocument) *domain.LockDocument {
	_, span := i.tracer.Start(ctx, "filter")
	defer span.End()

	pruned, result := domain.Prune(doc, i.cfg.Rules)

	i.mu.Lock()
	i.report.Excluded = append(i.report.Excluded, result.Excluded...)
	i.report.DroppedRefs += result.DroppedRefs
	i.mu.Unlock()

	for _, pattern := range result.UnmatchedRules {
		i.warn(domain.WarnUnmatchedRule, fmt.Sprintf("exclusion rule %q matched no package", pattern))
	}
	for _, ref := range result.Ambiguous {
		i.warn(domain.WarnAmbiguousRef, fmt.Sprintf(
			"%s depends on %q without a version, %d versions remain",
			ref.Owner, ref.Name, len(ref.Versions),
		))
	}

	span.SetAttribute("excluded", len(result.Excluded))
	span.SetAttribute("dropped_refs", result.DroppedRefs)
	return pruned
}

// StubArtifact synthesizes and materializes the stub for a single excluded
// package and returns the directory holding it. checksum may be empty when
// the caller has no lock entry at hand; the stub then carries the null
// sentinel and the run records a warning.
func (i *Interceptor) StubArtifact(ctx context.Context, id domain.PackageID, checksum string) (string, error) {
	dir, err := i.buildStub(ctx, id, checksum)
	if err != nil {
		i.recordFailure(id, err)
		return "", err
	}

	if checksum == "" {
		i.warn(domain.WarnChecksumMissing, checksumWarning(id))
	}
	i.recordStubbed(id)
	return dir, nil
}

// SynthesizeAll materializes a stub for every excluded entry of doc. Each
// package is processed independently: a failing stub lands in the report's
// failures and does not stop the others. The only error returned is
// context cancellation.
func (i *Interceptor) SynthesizeAll(ctx context.Context, doc *domain.LockDocument) error {
	ctx, span := i.tracer.Start(ctx, "synthesize stubs")
	defer span.End()

	var targets []*domain.Package
	for idx := range doc.Packages {
		if i.excluded(doc.Packages[idx].ID) {
			targets = append(targets, &doc.Packages[idx])
		}
	}

	errs := make([]error, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(i.workerLimit())
	for idx, pkg := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, errs[idx] = i.buildStub(ctx, pkg.ID, pkg.Checksum)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Recorded after the fact, in document order, so the report does not
	// depend on worker interleaving.
	stubbed := 0
	for idx, pkg := range targets {
		if errs[idx] != nil {
			i.recordFailure(pkg.ID, errs[idx])
			continue
		}
		if pkg.Checksum == "" {
			i.warn(domain.WarnChecksumMissing, checksumWarning(pkg.ID))
		}
		i.recordStubbed(pkg.ID)
		stubbed++
	}

	span.SetAttribute("stubbed", stubbed)
	span.SetAttribute("failed", len(targets)-stubbed)
	return nil
}

// PruneTree deletes every vendored package directory matching the rules
// from the tree at root. Directory names are matched as written and, for
// versioned layouts, with the version suffix stripped. When doc is non-nil
// the removals are cross checked against it and every entry the lock still
// lists is reported as drift; without a document a single drift warning
// covers the whole prune.
func (i *Interceptor) PruneTree(ctx context.Context, root string, doc *domain.LockDocument) error {
	ctx, span := i.tracer.Start(ctx, "prune vendor")
	defer span.End()

	dirs, err := i.tree.Dirs(root)
	if err != nil {
		span.RecordError(err)
		return err
	}

	// Each removal is recorded as it happens so an aborted walk still
	// leaves an accurate audit trail.
	var pruned []string
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !i.matchesDir(dir) {
			continue
		}
		if err := i.tree.Remove(root, dir); err != nil {
			span.RecordError(err)
			return err
		}
		pruned = append(pruned, dir)
		i.mu.Lock()
		i.report.PrunedDirs = append(i.report.PrunedDirs, dir)
		i.mu.Unlock()
	}

	span.SetAttribute("pruned", len(pruned))

	if len(pruned) == 0 {
		return nil
	}
	if doc == nil {
		i.warn(domain.WarnVendorDrift, fmt.Sprintf(
			"pruned %d of %d vendor entries without rewriting the lock document, lock and tree may now disagree",
			len(pruned), len(dirs),
		))
		return nil
	}
	for _, dir := range pruned {
		for idx := range doc.Packages {
			pkg := &doc.Packages[idx]
			if pkg.Name() == dir || pkg.ID.DirName() == dir {
				i.warn(domain.WarnVendorDrift, fmt.Sprintf(
					"vendor directory %q removed but the lock document still lists %s", dir, pkg.ID,
				))
			}
		}
	}
	return nil
}

// buildStub renders one stub and writes it into the store. Safe for
// concurrent calls with distinct ids: the forge is pure and the store is
// content addressed.
func (i *Interceptor) buildStub(ctx context.Context, id domain.PackageID, checksum string) (string, error) {
	_, span := i.tracer.Start(ctx, id.String())
	defer span.End()

	stub, err := i.forge.Synthesize(id, checksum, i.cfg.Features.For(id.Name.String()))
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	dir, err := i.store.Materialize(i.cfg.StorePath, stub)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	span.SetAttribute("dir", dir)
	return dir, nil
}

// excluded reports whether the rule set excludes the package's name.
func (i *Interceptor) excluded(id domain.PackageID) bool {
	return i.cfg.Rules.Matches(id.Name.String())
}

// matchesDir reports whether a vendor directory name is excluded. cargo
// writes plain name directories by default and name-version directories
// for multi version trees, so both spellings are tried.
func (i *Interceptor) matchesDir(dir string) bool {
	if i.cfg.Rules.Matches(dir) {
		return true
	}
	name, ok := splitVersionSuffix(dir)
	return ok && i.cfg.Rules.Matches(name)
}

// splitVersionSuffix strips a trailing -version segment from a vendor
// directory name. The version part of such a name always starts with a
// digit, so the split point is the last hyphen followed by one.
func splitVersionSuffix(dir string) (string, bool) {
	for idx := len(dir) - 2; idx > 0; idx-- {
		if dir[idx] == '-' && dir[idx+1] >= '0' && dir[idx+1] <= '9' {
			return dir[:idx], true
		}
	}
	return "", false
}

// workerLimit bounds concurrent stub synthesis. Zero configured workers
// means one worker per logical CPU.
func (i *Interceptor) workerLimit() int {
	if i.cfg.Workers > 0 {
		return i.cfg.Workers
	}
	return runtime.NumCPU()
}

func checksumWarning(id domain.PackageID) string {
	return fmt.Sprintf("no checksum known for %s, stub carries the null sentinel", id)
}

func (i *Interceptor) warn(kind domain.WarningKind, detail string) {
	i.mu.Lock()
	i.report.Warn(kind, detail)
	i.mu.Unlock()
	i.logger.Warn(detail)
}

func (i *Interceptor) recordStubbed(id domain.PackageID) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.report.Stubbed = append(i.report.Stubbed, id)
}

func (i *Interceptor) recordFailure(id domain.PackageID, err error) {
	i.mu.Lock()
	i.report.Failures = append(i.report.Failures, domain.StubFailure{ID: id, Err: err})
	i.mu.Unlock()
	i.logger.Error(err)
}
