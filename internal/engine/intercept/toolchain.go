package intercept

import (
	"context"

	"go.trai.ch/cull/internal/core/domain"
	"go.trai.ch/cull/internal/core/ports"
)

// Toolchain wraps base in the decorator for the configured strategy. The
// decorator overrides exactly one hook; every other hook delegates to base
// unchanged. An unknown strategy intercepts nothing and returns base as is.
func (i *Interceptor) Toolchain(base ports.Toolchain) ports.Toolchain {
	p := passthrough{base: base}
	switch i.cfg.Strategy {
	case domain.StrategyFetchStub:
		return &fetchStub{passthrough: p, i: i}
	case domain.StrategyLockFilter:
		return &lockFilter{passthrough: p, i: i}
	case domain.StrategyVendorPrune:
		return &vendorPrune{passthrough: p, i: i}
	default:
		return base
	}
}

// passthrough delegates every hook to the wrapped toolchain. The strategy
// decorators embed it and override their single hook.
type passthrough struct {
	base ports.Toolchain
}

func (p passthrough) FetchPackage(ctx context.Context, id domain.PackageID) (string, error) {
	return p.base.FetchPackage(ctx, id)
}

func (p passthrough) PrepareVendorTree(ctx context.Context, doc *domain.LockDocument) (*domain.LockDocument, string, error) {
	return p.base.PrepareVendorTree(ctx, doc)
}

func (p passthrough) VendorTreeReady(ctx context.Context, dir string) (string, error) {
	return p.base.VendorTreeReady(ctx, dir)
}

// fetchStub serves excluded packages from the stub store at fetch time.
// Retained packages are fetched by the real toolchain; excluded ones never
// touch the network.
type fetchStub struct {
	passthrough
	i *Interceptor
}

func (t *fetchStub) FetchPackage(ctx context.Context, id domain.PackageID) (string, error) {
	if !t.i.excluded(id) {
		return t.base.FetchPackage(ctx, id)
	}
	return t.i.StubArtifact(ctx, id, "")
}

// lockFilter rewrites the lock document before the toolchain vendors it,
// so excluded packages never enter the tree at all.
type lockFilter struct {
	passthrough
	i *Interceptor
}

func (t *lockFilter) PrepareVendorTree(ctx context.Context, doc *domain.LockDocument) (*domain.LockDocument, string, error) {
	return t.base.PrepareVendorTree(ctx, t.i.FilterDocument(ctx, doc))
}

// vendorPrune lets the toolchain finish the vendor tree, then deletes the
// directories of excluded packages. The lock document is left untouched,
// which the run reports as drift.
type vendorPrune struct {
	passthrough
	i *Interceptor
}

func (t *vendorPrune) VendorTreeReady(ctx context.Context, dir string) (string, error) {
	dir, err := t.base.VendorTreeReady(ctx, dir)
	if err != nil {
		return "", err
	}
	if err := t.i.PruneTree(ctx, dir, nil); err != nil {
		return "", err
	}
	return dir, nil
}
