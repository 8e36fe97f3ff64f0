package intercept_test

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cull/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestToolchain_FetchStub_ServesExcludedFromStore(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, domain.StrategyFetchStub, "winhelper")
	i, m := setupInterceptor(t, cfg)

	excluded := domain.NewPackageID("winhelper", "0.1")
	retained := domain.NewPackageID("serde", "1.0")

	// The excluded package is synthesized and materialized, never fetched.
	m.forge.EXPECT().Synthesize(excluded, "", gomock.Nil()).Return(stubFor(excluded), nil)
	m.store.EXPECT().Materialize("/work/.cull/store", stubFor(excluded)).Return("/work/.cull/store/winhelper-0.1-ab12", nil)

	// The retained package goes to the real toolchain unchanged.
	m.toolchain.EXPECT().FetchPackage(gomock.Any(), retained).Return("/fetched/serde-1.0", nil)

	tc := i.Toolchain(m.toolchain)

	dir, err := tc.FetchPackage(t.Context(), excluded)
	require.NoError(t, err)
	assert.Equal(t, "/work/.cull/store/winhelper-0.1-ab12", dir)

	dir, err = tc.FetchPackage(t.Context(), retained)
	require.NoError(t, err)
	assert.Equal(t, "/fetched/serde-1.0", dir)

	report := i.Report()
	assert.Equal(t, domain.StrategyFetchStub, report.Strategy)
	assert.Equal(t, []domain.PackageID{excluded}, report.Stubbed)
}

func TestToolchain_FetchStub_DelegatesOtherHooks(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, domain.StrategyFetchStub, "winhelper")
	i, m := setupInterceptor(t, cfg)

	doc := lockDoc(
		pkgEntry("winhelper", "0.1.0", "c1"),
		pkgEntry("serde", "1.0.0", "c2"),
	)

	m.toolchain.EXPECT().PrepareVendorTree(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d *domain.LockDocument) (*domain.LockDocument, string, error) {
			return d, "/work/vendor", nil
		},
	)
	m.toolchain.EXPECT().VendorTreeReady(gomock.Any(), "/work/vendor").Return("/work/vendor", nil)

	tc := i.Toolchain(m.toolchain)

	// The document passes through unpruned; only the fetch hook is overridden.
	gotDoc, dir, err := tc.PrepareVendorTree(t.Context(), doc)
	require.NoError(t, err)
	require.Same(t, doc, gotDoc)
	assert.True(t, gotDoc.Has("winhelper"))
	assert.Equal(t, "/work/vendor", dir)

	gotDir, err := tc.VendorTreeReady(t.Context(), "/work/vendor")
	require.NoError(t, err)
	assert.Equal(t, "/work/vendor", gotDir)
}

func TestToolchain_FetchStub_ConcurrentDistinctIDs(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		cfg := testConfig(t, domain.StrategyFetchStub, "win*")
		i, m := setupInterceptor(t, cfg)

		win1 := domain.NewPackageID("win1", "1.0.0")
		win2 := domain.NewPackageID("win2", "2.0.0")

		m.forge.EXPECT().Synthesize(win1, "", gomock.Nil()).Return(stubFor(win1), nil)
		m.forge.EXPECT().Synthesize(win2, "", gomock.Nil()).Return(stubFor(win2), nil)
		m.store.EXPECT().Materialize(gomock.Any(), stubFor(win1)).Return("/store/win1", nil)
		m.store.EXPECT().Materialize(gomock.Any(), stubFor(win2)).Return("/store/win2", nil)

		tc := i.Toolchain(m.toolchain)

		done := make(chan error, 2)
		go func() {
			_, err := tc.FetchPackage(context.Background(), win1)
			done <- err
		}()
		go func() {
			_, err := tc.FetchPackage(context.Background(), win2)
			done <- err
		}()

		require.NoError(t, <-done)
		require.NoError(t, <-done)

		assert.ElementsMatch(t, []domain.PackageID{win1, win2}, i.Report().Stubbed)
	})
}

func TestToolchain_LockFilter_RewritesBeforeDelegation(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, domain.StrategyLockFilter, "winhelper")
	i, m := setupInterceptor(t, cfg)

	doc := lockDoc(
		pkgEntry("app", "1.0.0", "c1", "winhelper", "serde"),
		pkgEntry("serde", "1.0.0", "c2"),
		pkgEntry("winhelper", "0.1.0", "c3"),
	)

	// The base toolchain must only ever see the rewritten document.
	m.toolchain.EXPECT().PrepareVendorTree(
		gomock.Any(),
		gomock.Cond(func(d *domain.LockDocument) bool {
			return d.Len() == 2 && !d.Has("winhelper")
		}),
	).DoAndReturn(
		func(_ context.Context, d *domain.LockDocument) (*domain.LockDocument, string, error) {
			return d, "/work/vendor", nil
		},
	)

	tc := i.Toolchain(m.toolchain)

	gotDoc, dir, err := tc.PrepareVendorTree(t.Context(), doc)
	require.NoError(t, err)
	assert.Equal(t, "/work/vendor", dir)
	assert.False(t, gotDoc.Has("winhelper"))
	assert.Equal(t, []domain.DepRef{domain.ParseDepRef("serde")}, gotDoc.Packages[0].Dependencies)

	report := i.Report()
	assert.Equal(t, []domain.PackageID{domain.NewPackageID("winhelper", "0.1.0")}, report.Excluded)
	assert.Equal(t, 1, report.DroppedRefs)
}

func TestToolchain_LockFilter_FetchIsNotIntercepted(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, domain.StrategyLockFilter, "winhelper")
	i, m := setupInterceptor(t, cfg)

	// Even an excluded id is fetched by the real toolchain under this
	// strategy; filtering happens at the document level only.
	excluded := domain.NewPackageID("winhelper", "0.1.0")
	m.toolchain.EXPECT().FetchPackage(gomock.Any(), excluded).Return("/fetched/winhelper", nil)

	tc := i.Toolchain(m.toolchain)

	dir, err := tc.FetchPackage(t.Context(), excluded)
	require.NoError(t, err)
	assert.Equal(t, "/fetched/winhelper", dir)
	assert.Empty(t, i.Report().Stubbed)
}

func TestToolchain_VendorPrune_PrunesAfterDelegation(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, domain.StrategyVendorPrune, "winhelper")
	i, m := setupInterceptor(t, cfg)

	ready := m.toolchain.EXPECT().VendorTreeReady(gomock.Any(), "/work/vendor").Return("/work/vendor", nil)
	m.tree.EXPECT().Dirs("/work/vendor").Return([]string{"serde", "winhelper"}, nil).After(ready)
	m.tree.EXPECT().Remove("/work/vendor", "winhelper").Return(nil)

	tc := i.Toolchain(m.toolchain)

	dir, err := tc.VendorTreeReady(t.Context(), "/work/vendor")
	require.NoError(t, err)
	assert.Equal(t, "/work/vendor", dir)

	report := i.Report()
	assert.Equal(t, []string{"winhelper"}, report.PrunedDirs)
	require.Len(t, warningsOfKind(report, domain.WarnVendorDrift), 1)
}

func TestToolchain_VendorPrune_BaseFailureSkipsPrune(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, domain.StrategyVendorPrune, "winhelper")
	i, m := setupInterceptor(t, cfg)

	vendorErr := errors.New("vendoring failed")
	m.toolchain.EXPECT().VendorTreeReady(gomock.Any(), "/work/vendor").Return("", vendorErr)

	tc := i.Toolchain(m.toolchain)

	_, err := tc.VendorTreeReady(t.Context(), "/work/vendor")
	require.ErrorIs(t, err, vendorErr)
	assert.Empty(t, i.Report().PrunedDirs)
}

func TestToolchain_UnknownStrategy_ReturnsBase(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, domain.Strategy(""))
	i, m := setupInterceptor(t, cfg)

	tc := i.Toolchain(m.toolchain)
	require.Same(t, m.toolchain, tc)
}
