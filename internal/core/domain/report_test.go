package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cull/internal/core/domain"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Strategy
		wantErr bool
	}{
		{name: "Fetch stub", input: "fetch-stub", want: domain.StrategyFetchStub},
		{name: "Lock filter", input: "lock-filter", want: domain.StrategyLockFilter},
		{name: "Vendor prune", input: "vendor-prune", want: domain.StrategyVendorPrune},
		{name: "Unknown", input: "vendored", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Case sensitive", input: "Fetch-Stub", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseStrategy(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnknownStrategy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStubMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.StubMode
		wantErr bool
	}{
		{name: "Minimal", input: "minimal", want: domain.StubMinimal},
		{name: "Full", input: "full", want: domain.StubFull},
		{name: "Empty defaults to full", input: "", want: domain.StubFull},
		{name: "Unknown", input: "fancy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseStubMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnknownStubMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, mustParseAgain(t, got.String()))
		})
	}
}

func mustParseAgain(t *testing.T, s string) domain.StubMode {
	t.Helper()
	m, err := domain.ParseStubMode(s)
	require.NoError(t, err)
	return m
}

func TestReport_Warn(t *testing.T) {
	r := &domain.Report{Strategy: domain.StrategyLockFilter}

	r.Warn(domain.WarnUnmatchedRule, "pattern winapi matched nothing")
	r.Warn(domain.WarnChecksumMissing, "foo@1.2.3")

	require.Len(t, r.Warnings, 2)
	assert.Equal(t, domain.WarnUnmatchedRule, r.Warnings[0].Kind)
	assert.False(t, r.Failed())

	r.Failures = append(r.Failures, domain.StubFailure{
		ID: domain.NewPackageID("foo", "1.2.3"),
	})
	assert.True(t, r.Failed())
}

func TestPackageID(t *testing.T) {
	id := domain.NewPackageID("windows-sys", "0.52.0")

	assert.Equal(t, "windows-sys@0.52.0", id.String())
	assert.Equal(t, "windows-sys-0.52.0", id.DirName())
}

func TestParseDepRef(t *testing.T) {
	t.Run("Bare", func(t *testing.T) {
		ref := domain.ParseDepRef("serde")
		assert.True(t, ref.Bare())
		assert.Equal(t, "serde", ref.String())
	})

	t.Run("Versioned", func(t *testing.T) {
		ref := domain.ParseDepRef("windows-sys 0.52.0")
		assert.False(t, ref.Bare())
		assert.Equal(t, "windows-sys", ref.Name.String())
		assert.Equal(t, "0.52.0", ref.Version.String())
		assert.Equal(t, "windows-sys 0.52.0", ref.String())
	})

	t.Run("Source suffix rides along in the version", func(t *testing.T) {
		wire := "adler 1.0.2 (registry+https://github.com/rust-lang/crates.io-index)"
		ref := domain.ParseDepRef(wire)
		assert.Equal(t, "adler", ref.Name.String())
		assert.Equal(t, wire, ref.String())
	})
}
