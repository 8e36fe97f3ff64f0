package domain

import "go.trai.ch/zerr"

// Strategy names one of the supported ways to intercept a build's view of
// its dependency graph. Exactly one strategy drives a run; combining them
// produces overlapping rewrites of the same inputs and is rejected upfront.
type Strategy string

const (
	// StrategyFetchStub substitutes stub packages at fetch time, before the
	// package manager downloads sources.
	StrategyFetchStub Strategy = "fetch-stub"

	// StrategyLockFilter rewrites the lock document before vendoring, so
	// excluded packages are never fetched at all.
	StrategyLockFilter Strategy = "lock-filter"

	// StrategyVendorPrune deletes excluded package directories from an
	// already vendored tree.
	StrategyVendorPrune Strategy = "vendor-prune"
)

// Strategies returns the supported strategies in their canonical order.
func Strategies() []Strategy {
	return []Strategy{StrategyFetchStub, StrategyLockFilter, StrategyVendorPrune}
}

// ParseStrategy parses the configuration spelling of a strategy.
func ParseStrategy(s string) (Strategy, error) {
	for _, known := range Strategies() {
		if Strategy(s) == known {
			return known, nil
		}
	}
	return "", zerr.With(ErrUnknownStrategy, "strategy", s)
}

// WarningKind classifies the non-fatal conditions a run records.
type WarningKind string

const (
	// WarnUnmatchedRule marks an exclusion pattern that matched no package
	// name in the lock document.
	WarnUnmatchedRule WarningKind = "unmatched-rule"

	// WarnAmbiguousRef marks a bare dependency reference that resolves to
	// several retained versions after pruning.
	WarnAmbiguousRef WarningKind = "ambiguous-ref"

	// WarnChecksumMissing marks a stub synthesized without an upstream
	// checksum, carrying the null sentinel instead.
	WarnChecksumMissing WarningKind = "checksum-missing"

	// WarnVendorDrift marks a vendor directory that has no matching entry
	// in the lock document, or the reverse.
	WarnVendorDrift WarningKind = "vendor-drift"
)

// Warning is one non-fatal condition observed during a run. Warnings are
// logged and carried in the report; they never abort the rewrite.
type Warning struct {
	Kind   WarningKind
	Detail string
}

// StubFailure records one package whose stub could not be produced. A
// failure never aborts the remaining packages of a run.
type StubFailure struct {
	ID  PackageID
	Err error
}

// Report is the audit summary of a run: what was removed, what was stubbed,
// and everything the operator should review afterwards.
type Report struct {
	Strategy Strategy
	// Excluded lists the lock entries the rules matched, document order.
	Excluded []PackageID
	// Stubbed lists the packages a stub was produced for.
	Stubbed []PackageID
	// PrunedDirs lists vendor directories that were deleted, in walk order.
	PrunedDirs []string
	// DroppedRefs counts dependency references stripped from retained
	// entries.
	DroppedRefs int
	Warnings    []Warning
	Failures    []StubFailure
}

// Warn appends a warning to the report.
func (r *Report) Warn(kind WarningKind, detail string) {
	r.Warnings = append(r.Warnings, Warning{Kind: kind, Detail: detail})
}

// Failed reports whether any per-package stub failure was recorded.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}
