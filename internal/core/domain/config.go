package domain

// Config is the resolved project configuration driving a run. It is produced
// by the config loader from cull.yaml plus defaults, after every pattern has
// been compiled and every enum parsed.
type Config struct {
	// Root is the directory the configuration was discovered in. All
	// relative paths resolve against it.
	Root string

	// LockPath is the lock document the run reads and rewrites.
	LockPath string

	// VendorDir is the vendored sources directory for the vendor-prune
	// strategy.
	VendorDir string

	// StorePath is the stub store directory for the fetch-stub strategy.
	StorePath string

	Strategy Strategy
	StubMode StubMode

	// Rules decides which package names leave the graph.
	Rules RuleSet

	// Features maps excluded names to the features their stubs declare.
	Features FeatureTable

	// Workers bounds concurrent stub synthesis. Zero means one worker per
	// logical CPU.
	Workers int
}
