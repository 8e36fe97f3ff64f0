package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedEntry is returned when a lock entry cannot be parsed. The
	// wrapped error carries the zero-based entry index so the offending block
	// can be located in the source document.
	ErrMalformedEntry = zerr.New("malformed lock entry")

	// ErrInvalidRule is returned when an exclusion pattern fails to compile.
	ErrInvalidRule = zerr.New("invalid exclusion rule")

	// ErrUnknownStrategy is returned when an interception strategy name is
	// not one of the supported set.
	ErrUnknownStrategy = zerr.New("unknown interception strategy")

	// ErrStrategyConflict is returned when a run is configured with more
	// than one interception strategy at once.
	ErrStrategyConflict = zerr.New("conflicting interception strategies")

	// ErrConfigNotFound is returned when no configuration file can be
	// located from the working directory upward.
	ErrConfigNotFound = zerr.New("could not find cull.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrLockNotFound is returned when the lockfile named by the
	// configuration does not exist.
	ErrLockNotFound = zerr.New("lockfile not found")

	// ErrStubFailed is returned when one or more stub packages could not be
	// synthesized or written.
	ErrStubFailed = zerr.New("stub synthesis failed")

	// ErrUnknownStubMode is returned when a stub mode name is not one of
	// "minimal" or "full".
	ErrUnknownStubMode = zerr.New("unknown stub mode")

	// ErrVendorNotFound is returned when the vendor directory to prune does
	// not exist.
	ErrVendorNotFound = zerr.New("vendor directory not found")

	// ErrPruneFailed is returned when a vendor directory entry could not be
	// removed.
	ErrPruneFailed = zerr.New("vendor prune failed")
)
