package domain

// StubMode selects how much surface a synthesized stand-in package carries.
type StubMode int

const (
	// StubMinimal emits the smallest package the resolver accepts: a
	// manifest naming the package and an empty library source file.
	StubMinimal StubMode = iota
	// StubFull additionally declares the feature set downstream packages
	// enable on the original, so feature resolution still succeeds after
	// the swap.
	StubFull
)

// String returns the configuration spelling of the mode.
func (m StubMode) String() string {
	if m == StubFull {
		return "full"
	}
	return "minimal"
}

// ParseStubMode parses the configuration spelling of a stub mode. The empty
// string selects StubFull, matching the default in config discovery.
func ParseStubMode(s string) (StubMode, error) {
	switch s {
	case "", "full":
		return StubFull, nil
	case "minimal":
		return StubMinimal, nil
	default:
		return StubMinimal, ErrUnknownStubMode
	}
}

// StubFile is one rendered file of a stub package. Path is relative to the
// stub's directory and always uses forward slashes.
type StubFile struct {
	Path string
	Body []byte
}

// StubPackage is a fully rendered stand-in for an excluded package. Files
// hold deterministic bytes: synthesizing the same package twice with the
// same inputs yields identical content.
type StubPackage struct {
	ID    PackageID
	Files []StubFile
}

// Dir returns the directory name the stub occupies inside a vendor tree.
func (s StubPackage) Dir() string {
	return s.ID.DirName()
}
