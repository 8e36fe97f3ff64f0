// Package domain contains the lock-document model and the pure business
// logic for exclusion matching, graph pruning, and stub description.
package domain

// Field is an entry line the parser does not recognize. The raw line is
// carried through untouched so a rewrite never loses information a future
// lockfile format version may have added.
type Field struct {
	Key string
	Raw string
}

// Package is one resolved entry of a lock document.
type Package struct {
	ID           PackageID
	Source       string
	Checksum     string
	Dependencies []DepRef
	Extra        []Field
}

// Name returns the package name as a plain string.
func (p *Package) Name() string {
	return p.ID.Name.String()
}

// Version returns the package version as a plain string.
func (p *Package) Version() string {
	return p.ID.Version.String()
}

// Clone returns a deep copy. Dependency and extra-field slices are copied so
// mutations of the clone never leak into the original.
func (p *Package) Clone() Package {
	c := *p
	if p.Dependencies != nil {
		c.Dependencies = make([]DepRef, len(p.Dependencies))
		copy(c.Dependencies, p.Dependencies)
	}
	if p.Extra != nil {
		c.Extra = make([]Field, len(p.Extra))
		copy(c.Extra, p.Extra)
	}
	return c
}

// LockDocument is the parsed form of a lockfile: an opaque preamble followed
// by an ordered sequence of package entries. The preamble lines are kept
// verbatim, including comments and blank lines, so a rewrite reproduces
// everything above the first entry byte for byte.
type LockDocument struct {
	Preamble []string
	Packages []Package
}

// Len returns the number of package entries.
func (d *LockDocument) Len() int {
	return len(d.Packages)
}

// Has reports whether any entry carries the given name.
func (d *LockDocument) Has(name string) bool {
	for i := range d.Packages {
		if d.Packages[i].Name() == name {
			return true
		}
	}
	return false
}

// Versions returns the versions of every entry with the given name, in
// document order.
func (d *LockDocument) Versions(name string) []string {
	var versions []string
	for i := range d.Packages {
		if d.Packages[i].Name() == name {
			versions = append(versions, d.Packages[i].Version())
		}
	}
	return versions
}

// IDs returns the identity of every entry in document order.
func (d *LockDocument) IDs() []PackageID {
	ids := make([]PackageID, len(d.Packages))
	for i := range d.Packages {
		ids[i] = d.Packages[i].ID
	}
	return ids
}

// Clone returns a deep copy of the document.
func (d *LockDocument) Clone() *LockDocument {
	c := &LockDocument{}
	if d.Preamble != nil {
		c.Preamble = make([]string, len(d.Preamble))
		copy(c.Preamble, d.Preamble)
	}
	if d.Packages != nil {
		c.Packages = make([]Package, len(d.Packages))
		for i := range d.Packages {
			c.Packages[i] = d.Packages[i].Clone()
		}
	}
	return c
}
