package domain

import "strings"

// PackageID identifies one resolved package in a lock document. A document
// may contain several versions of the same name, so identity is always the
// name and version pair, never the name alone.
type PackageID struct {
	Name    InternedString
	Version InternedString
}

// NewPackageID interns name and version into a PackageID.
func NewPackageID(name, version string) PackageID {
	return PackageID{
		Name:    NewInternedString(name),
		Version: NewInternedString(version),
	}
}

// String renders the id as "name@version" for logs and reports.
func (id PackageID) String() string {
	return id.Name.String() + "@" + id.Version.String()
}

// DirName renders the id as "name-version", the layout cargo uses for a
// package's directory inside a vendor tree.
func (id PackageID) DirName() string {
	return id.Name.String() + "-" + id.Version.String()
}

// DepRef is one entry of a package's dependency list. References come in two
// wire forms: a bare name, or a name followed by enough of the version string
// to disambiguate it. Everything after the first space is kept verbatim in
// Version so a rewrite reproduces the reference byte for byte.
type DepRef struct {
	Name    InternedString
	Version InternedString
}

// ParseDepRef splits a dependency reference into name and optional version.
func ParseDepRef(s string) DepRef {
	name, version, found := strings.Cut(s, " ")
	ref := DepRef{Name: NewInternedString(name)}
	if found {
		ref.Version = NewInternedString(version)
	}
	return ref
}

// Bare reports whether the reference names a package without a version.
func (r DepRef) Bare() bool {
	return r.Version.IsZero()
}

// String renders the reference in its wire form.
func (r DepRef) String() string {
	if r.Bare() {
		return r.Name.String()
	}
	return r.Name.String() + " " + r.Version.String()
}
