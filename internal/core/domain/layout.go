package domain

import "path/filepath"

const (
	// CullDirName is the name of the internal workspace directory.
	CullDirName = ".cull"

	// StoreDirName is the name of the content addressable stub store
	// directory.
	StoreDirName = "store"

	// CullFileName is the name of the project configuration file.
	CullFileName = "cull.yaml"

	// LockFileName is the default name of the lock document.
	LockFileName = "Cargo.lock"

	// VendorDirName is the default name of the vendored sources directory.
	VendorDirName = "vendor"

	// ManifestFileName is the name of a stub package's manifest.
	ManifestFileName = "Cargo.toml"

	// SourceDirName is the name of a stub package's source directory.
	SourceDirName = "src"

	// SourceFileName is the name of a stub package's library source file.
	SourceFileName = "lib.rs"

	// ChecksumFileName is the name of the per-package checksum descriptor a
	// vendor tree carries for every package.
	ChecksumFileName = ".cargo-checksum.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultStorePath returns the default path for the stub store.
// It joins .cull and store.
func DefaultStorePath() string {
	return filepath.Join(CullDirName, StoreDirName)
}

// StubSourcePath returns the path of the library source file inside a stub,
// relative to the stub's directory. Stub file paths always use forward
// slashes regardless of platform.
func StubSourcePath() string {
	return SourceDirName + "/" + SourceFileName
}
