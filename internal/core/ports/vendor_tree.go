package ports

// VendorTree defines the interface for inspecting and pruning a vendored
// sources directory.
//
//go:generate mockgen -source=vendor_tree.go -destination=mocks/mock_vendor_tree.go -package=mocks
type VendorTree interface {
	// Dirs lists the top-level package directories of the tree at root, in
	// lexical order.
	Dirs(root string) ([]string, error)

	// Remove deletes root/dir and everything under it. Removing an entry
	// that does not exist is a no-op.
	Remove(root, dir string) error
}
