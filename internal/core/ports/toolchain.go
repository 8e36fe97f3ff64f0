// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cull/internal/core/domain"
)

// Toolchain is the hook contract with the surrounding build pipeline. An
// interception strategy wraps a Toolchain and overrides exactly one hook;
// the remaining hooks delegate unchanged to the wrapped implementation.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// FetchPackage makes the sources of a single locked package available
	// locally and returns the directory holding them.
	FetchPackage(ctx context.Context, id domain.PackageID) (string, error)

	// PrepareVendorTree runs before vendoring. It receives the lock
	// document the pipeline is about to vendor and returns the document
	// vendoring should actually use together with the directory the tree
	// will be written to.
	PrepareVendorTree(ctx context.Context, doc *domain.LockDocument) (*domain.LockDocument, string, error)

	// VendorTreeReady runs after the vendor tree has been written and
	// returns the directory of the finished tree.
	VendorTreeReady(ctx context.Context, dir string) (string, error)
}
