// Package store defines the PackageStore capability set the planner and
// executor consume (spec §4.1): package lookup, status probing, and
// install/uninstall mutation against a pluggable backend.
package store

import (
	"context"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/status"
	"github.com/kessho-pm/kessho/internal/target"
)

// Package is the repository-metadata record a Store resolves a PackageKey
// to. The planner treats it as opaque — it only checks that a record
// exists (dependency closures are computed from the key by a Resolver,
// internal/depresolve) and never inspects the record's own fields.
type Package struct {
	// ID is the package's identifier within its repository.
	ID string
	// Version is the version this record describes.
	Version string
}

// PackageStore is the backend capability set the core consumes. Concrete
// implementations may be backed by a local cache, a remote index, or (as
// in internal/memstore) an in-process reference index — the core never
// assumes anything beyond this interface.
//
// A Store is shared by reference between a PackageTransaction's planner
// and executor and must outlive both. It is responsible for any locking
// needed to make its own methods safe under concurrent use; the core
// makes no concurrency guarantees on a caller's behalf (spec §5).
type PackageStore interface {
	// FindPackageByKey looks up a package record. It returns ok=false
	// when the key is unknown to every configured repository; this is a
	// total, non-blocking operation from the planner's point of view.
	FindPackageByKey(key pkgkey.Key) (pkg *Package, ok bool)

	// Status reports whether key is installed, current, or stale under
	// target. It may perform filesystem or registry probes and must be
	// safe to call repeatedly.
	Status(ctx context.Context, key pkgkey.Key, t target.Target) (status.Status, error)

	// Install installs key under target. It may block arbitrarily long
	// (network, extraction). A successful call must be idempotent: a
	// second call after success must not change observable state.
	Install(ctx context.Context, key pkgkey.Key, t target.Target) error

	// Uninstall removes key from target, symmetric to Install.
	Uninstall(ctx context.Context, key pkgkey.Key, t target.Target) error
}

// InstallError is opaque to the core: it is whatever a PackageStore
// implementation returns from Install, surfaced unmodified in a
// TransactionEvent.
type InstallError = error

// UninstallError is opaque to the core: it is whatever a PackageStore
// implementation returns from Uninstall, surfaced unmodified in a
// TransactionEvent.
type UninstallError = error
