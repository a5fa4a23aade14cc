package depresolve

import (
	"fmt"

	"github.com/kessho-pm/kessho/internal/pkgkey"
)

// PackageDependencyError is returned by a Resolver when a package's
// declared dependency graph cannot be fully expanded.
type PackageDependencyError struct {
	// Key is the package whose dependency graph could not be expanded.
	Key pkgkey.Key
	// Kind classifies the failure.
	Kind PackageDependencyErrorKind
	// Dependency is set for PackageNotFound and VersionNotFound; it names
	// the dependency key that could not be satisfied.
	Dependency pkgkey.Key
	// Constraint is set for VersionNotFound; it is the unsatisfiable
	// version requirement as declared by Key.
	Constraint string
	// Status wraps the underlying error for PackageStatusError.
	Status error
}

// PackageDependencyErrorKind is the closed set of dependency-resolution failures.
type PackageDependencyErrorKind int

const (
	// PackageNotFound means a declared dependency key resolves to nothing
	// in any configured repository.
	PackageNotFound PackageDependencyErrorKind = iota
	// VersionNotFound means a declared dependency resolves to a package,
	// but no available version satisfies the declared constraint.
	VersionNotFound
	// PackageStatusError means probing the status of a dependency failed.
	PackageStatusError
)

func (e *PackageDependencyError) Error() string {
	switch e.Kind {
	case PackageNotFound:
		return fmt.Sprintf("resolving dependencies of %s: dependency %s not found", e.Key, e.Dependency)
	case VersionNotFound:
		return fmt.Sprintf("resolving dependencies of %s: no version of %s satisfies %q", e.Key, e.Dependency, e.Constraint)
	case PackageStatusError:
		return fmt.Sprintf("resolving dependencies of %s: status probe failed: %v", e.Key, e.Status)
	default:
		return fmt.Sprintf("resolving dependencies of %s: unknown failure", e.Key)
	}
}

func (e *PackageDependencyError) Unwrap() error {
	if e.Kind == PackageStatusError {
		return e.Status
	}
	return nil
}
