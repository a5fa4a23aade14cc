//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "fmt"

// DependencyError presents a depresolve.PackageDependencyError (or a
// graph.CycleError) for CLI display.
type DependencyError struct {
	Base Error `json:"error"`

	// Package is the package whose dependency graph could not be expanded.
	Package string `json:"package,omitempty"`
	// Dependency is the unsatisfied dependency, for Missing/VersionNotFound.
	Dependency string `json:"dependency,omitempty"`
	// Cycle lists the nodes of a circular dependency, first == last.
	Cycle []string `json:"cycle,omitempty"`
}

// NewCycleError presents a circular dependency.
func NewCycleError(cycle []string) *DependencyError {
	return &DependencyError{
		Base: Error{
			Category: CategoryDependency,
			Code:     CodeCyclicDependency,
			Message:  "circular dependency detected",
			Hint:     "one of these packages must drop its dependency on another in the cycle",
		},
		Cycle: cycle,
	}
}

// NewPackageNotFoundError presents a directly requested package key unknown to every repository.
func NewPackageNotFoundError(pkg string) *DependencyError {
	return &DependencyError{
		Base: Error{
			Category: CategoryDependency,
			Code:     CodeMissingDependency,
			Message:  fmt.Sprintf("package %q not found", pkg),
			Hint:     "check that the required repository is configured and up to date",
		},
		Package: pkg,
	}
}

// NewMissingDependencyError presents a dependency key unknown to every repository.
func NewMissingDependencyError(pkg, dependency string) *DependencyError {
	return &DependencyError{
		Base: Error{
			Category: CategoryDependency,
			Code:     CodeMissingDependency,
			Message:  fmt.Sprintf("dependency %q of %q not found", dependency, pkg),
			Hint:     "check that the required repository is configured and up to date",
		},
		Package:    pkg,
		Dependency: dependency,
	}
}

// NewVersionNotFoundError presents an unsatisfiable version constraint.
func NewVersionNotFoundError(pkg, dependency, constraint string) *DependencyError {
	return &DependencyError{
		Base: Error{
			Category: CategoryDependency,
			Code:     CodeVersionNotFound,
			Message:  fmt.Sprintf("no version of %q satisfies %q required by %q", dependency, constraint, pkg),
		},
		Package:    pkg,
		Dependency: dependency,
	}
}

// IsCycle reports whether this is a circular dependency error.
func (e *DependencyError) IsCycle() bool {
	return len(e.Cycle) > 0
}

// Error implements the error interface.
func (e *DependencyError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *DependencyError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether target matches this error by code.
func (e *DependencyError) Is(target error) bool {
	t, ok := target.(*DependencyError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
