package transaction

import (
	"fmt"

	"github.com/kessho-pm/kessho/internal/depresolve"
	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/store"
)

// PackageTransactionError is returned by New when a requested set of
// actions cannot be turned into a valid plan.
type PackageTransactionError struct {
	Kind PackageTransactionErrorKind

	// NoPackage is set for KindNoPackage.
	NoPackage pkgkey.Key
	// Deps is set for KindDeps.
	Deps *depresolve.PackageDependencyError
	// Contradiction is set for KindActionContradiction.
	Contradiction pkgkey.Key
	// InvalidStatus is set for KindInvalidStatus.
	InvalidStatus error
}

// PackageTransactionErrorKind is the closed set of plan-construction failures.
type PackageTransactionErrorKind int

const (
	// KindNoPackage means a requested action names a key no store knows about.
	KindNoPackage PackageTransactionErrorKind = iota
	// KindDeps means expanding a package's dependency closure failed.
	KindDeps
	// KindActionContradiction means the same key was requested for both
	// install and uninstall, directly or via dependency expansion.
	KindActionContradiction
	// KindInvalidStatus means probing a candidate action's current status failed.
	KindInvalidStatus
)

func (e *PackageTransactionError) Error() string {
	switch e.Kind {
	case KindNoPackage:
		return fmt.Sprintf("package %s not found", e.NoPackage)
	case KindDeps:
		return fmt.Sprintf("resolving dependencies: %v", e.Deps)
	case KindActionContradiction:
		return fmt.Sprintf("contradictory actions requested for %s", e.Contradiction)
	case KindInvalidStatus:
		return fmt.Sprintf("checking status: %v", e.InvalidStatus)
	default:
		return "package transaction error"
	}
}

func (e *PackageTransactionError) Unwrap() error {
	switch e.Kind {
	case KindDeps:
		return e.Deps
	case KindInvalidStatus:
		return e.InvalidStatus
	default:
		return nil
	}
}

func newNoPackageError(key pkgkey.Key) *PackageTransactionError {
	return &PackageTransactionError{Kind: KindNoPackage, NoPackage: key}
}

func newDepsError(err *depresolve.PackageDependencyError) *PackageTransactionError {
	return &PackageTransactionError{Kind: KindDeps, Deps: err}
}

func newContradictionError(key pkgkey.Key) *PackageTransactionError {
	return &PackageTransactionError{Kind: KindActionContradiction, Contradiction: key}
}

func newInvalidStatusError(err error) *PackageTransactionError {
	return &PackageTransactionError{Kind: KindInvalidStatus, InvalidStatus: err}
}

// TransactionError is surfaced through a TransactionEvent when running an
// already-built plan fails.
type TransactionError struct {
	Kind PackageTransactionRunErrorKind

	// Install is set for KindInstall.
	Install store.InstallError
	// Uninstall is set for KindUninstall.
	Uninstall store.UninstallError
}

// PackageTransactionRunErrorKind is the closed set of plan-execution failures.
type PackageTransactionRunErrorKind int

const (
	// KindValidationFailed means Validate rejected the plan before it ran.
	KindValidationFailed PackageTransactionRunErrorKind = iota
	// KindUserCancelled is reserved for a cancelled run. The current
	// stream design never emits it: cancellation ends the stream silently,
	// with no event for the cancelled action.
	KindUserCancelled
	// KindInstall wraps a failed PackageStore.Install call.
	KindInstall
	// KindUninstall wraps a failed PackageStore.Uninstall call.
	KindUninstall
)

func (e *TransactionError) Error() string {
	switch e.Kind {
	case KindValidationFailed:
		return "validation failed"
	case KindUserCancelled:
		return "cancelled"
	case KindInstall:
		return fmt.Sprintf("install failed: %v", e.Install)
	case KindUninstall:
		return fmt.Sprintf("uninstall failed: %v", e.Uninstall)
	default:
		return "transaction error"
	}
}

func (e *TransactionError) Unwrap() error {
	switch e.Kind {
	case KindInstall:
		return e.Install
	case KindUninstall:
		return e.Uninstall
	default:
		return nil
	}
}
