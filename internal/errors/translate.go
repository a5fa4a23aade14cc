//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import (
	"github.com/kessho-pm/kessho/internal/depresolve"
	"github.com/kessho-pm/kessho/internal/graph"
	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/transaction"
)

// Translate wraps a plain typed error from internal/transaction (or one
// of its collaborators) as a categorized, CLI-presentable error. Callers
// outside cmd/kessho should never need this — the library packages
// always return the plain typed errors, so their own tests and other
// consumers are not coupled to this presentation layer.
func Translate(err error) error {
	switch e := err.(type) {
	case *transaction.PackageTransactionError:
		return translateTransaction(e)
	case *transaction.TransactionError:
		return translateRun(e)
	case *depresolve.PackageDependencyError:
		return translateDeps(e)
	case *graph.CycleError[pkgkey.Key]:
		cycle := make([]string, len(e.Cycle))
		for i, k := range e.Cycle {
			cycle[i] = k.String()
		}
		return NewCycleError(cycle)
	default:
		return err
	}
}

func translateTransaction(e *transaction.PackageTransactionError) error {
	switch e.Kind {
	case transaction.KindNoPackage:
		return NewPackageNotFoundError(e.NoPackage.String())
	case transaction.KindDeps:
		return translateDeps(e.Deps)
	case transaction.KindActionContradiction:
		return NewActionContradictionError(e.Contradiction.String())
	case transaction.KindInvalidStatus:
		return NewInvalidStatusError("", e.InvalidStatus)
	default:
		return e
	}
}

func translateDeps(e *depresolve.PackageDependencyError) error {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case depresolve.PackageNotFound:
		return NewMissingDependencyError(e.Key.String(), e.Dependency.String())
	case depresolve.VersionNotFound:
		return NewVersionNotFoundError(e.Key.String(), e.Dependency.String(), e.Constraint)
	case depresolve.PackageStatusError:
		return NewInvalidStatusError(e.Key.String(), e.Status)
	default:
		return e
	}
}

func translateRun(e *transaction.TransactionError) error {
	switch e.Kind {
	case transaction.KindInstall:
		return NewInstallError("", e.Install)
	case transaction.KindUninstall:
		return NewUninstallError("", e.Uninstall)
	case transaction.KindUserCancelled:
		return NewCancelledError("")
	case transaction.KindValidationFailed:
		return &Error{Category: CategoryValidation, Message: "validation failed"}
	default:
		return e
	}
}
