package transaction

import (
	"context"
	"log/slog"

	"github.com/kessho-pm/kessho/internal/depresolve"
	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/status"
	"github.com/kessho-pm/kessho/internal/store"
)

// PackageTransaction is a frozen, validated set of actions ready to run.
// Build one with New; run it with Process.
type PackageTransaction struct {
	store   store.PackageStore
	actions []PackageAction
}

// New expands requested into a complete, contradiction-free, no-op-free
// plan:
//
//  1. every install action has its transitive dependency closure added as
//     further install actions, each resolved via resolver;
//  2. an action whose key already appears (directly or via expansion) must
//     agree with the first action seen for that key, or the whole plan is
//     rejected as contradictory;
//  3. the install/uninstall sets are checked for intersection, since step 2
//     alone does not catch a key that first appears as an uninstall and is
//     only later implied as an install dependency of a sibling action;
//  4. any action whose target is already in the state it requests (an
//     install that's already UpToDate, an uninstall that's already
//     NotInstalled) is dropped as a no-op.
func New(ctx context.Context, s store.PackageStore, resolver depresolve.Resolver, requested []PackageAction) (*PackageTransaction, error) {
	slog.Debug("building transaction", "requested", len(requested))

	var collated []PackageAction

	for _, action := range requested {
		pkg, ok := s.FindPackageByKey(action.ID)
		if !ok {
			return nil, newNoPackageError(action.ID)
		}

		if action.IsInstall() {
			if err := expandDependencies(ctx, s, resolver, pkg, action, &collated); err != nil {
				return nil, err
			}
		}

		if found := findAction(collated, action.ID); found != nil {
			if found.Action != action.Action {
				return nil, newContradictionError(action.ID)
			}
		} else {
			collated = append(collated, action)
		}
	}

	if err := checkContradictions(collated); err != nil {
		return nil, err
	}

	actions, err := dropNoops(ctx, s, collated)
	if err != nil {
		return nil, err
	}

	slog.Debug("transaction built", "actions", len(actions))

	return &PackageTransaction{store: s, actions: actions}, nil
}

// expandDependencies resolves action's package's dependency closure and
// appends an install PackageAction for every dependency key not already
// collated as an install. A dependency already collated as an uninstall
// still gets its install appended, so checkContradictions rejects the pair.
func expandDependencies(ctx context.Context, s store.PackageStore, resolver depresolve.Resolver, pkg *store.Package, action PackageAction, collated *[]PackageAction) error {
	deps, err := depresolve.Closure(ctx, action.ID, action.Target, resolver)
	if err != nil {
		depErr, ok := err.(*depresolve.PackageDependencyError)
		if !ok {
			depErr = &depresolve.PackageDependencyError{
				Key:    action.ID,
				Kind:   depresolve.PackageStatusError,
				Status: err,
			}
		}
		return newDepsError(depErr)
	}

	for _, dep := range deps {
		if dep == action.ID {
			continue
		}
		if found := findAction(*collated, dep); found != nil && found.IsInstall() {
			continue
		}
		// TODO: validate that installing this dependency is permitted
		// under a user-target transaction before adding it implicitly.
		*collated = append(*collated, Install(dep, action.Target))
	}

	return nil
}

func findAction(actions []PackageAction, key pkgkey.Key) *PackageAction {
	for i := range actions {
		if actions[i].ID == key {
			return &actions[i]
		}
	}
	return nil
}

// checkContradictions rejects a plan where the same key appears in both
// the install and uninstall sets, which findAction's per-key agreement
// check alone cannot catch when the two occurrences are never compared
// directly against each other (e.g. one from direct request, one from
// a sibling's dependency expansion visited afterward).
func checkContradictions(actions []PackageAction) error {
	installs := make(map[pkgkey.Key]bool)
	uninstalls := make(map[pkgkey.Key]bool)

	for _, a := range actions {
		if a.IsInstall() {
			installs[a.ID] = true
		} else {
			uninstalls[a.ID] = true
		}
	}

	for key := range installs {
		if uninstalls[key] {
			return newContradictionError(key)
		}
	}
	return nil
}

// dropNoops removes any action whose target is already in the requested
// state.
func dropNoops(ctx context.Context, s store.PackageStore, actions []PackageAction) ([]PackageAction, error) {
	out := make([]PackageAction, 0, len(actions))

	for _, action := range actions {
		st, err := s.Status(ctx, action.ID, action.Target)
		if err != nil {
			return nil, newInvalidStatusError(err)
		}

		var isValid bool
		if action.IsInstall() {
			isValid = st != status.UpToDate
		} else {
			isValid = st == status.UpToDate || st == status.RequiresUpdate
		}

		if isValid {
			out = append(out, action)
		}
	}

	return out, nil
}

// Actions returns the transaction's frozen, ordered action list.
func (t *PackageTransaction) Actions() []PackageAction {
	return t.actions
}

// Validate reports whether the transaction is safe to run. It always
// returns true today; it exists as the hook Process calls so a future
// revalidation (e.g. re-checking status immediately before running,
// rather than only at New time) has a single place to land.
func (t *PackageTransaction) Validate() bool {
	return true
}
