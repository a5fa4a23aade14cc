// Package transaction implements the planner and executor at the core of
// kessho: turning a requested set of install/uninstall actions into a
// validated, dependency-complete plan, then running that plan as a
// cancellable stream of events (spec §4).
package transaction

import (
	"fmt"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/target"
)

// PackageActionType is the closed set of operations a PackageAction can
// request.
type PackageActionType int

const (
	// ActionInstall requests that a package be installed.
	ActionInstall PackageActionType = iota
	// ActionUninstall requests that a package be removed.
	ActionUninstall
)

// ToByte encodes the action type for FFI boundaries, per spec §6: Install
// is 0, Uninstall is 1.
func (t PackageActionType) ToByte() byte {
	switch t {
	case ActionInstall:
		return 0
	case ActionUninstall:
		return 1
	default:
		panic(fmt.Sprintf("transaction: invalid PackageActionType %d", int(t)))
	}
}

// FromByte decodes an action type from its FFI byte encoding. It panics
// on any value other than 0 or 1, mirroring the reference implementation:
// an invalid action byte crossing the FFI boundary is a caller bug, not a
// recoverable runtime condition.
func FromByte(b byte) PackageActionType {
	switch b {
	case 0:
		return ActionInstall
	case 1:
		return ActionUninstall
	default:
		panic(fmt.Sprintf("transaction: invalid package action byte %d", b))
	}
}

// String renders the action type for logs and plan output.
func (t PackageActionType) String() string {
	switch t {
	case ActionInstall:
		return "install"
	case ActionUninstall:
		return "uninstall"
	default:
		return fmt.Sprintf("PackageActionType(%d)", int(t))
	}
}

// PackageAction requests that a single package be installed or
// uninstalled under a given target.
type PackageAction struct {
	ID     pkgkey.Key
	Action PackageActionType
	Target target.Target
}

// Install builds an install PackageAction.
func Install(id pkgkey.Key, t target.Target) PackageAction {
	return PackageAction{ID: id, Action: ActionInstall, Target: t}
}

// Uninstall builds an uninstall PackageAction.
func Uninstall(id pkgkey.Key, t target.Target) PackageAction {
	return PackageAction{ID: id, Action: ActionUninstall, Target: t}
}

// IsInstall reports whether the action requests an install.
func (a PackageAction) IsInstall() bool {
	return a.Action == ActionInstall
}

// IsUninstall reports whether the action requests an uninstall.
func (a PackageAction) IsUninstall() bool {
	return a.Action == ActionUninstall
}

// String renders the action for logs and debugging.
func (a PackageAction) String() string {
	return fmt.Sprintf("PackageAction{id: %s, action: %s, target: %s}", a.ID, a.Action, a.Target)
}
