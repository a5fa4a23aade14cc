// Package errors turns the plain typed errors returned by internal/transaction
// and its collaborators into categorized, CLI-presentable errors. Library
// code never imports this package — it is wired in only at the cmd/kessho
// boundary, where a human is about to read the message.
//
//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

// Category classifies an error for both humans and scripts parsing FormatJSON output.
type Category string

const (
	CategoryDependency Category = "dependency"
	CategoryValidation Category = "validation"
	CategoryInstall    Category = "install"
)

// Code is a stable, machine-readable error code.
type Code string

const (
	// Dependency errors (E1xx)
	CodeCyclicDependency  Code = "E101"
	CodeMissingDependency Code = "E102"
	CodeVersionNotFound   Code = "E103"

	// Validation errors (E2xx)
	CodeActionContradiction Code = "E201"
	CodeInvalidStatus       Code = "E202"

	// Install errors (E3xx)
	CodeInstallFailed   Code = "E301"
	CodeUninstallFailed Code = "E302"
	CodeUserCancelled   Code = "E303"
)

// Error is the base structured error type. Every concrete error in this
// package embeds one as Base.
type Error struct {
	Category Category       `json:"category"`
	Code     Code           `json:"code,omitempty"`
	Message  string         `json:"message"`
	Details  map[string]any `json:"details,omitempty"`
	Hint     string         `json:"hint,omitempty"`
	Cause    error          `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code, or (when
// either side lacks a code) the same category and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Code != "" && t.Code != "" {
		return e.Code == t.Code
	}
	return e.Category == t.Category && e.Message == t.Message
}
