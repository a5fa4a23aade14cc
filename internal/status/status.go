// Package status defines PackageStatus and the status-query error
// taxonomy, plus the normative projection of both onto a small signed
// integer for FFI boundaries (spec §4.3).
package status

import "fmt"

// Status is the installed state of a package under a given target.
type Status int

const (
	// NotInstalled means the package has no installed payload.
	NotInstalled Status = iota
	// UpToDate means the installed payload matches the newest available release.
	UpToDate
	// RequiresUpdate means a payload is installed but a newer release exists.
	RequiresUpdate
)

// String renders the status for human-readable output.
func (s Status) String() string {
	switch s {
	case NotInstalled:
		return "Not installed"
	case UpToDate:
		return "Up to date"
	case RequiresUpdate:
		return "Requires update"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// PayloadError describes why a concrete installable payload could not be
// located for a package, independent of any particular install target.
type PayloadError struct {
	// Kind classifies the failure; Reason is set only for CriteriaUnmet.
	Kind   PayloadErrorKind
	Reason string
}

// PayloadErrorKind is the closed set of PayloadError causes.
type PayloadErrorKind int

const (
	// NoPackage means the package key does not resolve to any known repository entry.
	NoPackage PayloadErrorKind = iota
	// NoConcretePackage means the repository entry has no installable variant at all.
	NoConcretePackage
	// NoPayloadFound means no payload matched the requesting platform/target.
	NoPayloadFound
	// CriteriaUnmet means a payload exists but failed its selection criteria.
	CriteriaUnmet
)

// NewPayloadError creates a PayloadError of the given kind.
func NewPayloadError(kind PayloadErrorKind) *PayloadError {
	return &PayloadError{Kind: kind}
}

// NewCriteriaUnmetError creates a CriteriaUnmet PayloadError with a reason.
func NewCriteriaUnmetError(reason string) *PayloadError {
	return &PayloadError{Kind: CriteriaUnmet, Reason: reason}
}

// Error implements the error interface.
func (e *PayloadError) Error() string {
	switch e.Kind {
	case NoPackage, NoConcretePackage:
		return "no such package or no concrete variant"
	case NoPayloadFound:
		return "no payload found"
	case CriteriaUnmet:
		if e.Reason != "" {
			return fmt.Sprintf("payload criteria unmet: %s", e.Reason)
		}
		return "payload criteria unmet"
	default:
		return "payload error"
	}
}

// Error is the closed set of failures a status probe can report.
type Error struct {
	// Payload is set when Kind is KindPayload.
	Payload *PayloadError
	Kind    ErrorKind
}

// ErrorKind distinguishes the PackageStatusError variants.
type ErrorKind int

const (
	// KindPayload wraps a PayloadError.
	KindPayload ErrorKind = iota
	// KindWrongPayloadType means the located payload is not installable on this platform.
	KindWrongPayloadType
	// KindParsingVersion means the installed or available version string could not be parsed.
	KindParsingVersion
)

// NewPayloadStatusError wraps a PayloadError as a PackageStatusError.
func NewPayloadStatusError(p *PayloadError) *Error {
	return &Error{Kind: KindPayload, Payload: p}
}

// ErrWrongPayloadType is the status error for a payload of the wrong type.
var ErrWrongPayloadType = &Error{Kind: KindWrongPayloadType}

// ErrParsingVersion is the status error for an unparsable version string.
var ErrParsingVersion = &Error{Kind: KindParsingVersion}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindPayload:
		if e.Payload != nil {
			return e.Payload.Error()
		}
		return "payload error"
	case KindWrongPayloadType:
		return "wrong payload type"
	case KindParsingVersion:
		return "error parsing version"
	default:
		return "status error"
	}
}

// Unwrap exposes the wrapped PayloadError, if any, to errors.As/errors.Is.
func (e *Error) Unwrap() error {
	if e.Kind == KindPayload && e.Payload != nil {
		return e.Payload
	}
	return nil
}
