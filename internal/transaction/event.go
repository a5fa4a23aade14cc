package transaction

import "github.com/kessho-pm/kessho/internal/pkgkey"

// TransactionEventKind is the closed set of events a running transaction
// can emit.
type TransactionEventKind int

const (
	// EventInstalling is emitted right before a package's install begins.
	EventInstalling TransactionEventKind = iota
	// EventUninstalling is emitted right before a package's uninstall begins.
	EventUninstalling
	// EventProgress carries a free-form progress message for the current action.
	EventProgress
	// EventError is emitted when an action fails; the run stops after it.
	EventError
	// EventComplete is emitted once, after every action has succeeded.
	EventComplete
)

// TransactionEvent reports the progress of a running transaction. Exactly
// one of EventError or EventComplete terminates the stream, unless the run
// is cancelled, in which case the stream ends with neither; every other
// event may be followed by more events.
type TransactionEvent struct {
	Kind TransactionEventKind

	// Package is the subject of the event; unset for EventComplete.
	Package pkgkey.Key
	// Message carries the text of an EventProgress event.
	Message string
	// Err carries the failure of an EventError event.
	Err *TransactionError
}

func installingEvent(key pkgkey.Key) TransactionEvent {
	return TransactionEvent{Kind: EventInstalling, Package: key}
}

func uninstallingEvent(key pkgkey.Key) TransactionEvent {
	return TransactionEvent{Kind: EventUninstalling, Package: key}
}

func errorEvent(key pkgkey.Key, err *TransactionError) TransactionEvent {
	return TransactionEvent{Kind: EventError, Package: key, Err: err}
}

func completeEvent() TransactionEvent {
	return TransactionEvent{Kind: EventComplete}
}
