package transaction

import (
	"context"
	"log/slog"

	"github.com/kessho-pm/kessho/internal/pkgkey"
)

// Canceler stops a running transaction before its next action starts. It
// is safe to call at most once; further calls are no-ops.
type Canceler struct {
	cancel chan struct{}
	closed bool
}

// Cancel requests that the transaction stop before its next action. An
// action already in flight runs to completion; the stream then ends
// silently, with no event for the cancelled action.
func (c *Canceler) Cancel() {
	if c.closed {
		return
	}
	c.closed = true
	close(c.cancel)
}

// Process runs the transaction's actions in order against its store,
// emitting one TransactionEvent per step on the returned channel. The
// channel is closed after an EventComplete or EventError event, or
// silently with no further event if the run is cancelled.
//
// The caller must drain the channel: Process buffers a single event
// ahead of the consumer so the producer goroutine can check for
// cancellation between actions without blocking indefinitely on a slow
// reader, but it will still stall once that one slot is full.
func (t *PackageTransaction) Process(ctx context.Context) (*Canceler, <-chan TransactionEvent) {
	slog.Debug("beginning transaction process", "actions", len(t.actions))

	canceler := &Canceler{cancel: make(chan struct{})}
	events := make(chan TransactionEvent, 1)

	go func() {
		defer close(events)

		if !t.Validate() {
			events <- errorEvent(pkgkey.Key{}, &TransactionError{Kind: KindValidationFailed})
			return
		}

		for _, action := range t.actions {
			select {
			case <-canceler.cancel:
				return
			case <-ctx.Done():
				return
			default:
			}

			slog.Debug("processing action", "action", action.String())

			switch action.Action {
			case ActionInstall:
				events <- installingEvent(action.ID)
				if err := t.store.Install(ctx, action.ID, action.Target); err != nil {
					slog.Error("install failed", "package", action.ID.String(), "error", err)
					events <- errorEvent(action.ID, &TransactionError{Kind: KindInstall, Install: err})
					return
				}
			case ActionUninstall:
				events <- uninstallingEvent(action.ID)
				if err := t.store.Uninstall(ctx, action.ID, action.Target); err != nil {
					slog.Error("uninstall failed", "package", action.ID.String(), "error", err)
					events <- errorEvent(action.ID, &TransactionError{Kind: KindUninstall, Uninstall: err})
					return
				}
			}
		}

		events <- completeEvent()
	}()

	return canceler, events
}
