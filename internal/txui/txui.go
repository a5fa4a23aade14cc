package txui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/kessho-pm/kessho/internal/transaction"
)

// Options controls how Render presents an event stream.
type Options struct {
	// NoProgress forces the plain one-line-per-event renderer even on a TTY.
	NoProgress bool
	// Watch requests the full-screen Bubble Tea live view. Ignored when
	// stdout is not a TTY.
	Watch bool
}

// Render consumes events until the channel closes, driving whichever of
// the three presentations Options selects, and returns the run's tallied
// results and any terminal error reported by the stream.
//
// Render never calls back into the transaction or its Canceler; it only
// observes the channel Process returned, preserving the single-consumer
// contract between producer and presentation.
func Render(events <-chan transaction.TransactionEvent, w io.Writer, opts Options) (*Results, error) {
	isTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	switch {
	case isTTY && opts.Watch:
		return renderWatch(events, w)
	case isTTY && !opts.NoProgress:
		return renderBars(events, w)
	default:
		return renderPlain(events, w)
	}
}

func renderPlain(events <-chan transaction.TransactionEvent, w io.Writer) (*Results, error) {
	p := newPlainPrinter(w)
	var runErr error
	for event := range events {
		p.handle(event)
		if event.Kind == transaction.EventError {
			runErr = event.Err
		}
	}
	return p.results, runErr
}

func renderBars(events <-chan transaction.TransactionEvent, w io.Writer) (*Results, error) {
	m := newBarManager(w)
	var runErr error
	for event := range events {
		m.handle(event)
		if event.Kind == transaction.EventError {
			runErr = event.Err
		}
	}
	m.wait()
	return m.results, runErr
}

func renderWatch(events <-chan transaction.TransactionEvent, w io.Writer) (*Results, error) {
	model := NewModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(w))

	go forward(events, p)

	if _, err := p.Run(); err != nil {
		return &model.results, fmt.Errorf("txui: %w", err)
	}

	fmt.Fprintln(w, model.FinalView())
	return &model.results, model.err
}
