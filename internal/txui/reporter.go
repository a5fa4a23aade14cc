package txui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kessho-pm/kessho/internal/transaction"
)

// sender abstracts tea.Program.Send for testing.
type sender interface {
	Send(msg tea.Msg)
}

// forward drains events from ch and sends each one to target as a Bubble
// Tea message, until the channel closes.
func forward(ch <-chan transaction.TransactionEvent, target sender) {
	for event := range ch {
		target.Send(txEventMsg{event: event})
	}
	target.Send(txDoneMsg{})
}
