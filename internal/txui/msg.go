package txui

import "github.com/kessho-pm/kessho/internal/transaction"

// txEventMsg wraps a TransactionEvent as a Bubble Tea message.
type txEventMsg struct {
	event transaction.TransactionEvent
}

// txDoneMsg signals that the producer's channel has closed.
type txDoneMsg struct{}
