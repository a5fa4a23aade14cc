package txui

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/transaction"
)

func TestBarManagerStartsAndFinishesBars(t *testing.T) {
	m := newBarManager(io.Discard)
	app := pkgkey.New("https://repo.test", "app")
	lib := pkgkey.New("https://repo.test", "lib")

	m.handle(transaction.TransactionEvent{Kind: transaction.EventInstalling, Package: lib})
	assert.Len(t, m.bars, 1)

	m.handle(transaction.TransactionEvent{Kind: transaction.EventInstalling, Package: app})
	assert.Len(t, m.bars, 1, "starting the next package's bar should have finished the previous one")

	m.handle(transaction.TransactionEvent{Kind: transaction.EventComplete})
	assert.Len(t, m.bars, 0)
	assert.Equal(t, 2, m.results.Installed)
}

func TestBarManagerAbortsOnError(t *testing.T) {
	m := newBarManager(io.Discard)
	key := pkgkey.New("https://repo.test", "app")
	runErr := &transaction.TransactionError{Kind: transaction.KindInstall}

	m.handle(transaction.TransactionEvent{Kind: transaction.EventInstalling, Package: key})
	m.handle(transaction.TransactionEvent{Kind: transaction.EventError, Package: key, Err: runErr})

	assert.Len(t, m.bars, 0)
	assert.Equal(t, 0, m.results.Installed)
	assert.Equal(t, 1, m.results.Failed)
}
