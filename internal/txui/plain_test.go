package txui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/transaction"
)

func TestPlainPrinterTracksResults(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	p := newPlainPrinter(&buf)
	key := pkgkey.New("https://repo.test", "app")

	p.handle(transaction.TransactionEvent{Kind: transaction.EventInstalling, Package: key})
	p.handle(transaction.TransactionEvent{Kind: transaction.EventComplete})

	assert.Equal(t, 1, p.results.Installed)
	assert.Contains(t, buf.String(), "installing app")
	assert.Contains(t, buf.String(), "done")
}

func TestPlainPrinterTracksFailure(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	p := newPlainPrinter(&buf)
	key := pkgkey.New("https://repo.test", "app")
	runErr := &transaction.TransactionError{Kind: transaction.KindInstall}

	p.handle(transaction.TransactionEvent{Kind: transaction.EventInstalling, Package: key})
	p.handle(transaction.TransactionEvent{Kind: transaction.EventError, Package: key, Err: runErr})

	assert.Equal(t, 0, p.results.Installed)
	assert.Equal(t, 1, p.results.Failed)
	assert.Contains(t, buf.String(), "failed")
}
