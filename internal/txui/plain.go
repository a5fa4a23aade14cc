package txui

import (
	"fmt"
	"io"

	"github.com/kessho-pm/kessho/internal/transaction"
)

// plainPrinter writes one colored status line per event, for non-TTY
// output or when progress bars are explicitly disabled.
type plainPrinter struct {
	w       io.Writer
	style   *style
	results *Results
}

func newPlainPrinter(w io.Writer) *plainPrinter {
	return &plainPrinter{w: w, style: newStyle(), results: &Results{}}
}

func (p *plainPrinter) handle(event transaction.TransactionEvent) {
	switch event.Kind {
	case transaction.EventInstalling:
		fmt.Fprintf(p.w, "  %s installing %s\n", p.style.InstallMark, p.style.Path.Sprint(event.Package.ID()))
		p.results.Installed++
	case transaction.EventUninstalling:
		fmt.Fprintf(p.w, "  %s uninstalling %s\n", p.style.UninstallMark, p.style.Path.Sprint(event.Package.ID()))
		p.results.Uninstalled++
	case transaction.EventError:
		fmt.Fprintf(p.w, "  %s %s failed: %v\n", p.style.FailMark, p.style.Path.Sprint(event.Package.ID()), event.Err)
		switch {
		case p.results.Installed > 0:
			p.results.Installed--
		case p.results.Uninstalled > 0:
			p.results.Uninstalled--
		}
		p.results.Failed++
	case transaction.EventComplete:
		fmt.Fprintf(p.w, "%s done\n", p.style.DoneMark)
	}
}
