package txui

import (
	"fmt"
	"io"
)

// Results tallies the outcomes of a rendered transaction run, for a
// one-line summary printed after the event stream closes.
type Results struct {
	Installed   int
	Uninstalled int
	Failed      int
}

// PrintSummary writes a short human-readable summary of r to w.
func PrintSummary(w io.Writer, r *Results) {
	style := newStyle()

	if r.Installed == 0 && r.Uninstalled == 0 && r.Failed == 0 {
		fmt.Fprintln(w, "no changes")
		return
	}

	if r.Installed > 0 {
		fmt.Fprintf(w, "  %s installed:   %d\n", style.InstallMark, r.Installed)
	}
	if r.Uninstalled > 0 {
		fmt.Fprintf(w, "  %s uninstalled: %d\n", style.UninstallMark, r.Uninstalled)
	}
	if r.Failed > 0 {
		fmt.Fprintf(w, "  %s failed:      %d\n", style.FailMark, r.Failed)
		style.Fail.Fprintln(w, "transaction completed with errors")
		return
	}
	style.Success.Fprintln(w, "transaction complete")
}
