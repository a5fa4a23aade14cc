// Package txui presents a running transaction.PackageTransaction's event
// stream on the terminal. It only observes the channel Process returns; it
// never calls back into the transaction or the store.
package txui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// style holds the marks and colors used by both the plain-line and
// mpb-bar renderers, kept consistent with each other.
type style struct {
	InstallMark   string
	UninstallMark string
	FailMark      string
	DoneMark      string
	Header        *color.Color
	Path          *color.Color
	Success       *color.Color
	Fail          *color.Color
}

func newStyle() *style {
	return &style{
		InstallMark:   color.New(color.FgGreen).Sprint("+"),
		UninstallMark: color.New(color.FgYellow).Sprint("-"),
		FailMark:      color.New(color.FgRed).Sprint("✗"),
		DoneMark:      color.New(color.FgGreen).Sprint("✓"),
		Header:        color.New(color.FgCyan, color.Bold),
		Path:          color.New(color.FgCyan),
		Success:       color.New(color.FgGreen, color.Bold),
		Fail:          color.New(color.FgRed, color.Bold),
	}
}

var (
	lipglossPending = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	lipglossRunning = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	lipglossDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	lipglossFailed  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	lipglossHeader  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)
