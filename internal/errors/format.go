//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders errors for CLI output, either as colored text or as JSON.
type Formatter struct {
	Writer io.Writer

	errorColor      *color.Color
	codeColor       *color.Color
	resourceColor   *color.Color
	hintColor       *color.Color
	cycleColor      *color.Color
	cycleArrowColor *color.Color
}

// NewFormatter creates a Formatter. When noColor is set, color.NoColor is
// forced globally for the process, matching how the rest of the CLI's
// output (progress bars, plan tables) decides whether to colorize.
func NewFormatter(w io.Writer, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}
	return &Formatter{
		Writer:          w,
		errorColor:      color.New(color.FgRed, color.Bold),
		codeColor:       color.New(color.FgRed),
		resourceColor:   color.New(color.FgCyan),
		hintColor:       color.New(color.FgGreen),
		cycleColor:      color.New(color.FgCyan),
		cycleArrowColor: color.New(color.FgYellow),
	}
}

func (f *Formatter) header(sb *strings.Builder, code Code, message string) {
	sb.WriteString(f.errorColor.Sprint("Error"))
	if code != "" {
		sb.WriteString(" ")
		sb.WriteString(f.codeColor.Sprintf("[%s]", code))
	}
	sb.WriteString(f.errorColor.Sprint(": "))
	sb.WriteString(message)
	sb.WriteString("\n")
}

// Format renders err as human-readable colored text.
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	var depErr *DependencyError
	var valErr *ValidationError
	var installErr *InstallError
	var baseErr *Error

	switch {
	case errors.As(err, &depErr):
		f.formatDependency(&sb, depErr)
	case errors.As(err, &valErr):
		f.header(&sb, valErr.Base.Code, valErr.Base.Message)
		f.writeHint(&sb, valErr.Base.Hint)
	case errors.As(err, &installErr):
		f.header(&sb, installErr.Base.Code, installErr.Base.Message)
		f.writeHint(&sb, installErr.Base.Hint)
	case errors.As(err, &baseErr):
		f.header(&sb, baseErr.Code, baseErr.Message)
		f.writeHint(&sb, baseErr.Hint)
	default:
		sb.WriteString(f.errorColor.Sprint("Error: "))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

func (f *Formatter) formatDependency(sb *strings.Builder, e *DependencyError) {
	f.header(sb, e.Base.Code, e.Base.Message)
	if e.IsCycle() {
		sb.WriteString("\n")
		for i, node := range e.Cycle {
			sb.WriteString("  ")
			if i == len(e.Cycle)-1 {
				sb.WriteString(f.resourceColor.Sprint(node))
				sb.WriteString(f.cycleArrowColor.Sprint("  ← cycle"))
			} else {
				sb.WriteString(f.cycleColor.Sprint(node))
			}
			sb.WriteString("\n")
			if i < len(e.Cycle)-1 {
				sb.WriteString("      ")
				sb.WriteString(f.cycleArrowColor.Sprint("↓ depends on\n"))
			}
		}
	}
	f.writeHint(sb, e.Base.Hint)
}

func (f *Formatter) writeHint(sb *strings.Builder, hint string) {
	if hint == "" {
		return
	}
	sb.WriteString(f.hintColor.Sprint("Hint: "))
	sb.WriteString(hint)
	sb.WriteString("\n")
}

// FormatJSON renders err as a JSON object for scriptable callers.
func (f *Formatter) FormatJSON(err error) ([]byte, error) {
	if err == nil {
		return nil, nil
	}

	var depErr *DependencyError
	var valErr *ValidationError
	var installErr *InstallError
	var baseErr *Error

	switch {
	case errors.As(err, &depErr):
		return json.Marshal(depErr)
	case errors.As(err, &valErr):
		return json.Marshal(valErr)
	case errors.As(err, &installErr):
		return json.Marshal(installErr)
	case errors.As(err, &baseErr):
		return json.Marshal(baseErr)
	default:
		return json.Marshal(map[string]string{"error": err.Error()})
	}
}
