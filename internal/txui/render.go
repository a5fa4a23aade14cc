package txui

import (
	"fmt"
	"strings"
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(lipglossHeader.Render("kessho apply"))
	b.WriteString("\n\n")

	for _, key := range m.taskOrder {
		t := m.tasks[key]
		line := fmt.Sprintf("%s %s", t.action.String(), key.ID())
		switch t.status {
		case taskRunning:
			b.WriteString(lipglossRunning.Render("  ● " + line))
		case taskDone:
			b.WriteString(lipglossDone.Render("  ✓ " + line))
		case taskFailed:
			b.WriteString(lipglossFailed.Render(fmt.Sprintf("  ✗ %s: %v", line, t.err)))
		}
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(lipglossFailed.Render("failed"))
		} else {
			b.WriteString(lipglossDone.Render("complete"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FinalView renders the same content as View, for reprinting to
// scrollback after the alt-screen program exits.
func (m *Model) FinalView() string {
	return m.View()
}
