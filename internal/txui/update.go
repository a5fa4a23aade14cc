package txui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/transaction"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	case txEventMsg:
		return m.handleEvent(msg.event)
	case txDoneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleEvent(event transaction.TransactionEvent) (tea.Model, tea.Cmd) {
	// Any event other than EventError marks the previous running task
	// done — the stream carries no distinct per-package success event,
	// only the next action's start or EventComplete. An EventError marks
	// its task failed instead.
	if event.Kind != transaction.EventError {
		m.finishRunning()
	}

	switch event.Kind {
	case transaction.EventInstalling:
		m.start(event.Package, transaction.ActionInstall)
	case transaction.EventUninstalling:
		m.start(event.Package, transaction.ActionUninstall)
	case transaction.EventError:
		m.fail(event)
		m.err = event.Err
		m.done = true
		return m, tea.Quit
	case transaction.EventComplete:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) start(key pkgkey.Key, action transaction.PackageActionType) {
	t := &taskState{key: key, action: action, status: taskRunning}
	m.tasks[key] = t
	m.taskOrder = append(m.taskOrder, key)
}

// finishRunning marks every currently-running task as done, since at most
// one task is ever running at a time in this sequential executor.
func (m *Model) finishRunning() {
	for _, key := range m.taskOrder {
		t := m.tasks[key]
		if t.status != taskRunning {
			continue
		}
		t.status = taskDone
		if t.action == transaction.ActionInstall {
			m.results.Installed++
		} else {
			m.results.Uninstalled++
		}
	}
}

func (m *Model) fail(event transaction.TransactionEvent) {
	t, ok := m.tasks[event.Package]
	if !ok {
		t = &taskState{key: event.Package}
		m.tasks[event.Package] = t
		m.taskOrder = append(m.taskOrder, event.Package)
	}
	t.status = taskFailed
	t.err = event.Err
	m.results.Failed++
}
