package txui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/transaction"
)

type taskStatus int

const (
	taskRunning taskStatus = iota
	taskDone
	taskFailed
)

// taskState is one package's row in the live view.
type taskState struct {
	key       pkgkey.Key
	action    transaction.PackageActionType
	status    taskStatus
	startTime time.Time
	elapsed   time.Duration
	err       error
}

// Model is the Bubble Tea model driving `kessho apply --watch`.
type Model struct {
	tasks     map[pkgkey.Key]*taskState
	taskOrder []pkgkey.Key
	results   Results
	done      bool
	err       error
	width     int
}

// NewModel creates an empty live-view model.
func NewModel() *Model {
	return &Model{tasks: make(map[pkgkey.Key]*taskState), width: 80}
}

// Err returns the terminal error, if the run failed.
func (m *Model) Err() error {
	return m.err
}

// Results returns the tallied outcome of the run so far.
func (m *Model) Results() Results {
	return m.results
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}
