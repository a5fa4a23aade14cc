package txui

import (
	"fmt"
	"io"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/transaction"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// barManager renders one mpb bar per package, advanced from Installing/
// Uninstalling to the next event for that key, the way the teacher's
// ProgressManager tracks one bar per resource key.
type barManager struct {
	mu       sync.Mutex
	progress *mpb.Progress
	bars     map[pkgkey.Key]*mpb.Bar
	style    *style
	results  *Results
	current  pkgkey.Key
	hasCur   bool
}

func newBarManager(w io.Writer) *barManager {
	return &barManager{
		progress: mpb.New(mpb.WithOutput(w), mpb.WithWidth(40)),
		bars:     make(map[pkgkey.Key]*mpb.Bar),
		style:    newStyle(),
		results:  &Results{},
	}
}

// handle advances the bar group by one event. A package's bar is started
// on its Installing/Uninstalling event and finished as soon as any later
// event arrives, since the stream carries no distinct per-package success
// event — success is implied by the run moving on to the next action (or
// to EventComplete) without an EventError for that key.
func (m *barManager) handle(event transaction.TransactionEvent) {
	if m.hasCur && event.Kind != transaction.EventError {
		m.finish(m.current)
		m.hasCur = false
	}

	switch event.Kind {
	case transaction.EventInstalling:
		m.start(event.Package, "install")
	case transaction.EventUninstalling:
		m.start(event.Package, "uninstall")
	case transaction.EventError:
		m.fail(event.Package)
		m.hasCur = false
	case transaction.EventComplete:
		// bar group already drained above
	}
}

func (m *barManager) start(key pkgkey.Key, action string) {
	label := fmt.Sprintf("  %s %s ", action, m.style.Path.Sprint(key.ID()))

	m.mu.Lock()
	defer m.mu.Unlock()
	bar := m.progress.AddBar(1,
		mpb.SpinnerStyle(spinnerFrames...).Build(),
		mpb.BarFillerClearOnComplete(),
		mpb.PrependDecorators(decor.Name(label, decor.WC{W: 30, C: decor.DindentRight})),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO, decor.WC{W: 8}),
			decor.OnComplete(decor.Name(""), " done"),
		),
	)
	m.bars[key] = bar
	m.current = key
	m.hasCur = true
	if action == "install" {
		m.results.Installed++
	} else {
		m.results.Uninstalled++
	}
}

func (m *barManager) finish(key pkgkey.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if bar, ok := m.bars[key]; ok {
		bar.SetCurrent(1)
		delete(m.bars, key)
	}
}

func (m *barManager) fail(key pkgkey.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if bar, ok := m.bars[key]; ok {
		bar.Abort(true)
		delete(m.bars, key)
	}
	switch {
	case m.results.Installed > 0:
		m.results.Installed--
	case m.results.Uninstalled > 0:
		m.results.Uninstalled--
	}
	m.results.Failed++
}

// wait blocks until every bar has finished rendering.
func (m *barManager) wait() {
	m.progress.Wait()
}
