package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/serpent-os/tuirun/internal/output"
	"github.com/serpent-os/tuirun/internal/ui/components"
	"github.com/serpent-os/tuirun/internal/ui/styles"
)

// JobLines is the height of the job view.
const JobLines = 4

// JobModel is the live view of a background job: header, current phase,
// pull progress and a line counter with the elapsed time.
type JobModel struct {
	header   components.Header
	spinner  components.Spinner
	progress components.PullProgress
	phase    string
	finished string
	lines    int
	started  time.Time
	now      func() time.Time
}

func NewJobModel(version, job string) JobModel {
	return JobModel{
		header:   components.NewHeader(version, job),
		spinner:  components.NewSpinner().Start("Waiting"),
		progress: components.NewPullProgress(),
		started:  time.Now(),
		now:      time.Now,
	}
}

func (m JobModel) Init() tea.Cmd {
	return nil
}

func (m JobModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case output.StatusEvent:
		m.phase = msg.Phase
		line, _ := output.FormatEventLine(msg)
		if msg.Phase == output.PhaseExited {
			m.spinner = m.spinner.Stop()
			m.finished = line
		} else {
			m.spinner = m.spinner.Start(line)
		}
		if msg.Phase == output.PhasePulling {
			m.progress = m.progress.Show()
		} else {
			m.progress = m.progress.Hide()
		}
	case output.ProgressEvent:
		m.progress = m.progress.Track(msg)
	case output.LogLineEvent:
		m.lines++
	}
	return m, nil
}

func (m JobModel) View() string {
	status := m.spinner.View()
	if !m.spinner.Visible() && m.finished != "" {
		status = styles.Success.Render("✓ " + m.finished)
	}
	rows := []string{
		m.header.View(),
		status,
		m.progress.View(),
		styles.Secondary.Render(fmt.Sprintf("%d lines · %s", m.lines, m.Elapsed().Round(time.Second))),
	}
	return strings.Join(rows, "\n")
}

func (m JobModel) Phase() string {
	return m.phase
}

func (m JobModel) Lines() int {
	return m.lines
}

func (m JobModel) Elapsed() time.Duration {
	return m.now().Sub(m.started)
}

// SpinnerTick returns the message advancing the spinner by one frame.
func (m JobModel) SpinnerTick(now time.Time) tea.Msg {
	return m.spinner.TickMsg(now)
}

func (m JobModel) SpinnerInterval() time.Duration {
	return m.spinner.Interval()
}
