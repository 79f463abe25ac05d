package tui

import tea "github.com/charmbracelet/bubbletea"

// ModelProgram drives a Bubble Tea model with the tui loop: Update forwards
// messages to the model and Draw lays out its View. Commands returned by the
// model are not executed; anything time-based (spinner ticks and the like)
// has to be fed through the Handle by the background task instead.
type ModelProgram struct {
	model tea.Model
	lines int
}

// FromModel wraps m in a viewport of the given height. The model's Init
// command is ignored for the same reason Update commands are.
func FromModel(m tea.Model, lines int) *ModelProgram {
	return &ModelProgram{model: m, lines: lines}
}

func (p *ModelProgram) Lines() int {
	return p.lines
}

func (p *ModelProgram) Draw(f *Frame) {
	f.SetString(p.model.View())
}

func (p *ModelProgram) Update(msg tea.Msg) {
	p.model, _ = p.model.Update(msg)
}

// Model returns the current model, e.g. to read final state after Run.
func (p *ModelProgram) Model() tea.Model {
	return p.model
}
