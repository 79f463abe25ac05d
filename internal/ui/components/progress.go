package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/serpent-os/tuirun/internal/output"
	"github.com/serpent-os/tuirun/internal/ui/styles"
)

const progressWidth = 30

type layer struct {
	current int64
	total   int64
}

// PullProgress aggregates per-layer image pull progress into one bar.
type PullProgress struct {
	bar     progress.Model
	layers  map[string]layer
	order   []string
	visible bool
}

func NewPullProgress() PullProgress {
	return PullProgress{
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
		layers: map[string]layer{},
	}
}

func (p PullProgress) Show() PullProgress {
	p.visible = true
	return p
}

func (p PullProgress) Hide() PullProgress {
	p.visible = false
	return p
}

func (p PullProgress) Visible() bool {
	return p.visible
}

// Track records the latest progress of one layer. Events without a total
// (status-only messages) are ignored.
func (p PullProgress) Track(e output.ProgressEvent) PullProgress {
	if e.LayerID == "" || e.Total <= 0 {
		return p
	}
	layers := make(map[string]layer, len(p.layers)+1)
	for id, l := range p.layers {
		layers[id] = l
	}
	if _, ok := layers[e.LayerID]; !ok {
		p.order = append(p.order[:len(p.order):len(p.order)], e.LayerID)
	}
	layers[e.LayerID] = layer{current: min(e.Current, e.Total), total: e.Total}
	p.layers = layers
	return p
}

// Percent is the downloaded share of all known layers, between 0 and 1.
func (p PullProgress) Percent() float64 {
	var current, total int64
	for _, l := range p.layers {
		current += l.current
		total += l.total
	}
	if total == 0 {
		return 0
	}
	return float64(current) / float64(total)
}

func (p PullProgress) View() string {
	if !p.visible {
		return ""
	}
	return p.bar.ViewAs(p.Percent()) + " " + styles.Secondary.Render(fmt.Sprintf("%d layers", len(p.order)))
}
