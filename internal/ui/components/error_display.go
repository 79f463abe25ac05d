package components

import (
	"strings"

	"github.com/serpent-os/tuirun/internal/output"
	"github.com/serpent-os/tuirun/internal/ui/styles"
)

// ErrorDisplay renders a failure for stderr: a marked title, then the
// summary and detail indented below it, one output line per input line.
type ErrorDisplay struct {
	event   output.ErrorEvent
	visible bool
}

func NewErrorDisplay() ErrorDisplay {
	return ErrorDisplay{}
}

func (e ErrorDisplay) Show(event output.ErrorEvent) ErrorDisplay {
	e.event = event
	e.visible = true
	return e
}

func (e ErrorDisplay) Visible() bool {
	return e.visible
}

func (e ErrorDisplay) View() string {
	if !e.visible {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(styles.ErrorTitle.Render("✗ " + e.event.Title))
	sb.WriteString("\n")

	for i, line := range nonEmptyLines(e.event.Summary) {
		marker := "  "
		if i == 0 {
			marker = "> "
		}
		sb.WriteString(styles.Secondary.Render(marker))
		sb.WriteString(styles.Message.Render(line))
		sb.WriteString("\n")
	}
	for _, line := range nonEmptyLines(e.event.Detail) {
		sb.WriteString("  ")
		sb.WriteString(styles.ErrorDetail.Render(line))
		sb.WriteString("\n")
	}

	return sb.String()
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimRight(line, " \r"); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
