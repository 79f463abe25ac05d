package output

import (
	"fmt"
	"strings"
	"time"
)

// FormatEventLine converts an output event into a display line. ErrorEvents
// may span several lines.
func FormatEventLine(event any) (string, bool) {
	switch e := event.(type) {
	case LogEvent:
		return e.Message, true
	case WarningEvent:
		return fmt.Sprintf("Warning: %s", e.Message), true
	case StatusEvent:
		return formatStatusLine(e), true
	case ProgressEvent:
		return formatProgressLine(e)
	case LogLineEvent:
		return e.Line, true
	case ErrorEvent:
		return formatError(e), true
	case ResultEvent:
		return formatResult(e), true
	default:
		return "", false
	}
}

func formatStatusLine(e StatusEvent) string {
	switch e.Phase {
	case PhasePreparing:
		return fmt.Sprintf("Preparing %s...", e.Job)
	case PhasePulling:
		return fmt.Sprintf("Pulling %s...", e.Detail)
	case PhaseStarting:
		return fmt.Sprintf("Starting %s...", e.Job)
	case PhaseRunning:
		if e.Detail != "" {
			return fmt.Sprintf("Running %s (%s)", e.Job, e.Detail)
		}
		return fmt.Sprintf("Running %s", e.Job)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("%s: %s (%s)", e.Job, e.Phase, e.Detail)
		}
		return fmt.Sprintf("%s: %s", e.Job, e.Phase)
	}
}

func formatProgressLine(e ProgressEvent) (string, bool) {
	if e.Total > 0 {
		pct := float64(e.Current) / float64(e.Total) * 100
		return fmt.Sprintf("  %s: %s %.1f%%", e.LayerID, e.Status, pct), true
	}
	if e.Status != "" {
		return fmt.Sprintf("  %s: %s", e.LayerID, e.Status), true
	}
	return "", false
}

func formatError(e ErrorEvent) string {
	lines := []string{"Error: " + e.Title}
	if e.Summary != "" {
		lines = append(lines, "  "+e.Summary)
	}
	if e.Detail != "" {
		lines = append(lines, "  "+e.Detail)
	}
	return strings.Join(lines, "\n")
}

func formatResult(e ResultEvent) string {
	elapsed := e.Duration.Round(10 * time.Millisecond)
	if e.ExitCode == 0 {
		return fmt.Sprintf("%s finished in %s (%d lines)", e.Job, elapsed, e.Lines)
	}
	return fmt.Sprintf("%s failed with exit code %d after %s (%d lines)", e.Job, e.ExitCode, elapsed, e.Lines)
}
