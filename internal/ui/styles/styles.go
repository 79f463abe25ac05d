package styles

import "github.com/charmbracelet/lipgloss"

const (
	AccentDarkColor  = "#2E6FBF"
	AccentColor      = "#4C8FE0"
	AccentLightColor = "#8AB8F0"
)

var (
	Logo = lipgloss.NewStyle().
		Foreground(lipgloss.Color(AccentColor))

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(AccentLightColor))

	Version = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	Message = lipgloss.NewStyle()

	Secondary = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	Phase = lipgloss.NewStyle().
		Foreground(lipgloss.Color(AccentColor))

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(AccentDarkColor))

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	ErrorTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	ErrorDetail = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)
)
