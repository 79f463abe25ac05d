package components

import "github.com/serpent-os/tuirun/internal/ui/styles"

const logo = "◆"

// Header is the first line of the job view: tool, version and job name.
type Header struct {
	version string
	job     string
}

func NewHeader(version, job string) Header {
	return Header{version: version, job: job}
}

func (h Header) View() string {
	line := styles.Logo.Render(logo) + " " + styles.Title.Render("tuirun") + " " + styles.Version.Render(h.version)
	if h.job != "" {
		line += styles.Secondary.Render(" · ") + styles.Message.Render(h.job)
	}
	return line
}
