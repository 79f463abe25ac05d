package paths

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Format writes the job ID followed by a table of every mapping.
func Format(w io.Writer, p *Paths) error {
	if _, err := fmt.Fprintf(w, "id: %s\n\n", p.ID()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "MAPPING\tHOST\tGUEST")
	for _, m := range p.All() {
		host := m.Host
		if host == "" {
			host = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Name, host, m.Guest)
	}
	return tw.Flush()
}
