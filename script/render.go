package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the outcome column and the trailing detail.
var (
	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ff88"))

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))
)

// Render writes one line per record:
//
//	  1  insert         index=1 value=9    ok    [1, 9, 2, 3]  size=4 cap=4  @1
//
// Failing steps show FAIL and the error text. With color set, the outcome
// and the detail are styled with lipgloss.
func Render(w io.Writer, t *Trace, color bool) error {
	style := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", t.Name)
	for _, r := range t.Records {
		status := style(okStyle, fmt.Sprintf("%-4s", "ok"))
		detail := r.Result
		if r.Err != nil {
			status = style(failStyle, "FAIL")
			detail = r.Err.Error()
		}
		line := fmt.Sprintf("%3d  %-14s %-18s %s  %s  size=%d cap=%d",
			r.Step, r.Op, r.Args, status, r.Contents, r.Size, r.Cap)
		if detail != "" {
			line += "  " + style(subtleStyle, detail)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
