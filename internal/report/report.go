// Package report prints the summary of a run and the colored status lines.
package report

import (
	"fmt"
	"io"

	"github.com/OpenListTeam/gofile-uploader/internal/model"
	"github.com/charmbracelet/lipgloss"
)

type Printer struct {
	w     io.Writer
	panel lipgloss.Style
	title lipgloss.Style
	bold  lipgloss.Style
	link  lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
}

func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w: w,
		panel: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		bold:  r.NewStyle().Bold(true),
		link:  r.NewStyle().Underline(true).Foreground(lipgloss.Color("14")),
		err:   r.NewStyle().Foreground(lipgloss.Color("9")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Results prints one panel per uploaded file, in the given order.
func (p *Printer) Results(results []model.UploadResult) {
	for _, res := range results {
		body := fmt.Sprintf("%s\nFile: %s\nDownload: %s",
			p.title.Render("✓ Upload Complete"),
			p.bold.Render(res.Name),
			p.link.Render(res.DownloadPage),
		)
		fmt.Fprintln(p.w, p.panel.Render(body))
	}
}

func (p *Printer) Error(format string, a ...any) {
	fmt.Fprintln(p.w, p.err.Render(fmt.Sprintf(format, a...)))
}

func (p *Printer) Warn(format string, a ...any) {
	fmt.Fprintln(p.w, p.warn.Render(fmt.Sprintf(format, a...)))
}
