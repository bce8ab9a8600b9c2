package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/OpenListTeam/gofile-uploader/pkg/utils"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
)

const (
	barWidth     = 40
	nameWidth    = 24
	renderPeriod = 120 * time.Millisecond
)

// Terminal draws one line per running task and clears it when the task ends.
type Terminal struct {
	mu         sync.Mutex
	w          io.Writer
	enabled    bool
	bar        progress.Model
	nameStyle  lipgloss.Style
	dimStyle   lipgloss.Style
	tasks      []Snapshot
	lines      int
	lastRender time.Time
}

// NewTerminal renders to w only when w is a terminal.
func NewTerminal(w io.Writer) *Terminal {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return newTerminal(w, enabled)
}

func newTerminal(w io.Writer, enabled bool) *Terminal {
	r := lipgloss.NewRenderer(w)
	bar := progress.New(
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
		progress.WithSolidFill("10"),
	)
	bar.EmptyColor = "4"
	return &Terminal{
		w:         w,
		enabled:   enabled,
		bar:       bar,
		nameStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Width(nameWidth).Align(lipgloss.Right),
		dimStyle:  r.NewStyle().Faint(true),
	}
}

func (t *Terminal) OnEvent(ev Event) {
	if !t.enabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	switch ev.Kind {
	case Added:
		t.tasks = append(t.tasks, ev.Task)
		t.renderLocked(ev.Task.Time, true)
	case Updated:
		for i := range t.tasks {
			if t.tasks[i].ID == ev.Task.ID {
				t.tasks[i] = ev.Task
			}
		}
		force := ev.Task.Done >= ev.Task.Total
		t.renderLocked(ev.Task.Time, force)
	case Finished, Failed:
		for i := range t.tasks {
			if t.tasks[i].ID == ev.Task.ID {
				t.tasks = append(t.tasks[:i], t.tasks[i+1:]...)
				break
			}
		}
		t.renderLocked(ev.Task.Time, true)
	}
}

func (t *Terminal) renderLocked(now time.Time, force bool) {
	if !force && now.Sub(t.lastRender) < renderPeriod {
		return
	}
	t.lastRender = now

	var b strings.Builder
	if t.lines > 0 {
		b.WriteString(ansi.CursorUp(t.lines))
	}
	for _, s := range t.tasks {
		b.WriteString("\r")
		b.WriteString(ansi.EraseEntireLine)
		b.WriteString(t.line(s))
		b.WriteString("\n")
	}
	if extra := t.lines - len(t.tasks); extra > 0 {
		for i := 0; i < extra; i++ {
			b.WriteString("\r")
			b.WriteString(ansi.EraseEntireLine)
			b.WriteString("\n")
		}
		b.WriteString(ansi.CursorUp(extra))
	}
	t.lines = len(t.tasks)
	_, _ = io.WriteString(t.w, b.String())
}

func (t *Terminal) line(s Snapshot) string {
	name := t.nameStyle.Render(ansi.Truncate(s.Name, nameWidth, "…"))
	sep := t.dimStyle.Render("•")
	return fmt.Sprintf("%s %s %3.0f%% %s %s %s %s",
		name,
		t.bar.ViewAs(s.Percent()),
		s.Percent()*100,
		sep,
		utils.HumanRate(s.Rate()),
		sep,
		utils.HumanETA(s.Remaining()),
	)
}
