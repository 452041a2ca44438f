// Package output provides formatters for menu and task output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"todo/internal/config"
	"todo/internal/service"
)

const (
	// MenuTitle is the header printed above the menu.
	MenuTitle = "=== To-Do List App ==="

	// ListTitle is the header printed above a non-empty task list.
	ListTitle = "Your To-Do List:"
)

// Theme holds the styles bound to one output writer.
type Theme struct {
	header  lipgloss.Style
	done    lipgloss.Style
	pending lipgloss.Style
	ascii   bool
}

// NewTheme creates a Theme rendering for w.
// noColor forces plain text; ascii replaces emoji markers with "x" and " ".
func NewTheme(w io.Writer, noColor, ascii bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Theme{
		header:  r.NewStyle().Bold(true),
		done:    r.NewStyle().Foreground(lipgloss.Color("2")),
		pending: r.NewStyle().Foreground(lipgloss.Color("1")),
		ascii:   ascii,
	}
}

// ThemeFor creates a Theme for w from the run configuration.
func ThemeFor(w io.Writer, cfg *config.Config) *Theme {
	return NewTheme(w, cfg.NoColor, cfg.Markers == config.MarkersASCII)
}

// Marker returns the styled done indicator.
func (t *Theme) Marker(done bool) string {
	switch {
	case done && t.ascii:
		return t.done.Render("x")
	case done:
		return t.done.Render("✅")
	case t.ascii:
		return " "
	default:
		return t.pending.Render("❌")
	}
}

// Emoji returns " "+e, or "" when emoji are turned off.
func (t *Theme) Emoji(e string) string {
	if t.ascii {
		return ""
	}
	return " " + e
}

// State describes a done flag in words, e.g. "done ✅".
func (t *Theme) State(done bool) string {
	if done {
		if t.ascii {
			return "done"
		}
		return "done " + t.Marker(true)
	}
	if t.ascii {
		return "not done"
	}
	return "not done " + t.Marker(false)
}

// MenuEntry is one line of the menu.
type MenuEntry struct {
	Key   string
	Label string
}

// FormatMenu prints the menu header and entries.
// Format: "{KEY}. {LABEL}\n" per entry.
func FormatMenu(w io.Writer, t *Theme, entries []MenuEntry) {
	fmt.Fprintln(w, t.header.Render(MenuTitle))
	for _, e := range entries {
		fmt.Fprintf(w, "%s. %s\n", e.Key, e.Label)
	}
}

// FormatTask formats a task line.
// Format: "{N}. {TITLE} [{MARKER}]\n"
func FormatTask(w io.Writer, t *Theme, num int, task service.Task) {
	fmt.Fprintf(w, "%d. %s [%s]\n", num, normalizeTitle(task.Title), t.Marker(task.Done))
}

// FormatTaskList prints every task with its 1-based position, framed by
// blank lines. An empty list prints a "no tasks" line instead.
func FormatTaskList(w io.Writer, t *Theme, tasks []service.Task) {
	if len(tasks) == 0 {
		fmt.Fprintf(w, "\nNo tasks yet.%s\n\n", t.Emoji("🎉"))
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.header.Render(ListTitle))
	for i, task := range tasks {
		FormatTask(w, t, i+1, task)
	}
	fmt.Fprintln(w)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
