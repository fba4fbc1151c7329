package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/model"
)

const maxTitleWidth = 80

// ItemsLeft is the footer counter text.
func ItemsLeft(n int) string { return fmt.Sprintf("%d items left", n) }

// FilterTabs renders the three filter labels, highlighting sel.
func FilterTabs(sel model.Status) string {
	t := Current()
	tabs := make([]string, 0, 3)
	for _, s := range model.Statuses() {
		label := s.String()
		if s == sel {
			if t.Selected == "" || !colorEnabled {
				label = "[" + label + "]"
			} else {
				label = C(t.Selected, label)
			}
		} else {
			label = C(t.Muted, label)
		}
		tabs = append(tabs, label)
	}
	return strings.Join(tabs, "  ")
}

// RenderList prints one frame of v inside a panel.
// The footer is omitted while the list is empty, like the web app.
func RenderList(w io.Writer, v app.View) {
	t := Current()

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.Title, "todos"),
		C(t.Success, t.SymDone), v.CompletedCount,
		C(t.Pending, t.SymActive), v.ActiveCount,
		C(t.Accent, "Total"), v.Total,
	)
	lines := []string{
		header,
		C(t.Muted, ProgressBar(v.CompletedCount, v.Total, 28)),
		"",
	}
	lines = append(lines, todoLines(v)...)

	if v.Total > 0 {
		footer := ItemsLeft(v.ActiveCount) + "    " + FilterTabs(v.Filter)
		if v.CompletedCount > 0 {
			footer += "    " + C(t.Muted, "Clear completed")
		}
		lines = append(lines, "", footer)
	}
	Panel(w, lines)
}

func todoLines(v app.View) []string {
	t := Current()
	if v.Total == 0 {
		return []string{C(t.Muted, "no items")}
	}
	if len(v.Visible) == 0 {
		return []string{C(t.Muted, "(none)")}
	}
	out := make([]string, 0, len(v.Visible))
	for i, it := range v.Visible {
		idx := fmt.Sprintf("%2d.", i+1)
		box, color := t.BoxUnchecked, t.Muted
		if it.Completed {
			box, color = t.BoxChecked, t.Success
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			C(dim, idx), C(color, box), TruncateTitle(it.Title, maxTitleWidth)))
	}
	return out
}

// TruncateTitle shortens s to width cells, ending in an ellipsis.
func TruncateTitle(s string, width int) string {
	return ansi.Truncate(s, width, "...")
}
