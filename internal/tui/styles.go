package tui

import "github.com/charmbracelet/lipgloss"

const (
	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// styles is the Lip Gloss palette for one program run.
type styles struct {
	title     lipgloss.Style
	success   lipgloss.Style
	pending   lipgloss.Style
	accent    lipgloss.Style
	muted     lipgloss.Style
	errorText lipgloss.Style
	warning   lipgloss.Style
	selected  lipgloss.Style
	done      lipgloss.Style
	help      lipgloss.Style
	tab       lipgloss.Style
	tabActive lipgloss.Style
	frame     lipgloss.Style
	notice    lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			title: plain.Bold(true), success: plain, pending: plain, accent: plain,
			muted: plain, errorText: plain, warning: plain,
			selected: plain.Reverse(true), done: plain.Strikethrough(true),
			help: plain, tab: plain.Padding(0, 1), tabActive: plain.Padding(0, 1),
			frame:  plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
			notice: plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		}
	}
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("168")),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:     lipgloss.NewStyle().Faint(true),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
		done:      lipgloss.NewStyle().Faint(true).Strikethrough(true),
		help:      lipgloss.NewStyle().Faint(true),
		tab:       lipgloss.NewStyle().Faint(true).Padding(0, 1),
		tabActive: lipgloss.NewStyle().Bold(true).Underline(true).
			Foreground(lipgloss.Color("168")).Padding(0, 1),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		notice: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(0, 1),
	}
}
