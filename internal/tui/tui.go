// Package tui is the interactive Bubble Tea front-end over app.Store.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/model"
)

// storeChangedMsg asks the model to re-read the store.
type storeChangedMsg struct{}

// loadedMsg is returned by the load command once the fetch has settled.
type loadedMsg struct{}

// listItem adapts a Todo to bubbles/list.Item
type listItem struct {
	todo model.Todo
}

func (i listItem) FilterValue() string { return i.todo.Title }

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	st styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.st.muted.Render(boxUnchecked)
	text := it.todo.Title
	if it.todo.Completed {
		box = d.st.success.Render(boxChecked)
		text = d.st.done.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+box+" "+text)
}

// Model renders one store. Pressing keys only changes the filter or
// dismisses the error; the list itself is read-only.
type Model struct {
	ctx     context.Context
	store   *app.Store
	keys    keyMap
	st      styles
	noColor bool

	list    list.Model
	spinner spinner.Model
	view    app.View
	waiting bool

	width, height int
}

// New builds the model; ctx bounds the initial fetch.
func New(ctx context.Context, store *app.Store, noColor bool) Model {
	st := newStyles(noColor)
	keys := defaultKeyMap()

	l := list.New(nil, itemDelegate{st: st}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("todo", "todos")
	l.Styles.HelpStyle = st.help.Padding(1, 0, 0, 0)
	l.Styles.PaginationStyle = st.help
	l.Styles.NoItems = st.muted
	l.KeyMap.Quit.SetEnabled(false)
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.full

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = st.accent

	return Model{
		ctx:     ctx,
		store:   store,
		keys:    keys,
		st:      st,
		noColor: noColor,
		list:    l,
		spinner: sp,
		view:    store.Snapshot(),
		waiting: store.UserID() != 0,
		width:   80,
		height:  24,
	}
}

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd {
	if m.store.UserID() == 0 {
		return nil
	}
	store, ctx := m.store, m.ctx
	load := func() tea.Msg {
		store.Load(ctx)
		return loadedMsg{}
	}
	return tea.Batch(load, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case loadedMsg:
		m.waiting = false
		return m, m.sync()

	case storeChangedMsg:
		return m, m.sync()

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case m.store.UserID() == 0:
			return m, nil
		case key.Matches(msg, m.keys.NextFilter):
			m.store.SelectFilter(m.view.Filter.Next())
			return m, m.sync()
		case key.Matches(msg, m.keys.All):
			m.store.SelectFilter(model.All)
			return m, m.sync()
		case key.Matches(msg, m.keys.Active):
			m.store.SelectFilter(model.Active)
			return m, m.sync()
		case key.Matches(msg, m.keys.Completed):
			m.store.SelectFilter(model.Completed)
			return m, m.sync()
		case key.Matches(msg, m.keys.Dismiss):
			m.store.DismissError()
			return m, m.sync()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// sync copies a fresh snapshot into the model and the list widget.
func (m *Model) sync() tea.Cmd {
	prev := m.view.Filter
	m.view = m.store.Snapshot()

	items := make([]list.Item, 0, len(m.view.Visible))
	for _, t := range m.view.Visible {
		items = append(items, listItem{todo: t})
	}
	cmd := m.list.SetItems(items)
	if prev != m.view.Filter {
		m.list.ResetSelected()
	}
	return cmd
}

func (m Model) View() string {
	innerW := max(m.width-4, 20)
	if m.store.UserID() == 0 {
		return m.st.frame.Render(m.warningView(innerW))
	}

	parts := []string{m.headerView()}
	footer := m.footerView()
	notice := m.noticeView()

	chrome := lipgloss.Height(parts[0]) + 2 // frame border
	if footer != "" {
		chrome += lipgloss.Height(footer) + 1
	}
	if notice != "" {
		chrome += lipgloss.Height(notice)
	}

	switch {
	case m.waiting:
		parts = append(parts, m.spinner.View()+" Loading todos...")
	case m.view.Total == 0:
		parts = append(parts, m.st.muted.Render("Nothing to do yet."))
	default:
		m.list.SetSize(innerW, max(m.height-chrome-1, 3))
		parts = append(parts, m.list.View())
	}
	if footer != "" {
		parts = append(parts, "", footer)
	}

	content := m.st.frame.Render(strings.Join(parts, "\n"))
	if notice != "" {
		content += "\n" + notice
	}
	return content
}

func (m Model) headerView() string {
	title := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.st.title.Render("todos"),
		m.st.success.Render("✔"), m.view.CompletedCount,
		m.st.pending.Render("•"), m.view.ActiveCount,
		m.st.accent.Render("Total"), m.view.Total,
	)
	input := m.st.muted.Render("❯ What needs to be done?")
	return title + "\n" + input
}

// footerView is empty while there is nothing to show, like the web footer.
func (m Model) footerView() string {
	if m.view.Total == 0 {
		return ""
	}
	tabs := make([]string, 0, 3)
	for _, s := range model.Statuses() {
		if s == m.view.Filter {
			label := s.String()
			if m.noColor {
				label = "[" + label + "]"
			}
			tabs = append(tabs, m.st.tabActive.Render(label))
			continue
		}
		tabs = append(tabs, m.st.tab.Render(s.String()))
	}
	footer := fmt.Sprintf("%d items left  %s", m.view.ActiveCount, strings.Join(tabs, ""))
	if m.view.CompletedCount > 0 {
		footer += "  " + m.st.muted.Render("Clear completed")
	}
	return footer
}

func (m Model) noticeView() string {
	if m.view.ErrorMessage == "" {
		return ""
	}
	return m.st.notice.Render(
		m.st.errorText.Render("✖ "+m.view.ErrorMessage) + "  " + m.st.help.Render("x dismiss"))
}

func (m Model) warningView(width int) string {
	lines := []string{
		m.st.warning.Render("No user id configured."),
		"",
		"Set user_id in tada.toml, export TADA_USER_ID,",
		"or pass --user-id to pick whose todos to list.",
		"",
		m.st.help.Render("q quit"),
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(lines, "\n"))
}

// Options tune a TUI run.
type Options struct {
	NoColor bool
	Logger  *zap.Logger
}

// Run starts the program and tears the store down when it exits.
func Run(ctx context.Context, f app.Fetcher, userID int, opt Options) error {
	var p *tea.Program
	store := app.New(f, userID,
		app.WithLogger(opt.Logger),
		// Send blocks until the event loop reads it, and the store also
		// changes from inside Update.
		app.WithOnChange(func() { go p.Send(storeChangedMsg{}) }),
	)
	defer store.Close()

	p = tea.NewProgram(New(ctx, store, opt.NoColor), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
