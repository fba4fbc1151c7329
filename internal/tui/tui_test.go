package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/model"
)

type stubFetcher struct {
	todos []model.Todo
	err   error
}

func (s stubFetcher) FetchAll(context.Context, int) ([]model.Todo, error) {
	return s.todos, s.err
}

func sampleTodos() []model.Todo {
	return []model.Todo{
		{ID: 1, Title: "Write tests", Completed: false, UserID: 87},
		{ID: 2, Title: "Ship feature", Completed: true, UserID: 87},
		{ID: 3, Title: "Update docs", Completed: false, UserID: 87},
	}
}

// loadedModel returns a model whose store has already settled its fetch.
func loadedModel(t *testing.T, f app.Fetcher, userID int) (Model, *app.Store, *testingclock.FakeClock) {
	t.Helper()
	fc := testingclock.NewFakeClock(time.Now())
	store := app.New(f, userID, app.WithClock(fc))
	t.Cleanup(store.Close)

	m := New(context.Background(), store, true)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	if userID != 0 {
		store.Load(context.Background())
		updated, _ = m.Update(loadedMsg{})
		m = updated.(Model)
	}
	return m, store, fc
}

func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(k)
	out, ok := updated.(Model)
	require.True(t, ok)
	return out
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestModel_Init(t *testing.T) {
	store := app.New(stubFetcher{}, 87)
	t.Cleanup(store.Close)
	assert.NotNil(t, New(context.Background(), store, true).Init())

	none := app.New(stubFetcher{}, 0)
	t.Cleanup(none.Close)
	assert.Nil(t, New(context.Background(), none, true).Init(), "no fetch without a user id")
}

func TestModel_RendersLoadedList(t *testing.T) {
	m, _, _ := loadedModel(t, stubFetcher{todos: sampleTodos()}, 87)

	out := m.View()
	assert.Contains(t, out, "todos")
	assert.Contains(t, out, "Write tests")
	assert.Contains(t, out, "Ship feature")
	assert.Contains(t, out, "2 items left")
	assert.Contains(t, out, "[All]")
	assert.Contains(t, out, "Clear completed")
	assert.NotContains(t, out, "Loading")
	assert.Len(t, m.list.Items(), 3)
}

func TestModel_FilterKeys(t *testing.T) {
	m, store, _ := loadedModel(t, stubFetcher{todos: sampleTodos()}, 87)

	m = press(t, m, runes("2"))
	assert.Equal(t, model.Active, store.Snapshot().Filter)
	require.Len(t, m.list.Items(), 2)
	out := m.View()
	assert.Contains(t, out, "[Active]")
	assert.NotContains(t, out, "Ship feature")
	assert.Contains(t, out, "2 items left", "counter ignores the filter")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.Completed, m.view.Filter)
	require.Len(t, m.list.Items(), 1)
	assert.Equal(t, 2, m.list.Items()[0].(listItem).todo.ID)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.All, m.view.Filter)

	m = press(t, m, runes("3"))
	m = press(t, m, runes("1"))
	assert.Equal(t, model.All, m.view.Filter)
	assert.Len(t, m.list.Items(), 3)
}

func TestModel_ErrorNotice(t *testing.T) {
	m, store, fc := loadedModel(t, stubFetcher{err: errors.New("offline")}, 87)

	out := m.View()
	assert.Contains(t, out, app.LoadErrorMessage)
	assert.Contains(t, out, "Nothing to do yet.")
	assert.NotContains(t, out, "items left", "footer hidden without todos")

	m = press(t, m, runes("x"))
	assert.Empty(t, store.Snapshot().ErrorMessage)
	assert.NotContains(t, m.View(), app.LoadErrorMessage)
	assert.False(t, fc.HasWaiters())
}

func TestModel_ErrorExpiresOnStoreChange(t *testing.T) {
	m, store, fc := loadedModel(t, stubFetcher{err: errors.New("offline")}, 87)
	require.Contains(t, m.View(), app.LoadErrorMessage)

	fc.Step(app.ErrorDisplayDuration)
	require.Eventually(t, func() bool { return store.Snapshot().ErrorMessage == "" },
		time.Second, 5*time.Millisecond)

	updated, _ := m.Update(storeChangedMsg{})
	m = updated.(Model)
	assert.NotContains(t, m.View(), app.LoadErrorMessage)
}

func TestModel_MissingUserWarning(t *testing.T) {
	m, _, _ := loadedModel(t, stubFetcher{todos: sampleTodos()}, 0)

	out := m.View()
	assert.Contains(t, out, "No user id configured.")
	assert.Contains(t, out, "TADA_USER_ID")

	m = press(t, m, runes("2"))
	assert.Equal(t, model.All, m.view.Filter, "filter keys do nothing without a user")
}

func TestModel_Loading(t *testing.T) {
	store := app.New(stubFetcher{}, 87)
	t.Cleanup(store.Close)

	m := New(context.Background(), store, true)
	assert.Contains(t, m.View(), "Loading todos...")
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := loadedModel(t, stubFetcher{todos: sampleTodos()}, 87)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
