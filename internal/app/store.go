// Package app owns the todo list state shared by every front-end:
// the loaded collection, the transient load error and the filter selection.
package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"k8s.io/utils/clock"

	"github.com/Makepad-fr/tada/internal/model"
)

const (
	// ErrorDisplayDuration is how long a load error stays visible.
	ErrorDisplayDuration = 3 * time.Second

	// LoadErrorMessage is the only error text ever shown.
	LoadErrorMessage = "Unable to load todos"
)

// Fetcher retrieves the full list for one user.
type Fetcher interface {
	FetchAll(ctx context.Context, userID int) ([]model.Todo, error)
}

// View is what a renderer needs for one frame.
// Every field is derived fresh in Snapshot.
type View struct {
	Visible        []model.Todo
	Filter         model.Status
	Total          int
	ActiveCount    int
	CompletedCount int
	ErrorMessage   string
	Loading        bool
	Loaded         bool
}

// Store holds the list state and the error auto-clear timer.
//
// Lock order: the store lock may be held while arming a timer; timer
// callbacks take the store lock themselves. Fetches and change callbacks
// always run with the lock released.
type Store struct {
	fetcher  Fetcher
	userID   int
	clock    clock.WithDelayedExecution
	log      *zap.Logger
	onChange func()

	mu       sync.Mutex
	todos    []model.Todo
	errMsg   string
	filter   model.Status
	started  bool
	loading  bool
	loaded   bool
	closed   bool
	cancel   context.CancelFunc
	errTimer clock.Timer
	errGen   uint64
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock (tests use a fake one).
func WithClock(c clock.WithDelayedExecution) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithOnChange registers a callback fired after every state transition.
// It may run on any goroutine.
func WithOnChange(fn func()) Option {
	return func(s *Store) { s.onChange = fn }
}

// New builds a store that will load the todos of userID through f.
func New(f Fetcher, userID int, opts ...Option) *Store {
	s := &Store{
		fetcher: f,
		userID:  userID,
		clock:   clock.RealClock{},
		log:     zap.NewNop(),
		todos:   []model.Todo{},
		filter:  model.All,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.Int("user_id", userID))
	return s
}

// UserID is the user whose list this store loads.
func (s *Store) UserID() int { return s.userID }

// Load fetches the list once. Later calls, and calls after Close, do nothing.
// Failures are logged and surfaced as the transient error message only.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.loading = true
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	s.notify()

	start := s.clock.Now()
	todos, err := s.fetcher.FetchAll(ctx, s.userID)
	elapsed := s.clock.Since(start)

	s.mu.Lock()
	s.loading = false
	if s.closed {
		s.mu.Unlock()
		s.log.Debug("dropping load result after close", zap.Error(err))
		return
	}
	if err != nil {
		stale := s.showErrorLocked(LoadErrorMessage)
		s.mu.Unlock()
		if stale != nil {
			stale.Stop()
		}
		s.log.Warn("load todos failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		s.notify()
		return
	}
	if todos == nil {
		todos = []model.Todo{}
	}
	s.todos = todos
	s.loaded = true
	s.mu.Unlock()

	s.log.Info("todos loaded",
		zap.Int("count", len(todos)),
		zap.Int("active", model.ActiveCount(todos)),
		zap.Duration("elapsed", elapsed))
	s.notify()
}

// SelectFilter replaces the current filter.
func (s *Store) SelectFilter(st model.Status) {
	s.mu.Lock()
	changed := s.filter != st
	s.filter = st
	s.mu.Unlock()
	if changed {
		s.log.Debug("filter selected", zap.Stringer("filter", st))
		s.notify()
	}
}

// DismissError clears the error now and cancels its pending auto-clear.
func (s *Store) DismissError() {
	s.mu.Lock()
	if s.errMsg == "" && s.errTimer == nil {
		s.mu.Unlock()
		return
	}
	t := s.releaseTimerLocked()
	s.errMsg = ""
	s.mu.Unlock()

	if t != nil {
		t.Stop()
	}
	s.log.Debug("error dismissed")
	s.notify()
}

// Close tears the store down: the pending auto-clear is cancelled and an
// in-flight fetch is aborted, its result discarded. Safe to call twice.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	t := s.releaseTimerLocked()
	cancel := s.cancel
	s.mu.Unlock()

	if t != nil {
		t.Stop()
	}
	if cancel != nil {
		cancel()
	}
}

// Snapshot derives the current view.
func (s *Store) Snapshot() View {
	s.mu.Lock()
	todos, filter := s.todos, s.filter
	v := View{
		Filter:       filter,
		ErrorMessage: s.errMsg,
		Loading:      s.loading,
		Loaded:       s.loaded,
	}
	s.mu.Unlock()

	// todos is replaced wholesale, never written in place, so reading
	// it outside the lock is safe.
	v.Visible = model.Filter(filter, todos)
	v.Total = len(todos)
	v.ActiveCount = model.ActiveCount(todos)
	v.CompletedCount = v.Total - v.ActiveCount
	return v
}

// showErrorLocked enters the Shown state and arms a fresh timer.
// It returns the previous timer, which the caller stops after unlocking.
func (s *Store) showErrorLocked(msg string) clock.Timer {
	stale := s.releaseTimerLocked()
	gen := s.errGen
	s.errMsg = msg
	s.errTimer = s.clock.AfterFunc(ErrorDisplayDuration, func() { s.expireError(gen) })
	return stale
}

// releaseTimerLocked detaches the current timer and invalidates its callback.
func (s *Store) releaseTimerLocked() clock.Timer {
	t := s.errTimer
	s.errTimer = nil
	s.errGen++
	return t
}

func (s *Store) expireError(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.errGen {
		s.mu.Unlock()
		return
	}
	s.errTimer = nil
	s.errMsg = ""
	s.mu.Unlock()

	s.log.Debug("error expired")
	s.notify()
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
