package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTodos() []Todo {
	return []Todo{
		{ID: 1, Title: "a", Completed: false, UserID: 87},
		{ID: 2, Title: "b", Completed: true, UserID: 87},
		{ID: 3, Title: "c", Completed: false, UserID: 87},
		{ID: 4, Title: "d", Completed: true, UserID: 87},
		{ID: 5, Title: "e", Completed: false, UserID: 87},
	}
}

// isSubsequence reports whether sub appears in s in the same relative order.
func isSubsequence(sub, s []Todo) bool {
	i := 0
	for _, t := range s {
		if i < len(sub) && sub[i] == t {
			i++
		}
	}
	return i == len(sub)
}

func TestFilter(t *testing.T) {
	inputs := map[string][]Todo{
		"empty":         {},
		"nil":           nil,
		"mixed":         sampleTodos(),
		"all active":    {{ID: 1, Title: "a"}, {ID: 2, Title: "b"}},
		"all completed": {{ID: 1, Title: "a", Completed: true}},
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			all := Filter(All, in)
			active := Filter(Active, in)
			done := Filter(Completed, in)

			assert.Equal(t, in, all, "All returns the input unchanged")
			for _, s := range Statuses() {
				assert.True(t, isSubsequence(Filter(s, in), in), "%s keeps relative order", s)
			}
			for _, it := range active {
				assert.False(t, it.Completed)
			}
			for _, it := range done {
				assert.True(t, it.Completed)
			}
			assert.Len(t, in, len(active)+len(done), "active and completed partition the list")

			// merge back by original position
			merged := make([]Todo, 0, len(in))
			ai, di := 0, 0
			for _, it := range in {
				if ai < len(active) && active[ai] == it {
					merged = append(merged, it)
					ai++
				} else if di < len(done) && done[di] == it {
					merged = append(merged, it)
					di++
				}
			}
			if len(in) == 0 {
				assert.Empty(t, merged)
			} else {
				assert.Equal(t, Filter(All, in), merged, "union in original order is the full list")
			}
		})
	}
}

func TestFilter_ActiveScenario(t *testing.T) {
	todos := []Todo{
		{ID: 1, Title: "a", Completed: false},
		{ID: 2, Title: "b", Completed: true},
	}

	got := Filter(Active, todos)

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 1, ActiveCount(todos))
	assert.Equal(t, 1, CompletedCount(todos))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	todos := sampleTodos()
	before := append([]Todo(nil), todos...)

	_ = Filter(Active, todos)
	_ = Filter(Completed, todos)

	assert.Equal(t, before, todos)
}

func TestFilter_EmptyForEveryStatus(t *testing.T) {
	for _, s := range Statuses() {
		assert.Empty(t, Filter(s, []Todo{}), s.String())
	}
	assert.Zero(t, ActiveCount(nil))
}

func TestFilter_UnknownStatusShowsAll(t *testing.T) {
	todos := sampleTodos()
	assert.Equal(t, todos, Filter(Status(42), todos))
}
