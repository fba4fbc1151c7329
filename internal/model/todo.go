package model

// Todo is one list entry as served by the backend.
// Fields are never mutated once loaded; the collection is replaced wholesale.
type Todo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

// Filter returns the subsequence of todos visible under s.
// All returns the input as is; the other statuses allocate a new slice
// and keep the backend order.
func Filter(s Status, todos []Todo) []Todo {
	switch s {
	case Active, Completed:
	default:
		return todos
	}
	wantCompleted := s == Completed
	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		if t.Completed == wantCompleted {
			out = append(out, t)
		}
	}
	return out
}

// ActiveCount is the number of todos not yet completed.
func ActiveCount(todos []Todo) int {
	n := 0
	for _, t := range todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

// CompletedCount is the number of completed todos.
func CompletedCount(todos []Todo) int {
	return len(todos) - ActiveCount(todos)
}
