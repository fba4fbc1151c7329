package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/tada/internal/model"
)

// JSON-file source of todos. Same contract as the HTTP client,
// handy for demos and offline review of a captured response.
// Read-only: nothing here ever writes the file back.

// ErrSource wraps every failure to read the source file.
var ErrSource = errors.New("read todo source")

// Fetcher serves todos from a JSON array on disk.
type Fetcher struct {
	path string
}

// New returns a Fetcher for path; relative paths resolve against the working dir.
func New(path string) (*Fetcher, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrSource)
	}
	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, path)
	}
	return &Fetcher{path: path}, nil
}

// Path is the resolved file location.
func (f *Fetcher) Path() string { return f.path }

// FetchAll returns the todos owned by userID, in file order.
func (f *Fetcher) FetchAll(ctx context.Context, userID int) ([]model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSource, err)
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read file: %w", ErrSource, err)
	}
	var all []model.Todo
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", ErrSource, err)
	}
	out := make([]model.Todo, 0, len(all))
	for _, t := range all {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}
