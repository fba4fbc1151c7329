package model

import (
	"errors"
	"fmt"
	"strings"
)

// Status selects which todos are visible.
type Status int

const (
	All Status = iota
	Active
	Completed
)

var ErrUnknownStatus = errors.New("unknown status")

var statusLabels = [...]string{
	All:       "All",
	Active:    "Active",
	Completed: "Completed",
}

// Statuses lists every status in display order.
func Statuses() []Status { return []Status{All, Active, Completed} }

func (s Status) String() string {
	if s < All || s > Completed {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusLabels[s]
}

// Next cycles All -> Active -> Completed -> All.
func (s Status) Next() Status {
	if s < All || s >= Completed {
		return All
	}
	return s + 1
}

// ParseStatus matches a label case-insensitively.
func ParseStatus(label string) (Status, error) {
	label = strings.TrimSpace(label)
	for _, s := range Statuses() {
		if strings.EqualFold(label, s.String()) {
			return s, nil
		}
	}
	return All, fmt.Errorf("%w: %q (want all, active or completed)", ErrUnknownStatus, label)
}
