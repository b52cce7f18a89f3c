package task

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFilter is returned by ParseFilter for names other than all, active or completed.
var ErrUnknownFilter = errors.New("unknown filter")

// Filter selects which tasks a view shows.
// The only values are All, Active and Completed; the zero value is All.
type Filter struct {
	name string
}

var (
	// All shows every task.
	All = Filter{}

	// Active shows tasks that are not completed.
	Active = Filter{name: "active"}

	// Completed shows completed tasks.
	Completed = Filter{name: "completed"}
)

// Filters lists the selectors in display order.
var Filters = []Filter{All, Active, Completed}

// String returns the selector name.
func (f Filter) String() string {
	if f.name == "" {
		return "all"
	}
	return f.name
}

// Next returns the selector after f in display order, wrapping around.
func (f Filter) Next() Filter {
	for i, cur := range Filters {
		if cur == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return All
}

// Match reports whether t belongs in a view selected by f.
func (f Filter) Match(t Task) bool {
	switch f {
	case Active:
		return !t.Completed
	case Completed:
		return t.Completed
	default:
		return true
	}
}

// ParseFilter parses a selector name (case-insensitive, trimmed).
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return All, nil
	case "active":
		return Active, nil
	case "completed":
		return Completed, nil
	default:
		return All, fmt.Errorf("%w: %s", ErrUnknownFilter, s)
	}
}

// Apply returns the tasks selected by f in their original order.
// The input is not modified and the result never shares its backing array.
func Apply(tasks []Task, f Filter) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Match(t) {
			result = append(result, t)
		}
	}
	return result
}
