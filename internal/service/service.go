// Package service defines the in-process API the presentation layers drive.
package service

import (
	"github.com/google/uuid"

	"tasktrack/internal/task"
)

// Service is the task collection as seen by a presentation layer.
// Mutations never fail: blank titles and unknown ids are ignored,
// and the bool results only report whether anything changed.
type Service interface {
	// Tasks returns the full collection in order.
	Tasks() []task.Task

	// Add appends a new open task with the trimmed title.
	Add(title string) (task.Task, bool)

	// Toggle flips the completed flag of the task with the given id.
	Toggle(id int) bool

	// Remove deletes the task with the given id.
	Remove(id int) bool

	// Apply returns the view selected by the filter.
	Apply(f task.Filter) []task.Task
}

var _ Service = (*task.Store)(nil)

// Session is one run of the tracker: the collection plus the filter
// selector the presentation layer currently shows.
type Session struct {
	Service

	// ID tags debug log records of this session.
	ID string

	// Filter is the selected view. The zero value shows all tasks.
	Filter task.Filter
}

// NewSession wraps svc in a session with a fresh ID and the all filter.
func NewSession(svc Service) *Session {
	return &Session{
		Service: svc,
		ID:      uuid.NewString(),
		Filter:  task.All,
	}
}

// View returns the tasks selected by the session filter.
func (s *Session) View() []task.Task {
	return s.Apply(s.Filter)
}
