// Package testutil provides testing utilities.
package testutil

import (
	"fmt"
	"sync"

	"tasktrack/internal/service"
	"tasktrack/internal/task"
)

// ReferenceTasks returns the three-task collection most tests start from.
func ReferenceTasks() []task.Task {
	return []task.Task{
		{ID: 1, Title: "Buy groceries", Completed: false},
		{ID: 2, Title: "Walk the dog", Completed: true},
		{ID: 3, Title: "Finish homework", Completed: false},
	}
}

// FakeService is a task.Store that records every call made through
// service.Service, so tests can check what a presentation layer did.
type FakeService struct {
	*task.Store

	mu    sync.Mutex
	calls []string
}

// NewFakeService creates a FakeService seeded with tasks.
func NewFakeService(tasks ...task.Task) *FakeService {
	return &FakeService{Store: task.NewStore(tasks)}
}

// Calls returns the recorded calls, e.g. "add Read book" or "toggle 2".
func (f *FakeService) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]string, len(f.calls))
	copy(result, f.calls)
	return result
}

func (f *FakeService) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// Add implements service.Service.
func (f *FakeService) Add(title string) (task.Task, bool) {
	f.record("add %s", title)
	return f.Store.Add(title)
}

// Toggle implements service.Service.
func (f *FakeService) Toggle(id int) bool {
	f.record("toggle %d", id)
	return f.Store.Toggle(id)
}

// Remove implements service.Service.
func (f *FakeService) Remove(id int) bool {
	f.record("remove %d", id)
	return f.Store.Remove(id)
}

// NewSession returns a session over a FakeService seeded with the
// reference tasks, or with tasks when any are given.
func NewSession(tasks ...task.Task) (*service.Session, *FakeService) {
	if len(tasks) == 0 {
		tasks = ReferenceTasks()
	}
	fake := NewFakeService(tasks...)
	return service.NewSession(fake), fake
}
