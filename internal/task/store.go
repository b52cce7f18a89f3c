package task

import (
	"fmt"
	"strings"
)

// IDPolicy decides how Add numbers new tasks.
type IDPolicy int

const (
	// SequentialIDs hands out ids from a counter that starts after the
	// largest seeded id and never goes back, so ids are never reused.
	SequentialIDs IDPolicy = iota

	// LengthIDs numbers a new task len(collection)+1.
	// After a removal this can repeat an id still held by another task.
	LengthIDs
)

func (p IDPolicy) String() string {
	switch p {
	case SequentialIDs:
		return "sequential"
	case LengthIDs:
		return "length"
	default:
		return fmt.Sprintf("IDPolicy(%d)", int(p))
	}
}

// ParseIDPolicy parses "sequential" or "length".
func ParseIDPolicy(s string) (IDPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential":
		return SequentialIDs, nil
	case "length":
		return LengthIDs, nil
	default:
		return SequentialIDs, fmt.Errorf("unknown id policy: %s", s)
	}
}

// Option configures a Store.
type Option func(*Store)

// WithIDPolicy sets the id assignment policy. The default is SequentialIDs.
func WithIDPolicy(p IDPolicy) Option {
	return func(s *Store) {
		s.policy = p
	}
}

// Store owns the ordered task collection.
// It is not safe for concurrent use; a session drives it from one goroutine.
//
// None of the mutations report errors. A blank title or an unknown id leaves
// the collection untouched, and the bool results only say whether anything changed.
type Store struct {
	tasks  []Task
	policy IDPolicy
	lastID int
}

// NewStore creates a store holding a copy of seed.
func NewStore(seed []Task, opts ...Option) *Store {
	s := &Store{tasks: make([]Task, len(seed))}
	copy(s.tasks, seed)
	for _, t := range seed {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends a new open task. Surrounding whitespace is trimmed from title;
// a blank title creates nothing and returns false.
func (s *Store) Add(title string) (Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, false
	}

	t := Task{ID: s.nextID(), Title: title}
	s.tasks = append(s.tasks, t)
	return t, true
}

func (s *Store) nextID() int {
	if s.policy == LengthIDs {
		return len(s.tasks) + 1
	}
	s.lastID++
	return s.lastID
}

// Toggle flips the completed flag of the task with the given id.
// Under LengthIDs several tasks may share an id; all of them flip.
func (s *Store) Toggle(id int) bool {
	changed := false
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			changed = true
		}
	}
	return changed
}

// Remove deletes the task with the given id, keeping the order of the rest.
// Under LengthIDs several tasks may share an id; all of them go.
func (s *Store) Remove(id int) bool {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	changed := len(kept) != len(s.tasks)
	s.tasks = kept
	return changed
}

// Tasks returns a copy of the full collection in order.
func (s *Store) Tasks() []Task {
	result := make([]Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Apply returns the current view selected by f.
func (s *Store) Apply(f Filter) []Task {
	return Apply(s.tasks, f)
}

// Get returns the first task with the given id.
func (s *Store) Get(id int) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	return len(s.tasks)
}
