package task

import (
	"reflect"
	"testing"
)

func seedTasks() []Task {
	return []Task{
		{ID: 1, Title: "Buy groceries", Completed: false},
		{ID: 2, Title: "Walk the dog", Completed: true},
		{ID: 3, Title: "Finish homework", Completed: false},
	}
}

func ids(tasks []Task) []int {
	result := make([]int, len(tasks))
	for i, t := range tasks {
		result[i] = t.ID
	}
	return result
}

func TestStore_Scenario(t *testing.T) {
	s := NewStore(seedTasks())

	added, ok := s.Add("Read book")
	if !ok {
		t.Fatal("expected add to succeed")
	}
	want := Task{ID: 4, Title: "Read book", Completed: false}
	if added != want {
		t.Errorf("expected %+v, got %+v", want, added)
	}

	s.Toggle(3)
	if got, _ := s.Get(3); !got.Completed {
		t.Error("expected task 3 to be completed")
	}

	completed := s.Apply(Completed)
	if !reflect.DeepEqual(ids(completed), []int{2, 3}) {
		t.Errorf("expected completed ids [2 3], got %v", ids(completed))
	}

	s.Remove(2)
	if !reflect.DeepEqual(ids(s.Tasks()), []int{1, 3, 4}) {
		t.Errorf("expected ids [1 3 4], got %v", ids(s.Tasks()))
	}
}

func TestStore_AddTrimsTitle(t *testing.T) {
	s := NewStore(nil)

	added, ok := s.Add("  Read book \t")
	if !ok {
		t.Fatal("expected add to succeed")
	}
	if added.Title != "Read book" {
		t.Errorf("expected trimmed title, got %q", added.Title)
	}
	if added.Completed {
		t.Error("expected new task to be open")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 task, got %d", s.Len())
	}
}

func TestStore_AddBlankIsNoop(t *testing.T) {
	for _, title := range []string{"", " ", "\t\n", "   \r\n "} {
		s := NewStore(seedTasks())
		before := s.Tasks()

		added, ok := s.Add(title)
		if ok {
			t.Errorf("Add(%q): expected no task, got %+v", title, added)
		}
		if !reflect.DeepEqual(s.Tasks(), before) {
			t.Errorf("Add(%q): collection changed", title)
		}
	}
}

func TestStore_AddAppendsToEnd(t *testing.T) {
	s := NewStore(seedTasks())
	s.Add("first")
	s.Add("second")

	tasks := s.Tasks()
	if len(tasks) != 5 {
		t.Fatalf("expected 5 tasks, got %d", len(tasks))
	}
	if tasks[3].Title != "first" || tasks[4].Title != "second" {
		t.Errorf("expected new tasks at the end in order, got %+v", tasks[3:])
	}
}

func TestStore_ToggleTwiceRestores(t *testing.T) {
	s := NewStore(seedTasks())
	before := s.Tasks()

	if !s.Toggle(2) {
		t.Fatal("expected toggle to report a change")
	}
	after := s.Tasks()
	for i := range before {
		if before[i].ID == 2 {
			if after[i].Completed == before[i].Completed {
				t.Error("expected task 2 to flip")
			}
			continue
		}
		if after[i] != before[i] {
			t.Errorf("expected task %d unchanged, got %+v", before[i].ID, after[i])
		}
	}

	s.Toggle(2)
	if !reflect.DeepEqual(s.Tasks(), before) {
		t.Error("expected second toggle to restore the collection")
	}
}

func TestStore_UnknownIDIsNoop(t *testing.T) {
	s := NewStore(seedTasks())
	before := s.Tasks()

	if s.Toggle(42) {
		t.Error("expected toggle of unknown id to report no change")
	}
	if s.Remove(42) {
		t.Error("expected remove of unknown id to report no change")
	}
	if !reflect.DeepEqual(s.Tasks(), before) {
		t.Error("expected collection unchanged")
	}
}

func TestStore_RemovePreservesOrder(t *testing.T) {
	s := NewStore(seedTasks())

	if !s.Remove(1) {
		t.Fatal("expected remove to report a change")
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 tasks, got %d", s.Len())
	}
	if _, ok := s.Get(1); ok {
		t.Error("expected task 1 to be gone")
	}
	if !reflect.DeepEqual(ids(s.Tasks()), []int{2, 3}) {
		t.Errorf("expected ids [2 3], got %v", ids(s.Tasks()))
	}
}

func TestStore_SequentialIDsNeverReused(t *testing.T) {
	s := NewStore(seedTasks())
	s.Remove(3)

	added, _ := s.Add("Read book")
	if added.ID != 4 {
		t.Errorf("expected id 4, got %d", added.ID)
	}

	s.Remove(2)
	added, _ = s.Add("Call mom")
	if added.ID != 5 {
		t.Errorf("expected id 5, got %d", added.ID)
	}

	seen := make(map[int]bool)
	for _, task := range s.Tasks() {
		if seen[task.ID] {
			t.Errorf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestStore_SequentialIDsStartAfterLargestSeed(t *testing.T) {
	s := NewStore([]Task{{ID: 10, Title: "a"}, {ID: 3, Title: "b"}})

	added, _ := s.Add("c")
	if added.ID != 11 {
		t.Errorf("expected id 11, got %d", added.ID)
	}
}

func TestStore_LengthIDsCanCollide(t *testing.T) {
	s := NewStore(seedTasks(), WithIDPolicy(LengthIDs))

	s.Remove(2)
	added, _ := s.Add("Read book")
	if added.ID != 3 {
		t.Fatalf("expected id 3 (len+1), got %d", added.ID)
	}

	// Two tasks now share id 3; both react to it.
	s.Toggle(3)
	for _, task := range s.Tasks() {
		if task.ID == 3 && task.Title == "Finish homework" && !task.Completed {
			t.Error("expected seeded task 3 to flip")
		}
		if task.ID == 3 && task.Title == "Read book" && !task.Completed {
			t.Error("expected added task 3 to flip")
		}
	}

	s.Remove(3)
	if !reflect.DeepEqual(ids(s.Tasks()), []int{1}) {
		t.Errorf("expected ids [1], got %v", ids(s.Tasks()))
	}
}

func TestStore_SeedIsCopied(t *testing.T) {
	seed := seedTasks()
	s := NewStore(seed)

	s.Toggle(1)
	if seed[0].Completed {
		t.Error("store mutated the caller's seed")
	}

	tasks := s.Tasks()
	tasks[0].Title = "changed"
	if got, _ := s.Get(1); got.Title != "Buy groceries" {
		t.Error("Tasks returned an alias of the collection")
	}
}

func TestParseIDPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want IDPolicy
		err  bool
	}{
		{"", SequentialIDs, false},
		{"sequential", SequentialIDs, false},
		{"Length", LengthIDs, false},
		{"random", SequentialIDs, true},
	}
	for _, tt := range tests {
		got, err := ParseIDPolicy(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseIDPolicy(%q): unexpected error state: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseIDPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
