package task

import (
	"errors"
	"reflect"
	"testing"
)

func TestApply_All(t *testing.T) {
	tasks := seedTasks()

	got := Apply(tasks, All)
	if !reflect.DeepEqual(got, tasks) {
		t.Errorf("expected full collection, got %+v", got)
	}
}

func TestApply_ActiveAndCompletedPartition(t *testing.T) {
	tasks := append(seedTasks(), Task{ID: 4, Title: "Read book", Completed: true}, Task{ID: 5, Title: "Nap"})

	active := Apply(tasks, Active)
	completed := Apply(tasks, Completed)

	if !reflect.DeepEqual(ids(active), []int{1, 3, 5}) {
		t.Errorf("expected active ids [1 3 5], got %v", ids(active))
	}
	if !reflect.DeepEqual(ids(completed), []int{2, 4}) {
		t.Errorf("expected completed ids [2 4], got %v", ids(completed))
	}
	if len(active)+len(completed) != len(tasks) {
		t.Error("active and completed views do not partition the collection")
	}
}

func TestApply_DoesNotAlias(t *testing.T) {
	tasks := seedTasks()

	got := Apply(tasks, All)
	got[0].Title = "changed"
	if tasks[0].Title != "Buy groceries" {
		t.Error("Apply result shares the input backing array")
	}
}

func TestApply_Empty(t *testing.T) {
	for _, f := range Filters {
		got := Apply(nil, f)
		if got == nil || len(got) != 0 {
			t.Errorf("Apply(nil, %s): expected empty non-nil slice, got %#v", f, got)
		}
	}
}

func TestFilter_ZeroValueIsAll(t *testing.T) {
	var f Filter
	if f != All {
		t.Error("expected zero Filter to equal All")
	}
	if f.String() != "all" {
		t.Errorf("expected %q, got %q", "all", f.String())
	}
}

func TestFilter_Next(t *testing.T) {
	if All.Next() != Active || Active.Next() != Completed || Completed.Next() != All {
		t.Error("expected all -> active -> completed -> all")
	}
}

func TestParseFilter(t *testing.T) {
	for _, f := range Filters {
		got, err := ParseFilter(f.String())
		if err != nil {
			t.Fatalf("ParseFilter(%q): %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFilter(%q) = %v", f, got)
		}
	}

	if got, _ := ParseFilter("  COMPLETED "); got != Completed {
		t.Errorf("expected case-insensitive parse, got %v", got)
	}

	_, err := ParseFilter("done")
	if !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("expected ErrUnknownFilter, got %v", err)
	}
	if err.Error() != "unknown filter: done" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
