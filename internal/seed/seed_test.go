package seed

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"tasktrack/internal/config"
	"tasktrack/internal/task"
)

type fakeImporter struct {
	lists map[string][]task.Task
}

func (f fakeImporter) Import(ctx context.Context, listName string) ([]task.Task, error) {
	tasks, ok := f.lists[listName]
	if !ok {
		return nil, errors.New("list not found: " + listName)
	}
	return tasks, nil
}

func factoryFor(imp Importer) ImporterFactory {
	return func(ctx context.Context, cfg *config.Config) (Importer, error) {
		return imp, nil
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestParse_AssignsMissingIDs(t *testing.T) {
	got, err := Parse([]byte(`[
		{"title": "Buy groceries"},
		{"id": 7, "title": " Walk the dog ", "completed": true},
		{"title": "Finish homework"}
	]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []task.Task{
		{ID: 8, Title: "Buy groceries"},
		{ID: 7, Title: "Walk the dog", Completed: true},
		{ID: 9, Title: "Finish homework"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":     `{`,
		"blank title":  `[{"title": "  "}]`,
		"duplicate id": `[{"id": 1, "title": "a"}, {"id": 1, "title": "b"}]`,
		"zero id":      `[{"id": 0, "title": "a"}]`,
	}
	for name, data := range tests {
		_, err := Parse([]byte(data))
		if !errors.Is(err, ErrInvalidSeed) {
			t.Errorf("%s: expected ErrInvalidSeed, got %v", name, err)
		}
	}
}

func TestParse_Empty(t *testing.T) {
	got, err := Parse([]byte(`[]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %+v", got)
	}
}

func TestResolve_DefaultIsBuiltin(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}

	got, err := Resolve(context.Background(), cfg, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, Builtin()) {
		t.Errorf("expected builtin seed, got %+v", got)
	}
}

func TestResolve_DefaultPrefersConfigSeedFile(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	writeFile(t, cfg.Dir, config.SeedFile, `[{"title": "From config"}]`)

	got, err := Resolve(context.Background(), cfg, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "From config" {
		t.Errorf("expected config seed file, got %+v", got)
	}

	got, err = Resolve(context.Background(), cfg, "builtin", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, Builtin()) {
		t.Errorf("expected builtin seed, got %+v", got)
	}
}

func TestResolve_FilePath(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	path := writeFile(t, t.TempDir(), "tasks.json", `[{"id": 3, "title": "Read book", "completed": true}]`)

	got, err := Resolve(context.Background(), cfg, path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []task.Task{{ID: 3, Title: "Read book", Completed: true}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	_, err = Resolve(context.Background(), cfg, filepath.Join(cfg.Dir, "missing.json"), nil)
	if err == nil {
		t.Error("expected error for missing seed file")
	}
}

func TestResolve_Google(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	imp := fakeImporter{lists: map[string][]task.Task{
		"Shopping": {{ID: 1, Title: "Bread"}},
	}}

	got, err := Resolve(context.Background(), cfg, "google: Shopping", factoryFor(imp))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Bread" {
		t.Errorf("expected imported list, got %+v", got)
	}

	if _, err := Resolve(context.Background(), cfg, "google:Garden", factoryFor(imp)); err == nil {
		t.Error("expected error for unknown list")
	}
	if _, err := Resolve(context.Background(), cfg, "google:", factoryFor(imp)); !errors.Is(err, ErrInvalidSeed) {
		t.Errorf("expected ErrInvalidSeed for empty list name, got %v", err)
	}
	if _, err := Resolve(context.Background(), cfg, "google:Shopping", nil); err == nil {
		t.Error("expected error without an importer")
	}
}

func TestResolve_ImporterFactoryError(t *testing.T) {
	cfg := &config.Config{Dir: t.TempDir()}
	factory := func(ctx context.Context, cfg *config.Config) (Importer, error) {
		return nil, errors.New("not logged in")
	}

	_, err := Resolve(context.Background(), cfg, "google:Shopping", factory)
	if err == nil || err.Error() != "not logged in" {
		t.Errorf("expected factory error, got %v", err)
	}
}
