// Package seed decides which collection a session starts from.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"tasktrack/internal/config"
	"tasktrack/internal/task"
)

const (
	// BuiltinSource selects the built-in collection.
	BuiltinSource = "builtin"

	// GooglePrefix selects a Google Tasks list: "google:<list name>".
	GooglePrefix = "google:"
)

// ErrInvalidSeed is returned for seed files that cannot become a collection.
var ErrInvalidSeed = errors.New("invalid seed")

// Importer reads a named remote list as a seed collection.
type Importer interface {
	Import(ctx context.Context, listName string) ([]task.Task, error)
}

// ImporterFactory builds an Importer on demand, so credentials are only
// read when a remote seed is actually requested.
type ImporterFactory func(ctx context.Context, cfg *config.Config) (Importer, error)

// Builtin returns the collection a session starts with by default.
func Builtin() []task.Task {
	return []task.Task{
		{ID: 1, Title: "Buy groceries", Completed: false},
		{ID: 2, Title: "Walk the dog", Completed: true},
		{ID: 3, Title: "Finish homework", Completed: false},
	}
}

// record is one entry of a seed file. ID is optional.
type record struct {
	ID        *int   `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// LoadFile reads a JSON array of tasks. Entries without an id are numbered
// after the largest explicit id, in file order.
func LoadFile(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes seed file contents.
func Parse(data []byte) ([]task.Task, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}

	maxID := 0
	seen := make(map[int]bool)
	for i, r := range records {
		if strings.TrimSpace(r.Title) == "" {
			return nil, fmt.Errorf("%w: entry %d has a blank title", ErrInvalidSeed, i+1)
		}
		if r.ID == nil {
			continue
		}
		if *r.ID < 1 {
			return nil, fmt.Errorf("%w: entry %d has id %d", ErrInvalidSeed, i+1, *r.ID)
		}
		if seen[*r.ID] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidSeed, *r.ID)
		}
		seen[*r.ID] = true
		maxID = max(maxID, *r.ID)
	}

	result := make([]task.Task, len(records))
	for i, r := range records {
		id := maxID + 1
		if r.ID != nil {
			id = *r.ID
		} else {
			maxID++
		}
		result[i] = task.Task{
			ID:        id,
			Title:     strings.TrimSpace(r.Title),
			Completed: r.Completed,
		}
	}
	return result, nil
}

// Resolve returns the seed collection for source:
//   - "" uses the config dir seed.json when present, otherwise the built-in set
//   - "builtin" is the built-in set
//   - "google:<list name>" imports that list through the importer factory
//   - anything else is a path to a seed file
func Resolve(ctx context.Context, cfg *config.Config, source string, importer ImporterFactory) ([]task.Task, error) {
	log := cfg.Log()
	source = strings.TrimSpace(source)

	switch {
	case source == "":
		if cfg.HasSeedFile() {
			log.Debug("loading seed file", "path", cfg.SeedPath())
			return LoadFile(cfg.SeedPath())
		}
		log.Debug("using builtin seed")
		return Builtin(), nil

	case source == BuiltinSource:
		log.Debug("using builtin seed")
		return Builtin(), nil

	case strings.HasPrefix(source, GooglePrefix):
		name := strings.TrimSpace(strings.TrimPrefix(source, GooglePrefix))
		if name == "" {
			return nil, fmt.Errorf("%w: google list name required", ErrInvalidSeed)
		}
		if importer == nil {
			return nil, fmt.Errorf("google import not available")
		}
		imp, err := importer(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Debug("importing google list", "list", name)
		return imp.Import(ctx, name)

	default:
		log.Debug("loading seed file", "path", source)
		return LoadFile(source)
	}
}
