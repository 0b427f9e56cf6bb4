package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/mcoot/cricle/internal/model"
)

// DefaultSuggestLimit caps the number of autocomplete suggestions
const DefaultSuggestLimit = 10

// Dataset is the immutable, indexed collection of cricketers.
// It is built once at startup and safe for concurrent readers.
type Dataset struct {
	entities    []model.Entity
	byName      map[string]int // lower-cased name -> index
	sortedNames []string
}

// New builds a dataset from entities. Records without a name are skipped;
// on duplicate names (case-insensitive) the first record wins.
func New(entities []model.Entity, logger *slog.Logger) *Dataset {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	d := &Dataset{
		entities: make([]model.Entity, 0, len(entities)),
		byName:   make(map[string]int, len(entities)),
	}

	for i, e := range entities {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			logger.Warn("skipping cricketer without a name", slog.Int("record", i))
			continue
		}
		key := strings.ToLower(name)
		if _, exists := d.byName[key]; exists {
			logger.Warn("skipping duplicate cricketer", slog.String("name", name))
			continue
		}
		e.Name = name
		d.byName[key] = len(d.entities)
		d.entities = append(d.entities, e)
	}

	d.sortedNames = make([]string, len(d.entities))
	for i, e := range d.entities {
		d.sortedNames[i] = e.Name
	}
	slices.Sort(d.sortedNames)

	return d
}

// Empty returns a dataset with no entities
func Empty() *Dataset {
	return New(nil, nil)
}

// Parse decodes a JSON array of cricketer records
func Parse(data []byte, logger *slog.Logger) (*Dataset, error) {
	var entities []model.Entity
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("decoding cricketers: %w", err)
	}
	return New(entities, logger), nil
}

// Load reads the dataset from a JSON file. A missing or malformed file is
// not fatal: the error is logged and an empty dataset is returned alongside
// an error wrapping model.ErrDataUnavailable, so the server can still start
// and report the problem on every request.
func Load(ctx context.Context, path string, logger *slog.Logger) (*Dataset, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.ErrorContext(ctx, "could not read cricketer data",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return Empty(), fmt.Errorf("%w: %w", model.ErrDataUnavailable, err)
	}

	d, err := Parse(data, logger)
	if err != nil {
		logger.ErrorContext(ctx, "could not decode cricketer data",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return Empty(), fmt.Errorf("%w: %w", model.ErrDataUnavailable, err)
	}

	logger.InfoContext(ctx, "cricketer data loaded",
		slog.String("path", path),
		slog.Int("count", d.Size()),
	)
	return d, nil
}

// Available reports whether there is at least one playable entity
func (d *Dataset) Available() bool {
	return len(d.entities) > 0
}

// Size returns the number of entities
func (d *Dataset) Size() int {
	return len(d.entities)
}

// At returns the entity at index i
func (d *Dataset) At(i int) (*model.Entity, bool) {
	if i < 0 || i >= len(d.entities) {
		return nil, false
	}
	e := d.entities[i]
	return &e, true
}

// FindByName does a case-insensitive exact lookup and returns the stored
// record, preserving its canonical casing
func (d *Dataset) FindByName(name string) (*model.Entity, bool) {
	idx, ok := d.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	e := d.entities[idx]
	return &e, true
}

// AllNamesSorted returns every name in ascending order. The slice is shared
// and must not be modified.
func (d *Dataset) AllNamesSorted() []string {
	return d.sortedNames
}

// Suggest returns up to limit names containing query, case-insensitively,
// in sorted order
func (d *Dataset) Suggest(query string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}
	}

	results := make([]string, 0, limit)
	for _, name := range d.sortedNames {
		if strings.Contains(strings.ToLower(name), q) {
			results = append(results, name)
			if len(results) == limit {
				break
			}
		}
	}
	return results
}
