package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/frontier/internal/game/combat"
	"github.com/cory-johannsen/frontier/internal/game/enemy"
	"github.com/cory-johannsen/frontier/internal/game/mission"
)

// Table file stems looked up in the content directory.
const (
	CardsTable    = "cards"
	EnemiesTable  = "enemies"
	MissionsTable = "missions"
	EventsTable   = "events"
)

// ErrTableNotFound is returned when no file exists for a table.
var ErrTableNotFound = errors.New("content table not found")

var extensions = []string{".yaml", ".yml", ".json"}

// LoadDir reads the four content tables from dir concurrently. A table that
// is missing, malformed or fails validation is replaced by its built-in
// default and the failure is logged at warn level. LoadDir never fails.
//
// Precondition: logger must be non-nil.
// Postcondition: every table of the returned Static is non-empty.
func LoadDir(ctx context.Context, dir string, logger *zap.Logger) *Static {
	s := Defaults()
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		loadInto(dir, CardsTable, &s.cards, func(c combat.Card) error { return c.Validate() }, logger)
		return nil
	})
	g.Go(func() error {
		loadInto(dir, EnemiesTable, &s.enemies, func(t enemy.Template) error { return t.Validate() }, logger)
		return nil
	})
	g.Go(func() error {
		loadInto(dir, MissionsTable, &s.missions, func(m mission.Mission) error { return m.Validate() }, logger)
		return nil
	})
	g.Go(func() error {
		loadInto(dir, EventsTable, &s.events, func(e mission.Event) error { return e.Validate() }, logger)
		return nil
	})
	_ = g.Wait()
	return s
}

// loadInto overwrites *dst with the loaded table, leaving the default in place on failure.
func loadInto[T any](dir, name string, dst *[]T, validate func(T) error, logger *zap.Logger) {
	rows, err := LoadTable(dir, name, validate)
	if err != nil {
		logger.Warn("content table unavailable, using built-in defaults",
			zap.String("table", name),
			zap.String("dir", dir),
			zap.Error(err),
		)
		return
	}
	*dst = rows
	logger.Debug("content table loaded", zap.String("table", name), zap.Int("rows", len(rows)))
}

// LoadTable reads dir/name.{yaml,yml,json} as a list of T and validates every row.
// JSON tables are read by the YAML decoder.
//
// Postcondition: Returns a non-empty table or a non-nil error.
func LoadTable[T any](dir, name string, validate func(T) error) ([]T, error) {
	path, err := findTable(dir, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseTable(data, validate)
}

// ParseTable decodes a YAML or JSON list and validates every row.
func ParseTable[T any](data []byte, validate func(T) error) ([]T, error) {
	var rows []T
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing table: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("table is empty")
	}
	for i, r := range rows {
		if err := validate(r); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return rows, nil
}

func findTable(dir, name string) (string, error) {
	for _, ext := range extensions {
		p := filepath.Join(dir, name+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s in %s", ErrTableNotFound, name, dir)
}
