package save

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const fileExt = ".save"

var slotName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// FileStore keeps one sealed JSON file per slot in a directory.
type FileStore struct {
	dir string
}

// NewFileStore returns a store rooted at dir, creating it if needed.
//
// Postcondition: Returns a usable store or a non-nil error.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating save dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(slot string) (string, error) {
	if !slotName.MatchString(slot) {
		return "", fmt.Errorf("invalid slot name %q", slot)
	}
	return filepath.Join(s.dir, slot+fileExt), nil
}

// Save writes d to slot atomically: a temp file is written then renamed over the old save.
func (s *FileStore) Save(_ context.Context, slot string, d *Data) error {
	p, err := s.path(slot)
	if err != nil {
		return err
	}
	b, err := Seal(d)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, slot+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp save: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("writing save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing save: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("replacing save %s: %w", p, err)
	}
	return nil
}

// Load reads and verifies the save in slot.
func (s *FileStore) Load(_ context.Context, slot string) (*Data, error) {
	p, err := s.path(slot)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("reading save %s: %w", p, err)
	}
	d, err := Open(b)
	if err != nil {
		return nil, fmt.Errorf("loading slot %s: %w", slot, err)
	}
	return d, nil
}

// List returns the slot names present, sorted.
func (s *FileStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading save dir %s: %w", s.dir, err)
	}
	var slots []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), fileExt) {
			slots = append(slots, strings.TrimSuffix(e.Name(), fileExt))
		}
	}
	sort.Strings(slots)
	return slots, nil
}

// Delete removes the save in slot.
func (s *FileStore) Delete(_ context.Context, slot string) error {
	p, err := s.path(slot)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, slot)
		}
		return fmt.Errorf("deleting save %s: %w", p, err)
	}
	return nil
}
