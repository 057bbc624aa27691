// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/angelito/models"
)

// JSONStore keeps participants in a JSON array file. The file is read on
// every call and rewritten whole on every successful Update.
type JSONStore struct {
	path string
	mu   sync.Mutex
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the backing file path
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads all participants
func (s *JSONStore) Load(ctx context.Context) ([]models.Participant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.read()
}

// Update runs fn on the current participants and rewrites the file if fn
// succeeds. Updates on the same JSONStore never interleave.
func (s *JSONStore) Update(ctx context.Context, fn func([]models.Participant) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	participants, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(participants); err != nil {
		return err
	}

	return s.write(participants)
}

// Replace overwrites the file with participants
func (s *JSONStore) Replace(ctx context.Context, participants []models.Participant) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(participants)
}

// Close is a no-op; the file is not held open between calls
func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) read() ([]models.Participant, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read participants: %w", err)
	}

	var participants []models.Participant
	if err := json.Unmarshal(data, &participants); err != nil {
		return nil, fmt.Errorf("failed to parse participants %s: %w", s.path, err)
	}
	if participants == nil {
		participants = []models.Participant{}
	}
	return participants, nil
}

// write replaces the file through a temp file and rename so readers never
// see a partial array
func (s *JSONStore) write(participants []models.Participant) error {
	data, err := json.MarshalIndent(participants, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode participants: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".participants-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	// CreateTemp makes the file 0600; keep the mode of the file being replaced
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(s.path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set participants file mode: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write participants: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync participants: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace participants: %w", err)
	}

	slog.Debug("participants saved",
		"path", s.path,
		"count", len(participants),
		"size", humanize.Bytes(uint64(len(data))),
	)
	return nil
}
