// Package pkg provides utilities shared by the snake commands.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// ErrSpillClosed is returned by operations on a closed spill.
var ErrSpillClosed = errors.New("spill closed")

// Spill is an append-only sequence of T kept in a scratch file instead of memory.
// The file is removed when the spill is closed.
type Spill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	Range(fn func(index uint64, item T) error) error
	Close() error
}

type gobSpill[T any] struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	encoder *gob.Encoder
	length  uint64
}

// NewSpill creates a gob-encoded spill file in dir (os.TempDir() when empty).
func NewSpill[T any](dir string) (Spill[T], error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "snake-spill-*.gob")
	if err != nil {
		slog.Error("failed to create spill file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	slog.Debug("created spill", "path", file.Name())

	return &gobSpill[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

func (s *gobSpill[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

func (s *gobSpill[T]) Path() string {
	return s.path
}

func (s *gobSpill[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return ErrSpillClosed
	}

	if err := s.encoder.Encode(item); err != nil {
		slog.Error("failed to encode spill item", "path", s.path, "index", s.length, "error", err)
		return fmt.Errorf("failed to encode item: %w", err)
	}

	s.length++

	return nil
}

// Range decodes the items in append order. A callback error stops the walk and is returned as is.
func (s *gobSpill[T]) Range(fn func(index uint64, item T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return ErrSpillClosed
	}

	file, err := os.Open(s.path)
	if err != nil {
		slog.Error("failed to open spill for range", "path", s.path, "error", err)
		return fmt.Errorf("failed to open spill: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close spill reader", "path", s.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range s.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode spill item", "path", s.path, "index", i, "error", err)
			return fmt.Errorf("failed to decode item at index %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

// Close closes and removes the spill file. Closing twice is a no-op.
func (s *gobSpill[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	closeErr := s.file.Close()
	s.file = nil

	removeErr := os.Remove(s.path)
	if removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
		slog.Error("failed to remove spill file", "path", s.path, "error", removeErr)
	} else {
		removeErr = nil
	}

	slog.Debug("closed spill", "path", s.path, "length", s.length)

	return errors.Join(closeErr, removeErr)
}
