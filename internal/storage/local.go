package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// LocalArchive writes snapshots below a base directory
type LocalArchive struct {
	basePath string
	mu       sync.RWMutex
}

var _ Archive = (*LocalArchive)(nil)

func NewLocalArchive(basePath string) (*LocalArchive, error) {
	// Create base directory if it doesn't exist
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	return &LocalArchive{
		basePath: basePath,
	}, nil
}

// Save marshals value to <base>/<key>
func (s *LocalArchive) Save(ctx context.Context, key string, value any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	rel, err := cleanKey(key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal archive object: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := filepath.Join(s.basePath, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write archive file: %w", err)
	}
	return nil
}

// Load reads <base>/<key> into dst
func (s *LocalArchive) Load(ctx context.Context, key string, dst any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	rel, err := cleanKey(key)
	if err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(filepath.Join(s.basePath, filepath.FromSlash(rel)))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to read archive file: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to unmarshal archive object: %w", err)
	}
	return nil
}
