package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned by Load when no object exists under the key
	ErrNotFound = errors.New("archive object not found")
	// ErrInvalidKey is returned for empty keys or keys escaping the archive root
	ErrInvalidKey = errors.New("invalid archive key")
)

// Archive persists JSON snapshots of normalized news
type Archive interface {
	Save(ctx context.Context, key string, value any) error
	Load(ctx context.Context, key string, dst any) error
}

// SnapshotKey returns the dated key used for front-page snapshots
func SnapshotKey(at time.Time) string {
	at = at.UTC()
	return path.Join("snapshots", at.Format("2006/01/02"), fmt.Sprintf("%d.json", at.Unix()))
}

// cleanKey rejects keys that are empty or escape the archive root
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + strings.TrimSpace(key))
	if cleaned == "/" {
		return "", fmt.Errorf("empty key: %w", ErrInvalidKey)
	}
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}
	return strings.TrimPrefix(cleaned, "/"), nil
}
