// ABOUTME: File dump store writes each snapshot to a JSON file in a directory
// ABOUTME: Files are named sports_news_<topic>.json and replaced atomically

package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sports-news-api/core/interfaces"
)

const filePrefix = "sports_news_"

// Store implements the Cache interface on the local filesystem.
// Snapshots are meant to be read by people and other tools, so TTLs are ignored.
type Store struct {
	dir string
}

// NewStore creates the directory if needed
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create dump directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the file a key is written to
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, fileName(key))
}

// Get reads a snapshot file
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, interfaces.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dump: %w", err)
	}
	return data, nil
}

// Set writes value to a temp file and renames it over the snapshot.
// JSON values are indented.
func (s *Store) Set(ctx context.Context, key string, value []byte, _ time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var pretty bytes.Buffer
	if json.Indent(&pretty, value, "", "  ") == nil {
		pretty.WriteByte('\n')
		value = pretty.Bytes()
	}

	tmp, err := os.CreateTemp(s.dir, ".dump-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write dump: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write dump: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path(key)); err != nil {
		return fmt.Errorf("failed to move dump into place: %w", err)
	}
	return nil
}

// Delete removes a snapshot file; missing files are not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(s.Path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete dump: %w", err)
	}
	return nil
}

// fileName maps "dump:soccer" to "sports_news_soccer.json"
func fileName(key string) string {
	name := strings.TrimPrefix(key, "dump:")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, name)
	if name == "" {
		name = "all"
	}
	return filePrefix + name + ".json"
}
