package repository

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ScriptStore writes generated SQL scripts into one directory
type ScriptStore struct {
	fs  afero.Fs
	dir string
}

// NewScriptStore creates a store rooted at dir
func NewScriptStore(fs afero.Fs, dir string) *ScriptStore {
	return &ScriptStore{fs: fs, dir: dir}
}

// WriteScript creates or truncates dir/name and returns its path
func (s *ScriptStore) WriteScript(ctx context.Context, name string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("repository: failed to create output directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := afero.WriteFile(s.fs, path, content, 0o644); err != nil {
		return "", fmt.Errorf("repository: failed to write %s: %w", path, err)
	}

	return path, nil
}
