package jsondb

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/maruel/ksid"
)

// Snapshot writes a copy of the current document to a new file and returns
// its path. The name embeds a time-sortable identifier so successive
// snapshots of the same store list in creation order. dir selects the
// target directory and is created as needed; when empty the snapshot lands
// next to the backing file. The document is decoded first, so a corrupt
// store is reported instead of copied. The backing file is never modified.
func (s *Store) Snapshot(dir string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = filepath.Dir(s.path)
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}

	base := filepath.Base(s.path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.json", base, ksid.NewID()))

	data, err := encodeDocument(doc)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return path, nil
}
