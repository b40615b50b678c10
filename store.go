// Package jsondb implements a minimal single-file JSON document store.
//
// A Store owns one file holding a JSON array of records. Every operation
// runs a full load, compute, persist cycle: the document is decoded from
// disk, the change is applied in memory and the whole document is written
// back, so after any successful mutation the file matches the last
// observed state. There is no caching, no indexing and no cross-process
// locking; when several processes write the same file, the last persist
// wins.
package jsondb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// Store binds to a single JSON array file and serializes access to it
// within the process. Operations from multiple goroutines never interleave
// their load/persist cycles; writers in other processes are not guarded
// against.
type Store struct {
	path string
	mu   sync.RWMutex
}

// New creates a Store for the file at path. Parent directories are created
// as needed and a missing file is initialized with the empty document, so
// a successful New always leaves a loadable file behind. Existing content
// is kept as-is and not validated until the first operation.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	s := &Store{path: path}
	fi, err := os.Stat(path)
	switch {
	case err == nil:
		if fi.IsDir() {
			return nil, fmt.Errorf("store path %s is a directory", path)
		}
	case os.IsNotExist(err):
		if err := s.persist(Document{}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to stat store file %s: %w", path, err)
	}
	return s, nil
}

// Read returns the current document in file order.
func (s *Store) Read() (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

// Write replaces the whole document with doc and persists it. Record ids
// are taken verbatim; nothing is synthesized and uniqueness is not
// checked. A nil doc persists as the empty document.
func (s *Store) Write(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(doc)
}

// Create appends a record built from fields with a freshly synthesized id
// and persists the document. Any "id" supplied by the caller is
// overwritten. Returns the record as stored.
func (s *Store) Create(fields Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	id := NewID()
	for doc.contains(id) {
		id = NewID()
	}

	rec := fields.Clone()
	if rec == nil {
		rec = Record{}
	}
	rec["id"] = id

	doc = append(doc, rec)
	if err := s.persist(doc); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns the first record whose id matches, or nil when none does.
// The file is never modified.
func (s *Store) Get(id ID) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range doc {
		if got, ok := rec.ID(); ok && got == id {
			return rec, nil
		}
	}
	return nil, nil
}

// Update shallow-merges fields into the first record whose id matches and
// persists the document. Same-named fields are overwritten, including "id"
// when explicitly supplied; all other stored fields and the record's
// position are preserved. Returns the merged record, or nil without
// touching the file when no record matches.
func (s *Store) Update(id ID, fields Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	for i, rec := range doc {
		got, ok := rec.ID()
		if !ok || got != id {
			continue
		}
		merged := rec.merge(fields)
		doc[i] = merged
		if err := s.persist(doc); err != nil {
			return nil, err
		}
		return merged, nil
	}
	return nil, nil
}

// Delete removes every record whose id matches and persists the document.
// Returns false without touching the file when no record matches.
func (s *Store) Delete(id ID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}
	kept := slices.DeleteFunc(doc, func(rec Record) bool {
		got, ok := rec.ID()
		return ok && got == id
	})
	if len(kept) == len(doc) {
		return false, nil
	}
	if err := s.persist(kept); err != nil {
		return false, err
	}
	return true, nil
}

// Query returns the records satisfying pred, in document order. The file
// is never modified.
func (s *Store) Query(pred func(Record) bool) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	var out Document
	for _, rec := range doc {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *Store) load() (Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", s.path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}
	if doc == nil {
		// A top-level null decodes into a nil slice without error.
		return nil, &CorruptError{Path: s.path, Err: errNotArray}
	}
	return doc, nil
}

func (s *Store) persist(doc Document) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file %s: %w", s.path, err)
	}
	return nil
}

// encodeDocument serializes doc the way the store persists it: an indented
// JSON array with a trailing newline. A nil doc encodes as the empty
// document.
func encodeDocument(doc Document) ([]byte, error) {
	if doc == nil {
		doc = Document{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return append(data, '\n'), nil
}
