// Copyright 2026 Mundap Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Store reads markdown documents from a directory. Line slices are cached
// per file and invalidated by modification time, so repeated grounded
// lookups against an unchanged document do not reread it.
type Store struct {
	dir string

	mu    sync.RWMutex
	cache map[string]*cachedDoc
}

type cachedDoc struct {
	lines   []string
	modTime time.Time
}

// NewStore creates a Store over the directory.
func NewStore(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening document directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("document path is not a directory: %s", dir)
	}

	return &Store{
		dir:   dir,
		cache: make(map[string]*cachedDoc),
	}, nil
}

// Dir returns the document directory.
func (s *Store) Dir() string {
	return s.dir
}

// List returns the sourceIds of all markdown documents, sorted by name.
// Hidden files are skipped.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || !IsDocumentName(entry.Name()) {
			continue
		}
		ids = append(ids, entry.Name())
	}
	if len(ids) == 0 {
		return nil, ErrNoDocuments
	}

	sort.Strings(ids)
	return ids, nil
}

// Read returns the full text of a document.
func (s *Store) Read(sourceId string) (string, error) {
	lines, err := s.lines(sourceId)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Slice returns the text of the 1-based inclusive line range
// [startLine, endLine], clamped to the document. The range mirrors the
// start_line/end_line fields carried by chunks and section metadata.
func (s *Store) Slice(sourceId string, startLine, endLine int) (string, error) {
	lines, err := s.lines(sourceId)
	if err != nil {
		return "", err
	}

	if startLine < 1 {
		startLine = 1
	}
	if endLine > len(lines) {
		endLine = len(lines)
	}
	if startLine > endLine {
		return "", fmt.Errorf("%w: [%d, %d] in %s", ErrInvalidRange, startLine, endLine, sourceId)
	}

	return strings.Join(lines[startLine-1:endLine], "\n"), nil
}

// LatestModTime returns the newest modification time across all documents.
// The index is stale when this exceeds its build time.
func (s *Store) LatestModTime() (time.Time, error) {
	ids, err := s.List()
	if err != nil {
		return time.Time{}, err
	}

	var latest time.Time
	for _, id := range ids {
		info, err := os.Stat(filepath.Join(s.dir, id))
		if err != nil {
			return time.Time{}, fmt.Errorf("stat %s: %w", id, err)
		}
		if info.ModTime().After(latest) {
			latest = info.ModTime()
		}
	}
	return latest, nil
}

func (s *Store) lines(sourceId string) ([]string, error) {
	if !IsDocumentName(sourceId) || strings.ContainsAny(sourceId, `/\`) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDocument, sourceId)
	}

	path := filepath.Join(s.dir, sourceId)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDocument, sourceId)
		}
		return nil, err
	}

	s.mu.RLock()
	doc, ok := s.cache[sourceId]
	s.mu.RUnlock()
	if ok && doc.modTime.Equal(info.ModTime()) {
		return doc.lines, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", sourceId, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	s.mu.Lock()
	s.cache[sourceId] = &cachedDoc{lines: lines, modTime: info.ModTime()}
	s.mu.Unlock()

	return lines, nil
}

// IsDocumentName reports whether the file name looks like a guide
// document: a visible markdown file.
func IsDocumentName(name string) bool {
	return !strings.HasPrefix(name, ".") && strings.HasSuffix(name, ".md")
}
