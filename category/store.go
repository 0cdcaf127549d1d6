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

package category

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mundap-io/mundap/core"
)

// metadataFile mirrors the JSON layout written by the metadata generator:
// a single "categories" object keyed by generator-local section ids. The
// keys are positional and therefore unstable across regenerations, so the
// loader discards them and derives stable content-hash ids instead.
type metadataFile struct {
	Categories map[string]metadataSection `json:"categories"`
}

type metadataSection struct {
	DisplayName string   `json:"display_name"`
	Filename    string   `json:"filename"`
	H2Section   string   `json:"h2_section"`
	H3Section   string   `json:"h3_section"`
	H4Section   string   `json:"h4_section"`
	Title       string   `json:"title"`
	StartLine   int      `json:"start_line"`
	EndLine     int      `json:"end_line"`
	Keywords    []string `json:"keywords"`
	Contact     struct {
		Team  string `json:"team"`
		Name  string `json:"name"`
		Phone string `json:"phone"`
	} `json:"contact"`
}

// Store holds the section metadata loaded once at startup. It is immutable
// after construction and safe for concurrent reads.
type Store struct {
	entries []core.CategoryEntry
	byId    map[core.ID]int
}

// LoadStore reads a metadata JSON file and builds a Store from it.
func LoadStore(filePath string) (*Store, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata file: %w", err)
	}

	var file metadataFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}
	if len(file.Categories) == 0 {
		return nil, ErrEmptyMetadata
	}

	entries := make([]core.CategoryEntry, 0, len(file.Categories))
	for _, section := range file.Categories {
		entry, err := entryFromSection(section)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	// The JSON object carries no order, so restore document order.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].SourceId != entries[j].SourceId {
			return entries[i].SourceId < entries[j].SourceId
		}
		return entries[i].StartLine < entries[j].StartLine
	})

	return NewStore(entries)
}

// NewStore builds a Store from already-assembled entries. Entries keep
// their given order.
func NewStore(entries []core.CategoryEntry) (*Store, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyMetadata
	}

	byId := make(map[core.ID]int, len(entries))
	for i := range entries {
		if err := core.ValidateCategoryEntry(&entries[i]); err != nil {
			return nil, err
		}
		byId[entries[i].Id] = i
	}

	return &Store{entries: entries, byId: byId}, nil
}

func entryFromSection(section metadataSection) (core.CategoryEntry, error) {
	if section.Title == "" || section.Filename == "" {
		return core.CategoryEntry{}, fmt.Errorf("%w: section missing title or filename", ErrInvalidMetadata)
	}

	var hierarchy []string
	for _, h := range []string{section.H2Section, section.H3Section, section.H4Section} {
		if h != "" {
			hierarchy = append(hierarchy, h)
		}
	}
	if len(hierarchy) == 0 {
		hierarchy = []string{section.Title}
	}

	display := section.DisplayName
	if display == "" {
		display = "일반"
	}

	return core.CategoryEntry{
		Id:        sectionID(section.Filename, hierarchy, section.Title),
		Display:   display,
		Hierarchy: hierarchy,
		Title:     section.Title,
		Keywords:  section.Keywords,
		Contact: core.Contact{
			Team:  section.Contact.Team,
			Name:  section.Contact.Name,
			Phone: section.Contact.Phone,
		},
		SourceId:  section.Filename,
		StartLine: section.StartLine,
		EndLine:   section.EndLine,
	}, nil
}

// sectionID derives a stable id from the section's identity. The id only
// changes when the heading path itself changes, so edits inside a section
// keep cached lookups valid.
func sectionID(sourceId string, hierarchy []string, title string) core.ID {
	return core.IDFromContent(sourceId + "\x00" + strings.Join(hierarchy, " > ") + "\x00" + title)
}

// Entries returns all sections in document order. Callers must not modify
// the returned slice.
func (s *Store) Entries() []core.CategoryEntry {
	return s.entries
}

// ByID looks up a section by id.
func (s *Store) ByID(id core.ID) (*core.CategoryEntry, bool) {
	i, ok := s.byId[id]
	if !ok {
		return nil, false
	}
	return &s.entries[i], true
}

// ByDisplay returns every section carrying the display label, in document
// order.
func (s *Store) ByDisplay(display string) []core.CategoryEntry {
	var out []core.CategoryEntry
	for i := range s.entries {
		if s.entries[i].Display == display {
			out = append(out, s.entries[i])
		}
	}
	return out
}

// Len returns the number of sections.
func (s *Store) Len() int {
	return len(s.entries)
}
