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


package core

import (
	"fmt"
	"strings"
)

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - Content must not be empty after trimming
//   - Hierarchy must have at least one non-empty level
//   - Type must be a known ChunkType
//   - QA chunks must carry question text
//
// NOT validated (populated later in the build):
//   - Vector (empty until the index builder embeds the chunk)
//   - ID (derived from hierarchy + title at build time)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if strings.TrimSpace(chunk.Content) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyContent)
	}

	if !hasNonEmptyLevel(chunk.Hierarchy) {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyHierarchy)
	}

	if err := ValidateChunkType(chunk.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, err)
	}

	if chunk.Type == ChunkTypeQA && strings.TrimSpace(chunk.Question) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrMissingQuestion)
	}

	return nil
}

// ValidateChunkType checks that the value is one of the closed set.
func ValidateChunkType(t ChunkType) error {
	switch t {
	case ChunkTypeQA, ChunkTypeSection, ChunkTypeNatural:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidChunkType, t)
	}
}

// ValidateCategoryEntry validates a CategoryEntry according to domain rules.
func ValidateCategoryEntry(entry *CategoryEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidCategoryEntry)
	}

	if !hasNonEmptyLevel(entry.Hierarchy) {
		return fmt.Errorf("%w: %w", ErrInvalidCategoryEntry, ErrEmptyHierarchy)
	}

	if entry.Display == "" {
		return fmt.Errorf("%w: display label required", ErrInvalidCategoryEntry)
	}

	return nil
}

func hasNonEmptyLevel(hierarchy []string) bool {
	for _, level := range hierarchy {
		if strings.TrimSpace(level) != "" {
			return true
		}
	}
	return false
}
