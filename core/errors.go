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

import "errors"

// Domain validation errors
var (
	// ErrInvalidChunk indicates a Chunk failed validation.
	ErrInvalidChunk = errors.New("invalid chunk")

	// ErrEmptyContent indicates the Content field is empty after trimming.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyHierarchy indicates a chunk has no heading level at all.
	ErrEmptyHierarchy = errors.New("hierarchy requires at least one non-empty level")

	// ErrInvalidChunkType indicates an unknown ChunkType value.
	ErrInvalidChunkType = errors.New("invalid chunk type")

	// ErrMissingQuestion indicates a QA chunk without extracted question text.
	ErrMissingQuestion = errors.New("qa chunk requires question text")

	// ErrInvalidCategoryEntry indicates a CategoryEntry failed validation.
	ErrInvalidCategoryEntry = errors.New("invalid category entry")

	// ErrInvalidID indicates an ID string that is not valid hex.
	ErrInvalidID = errors.New("invalid id")

	// ErrEmptyQuery indicates a query that is empty after trimming.
	// This is the only input fault propagated to the caller; the cascade
	// never sees such a query.
	ErrEmptyQuery = errors.New("query cannot be empty")
)
