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


package index

import (
	"math"
	"sort"
	"time"

	"github.com/mundap-io/mundap/core"
)

// Index is an immutable inner-product similarity structure over embedded
// chunks. All vectors are unit length, so the dot product is the cosine
// similarity. Safe for unbounded concurrent readers.
type Index struct {
	chunks    []core.Chunk
	buildTime time.Time
}

// newIndex wraps an embedded chunk set. Callers guarantee the vectors are
// already L2-normalized.
func newIndex(chunks []core.Chunk, buildTime time.Time) *Index {
	return &Index{chunks: chunks, buildTime: buildTime}
}

// Len returns the number of indexed chunks.
func (ix *Index) Len() int {
	return len(ix.chunks)
}

// BuildTime returns when the index was built. Source documents modified
// after this instant make the index stale.
func (ix *Index) BuildTime() time.Time {
	return ix.buildTime
}

// Chunks returns the indexed chunks in insertion order. The slice is shared;
// callers must not mutate it.
func (ix *Index) Chunks() []core.Chunk {
	return ix.chunks
}

// Search returns the topK chunks most similar to the unit-length query
// vector, highest score first. Ties keep insertion order.
func (ix *Index) Search(query []float32, topK int) []core.SearchResult {
	if topK <= 0 || len(ix.chunks) == 0 {
		return nil
	}

	results := make([]core.SearchResult, 0, len(ix.chunks))
	for i := range ix.chunks {
		results = append(results, core.SearchResult{
			Chunk: &ix.chunks[i],
			Score: dotProduct(query, ix.chunks[i].Vector),
		})
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// dotProduct calculates the dot product of two vectors.
// Returns 0 if the vectors have different lengths.
func dotProduct(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// normalize scales a vector to unit length in place and returns it.
// A zero vector is returned unchanged.
func normalize(v []float32) []float32 {
	var sumSquares float64
	for _, x := range v {
		sumSquares += float64(x) * float64(x)
	}
	if sumSquares == 0 {
		return v
	}
	inv := float32(1.0 / math.Sqrt(sumSquares))
	for i := range v {
		v[i] *= inv
	}
	return v
}
