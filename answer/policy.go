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

package answer

import "github.com/mundap-io/mundap/core"

// Tuning constants for the resolution policy. Lowering the acceptance
// thresholds trades precision for recall.
const (
	// directMatchScore accepts the best chunk outright.
	directMatchScore = 0.5

	// directMatchGap accepts the best chunk when it leads the runner-up
	// by at least this much.
	directMatchGap = 0.15

	// disambiguationMinScore is the floor below which a disambiguation
	// listing is not worth showing either.
	disambiguationMinScore = 0.35

	// similarWindow bounds how far below the best score a candidate may
	// sit and still count as a rival for disambiguation.
	similarWindow = 0.08

	// minQAScore and minDocScore are per-source acceptance floors.
	// Free-form document chunks are noisier than curated QA entries and
	// need a higher bar.
	minQAScore  = 0.15
	minDocScore = 0.25

	// keywordAcceptScore accepts a FAQ keyword-fallback match.
	keywordAcceptScore = 0.03

	// groundedConfidence is reported for LLM-grounded answers, which are
	// attested rather than similarity-scored.
	groundedConfidence = 0.95
)

// IsDirectMatch reports whether the best-scoring chunk is unambiguous
// enough to answer with directly.
func IsDirectMatch(bestScore float32, scores []float32) bool {
	return directMatchAt(directMatchScore, directMatchGap, bestScore, scores)
}

// directMatchAt is IsDirectMatch with explicit thresholds. Raising the
// score threshold can only turn direct matches into non-direct ones.
func directMatchAt(threshold, gap, bestScore float32, scores []float32) bool {
	if bestScore >= threshold {
		return true
	}
	if len(scores) >= 2 && bestScore-scores[1] >= gap {
		return true
	}
	return false
}

// DisambiguationCandidates returns the results worth offering as a
// drill-down listing: everything within similarWindow of the best score.
// It returns nil unless at least two candidates rival each other and the
// best score reaches disambiguationMinScore.
func DisambiguationCandidates(results []core.SearchResult) []core.SearchResult {
	if len(results) == 0 {
		return nil
	}

	best := results[0].Score
	if best < disambiguationMinScore {
		return nil
	}

	var candidates []core.SearchResult
	for _, r := range results {
		if best-r.Score <= similarWindow {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) < 2 {
		return nil
	}
	return candidates
}

// MeetsMinScore applies the per-source acceptance floor.
func MeetsMinScore(chunkType core.ChunkType, score float32) bool {
	if chunkType == core.ChunkTypeQA {
		return score >= minQAScore
	}
	return score >= minDocScore
}
