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

package related

import (
	"log/slog"
	"sort"

	"github.com/mundap-io/mundap/category"
	"github.com/mundap-io/mundap/core"
)

// defaultLimit is how many follow-up questions an answer carries.
const defaultLimit = 3

// Extractor suggests follow-up questions from the section metadata.
type Extractor struct {
	store  *category.Store
	logger *slog.Logger
}

// NewExtractor creates an Extractor over the metadata store.
func NewExtractor(store *category.Store) *Extractor {
	return &Extractor{
		store:  store,
		logger: slog.Default().With("component", "related.Extractor"),
	}
}

// Related collects up to limit follow-up questions for the resolved
// section, excluding the section itself and anything phrased like the
// current question. limit <= 0 uses the default.
func (e *Extractor) Related(sectionId core.ID, currentQuestion string, limit int) []string {
	if limit <= 0 {
		limit = defaultLimit
	}

	matched, ok := e.store.ByID(sectionId)
	if !ok {
		e.logger.Debug("unknown section for related questions", "id", sectionId.String())
		return nil
	}

	c := &collector{
		current: currentQuestion,
		limit:   limit,
		seen:    map[string]bool{},
	}

	// Stage 1: siblings under the same parent heading.
	parent := parentPath(matched.Hierarchy)
	if parent != "" {
		for _, entry := range e.store.Entries() {
			if entry.Id == matched.Id || parentPath(entry.Hierarchy) != parent {
				continue
			}
			if c.add(Naturalize(entry.Title)) {
				return c.questions
			}
		}
	}

	// Stage 2: same display category.
	for _, entry := range e.store.ByDisplay(matched.Display) {
		if entry.Id == matched.Id {
			continue
		}
		if c.add(Naturalize(entry.Title)) {
			return c.questions
		}
	}

	// Stage 3: keyword overlap, best first.
	matchedKeywords := keywordSet(matched.Keywords)
	type candidate struct {
		overlap  int
		question string
	}
	var candidates []candidate
	for _, entry := range e.store.Entries() {
		if entry.Id == matched.Id {
			continue
		}
		overlap := 0
		for _, kw := range entry.Keywords {
			if matchedKeywords[kw] {
				overlap++
			}
		}
		if overlap > 0 {
			candidates = append(candidates, candidate{overlap, Naturalize(entry.Title)})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].overlap > candidates[j].overlap
	})
	for _, cand := range candidates {
		if c.add(cand.question) {
			break
		}
	}

	return c.questions
}

// CategoryQuestions returns representative questions for a display
// category, derived from its section titles in document order.
func (e *Extractor) CategoryQuestions(display string, limit int) []string {
	if limit <= 0 {
		limit = defaultLimit
	}

	var questions []string
	seen := map[string]bool{}
	for _, entry := range e.store.ByDisplay(display) {
		q := Naturalize(entry.Title)
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		questions = append(questions, q)
		if len(questions) >= limit {
			break
		}
	}
	return questions
}

type collector struct {
	current   string
	limit     int
	seen      map[string]bool
	questions []string
}

// add records the question; reports whether the limit is reached.
func (c *collector) add(question string) bool {
	if question != "" && question != c.current && !c.seen[question] {
		c.seen[question] = true
		c.questions = append(c.questions, question)
	}
	return len(c.questions) >= c.limit
}

func parentPath(hierarchy []string) string {
	if len(hierarchy) < 2 {
		return ""
	}
	path := hierarchy[0]
	for _, level := range hierarchy[1 : len(hierarchy)-1] {
		path += " > " + level
	}
	return path
}

func keywordSet(keywords []string) map[string]bool {
	set := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		set[kw] = true
	}
	return set
}
