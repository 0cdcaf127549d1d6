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
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mundap-io/mundap/ai"
	"github.com/mundap-io/mundap/core"
)

// minMatchScore is the smallest keyword overlap that counts as a match.
// A single shared keyword is too weak a signal for routing.
const minMatchScore = 2

// maxOfferedSections caps how many sections are enumerated for the chat
// model in one classification call.
const maxOfferedSections = 100

// Matcher resolves a question to a guide section, first by keyword overlap
// against the metadata store and, when that is inconclusive, by asking the
// chat model to pick from the enumerated sections.
type Matcher struct {
	store    *Store
	answerer ai.Answerer
	logger   *slog.Logger
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher) error

// WithAnswerer enables LLM-backed classification.
func WithAnswerer(answerer ai.Answerer) MatcherOption {
	return func(m *Matcher) error {
		m.answerer = answerer
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) MatcherOption {
	return func(m *Matcher) error {
		m.logger = logger
		return nil
	}
}

// NewMatcher creates a Matcher over the store.
func NewMatcher(store *Store, opts ...MatcherOption) (*Matcher, error) {
	m := &Matcher{
		store:  store,
		logger: slog.Default().With("component", "category.Matcher"),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Match finds the section whose keywords best overlap the given keywords.
// Two keywords overlap when either contains the other as a substring,
// case-insensitively, so "연차휴가" still meets "연차" and "vpn" meets
// "VPN". Returns nil when no section reaches minMatchScore; ties keep
// the earliest section in document order.
func (m *Matcher) Match(keywords []string) *core.CategoryEntry {
	if len(keywords) == 0 {
		return nil
	}

	bestScore := 0
	bestIdx := -1

	entries := m.store.Entries()
	for i := range entries {
		score := overlapScore(keywords, entries[i].Keywords)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestScore < minMatchScore {
		m.logger.Debug("no keyword match", "keywords", keywords, "bestScore", bestScore)
		return nil
	}

	entry := &entries[bestIdx]
	m.logger.Debug("keyword match",
		"section", entry.HierarchyString(),
		"score", bestScore)
	return entry
}

// overlapScore counts query keywords matched by at least one section
// keyword, folding case on both sides. Each query keyword contributes
// at most once.
func overlapScore(keywords, sectionKeywords []string) int {
	score := 0
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		for _, sk := range sectionKeywords {
			sk = strings.ToLower(sk)
			if strings.Contains(kw, sk) || strings.Contains(sk, kw) {
				score++
				break
			}
		}
	}
	return score
}

// ClassifyViaLLM asks the chat model to pick the section most relevant to
// the question from the enumerated metadata. Returns (nil, nil) when the
// model declines or names a section outside the offered set; callers
// treat that as a miss and fall through.
func (m *Matcher) ClassifyViaLLM(ctx context.Context, question string) (*core.CategoryEntry, error) {
	if m.answerer == nil {
		return nil, nil
	}

	entries := m.store.Entries()
	if len(entries) > maxOfferedSections {
		entries = entries[:maxOfferedSections]
	}

	refs := make([]ai.SectionRef, len(entries))
	for i := range entries {
		refs[i] = ai.SectionRef{
			Id:   entries[i].Id,
			Path: entries[i].HierarchyString(),
		}
	}

	id, err := m.answerer.ClassifySection(ctx, question, refs)
	if err != nil {
		if errors.Is(err, ai.ErrNoSection) {
			m.logger.Debug("classifier declined", "question", question)
			return nil, nil
		}
		return nil, err
	}

	entry, ok := m.store.ByID(id)
	if !ok {
		m.logger.Warn("classifier returned unknown section id", "id", id.String())
		return nil, nil
	}

	m.logger.Debug("classifier match", "section", entry.HierarchyString())
	return entry, nil
}
