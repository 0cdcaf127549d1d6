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

import (
	"regexp"
	"strings"

	"github.com/mundap-io/mundap/core"
)

var keywordTokenPattern = regexp.MustCompile(`[가-힣a-zA-Z0-9]+`)

// faqKeywordScore scores the raw question against one FAQ entry. Exact
// containment in the FAQ question or answer scores 1.0, containment
// against a curated keyword 0.8, otherwise Jaccard similarity of the
// token sets.
func faqKeywordScore(question string, item *core.FAQItem) float32 {
	questionLower := strings.ToLower(question)
	faqQuestion := strings.ToLower(item.Question)
	faqAnswer := strings.ToLower(item.Answer)

	if strings.Contains(faqQuestion, questionLower) || strings.Contains(faqAnswer, questionLower) {
		return 1.0
	}

	for _, kw := range item.Keywords {
		kwLower := strings.ToLower(kw)
		if strings.Contains(questionLower, kwLower) || strings.Contains(kwLower, questionLower) {
			return 0.8
		}
	}

	questionTokens := tokenSet(questionLower)
	faqTokens := tokenSet(faqQuestion)
	for _, kw := range item.Keywords {
		faqTokens[strings.ToLower(kw)] = true
	}

	if len(questionTokens) == 0 || len(faqTokens) == 0 {
		return 0
	}

	intersection := 0
	union := len(faqTokens)
	for token := range questionTokens {
		if faqTokens[token] {
			intersection++
		} else {
			union++
		}
	}
	return float32(intersection) / float32(union)
}

func tokenSet(text string) map[string]bool {
	set := map[string]bool{}
	for _, token := range keywordTokenPattern.FindAllString(text, -1) {
		if len([]rune(token)) > 1 {
			set[token] = true
		}
	}
	return set
}

// faqTotalScore blends the keyword score with character-level similarity
// of the two question texts, weighted 0.7 / 0.3.
func faqTotalScore(question string, item *core.FAQItem) float32 {
	keywordScore := faqKeywordScore(question, item)
	similarity := sequenceRatio(strings.ToLower(question), strings.ToLower(item.Question))
	return keywordScore*0.7 + similarity*0.3
}

// bestFAQMatch returns the highest-scoring FAQ entry at or above the
// threshold, or nil. Ties keep the earliest entry.
func bestFAQMatch(question string, items []core.FAQItem, threshold float32) (*core.FAQItem, float32) {
	var best *core.FAQItem
	var bestScore float32

	for i := range items {
		score := faqTotalScore(question, &items[i])
		if score > bestScore {
			bestScore = score
			best = &items[i]
		}
	}

	if best == nil || bestScore < threshold {
		return nil, 0
	}
	return best, bestScore
}

// relatedFAQQuestions suggests other FAQ questions ranked by similarity
// to the matched entry.
func relatedFAQQuestions(matched *core.FAQItem, items []core.FAQItem, limit int) []string {
	type scored struct {
		question string
		score    float32
	}
	var candidates []scored

	for i := range items {
		if items[i].Id == matched.Id {
			continue
		}
		score := faqTotalScore(matched.Question, &items[i])
		if score > 0 {
			candidates = append(candidates, scored{items[i].Question, score})
		}
	}

	// Insertion sort keeps ties stable on a small corpus.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].score > candidates[j-1].score; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}

	var questions []string
	for _, c := range candidates {
		questions = append(questions, c.question)
		if len(questions) >= limit {
			break
		}
	}
	return questions
}

// sequenceRatio is Ratcliff/Obershelp similarity over runes: twice the
// number of matching characters divided by the total length, where
// matches are counted by recursively splitting around the longest common
// substring.
func sequenceRatio(a, b string) float32 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return float32(2*matchingRunes(ra, rb)) / float32(total)
}

func matchingRunes(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	ai, bi, size := longestCommonRun(a, b)
	if size == 0 {
		return 0
	}

	return size +
		matchingRunes(a[:ai], b[:bi]) +
		matchingRunes(a[ai+size:], b[bi+size:])
}

func longestCommonRun(a, b []rune) (ai, bi, size int) {
	// lengths[j] is the length of the common run ending at a[i], b[j].
	lengths := make([]int, len(b)+1)

	for i := range a {
		prev := 0
		for j := range b {
			cur := lengths[j+1]
			if a[i] == b[j] {
				lengths[j+1] = prev + 1
				if lengths[j+1] > size {
					size = lengths[j+1]
					ai = i - size + 1
					bi = j - size + 1
				}
			} else {
				lengths[j+1] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}
