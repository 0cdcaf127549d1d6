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


package segment

import (
	"iter"
	"log/slog"
	"strings"

	"github.com/mundap-io/mundap/core"
)

// Heading levels 2 through 5 participate in segmentation. Level 1 is the
// document title and is ignored.
const (
	minHeadingLevel = 2
	maxHeadingLevel = 5
)

// Segmenter splits a markdown guide document into retrievable chunks.
// It is stateless; one instance serves any number of documents.
type Segmenter struct {
	logger *slog.Logger
}

// New creates a Segmenter.
func New() *Segmenter {
	return &Segmenter{
		logger: slog.Default().With("component", "segmenter"),
	}
}

// accumulator collects the body of one open heading until a heading of the
// same or shallower level closes it.
type accumulator struct {
	level       int
	title       string
	hierarchy   []string
	startLine   int
	lastLine    int
	lines       []string
	hadChildren bool
}

// Segment parses document text into an ordered, finite, single-use sequence
// of chunks.
//
// A heading at level L closes every open accumulator at level >= L,
// deepest first, then opens a new one. Non-heading lines accumulate into the
// deepest open accumulator; text before the first heading is discarded.
// Noise lines are dropped before accumulation. Empty sections produce no
// chunk. At end of input all remaining accumulators flush deepest first.
//
// A section whose body carries explicit 질문/답변 marker pairs yields one qa
// chunk per pair; any prose before the first marker becomes its own chunk.
func (s *Segmenter) Segment(sourceId, text string) iter.Seq[core.Chunk] {
	return func(yield func(core.Chunk) bool) {
		var open []*accumulator
		emitted := 0

		// flushFrom closes open accumulators at level >= level, deepest
		// first. Returns false once the consumer stops.
		flushFrom := func(level int) bool {
			for len(open) > 0 {
				acc := open[len(open)-1]
				if acc.level < level {
					break
				}
				open = open[:len(open)-1]
				for _, chunk := range s.chunksFrom(sourceId, acc) {
					emitted++
					if !yield(chunk) {
						return false
					}
				}
			}
			return true
		}

		lines := strings.Split(text, "\n")
		for i, raw := range lines {
			lineNo := i + 1

			if isNoiseLine(raw) {
				continue
			}

			level, title, isHeading := parseHeading(raw)
			if isHeading {
				if level < minHeadingLevel || level > maxHeadingLevel {
					continue
				}
				if !flushFrom(level) {
					return
				}
				if len(open) > 0 {
					open[len(open)-1].hadChildren = true
				}
				open = append(open, &accumulator{
					level:     level,
					title:     title,
					hierarchy: hierarchyFor(open, title),
					startLine: lineNo,
					lastLine:  lineNo,
				})
				continue
			}

			if len(open) > 0 {
				acc := open[len(open)-1]
				acc.lines = append(acc.lines, raw)
				if strings.TrimSpace(raw) != "" {
					acc.lastLine = lineNo
				}
			}
		}

		if !flushFrom(minHeadingLevel) {
			return
		}
		s.logger.Debug("segmented document", "source", sourceId, "chunks", emitted)
	}
}

// hierarchyFor builds the heading path for a new accumulator from the still
// open ancestors plus its own title.
func hierarchyFor(open []*accumulator, title string) []string {
	hierarchy := make([]string, 0, len(open)+1)
	for _, anc := range open {
		hierarchy = append(hierarchy, anc.title)
	}
	return append(hierarchy, title)
}

// chunksFrom turns a closed accumulator into zero or more chunks.
func (s *Segmenter) chunksFrom(sourceId string, acc *accumulator) []core.Chunk {
	content := strings.TrimSpace(strings.Join(acc.lines, "\n"))
	if content == "" {
		return nil
	}

	prose, pairs := splitQAPairs(content)

	var chunks []core.Chunk
	if prose != "" {
		chunks = append(chunks, s.proseChunk(sourceId, acc, prose))
	}
	for _, pair := range pairs {
		chunks = append(chunks, s.qaChunk(sourceId, acc, pair))
	}
	return chunks
}

func (s *Segmenter) proseChunk(sourceId string, acc *accumulator, content string) core.Chunk {
	chunkType := core.ChunkTypeSection
	if acc.hadChildren {
		chunkType = core.ChunkTypeNatural
	}

	hierarchyStr := strings.Join(acc.hierarchy, " > ")
	return core.Chunk{
		Id:        core.IDFromContent(sourceId + "\x00" + hierarchyStr + "\x00" + acc.title),
		Hierarchy: acc.hierarchy,
		Title:     acc.title,
		Content:   content,
		Type:      chunkType,
		Keywords:  ExtractKeywords(hierarchyStr + " " + keywordSample(content)),
		SourceId:  sourceId,
		StartLine: acc.startLine,
		EndLine:   acc.lastLine,
	}
}

func (s *Segmenter) qaChunk(sourceId string, acc *accumulator, pair qaPair) core.Chunk {
	hierarchyStr := strings.Join(acc.hierarchy, " > ")
	return core.Chunk{
		Id:        core.IDFromContent(sourceId + "\x00" + hierarchyStr + "\x00" + pair.question),
		Hierarchy: acc.hierarchy,
		Title:     pair.question,
		Content:   pair.answer,
		Type:      core.ChunkTypeQA,
		Question:  pair.question,
		Keywords:  ExtractKeywords(hierarchyStr + " " + pair.question + " " + keywordSample(pair.answer)),
		SourceId:  sourceId,
		StartLine: acc.startLine,
		EndLine:   acc.lastLine,
	}
}

// parseHeading reports whether the line is a markdown ATX heading and, if
// so, its level and title.
func parseHeading(line string) (level int, title string, ok bool) {
	if !strings.HasPrefix(line, "#") {
		return 0, "", false
	}
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	title = strings.TrimSpace(line[level:])
	if title == "" {
		return 0, "", false
	}
	return level, title, true
}
