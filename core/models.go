package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated by content-based hashing so that identical content
// (for chunks: the hierarchy path plus title) yields identical IDs
// across index rebuilds.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// String renders the ID as fixed-width hex. This is the form used when
// enumerating sections for the LLM classifier, and in log output.
func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// ParseID parses the hex form produced by String.
func ParseID(s string) (ID, error) {
	var v uint64
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%x", &v); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID(v), nil
}

// ChunkType identifies the shape of a retrievable chunk.
// The set is closed; the answer cascade switches exhaustively over it.
type ChunkType int

const (
	// ChunkTypeQA is an explicit question/answer pair extracted from a
	// question-label/answer-label marker section.
	ChunkTypeQA ChunkType = iota + 1
	// ChunkTypeSection is prose under a single heading with no sub-headings.
	ChunkTypeSection
	// ChunkTypeNatural is a free-form chunk whose heading had sub-headings;
	// its content is the preamble text spanning before them.
	ChunkTypeNatural
)

// Chunk is a retrievable unit of knowledge produced by the document
// segmenter. Chunks are created once per index build and are immutable
// thereafter; a rebuild replaces the whole set.
type Chunk struct {
	Id        ID
	Hierarchy []string // ordered heading path, category first; at least one level
	Title     string   // deepest heading, or the question text for QA chunks
	Content   string   // prose body, or the answer body for QA chunks
	Type      ChunkType
	Question  string // set for QA chunks only
	Keywords  []string
	SourceId  string // originating document, for targeted re-reads
	StartLine int    // 1-based, inclusive
	EndLine   int    // 1-based, inclusive
	Vector    []float32
}

// HierarchyString joins the heading path for display and embedding input.
func (c *Chunk) HierarchyString() string {
	return strings.Join(c.Hierarchy, " > ")
}

// TopCategory returns the coarsest heading level of the chunk.
func (c *Chunk) TopCategory() string {
	if len(c.Hierarchy) == 0 {
		return ""
	}
	return c.Hierarchy[0]
}

// Contact identifies the team responsible for a document section.
// The engine threads it through to generated answers without interpreting it.
type Contact struct {
	Team  string
	Name  string
	Phone string
}

// CategoryEntry is the per-section metadata record consumed by the
// category matcher and the LLM section classifier.
type CategoryEntry struct {
	Id        ID       // content hash of the hierarchy path
	Display   string   // coarse routing label, e.g. "HR", "IT"
	Hierarchy []string // same shape as Chunk.Hierarchy
	Title     string
	Keywords  []string
	Contact   Contact
	SourceId  string
	StartLine int
	EndLine   int
}

// HierarchyString joins the heading path for classifier enumeration.
func (e *CategoryEntry) HierarchyString() string {
	return strings.Join(e.Hierarchy, " > ")
}

// FAQItem is a curated question/answer record used by the keyword
// fallback stage of the answer cascade.
type FAQItem struct {
	Id         ID
	Category   string
	Question   string
	Answer     string
	Keywords   []string
	Department string
	Link       string
}

// SearchResult pairs a chunk with its similarity score in [0,1].
// Results are ephemeral and never persisted.
type SearchResult struct {
	Chunk *Chunk
	Score float32
}

// CachedAnswer is a previously resolved answer keyed by the normalized
// query string. Entries are written once per distinct query and purged
// wholesale when the index is rebuilt.
type CachedAnswer struct {
	Key        string // normalized query
	Text       string
	Category   string
	CategoryId ID
	CreatedAt  time.Time
}

// Answer is the response shape returned to the caller for every query.
// The cascade always produces one; Confidence 0 signals that no usable
// match was found.
type Answer struct {
	Text         string
	Category     string
	Department   string
	Link         string
	Confidence   float32 // in [0,1]
	Related      []string
	ResponseTime float64 // seconds
}

// NormalizeQuery produces the cache key for a query: case-folded with
// all whitespace removed. Punctuation is preserved so that queries that
// differ only in meaningful symbols stay distinct.
func NormalizeQuery(query string) string {
	var b strings.Builder
	b.Grow(len(query))
	for _, r := range strings.ToLower(query) {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
