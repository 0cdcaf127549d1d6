package mock

import (
	"context"
	"regexp"
	"strings"

	"github.com/mundap-io/mundap/ai"
	"github.com/mundap-io/mundap/core"
)

var tokenPattern = regexp.MustCompile(`[가-힣a-zA-Z0-9]+`)

// MockAnswerer is a test double for ai.Answerer.
// It allows custom behavior injection via function fields.
type MockAnswerer struct {
	// ExtractKeywordsFunc is called by ExtractKeywords if set.
	ExtractKeywordsFunc func(ctx context.Context, question string) ([]string, error)

	// ClassifySectionFunc is called by ClassifySection if set.
	ClassifySectionFunc func(ctx context.Context, question string, sections []ai.SectionRef) (core.ID, error)

	// GenerateAnswerFunc is called by GenerateAnswer if set.
	GenerateAnswerFunc func(ctx context.Context, req ai.AnswerRequest) (string, error)

	extractCalls  int
	classifyCalls int
	generateCalls int
}

// NewMockAnswerer creates a mock answerer with default deterministic behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockAnswerer() *MockAnswerer {
	return &MockAnswerer{}
}

// ExtractKeywords tokenizes the question by default: runs of Hangul, Latin
// letters or digits of length 2 or more, first five.
func (m *MockAnswerer) ExtractKeywords(ctx context.Context, question string) ([]string, error) {
	m.extractCalls++

	if m.ExtractKeywordsFunc != nil {
		return m.ExtractKeywordsFunc(ctx, question)
	}

	var keywords []string
	for _, token := range tokenPattern.FindAllString(question, -1) {
		if len([]rune(token)) >= 2 {
			keywords = append(keywords, token)
		}
		if len(keywords) == 5 {
			break
		}
	}
	return keywords, nil
}

// ClassifySection picks the first offered section whose path shares a token
// with the question, defaulting to ai.ErrNoSection when nothing overlaps.
func (m *MockAnswerer) ClassifySection(ctx context.Context, question string, sections []ai.SectionRef) (core.ID, error) {
	m.classifyCalls++

	if m.ClassifySectionFunc != nil {
		return m.ClassifySectionFunc(ctx, question, sections)
	}

	tokens := tokenPattern.FindAllString(question, -1)
	for _, s := range sections {
		for _, token := range tokens {
			if len([]rune(token)) >= 2 && strings.Contains(s.Path, token) {
				return s.Id, nil
			}
		}
	}
	return 0, ai.ErrNoSection
}

// GenerateAnswer returns a canned grounded answer carrying the question and
// the contact footer, so tests can assert both got threaded through.
func (m *MockAnswerer) GenerateAnswer(ctx context.Context, req ai.AnswerRequest) (string, error) {
	m.generateCalls++

	if m.GenerateAnswerFunc != nil {
		return m.GenerateAnswerFunc(ctx, req)
	}

	var b strings.Builder
	b.WriteString(req.Question)
	b.WriteString("에 대한 안내예요!\n\n**문의**\n")
	b.WriteString(req.Contact.Team)
	b.WriteString(" ")
	b.WriteString(req.Contact.Name)
	b.WriteString("(")
	b.WriteString(req.Contact.Phone)
	b.WriteString(")")
	return b.String(), nil
}

// ExtractCalls returns how many times ExtractKeywords was called.
func (m *MockAnswerer) ExtractCalls() int { return m.extractCalls }

// ClassifyCalls returns how many times ClassifySection was called.
func (m *MockAnswerer) ClassifyCalls() int { return m.classifyCalls }

// GenerateCalls returns how many times GenerateAnswer was called.
func (m *MockAnswerer) GenerateCalls() int { return m.generateCalls }

// Reset clears call counts and injected behavior.
func (m *MockAnswerer) Reset() {
	m.extractCalls = 0
	m.classifyCalls = 0
	m.generateCalls = 0
	m.ExtractKeywordsFunc = nil
	m.ClassifySectionFunc = nil
	m.GenerateAnswerFunc = nil
}
