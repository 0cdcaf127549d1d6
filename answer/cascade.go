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
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mundap-io/mundap/ai"
	"github.com/mundap-io/mundap/category"
	"github.com/mundap-io/mundap/core"
	"github.com/mundap-io/mundap/index"
	"github.com/mundap-io/mundap/related"
	"github.com/mundap-io/mundap/source"
	"github.com/mundap-io/mundap/storage"
)

// assistantName is reported in the Department field of every answer.
const assistantName = "문답이"

// searchTopK is how many chunks the semantic stage retrieves.
const searchTopK = 20

// defaultLLMTimeout bounds a single model or embedding call. Hitting it
// fails the stage, not the request.
const defaultLLMTimeout = 30 * time.Second

// relatedLimit caps follow-up questions on a resolved answer.
const relatedLimit = 3

// Resolver runs the answer resolution cascade. All dependencies except
// the cache are optional; a stage whose dependencies are absent is
// skipped.
type Resolver struct {
	cache      *Cache
	matcher    *category.Matcher
	categories *category.Store
	answerer   ai.Answerer
	manager    *index.Manager
	sources    *source.Store
	faq        storage.FAQStore
	related    *related.Extractor
	llmTimeout time.Duration
	logger     *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver) error

// WithMatcher enables the grounded-generation stage's category routing.
func WithMatcher(matcher *category.Matcher, store *category.Store) ResolverOption {
	return func(r *Resolver) error {
		r.matcher = matcher
		r.categories = store
		r.related = related.NewExtractor(store)
		return nil
	}
}

// WithAnswerer enables LLM answer generation.
func WithAnswerer(answerer ai.Answerer) ResolverOption {
	return func(r *Resolver) error {
		r.answerer = answerer
		return nil
	}
}

// WithIndex enables the semantic search stage.
func WithIndex(manager *index.Manager) ResolverOption {
	return func(r *Resolver) error {
		r.manager = manager
		return nil
	}
}

// WithSources enables grounded generation to read source slices.
func WithSources(sources *source.Store) ResolverOption {
	return func(r *Resolver) error {
		r.sources = sources
		return nil
	}
}

// WithFAQ enables the keyword fallback stage.
func WithFAQ(faq storage.FAQStore) ResolverOption {
	return func(r *Resolver) error {
		r.faq = faq
		return nil
	}
}

// WithLLMTimeout bounds individual model calls.
func WithLLMTimeout(d time.Duration) ResolverOption {
	return func(r *Resolver) error {
		r.llmTimeout = d
		return nil
	}
}

// WithResolverLogger sets the logger.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) error {
		r.logger = logger
		return nil
	}
}

// NewResolver creates a Resolver around the cache.
func NewResolver(cache *Cache, opts ...ResolverOption) (*Resolver, error) {
	r := &Resolver{
		cache:      cache,
		llmTimeout: defaultLLMTimeout,
		logger:     slog.Default().With("component", "answer.Resolver"),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// stage attempts one resolution strategy. (nil, nil) means the stage did
// not produce an answer and the cascade continues.
type stage struct {
	name string
	run  func(ctx context.Context, question string) (*core.Answer, error)
}

// Resolve answers the question. It always returns a well-formed Answer;
// the only error is an empty query. Stage errors are logged and treated
// as misses.
func (r *Resolver) Resolve(ctx context.Context, question string) (*core.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, core.ErrEmptyQuery
	}

	start := time.Now()

	stages := []stage{
		{"cache", r.cachedAnswer},
		{"grounded", r.groundedAnswer},
		{"semantic", r.semanticAnswer},
		{"keyword", r.keywordAnswer},
	}

	for _, s := range stages {
		result, err := s.run(ctx, question)
		if err != nil {
			r.logger.Warn("stage failed", "stage", s.name, "error", err)
			continue
		}
		if result != nil {
			r.logger.Info("question resolved",
				"stage", s.name,
				"category", result.Category,
				"confidence", result.Confidence)
			result.ResponseTime = time.Since(start).Seconds()
			return result, nil
		}
	}

	result := r.hintAnswer(question)
	result.ResponseTime = time.Since(start).Seconds()
	return result, nil
}

// cachedAnswer serves a previously resolved answer for the normalized
// query.
func (r *Resolver) cachedAnswer(ctx context.Context, question string) (*core.Answer, error) {
	cached, ok := r.cache.Get(ctx, core.NormalizeQuery(question))
	if !ok {
		return nil, nil
	}

	return &core.Answer{
		Text:       cached.Text,
		Category:   cached.Category,
		Department: assistantName,
		Confidence: groundedConfidence,
		Related:    r.relatedQuestions(cached.CategoryId, question),
	}, nil
}

// groundedAnswer routes the question to a guide section, reads the
// section's source slice and has the model answer from it. The result is
// cached under the normalized query.
func (r *Resolver) groundedAnswer(ctx context.Context, question string) (*core.Answer, error) {
	if r.matcher == nil || r.answerer == nil || r.sources == nil {
		return nil, nil
	}

	llmCtx, cancel := context.WithTimeout(ctx, r.llmTimeout)
	defer cancel()

	keywords := r.questionKeywords(llmCtx, question)
	entry := r.matcher.Match(keywords)
	if entry == nil {
		var err error
		entry, err = r.matcher.ClassifyViaLLM(llmCtx, question)
		if err != nil {
			return nil, err
		}
	}
	if entry == nil {
		return nil, nil
	}

	doc, err := r.sources.Slice(entry.SourceId, entry.StartLine, entry.EndLine)
	if err != nil {
		return nil, err
	}

	text, err := r.answerer.GenerateAnswer(llmCtx, ai.AnswerRequest{
		Question: question,
		Intent:   ai.ClassifyIntent(question),
		Document: doc,
		Contact:  entry.Contact,
	})
	if err != nil {
		r.logger.Warn("answer generation failed, using document excerpt", "error", err)
		text = excerptAnswer(append(keywords, entry.Keywords...), doc, entry.Contact)
	}

	r.cache.Put(ctx, &core.CachedAnswer{
		Key:        core.NormalizeQuery(question),
		Text:       text,
		Category:   entry.Display,
		CategoryId: entry.Id,
		CreatedAt:  time.Now().UTC(),
	})

	return &core.Answer{
		Text:       text,
		Category:   entry.Display,
		Department: assistantName,
		Confidence: groundedConfidence,
		Related:    r.relatedQuestions(entry.Id, question),
	}, nil
}

// questionKeywords asks the model for query keywords, falling back to
// plain tokenization when the call fails.
func (r *Resolver) questionKeywords(ctx context.Context, question string) []string {
	keywords, err := r.answerer.ExtractKeywords(ctx, question)
	if err == nil && len(keywords) > 0 {
		return keywords
	}
	if err != nil {
		r.logger.Debug("keyword extraction failed, tokenizing", "error", err)
	}

	var tokens []string
	for _, token := range keywordTokenPattern.FindAllString(question, -1) {
		if len([]rune(token)) > 1 {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// semanticAnswer runs the two-pass hierarchical search: pick the
// strongest top-level category by average score, then resolve within it.
func (r *Resolver) semanticAnswer(ctx context.Context, question string) (*core.Answer, error) {
	if r.manager == nil || !r.manager.Ready() {
		return nil, nil
	}

	results, err := r.manager.Search(ctx, question, searchTopK)
	if err != nil {
		return nil, err
	}

	var qa, docs []core.SearchResult
	for _, res := range results {
		if !MeetsMinScore(res.Chunk.Type, res.Score) {
			continue
		}
		if res.Chunk.Type == core.ChunkTypeQA {
			qa = append(qa, res)
		} else {
			docs = append(docs, res)
		}
	}

	switch {
	case len(docs) > 0:
		return r.hierarchicalAnswer(question, docs), nil
	case len(qa) > 0:
		return r.chunkAnswer(qa[0], qa[1:]), nil
	default:
		return nil, nil
	}
}

func (r *Resolver) hierarchicalAnswer(question string, docs []core.SearchResult) *core.Answer {
	// Pass 1: average score per top-level category.
	type categoryScore struct {
		total float32
		count int
	}
	perCategory := map[string]*categoryScore{}
	for _, res := range docs {
		cs := perCategory[res.Chunk.TopCategory()]
		if cs == nil {
			cs = &categoryScore{}
			perCategory[res.Chunk.TopCategory()] = cs
		}
		cs.total += res.Score
		cs.count++
	}

	bestCategory := ""
	var bestAvg float32 = -1
	// Iterate docs, not the map, so ties resolve deterministically.
	for _, res := range docs {
		name := res.Chunk.TopCategory()
		cs := perCategory[name]
		if avg := cs.total / float32(cs.count); avg > bestAvg {
			bestAvg = avg
			bestCategory = name
		}
	}

	// Pass 2: resolve within the winning category. docs is already in
	// descending score order.
	var inCategory []core.SearchResult
	for _, res := range docs {
		if res.Chunk.TopCategory() == bestCategory {
			inCategory = append(inCategory, res)
		}
	}

	best := inCategory[0]
	scores := make([]float32, len(inCategory))
	for i, res := range inCategory {
		scores[i] = res.Score
	}

	if IsDirectMatch(best.Score, scores) {
		return r.chunkAnswer(best, inCategory[1:])
	}

	if candidates := DisambiguationCandidates(inCategory); candidates != nil {
		return r.disambiguationAnswer(question, bestCategory, candidates)
	}

	// Not direct, not worth disambiguating: answer with the single best
	// chunk anyway.
	return r.chunkAnswer(best, inCategory[1:])
}

// chunkAnswer renders one chunk as the answer, with sibling titles as
// related questions.
func (r *Resolver) chunkAnswer(best core.SearchResult, rest []core.SearchResult) *core.Answer {
	chunk := best.Chunk

	var text string
	switch chunk.Type {
	case core.ChunkTypeQA:
		if parent := parentHeading(chunk); parent != "" {
			text = fmt.Sprintf("**[%s]**\n\n%s", parent, chunk.Content)
		} else {
			text = chunk.Content
		}
	case core.ChunkTypeSection, core.ChunkTypeNatural:
		text = fmt.Sprintf("**[%s]**\n\n%s", chunk.HierarchyString(), chunk.Content)
	default:
		text = chunk.Content
	}

	seen := map[string]bool{chunk.Title: true}
	var relatedTitles []string
	for _, res := range rest {
		title := res.Chunk.Title
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		relatedTitles = append(relatedTitles, title)
		if len(relatedTitles) >= relatedLimit {
			break
		}
	}

	return &core.Answer{
		Text:       text,
		Category:   r.displayFor(chunk.TopCategory()),
		Department: assistantName,
		Confidence: best.Score,
		Related:    relatedTitles,
	}
}

// disambiguationAnswer lists candidate subsections instead of committing
// to one answer.
func (r *Resolver) disambiguationAnswer(question, topCategory string, candidates []core.SearchResult) *core.Answer {
	var b strings.Builder
	fmt.Fprintf(&b, "**%q**과 관련된 질문들을 찾았습니다:\n\n", question)
	fmt.Fprintf(&b, "**[%s]** 카테고리\n\n", topCategory)

	seen := map[string]bool{}
	var relatedTitles []string
	shown := 0
	for _, res := range candidates {
		title := res.Chunk.Title
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		fmt.Fprintf(&b, "- %s\n", title)
		relatedTitles = append(relatedTitles, title)
		shown++
		if shown >= 4 {
			break
		}
	}
	b.WriteString("\n구체적인 질문을 선택하시면 상세 답변을 확인하실 수 있습니다!")

	return &core.Answer{
		Text:       b.String(),
		Category:   r.displayFor(topCategory),
		Department: assistantName,
		Confidence: candidates[0].Score,
		Related:    relatedTitles,
	}
}

// keywordAnswer scores the raw question against the FAQ corpus.
func (r *Resolver) keywordAnswer(ctx context.Context, question string) (*core.Answer, error) {
	if r.faq == nil {
		return nil, nil
	}

	items, err := r.faq.ListFAQItems(ctx)
	if err != nil {
		return nil, err
	}

	matched, score := bestFAQMatch(question, items, keywordAcceptScore)
	if matched == nil {
		return nil, nil
	}

	department := matched.Department
	if department == "" {
		department = assistantName
	}

	return &core.Answer{
		Text:       matched.Answer,
		Category:   matched.Category,
		Department: department,
		Link:       matched.Link,
		Confidence: score,
		Related:    relatedFAQQuestions(matched, items, relatedLimit),
	}, nil
}

// hintAnswer is the terminal stage: a not-found response, pointed at a
// category when the question carries its trigger words. Confidence is 0.
func (r *Resolver) hintAnswer(question string) *core.Answer {
	hint, ok := hintFor(question)
	if !ok {
		return &core.Answer{
			Text:       hintText(question, nil),
			Category:   "일반",
			Department: assistantName,
		}
	}

	return &core.Answer{
		Text:       hintText(question, hint),
		Category:   hint.Display,
		Department: assistantName,
		Related:    hint.Questions,
	}
}

// excerptAnswer is the non-LLM fallback when generation fails after a
// section matched: lines from the slice containing one of the stage's
// keywords or the section's own keywords, plus the section's contact.
// Raw question tokens keep their particles attached ("연차는") and
// rarely substring-match document text, so matching runs on the
// already-extracted terms.
func excerptAnswer(terms []string, doc string, contact core.Contact) string {
	seen := map[string]bool{}
	var match []string
	for _, term := range terms {
		if len([]rune(term)) > 1 && !seen[term] {
			seen[term] = true
			match = append(match, term)
		}
	}

	var relevant []string
	lines := strings.Split(doc, "\n")
	if len(lines) > 100 {
		lines = lines[:100]
	}
	for _, line := range lines {
		for _, term := range match {
			if strings.Contains(line, term) {
				relevant = append(relevant, line)
				break
			}
		}
		if len(relevant) >= 5 {
			break
		}
	}

	var b strings.Builder
	if len(relevant) > 0 {
		b.WriteString("관련 정보를 찾았습니다:\n\n")
		b.WriteString(strings.Join(relevant, "\n"))
	} else {
		b.WriteString("죄송합니다. 관련 정보를 찾지 못했습니다.")
	}

	team, name, phone := contact.Team, contact.Name, contact.Phone
	if team == "" {
		team = "담당팀"
	}
	if name == "" {
		name = "담당자"
	}
	if phone == "" {
		phone = "연락처 미등록"
	}
	fmt.Fprintf(&b, "\n\n자세한 내용은 %s %s(%s)에게 문의해주세요.", team, name, phone)
	return b.String()
}

func (r *Resolver) relatedQuestions(sectionId core.ID, question string) []string {
	if r.related == nil {
		return nil
	}
	return r.related.Related(sectionId, question, relatedLimit)
}

// displayFor maps a top-level heading to its display category.
func (r *Resolver) displayFor(topCategory string) string {
	if r.categories != nil {
		for _, entry := range r.categories.Entries() {
			if len(entry.Hierarchy) > 0 && entry.Hierarchy[0] == topCategory {
				return entry.Display
			}
		}
	}
	if topCategory == "" {
		return "일반"
	}
	return topCategory
}

func parentHeading(chunk *core.Chunk) string {
	if len(chunk.Hierarchy) == 0 {
		return ""
	}
	return chunk.Hierarchy[len(chunk.Hierarchy)-1]
}
