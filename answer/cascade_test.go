package answer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mundap-io/mundap/ai"
	"github.com/mundap-io/mundap/ai/mock"
	"github.com/mundap-io/mundap/category"
	"github.com/mundap-io/mundap/core"
	"github.com/mundap-io/mundap/index"
	"github.com/mundap-io/mundap/source"
	badgerstore "github.com/mundap-io/mundap/storage/badger"
)

const cascadeGuide = `## 근태 및 휴가

### 연차 신청

그룹웨어에서 연차 신청서를 제출합니다.
승인은 팀장이 합니다.
`

func groundedFixture(t *testing.T, answerer ai.Answerer) (*Resolver, *Cache) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "가이드.md"), []byte(cascadeGuide), 0o644))
	sources, err := source.NewStore(dir)
	require.NoError(t, err)

	store, err := category.NewStore([]core.CategoryEntry{
		{
			Id:        core.IDFromContent("연차 신청"),
			Display:   "HR",
			Hierarchy: []string{"근태 및 휴가", "연차 신청"},
			Title:     "연차 신청",
			Keywords:  []string{"연차", "휴가", "신청"},
			Contact:   core.Contact{Team: "P&C팀", Name: "이영희", Phone: "010-1234-5678"},
			SourceId:  "가이드.md",
			StartLine: 3,
			EndLine:   6,
		},
	})
	require.NoError(t, err)

	matcher, err := category.NewMatcher(store)
	require.NoError(t, err)

	cache, err := NewCache()
	require.NoError(t, err)

	resolver, err := NewResolver(cache,
		WithMatcher(matcher, store),
		WithAnswerer(answerer),
		WithSources(sources),
	)
	require.NoError(t, err)
	return resolver, cache
}

func TestResolveEmptyQuery(t *testing.T) {
	cache, err := NewCache()
	require.NoError(t, err)
	resolver, err := NewResolver(cache)
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, core.ErrEmptyQuery)
	assert.Equal(t, 0, cache.Len())
}

func TestResolveGrounded(t *testing.T) {
	answerer := mock.NewMockAnswerer()
	answerer.GenerateAnswerFunc = func(ctx context.Context, req ai.AnswerRequest) (string, error) {
		assert.Contains(t, req.Document, "그룹웨어에서 연차 신청서를 제출합니다.")
		assert.Equal(t, "P&C팀", req.Contact.Team)
		return "그룹웨어에서 신청하시면 돼요!", nil
	}

	resolver, cache := groundedFixture(t, answerer)

	result, err := resolver.Resolve(context.Background(), "연차는 어떻게 신청하나요?")
	require.NoError(t, err)

	assert.Equal(t, "그룹웨어에서 신청하시면 돼요!", result.Text)
	assert.Equal(t, "HR", result.Category)
	assert.Equal(t, assistantName, result.Department)
	assert.Equal(t, float32(groundedConfidence), result.Confidence)
	assert.Greater(t, result.ResponseTime, 0.0)
	assert.Equal(t, 1, cache.Len())
}

func TestResolveCacheIdempotence(t *testing.T) {
	answerer := mock.NewMockAnswerer()
	answerer.GenerateAnswerFunc = func(ctx context.Context, req ai.AnswerRequest) (string, error) {
		return "첫 번째 생성 결과", nil
	}

	resolver, _ := groundedFixture(t, answerer)
	ctx := context.Background()

	first, err := resolver.Resolve(ctx, "연차는 어떻게 신청하나요?")
	require.NoError(t, err)

	// Whitespace and case do not defeat the cache key.
	second, err := resolver.Resolve(ctx, "연차는  어떻게 신청하나요?")
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, 1, answerer.GenerateCalls())
}

func TestResolveGroundedGenerationFailure(t *testing.T) {
	answerer := mock.NewMockAnswerer()
	answerer.GenerateAnswerFunc = func(ctx context.Context, req ai.AnswerRequest) (string, error) {
		return "", errors.New("model unavailable")
	}

	resolver, _ := groundedFixture(t, answerer)

	result, err := resolver.Resolve(context.Background(), "연차는 어떻게 신청하나요?")
	require.NoError(t, err)

	// The stage still answers from the matched slice.
	assert.Contains(t, result.Text, "그룹웨어에서 연차 신청서를 제출합니다.")
	assert.Contains(t, result.Text, "P&C팀 이영희(010-1234-5678)")
	assert.Equal(t, "HR", result.Category)
}

func TestResolveGroundedDoubleFailure(t *testing.T) {
	// Keyword extraction and generation both fail: the tokenizer fallback
	// yields particle-attached eojeols, so the excerpt must find its lines
	// through the matched section's own keywords.
	answerer := mock.NewMockAnswerer()
	answerer.ExtractKeywordsFunc = func(ctx context.Context, question string) ([]string, error) {
		return nil, errors.New("chat endpoint down")
	}
	answerer.GenerateAnswerFunc = func(ctx context.Context, req ai.AnswerRequest) (string, error) {
		return "", errors.New("model unavailable")
	}

	resolver, _ := groundedFixture(t, answerer)

	result, err := resolver.Resolve(context.Background(), "연차는 어떻게 신청하나요?")
	require.NoError(t, err)

	assert.Contains(t, result.Text, "그룹웨어에서 연차 신청서를 제출합니다.")
	assert.Equal(t, "HR", result.Category)
}

func TestExcerptAnswer(t *testing.T) {
	doc := "### 연차 신청\n\n그룹웨어에서 연차 신청서를 제출합니다.\n승인은 팀장이 합니다."
	contact := core.Contact{Team: "P&C팀", Name: "이영희", Phone: "010-1234-5678"}

	t.Run("section keywords find lines despite particles", func(t *testing.T) {
		text := excerptAnswer([]string{"연차는", "신청하나요", "연차", "신청"}, doc, contact)
		assert.Contains(t, text, "관련 정보를 찾았습니다")
		assert.Contains(t, text, "그룹웨어에서 연차 신청서를 제출합니다.")
		assert.Contains(t, text, "P&C팀 이영희(010-1234-5678)")
	})

	t.Run("no matching term", func(t *testing.T) {
		text := excerptAnswer([]string{"주차장"}, doc, core.Contact{})
		assert.Contains(t, text, "죄송합니다. 관련 정보를 찾지 못했습니다.")
		assert.Contains(t, text, "담당팀 담당자(연락처 미등록)")
	})

	t.Run("single-rune terms are ignored", func(t *testing.T) {
		text := excerptAnswer([]string{"이"}, doc, core.Contact{})
		assert.Contains(t, text, "죄송합니다. 관련 정보를 찾지 못했습니다.")
	})
}

func TestResolveSemantic(t *testing.T) {
	chunks := []core.Chunk{
		{
			Id:        core.IDFromContent("연차 신청 안내"),
			Hierarchy: []string{"근태 및 휴가", "연차 신청"},
			Title:     "연차 신청 안내",
			Content:   "그룹웨어에서 신청합니다.",
			Type:      core.ChunkTypeSection,
			SourceId:  "가이드.md",
		},
		{
			Id:        core.IDFromContent("주차 등록 안내"),
			Hierarchy: []string{"사무실 이용", "주차 등록"},
			Title:     "주차 등록 안내",
			Content:   "총무팀에 등록합니다.",
			Type:      core.ChunkTypeSection,
			SourceId:  "가이드.md",
		},
	}

	embedder := mock.NewMockEmbedder()
	builder, err := index.NewBuilder(embedder)
	require.NoError(t, err)
	t.Cleanup(builder.Release)

	manager, err := index.NewManager(embedder, builder)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, manager.Rebuild(ctx, chunks))

	cache, err := NewCache()
	require.NoError(t, err)
	resolver, err := NewResolver(cache, WithIndex(manager))
	require.NoError(t, err)

	// Querying with a chunk's exact embedding text scores 1.0 under the
	// deterministic embedder, a clear direct match.
	result, err := resolver.Resolve(ctx, index.EmbedText(&chunks[0]))
	require.NoError(t, err)

	assert.Contains(t, result.Text, "그룹웨어에서 신청합니다.")
	assert.Contains(t, result.Text, "근태 및 휴가 > 연차 신청")
	assert.InDelta(t, 1.0, float64(result.Confidence), 1e-3)
}

func TestHierarchicalAnswerPolicyPaths(t *testing.T) {
	cache, err := NewCache()
	require.NoError(t, err)
	resolver, err := NewResolver(cache)
	require.NoError(t, err)

	docResult := func(category, title string, score float32) core.SearchResult {
		return core.SearchResult{
			Chunk: &core.Chunk{
				Hierarchy: []string{category, title},
				Title:     title,
				Content:   title + " 내용",
				Type:      core.ChunkTypeSection,
			},
			Score: score,
		}
	}

	t.Run("direct match", func(t *testing.T) {
		result := resolver.hierarchicalAnswer("연차 질문", []core.SearchResult{
			docResult("근태 및 휴가", "연차 신청", 0.52),
			docResult("근태 및 휴가", "반차", 0.30),
		})
		assert.Contains(t, result.Text, "연차 신청 내용")
		assert.Equal(t, float32(0.52), result.Confidence)
		assert.Equal(t, []string{"반차"}, result.Related)
	})

	t.Run("disambiguation", func(t *testing.T) {
		result := resolver.hierarchicalAnswer("휴가 질문", []core.SearchResult{
			docResult("근태 및 휴가", "연차 신청", 0.40),
			docResult("근태 및 휴가", "반차", 0.36),
			docResult("근태 및 휴가", "여름 휴가", 0.34),
		})
		assert.Contains(t, result.Text, "관련된 질문들을 찾았습니다")
		assert.Contains(t, result.Text, "- 연차 신청")
		assert.Contains(t, result.Text, "- 반차")
		assert.Equal(t, float32(0.40), result.Confidence)
		assert.Len(t, result.Related, 3)
	})

	t.Run("disambiguation listing caps at four", func(t *testing.T) {
		result := resolver.hierarchicalAnswer("휴가 질문", []core.SearchResult{
			docResult("근태 및 휴가", "연차 신청", 0.40),
			docResult("근태 및 휴가", "반차", 0.39),
			docResult("근태 및 휴가", "여름 휴가", 0.38),
			docResult("근태 및 휴가", "경조 휴가", 0.37),
			docResult("근태 및 휴가", "리프레시 휴가", 0.36),
			docResult("근태 및 휴가", "무급 휴가", 0.35),
		})
		assert.Len(t, result.Related, 4)
		assert.Contains(t, result.Text, "- 경조 휴가")
		assert.NotContains(t, result.Text, "리프레시 휴가")
	})

	t.Run("weak scores fall back to single best", func(t *testing.T) {
		result := resolver.hierarchicalAnswer("휴가 질문", []core.SearchResult{
			docResult("근태 및 휴가", "연차 신청", 0.33),
			docResult("근태 및 휴가", "반차", 0.30),
			docResult("근태 및 휴가", "여름 휴가", 0.29),
		})
		assert.Contains(t, result.Text, "연차 신청 내용")
		assert.Equal(t, float32(0.33), result.Confidence)
	})

	t.Run("strongest category wins", func(t *testing.T) {
		result := resolver.hierarchicalAnswer("질문", []core.SearchResult{
			docResult("사무실 이용", "주차 등록", 0.55),
			docResult("근태 및 휴가", "연차 신청", 0.50),
			docResult("근태 및 휴가", "반차", 0.26),
		})
		// 사무실 이용 averages 0.55; 근태 averages 0.38.
		assert.Contains(t, result.Text, "주차 등록 내용")
	})
}

func TestResolveKeywordFallback(t *testing.T) {
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })
	ctx := context.Background()

	require.NoError(t, stores.FAQ.ReplaceFAQItems(ctx, faqCorpus))

	cache, err := NewCache()
	require.NoError(t, err)
	resolver, err := NewResolver(cache, WithFAQ(stores.FAQ))
	require.NoError(t, err)

	result, err := resolver.Resolve(ctx, "VDI 비밀번호 초기화")
	require.NoError(t, err)

	assert.Equal(t, "헬프데스크에 초기화를 요청하세요.", result.Text)
	assert.Equal(t, "IT", result.Category)
	assert.Equal(t, "https://helpdesk.example.com", result.Link)
	assert.Greater(t, result.Confidence, float32(0))
}

func TestResolveHintDefault(t *testing.T) {
	cache, err := NewCache()
	require.NoError(t, err)
	resolver, err := NewResolver(cache)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("trigger word points at a category", func(t *testing.T) {
		result, err := resolver.Resolve(ctx, "겨울 휴가 공지 어디서 봐요")
		require.NoError(t, err)

		assert.Equal(t, "HR", result.Category)
		assert.Equal(t, float32(0), result.Confidence)
		assert.Contains(t, result.Text, "'HR' 카테고리에 있을 수 있어요")
		assert.NotEmpty(t, result.Related)
	})

	t.Run("no trigger word", func(t *testing.T) {
		result, err := resolver.Resolve(ctx, "오늘 점심 메뉴 추천해줘")
		require.NoError(t, err)

		assert.Equal(t, "일반", result.Category)
		assert.Equal(t, float32(0), result.Confidence)
		assert.Empty(t, result.Related)
	})
}
