package related

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mundap-io/mundap/category"
	"github.com/mundap-io/mundap/core"
)

func metadataStore(t *testing.T) *category.Store {
	t.Helper()

	entry := func(display string, hierarchy []string, keywords ...string) core.CategoryEntry {
		title := hierarchy[len(hierarchy)-1]
		return core.CategoryEntry{
			Id:        core.IDFromContent("가이드.md\x00" + title),
			Display:   display,
			Hierarchy: hierarchy,
			Title:     title,
			Keywords:  keywords,
			SourceId:  "가이드.md",
		}
	}

	store, err := category.NewStore([]core.CategoryEntry{
		entry("HR", []string{"근태 및 휴가", "연차 신청"}, "연차", "신청", "그룹웨어"),
		entry("HR", []string{"근태 및 휴가", "반차"}, "반차", "근태"),
		entry("HR", []string{"근태 및 휴가", "경조사 지원"}, "경조사", "지원"),
		entry("HR", []string{"복리후생", "건강검진"}, "건강검진", "병원"),
		entry("IT", []string{"업무 환경 세팅", "VDI 접속"}, "VDI", "접속", "신청"),
		entry("총무", []string{"사무실 이용", "주차 등록"}, "주차", "차량", "신청"),
	})
	require.NoError(t, err)
	return store
}

func TestRelatedSameParentFirst(t *testing.T) {
	store := metadataStore(t)
	extractor := NewExtractor(store)

	id := core.IDFromContent("가이드.md\x00연차 신청")
	questions := extractor.Related(id, "연차는 어떻게 신청하나요?", 3)

	require.Len(t, questions, 3)
	// Both siblings under 근태 및 휴가 come before the display-level
	// fallback pulls in 건강검진.
	assert.Equal(t, "반차는 언제 사용하나요?", questions[0])
	assert.Equal(t, "경조사 지원에는 어떤 게 있나요?", questions[1])
	assert.Equal(t, "건강검진이 궁금해요", questions[2])
}

func TestRelatedKeywordFallback(t *testing.T) {
	store := metadataStore(t)
	extractor := NewExtractor(store)

	// VDI 접속 has no same-parent sibling and no other IT section, so the
	// third stage ranks by keyword overlap ("신청" is shared).
	id := core.IDFromContent("가이드.md\x00VDI 접속")
	questions := extractor.Related(id, "VDI는 어떻게 접속하나요?", 3)

	require.NotEmpty(t, questions)
	assert.Contains(t, questions, "연차 신청은 어떻게 하나요?")
}

func TestRelatedExcludesCurrentQuestion(t *testing.T) {
	store := metadataStore(t)
	extractor := NewExtractor(store)

	id := core.IDFromContent("가이드.md\x00연차 신청")
	questions := extractor.Related(id, "반차는 언제 사용하나요?", 2)

	require.Len(t, questions, 2)
	assert.NotContains(t, questions, "반차는 언제 사용하나요?")
}

func TestRelatedUnknownSection(t *testing.T) {
	extractor := NewExtractor(metadataStore(t))
	assert.Empty(t, extractor.Related(core.IDFromContent("없는 섹션"), "질문", 3))
}

func TestCategoryQuestions(t *testing.T) {
	extractor := NewExtractor(metadataStore(t))

	t.Run("document order with limit", func(t *testing.T) {
		questions := extractor.CategoryQuestions("HR", 2)
		assert.Equal(t, []string{
			"연차 신청은 어떻게 하나요?",
			"반차는 언제 사용하나요?",
		}, questions)
	})

	t.Run("unknown category", func(t *testing.T) {
		assert.Empty(t, extractor.CategoryQuestions("법무", 3))
	})
}
