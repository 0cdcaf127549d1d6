package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mundap-io/mundap/ai"
	"github.com/mundap-io/mundap/ai/mock"
	"github.com/mundap-io/mundap/core"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore([]core.CategoryEntry{
		{
			Id:        core.IDFromContent("연차 신청"),
			Display:   "HR",
			Hierarchy: []string{"근태 및 휴가", "연차 신청"},
			Title:     "연차 신청",
			Keywords:  []string{"연차", "휴가", "신청", "그룹웨어"},
			Contact:   core.Contact{Team: "P&C팀", Name: "이영희", Phone: "010-1234-5678"},
			SourceId:  "생활가이드.md",
		},
		{
			Id:        core.IDFromContent("VDI 접속"),
			Display:   "IT",
			Hierarchy: []string{"업무 환경 세팅", "VDI 접속"},
			Title:     "VDI 접속",
			Keywords:  []string{"VDI", "네트워크", "접속", "비밀번호"},
			Contact:   core.Contact{Team: "IT팀", Name: "김철수", Phone: "010-9876-5432"},
			SourceId:  "생활가이드.md",
		},
		{
			Id:        core.IDFromContent("주차 등록"),
			Display:   "총무",
			Hierarchy: []string{"사무실 이용", "주차 등록"},
			Title:     "주차 등록",
			Keywords:  []string{"주차", "차량", "등록", "사무실"},
			Contact:   core.Contact{Team: "총무팀", Name: "박민수", Phone: "010-5555-4444"},
			SourceId:  "생활가이드.md",
		},
	})
	require.NoError(t, err)
	return store
}

func TestMatch(t *testing.T) {
	matcher, err := NewMatcher(testStore(t))
	require.NoError(t, err)

	t.Run("two overlapping keywords match", func(t *testing.T) {
		entry := matcher.Match([]string{"연차", "신청", "방법"})
		require.NotNil(t, entry)
		assert.Equal(t, "연차 신청", entry.Title)
	})

	t.Run("substring overlap counts both ways", func(t *testing.T) {
		// "연차휴가" contains the section keyword "연차"; the section
		// keyword "그룹웨어" contains the query keyword "웨어".
		entry := matcher.Match([]string{"연차휴가", "웨어"})
		require.NotNil(t, entry)
		assert.Equal(t, "연차 신청", entry.Title)
	})

	t.Run("case-insensitive for latin keywords", func(t *testing.T) {
		entry := matcher.Match([]string{"vdi", "비밀번호"})
		require.NotNil(t, entry)
		assert.Equal(t, "VDI 접속", entry.Title)

		entry = matcher.Match([]string{"Vdi", "네트워크"})
		require.NotNil(t, entry)
		assert.Equal(t, "VDI 접속", entry.Title)
	})

	t.Run("single keyword is rejected", func(t *testing.T) {
		assert.Nil(t, matcher.Match([]string{"연차", "출장비"}))
	})

	t.Run("no overlap", func(t *testing.T) {
		assert.Nil(t, matcher.Match([]string{"점심", "메뉴"}))
	})

	t.Run("empty keywords", func(t *testing.T) {
		assert.Nil(t, matcher.Match(nil))
	})

	t.Run("best score wins", func(t *testing.T) {
		entry := matcher.Match([]string{"사무실", "주차", "차량", "네트워크"})
		require.NotNil(t, entry)
		assert.Equal(t, "주차 등록", entry.Title)
	})

	t.Run("tie keeps document order", func(t *testing.T) {
		// Two keywords hit HR, two hit IT; the earlier section wins.
		entry := matcher.Match([]string{"연차", "신청", "VDI", "네트워크"})
		require.NotNil(t, entry)
		assert.Equal(t, "연차 신청", entry.Title)
	})
}

func TestClassifyViaLLM(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	t.Run("picks offered section", func(t *testing.T) {
		answerer := mock.NewMockAnswerer()
		answerer.ClassifySectionFunc = func(ctx context.Context, question string, sections []ai.SectionRef) (core.ID, error) {
			require.Len(t, sections, 3)
			assert.Equal(t, "근태 및 휴가 > 연차 신청", sections[0].Path)
			return sections[1].Id, nil
		}

		matcher, err := NewMatcher(store, WithAnswerer(answerer))
		require.NoError(t, err)

		entry, err := matcher.ClassifyViaLLM(ctx, "VDI 비밀번호를 잊어버렸어요")
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, "VDI 접속", entry.Title)
		assert.Equal(t, 1, answerer.ClassifyCalls())
	})

	t.Run("decline is a miss", func(t *testing.T) {
		answerer := mock.NewMockAnswerer()
		answerer.ClassifySectionFunc = func(ctx context.Context, question string, sections []ai.SectionRef) (core.ID, error) {
			return 0, ai.ErrNoSection
		}

		matcher, err := NewMatcher(store, WithAnswerer(answerer))
		require.NoError(t, err)

		entry, err := matcher.ClassifyViaLLM(ctx, "오늘 점심 뭐 먹을까요")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("unknown id is a miss", func(t *testing.T) {
		answerer := mock.NewMockAnswerer()
		answerer.ClassifySectionFunc = func(ctx context.Context, question string, sections []ai.SectionRef) (core.ID, error) {
			return core.IDFromContent("엉뚱한 섹션"), nil
		}

		matcher, err := NewMatcher(store, WithAnswerer(answerer))
		require.NoError(t, err)

		entry, err := matcher.ClassifyViaLLM(ctx, "연차는 어떻게 신청하나요")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("model error propagates", func(t *testing.T) {
		wantErr := errors.New("model unavailable")
		answerer := mock.NewMockAnswerer()
		answerer.ClassifySectionFunc = func(ctx context.Context, question string, sections []ai.SectionRef) (core.ID, error) {
			return 0, wantErr
		}

		matcher, err := NewMatcher(store, WithAnswerer(answerer))
		require.NoError(t, err)

		_, err = matcher.ClassifyViaLLM(ctx, "연차는 어떻게 신청하나요")
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("no answerer configured", func(t *testing.T) {
		matcher, err := NewMatcher(store)
		require.NoError(t, err)

		entry, err := matcher.ClassifyViaLLM(ctx, "연차는 어떻게 신청하나요")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})
}
