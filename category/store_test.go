package category

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mundap-io/mundap/core"
)

const sampleMetadata = `{
  "categories": {
    "HR_3": {
      "display_name": "HR",
      "filename": "생활가이드.md",
      "h2_section": "근태 및 휴가",
      "h3_section": "연차 신청",
      "h4_section": "",
      "title": "연차 신청",
      "start_line": 40,
      "end_line": 80,
      "keywords": ["연차", "휴가", "신청", "그룹웨어"],
      "contact": {"team": "P&C팀", "name": "이영희", "phone": "010-1234-5678", "email": "lee@example.com"}
    },
    "IT_7": {
      "display_name": "IT",
      "filename": "생활가이드.md",
      "h2_section": "업무 환경 세팅",
      "h3_section": "네트워크",
      "h4_section": "VDI 접속",
      "title": "VDI 접속",
      "start_line": 120,
      "end_line": 160,
      "keywords": ["VDI", "네트워크", "접속", "비밀번호"],
      "contact": {"team": "IT팀", "name": "김철수", "phone": "010-9876-5432", "email": "kim@example.com"}
    },
    "총무_1": {
      "display_name": "총무",
      "filename": "생활가이드.md",
      "h2_section": "사무실 이용",
      "h3_section": "",
      "h4_section": "",
      "title": "사무실 이용",
      "start_line": 5,
      "end_line": 38,
      "keywords": ["사무실", "주차", "출입"],
      "contact": {"team": "총무팀", "name": "박민수", "phone": "010-5555-4444", "email": "park@example.com"}
    }
  }
}`

func writeMetadata(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "documents_metadata.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadStore(t *testing.T) {
	store, err := LoadStore(writeMetadata(t, sampleMetadata))
	require.NoError(t, err)
	require.Equal(t, 3, store.Len())

	entries := store.Entries()

	t.Run("document order", func(t *testing.T) {
		assert.Equal(t, "사무실 이용", entries[0].Title)
		assert.Equal(t, "연차 신청", entries[1].Title)
		assert.Equal(t, "VDI 접속", entries[2].Title)
	})

	t.Run("hierarchy and contact", func(t *testing.T) {
		vdi := entries[2]
		assert.Equal(t, []string{"업무 환경 세팅", "네트워크", "VDI 접속"}, vdi.Hierarchy)
		assert.Equal(t, "IT", vdi.Display)
		assert.Equal(t, "IT팀", vdi.Contact.Team)
		assert.Equal(t, "김철수", vdi.Contact.Name)
		assert.Equal(t, 120, vdi.StartLine)
		assert.Equal(t, 160, vdi.EndLine)
	})

	t.Run("ids are content hashes", func(t *testing.T) {
		want := core.IDFromContent("생활가이드.md\x00업무 환경 세팅 > 네트워크 > VDI 접속\x00VDI 접속")
		assert.Equal(t, want, entries[2].Id)
	})

	t.Run("lookup", func(t *testing.T) {
		entry, ok := store.ByID(entries[1].Id)
		require.True(t, ok)
		assert.Equal(t, "연차 신청", entry.Title)

		_, ok = store.ByID(core.IDFromContent("없는 섹션"))
		assert.False(t, ok)
	})

	t.Run("by display", func(t *testing.T) {
		hr := store.ByDisplay("HR")
		require.Len(t, hr, 1)
		assert.Equal(t, "연차 신청", hr[0].Title)
		assert.Empty(t, store.ByDisplay("비즈니스"))
	})
}

func TestLoadStoreStableIDs(t *testing.T) {
	// Regenerating the metadata must not change section ids as long as
	// the heading paths are unchanged.
	first, err := LoadStore(writeMetadata(t, sampleMetadata))
	require.NoError(t, err)
	second, err := LoadStore(writeMetadata(t, sampleMetadata))
	require.NoError(t, err)

	for i := range first.Entries() {
		assert.Equal(t, first.Entries()[i].Id, second.Entries()[i].Id)
	}
}

func TestLoadStoreErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadStore(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadStore(writeMetadata(t, "{not json"))
		assert.ErrorIs(t, err, ErrInvalidMetadata)
	})

	t.Run("no sections", func(t *testing.T) {
		_, err := LoadStore(writeMetadata(t, `{"categories": {}}`))
		assert.ErrorIs(t, err, ErrEmptyMetadata)
	})

	t.Run("section without title", func(t *testing.T) {
		_, err := LoadStore(writeMetadata(t, `{"categories": {"x": {"filename": "a.md"}}}`))
		assert.ErrorIs(t, err, ErrInvalidMetadata)
	})
}

func TestNewStoreEmpty(t *testing.T) {
	_, err := NewStore(nil)
	assert.ErrorIs(t, err, ErrEmptyMetadata)
}
