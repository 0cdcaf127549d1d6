package source

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guideDoc = `# 생활 가이드

## 근태 및 휴가

### 연차 신청

그룹웨어에서 신청합니다.
승인은 팀장이 합니다.

## 복리후생

### 건강검진

매년 10월에 실시합니다.
`

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "가이드.md"), []byte(guideDoc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "비즈니스.md"), []byte("## 소개\n내용\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("무시"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.md"), []byte("무시"), 0o644))

	store, err := NewStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestNewStore(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := NewStore(filepath.Join(t.TempDir(), "없음"))
		assert.Error(t, err)
	})

	t.Run("file instead of directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "파일.md")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		_, err := NewStore(path)
		assert.Error(t, err)
	})
}

func TestList(t *testing.T) {
	store, _ := newTestStore(t)

	ids, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"가이드.md", "비즈니스.md"}, ids)
}

func TestListEmptyDir(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.List()
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestRead(t *testing.T) {
	store, _ := newTestStore(t)

	text, err := store.Read("가이드.md")
	require.NoError(t, err)
	assert.Contains(t, text, "### 연차 신청")

	_, err = store.Read("없는문서.md")
	assert.ErrorIs(t, err, ErrUnknownDocument)
}

func TestSlice(t *testing.T) {
	store, _ := newTestStore(t)

	t.Run("exact range", func(t *testing.T) {
		text, err := store.Slice("가이드.md", 5, 8)
		require.NoError(t, err)
		assert.Equal(t, "### 연차 신청\n\n그룹웨어에서 신청합니다.\n승인은 팀장이 합니다.", text)
	})

	t.Run("range is clamped", func(t *testing.T) {
		text, err := store.Slice("가이드.md", -3, 9999)
		require.NoError(t, err)
		assert.Contains(t, text, "# 생활 가이드")
		assert.Contains(t, text, "매년 10월에 실시합니다.")
	})

	t.Run("empty range after clamping", func(t *testing.T) {
		_, err := store.Slice("가이드.md", 40, 50)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("path traversal is rejected", func(t *testing.T) {
		_, err := store.Slice("../가이드.md", 1, 2)
		assert.ErrorIs(t, err, ErrUnknownDocument)
	})
}

func TestSliceCacheInvalidation(t *testing.T) {
	store, dir := newTestStore(t)

	first, err := store.Slice("비즈니스.md", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "## 소개", first)

	// Rewrite the file with a different first line and a newer mtime.
	path := filepath.Join(dir, "비즈니스.md")
	require.NoError(t, os.WriteFile(path, []byte("## 회사 소개\n새 내용\n"), 0o644))
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	second, err := store.Slice("비즈니스.md", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "## 회사 소개", second)
}

func TestLatestModTime(t *testing.T) {
	store, dir := newTestStore(t)

	base, err := store.LatestModTime()
	require.NoError(t, err)
	require.False(t, base.IsZero())

	future := base.Add(5 * time.Second)
	path := filepath.Join(dir, "가이드.md")
	require.NoError(t, os.Chtimes(path, future, future))

	latest, err := store.LatestModTime()
	require.NoError(t, err)
	assert.True(t, latest.After(base))
}
