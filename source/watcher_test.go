package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForChange(t *testing.T, changes <-chan struct{}) bool {
	t.Helper()
	select {
	case _, ok := <-changes:
		return ok
	case <-time.After(3 * time.Second):
		return false
	}
}

func TestWatchReportsDocumentWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "가이드.md")
	require.NoError(t, os.WriteFile(path, []byte("## 섹션\n"), 0o644))

	watcher, err := NewWatcher(dir, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := watcher.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("## 섹션\n수정\n"), 0o644))
	assert.True(t, waitForChange(t, changes), "expected a change notification")
}

func TestWatchCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewWatcher(dir, WithDebounce(200*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := watcher.Watch(ctx)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "가이드.md"), []byte("내용\n"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	require.True(t, waitForChange(t, changes))

	// The burst already drained; nothing further arrives.
	select {
	case <-changes:
		t.Fatal("unexpected second notification")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewWatcher(dir, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := watcher.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "메모.txt"), []byte("무시\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".숨김.md"), []byte("무시\n"), 0o644))

	select {
	case <-changes:
		t.Fatal("unexpected notification for non-document files")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	watcher, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := watcher.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		assert.False(t, ok, "channel should close")
	case <-time.After(2 * time.Second):
		t.Fatal("channel did not close")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	watcher, err := NewWatcher(filepath.Join(t.TempDir(), "없는폴더"))
	require.NoError(t, err)

	_, err = watcher.Watch(context.Background())
	assert.Error(t, err)
}
