package index

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mundap-io/mundap/ai/mock"
	"github.com/mundap-io/mundap/core"
)

// fakeChunkStore keeps the persisted build in memory.
type fakeChunkStore struct {
	mu        sync.Mutex
	chunks    []core.Chunk
	buildTime time.Time
	replaces  int
}

func (f *fakeChunkStore) ReplaceChunks(ctx context.Context, buildTime time.Time, chunks []core.Chunk) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chunks = append([]core.Chunk(nil), chunks...)
	f.buildTime = buildTime
	f.replaces++
	return nil
}

func (f *fakeChunkStore) ListChunks(ctx context.Context) ([]core.Chunk, time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]core.Chunk(nil), f.chunks...), f.buildTime, nil
}

func newTestManager(t *testing.T, opts ...ManagerOption) *Manager {
	t.Helper()
	embedder := mock.NewMockEmbedder()
	builder, err := NewBuilder(embedder)
	require.NoError(t, err)
	t.Cleanup(builder.Release)

	manager, err := NewManager(embedder, builder, opts...)
	require.NoError(t, err)
	return manager
}

func TestManagerSearchBeforeBuild(t *testing.T) {
	manager := newTestManager(t)

	assert.False(t, manager.Ready())
	_, err := manager.Search(context.Background(), "연차 신청", 5)
	assert.ErrorIs(t, err, ErrNotReady)
	_, err = manager.Chunks()
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestManagerRebuildAndSearch(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	chunks := []core.Chunk{sectionChunk("연차 신청"), sectionChunk("건강검진")}
	require.NoError(t, manager.Rebuild(ctx, chunks))
	assert.True(t, manager.Ready())

	// The mock embedder is deterministic, so searching with a chunk's own
	// embed text must rank that chunk first with score 1.
	results, err := manager.Search(ctx, EmbedText(&chunks[1]), 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, chunks[1].Id, results[0].Chunk.Id)
	assert.InDelta(t, 1.0, results[0].Score, 1e-4)
}

func TestManagerPersistAndLoad(t *testing.T) {
	store := &fakeChunkStore{}
	ctx := context.Background()

	first := newTestManager(t, WithStore(store))
	require.NoError(t, first.Rebuild(ctx, []core.Chunk{sectionChunk("주차 안내")}))
	assert.Equal(t, 1, store.replaces)

	second := newTestManager(t, WithStore(store))
	require.NoError(t, second.Load(ctx))
	assert.True(t, second.Ready())

	got, err := second.Chunks()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "주차 안내", got[0].Title)
	assert.NotEmpty(t, got[0].Vector)

	firstBuild, ok := first.BuildTime()
	require.True(t, ok)
	secondBuild, ok := second.BuildTime()
	require.True(t, ok)
	assert.Equal(t, firstBuild, secondBuild)
}

func TestManagerLoadEmptyStore(t *testing.T) {
	manager := newTestManager(t, WithStore(&fakeChunkStore{}))
	assert.ErrorIs(t, manager.Load(context.Background()), ErrNotReady)
}

func TestManagerRebuildHooks(t *testing.T) {
	var calls int
	manager := newTestManager(t, WithRebuildHook(func(ctx context.Context) error {
		calls++
		return nil
	}))

	require.NoError(t, manager.Rebuild(context.Background(), []core.Chunk{sectionChunk("가")}))
	require.NoError(t, manager.Rebuild(context.Background(), []core.Chunk{sectionChunk("나")}))
	assert.Equal(t, 2, calls)
}

func TestManagerStaleness(t *testing.T) {
	manager := newTestManager(t)
	assert.True(t, manager.IsStale(time.Time{}), "missing index is stale")

	require.NoError(t, manager.Rebuild(context.Background(), []core.Chunk{sectionChunk("가")}))
	buildTime, ok := manager.BuildTime()
	require.True(t, ok)

	assert.False(t, manager.IsStale(buildTime.Add(-time.Minute)))
	assert.True(t, manager.IsStale(buildTime.Add(time.Minute)))
}

func TestManagerOldIndexServesDuringRebuild(t *testing.T) {
	manager := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, manager.Rebuild(ctx, []core.Chunk{sectionChunk("가")}))

	// A reader that grabbed the old index keeps a complete snapshot even
	// after a rebuild swaps in a replacement.
	old, err := manager.Chunks()
	require.NoError(t, err)

	require.NoError(t, manager.Rebuild(ctx, []core.Chunk{sectionChunk("나"), sectionChunk("다")}))

	assert.Len(t, old, 1)
	assert.Equal(t, "가", old[0].Title)

	current, err := manager.Chunks()
	require.NoError(t, err)
	assert.Len(t, current, 2)
}
