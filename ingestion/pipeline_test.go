package ingestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/recall/ai/mock"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/storage"
	"github.com/poiesic/recall/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T) (*Pipeline, storage.ItemRepository, *mock.MockEmbedder, *mock.MockSummarizer) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	embedder := mock.NewMockEmbedder()
	summarizer := mock.NewMockSummarizer()
	provider := mock.NewMockProviderWithServices(embedder, summarizer)

	pipeline, err := NewPipeline(repo, provider)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	return pipeline, repo, embedder, summarizer
}

func waitForStatus(t *testing.T, repo storage.ItemRepository, id core.ID, want core.ProcessingStatus) *core.Item {
	t.Helper()

	var item *core.Item
	require.Eventually(t, func() bool {
		got, err := repo.GetItem(context.Background(), id)
		if err != nil {
			return false
		}
		item = got
		return got.Status == want
	}, 5*time.Second, 10*time.Millisecond)
	return item
}

func TestNewPipeline(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	provider := mock.NewMockProvider()

	t.Run("valid configuration", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, provider)
		require.NoError(t, err)
		assert.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("with pool size", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, provider, WithPoolSize(4))
		require.NoError(t, err)
		assert.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("pool size below one is clamped", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, provider, WithPoolSize(0))
		require.NoError(t, err)
		assert.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("nil item repository", func(t *testing.T) {
		_, err := NewPipeline(nil, provider)
		assert.Equal(t, ErrItemRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewPipeline(repo, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestIngest(t *testing.T) {
	owner := core.IDFromContent("alice")
	ctx := context.Background()

	t.Run("item is enriched and completed", func(t *testing.T) {
		pipeline, repo, _, _ := newTestPipeline(t)

		added, err := pipeline.Ingest(ctx, &core.Item{
			OwnerId: owner,
			Type:    core.ItemTypeNote,
			Title:   "Compaction notes",
			Content: "Badger compacts value log files in the background",
		})
		require.NoError(t, err)
		require.Len(t, added, 1)
		require.NotZero(t, added[0].Id)
		assert.Equal(t, core.StatusPending, added[0].Status)

		item := waitForStatus(t, repo, added[0].Id, core.StatusCompleted)
		assert.NotEmpty(t, item.Summary)
		assert.NotEmpty(t, item.Keywords)
		assert.NotEmpty(t, item.Embedding)
		assert.Empty(t, item.StatusError)
	})

	t.Run("multiple items in one batch", func(t *testing.T) {
		pipeline, repo, _, _ := newTestPipeline(t)

		added, err := pipeline.Ingest(ctx,
			&core.Item{OwnerId: owner, Type: core.ItemTypeNote, Content: "first note"},
			&core.Item{OwnerId: owner, Type: core.ItemTypeNote, Content: "second note"},
			&core.Item{OwnerId: owner, Type: core.ItemTypeWebsite, Link: "https://lwn.net"},
		)
		require.NoError(t, err)
		require.Len(t, added, 3)

		for _, item := range added {
			waitForStatus(t, repo, item.Id, core.StatusCompleted)
		}
	})

	t.Run("no items is a no-op", func(t *testing.T) {
		pipeline, _, _, _ := newTestPipeline(t)

		added, err := pipeline.Ingest(ctx)
		require.NoError(t, err)
		assert.Empty(t, added)
	})

	t.Run("invalid item is rejected synchronously", func(t *testing.T) {
		pipeline, _, _, _ := newTestPipeline(t)

		_, err := pipeline.Ingest(ctx, &core.Item{Type: core.ItemTypeNote, Content: "orphaned"})
		assert.ErrorIs(t, err, core.ErrMissingOwner)
	})

	t.Run("summary failure marks the item failed", func(t *testing.T) {
		pipeline, repo, _, summarizer := newTestPipeline(t)
		summarizer.SummarizeFunc = func(ctx context.Context, content string) (string, error) {
			return "", errors.New("model exploded")
		}

		added, err := pipeline.Ingest(ctx, &core.Item{
			OwnerId: owner, Type: core.ItemTypeNote, Content: "doomed note",
		})
		require.NoError(t, err, "async failures never fail the ingestion call")

		item := waitForStatus(t, repo, added[0].Id, core.StatusFailed)
		assert.Contains(t, item.StatusError, "model exploded")
	})

	t.Run("embedding failure marks the item failed", func(t *testing.T) {
		pipeline, repo, embedder, _ := newTestPipeline(t)
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, errors.New("embedding service down")
		}

		added, err := pipeline.Ingest(ctx, &core.Item{
			OwnerId: owner, Type: core.ItemTypeNote, Content: "doomed note",
		})
		require.NoError(t, err)

		item := waitForStatus(t, repo, added[0].Id, core.StatusFailed)
		assert.Contains(t, item.StatusError, "embedding service down")
	})

	t.Run("empty embedding still completes", func(t *testing.T) {
		pipeline, repo, embedder, _ := newTestPipeline(t)
		embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
			// The chain returns per-text empty vectors on total provider failure
			out := make([][]float32, len(texts))
			for i := range out {
				out[i] = []float32{}
			}
			return out, nil
		}

		added, err := pipeline.Ingest(ctx, &core.Item{
			OwnerId: owner, Type: core.ItemTypeNote, Content: "note without semantic search",
		})
		require.NoError(t, err)

		item := waitForStatus(t, repo, added[0].Id, core.StatusCompleted)
		assert.Empty(t, item.Embedding)
	})
}
