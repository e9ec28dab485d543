package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.ItemRepository {
	t.Helper()
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func makeItem(owner core.ID, title string, createdAt time.Time) *core.Item {
	return &core.Item{
		OwnerId:   owner,
		Type:      core.ItemTypeNote,
		Title:     title,
		Content:   "content of " + title,
		Status:    core.StatusPending,
		CreatedAt: createdAt,
	}
}

func TestAddAndGetItem(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	owner := core.IDFromContent("alice")

	added, err := repo.AddItems(ctx, makeItem(owner, "first", time.Time{}))
	require.NoError(t, err)
	require.Len(t, added, 1)
	require.NotZero(t, added[0].Id)
	assert.False(t, added[0].CreatedAt.IsZero())

	got, err := repo.GetItem(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, owner, got.OwnerId)
}

func TestGetItem_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetItem(context.Background(), core.ID(9999))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetOwnedItem(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	alice := core.IDFromContent("alice")
	bob := core.IDFromContent("bob")

	added, err := repo.AddItems(ctx, makeItem(alice, "private", time.Time{}))
	require.NoError(t, err)

	got, err := repo.GetOwnedItem(ctx, added[0].Id, alice)
	require.NoError(t, err)
	assert.Equal(t, added[0].Id, got.Id)

	// Another owner cannot see the item
	_, err = repo.GetOwnedItem(ctx, added[0].Id, bob)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateItems(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	owner := core.IDFromContent("alice")

	added, err := repo.AddItems(ctx, makeItem(owner, "draft", time.Time{}))
	require.NoError(t, err)

	item := added[0]
	item.Summary = "a summary"
	item.Embedding = []float32{0.1, 0.2, 0.3}
	item.Status = core.StatusCompleted

	updated, err := repo.UpdateItems(ctx, item)
	require.NoError(t, err)
	require.Len(t, updated, 1)

	got, err := repo.GetItem(ctx, item.Id)
	require.NoError(t, err)
	assert.Equal(t, "a summary", got.Summary)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, got.Embedding)
	assert.Equal(t, core.StatusCompleted, got.Status)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestUpdateItems_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	missing := makeItem(core.IDFromContent("alice"), "ghost", time.Time{})
	missing.Id = core.ID(12345)

	_, err := repo.UpdateItems(context.Background(), missing)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteItems(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	owner := core.IDFromContent("alice")

	added, err := repo.AddItems(ctx, makeItem(owner, "doomed", time.Time{}))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteItems(ctx, added[0].Id))

	_, err = repo.GetItem(ctx, added[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Owner index entry is gone too
	items, err := repo.FindByOwner(ctx, owner, storage.ItemFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFindByOwner_OrderAndScoping(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	alice := core.IDFromContent("alice")
	bob := core.IDFromContent("bob")
	now := time.Now().UTC()

	_, err := repo.AddItems(ctx,
		makeItem(alice, "oldest", now.Add(-3*time.Hour)),
		makeItem(alice, "middle", now.Add(-2*time.Hour)),
		makeItem(alice, "newest", now.Add(-1*time.Hour)),
		makeItem(bob, "bobs", now),
	)
	require.NoError(t, err)

	items, err := repo.FindByOwner(ctx, alice, storage.ItemFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "newest", items[0].Title)
	assert.Equal(t, "middle", items[1].Title)
	assert.Equal(t, "oldest", items[2].Title)
}

func TestFindByOwner_Filters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	owner := core.IDFromContent("alice")
	now := time.Now().UTC()

	note := makeItem(owner, "a note", now.Add(-time.Hour))
	note.Tags = []string{"work"}

	site := makeItem(owner, "a site", now.Add(-30*time.Minute))
	site.Type = core.ItemTypeWebsite
	site.Tags = []string{"reading"}
	site.Embedding = []float32{0.5, 0.5}

	_, err := repo.AddItems(ctx, note, site)
	require.NoError(t, err)

	t.Run("by type", func(t *testing.T) {
		items, err := repo.FindByOwner(ctx, owner, storage.ItemFilter{Type: core.ItemTypeWebsite})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "a site", items[0].Title)
	})

	t.Run("by tag membership", func(t *testing.T) {
		items, err := repo.FindByOwner(ctx, owner, storage.ItemFilter{Tags: []string{"work", "play"}})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "a note", items[0].Title)
	})

	t.Run("require embedding", func(t *testing.T) {
		items, err := repo.FindByOwner(ctx, owner, storage.ItemFilter{RequireEmbedding: true})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "a site", items[0].Title)
	})

	t.Run("limit", func(t *testing.T) {
		items, err := repo.FindByOwner(ctx, owner, storage.ItemFilter{Limit: 1})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "a site", items[0].Title) // newest first
	})
}

func TestFindByOwner_EmptyOwner(t *testing.T) {
	repo := newTestRepo(t)

	items, err := repo.FindByOwner(context.Background(), core.IDFromContent("nobody"), storage.ItemFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetItemsByDateRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	owner := core.IDFromContent("alice")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := repo.AddItems(ctx,
		makeItem(owner, "before", base.Add(-time.Hour)),
		makeItem(owner, "inside", base.Add(time.Minute)),
		makeItem(owner, "after", base.Add(2*time.Hour)),
	)
	require.NoError(t, err)

	items, err := repo.GetItemsByDateRange(ctx, base, base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "inside", items[0].Title)
}
