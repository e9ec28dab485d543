package storage

import (
	"context"
	"time"

	"github.com/poiesic/recall/core"
)

// ItemFilter narrows an owner-scoped item query.
// The zero value matches every item the owner has.
type ItemFilter struct {
	// Type restricts results to a single item type when non-zero.
	Type core.ItemType

	// Tags restricts results to items carrying at least one of the
	// given tags (membership, not conjunction).
	Tags []string

	// RequireEmbedding restricts results to items with a non-empty
	// embedding vector.
	RequireEmbedding bool

	// Limit caps the number of results. 0 means no limit.
	Limit int
}

// ItemRepository provides operations for managing content items.
// Implementations must be thread-safe and support concurrent access.
type ItemRepository interface {
	// AddItems adds one or more items to storage.
	// Generates new IDs from sequence for items with ID=0.
	// Sets CreatedAt/UpdatedAt timestamps if not already set.
	// Returns the items with generated IDs and timestamps populated.
	AddItems(ctx context.Context, items ...*core.Item) ([]*core.Item, error)

	// UpdateItems updates existing items.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any item doesn't exist.
	UpdateItems(ctx context.Context, items ...*core.Item) ([]*core.Item, error)

	// DeleteItems removes items by their IDs.
	// Also removes associated owner indices.
	// Returns ErrNotFound if any item doesn't exist.
	DeleteItems(ctx context.Context, ids ...core.ID) error

	// GetItem retrieves a single item by ID.
	// Returns ErrNotFound if the item doesn't exist.
	GetItem(ctx context.Context, id core.ID) (*core.Item, error)

	// GetOwnedItem retrieves a single item by ID, verifying ownership.
	// Returns ErrNotFound if the item doesn't exist or belongs to
	// a different owner.
	GetOwnedItem(ctx context.Context, id, owner core.ID) (*core.Item, error)

	// GetItems retrieves multiple items by their IDs.
	// Returns only the items that exist (no error for missing items).
	GetItems(ctx context.Context, ids ...core.ID) ([]*core.Item, error)

	// FindByOwner retrieves an owner's items matching the filter,
	// ordered by creation time descending.
	FindByOwner(ctx context.Context, owner core.ID, filter ItemFilter) ([]*core.Item, error)

	// GetItemsByDateRange retrieves items within a time range across all
	// owners, ordered by creation time ascending. Used by maintenance
	// tooling such as reembedding.
	GetItemsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Item, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}
