package badger

import (
	"bytes"
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/storage"
)

// ItemRepository implements storage.ItemRepository for BadgerDB.
type ItemRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(backend *Backend) (*ItemRepository, error) {
	idSeq, err := backend.GetSequence(itemIDSeq)
	if err != nil {
		return nil, err
	}

	return &ItemRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ItemRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *ItemRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddItems adds one or more items to storage.
func (r *ItemRepository) AddItems(ctx context.Context, items ...*core.Item) ([]*core.Item, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, item := range items {
			// Always generate new ID from sequence
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			item.Id = core.ID(nextID)

			if item.CreatedAt.IsZero() {
				item.CreatedAt = time.Now().UTC()
			}
			item.UpdatedAt = item.CreatedAt

			// Store primary record
			key := makeItemKey(item.Id)
			value := storage.MarshalItem(item)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update owner index
			ownerKey := makeOwnerKey(item.OwnerId, item.CreatedAt, item.Id)
			if err := tx.Set(ownerKey, storage.MarshalID(item.Id)); err != nil {
				return err
			}

			// Update date index
			dateKey := makeItemDateKey(item.CreatedAt, item.Id)
			if err := tx.Set(dateKey, storage.MarshalID(item.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return items, err
}

// UpdateItems updates existing items.
func (r *ItemRepository) UpdateItems(ctx context.Context, items ...*core.Item) ([]*core.Item, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, item := range items {
			key := makeItemKey(item.Id)

			// Read old item to detect index changes
			old, err := r.readItem(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Creation time is immutable; indexes key off it
			item.CreatedAt = old.CreatedAt
			item.UpdatedAt = time.Now().UTC()

			// Store updated item
			value := storage.MarshalItem(item)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Rewrite owner index if the item changed hands
			if old.OwnerId != item.OwnerId {
				if err := tx.Delete(makeOwnerKey(old.OwnerId, old.CreatedAt, old.Id)); err != nil {
					return err
				}
				ownerKey := makeOwnerKey(item.OwnerId, item.CreatedAt, item.Id)
				if err := tx.Set(ownerKey, storage.MarshalID(item.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return items, err
}

// DeleteItems removes items by their IDs.
func (r *ItemRepository) DeleteItems(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeItemKey(id)

			// Read item to get metadata for index cleanup
			item, err := r.readItem(tx, key)
			if err != nil {
				return err
			}
			if item == nil {
				return storage.ErrNotFound
			}

			// Delete from owner index
			if err := tx.Delete(makeOwnerKey(item.OwnerId, item.CreatedAt, item.Id)); err != nil {
				return err
			}

			// Delete from date index
			if err := tx.Delete(makeItemDateKey(item.CreatedAt, item.Id)); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetItem retrieves a single item by ID.
func (r *ItemRepository) GetItem(ctx context.Context, id core.ID) (*core.Item, error) {
	var result *core.Item
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeItemKey(id)
		var err error
		result, err = r.readItem(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetOwnedItem retrieves a single item by ID, verifying ownership.
func (r *ItemRepository) GetOwnedItem(ctx context.Context, id, owner core.ID) (*core.Item, error) {
	item, err := r.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.OwnerId != owner {
		return nil, storage.ErrNotFound
	}
	return item, nil
}

// GetItems retrieves multiple items by their IDs.
func (r *ItemRepository) GetItems(ctx context.Context, ids ...core.ID) ([]*core.Item, error) {
	var result []*core.Item
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeItemKey(id)
			item, err := r.readItem(tx, key)
			if err != nil {
				return err
			}
			if item != nil {
				result = append(result, item)
			}
		}
		return nil
	}, false)
	return result, err
}

// FindByOwner retrieves an owner's items matching the filter,
// ordered by creation time descending.
func (r *ItemRepository) FindByOwner(ctx context.Context, owner core.ID, filter storage.ItemFilter) ([]*core.Item, error) {
	var results []*core.Item
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Reverse iteration over the owner's index prefix yields
		// newest-first order.
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		prefix := makeOwnerPrefix(owner)

		// Seek past the last possible key for this owner.
		seekKey := make([]byte, len(prefix)+16)
		copy(seekKey, prefix)
		for i := len(prefix); i < len(seekKey); i++ {
			seekKey[i] = 0xFF
		}

		for iter.Seek(seekKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if !bytes.HasPrefix(key, prefix) {
				break
			}

			// Read the ID from the index
			var itemID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				itemID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full item
			item, err := r.readItem(tx, makeItemKey(itemID))
			if err != nil {
				return err
			}
			if item == nil || !matchesFilter(item, filter) {
				continue
			}

			results = append(results, item)
			if filter.Limit > 0 && len(results) >= filter.Limit {
				break
			}
		}
		return nil
	}, false)

	return results, err
}

// GetItemsByDateRange retrieves items within a time range across all owners.
func (r *ItemRepository) GetItemsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Item, error) {
	if start.Equal(end) {
		end = start.Add(1 * time.Microsecond)
	}

	var results []*core.Item
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialItemDateKey(start)
		endKey := makePartialItemDateKey(end)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if slices.Compare(key, endKey) > 0 {
				break
			}

			// Read the ID from the index
			var itemID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				itemID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full item
			item, err := r.readItem(tx, makeItemKey(itemID))
			if err != nil {
				return err
			}
			if item != nil {
				results = append(results, item)
			}
		}
		return nil
	}, false)

	return results, err
}

// readItem reads and unmarshals an item by key.
// Returns nil (no error) if the key does not exist.
func (r *ItemRepository) readItem(tx *badger.Txn, key []byte) (*core.Item, error) {
	entry, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var item *core.Item
	err = entry.Value(func(val []byte) error {
		var err error
		item, err = storage.UnmarshalItem(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// matchesFilter applies the store-level filter constraints to an item.
func matchesFilter(item *core.Item, filter storage.ItemFilter) bool {
	if filter.Type != 0 && item.Type != filter.Type {
		return false
	}
	if filter.RequireEmbedding && !item.HasEmbedding() {
		return false
	}
	if len(filter.Tags) > 0 {
		hit := false
		for _, tag := range filter.Tags {
			if item.HasTag(tag) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
