package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/recall/core"
)

// Key prefixes for different data types
const (
	itemRecordPrefix = "itmrec"
	itemOwnerPrefix  = "itmown"
	itemDatePrefix   = "itmdat"
	itemIDSeq        = "itmseq"
)

// makeItemKey generates a key for an item by ID.
func makeItemKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", itemRecordPrefix, id))
}

// makeOwnerKey generates a composite key for the owner index.
// Format: prefix:ownerID:createdAt:itemID. Keys sort by owner then
// creation time, so a reverse iteration over an owner's prefix yields
// items in creation-time descending order.
func makeOwnerKey(owner core.ID, createdAt time.Time, id core.ID) []byte {
	prefix := itemOwnerPrefix + ":"
	buf := make([]byte, len(prefix)+24)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(owner))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeOwnerPrefix generates the key prefix covering all of an owner's
// index entries.
func makeOwnerPrefix(owner core.ID) []byte {
	prefix := itemOwnerPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(owner))
	return buf
}

// makeItemDateKey generates a composite key for the cross-owner date index.
// Format: prefix:createdAt:itemID
func makeItemDateKey(createdAt time.Time, id core.ID) []byte {
	prefix := itemDatePrefix + ":"
	buf := make([]byte, len(prefix)+16)
	offset := copy(buf, prefix)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialItemDateKey generates a partial key for date range queries.
// Format: prefix:createdAt
func makePartialItemDateKey(createdAt time.Time) []byte {
	prefix := itemDatePrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(createdAt.UnixMicro()))
	return buf
}
