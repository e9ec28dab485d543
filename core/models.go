package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs. It is used to derive
// owner IDs from external principal names.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ItemType categorizes a stored content item.
type ItemType int

const (
	// ItemTypeNote is free-form text written by the owner.
	ItemTypeNote ItemType = iota + 1
	// ItemTypeWebsite is a saved link with scraped metadata.
	ItemTypeWebsite
	// ItemTypeSocial is a saved social media post.
	ItemTypeSocial
	// ItemTypeVideo is a saved video link.
	ItemTypeVideo
)

// String returns the lowercase name of the item type.
func (t ItemType) String() string {
	switch t {
	case ItemTypeNote:
		return "note"
	case ItemTypeWebsite:
		return "website"
	case ItemTypeSocial:
		return "social"
	case ItemTypeVideo:
		return "video"
	default:
		return "unknown"
	}
}

// ParseItemType maps a lowercase type name to an ItemType.
// Returns 0 and false for unrecognized names.
func ParseItemType(s string) (ItemType, bool) {
	switch s {
	case "note":
		return ItemTypeNote, true
	case "website":
		return ItemTypeWebsite, true
	case "social":
		return ItemTypeSocial, true
	case "video":
		return ItemTypeVideo, true
	default:
		return 0, false
	}
}

// ProcessingStatus tracks the enrichment lifecycle of an item.
// Items are created pending, picked up by the ingestion pipeline,
// and end up completed or failed.
type ProcessingStatus int

const (
	// StatusPending means the item has been stored but not enriched.
	StatusPending ProcessingStatus = iota + 1
	// StatusProcessing means enrichment is in flight.
	StatusProcessing
	// StatusCompleted means summary, keywords and embedding are populated.
	StatusCompleted
	// StatusFailed means enrichment gave up; StatusError holds the reason.
	StatusFailed
)

// SiteMetadata holds metadata scraped from a saved website.
type SiteMetadata struct {
	Description string
	Domain      string
}

// Item is an owned unit of content: a note, bookmark, social post or video.
// It may be enriched with a summary, keywords and an embedding during
// ingestion. The retrieval engine treats items as read-only.
type Item struct {
	Id          ID
	OwnerId     ID
	Type        ItemType
	Title       string
	Content     string
	Link        string
	Tags        []string
	Summary     string    // Populated by the summary processor
	Keywords    []string  // Populated by the summary processor
	Embedding   []float32 // Populated by the embedding processor; empty until then
	Site        SiteMetadata
	Status      ProcessingStatus
	StatusError string // Reason when Status == StatusFailed
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasEmbedding reports whether the item carries a non-empty embedding vector.
func (it *Item) HasEmbedding() bool {
	return len(it.Embedding) > 0
}

// EnrichmentText returns the text that summaries, keywords, and embeddings
// are derived from: the title and content when both are present, otherwise
// whichever is set. A bare bookmark enriches from its title alone.
func (it *Item) EnrichmentText() string {
	if it.Content == "" {
		return it.Title
	}
	if it.Title == "" {
		return it.Content
	}
	return it.Title + "\n\n" + it.Content
}

// HasTag reports whether the item carries the given tag.
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SearchResult represents a retrieval hit: the matched item and its
// relevance score. Vector-path scores are cosine similarities (optionally
// recency-boosted); lexical-path scores are heuristic values in [0,1].
type SearchResult struct {
	Item  *Item
	Score float64
}
