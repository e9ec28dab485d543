package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("alice")
		id2 := IDFromContent("alice")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content different ids", func(t *testing.T) {
		id1 := IDFromContent("alice")
		id2 := IDFromContent("bob")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content", func(t *testing.T) {
		id := IDFromContent("")
		assert.NotZero(t, id)
	})
}

func TestItemTypeString(t *testing.T) {
	tests := []struct {
		itemType ItemType
		expected string
	}{
		{ItemTypeNote, "note"},
		{ItemTypeWebsite, "website"},
		{ItemTypeSocial, "social"},
		{ItemTypeVideo, "video"},
		{ItemType(0), "unknown"},
		{ItemType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.itemType.String())
		})
	}
}

func TestParseItemType(t *testing.T) {
	for _, typ := range []ItemType{ItemTypeNote, ItemTypeWebsite, ItemTypeSocial, ItemTypeVideo} {
		parsed, ok := ParseItemType(typ.String())
		assert.True(t, ok)
		assert.Equal(t, typ, parsed)
	}

	_, ok := ParseItemType("bookmark")
	assert.False(t, ok)
}

func TestItemHasEmbedding(t *testing.T) {
	item := &Item{}
	assert.False(t, item.HasEmbedding())

	item.Embedding = []float32{}
	assert.False(t, item.HasEmbedding())

	item.Embedding = []float32{0.1, 0.2}
	assert.True(t, item.HasEmbedding())
}

func TestItemHasTag(t *testing.T) {
	item := &Item{Tags: []string{"golang", "search"}}
	assert.True(t, item.HasTag("golang"))
	assert.True(t, item.HasTag("search"))
	assert.False(t, item.HasTag("Golang"))
	assert.False(t, item.HasTag("rust"))
}
