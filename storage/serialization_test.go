package storage

import (
	"testing"
	"time"

	"github.com/poiesic/recall/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("alice")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestMarshalUnmarshalItem(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	item := &core.Item{
		Id:        core.ID(7),
		OwnerId:   core.IDFromContent("alice"),
		Type:      core.ItemTypeWebsite,
		Title:     "Go documentation",
		Content:   "The Go programming language reference",
		Link:      "https://go.dev/doc",
		Tags:      []string{"golang", "reference"},
		Summary:   "Official Go docs",
		Keywords:  []string{"go", "documentation"},
		Embedding: []float32{0.25, -0.5, 0.75},
		Site: core.SiteMetadata{
			Description: "The Go programming language",
			Domain:      "go.dev",
		},
		Status:    core.StatusCompleted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	data := MarshalItem(item)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalItem(data)
	require.NoError(t, err)
	assert.Equal(t, item.Id, decoded.Id)
	assert.Equal(t, item.OwnerId, decoded.OwnerId)
	assert.Equal(t, item.Type, decoded.Type)
	assert.Equal(t, item.Title, decoded.Title)
	assert.Equal(t, item.Tags, decoded.Tags)
	assert.Equal(t, item.Embedding, decoded.Embedding)
	assert.Equal(t, item.Site, decoded.Site)
	assert.Equal(t, item.Status, decoded.Status)
	assert.True(t, item.CreatedAt.Equal(decoded.CreatedAt))
}

func TestUnmarshalItem_Truncated(t *testing.T) {
	item := &core.Item{
		Id:      core.ID(1),
		OwnerId: core.ID(2),
		Type:    core.ItemTypeNote,
		Title:   "note",
		Status:  core.StatusPending,
	}

	data := MarshalItem(item)
	require.Greater(t, len(data), 2)

	_, err := UnmarshalItem(data[:len(data)/2])
	assert.Error(t, err)
}
