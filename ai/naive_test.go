package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaiveSummarize(t *testing.T) {
	n := NewNaiveSummarizer()
	ctx := context.Background()

	t.Run("first sentence", func(t *testing.T) {
		summary, err := n.Summarize(ctx, "Go is a compiled language. It was released in 2009.")
		require.NoError(t, err)
		assert.Equal(t, "Go is a compiled language.", summary)
	})

	t.Run("no sentence boundary", func(t *testing.T) {
		summary, err := n.Summarize(ctx, "notes on badger compaction")
		require.NoError(t, err)
		assert.Equal(t, "notes on badger compaction", summary)
	})

	t.Run("long sentence is truncated", func(t *testing.T) {
		summary, err := n.Summarize(ctx, strings.Repeat("word ", 100))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(summary), 203)
		assert.True(t, strings.HasSuffix(summary, "..."))
	})

	t.Run("empty content", func(t *testing.T) {
		summary, err := n.Summarize(ctx, "   ")
		require.NoError(t, err)
		assert.Empty(t, summary)
	})
}

func TestNaiveExtractKeywords(t *testing.T) {
	n := NewNaiveSummarizer()
	ctx := context.Background()

	t.Run("skips stop words and short words", func(t *testing.T) {
		keywords, err := n.ExtractKeywords(ctx, "The quick brown fox jumps over the lazy dog")
		require.NoError(t, err)
		assert.Equal(t, []string{"quick", "brown", "jumps", "over", "lazy"}, keywords)
	})

	t.Run("deduplicates in order of first appearance", func(t *testing.T) {
		keywords, err := n.ExtractKeywords(ctx, "badger badger compaction badger compaction")
		require.NoError(t, err)
		assert.Equal(t, []string{"badger", "compaction"}, keywords)
	})

	t.Run("caps at eight keywords", func(t *testing.T) {
		keywords, err := n.ExtractKeywords(ctx,
			"alpha bravo charlie delta echoes foxtrot golfing hotels india juliet")
		require.NoError(t, err)
		assert.Len(t, keywords, 8)
	})

	t.Run("empty content", func(t *testing.T) {
		keywords, err := n.ExtractKeywords(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, keywords)
	})
}
