package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/recall/ai"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/storage"
)

// embeddingProcessor generates embeddings for items and completes the
// status lifecycle.
type embeddingProcessor struct {
	items    storage.ItemRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

var _ processor = (*embeddingProcessor)(nil)

// newEmbeddingProcessor creates a new embedding processor.
func newEmbeddingProcessor(items storage.ItemRepository, embedder ai.Embedder, logger *slog.Logger) (processor, error) {
	if items == nil {
		return nil, fmt.Errorf("item repository required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embeddingProcessor{
		items:    items,
		embedder: embedder,
		logger:   logger.With("processor", "embeddings"),
	}, nil
}

// process generates embeddings for the specified items and marks them
// completed. An empty vector from the embedder chain means semantic
// infrastructure is down; the item still completes, just without an
// embedding, and a later reembed pass can fill it in.
func (ep *embeddingProcessor) process(ctx context.Context, ids ...core.ID) error {
	ep.logger.Info("processing items for embeddings", "items", len(ids))

	items, err := ep.items.GetItems(ctx, ids...)
	if err != nil {
		ep.logger.Error("error retrieving items", "err", err)
		return err
	}
	if len(items) == 0 {
		return nil
	}

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.EnrichmentText()
	}

	ep.logger.Debug("generating embeddings for items", "items", len(texts))
	embeddings, err := ep.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		ep.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(embeddings) != len(items) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(items), len(embeddings))
	}

	for i, item := range items {
		if len(embeddings[i]) > 0 {
			item.Embedding = embeddings[i]
		}
		item.Status = core.StatusCompleted
		item.StatusError = ""
	}

	_, err = ep.items.UpdateItems(ctx, items...)
	return err
}
