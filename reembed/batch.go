package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/recall/ai"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/storage"
)

// BatchProcessor handles embedding generation for batches of items.
type BatchProcessor struct {
	repo           storage.ItemRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.ItemRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates embeddings for a batch of items and updates them in the
// database. Vectors are normalized after embedding to ensure compatibility
// with cosine similarity. An all-empty batch from the embedder chain means
// no provider is reachable; that fails the run rather than silently wiping
// every existing embedding.
func (bp *BatchProcessor) Process(ctx context.Context, items []*core.Item) error {
	if len(items) == 0 {
		return nil
	}

	// Extract text content
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.EnrichmentText()
	}

	// Generate embeddings with retry
	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return err
		}
		if allEmpty(embeddings) {
			return ErrEmbeddingUnavailable
		}
		return nil
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(items) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(items), len(embeddings))
	}

	// Normalize vectors and assign to items
	for i := range items {
		if len(embeddings[i]) == 0 {
			continue
		}
		items[i].Embedding = NormalizeVector(embeddings[i])
	}

	// Update items in database
	_, err = bp.repo.UpdateItems(ctx, items...)
	if err != nil {
		return fmt.Errorf("failed to update items: %w", err)
	}

	return nil
}

func allEmpty(vectors [][]float32) bool {
	for _, v := range vectors {
		if len(v) > 0 {
			return false
		}
	}
	return true
}
