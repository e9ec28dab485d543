package ingestion

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/recall/ai"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/storage"
)

// Pipeline orchestrates the ingestion and enrichment of items.
// It manages concurrent processing of summaries, keywords, and embeddings.
type Pipeline struct {
	items         storage.ItemRepository
	summaryPool   *ants.Pool
	embeddingPool *ants.Pool
	summaryProc   processor
	embeddingProc processor
	logger        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pools
		if p.summaryPool != nil {
			p.summaryPool.Release()
		}
		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		// Create new pools
		summaryPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		embeddingPool, err := ants.NewPool(size)
		if err != nil {
			summaryPool.Release()
			return err
		}

		p.summaryPool = summaryPool
		p.embeddingPool = embeddingPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	itemRepository storage.ItemRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if itemRepository == nil {
		return nil, ErrItemRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	// Default logger
	logger := slog.Default()

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	summaryPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	embeddingPool, err := ants.NewPool(poolSize)
	if err != nil {
		summaryPool.Release()
		return nil, err
	}

	// Create pipeline with defaults
	p := &Pipeline{
		items:         itemRepository,
		summaryPool:   summaryPool,
		embeddingPool: embeddingPool,
		logger:        logger,
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Create processors after options are applied (so they get final config)
	summaryProc, err := newSummaryProcessor(itemRepository, provider.Summarizer(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}

	embeddingProc, err := newEmbeddingProcessor(itemRepository, provider.Embedder(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}

	p.summaryProc = summaryProc
	p.embeddingProc = embeddingProc

	return p, nil
}

// Ingest validates and stores items in pending status, then enriches them
// asynchronously: the summary stage fills Summary/Keywords, the embedding
// stage fills Embedding and completes the lifecycle. Items end in completed
// status, or failed with StatusError set when an enrichment stage errors.
// Errors during async processing are logged but do not fail the ingestion.
// Returns the items with generated IDs and timestamps populated.
func (p *Pipeline) Ingest(ctx context.Context, items ...*core.Item) ([]*core.Item, error) {
	if len(items) == 0 {
		return nil, nil
	}

	for _, item := range items {
		if err := core.ValidateItem(item); err != nil {
			return nil, err
		}
		item.Status = core.StatusPending
		item.StatusError = ""
	}

	added, err := p.items.AddItems(ctx, items...)
	if err != nil {
		return nil, err
	}

	// Extract IDs
	ids := make([]core.ID, len(added))
	for i, item := range added {
		ids[i] = item.Id
	}

	// Submit for async processing. The embedding stage runs after the
	// summary stage so the two never race on the same records.
	p.summaryPool.Submit(func() {
		ctx := context.Background()
		if err := p.summaryProc.process(ctx, ids...); err != nil {
			p.logger.Error("error processing summaries", "err", err)
			p.markFailed(ctx, err, ids...)
			return
		}

		submitErr := p.embeddingPool.Submit(func() {
			ctx := context.Background()
			if err := p.embeddingProc.process(ctx, ids...); err != nil {
				p.logger.Error("error processing embeddings", "err", err)
				p.markFailed(ctx, err, ids...)
			}
		})
		if submitErr != nil {
			p.logger.Error("error submitting embedding stage", "err", submitErr)
			p.markFailed(ctx, submitErr, ids...)
		}
	})

	return added, nil
}

// markFailed transitions items to failed status with the error recorded.
func (p *Pipeline) markFailed(ctx context.Context, cause error, ids ...core.ID) {
	items, err := p.items.GetItems(ctx, ids...)
	if err != nil {
		p.logger.Error("error retrieving items to mark failed", "err", err)
		return
	}
	for _, item := range items {
		item.Status = core.StatusFailed
		item.StatusError = cause.Error()
	}
	if _, err := p.items.UpdateItems(ctx, items...); err != nil {
		p.logger.Error("error marking items failed", "err", err)
	}
}

// Release releases resources including worker pools.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.summaryPool != nil {
		p.summaryPool.Release()
	}
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}
