package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/recall/ai"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/storage"
)

// summaryProcessor fills Summary and Keywords on freshly ingested items and
// moves them from pending to processing.
type summaryProcessor struct {
	items      storage.ItemRepository
	summarizer ai.Summarizer
	logger     *slog.Logger
}

var _ processor = (*summaryProcessor)(nil)

// newSummaryProcessor creates a new summary processor.
func newSummaryProcessor(items storage.ItemRepository, summarizer ai.Summarizer, logger *slog.Logger) (processor, error) {
	if items == nil {
		return nil, fmt.Errorf("item repository required")
	}
	if summarizer == nil {
		return nil, fmt.Errorf("summarizer required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &summaryProcessor{
		items:      items,
		summarizer: summarizer,
		logger:     logger.With("processor", "summary"),
	}, nil
}

// process generates summaries and keywords for the specified items.
func (sp *summaryProcessor) process(ctx context.Context, ids ...core.ID) error {
	sp.logger.Info("processing items for summaries", "items", len(ids))

	items, err := sp.items.GetItems(ctx, ids...)
	if err != nil {
		sp.logger.Error("error retrieving items", "err", err)
		return err
	}
	if len(items) == 0 {
		return nil
	}

	for _, item := range items {
		item.Status = core.StatusProcessing
	}
	if _, err := sp.items.UpdateItems(ctx, items...); err != nil {
		return err
	}

	for _, item := range items {
		text := item.EnrichmentText()
		if text == "" {
			continue
		}

		summary, err := sp.summarizer.Summarize(ctx, text)
		if err != nil {
			sp.logger.Error("error generating summary", "item", item.Id, "err", err)
			return err
		}
		keywords, err := sp.summarizer.ExtractKeywords(ctx, text)
		if err != nil {
			sp.logger.Error("error extracting keywords", "item", item.Id, "err", err)
			return err
		}

		item.Summary = summary
		item.Keywords = keywords
	}

	_, err = sp.items.UpdateItems(ctx, items...)
	return err
}
