package ai

import (
	"context"
	"log/slog"
	"time"
)

// ChainEmbedder tries an ordered list of embedding providers until one
// succeeds. Any provider error (network, auth, quota, timeout) is logged and
// swallowed; the chain simply advances to the next provider. When every
// provider has failed, or the chain is empty, EmbedText returns an empty
// vector and a nil error: "semantic search unavailable" is a valid outcome,
// not a fault.
//
// Cancellation of the caller's context is the single exception: it is
// returned as an error so callers can distinguish an aborted query from an
// empty result.
type ChainEmbedder struct {
	providers []Embedder
	timeout   time.Duration
	logger    *slog.Logger
}

var _ Embedder = (*ChainEmbedder)(nil)

// NewChainEmbedder creates an embedder chain over the given providers,
// tried in order. timeout bounds each individual provider call; 0 means
// no per-call bound beyond the caller's context.
func NewChainEmbedder(timeout time.Duration, providers ...Embedder) *ChainEmbedder {
	return &ChainEmbedder{
		providers: providers,
		timeout:   timeout,
		logger:    slog.Default().With("component", "embedder-chain"),
	}
}

// EmbedText generates an embedding via the first provider that succeeds.
// Returns an empty vector (nil error) when no provider is available.
func (c *ChainEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vector, err := c.callOne(ctx, func(cctx context.Context) ([]float32, error) {
			return p.EmbedText(cctx, text)
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn("embedding provider failed, trying next", "provider", p.Name(), "err", err)
			continue
		}
		if len(vector) == 0 {
			c.logger.Warn("embedding provider returned empty vector, trying next", "provider", p.Name())
			continue
		}
		return vector, nil
	}

	c.logger.Warn("no embedding provider available", "providers", len(c.providers))
	return []float32{}, nil
}

// EmbedTexts generates embeddings for a batch via the first provider that
// succeeds for the whole batch. Partial results from a failing provider are
// discarded rather than merged across providers, so every vector in a batch
// shares one provider's dimensionality.
func (c *ChainEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vectors, err := c.callMany(ctx, func(cctx context.Context) ([][]float32, error) {
			return p.EmbedTexts(cctx, texts)
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn("embedding provider failed, trying next", "provider", p.Name(), "err", err)
			continue
		}
		if len(vectors) != len(texts) {
			c.logger.Warn("embedding provider returned short batch, trying next",
				"provider", p.Name(), "expected", len(texts), "received", len(vectors))
			continue
		}
		return vectors, nil
	}

	c.logger.Warn("no embedding provider available", "providers", len(c.providers))
	empty := make([][]float32, len(texts))
	for i := range empty {
		empty[i] = []float32{}
	}
	return empty, nil
}

// Name identifies the chain for logging.
func (c *ChainEmbedder) Name() string {
	return "chain"
}

func (c *ChainEmbedder) callOne(ctx context.Context, fn func(context.Context) ([]float32, error)) ([]float32, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return fn(ctx)
}

func (c *ChainEmbedder) callMany(ctx context.Context, fn func(context.Context) ([][]float32, error)) ([][]float32, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return fn(ctx)
}

// ChainSummarizer applies the same ordered-fallback policy to summary and
// keyword generation. Construct it with a NaiveSummarizer as the last
// provider to guarantee enrichment always produces something.
type ChainSummarizer struct {
	providers []Summarizer
	timeout   time.Duration
	logger    *slog.Logger
}

var _ Summarizer = (*ChainSummarizer)(nil)

// NewChainSummarizer creates a summarizer chain over the given providers,
// tried in order.
func NewChainSummarizer(timeout time.Duration, providers ...Summarizer) *ChainSummarizer {
	return &ChainSummarizer{
		providers: providers,
		timeout:   timeout,
		logger:    slog.Default().With("component", "summarizer-chain"),
	}
}

// Summarize produces a summary via the first provider that succeeds.
// Returns an empty string (nil error) when no provider is available.
func (c *ChainSummarizer) Summarize(ctx context.Context, content string) (string, error) {
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		cctx, cancel := c.bound(ctx)
		summary, err := p.Summarize(cctx, content)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			c.logger.Warn("summary provider failed, trying next", "provider", p.Name(), "err", err)
			continue
		}
		return summary, nil
	}

	c.logger.Warn("no summary provider available", "providers", len(c.providers))
	return "", nil
}

// ExtractKeywords extracts keywords via the first provider that succeeds.
// Returns an empty slice (nil error) when no provider is available.
func (c *ChainSummarizer) ExtractKeywords(ctx context.Context, content string) ([]string, error) {
	for _, p := range c.providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cctx, cancel := c.bound(ctx)
		keywords, err := p.ExtractKeywords(cctx, content)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn("keyword provider failed, trying next", "provider", p.Name(), "err", err)
			continue
		}
		return keywords, nil
	}

	c.logger.Warn("no keyword provider available", "providers", len(c.providers))
	return []string{}, nil
}

// Name identifies the chain for logging.
func (c *ChainSummarizer) Name() string {
	return "chain"
}

func (c *ChainSummarizer) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}
