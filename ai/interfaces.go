package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)

	// Name identifies the provider for logging (e.g. "embeddinggemma@localhost").
	Name() string
}

// Summarizer produces human-readable summaries and keywords from content.
// Implementations must be thread-safe for concurrent use.
type Summarizer interface {
	// Summarize produces a concise 2-3 sentence summary of the content.
	// Returns an error if generation fails.
	Summarize(ctx context.Context, content string) (string, error)

	// ExtractKeywords extracts 5-8 relevant lowercase keywords from the content.
	// Returns an empty slice if no keywords can be found.
	// Returns an error if generation fails.
	ExtractKeywords(ctx context.Context, content string) ([]string, error)

	// Name identifies the provider for logging.
	Name() string
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Summarizer instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Summarizer returns the summary/keyword service.
	// The returned Summarizer is safe for concurrent use.
	Summarizer() Summarizer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
