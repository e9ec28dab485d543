package reembed

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when maxAttempts is <= 0
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")

	// ErrEmbeddingUnavailable is returned when the embedder produced no
	// vectors for a batch, which would wipe existing embeddings.
	ErrEmbeddingUnavailable = errors.New("embedder returned no vectors")
)
