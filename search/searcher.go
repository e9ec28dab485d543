// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/recall/ai"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/storage"
)

const (
	// defaultLimit applies when a query does not set one.
	defaultLimit = 10

	// parallelScoringThreshold is the candidate count above which
	// similarity scoring fans out across the worker pool.
	parallelScoringThreshold = 64

	// scoringChunkSize is the number of candidates per scoring task.
	scoringChunkSize = 32
)

// Query describes one retrieval request. It is a transient value, never
// persisted.
type Query struct {
	// Text is the free-text query. Empty text is tolerated: the lexical
	// matcher simply matches nothing.
	Text string

	// Owner scopes the search to one user's collection.
	Owner core.ID

	// Limit caps the result count. Values <= 0 fall back to a default.
	Limit int

	// Type restricts results to one item type when non-zero.
	Type core.ItemType

	// Tags restricts results to items carrying at least one of the tags.
	Tags []string
}

// Searcher provides hybrid semantic and lexical retrieval over items.
type Searcher struct {
	items    storage.ItemRepository
	embedder ai.Embedder
	config   Config
	pool     *ants.Pool
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithConfig sets the ranking parameters.
// Default is DefaultConfig().
func WithConfig(cfg Config) Option {
	return func(s *Searcher) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		s.config = cfg
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	itemRepository storage.ItemRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Searcher, error) {
	if itemRepository == nil {
		return nil, ErrItemRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		items:    itemRepository,
		embedder: provider.Embedder(),
		config:   DefaultConfig(),
		logger:   slog.Default().With("component", "searcher"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	pool, err := ants.NewPool(runtime.NumCPU())
	if err != nil {
		return nil, err
	}
	s.pool = pool

	return s, nil
}

// Close releases the scoring worker pool.
func (s *Searcher) Close() error {
	if s.pool != nil {
		s.pool.Release()
	}
	return nil
}

// Search runs a hybrid search: semantic ranking when an embedding is
// available, lexical matching otherwise, merged into one list.
// Returns up to the query limit of results, ranked by relevance.
func (s *Searcher) Search(ctx context.Context, query Query) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor runs a hybrid search with monitoring. The monitor
// receives callbacks at each stage of the search process.
//
// The vector path degrades to lexical matching whenever it cannot proceed:
// no embedding for the query, no embedded candidates, nothing above the
// similarity floor, or a fetch failure. Each degradation is logged where it
// happens and reported to the monitor. A store failure on the lexical path
// is the only hard failure surfaced to the caller; cancellation of ctx is
// propagated distinctly so callers can tell an aborted query from an empty
// result.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query Query, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if query.Limit <= 0 {
		query.Limit = defaultLimit
	}

	monitor.Start(query)
	now := time.Now().UTC()

	// 1. Obtain a query embedding. The chain swallows provider failures,
	// so an error here is cancellation.
	embedding, err := s.embedder.EmbedText(ctx, query.Text)
	if err != nil {
		return nil, err
	}
	monitor.AfterEmbedding(embedding)

	if len(embedding) == 0 {
		s.logger.Warn("semantic search unavailable, degrading to lexical", "owner", query.Owner)
		monitor.Degraded("embedding unavailable")
		return s.lexicalOnly(ctx, query, monitor, now)
	}

	// 2. Fetch the owner's embedded candidates.
	candidates, err := s.items.FindByOwner(ctx, query.Owner, storage.ItemFilter{
		Type:             query.Type,
		Tags:             query.Tags,
		RequireEmbedding: true,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("embedded candidate fetch failed, degrading to lexical", "err", err)
		monitor.Degraded("candidate fetch failed")
		return s.lexicalOnly(ctx, query, monitor, now)
	}
	if len(candidates) == 0 {
		s.logger.Debug("no embedded candidates, degrading to lexical", "owner", query.Owner)
		monitor.Degraded("no embedded items")
		return s.lexicalOnly(ctx, query, monitor, now)
	}

	// 3. Score candidates against the query embedding.
	vector := s.scoreVector(embedding, candidates, now, query.Limit)
	monitor.AfterVectorSearch(vector)

	if len(vector) == 0 {
		s.logger.Debug("no candidates above similarity floor, degrading to lexical",
			"floor", s.config.MinSimilarity, "candidates", len(candidates))
		monitor.Degraded("no candidates above similarity floor")
		return s.lexicalOnly(ctx, query, monitor, now)
	}

	// 4. Merge in lexical results. The vector set already carries the
	// stronger relevance signal, so a lexical failure here costs only the
	// supplemental hits.
	lexical, err := s.lexicalSearch(ctx, query, now)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("lexical search failed during merge", "err", err)
		lexical = nil
	}
	monitor.AfterLexicalSearch(lexical)

	merged := mergeResults(vector, lexical, query.Limit)
	monitor.Finish(merged)
	return merged, nil
}

// SearchByTags returns the owner's items carrying at least one of the given
// tags, ordered by creation time descending.
func (s *Searcher) SearchByTags(ctx context.Context, owner core.ID, tags []string, limit int) ([]*core.Item, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.items.FindByOwner(ctx, owner, storage.ItemFilter{Tags: tags, Limit: limit})
}

// SearchByType returns the owner's items of the given type, ordered by
// creation time descending.
func (s *Searcher) SearchByType(ctx context.Context, owner core.ID, itemType core.ItemType, limit int) ([]*core.Item, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.items.FindByOwner(ctx, owner, storage.ItemFilter{Type: itemType, Limit: limit})
}

// Similar ranks the owner's other embedded items by cosine similarity to
// the reference item. No similarity floor and no recency boost apply: this
// answers "most similar", not "relevant enough". An item without an
// embedding has no neighbors, which is an empty result rather than an
// error.
func (s *Searcher) Similar(ctx context.Context, itemId, owner core.ID, limit int) ([]*core.SearchResult, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	reference, err := s.items.GetOwnedItem(ctx, itemId, owner)
	if err != nil {
		return nil, err
	}
	if !reference.HasEmbedding() {
		s.logger.Debug("reference item has no embedding", "item", reference.Id)
		return []*core.SearchResult{}, nil
	}

	candidates, err := s.items.FindByOwner(ctx, owner, storage.ItemFilter{RequireEmbedding: true})
	if err != nil {
		return nil, err
	}

	results := make([]*core.SearchResult, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Id == reference.Id {
			continue
		}
		results = append(results, &core.SearchResult{
			Item:  candidate,
			Score: Cosine(reference.Embedding, candidate.Embedding),
		})
	}

	sortByScore(results)
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// lexicalOnly is the terminal degradation path: the lexical result set is
// the answer. A store failure here has no further fallback and propagates.
func (s *Searcher) lexicalOnly(ctx context.Context, query Query, monitor SearchMonitor, now time.Time) ([]*core.SearchResult, error) {
	results, err := s.lexicalSearch(ctx, query, now)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Error("lexical search failed", "err", err)
		return nil, err
	}
	monitor.AfterLexicalSearch(results)
	monitor.Finish(results)
	return results, nil
}

// lexicalSearch runs the heuristic matcher: build query variants, filter the
// owner's items down to candidates (over-fetching a multiple of the limit to
// leave room for re-ranking), score, sort, truncate.
func (s *Searcher) lexicalSearch(ctx context.Context, query Query, now time.Time) ([]*core.SearchResult, error) {
	variants := buildVariants(query.Text)
	if variants.empty() {
		return []*core.SearchResult{}, nil
	}

	items, err := s.items.FindByOwner(ctx, query.Owner, storage.ItemFilter{
		Type: query.Type,
		Tags: query.Tags,
	})
	if err != nil {
		return nil, err
	}

	maxCandidates := query.Limit * s.config.Overfetch
	candidates := make([]*core.Item, 0, maxCandidates)
	for _, item := range items {
		if matchesVariants(item, variants) {
			candidates = append(candidates, item)
			if len(candidates) == maxCandidates {
				break
			}
		}
	}

	results := make([]*core.SearchResult, 0, len(candidates))
	for _, item := range candidates {
		results = append(results, &core.SearchResult{
			Item:  item,
			Score: scoreLexical(item, variants, s.config, now),
		})
	}

	sortByScore(results)
	if len(results) > query.Limit {
		results = results[:query.Limit]
	}
	return results, nil
}

// scoreVector computes similarity scores for the embedded candidates,
// drops those below the floor, and returns the top results. Large candidate
// sets fan out across the worker pool; scores land in a positional slice so
// parallelism never changes ordering, and the sort stays a single final
// step.
func (s *Searcher) scoreVector(embedding []float32, candidates []*core.Item, now time.Time, limit int) []*core.SearchResult {
	similarities := make([]float64, len(candidates))

	if len(candidates) >= parallelScoringThreshold {
		var wg sync.WaitGroup
		for start := 0; start < len(candidates); start += scoringChunkSize {
			end := min(start+scoringChunkSize, len(candidates))
			chunk := candidates[start:end]
			out := similarities[start:end]

			wg.Add(1)
			task := func() {
				defer wg.Done()
				for i, candidate := range chunk {
					out[i] = Cosine(embedding, candidate.Embedding)
				}
			}
			if err := s.pool.Submit(task); err != nil {
				task()
			}
		}
		wg.Wait()
	} else {
		for i, candidate := range candidates {
			similarities[i] = Cosine(embedding, candidate.Embedding)
		}
	}

	results := make([]*core.SearchResult, 0, len(candidates))
	for i, candidate := range candidates {
		// The floor applies to the raw similarity: recency never rescues
		// an item that fails the relevance floor.
		similarity := similarities[i]
		if similarity < s.config.MinSimilarity {
			continue
		}

		score := similarity
		if s.config.RecencyWeight > 0 {
			score += s.config.RecencyWeight * RecencyBoost(candidate.CreatedAt, now, s.config.RecencyHalfLifeDays)
		}
		results = append(results, &core.SearchResult{Item: candidate, Score: score})
	}

	sortByScore(results)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// mergeResults combines the two ranked sets: vector hits first in vector
// order, then lexical hits not already present, capped at limit. Vector
// hits always outrank lexical-only hits.
func mergeResults(vector, lexical []*core.SearchResult, limit int) []*core.SearchResult {
	merged := make([]*core.SearchResult, 0, limit)
	seen := make(map[core.ID]bool, limit)

	for _, result := range vector {
		if len(merged) == limit {
			return merged
		}
		merged = append(merged, result)
		seen[result.Item.Id] = true
	}
	for _, result := range lexical {
		if len(merged) == limit {
			break
		}
		if seen[result.Item.Id] {
			continue
		}
		merged = append(merged, result)
	}
	return merged
}

// sortByScore orders results by descending score. The sort is stable so
// ties keep the store's creation-time ordering.
func sortByScore(results []*core.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
