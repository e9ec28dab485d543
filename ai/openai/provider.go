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


package openai

import (
	"log/slog"

	"github.com/poiesic/recall/ai"
)

// Provider implements ai.AIProvider using OpenAI-compatible services.
// Each configured endpoint becomes one link in a provider chain; the
// chains try endpoints in order and degrade gracefully when all fail.
// The summarizer chain always ends with the offline naive summarizer so
// ingestion keeps working with no model reachable at all.
type Provider struct {
	config     *ai.Config
	embedder   *ai.ChainEmbedder
	summarizer *ai.ChainSummarizer
	logger     *slog.Logger
}

// NewProvider creates a new AI provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns ai.AIProvider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.Normalize()

	embedders := make([]ai.Embedder, 0, len(config.EmbeddingEndpoints))
	for _, endpoint := range config.EmbeddingEndpoints {
		embedder, err := newEmbedder(endpoint)
		if err != nil {
			return nil, err
		}
		embedders = append(embedders, embedder)
	}

	summarizers := make([]ai.Summarizer, 0, len(config.SummaryEndpoints)+1)
	for _, endpoint := range config.SummaryEndpoints {
		summarizer, err := newSummarizer(endpoint)
		if err != nil {
			return nil, err
		}
		summarizers = append(summarizers, summarizer)
	}
	summarizers = append(summarizers, ai.NewNaiveSummarizer())

	return &Provider{
		config:     config,
		embedder:   ai.NewChainEmbedder(config.RequestTimeout, embedders...),
		summarizer: ai.NewChainSummarizer(config.RequestTimeout, summarizers...),
		logger:     slog.Default().With("component", "openai-provider"),
	}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Summarizer returns the summarization and keyword extraction service.
func (p *Provider) Summarizer() ai.Summarizer {
	return p.summarizer
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
