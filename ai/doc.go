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


// Package ai provides abstractions for AI services used in Recall.
//
// This package defines interfaces for AI operations: text embeddings for
// semantic search, and summary/keyword generation for content enrichment.
// It follows the dependency inversion principle, allowing the retrieval
// engine and ingestion pipeline to depend on abstractions rather than
// concrete implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - Embedder: Generates vector embeddings from text
//   - Summarizer: Produces summaries and keywords from content
//   - AIProvider: Aggregates AI services for convenient initialization
//
// # Provider Chains
//
// Production deployments rarely rely on a single AI service. ChainEmbedder
// and ChainSummarizer wrap an ordered list of providers and try each in
// turn, logging and swallowing individual provider failures. A fully failed
// embedding chain yields an empty vector, which callers treat as "semantic
// search unavailable" rather than an error; a summarizer chain is normally
// terminated with NaiveSummarizer so enrichment always produces output.
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation for OpenAI-compatible APIs
//     (OpenAI, Jina, Ollama, TEI, LocalAI, ...)
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, etc.) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns ai.AIProvider
//
// Test utility constructors (mock.NewMockEmbedder, mock.NewMockSummarizer)
// return CONCRETE types to enable test assertions and behavior injection via
// the mock's public fields (CallCount, EmbedTextFunc, etc.).
//
// # Usage Example
//
//	config := ai.NewConfig(
//	    ai.WithEmbeddingEndpoint(ai.Endpoint{Host: "https://api.jina.ai/v1", Model: "jina-embeddings-v3", Token: key}),
//	)
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vector, err := provider.Embedder().EmbedText(ctx, "hello world")
package ai
