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


package ai

import (
	"errors"
	"strings"
	"time"
)

// Endpoint identifies one OpenAI-compatible service.
type Endpoint struct {
	// Host is the base URL of the API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	Host string

	// Model is the model identifier to use at this endpoint.
	// Example: "embeddinggemma", "text-embedding-3-small", "jina-embeddings-v3"
	Model string

	// Token is the API key. Empty means the endpoint needs no authentication
	// (local Ollama, TEI, etc.).
	Token string
}

// Config holds configuration for AI service providers.
//
// Embedding and summary endpoints are ordered fallback chains: the first
// endpoint is always tried first, and later endpoints only serve requests
// when every endpoint before them failed.
type Config struct {
	// EmbeddingEndpoints are the text embedding services, in priority order.
	// An empty list disables semantic search entirely (searches degrade to
	// lexical matching).
	EmbeddingEndpoints []Endpoint

	// SummaryEndpoints are the summary/keyword services, in priority order.
	// An empty list means enrichment falls back to the offline summarizer.
	SummaryEndpoints []Endpoint

	// RequestTimeout bounds each individual provider call. A timeout counts
	// as a provider failure and moves the chain to the next endpoint.
	// Default: 30s
	RequestTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingEndpoint appends an embedding endpoint to the fallback chain.
func WithEmbeddingEndpoint(e Endpoint) ConfigOption {
	return func(c *Config) {
		c.EmbeddingEndpoints = append(c.EmbeddingEndpoints, e)
	}
}

// WithSummaryEndpoint appends a summary endpoint to the fallback chain.
func WithSummaryEndpoint(e Endpoint) ConfigOption {
	return func(c *Config) {
		c.SummaryEndpoints = append(c.SummaryEndpoints, e)
	}
}

// WithoutEmbedding clears the embedding chain, disabling semantic search.
func WithoutEmbedding() ConfigOption {
	return func(c *Config) {
		c.EmbeddingEndpoints = nil
	}
}

// WithRequestTimeout sets the per-call provider timeout.
func WithRequestTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.RequestTimeout = d
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingEndpoints: []Endpoint{
			{Host: defaultHost, Model: "embeddinggemma"},
		},
		SummaryEndpoints: []Endpoint{
			{Host: defaultHost, Model: "qwen2.5:3b"},
		},
		RequestTimeout: 30 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options. Endpoint options append to the default chains; use WithoutEmbedding
// to start from an empty embedding chain.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithEmbeddingEndpoint(ai.Endpoint{Host: "https://api.jina.ai/v1", Model: "jina-embeddings-v3", Token: key}),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	for i := range c.EmbeddingEndpoints {
		c.EmbeddingEndpoints[i].Host = normalizeHost(c.EmbeddingEndpoints[i].Host)
	}
	for i := range c.SummaryEndpoints {
		c.SummaryEndpoints[i].Host = normalizeHost(c.SummaryEndpoints[i].Host)
	}
}

func normalizeHost(host string) string {
	if host == "" || strings.HasSuffix(host, "/v1") {
		return host
	}
	return strings.TrimSuffix(host, "/") + "/v1"
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	// Normalize first to ensure hosts are in correct format
	c.Normalize()

	for _, e := range c.EmbeddingEndpoints {
		if e.Host == "" {
			return errors.New("ai config: embedding endpoint host is required")
		}
		if e.Model == "" {
			return errors.New("ai config: embedding endpoint model is required")
		}
	}
	for _, e := range c.SummaryEndpoints {
		if e.Host == "" {
			return errors.New("ai config: summary endpoint host is required")
		}
		if e.Model == "" {
			return errors.New("ai config: summary endpoint model is required")
		}
	}
	if c.RequestTimeout < 0 {
		return errors.New("ai config: request timeout must not be negative")
	}
	return nil
}
