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


package recall

import (
	"io"
	"log/slog"

	"github.com/poiesic/recall/ai"
	"github.com/poiesic/recall/ai/openai"
	"github.com/poiesic/recall/ingestion"
	"github.com/poiesic/recall/reembed"
	"github.com/poiesic/recall/search"
	"github.com/poiesic/recall/storage"
	"github.com/poiesic/recall/storage/badger"
)

// Vault is the top level handle for a second brain database. It owns the
// storage backend, the item repository, and the AI provider, and hands out
// the ingestion, search, and reembedding services built on top of them.
type Vault struct {
	backend  *badger.Backend
	itemRepo storage.ItemRepository
	provider ai.AIProvider
	logger   *slog.Logger
}

// VaultOption configures a Vault.
type VaultOption func(*vaultOptions)

type vaultOptions struct {
	aiConfig *ai.Config
	inMemory bool
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(config *ai.Config) VaultOption {
	return func(o *vaultOptions) {
		o.aiConfig = config
	}
}

// WithInMemoryStorage keeps all data in memory. Useful for tests and
// throwaway sessions; nothing survives Close.
func WithInMemoryStorage() VaultOption {
	return func(o *vaultOptions) {
		o.inMemory = true
	}
}

// Open opens (creating if necessary) a vault at the given path.
func Open(filePath string, opts ...VaultOption) (*Vault, error) {
	// Apply options
	options := &vaultOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create item repository
	itemRepo, err := badger.NewItemRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		itemRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Vault{
		backend:  backend,
		itemRepo: itemRepo,
		provider: provider,
		logger:   slog.Default(),
	}, nil
}

func (v *Vault) Close() error {
	// Close AI provider first
	if err := v.provider.Close(); err != nil {
		v.logger.Error("error closing AI provider", "err", err)
	}

	// Close repository
	if err := v.itemRepo.Close(); err != nil {
		v.logger.Error("error closing item repository", "err", err)
		return err
	}

	// Close backend
	if err := v.backend.Close(); err != nil {
		v.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (v *Vault) ItemRepository() storage.ItemRepository {
	return v.itemRepo
}

func (v *Vault) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(v.itemRepo, v.provider, opts...)
}

func (v *Vault) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(v.itemRepo, v.provider, opts...)
}

// NewReembedder returns a reembedder that regenerates every item's
// embedding with the vault's current provider chain. progress receives
// human readable status output.
func (v *Vault) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(v.itemRepo, v.provider.Embedder(), config, progress)
}
