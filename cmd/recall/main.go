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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/recall"
	"github.com/poiesic/recall/ai"
	"github.com/poiesic/recall/ai/openai"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/reembed"
	"github.com/poiesic/recall/search"
	"github.com/poiesic/recall/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "recall",
		Usage: "Personal second brain: save content, find it again by meaning",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Save an item and enrich it with a summary, keywords, and an embedding",
				ArgsUsage: "[content...]",
				Action:    addCommand,
				Flags: append(vaultFlags(),
					&cli.StringFlag{
						Name:  "type",
						Usage: "Item type (note, website, social, video)",
						Value: "note",
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Item title",
					},
					&cli.StringFlag{
						Name:  "link",
						Usage: "Source URL for saved links",
					},
					&cli.StringSliceFlag{
						Name:  "tag",
						Usage: "Tag to attach (repeatable)",
					},
					&cli.BoolFlag{
						Name:  "wait",
						Usage: "Wait for enrichment to finish before exiting",
						Value: true,
					},
					&cli.DurationFlag{
						Name:  "wait-timeout",
						Usage: "Maximum time to wait for enrichment",
						Value: 2 * time.Minute,
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Search saved items by meaning, falling back to text matching",
				ArgsUsage: "query...",
				Action:    searchCommand,
				Flags: append(vaultFlags(),
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   10,
					},
					&cli.StringFlag{
						Name:  "type",
						Usage: "Restrict results to one item type",
					},
					&cli.StringSliceFlag{
						Name:  "tag",
						Usage: "Restrict results to items carrying this tag (repeatable)",
					},
					&cli.Float64Flag{
						Name:  "min-similarity",
						Usage: "Minimum cosine similarity for semantic hits",
						Value: search.DefaultConfig().MinSimilarity,
					},
					&cli.Float64Flag{
						Name:  "recency-weight",
						Usage: "Weight of the recency boost added to semantic scores",
						Value: search.DefaultConfig().RecencyWeight,
					},
				),
			},
			{
				Name:      "similar",
				Usage:     "Find items similar to an existing item",
				ArgsUsage: "item-id",
				Action:    similarCommand,
				Flags: append(vaultFlags(),
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of results",
						Value:   10,
					},
				),
			},
			{
				Name:   "reembed",
				Usage:  "Reembed all items with new embeddings",
				Action: reembedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the vault directory",
						Value:   "./recall_db",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-token",
						Usage: "API key for the embedding service",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of items to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N items",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}
}

// vaultFlags are the flags shared by every command that opens a full vault.
func vaultFlags() []cli.Flag {
	defaults := ai.DefaultConfig()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to the vault directory",
			Value:   "./recall_db",
		},
		&cli.StringFlag{
			Name:     "owner",
			Aliases:  []string{"o"},
			Usage:    "Owner of the items",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: defaults.EmbeddingEndpoints[0].Host,
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: defaults.EmbeddingEndpoints[0].Model,
		},
		&cli.StringFlag{
			Name:  "embedding-token",
			Usage: "API key for the embedding service",
		},
		&cli.StringFlag{
			Name:  "summary-host",
			Usage: "Summary service host URL",
			Value: defaults.SummaryEndpoints[0].Host,
		},
		&cli.StringFlag{
			Name:  "summary-model",
			Usage: "Summary model name",
			Value: defaults.SummaryEndpoints[0].Model,
		},
		&cli.StringFlag{
			Name:  "summary-token",
			Usage: "API key for the summary service",
		},
	}
}

// aiConfigFromFlags builds the provider configuration from command flags.
func aiConfigFromFlags(c *cli.Context) *ai.Config {
	return &ai.Config{
		EmbeddingEndpoints: []ai.Endpoint{{
			Host:  c.String("embedding-host"),
			Model: c.String("embedding-model"),
			Token: c.String("embedding-token"),
		}},
		SummaryEndpoints: []ai.Endpoint{{
			Host:  c.String("summary-host"),
			Model: c.String("summary-model"),
			Token: c.String("summary-token"),
		}},
		RequestTimeout: 30 * time.Second,
	}
}

func openVault(c *cli.Context) (*recall.Vault, error) {
	return recall.Open(c.String("db"), recall.WithAIConfig(aiConfigFromFlags(c)))
}

// ownerID resolves the owner flag. A numeric value is used directly,
// anything else hashes to a stable ID.
func ownerID(c *cli.Context) core.ID {
	raw := c.String("owner")
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil && n != 0 {
		return core.ID(n)
	}
	return core.IDFromContent(raw)
}

func addCommand(c *cli.Context) error {
	itemType, ok := core.ParseItemType(c.String("type"))
	if !ok {
		return fmt.Errorf("unknown item type %q", c.String("type"))
	}

	content := strings.Join(c.Args().Slice(), " ")
	item := &core.Item{
		OwnerId: ownerID(c),
		Type:    itemType,
		Title:   c.String("title"),
		Content: content,
		Link:    c.String("link"),
		Tags:    c.StringSlice("tag"),
	}

	vault, err := openVault(c)
	if err != nil {
		return fmt.Errorf("failed to open vault: %w", err)
	}
	defer vault.Close()

	pipeline, err := vault.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	ctx := context.Background()
	added, err := pipeline.Ingest(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to ingest item: %w", err)
	}

	stored := added[0]
	fmt.Printf("Saved item %d\n", stored.Id)

	if !c.Bool("wait") {
		return nil
	}

	final, err := waitForEnrichment(ctx, vault, c.Duration("wait-timeout"), stored.Id)
	if err != nil {
		return err
	}

	switch final.Status {
	case core.StatusCompleted:
		fmt.Printf("Enriched: %s\n", final.Summary)
		if len(final.Keywords) > 0 {
			fmt.Printf("Keywords: %s\n", strings.Join(final.Keywords, ", "))
		}
	case core.StatusFailed:
		return fmt.Errorf("enrichment failed: %s", final.StatusError)
	}

	return nil
}

// waitForEnrichment polls until the item leaves the pending/processing
// states or the timeout expires.
func waitForEnrichment(ctx context.Context, vault *recall.Vault, timeout time.Duration, id core.ID) (*core.Item, error) {
	deadline := time.Now().Add(timeout)
	for {
		items, err := vault.ItemRepository().GetItems(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(items) == 1 {
			switch items[0].Status {
			case core.StatusCompleted, core.StatusFailed:
				return items[0], nil
			}
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timed out waiting for enrichment of item %d", id)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("a search query is required")
	}

	vault, err := openVault(c)
	if err != nil {
		return fmt.Errorf("failed to open vault: %w", err)
	}
	defer vault.Close()

	cfg := search.DefaultConfig()
	cfg.MinSimilarity = c.Float64("min-similarity")
	cfg.RecencyWeight = c.Float64("recency-weight")

	searcher, err := vault.NewSearcher(search.WithConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Close()

	query := search.Query{
		Text:  strings.Join(c.Args().Slice(), " "),
		Owner: ownerID(c),
		Limit: c.Int("limit"),
		Tags:  c.StringSlice("tag"),
	}
	if typeName := c.String("type"); typeName != "" {
		itemType, ok := core.ParseItemType(typeName)
		if !ok {
			return fmt.Errorf("unknown item type %q", typeName)
		}
		query.Type = itemType
	}

	results, err := searcher.Search(context.Background(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	printResults(results)
	return nil
}

func similarCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one item id is required")
	}
	id, err := strconv.ParseUint(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", c.Args().First())
	}

	vault, err := openVault(c)
	if err != nil {
		return fmt.Errorf("failed to open vault: %w", err)
	}
	defer vault.Close()

	searcher, err := vault.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Close()

	results, err := searcher.Similar(context.Background(), core.ID(id), ownerID(c), c.Int("limit"))
	if err != nil {
		return fmt.Errorf("similar search failed: %w", err)
	}

	printResults(results)
	return nil
}

func printResults(results []*core.SearchResult) {
	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		label := hit.Item.Title
		if label == "" {
			label = firstLine(hit.Item.Content)
		}
		fmt.Printf("%d: %s (%d)[%0.3f]\n", i+1, label, hit.Item.Id, hit.Score)
		if hit.Item.Summary != "" {
			fmt.Printf("   %s\n", hit.Item.Summary)
		}
	}
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	if len(s) > 80 {
		s = s[:77] + "..."
	}
	return s
}

func reembedCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")
	if dbPath == "" {
		return fmt.Errorf("database path is required")
	}

	// Open database
	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewItemRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	endpoint := ai.Endpoint{
		Host:  c.String("embedding-host"),
		Model: c.String("embedding-model"),
		Token: c.String("embedding-token"),
	}

	aiConfig := &ai.Config{
		EmbeddingEndpoints: []ai.Endpoint{endpoint},
		RequestTimeout:     30 * time.Second,
	}
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	// Create embedder
	embedder, err := openai.NewEmbedder(aiConfig.EmbeddingEndpoints[0])
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	chain := ai.NewChainEmbedder(aiConfig.RequestTimeout, embedder)

	// Create reembedding config
	reembedConfig := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	// Validate config
	if reembedConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reembedConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reembedConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	// Create reembedder
	reembedder := reembed.NewReembedder(repo, chain, reembedConfig, os.Stderr)

	// Run reembedding
	fmt.Fprintf(os.Stderr, "Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", endpoint.Host)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", endpoint.Model)
	fmt.Fprintln(os.Stderr)

	if err := reembedder.Run(ctx); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
