package main

import (
	"bufio"
	"context"
	"flag"
	"iter"
	"log/slog"
	"os"

	"github.com/poiesic/recall"
	"github.com/poiesic/recall/core"
	"github.com/poiesic/recall/ingestion"
)

// notes is a built-in corpus of second brain entries for exercising the
// pipeline and search without real data.
var notes = []string{
	"The lighthouse keeper's logbook from 1893 is digitized at the maritime archive.",
	"Sourdough starter needs feeding every twelve hours at room temperature.",
	"Badger stores its keys in an LSM tree and its values in a value log.",
	"The best espresso ratio is eighteen grams in, thirty six grams out.",
	"Cosine similarity only needs the dot product when vectors are normalized.",
	"The Voyager golden record includes greetings in fifty five languages.",
	"Rust's borrow checker rejects programs that would compile fine in C.",
	"A gentle breeze rustled the leaves of the old oak tree.",
	"Kubernetes pods restart with exponential backoff after repeated crashes.",
	"The ancient library of Alexandria may have held forty thousand scrolls.",
	"Fermentation temperature changes the flavor profile of kimchi dramatically.",
	"Write-ahead logs make crash recovery possible in most databases.",
	"The hummingbird hovered beside a vibrant purple flower.",
	"Levenshtein distance counts insertions, deletions, and substitutions.",
	"Bloom filters trade false positives for constant memory usage.",
	"The desert dunes shifted silently under a pale moon.",
	"TCP slow start doubles the congestion window every round trip.",
	"Japanese joinery holds timber frames together without nails.",
	"Embeddings map text into a vector space where distance means meaning.",
	"The old clock chimed thirteen times in an abandoned town.",
	"Content addressable storage names blobs by the hash of their bytes.",
	"A mysterious map led them to a forgotten treasure.",
	"Raft elects a leader before accepting any writes.",
	"The lighthouse beam cut through fog, guiding sailors safely.",
	"Mercurial revsets are a small query language for history.",
	"Inverted indexes map terms to the documents containing them.",
	"She painted the sunset with bold strokes of crimson and gold.",
	"Consistent hashing keeps most keys in place when a node joins.",
	"The river's current carried leaves downstream like paper boats.",
	"Zettelkasten notes link ideas instead of filing them in folders.",
	"A lone wolf howled, echoing into the vast night.",
	"HNSW graphs make nearest neighbor search sublinear in practice.",
	"The wind carried scents of jasmine from distant gardens.",
	"Columnar storage compresses well because values in a column look alike.",
	"He composed a melody that echoed through the valleys.",
	"Spaced repetition schedules reviews just before you forget.",
	"The night sky glittered with countless stars.",
	"Quorum reads and writes overlap so someone always sees the latest value.",
	"They explored caves filled with stalactites glittering like chandeliers.",
	"Merkle trees let replicas find divergent ranges with log comparisons.",
}

var (
	seedFileName = flag.String("src", "", "file of seed data, one note per line")
	ownerName    = flag.String("owner", "seeder", "owner of the seeded items")
	dbPath       = flag.String("db", "./recall_db", "path to the vault directory")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// linesFromFile returns an iterator over lines in a file.
func linesFromFile(filename string) (iter.Seq[string], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}, nil
}

// linesFromSlice returns an iterator over a slice of strings.
func linesFromSlice(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	}
}

// ingestBatched reads from a source iterator and ingests notes in batches.
func ingestBatched(ctx context.Context, pipeline *ingestion.Pipeline, owner core.ID, source iter.Seq[string], batchSize int) error {
	batch := make([]*core.Item, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := pipeline.Ingest(ctx, batch...); err != nil {
			return err
		}
		batch = batch[:0]
		return nil
	}

	for line := range source {
		if line == "" {
			continue
		}
		batch = append(batch, &core.Item{
			OwnerId: owner,
			Type:    core.ItemTypeNote,
			Content: line,
		})
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	return flush()
}

func main() {
	vault, err := recall.Open(*dbPath)
	if err != nil {
		panic(err)
	}
	defer vault.Close()

	ingester, err := vault.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer ingester.Release()

	ctx := context.Background()

	// Determine source of seed data
	var source iter.Seq[string]
	if seedFileName != nil && *seedFileName != "" {
		source, err = linesFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = linesFromSlice(notes)
	}

	// Ingest in batches of 5
	if err := ingestBatched(ctx, ingester, core.IDFromContent(*ownerName), source, 5); err != nil {
		panic(err)
	}
}
