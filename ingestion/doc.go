// Package ingestion provides the asynchronous enrichment pipeline for items.
//
// The Pipeline stores incoming items in pending status and enriches them in
// the background: a summary stage fills Summary and Keywords via the
// configured summarizer chain, then an embedding stage fills Embedding and
// completes the status lifecycle (pending, processing, completed, or failed
// with the error recorded). Enrichment runs on worker pools and never fails
// the original ingestion call.
package ingestion
