// Package reembed provides functionality for reembedding existing items
// with new or updated embedding models.
//
// This package supports batch processing of items, progress tracking,
// retry logic with exponential backoff, and vector normalization to ensure
// compatibility with cosine similarity search. Run it after switching
// embedding providers so the whole vault shares one vector space again.
package reembed
