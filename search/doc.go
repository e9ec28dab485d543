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


// Package search provides hybrid semantic and lexical retrieval over items.
//
// The Searcher type reconciles two retrieval strategies behind one ranked
// result list:
//   - Semantic search using vector embeddings and cosine similarity,
//     with an optional recency-decay boost
//   - Lexical matching using phrase, token, and bounded fuzzy
//     (edit-distance) heuristics over an item's text fields
//
// When everything works, vector hits lead the merged result list and
// lexical hits fill the remainder. When semantic infrastructure is
// unavailable (no embedding provider, no embedded items, nothing above the
// similarity floor), searches degrade silently to lexical matching; the
// degradation is logged but never surfaced to the caller as an error.
package search
