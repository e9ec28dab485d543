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

import "errors"

// Config holds per-query ranking parameters. A Config is read once at the
// start of a query and never mutated afterwards, so concurrent queries with
// different tuning cannot interfere.
type Config struct {
	// MinSimilarity is the relevance floor for the vector path. Candidates
	// whose raw cosine similarity falls below it are discarded. The floor
	// is applied to the unboosted similarity: recency never rescues an
	// item that is not semantically relevant.
	// Default: 0.2
	MinSimilarity float64

	// RecencyWeight scales the recency boost added to vector similarity
	// scores. 0 disables boosting.
	// Default: 0
	RecencyWeight float64

	// RecencyHalfLifeDays is the decay half-life for the vector-path
	// recency boost.
	// Default: 90
	RecencyHalfLifeDays float64

	// TextRecencyWeight scales the recency boost on lexical scores.
	// 0 disables boosting.
	// Default: 0
	TextRecencyWeight float64

	// TextRecencyHalfLifeDays is the decay half-life for the lexical-path
	// recency boost.
	// Default: 90
	TextRecencyHalfLifeDays float64

	// Overfetch is the multiple of the requested limit the lexical matcher
	// collects before re-ranking.
	// Default: 3
	Overfetch int
}

// DefaultConfig returns the standard ranking parameters.
func DefaultConfig() Config {
	return Config{
		MinSimilarity:           0.2,
		RecencyWeight:           0,
		RecencyHalfLifeDays:     90,
		TextRecencyWeight:       0,
		TextRecencyHalfLifeDays: 90,
		Overfetch:               3,
	}
}

// Validate checks the configuration for values that would corrupt ranking.
func (c Config) Validate() error {
	if c.RecencyWeight < 0 || c.TextRecencyWeight < 0 {
		return errors.New("search config: recency weights must not be negative")
	}
	if c.RecencyHalfLifeDays <= 0 || c.TextRecencyHalfLifeDays <= 0 {
		return errors.New("search config: half lives must be positive")
	}
	if c.Overfetch < 1 {
		return errors.New("search config: overfetch must be at least 1")
	}
	return nil
}
