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

import (
	"strings"
	"time"
	"unicode"

	"github.com/poiesic/recall/core"
)

const (
	lexicalBaseScore  = 0.1
	fuzzyMinTokenLen  = 4
	fuzzyMaxDistance  = 2
	minFilterTokenLen = 2
)

// queryVariants holds the match forms derived from one query string.
type queryVariants struct {
	// phrase is the lowercased, whitespace-trimmed raw query.
	phrase string

	// stripped is the phrase with all spaces removed, so that a query
	// like "git hub" still matches the compacted domain "github.com".
	stripped string

	// tokens are the lowercased query words, split on non-letter/non-digit
	// boundaries with single-character tokens dropped.
	tokens []string
}

func (v queryVariants) empty() bool {
	return v.phrase == "" && len(v.tokens) == 0
}

func buildVariants(query string) queryVariants {
	phrase := strings.ToLower(strings.TrimSpace(query))
	return queryVariants{
		phrase:   phrase,
		stripped: strings.ReplaceAll(phrase, " ", ""),
		tokens:   tokenizeQuery(phrase),
	}
}

// tokenizeQuery splits on non-letter/non-digit runes and drops tokens of a
// single character, which match too much to be useful.
func tokenizeQuery(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= minFilterTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// searchableFields returns the lowercased text fields a query is matched
// against: title, content, link, tags, summary, keywords, and the
// website-derived description and domain.
func searchableFields(item *core.Item) []string {
	fields := make([]string, 0, 8+len(item.Tags)+len(item.Keywords))
	for _, f := range []string{
		item.Title, item.Content, item.Link, item.Summary,
		item.Site.Description, item.Site.Domain,
	} {
		if f != "" {
			fields = append(fields, strings.ToLower(f))
		}
	}
	for _, t := range item.Tags {
		fields = append(fields, strings.ToLower(t))
	}
	for _, k := range item.Keywords {
		fields = append(fields, strings.ToLower(k))
	}
	return fields
}

// matchesVariants is the candidate filter: an item qualifies when any field
// contains the phrase (or its space-stripped form), or when every query
// token independently appears in some field (conjunctive-token policy).
// An empty query matches nothing.
func matchesVariants(item *core.Item, v queryVariants) bool {
	if v.empty() {
		return false
	}

	fields := searchableFields(item)

	if v.phrase != "" {
		for _, f := range fields {
			if strings.Contains(f, v.phrase) || (v.stripped != "" && strings.Contains(f, v.stripped)) {
				return true
			}
		}
	}

	if len(v.tokens) == 0 {
		return false
	}
	for _, token := range v.tokens {
		found := false
		for _, f := range fields {
			if strings.Contains(f, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// lexicalRule is one additive scoring signal. Rules are evaluated in order,
// summed onto the base score, and the total is capped at 1.0. New signals
// are added to the slice, not to control flow.
type lexicalRule struct {
	name  string
	score func(item *core.Item, v queryVariants) float64
}

var lexicalRules = []lexicalRule{
	{"title-phrase", func(item *core.Item, v queryVariants) float64 {
		if v.phrase != "" && strings.Contains(strings.ToLower(item.Title), v.phrase) {
			return 0.6
		}
		return 0
	}},
	{"summary-phrase", func(item *core.Item, v queryVariants) float64 {
		if v.phrase != "" && strings.Contains(strings.ToLower(item.Summary), v.phrase) {
			return 0.3
		}
		return 0
	}},
	{"title-token", func(item *core.Item, v queryVariants) float64 {
		title := strings.ToLower(item.Title)
		for _, token := range v.tokens {
			if len(token) > 2 && strings.Contains(title, token) {
				return 0.2
			}
		}
		return 0
	}},
	{"tag-equals-token", func(item *core.Item, v queryVariants) float64 {
		for _, tag := range item.Tags {
			tag = strings.ToLower(tag)
			for _, token := range v.tokens {
				if tag == token {
					return 0.2
				}
			}
		}
		return 0
	}},
	{"keyword-equals-token", func(item *core.Item, v queryVariants) float64 {
		for _, keyword := range item.Keywords {
			keyword = strings.ToLower(keyword)
			for _, token := range v.tokens {
				if keyword == token {
					return 0.15
				}
			}
		}
		return 0
	}},
	{"domain-equals-token", func(item *core.Item, v queryVariants) float64 {
		domain := strings.ToLower(item.Site.Domain)
		if domain == "" {
			return 0
		}
		for _, token := range v.tokens {
			if domain == token {
				return 0.1
			}
		}
		return 0
	}},
	{"fuzzy-token", func(item *core.Item, v queryVariants) float64 {
		words := fuzzyCorpus(item)
		if len(words) == 0 {
			return 0
		}

		var total float64
		for _, token := range v.tokens {
			// Short tokens produce too many near-misses to fuzzy-match
			if len(token) < fuzzyMinTokenLen {
				continue
			}
			switch minEditDistance(token, words, fuzzyMaxDistance) {
			case 1:
				total += 0.12
			case 2:
				total += 0.06
			}
		}
		return total
	}},
}

// fuzzyCorpus collects the whitespace-split words of title, summary,
// keywords, and tags, lowercased, for edit-distance matching.
func fuzzyCorpus(item *core.Item) []string {
	words := strings.Fields(strings.ToLower(item.Title))
	words = append(words, strings.Fields(strings.ToLower(item.Summary))...)
	for _, k := range item.Keywords {
		words = append(words, strings.Fields(strings.ToLower(k))...)
	}
	for _, t := range item.Tags {
		words = append(words, strings.Fields(strings.ToLower(t))...)
	}
	return words
}

// scoreLexical computes the heuristic relevance of one candidate: the base
// score plus every matching rule plus the optional recency term, capped
// at 1.0.
func scoreLexical(item *core.Item, v queryVariants, cfg Config, now time.Time) float64 {
	score := lexicalBaseScore
	for _, rule := range lexicalRules {
		score += rule.score(item, v)
	}
	if cfg.TextRecencyWeight > 0 {
		score += cfg.TextRecencyWeight * RecencyBoost(item.CreatedAt, now, cfg.TextRecencyHalfLifeDays)
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
