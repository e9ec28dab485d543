package ai

import (
	"context"
	"strings"
	"unicode"
)

// Stop words excluded from naive keyword extraction.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "can": true, "this": true,
	"that": true, "these": true, "those": true, "i": true, "you": true,
	"he": true, "she": true, "it": true, "we": true, "they": true, "me": true,
	"him": true, "her": true, "us": true, "them": true, "from": true, "not": true,
}

// NaiveSummarizer is an offline Summarizer of last resort. It derives a
// summary from the leading sentence and keywords from word frequency,
// without calling any external service. Use it as the final link of a
// ChainSummarizer so enrichment never produces nothing.
type NaiveSummarizer struct{}

var _ Summarizer = (*NaiveSummarizer)(nil)

// NewNaiveSummarizer creates the offline summarizer.
func NewNaiveSummarizer() *NaiveSummarizer {
	return &NaiveSummarizer{}
}

// Summarize returns the first sentence of the content, truncated to 200
// characters. Never fails.
func (n *NaiveSummarizer) Summarize(_ context.Context, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", nil
	}

	sentence := content
	if idx := strings.IndexAny(content, ".!?"); idx > 0 {
		sentence = content[:idx]
	}
	sentence = strings.TrimSpace(sentence)

	if len(sentence) > 200 {
		return sentence[:200] + "...", nil
	}
	if sentence != content {
		return sentence + ".", nil
	}
	return sentence, nil
}

// ExtractKeywords returns up to 8 distinct non-stop-words longer than
// 3 characters, in order of first appearance. Never fails.
func (n *NaiveSummarizer) ExtractKeywords(_ context.Context, content string) ([]string, error) {
	words := strings.FieldsFunc(strings.ToLower(content), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]bool)
	keywords := make([]string, 0, 8)
	for _, w := range words {
		if len(w) <= 3 || stopWords[w] || seen[w] {
			continue
		}
		seen[w] = true
		keywords = append(keywords, w)
		if len(keywords) == 8 {
			break
		}
	}
	return keywords, nil
}

// Name identifies the provider for logging.
func (n *NaiveSummarizer) Name() string {
	return "naive"
}
