package mock

import (
	"context"
	"strings"
)

// MockSummarizer is a test double for ai.Summarizer.
// It allows custom behavior injection via function fields.
type MockSummarizer struct {
	// SummarizeFunc is called by Summarize if set.
	// If nil, uses default word truncation.
	SummarizeFunc func(ctx context.Context, content string) (string, error)

	// ExtractKeywordsFunc is called by ExtractKeywords if set.
	// If nil, uses default simple word extraction.
	ExtractKeywordsFunc func(ctx context.Context, content string) ([]string, error)

	callCount int
}

// NewMockSummarizer creates a mock summarizer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockSummarizer().
func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{}
}

// Summarize produces a trivial summary from the content.
// Default behavior: the first ten words of the content.
func (m *MockSummarizer) Summarize(ctx context.Context, content string) (string, error) {
	m.callCount++

	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, content)
	}

	words := strings.Fields(content)
	if len(words) > 10 {
		words = words[:10]
	}
	return strings.Join(words, " "), nil
}

// ExtractKeywords extracts simple mock keywords from content.
// Default behavior: the first five distinct lowercased words.
func (m *MockSummarizer) ExtractKeywords(ctx context.Context, content string) ([]string, error) {
	m.callCount++

	if m.ExtractKeywordsFunc != nil {
		return m.ExtractKeywordsFunc(ctx, content)
	}

	words := strings.Fields(strings.ToLower(content))
	seen := make(map[string]bool, len(words))
	keywords := make([]string, 0, 5)
	for _, word := range words {
		word = strings.Trim(word, ".,!?;:\"'()[]{}—–-")
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) == 5 {
			break
		}
	}
	return keywords, nil
}

// Name identifies the mock in degradation logs.
func (m *MockSummarizer) Name() string {
	return "mock"
}

// CallCount returns the number of times any method was called.
func (m *MockSummarizer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockSummarizer) Reset() {
	m.callCount = 0
	m.SummarizeFunc = nil
	m.ExtractKeywordsFunc = nil
}
