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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/recall/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Summarizer implements ai.Summarizer using OpenAI-compatible chat APIs.
type Summarizer struct {
	client llms.Model
	name   string
	logger *slog.Logger
}

// keywordList is the wrapper structure for the LLM's JSON keyword response.
type keywordList struct {
	Keywords []string `json:"keywords"`
}

// newSummarizer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSummarizer(endpoint ai.Endpoint) (*Summarizer, error) {
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	token := endpoint.Token
	if token == "" {
		token = "none"
	}

	client, err := openai.New(
		openai.WithBaseURL(endpoint.Host),
		openai.WithToken(token),
		openai.WithModel(endpoint.Model),
	)
	if err != nil {
		return nil, err
	}

	name := endpoint.Model + "@" + endpoint.Host
	return &Summarizer{
		client: client,
		name:   name,
		logger: slog.Default().With("component", "openai-summarizer", "provider", name),
	}, nil
}

// NewSummarizer creates a summarizer for a single OpenAI-compatible endpoint.
//
// Returns ai.Summarizer interface to enforce abstraction.
func NewSummarizer(endpoint ai.Endpoint) (ai.Summarizer, error) {
	return newSummarizer(endpoint)
}

// Summarize produces a short prose summary of the given content.
func (s *Summarizer) Summarize(ctx context.Context, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", nil
	}

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(summaryPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(content),
			},
		},
	}

	response, err := s.client.GenerateContent(ctx, messages, llms.WithTemperature(0.0))
	if err != nil {
		s.logger.Error("failed to generate summary", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		s.logger.Debug("no choices returned from model")
		return "", nil
	}

	summary := strings.TrimSpace(response.Choices[0].Content)
	s.logger.Debug("generated summary", "length", len(summary))
	return summary, nil
}

// ExtractKeywords extracts searchable keywords from the given content.
// Keywords are lowercased and deduplicated before being returned.
func (s *Summarizer) ExtractKeywords(ctx context.Context, content string) ([]string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return []string{}, nil
	}

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildKeywordPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(content),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result keywordList
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := s.client.GenerateContent(ctx, messages, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			s.logger.Error("failed to generate keywords", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			s.logger.Debug("no choices returned from model")
			return []string{}, nil
		}

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			s.logger.Warn("error parsing keyword response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		s.logger.Error("failed to parse keyword response after retries", "err", lastErr)
		return nil, lastErr
	}

	seen := make(map[string]bool, len(result.Keywords))
	keywords := make([]string, 0, len(result.Keywords))
	for _, kw := range result.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		keywords = append(keywords, kw)
	}

	s.logger.Debug("extracted keywords", "count", len(keywords))
	return keywords, nil
}

// Name identifies the endpoint for logging.
func (s *Summarizer) Name() string {
	return s.name
}
