package openai

import "fmt"

const keywordResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "keywords": {
      "type": "array",
      "items": {
        "type": "string",
        "pattern": "^[a-z0-9]+( [a-z0-9]+)*$"
      },
      "maxItems": 10
    }
  },
  "required": ["keywords"],
  "additionalProperties": false
}`

const keywordPromptTemplate = `Extract the most useful search keywords from the given text and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

%s

Rules:
- Keywords must be lowercase, 1-3 words each.
- Return at most 10 keywords, ordered from most to least relevant.
- Include only terms that are explicitly mentioned or clearly implied by the text. Do not hallucinate.
- Prefer concrete nouns and named entities over generic words.
- If no keywords can be identified, return "keywords": [].
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "The Eiffel Tower is a famous landmark in Paris."
Output:
{
  "keywords": ["eiffel tower", "paris", "landmark"]
}

Example (informal, no punctuation):
Input: "great article on training a golang web scraper"
Output:
{
  "keywords": ["golang", "web scraper", "training"]
}`

const summaryPrompt = `Summarize the given text in one or two sentences of plain prose.

Rules:
- Maximum two sentences, under 60 words total.
- Capture the main subject and the key claim or purpose of the text.
- Do not include any preamble, explanation, or quotation marks. Output the summary only.
- Write in the third person; never address the reader.`

// buildKeywordPrompt creates the keyword extraction prompt with the schema embedded.
func buildKeywordPrompt() string {
	return fmt.Sprintf(keywordPromptTemplate, keywordResponseSchema)
}
