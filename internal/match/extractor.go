// Package match implements the keyword-overlap matcher: extraction of
// query keywords from free text and selection of the best-scoring answer
// among candidate QA records.
package match

import (
	"regexp"
	"strings"
)

// DefaultMaxKeywords caps the query keyword list per extraction.
const DefaultMaxKeywords = 10

// wordRegex matches alphanumeric/underscore runs on word boundaries.
var wordRegex = regexp.MustCompile(`\b\w+\b`)

// Extractor normalizes free text into a bounded keyword list.
type Extractor struct {
	stopWords StopWords
	max       int
}

// NewExtractor creates an Extractor with the given stop-word set.
// max <= 0 falls back to DefaultMaxKeywords.
func NewExtractor(stopWords StopWords, max int) *Extractor {
	if max <= 0 {
		max = DefaultMaxKeywords
	}
	return &Extractor{stopWords: stopWords, max: max}
}

// Extract lowercases text, tokenizes it into word runs, drops stop words,
// and truncates to the first max surviving tokens in order of first
// occurrence. Duplicates are kept; the selector counts them once.
// An empty result (empty input or all stop words) is a normal outcome.
func (e *Extractor) Extract(text string) []string {
	tokens := wordRegex.FindAllString(strings.ToLower(text), -1)

	keywords := make([]string, 0, e.max)
	for _, tok := range tokens {
		if e.stopWords.Contains(tok) {
			continue
		}
		keywords = append(keywords, tok)
		if len(keywords) == e.max {
			break
		}
	}
	return keywords
}
