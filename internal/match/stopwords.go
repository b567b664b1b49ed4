package match

// StopWords is an immutable membership set of words excluded from matching.
// It is injected into the Extractor rather than consulted as a global so the
// extractor stays pure and independently testable.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords builds a set from pre-lowered words.
func NewStopWords(words []string) StopWords {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return StopWords{words: m}
}

// Contains reports whether w (already lowercased) is a stop word.
func (s StopWords) Contains(w string) bool {
	_, ok := s.words[w]
	return ok
}

// Len returns the number of words in the set.
func (s StopWords) Len() int { return len(s.words) }

// DefaultStopWords returns the built-in English stop-word set.
func DefaultStopWords() StopWords {
	return NewStopWords(defaultStopWords)
}

// defaultStopWords lists common English words carrying no discriminative
// signal for keyword matching.
var defaultStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "aren't", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can't",
	"cannot", "could", "couldn't", "did", "didn't", "do", "does", "doesn't",
	"doing", "don't", "down", "during", "each", "few", "for", "from",
	"further", "had", "hadn't", "has", "hasn't", "have", "haven't", "having",
	"he", "her", "here", "hers", "herself", "him", "himself", "his", "how",
	"i", "if", "in", "into", "is", "isn't", "it", "its", "itself", "let's",
	"me", "more", "most", "mustn't", "my", "myself", "no", "nor", "not",
	"of", "off", "on", "once", "only", "or", "other", "ought", "our", "ours",
	"ourselves", "out", "over", "own", "same", "shan't", "she", "should",
	"shouldn't", "so", "some", "such", "than", "that", "the", "their",
	"theirs", "them", "themselves", "then", "there", "these", "they", "this",
	"those", "through", "to", "too", "under", "until", "up", "very", "was",
	"wasn't", "we", "were", "weren't", "what", "when", "where", "which",
	"while", "who", "whom", "why", "with", "won't", "would", "wouldn't",
	"you", "your", "yours", "yourself", "yourselves",
}
