// Package domain holds the core value objects and error taxonomy.
package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxAnswerSize is the maximum answer size in bytes.
const MaxAnswerSize = 16384 // 16KB

// QARecord is a stored question-answer pair with its keyword set
// (immutable value object). Records are owned by the document store;
// the matcher only reads them.
type QARecord struct {
	id       string
	question string
	answer   string
	keywords []string
}

// NewQARecord validates and creates a QARecord.
// ID: ^[a-zA-Z0-9_-]+$, 1-256 chars. Keywords are lowercased and
// deduplicated; at least one keyword must survive.
func NewQARecord(id, question, answer string, keywords []string) (QARecord, error) {
	if id == "" {
		return QARecord{}, fmt.Errorf("%w: record ID is required", ErrInvalidRecord)
	}
	if len(id) > 256 {
		return QARecord{}, fmt.Errorf("%w: record ID too long (max 256)", ErrInvalidRecord)
	}
	if !idRegex.MatchString(id) {
		return QARecord{}, fmt.Errorf(
			"%w: record ID must be alphanumeric with underscores and hyphens", ErrInvalidRecord)
	}
	if answer == "" {
		return QARecord{}, fmt.Errorf("%w: answer is required", ErrInvalidRecord)
	}
	if len(answer) > MaxAnswerSize {
		return QARecord{}, fmt.Errorf("%w: answer too large (max %d bytes)", ErrInvalidRecord, MaxAnswerSize)
	}

	normalized := normalizeKeywords(keywords)
	if len(normalized) == 0 {
		return QARecord{}, fmt.Errorf("%w: at least one keyword is required", ErrInvalidRecord)
	}

	return QARecord{id: id, question: question, answer: answer, keywords: normalized}, nil
}

// ReconstructQARecord creates a QARecord without validation (storage hydration).
func ReconstructQARecord(id, question, answer string, keywords []string) QARecord {
	return QARecord{id: id, question: question, answer: answer, keywords: keywords}
}

// ID returns the record identifier.
func (r *QARecord) ID() string { return r.id }

// Question returns the stored question text.
func (r *QARecord) Question() string { return r.question }

// Answer returns the stored answer text.
func (r *QARecord) Answer() string { return r.answer }

// Keywords returns the record's keyword set as a slice.
func (r *QARecord) Keywords() []string { return r.keywords }

// HasKeyword reports whether kw is in the record's keyword set.
func (r *QARecord) HasKeyword(kw string) bool {
	for _, k := range r.keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// normalizeKeywords lowercases, trims, and deduplicates while preserving order.
func normalizeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
