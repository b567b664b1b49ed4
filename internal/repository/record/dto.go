package record

import (
	"strings"

	"github.com/helpbase/faqdex/internal/domain"
)

const (
	fieldQuestion = "question"
	fieldAnswer   = "answer"
	fieldKeywords = "keywords"
)

// buildHashFields converts a QARecord into a flat map[string]string for HSET.
// Keywords are word tokens, so a comma join is unambiguous.
func buildHashFields(rec *domain.QARecord) map[string]string {
	return map[string]string{
		fieldQuestion: rec.Question(),
		fieldAnswer:   rec.Answer(),
		fieldKeywords: strings.Join(rec.Keywords(), ","),
	}
}

// parseHashFields converts a flat hash map back into a QARecord.
func parseHashFields(id string, m map[string]string) domain.QARecord {
	var keywords []string
	if kw := m[fieldKeywords]; kw != "" {
		keywords = strings.Split(kw, ",")
	}
	return domain.ReconstructQARecord(id, m[fieldQuestion], m[fieldAnswer], keywords)
}
