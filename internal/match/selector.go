package match

import "github.com/helpbase/faqdex/internal/domain"

// Selection is the outcome of scoring candidates against a query.
type Selection struct {
	Answer   string
	RecordID string
	Score    int
	Matched  bool
}

// SelectBest scores each candidate by keyword-set intersection size against
// the query and returns the best. The query is treated as a set: duplicate
// keywords never inflate the count. The running best starts at
// (0, defaultAnswer) and is replaced on strictly-greater scores only, so
// ties keep the first candidate in retrieval order (stable, first-wins) and
// zero-overlap candidates never beat the default.
func SelectBest(keywords []string, candidates []domain.QARecord, defaultAnswer string) Selection {
	best := Selection{Answer: defaultAnswer}
	if len(keywords) == 0 || len(candidates) == 0 {
		return best
	}

	query := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		query[kw] = struct{}{}
	}

	for i := range candidates {
		score := overlap(query, candidates[i].Keywords())
		if score > best.Score {
			best = Selection{
				Answer:   candidates[i].Answer(),
				RecordID: candidates[i].ID(),
				Score:    score,
				Matched:  true,
			}
		}
	}
	return best
}

// SelectBestAnswer returns the highest-scoring candidate's answer, or
// defaultAnswer when no candidate has positive overlap.
func SelectBestAnswer(keywords []string, candidates []domain.QARecord, defaultAnswer string) string {
	return SelectBest(keywords, candidates, defaultAnswer).Answer
}

// overlap counts candidate keywords present in the query set. Candidate
// keyword sets hold no duplicates, so each matches at most once.
func overlap(query map[string]struct{}, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if _, ok := query[kw]; ok {
			n++
		}
	}
	return n
}
