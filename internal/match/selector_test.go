package match

import (
	"testing"

	"github.com/helpbase/faqdex/internal/domain"
)

const defaultAnswer = "I don't know."

func candidate(t *testing.T, id, answer string, keywords ...string) domain.QARecord {
	t.Helper()
	return domain.ReconstructQARecord(id, "", answer, keywords)
}

func TestSelectBest_EmptyKeywords(t *testing.T) {
	cands := []domain.QARecord{candidate(t, "r1", "X", "a")}

	sel := SelectBest(nil, cands, defaultAnswer)
	if sel.Answer != defaultAnswer {
		t.Fatalf("expected default answer, got %q", sel.Answer)
	}
	if sel.Matched {
		t.Fatal("expected no match for empty keywords")
	}
}

func TestSelectBest_EmptyCandidates(t *testing.T) {
	sel := SelectBest([]string{"a"}, nil, defaultAnswer)
	if sel.Answer != defaultAnswer {
		t.Fatalf("expected default answer, got %q", sel.Answer)
	}
	if sel.Score != 0 {
		t.Fatalf("expected score 0, got %d", sel.Score)
	}
}

func TestSelectBest_HighestOverlapWins(t *testing.T) {
	cands := []domain.QARecord{
		candidate(t, "r1", "X", "a", "b"),
		candidate(t, "r2", "Y", "a"),
	}

	sel := SelectBest([]string{"a", "b"}, cands, defaultAnswer)
	if sel.Answer != "X" {
		t.Fatalf("expected X (score 2 beats score 1), got %q", sel.Answer)
	}
	if sel.Score != 2 {
		t.Fatalf("expected score 2, got %d", sel.Score)
	}
}

func TestSelectBest_FirstWinsOnTie(t *testing.T) {
	cands := []domain.QARecord{
		candidate(t, "r1", "X", "a"),
		candidate(t, "r2", "Y", "a"),
	}

	sel := SelectBest([]string{"a"}, cands, defaultAnswer)
	if sel.Answer != "X" {
		t.Fatalf("expected first candidate to win the tie, got %q", sel.Answer)
	}
	if sel.RecordID != "r1" {
		t.Fatalf("expected record r1, got %s", sel.RecordID)
	}
}

func TestSelectBest_DuplicateQueryKeywordsCountOnce(t *testing.T) {
	cands := []domain.QARecord{candidate(t, "r1", "X", "a", "b")}

	sel := SelectBest([]string{"a", "a", "b"}, cands, defaultAnswer)
	if sel.Score != 2 {
		t.Fatalf("expected score 2 (set semantics), got %d", sel.Score)
	}
}

func TestSelectBest_ZeroOverlapNeverBeatsDefault(t *testing.T) {
	cands := []domain.QARecord{
		candidate(t, "r1", "X", "x", "y"),
		candidate(t, "r2", "Y", "z"),
	}

	sel := SelectBest([]string{"a", "b"}, cands, defaultAnswer)
	if sel.Answer != defaultAnswer {
		t.Fatalf("expected default answer for zero overlap, got %q", sel.Answer)
	}
	if sel.Matched {
		t.Fatal("zero-overlap candidates must be equivalent to no match")
	}
}

func TestSelectBest_LaterHigherScoreReplaces(t *testing.T) {
	cands := []domain.QARecord{
		candidate(t, "r1", "X", "a"),
		candidate(t, "r2", "Y", "a", "b", "c"),
	}

	sel := SelectBest([]string{"a", "b", "c"}, cands, defaultAnswer)
	if sel.Answer != "Y" {
		t.Fatalf("expected Y (score 3), got %q", sel.Answer)
	}
	if sel.Score != 3 {
		t.Fatalf("expected score 3, got %d", sel.Score)
	}
}

func TestSelectBestAnswer_ReturnsAnswerOnly(t *testing.T) {
	cands := []domain.QARecord{candidate(t, "r1", "X", "a")}

	if got := SelectBestAnswer([]string{"a"}, cands, defaultAnswer); got != "X" {
		t.Fatalf("expected X, got %q", got)
	}
	if got := SelectBestAnswer(nil, cands, defaultAnswer); got != defaultAnswer {
		t.Fatalf("expected default answer, got %q", got)
	}
}
