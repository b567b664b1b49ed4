package domain

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNewQARecord_Valid(t *testing.T) {
	rec, err := NewQARecord("r1", "Library hours?", "9 to 5.", []string{"library", "hours"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID() != "r1" || rec.Answer() != "9 to 5." {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if !rec.HasKeyword("library") || rec.HasKeyword("fees") {
		t.Fatal("keyword membership mismatch")
	}
}

func TestNewQARecord_NormalizesKeywords(t *testing.T) {
	rec, err := NewQARecord("r1", "", "answer", []string{" Library ", "HOURS", "library", "", "hours"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"library", "hours"}
	if !reflect.DeepEqual(rec.Keywords(), want) {
		t.Fatalf("expected %v, got %v", want, rec.Keywords())
	}
}

func TestNewQARecord_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		answer   string
		keywords []string
	}{
		{"empty id", "", "a", []string{"k"}},
		{"bad id chars", "not ok", "a", []string{"k"}},
		{"long id", strings.Repeat("x", 257), "a", []string{"k"}},
		{"empty answer", "r1", "", []string{"k"}},
		{"huge answer", "r1", strings.Repeat("a", MaxAnswerSize+1), []string{"k"}},
		{"no keywords", "r1", "a", nil},
		{"blank keywords", "r1", "a", []string{" ", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQARecord(tt.id, "q", tt.answer, tt.keywords)
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("expected ErrInvalidRecord, got %v", err)
			}
		})
	}
}

func TestReconstructQARecord_NoValidation(t *testing.T) {
	rec := ReconstructQARecord("any id", "q", "", nil)
	if rec.ID() != "any id" {
		t.Fatalf("unexpected ID: %s", rec.ID())
	}
	if len(rec.Keywords()) != 0 {
		t.Fatalf("expected no keywords, got %v", rec.Keywords())
	}
}
