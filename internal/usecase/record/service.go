// Package record manages the QA knowledge base behind the admin API.
package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/helpbase/faqdex/internal/domain"
)

// Input is the admin-facing shape of a record to create or import.
type Input struct {
	ID       string
	Question string
	Answer   string
	Keywords []string
}

// ImportResult reports the outcome of one item in a batch import.
type ImportResult struct {
	ID      string
	Created bool
	Err     error
}

// Service manages QA records.
type Service struct {
	repo    Repository
	derive  KeywordDeriver
	maxSize int
}

// New creates a record service.
func New(repo Repository, derive KeywordDeriver) *Service {
	return &Service{repo: repo, derive: derive, maxSize: 500}
}

// WithMaxBatchSize overrides the import batch cap.
func (s *Service) WithMaxBatchSize(n int) *Service {
	if n > 0 {
		s.maxSize = n
	}
	return s
}

// Create validates and stores a record. A missing ID gets a generated UUID;
// a missing keyword set is derived from the question text. Returns the
// stored record and whether it was newly created.
func (s *Service) Create(ctx context.Context, in Input) (domain.QARecord, bool, error) {
	id := in.ID
	if id == "" {
		id = uuid.NewString()
	}

	keywords := in.Keywords
	if len(keywords) == 0 {
		keywords = s.derive.Extract(in.Question)
	}

	rec, err := domain.NewQARecord(id, in.Question, in.Answer, keywords)
	if err != nil {
		return domain.QARecord{}, false, err
	}

	created, err := s.repo.Upsert(ctx, &rec)
	if err != nil {
		return domain.QARecord{}, false, fmt.Errorf("upsert record %s: %w", id, err)
	}
	return rec, created, nil
}

// Import stores a batch of records, one result per item. Items fail
// individually; a bad item does not abort the batch.
func (s *Service) Import(ctx context.Context, items []Input) ([]ImportResult, error) {
	if len(items) > s.maxSize {
		return nil, fmt.Errorf("%w: batch of %d exceeds limit %d",
			domain.ErrInvalidRecord, len(items), s.maxSize)
	}

	results := make([]ImportResult, 0, len(items))
	for _, in := range items {
		rec, created, err := s.Create(ctx, in)
		res := ImportResult{ID: in.ID, Created: created, Err: err}
		if err == nil {
			res.ID = rec.ID()
		}
		results = append(results, res)
	}
	return results, nil
}

// Get returns a record by ID.
func (s *Service) Get(ctx context.Context, id string) (domain.QARecord, error) {
	return s.repo.Get(ctx, id)
}

// List returns all records.
func (s *Service) List(ctx context.Context) ([]domain.QARecord, error) {
	return s.repo.List(ctx)
}

// Delete removes a record.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Count returns the number of stored records.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
