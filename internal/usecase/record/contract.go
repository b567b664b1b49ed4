package record

import (
	"context"

	"github.com/helpbase/faqdex/internal/domain"
)

// Repository defines the storage contract for record management.
type Repository interface {
	Upsert(ctx context.Context, rec *domain.QARecord) (bool, error)
	Get(ctx context.Context, id string) (domain.QARecord, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.QARecord, error)
	Count(ctx context.Context) (int, error)
}

// KeywordDeriver extracts keywords from question text when a record
// arrives without an explicit keyword set.
type KeywordDeriver interface {
	Extract(text string) []string
}
