package chat

import (
	"context"

	"github.com/helpbase/faqdex/internal/domain"
)

// Retriever fetches candidate records whose keyword set intersects the
// query (OR-match). The matcher depends only on this contract, not on any
// specific store, so it can be unit-tested with in-memory fixtures.
type Retriever interface {
	FindByAnyKeyword(ctx context.Context, keywords []string) ([]domain.QARecord, error)
}
