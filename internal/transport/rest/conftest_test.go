package rest

import (
	"context"
	"net/http/httptest"
	"sort"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/helpbase/faqdex/internal/domain"
	"github.com/helpbase/faqdex/internal/match"
	chatuc "github.com/helpbase/faqdex/internal/usecase/chat"
	healthuc "github.com/helpbase/faqdex/internal/usecase/health"
	recorduc "github.com/helpbase/faqdex/internal/usecase/record"
)

// memRepo is an in-memory record repository for handler tests.
type memRepo struct {
	records map[string]domain.QARecord
	err     error
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[string]domain.QARecord)}
}

func (m *memRepo) Upsert(_ context.Context, rec *domain.QARecord) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, exists := m.records[rec.ID()]
	m.records[rec.ID()] = *rec
	return !exists, nil
}

func (m *memRepo) Get(_ context.Context, id string) (domain.QARecord, error) {
	if m.err != nil {
		return domain.QARecord{}, m.err
	}
	rec, ok := m.records[id]
	if !ok {
		return domain.QARecord{}, domain.ErrRecordNotFound
	}
	return rec, nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.records[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *memRepo) List(_ context.Context) ([]domain.QARecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]string, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]domain.QARecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.records[id])
	}
	return out, nil
}

func (m *memRepo) Count(_ context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.records), nil
}

// FindByAnyKeyword makes memRepo double as the chat retriever.
func (m *memRepo) FindByAnyKeyword(ctx context.Context, keywords []string) ([]domain.QARecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	recs, _ := m.List(ctx)
	out := make([]domain.QARecord, 0)
	for _, rec := range recs {
		for _, kw := range keywords {
			if rec.HasKeyword(kw) {
				out = append(out, rec)
				break
			}
		}
	}
	return out, nil
}

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

var testMessages = chatuc.Messages{
	Default:  "I don't know that one.",
	Trouble:  "Trouble connecting.",
	Prompt:   "Please ask a question.",
	Greeting: "Hello!",
	Thanks:   "You're welcome!",
}

// newTestServer wires the full stack over in-memory fakes and returns the
// repo for seeding and the httptest server.
func newTestServer(adminKeys []string, pingErr error) (*memRepo, *httptest.Server) {
	repo := newMemRepo()
	extractor := match.NewExtractor(match.DefaultStopWords(), 10)

	srv := NewServer(
		chatuc.New(repo, extractor, testMessages),
		recorduc.New(repo, extractor),
		healthuc.New(&mockPinger{err: pingErr}),
		zap.NewNop(),
	)

	r := chi.NewRouter()
	srv.Routes(r, BearerAuthMiddleware(adminKeys))
	return repo, httptest.NewServer(r)
}
