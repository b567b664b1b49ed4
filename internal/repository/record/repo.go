// Package record persists QA records in Redis hashes and maintains the
// keyword inverted index (one set of record IDs per keyword) that backs
// find-by-any-keyword retrieval.
package record

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/helpbase/faqdex/internal/db"
	"github.com/helpbase/faqdex/internal/domain"
)

// store is the consumer interface for records (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
	SAdd(ctx context.Context, key string, members ...string) error
	SRem(ctx context.Context, key string, members ...string) error
	SUnion(ctx context.Context, keys ...string) ([]string, error)
}

// DefaultKeyPrefix namespaces all faqdex keys.
const DefaultKeyPrefix = "faqdex:"

// Repo implements the record repository over a Redis-like store.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates a record repository.
func New(s store) *Repo {
	return &Repo{store: s, keyPrefix: DefaultKeyPrefix}
}

// WithKeyPrefix overrides the key namespace.
func (r *Repo) WithKeyPrefix(prefix string) *Repo {
	if prefix != "" {
		r.keyPrefix = prefix
	}
	return r
}

// Upsert creates or updates a record and keeps the keyword index in sync.
// Returns true if created.
func (r *Repo) Upsert(ctx context.Context, rec *domain.QARecord) (bool, error) {
	key := r.recordKey(rec.ID())

	// Read the previous keyword set so stale index memberships get removed.
	var stale []string
	prev, err := r.store.HGetAll(ctx, key)
	exists := err == nil
	switch {
	case err == nil:
		for _, kw := range strings.Split(prev[fieldKeywords], ",") {
			if kw != "" && !rec.HasKeyword(kw) {
				stale = append(stale, kw)
			}
		}
	case errors.Is(err, db.ErrKeyNotFound):
		// new record
	default:
		return false, fmt.Errorf("read previous %s: %w", key, err)
	}

	if err := r.store.HSet(ctx, key, buildHashFields(rec)); err != nil {
		return false, fmt.Errorf("hset %s: %w", key, err)
	}

	for _, kw := range rec.Keywords() {
		if err := r.store.SAdd(ctx, r.keywordKey(kw), rec.ID()); err != nil {
			return false, fmt.Errorf("index keyword %q: %w", kw, err)
		}
	}
	for _, kw := range stale {
		if err := r.store.SRem(ctx, r.keywordKey(kw), rec.ID()); err != nil {
			return false, fmt.Errorf("unindex keyword %q: %w", kw, err)
		}
	}

	return !exists, nil
}

// Get returns a record by ID.
func (r *Repo) Get(ctx context.Context, id string) (domain.QARecord, error) {
	key := r.recordKey(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.QARecord{}, domain.ErrRecordNotFound
		}
		return domain.QARecord{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return parseHashFields(id, m), nil
}

// Delete removes a record and its keyword index memberships.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := r.recordKey(id)

	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.ErrRecordNotFound
		}
		return fmt.Errorf("hgetall %s: %w", key, err)
	}

	for _, kw := range strings.Split(m[fieldKeywords], ",") {
		if kw == "" {
			continue
		}
		if err := r.store.SRem(ctx, r.keywordKey(kw), id); err != nil {
			return fmt.Errorf("unindex keyword %q: %w", kw, err)
		}
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// List returns all records sorted by ID.
func (r *Repo) List(ctx context.Context) ([]domain.QARecord, error) {
	keys, err := r.store.Scan(ctx, r.recordKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}
	sort.Strings(keys)

	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}

	records := make([]domain.QARecord, 0, len(maps))
	for i, m := range maps {
		if len(m) == 0 {
			continue
		}
		records = append(records, parseHashFields(r.extractID(keys[i]), m))
	}
	return records, nil
}

// Count returns the number of stored records.
func (r *Repo) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, r.recordKey("*"))
	if err != nil {
		return 0, fmt.Errorf("scan records: %w", err)
	}
	return len(keys), nil
}

// FindByAnyKeyword returns all records whose keyword set intersects the
// query (OR-match). Candidate order is record-ID order: SUNION returns an
// unordered set, so IDs are sorted to keep the selector's first-wins
// tie-break reproducible across calls.
func (r *Repo) FindByAnyKeyword(ctx context.Context, keywords []string) ([]domain.QARecord, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(keywords))
	keys := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		keys = append(keys, r.keywordKey(kw))
	}

	ids, err := r.store.SUnion(ctx, keys...)
	if err != nil {
		return nil, fmt.Errorf("sunion keywords: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)

	recordKeys := make([]string, len(ids))
	for i, id := range ids {
		recordKeys[i] = r.recordKey(id)
	}
	maps, err := r.store.HGetAllMulti(ctx, recordKeys)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	records := make([]domain.QARecord, 0, len(maps))
	for i, m := range maps {
		if len(m) == 0 {
			continue // dangling index entry
		}
		records = append(records, parseHashFields(ids[i], m))
	}
	return records, nil
}

func (r *Repo) recordKey(id string) string {
	return r.keyPrefix + "record:" + id
}

func (r *Repo) keywordKey(kw string) string {
	return r.keyPrefix + "kw:" + kw
}

func (r *Repo) extractID(key string) string {
	return strings.TrimPrefix(key, r.keyPrefix+"record:")
}
