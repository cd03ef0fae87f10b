package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	interrors "github.com/rduarte/go-name-matcher/internal/errors"
	"github.com/rduarte/go-name-matcher/model"
)

// PersonStore is an in-memory implementation of services.Corpus. It keeps an
// exact-name lookup map alongside the record map so equality matches avoid a
// full scan. All read methods are safe for concurrent use; a search only
// ever reads, so concurrent searches need no coordination.
type PersonStore struct {
	mu      sync.RWMutex
	records map[int64]model.NameRecord
	byName  map[string][]int64 // exact field value -> record IDs, insertion order
	ids     []int64            // ascending, for deterministic scans
	nextID  int64
}

// NewPersonStore creates an empty store.
func NewPersonStore() *PersonStore {
	return &PersonStore{
		records: make(map[int64]model.NameRecord),
		byName:  make(map[string][]int64),
	}
}

// Add inserts a person and returns the stored record with its assigned ID.
func (s *PersonStore) Add(firstName, lastName, email string) model.NameRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	rec := model.NameRecord{
		ID:        s.nextID,
		FirstName: firstName,
		LastName:  lastName,
		FullName:  strings.TrimSpace(firstName + " " + lastName),
		Email:     email,
		CreatedAt: time.Now(),
	}

	s.records[rec.ID] = rec
	s.ids = append(s.ids, rec.ID)
	for _, field := range []string{rec.FirstName, rec.LastName, rec.FullName} {
		if field != "" {
			s.byName[field] = appendUnique(s.byName[field], rec.ID)
		}
	}
	return rec
}

// Len returns the number of stored records.
func (s *PersonStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// LookupExact returns records whose first, last, or full name equals value,
// case-sensitively, in ascending ID order.
func (s *PersonStore) LookupExact(ctx context.Context, value string) ([]model.NameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byName[value]
	records := make([]model.NameRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, s.records[id])
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

// ScanPrefix returns records whose first, last, or full name starts with
// prefix, case-insensitively, in ascending ID order.
func (s *PersonStore) ScanPrefix(ctx context.Context, prefix string) ([]model.NameRecord, error) {
	if prefix == "" {
		return []model.NameRecord{}, nil
	}
	lowerPrefix := strings.ToLower(prefix)

	return s.scan(ctx, func(rec model.NameRecord) bool {
		for _, field := range []string{rec.FirstName, rec.LastName, rec.FullName} {
			if strings.HasPrefix(strings.ToLower(field), lowerPrefix) {
				return true
			}
		}
		return false
	})
}

// ScanAll returns every record for which keep returns true, in ascending ID
// order. A nil keep returns the whole corpus.
func (s *PersonStore) ScanAll(ctx context.Context, keep func(model.NameRecord) bool) ([]model.NameRecord, error) {
	return s.scan(ctx, keep)
}

// ByID returns the record with the given ID.
func (s *PersonStore) ByID(ctx context.Context, id int64) (model.NameRecord, error) {
	if err := ctx.Err(); err != nil {
		return model.NameRecord{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return model.NameRecord{}, interrors.NewRecordNotFoundError(id)
	}
	return rec, nil
}

func (s *PersonStore) scan(ctx context.Context, keep func(model.NameRecord) bool) ([]model.NameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.NameRecord, 0)
	for i, id := range s.ids {
		// Honor per-strategy timeouts on large corpora without checking the
		// context on every record.
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		rec := s.records[id]
		if keep == nil || keep(rec) {
			records = append(records, rec)
		}
	}
	return records, nil
}

func appendUnique(ids []int64, id int64) []int64 {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
