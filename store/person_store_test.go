package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interrors "github.com/rduarte/go-name-matcher/internal/errors"
	"github.com/rduarte/go-name-matcher/model"
)

func newSeededStore(t *testing.T) *PersonStore {
	t.Helper()
	s := NewPersonStore()
	s.Add("Mary", "Ann", "mary.ann@example.com")
	s.Add("John", "D'Souza", "john.dsouza@example.com")
	s.Add("Jean-Pierre", "Dubois", "jeanpierre.dubois@example.com")
	s.Add("Mary", "Johnson", "mary.johnson@example.com")
	return s
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	s := NewPersonStore()
	first := s.Add("Mary", "Ann", "")
	second := s.Add("John", "Smith", "")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, "Mary Ann", first.FullName)
	assert.Equal(t, 2, s.Len())
}

func TestLookupExact(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	t.Run("matches full name", func(t *testing.T) {
		records, err := s.LookupExact(ctx, "Mary Ann")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, int64(1), records[0].ID)
	})

	t.Run("matches first name across records", func(t *testing.T) {
		records, err := s.LookupExact(ctx, "Mary")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.True(t, records[0].ID < records[1].ID, "results must be ID-ordered")
	})

	t.Run("case-sensitive", func(t *testing.T) {
		records, err := s.LookupExact(ctx, "mary ann")
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestScanPrefix(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	records, err := s.ScanPrefix(ctx, "jea")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Jean-Pierre Dubois", records[0].FullName)

	t.Run("case-insensitive", func(t *testing.T) {
		records, err := s.ScanPrefix(ctx, "MAR")
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("empty prefix matches nothing", func(t *testing.T) {
		records, err := s.ScanPrefix(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestScanAll(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	t.Run("nil predicate returns everything", func(t *testing.T) {
		records, err := s.ScanAll(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, records, 4)
	})

	t.Run("predicate filters", func(t *testing.T) {
		records, err := s.ScanAll(ctx, func(rec model.NameRecord) bool {
			return rec.LastName == "Dubois"
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Jean-Pierre", records[0].FirstName)
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.ScanAll(cancelled, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("honors expired deadline", func(t *testing.T) {
		expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()
		_, err := s.ScanAll(expired, nil)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestByID(t *testing.T) {
	s := newSeededStore(t)
	ctx := context.Background()

	rec, err := s.ByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "John D'Souza", rec.FullName)

	_, err = s.ByID(ctx, 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, interrors.ErrRecordNotFound))
}

func TestSeedSample(t *testing.T) {
	s := NewPersonStore()
	SeedSample(s, 100, 42)

	assert.Equal(t, 100, s.Len())

	ctx := context.Background()

	// Special variant names come first with stable IDs.
	records, err := s.LookupExact(ctx, "Mary Ann")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].ID)

	dsouza, err := s.LookupExact(ctx, "D'Souza")
	require.NoError(t, err)
	assert.NotEmpty(t, dsouza)

	// Emails follow the historical derivation.
	assert.Equal(t, "mary.ann@example.com", records[0].Email)

	// Deterministic for a fixed seed.
	other := NewPersonStore()
	SeedSample(other, 100, 42)
	all, err := s.ScanAll(ctx, nil)
	require.NoError(t, err)
	otherAll, err := other.ScanAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, otherAll, len(all))
	for i := range all {
		assert.Equal(t, all[i].FullName, otherAll[i].FullName)
	}
}
