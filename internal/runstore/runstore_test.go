package runstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenAppliesMigrations(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	version, dirty, err := s.MigrateVersion()
	require.NoError(t, err)
	assert.False(t, dirty)
	assert.GreaterOrEqual(t, version, uint(1))
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "runs.db")

	s1, err := Open(path)
	require.NoError(t, err)
	_, err = s1.RecordRun(Run{Method: "Crude", Samples: 100, Estimate: 3.1, AbsError: 0.04})
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	// Reopening must tolerate the already-migrated schema and keep rows.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	runs, err := s2.ListRuns(10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRecordRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns an ID when absent", func(t *testing.T) {
		t.Parallel()
		s := openTestStore(t)

		id, err := s.RecordRun(Run{Method: "Crude", Samples: 10_000, Estimate: 3.14, AbsError: 0.002})
		require.NoError(t, err)
		_, err = uuid.Parse(id)
		assert.NoError(t, err, "assigned ID should be a UUID")
	})

	t.Run("keeps a caller-supplied ID", func(t *testing.T) {
		t.Parallel()
		s := openTestStore(t)

		want := uuid.NewString()
		id, err := s.RecordRun(Run{ID: want, Method: "Importance", Samples: 10_000, Estimate: 3.15, AbsError: 0.008})
		require.NoError(t, err)
		assert.Equal(t, want, id)
	})

	t.Run("rejects duplicate IDs", func(t *testing.T) {
		t.Parallel()
		s := openTestStore(t)

		id := uuid.NewString()
		_, err := s.RecordRun(Run{ID: id, Method: "Crude", Samples: 1, Estimate: 1, AbsError: 0})
		require.NoError(t, err)
		_, err = s.RecordRun(Run{ID: id, Method: "Crude", Samples: 1, Estimate: 1, AbsError: 0})
		assert.Error(t, err)
	})
}

func TestListRuns(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	want := map[string]Run{}
	for _, r := range []Run{
		{Method: "Crude", Samples: 10_000, Estimate: 3.1391, AbsError: 0.0025},
		{Method: "Importance", Samples: 10_000, Estimate: 3.1438, AbsError: 0.0022},
	} {
		id, err := s.RecordRun(r)
		require.NoError(t, err)
		r.ID = id
		want[id] = r
	}

	runs, err := s.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	for _, got := range runs {
		expected, ok := want[got.ID]
		require.True(t, ok, "unexpected run %s", got.ID)
		assert.Equal(t, expected.Method, got.Method)
		assert.Equal(t, expected.Samples, got.Samples)
		assert.Equal(t, expected.Estimate, got.Estimate)
		assert.Equal(t, expected.AbsError, got.AbsError)
		assert.False(t, got.CreatedAt.IsZero(), "created_at should be populated")
		assert.WithinDuration(t, time.Now().UTC(), got.CreatedAt, time.Minute,
			"created_at should decode to the insertion time")
	}
}

func TestParseCreatedAt(t *testing.T) {
	t.Parallel()

	t.Run("driver RFC3339 text", func(t *testing.T) {
		t.Parallel()
		got, err := parseCreatedAt("2026-08-30T16:06:17Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 30, 16, 6, 17, 0, time.UTC), got)
	})

	t.Run("plain SQLite datetime text", func(t *testing.T) {
		t.Parallel()
		got, err := parseCreatedAt("2026-08-30 16:06:17")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 30, 16, 6, 17, 0, time.UTC), got)
	})

	t.Run("unparseable text is an error, not a zero time", func(t *testing.T) {
		t.Parallel()
		_, err := parseCreatedAt("not-a-timestamp")
		assert.Error(t, err)
	})
}

func TestListRuns_Limit(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		_, err := s.RecordRun(Run{Method: "Crude", Samples: i + 1, Estimate: 3, AbsError: 0.14})
		require.NoError(t, err)
	}

	runs, err := s.ListRuns(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}
