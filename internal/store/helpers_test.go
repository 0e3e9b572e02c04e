package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"app-registry/internal/metrics"
	"app-registry/internal/models"
)

func createTestStore(t *testing.T, mode models.MatchMode) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "applications.db")
	s, err := Open(context.Background(), path, Options{MatchMode: mode, Metrics: metrics.NewRecorder()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seed(t *testing.T, s *Store, entries ...models.Entry) {
	t.Helper()
	for _, e := range entries {
		require.NoError(t, s.Insert(context.Background(), e.Name, e.Path))
	}
}

func names(t *testing.T, s *Store) []string {
	t.Helper()
	entries, err := s.Entries(context.Background())
	require.NoError(t, err)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}
