package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/shellsense/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	rec := domain.ResolutionRecord{
		Timestamp:       time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Request:         "delete old docker images",
		EnhancedRequest: "delete old docker images (only unused ones)",
		Command:         "docker image prune -a",
		Model:           "local",
		Outcome:         "proceed",
		Tier:            domain.TierModerate,
		Allowed:         true,
		MatchedPatterns: []string{"container prune"},
		RoundsUsed:      1,
		LowConfidence:   false,
	}

	if err := store.Save(rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if diff := cmp.Diff(rec, got[0]); diff != "" {
		t.Errorf("record (-want +got):\n%s", diff)
	}
}

func TestSQLiteStoreRecentOrderAndLimit(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i, req := range []string{"first", "second", "third"} {
		rec := domain.ResolutionRecord{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Request:   req,
			Outcome:   "proceed",
			Tier:      domain.TierSafe,
			Allowed:   true,
		}
		if err := store.Save(rec); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	got, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Request != "third" || got[1].Request != "second" {
		t.Errorf("order = %q, %q; want newest first", got[0].Request, got[1].Request)
	}
}

func TestSQLiteStoreSearch(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	records := []domain.ResolutionRecord{
		{Timestamp: base, Request: "list docker containers", Command: "docker ps", Outcome: "proceed", Tier: domain.TierSafe, Allowed: true},
		{Timestamp: base.Add(time.Minute), Request: "show disk usage", Command: "df -h", Outcome: "proceed", Tier: domain.TierSafe, Allowed: true},
	}
	for _, rec := range records {
		if err := store.Save(rec); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	got, err := store.Search("docker", domain.DefaultHistorySearchLimit)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 1 || got[0].Command != "docker ps" {
		t.Errorf("search results = %+v, want the docker record", got)
	}
}
