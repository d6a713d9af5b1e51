package sales

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/salesflow-backend/internal/data/repos/testutil"
	"github.com/yungbote/salesflow-backend/internal/pkg/pointers"
)

func TestPainPointEvidenceRepoListTopByContact(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewPainPointEvidenceRepo(db, testutil.Logger(t))

	cat := testutil.SeedCategory(t, ctx, tx, "manual_work", "Manual Work")
	low := testutil.SeedEvidence(t, ctx, tx, 101, cat, 0.2, pointers.Float64(100), nil)
	high := testutil.SeedEvidence(t, ctx, tx, 101, cat, 0.9, pointers.Float64(5000), pointers.String("staff hours"))
	mid := testutil.SeedEvidence(t, ctx, tx, 101, nil, 0.5, nil, nil)
	testutil.SeedEvidence(t, ctx, tx, 202, cat, 1.0, pointers.Float64(1), nil)

	rows, err := repo.ListTopByContact(ctx, tx, 101, 20)
	if err != nil {
		t.Fatalf("ListTopByContact: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].ID != high.ID || rows[1].ID != mid.ID || rows[2].ID != low.ID {
		t.Fatalf("unexpected order: %d %d %d", rows[0].ID, rows[1].ID, rows[2].ID)
	}
	if rows[0].Category == nil || rows[0].Category.DisplayName != "Manual Work" {
		t.Fatalf("category not preloaded: %+v", rows[0].Category)
	}
	if rows[1].Category != nil {
		t.Fatalf("uncategorised row should have nil category")
	}

	limited, err := repo.ListTopByContact(ctx, tx, 101, 2)
	if err != nil {
		t.Fatalf("ListTopByContact limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(limited))
	}

	none, err := repo.ListTopByContact(ctx, tx, 999, 20)
	if err != nil {
		t.Fatalf("ListTopByContact empty: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no rows, got %d", len(none))
	}
}

func TestValueReportRepoGetLatestByContact(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewValueReportRepo(db, testutil.Logger(t))

	now := time.Now().UTC().Truncate(time.Second)
	testutil.SeedValueReport(t, ctx, tx, 101, "old", pointers.Float64(10), now.Add(-48*time.Hour))
	latest := testutil.SeedValueReport(t, ctx, tx, 101, "new", pointers.Float64(42000), now)
	testutil.SeedValueReport(t, ctx, tx, 202, "other", pointers.Float64(1), now.Add(time.Hour))

	got, err := repo.GetLatestByContact(ctx, tx, 101)
	if err != nil {
		t.Fatalf("GetLatestByContact: %v", err)
	}
	if got == nil || got.ID != latest.ID {
		t.Fatalf("expected latest report %d, got %+v", latest.ID, got)
	}

	missing, err := repo.GetLatestByContact(ctx, tx, 999)
	if err != nil {
		t.Fatalf("GetLatestByContact missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil, got %+v", missing)
	}
}
