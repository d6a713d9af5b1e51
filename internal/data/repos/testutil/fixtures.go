package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
)

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name, display string) *types.PainPointCategory {
	tb.Helper()
	c := &types.PainPointCategory{Name: name, DisplayName: display}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedEvidence(tb testing.TB, ctx context.Context, tx *gorm.DB, contactID int64, category *types.PainPointCategory, confidence float64, monetary *float64, monetaryContext *string) *types.PainPointEvidence {
	tb.Helper()
	row := &types.PainPointEvidence{
		ContactSubmissionID: contactID,
		SourceExcerpt:       "excerpt",
		ConfidenceScore:     confidence,
		MonetaryIndicator:   monetary,
		MonetaryContext:     monetaryContext,
	}
	if category != nil {
		row.PainPointCategoryID = &category.ID
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed evidence: %v", err)
	}
	return row
}

func SeedValueReport(tb testing.TB, ctx context.Context, tx *gorm.DB, contactID int64, title string, total *float64, createdAt time.Time) *types.ValueReport {
	tb.Helper()
	row := &types.ValueReport{
		ContactSubmissionID: &contactID,
		Title:               title,
		TotalAnnualValue:    total,
		CreatedAt:           createdAt,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed value report: %v", err)
	}
	return row
}
