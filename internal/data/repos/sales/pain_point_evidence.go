package sales

import (
	"context"

	"gorm.io/gorm"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
)

type PainPointEvidenceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.PainPointEvidence) ([]*types.PainPointEvidence, error)
	// ListTopByContact returns up to limit rows for the contact, highest confidence first,
	// with their category preloaded.
	ListTopByContact(ctx context.Context, tx *gorm.DB, contactSubmissionID int64, limit int) ([]*types.PainPointEvidence, error)
}

type painPointEvidenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPainPointEvidenceRepo(db *gorm.DB, baseLog *logger.Logger) PainPointEvidenceRepo {
	return &painPointEvidenceRepo{db: db, log: baseLog.With("repo", "PainPointEvidenceRepo")}
}

func (r *painPointEvidenceRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.PainPointEvidence) ([]*types.PainPointEvidence, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.PainPointEvidence{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *painPointEvidenceRepo) ListTopByContact(ctx context.Context, tx *gorm.DB, contactSubmissionID int64, limit int) ([]*types.PainPointEvidence, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.PainPointEvidence
	if limit <= 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Preload("Category").
		Where("contact_submission_id = ?", contactSubmissionID).
		Order("confidence_score DESC").
		Order("id ASC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
