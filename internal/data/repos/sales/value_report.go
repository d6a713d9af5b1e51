package sales

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
)

type ValueReportRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.ValueReport) ([]*types.ValueReport, error)
	// GetLatestByContact returns the newest report for the contact, or nil when there is none.
	GetLatestByContact(ctx context.Context, tx *gorm.DB, contactSubmissionID int64) (*types.ValueReport, error)
}

type valueReportRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewValueReportRepo(db *gorm.DB, baseLog *logger.Logger) ValueReportRepo {
	return &valueReportRepo{db: db, log: baseLog.With("repo", "ValueReportRepo")}
}

func (r *valueReportRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.ValueReport) ([]*types.ValueReport, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.ValueReport{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *valueReportRepo) GetLatestByContact(ctx context.Context, tx *gorm.DB, contactSubmissionID int64) (*types.ValueReport, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.ValueReport
	err := t.WithContext(ctx).
		Where("contact_submission_id = ?", contactSubmissionID).
		Order("created_at DESC").
		Order("id DESC").
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
