package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/salesflow-backend/internal/data/repos/sales"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
)

type PainPointEvidenceRepo = sales.PainPointEvidenceRepo
type ValueReportRepo = sales.ValueReportRepo

func NewPainPointEvidenceRepo(db *gorm.DB, log *logger.Logger) PainPointEvidenceRepo {
	return sales.NewPainPointEvidenceRepo(db, log)
}

func NewValueReportRepo(db *gorm.DB, log *logger.Logger) ValueReportRepo {
	return sales.NewValueReportRepo(db, log)
}
