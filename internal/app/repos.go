package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/salesflow-backend/internal/data/repos"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
)

type Repos struct {
	PainPointEvidence repos.PainPointEvidenceRepo
	ValueReport       repos.ValueReportRepo
}

// wireRepos leaves every repo nil when there is no database.
func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	if db == nil {
		return Repos{}
	}
	log.Info("Wiring repos...")
	return Repos{
		PainPointEvidence: repos.NewPainPointEvidenceRepo(db, log),
		ValueReport:       repos.NewValueReportRepo(db, log),
	}
}
