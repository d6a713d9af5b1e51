package db

import (
	"gorm.io/gorm"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
)

// Models are the tables this service reads. Production schemas belong to the evidence
// pipeline; migrating them here is for local development and tests.
func Models() []interface{} {
	return []interface{}{
		&types.PainPointCategory{},
		&types.PainPointEvidence{},
		&types.ValueReport{},
	}
}

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto-migrating sales evidence tables")
	return AutoMigrateAll(s.db)
}
