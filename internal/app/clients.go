package app

import (
	"fmt"

	"github.com/yungbote/salesflow-backend/internal/data/db"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
	"github.com/yungbote/salesflow-backend/internal/realtime/bus"
)

type Clients struct {
	Postgres *db.PostgresService
	EventBus bus.Bus
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	var pg *db.PostgresService
	if cfg.EvidenceEnabled {
		p, err := db.NewPostgresService(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init postgres: %w", err)
		}
		if cfg.DBAutoMigrate {
			if err := p.AutoMigrateAll(); err != nil {
				_ = p.Close()
				return Clients{}, fmt.Errorf("postgres automigrate: %w", err)
			}
		}
		pg = p
	} else {
		log.Info("EVIDENCE_ENABLED=false; steps will be generated without value evidence")
	}

	eventBus, err := bus.NewEventBus(log, cfg.Redis)
	if err != nil {
		if pg != nil {
			_ = pg.Close()
		}
		return Clients{}, fmt.Errorf("init event bus: %w", err)
	}

	return Clients{Postgres: pg, EventBus: eventBus}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.EventBus != nil {
		_ = c.EventBus.Close()
	}
	if c.Postgres != nil {
		_ = c.Postgres.Close()
	}
}
