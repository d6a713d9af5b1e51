package app

import (
	"github.com/yungbote/salesflow-backend/internal/modules/sales/evidence"
	"github.com/yungbote/salesflow-backend/internal/modules/sales/script"
	"github.com/yungbote/salesflow-backend/internal/observability"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
	"github.com/yungbote/salesflow-backend/internal/services"
)

type Services struct {
	Auth        services.AuthService
	SalesScript services.SalesScriptService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	var summarizer services.EvidenceSummarizer
	if reposet.PainPointEvidence != nil && reposet.ValueReport != nil {
		src := evidence.NewRepoSource(reposet.PainPointEvidence, reposet.ValueReport)
		summarizer = evidence.NewAssembler(src, log, cfg.EvidenceQueryTimeout)
	}

	return Services{
		Auth:        services.NewAuthService(log, cfg.JWTSecretKey, cfg.AdminRole),
		SalesScript: services.NewSalesScriptService(log, script.Generator{}, summarizer, clients.EventBus, metrics),
	}
}
