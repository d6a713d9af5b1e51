package evidence

import (
	"context"

	"github.com/yungbote/salesflow-backend/internal/data/repos"
	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
)

// RepoSource reads evidence through the gorm repos.
type RepoSource struct {
	PainPoints repos.PainPointEvidenceRepo
	Reports    repos.ValueReportRepo
}

func NewRepoSource(painPoints repos.PainPointEvidenceRepo, reports repos.ValueReportRepo) *RepoSource {
	return &RepoSource{PainPoints: painPoints, Reports: reports}
}

func (s *RepoSource) TopPainPoints(ctx context.Context, contactSubmissionID int64, limit int) ([]*types.PainPointEvidence, error) {
	return s.PainPoints.ListTopByContact(ctx, nil, contactSubmissionID, limit)
}

func (s *RepoSource) LatestValueReport(ctx context.Context, contactSubmissionID int64) (*types.ValueReport, error) {
	return s.Reports.GetLatestByContact(ctx, nil, contactSubmissionID)
}
