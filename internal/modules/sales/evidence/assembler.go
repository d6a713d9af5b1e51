package evidence

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
	"github.com/yungbote/salesflow-backend/internal/observability"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
)

const (
	evidenceLimit     = 20
	summaryPainPoints = 5
	defaultLabel      = "Pain point"
)

// Source reads the evidence rows for one contact.
type Source interface {
	TopPainPoints(ctx context.Context, contactSubmissionID int64, limit int) ([]*types.PainPointEvidence, error)
	LatestValueReport(ctx context.Context, contactSubmissionID int64) (*types.ValueReport, error)
}

// Assembler condenses stored evidence into the one-line summary the script steps quote.
type Assembler struct {
	src     Source
	log     *logger.Logger
	timeout time.Duration
}

// NewAssembler builds an Assembler. A zero timeout leaves each query bounded only by ctx.
func NewAssembler(src Source, log *logger.Logger, timeout time.Duration) *Assembler {
	if log == nil {
		log = logger.Nop()
	}
	return &Assembler{src: src, log: log.With("service", "EvidenceAssembler"), timeout: timeout}
}

// Summarize returns nil when contactSubmissionID is absent or non-positive, or when neither
// query yields a fragment. Query failures are logged and dropped.
func (a *Assembler) Summarize(ctx context.Context, contactSubmissionID *int64) *string {
	if a == nil || a.src == nil || contactSubmissionID == nil || *contactSubmissionID <= 0 {
		return nil
	}
	id := *contactSubmissionID

	ctx, span := observability.Tracer("salesflow/evidence").Start(ctx, "evidence.Summarize")
	defer span.End()
	span.SetAttributes(attribute.Int64("contact_submission_id", id))

	var (
		rows   []*types.PainPointEvidence
		report *types.ValueReport
	)
	// errgroup.Group without WithContext: one failed query must not cancel the other.
	var g errgroup.Group
	g.Go(func() error {
		qctx, cancel := a.queryContext(ctx)
		defer cancel()
		r, err := a.src.TopPainPoints(qctx, id, evidenceLimit)
		if err != nil {
			a.log.ForContext(ctx).Warn("pain point evidence query failed", "contact_submission_id", id, "error", err)
			span.RecordError(err)
			return nil
		}
		rows = r
		return nil
	})
	g.Go(func() error {
		qctx, cancel := a.queryContext(ctx)
		defer cancel()
		r, err := a.src.LatestValueReport(qctx, id)
		if err != nil {
			a.log.ForContext(ctx).Warn("value report query failed", "contact_submission_id", id, "error", err)
			span.RecordError(err)
			return nil
		}
		report = r
		return nil
	})
	_ = g.Wait()

	summary := Summary(rows, report)
	if summary != nil {
		span.SetAttributes(attribute.Int("summary_len", len(*summary)))
	}
	return summary
}

func (a *Assembler) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout > 0 {
		return context.WithTimeout(ctx, a.timeout)
	}
	return context.WithCancel(ctx)
}

// Summary formats already-loaded rows. rows are expected in confidence order.
func Summary(rows []*types.PainPointEvidence, report *types.ValueReport) *string {
	var parts []string

	var points []string
	for _, r := range rows {
		if r == nil || r.MonetaryIndicator == nil {
			continue
		}
		label := defaultLabel
		if r.Category != nil && r.Category.DisplayName != "" {
			label = r.Category.DisplayName
		}
		line := fmt.Sprintf("%s: $%s/yr", label, Amount(*r.MonetaryIndicator))
		if r.MonetaryContext != nil && *r.MonetaryContext != "" {
			line += fmt.Sprintf(" (%s)", *r.MonetaryContext)
		}
		points = append(points, line)
		if len(points) == summaryPainPoints {
			break
		}
	}
	if len(points) > 0 {
		parts = append(parts, fmt.Sprintf("Quantified pain points: %s.", strings.Join(points, "; ")))
	}

	if report != nil && report.TotalAnnualValue != nil {
		parts = append(parts, fmt.Sprintf("Total value from report: $%s/yr.", Amount(*report.TotalAnnualValue)))
	}

	if len(parts) == 0 {
		return nil
	}
	s := strings.Join(parts, " ")
	return &s
}

// Amount groups thousands and keeps at most three decimals: 12500 -> "12,500",
// 1234.5678 -> "1,234.568".
func Amount(v float64) string {
	return humanize.Commaf(math.Round(v*1000) / 1000)
}
