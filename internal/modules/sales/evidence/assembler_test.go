package evidence

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
	"github.com/yungbote/salesflow-backend/internal/pkg/pointers"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
)

type fakeSource struct {
	rows      []*types.PainPointEvidence
	report    *types.ValueReport
	rowsErr   error
	reportErr error
	calls     atomic.Int32
	gotLimit  atomic.Int32
	block     chan struct{}
}

func (f *fakeSource) TopPainPoints(ctx context.Context, _ int64, limit int) ([]*types.PainPointEvidence, error) {
	f.calls.Add(1)
	f.gotLimit.Store(int32(limit))
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.rows, f.rowsErr
}

func (f *fakeSource) LatestValueReport(context.Context, int64) (*types.ValueReport, error) {
	f.calls.Add(1)
	return f.report, f.reportErr
}

func painPoint(label string, amount *float64, ctx *string) *types.PainPointEvidence {
	row := &types.PainPointEvidence{MonetaryIndicator: amount, MonetaryContext: ctx}
	if label != "" {
		row.Category = &types.PainPointCategory{DisplayName: label}
	}
	return row
}

func TestSummarizeSkipsMissingContact(t *testing.T) {
	src := &fakeSource{}
	a := NewAssembler(src, logger.Nop(), 0)

	assert.Nil(t, a.Summarize(context.Background(), nil))
	assert.Nil(t, a.Summarize(context.Background(), pointers.Int64(0)))
	assert.Nil(t, a.Summarize(context.Background(), pointers.Int64(-4)))
	assert.Equal(t, int32(0), src.calls.Load())
}

func TestSummarizeNoEvidence(t *testing.T) {
	src := &fakeSource{}
	a := NewAssembler(src, logger.Nop(), time.Second)
	assert.Nil(t, a.Summarize(context.Background(), pointers.Int64(7)))
	assert.Equal(t, int32(2), src.calls.Load())
	assert.Equal(t, int32(20), src.gotLimit.Load())
}

func TestSummarizeBothFragments(t *testing.T) {
	src := &fakeSource{
		rows: []*types.PainPointEvidence{
			painPoint("Manual Work", pointers.Float64(12500), pointers.String("staff hours")),
			painPoint("Churn", nil, nil),
			painPoint("", pointers.Float64(900), pointers.String("")),
		},
		report: &types.ValueReport{Title: "Q3", TotalAnnualValue: pointers.Float64(1234567)},
	}
	got := NewAssembler(src, logger.Nop(), 0).Summarize(context.Background(), pointers.Int64(7))
	require.NotNil(t, got)
	assert.Equal(t,
		"Quantified pain points: Manual Work: $12,500/yr (staff hours); Pain point: $900/yr. Total value from report: $1,234,567/yr.",
		*got,
	)
}

func TestSummarizeDegradesOnQueryFailure(t *testing.T) {
	src := &fakeSource{
		rowsErr: errors.New("connection reset"),
		report:  &types.ValueReport{TotalAnnualValue: pointers.Float64(5000)},
	}
	got := NewAssembler(src, logger.Nop(), 0).Summarize(context.Background(), pointers.Int64(7))
	require.NotNil(t, got)
	assert.Equal(t, "Total value from report: $5,000/yr.", *got)

	src = &fakeSource{
		rows:      []*types.PainPointEvidence{painPoint("Rework", pointers.Float64(300), nil)},
		reportErr: errors.New("timeout"),
	}
	got = NewAssembler(src, logger.Nop(), 0).Summarize(context.Background(), pointers.Int64(7))
	require.NotNil(t, got)
	assert.Equal(t, "Quantified pain points: Rework: $300/yr.", *got)

	src = &fakeSource{rowsErr: errors.New("a"), reportErr: errors.New("b")}
	assert.Nil(t, NewAssembler(src, logger.Nop(), 0).Summarize(context.Background(), pointers.Int64(7)))
}

func TestSummarizeQueryTimeout(t *testing.T) {
	src := &fakeSource{
		block:  make(chan struct{}),
		report: &types.ValueReport{TotalAnnualValue: pointers.Float64(10)},
	}
	got := NewAssembler(src, logger.Nop(), 20*time.Millisecond).Summarize(context.Background(), pointers.Int64(7))
	require.NotNil(t, got)
	assert.Equal(t, "Total value from report: $10/yr.", *got)
}

func TestSummaryCapsPainPoints(t *testing.T) {
	var rows []*types.PainPointEvidence
	for i := 0; i < 8; i++ {
		rows = append(rows, painPoint("P", pointers.Float64(float64(i+1)), nil))
	}
	got := Summary(rows, nil)
	require.NotNil(t, got)
	assert.Equal(t, "Quantified pain points: P: $1/yr; P: $2/yr; P: $3/yr; P: $4/yr; P: $5/yr.", *got)
	assert.Contains(t, *got, "Quantified pain points:")
}

func TestSummaryReportWithoutTotal(t *testing.T) {
	assert.Nil(t, Summary(nil, &types.ValueReport{Title: "empty"}))
}

func TestAmount(t *testing.T) {
	cases := map[float64]string{
		0:         "0",
		999:       "999",
		12500:     "12,500",
		1234.5678: "1,234.568",
		-2500.5:   "-2,500.5",
	}
	for in, want := range cases {
		assert.Equal(t, want, Amount(in))
	}
}
