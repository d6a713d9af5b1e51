package offer

import (
	"math"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
)

const (
	bundleDreamOutcome = 8
	defaultLikelihood  = 5
	maxScale           = 10
)

// ValueScore is the value equation normalised to roughly 0-100:
// dream outcome times likelihood, over time delay times effort (floored at 1).
func ValueScore(dream, likelihood, timeDelay, effort float64) int {
	denominator := math.Max(timeDelay*effort, 1)
	return int(math.Round(dream * likelihood / denominator * 10))
}

// StackTotals summarises a set of offer items.
type StackTotals struct {
	TotalRetailValue    float64 `json:"totalRetailValue"`
	TotalPerceivedValue float64 `json:"totalPerceivedValue"`
	ValueScore          int     `json:"valueScore"`
}

// StackValue totals retail and perceived value and scores the bundle. Zero and absent
// amounts both fall through to the next candidate.
func StackValue(items []types.OfferItem) StackTotals {
	var (
		out                            StackTotals
		likelihood, timeRed, effortRed float64
		rated                          int
	)
	for _, it := range items {
		out.TotalRetailValue += firstPositive(it.RoleRetailPrice, it.Price)
		out.TotalPerceivedValue += firstPositive(it.PerceivedValue, it.Price)
		if v := firstPositive(it.LikelihoodMultiplier); v != 0 {
			likelihood += v
			rated++
		}
		timeRed += firstPositive(it.TimeReduction)
		effortRed += firstPositive(it.EffortReduction)
	}

	avgLikelihood := float64(defaultLikelihood)
	if rated > 0 {
		avgLikelihood = likelihood / float64(rated)
	}
	timeDelay := math.Max(maxScale-timeRed/7, 1)
	effort := float64(maxScale)
	if len(items) > 0 {
		effort = math.Max(maxScale-effortRed/float64(len(items)), 1)
	}
	out.ValueScore = ValueScore(bundleDreamOutcome, avgLikelihood, timeDelay, effort)
	return out
}

// firstPositive returns the first non-nil, non-zero value, or 0.
func firstPositive(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil && *v != 0 && !math.IsNaN(*v) {
			return *v
		}
	}
	return 0
}
