package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
)

func TestEveryStrategyHasAStepAndLabels(t *testing.T) {
	for _, s := range types.OfferStrategies {
		st, ok := StepTypeForStrategy(s)
		require.True(t, ok, string(s))
		assert.True(t, IsKnownStepType(st), string(s))
		assert.NotEmpty(t, StrategyLabels[s], string(s))
		assert.NotEmpty(t, StrategyDescriptions[s], string(s))
	}
	_, ok := StepTypeForStrategy("bribe")
	assert.False(t, ok)
}

func TestStepTypeForStrategy(t *testing.T) {
	cases := map[types.OfferStrategy]types.StepType{
		types.StrategyStackBonuses:     types.StepValueStack,
		types.StrategyShowAnchor:       types.StepPricing,
		types.StrategyLimitedTime:      types.StepClose,
		types.StrategyCaseStudy:        types.StepSocialProof,
		types.StrategyTrialOffer:       types.StepRiskReversal,
		types.StrategyScheduleFollowup: types.StepFollowup,
		types.StrategyContinueScript:   types.StepPresentation,
	}
	for s, want := range cases {
		got, _ := StepTypeForStrategy(s)
		assert.Equal(t, want, got, string(s))
	}
}

func TestRecommendedStrategies(t *testing.T) {
	for _, r := range types.ResponseTypes {
		assert.Len(t, RecommendedStrategies(r), 3, string(r))
		assert.NotEmpty(t, ResponseTypeLabels[r], string(r))
	}
	assert.Equal(t,
		[]types.OfferStrategy{types.StrategyStackBonuses, types.StrategyShowDecoy, types.StrategyPaymentPlan},
		RecommendedStrategies(types.ResponsePriceObjection),
	)
	assert.Nil(t, RecommendedStrategies("shrug"))

	got := RecommendedStrategies(types.ResponseDIY)
	got[0] = types.StrategyGuarantee
	assert.Equal(t, types.StrategyROICalculator, RecommendedStrategies(types.ResponseDIY)[0])
}

func TestStrategyOptions(t *testing.T) {
	opts := StrategyOptions(types.ResponsePastFailure)
	require.Len(t, opts, 3)
	assert.Equal(t, StrategyOption{
		Strategy:    types.StrategyCaseStudy,
		Label:       "Show Case Study",
		Description: "Share success stories from similar clients",
		StepType:    types.StepSocialProof,
		Rank:        1,
	}, opts[0])
	assert.Equal(t, 3, opts[2].Rank)
	assert.Empty(t, StrategyOptions("shrug"))

	for _, st := range types.StepTypes {
		assert.NotEmpty(t, StepTypeLabels[st], string(st))
	}
}
