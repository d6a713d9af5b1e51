package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
)

func TestResolveObjectionTitles(t *testing.T) {
	want := map[string]string{
		"price_objection":     "Address Price Concern",
		"timing_objection":    "Address Timing Concern",
		"authority_objection": "Navigate Decision Process",
		"feature_concern":     "Address Fit Concerns",
		"past_failure":        "Address Past Experience",
		"diy":                 "Address DIY Consideration",
		"competitor":          "Address Competition",
		"":                    "Address Concerns",
		"positive":            "Address Concerns",
		"PRICE_OBJECTION":     "Address Concerns",
	}
	for category, title := range want {
		r := ResolveObjection(category, ObjectionContext{})
		assert.Equal(t, title, r.Title, category)
		require.NotEmpty(t, r.TalkingPoints, category)
		require.NotEmpty(t, r.SuggestedActions, category)
		assert.NotEmpty(t, r.Objective, category)
	}
}

func TestResolveObjectionUsesContext(t *testing.T) {
	oc := ObjectionContext{
		BudgetRange:  "$10k-$20k",
		Timeline:     "next quarter",
		Stakeholders: []string{"the CFO", "the COO"},
		Impact:       "Lost Deals",
		Challenges:   []string{"Slow Onboarding"},
	}

	price := ResolveObjection(string(types.ResponsePriceObjection), oc)
	assert.Contains(t, price.TalkingPoints, `"You mentioned this problem is costing you lost deals. If we solve that, what's the ROI look like?"`)
	assert.Contains(t, price.TalkingPoints, `"Your budget of $10k-$20k - is that a hard limit, or is there flexibility if we can show clear ROI?"`)

	timing := ResolveObjection(string(types.ResponseTimingObjection), oc)
	assert.Contains(t, timing.TalkingPoints, `"You mentioned next quarter. What would need to happen between now and then?"`)

	authority := ResolveObjection(string(types.ResponseAuthorityObjection), oc)
	assert.Contains(t, authority.TalkingPoints, `"You mentioned the CFO and the COO. What questions do you think they'll have?"`)

	fit := ResolveObjection(string(types.ResponseFeatureConcern), oc)
	assert.Contains(t, fit.TalkingPoints, `"When you think about solving slow onboarding, what's most important to you?"`)
}

func TestResolveObjectionWithoutContext(t *testing.T) {
	price := ResolveObjection(string(types.ResponsePriceObjection), ObjectionContext{})
	assert.Contains(t, price.TalkingPoints, `"What budget range would make this a no-brainer for you?"`)
	assert.Contains(t, price.TalkingPoints, `"Let me ask - what would solving this problem be worth to you?"`)

	authority := ResolveObjection(string(types.ResponseAuthorityObjection), ObjectionContext{})
	assert.Contains(t, authority.TalkingPoints, `"Tell me about your decision-making process. Who needs to sign off?"`)
}

func TestIsObjection(t *testing.T) {
	assert.True(t, IsObjection(types.ResponseDIY))
	assert.False(t, IsObjection(types.ResponsePositive))
	assert.False(t, IsObjection(types.ResponseBudgetConstrainedNonprofit))
}

func TestFindObjectionHandlers(t *testing.T) {
	got := FindObjectionHandlers("Honestly it's Too Expensive and not the right time", nil)
	require.Len(t, got, 2)
	assert.Equal(t, "price", got[0].Category)
	assert.Equal(t, "timing", got[1].Category)

	got = FindObjectionHandlers("diy", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "can do it myself", got[0].Trigger)

	custom := []ObjectionHandler{{Trigger: "locked into a contract", Category: "contract", Response: "When does it end?"}}
	got = FindObjectionHandlers("We're locked into a contract", custom)
	require.Len(t, got, 1)
	assert.Equal(t, "When does it end?", got[0].Response)

	assert.Empty(t, FindObjectionHandlers("sounds great", custom))
}
