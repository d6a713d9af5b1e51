package script

import (
	"strconv"
	"strings"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
)

const (
	defaultClientName    = "the client"
	defaultClientCompany = "their company"
	defaultScore         = 5
)

// stepContext is the read-only view every step handler works from. All defaulting of the
// loosely-shaped diagnostic happens once, in newStepContext.
type stepContext struct {
	clientName    string
	clientCompany string
	evidence      string

	challenges      []string
	impact          string
	budgetRange     string
	timeline        string
	concerns        []string
	desiredOutcomes []string
	isDecisionMaker bool
	stakeholders    []string
	urgency         int
	keyInsights     []string
	orgType         types.OrgType

	core     []types.OfferItem
	bonus    []types.OfferItem
	decoy    []types.OfferItem
	downsell []types.OfferItem
}

func newStepContext(in Input) stepContext {
	sc := stepContext{
		clientName:      orDefault(in.ClientName, defaultClientName),
		clientCompany:   orDefault(in.ClientCompany, defaultClientCompany),
		isDecisionMaker: true,
		urgency:         defaultScore,
	}
	if in.ValueEvidenceSummary != nil {
		sc.evidence = strings.TrimSpace(*in.ValueEvidenceSummary)
	}

	if a := in.Audit; a != nil {
		if bc := a.BusinessChallenges; bc != nil {
			sc.challenges = bc.PrimaryChallenges
			sc.impact = deref(bc.CurrentImpact)
		}
		if bt := a.BudgetTimeline; bt != nil {
			sc.budgetRange = deref(bt.BudgetRange)
			sc.timeline = deref(bt.Timeline)
		}
		if ar := a.AIReadiness; ar != nil {
			sc.concerns = ar.Concerns
		}
		if an := a.AutomationNeeds; an != nil {
			sc.desiredOutcomes = an.DesiredOutcomes
		}
		if dm := a.DecisionMaking; dm != nil {
			if dm.DecisionMaker != nil && !*dm.DecisionMaker {
				sc.isDecisionMaker = false
			}
			sc.stakeholders = dm.Stakeholders
		}
		if a.UrgencyScore != nil {
			sc.urgency = *a.UrgencyScore
		}
		sc.keyInsights = a.KeyInsights
		if a.OrgType != nil {
			sc.orgType = *a.OrgType
		}
	}

	for _, item := range in.Offers {
		switch item.OfferRole {
		case types.OfferRoleCoreOffer:
			sc.core = append(sc.core, item)
		case types.OfferRoleBonus:
			sc.bonus = append(sc.bonus, item)
		case types.OfferRoleDecoy:
			sc.decoy = append(sc.decoy, item)
		case types.OfferRoleDownsell:
			sc.downsell = append(sc.downsell, item)
		}
	}
	return sc
}

func (sc stepContext) hasEvidence() bool { return sc.evidence != "" }

func (sc stepContext) isNonprofit() bool {
	return sc.orgType == types.OrgTypeNonprofit || sc.orgType == types.OrgTypeEducation
}

func (sc stepContext) hasConcern(concern string) bool {
	for _, c := range sc.concerns {
		if c == concern {
			return true
		}
	}
	return false
}

func orDefault(v *string, def string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return def
	}
	return *v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func firstOr(list []string, def string) string {
	if len(list) == 0 || strings.TrimSpace(list[0]) == "" {
		return def
	}
	return list[0]
}

func ids(items []types.OfferItem, limit int) []int64 {
	out := make([]int64, 0, limit)
	for i, item := range items {
		if i >= limit {
			break
		}
		out = append(out, item.ID)
	}
	return out
}

func head(items []types.OfferItem, limit int) []types.OfferItem {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

// money renders an amount the way the talking-point templates always have: the raw number,
// no grouping and no forced decimals.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func coalesce(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func nonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
