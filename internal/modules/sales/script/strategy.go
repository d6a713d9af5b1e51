package script

import (
	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
)

var strategyStepTypes = map[types.OfferStrategy]types.StepType{
	types.StrategyStackBonuses:     types.StepValueStack,
	types.StrategyShowDecoy:        types.StepPricing,
	types.StrategyShowAnchor:       types.StepPricing,
	types.StrategyPaymentPlan:      types.StepPricing,
	types.StrategyLimitedTime:      types.StepClose,
	types.StrategyCaseStudy:        types.StepSocialProof,
	types.StrategyGuarantee:        types.StepRiskReversal,
	types.StrategyTrialOffer:       types.StepRiskReversal,
	types.StrategyStakeholderCall:  types.StepFollowup,
	types.StrategyROICalculator:    types.StepPresentation,
	types.StrategyDifferentProduct: types.StepPresentation,
	types.StrategyScheduleFollowup: types.StepFollowup,
	types.StrategyContinueScript:   types.StepPresentation,
}

// Primary, secondary and tertiary strategies per prospect response.
var responseStrategies = map[types.ResponseType][]types.OfferStrategy{
	types.ResponsePositive:                   {types.StrategyContinueScript, types.StrategyStackBonuses, types.StrategyLimitedTime},
	types.ResponsePriceObjection:             {types.StrategyStackBonuses, types.StrategyShowDecoy, types.StrategyPaymentPlan},
	types.ResponseTimingObjection:            {types.StrategyLimitedTime, types.StrategyStackBonuses, types.StrategyScheduleFollowup},
	types.ResponseAuthorityObjection:         {types.StrategyStakeholderCall, types.StrategyROICalculator, types.StrategyCaseStudy},
	types.ResponseFeatureConcern:             {types.StrategyDifferentProduct, types.StrategyStackBonuses, types.StrategyTrialOffer},
	types.ResponsePastFailure:                {types.StrategyCaseStudy, types.StrategyGuarantee, types.StrategyTrialOffer},
	types.ResponseDIY:                        {types.StrategyROICalculator, types.StrategyCaseStudy, types.StrategyTrialOffer},
	types.ResponseCompetitor:                 {types.StrategyStackBonuses, types.StrategyShowAnchor, types.StrategyGuarantee},
	types.ResponseNeutral:                    {types.StrategyContinueScript, types.StrategyROICalculator, types.StrategyCaseStudy},
	types.ResponseBudgetConstrainedNonprofit: {types.StrategyShowDecoy, types.StrategyPaymentPlan, types.StrategyROICalculator},
}

// StepTypeForStrategy maps a chosen strategy to the step type it should generate.
func StepTypeForStrategy(s types.OfferStrategy) (types.StepType, bool) {
	t, ok := strategyStepTypes[s]
	return t, ok
}

// RecommendedStrategies returns a copy of the ranked strategies for a response, or nil.
func RecommendedStrategies(r types.ResponseType) []types.OfferStrategy {
	list := responseStrategies[r]
	if len(list) == 0 {
		return nil
	}
	out := make([]types.OfferStrategy, len(list))
	copy(out, list)
	return out
}

var StepTypeLabels = map[types.StepType]string{
	types.StepOpening:         "Build Rapport",
	types.StepDiscovery:       "Discovery",
	types.StepPresentation:    "Present Offer",
	types.StepValueStack:      "Stack Value",
	types.StepObjectionHandle: "Handle Objection",
	types.StepSocialProof:     "Social Proof",
	types.StepRiskReversal:    "Risk Reversal",
	types.StepPricing:         "Pricing Options",
	types.StepClose:           "Close",
	types.StepFollowup:        "Follow-up",
}

var ResponseTypeLabels = map[types.ResponseType]string{
	types.ResponsePositive:                   "Positive",
	types.ResponsePriceObjection:             "Price Objection",
	types.ResponseTimingObjection:            "Timing Objection",
	types.ResponseAuthorityObjection:         "Needs Authority",
	types.ResponseFeatureConcern:             "Feature Concern",
	types.ResponsePastFailure:                "Past Failure",
	types.ResponseDIY:                        "DIY",
	types.ResponseCompetitor:                 "Competitor",
	types.ResponseNeutral:                    "Neutral",
	types.ResponseBudgetConstrainedNonprofit: "Nonprofit Budget",
}

var StrategyLabels = map[types.OfferStrategy]string{
	types.StrategyStackBonuses:     "Stack Bonuses",
	types.StrategyShowDecoy:        "Show Decoy",
	types.StrategyShowAnchor:       "Show Anchor",
	types.StrategyPaymentPlan:      "Payment Plan",
	types.StrategyLimitedTime:      "Limited Time Offer",
	types.StrategyCaseStudy:        "Show Case Study",
	types.StrategyGuarantee:        "Offer Guarantee",
	types.StrategyTrialOffer:       "Trial Offer",
	types.StrategyStakeholderCall:  "Stakeholder Call",
	types.StrategyROICalculator:    "ROI Calculator",
	types.StrategyDifferentProduct: "Different Product",
	types.StrategyScheduleFollowup: "Schedule Follow-up",
	types.StrategyContinueScript:   "Continue Script",
}

var StrategyDescriptions = map[types.OfferStrategy]string{
	types.StrategyStackBonuses:     "Add more value by presenting bonuses included with the offer",
	types.StrategyShowDecoy:        "Present a lower-value option to make the main offer more attractive",
	types.StrategyShowAnchor:       "Show a high-priced option to make the main offer seem more reasonable",
	types.StrategyPaymentPlan:      "Offer payment terms to reduce the upfront cost barrier",
	types.StrategyLimitedTime:      "Create urgency with a time-sensitive bonus or discount",
	types.StrategyCaseStudy:        "Share success stories from similar clients",
	types.StrategyGuarantee:        "Reduce perceived risk with a money-back or results guarantee",
	types.StrategyTrialOffer:       "Offer a low-risk trial or pilot program",
	types.StrategyStakeholderCall:  "Schedule a call that includes decision makers",
	types.StrategyROICalculator:    "Walk through the ROI and value breakdown",
	types.StrategyDifferentProduct: "Suggest an alternative product that better fits their needs",
	types.StrategyScheduleFollowup: "Schedule a follow-up call for a better time",
	types.StrategyContinueScript:   "Move forward with the next step in the script",
}

// StrategyOption is a recommended strategy ready for display.
type StrategyOption struct {
	Strategy    types.OfferStrategy `json:"strategy"`
	Label       string              `json:"label"`
	Description string              `json:"description"`
	StepType    types.StepType      `json:"stepType"`
	Rank        int                 `json:"rank"`
}

func StrategyOptions(r types.ResponseType) []StrategyOption {
	list := responseStrategies[r]
	out := make([]StrategyOption, 0, len(list))
	for i, s := range list {
		out = append(out, StrategyOption{
			Strategy:    s,
			Label:       StrategyLabels[s],
			Description: StrategyDescriptions[s],
			StepType:    strategyStepTypes[s],
			Rank:        i + 1,
		})
	}
	return out
}
