package sales

import "encoding/json"

type StepType string

const (
	StepOpening         StepType = "opening"
	StepDiscovery       StepType = "discovery"
	StepPresentation    StepType = "presentation"
	StepValueStack      StepType = "value_stack"
	StepObjectionHandle StepType = "objection_handle"
	StepSocialProof     StepType = "social_proof"
	StepRiskReversal    StepType = "risk_reversal"
	StepPricing         StepType = "pricing"
	StepClose           StepType = "close"
	StepFollowup        StepType = "followup"
)

// StepTypes lists the scripted step types in their usual conversational order.
var StepTypes = []StepType{
	StepOpening,
	StepDiscovery,
	StepPresentation,
	StepValueStack,
	StepObjectionHandle,
	StepSocialProof,
	StepRiskReversal,
	StepPricing,
	StepClose,
	StepFollowup,
}

// ResponseType is how the prospect reacted to the last step.
type ResponseType string

const (
	ResponsePositive                   ResponseType = "positive"
	ResponsePriceObjection             ResponseType = "price_objection"
	ResponseTimingObjection            ResponseType = "timing_objection"
	ResponseAuthorityObjection         ResponseType = "authority_objection"
	ResponseFeatureConcern             ResponseType = "feature_concern"
	ResponsePastFailure                ResponseType = "past_failure"
	ResponseDIY                        ResponseType = "diy"
	ResponseCompetitor                 ResponseType = "competitor"
	ResponseNeutral                    ResponseType = "neutral"
	ResponseBudgetConstrainedNonprofit ResponseType = "budget_constrained_nonprofit"
)

var ResponseTypes = []ResponseType{
	ResponsePositive,
	ResponsePriceObjection,
	ResponseTimingObjection,
	ResponseAuthorityObjection,
	ResponseFeatureConcern,
	ResponsePastFailure,
	ResponseDIY,
	ResponseCompetitor,
	ResponseNeutral,
	ResponseBudgetConstrainedNonprofit,
}

// OfferStrategy is the rep's chosen answer to a response.
type OfferStrategy string

const (
	StrategyStackBonuses     OfferStrategy = "stack_bonuses"
	StrategyShowDecoy        OfferStrategy = "show_decoy"
	StrategyShowAnchor       OfferStrategy = "show_anchor"
	StrategyPaymentPlan      OfferStrategy = "payment_plan"
	StrategyLimitedTime      OfferStrategy = "limited_time"
	StrategyCaseStudy        OfferStrategy = "case_study"
	StrategyGuarantee        OfferStrategy = "guarantee"
	StrategyTrialOffer       OfferStrategy = "trial_offer"
	StrategyStakeholderCall  OfferStrategy = "stakeholder_call"
	StrategyROICalculator    OfferStrategy = "roi_calculator"
	StrategyDifferentProduct OfferStrategy = "different_product"
	StrategyScheduleFollowup OfferStrategy = "schedule_followup"
	StrategyContinueScript   OfferStrategy = "continue_script"
)

var OfferStrategies = []OfferStrategy{
	StrategyStackBonuses,
	StrategyShowDecoy,
	StrategyShowAnchor,
	StrategyPaymentPlan,
	StrategyLimitedTime,
	StrategyCaseStudy,
	StrategyGuarantee,
	StrategyTrialOffer,
	StrategyStakeholderCall,
	StrategyROICalculator,
	StrategyDifferentProduct,
	StrategyScheduleFollowup,
	StrategyContinueScript,
}

type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusActive    StepStatus = "active"
	StepStatusCompleted StepStatus = "completed"
	StepStatusSkipped   StepStatus = "skipped"
)

type TriggeredBy struct {
	ResponseType ResponseType  `json:"responseType" yaml:"responseType"`
	Strategy     OfferStrategy `json:"strategy" yaml:"strategy"`
}

// DynamicStep is one unit of a guided sales script.
type DynamicStep struct {
	ID                string       `json:"id" yaml:"id"`
	StepNumber        int          `json:"stepNumber" yaml:"stepNumber"`
	Type              StepType     `json:"type" yaml:"type"`
	Title             string       `json:"title" yaml:"title"`
	Objective         string       `json:"objective" yaml:"objective"`
	TalkingPoints     []string     `json:"talkingPoints" yaml:"talkingPoints"`
	SuggestedActions  []string     `json:"suggestedActions" yaml:"suggestedActions"`
	ProductsToPresent []int64      `json:"productsToPresent" yaml:"productsToPresent"`
	TriggeredBy       *TriggeredBy `json:"triggeredBy,omitempty" yaml:"triggeredBy,omitempty"`
	Status            StepStatus   `json:"status" yaml:"status"`
	CompletedAt       *string      `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	Response          ResponseType `json:"response,omitempty" yaml:"response,omitempty"`
}

// ConversationResponse is carried through requests but never interpreted by the generator.
type ConversationResponse = json.RawMessage
