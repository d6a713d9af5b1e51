package sales

// OrgType changes how pricing is framed.
type OrgType string

const (
	OrgTypeForProfit OrgType = "for_profit"
	OrgTypeNonprofit OrgType = "nonprofit"
	OrgTypeEducation OrgType = "education"
)

// DiagnosticContext is the prospect's self-reported (or rep-entered) situation collected
// before a sales conversation. Every field is optional.
type DiagnosticContext struct {
	BusinessChallenges *BusinessChallenges `json:"business_challenges,omitempty" yaml:"business_challenges,omitempty"`
	BudgetTimeline     *BudgetTimeline     `json:"budget_timeline,omitempty" yaml:"budget_timeline,omitempty"`
	AIReadiness        *AIReadiness        `json:"ai_readiness,omitempty" yaml:"ai_readiness,omitempty"`
	AutomationNeeds    *AutomationNeeds    `json:"automation_needs,omitempty" yaml:"automation_needs,omitempty"`
	DecisionMaking     *DecisionMaking     `json:"decision_making,omitempty" yaml:"decision_making,omitempty"`

	UrgencyScore     *int     `json:"urgency_score,omitempty" yaml:"urgency_score,omitempty"`
	OpportunityScore *int     `json:"opportunity_score,omitempty" yaml:"opportunity_score,omitempty"`
	KeyInsights      []string `json:"key_insights,omitempty" yaml:"key_insights,omitempty"`
	SalesNotes       *string  `json:"sales_notes,omitempty" yaml:"sales_notes,omitempty"`
	OrgType          *OrgType `json:"org_type,omitempty" yaml:"org_type,omitempty"`
}

type BusinessChallenges struct {
	PrimaryChallenges  []string `json:"primary_challenges,omitempty" yaml:"primary_challenges,omitempty"`
	PainPoints         []string `json:"pain_points,omitempty" yaml:"pain_points,omitempty"`
	CurrentImpact      *string  `json:"current_impact,omitempty" yaml:"current_impact,omitempty"`
	AttemptedSolutions []string `json:"attempted_solutions,omitempty" yaml:"attempted_solutions,omitempty"`
}

type BudgetTimeline struct {
	BudgetRange       *string `json:"budget_range,omitempty" yaml:"budget_range,omitempty"`
	Timeline          *string `json:"timeline,omitempty" yaml:"timeline,omitempty"`
	DecisionTimeline  *string `json:"decision_timeline,omitempty" yaml:"decision_timeline,omitempty"`
	BudgetFlexibility *string `json:"budget_flexibility,omitempty" yaml:"budget_flexibility,omitempty"`
}

type AIReadiness struct {
	Concerns       []string `json:"concerns,omitempty" yaml:"concerns,omitempty"`
	TeamReadiness  *string  `json:"team_readiness,omitempty" yaml:"team_readiness,omitempty"`
	DataQuality    *string  `json:"data_quality,omitempty" yaml:"data_quality,omitempty"`
	ReadinessScore *float64 `json:"readiness_score,omitempty" yaml:"readiness_score,omitempty"`
}

type AutomationNeeds struct {
	PriorityAreas       []string `json:"priority_areas,omitempty" yaml:"priority_areas,omitempty"`
	DesiredOutcomes     []string `json:"desired_outcomes,omitempty" yaml:"desired_outcomes,omitempty"`
	ComplexityTolerance *string  `json:"complexity_tolerance,omitempty" yaml:"complexity_tolerance,omitempty"`
}

type DecisionMaking struct {
	DecisionMaker   *bool    `json:"decision_maker,omitempty" yaml:"decision_maker,omitempty"`
	Stakeholders    []string `json:"stakeholders,omitempty" yaml:"stakeholders,omitempty"`
	ApprovalProcess *string  `json:"approval_process,omitempty" yaml:"approval_process,omitempty"`
}
