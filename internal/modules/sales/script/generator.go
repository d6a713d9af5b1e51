package script

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
)

// Input is everything a single step generation needs. The caller owns the conversation
// history; only its length is used here.
type Input struct {
	StepType             types.StepType
	Audit                *types.DiagnosticContext
	ClientName           *string
	ClientCompany        *string
	PreviousSteps        []types.DynamicStep
	LastResponse         *types.ResponseType
	ChosenStrategy       *types.OfferStrategy
	Offers               []types.OfferItem
	ValueEvidenceSummary *string
}

// stepBody is what each step handler produces before numbering and filtering.
type stepBody struct {
	title             string
	objective         string
	talkingPoints     []string
	suggestedActions  []string
	productsToPresent []int64
}

type stepHandler func(sc stepContext, in Input) stepBody

var handlers = map[types.StepType]stepHandler{
	types.StepOpening:         openingStep,
	types.StepDiscovery:       discoveryStep,
	types.StepPresentation:    presentationStep,
	types.StepValueStack:      valueStackStep,
	types.StepObjectionHandle: objectionStep,
	types.StepSocialProof:     socialProofStep,
	types.StepRiskReversal:    riskReversalStep,
	types.StepPricing:         pricingStep,
	types.StepClose:           closeStep,
	types.StepFollowup:        followupStep,
}

// Generator turns an Input into the next DynamicStep. The zero value is ready to use.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	// NewID overrides step id generation; nil uses a millisecond timestamp plus a uuid suffix.
	NewID func() string
}

// Generate always returns exactly one step. Unknown step types produce the generic
// continuation step.
func (g Generator) Generate(in Input) types.DynamicStep {
	sc := newStepContext(in)

	handler, ok := handlers[in.StepType]
	if !ok {
		handler = defaultStep
	}
	body := handler(sc, in)

	products := body.productsToPresent
	if products == nil {
		products = []int64{}
	}

	step := types.DynamicStep{
		ID:                g.nextID(),
		StepNumber:        len(in.PreviousSteps) + 1,
		Type:              in.StepType,
		Title:             body.title,
		Objective:         body.objective,
		TalkingPoints:     nonBlank(body.talkingPoints),
		SuggestedActions:  nonBlank(body.suggestedActions),
		ProductsToPresent: products,
		Status:            types.StepStatusPending,
	}
	if in.LastResponse != nil && *in.LastResponse != "" && in.ChosenStrategy != nil && *in.ChosenStrategy != "" {
		step.TriggeredBy = &types.TriggeredBy{
			ResponseType: *in.LastResponse,
			Strategy:     *in.ChosenStrategy,
		}
	}
	return step
}

// GenerateStep is Generator{}.Generate.
func GenerateStep(in Input) types.DynamicStep {
	return Generator{}.Generate(in)
}

// IsKnownStepType reports whether t has a dedicated rule set.
func IsKnownStepType(t types.StepType) bool {
	_, ok := handlers[t]
	return ok
}

func (g Generator) nextID() string {
	if g.NewID != nil {
		return g.NewID()
	}
	return fmt.Sprintf("step-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
