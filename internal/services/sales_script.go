package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
	"github.com/yungbote/salesflow-backend/internal/modules/sales/offer"
	"github.com/yungbote/salesflow-backend/internal/modules/sales/script"
	"github.com/yungbote/salesflow-backend/internal/normalization"
	"github.com/yungbote/salesflow-backend/internal/observability"
	"github.com/yungbote/salesflow-backend/internal/platform/ctxutil"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
	"github.com/yungbote/salesflow-backend/internal/realtime"
	"github.com/yungbote/salesflow-backend/internal/realtime/bus"
)

const publishTimeout = 2 * time.Second

var ErrNilRequest = errors.New("request body required")

// EvidenceSummarizer produces the value-evidence line for a contact, or nil.
type EvidenceSummarizer interface {
	Summarize(ctx context.Context, contactSubmissionID *int64) *string
}

type SalesScriptService interface {
	GenerateStep(ctx context.Context, req *types.GenerateStepRequest) (types.DynamicStep, error)
	RecommendStrategies(response types.ResponseType) []script.StrategyOption
	Vocabulary() Vocabulary
	BuildGrandSlamOffer(req *types.GrandSlamOfferRequest) offer.GrandSlamOffer
	FindObjectionHandlers(objection string, custom []script.ObjectionHandler) []script.ObjectionHandler
}

type salesScriptService struct {
	log      *logger.Logger
	gen      script.Generator
	evidence EvidenceSummarizer
	events   bus.Bus
	metrics  *observability.Metrics
}

// NewSalesScriptService wires the generator to its collaborators. evidence, events and
// metrics may all be nil.
func NewSalesScriptService(
	log *logger.Logger,
	gen script.Generator,
	evidence EvidenceSummarizer,
	events bus.Bus,
	metrics *observability.Metrics,
) SalesScriptService {
	if events == nil {
		events = bus.NewNopBus()
	}
	return &salesScriptService{
		log:      log.With("service", "SalesScriptService"),
		gen:      gen,
		evidence: evidence,
		events:   events,
		metrics:  metrics,
	}
}

func (s *salesScriptService) GenerateStep(ctx context.Context, req *types.GenerateStepRequest) (types.DynamicStep, error) {
	if req == nil {
		return types.DynamicStep{}, ErrNilRequest
	}
	ctx, span := observability.Tracer("salesflow/script").Start(ctx, "sales.GenerateStep")
	defer span.End()

	stepType := req.StepType
	if stepType == "" && req.ChosenStrategy != nil {
		if derived, ok := script.StepTypeForStrategy(*req.ChosenStrategy); ok {
			stepType = derived
		}
	}

	var summary *string
	if contactID := req.ContactID(); contactID != nil && s.evidence != nil {
		start := time.Now()
		summary = s.evidence.Summarize(ctx, contactID)
		s.metrics.ObserveEvidenceLookup(summary != nil, time.Since(start))
	}

	step := s.gen.Generate(script.Input{
		StepType:             stepType,
		Audit:                req.Audit,
		ClientName:           req.ClientName,
		ClientCompany:        req.ClientCompany,
		PreviousSteps:        req.PreviousSteps,
		LastResponse:         req.LastResponse,
		ChosenStrategy:       req.ChosenStrategy,
		Offers:               normalization.Catalog(req.AvailableProducts, req.AvailableContent),
		ValueEvidenceSummary: summary,
	})

	var response string
	if req.LastResponse != nil {
		response = string(*req.LastResponse)
	}
	span.SetAttributes(
		attribute.String("step.type", string(step.Type)),
		attribute.Int("step.number", step.StepNumber),
		attribute.Bool("step.has_evidence", summary != nil),
	)
	s.metrics.IncStepGenerated(string(step.Type), response)
	s.log.ForContext(ctx).Info("Generated sales step",
		"step_type", step.Type,
		"step_number", step.StepNumber,
		"last_response", response,
		"has_evidence", summary != nil,
		"products", len(step.ProductsToPresent),
	)

	s.publish(ctx, step)
	return step, nil
}

func (s *salesScriptService) publish(ctx context.Context, step types.DynamicStep) {
	var actor string
	if rd := ctxutil.GetRequestData(ctx); rd != nil {
		actor = rd.UserID
	}
	ev, err := realtime.NewEvent(realtime.EventStepGenerated, actor, ctxutil.RequestID(ctx), step)
	if err != nil {
		s.log.Warn("encode step event failed", "error", err)
		return
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.events.Publish(pctx, ev); err != nil {
		s.metrics.IncEventPublished(false)
		s.log.ForContext(ctx).Warn("publish step event failed", "step_id", step.ID, "error", err)
		return
	}
	s.metrics.IncEventPublished(true)
}

func (s *salesScriptService) RecommendStrategies(response types.ResponseType) []script.StrategyOption {
	return script.StrategyOptions(response)
}

func (s *salesScriptService) BuildGrandSlamOffer(req *types.GrandSlamOfferRequest) offer.GrandSlamOffer {
	if req == nil {
		return offer.BuildGrandSlamOffer(nil)
	}
	return offer.BuildGrandSlamOffer(normalization.Catalog(req.AvailableProducts, req.AvailableContent))
}

func (s *salesScriptService) FindObjectionHandlers(objection string, custom []script.ObjectionHandler) []script.ObjectionHandler {
	found := script.FindObjectionHandlers(objection, custom)
	if found == nil {
		found = []script.ObjectionHandler{}
	}
	return found
}

type VocabularyEntry struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	StepType    string `json:"stepType,omitempty"`
}

type Vocabulary struct {
	StepTypes     []VocabularyEntry `json:"stepTypes"`
	ResponseTypes []VocabularyEntry `json:"responseTypes"`
	Strategies    []VocabularyEntry `json:"strategies"`
}

func (s *salesScriptService) Vocabulary() Vocabulary {
	return BuildVocabulary()
}

// BuildVocabulary lists every enum value with its display label, in canonical order.
func BuildVocabulary() Vocabulary {
	v := Vocabulary{
		StepTypes:     make([]VocabularyEntry, 0, len(types.StepTypes)),
		ResponseTypes: make([]VocabularyEntry, 0, len(types.ResponseTypes)),
		Strategies:    make([]VocabularyEntry, 0, len(types.OfferStrategies)),
	}
	for _, st := range types.StepTypes {
		v.StepTypes = append(v.StepTypes, VocabularyEntry{Value: string(st), Label: script.StepTypeLabels[st]})
	}
	for _, rt := range types.ResponseTypes {
		v.ResponseTypes = append(v.ResponseTypes, VocabularyEntry{Value: string(rt), Label: script.ResponseTypeLabels[rt]})
	}
	for _, os := range types.OfferStrategies {
		st, _ := script.StepTypeForStrategy(os)
		v.Strategies = append(v.Strategies, VocabularyEntry{
			Value:       string(os),
			Label:       script.StrategyLabels[os],
			Description: script.StrategyDescriptions[os],
			StepType:    string(st),
		})
	}
	return v
}
