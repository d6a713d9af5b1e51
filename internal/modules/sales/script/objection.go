package script

import (
	"fmt"
	"strings"

	types "github.com/yungbote/salesflow-backend/internal/domain/sales"
)

// ObjectionContext is the slice of the diagnostic the objection templates may quote.
type ObjectionContext struct {
	BudgetRange     string
	Timeline        string
	IsDecisionMaker bool
	Stakeholders    []string
	Concerns        []string
	Impact          string
	Challenges      []string
}

// ObjectionResponse is the title, objective and scripted lines for one objection category.
type ObjectionResponse struct {
	Title            string   `json:"title"`
	Objective        string   `json:"objective"`
	TalkingPoints    []string `json:"talkingPoints"`
	SuggestedActions []string `json:"suggestedActions"`
}

type objectionTemplate func(ObjectionContext) ObjectionResponse

var objectionTemplates = map[types.ResponseType]objectionTemplate{
	types.ResponsePriceObjection:     priceObjection,
	types.ResponseTimingObjection:    timingObjection,
	types.ResponseAuthorityObjection: authorityObjection,
	types.ResponseFeatureConcern:     featureConcern,
	types.ResponsePastFailure:        pastFailure,
	types.ResponseDIY:                diyObjection,
	types.ResponseCompetitor:         competitorObjection,
}

// ResolveObjection never fails: categories without a template, including the empty string,
// get the open-ended "Address Concerns" response.
func ResolveObjection(category string, oc ObjectionContext) ObjectionResponse {
	tmpl, ok := objectionTemplates[types.ResponseType(category)]
	if !ok {
		tmpl = genericConcerns
	}
	r := tmpl(oc)
	r.TalkingPoints = nonBlank(r.TalkingPoints)
	r.SuggestedActions = nonBlank(r.SuggestedActions)
	return r
}

// IsObjection reports whether r has a dedicated objection template.
func IsObjection(r types.ResponseType) bool {
	_, ok := objectionTemplates[r]
	return ok
}

func priceObjection(oc ObjectionContext) ObjectionResponse {
	roi := `"Let me ask - what would solving this problem be worth to you?"`
	if oc.Impact != "" {
		roi = fmt.Sprintf(`"You mentioned this problem is costing you %s. If we solve that, what's the ROI look like?"`, strings.ToLower(oc.Impact))
	}
	budget := `"What budget range would make this a no-brainer for you?"`
	if oc.BudgetRange != "" {
		budget = fmt.Sprintf(`"Your budget of %s - is that a hard limit, or is there flexibility if we can show clear ROI?"`, oc.BudgetRange)
	}
	return ObjectionResponse{
		Title:     "Address Price Concern",
		Objective: "Reframe the investment in terms of value and ROI",
		TalkingPoints: []string{
			`"I appreciate you being direct about the investment. Help me understand - is it the total amount, or the timing of the payment?"`,
			roi,
			`"On a scale of 1-10, how interested are you in the solution itself? [If 7+] Great, so it's really about making the numbers work. Let me see what I can do..."`,
			budget,
		},
		SuggestedActions: []string{
			"Isolate: Is it price, or something else?",
			"Connect to cost of inaction",
			"Offer payment options if price is firm barrier",
		},
	}
}

func timingObjection(oc ObjectionContext) ObjectionResponse {
	when := `"What's happening in your business that makes now not ideal?"`
	if oc.Timeline != "" {
		when = fmt.Sprintf(`"You mentioned %s. What would need to happen between now and then?"`, oc.Timeline)
	}
	return ObjectionResponse{
		Title:     "Address Timing Concern",
		Objective: "Create appropriate urgency and understand real timeline",
		TalkingPoints: []string{
			`"I hear you. When would be the right time, and what would make that the right time?"`,
			`"Often, the best time to solve a problem is when you're most aware of it - like right now. What's holding you back?"`,
			`"If we could start with something small and expand later, would that change the timing?"`,
			when,
		},
		SuggestedActions: []string{
			"Understand what's driving the delay",
			"Create urgency around cost of waiting",
			"Offer phased approach if appropriate",
		},
	}
}

func authorityObjection(oc ObjectionContext) ObjectionResponse {
	who := `"Tell me about your decision-making process. Who needs to sign off?"`
	if len(oc.Stakeholders) > 0 {
		who = fmt.Sprintf(`"You mentioned %s. What questions do you think they'll have?"`, strings.Join(oc.Stakeholders, " and "))
	}
	return ObjectionResponse{
		Title:     "Navigate Decision Process",
		Objective: "Understand the approval process and involve key stakeholders",
		TalkingPoints: []string{
			`"That makes total sense. Who else needs to be involved in this decision?"`,
			who,
			`"Would it help if I prepared a summary specifically for them? What points would be most important?"`,
			`"Can we schedule a call that includes them? I'd love to answer their questions directly."`,
		},
		SuggestedActions: []string{
			"Map out the full decision process",
			"Prepare champion with answers to likely questions",
			"Get commitment to specific next step with stakeholders",
		},
	}
}

func featureConcern(oc ObjectionContext) ObjectionResponse {
	priority := `"What features or capabilities are non-negotiable for you?"`
	if len(oc.Challenges) > 0 {
		priority = fmt.Sprintf(`"When you think about solving %s, what's most important to you?"`, strings.ToLower(oc.Challenges[0]))
	}
	return ObjectionResponse{
		Title:     "Address Fit Concerns",
		Objective: "Understand their specific needs and show how you address them",
		TalkingPoints: []string{
			`"Help me understand what's not clicking. What specifically doesn't seem like a fit?"`,
			`"What would the ideal solution look like for you?"`,
			priority,
			`"Let me see if I can show you how we address that specific concern..."`,
		},
		SuggestedActions: []string{
			"Get specific about what's missing",
			"Show how current solution addresses their need (if possible)",
			"Suggest alternative product if better fit exists",
		},
	}
}

func pastFailure(ObjectionContext) ObjectionResponse {
	return ObjectionResponse{
		Title:     "Address Past Experience",
		Objective: "Acknowledge their concern and differentiate your approach",
		TalkingPoints: []string{
			`"I appreciate you sharing that. What specifically didn't work before?"`,
			`"That's frustrating. What was the biggest reason it failed?"`,
			`"Here's how our approach is different: [specific differentiation]..."`,
			`"We actually see a lot of clients who tried other solutions first. The reason they succeed with us is..."`,
			`"What would make you confident that this time would be different?"`,
		},
		SuggestedActions: []string{
			"Acknowledge the pain of past failure",
			"Clearly differentiate your approach",
			"Offer specific guarantees or proof points",
		},
	}
}

func diyObjection(ObjectionContext) ObjectionResponse {
	return ObjectionResponse{
		Title:     "Address DIY Consideration",
		Objective: "Show the value of expertise vs. figuring it out alone",
		TalkingPoints: []string{
			`"You absolutely could do this yourself. The question is - should you?"`,
			`"What would it cost in time to figure this out? And what's that time worth?"`,
			`"Our clients typically save [X hours/weeks] by working with us. They also avoid [common mistakes]."`,
			`"Think of it this way: you could learn plumbing, or you could hire a plumber. Which makes more sense for your business?"`,
			`"What would you do with that time if you didn't have to figure this out yourself?"`,
		},
		SuggestedActions: []string{
			"Quantify the cost of their time",
			"Highlight expertise and shortcuts you provide",
			"Show the opportunity cost of DIY",
		},
	}
}

func competitorObjection(ObjectionContext) ObjectionResponse {
	return ObjectionResponse{
		Title:     "Address Competition",
		Objective: "Understand their options and differentiate your value",
		TalkingPoints: []string{
			`"Great that you're doing your research. What other options are you considering?"`,
			`"What do you like about [competitor]? And what concerns do you have?"`,
			`"Here's how we're different: [key differentiators]..."`,
			`"The main reason clients choose us over alternatives is [specific advantage]."`,
			`"Would it help to speak with a client who evaluated similar options and chose us?"`,
		},
		SuggestedActions: []string{
			"Understand what they like about alternatives",
			"Focus on your unique strengths, not competitor weaknesses",
			"Offer social proof from clients who compared",
		},
	}
}

func genericConcerns(ObjectionContext) ObjectionResponse {
	return ObjectionResponse{
		Title:     "Address Concerns",
		Objective: "Understand and resolve any remaining hesitation",
		TalkingPoints: []string{
			`"I want to make sure I understand your concerns. What's holding you back from moving forward?"`,
			`"What questions do you still have?"`,
			`"What would need to be true for this to be a clear yes for you?"`,
		},
		SuggestedActions: []string{
			"Ask open-ended questions to uncover the real objection",
			"Listen more than you talk",
			"Address specific concerns directly",
		},
	}
}
