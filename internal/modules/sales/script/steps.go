package script

import (
	"fmt"
	"strings"
)

func openingStep(sc stepContext, _ Input) stepBody {
	insight := fmt.Sprintf(`"Before we dive into solutions, I'd love to understand a bit more about what's happening at %s right now."`, sc.clientCompany)
	if len(sc.keyInsights) > 0 {
		insight = fmt.Sprintf(`"I noticed from your assessment that %s. Before we dive in, I'd love to hear more about what prompted you to reach out."`, strings.ToLower(sc.keyInsights[0]))
	}
	b := stepBody{
		title:     "Build Rapport & Set Agenda",
		objective: fmt.Sprintf("Connect with %s and establish trust before diving into solutions", sc.clientName),
		talkingPoints: []string{
			fmt.Sprintf(`"Hi %s, thank you for taking the time to complete our diagnostic. I've reviewed your results and I'm excited to discuss how we can help %s."`, sc.clientName, sc.clientCompany),
			insight,
			`"My goal for our call today is to understand your situation, show you some options, and see if there's a fit. Sound good?"`,
		},
		suggestedActions: []string{
			"Let them talk - take notes on specific pain points",
			"Listen for emotional triggers (frustration, urgency)",
			"Identify their primary motivation",
		},
	}
	if sc.hasEvidence() {
		b.talkingPoints = append(b.talkingPoints, fmt.Sprintf("[Use value evidence during call: %s]", sc.evidence))
		b.suggestedActions = append(b.suggestedActions, "Reference quantified pain/value from evidence when relevant")
	}
	return b
}

func discoveryStep(sc stepContext, _ Input) stepBody {
	challenge := `"Tell me about the biggest challenge you're facing right now with your business."`
	if len(sc.challenges) > 0 {
		challenge = fmt.Sprintf(`"You mentioned %s. Can you walk me through what that looks like day-to-day?"`, strings.ToLower(sc.challenges[0]))
	}

	var cost string
	switch {
	case sc.impact != "":
		cost = fmt.Sprintf(`"You noted this is costing you %s. How did you arrive at that number?"`, strings.ToLower(sc.impact))
	case sc.hasEvidence():
		cost = `"We've identified some areas that may be costing you. What's this problem costing you - in time, money, or missed opportunities?"`
	default:
		cost = `"What's this problem costing you - in time, money, or missed opportunities?"`
	}

	outcome := `"What have you tried before to solve this?"`
	if len(sc.desiredOutcomes) > 0 {
		outcome = fmt.Sprintf(`"You said you want to %s. What's stopped you from achieving that so far?"`, strings.ToLower(sc.desiredOutcomes[0]))
	}

	b := stepBody{
		title:     "Explore Their Situation",
		objective: "Deepen understanding of their challenges and qualify the opportunity",
		talkingPoints: []string{
			challenge,
			cost,
			fmt.Sprintf(`"If we could solve this completely, what would that mean for %s?"`, sc.clientCompany),
			outcome,
		},
		suggestedActions: []string{
			"Quantify the pain (get specific numbers)",
			"Understand timeline urgency",
			"Identify who else is affected",
		},
	}
	if sc.hasEvidence() {
		b.talkingPoints = append(b.talkingPoints, fmt.Sprintf("[Evidence summary to reference: %s]", sc.evidence))
		b.suggestedActions = append(b.suggestedActions, "Use evidence numbers to anchor the cost of inaction")
	}
	return b
}

func presentationStep(sc stepContext, _ Input) stepBody {
	challenge := `"Here's what we do and why it's relevant to your situation..."`
	if len(sc.challenges) > 0 {
		challenge = fmt.Sprintf(`"Remember you mentioned %s? Here's how we address that specifically..."`, strings.ToLower(sc.challenges[0]))
	}

	offer := fmt.Sprintf(`"Our solution is specifically designed for companies like %s."`, sc.clientCompany)
	if len(sc.core) > 0 {
		first := sc.core[0]
		offer = fmt.Sprintf(`"Our %s is designed to %s."`, first.Title, orDefault(first.DreamOutcomeDescription, "deliver results quickly"))
	}

	goal := `"This will help you achieve the outcomes you're looking for."`
	if len(sc.desiredOutcomes) > 0 {
		goal = fmt.Sprintf(`"This directly addresses your goal to %s."`, strings.ToLower(sc.desiredOutcomes[0]))
	}

	b := stepBody{
		title:             "Present the Solution",
		objective:         "Show how your offer solves their specific problems",
		productsToPresent: ids(sc.core, 2),
		talkingPoints: []string{
			fmt.Sprintf(`"Based on what you've shared, let me show you exactly how we can help %s."`, sc.clientCompany),
			challenge,
			offer,
			goal,
		},
		suggestedActions: []string{
			"Connect each feature to their specific pain point",
			"Use their language back to them",
			"Watch for buying signals (nodding, questions)",
		},
	}
	if sc.hasEvidence() {
		b.talkingPoints = append(b.talkingPoints, `"The value we've identified for you aligns with what we're solving—use the evidence numbers when presenting."`)
		b.suggestedActions = append(b.suggestedActions, "Anchor offer value to evidence-based pain/value numbers")
	}
	return b
}

func valueStackStep(sc stepContext, _ Input) stepBody {
	bonuses := head(sc.bonus, 3)

	points := []string{`"Now, here's where it gets exciting. When you work with us, you also get..."`}
	var total float64
	for _, p := range bonuses {
		name := orDefault(p.BonusName, p.Title)
		desc := orDefault(p.BonusDescription, orDefault(p.DreamOutcomeDescription, "adds significant value"))
		worth := coalesce(p.PerceivedValue, p.Price)
		total += worth
		points = append(points, fmt.Sprintf(`"%s" - %s (worth $%s)`, name, desc, money(worth)))
	}
	if len(bonuses) > 0 {
		points = append(points, fmt.Sprintf(`"Together, these bonuses are worth over $%s, but they're included when you work with us."`, money(total)))
	} else {
		points = append(points, `"All of these are included as part of your investment."`)
	}

	return stepBody{
		title:             "Stack the Value",
		objective:         "Increase perceived value by presenting bonuses and additional benefits",
		productsToPresent: ids(bonuses, 3),
		talkingPoints:     points,
		suggestedActions: []string{
			"Present each bonus as solving a specific problem",
			"Stack the total value visually",
			"Pause after each bonus for reaction",
		},
	}
}

func objectionStep(sc stepContext, in Input) stepBody {
	var category string
	if in.LastResponse != nil {
		category = string(*in.LastResponse)
	}
	r := ResolveObjection(category, ObjectionContext{
		BudgetRange:     sc.budgetRange,
		Timeline:        sc.timeline,
		IsDecisionMaker: sc.isDecisionMaker,
		Stakeholders:    sc.stakeholders,
		Concerns:        sc.concerns,
		Impact:          sc.impact,
		Challenges:      sc.challenges,
	})
	return stepBody{
		title:            r.Title,
		objective:        r.Objective,
		talkingPoints:    r.TalkingPoints,
		suggestedActions: r.SuggestedActions,
	}
}

func socialProofStep(sc stepContext, _ Input) stepBody {
	similar := `"They faced similar challenges. Here's what changed for them..."`
	if len(sc.challenges) > 0 {
		similar = fmt.Sprintf(`"They were also dealing with %s. Within 90 days, they..."`, strings.ToLower(sc.challenges[0]))
	}
	return stepBody{
		title:     "Share Success Stories",
		objective: "Build confidence with relevant case studies and testimonials",
		talkingPoints: []string{
			fmt.Sprintf(`"Let me share what happened with a client in a similar situation to %s..."`, sc.clientCompany),
			similar,
			`"What made the difference was [specific approach]. That's exactly what we'd do for you."`,
			`"Would you like to speak with them directly? I can arrange an introduction."`,
		},
		suggestedActions: []string{
			"Choose a case study similar to their industry/size",
			"Focus on measurable results",
			"Offer to connect them with a reference",
		},
	}
}

func riskReversalStep(sc stepContext, _ Input) stepBody {
	commitment := `"We're committed to your success, which is why we offer this guarantee."`
	if sc.hasConcern("Cost") {
		commitment = `"And from an investment standpoint - if this doesn't pay for itself within [timeframe], we'll [specific action]."`
	}
	b := stepBody{
		title:     "Remove the Risk",
		objective: "Address fears and reduce perceived risk of moving forward",
		talkingPoints: []string{
			`"I understand you want to be confident this will work. Let me address that directly."`,
			`"We stand behind our work with a [guarantee type]. If you don't see [specific result] within [timeframe], here's what happens..."`,
			commitment,
			`"Does that help you feel more confident about moving forward?"`,
		},
		suggestedActions: []string{
			"Present specific, measurable guarantee terms",
			"Address their specific concern directly",
			"Make the guarantee feel personal",
		},
	}
	if len(sc.downsell) > 0 {
		trial := sc.downsell[0]
		b.productsToPresent = ids(sc.downsell, 1)
		b.talkingPoints = append(b.talkingPoints, fmt.Sprintf(
			`"We also have a trial option: %s at $%s, so you can experience the value first."`,
			trial.Title, money(coalesce(trial.Price, trial.OfferPrice)),
		))
	}
	return b
}

func pricingStep(sc stepContext, _ Input) stepBody {
	products := append(ids(sc.core, 1), ids(sc.decoy, 1)...)
	if sc.isNonprofit() {
		b := communityImpactPricing(sc)
		b.productsToPresent = products
		return b
	}
	b := standardPricing(sc)
	b.productsToPresent = products
	return b
}

func communityImpactPricing(sc stepContext) stepBody {
	options := `"Let me walk you through the Community Impact options and help you find the right fit."`
	if len(sc.decoy) > 0 {
		d := sc.decoy[0]
		options = fmt.Sprintf(`"Let me walk you through the options: starting at $%s for %s."`, money(coalesce(d.Price)), d.Title)
	}
	var budget string
	if sc.budgetRange != "" {
		budget = fmt.Sprintf(`"You mentioned a budget of %s. Let me find the best fit within that range."`, sc.budgetRange)
	}
	return stepBody{
		title:     "Present Community Impact Options",
		objective: "Present budget-friendly Community Impact tiers while showing the premium upgrade path",
		talkingPoints: []string{
			`"We have a Community Impact program specifically designed for organizations like yours."`,
			`"These packages deliver the same outcomes as our full-service tiers, with self-paced and template-based delivery to keep costs accessible."`,
			options,
			`"The main difference from our premium tiers is delivery method — self-paced instead of live, templates instead of custom builds, and community support instead of dedicated 1-on-1."`,
			`"I also want you to know about our full-service options in case your budget allows or you secure additional funding."`,
			budget,
		},
		suggestedActions: []string{
			"Present CI Starter, CI Accelerator, and CI Growth side by side",
			"Show side-by-side comparison of CI vs premium tiers",
			"Ask about budget range and decision timeline",
			"Mention grant funding or professional development budgets as potential funding sources",
		},
	}
}

func standardPricing(sc stepContext) stepBody {
	var decoyLine, coreLine, budget string
	if len(sc.decoy) > 0 {
		d := sc.decoy[0]
		decoyLine = fmt.Sprintf(`"Option 1: %s at $%s - this gives you [basic features]."`, d.Title, money(coalesce(d.Price)))
	}
	if len(sc.core) > 0 {
		c := sc.core[0]
		coreLine = fmt.Sprintf(`"Option 2 (recommended): %s at $%s - this includes everything we discussed plus all the bonuses."`, c.Title, money(coalesce(c.OfferPrice, c.Price)))
	}

	var payback string
	switch {
	case sc.impact != "":
		payback = fmt.Sprintf(`"Remember, you mentioned this problem is costing you %s. This investment pays for itself when we solve that."`, strings.ToLower(sc.impact))
	case sc.hasEvidence():
		payback = `"Based on the value we've identified for your situation, this investment pays for itself when we address those areas."`
	default:
		payback = `"This investment typically pays for itself within 90 days."`
	}

	if sc.budgetRange != "" {
		budget = fmt.Sprintf(`"You mentioned a budget of %s. This fits right in that range, and here's how we can structure it..."`, sc.budgetRange)
	}

	b := stepBody{
		title:     "Present Pricing Options",
		objective: "Frame the investment in context of value and ROI",
		talkingPoints: []string{
			`"Let's talk about the investment. You have a few options..."`,
			decoyLine,
			coreLine,
			payback,
			budget,
		},
		suggestedActions: []string{
			"Present 2-3 options with clear differentiation",
			"Highlight the recommended option",
			"Connect price to the cost of not solving their problem",
		},
	}
	if sc.hasEvidence() {
		b.talkingPoints = append(b.talkingPoints, `[Use evidence-based retail/perceived value for this contact when stating "value" or "worth"].`)
		b.suggestedActions = append(b.suggestedActions, "Price using evidence-based retail and perceived value for this contact")
	}
	return b
}

func closeStep(sc stepContext, _ Input) stepBody {
	ask := fmt.Sprintf(`"%s, what questions do you have before we move forward?"`, sc.clientName)
	if sc.urgency >= 7 {
		timeline := sc.timeline
		if timeline == "" {
			timeline = "soon"
		}
		ask = fmt.Sprintf(`"%s, you mentioned wanting to start %s. Based on everything we've discussed, are you ready to move forward?"`, sc.clientName, timeline)
	}

	final := fmt.Sprintf(`"What's the best way to get %s involved in this decision?"`, firstOr(sc.stakeholders, "your team"))
	if sc.isDecisionMaker {
		final = `"If we started today, we could have you [specific outcome] by [timeframe]. Shall we get you set up?"`
	}

	return stepBody{
		title:     "Ask for the Decision",
		objective: "Guide them to a clear yes or identify remaining concerns",
		talkingPoints: []string{
			ask,
			fmt.Sprintf(`"On a scale of 1-10, how confident are you that this is the right solution for %s?"`, sc.clientCompany),
			`"What would need to happen for you to feel completely confident about this?"`,
			final,
		},
		suggestedActions: []string{
			"Ask a direct closing question",
			"If not ready, identify the specific blocker",
			"Get a commitment to next step regardless",
		},
	}
}

func followupStep(sc stepContext, _ Input) stepBody {
	next := `"Let me send you some additional information to review. When can we reconnect to discuss?"`
	if !sc.isDecisionMaker && len(sc.stakeholders) > 0 {
		next = fmt.Sprintf(`"I'd love to include %s on our next call. Can we schedule that for [specific time]?"`, sc.stakeholders[0])
	}
	return stepBody{
		title:     "Schedule Next Steps",
		objective: "Lock in concrete follow-up and maintain momentum",
		talkingPoints: []string{
			`"Let's make sure we don't lose momentum. When works best for our next conversation?"`,
			next,
			`"I'll send over a summary of what we discussed, along with [specific resource]. What's your email?"`,
			`"Between now and our next call, here's what I'll prepare for you: [specific items]."`,
		},
		suggestedActions: []string{
			`Get calendar commitment (not just "I'll call you")`,
			"Send follow-up materials within 24 hours",
			"Set specific agenda for next call",
		},
	}
}

func defaultStep(stepContext, Input) stepBody {
	return stepBody{
		title:            "Continue Conversation",
		objective:        "Keep the dialogue going",
		talkingPoints:    []string{"Continue building rapport and understanding their needs."},
		suggestedActions: []string{"Listen actively and ask follow-up questions."},
	}
}
