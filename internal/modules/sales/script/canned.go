package script

import "strings"

// ObjectionHandler is a canned rebuttal matched by trigger phrase or category.
type ObjectionHandler struct {
	Trigger  string `json:"trigger" yaml:"trigger"`
	Response string `json:"response" yaml:"response"`
	Category string `json:"category" yaml:"category"`
}

var CommonObjections = []ObjectionHandler{
	{
		Trigger:  "too expensive",
		Category: "price",
		Response: "I understand budget is a concern. Let me ask you this - on a scale of 1-10, how interested are you in achieving [desired outcome]? [If 7+] Great! What would need to happen for this to be a 10? [Address specific concerns]",
	},
	{
		Trigger:  "need to think about it",
		Category: "stall",
		Response: "That makes sense. What specifically would you like to think about? Is it the [price/timing/fit]? Let's address that concern together right now so you have all the information you need.",
	},
	{
		Trigger:  "need to talk to spouse/partner",
		Category: "authority",
		Response: "Of course! What questions do you think they'll have? Let me give you the information you'll need to have that conversation. Also, would it help if we scheduled a call together with them?",
	},
	{
		Trigger:  "not the right time",
		Category: "timing",
		Response: "I hear you. When would be the right time? And what would make that the right time? Often, the best time is when you're most aware of the problem - like right now.",
	},
	{
		Trigger:  "already tried something similar",
		Category: "past_failure",
		Response: "I appreciate your honesty. What specifically didn't work before? Our approach is different because [differentiation]. The reason it didn't work before is likely [reason], which we specifically address.",
	},
	{
		Trigger:  "can do it myself",
		Category: "diy",
		Response: "You absolutely could! The question is: what's the cost of figuring it out yourself? How much time would that take? Our clients typically save [X hours/weeks] and avoid [common mistakes]. What's your time worth?",
	},
}

// FindObjectionHandlers matches free text against the built-in handlers followed by custom.
// A handler matches when its trigger appears in the text or its category equals the text.
func FindObjectionHandlers(objection string, custom []ObjectionHandler) []ObjectionHandler {
	lower := strings.ToLower(objection)
	var out []ObjectionHandler
	for _, group := range [][]ObjectionHandler{CommonObjections, custom} {
		for _, h := range group {
			if strings.Contains(lower, strings.ToLower(h.Trigger)) || h.Category == lower {
				out = append(out, h)
			}
		}
	}
	return out
}
