package sales

import "math"

// GenerateStepRequest is the body of a step generation call. Either catalog shape may be
// sent; a non-empty AvailableContent wins.
type GenerateStepRequest struct {
	StepType            StepType               `json:"stepType"`
	Audit               *DiagnosticContext     `json:"audit"`
	ClientName          *string                `json:"clientName"`
	ClientCompany       *string                `json:"clientCompany"`
	PreviousSteps       []DynamicStep          `json:"previousSteps"`
	LastResponse        *ResponseType          `json:"lastResponse"`
	ChosenStrategy      *OfferStrategy         `json:"chosenStrategy"`
	AvailableProducts   []ProductWithRole      `json:"availableProducts"`
	AvailableContent    []ContentWithRole      `json:"availableContent"`
	ConversationHistory []ConversationResponse `json:"conversationHistory"`
	// ContactSubmissionID is decoded as a number so that non-integral values are ignored
	// rather than rejected.
	ContactSubmissionID *float64 `json:"contactSubmissionId"`
}

// ContactID returns the contact submission id when it is a whole number, else nil.
func (r *GenerateStepRequest) ContactID() *int64 {
	if r == nil || r.ContactSubmissionID == nil {
		return nil
	}
	v := *r.ContactSubmissionID
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || math.Abs(v) > math.MaxInt64/2 {
		return nil
	}
	id := int64(v)
	return &id
}

// GrandSlamOfferRequest carries the catalog to package.
type GrandSlamOfferRequest struct {
	AvailableProducts []ProductWithRole `json:"availableProducts"`
	AvailableContent  []ContentWithRole `json:"availableContent"`
}
