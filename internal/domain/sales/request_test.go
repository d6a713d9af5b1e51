package sales

import (
	"encoding/json"
	"testing"
)

func TestGenerateStepRequestContactID(t *testing.T) {
	cases := []struct {
		body string
		want *int64
	}{
		{`{}`, nil},
		{`{"contactSubmissionId": null}`, nil},
		{`{"contactSubmissionId": 42}`, int64Ptr(42)},
		{`{"contactSubmissionId": 4.5}`, nil},
		{`{"contactSubmissionId": 0}`, int64Ptr(0)},
	}
	for _, tc := range cases {
		var req GenerateStepRequest
		if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.body, err)
		}
		got := req.ContactID()
		switch {
		case tc.want == nil && got != nil:
			t.Fatalf("%s: expected nil, got %d", tc.body, *got)
		case tc.want != nil && (got == nil || *got != *tc.want):
			t.Fatalf("%s: expected %d, got %v", tc.body, *tc.want, got)
		}
	}
}

func TestGenerateStepRequestDecodesBothCatalogShapes(t *testing.T) {
	body := `{
		"stepType": "pricing",
		"audit": {"org_type": "nonprofit", "decision_making": {"decision_maker": false}},
		"availableProducts": [{"id": 3, "title": "Legacy", "offer_role": "core_offer", "offer_price": 900}],
		"availableContent": [{"content_id": "17", "content_type": "course", "title": "Course", "bonus_name": "Fast Start"}],
		"conversationHistory": [{"stepId": "a", "response": "positive"}]
	}`
	var req GenerateStepRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.StepType != StepPricing {
		t.Fatalf("step type: %q", req.StepType)
	}
	if req.Audit == nil || req.Audit.OrgType == nil || *req.Audit.OrgType != OrgTypeNonprofit {
		t.Fatalf("org type not decoded: %+v", req.Audit)
	}
	if dm := req.Audit.DecisionMaking; dm == nil || dm.DecisionMaker == nil || *dm.DecisionMaker {
		t.Fatalf("decision maker not decoded: %+v", dm)
	}
	if len(req.AvailableProducts) != 1 || req.AvailableProducts[0].OfferPrice == nil || *req.AvailableProducts[0].OfferPrice != 900 {
		t.Fatalf("embedded role fields not decoded: %+v", req.AvailableProducts)
	}
	if len(req.AvailableContent) != 1 || req.AvailableContent[0].BonusName == nil {
		t.Fatalf("content not decoded: %+v", req.AvailableContent)
	}
	if len(req.ConversationHistory) != 1 {
		t.Fatalf("history not kept")
	}
}

func int64Ptr(v int64) *int64 { return &v }
