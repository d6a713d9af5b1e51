package realtime

import (
	"encoding/json"
	"testing"
)

func TestNewEvent(t *testing.T) {
	ev, err := NewEvent(EventStepGenerated, "admin-1", "req-1", map[string]any{"stepNumber": 3})
	if err != nil {
		t.Fatalf("NewEvent: %v", err)
	}
	if ev.Type != EventStepGenerated || ev.Actor != "admin-1" || ev.RequestID != "req-1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.At.IsZero() {
		t.Fatalf("event time not set")
	}
	var data struct {
		StepNumber int `json:"stepNumber"`
	}
	if err := json.Unmarshal(ev.Data, &data); err != nil || data.StepNumber != 3 {
		t.Fatalf("unexpected data %s: %v", ev.Data, err)
	}

	bare, err := NewEvent("ping", "", "", nil)
	if err != nil || bare.Data != nil {
		t.Fatalf("expected empty data, got %s (%v)", bare.Data, err)
	}

	if _, err := NewEvent("bad", "", "", make(chan int)); err == nil {
		t.Fatalf("expected marshal error")
	}
}
