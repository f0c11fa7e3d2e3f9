package form

import (
	"encoding/json"
	"testing"
)

func TestState_TextRoundTrip(t *testing.T) {
	for _, s := range []State{StateIdle, StateSubmitting, StateRejected, StateAccepted} {
		raw, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal %v: %v", s, err)
		}
		var got State
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if got != s {
			t.Fatalf("round trip %v -> %s -> %v", s, raw, got)
		}
	}

	var s State
	if err := s.UnmarshalText([]byte("pending")); err == nil {
		t.Fatalf("expected error for unknown state")
	}
}
