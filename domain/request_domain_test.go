package domain

import "testing"

func TestCanTransitionRequestStatus(t *testing.T) {
	allowed := []struct{ from, to string }{
		{RequestStatusPending, RequestStatusAccepted},
		{RequestStatusPending, RequestStatusRejected},
		{RequestStatusPending, RequestStatusCancelled},
		{RequestStatusAccepted, RequestStatusInProgress},
		{RequestStatusAccepted, RequestStatusRejected},
		{RequestStatusInProgress, RequestStatusCompleted},
		{RequestStatusInProgress, RequestStatusRejected},
	}
	for _, tc := range allowed {
		if !CanTransitionRequestStatus(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{RequestStatusPending, RequestStatusCompleted},
		{RequestStatusPending, RequestStatusInProgress},
		{RequestStatusAccepted, RequestStatusCancelled},
		{RequestStatusAccepted, RequestStatusCompleted},
		{RequestStatusInProgress, RequestStatusCancelled},
		{RequestStatusCompleted, RequestStatusPending},
		{RequestStatusRejected, RequestStatusAccepted},
		{RequestStatusCancelled, RequestStatusPending},
		{RequestStatusPending, RequestStatusPending},
		{"Unknown", RequestStatusAccepted},
	}
	for _, tc := range denied {
		if CanTransitionRequestStatus(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestIsTerminalRequestStatus(t *testing.T) {
	for _, status := range []string{RequestStatusCompleted, RequestStatusRejected, RequestStatusCancelled} {
		if !IsTerminalRequestStatus(status) {
			t.Errorf("expected %s to be terminal", status)
		}
	}
	for _, status := range []string{RequestStatusPending, RequestStatusAccepted, RequestStatusInProgress} {
		if IsTerminalRequestStatus(status) {
			t.Errorf("expected %s to be non-terminal", status)
		}
	}
	if IsTerminalRequestStatus("Unknown") {
		t.Error("unknown status must not be reported as terminal")
	}
}
