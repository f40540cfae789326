package status

import (
	"encoding/json"
	"testing"

	"github.com/drblury/selftest/responder"
)

func decodeInvokePayload(t *testing.T, body []byte) invokePayload {
	t.Helper()

	var payload invokePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to decode invoke payload: %v (body: %s)", err, string(body))
	}
	return payload
}

func decodeStatusPayload(t *testing.T, body []byte) statusPayload {
	t.Helper()

	var payload statusPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("failed to decode status payload: %v (body: %s)", err, string(body))
	}
	return payload
}

func decodeProblemDetails(t *testing.T, body []byte) responder.ProblemDetails {
	t.Helper()

	var problem responder.ProblemDetails
	if err := json.Unmarshal(body, &problem); err != nil {
		t.Fatalf("failed to decode problem details: %v (body: %s)", err, string(body))
	}
	return problem
}
