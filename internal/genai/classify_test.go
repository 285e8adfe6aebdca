package genai

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"missing credential", fmt.Errorf("OPENROUTER_API_KEY is not set: %w", ErrMissingCredential), FailureCredential},
		{"no content", fmt.Errorf("image: %w", ErrNoContent), FailureNoContent},
		{"401 api error", &APIError{Service: "speech", Status: 401, Body: "bad key"}, FailureCredential},
		{"403 api error", &APIError{Service: "image", Status: 403, Body: "forbidden"}, FailureCredential},
		{"safety api error", &APIError{Service: "image", Status: 400, Body: `{"error":"rejected by content_policy"}`}, FailureSafety},
		{"moderation api error", &APIError{Service: "image", Status: 400, Body: "blocked by moderation"}, FailureSafety},
		{"server api error", &APIError{Service: "speech", Status: 500, Body: "oops"}, FailureTransient},
		{"plain network error", errors.New("dial tcp: connection refused"), FailureTransient},
		{"textual unauthorized", errors.New("request failed: 401 unauthorized"), FailureCredential},
		{"textual safety refusal", errors.New("the model declined: safety settings"), FailureSafety},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Errorf("Classify(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestClassifyWrappedAPIError(t *testing.T) {
	err := fmt.Errorf("generate: %w", &APIError{Service: "image", Status: 401, Body: ""})
	if got := Classify(err); got != FailureCredential {
		t.Errorf("expected credential, got %d", got)
	}
}
