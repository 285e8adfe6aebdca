package genai

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors shared by all adapters.
var (
	// ErrNoContent marks a response that succeeded but produced nothing
	// usable (e.g. an image call with no image part).
	ErrNoContent = errors.New("no content produced")

	// ErrMissingCredential marks an absent or empty API credential.
	ErrMissingCredential = errors.New("missing credential")
)

// FailureKind classifies a remote-capability failure for presentation.
type FailureKind int

const (
	// FailureTransient covers connectivity problems and anything else the
	// learner can simply retry.
	FailureTransient FailureKind = iota
	// FailureCredential covers missing or rejected API credentials.
	FailureCredential
	// FailureSafety covers the remote service declining to produce content.
	FailureSafety
	// FailureNoContent covers an otherwise successful call that returned
	// nothing usable.
	FailureNoContent
)

// APIError is a non-2xx response from a remote capability.
type APIError struct {
	Service string
	Status  int
	Body    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s api returned status %d: %s", e.Service, e.Status, e.Body)
}

// Classify maps an adapter error onto the failure taxonomy. Unknown errors
// are treated as transient; the learner's manual retry is the retry
// mechanism.
func Classify(err error) FailureKind {
	if errors.Is(err, ErrMissingCredential) {
		return FailureCredential
	}
	if errors.Is(err, ErrNoContent) {
		return FailureNoContent
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return FailureCredential
		}
		if looksLikeSafetyRefusal(apiErr.Body) {
			return FailureSafety
		}
		return FailureTransient
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"), strings.Contains(msg, "unauthorized"),
		strings.Contains(msg, "401"), strings.Contains(msg, "403"):
		return FailureCredential
	case looksLikeSafetyRefusal(msg):
		return FailureSafety
	}
	return FailureTransient
}

func looksLikeSafetyRefusal(body string) bool {
	body = strings.ToLower(body)
	for _, marker := range []string{"safety", "content_policy", "content policy", "moderation", "blocked"} {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}
