package controller

import (
	"github.com/wordgarden/wordgarden/internal/genai"
)

// UserError carries a learner-appropriate message alongside the classified
// failure kind. Remote failures never propagate past the controller in any
// other form.
type UserError struct {
	Kind    genai.FailureKind
	Message string
	cause   error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.cause }

// userError classifies err and wraps it for presentation. Busy flags have
// already been scheduled for release by the caller's defer.
func (c *Controller) userError(op string, err error) error {
	kind := genai.Classify(err)

	var msg string
	switch kind {
	case genai.FailureCredential:
		msg = "An API key is missing or was rejected. Add your key and try again."
	case genai.FailureSafety:
		msg = "The word service declined to make that. Let's pick something else!"
	case genai.FailureNoContent:
		msg = "Nothing came back this time. Give it another try!"
	default:
		msg = "Something went wrong talking to the word service. Please try again."
	}

	c.log.Warn().Err(err).Str("op", op).Int("kind", int(kind)).Msg("remote capability failed")
	return &UserError{Kind: kind, Message: msg, cause: err}
}
