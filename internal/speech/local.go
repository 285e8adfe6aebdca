package speech

import (
	"context"
	"os/exec"

	"github.com/rs/zerolog"
)

// LocalSpeaker is the always-available fallback. It never propagates
// failure: the worst case is a logged, silent no-op.
type LocalSpeaker interface {
	Speak(ctx context.Context, text string)
}

var speakerCommands = [][]string{
	{"say"},
	{"espeak-ng"},
	{"espeak"},
}

// ExecSpeaker speaks through the first available system speech engine.
type ExecSpeaker struct {
	log zerolog.Logger
}

// NewExecSpeaker builds the local fallback speaker.
func NewExecSpeaker(log zerolog.Logger) *ExecSpeaker {
	return &ExecSpeaker{log: log.With().Str("component", "local-speaker").Logger()}
}

func (s *ExecSpeaker) Speak(ctx context.Context, text string) {
	for _, candidate := range speakerCommands {
		if _, err := exec.LookPath(candidate[0]); err != nil {
			continue
		}
		args := append(candidate[1:], text)
		if err := exec.CommandContext(ctx, candidate[0], args...).Run(); err != nil {
			s.log.Warn().Err(err).Str("engine", candidate[0]).Msg("local speech failed")
		}
		return
	}
	s.log.Warn().Msg("no local speech engine found, skipping")
}
