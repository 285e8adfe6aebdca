package speech

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Synthesizer is the remote voice capability.
type Synthesizer interface {
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)
}

// Orchestrator runs the two-tier delivery pipeline: remote synthesis and
// playback first, then exactly one local fallback on any failure. At most
// one delivery is in flight; concurrent calls are dropped, not queued.
type Orchestrator struct {
	remote   Synthesizer
	player   Player
	local    LocalSpeaker
	speaking atomic.Bool
	log      zerolog.Logger
}

// NewOrchestrator wires the pipeline.
func NewOrchestrator(remote Synthesizer, player Player, local LocalSpeaker, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		remote: remote,
		player: player,
		local:  local,
		log:    log.With().Str("component", "speech").Logger(),
	}
}

// Speaking reports whether a delivery is in flight.
func (o *Orchestrator) Speaking() bool {
	return o.speaking.Load()
}

// Speak delivers text aloud. A call while another delivery is in flight is
// a silent no-op. The busy flag is released no matter which tier succeeded,
// and both tiers failing degrades to a logged no-op rather than an error.
func (o *Orchestrator) Speak(ctx context.Context, text string) {
	if !o.speaking.CompareAndSwap(false, true) {
		o.log.Debug().Msg("speech already in flight, dropping request")
		return
	}
	defer func() {
		if r := recover(); r != nil {
			o.log.Error().Any("panic", r).Msg("speech delivery panicked")
		}
		o.speaking.Store(false)
	}()

	audio, err := o.remote.SynthesizeSpeech(ctx, text)
	if err == nil {
		if playErr := o.player.Play(ctx, audio); playErr == nil {
			return
		} else {
			err = playErr
		}
	}

	// Unconditional local-only fallback: no second remote attempt.
	o.log.Debug().Err(err).Msg("remote speech failed, falling back to local engine")
	o.local.Speak(ctx, text)
}
