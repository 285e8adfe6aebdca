// Package speech delivers spoken words: remote synthesis with playback,
// falling back to a local speech engine.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// Player plays a synthesized audio payload.
type Player interface {
	Play(ctx context.Context, audio []byte) error
}

// ErrNoPlayer means no usable audio player binary was found on this system.
var ErrNoPlayer = errors.New("no audio player available")

// playerCommands lists known players and the arguments that make them play
// one file and exit.
var playerCommands = [][]string{
	{"afplay"},
	{"mpg123", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"aplay", "-q"},
}

// ExecPlayer plays audio by writing it to a temp file and invoking the
// first available system player.
type ExecPlayer struct {
	log zerolog.Logger
}

// NewExecPlayer builds a player that shells out to the system.
func NewExecPlayer(log zerolog.Logger) *ExecPlayer {
	return &ExecPlayer{log: log.With().Str("component", "player").Logger()}
}

func (p *ExecPlayer) Play(ctx context.Context, audio []byte) error {
	if len(audio) == 0 {
		return errors.New("empty audio payload")
	}

	f, err := os.CreateTemp("", "wordgarden-*.mp3")
	if err != nil {
		return fmt.Errorf("create temp audio file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(audio); err != nil {
		f.Close()
		return fmt.Errorf("write temp audio file: %w", err)
	}
	f.Close()

	for _, candidate := range playerCommands {
		if _, err := exec.LookPath(candidate[0]); err != nil {
			continue
		}
		args := append(candidate[1:], f.Name())
		cmd := exec.CommandContext(ctx, candidate[0], args...)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s: %w", candidate[0], err)
		}
		p.log.Debug().Str("player", candidate[0]).Int("bytes", len(audio)).Msg("played audio")
		return nil
	}
	return ErrNoPlayer
}
