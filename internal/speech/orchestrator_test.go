package speech

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeSynth struct {
	calls atomic.Int32
	block chan struct{}
	audio []byte
	err   error
}

func (f *fakeSynth) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	return f.audio, f.err
}

type fakePlayer struct {
	calls int
	err   error
}

func (f *fakePlayer) Play(ctx context.Context, audio []byte) error {
	f.calls++
	return f.err
}

type fakeLocal struct {
	calls int
	last  string
}

func (f *fakeLocal) Speak(ctx context.Context, text string) {
	f.calls++
	f.last = text
}

func TestSpeakRemoteSuccess(t *testing.T) {
	synth := &fakeSynth{audio: []byte("audio")}
	player := &fakePlayer{}
	local := &fakeLocal{}
	o := NewOrchestrator(synth, player, local, zerolog.Nop())

	o.Speak(context.Background(), "apple")

	if player.calls != 1 {
		t.Errorf("expected 1 playback, got %d", player.calls)
	}
	if local.calls != 0 {
		t.Errorf("local fallback must not run on success, got %d calls", local.calls)
	}
	if o.Speaking() {
		t.Error("busy flag must be released")
	}
}

func TestSpeakFallsBackOnSynthesisFailure(t *testing.T) {
	synth := &fakeSynth{err: errors.New("boom")}
	player := &fakePlayer{}
	local := &fakeLocal{}
	o := NewOrchestrator(synth, player, local, zerolog.Nop())

	o.Speak(context.Background(), "apple")

	if got := synth.calls.Load(); got != 1 {
		t.Errorf("expected exactly 1 remote attempt, got %d", got)
	}
	if player.calls != 0 {
		t.Errorf("nothing to play on synth failure, got %d calls", player.calls)
	}
	if local.calls != 1 || local.last != "apple" {
		t.Errorf("expected 1 local fallback with same text, got %d (%q)", local.calls, local.last)
	}
}

func TestSpeakFallsBackOnPlaybackFailure(t *testing.T) {
	synth := &fakeSynth{audio: []byte("audio")}
	player := &fakePlayer{err: errors.New("no speakers")}
	local := &fakeLocal{}
	o := NewOrchestrator(synth, player, local, zerolog.Nop())

	o.Speak(context.Background(), "banana")

	if local.calls != 1 || local.last != "banana" {
		t.Errorf("expected local fallback after playback failure, got %d (%q)", local.calls, local.last)
	}
	if got := synth.calls.Load(); got != 1 {
		t.Errorf("no remote retry allowed, got %d attempts", got)
	}
}

func TestSpeakBothTiersFailingReleasesFlag(t *testing.T) {
	synth := &fakeSynth{err: errors.New("boom")}
	// The local tier has no error path by contract, so the worst case is a
	// no-op local speaker; the flag must still come back.
	o := NewOrchestrator(synth, &fakePlayer{}, &fakeLocal{}, zerolog.Nop())

	o.Speak(context.Background(), "cherry")
	if o.Speaking() {
		t.Fatal("busy flag stuck after failure")
	}

	// A later call must work again.
	o.Speak(context.Background(), "cherry")
	if got := synth.calls.Load(); got != 2 {
		t.Errorf("expected orchestrator to accept a new call, got %d attempts", got)
	}
}

func TestSpeakSingleFlight(t *testing.T) {
	synth := &fakeSynth{audio: []byte("audio"), block: make(chan struct{})}
	player := &fakePlayer{}
	local := &fakeLocal{}
	o := NewOrchestrator(synth, player, local, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		o.Speak(context.Background(), "first")
		close(done)
	}()

	waitFor(t, o.Speaking)

	// Second call while in flight: dropped, not queued.
	o.Speak(context.Background(), "second")
	if got := synth.calls.Load(); got != 1 {
		t.Errorf("concurrent speak must be a no-op, got %d remote attempts", got)
	}

	close(synth.block)
	<-done

	if player.calls != 1 {
		t.Errorf("expected exactly 1 playback, got %d", player.calls)
	}
	if o.Speaking() {
		t.Error("busy flag must be released after delivery")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for condition")
		}
		time.Sleep(time.Millisecond)
	}
}
