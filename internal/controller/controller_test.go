package controller

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wordgarden/wordgarden/internal/genai"
	"github.com/wordgarden/wordgarden/internal/store"
)

type fakeText struct {
	fact        string
	factErr     error
	batches     [][]genai.Candidate
	expandErr   error
	expandCalls int
	lastHint    []string
}

func (f *fakeText) GenerateText(ctx context.Context, prompt string) (string, error) {
	return f.fact, f.factErr
}

func (f *fakeText) ExpandCategory(ctx context.Context, category string, existing []string) ([]genai.Candidate, error) {
	f.expandCalls++
	f.lastHint = existing
	if f.expandErr != nil {
		return nil, f.expandErr
	}
	if len(f.batches) == 0 {
		return nil, nil
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch, nil
}

type fakeImages struct {
	payload string
	err     error
	calls   int
}

func (f *fakeImages) SynthesizeImage(ctx context.Context, itemName, categoryName string) (string, error) {
	f.calls++
	return f.payload, f.err
}

type fakeSpeech struct {
	calls int
	last  string
}

func (f *fakeSpeech) Speak(ctx context.Context, text string) {
	f.calls++
	f.last = text
}

type deps struct {
	text   *fakeText
	images *fakeImages
	speech *fakeSpeech
	kv     *store.KV
}

func newTestController(t *testing.T) (*Controller, *deps) {
	t.Helper()
	kv, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	d := &deps{text: &fakeText{}, images: &fakeImages{}, speech: &fakeSpeech{}, kv: kv}
	c := New(context.Background(),
		store.NewCatalogStore(kv, zerolog.Nop()),
		store.NewAssetCache(kv, store.DefaultEpoch, zerolog.Nop()),
		d.text, d.images, d.speech, zerolog.Nop())
	return c, d
}

func TestSpeakDelegatesAndReleasesFlag(t *testing.T) {
	c, d := newTestController(t)

	c.Speak(context.Background(), "apple")

	if d.speech.calls != 1 || d.speech.last != "apple" {
		t.Errorf("expected 1 delivery of apple, got %d (%q)", d.speech.calls, d.speech.last)
	}
	if c.Session().Speaking {
		t.Error("speaking flag must be released")
	}
}

func TestSpeakWhileBusyIsNoOp(t *testing.T) {
	c, d := newTestController(t)

	c.session.Speaking = true
	c.Speak(context.Background(), "apple")

	if d.speech.calls != 0 {
		t.Errorf("expected no delivery while busy, got %d", d.speech.calls)
	}
	if !c.Session().Speaking {
		t.Error("flag must be untouched by the dropped call")
	}
}

func TestFunFactSpeaksTheFact(t *testing.T) {
	c, d := newTestController(t)
	d.text.fact = "Dogs can smell feelings."

	fact, err := c.FunFact(context.Background())
	if err != nil {
		t.Fatalf("fun fact: %v", err)
	}
	if fact != d.text.fact {
		t.Errorf("unexpected fact %q", fact)
	}
	if d.speech.calls != 1 || d.speech.last != d.text.fact {
		t.Errorf("fact must be spoken, got %d calls (%q)", d.speech.calls, d.speech.last)
	}
}

func TestFunFactFailureIsClassified(t *testing.T) {
	c, d := newTestController(t)
	d.text.factErr = genai.ErrMissingCredential

	_, err := c.FunFact(context.Background())

	var uerr *UserError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected UserError, got %v", err)
	}
	if uerr.Kind != genai.FailureCredential {
		t.Errorf("expected credential failure, got %d", uerr.Kind)
	}
	if d.speech.calls != 0 {
		t.Error("nothing to speak on failure")
	}
}
