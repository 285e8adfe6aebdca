package genai

import (
	"strings"
	"testing"
)

func TestParseCandidates(t *testing.T) {
	raw := `[{"name":"Cherry","name_es":"Cereza","glyph":"🍒"},{"name":"Date","name_es":"Dátil","glyph":"🌴"}]`
	got := parseCandidates(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Name != "Cherry" || got[0].NameES != "Cereza" {
		t.Errorf("unexpected first candidate: %+v", got[0])
	}
}

func TestParseCandidatesFencedAndProse(t *testing.T) {
	raw := "Here you go!\n```json\n[{\"name\":\"Kiwi\",\"name_es\":\"Kiwi\",\"glyph\":\"🥝\"}]\n```\nEnjoy."
	got := parseCandidates(raw)
	if len(got) != 1 || got[0].Name != "Kiwi" {
		t.Errorf("expected Kiwi, got %+v", got)
	}
}

func TestParseCandidatesMalformedYieldsZero(t *testing.T) {
	for _, raw := range []string{
		"",
		"not json at all",
		`{"name":"NotAnArray"}`,
		`[{"name": }]`,
		"][",
	} {
		if got := parseCandidates(raw); len(got) != 0 {
			t.Errorf("input %q: expected zero candidates, got %+v", raw, got)
		}
	}
}

func TestParseCandidatesDropsNameless(t *testing.T) {
	raw := `[{"name":"","glyph":"❓"},{"name":"Plum","name_es":"Ciruela","glyph":"🟣"}]`
	got := parseCandidates(raw)
	if len(got) != 1 || got[0].Name != "Plum" {
		t.Errorf("expected only Plum, got %+v", got)
	}
}

func TestExpansionPromptCarriesExistingNames(t *testing.T) {
	prompt := expansionPrompt("Fruits", []string{"Apple", "Banana"})
	if !strings.Contains(prompt, "Fruits") {
		t.Error("prompt must name the category")
	}
	if !strings.Contains(prompt, "Apple, Banana") {
		t.Error("prompt must hint the existing names")
	}
}
