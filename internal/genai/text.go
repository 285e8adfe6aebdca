package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openrouter "github.com/revrost/go-openrouter"
	"github.com/rs/zerolog"
)

// Candidate is one machine-generated vocabulary entry, before it is given
// an identifier and merged into the catalog.
type Candidate struct {
	Name   string `json:"name"`
	NameES string `json:"name_es"`
	Glyph  string `json:"glyph"`
}

// TextService produces short completions and category expansions through
// OpenRouter.
type TextService struct {
	keys  KeyProvider
	model string
	log   zerolog.Logger
}

// NewTextService builds a TextService. The credential is resolved per call
// so a missing key surfaces as a classified failure, not a crash.
func NewTextService(keys KeyProvider, model string, log zerolog.Logger) *TextService {
	return &TextService{
		keys:  keys,
		model: model,
		log:   log.With().Str("component", "text-service").Logger(),
	}
}

// GenerateText returns a short natural-language completion for the prompt.
func (s *TextService) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.complete(ctx, "You write short, cheerful answers for young children learning new words. Two sentences at most, simple words only.", prompt)
}

// ExpandCategory asks the model for new vocabulary items for a category.
// The existing names are a duplicate-avoidance hint only; the caller's merge
// enforces uniqueness. Malformed or non-array output yields zero candidates.
func (s *TextService) ExpandCategory(ctx context.Context, category string, existing []string) ([]Candidate, error) {
	raw, err := s.complete(ctx, expansionSystemPrompt, expansionPrompt(category, existing))
	if err != nil {
		return nil, err
	}
	return parseCandidates(raw), nil
}

func (s *TextService) complete(ctx context.Context, system, prompt string) (string, error) {
	key, err := s.keys.APIKey(ServiceOpenRouter)
	if err != nil {
		return "", err
	}

	client := openrouter.NewClient(key)
	resp, err := client.CreateChatCompletion(ctx, openrouter.ChatCompletionRequest{
		Model: s.model,
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role:    openrouter.ChatMessageRoleSystem,
				Content: openrouter.Content{Text: system},
			},
			{
				Role:    openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{Text: prompt},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoContent
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content.Text)
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}

const expansionSystemPrompt = `You help build a vocabulary catalog for young children learning English and Spanish.
Respond ONLY with a JSON array. Each element must be an object with string fields "name" (English, capitalized), "name_es" (Spanish), and "glyph" (a single matching emoji). No prose, no code fences.`

func expansionPrompt(category string, existing []string) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "Give me 4 new words for the category %q.\n", category)
	if len(existing) > 0 {
		fmt.Fprintf(&b, "Do not repeat any of these words: %s.\n", strings.Join(existing, ", "))
	}
	return b.String()
}

// parseCandidates extracts a JSON array of candidates from model output.
// Models occasionally wrap the array in code fences or prose; anything that
// does not contain a well-formed array parses as zero candidates.
func parseCandidates(raw string) []Candidate {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil
	}

	var candidates []Candidate
	if err := json.Unmarshal([]byte(raw[start:end+1]), &candidates); err != nil {
		return nil
	}

	out := candidates[:0]
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}
