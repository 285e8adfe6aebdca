package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SpeechService synthesizes spoken audio through the ElevenLabs API.
type SpeechService struct {
	baseURL string
	voiceID string
	modelID string
	keys    KeyProvider
	client  *http.Client
	log     zerolog.Logger
}

type speechRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// NewSpeechService creates a remote voice-synthesis adapter.
func NewSpeechService(baseURL, voiceID, modelID string, keys KeyProvider, log zerolog.Logger) *SpeechService {
	if baseURL == "" {
		baseURL = "https://api.elevenlabs.io"
	}
	return &SpeechService{
		baseURL: baseURL,
		voiceID: voiceID,
		modelID: modelID,
		keys:    keys,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log.With().Str("component", "speech-service").Logger(),
	}
}

// SynthesizeSpeech returns audio for the text, or ErrNoContent when the
// service responds with an empty body.
func (s *SpeechService) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	apiKey, err := s.keys.APIKey(ServiceSpeech)
	if err != nil {
		return nil, err
	}

	body, _ := json.Marshal(speechRequest{Text: text, ModelID: s.modelID})

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", s.baseURL, s.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	requestID := uuid.NewString()
	s.log.Debug().Str("request_id", requestID).Int("chars", len(text)).Msg("requesting voice synthesis")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read speech response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Service: "speech", Status: resp.StatusCode, Body: string(raw)}
	}
	if len(raw) == 0 {
		return nil, ErrNoContent
	}

	s.log.Debug().Str("request_id", requestID).Int("bytes", len(raw)).Msg("voice synthesized")
	return raw, nil
}
