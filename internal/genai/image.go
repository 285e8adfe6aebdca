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

// ImageService generates illustrative images through an OpenAI-compatible
// image API and returns the base64-encoded payload.
type ImageService struct {
	baseURL string
	model   string
	size    string
	keys    KeyProvider
	client  *http.Client
	log     zerolog.Logger
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// NewImageService creates an image adapter for an OpenAI-compatible API.
func NewImageService(baseURL, model, size string, keys KeyProvider, log zerolog.Logger) *ImageService {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &ImageService{
		baseURL: baseURL,
		model:   model,
		size:    size,
		keys:    keys,
		client:  &http.Client{Timeout: 60 * time.Second},
		log:     log.With().Str("component", "image-service").Logger(),
	}
}

// SynthesizeImage generates an image for an item. It returns ErrNoContent
// when the response carries no image part.
func (s *ImageService) SynthesizeImage(ctx context.Context, itemName, categoryName string) (string, error) {
	apiKey, err := s.keys.APIKey(ServiceImages)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(
		"A bright, friendly illustration of %s (category: %s) for a young child's vocabulary book. Simple shapes, solid colors, no text.",
		itemName, categoryName)

	body, _ := json.Marshal(imageRequest{
		Model:          s.model,
		Prompt:         prompt,
		N:              1,
		Size:           s.size,
		ResponseFormat: "b64_json",
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/images/generations", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	requestID := uuid.NewString()
	s.log.Debug().Str("request_id", requestID).Str("item", itemName).Msg("requesting image generation")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read image response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Service: "image", Status: resp.StatusCode, Body: string(raw)}
	}

	var result imageResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("decode image response: %w", err)
	}
	if len(result.Data) == 0 || result.Data[0].B64JSON == "" {
		return "", ErrNoContent
	}

	s.log.Debug().Str("request_id", requestID).Int("bytes", len(result.Data[0].B64JSON)).Msg("image generated")
	return result.Data[0].B64JSON, nil
}
