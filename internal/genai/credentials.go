// Package genai adapts the remote generative capabilities: text completion,
// category expansion, image generation, and voice synthesis.
package genai

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Service names used to look up credentials.
const (
	ServiceOpenRouter = "openrouter"
	ServiceImages     = "images"
	ServiceSpeech     = "speech"
)

// KeyProvider supplies API credentials. It is passed explicitly into every
// adapter that calls a remote capability.
type KeyProvider interface {
	APIKey(service string) (string, error)
}

// EnvKeys reads credentials from the process environment.
type EnvKeys struct{}

var envNames = map[string]string{
	ServiceOpenRouter: "OPENROUTER_API_KEY",
	ServiceImages:     "IMAGES_API_KEY",
	ServiceSpeech:     "ELEVENLABS_API_KEY",
}

// APIKey returns the credential for a service, or ErrMissingCredential
// wrapped with the environment variable to set.
func (EnvKeys) APIKey(service string) (string, error) {
	name, ok := envNames[service]
	if !ok {
		return "", fmt.Errorf("unknown service %q: %w", service, ErrMissingCredential)
	}
	key := os.Getenv(name)
	if key == "" {
		return "", fmt.Errorf("%s is not set: %w", name, ErrMissingCredential)
	}
	return key, nil
}

// LoadDotEnv loads a .env file if one exists. Missing files are fine.
func LoadDotEnv() {
	_ = godotenv.Load()
}
