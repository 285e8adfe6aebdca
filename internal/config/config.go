// Package config provides the configuration structure for wordgarden.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DataConfig holds file-system paths.
type DataConfig struct {
	Dir string `toml:"dir"`
}

// TextConfig holds the text-generation settings.
type TextConfig struct {
	Model string `toml:"model"`
}

// ImagesConfig holds the image-generation settings.
type ImagesConfig struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	Size    string `toml:"size"`
}

// SpeechConfig holds the remote voice-synthesis settings.
type SpeechConfig struct {
	BaseURL string `toml:"base_url"`
	VoiceID string `toml:"voice_id"`
	ModelID string `toml:"model_id"`
}

// Config is the root configuration structure.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Text   TextConfig   `toml:"text"`
	Images ImagesConfig `toml:"images"`
	Speech SpeechConfig `toml:"speech"`
}

// Default returns the built-in configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Data: DataConfig{Dir: filepath.Join(home, ".wordgarden")},
		Text: TextConfig{Model: "google/gemma-3n-e2b-it:free"},
		Images: ImagesConfig{
			BaseURL: "https://api.openai.com/v1",
			Model:   "gpt-image-1",
			Size:    "512x512",
		},
		Speech: SpeechConfig{
			BaseURL: "https://api.elevenlabs.io",
			VoiceID: "21m00Tcm4TlvDq8ikWAM",
			ModelID: "eleven_v3",
		},
	}
}

// Load reads the TOML file at path, layered over the defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// DBPath returns the database location inside the data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.Data.Dir, "wordgarden.db")
}
