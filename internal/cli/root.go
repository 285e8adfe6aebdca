// Package cli implements the wordgarden CLI commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wordgarden/wordgarden/internal/config"
	"github.com/wordgarden/wordgarden/internal/controller"
	"github.com/wordgarden/wordgarden/internal/genai"
	"github.com/wordgarden/wordgarden/internal/speech"
	"github.com/wordgarden/wordgarden/internal/store"
)

var (
	configPath string
	dbPath     string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "wordgarden",
	Short: "A vocabulary garden for young learners",
	Long:  "Browse word categories, grow them with freshly generated words, hear words spoken aloud, and see generated pictures.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config path (default: ~/.wordgarden/config.toml)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: <data dir>/wordgarden.db)")
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if os.Getenv("DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func getConfigPath() string {
	if configPath != "" {
		return configPath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".wordgarden", "config.toml")
}

// openController wires the stores, adapters, and controller. The returned
// cleanup closes the database.
func openController(ctx context.Context) (*controller.Controller, func(), error) {
	log := newLogger()
	genai.LoadDotEnv()

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return nil, nil, err
	}

	path := cfg.DBPath()
	if dbPath != "" {
		path = dbPath
	}
	kv, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	keys := genai.EnvKeys{}
	text := genai.NewTextService(keys, cfg.Text.Model, log)
	images := genai.NewImageService(cfg.Images.BaseURL, cfg.Images.Model, cfg.Images.Size, keys, log)
	synth := genai.NewSpeechService(cfg.Speech.BaseURL, cfg.Speech.VoiceID, cfg.Speech.ModelID, keys, log)

	orch := speech.NewOrchestrator(synth, speech.NewExecPlayer(log), speech.NewExecSpeaker(log), log)

	ctrl := controller.New(ctx,
		store.NewCatalogStore(kv, log),
		store.NewAssetCache(kv, store.DefaultEpoch, log),
		text, images, orch, log)

	return ctrl, func() { kv.Close() }, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// reportErr prints a failure the way the learner should see it. Credential
// failures include the instruction to add a key, which is this client's
// credential-selection flow.
func reportErr(err error) {
	var uerr *controller.UserError
	if errors.As(err, &uerr) && uerr.Kind == genai.FailureCredential {
		fmt.Println(uerr.Message)
		fmt.Println("Set OPENROUTER_API_KEY, IMAGES_API_KEY, or ELEVENLABS_API_KEY in the environment or a .env file.")
		return
	}
	fmt.Println(err.Error())
}
