package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llmduel/llmduel/pkg/backend"
	"github.com/llmduel/llmduel/pkg/config"
	"github.com/llmduel/llmduel/pkg/logbook"
	"github.com/llmduel/llmduel/pkg/repl"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "llmduel",
		Short:   "Compare OpenAI and Ollama responses side by side",
		Version: version,
	}

	root.AddCommand(
		newChatCmd(),
		newAskCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves configuration: .env file, optional YAML config, then
// environment fallback for the API key. A missing config flag means defaults.
func loadConfig(path string) (*config.Config, error) {
	config.LoadDotenv()

	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}
	cfg.FillFromEnv()
	return cfg, nil
}

// buildLoop wires the compare loop. The OpenAI querier stays nil without an
// API key so no cloud call is ever attempted.
func buildLoop(cfg *config.Config) *repl.Loop {
	var cloud backend.Querier
	if cfg.OpenAI.APIKey != "" {
		cloud = backend.NewOpenAI(cfg.OpenAI)
	}
	return repl.New(
		cloud,
		backend.NewOllama(cfg.Ollama),
		logbook.New(cfg.LogPath),
		cfg.Display.Width,
		os.Stdin,
		os.Stdout,
	)
}
