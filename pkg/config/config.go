package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all llmduel configuration.
type Config struct {
	LogPath string        `yaml:"log_path"`
	Display DisplayConfig `yaml:"display"`
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Ollama  OllamaConfig  `yaml:"ollama"`
}

// DisplayConfig controls the side-by-side report layout.
type DisplayConfig struct {
	Width int `yaml:"width"`
}

// OpenAIConfig defines the cloud backend.
type OpenAIConfig struct {
	Model   string        `yaml:"model"`
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
	Pricing PricingConfig `yaml:"pricing"`
}

// PricingConfig holds per-million-token prices in USD.
type PricingConfig struct {
	InputPerMTok  float64 `yaml:"input_per_mtok"`
	OutputPerMTok float64 `yaml:"output_per_mtok"`
}

// OllamaConfig defines the local backend.
type OllamaConfig struct {
	Model   string        `yaml:"model"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		LogPath: "logs/responses.jsonl",
		Display: DisplayConfig{
			Width: 40,
		},
		OpenAI: OpenAIConfig{
			Model:   "gpt-4o-mini",
			BaseURL: "https://api.openai.com",
			Timeout: 120 * time.Second,
			Pricing: PricingConfig{
				InputPerMTok:  0.15,
				OutputPerMTok: 0.60,
			},
		},
		Ollama: OllamaConfig{
			Model:   "llama3",
			BaseURL: "http://localhost:11434",
			Timeout: 120 * time.Second,
		},
	}
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// LoadDotenv loads a .env file from the working directory into the process
// environment. A missing file is not an error.
func LoadDotenv() {
	_ = godotenv.Load()
}

// FillFromEnv fills the OpenAI API key from OPENAI_API_KEY when the config
// file did not set one.
func (c *Config) FillFromEnv() {
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}
