package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything read from the environment at startup. It is
// built once in main and never mutated afterwards.
type Config struct {
	Port string

	NewsAPIKey string

	LLMProvider  string // "openai" or "anthropic"
	OpenAIKey    string
	AnthropicKey string

	SpeechKey    string
	SpeechRegion string

	FrontendURL string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnvOrDefault("PORT", "3001"),
		LLMProvider:  getEnvOrDefault("LLM_PROVIDER", "openai"),
		NewsAPIKey:   os.Getenv("NEWS_API_KEY"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		SpeechKey:    os.Getenv("AZURE_SPEECH_KEY"),
		SpeechRegion: os.Getenv("AZURE_SPEECH_REGION"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
	}

	var missing []string

	if cfg.NewsAPIKey == "" {
		missing = append(missing, "NEWS_API_KEY")
	}

	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
	case "anthropic":
		if cfg.AnthropicKey == "" {
			missing = append(missing, "ANTHROPIC_API_KEY")
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q, expected \"openai\" or \"anthropic\"", cfg.LLMProvider)
	}

	if cfg.SpeechKey == "" {
		missing = append(missing, "AZURE_SPEECH_KEY")
	}
	if cfg.SpeechRegion == "" {
		missing = append(missing, "AZURE_SPEECH_REGION")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
