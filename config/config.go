package config

import (
	"os"
	"strconv"
)

// Config holds everything the chat pipeline needs. It is built once in main
// and passed down explicitly so components can be constructed with fake
// prompts and credentials in tests.
type Config struct {
	Port string

	OpenAIKey   string
	Model       string
	MaxTokens   int
	Temperature float64

	// Optional file overrides for the two system prompts. Empty means use
	// the built-in prompt text.
	ConversationalPromptFile string
	TemplatePromptFile       string
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),

		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		Model:       getEnv("POSTERIO_MODEL", "gpt-4o-mini"),
		MaxTokens:   getIntEnv("POSTERIO_MAX_TOKENS", 700),
		Temperature: getFloatEnv("POSTERIO_TEMPERATURE", 0.6),

		ConversationalPromptFile: os.Getenv("POSTERIO_CONVERSATIONAL_PROMPT_FILE"),
		TemplatePromptFile:       os.Getenv("POSTERIO_TEMPLATE_PROMPT_FILE"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		Logger.Warnf("Invalid value for %s: %q, using default %d", key, v, def)
		return def
	}
	return n
}

func getFloatEnv(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		Logger.Warnf("Invalid value for %s: %q, using default %g", key, v, def)
		return def
	}
	return f
}
