package config

import (
	"github.com/joho/godotenv"
)

// LoadEnv loads a local .env file if present. Missing files are fine in
// deployed environments where variables come from the process environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		Logger.Warn("No .env file loaded, using process environment:", err)
	}
}
