package config

import "os"

// AIConfig holds text-generation settings
type AIConfig struct {
	APIKey string `json:"-"` // Never serialize
	Model  string `json:"model"`
}

// DefaultAIConfig returns the AI configuration from the environment
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-pro"),
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
