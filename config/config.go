package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	LLMProviderAnthropic = "anthropic"
	LLMProviderGroq      = "groq"
)

type LLMConfig struct {
	Provider        string
	AnthropicAPIKey string
	AnthropicModel  string
	GroqAPIKey      string
	GroqModel       string
}

// IsConfigured returns true if the selected provider has an API key
func (c LLMConfig) IsConfigured() bool {
	switch c.Provider {
	case LLMProviderAnthropic:
		return c.AnthropicAPIKey != ""
	case LLMProviderGroq:
		return c.GroqAPIKey != ""
	default:
		return false
	}
}

type ClerkConfig struct {
	SecretKey string
}

// IsConfigured returns true if all required Clerk configuration is present
func (c ClerkConfig) IsConfigured() bool {
	return c.SecretKey != ""
}

type AlertConfig struct {
	SlackWebhookURL string
}

// IsConfigured returns true if error alerts can be delivered
func (c AlertConfig) IsConfigured() bool {
	return c.SlackWebhookURL != ""
}

type AppConfig struct {
	// Core configuration (always required)
	DatabaseURL        string
	DatabaseSchema     string
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	ServerLogsURL      string
	UseStrictConfig    bool // If true, error when any integration is not fully configured

	LLMConfig   LLMConfig
	ClerkConfig ClerkConfig
	AlertConfig AlertConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		DatabaseURL:        databaseURL,
		DatabaseSchema:     databaseSchema,
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		ServerLogsURL:      getEnvWithDefault("SERVER_LOGS_URL", ""),
		UseStrictConfig:    getEnvWithDefault("USE_STRICT_CONFIG", "false") == "true",

		LLMConfig: loadLLMConfig(),

		// Clerk configuration (optional)
		ClerkConfig: ClerkConfig{
			SecretKey: os.Getenv("CLERK_SECRET_KEY"),
		},

		// Alerting configuration (optional)
		AlertConfig: AlertConfig{
			SlackWebhookURL: os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
		},
	}

	if config.LLMConfig.Provider != LLMProviderAnthropic && config.LLMConfig.Provider != LLMProviderGroq {
		return nil, fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", LLMProviderAnthropic, LLMProviderGroq, config.LLMConfig.Provider)
	}

	if config.LLMConfig.IsConfigured() {
		log.Printf("✅ LLM provider configured: %s (model %s)", config.LLMConfig.Provider, config.LLMConfig.Model())
	} else {
		log.Printf("⚠️ LLM provider %s not configured - command generation and validation will fail", config.LLMConfig.Provider)
		if config.UseStrictConfig {
			return nil, fmt.Errorf("LLM provider %s is not fully configured (USE_STRICT_CONFIG=true)", config.LLMConfig.Provider)
		}
	}

	if config.ClerkConfig.IsConfigured() {
		log.Printf("✅ Clerk authentication configured")
	} else {
		log.Printf("⚠️ Clerk authentication not configured - only TESTING_MODE requests will be authenticated")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("clerk authentication is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	if config.AlertConfig.IsConfigured() {
		log.Printf("✅ Slack error alerts configured")
	} else {
		log.Printf("⚠️ Slack error alerts not configured - panics will only be logged")
	}

	return config, nil
}

// Model returns the model name of the selected provider
func (c LLMConfig) Model() string {
	if c.Provider == LLMProviderGroq {
		return c.GroqModel
	}
	return c.AnthropicModel
}

func loadLLMConfig() LLMConfig {
	return LLMConfig{
		Provider:        getEnvWithDefault("LLM_PROVIDER", LLMProviderAnthropic),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnvWithDefault("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
		GroqAPIKey:      os.Getenv("GROQ_API_KEY"),
		GroqModel:       getEnvWithDefault("GROQ_MODEL", "llama-3.1-70b-versatile"),
	}
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
