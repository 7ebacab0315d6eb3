package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Persistence tiers, probed in this order by the selector.
	DatabaseURL string
	RedisURL    string
	DataFile    string

	// Outbound CallFluent integration.
	CallFluentURL  string
	CallFluentKey  string
	CallbackNumber string

	LogLevel  string
	LogFormat string

	// Declared for parity with the hosted deployment; nothing reads them.
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		DataFile:    getEnv("DATA_FILE", ""),

		CallFluentURL:  getEnv("CALLFLUENT_API_URL", ""),
		CallFluentKey:  getEnv("CALLFLUENT_API_KEY", ""),
		CallbackNumber: getEnv("CALLBACK_NUMBER", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

// CallFluentConfigured reports whether the outbound integration can be used.
func (c *Config) CallFluentConfigured() bool {
	return c.CallFluentURL != "" && c.CallFluentKey != ""
}
