package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the process configuration, loaded from the environment
type Config struct {
	// DiscordToken is the bot token
	DiscordToken string

	// ApplicationID is the Discord application ID
	ApplicationID string

	// GuildID restricts command registration to one guild. Empty means
	// global registration.
	GuildID string

	// RedisAddr is the Redis server address
	RedisAddr string

	// RedisPassword is the Redis server password
	RedisPassword string

	// Environment is the deployment environment name
	Environment string
}

// Load reads configuration from the environment, after loading .env if
// one is present
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment
	// directly
	_ = godotenv.Load()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, errors.New("DISCORD_TOKEN is required")
	}

	return &Config{
		DiscordToken:  token,
		ApplicationID: os.Getenv("APPLICATION_ID"),
		GuildID:       os.Getenv("GUILD_ID"),
		RedisAddr:     getEnvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		Environment:   getEnvDefault("ENVIRONMENT", "development"),
	}, nil
}

// getEnvDefault returns the value of an environment variable, or a
// fallback when it is unset
func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
