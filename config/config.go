package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything a session needs, filled from the environment
type Config struct {
	PlayerName string
	LogFile    string
	SaveFile   string
	MaxRounds  int
	LogLevel   string

	Redis   RedisConfig
	DB      DBConfig
	Discord DiscordConfig
}

// RedisConfig switches saves to redis when URL is set
type RedisConfig struct {
	URL string
}

// DBConfig enables the encounter history when Driver is set
type DBConfig struct {
	Driver   string
	DSN      string
	Host     string
	User     string
	Password string
}

const dbName = "rpg"

// ConnectionString is DSN, or a postgres DSN built from the host settings
func (c DBConfig) ConnectionString() string {
	if c.DSN != "" || c.Driver != "postgres" {
		return c.DSN
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.User, c.Password, dbName)
}

// DiscordConfig posts encounter reports to a channel when both are set
type DiscordConfig struct {
	Token     string
	ChannelID string
}

func (c DiscordConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

// Load reads the configuration from environment variables
func Load() (Config, error) {
	conf := Config{
		PlayerName: getEnvOrDefault("RPGSIM_PLAYER_NAME", "Hero"),
		LogFile:    getEnvOrDefault("RPGSIM_LOG_FILE", "game_log.txt"),
		SaveFile:   getEnvOrDefault("RPGSIM_SAVE_FILE", "save.txt"),
		MaxRounds:  getEnvAsIntOrDefault("RPGSIM_MAX_ROUNDS", 1000),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		DB: DBConfig{
			Driver:   os.Getenv("DB_DRIVER"),
			DSN:      os.Getenv("DB_DSN"),
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Discord: DiscordConfig{
			Token:     os.Getenv("DISCORD_TOKEN"),
			ChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		},
	}

	if conf.MaxRounds < 1 {
		return Config{}, fmt.Errorf("RPGSIM_MAX_ROUNDS must be at least 1, got %d", conf.MaxRounds)
	}
	if conf.DB.Driver == "sqlite" && conf.DB.DSN == "" {
		return Config{}, fmt.Errorf("DB_DSN is required for the sqlite driver")
	}

	return conf, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
