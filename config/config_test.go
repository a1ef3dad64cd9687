package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{ //nolint:gochecknoglobals
	"RPGSIM_PLAYER_NAME", "RPGSIM_LOG_FILE", "RPGSIM_SAVE_FILE", "RPGSIM_MAX_ROUNDS", "LOG_LEVEL",
	"REDIS_URL", "DB_DRIVER", "DB_DSN", "DB_HOST", "DB_USER", "DB_PASSWORD",
	"DISCORD_TOKEN", "DISCORD_CHANNEL_ID",
}

func clearEnv(t *testing.T) {
	for _, key := range allKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	conf, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Hero", conf.PlayerName)
	assert.Equal(t, "game_log.txt", conf.LogFile)
	assert.Equal(t, "save.txt", conf.SaveFile)
	assert.Equal(t, 1000, conf.MaxRounds)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Empty(t, conf.Redis.URL)
	assert.Empty(t, conf.DB.Driver)
	assert.False(t, conf.Discord.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RPGSIM_PLAYER_NAME", "Aria")
	t.Setenv("RPGSIM_MAX_ROUNDS", "50")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_CHANNEL_ID", "123")

	conf, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Aria", conf.PlayerName)
	assert.Equal(t, 50, conf.MaxRounds)
	assert.Equal(t, "redis://localhost:6379/0", conf.Redis.URL)
	assert.True(t, conf.Discord.Enabled())
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("RPGSIM_MAX_ROUNDS", "lots")

	conf, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1000, conf.MaxRounds)
}

func TestLoadRejectsZeroRounds(t *testing.T) {
	clearEnv(t)
	t.Setenv("RPGSIM_MAX_ROUNDS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadSQLiteNeedsDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}

func TestConnectionString(t *testing.T) {
	pg := DBConfig{Driver: "postgres", Host: "db", User: "rpg", Password: "secret"}
	assert.Equal(t, "host=db user=rpg password=secret dbname=rpg sslmode=disable", pg.ConnectionString())

	pg.DSN = "postgres://other"
	assert.Equal(t, "postgres://other", pg.ConnectionString())

	lite := DBConfig{Driver: "sqlite", DSN: "history.db"}
	assert.Equal(t, "history.db", lite.ConnectionString())
}
