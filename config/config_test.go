package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	config.EnvSkillLevel, config.EnvMethod, config.EnvPerfect, config.EnvSeed,
	config.EnvRedisAddr, config.EnvCacheTTL, config.EnvLogLevel, config.EnvLogFormat,
}

// clearEnv unsets every MAZE_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.SkillLevel)
	assert.Equal(t, builder.MethodBoruvka, cfg.Method)
	assert.True(t, cfg.Perfect)
	assert.False(t, cfg.HasSeed)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvSkillLevel, "7")
	t.Setenv(config.EnvMethod, " Prim ")
	t.Setenv(config.EnvPerfect, "false")
	t.Setenv(config.EnvSeed, "-12")
	t.Setenv(config.EnvRedisAddr, "localhost:6379")
	t.Setenv(config.EnvCacheTTL, "90m")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogFormat, "JSON")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.SkillLevel)
	assert.Equal(t, builder.MethodPrim, cfg.Method)
	assert.False(t, cfg.Perfect)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, int64(-12), cfg.Seed)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 90*time.Minute, cfg.CacheTTL)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	o := cfg.Order()
	assert.Equal(t, 7, o.SkillLevel)
	assert.Equal(t, builder.MethodPrim, o.Method)
	assert.False(t, o.Perfect)
	assert.Equal(t, int64(-12), o.Seed)
}

func TestInvalidValues(t *testing.T) {
	cases := map[string]string{
		config.EnvSkillLevel: "16",
		config.EnvMethod:     "wilson",
		config.EnvPerfect:    "maybe",
		config.EnvSeed:       "0x",
		config.EnvCacheTTL:   "-1s",
		config.EnvLogLevel:   "loud",
		config.EnvLogFormat:  "xml",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := config.FromEnv()
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	clearEnv(t)
	t.Setenv(config.EnvSkillLevel, "three")
	_, err := config.FromEnv()
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "maze.env")
	require.NoError(t, os.WriteFile(path, []byte("MAZE_SKILL_LEVEL=5\nMAZE_METHOD=kruskal\nMAZE_SEED=44\n"), 0o600))

	// Variables already set win over the file.
	t.Setenv(config.EnvMethod, "dfs")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.SkillLevel)
	assert.Equal(t, builder.MethodDFS, cfg.Method)
	assert.Equal(t, int64(44), cfg.Seed)
	assert.True(t, cfg.HasSeed)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{LogLevel: logrus.WarnLevel, LogFormat: "json"}
	l := cfg.NewLogger(&buf)

	l.Info("hidden")
	l.WithField("k", 1).Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"k":1`)
}
