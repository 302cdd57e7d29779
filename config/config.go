// Package config loads mazegen settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/factory"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvSkillLevel = "MAZE_SKILL_LEVEL"
	EnvMethod     = "MAZE_METHOD"
	EnvPerfect    = "MAZE_PERFECT"
	EnvSeed       = "MAZE_SEED"
	EnvRedisAddr  = "MAZE_REDIS_ADDR"
	EnvCacheTTL   = "MAZE_CACHE_TTL"
	EnvLogLevel   = "MAZE_LOG_LEVEL"
	EnvLogFormat  = "MAZE_LOG_FORMAT"
)

// ErrInvalid is wrapped by every error about a malformed setting.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the command-line tool's settings.
type Config struct {
	SkillLevel int            // skill level 0–15
	Method     builder.Method // spanning-tree builder
	Perfect    bool           // perfect maze, no rooms or loops
	Seed       int64          // RNG seed, valid when HasSeed
	HasSeed    bool           // MAZE_SEED was set
	RedisAddr  string         // redis host:port; empty disables the cache
	CacheTTL   time.Duration  // lifetime of cached mazes
	LogLevel   logrus.Level   // minimum log level
	LogFormat  string         // "text" or "json"
}

// Load reads files into the environment without overriding variables that
// are already set, then builds a Config. Without files it tries ".env" and
// ignores its absence.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", strings.Join(files, ", "), err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the environment alone.
func FromEnv() (Config, error) {
	cfg := Config{
		RedisAddr: getEnvWithDefault(EnvRedisAddr, ""),
		LogFormat: strings.ToLower(getEnvWithDefault(EnvLogFormat, "text")),
	}

	var err error
	if cfg.SkillLevel, err = getEnvAsInt(EnvSkillLevel, 0); err != nil {
		return Config{}, err
	}
	if cfg.SkillLevel < 0 || cfg.SkillLevel > factory.MaxSkillLevel {
		return Config{}, fmt.Errorf("%w: %s=%d outside [0,%d]", ErrInvalid, EnvSkillLevel, cfg.SkillLevel, factory.MaxSkillLevel)
	}
	if cfg.Method, err = builder.ParseMethod(getEnvWithDefault(EnvMethod, "boruvka")); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, EnvMethod, err)
	}
	if cfg.Perfect, err = getEnvAsBool(EnvPerfect, true); err != nil {
		return Config{}, err
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		if cfg.Seed, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, EnvSeed, err)
		}
		cfg.HasSeed = true
	}
	if cfg.CacheTTL, err = getEnvAsDuration(EnvCacheTTL, 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.LogLevel, err = logrus.ParseLevel(getEnvWithDefault(EnvLogLevel, "info")); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, EnvLogLevel, err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("%w: %s=%q, want text or json", ErrInvalid, EnvLogFormat, cfg.LogFormat)
	}

	return cfg, nil
}

// Order returns the maze order described by cfg.
func (c Config) Order() factory.Order {
	return factory.Order{
		SkillLevel: c.SkillLevel,
		Method:     c.Method,
		Perfect:    c.Perfect,
		Seed:       c.Seed,
	}
}

// NewLogger returns a logger writing to out with cfg's level and format.
func (c Config) NewLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, key, err)
	}
	return n, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %v", ErrInvalid, key, err)
	}
	return b, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative duration: %q", ErrInvalid, key, value)
	}
	return d, nil
}
