// Package config loads runtime defaults from the environment and an optional .env file.
// Command-line flags override every value loaded here.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvColors          = "COLORMAESTRO_COLORS"
	EnvType            = "COLORMAESTRO_TYPE"
	EnvHarmony         = "COLORMAESTRO_HARMONY"
	EnvOutputs         = "COLORMAESTRO_OUTPUTS"
	EnvDark            = "COLORMAESTRO_DARK"
	EnvMoodsFile       = "COLORMAESTRO_MOODS_FILE"
	EnvSeedMode        = "COLORMAESTRO_SEED_MODE"
	EnvDisabledPlugins = "COLORMAESTRO_DISABLED_PLUGINS"
	EnvEnabledPlugins  = "COLORMAESTRO_ENABLED_PLUGINS"
)

// Defaults.
const (
	DefaultColors   = 5
	DefaultType     = "ui"
	DefaultHarmony  = "complementary"
	DefaultOutputs  = "terminal"
	DefaultSeedMode = "random"
)

// Config holds the runtime defaults.
type Config struct {
	Colors          int
	Type            string
	Harmony         string
	Outputs         []string
	Dark            bool
	MoodsFile       string
	SeedMode        string
	DisabledPlugins []string
	EnabledPlugins  []string
}

// Load reads .env files (default ".env"; missing files are ignored) and
// then builds the Config from the environment. Variables already set in the
// environment take precedence over .env values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(), nil
}

// FromEnv builds the Config from the environment only.
// Malformed numeric or boolean values fall back to their defaults.
func FromEnv() Config {
	return Config{
		Colors:          getEnvInt(EnvColors, DefaultColors),
		Type:            getEnv(EnvType, DefaultType),
		Harmony:         getEnv(EnvHarmony, DefaultHarmony),
		Outputs:         getEnvSlice(EnvOutputs, DefaultOutputs),
		Dark:            getEnvBool(EnvDark, false),
		MoodsFile:       getEnv(EnvMoodsFile, ""),
		SeedMode:        getEnv(EnvSeedMode, DefaultSeedMode),
		DisabledPlugins: getEnvSlice(EnvDisabledPlugins, ""),
		EnabledPlugins:  getEnvSlice(EnvEnabledPlugins, ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

// getEnvSlice splits a comma separated value, dropping blank entries.
func getEnvSlice(key, defaultValue string) []string {
	value := getEnv(key, defaultValue)

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
