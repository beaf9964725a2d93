package config

import (
	"os"
	"time"

	"github.com/darkroomtools/easeld/border"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	ENV_PREFIX = "EASELD"
)

var (
	LogConfigEnv = ENV_PREFIX + "_LOG_CONFIG"
	ConfigEnv    = ENV_PREFIX + "_CONFIG"
)

type Config struct {
	Env        Environment    `yaml:"-"` // ENV only
	Server     ServerConfig   `yaml:"server"`
	Database   DatabaseConfig `yaml:"database"`
	Calculator border.Config  `yaml:"calculator"`
	Share      ShareConfig    `yaml:"share"`
}

type ServerConfig struct {
	Addr     string `yaml:"addr"`
	Timeouts struct {
		Read   time.Duration `yaml:"read"`
		Header time.Duration `yaml:"header"`
		Write  time.Duration `yaml:"write"`
		Idle   time.Duration `yaml:"idle"`
	} `yaml:"timeouts"`
}

// DatabaseConfig points at the local SQLite file holding the recipes.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ShareConfig shapes the links handed out for settings sharing.
type ShareConfig struct {
	BaseURL string `yaml:"base_url"`
}

// Load reads the yaml configuration. A missing file is not an error: the
// calculator has to work out of the box, so defaults are applied and only
// an unreadable or invalid file fails.
func Load(path string) (*Config, error) {
	log.Logger.Debug().Str("path", path).Msg("Configuration loading start")

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		log.Logger.Info().Str("path", path).Msg("No configuration file, using defaults")
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	cfg.Env = LoadEnvironment()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Logger.Info().Msg("Configuration loaded")
	return &cfg, nil
}

func logConfigOK(path string, value any) {
	log.Logger.Info().
		Str("config", path).
		Interface("value", value).
		Msg("config set")
}

func logConfigError(path string, value any, err error) {
	log.Logger.Error().
		Str("config", path).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
}

func GetLogConfigPath() string {
	return os.Getenv(LogConfigEnv)
}

func GetConfigPath() string {
	path := os.Getenv(ConfigEnv)
	if path == "" {
		path = "easeld.yaml"
	}
	return path
}
