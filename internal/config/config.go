package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Login   LoginConfig   `mapstructure:"login"`
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title     string `mapstructure:"title"`
	AltScreen bool   `mapstructure:"alt_screen"`
}

// LoginConfig controls the simulated sign-in latency.
type LoginConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// CatalogConfig holds sqlite settings for the catalog store.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

const (
	DefaultTitle      = "My Modern App"
	DefaultLoginDelay = 500 * time.Millisecond
)

// Load reads configuration from file and env. Env var overrides use prefix MODERNAPP_.
// A non-empty path takes precedence over MODERNAPP_CONFIG and the default location.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.title", DefaultTitle)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("login.delay", DefaultLoginDelay)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("catalog.path", ":memory:")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("MODERNAPP_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "modernapp"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MODERNAPP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default config is fine; a missing or broken explicit one is not
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the app cannot run with.
func (c Config) Validate() error {
	if c.Login.Delay < 0 {
		return fmt.Errorf("login.delay must not be negative, got %s", c.Login.Delay)
	}
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("catalog.path must not be empty")
	}
	return nil
}
