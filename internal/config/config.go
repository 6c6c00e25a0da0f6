package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/up2sumit/KarmQuest/internal/storage"
)

// EnvPrefix is prepended to every environment override, e.g. KQ_DB_PATH.
const EnvPrefix = "KQ"

// ProgressionConfig controls how achievements are unlocked.
type ProgressionConfig struct {
	// Signal is "lifetime" (total XP ever earned) or "bar" (XP inside the current level).
	Signal string `mapstructure:"signal" yaml:"signal"`
}

// DisplayConfig holds UI preferences.
type DisplayConfig struct {
	ToastSeconds int `mapstructure:"toast_seconds" yaml:"toast_seconds"`
}

// Config is the top-level application configuration.
type Config struct {
	DBPath      string            `mapstructure:"db_path" yaml:"db_path"`
	DemoData    bool              `mapstructure:"demo_data" yaml:"demo_data"`
	Progression ProgressionConfig `mapstructure:"progression" yaml:"progression"`
	Display     DisplayConfig     `mapstructure:"display" yaml:"display"`
}

// ToastDuration is how long the TUI keeps a completion banner on screen.
func (c *Config) ToastDuration() time.Duration {
	if c.Display.ToastSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.Display.ToastSeconds) * time.Second
}

// DefaultPath returns ~/.config/karmquest/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "karmquest", "config.yaml")
}

func setDefaults(v *viper.Viper) {
	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		dbPath = ".karmquest.db"
	}
	v.SetDefault("db_path", dbPath)
	v.SetDefault("demo_data", true)
	v.SetDefault("progression.signal", "lifetime")
	v.SetDefault("display.toast_seconds", 3)
}

// Load reads the YAML file at path, then applies KQ_* environment overrides.
// A missing file is not an error: defaults and environment still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		var pathErr *os.PathError
		if !errors.As(err, &notFound) && !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
