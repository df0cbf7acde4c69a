package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FileName is looked up in the config directory; it is optional.
	FileName  = "bossfight.cfg"
	EnvPrefix = "BOSSFIGHT"
)

// Settings are the host options shared by both front-ends.
type Settings struct {
	LogLevel  string `mapstructure:"logLevel"`
	LogFormat string `mapstructure:"logFormat"`
	TPS       int    `mapstructure:"tps"`
	Seed      uint64 `mapstructure:"seed"`
	Prefab    string `mapstructure:"prefab"`
	HotReload bool   `mapstructure:"hotReload"`
	WatchDir  string `mapstructure:"watchDir"`
	Scripting bool   `mapstructure:"scripting"`
	Window    Window `mapstructure:"window"`
}

type Window struct {
	Scale float64 `mapstructure:"scale"`
	Title string  `mapstructure:"title"`
}

var ErrInvalidSettings = errors.New("config: invalid settings")

// Load sets defaults, reads bossfight.cfg.yaml from configDir when present
// and applies BOSSFIGHT_* environment overrides.
func Load(configDir string) (Settings, error) {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFormat", "console")
	viper.SetDefault("tps", 60)
	viper.SetDefault("seed", 0)
	viper.SetDefault("prefab", "boss.yaml")
	viper.SetDefault("hotReload", false)
	viper.SetDefault("watchDir", "prefabs")
	viper.SetDefault("scripting", true)
	viper.SetDefault("window.scale", 48.0)
	viper.SetDefault("window.title", "bossfight")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")
	if configDir != "" {
		viper.AddConfigPath(configDir)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidSettings, s.TPS)
	}
	if s.Window.Scale <= 0 {
		return fmt.Errorf("%w: window scale must be positive, got %v", ErrInvalidSettings, s.Window.Scale)
	}
	switch s.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidSettings, s.LogFormat)
	}
	return nil
}

// FrameTime is the fixed simulation step in seconds.
func (s Settings) FrameTime() float64 {
	return 1 / float64(s.TPS)
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
