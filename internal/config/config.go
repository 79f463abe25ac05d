package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	localConfigFileName = "tuirun.toml"
	userConfigFileName  = "config.toml"
)

type Config struct {
	Render    RenderConfig    `mapstructure:"render"`
	Log       LogConfig       `mapstructure:"log"`
	Sandbox   SandboxConfig   `mapstructure:"sandbox"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type RenderConfig struct {
	FPS   int `mapstructure:"fps"`
	Lines int `mapstructure:"lines"`
}

// Interval returns the redraw period for the configured frame rate.
func (c RenderConfig) Interval() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type SandboxConfig struct {
	Image     string `mapstructure:"image"`
	HostRoot  string `mapstructure:"host_root"`
	GuestRoot string `mapstructure:"guest_root"`
}

type TelemetryConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

func setDefaults() {
	viper.SetDefault("render.fps", 60)
	viper.SetDefault("render.lines", 4)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "")
	viper.SetDefault("sandbox.image", "alpine:latest")
	viper.SetDefault("sandbox.host_root", defaultHostRoot())
	viper.SetDefault("sandbox.guest_root", "/mason")
	viper.SetDefault("telemetry.endpoint", "")
}

func defaultHostRoot() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "tuirun")
	}
	return filepath.Join(cacheDir, "tuirun")
}

// Init reads the first config file found on the search path. A missing file
// is not an error: defaults and environment overrides still apply.
func Init() error {
	setDefaults()

	path, found, err := firstExistingConfigPath()
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	viper.SetConfigFile(path)
	viper.SetConfigType("toml")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func Get() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
