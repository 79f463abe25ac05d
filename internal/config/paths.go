package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const appDirName = "tuirun"

// location is one place a config file may live.
type location struct {
	name string
	path func() (string, error)
}

// searchOrder lists config locations from highest to lowest priority: the
// working directory, then ~/.config/tuirun, then the OS config directory
// (which is the same place on Linux unless XDG_CONFIG_HOME is set).
func searchOrder() []location {
	return []location{
		{name: "local", path: func() (string, error) { return filepath.Abs(localConfigFileName) }},
		{name: "home", path: func() (string, error) { return inDir(homeConfigDir) }},
		{name: "os", path: func() (string, error) { return inDir(osConfigDir) }},
	}
}

func inDir(dir func() (string, error)) (string, error) {
	d, err := dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, userConfigFileName), nil
}

func homeConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".config", appDirName), nil
}

func osConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName), nil
}

// firstExistingConfigPath walks the search order and returns the first file
// that exists.
func firstExistingConfigPath() (string, bool, error) {
	for _, loc := range searchOrder() {
		path, err := loc.path()
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(path)
		switch {
		case err == nil:
			return path, true, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", false, fmt.Errorf("failed to inspect %s config %s: %w", loc.name, path, err)
		}
	}
	return "", false, nil
}

// ConfigFilePath returns the config file in use. When none exists yet it
// returns where one would be created: under ~/.config if that directory is
// already there, else under the OS config directory.
func ConfigFilePath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return filepath.Abs(used)
	}

	path, found, err := firstExistingConfigPath()
	if err != nil || found {
		return path, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	info, err := os.Stat(filepath.Join(home, ".config"))
	switch {
	case err == nil && info.IsDir():
		return inDir(homeConfigDir)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("failed to inspect %s: %w", filepath.Join(home, ".config"), err)
	}
	return inDir(osConfigDir)
}
