package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. VSTYLE_THEME
const EnvPrefix = "VSTYLE"

// LogSettings configures the application logger
type LogSettings struct {
	Level   string `yaml:"level" mapstructure:"level"`
	Console bool   `yaml:"console" mapstructure:"console"`
}

// Settings is the user configuration file
type Settings struct {
	// Theme is the built-in theme symbol used when none is given
	Theme string `yaml:"theme" mapstructure:"theme"`
	// ThemeFile is a theme JSON file used instead of Theme
	ThemeFile string `yaml:"theme_file,omitempty" mapstructure:"theme_file"`
	// CustomColorsPath points to a YAML or JSON file of role overrides
	CustomColorsPath string `yaml:"custom_colors_path,omitempty" mapstructure:"custom_colors_path"`
	// ToolkitVersion is matched against env_patch directives
	ToolkitVersion string      `yaml:"toolkit_version,omitempty" mapstructure:"toolkit_version"`
	Log            LogSettings `yaml:"log" mapstructure:"log"`
}

// DefaultSettings returns the settings used when no file exists
func DefaultSettings() Settings {
	return Settings{
		Theme: "DARK_VS",
		Log: LogSettings{
			Level: "info",
		},
	}
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultSettings()
	v.SetDefault("theme", def.Theme)
	v.SetDefault("theme_file", def.ThemeFile)
	v.SetDefault("custom_colors_path", def.CustomColorsPath)
	v.SetDefault("toolkit_version", def.ToolkitVersion)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.console", def.Log.Console)
	return v
}

// LoadSettings reads the settings file at path. A missing file yields the
// defaults. VSTYLE_* environment variables override file values.
func LoadSettings(path string) (Settings, error) {
	v := newViper(path)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings writes the settings as YAML
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
