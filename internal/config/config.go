package config

import (
	"errors"

	"github.com/spf13/viper"
)

// DefaultSnapshotPath is where the preference snapshot lives, relative to the
// working directory.
const DefaultSnapshotPath = "diary_config.toml"

// Options holds process-level settings that decide where the preference
// snapshot lives and how the CLI behaves. They are read-only for a session.
type Options struct {
	Snapshot      string `mapstructure:"snapshot"`
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	Editor        string `mapstructure:"editor"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// LoadOptions reads options from defaults, an optional TOML file and
// DIARY_* environment variables.
func LoadOptions(configPath string) (*Options, error) {
	v := viper.New()

	v.SetDefault("snapshot", DefaultSnapshotPath)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("editor", "")
	v.SetDefault("markdown_style", "dark")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("diary")
		v.SetConfigType("toml")
	}

	// DIARY_SNAPSHOT, DIARY_LOG_LEVEL, ...
	v.SetEnvPrefix("DIARY")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && configPath != "" {
			return nil, err
		}
	}

	opts := &Options{}
	if err := v.Unmarshal(opts); err != nil {
		return nil, err
	}
	return opts, nil
}
