package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strconv"

	"github.com/chris-regnier/diary/internal/fsutil"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// SchemaVersion is the snapshot format written by Save.
const SchemaVersion = 1

// MaxRecentSearches bounds Config.RecentSearches.
const MaxRecentSearches = 10

// Recognized setting keys.
const (
	SettingAutoBackup      = "autoBackup"
	SettingMaxEntriesPage  = "maxEntriesPerPage"
	SettingDefaultEncoding = "defaultEncoding"
)

// Config is the persisted user preference record.
type Config struct {
	Version        int               `toml:"version"`
	EntriesPath    string            `toml:"entries_path"`
	BackupPath     string            `toml:"backup_path"`
	RecentSearches []string          `toml:"recent_searches"`
	Settings       map[string]string `toml:"settings"`
}

func defaultSettings() map[string]string {
	return map[string]string{
		SettingAutoBackup:      "false",
		SettingMaxEntriesPage:  "10",
		SettingDefaultEncoding: "UTF-8",
	}
}

// Default returns a fresh preference record.
func Default() *Config {
	return &Config{
		Version:        SchemaVersion,
		EntriesPath:    "entries",
		BackupPath:     "backups",
		RecentSearches: []string{},
		Settings:       defaultSettings(),
	}
}

// Load reads the snapshot at path. Any failure is logged and yields
// Default(); losing preferences never stops the diary from opening.
func Load(afs afero.Fs, path string, log zerolog.Logger) *Config {
	data, err := afero.ReadFile(afs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("no config snapshot, using defaults")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("could not read configuration, using defaults")
		}
		return Default()
	}

	cfg, err := decode(data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not load configuration, using defaults")
		return Default()
	}
	return cfg
}

func decode(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if cfg.Version != SchemaVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", cfg.Version)
	}

	def := Default()
	if cfg.EntriesPath == "" {
		cfg.EntriesPath = def.EntriesPath
	}
	if cfg.BackupPath == "" {
		cfg.BackupPath = def.BackupPath
	}
	if cfg.RecentSearches == nil {
		cfg.RecentSearches = []string{}
	}
	if len(cfg.RecentSearches) > MaxRecentSearches {
		cfg.RecentSearches = cfg.RecentSearches[:MaxRecentSearches]
	}
	if cfg.Settings == nil {
		cfg.Settings = map[string]string{}
	}
	for k, v := range def.Settings {
		if _, ok := cfg.Settings[k]; !ok {
			cfg.Settings[k] = v
		}
	}
	return &cfg, nil
}

// Save writes the whole record to path.
func Save(afs afero.Fs, path string, cfg *Config) error {
	cfg.Version = SchemaVersion
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := fsutil.WriteFileAtomic(afs, path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}

// AddRecentSearch moves term to the front of the recent searches,
// dropping any earlier occurrence and keeping at most MaxRecentSearches.
func (c *Config) AddRecentSearch(term string) {
	recent := slices.DeleteFunc(c.RecentSearches, func(s string) bool { return s == term })
	recent = slices.Insert(recent, 0, term)
	if len(recent) > MaxRecentSearches {
		recent = recent[:MaxRecentSearches]
	}
	c.RecentSearches = recent
}

// GetSetting returns the raw value for key, or "" if unset.
func (c *Config) GetSetting(key string) string {
	return c.Settings[key]
}

// SetSetting stores a raw value. Values are not validated here.
func (c *Config) SetSetting(key, value string) {
	if c.Settings == nil {
		c.Settings = map[string]string{}
	}
	c.Settings[key] = value
}

// AutoBackup reports the autoBackup setting. Unparsable values read as false.
func (c *Config) AutoBackup() bool {
	on, err := strconv.ParseBool(c.GetSetting(SettingAutoBackup))
	return err == nil && on
}

// PageSize returns maxEntriesPerPage.
func (c *Config) PageSize() (int, error) {
	raw := c.GetSetting(SettingMaxEntriesPage)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", SettingMaxEntriesPage, raw, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid %s %d: must be at least 1", SettingMaxEntriesPage, n)
	}
	return n, nil
}

// Clone returns a deep copy, used to roll back failed updates.
func (c *Config) Clone() *Config {
	out := *c
	out.RecentSearches = slices.Clone(c.RecentSearches)
	out.Settings = make(map[string]string, len(c.Settings))
	for k, v := range c.Settings {
		out.Settings[k] = v
	}
	return &out
}
