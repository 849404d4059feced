package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/exoscope/internal/types"
	"github.com/oxygene76/exoscope/pkg/catalog"
)

// EnvPrefix prefixes environment overrides, e.g. EXOSCOPE_CATALOG_PATH.
const EnvPrefix = "EXOSCOPE"

// Config represents the exoscope configuration
type Config struct {
	Catalog  CatalogConfig `yaml:"catalog" mapstructure:"catalog"`
	Defaults types.Query   `yaml:"defaults" mapstructure:"defaults"`
	Server   ServerConfig  `yaml:"server" mapstructure:"server"`
	Log      LogConfig     `yaml:"log" mapstructure:"log"`
}

// CatalogConfig says where the catalog lives and how it is read and refreshed
type CatalogConfig struct {
	Path            string        `yaml:"path" mapstructure:"path"`
	CommentPrefix   string        `yaml:"comment_prefix" mapstructure:"comment_prefix"`
	RequiredColumns []string      `yaml:"required_columns" mapstructure:"required_columns"`
	Refresh         string        `yaml:"refresh" mapstructure:"refresh"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Debounce        time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// ServerConfig contains HTTP settings
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
	Mode string `yaml:"mode" mapstructure:"mode"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultHome returns ~/.exoscope, or .exoscope when the home directory is unknown.
func DefaultHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".exoscope"
	}
	return filepath.Join(homeDir, ".exoscope")
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path:            filepath.Join("data", "PSCompPars.csv"),
			CommentPrefix:   catalog.DefaultCommentPrefix,
			RequiredColumns: append([]string(nil), catalog.DefaultRequiredColumns...),
			Refresh:         string(catalog.RefreshNone),
			TTL:             10 * time.Minute,
			Debounce:        catalog.DefaultDebounce,
		},
		Defaults: types.DefaultQuery(),
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads configuration from path, or from config.yaml in the
// usual locations when path is empty. A missing file is not an error: the
// defaults (plus environment overrides) are used.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultHome())
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := ValidateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// SaveConfig writes configuration to path as YAML
func SaveConfig(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) error {
	if config.Catalog.Path == "" {
		return errorsmod.Wrap(types.ErrInvalidConfig, "catalog path cannot be empty")
	}

	for _, col := range config.Catalog.RequiredColumns {
		if !catalog.KnownColumn(strings.ToLower(strings.TrimSpace(col))) {
			return errorsmod.Wrapf(types.ErrInvalidConfig, "unknown required column: %s", col)
		}
	}

	policy, err := catalog.ParseRefreshPolicy(config.Catalog.Refresh)
	if err != nil {
		return errorsmod.Wrap(types.ErrInvalidConfig, err.Error())
	}
	if policy == catalog.RefreshTTL && config.Catalog.TTL <= 0 {
		return errorsmod.Wrap(types.ErrInvalidConfig, "catalog ttl must be positive when refresh is ttl")
	}

	if config.Defaults.TelescopeDiameter <= 0 {
		return errorsmod.Wrap(types.ErrInvalidConfig, "default telescope diameter must be positive")
	}
	if config.Defaults.K < 0 || config.Defaults.Count < 0 {
		return errorsmod.Wrap(types.ErrInvalidConfig, "default k and count cannot be negative")
	}

	switch config.Server.Mode {
	case "", "debug", "release", "test":
	default:
		return errorsmod.Wrapf(types.ErrInvalidConfig, "invalid server mode: %s", config.Server.Mode)
	}

	return nil
}

// StoreConfig converts the catalog section for catalog.NewStore.
func (c *Config) StoreConfig() catalog.StoreConfig {
	policy, _ := catalog.ParseRefreshPolicy(c.Catalog.Refresh)
	return catalog.StoreConfig{
		Path: c.Catalog.Path,
		Options: catalog.Options{
			RequiredColumns: c.Catalog.RequiredColumns,
			CommentPrefix:   c.Catalog.CommentPrefix,
		},
		Refresh: policy,
		TTL:     c.Catalog.TTL,
	}
}

// setDefaults registers every key so that environment overrides apply
// even without a config file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("catalog.path", d.Catalog.Path)
	v.SetDefault("catalog.comment_prefix", d.Catalog.CommentPrefix)
	v.SetDefault("catalog.required_columns", d.Catalog.RequiredColumns)
	v.SetDefault("catalog.refresh", d.Catalog.Refresh)
	v.SetDefault("catalog.ttl", d.Catalog.TTL)
	v.SetDefault("catalog.debounce", d.Catalog.Debounce)

	v.SetDefault("defaults.telescope_diameter", d.Defaults.TelescopeDiameter)
	v.SetDefault("defaults.min_snr", d.Defaults.MinSNR)
	v.SetDefault("defaults.max_distance", d.Defaults.MaxDistance)
	v.SetDefault("defaults.habitable_only", d.Defaults.HabitableOnly)
	v.SetDefault("defaults.k", d.Defaults.K)
	v.SetDefault("defaults.start", d.Defaults.Start)
	v.SetDefault("defaults.count", d.Defaults.Count)

	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.mode", d.Server.Mode)
	v.SetDefault("log.level", d.Log.Level)
}
