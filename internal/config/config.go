// Package config provides Viper-based configuration loading for the expedition host.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Save backend identifiers.
const (
	SaveBackendFile     = "file"
	SaveBackendPostgres = "postgres"
)

// DatabaseConfig holds PostgreSQL connection settings for the postgres save backend.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// DSN returns the PostgreSQL connection string.
//
// Precondition: Host, Port, User, and Name must be non-empty.
// Postcondition: Returns a valid PostgreSQL DSN string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig locates the card, enemy, mission, and event tables.
type ContentConfig struct {
	// Dir holds cards.yaml, enemies.yaml, missions.yaml and events.yaml (or .json).
	Dir string `mapstructure:"dir"`
}

// SaveConfig selects where the kingdom is persisted.
type SaveConfig struct {
	// Backend is "file" or "postgres".
	Backend string `mapstructure:"backend"`
	// Dir is the directory holding save files for the file backend.
	Dir string `mapstructure:"dir"`
	// Slot is the save slot name used by the host.
	Slot string `mapstructure:"slot"`
}

// GameConfig holds tunables for the simulation core.
type GameConfig struct {
	// Seed drives the deterministic random source; 0 selects crypto randomness.
	Seed         int64 `mapstructure:"seed"`
	MaxEnergy    int   `mapstructure:"max_energy"`
	HandSize     int   `mapstructure:"hand_size"`
	MaxPartySize int   `mapstructure:"max_party_size"`
	RecruitPool  int   `mapstructure:"recruit_pool"`
	CombatStress int   `mapstructure:"combat_stress"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Content  ContentConfig  `mapstructure:"content"`
	Save     SaveConfig     `mapstructure:"save"`
	Database DatabaseConfig `mapstructure:"database"`
	Game     GameConfig     `mapstructure:"game"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Content.Dir == "" {
		errs = append(errs, "content.dir must not be empty")
	}
	if err := validateSave(c.Save); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Save.Backend == SaveBackendPostgres {
		if err := validateDatabase(c.Database); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSave(s SaveConfig) error {
	var errs []string
	switch s.Backend {
	case SaveBackendFile:
		if s.Dir == "" {
			errs = append(errs, "save.dir must not be empty for the file backend")
		}
	case SaveBackendPostgres:
	default:
		errs = append(errs, fmt.Sprintf("save.backend must be one of [file, postgres], got %q", s.Backend))
	}
	if s.Slot == "" {
		errs = append(errs, "save.slot must not be empty")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateDatabase(d DatabaseConfig) error {
	var errs []string
	if d.Host == "" {
		errs = append(errs, "database.host must not be empty")
	}
	if d.Port < 1 || d.Port > 65535 {
		errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, "database.user must not be empty")
	}
	if d.Name == "" {
		errs = append(errs, "database.name must not be empty")
	}
	validSSL := map[string]bool{"disable": true, "require": true, "verify-ca": true, "verify-full": true}
	if !validSSL[d.SSLMode] {
		errs = append(errs, fmt.Sprintf("database.sslmode must be one of [disable, require, verify-ca, verify-full], got %q", d.SSLMode))
	}
	if d.MaxConns < 1 {
		errs = append(errs, fmt.Sprintf("database.max_conns must be >= 1, got %d", d.MaxConns))
	}
	if d.MinConns < 0 {
		errs = append(errs, fmt.Sprintf("database.min_conns must be >= 0, got %d", d.MinConns))
	}
	if d.MinConns > d.MaxConns {
		errs = append(errs, "database.min_conns must not exceed database.max_conns")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.MaxEnergy < 1 {
		errs = append(errs, fmt.Sprintf("game.max_energy must be >= 1, got %d", g.MaxEnergy))
	}
	if g.HandSize < 1 {
		errs = append(errs, fmt.Sprintf("game.hand_size must be >= 1, got %d", g.HandSize))
	}
	if g.MaxPartySize < 1 {
		errs = append(errs, fmt.Sprintf("game.max_party_size must be >= 1, got %d", g.MaxPartySize))
	}
	if g.RecruitPool < 1 {
		errs = append(errs, fmt.Sprintf("game.recruit_pool must be >= 1, got %d", g.RecruitPool))
	}
	if g.CombatStress < 0 {
		errs = append(errs, fmt.Sprintf("game.combat_stress must be >= 0, got %d", g.CombatStress))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvPrefix("FRONTIER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance holding only the built-in defaults.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("content.dir", "content")

	v.SetDefault("save.backend", SaveBackendFile)
	v.SetDefault("save.dir", "saves")
	v.SetDefault("save.slot", "kingdom")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "frontier")
	v.SetDefault("database.password", "frontier")
	v.SetDefault("database.name", "frontier")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.max_conn_lifetime", "1h")

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.max_energy", 3)
	v.SetDefault("game.hand_size", 5)
	v.SetDefault("game.max_party_size", 4)
	v.SetDefault("game.recruit_pool", 3)
	v.SetDefault("game.combat_stress", 2)
}
