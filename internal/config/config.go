package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Duration parses "2s"-style strings from both YAML and env values.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is loaded from an optional YAML file, then overridden by
// environment variables.
type Config struct {
	Addr           string      `yaml:"addr" env:"UNDERCITY_ADDR"`
	DatabaseDSN    string      `yaml:"database_dsn" env:"UNDERCITY_DB_DSN"`
	RulesPath      string      `yaml:"rules_path" env:"UNDERCITY_RULES_PATH"`
	MigrationsDir  string      `yaml:"migrations_dir" env:"UNDERCITY_MIGRATIONS_DIR"`
	ResolveTimeout Duration    `yaml:"resolve_timeout" env:"UNDERCITY_RESOLVE_TIMEOUT"`
	Regen          RegenConfig `yaml:"regen"`
}

type RegenConfig struct {
	// Cron spec for the energy regeneration ticker; empty disables it.
	Cron   string `yaml:"cron" env:"UNDERCITY_REGEN_CRON"`
	Amount int    `yaml:"amount" env:"UNDERCITY_REGEN_AMOUNT"`
}

// Load reads the YAML file when present, applies env overrides, then
// fills defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = "migrations"
	}
	if cfg.ResolveTimeout <= 0 {
		cfg.ResolveTimeout = Duration(2 * time.Second)
	}
	if cfg.Regen.Amount <= 0 {
		cfg.Regen.Amount = 5
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("database_dsn is required (UNDERCITY_DB_DSN)")
	}
	return nil
}
