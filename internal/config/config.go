// Package config loads the island generator settings from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/labenh526/Island/internal/database"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxAttempts     = 1000
	DefaultMaxNameAttempts = 500
	DefaultOrder           = 3
	DefaultMaxLength       = 10
)

// Config holds every island generator setting.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Names     NamesConfig     `yaml:"names"`
	Ledger    LedgerConfig    `yaml:"ledger"`
}

// GeneratorConfig bounds the draft-and-retry loop.
type GeneratorConfig struct {
	// MaxAttempts is the number of whole drafts tried before giving up.
	// 0 or less means DefaultMaxAttempts; the loop is never unbounded.
	MaxAttempts int `yaml:"max_attempts"`

	// MaxNameAttempts bounds name draws per region.
	MaxNameAttempts int `yaml:"max_name_attempts"`

	// Seed fixes the generator's random source. 0 picks one at startup.
	Seed int64 `yaml:"seed"`
}

// NamesConfig describes the region name chain and its filter.
type NamesConfig struct {
	CorpusPath string `yaml:"corpus_path"`
	Order      int    `yaml:"order"`
	MaxLength  int    `yaml:"max_length"`

	// FilterPath points at a namefilter YAML file. Empty disables filtering.
	FilterPath string `yaml:"filter_path"`
}

// LedgerConfig controls recording of generation runs.
type LedgerConfig struct {
	Enabled    bool           `yaml:"enabled"`
	Driver     string         `yaml:"driver"`
	SQLitePath string         `yaml:"sqlite_path"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// PostgresConfig is the YAML form of database.PostgresConfig.
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// DefaultConfig returns a Config with the stock corpus and no ledger.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			MaxAttempts:     DefaultMaxAttempts,
			MaxNameAttempts: DefaultMaxNameAttempts,
		},
		Names: NamesConfig{
			CorpusPath: "data/region_prefixes.txt",
			Order:      DefaultOrder,
			MaxLength:  DefaultMaxLength,
			FilterPath: "data/name_filter.yaml",
		},
		Ledger: LedgerConfig{
			Enabled:    false,
			Driver:     "sqlite",
			SQLitePath: "data/islands.db",
			Postgres: PostgresConfig{
				Host:    "localhost",
				Port:    5432,
				SSLMode: "disable",
			},
		},
	}
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, returns default config.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, config.Validate()
}

// Validate reports settings no generator could run with.
func (c *Config) Validate() error {
	if c.Names.Order < 1 {
		return fmt.Errorf("names.order must be at least 1, got %d", c.Names.Order)
	}
	if c.Names.MaxLength < c.Names.Order {
		return fmt.Errorf("names.max_length (%d) must be at least names.order (%d)", c.Names.MaxLength, c.Names.Order)
	}
	if c.Ledger.Enabled {
		switch c.Ledger.Driver {
		case "sqlite", "postgres":
		default:
			return fmt.Errorf("ledger.driver must be sqlite or postgres, got %q", c.Ledger.Driver)
		}
	}
	return nil
}

// Attempts returns MaxAttempts, or the default when it is not positive.
func (g GeneratorConfig) Attempts() int {
	if g.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return g.MaxAttempts
}

// NameAttempts returns MaxNameAttempts, or the default when it is not positive.
func (g GeneratorConfig) NameAttempts() int {
	if g.MaxNameAttempts <= 0 {
		return DefaultMaxNameAttempts
	}
	return g.MaxNameAttempts
}

// DatabaseConfig converts the ledger section to a database.Config.
func (l LedgerConfig) DatabaseConfig() database.Config {
	if l.Driver != "postgres" {
		return database.DefaultConfig(l.SQLitePath)
	}
	pg := database.DefaultPostgresConfig()
	pg.Host = l.Postgres.Host
	pg.Port = l.Postgres.Port
	pg.User = l.Postgres.User
	pg.Password = l.Postgres.Password
	pg.Database = l.Postgres.Database
	if l.Postgres.SSLMode != "" {
		pg.SSLMode = l.Postgres.SSLMode
	}
	return database.Config{Driver: "postgres", Postgres: pg}
}
