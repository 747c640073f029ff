// Package namefilter screens generated region names against banned
// fragments, banned exact names and a minimum length.
package namefilter

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the name filter configuration
type Config struct {
	Enabled     bool     `yaml:"enabled"`
	MinLength   int      `yaml:"min_length"`
	BannedWords []string `yaml:"banned_words"`
	BannedNames []string `yaml:"banned_names"`
}

// Result contains the outcome of checking a name
type Result struct {
	Allowed bool
	Reason  string // empty when allowed
}

// NameFilter rejects generated names that should never reach a map
type NameFilter struct {
	enabled     bool
	minLength   int
	bannedWords []string // lowercase, substring match
	bannedNames []string // lowercase, exact match
}

// New creates a NameFilter from cfg. A nil config yields a disabled filter.
func New(cfg *Config) *NameFilter {
	if cfg == nil {
		return &NameFilter{}
	}

	nf := &NameFilter{
		enabled:   cfg.Enabled,
		minLength: cfg.MinLength,
	}
	nf.bannedWords = lowerNonEmpty(cfg.BannedWords)
	nf.bannedNames = lowerNonEmpty(cfg.BannedNames)
	return nf
}

func lowerNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}

// LoadConfig loads name filter configuration from a YAML file
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Check validates a generated name against the filter rules
func (nf *NameFilter) Check(name string) Result {
	if nf == nil || !nf.enabled {
		return Result{Allowed: true}
	}

	if nf.minLength > 0 && len([]rune(name)) < nf.minLength {
		return Result{Reason: "name is too short"}
	}

	lower := strings.ToLower(name)
	for _, banned := range nf.bannedNames {
		if lower == banned {
			return Result{Reason: "name is banned"}
		}
	}
	for _, word := range nf.bannedWords {
		if strings.Contains(lower, word) {
			return Result{Reason: "name contains banned word " + word}
		}
	}

	return Result{Allowed: true}
}

// Allow reports whether name passes the filter
func (nf *NameFilter) Allow(name string) bool {
	return nf.Check(name).Allowed
}

// IsEnabled returns whether the filter is enabled
func (nf *NameFilter) IsEnabled() bool {
	return nf != nil && nf.enabled
}
