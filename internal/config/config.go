package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gosigil/pkg/templates"
)

// DefaultDebounce is the delay between a figure file change and re-matching
const DefaultDebounce = 500 * time.Millisecond

// Config holds CLI defaults read from a TOML file. Command line flags win.
type Config struct {
	Verbosity int         `toml:"verbosity"`
	Match     MatchConfig `toml:"match"`
	Watch     WatchConfig `toml:"watch"`
}

type MatchConfig struct {
	// Families limits matching to these template families; empty means all
	Families []string `toml:"families"`
}

type WatchConfig struct {
	Debounce string `toml:"debounce"`
}

// Default returns the configuration used without a config file
func Default() *Config {
	return &Config{
		Watch: WatchConfig{Debounce: DefaultDebounce.String()},
	}
}

// Load reads a TOML config file on top of the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if _, err := cfg.Families(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := cfg.DebounceDuration(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Families parses the configured template families
func (c *Config) Families() ([]templates.Family, error) {
	return ParseFamilies(c.Match.Families)
}

// DebounceDuration parses the watch debounce delay
func (c *Config) DebounceDuration() (time.Duration, error) {
	if c.Watch.Debounce == "" {
		return DefaultDebounce, nil
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid debounce: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid debounce: %s is negative", d)
	}
	return d, nil
}

// ParseFamilies parses family names, as given in the config or on the command line
func ParseFamilies(names []string) ([]templates.Family, error) {
	families := make([]templates.Family, 0, len(names))
	for _, name := range names {
		f, err := templates.ParseFamily(name)
		if err != nil {
			return nil, err
		}
		families = append(families, f)
	}
	return families, nil
}
