package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/expar/foundation/core/error"
	mdwlog "github.com/msto63/expar/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "EXPAR_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	LogFile   string `toml:"log_file" yaml:"log_file"`
}

// ParserConfig holds expression engine settings
type ParserConfig struct {
	MaxInputLength int      `toml:"max_input_length" yaml:"max_input_length"`
	SIPrefixes     bool     `toml:"si_prefixes" yaml:"si_prefixes"`
	SkipValidation bool     `toml:"skip_validation" yaml:"skip_validation"`
	SlowThreshold  Duration `toml:"slow_threshold" yaml:"slow_threshold"`
	CacheSize      int      `toml:"cache_size" yaml:"cache_size"` // 0 disables the tree cache
	CacheTTL       Duration `toml:"cache_ttl" yaml:"cache_ttl"`
}

// OutputConfig holds rendering settings for the command line tools
type OutputConfig struct {
	Format      string `toml:"format" yaml:"format"`
	NoColor     bool   `toml:"no_color" yaml:"no_color"`
	ShowTimings bool   `toml:"show_timings" yaml:"show_timings"`
}

// OutputFormats lists the accepted values of Output.Format
var OutputFormats = []string{"symbolic", "debug", "tree"}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", path)).
				WithCode(mdwerror.CodeFileNotFound).
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeIOError).
			WithDetail("path", path)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		if se, ok := err.(*mdwerror.Error); ok {
			return nil, se.WithDetail("path", path)
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes configuration data. ext selects the decoder: ".toml",
// ".yaml" or ".yml".
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "failed to parse config").
				WithCode(mdwerror.CodeInvalidConfig)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, mdwerror.Wrap(err, "failed to parse config").
				WithCode(mdwerror.CodeInvalidConfig)
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported config format %q", ext)).
			WithCode(mdwerror.CodeInvalidConfig)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in path-like fields
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the EXPAR_CONFIG environment variable
// or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set " + EnvConfigPath + " or create expar.toml").
			WithCode(mdwerror.CodeMissingConfig)
	}

	return Load(path)
}

// DefaultPaths returns the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{
		"./expar.toml",
		"./expar.yaml",
		"./configs/expar.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config/expar/config.toml"),
			filepath.Join(home, ".config/expar/config.yaml"),
		)
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "expar"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Parser
	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = 4096
	}
	if c.Parser.SlowThreshold.Duration == 0 {
		c.Parser.SlowThreshold.Duration = 50 * time.Millisecond
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "symbolic"
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return mdwerror.New(fmt.Sprintf("invalid %s %v: %s", field, value, reason)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("field", field)
	}

	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, "unknown level")
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, "expected json, text or console")
	}
	if c.Parser.MaxInputLength < 0 {
		return invalid("parser.max_input_length", c.Parser.MaxInputLength, "must not be negative")
	}
	if c.Parser.SlowThreshold.Duration < 0 {
		return invalid("parser.slow_threshold", c.Parser.SlowThreshold, "must not be negative")
	}
	if c.Parser.CacheSize < 0 {
		return invalid("parser.cache_size", c.Parser.CacheSize, "must not be negative")
	}
	if c.Parser.CacheTTL.Duration < 0 {
		return invalid("parser.cache_ttl", c.Parser.CacheTTL, "must not be negative")
	}

	for _, f := range OutputFormats {
		if c.Output.Format == f {
			return nil
		}
	}
	return invalid("output.format", c.Output.Format, "expected one of "+strings.Join(OutputFormats, ", "))
}
