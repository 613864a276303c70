// Package config loads engine settings from defaults, an optional YAML file
// and SOCIALGRAPH_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dd0wney/cluso-socialgraph/pkg/validation"
)

// EnvPrefix prefixes every environment override, e.g. SOCIALGRAPH_LAYOUT_SEED.
const EnvPrefix = "SOCIALGRAPH"

// Layout algorithms
const (
	LayoutSpring   = "spring"
	LayoutCircular = "circular"
)

// Config is the full engine configuration.
type Config struct {
	Layout   LayoutConfig   `mapstructure:"layout" yaml:"layout"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
}

// LayoutConfig selects and tunes the layout algorithm.
type LayoutConfig struct {
	Algorithm  string  `mapstructure:"algorithm" yaml:"algorithm"`
	Seed       uint64  `mapstructure:"seed" yaml:"seed"`
	Iterations int     `mapstructure:"iterations" yaml:"iterations"`
	Scale      float64 `mapstructure:"scale" yaml:"scale"`
}

// AnalysisConfig controls how the analytics engine runs.
type AnalysisConfig struct {
	Parallel       bool `mapstructure:"parallel" yaml:"parallel"`
	Workers        int  `mapstructure:"workers" yaml:"workers"`
	WassermanFaust bool `mapstructure:"wasserman_faust" yaml:"wasserman_faust"`
}

// LogConfig configures the zap-backed logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" yaml:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins" yaml:"cors_origins"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
}

// SetDefaults registers every key with its default value. Keys must be known
// to viper for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("layout.algorithm", LayoutSpring)
	v.SetDefault("layout.seed", 42)
	v.SetDefault("layout.iterations", 50)
	v.SetDefault("layout.scale", 1.0)

	v.SetDefault("analysis.parallel", true)
	v.SetDefault("analysis.workers", 3)
	v.SetDefault("analysis.wasserman_faust", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.max_body_bytes", 10<<20)
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Default returns the configuration with only defaults applied.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, _ := FromViper(v)
	return cfg
}

// Load reads configuration from path (if non-empty) layered over defaults
// and environment.
func Load(path string) (*Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	return validation.NewConfigValidator("Config").
		OneOf("layout.algorithm", c.Layout.Algorithm, []string{LayoutSpring, LayoutCircular}).
		RangeInt("layout.iterations", c.Layout.Iterations, 1, 10000).
		PositiveFloat("layout.scale", c.Layout.Scale).
		When(c.Analysis.Parallel, func(cv *validation.ConfigValidator) {
			cv.RangeInt("analysis.workers", c.Analysis.Workers, 1, 64)
		}).
		OneOf("log.level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}).
		OneOf("log.format", c.Log.Format, []string{"json", "console"}).
		Required("server.addr", c.Server.Addr).
		MinDuration("server.shutdown_timeout", c.Server.ShutdownTimeout, 100*time.Millisecond).
		Positive("server.max_body_bytes", int(min(c.Server.MaxBodyBytes, 1<<30))).
		Validate()
}
