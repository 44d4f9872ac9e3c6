package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/limaJavier/semtable/pkg/export"
)

const (
	DefaultPath = "semtable.yaml"
	EnvPrefix   = "SEMTABLE_"
)

type Config struct {
	Logging LoggingConfig `json:"logging"`
	Output  OutputConfig  `json:"output"`
	Random  RandomConfig  `json:"random"`
	Metrics MetricsConfig `json:"metrics"`
}

type LoggingConfig struct {
	// Level is one of zerolog's level names
	Level string `json:"level"`
}

type OutputConfig struct {
	Dir     string   `json:"dir"`
	Name    string   `json:"name"`
	Formats []string `json:"formats"`
	Sheet   string   `json:"sheet"`
}

type RandomConfig struct {
	// Seed makes generation reproducible, 0 draws a fresh seed on every run
	Seed uint64 `json:"seed"`
}

type MetricsConfig struct {
	// Textfile is the path of a node-exporter textfile to write after generating; empty disables it
	Textfile string `json:"textfile"`
}

// Load reads the configuration file at path and applies SEMTABLE_ environment overrides (SEMTABLE_OUTPUT__DIR sets
// output.dir). A missing file is tolerated unless required is set.
func Load(path string, required bool) (*Config, error) {
	k := koanf.New(".")

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		if required || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("cannot load config %v: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) SetDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "."
	}
	if c.Output.Name == "" {
		c.Output.Name = export.DefaultName
	}
	if c.Output.Sheet == "" {
		c.Output.Sheet = export.DefaultSheet
	}
	// Formats coming from the environment arrive as a single comma separated value
	c.Output.Formats = lo.Uniq(lo.Compact(lo.FlatMap(c.Output.Formats, func(format string, _ int) []string {
		return lo.Map(strings.Split(format, ","), func(part string, _ int) string {
			return strings.ToLower(strings.TrimSpace(part))
		})
	})))
	if len(c.Output.Formats) == 0 {
		c.Output.Formats = []string{"xlsx"}
	}
}

func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("unknown log level %s", c.Logging.Level)
	}
	if strings.TrimSpace(c.Output.Name) == "" {
		return fmt.Errorf("output name is required")
	}
	for _, format := range c.Output.Formats {
		if !slices.Contains(export.Formats(), format) {
			return fmt.Errorf("%w: %v (allowed values are %v)", export.ErrUnknownFormat, format, export.Formats())
		}
	}
	return nil
}
