package config

import (
	"os"

	"github.com/san-kum/rootfind/internal/rootfind"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFunction = "x^3 - x - 2"
	DefaultA        = 1.0
	DefaultB        = 2.0
	DefaultX0       = 1.5
	DefaultX1       = 2.0
)

// Config is one problem as stored in a YAML file.
type Config struct {
	Function      string          `yaml:"function"`
	Method        rootfind.Method `yaml:"method"`
	DecimalPlaces int             `yaml:"decimal_places"`
	MaxIter       int             `yaml:"max_iter"`
	Interval      IntervalConfig  `yaml:"interval"`
	Guess         GuessConfig     `yaml:"guess"`
}

// IntervalConfig is the bracket used by bisection and false position.
type IntervalConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// GuessConfig holds the starting points of the open methods.
type GuessConfig struct {
	X0 float64 `yaml:"x0"`
	X1 float64 `yaml:"x1"`
}

func DefaultConfig() *Config {
	return &Config{
		Function:      DefaultFunction,
		Method:        rootfind.Bisection,
		DecimalPlaces: rootfind.DefaultDecimalPlaces,
		MaxIter:       rootfind.DefaultMaxIter,
		Interval:      IntervalConfig{A: DefaultA, B: DefaultB},
		Guess:         GuessConfig{X0: DefaultX0, X1: DefaultX1},
	}
}

// Load reads a problem file on top of the defaults, so omitted keys keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, DefaultConfig())
}

// Parse decodes YAML over base and returns it.
func Parse(data []byte, base *Config) (*Config, error) {
	if base == nil {
		base = DefaultConfig()
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, err
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

func (c *Config) ToRequest() rootfind.Request {
	return rootfind.Request{
		Expression:    c.Function,
		Method:        c.Method,
		DecimalPlaces: c.DecimalPlaces,
		MaxIter:       c.MaxIter,
		A:             c.Interval.A,
		B:             c.Interval.B,
		X0:            c.Guess.X0,
		X1:            c.Guess.X1,
	}
}
